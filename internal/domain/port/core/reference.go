package core

// ReferenceGenerator produces unique gateway references for new transactions
type ReferenceGenerator interface {
	// NewReference returns a fresh reference in the txn_<10 lowercase hex> format
	NewReference() string
}
