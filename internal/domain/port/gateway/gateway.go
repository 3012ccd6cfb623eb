package gateway

import "context"

// Operation names used in logs and gateway errors
const (
	OpInitializeCharge = "initialize_charge"
	OpCharge           = "charge"
	OpVerifyPayment    = "verify_payment"
	OpSubmitOTP        = "submit_otp"
)

// Response is the provider's JSON body, returned as-is
type Response map[string]any

// InitializeRequest starts a redirect-style charge
type InitializeRequest struct {
	Reference string
	Email     string
	Amount    int64
	Metadata  map[string]any
}

// ChargeRequest starts a direct charge with bank or card details
type ChargeRequest struct {
	Reference string
	Email     string
	Amount    int64
	Bank      map[string]any
	Card      map[string]any
	Metadata  map[string]any
}

// Gateway is the uniform operation set every payment provider implements.
// Each call performs exactly one outbound request and never normalizes the status.
type Gateway interface {
	// Name returns the registry key for this provider
	Name() string

	// InitializeCharge starts a redirect charge
	InitializeCharge(ctx context.Context, req InitializeRequest) (Response, error)

	// Charge starts a direct (no-redirect) charge
	Charge(ctx context.Context, req ChargeRequest) (Response, error)

	// VerifyPayment queries the current status for a reference
	VerifyPayment(ctx context.Context, reference string) (Response, error)

	// SubmitOTP completes the OTP step of a direct charge
	SubmitOTP(ctx context.Context, otp, reference string) (Response, error)
}

// Resolver looks gateways up by name
type Resolver interface {
	// Resolve returns the gateway registered under name (exact, case-sensitive match)
	//
	// Possible errors:
	// - ErrUnsupportedGateway: If no gateway is registered under name
	Resolve(name string) (Gateway, error)

	// Names lists the registered gateway names in sorted order
	Names() []string
}
