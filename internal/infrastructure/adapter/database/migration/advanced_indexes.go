package migration

import (
	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes GORM tags cannot express
type AdvancedIndexManager struct {
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{logger: logger}
}

type indexStatement struct {
	name string
	sql  string
}

var advancedIndexes = []indexStatement{
	{
		// Pending transactions are the ones awaiting a verify call
		name: "idx_transactions_pending",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_pending
			ON transactions (gateway, created_at)
			WHERE status = 'pending'`,
	},
	{
		name: "idx_transactions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
			ON transactions USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_transactions_metadata_gin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_metadata_gin
			ON transactions USING GIN (metadata jsonb_path_ops)`,
	},
}

// CreateAdvancedIndexes creates the indexes inside tx
func (m *AdvancedIndexManager) CreateAdvancedIndexes(tx *gorm.DB) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := tx.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(advancedIndexes),
	})
	return nil
}

// ApplyStorageSettings applies PostgreSQL storage settings.
// Failures are logged and ignored.
func (m *AdvancedIndexManager) ApplyStorageSettings(db *gorm.DB) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Status updates rewrite rows in place; spare page room keeps them HOT
	if err := db.Exec(`ALTER TABLE transactions SET (fillfactor = 90)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transactions table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := db.Exec(`ALTER TABLE transactions ALTER COLUMN customer_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for customer_id", map[string]any{
			"error": err.Error(),
		})
	}
}
