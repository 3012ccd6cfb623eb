package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// step is one schema version. Steps run in order, each in its own transaction.
type step struct {
	version     string
	description string
	apply       func(tx *gorm.DB) error
}

// MigrationManager brings the schema to the latest step
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	steps        []step
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	m := &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
	indexes := NewAdvancedIndexManager(logger)

	m.steps = []step{
		{"1.0.0", "Users and transactions", createTables},
		{"1.1.0", "Positive amount check on transactions", m.addAmountCheck},
		{"1.2.0", "Pending, BRIN and metadata indexes", indexes.CreateAdvancedIndexes},
	}
	return m
}

// LatestVersion is the version MigrateAll converges on
func (m *MigrationManager) LatestVersion() string {
	return m.steps[len(m.steps)-1].version
}

// MigrateAll applies every step newer than the recorded version.
// Column additions from the models are applied on every start.
func (m *MigrationManager) MigrateAll() error {
	ctx := context.Background()

	if err := m.db.AutoMigrate(&model.SchemaMigration{}); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	current, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	pending, err := m.pendingSteps(current)
	if err != nil {
		return err
	}

	m.logger.Info("Starting database migrations", map[string]any{
		"current_version": current,
		"target_version":  m.LatestVersion(),
		"pending_steps":   len(pending),
	})

	if err := createTables(m.db); err != nil {
		return fmt.Errorf("auto-migrate models: %w", err)
	}

	for _, s := range pending {
		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := s.apply(tx); err != nil {
				return err
			}
			return tx.Create(&model.SchemaMigration{
				Version:     s.version,
				Description: s.description,
				AppliedAt:   m.timeProvider.Now(),
			}).Error
		})
		if err != nil {
			m.logger.Error("Migration step failed", map[string]any{
				"version": s.version,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s: %w", s.version, err)
		}

		m.logger.Info("Applied migration step", map[string]any{
			"version":     s.version,
			"description": s.description,
		})
	}

	NewAdvancedIndexManager(m.logger).ApplyStorageSettings(m.db)

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": m.LatestVersion(),
	})
	return nil
}

// GetCurrentVersion returns the most recently applied version, or "" for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var applied model.SchemaMigration
	err := m.db.WithContext(ctx).Order("applied_at DESC").Order("id DESC").First(&applied).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return applied.Version, nil
}

// pendingSteps returns the steps after current; an unknown version is an error
func (m *MigrationManager) pendingSteps(current string) ([]step, error) {
	if current == "" {
		return m.steps, nil
	}
	for i, s := range m.steps {
		if s.version == current {
			return m.steps[i+1:], nil
		}
	}
	return nil, fmt.Errorf("database schema version %q is not known to this build", current)
}

func createTables(tx *gorm.DB) error {
	return tx.AutoMigrate(
		&model.User{},
		&model.Transaction{},
	)
}

// addAmountCheck adds the amount > 0 constraint.
// Rows that would violate it are left in place and reported instead.
func (m *MigrationManager) addAmountCheck(tx *gorm.DB) error {
	var invalid int64
	if err := tx.Model(&model.Transaction{}).Where("amount <= 0").Count(&invalid).Error; err != nil {
		return err
	}
	if invalid > 0 {
		m.logger.Warn("Skipping amount check constraint, invalid rows present", map[string]any{
			"rows": invalid,
		})
		return nil
	}

	return tx.Exec(`
		ALTER TABLE transactions
		DROP CONSTRAINT IF EXISTS chk_transactions_amount_positive,
		ADD CONSTRAINT chk_transactions_amount_positive CHECK (amount > 0)
	`).Error
}
