package migration

import (
	"testing"

	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/logger"
	timeprovider "github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *MigrationManager {
	return NewMigrationManager(nil, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())
}

func TestPendingSteps(t *testing.T) {
	m := newTestManager()

	t.Run("Fresh database runs every step", func(t *testing.T) {
		steps, err := m.pendingSteps("")
		require.NoError(t, err)
		assert.Len(t, steps, len(m.steps))
		assert.Equal(t, "1.0.0", steps[0].version)
	})

	t.Run("Intermediate version runs the rest", func(t *testing.T) {
		steps, err := m.pendingSteps("1.0.0")
		require.NoError(t, err)
		require.Len(t, steps, len(m.steps)-1)
		assert.Equal(t, "1.1.0", steps[0].version)
	})

	t.Run("Latest version has nothing pending", func(t *testing.T) {
		steps, err := m.pendingSteps(m.LatestVersion())
		require.NoError(t, err)
		assert.Empty(t, steps)
	})

	t.Run("Unknown version is refused", func(t *testing.T) {
		_, err := m.pendingSteps("9.9.9")
		assert.ErrorContains(t, err, "9.9.9")
	})
}

func TestStepsAreOrderedAndUnique(t *testing.T) {
	m := newTestManager()

	seen := make(map[string]bool)
	for i, s := range m.steps {
		assert.False(t, seen[s.version], "duplicate version %s", s.version)
		seen[s.version] = true
		assert.NotNil(t, s.apply)
		if i > 0 {
			assert.Greater(t, s.version, m.steps[i-1].version)
		}
	}
	assert.Equal(t, "1.2.0", m.LatestVersion())
}
