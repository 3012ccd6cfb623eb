package gateway

import (
	"testing"

	errs "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/logger"
	gatewaymocks "github.com/romeopeter/payment-orchestrator/mocks/port/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolve(t *testing.T) {
	paystack := newTestPaystack("https://api.paystack.co")
	moniepoint := newTestMoniepoint("https://api.moniepoint.com")

	registry, err := NewRegistry(paystack, moniepoint)
	require.NoError(t, err)

	t.Run("Exact names resolve", func(t *testing.T) {
		gw, err := registry.Resolve("paystack")
		require.NoError(t, err)
		assert.Same(t, paystack, gw)

		gw, err = registry.Resolve("moniepoint")
		require.NoError(t, err)
		assert.Same(t, moniepoint, gw)
	})

	t.Run("Lookup is case sensitive", func(t *testing.T) {
		_, err := registry.Resolve("Paystack")
		assert.ErrorIs(t, err, errs.ErrUnsupportedGateway)
	})

	t.Run("Unknown provider", func(t *testing.T) {
		_, err := registry.Resolve("unknown_provider")
		assert.ErrorIs(t, err, errs.ErrUnsupportedGateway)
		assert.Contains(t, err.Error(), "moniepoint, paystack")
	})

	t.Run("Names are sorted and copied", func(t *testing.T) {
		names := registry.Names()
		assert.Equal(t, []string{"moniepoint", "paystack"}, names)

		names[0] = "mutated"
		assert.Equal(t, []string{"moniepoint", "paystack"}, registry.Names())
	})
}

func TestNewRegistryRejectsBadAdapters(t *testing.T) {
	t.Run("Duplicate names", func(t *testing.T) {
		_, err := NewRegistry(newTestPaystack("a"), newTestPaystack("b"))
		assert.Error(t, err)
	})

	t.Run("Empty name", func(t *testing.T) {
		nameless := gatewaymocks.NewMockGateway(t)
		nameless.EXPECT().Name().Return(" ").Once()

		_, err := NewRegistry(nameless)
		assert.Error(t, err)
	})
}

func TestNewRegistryFromSettings(t *testing.T) {
	t.Run("Only providers with secrets are registered", func(t *testing.T) {
		registry, err := NewRegistryFromSettings(Settings{
			Paystack: ProviderConfig{SecretKey: "sk_test", BaseURL: "https://api.paystack.co"},
		}, logger.NewNoopLogger())

		require.NoError(t, err)
		assert.Equal(t, []string{PaystackName}, registry.Names())

		_, err = registry.Resolve(MoniepointName)
		assert.ErrorIs(t, err, errs.ErrUnsupportedGateway)
	})

	t.Run("Both providers", func(t *testing.T) {
		registry, err := NewRegistryFromSettings(Settings{
			Paystack:   ProviderConfig{SecretKey: "sk_test", BaseURL: "https://api.paystack.co"},
			Moniepoint: MoniepointConfig{ProviderConfig: ProviderConfig{SecretKey: "mp_test", BaseURL: "https://api.moniepoint.com"}},
		}, logger.NewNoopLogger())

		require.NoError(t, err)
		assert.Equal(t, []string{MoniepointName, PaystackName}, registry.Names())
	})
}
