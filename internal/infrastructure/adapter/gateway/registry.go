package gateway

import (
	"fmt"
	"slices"
	"strings"

	errs "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	gwport "github.com/romeopeter/payment-orchestrator/internal/domain/port/gateway"
)

// Registry resolves gateways by name. It is read-only once built.
type Registry struct {
	gateways map[string]gwport.Gateway
	names    []string
}

// NewRegistry builds a registry from the given adapters
func NewRegistry(gateways ...gwport.Gateway) (*Registry, error) {
	r := &Registry{gateways: make(map[string]gwport.Gateway, len(gateways))}

	for _, gw := range gateways {
		name := gw.Name()
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("gateway registry: adapter with empty name")
		}
		if _, exists := r.gateways[name]; exists {
			return nil, fmt.Errorf("gateway registry: %q registered twice", name)
		}
		r.gateways[name] = gw
		r.names = append(r.names, name)
	}

	slices.Sort(r.names)
	return r, nil
}

// Settings lists the provider configuration read at startup
type Settings struct {
	Paystack   ProviderConfig
	Moniepoint MoniepointConfig
}

// NewRegistryFromSettings registers every provider that has a secret key configured
func NewRegistryFromSettings(settings Settings, logger coreport.Logger) (*Registry, error) {
	var adapters []gwport.Gateway

	if settings.Paystack.SecretKey != "" {
		adapters = append(adapters, NewPaystackGateway(settings.Paystack, logger))
	} else {
		logger.Warn("Paystack secret key not configured, gateway disabled", nil)
	}

	if settings.Moniepoint.SecretKey != "" {
		adapters = append(adapters, NewMoniepointGateway(settings.Moniepoint, logger))
	} else {
		logger.Warn("Moniepoint secret key not configured, gateway disabled", nil)
	}

	registry, err := NewRegistry(adapters...)
	if err != nil {
		return nil, err
	}

	logger.Info("Payment gateways registered", map[string]any{
		"gateways": registry.Names(),
	})
	return registry, nil
}

// Resolve returns the gateway registered under name (exact, case-sensitive)
func (r *Registry) Resolve(name string) (gwport.Gateway, error) {
	gw, ok := r.gateways[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", errs.ErrUnsupportedGateway, name, strings.Join(r.names, ", "))
	}
	return gw, nil
}

// Names lists the registered gateway names in sorted order
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

var _ gwport.Resolver = (*Registry)(nil)
