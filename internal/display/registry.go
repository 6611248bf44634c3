package display

import (
	"fmt"
	"sync"
)

// Registry manages focus providers and handles platform detection
type Registry struct {
	providers []FocusProvider
	mu        sync.RWMutex
}

var (
	globalRegistry = &Registry{
		providers: make([]FocusProvider, 0),
	}
)

// Register adds a focus provider to the global registry.
// This is typically called from init() functions in platform-specific packages.
func Register(provider FocusProvider) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.providers = append(globalRegistry.providers, provider)
}

// DetectFocus returns the strategy of the first available provider, or
// NoopFocus when none is available. Registration order decides priority.
func DetectFocus() FocusStrategy {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	for _, p := range globalRegistry.providers {
		if !p.IsAvailable() {
			continue
		}
		if strategy, err := p.GetStrategy(); err == nil {
			return strategy
		}
	}

	return NoopFocus{}
}

// Resolve maps a strategy name from settings to a FocusStrategy
func Resolve(name string) (FocusStrategy, error) {
	switch name {
	case "", StrategyNone:
		return NoopFocus{}, nil
	case StrategyAuto:
		return DetectFocus(), nil
	}

	p := GetProvider(name)
	if p == nil {
		return nil, fmt.Errorf("unknown focus strategy %q", name)
	}
	if !p.IsAvailable() {
		return nil, fmt.Errorf("focus strategy %q is not available on this system", name)
	}
	return p.GetStrategy()
}

// GetAllProviders returns all registered providers
func GetAllProviders() []FocusProvider {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	providers := make([]FocusProvider, len(globalRegistry.providers))
	copy(providers, globalRegistry.providers)
	return providers
}

// GetProvider returns a specific provider by name, or nil if not found
func GetProvider(name string) FocusProvider {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	for _, p := range globalRegistry.providers {
		if p.GetFocusInfo().Name == name {
			return p
		}
	}

	return nil
}

// ClearProviders removes all registered providers (primarily for testing)
func ClearProviders() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.providers = make([]FocusProvider, 0)
}
