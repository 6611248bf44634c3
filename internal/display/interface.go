package display

import (
	"context"
)

// FocusStrategy brings the overlay's window to the foreground. It is invoked
// once, after the overlay has been presented.
type FocusStrategy interface {
	// Name identifies the strategy in logs and settings
	Name() string

	// Focus requests keyboard focus for the overlay window
	Focus(ctx context.Context) error
}

// NoopFocus is the default strategy: it leaves focus to the window manager
type NoopFocus struct{}

var _ FocusStrategy = NoopFocus{}

// Name returns "none"
func (NoopFocus) Name() string {
	return StrategyNone
}

// Focus does nothing
func (NoopFocus) Focus(context.Context) error {
	return nil
}

// Strategy names accepted in settings
const (
	StrategyAuto = "auto"
	StrategyNone = "none"
)

// FocusProvider creates FocusStrategy instances for a specific display server or platform
type FocusProvider interface {
	// GetStrategy creates the strategy for the current session
	GetStrategy() (FocusStrategy, error)

	// GetFocusInfo returns information about the provider
	GetFocusInfo() FocusInfo

	// IsAvailable returns true if this provider can work on the current system
	IsAvailable() bool
}

// FocusInfo contains metadata about a focus provider
type FocusInfo struct {
	Name        string // "x11", "native"
	Description string
}
