package x11

import (
	"context"
	"fmt"
	"os"
	"strconv"

	xproto "github.com/BurntSushi/xgb/xproto"
	display "github.com/inference-gateway/cheat/internal/display"
	logger "github.com/inference-gateway/cheat/internal/logger"
	zap "go.uber.org/zap"
)

// Name is the strategy name used in settings
const Name = "x11"

// Focuser activates the terminal window hosting the overlay, identified by
// $WINDOWID, when another window holds focus
type Focuser struct {
	display string
	window  xproto.Window
}

var _ display.FocusStrategy = (*Focuser)(nil)

// NewFocuser creates a focuser for window on display
func NewFocuser(displayName string, window xproto.Window) *Focuser {
	return &Focuser{display: displayName, window: window}
}

// Name returns "x11"
func (f *Focuser) Name() string {
	return Name
}

// Focus requests activation unless the window is already active
func (f *Focuser) Focus(ctx context.Context) error {
	client, err := NewX11Client(f.display)
	if err != nil {
		return err
	}
	defer client.Close()

	active, err := client.ActiveWindow()
	if err == nil && active == f.window {
		logger.L(ctx).Debug("overlay window already active", zap.Uint32("window", uint32(f.window)))
		return nil
	}

	return client.Activate(f.window)
}

// Provider implements the display.FocusProvider interface for X11
type Provider struct{}

var _ display.FocusProvider = (*Provider)(nil)

// NewProvider creates a new X11 provider
func NewProvider() *Provider {
	return &Provider{}
}

// GetStrategy creates a focuser for the terminal window of this session
func (p *Provider) GetStrategy() (display.FocusStrategy, error) {
	win, err := terminalWindow()
	if err != nil {
		return nil, err
	}
	return NewFocuser(os.Getenv("DISPLAY"), win), nil
}

// GetFocusInfo returns information about the X11 provider
func (p *Provider) GetFocusInfo() display.FocusInfo {
	return display.FocusInfo{
		Name:        Name,
		Description: "activate the terminal window via _NET_ACTIVE_WINDOW",
	}
}

// IsAvailable returns true when running under X11 in a terminal that exports WINDOWID
func (p *Provider) IsAvailable() bool {
	if os.Getenv("DISPLAY") == "" || os.Getenv("WAYLAND_DISPLAY") != "" {
		return false
	}
	_, err := terminalWindow()
	return err == nil
}

func terminalWindow() (xproto.Window, error) {
	raw := os.Getenv("WINDOWID")
	if raw == "" {
		return 0, fmt.Errorf("WINDOWID is not set")
	}
	id, err := strconv.ParseUint(raw, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid WINDOWID %q: %w", raw, err)
	}
	return xproto.Window(id), nil
}

func init() {
	display.Register(NewProvider())
}
