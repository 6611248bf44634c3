package native

import (
	"context"
	"fmt"

	logger "github.com/inference-gateway/cheat/internal/logger"
	zap "go.uber.org/zap"
)

// windowSystem is the window API of the platform, nil where none exists
type windowSystem struct {
	ownsWindow  func(pid int) bool
	windowTitle func(pid int) string
	activeTitle func() string
	activate    func(pid int) error
}

// Focuser brings the terminal application hosting the overlay to the foreground
type Focuser struct {
	pid     int
	windows *windowSystem
}

func newFocuser(pid int, windows *windowSystem) *Focuser {
	return &Focuser{pid: pid, windows: windows}
}

// Name returns "native"
func (f *Focuser) Name() string {
	return Name
}

// Focus activates the terminal unless its window is already the active one
func (f *Focuser) Focus(ctx context.Context) error {
	log := logger.L(ctx).With(zap.Int("pid", f.pid))

	if title := f.windows.windowTitle(f.pid); title != "" && title == f.windows.activeTitle() {
		log.Debug("terminal already in foreground", zap.String("title", title))
		return nil
	}

	if err := f.windows.activate(f.pid); err != nil {
		return fmt.Errorf("failed to activate process %d: %w", f.pid, err)
	}
	log.Debug("activated terminal")
	return nil
}
