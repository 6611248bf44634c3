package native

import (
	"errors"
	"fmt"
	"os"

	display "github.com/inference-gateway/cheat/internal/display"
	process "github.com/shirou/gopsutil/v4/process"
)

// Name is the strategy name used in settings
const Name = "native"

// maxAncestorDepth bounds the walk up the process tree
const maxAncestorDepth = 32

var errUnsupported = errors.New("native focus is not available on this platform")

// Provider implements the display.FocusProvider interface for platforms with a
// process-level window activation API
type Provider struct {
	windows *windowSystem
	parent  func(pid int) (int, error)
	start   func() int
}

var _ display.FocusProvider = (*Provider)(nil)

// NewProvider creates a new native provider
func NewProvider() *Provider {
	return &Provider{
		windows: platform,
		parent:  parentPID,
		start:   os.Getppid,
	}
}

// GetStrategy creates a focuser for the terminal window hosting the overlay.
// The shell that launched cheat owns no window, so the nearest ancestor that
// does is taken as the terminal.
func (p *Provider) GetStrategy() (display.FocusStrategy, error) {
	if p.windows == nil {
		return nil, errUnsupported
	}

	owner, err := findWindowOwner(p.start(), p.parent, p.windows.ownsWindow)
	if err != nil {
		return nil, err
	}
	return newFocuser(owner, p.windows), nil
}

// GetFocusInfo returns information about the native provider
func (p *Provider) GetFocusInfo() display.FocusInfo {
	return display.FocusInfo{
		Name:        Name,
		Description: "activate the terminal application that hosts the overlay",
	}
}

// IsAvailable returns true on platforms with a native implementation
func (p *Provider) IsAvailable() bool {
	return p.windows != nil
}

// findWindowOwner returns pid or its closest ancestor that owns a window
func findWindowOwner(pid int, parent func(int) (int, error), ownsWindow func(int) bool) (int, error) {
	start := pid
	for depth := 0; depth < maxAncestorDepth && pid > 1; depth++ {
		if ownsWindow(pid) {
			return pid, nil
		}

		next, err := parent(pid)
		if err != nil {
			return 0, fmt.Errorf("failed to read parent of process %d: %w", pid, err)
		}
		if next == pid {
			break
		}
		pid = next
	}
	return 0, fmt.Errorf("no ancestor of process %d owns a window", start)
}

// parentPID looks up the parent of pid in the process table
func parentPID(pid int) (int, error) {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return 0, err
	}
	ppid, err := proc.Ppid()
	if err != nil {
		return 0, err
	}
	return int(ppid), nil
}

func init() {
	display.Register(NewProvider())
}
