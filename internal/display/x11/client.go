package x11

import (
	"fmt"
	"os"

	xproto "github.com/BurntSushi/xgb/xproto"
	xgbutil "github.com/BurntSushi/xgbutil"
	ewmh "github.com/BurntSushi/xgbutil/ewmh"
)

// X11Client wraps an X11 connection used to hand focus to a window
type X11Client struct {
	xu      *xgbutil.XUtil
	display string
}

// NewX11Client opens a connection to display
func NewX11Client(display string) (*X11Client, error) {
	// xgb prints connection diagnostics on stderr, which would land on top
	// of the overlay; silence it while connecting
	oldStderr := os.Stderr
	devNull, devErr := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if devErr == nil {
		os.Stderr = devNull
	}

	xu, err := xgbutil.NewConnDisplay(display)

	if devErr == nil {
		os.Stderr = oldStderr
		_ = devNull.Close()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11 display %s: %w", display, err)
	}

	return &X11Client{
		xu:      xu,
		display: display,
	}, nil
}

// Close closes the X11 connection
func (c *X11Client) Close() {
	if c.xu != nil {
		c.xu.Conn().Close()
	}
}

// ActiveWindow returns the window the window manager reports as active
func (c *X11Client) ActiveWindow() (xproto.Window, error) {
	win, err := ewmh.ActiveWindowGet(c.xu)
	if err != nil {
		return 0, fmt.Errorf("failed to read _NET_ACTIVE_WINDOW: %w", err)
	}
	return win, nil
}

// Activate asks the window manager to activate and raise win
func (c *X11Client) Activate(win xproto.Window) error {
	if err := ewmh.ActiveWindowReq(c.xu, win); err != nil {
		return fmt.Errorf("failed to request activation of window 0x%x: %w", uint32(win), err)
	}
	c.xu.Conn().Sync()
	return nil
}
