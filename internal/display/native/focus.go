//go:build darwin || windows

package native

import (
	robotgo "github.com/go-vgo/robotgo"
)

var platform = &windowSystem{
	ownsWindow: func(pid int) bool {
		if robotgo.GetTitle(pid) != "" {
			return true
		}
		_, _, w, h := robotgo.GetBounds(pid)
		return w > 0 && h > 0
	},
	windowTitle: func(pid int) string {
		return robotgo.GetTitle(pid)
	},
	activeTitle: func() string {
		return robotgo.GetTitle()
	},
	activate: func(pid int) error {
		return robotgo.ActivePid(pid)
	},
}
