//go:build !darwin && !windows

package native

// platform is nil: there is no process-level activation API here
var platform *windowSystem
