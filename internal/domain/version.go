package domain

import "fmt"

// VersionInfo contains build-time version information
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// String renders the version block printed by the version command
func (v VersionInfo) String() string {
	return fmt.Sprintf("cheat version %s\ncommit: %s\nbuilt at: %s", v.Version, v.Commit, v.Date)
}
