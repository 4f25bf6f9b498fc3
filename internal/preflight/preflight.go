package preflight

import (
	"ytmeta/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the directory preflight checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckDirectoryAccess("Scratch directory", cfg.ScratchParent()),
		CheckDirectoryAccess("Keep directory", cfg.Paths.KeepDir),
	}
}
