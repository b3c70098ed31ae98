package common

import (
	"os"
	"path/filepath"
	"strings"
)

// Set at build time via -ldflags "-X ...". A .version file beside the
// binary fills in anything the build left at its default.
var (
	Version   = "dev"
	Build     = "unknown"
	GitCommit = "unknown"
)

func GetVersion() string   { return Version }
func GetBuild() string     { return Build }
func GetGitCommit() string { return GitCommit }

// LoadVersionFromFile reads the .version file next to the binary, if one
// exists, and applies it. A missing or unreadable file is not an error;
// the defaults stand.
func LoadVersionFromFile() {
	exe, err := os.Executable()
	if err != nil {
		return
	}
	data, err := os.ReadFile(filepath.Join(filepath.Dir(exe), ".version"))
	if err != nil {
		return
	}
	applyVersionFile(string(data))
}

// applyVersionFile parses "key: value" lines, recognising version, build
// and commit. ldflags-injected values win: a field is only overwritten
// while it still holds its default.
func applyVersionFile(content string) {
	fields := map[string]struct {
		dst *string
		def string
	}{
		"version": {&Version, "dev"},
		"build":   {&Build, "unknown"},
		"commit":  {&GitCommit, "unknown"},
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		f, known := fields[strings.TrimSpace(key)]
		if !known {
			continue
		}
		if val = strings.TrimSpace(val); val != "" && *f.dst == f.def {
			*f.dst = val
		}
	}
}
