// Package misc holds program identity values, some of them are set by linker
// at build time.
package misc

import (
	"runtime/debug"
)

const appName = "fanyi"

var (
	version = "dev"
	gitHash = ""
)

// GetAppName returns program name used in logs, messages and file names.
func GetAppName() string {
	return appName
}

// GetVersion returns program version (-ldflags "-X fanyi/misc.version=...").
func GetVersion() string {
	if version != "dev" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return version
}

// GetGitHash returns vcs revision program was built from, if known.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				if len(s.Value) > 8 {
					return s.Value[:8]
				}
				return s.Value
			}
		}
	}
	return "unknown"
}
