// Package buildinfo identifies the running build in the window title and
// the startup log line.
package buildinfo

import "runtime/debug"

// Version and Commit may be set at link time:
//
//	go build -ldflags "-X lcdkit/internal/buildinfo.Version=v0.3.0"
var (
	Version = "dev"
	Commit  = ""
)

// Short returns the release version if one was linked in, else the first
// 7 characters of the commit, else "dev". The commit falls back to the VCS
// revision the go command stamps into the binary.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	c := Commit
	if c == "" {
		c = vcsRevision()
	}
	if c == "" {
		return "dev"
	}
	if len(c) > 7 {
		c = c[:7]
	}
	return c
}

func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
