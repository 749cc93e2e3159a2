// Package buildinfo exposes the program's build metadata.
//
// Version and Commit are set at link time:
//
//	go build -ldflags "-X github.com/ThoseGrapefruits/pacman/internal/buildinfo.Version=v1.2.0"
//
// When they are not, the module version recorded by the Go toolchain is used.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

const (
	Name        = "pacman"
	Author      = "ThoseGrapefruits"
	Description = "Eat every coin in the maze before the ghosts catch you."
)

var (
	Version = ""
	Commit  = ""
)

// Info is the resolved build metadata.
type Info struct {
	Name        string
	Version     string
	Commit      string
	Author      string
	Description string
}

// Get returns the build metadata, filling gaps from debug.ReadBuildInfo.
func Get() Info {
	info := Info{
		Name:        Name,
		Version:     Version,
		Commit:      Commit,
		Author:      Author,
		Description: Description,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && info.Commit == "" {
				info.Commit = s.Value
			}
		}
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	if len(info.Commit) > 12 {
		info.Commit = info.Commit[:12]
	}
	return info
}

// String formats the metadata as "pacman v1.2.0 (abc123)".
func (i Info) String() string {
	if i.Commit == "" {
		return fmt.Sprintf("%s %s", i.Name, i.Version)
	}
	return fmt.Sprintf("%s %s (%s)", i.Name, i.Version, i.Commit)
}
