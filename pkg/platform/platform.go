// pkg/platform/platform.go
package platform

import (
	"fmt"
	"strings"
)

// ID identifies a target operating system for script generation
type ID string

const (
	Windows ID = "windows"
	MacOS   ID = "macos"
	Linux   ID = "linux"

	// Linux distributions. Each is a specialization of Linux.
	Ubuntu ID = "ubuntu"
	Arch   ID = "arch"
	Debian ID = "debian"
	Fedora ID = "fedora"
)

// All contains every supported platform in display order
var All = []ID{
	Windows,
	MacOS,
	Linux,
	Ubuntu,
	Arch,
	Debian,
	Fedora,
}

// Distros contains the Linux distributions that fall back to the generic Linux entry
var Distros = []ID{
	Ubuntu,
	Arch,
	Debian,
	Fedora,
}

// Parse converts a user supplied string into a platform ID
func Parse(s string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	if !id.IsValid() {
		return "", fmt.Errorf("unknown platform %q (expected one of %s)", s, strings.Join(Names(), ", "))
	}
	return id, nil
}

// Names returns the string form of every supported platform
func Names() []string {
	names := make([]string, len(All))
	for i, id := range All {
		names[i] = string(id)
	}
	return names
}

// String returns the string representation of the platform
func (id ID) String() string {
	return string(id)
}

// IsValid checks if the platform is one of the supported ids
func (id ID) IsValid() bool {
	for _, valid := range All {
		if id == valid {
			return true
		}
	}
	return false
}

// IsDistro reports whether the platform is a Linux distribution
func (id ID) IsDistro() bool {
	for _, d := range Distros {
		if id == d {
			return true
		}
	}
	return false
}

// IsLinux reports whether the platform is generic Linux or a distribution of it
func (id ID) IsLinux() bool {
	return id == Linux || id.IsDistro()
}

// Chain returns the lookup order for install commands on this platform.
// Distributions try their own entry before the generic Linux one.
func (id ID) Chain() []ID {
	if id.IsDistro() {
		return []ID{id, Linux}
	}
	return []ID{id}
}

// DisplayName returns the human readable platform name.
// Unknown ids are returned unchanged.
func (id ID) DisplayName() string {
	switch id {
	case Windows:
		return "Windows"
	case MacOS:
		return "macOS"
	case Ubuntu:
		return "Ubuntu"
	case Arch:
		return "Arch Linux"
	case Debian:
		return "Debian"
	case Fedora:
		return "Fedora"
	case Linux:
		return "Linux"
	default:
		return string(id)
	}
}

// Manager returns the native package manager used for the platform.
// Generic Linux and unknown ids use apt.
func (id ID) Manager() string {
	switch id {
	case Windows:
		return "winget"
	case MacOS:
		return "brew"
	case Arch:
		return "pacman"
	case Fedora:
		return "dnf"
	default:
		return "apt"
	}
}
