// Package extract derives package manager identifiers from catalog items
package extract

import (
	"strings"

	"github.com/arc-language/packstack/pkg/apt"
	"github.com/arc-language/packstack/pkg/brew"
	"github.com/arc-language/packstack/pkg/core"
	"github.com/arc-language/packstack/pkg/dnf"
	"github.com/arc-language/packstack/pkg/pacman"
	"github.com/arc-language/packstack/pkg/platform"
	"github.com/arc-language/packstack/pkg/winget"
)

// Install returns the install entry for id, trying a distribution's own
// entry before the generic Linux one
func Install(p *core.CuratedPackage, id platform.ID) (core.PlatformInstall, bool) {
	for _, candidate := range id.Chain() {
		if inst, ok := p.Platforms[candidate]; ok && strings.TrimSpace(inst.Command) != "" {
			return inst, true
		}
	}
	return core.PlatformInstall{}, false
}

// Command returns the install command for id, or "" when there is none
func Command(p *core.CuratedPackage, id platform.ID) string {
	inst, ok := Install(p, id)
	if !ok {
		return ""
	}
	return strings.TrimSpace(inst.Command)
}

// Identifier returns the identifier item installs under on id.
// Discovered packages carry it directly; curated ones are parsed from
// their install command with the rule of the platform's manager.
// It returns "" when nothing can be resolved.
func Identifier(item core.Item, id platform.ID) string {
	switch it := item.(type) {
	case *core.DiscoveredPackage:
		return strings.TrimSpace(it.Identifier)
	case *core.CuratedPackage:
		inst, ok := Install(it, id)
		if !ok {
			return ""
		}
		if name := strings.TrimSpace(inst.PackageName); name != "" {
			return name
		}
		return Parse(inst.Command, id.Manager())
	default:
		return ""
	}
}

// Parse applies the token rule of manager to cmd. Unknown managers and
// unparsable commands yield "".
func Parse(cmd, manager string) string {
	switch manager {
	case "winget":
		return winget.ParseInstallCommand(cmd)
	case "brew":
		name, _ := brew.ParseInstallCommand(cmd)
		return name
	case "apt":
		return apt.ParseInstallCommand(cmd)
	case "pacman":
		return pacman.ParseInstallCommand(cmd)
	case "dnf":
		return dnf.ParseInstallCommand(cmd)
	default:
		return ""
	}
}

// Identifiers resolves every item in order. Items without an identifier
// are returned in skipped and left out of ids.
func Identifiers(items []core.Item, id platform.ID) (ids []string, skipped []core.Item) {
	for _, item := range items {
		if ident := Identifier(item, id); ident != "" {
			ids = append(ids, ident)
		} else {
			skipped = append(skipped, item)
		}
	}
	return ids, skipped
}

// Titles returns the display name of each item, falling back to its id
func Titles(items []core.Item) []string {
	titles := make([]string, 0, len(items))
	for _, item := range items {
		title := item.Title()
		if title == "" {
			title = item.ID()
		}
		titles = append(titles, title)
	}
	return titles
}
