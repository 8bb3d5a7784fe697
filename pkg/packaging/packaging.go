// Package packaging turns generated script text into deliverable files
// and computes selection metadata such as the total download size.
package packaging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arc-language/packstack/pkg/apt"
	"github.com/arc-language/packstack/pkg/backend"
	"github.com/arc-language/packstack/pkg/brew"
	"github.com/arc-language/packstack/pkg/core"
	"github.com/arc-language/packstack/pkg/dnf"
	"github.com/arc-language/packstack/pkg/extract"
	"github.com/arc-language/packstack/pkg/pacman"
	"github.com/arc-language/packstack/pkg/platform"
	"github.com/arc-language/packstack/pkg/winget"
)

// Build generates the script for items and wraps it with its delivery metadata
func Build(items []core.Item, id platform.ID, opts ...backend.Option) *core.GeneratedScript {
	return &core.GeneratedScript{
		Platform: id,
		Filename: ScriptName(id),
		MIMEType: MIMEType(id),
		Content:  backend.GenerateScriptContent(items, id, opts...),
	}
}

// Write copies the script content to w unchanged
func Write(w io.Writer, s *core.GeneratedScript) (int, error) {
	return io.WriteString(w, s.Content)
}

// Save writes the script into dir under its file name and returns the path
func Save(s *core.GeneratedScript, dir string) (string, error) {
	return SaveCompressed(s, dir, CompressionNone)
}

// SaveCompressed writes the script into dir encoded with c. The file name
// gets the compression suffix.
func SaveCompressed(s *core.GeneratedScript, dir string, c Compression) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, s.Filename+c.Suffix())
	mode := os.FileMode(0o644)
	if c == CompressionNone && filepath.Ext(s.Filename) == ".sh" {
		mode = 0o755
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Compress(f, s.Content, c); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

// TotalSize sums the size estimates of items in MB. Unknown sizes count as zero.
func TotalSize(items []core.Item) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Size()
	}
	return total
}

// FormatSize renders a size in MB, switching to GB with one decimal at 1024 MB
func FormatSize(mb float64) string {
	if mb < 1024 {
		return strconv.FormatFloat(mb, 'f', -1, 64) + " MB"
	}
	return fmt.Sprintf("%.1f GB", mb/1024)
}

// OneLiner joins the install command of every item for id with " && ".
// Items without a command are left out; the result is "" when none remain.
func OneLiner(items []core.Item, id platform.ID) string {
	var cmds []string
	for _, item := range items {
		if cmd := Command(item, id); cmd != "" {
			cmds = append(cmds, cmd)
		}
	}
	return strings.Join(cmds, " && ")
}

// Command returns the install command for one item on id. Curated items
// use their catalog command; discovered ones get the manager's standard
// install invocation.
func Command(item core.Item, id platform.ID) string {
	switch it := item.(type) {
	case *core.CuratedPackage:
		return extract.Command(it, id)
	case *core.DiscoveredPackage:
		name := extract.Identifier(it, id)
		if name == "" {
			return ""
		}
		switch id.Manager() {
		case "winget":
			return winget.Command(name)
		case "brew":
			return brew.Command(brew.Package{Name: name, Cask: brew.IsCask(it.Repository, it.Name, name)})
		case "pacman":
			return pacman.Command(name)
		case "dnf":
			return dnf.Command(name)
		default:
			return apt.Command(name)
		}
	default:
		return ""
	}
}
