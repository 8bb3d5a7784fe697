package backend

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/packstack/pkg/core"
	"github.com/arc-language/packstack/pkg/platform"
)

var fixedClock = WithClock(func() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
})

func app(id string, cmds map[platform.ID]string) *core.CuratedPackage {
	p := &core.CuratedPackage{
		Identifier: id,
		Name:       strings.ToUpper(id[:1]) + id[1:],
		Platforms:  map[platform.ID]core.PlatformInstall{},
	}
	for plat, cmd := range cmds {
		p.Platforms[plat] = core.PlatformInstall{Command: cmd}
	}
	return p
}

func sampleItems() []core.Item {
	return []core.Item{
		app("git", map[platform.ID]string{
			platform.Windows: "winget install --id Git.Git -e",
			platform.MacOS:   "brew install git",
			platform.Linux:   "sudo apt install -y git",
			platform.Arch:    "sudo pacman -S --needed git",
			platform.Fedora:  "sudo dnf install -y git",
		}),
		app("spotify", map[platform.ID]string{
			platform.Windows: "winget install --id Spotify.Spotify",
			platform.MacOS:   "brew install --cask spotify",
		}),
		&core.DiscoveredPackage{Identifier: "ripgrep", Name: "ripgrep"},
	}
}

func TestGenerateScriptContent_Deterministic(t *testing.T) {
	for _, id := range append(platform.All, "solaris") {
		t.Run(string(id), func(t *testing.T) {
			first := GenerateScriptContent(sampleItems(), id, fixedClock)
			second := GenerateScriptContent(sampleItems(), id, fixedClock)
			assert.Equal(t, first, second)
		})
	}
}

func TestGenerateScriptContent_DeterministicIgnoringTimestamp(t *testing.T) {
	stripped := func(s string) string {
		var kept []string
		for _, line := range strings.Split(s, "\n") {
			if !strings.HasPrefix(line, "# Generated on ") {
				kept = append(kept, line)
			}
		}
		return strings.Join(kept, "\n")
	}

	later := WithClock(func() time.Time { return time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC) })
	for _, id := range platform.All {
		a := GenerateScriptContent(sampleItems(), id, fixedClock)
		b := GenerateScriptContent(sampleItems(), id, later)
		assert.NotEqual(t, a, b)
		assert.Equal(t, stripped(a), stripped(b))
	}
}

func TestGenerateScriptContent_Empty(t *testing.T) {
	for _, id := range append(platform.All, "", "solaris") {
		out := GenerateScriptContent(nil, id)
		assert.Equal(t, EmptyPlaceholder, out)
		assert.NotEmpty(t, out)

		assert.Equal(t, EmptyPlaceholder, GenerateScriptContent([]core.Item{}, id))
	}
}

func TestGenerateScriptContent_Debian(t *testing.T) {
	git := app("git", map[platform.ID]string{platform.Debian: "sudo apt install git"})
	out := GenerateScriptContent([]core.Item{git}, platform.Debian, fixedClock)

	assert.Contains(t, out, "packages=('git')")
	assert.Contains(t, out, "apt update")
	assert.Contains(t, out, `dpkg -l "$name"`)
	assert.Contains(t, out, "Installation Script for Debian")
	assert.Contains(t, out, "# Generated on 2026-03-01T12:00:00Z")
}

func TestGenerateScriptContent_SkipsUnresolved(t *testing.T) {
	out := GenerateScriptContent(sampleItems(), platform.Debian, fixedClock)

	assert.Contains(t, out, "packages=('git' 'ripgrep')")
	assert.Contains(t, out, "total_count=2")
	assert.Contains(t, out, "# Skipped (no install command for this platform): Spotify")
	assert.NotContains(t, out, "''")
}

func TestGenerateScriptContent_Routing(t *testing.T) {
	tests := []struct {
		id   platform.ID
		want []string
	}{
		{platform.Windows, []string{"$packages = @('Git.Git', 'Spotify.Spotify', 'ripgrep')", "winget install --id $pkg"}},
		{platform.MacOS, []string{"cask_packages=('spotify')", "regular_packages=('git' 'ripgrep')"}},
		{platform.Arch, []string{"packages=('git' 'ripgrep')", "pacman -Qi"}},
		{platform.Fedora, []string{"packages=('git' 'ripgrep')", "rpm -q"}},
		{platform.Ubuntu, []string{"Installation Script for Ubuntu", "dpkg -l"}},
		{platform.Linux, []string{"Installation Script for Ubuntu", "packages=('git' 'ripgrep')"}},
		{"solaris", []string{"Installation Script for Ubuntu", "dpkg -l"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			out := GenerateScriptContent(sampleItems(), tt.id, fixedClock)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestBrewBackend_CaskClassification(t *testing.T) {
	items := []core.Item{
		&core.DiscoveredPackage{Identifier: "curl-gui", Name: "curl-gui", Repository: "cask"},
		&core.DiscoveredPackage{Identifier: "spotify", Name: "spotify"},
		&core.DiscoveredPackage{Identifier: "curl", Name: "curl"},
	}
	out := GenerateScriptContent(items, platform.MacOS, fixedClock)

	assert.Contains(t, out, "cask_packages=('curl-gui' 'spotify')")
	assert.Contains(t, out, "regular_packages=('curl')")
}

func TestFor(t *testing.T) {
	tests := []struct {
		id   platform.ID
		want string
	}{
		{platform.Windows, "winget"},
		{platform.MacOS, "brew"},
		{platform.Ubuntu, "apt"},
		{platform.Debian, "apt"},
		{platform.Linux, "apt"},
		{platform.Arch, "pacman"},
		{platform.Fedora, "dnf"},
		{"beos", "apt"},
	}

	for _, tt := range tests {
		b := For(tt.id)
		require.NotNil(t, b)
		assert.Equal(t, tt.want, b.Name(), string(tt.id))
	}
}

func TestAll_CoversEveryPlatform(t *testing.T) {
	served := map[platform.ID]bool{}
	for _, b := range All(fixedClock) {
		for _, id := range b.Platforms() {
			assert.False(t, served[id], "platform %s served twice", id)
			served[id] = true
		}
	}
	for _, id := range platform.All {
		assert.True(t, served[id], "platform %s not served", id)
	}
}
