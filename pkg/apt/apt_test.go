package apt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arc-language/packstack/pkg/script"
)

func TestParseInstallCommand(t *testing.T) {
	tests := []struct {
		cmd  string
		want string
	}{
		{"sudo apt install -y ripgrep", "ripgrep"},
		{"sudo apt install git", "git"},
		{"sudo apt-get install -y build-essential git", "build-essential git"},
		{"apt install ripgrep -y", "ripgrep"},
		{"sudo apt install -t bookworm-backports neovim", "neovim"},
		{"sudo apt update && sudo apt install -y curl", "curl"},
		{"sudo apt install -y curl && echo done", "curl"},
		{"sudo apt install", ""},
		{"sudo apt remove git", ""},
		{"sudo dnf install git", ""},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseInstallCommand(tt.cmd))
		})
	}
}

func TestGenerate(t *testing.T) {
	meta := script.Meta{
		Generated: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Skipped:   []string{"Spotify"},
	}
	out := Generate("Debian", []string{"git"}, meta)

	assert.True(t, strings.HasPrefix(out, "#!/bin/bash\n"))
	assert.Contains(t, out, "# PackStack Installation Script for Debian")
	assert.Contains(t, out, "# Skipped (no install command for this platform): Spotify")
	assert.Contains(t, out, "packages=('git')")
	assert.Contains(t, out, "apt update")
	assert.Contains(t, out, `dpkg -l "$name" 2>/dev/null | grep -q "^ii"`)
	assert.Contains(t, out, `    if pkg_installed "$pkg"; then`)
	assert.Contains(t, out, "    elif sudo apt install -y $pkg 2>&1; then")

	// the refresh may fail without aborting
	assert.Contains(t, out, "if sudo apt update -qq; then")
}

func TestGenerate_Ubuntu(t *testing.T) {
	out := Generate("Ubuntu", []string{"build-essential git", "curl"}, script.Meta{})
	assert.Contains(t, out, "PackStack Ubuntu Installer")
	assert.Contains(t, out, "packages=('build-essential git' 'curl')")
	assert.Contains(t, out, "total_count=2")
}

func TestCommand_RoundTrip(t *testing.T) {
	assert.Equal(t, "sudo apt install -y ripgrep", Command("ripgrep"))
	assert.Equal(t, "build-essential git", ParseInstallCommand(Command("build-essential git")))
}
