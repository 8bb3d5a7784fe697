package script

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixed = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func samplePlan() *Plan {
	return &Plan{
		Meta:  Meta{Generated: fixed, Skipped: []string{"Ghost"}},
		Title: "Test",
		Setup: []Step{
			{Comment: "Refresh", Lines: []string{"refresh-cmd || true"}},
		},
		Groups: []Group{
			{
				Comment:  "Install packages",
				Var:      "packages",
				Packages: []string{"git", "it's"},
				Check:    `probe "$pkg"`,
				Install:  `installer "$pkg"`,
			},
		},
	}
}

func TestBuilder(t *testing.T) {
	var b Builder
	b.Section("a", "b").Section().Section("c")
	b.Append("d")

	assert.Equal(t, 2, b.Len())
	assert.Equal(t, "a\nb\n\nc\nd\n", b.String())
}

func TestIndent(t *testing.T) {
	assert.Equal(t, []string{"        x", "", "        y"}, Indent(2, "x", "", "y"))
}

func TestQuoting(t *testing.T) {
	assert.Equal(t, `'plain'`, ShellQuote("plain"))
	assert.Equal(t, `'it'\''s'`, ShellQuote("it's"))
	assert.Equal(t, `'it''s'`, PowerShellQuote("it's"))
	assert.Equal(t, `packages=('git')`, BashArray("packages", []string{"git"}))
	assert.Equal(t, `packages=()`, BashArray("packages", nil))
	assert.Equal(t, `$packages = @('A.B', 'C.D')`, PowerShellArray("packages", []string{"A.B", "C.D"}))
}

func TestBash_Structure(t *testing.T) {
	out := Bash(samplePlan())

	assert.True(t, strings.HasPrefix(out, "#!/bin/bash\n"))
	assert.Contains(t, out, "# Generated on 2026-01-02T03:04:05Z")
	assert.Contains(t, out, "# Skipped (no install command for this platform): Ghost")
	assert.Contains(t, out, `packages=('git' 'it'\''s')`)
	assert.Contains(t, out, "total_count=2")
	assert.Contains(t, out, `echo "Preparing to install 2 package(s)..."`)
	assert.Contains(t, out, `    if probe "$pkg"; then`)
	assert.Contains(t, out, `    elif installer "$pkg" 2>&1; then`)
	assert.Contains(t, out, "Installation completed but package not found")
	assert.Contains(t, out, "All packages installed successfully!")
	assert.Contains(t, out, "Some packages failed to install")
	assert.True(t, strings.HasSuffix(out, "exit 0\n"))

	// set -e covers setup only
	setE := strings.Index(out, "set -e\n")
	setup := strings.Index(out, "refresh-cmd || true")
	setPlusE := strings.Index(out, "set +e\n")
	loop := strings.Index(out, "for pkg in")
	assert.True(t, setE < setup && setup < setPlusE && setPlusE < loop)
}

func TestBash_Fallback(t *testing.T) {
	p := samplePlan()
	p.Groups[0].Fallback = &Fallback{
		Install: `helper -S "$pkg"`,
		Source:  "from AUR",
		Hint:    "Package may need to be installed manually",
	}
	p.Groups[0].Verify = `verify "$pkg"`

	out := Bash(p)
	assert.Contains(t, out, `    elif helper -S "$pkg" 2>&1; then`)
	assert.Contains(t, out, "Successfully installed (from AUR): $pkg")
	assert.Contains(t, out, "Package may need to be installed manually")
	assert.Contains(t, out, `        if verify "$pkg"; then`)
}

func TestBash_EmptyGroupNote(t *testing.T) {
	p := samplePlan()
	p.Groups = append(p.Groups, Group{Var: "casks", EmptyNote: "No cask packages selected"})

	out := Bash(p)
	assert.Contains(t, out, "# No cask packages selected")
	assert.NotContains(t, out, "casks=(")
}

func TestBash_Deterministic(t *testing.T) {
	assert.Equal(t, Bash(samplePlan()), Bash(samplePlan()))
}

func TestPowerShell_Structure(t *testing.T) {
	p := samplePlan()
	p.Groups[0].Check = "Test-PackageInstalled $pkg"
	p.Groups[0].Install = "installer --id $pkg"

	out := PowerShell(p)
	assert.True(t, strings.HasPrefix(out, "# PackStack Installation Script for Test\n"))
	assert.Contains(t, out, `$packages = @('git', 'it''s')`)
	assert.Contains(t, out, "$totalCount = 2")
	assert.Contains(t, out, "        if (Test-PackageInstalled $pkg) {")
	assert.Contains(t, out, "            installer --id $pkg")
	assert.Contains(t, out, "    } catch {")
	assert.Contains(t, out, `Read-Host "Press Enter to exit"`)

	stop := strings.Index(out, `$ErrorActionPreference = "Stop"`)
	cont := strings.Index(out, `$ErrorActionPreference = "Continue"`)
	loop := strings.Index(out, "foreach ($pkg in $packages)")
	assert.True(t, stop < cont && cont < loop)
}

func TestTextEscaping(t *testing.T) {
	assert.Equal(t, `a \"b\" \$c`, bashText(`a "b" $c`))
	assert.Equal(t, "a `\"b`\" `$c", psText(`a "b" $c`))
	assert.Equal(t, "one two", comment("one\ntwo"))
}

func TestPresenceHelper(t *testing.T) {
	lines := PresenceHelper(`rpm -q "$name" &> /dev/null`)
	assert.Equal(t, "pkg_installed() {", lines[0])
	assert.Contains(t, lines, `        rpm -q "$name" &> /dev/null || return 1`)
}

func TestBestEffort(t *testing.T) {
	step := BestEffort("Refresh", "Refreshing...", "sudo refresh", "Done.", "Refresh failed; continuing.")
	assert.Equal(t, "Refresh", step.Comment)
	assert.Contains(t, step.Lines, "if sudo refresh; then")
	assert.Contains(t, step.Lines, `    echo "${YELLOW}Refresh failed; continuing.${NC}"`)
}
