// pkg/script/bash.go
package script

import (
	"fmt"
	"strings"
)

const rule = `echo "========================================"`

// Bash renders the plan as a bash script
func Bash(p *Plan) string {
	var b Builder

	header := []string{
		"#!/bin/bash",
		fmt.Sprintf("# %s Installation Script for %s", Product, comment(p.Title)),
		"# Generated on " + p.timestamp(),
		"# This script is idempotent and safe to run multiple times",
	}
	if len(p.Skipped) > 0 {
		header = append(header, "# Skipped (no install command for this platform): "+comment(strings.Join(p.Skipped, ", ")))
	}
	b.Section(header...)

	b.Section("set -e")

	b.Section(
		"# Colors for output",
		`RED=$'\033[0;31m'`,
		`GREEN=$'\033[0;32m'`,
		`YELLOW=$'\033[1;33m'`,
		`CYAN=$'\033[0;36m'`,
		`NC=$'\033[0m' # No Color`,
	)

	b.Section(
		`echo ""`,
		rule,
		fmt.Sprintf(`echo "  %s %s Installer"`, Product, bashText(p.Title)),
		rule,
		`echo ""`,
		fmt.Sprintf(`echo "Preparing to install %d package(s)..."`, p.Total()),
		`echo ""`,
	)

	b.Section(
		"# Track installation results",
		"success_count=0",
		"failed_count=0",
		"failed_packages=()",
		fmt.Sprintf("total_count=%d", p.Total()),
		"current_index=0",
	)

	b.Section(
		"record_success() {",
		"    success_count=$((success_count + 1))",
		"}",
		"",
		"record_failure() {",
		`    failed_packages+=("$1")`,
		"    failed_count=$((failed_count + 1))",
		"}",
	)
	if len(p.Helpers) > 0 {
		b.Section(p.Helpers...)
	}

	for _, step := range p.Setup {
		lines := []string{"# " + comment(step.Comment)}
		b.Section(append(lines, step.Lines...)...)
	}

	b.Section(
		"# Each package records its own failure; keep going",
		"set +e",
	)

	for i := range p.Groups {
		b.Section(bashGroup(&p.Groups[i])...)
	}

	b.Section(bashSummary()...)

	return b.String()
}

func bashGroup(g *Group) []string {
	lines := []string{}
	if g.Comment != "" {
		lines = append(lines, "# "+comment(g.Comment))
	}
	if len(g.Packages) == 0 && g.EmptyNote != "" {
		return append(lines, "# "+comment(g.EmptyNote))
	}

	lines = append(lines,
		BashArray(g.Var, g.Packages),
		fmt.Sprintf(`for pkg in "${%s[@]}"; do`, g.Var),
		"    current_index=$((current_index + 1))",
		`    echo "${CYAN}[$current_index/$total_count] Installing: $pkg${NC}"`,
		"",
		fmt.Sprintf("    if %s; then", g.Check),
		`        echo "${YELLOW}  Already installed (skipped): $pkg${NC}"`,
		"        record_success",
		fmt.Sprintf("    elif %s 2>&1; then", g.Install),
	)
	lines = append(lines, Indent(2, verifyBlock(g.verify(), "")...)...)

	if g.Fallback != nil {
		lines = append(lines, fmt.Sprintf("    elif %s 2>&1; then", g.Fallback.Install))
		lines = append(lines, Indent(2, verifyBlock(g.verify(), g.Fallback.Source)...)...)
	}

	lines = append(lines,
		"    else",
		`        echo "${RED}  Failed to install: $pkg${NC}"`,
	)
	if g.Fallback != nil && g.Fallback.Hint != "" {
		lines = append(lines, fmt.Sprintf(`        echo "${YELLOW}  %s${NC}"`, bashText(g.Fallback.Hint)))
	}
	lines = append(lines,
		`        record_failure "$pkg"`,
		"    fi",
		`    echo ""`,
		"done",
	)
	return lines
}

// verifyBlock re-checks the package after a successful install command
func verifyBlock(verify, source string) []string {
	success := "Successfully installed"
	if source != "" {
		success += " (" + bashText(source) + ")"
	}
	return []string{
		fmt.Sprintf("if %s; then", verify),
		fmt.Sprintf(`    echo "${GREEN}  %s: $pkg${NC}"`, success),
		"    record_success",
		"else",
		`    echo "${RED}  Installation completed but package not found: $pkg${NC}"`,
		`    record_failure "$pkg"`,
		"fi",
	}
}

func bashSummary() []string {
	return []string{
		"# Summary",
		rule,
		`echo "  Installation Summary"`,
		rule,
		`echo ""`,
		`echo "${GREEN}Successfully installed: $success_count${NC}"`,
		`if [ "$failed_count" -gt 0 ]; then`,
		`    echo "${RED}Failed installations: $failed_count${NC}"`,
		`    echo ""`,
		`    echo "Failed packages:"`,
		`    for pkg in "${failed_packages[@]}"; do`,
		`        echo "${RED}  - $pkg${NC}"`,
		"    done",
		"fi",
		`echo ""`,
		"",
		`if [ "$failed_count" -eq 0 ]; then`,
		`    echo "${GREEN}All packages installed successfully!${NC}"`,
		"else",
		`    echo "${YELLOW}Some packages failed to install. Please check the errors above.${NC}"`,
		"fi",
		"",
		`echo ""`,
		"if [ -t 0 ]; then",
		`    read -r -p "Press Enter to exit..." _`,
		"fi",
		"",
		`if [ "$failed_count" -gt 0 ]; then`,
		"    exit 1",
		"fi",
		"exit 0",
	}
}

// bashText escapes text for use inside a double-quoted echo
func bashText(s string) string {
	return strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"$", `\$`,
		"`", "\\`",
		"\n", " ",
		"\r", " ",
	).Replace(s)
}
