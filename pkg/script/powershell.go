// pkg/script/powershell.go
package script

import (
	"fmt"
	"strings"
)

const psRule = `Write-Host "========================================" -ForegroundColor Cyan`

// PowerShell renders the plan as a PowerShell script.
// Check and Verify are boolean expressions; Install is a statement whose
// exit code is read from $LASTEXITCODE.
func PowerShell(p *Plan) string {
	var b Builder

	header := []string{
		fmt.Sprintf("# %s Installation Script for %s", Product, comment(p.Title)),
		"# Generated on " + p.timestamp(),
		"# This script is idempotent and safe to run multiple times",
	}
	if len(p.Skipped) > 0 {
		header = append(header, "# Skipped (no install command for this platform): "+comment(strings.Join(p.Skipped, ", ")))
	}
	b.Section(header...)

	b.Section(`$ErrorActionPreference = "Stop"`)

	b.Section(
		psRule,
		fmt.Sprintf(`Write-Host "  %s %s Installer" -ForegroundColor Cyan`, Product, psText(p.Title)),
		psRule,
		`Write-Host ""`,
		fmt.Sprintf(`Write-Host "Preparing to install %d package(s)..." -ForegroundColor Green`, p.Total()),
		`Write-Host ""`,
	)

	if len(p.Helpers) > 0 {
		b.Section(p.Helpers...)
	}

	for _, step := range p.Setup {
		lines := []string{"# " + comment(step.Comment)}
		b.Section(append(lines, step.Lines...)...)
	}

	b.Section(
		"# Track installation results",
		"$successCount = 0",
		"$failedCount = 0",
		"$failedPackages = @()",
		fmt.Sprintf("$totalCount = %d", p.Total()),
		"$currentIndex = 0",
	)

	b.Section(
		"# Each package records its own failure; keep going",
		`$ErrorActionPreference = "Continue"`,
	)

	for i := range p.Groups {
		b.Section(psGroup(&p.Groups[i])...)
	}

	b.Section(psSummary()...)

	return b.String()
}

func psGroup(g *Group) []string {
	lines := []string{}
	if g.Comment != "" {
		lines = append(lines, "# "+comment(g.Comment))
	}
	if len(g.Packages) == 0 && g.EmptyNote != "" {
		return append(lines, "# "+comment(g.EmptyNote))
	}

	lines = append(lines,
		PowerShellArray(g.Var, g.Packages),
		fmt.Sprintf("foreach ($pkg in $%s) {", g.Var),
		"    $currentIndex++",
		`    Write-Host "[$currentIndex/$totalCount] Installing: $pkg" -ForegroundColor Cyan`,
		"",
		"    try {",
		fmt.Sprintf("        if (%s) {", g.Check),
		`            Write-Host "  Already installed (skipped): $pkg" -ForegroundColor Yellow`,
		"            $successCount++",
		"        } else {",
		"            "+g.Install,
		"            $exitCode = $LASTEXITCODE",
		fmt.Sprintf("            if (%s) {", g.verify()),
		"                if ($exitCode -ne 0) {",
		`                    Write-Host "  Installer returned code $exitCode but the package is present" -ForegroundColor Yellow`,
		"                }",
		`                Write-Host "  Successfully installed: $pkg" -ForegroundColor Green`,
		"                $successCount++",
		"            } elseif ($exitCode -eq 0) {",
		`                Write-Host "  Installation completed but package not found: $pkg" -ForegroundColor Red`,
		"                $failedPackages += $pkg",
		"                $failedCount++",
		"            } else {",
		`                Write-Host "  Failed to install: $pkg (exit code $exitCode)" -ForegroundColor Red`,
		"                $failedPackages += $pkg",
		"                $failedCount++",
		"            }",
		"        }",
		"    } catch {",
		`        Write-Host "  Error installing ${pkg}: $($_.Exception.Message)" -ForegroundColor Red`,
		"        $failedPackages += $pkg",
		"        $failedCount++",
		"    }",
		"",
		`    Write-Host ""`,
		"}",
	)
	return lines
}

func psSummary() []string {
	return []string{
		"# Summary",
		psRule,
		`Write-Host "  Installation Summary" -ForegroundColor Cyan`,
		psRule,
		`Write-Host ""`,
		`Write-Host "Successfully installed: $successCount" -ForegroundColor Green`,
		"if ($failedCount -gt 0) {",
		`    Write-Host "Failed installations: $failedCount" -ForegroundColor Red`,
		`    Write-Host ""`,
		`    Write-Host "Failed packages:" -ForegroundColor Red`,
		`    $failedPackages | ForEach-Object { Write-Host "  - $_" -ForegroundColor Red }`,
		"}",
		`Write-Host ""`,
		"",
		"if ($failedCount -eq 0) {",
		`    Write-Host "All packages installed successfully!" -ForegroundColor Green`,
		"} else {",
		`    Write-Host "Some packages failed to install. Please check the errors above." -ForegroundColor Yellow`,
		"}",
		"",
		`Write-Host ""`,
		`Read-Host "Press Enter to exit"`,
		"",
		"if ($failedCount -gt 0) {",
		"    exit 1",
		"}",
		"exit 0",
	}
}

// psText escapes text for use inside a double-quoted PowerShell string
func psText(s string) string {
	return strings.NewReplacer(
		"`", "``",
		`"`, "`\"",
		"$", "`$",
		"\n", " ",
		"\r", " ",
	).Replace(s)
}
