// pkg/winget/script.go
package winget

import (
	"fmt"
	"strings"

	"github.com/arc-language/packstack/pkg/script"
)

// Title is the platform name shown in generated scripts
const Title = "Windows"

// Generate renders the PowerShell script that installs ids with winget
func Generate(ids []string, meta script.Meta) string {
	return script.PowerShell(Plan(ids, meta))
}

// Plan builds the script plan for ids without rendering it
func Plan(ids []string, meta script.Meta) *script.Plan {
	return &script.Plan{
		Meta:    meta,
		Title:   Title,
		Helpers: presenceHelper(),
		Setup: []script.Step{
			adminStep(),
			bootstrapStep(),
			sourceUpdateStep(),
		},
		Groups: []script.Group{{
			Comment:  "Install packages",
			Var:      "packages",
			Packages: ids,
			Check:    "Test-PackageInstalled $pkg",
			Install:  installCommand("$pkg") + " 2>&1 | Out-Host",
			Verify:   "Test-PackageInstalled $pkg",
		}},
	}
}

func installCommand(id string) string {
	return fmt.Sprintf("%s install --id %s %s", Binary, id, strings.Join(InstallFlags, " "))
}

func presenceHelper() []string {
	return []string{
		"function Test-PackageInstalled {",
		"    param([string]$Id)",
		"    $null = winget list --id $Id -e --accept-source-agreements 2>&1",
		"    return ($LASTEXITCODE -eq 0)",
		"}",
	}
}

func adminStep() script.Step {
	return script.Step{
		Comment: "Administrator check",
		Lines: []string{
			"$principal = New-Object Security.Principal.WindowsPrincipal([Security.Principal.WindowsIdentity]::GetCurrent())",
			"if (-not $principal.IsInRole([Security.Principal.WindowsBuiltInRole]::Administrator)) {",
			`    Write-Host "Warning: not running as Administrator. Some installs may prompt for elevation." -ForegroundColor Yellow`,
			`    Write-Host ""`,
			"}",
		},
	}
}

func bootstrapStep() script.Step {
	return script.Step{
		Comment: "Check for winget",
		Lines: []string{
			"if (-not (Get-Command winget -ErrorAction SilentlyContinue)) {",
			`    Write-Host "winget is not installed." -ForegroundColor Red`,
			`    Write-Host "Opening the Microsoft Store to install App Installer..." -ForegroundColor Yellow`,
			fmt.Sprintf(`    Start-Process "%s"`, StoreURL),
			`    Write-Host ""`,
			`    Read-Host "Install App Installer, then press Enter to exit and run this script again"`,
			"    exit 1",
			"}",
			`Write-Host "Windows Package Manager found: $(winget --version)" -ForegroundColor Green`,
			`Write-Host ""`,
		},
	}
}

func sourceUpdateStep() script.Step {
	return script.Step{
		Comment: "Update winget sources",
		Lines: []string{
			`Write-Host "Updating winget sources..." -ForegroundColor Cyan`,
			"try {",
			"    winget source update | Out-Null",
			"} catch {",
			`    Write-Host "Source update failed; continuing with cached sources." -ForegroundColor Yellow`,
			"}",
			`Write-Host ""`,
		},
	}
}

// Command returns a standalone install command for id
func Command(id string) string {
	return installCommand(id)
}
