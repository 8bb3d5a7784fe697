// pkg/apt/script.go
package apt

import "github.com/arc-language/packstack/pkg/script"

// Generate renders the bash script that installs pkgs with apt. title
// names the distribution, e.g. "Ubuntu" or "Debian".
func Generate(title string, pkgs []string, meta script.Meta) string {
	return script.Bash(Plan(title, pkgs, meta))
}

// Plan builds the script plan for pkgs without rendering it
func Plan(title string, pkgs []string, meta script.Meta) *script.Plan {
	return &script.Plan{
		Meta:    meta,
		Title:   title,
		Helpers: script.PresenceHelper(presenceQuery),
		Setup: []script.Step{
			script.BestEffort(
				"Update package list",
				"Updating package list...",
				refreshCommand,
				"Package list updated.",
				"Package list update failed; continuing with cached lists.",
			),
		},
		Groups: []script.Group{{
			Comment:  "Install packages",
			Var:      "packages",
			Packages: pkgs,
			Check:    `pkg_installed "$pkg"`,
			Install:  installCommand,
		}},
	}
}

// Command returns a standalone install command for pkg
func Command(pkg string) string {
	return "sudo apt install -y " + pkg
}
