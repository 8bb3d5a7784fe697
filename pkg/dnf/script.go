// pkg/dnf/script.go
package dnf

import "github.com/arc-language/packstack/pkg/script"

// Generate renders the bash script that installs pkgs with dnf
func Generate(pkgs []string, meta script.Meta) string {
	return script.Bash(Plan(pkgs, meta))
}

// Plan builds the script plan for pkgs without rendering it
func Plan(pkgs []string, meta script.Meta) *script.Plan {
	return &script.Plan{
		Meta:    meta,
		Title:   Title,
		Helpers: script.PresenceHelper(presenceQuery),
		Setup: []script.Step{{
			Comment: "Check package updates",
			Lines: []string{
				`echo "${CYAN}Checking for package updates...${NC}"`,
				refreshCommand,
				`echo ""`,
			},
		}},
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
	return "sudo dnf install -y " + pkg
}
