// pkg/pacman/script.go
package pacman

import (
	"fmt"

	"github.com/arc-language/packstack/pkg/script"
)

// Title is the platform name shown in generated scripts
const Title = "Arch Linux"

// Generate renders the bash script that installs pkgs with pacman,
// falling back to an AUR helper for packages outside the official repos
func Generate(pkgs []string, meta script.Meta) string {
	return script.Bash(Plan(pkgs, meta))
}

// Plan builds the script plan for pkgs without rendering it
func Plan(pkgs []string, meta script.Meta) *script.Plan {
	return &script.Plan{
		Meta:    meta,
		Title:   Title,
		Helpers: script.PresenceHelper(presenceQuery),
		Setup: []script.Step{
			script.BestEffort(
				"Update package database",
				"Updating package database...",
				refreshCommand,
				"Package database updated.",
				"Package database update failed; continuing with the current database.",
			),
			aurHelperStep(),
		},
		Groups: []script.Group{{
			Comment:  "Install packages",
			Var:      "packages",
			Packages: pkgs,
			Check:    `pkg_installed "$pkg"`,
			Install:  installCommand,
			Fallback: &script.Fallback{
				Install: fallbackCommand,
				Source:  "from AUR",
				Hint:    "Note: Package may need to be installed manually",
			},
		}},
	}
}

func aurHelperStep() script.Step {
	lines := []string{`aur_helper=""`}
	for i, helper := range AURHelpers {
		keyword := "elif"
		if i == 0 {
			keyword = "if"
		}
		lines = append(lines,
			fmt.Sprintf("%s command -v %s &> /dev/null; then", keyword, helper),
			fmt.Sprintf(`    aur_helper="%s"`, helper),
			fmt.Sprintf(`    echo "${GREEN}Found AUR helper: %s${NC}"`, helper),
		)
	}
	lines = append(lines,
		"else",
		`    echo "${YELLOW}No AUR helper found. Installing yay...${NC}"`,
		"    sudo pacman -S --needed --noconfirm base-devel git",
		`    temp_dir=$(mktemp -d)`,
		fmt.Sprintf(`    git clone %s "$temp_dir/yay"`, YayRepository),
		`    (cd "$temp_dir/yay" && makepkg -si --noconfirm)`,
		`    rm -rf "$temp_dir"`,
		`    aur_helper="yay"`,
		`    echo "${GREEN}yay installed successfully!${NC}"`,
		"fi",
		`echo ""`,
	)
	return script.Step{Comment: "Check for AUR helper", Lines: lines}
}

// Command returns a standalone install command for pkg
func Command(pkg string) string {
	return "sudo pacman -S --needed --noconfirm " + pkg
}
