// pkg/brew/script.go
package brew

import (
	"fmt"

	"github.com/arc-language/packstack/pkg/script"
)

// Title is the platform name shown in generated scripts
const Title = "macOS"

// Package is one Homebrew install unit
type Package struct {
	Name string
	Cask bool
}

// Split partitions pkgs into casks and formulae, preserving order
func Split(pkgs []Package) (casks, formulae []string) {
	for _, p := range pkgs {
		if p.Cask {
			casks = append(casks, p.Name)
		} else {
			formulae = append(formulae, p.Name)
		}
	}
	return casks, formulae
}

// Generate renders the bash script that installs pkgs with Homebrew
func Generate(pkgs []Package, meta script.Meta) string {
	return script.Bash(Plan(pkgs, meta))
}

// Plan builds the script plan for pkgs. Casks install before formulae.
func Plan(pkgs []Package, meta script.Meta) *script.Plan {
	casks, formulae := Split(pkgs)

	return &script.Plan{
		Meta:  meta,
		Title: Title,
		Setup: []script.Step{
			bootstrapStep(),
			script.BestEffort(
				"Update Homebrew",
				"Updating Homebrew...",
				"brew update > /dev/null 2>&1",
				"Homebrew updated.",
				"Homebrew update failed; continuing with current formulae.",
			),
		},
		Groups: []script.Group{
			{
				Comment:   "Install casks",
				Var:       "cask_packages",
				Packages:  casks,
				Check:     `brew list --cask "$pkg" &> /dev/null`,
				Install:   `brew install --cask "$pkg"`,
				EmptyNote: "No cask packages selected",
			},
			{
				Comment:   "Install regular brew packages",
				Var:       "regular_packages",
				Packages:  formulae,
				Check:     `brew list --formula "$pkg" &> /dev/null`,
				Install:   `brew install "$pkg"`,
				EmptyNote: "No regular packages selected",
			},
		},
	}
}

func bootstrapStep() script.Step {
	return script.Step{
		Comment: "Check if Homebrew is installed",
		Lines: []string{
			"if ! command -v brew &> /dev/null; then",
			`    echo "${YELLOW}Homebrew not found. Installing Homebrew...${NC}"`,
			fmt.Sprintf(`    /bin/bash -c "$(curl -fsSL %s)"`, InstallScriptURL),
			"",
			"    # Apple Silicon installs outside the default PATH",
			`    if [[ $(uname -m) == "arm64" ]]; then`,
			fmt.Sprintf(`        echo 'eval "$(%s/bin/brew shellenv)"' >> ~/.zprofile`, DefaultInstallPathARM),
			fmt.Sprintf(`        eval "$(%s/bin/brew shellenv)"`, DefaultInstallPathARM),
			"    fi",
			"",
			`    echo "${GREEN}Homebrew installed successfully!${NC}"`,
			"else",
			`    echo "${GREEN}Homebrew is already installed${NC}"`,
			"fi",
			`echo ""`,
		},
	}
}

// Command returns a standalone install command for p
func Command(p Package) string {
	if p.Cask {
		return "brew install --cask " + p.Name
	}
	return "brew install " + p.Name
}
