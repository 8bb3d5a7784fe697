// pkg/brew/constants.go
package brew

const (
	// Binary is the Homebrew executable
	Binary = "brew"

	// InstallScriptURL is Homebrew's official installer
	InstallScriptURL = "https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh"

	// DefaultInstallPathIntel is the default Homebrew install path for Intel Macs
	DefaultInstallPathIntel = "/usr/local"

	// DefaultInstallPathARM is the default Homebrew install path for ARM Macs
	DefaultInstallPathARM = "/opt/homebrew"

	// RepositoryCask marks discovered packages that come from the cask tap
	RepositoryCask = "cask"
)

var installVerbs = []string{"install", "reinstall"}

// valueFlags take a separate value that must not be mistaken for a package
var valueFlags = []string{
	"--appdir",
	"--fontdir",
	"--cc",
	"--bottle-arch",
}
