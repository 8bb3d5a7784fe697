// pkg/apt/constants.go
package apt

// Binaries are the apt front ends whose install commands are recognized
var Binaries = []string{"apt", "apt-get"}

var installVerbs = []string{"install"}

// valueFlags take a separate value that must not be mistaken for a package
var valueFlags = []string{
	"-o", "--option",
	"-t", "--target-release", "--default-release",
	"-c", "--config-file",
}

const (
	// refreshCommand refreshes package lists before installing
	refreshCommand = "sudo apt update -qq"

	// presenceQuery succeeds when $name is fully installed
	presenceQuery = `dpkg -l "$name" 2>/dev/null | grep -q "^ii"`

	// installCommand installs one unit; $pkg stays unquoted so a unit
	// of several packages splits into separate arguments
	installCommand = "sudo apt install -y $pkg"
)
