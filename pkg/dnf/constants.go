// pkg/dnf/constants.go
package dnf

// Binaries are the Fedora package managers whose install commands are recognized
var Binaries = []string{"dnf", "dnf5", "yum"}

var installVerbs = []string{"install", "in"}

// valueFlags take a separate value that must not be mistaken for a package
var valueFlags = []string{
	"--repo", "--repoid",
	"--enablerepo",
	"--disablerepo",
	"--releasever",
	"--installroot",
	"--setopt",
	"-c", "--config",
	"-x", "--exclude",
}

const (
	// Title is the platform name shown in generated scripts
	Title = "Fedora"

	// check-update exits 100 when updates are available
	refreshCommand = "sudo dnf check-update --assumeno > /dev/null 2>&1 || true"
	presenceQuery  = `rpm -q "$name" &> /dev/null`
	installCommand = "sudo dnf install -y $pkg"
)
