// pkg/pacman/constants.go
package pacman

const (
	// Binary is the Arch Linux package manager
	Binary = "pacman"

	// YayRepository is cloned to bootstrap yay when no AUR helper exists
	YayRepository = "https://aur.archlinux.org/yay.git"
)

// AURHelpers are the helpers the script looks for, in order of preference
var AURHelpers = []string{"paru", "yay"}

// syncVerbs are the pacman operations that install packages
var syncVerbs = []string{"-S", "-Sy", "-Syu", "-Syy", "-Syyu", "-Su", "--sync"}

// valueFlags take a separate value that must not be mistaken for a package
var valueFlags = []string{
	"--ignore",
	"--ignoregroup",
	"--assume-installed",
	"--overwrite",
	"--config",
	"--dbpath", "-b",
	"--root", "-r",
	"--cachedir",
	"--arch",
}

const (
	refreshCommand  = "sudo pacman -Sy --noconfirm > /dev/null 2>&1"
	presenceQuery   = `pacman -Qi "$name" &> /dev/null`
	installCommand  = "sudo pacman -S --needed --noconfirm $pkg"
	fallbackCommand = `"$aur_helper" -S --needed --noconfirm $pkg`
)
