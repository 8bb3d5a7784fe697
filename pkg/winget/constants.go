// pkg/winget/constants.go
package winget

const (
	// Binary is the Windows Package Manager executable
	Binary = "winget"

	// StoreProductID is the Microsoft Store listing for App Installer,
	// which ships winget
	StoreProductID = "9NBLGGH4NNS1"

	// StoreURL opens the App Installer listing in the Store app
	StoreURL = "ms-windows-store://pdp/?productid=" + StoreProductID
)

// installVerbs are the winget subcommands that install a package
var installVerbs = []string{"install", "add"}

// valueFlags take a separate value that must not be mistaken for the
// package query
var valueFlags = []string{
	"--id",
	"--name", "-n",
	"--moniker", "-m",
	"--query", "-q",
	"--version", "-v",
	"--source", "-s",
	"--scope",
	"--architecture", "-a",
	"--installer-type",
	"--locale",
	"--location", "-l",
	"--log", "-o",
	"--override",
	"--custom",
	"--header",
	"--rename",
}

// InstallFlags are appended to every generated winget install
var InstallFlags = []string{
	"-e",
	"--silent",
	"--accept-package-agreements",
	"--accept-source-agreements",
}
