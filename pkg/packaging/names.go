// pkg/packaging/names.go
package packaging

import "github.com/arc-language/packstack/pkg/platform"

const (
	mimePowerShell = "text/plain"
	mimeShell      = "application/x-sh"
)

// scriptNames maps each platform to its download file name
var scriptNames = map[platform.ID]string{
	platform.Windows: "install.ps1",
	platform.MacOS:   "install-macos.sh",
	platform.Ubuntu:  "install-ubuntu.sh",
	platform.Arch:    "install-arch.sh",
	platform.Debian:  "install-debian.sh",
	platform.Fedora:  "install-fedora.sh",
}

// ScriptName returns the file name used when delivering a script for id
func ScriptName(id platform.ID) string {
	if name, ok := scriptNames[id]; ok {
		return name
	}
	return "install.sh"
}

// Extension returns the script file extension for id
func Extension(id platform.ID) string {
	if id == platform.Windows {
		return ".ps1"
	}
	return ".sh"
}

// MIMEType returns the content type used when delivering a script for id
func MIMEType(id platform.ID) string {
	if id == platform.Windows {
		return mimePowerShell
	}
	return mimeShell
}
