// pkg/platform/detect.go
package platform

import (
	"os"
	"runtime"
	"strings"
)

// osReleasePath is swapped out by tests
var osReleasePath = "/etc/os-release"

// Detect returns the platform of the machine packstack is running on.
// Linux hosts are narrowed to a distribution when /etc/os-release identifies one.
func Detect() ID {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	case "linux":
		return detectDistro(osReleasePath)
	default:
		return Linux
	}
}

func detectDistro(path string) ID {
	data, err := os.ReadFile(path)
	if err != nil {
		if fileExists("/etc/arch-release") {
			return Arch
		}
		if fileExists("/etc/fedora-release") {
			return Fedora
		}
		return Linux
	}

	fields := parseOSRelease(string(data))
	candidates := append([]string{fields["ID"]}, strings.Fields(fields["ID_LIKE"])...)

	for _, c := range candidates {
		switch strings.ToLower(c) {
		case "ubuntu":
			return Ubuntu
		case "debian":
			return Debian
		case "arch", "manjaro", "endeavouros":
			return Arch
		case "fedora":
			return Fedora
		}
	}
	return Linux
}

// parseOSRelease reads KEY=value lines, stripping optional quotes
func parseOSRelease(content string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		fields[key] = strings.Trim(value, `"'`)
	}
	return fields
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
