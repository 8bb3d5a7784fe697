// errors.go
package packstack

import (
	"errors"
	"strings"

	"github.com/arc-language/packstack/pkg/packaging"
	"github.com/arc-language/packstack/pkg/platform"
)

var (
	// ErrPackageNotFound indicates the package is not in the catalog
	ErrPackageNotFound = errors.New("package not found")

	// ErrInvalidPackage indicates the package specification is invalid
	ErrInvalidPackage = errors.New("invalid package")

	// ErrPlatformNotSupported indicates the platform is not supported
	ErrPlatformNotSupported = errors.New("platform not supported")

	// ErrNoSelection indicates nothing was selected for installation
	ErrNoSelection = errors.New("no packages selected")

	// ErrUnsupportedCompression indicates an unknown compression format
	ErrUnsupportedCompression = packaging.ErrUnsupportedCompression
)

// Error records which operation failed, and for which package and
// platform when known
type Error struct {
	Op       string
	Package  string
	Platform platform.ID
	Err      error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Op)
	if e.Package != "" {
		sb.WriteString(" " + e.Package)
	}
	if e.Platform != "" {
		sb.WriteString(" on " + string(e.Platform))
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}
