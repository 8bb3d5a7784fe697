// pkg/pacman/parser.go
package pacman

import (
	"strings"

	"github.com/arc-language/packstack/pkg/core"
)

// ParseInstallCommand returns the packages a pacman sync command names,
// space separated, with all flags removed. AUR helpers that mirror the
// pacman syntax are recognized too.
func ParseInstallCommand(cmd string) string {
	binaries := append([]string{Binary}, AURHelpers...)
	args, ok := core.ArgsAfter(cmd, binaries, syncVerbs...)
	if !ok {
		return ""
	}
	return strings.Join(core.Positionals(args, valueFlags...), " ")
}
