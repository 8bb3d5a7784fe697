// pkg/dnf/parser.go
package dnf

import (
	"strings"

	"github.com/arc-language/packstack/pkg/core"
)

// ParseInstallCommand returns the packages a dnf install command names,
// space separated, with all flags removed
func ParseInstallCommand(cmd string) string {
	args, ok := core.ArgsAfter(cmd, Binaries, installVerbs...)
	if !ok {
		return ""
	}
	return strings.Join(core.Positionals(args, valueFlags...), " ")
}
