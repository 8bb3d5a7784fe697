// pkg/apt/parser.go
package apt

import (
	"strings"

	"github.com/arc-language/packstack/pkg/core"
)

// ParseInstallCommand returns the packages an apt or apt-get install
// command names, space separated, with all flags removed
func ParseInstallCommand(cmd string) string {
	args, ok := core.ArgsAfter(cmd, Binaries, installVerbs...)
	if !ok {
		return ""
	}
	return strings.Join(core.Positionals(args, valueFlags...), " ")
}
