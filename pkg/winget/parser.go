// pkg/winget/parser.go
package winget

import "github.com/arc-language/packstack/pkg/core"

// ParseInstallCommand returns the package identifier a winget install
// command refers to. An explicit --id wins, then --query, then the first
// positional argument after the install verb. It returns "" when the
// command is not a winget install.
func ParseInstallCommand(cmd string) string {
	args, ok := core.ArgsAfter(cmd, []string{Binary}, installVerbs...)
	if !ok {
		return ""
	}

	if id, ok := core.FlagValue(args, "--id"); ok {
		return id
	}
	if query, ok := core.FlagValue(args, "--query", "-q"); ok {
		return query
	}

	positionals := core.Positionals(args, valueFlags...)
	if len(positionals) == 0 {
		return ""
	}
	return positionals[0]
}
