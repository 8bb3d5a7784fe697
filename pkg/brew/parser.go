// pkg/brew/parser.go
package brew

import "github.com/arc-language/packstack/pkg/core"

// ParseInstallCommand returns the first package a brew install command
// names and whether the command targets a cask
func ParseInstallCommand(cmd string) (name string, cask bool) {
	args, ok := core.ArgsAfter(cmd, []string{Binary}, installVerbs...)
	if !ok {
		return "", false
	}

	positionals := core.Positionals(args, valueFlags...)
	if len(positionals) == 0 {
		return "", false
	}
	return positionals[0], core.HasFlag(args, "--cask", "--casks")
}
