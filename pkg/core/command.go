// pkg/core/command.go
package core

import (
	"path"
	"strings"
)

// shell operators end the command a verb belongs to
var operators = map[string]bool{
	"&&": true,
	"||": true,
	";":  true,
	"|":  true,
	"&":  true,
}

// ArgsAfter finds the first place in cmd where one of binaries is followed
// by one of verbs, and returns the tokens after the verb up to the next
// shell operator. Prefixes such as sudo are skipped naturally.
func ArgsAfter(cmd string, binaries []string, verbs ...string) ([]string, bool) {
	tokens := strings.Fields(cmd)

	for i := 0; i+1 < len(tokens); i++ {
		if !matchesBinary(tokens[i], binaries) || !contains(verbs, tokens[i+1]) {
			continue
		}

		var args []string
		for _, tok := range tokens[i+2:] {
			if operators[tok] {
				break
			}
			args = append(args, tok)
		}
		return args, true
	}

	return nil, false
}

// Positionals drops flags from args. valueFlags name flags that consume the
// following token when not written as --flag=value.
func Positionals(args []string, valueFlags ...string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			out = append(out, arg)
			continue
		}
		if !strings.Contains(arg, "=") && contains(valueFlags, arg) {
			i++ // skip the flag's value
		}
	}
	return out
}

// FlagValue returns the value of a flag written as "--flag value" or "--flag=value"
func FlagValue(args []string, names ...string) (string, bool) {
	for i, arg := range args {
		for _, name := range names {
			if arg == name && i+1 < len(args) {
				return args[i+1], true
			}
			if strings.HasPrefix(arg, name+"=") {
				return strings.TrimPrefix(arg, name+"="), true
			}
		}
	}
	return "", false
}

// HasFlag reports whether any of names appears in args
func HasFlag(args []string, names ...string) bool {
	for _, arg := range args {
		if contains(names, arg) {
			return true
		}
	}
	return false
}

func matchesBinary(token string, binaries []string) bool {
	base := strings.TrimSuffix(path.Base(strings.ReplaceAll(token, `\`, "/")), ".exe")
	return contains(binaries, base)
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
