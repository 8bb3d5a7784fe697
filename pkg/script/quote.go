// pkg/script/quote.go
package script

import "strings"

// ShellQuote wraps s in single quotes for POSIX shells
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// PowerShellQuote wraps s in a single-quoted PowerShell string literal
func PowerShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// BashArray renders name=('a' 'b')
func BashArray(name string, values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = ShellQuote(v)
	}
	return name + "=(" + strings.Join(quoted, " ") + ")"
}

// PowerShellArray renders $name = @('a', 'b')
func PowerShellArray(name string, values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = PowerShellQuote(v)
	}
	return "$" + name + " = @(" + strings.Join(quoted, ", ") + ")"
}
