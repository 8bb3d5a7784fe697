// Package script renders installation scripts from an ordered list of
// sections. Package managers describe what differs between platforms
// (presence checks, install commands, bootstrap steps) as a Plan, and the
// Bash and PowerShell renderers supply the shared scaffolding: header,
// result tracking, the per-package loop and the summary.
package script

import "strings"

// Builder accumulates groups of lines. Groups are separated by one blank
// line when rendered, so callers never manage spacing themselves.
type Builder struct {
	groups [][]string
}

// Section appends a group of lines. Empty groups are ignored.
func (b *Builder) Section(lines ...string) *Builder {
	if len(lines) == 0 {
		return b
	}
	group := make([]string, len(lines))
	copy(group, lines)
	b.groups = append(b.groups, group)
	return b
}

// Append adds lines to the most recent group, or starts one
func (b *Builder) Append(lines ...string) *Builder {
	if len(b.groups) == 0 {
		return b.Section(lines...)
	}
	last := len(b.groups) - 1
	b.groups[last] = append(b.groups[last], lines...)
	return b
}

// Len returns the number of groups
func (b *Builder) Len() int {
	return len(b.groups)
}

// String renders the groups, terminated by a single newline
func (b *Builder) String() string {
	var sb strings.Builder
	for i, group := range b.groups {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, line := range group {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Indent prefixes every non-empty line with n levels of four spaces
func Indent(n int, lines ...string) []string {
	prefix := strings.Repeat("    ", n)
	out := make([]string, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		out[i] = prefix + line
	}
	return out
}
