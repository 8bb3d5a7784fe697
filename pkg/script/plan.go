// pkg/script/plan.go
package script

import (
	"strings"
	"time"
)

// Product is the name printed in script banners
const Product = "PackStack"

// TimestampFormat is used for the "Generated on" header line
const TimestampFormat = time.RFC3339

// Meta carries the informational parts of a script
type Meta struct {
	// Generated is stamped into the header. It never affects behavior.
	Generated time.Time

	// Skipped lists selections that had no identifier for this platform
	Skipped []string
}

// Plan describes one installation script
type Plan struct {
	Meta

	// Title names the target, e.g. "Debian" or "macOS"
	Title string

	// Helpers are function definitions emitted before setup
	Helpers []string

	// Setup runs before the package loop with hard failure enabled
	Setup []Step

	// Groups are installed in order; the total count spans all groups
	Groups []Group
}

// Step is a commented block of setup commands
type Step struct {
	Comment string
	Lines   []string
}

// Group is one per-package loop over a list of identifiers.
// Check, Install and Verify refer to the current identifier as $pkg.
type Group struct {
	// Comment heads the loop in the rendered script
	Comment string

	// Var is the array variable holding the identifiers
	Var string

	Packages []string

	// Check is a condition that succeeds when $pkg is already present
	Check string

	// Install is the command that installs $pkg
	Install string

	// Verify re-queries the package manager after Install. Defaults to Check.
	Verify string

	// Fallback is tried when Install fails
	Fallback *Fallback

	// EmptyNote replaces the loop when Packages is empty
	EmptyNote string
}

// Fallback is a second install source, e.g. the AUR after pacman
type Fallback struct {
	Install string
	// Source is appended to the success line, e.g. "from AUR"
	Source string
	// Hint is printed when both attempts fail
	Hint string
}

// Total returns the number of identifiers across all groups
func (p *Plan) Total() int {
	n := 0
	for _, g := range p.Groups {
		n += len(g.Packages)
	}
	return n
}

func (g *Group) verify() string {
	if g.Verify != "" {
		return g.Verify
	}
	return g.Check
}

func (p *Plan) timestamp() string {
	return p.Generated.UTC().Format(TimestampFormat)
}

// comment makes arbitrary text safe to place after a comment marker
func comment(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
