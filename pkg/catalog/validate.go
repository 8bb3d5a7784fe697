// pkg/catalog/validate.go
package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/arc-language/packstack/pkg/core"
)

const (
	maxDescription = 200
	maxPopularity  = 100
)

var idPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidationError lists every problem found in one entry
type ValidationError struct {
	ID       string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid entry %q: %v", e.ID, e.Problems)
}

// ErrInvalidEntry is matched by every ValidationError
var ErrInvalidEntry = errors.New("invalid catalog entry")

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidEntry
}

// Validate checks a community entry against the submission rules
func Validate(app *core.CuratedPackage) error {
	var problems []string
	add := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if !idPattern.MatchString(app.Identifier) {
		add("id must contain only lowercase letters, numbers and hyphens")
	}
	if app.Name == "" {
		add("name is required")
	}
	if n := utf8.RuneCountInString(app.Description); n == 0 || n > maxDescription {
		add("description must be 1 to %d characters", maxDescription)
	}
	if !app.Category.IsValid() {
		add("unknown category %q", app.Category)
	}
	if len(app.Platforms) == 0 {
		add("at least one platform is required")
	}
	for id, inst := range app.Platforms {
		if !id.IsValid() {
			add("unknown platform %q", id)
		}
		if !inst.Type.IsValid() {
			add("platform %s: unknown install type %q", id, inst.Type)
		}
		if inst.Command == "" {
			add("platform %s: command is required", id)
		}
	}
	if app.SizeMB != nil && *app.SizeMB < 0 {
		add("size must not be negative")
	}
	if app.Popularity < 0 || app.Popularity > maxPopularity {
		add("popularity must be between 0 and %d", maxPopularity)
	}

	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return &ValidationError{ID: app.Identifier, Problems: problems}
}
