// selection.go
package packstack

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arc-language/packstack/pkg/core"
)

// Selection is a saved set of choices: catalog ids plus packages found
// through registry search
type Selection struct {
	Platform string                    `yaml:"platform,omitempty" json:"platform,omitempty"`
	Apps     []string                  `yaml:"apps,omitempty" json:"apps,omitempty"`
	Packages []*core.DiscoveredPackage `yaml:"packages,omitempty" json:"packages,omitempty"`
}

// LoadSelection reads a selection file. Files ending in .json are decoded
// as JSON, everything else as YAML.
func LoadSelection(path string) (*Selection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading selection: %w", err)
	}
	return ParseSelection(data, strings.EqualFold(filepath.Ext(path), ".json"))
}

// ParseSelection decodes a selection document
func ParseSelection(data []byte, isJSON bool) (*Selection, error) {
	var sel Selection
	if isJSON {
		if err := json.Unmarshal(data, &sel); err != nil {
			return nil, fmt.Errorf("parsing selection: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &sel); err != nil {
		return nil, fmt.Errorf("parsing selection: %w", err)
	}
	return &sel, nil
}

// Empty reports whether nothing is selected
func (s *Selection) Empty() bool {
	return len(s.Apps) == 0 && len(s.Packages) == 0
}
