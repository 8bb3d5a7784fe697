// pkg/core/types.go
package core

// Category groups curated packages
type Category string

const (
	CategoryBrowsers      Category = "browsers"
	CategoryMedia         Category = "media"
	CategoryDevelopment   Category = "development"
	CategoryUtilities     Category = "utilities"
	CategorySecurity      Category = "security"
	CategoryCommunication Category = "communication"
	CategoryDesign        Category = "design"
	CategoryGaming        Category = "gaming"
)

// AllCategories contains every category in display order
var AllCategories = []Category{
	CategoryBrowsers,
	CategoryMedia,
	CategoryDevelopment,
	CategoryUtilities,
	CategorySecurity,
	CategoryCommunication,
	CategoryDesign,
	CategoryGaming,
}

var categoryNames = map[Category]string{
	CategoryBrowsers:      "Web Browsers",
	CategoryMedia:         "Media & Entertainment",
	CategoryDevelopment:   "Development Tools",
	CategoryUtilities:     "Utilities",
	CategorySecurity:      "Security & Privacy",
	CategoryCommunication: "Communication",
	CategoryDesign:        "Design & Creative",
	CategoryGaming:        "Gaming",
}

// IsValid checks if the category is known
func (c Category) IsValid() bool {
	_, ok := categoryNames[c]
	return ok
}

// DisplayName returns the human readable category name
func (c Category) DisplayName() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}

// ManagerKind is the installation method behind a command
type ManagerKind string

const (
	ManagerWinget  ManagerKind = "winget"
	ManagerChoco   ManagerKind = "choco"
	ManagerBrew    ManagerKind = "brew"
	ManagerApt     ManagerKind = "apt"
	ManagerSnap    ManagerKind = "snap"
	ManagerFlatpak ManagerKind = "flatpak"
	ManagerPacman  ManagerKind = "pacman"
	ManagerDnf     ManagerKind = "dnf"
	ManagerDirect  ManagerKind = "direct"
)

// AllManagers contains every known installation method
var AllManagers = []ManagerKind{
	ManagerWinget,
	ManagerChoco,
	ManagerBrew,
	ManagerApt,
	ManagerSnap,
	ManagerFlatpak,
	ManagerPacman,
	ManagerDnf,
	ManagerDirect,
}

// IsValid checks if the manager kind is known
func (m ManagerKind) IsValid() bool {
	for _, valid := range AllManagers {
		if m == valid {
			return true
		}
	}
	return false
}
