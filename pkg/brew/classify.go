// pkg/brew/classify.go
package brew

import (
	"strings"
	"unicode"
)

// guiKeywords name desktop applications usually shipped as casks
var guiKeywords = map[string]bool{
	"1password":    true,
	"alacritty":    true,
	"alfred":       true,
	"android":      true,
	"anki":         true,
	"audacity":     true,
	"bitwarden":    true,
	"blender":      true,
	"brave":        true,
	"calibre":      true,
	"chrome":       true,
	"chromium":     true,
	"cursor":       true,
	"discord":      true,
	"docker":       true,
	"dropbox":      true,
	"figma":        true,
	"firefox":      true,
	"gimp":         true,
	"handbrake":    true,
	"inkscape":     true,
	"iterm2":       true,
	"keepassxc":    true,
	"kitty":        true,
	"libreoffice":  true,
	"notion":       true,
	"obs":          true,
	"obsidian":     true,
	"postman":      true,
	"raycast":      true,
	"rectangle":    true,
	"signal":       true,
	"skype":        true,
	"slack":        true,
	"spotify":      true,
	"steam":        true,
	"sublime":      true,
	"teams":        true,
	"telegram":     true,
	"thunderbird":  true,
	"transmission": true,
	"virtualbox":   true,
	"visual":       true,
	"vlc":          true,
	"warp":         true,
	"whatsapp":     true,
	"zed":          true,
	"zoom":         true,
}

// IsCask decides whether a discovered package installs as a cask.
// A known repository is authoritative; without one the name and
// identifier are matched word by word against common desktop apps.
func IsCask(repository, name, identifier string) bool {
	switch repository {
	case RepositoryCask:
		return true
	case "":
		return LooksLikeApp(name) || LooksLikeApp(identifier)
	default:
		return false
	}
}

// LooksLikeApp reports whether s contains a word naming a desktop app
func LooksLikeApp(s string) bool {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if guiKeywords[w] {
			return true
		}
	}
	return false
}
