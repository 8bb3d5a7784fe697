// pkg/backend/dispatch.go
package backend

import (
	"github.com/arc-language/packstack/pkg/core"
	"github.com/arc-language/packstack/pkg/platform"
)

// New returns the backend serving id. Generic Linux and unrecognized ids
// get the Debian-family backend.
func New(id platform.ID, config *Config) Backend {
	if config == nil {
		config = DefaultConfig()
	}

	switch id {
	case platform.Windows:
		return NewWingetBackend(config)
	case platform.MacOS:
		return NewBrewBackend(config)
	case platform.Arch:
		return NewPacmanBackend(config)
	case platform.Fedora:
		return NewDnfBackend(config)
	case platform.Ubuntu, platform.Debian, platform.Linux:
		return NewAptBackend(config)
	default:
		config.Logger.Debug().
			Str("platform", string(id)).
			Msg("Unknown platform, using the Debian-family generator")
		return NewAptBackend(config)
	}
}

// For returns the backend serving id with the default configuration
func For(id platform.ID) Backend {
	return New(id, nil)
}

// All returns one backend per package manager
func All(opts ...Option) []Backend {
	config := NewConfig(opts...)
	return []Backend{
		NewWingetBackend(config),
		NewBrewBackend(config),
		NewAptBackend(config),
		NewPacmanBackend(config),
		NewDnfBackend(config),
	}
}

// GenerateScriptContent routes items to the generator for id and returns
// the script text. It never fails: an empty selection yields a placeholder.
func GenerateScriptContent(items []core.Item, id platform.ID, opts ...Option) string {
	if len(items) == 0 {
		return EmptyPlaceholder
	}
	return New(id, NewConfig(opts...)).Generate(items, id)
}
