// pkg/backend/winget.go
package backend

import (
	"github.com/arc-language/packstack/pkg/core"
	"github.com/arc-language/packstack/pkg/platform"
	"github.com/arc-language/packstack/pkg/winget"
)

// WingetBackend generates PowerShell scripts driving winget
type WingetBackend struct {
	config *Config
}

// NewWingetBackend creates a new winget backend
func NewWingetBackend(config *Config) *WingetBackend {
	if config == nil {
		config = DefaultConfig()
	}
	return &WingetBackend{config: config}
}

func (b *WingetBackend) Name() string {
	return winget.Binary
}

func (b *WingetBackend) Platforms() []platform.ID {
	return []platform.ID{platform.Windows}
}

func (b *WingetBackend) Generate(items []core.Item, id platform.ID) string {
	ids, meta := b.config.meta(items, id)
	return winget.Generate(ids, meta)
}
