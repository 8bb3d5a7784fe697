package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/packstack/pkg/cache"
	"github.com/arc-language/packstack/pkg/core"
	"github.com/arc-language/packstack/pkg/extract"
	"github.com/arc-language/packstack/pkg/platform"
	"github.com/arc-language/packstack/pkg/registry"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Greater(t, c.Len(), 10)

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, c, again)

	git, ok := c.Get("git")
	require.True(t, ok)
	assert.Equal(t, "Git", git.Name)
	assert.Equal(t, SourceCore, git.Source)
	assert.Equal(t, core.CategoryDevelopment, git.Category)
}

func TestDefault_EveryAppIsWellFormed(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for _, app := range c.All() {
		assert.NotEmpty(t, app.Name, app.Identifier)
		assert.True(t, app.Category.IsValid(), app.Identifier)
		for id, inst := range app.Platforms {
			assert.True(t, id.IsValid(), "%s: platform %s", app.Identifier, id)
			assert.True(t, inst.Type.IsValid(), "%s: type %s", app.Identifier, inst.Type)
		}
	}
}

func TestDefault_WingetIdentifiersResolve(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for _, app := range c.All() {
		if _, ok := app.Platforms[platform.Windows]; ok {
			assert.NotEmpty(t, extract.Identifier(app, platform.Windows), app.Identifier)
		}
		if _, ok := app.Platforms[platform.MacOS]; ok {
			assert.NotEmpty(t, extract.Identifier(app, platform.MacOS), app.Identifier)
		}
	}
}

func TestNew_Duplicates(t *testing.T) {
	_, err := New([]*core.CuratedPackage{{Identifier: "a"}, {Identifier: "a"}})
	assert.ErrorContains(t, err, "duplicate")

	_, err = New([]*core.CuratedPackage{{Name: "no id"}})
	assert.Error(t, err)
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Parse([]byte(`
apps:
  - id: git
    name: Git
    description: Distributed version control
    category: development
    platforms:
      linux: {type: apt, command: "sudo apt install git"}
      fedora: {type: dnf, command: "sudo dnf install -y git"}
  - id: spotify
    name: Spotify
    description: Music streaming
    category: media
    platforms:
      macos: {type: brew, command: "brew install --cask spotify"}
      windows: {type: winget, command: "winget install --id Spotify.Spotify"}
  - id: arch-only
    name: Paru
    description: AUR helper written in Rust
    category: utilities
    platforms:
      arch: {type: pacman, command: "yay -S paru"}
`))
	require.NoError(t, err)
	return c
}

func ids(apps []*core.CuratedPackage) []string {
	var out []string
	for _, a := range apps {
		out = append(out, a.Identifier)
	}
	return out
}

func TestFilter(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"no filter", Filter{}, []string{"git", "spotify", "arch-only"}},
		{"distro uses linux fallback", Filter{Platform: platform.Debian}, []string{"git"}},
		{"distro own entry", Filter{Platform: platform.Arch}, []string{"git", "arch-only"}},
		{"generic linux ignores distro entries", Filter{Platform: platform.Linux}, []string{"git"}},
		{"macos", Filter{Platform: platform.MacOS}, []string{"spotify"}},
		{"category", Filter{Category: core.CategoryMedia}, []string{"spotify"}},
		{"query in name", Filter{Query: "GIT"}, []string{"git"}},
		{"query in description", Filter{Query: "rust"}, []string{"arch-only"}},
		{"combined", Filter{Platform: platform.Windows, Query: "music"}, []string{"spotify"}},
		{"no match", Filter{Query: "nothing"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(c.Filter(tt.filter)))
		})
	}
}

func TestLookup(t *testing.T) {
	found, unknown := testCatalog(t).Lookup([]string{"spotify", "ghost", "git"})
	assert.Equal(t, []string{"spotify", "git"}, ids(found))
	assert.Equal(t, []string{"ghost"}, unknown)
}

func TestCategories(t *testing.T) {
	assert.Equal(t,
		[]core.Category{core.CategoryDevelopment, core.CategoryMedia, core.CategoryUtilities},
		testCatalog(t).Categories())
}

func TestShare(t *testing.T) {
	assert.Equal(t, "git,spotify", EncodeShare([]string{"git", "spotify"}))
	assert.Equal(t, []string{"git", "spotify"}, DecodeShare("#git,,spotify,"))
	assert.Equal(t, []string{"git"}, DecodeShare("git"))
	assert.Empty(t, DecodeShare(""))
	assert.Empty(t, DecodeShare("#"))

	c := testCatalog(t)
	assert.Equal(t, []string{"git", "spotify"}, c.DecodeShareKnown("#git,ghost,spotify"))
	assert.Equal(t, []string{"spotify", "git"}, DecodeShare(EncodeShare([]string{"spotify", "git"})))
}

func validApp() *core.CuratedPackage {
	size := 12.0
	return &core.CuratedPackage{
		Identifier:  "ripgrep",
		Name:        "ripgrep",
		Description: "Fast grep",
		Category:    core.CategoryDevelopment,
		SizeMB:      &size,
		Popularity:  50,
		Platforms: map[platform.ID]core.PlatformInstall{
			platform.MacOS: {Type: core.ManagerBrew, Command: "brew install ripgrep"},
		},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(validApp()))

	negative := -1.0
	tests := []struct {
		name   string
		mutate func(*core.CuratedPackage)
		want   string
	}{
		{"uppercase id", func(a *core.CuratedPackage) { a.Identifier = "RipGrep" }, "id must contain"},
		{"missing name", func(a *core.CuratedPackage) { a.Name = "" }, "name is required"},
		{"empty description", func(a *core.CuratedPackage) { a.Description = "" }, "description"},
		{"long description", func(a *core.CuratedPackage) { a.Description = string(make([]byte, 201)) }, "description"},
		{"bad category", func(a *core.CuratedPackage) { a.Category = "toys" }, "unknown category"},
		{"no platforms", func(a *core.CuratedPackage) { a.Platforms = nil }, "at least one platform"},
		{"bad type", func(a *core.CuratedPackage) {
			a.Platforms[platform.MacOS] = core.PlatformInstall{Type: "npm", Command: "npm i -g rg"}
		}, "unknown install type"},
		{"empty command", func(a *core.CuratedPackage) {
			a.Platforms[platform.MacOS] = core.PlatformInstall{Type: core.ManagerBrew}
		}, "command is required"},
		{"negative size", func(a *core.CuratedPackage) { a.SizeMB = &negative }, "size"},
		{"popularity", func(a *core.CuratedPackage) { a.Popularity = 101 }, "popularity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := validApp()
			tt.mutate(app)
			err := Validate(app)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidEntry)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

type fakeSource struct {
	ids     []string
	apps    map[string]*core.CuratedPackage
	listErr error
}

func (f *fakeSource) List() ([]string, error) { return f.ids, f.listErr }

func (f *fakeSource) Load(id string) (*core.CuratedPackage, error) {
	if app, ok := f.apps[id]; ok {
		return app, nil
	}
	return nil, fmt.Errorf("no entry %s", id)
}

func TestWithCommunity(t *testing.T) {
	c := testCatalog(t)

	good := validApp()
	invalid := validApp()
	invalid.Identifier = "bad"
	invalid.Popularity = 500
	conflict := validApp()
	conflict.Identifier = "git"

	src := &fakeSource{
		ids:  []string{"ripgrep", "bad", "git", "missing"},
		apps: map[string]*core.CuratedPackage{"ripgrep": good, "bad": invalid, "git": conflict},
	}

	merged, err := c.WithCommunity(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, []string{"git", "spotify", "arch-only", "ripgrep"}, ids(merged.All()))

	coreGit, _ := merged.Get("git")
	assert.Equal(t, "Git", coreGit.Name)

	// the receiver is unchanged
	assert.Equal(t, 3, c.Len())
}

func TestWithCommunity_NotSynced(t *testing.T) {
	c := testCatalog(t)
	merged, err := c.WithCommunity(context.Background(), &fakeSource{listErr: registry.ErrNotSynced})
	require.NoError(t, err)
	assert.Same(t, c, merged)

	_, err = c.WithCommunity(context.Background(), &fakeSource{listErr: errors.New("disk on fire")})
	assert.Error(t, err)
}

func TestWithCommunity_Registry(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "zoxide"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zoxide", registry.EntryFile), []byte(`
name = "zoxide"
description = "Smarter cd command"
category = "utilities"
popularity = 40

[platforms.linux]
type = "apt"
command = "sudo apt install -y zoxide"
`), 0o644))

	reg, err := registry.New(dir, cache.Config{DefaultTTL: time.Hour})
	require.NoError(t, err)

	merged, err := testCatalog(t).WithCommunity(context.Background(), reg)
	require.NoError(t, err)

	app, ok := merged.Get("zoxide")
	require.True(t, ok)
	assert.Equal(t, "community", app.Source)
	assert.Equal(t, "zoxide", extract.Identifier(app, platform.Ubuntu))
}
