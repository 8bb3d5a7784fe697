package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    ID
		wantErr bool
	}{
		{in: "windows", want: Windows},
		{in: " MacOS ", want: MacOS},
		{in: "arch", want: Arch},
		{in: "fedora", want: Fedora},
		{in: "opensuse", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChain(t *testing.T) {
	assert.Equal(t, []ID{Debian, Linux}, Debian.Chain())
	assert.Equal(t, []ID{Arch, Linux}, Arch.Chain())
	assert.Equal(t, []ID{Linux}, Linux.Chain())
	assert.Equal(t, []ID{Windows}, Windows.Chain())
	assert.Equal(t, []ID{MacOS}, MacOS.Chain())
}

func TestDisplayNameAndManager(t *testing.T) {
	assert.Equal(t, "Arch Linux", Arch.DisplayName())
	assert.Equal(t, "macOS", MacOS.DisplayName())
	assert.Equal(t, "solaris", ID("solaris").DisplayName())

	assert.Equal(t, "winget", Windows.Manager())
	assert.Equal(t, "brew", MacOS.Manager())
	assert.Equal(t, "apt", Ubuntu.Manager())
	assert.Equal(t, "apt", Linux.Manager())
	assert.Equal(t, "pacman", Arch.Manager())
	assert.Equal(t, "dnf", Fedora.Manager())
	assert.Equal(t, "apt", ID("gentoo").Manager())
}

func TestIsLinux(t *testing.T) {
	assert.True(t, Linux.IsLinux())
	assert.True(t, Fedora.IsLinux())
	assert.False(t, Linux.IsDistro())
	assert.False(t, MacOS.IsLinux())
}

func TestDetectDistro(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    ID
	}{
		{name: "ubuntu", content: "NAME=\"Ubuntu\"\nID=ubuntu\nID_LIKE=debian\n", want: Ubuntu},
		{name: "debian", content: "ID=debian\n", want: Debian},
		{name: "mint via id_like", content: "ID=linuxmint\nID_LIKE=\"ubuntu debian\"\n", want: Ubuntu},
		{name: "manjaro", content: "ID=manjaro\nID_LIKE=arch\n", want: Arch},
		{name: "fedora", content: "ID=fedora\n", want: Fedora},
		{name: "unknown", content: "ID=void\n", want: Linux},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "os-release")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			assert.Equal(t, tt.want, detectDistro(path))
		})
	}
}
