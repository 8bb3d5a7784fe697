// pkg/packaging/compress.go
package packaging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// ErrUnsupportedCompression is returned for unknown compression names
var ErrUnsupportedCompression = errors.New("unsupported compression")

// Compression selects how a script is encoded for delivery
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionXZ   Compression = "xz"
	CompressionZstd Compression = "zstd"
)

// ParseCompression converts a user supplied name; "" means none
func ParseCompression(s string) (Compression, error) {
	switch c := Compression(strings.ToLower(strings.TrimSpace(s))); c {
	case "", CompressionNone:
		return CompressionNone, nil
	case CompressionXZ, CompressionZstd:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCompression, s)
	}
}

// Suffix is appended to the file name of a compressed script
func (c Compression) Suffix() string {
	switch c {
	case CompressionXZ:
		return ".xz"
	case CompressionZstd:
		return ".zst"
	default:
		return ""
	}
}

// Compress writes content to w encoded with c
func Compress(w io.Writer, content string, c Compression) error {
	switch c {
	case "", CompressionNone:
		_, err := io.WriteString(w, content)
		return err

	case CompressionXZ:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return fmt.Errorf("creating xz writer: %w", err)
		}
		if _, err := io.WriteString(xw, content); err != nil {
			xw.Close()
			return fmt.Errorf("writing xz stream: %w", err)
		}
		return xw.Close()

	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("creating zstd writer: %w", err)
		}
		if _, err := io.WriteString(zw, content); err != nil {
			zw.Close()
			return fmt.Errorf("writing zstd stream: %w", err)
		}
		return zw.Close()

	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedCompression, c)
	}
}

// Decompress reads a script previously written by Compress
func Decompress(r io.Reader, c Compression) (string, error) {
	var reader io.Reader
	switch c {
	case "", CompressionNone:
		reader = r

	case CompressionXZ:
		xr, err := xz.NewReader(r)
		if err != nil {
			return "", fmt.Errorf("creating xz reader: %w", err)
		}
		reader = xr

	case CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return "", fmt.Errorf("creating zstd reader: %w", err)
		}
		defer zr.Close()
		reader = zr

	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCompression, c)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("decompressing: %w", err)
	}
	return string(data), nil
}
