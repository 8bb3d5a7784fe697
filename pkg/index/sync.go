// Package index keeps the local copy of the community catalog in sync
// with its git repository.
package index

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/arc-language/packstack/pkg/core"
	"github.com/arc-language/packstack/pkg/logging"
)

// CommunityPath is the directory inside the repository holding entries
const CommunityPath = "community"

// Options configures a sync
type Options struct {
	// Repo is the git URL or local path of the catalog repository
	Repo string

	// Branch to clone; empty uses the remote HEAD
	Branch string

	// Dest receives the community entries, replacing its previous contents
	Dest string

	// Depth limits history; zero clones everything
	Depth int

	// Progress receives git progress output when set
	Progress io.Writer
}

// DefaultOptions returns options for the configured catalog repository
func DefaultOptions(cfg *core.Config) Options {
	return Options{
		Repo:   cfg.CatalogRepo,
		Branch: cfg.CatalogBranch,
		Dest:   cfg.CommunityDir,
		Depth:  1,
	}
}

// Sync clones the catalog repository and copies its community entries into
// opts.Dest. It returns the number of entries copied.
func Sync(ctx context.Context, opts Options) (int, error) {
	logger := logging.GetLogger("index")

	tempDir, err := os.MkdirTemp("", "packstack-clone-*")
	if err != nil {
		return 0, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	logger.Info().Str("repo", opts.Repo).Str("branch", opts.Branch).Msg("Updating community catalog")

	clone := &git.CloneOptions{
		URL:          opts.Repo,
		SingleBranch: true,
		Depth:        opts.Depth,
		Progress:     opts.Progress,
	}
	if opts.Branch != "" {
		clone.ReferenceName = plumbing.NewBranchReferenceName(opts.Branch)
	}
	if _, err := git.PlainCloneContext(ctx, tempDir, false, clone); err != nil {
		return 0, fmt.Errorf("git clone failed: %w", err)
	}

	src := filepath.Join(tempDir, CommunityPath)
	if _, err := os.Stat(src); err != nil {
		return 0, fmt.Errorf("repository has no %s directory: %w", CommunityPath, err)
	}

	// Stage next to the destination so the swap is a rename
	staging := opts.Dest + ".tmp"
	if err := os.RemoveAll(staging); err != nil {
		return 0, fmt.Errorf("clearing staging dir: %w", err)
	}
	if err := copyDir(src, staging); err != nil {
		os.RemoveAll(staging)
		return 0, fmt.Errorf("copying community entries: %w", err)
	}
	if err := os.RemoveAll(opts.Dest); err != nil {
		return 0, fmt.Errorf("removing old entries: %w", err)
	}
	if err := os.Rename(staging, opts.Dest); err != nil {
		return 0, fmt.Errorf("installing community entries: %w", err)
	}

	n, err := countEntries(opts.Dest)
	if err != nil {
		return 0, err
	}
	logger.Info().Int("entries", n).Str("dest", opts.Dest).Msg("Community catalog updated")
	return n, nil
}

func countEntries(dir string) (int, error) {
	dirs, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", dir, err)
	}
	n := 0
	for _, d := range dirs {
		if d.IsDir() {
			n++
		}
	}
	return n, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func copyDir(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}

	return nil
}
