// internal/cli/generate.go
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arc-language/packstack"
	"github.com/arc-language/packstack/pkg/catalog"
	"github.com/arc-language/packstack/pkg/core"
	"github.com/arc-language/packstack/pkg/extract"
	"github.com/arc-language/packstack/pkg/logging"
	"github.com/arc-language/packstack/pkg/packaging"
	"github.com/arc-language/packstack/pkg/platform"
)

type generateOptions struct {
	platform string
	from     string
	share    string
	all      bool
	category string
	output   string
	stdout   bool
	compress string
}

func newGenerateCmd(opts *options) *cobra.Command {
	g := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [app-id...]",
		Short: "Generate an installation script",
		Long: `Generate an idempotent installation script for the selected apps.

Apps can be named on the command line, loaded from a selection file,
decoded from a share hash or taken from the whole catalog with --all.
When stdout is not a terminal the script is printed, otherwise it is
saved into the output directory.`,
		Example: `  packstack generate git vscode --platform ubuntu
  packstack generate --from apps.yaml --platform macos
  packstack generate --all --category development --platform arch --stdout | bash`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, g, args)
		},
	}

	cmd.Flags().StringVarP(&g.platform, "platform", "p", "", "target platform ("+platformList()+")")
	cmd.Flags().StringVar(&g.from, "from", "", "selection file (yaml or json)")
	cmd.Flags().StringVar(&g.share, "share", "", "share hash of a selection")
	cmd.Flags().BoolVar(&g.all, "all", false, "select every catalog app available on the platform")
	cmd.Flags().StringVar(&g.category, "category", "", "limit --all to one category")
	cmd.Flags().StringVarP(&g.output, "output", "o", "", "directory to save the script into")
	cmd.Flags().BoolVar(&g.stdout, "stdout", false, "print the script instead of saving it")
	cmd.Flags().StringVar(&g.compress, "compress", "", "compression of the saved script (none, xz, zstd)")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *options, g *generateOptions, args []string) error {
	stack, err := opts.stack(cmd.Context())
	if err != nil {
		return err
	}

	sel := &packstack.Selection{Apps: args}
	if g.from != "" {
		loaded, err := packstack.LoadSelection(g.from)
		if err != nil {
			return err
		}
		sel.Apps = append(sel.Apps, loaded.Apps...)
		sel.Packages = append(sel.Packages, loaded.Packages...)
		if g.platform == "" {
			g.platform = loaded.Platform
		}
	}

	p, err := stack.ResolvePlatform(g.platform)
	if err != nil {
		return err
	}

	if g.share != "" {
		sel.Apps = append(sel.Apps, stack.Catalog().DecodeShareKnown(g.share)...)
	}
	if g.all {
		for _, app := range stack.Catalog().Filter(catalog.Filter{Platform: p, Category: core.Category(g.category)}) {
			sel.Apps = append(sel.Apps, app.ID())
		}
	}

	if sel.Empty() {
		return fmt.Errorf("%w: name app ids or use --from, --share or --all", packstack.ErrNoSelection)
	}

	items, err := stack.Resolve(sel)
	if err != nil {
		return err
	}
	log.Debug().Int("items", len(items)).Str("platform", string(p)).Msg("Resolved selection")

	script := stack.Generate(items, p)

	out := cmd.OutOrStdout()
	if g.stdout || (g.output == "" && !logging.IsTerminal(out)) {
		_, err := packaging.Write(out, script)
		return err
	}

	var compression []packaging.Compression
	if g.compress != "" {
		compression = append(compression, packaging.Compression(g.compress))
	}
	path, err := stack.Save(script, g.output, compression...)
	if err != nil {
		return err
	}

	return printSummary(out, path, items, p)
}

func printSummary(w io.Writer, path string, items []core.Item, p platform.ID) error {
	theme := DefaultTheme()

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading saved script: %w", err)
	}

	_, skipped := extract.Identifiers(items, p)

	fmt.Fprintf(w, "%s %s (%s)\n", theme.Green.Render("Saved"), theme.Bold.Render(path), humanize.Bytes(uint64(info.Size())))
	fmt.Fprintf(w, "  %s %s, %d of %d apps, %s download\n",
		theme.Arrow, p.DisplayName(), len(items)-len(skipped), len(items),
		packaging.FormatSize(packaging.TotalSize(items)))

	for _, item := range skipped {
		fmt.Fprintf(w, "  %s %s\n", theme.Yellow.Render(theme.Bullet), theme.Dim.Render(item.Title()+" is not available on "+p.DisplayName()))
	}
	return nil
}

func platformList() string {
	return strings.Join(platform.Names(), ", ")
}
