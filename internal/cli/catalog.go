// internal/cli/catalog.go
package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/arc-language/packstack/pkg/catalog"
	"github.com/arc-language/packstack/pkg/core"
	"github.com/arc-language/packstack/pkg/extract"
	"github.com/arc-language/packstack/pkg/packaging"
	"github.com/arc-language/packstack/pkg/platform"
)

func newCatalogCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse and update the app catalog",
	}

	cmd.AddCommand(newCatalogListCmd(opts))
	cmd.AddCommand(newCatalogShowCmd(opts))
	cmd.AddCommand(newCatalogSyncCmd(opts))

	return cmd
}

func newCatalogListCmd(opts *options) *cobra.Command {
	var (
		platformName string
		category     string
		query        string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List catalog apps",
		RunE: func(cmd *cobra.Command, args []string) error {
			stack, err := opts.stack(cmd.Context())
			if err != nil {
				return err
			}

			filter := catalog.Filter{Category: core.Category(category), Query: query}
			if platformName != "" {
				p, err := platform.Parse(platformName)
				if err != nil {
					return err
				}
				filter.Platform = p
			}
			if filter.Category != "" && !filter.Category.IsValid() {
				return fmt.Errorf("unknown category %q", category)
			}

			apps := stack.Catalog().Filter(filter)
			out := cmd.OutOrStdout()
			if len(apps) == 0 {
				fmt.Fprintln(out, "No apps found")
				return nil
			}

			printAppList(out, apps)
			return nil
		},
	}

	cmd.Flags().StringVarP(&platformName, "platform", "p", "", "only apps available on this platform")
	cmd.Flags().StringVarP(&category, "category", "c", "", "only apps of this category")
	cmd.Flags().StringVarP(&query, "query", "q", "", "match against name and description")

	return cmd
}

func printAppList(w io.Writer, apps []*core.CuratedPackage) {
	theme := DefaultTheme()

	sorted := append([]*core.CuratedPackage(nil), apps...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Category < sorted[j].Category })

	current := core.Category("")
	for _, app := range sorted {
		if app.Category != current {
			if current != "" {
				fmt.Fprintln(w)
			}
			current = app.Category
			fmt.Fprintln(w, theme.Title.Render(current.DisplayName()))
		}

		size := ""
		if app.SizeMB != nil {
			size = packaging.FormatSize(app.Size())
		}
		fmt.Fprintf(w, "  %s %s %s\n",
			Column(theme.Bold, app.ID(), 20),
			Column(theme.Plain, app.Title(), 24),
			theme.Dim.Render(size))
	}
}

func newCatalogShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <app-id>",
		Short: "Show the details of one app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stack, err := opts.stack(cmd.Context())
			if err != nil {
				return err
			}

			app, ok := stack.Catalog().Get(args[0])
			if !ok {
				return fmt.Errorf("app %q not found in catalog", args[0])
			}

			printApp(cmd.OutOrStdout(), app)
			return nil
		},
	}
}

func printApp(w io.Writer, app *core.CuratedPackage) {
	theme := DefaultTheme()

	fmt.Fprintf(w, "%s %s\n", theme.Title.Render(app.Title()), theme.Dim.Render("("+app.ID()+")"))
	fmt.Fprintln(w, app.Description)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %s %s\n", Column(theme.Bold, "Category", 12), app.Category.DisplayName())
	if app.Website != "" {
		fmt.Fprintf(w, "  %s %s\n", Column(theme.Bold, "Website", 12), app.Website)
	}
	if app.SizeMB != nil {
		fmt.Fprintf(w, "  %s %s\n", Column(theme.Bold, "Size", 12), packaging.FormatSize(app.Size()))
	}
	if app.Popularity > 0 {
		fmt.Fprintf(w, "  %s %d\n", Column(theme.Bold, "Popularity", 12), app.Popularity)
	}
	source := app.Source
	if source == "" {
		source = catalog.SourceCore
	}
	fmt.Fprintf(w, "  %s %s\n", Column(theme.Bold, "Source", 12), source)

	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Title.Render("Install"))
	for _, id := range platform.All {
		install, ok := extract.Install(app, id)
		if !ok {
			fmt.Fprintf(w, "  %s %s\n", Column(theme.Bold, string(id), 9), theme.Dim.Render("not available"))
			continue
		}
		ident := extract.Identifier(app, id)
		if ident == "" {
			ident = "?"
		}
		fmt.Fprintf(w, "  %s %s %s\n",
			Column(theme.Bold, string(id), 9),
			Column(theme.Cyan, ident, 28),
			theme.Dim.Render(install.Command))
	}
}

func newCatalogSyncCmd(opts *options) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch community catalog entries",
		Long: `Clone the catalog repository and replace the local community entries
with the ones found under its community/ directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stack, err := opts.stack(cmd.Context())
			if err != nil {
				return err
			}

			var progress io.Writer
			if !quiet {
				progress = cmd.ErrOrStderr()
			}

			n, err := stack.Sync(cmd.Context(), progress)
			if err != nil {
				return err
			}

			theme := DefaultTheme()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d community entries into %s\n",
				theme.Green.Render("Synced"), n, stack.Config().CommunityDir)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "hide clone progress")

	return cmd
}
