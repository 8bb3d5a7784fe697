// internal/cli/platforms.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/packstack/pkg/packaging"
	"github.com/arc-language/packstack/pkg/platform"
)

func newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List supported target platforms",
		Run: func(cmd *cobra.Command, args []string) {
			theme := DefaultTheme()
			out := cmd.OutOrStdout()
			host := platform.Detect()

			for _, id := range platform.All {
				marker := " "
				if id == host {
					marker = theme.Green.Render("*")
				}
				fmt.Fprintf(out, "%s %s %s %s %s\n",
					marker,
					Column(theme.Bold, string(id), 9),
					Column(theme.Plain, id.DisplayName(), 14),
					Column(theme.Cyan, id.Manager(), 8),
					theme.Dim.Render(packaging.ScriptName(id)))
			}
		},
	}
}
