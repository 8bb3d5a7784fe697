// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the packstack release
const Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "packstack version %s\n", Version)
			fmt.Fprintln(out, "Idempotent install script generator")
			fmt.Fprintln(out, "https://github.com/arc-language/packstack")
		},
	}
}
