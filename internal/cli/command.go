// internal/cli/command.go
package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func newCommandCmd(opts *options) *cobra.Command {
	var (
		platformName string
		copyOut      bool
	)

	cmd := &cobra.Command{
		Use:   "command <app-id...>",
		Short: "Print a one-line install command",
		Long: `Print the install commands of the selected apps joined with &&.
Apps without a command for the platform are left out.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stack, err := opts.stack(cmd.Context())
			if err != nil {
				return err
			}

			p, err := stack.ResolvePlatform(platformName)
			if err != nil {
				return err
			}

			items, err := stack.Select(args)
			if err != nil {
				return err
			}

			line, err := stack.Command(items, p)
			if err != nil {
				return err
			}

			if copyOut {
				if err := clipboard.WriteAll(line); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), DefaultTheme().Green.Render("Copied to clipboard"))
			}

			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	cmd.Flags().StringVarP(&platformName, "platform", "p", "", "target platform ("+platformList()+")")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "also copy the command to the clipboard")

	return cmd
}
