// internal/cli/share.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShareCmd(opts *options) *cobra.Command {
	var decode string

	cmd := &cobra.Command{
		Use:   "share [app-id...]",
		Short: "Encode a selection as a share hash",
		Long: `Encode catalog app ids as a short hash that can be passed to
'packstack generate --share'. With --decode the hash is turned back into
the app ids it names.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stack, err := opts.stack(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if decode != "" {
				items, err := stack.Shared(decode)
				if err != nil {
					return err
				}
				for _, item := range items {
					fmt.Fprintln(out, item.ID())
				}
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("requires at least one app id")
			}
			items, err := stack.Select(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, stack.Share(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&decode, "decode", "", "print the app ids of a share hash")

	return cmd
}
