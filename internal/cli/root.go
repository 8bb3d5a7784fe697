// internal/cli/root.go
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arc-language/packstack"
	"github.com/arc-language/packstack/pkg/core"
	"github.com/arc-language/packstack/pkg/logging"
)

// options holds state shared by all commands
type options struct {
	cfgFile   string
	debug     bool
	verbosity int
	config    *core.Config

	// stackOpts are passed to every Stack the commands create
	stackOpts []packstack.Option
}

// Execute executes the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&options{})
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "packstack",
		Short: "Generate idempotent install scripts",
		Long: `packstack - pick apps, get one install script

Generates a self-verifying installation script for Windows (winget),
macOS (Homebrew), Ubuntu/Debian (apt), Arch Linux (pacman + AUR) and
Fedora (dnf). Scripts skip what is already installed and can be run
again safely.`,
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.init(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/packstack/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	// Add commands
	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newCommandCmd(opts))
	rootCmd.AddCommand(newCatalogCmd(opts))
	rootCmd.AddCommand(newShareCmd(opts))
	rootCmd.AddCommand(newPlatformsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (o *options) init(cmd *cobra.Command) {
	verbosity := o.verbosity
	if o.debug && verbosity < 2 {
		verbosity = 2
	}
	logging.Setup(verbosity, cmd.ErrOrStderr())

	config, err := core.LoadConfig(o.cfgFile)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if o.debug {
		config.Debug = true
	}
	o.config = config

	log.Debug().Str("command", cmd.Name()).Msg("Command started")
}

func (o *options) stack(ctx context.Context) (*packstack.Stack, error) {
	return packstack.New(ctx, o.config, o.stackOpts...)
}
