// Package commands implements the CLI commands for blkifctl, an offline
// inspection tool for the block-protocol core: it emits Connection
// tuples, encodes and decodes ring requests, and decodes
// FeatureIndirect/DiskInfo/RingInfo descriptors, without talking to a
// real xenstored or ring page.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/gsfyrakis/mirage-block-xen/cmd/blkifctl/cmdutil"
	"github.com/gsfyrakis/mirage-block-xen/cmd/blkifctl/commands/connection"
	"github.com/gsfyrakis/mirage-block-xen/cmd/blkifctl/commands/descriptor"
	"github.com/gsfyrakis/mirage-block-xen/cmd/blkifctl/commands/ring"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "blkifctl",
	Short: "Inspect and drive the block-protocol core from the command line",
	Long: `blkifctl is an offline inspection tool for the xen block-protocol core.

It builds Connection attribute tuples, encodes and decodes ring request
slots, and decodes feature/geometry descriptors, all without
requiring a live xenstored or shared ring page.

Use "blkifctl [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cmdutil.Flags.Output, _ = cmd.Flags().GetString("output")
		cmdutil.Flags.ConfigPath, _ = cmd.Flags().GetString("config")
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("output", "o", "table", "Output format (table|json|yaml)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: $XDG_CONFIG_HOME/blkifctl/config.yaml)")

	rootCmd.AddCommand(connection.Cmd)
	rootCmd.AddCommand(ring.Cmd)
	rootCmd.AddCommand(descriptor.Cmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
