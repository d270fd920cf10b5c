// Package connection implements the `blkifctl connection` command group.
package connection

import "github.com/spf13/cobra"

// Cmd is the parent command for Connection descriptor operations.
var Cmd = &cobra.Command{
	Use:   "connection",
	Short: "Build Connection attribute tuples",
	Long: `Flatten a Connection descriptor into the (domid, path, value) tuples
that must be written to the KV store to bring a session into the
Initialising state.`,
}

func init() {
	Cmd.AddCommand(emitCmd)
}
