// Package descriptor implements the `blkifctl descriptor` command group.
package descriptor

import "github.com/spf13/cobra"

// Cmd is the parent command for descriptor decode operations.
var Cmd = &cobra.Command{
	Use:   "descriptor",
	Short: "Decode FeatureIndirect, DiskInfo, and RingInfo descriptors",
}

func init() {
	Cmd.AddCommand(decodeCmd)
}
