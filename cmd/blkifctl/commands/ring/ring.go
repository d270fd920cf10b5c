// Package ring implements the `blkifctl ring` command group.
package ring

import "github.com/spf13/cobra"

// Cmd is the parent command for ring request encode/decode operations.
var Cmd = &cobra.Command{
	Use:   "ring",
	Short: "Encode and decode ring request slots",
	Long: `Encode a Request into a ring slot's raw bytes, or decode a ring
slot's raw bytes back into a Request, for one of the four (ABI width,
shape) marshaller combinations.`,
}

func init() {
	Cmd.AddCommand(encodeRequestCmd)
	Cmd.AddCommand(decodeRequestCmd)
}
