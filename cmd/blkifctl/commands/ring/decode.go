package ring

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gsfyrakis/mirage-block-xen/cmd/blkifctl/cmdutil"
	"github.com/gsfyrakis/mirage-block-xen/internal/cli/output"
	blkring "github.com/gsfyrakis/mirage-block-xen/internal/protocol/blkif/ring"
)

var decodeFlags struct {
	abi   int
	shape string
	hex   string
}

var decodeRequestCmd = &cobra.Command{
	Use:   "decode-request",
	Short: "Decode a ring slot's raw bytes into a Request",
	Long: `Decode a ring slot's raw hex bytes into a Request. The read
algorithm sniffs the op byte itself, so --shape only selects which of the
two (ABI, direct) or (ABI, indirect) marshallers to validate slot sizing
against; decoding always follows the wire's own framing.

Example:
  blkifctl ring decode-request --abi 64 --shape direct --hex 00020000...`,
	RunE: runDecode,
}

func init() {
	f := decodeRequestCmd.Flags()
	f.IntVar(&decodeFlags.abi, "abi", 64, "ABI width: 32 or 64")
	f.StringVar(&decodeFlags.shape, "shape", "direct", "request shape: direct or indirect")
	f.StringVar(&decodeFlags.hex, "hex", "", "hex-encoded ring slot bytes (required)")
	_ = decodeRequestCmd.MarkFlagRequired("hex")
}

func runDecode(cmd *cobra.Command, args []string) error {
	m, err := marshallerFor(decodeFlags.abi, decodeFlags.shape)
	if err != nil {
		return err
	}

	buf, err := hex.DecodeString(decodeFlags.hex)
	if err != nil {
		return fmt.Errorf("invalid --hex: %w", err)
	}

	req, err := m.ReadRequest(buf)
	if err != nil {
		return err
	}

	rows := output.KVTable{
		{"op", req.Op.String()},
		{"op_present", strconv.FormatBool(req.OpPresent)},
		{"handle", strconv.Itoa(int(req.Handle))},
		{"id", strconv.FormatUint(req.ID, 10)},
		{"sector", strconv.FormatUint(req.Sector, 10)},
		{"nr_segs", strconv.Itoa(req.NrSegs)},
	}
	if req.Segs.Kind == blkring.Direct {
		rows = append(rows, [2]string{"segments", fmt.Sprintf("%d direct", len(req.Segs.DirectSegs))})
	} else {
		rows = append(rows, [2]string{"grant_refs", fmt.Sprintf("%v", req.Segs.IndirectGrefs)})
	}

	return cmdutil.PrintOutput(os.Stdout, req, false, "", rows)
}
