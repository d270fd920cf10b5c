package descriptor

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gsfyrakis/mirage-block-xen/cmd/blkifctl/cmdutil"
	"github.com/gsfyrakis/mirage-block-xen/internal/cli/output"
	"github.com/gsfyrakis/mirage-block-xen/internal/protocol/blkif/descriptor"
	"github.com/gsfyrakis/mirage-block-xen/internal/protocol/blkif/kv"
)

var decodeFlags struct {
	kind  string
	attrs []string
}

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a descriptor from key=value attribute pairs",
	Long: `Decode a FeatureIndirect, DiskInfo, or RingInfo descriptor from
key=value attribute pairs, as they would be read back from the KV store.

Examples:
  blkifctl descriptor decode --kind disk-info --attr sector-size=512 --attr sectors=2097152 --attr info=5
  blkifctl descriptor decode --kind ring-info --attr ring-ref=8 --attr event-channel=3 --attr protocol=x86_64-abi
  blkifctl descriptor decode --kind feature-indirect --attr feature-max-indirect-segments=256`,
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&decodeFlags.kind, "kind", "", "descriptor kind: disk-info, ring-info, or feature-indirect (required)")
	decodeCmd.Flags().StringArrayVar(&decodeFlags.attrs, "attr", nil, "key=value attribute pair, repeatable")
	_ = decodeCmd.MarkFlagRequired("kind")
}

func parseAttrs(pairs []string) (kv.Attrs, error) {
	attrs := make(kv.Attrs, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --attr %q: expected key=value", p)
		}
		attrs[key] = value
	}
	return attrs, nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	attrs, err := parseAttrs(decodeFlags.attrs)
	if err != nil {
		return err
	}

	var rows output.KVTable
	var result any

	switch decodeFlags.kind {
	case "disk-info":
		d, err := descriptor.DiskInfoFromAssoc(attrs)
		if err != nil {
			return err
		}
		rows = output.KVTable{
			{"sector_size", strconv.Itoa(d.SectorSize)},
			{"sectors", strconv.FormatInt(d.Sectors, 10)},
			{"media", d.Media.ToString()},
			{"mode", d.Mode.ToString()},
		}
		result = d
	case "ring-info":
		r, err := descriptor.RingInfoFromAssoc(attrs)
		if err != nil {
			return err
		}
		rows = output.KVTable{
			{"ref", strconv.FormatUint(uint64(r.Ref), 10)},
			{"event_channel", strconv.Itoa(r.EventChannel)},
			{"protocol", r.Protocol.ToString()},
		}
		result = r
	case "feature-indirect":
		f, err := descriptor.FeatureIndirectFromAssoc(attrs)
		if err != nil {
			return err
		}
		rows = output.KVTable{
			{"max_indirect_segments", strconv.Itoa(f.MaxIndirectSegments)},
		}
		result = f
	default:
		return fmt.Errorf("unknown --kind %q: must be disk-info, ring-info, or feature-indirect", decodeFlags.kind)
	}

	return cmdutil.PrintOutput(os.Stdout, result, false, "", rows)
}
