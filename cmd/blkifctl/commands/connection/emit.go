package connection

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gsfyrakis/mirage-block-xen/cmd/blkifctl/cmdutil"
	"github.com/gsfyrakis/mirage-block-xen/internal/cli/output"
	"github.com/gsfyrakis/mirage-block-xen/internal/protocol/blkif/connection"
	"github.com/gsfyrakis/mirage-block-xen/internal/protocol/blkif/enum"
)

var emitFlags struct {
	virtualDevice string
	backendPath   string
	frontendPath  string
	backendDomID  int
	frontendDomID int
	mode          string
	media         string
	removable     bool
}

var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Emit the attribute tuples for a Connection",
	RunE:  runEmit,
}

func init() {
	f := emitCmd.Flags()
	f.StringVar(&emitFlags.virtualDevice, "virtual-device", "", "virtual device number (required)")
	f.StringVar(&emitFlags.backendPath, "backend-path", "", "backend node path (required)")
	f.StringVar(&emitFlags.frontendPath, "frontend-path", "", "frontend node path (required)")
	f.IntVar(&emitFlags.backendDomID, "backend-domid", 0, "backend domain id")
	f.IntVar(&emitFlags.frontendDomID, "frontend-domid", 0, "frontend domain id")
	f.StringVar(&emitFlags.mode, "mode", "w", "mode: r or w")
	f.StringVar(&emitFlags.media, "media", "disk", "media: disk or cdrom")
	f.BoolVar(&emitFlags.removable, "removable", false, "whether the device is removable")

	_ = emitCmd.MarkFlagRequired("virtual-device")
	_ = emitCmd.MarkFlagRequired("backend-path")
	_ = emitCmd.MarkFlagRequired("frontend-path")
}

func runEmit(cmd *cobra.Command, args []string) error {
	mode, ok := enum.ModeFromString(emitFlags.mode)
	if !ok {
		return fmt.Errorf("invalid --mode %q: must be r or w", emitFlags.mode)
	}
	media, ok := enum.MediaFromString(emitFlags.media)
	if !ok {
		return fmt.Errorf("invalid --media %q: must be disk or cdrom", emitFlags.media)
	}

	c := connection.Connection{
		VirtualDevice: emitFlags.virtualDevice,
		BackendPath:   emitFlags.backendPath,
		FrontendPath:  emitFlags.frontendPath,
		BackendDomID:  emitFlags.backendDomID,
		FrontendDomID: emitFlags.frontendDomID,
		Mode:          mode,
		Media:         media,
		Removable:     emitFlags.removable,
	}

	tuples := c.Emit()
	rows := make(output.TupleTable, 0, len(tuples))
	for _, t := range tuples {
		rows = append(rows, [3]string{strconv.Itoa(t.DomID), t.Path, t.Value})
	}

	return cmdutil.PrintOutput(os.Stdout, tuples, len(tuples) == 0, "No tuples emitted.", rows)
}
