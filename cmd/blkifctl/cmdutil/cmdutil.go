// Package cmdutil provides shared utilities for blkifctl commands.
package cmdutil

import (
	"fmt"
	"io"

	"github.com/gsfyrakis/mirage-block-xen/internal/cli/output"
)

// Flags stores global flag values accessible by subcommands.
var Flags = &GlobalFlags{}

// GlobalFlags holds the global flag values set on the root command.
type GlobalFlags struct {
	Output     string
	ConfigPath string
}

// GetOutputFormat returns the parsed output format, defaulting to table.
func GetOutputFormat() (output.Format, error) {
	return output.ParseFormat(Flags.Output)
}

// PrintOutput prints data in the configured format. For table format it
// uses tableRenderer; for JSON/YAML it marshals data directly.
func PrintOutput(w io.Writer, data any, isEmpty bool, emptyMsg string, tableRenderer output.TableRenderer) error {
	format, err := GetOutputFormat()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(w, data)
	case output.FormatYAML:
		return output.PrintYAML(w, data)
	default:
		if isEmpty {
			_, _ = fmt.Fprintln(w, emptyMsg)
			return nil
		}
		return output.PrintTable(w, tableRenderer)
	}
}
