package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// PrintTable writes data as a formatted table to w.
func PrintTable(w io.Writer, data TableRenderer) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(data.Headers())
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, row := range data.Rows() {
		table.Append(row)
	}
	table.Render()
	return nil
}

// KVTable is an ad-hoc TableRenderer over (key, value) pairs, used to
// render a single decoded descriptor.
type KVTable [][2]string

func (t KVTable) Headers() []string { return []string{"FIELD", "VALUE"} }

func (t KVTable) Rows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, pair := range t {
		rows = append(rows, []string{pair[0], pair[1]})
	}
	return rows
}

// TupleTable renders kv.Tuple-shaped rows for `connection emit`.
type TupleTable [][3]string

func (t TupleTable) Headers() []string { return []string{"DOMID", "PATH", "VALUE"} }

func (t TupleTable) Rows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, r := range t {
		rows = append(rows, []string{r[0], r[1], r[2]})
	}
	return rows
}
