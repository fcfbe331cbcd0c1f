package reports

import (
	"io"
	"strconv"

	"github.com/dude333/histquote"
	"github.com/olekukonko/tablewriter"
)

// Table renders the series on a text table.
func Table(out io.Writer, s *histquote.Series) {
	table := tablewriter.NewWriter(out)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(s.Header())
	for i := range s.Rows {
		table.Append(s.Line(i))
	}
	table.Render()
}

// ListTable renders the archive summary.
func ListTable(out io.Writer, list []histquote.SeriesInfo) {
	table := tablewriter.NewWriter(out)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"symbol", "rows", "first", "last"})
	for _, l := range list {
		table.Append([]string{l.Symbol, strconv.Itoa(l.Rows), l.First, l.Last})
	}
	table.Render()
}
