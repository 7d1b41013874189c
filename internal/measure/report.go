package measure

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	fastest = color.New(color.FgGreen, color.Bold)
	slowest = color.New(color.FgRed)
)

// Render rs as a table, one row per result. Within a suite the fastest subject is highlighted in
// green and the slowest in red, unless color.NoColor is set.
func Render(w io.Writer, rs []Result) error {
	lo, hi := make(map[string]float64), make(map[string]float64)
	for _, r := range rs {
		if v, ok := lo[r.Suite]; !ok || r.NsPerKey < v {
			lo[r.Suite] = r.NsPerKey
		}
		if v, ok := hi[r.Suite]; !ok || r.NsPerKey > v {
			hi[r.Suite] = r.NsPerKey
		}
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.AppendHeader(table.Row{"Suite", "Subject", "Keys", "ns/key", "allocs/op", "bytes/op", "depth"})
	for i, r := range rs {
		if i > 0 && rs[i-1].Suite != r.Suite {
			tbl.AppendSeparator()
		}
		ns := strconv.FormatFloat(r.NsPerKey, 'f', 2, 64)
		switch {
		case lo[r.Suite] == hi[r.Suite]:
		case r.NsPerKey == lo[r.Suite]:
			ns = fastest.Sprint(ns)
		case r.NsPerKey == hi[r.Suite]:
			ns = slowest.Sprint(ns)
		}
		depth := "-"
		if r.Depth > 0 {
			depth = humanize.Comma(int64(r.Depth))
		}
		tbl.AppendRow(table.Row{r.Suite, r.Subject, humanize.Comma(int64(r.N)), ns,
			humanize.Comma(r.AllocsPerOp), humanize.IBytes(uint64(r.BytesPerOp)), depth})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d results", len(rs))})
	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}
