package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

const (
	minCellWidth = 6
	cellPadding  = 2
)

// terminalWidth is a test seam. It returns 0 when w is not a terminal.
var terminalWidth = func(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// renderTable writes list as an aligned table with a leading row number
// column. When the output is a terminal, cells are clipped so a row fits
// its width.
func renderTable(w io.Writer, list []models.Record) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "(no records)")
		return err
	}

	limit := cellLimit(terminalWidth(w), len(models.Fields)+1)

	tw := tabwriter.NewWriter(w, 0, 0, cellPadding, ' ', 0)

	header := make([]string, 0, len(models.Fields)+1)
	header = append(header, "#")
	for _, f := range models.Fields {
		header = append(header, clip(f.Label(), limit))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for i, r := range list {
		cells := make([]string, 0, len(models.Fields)+1)
		cells = append(cells, fmt.Sprint(i+1))
		for _, v := range r.Values() {
			cells = append(cells, clip(v, limit))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// cellLimit is the widest a cell may be; 0 means unlimited.
func cellLimit(width, columns int) int {
	if width <= 0 {
		return 0
	}
	n := width/columns - cellPadding
	if n < minCellWidth {
		return minCellWidth
	}
	return n
}

// cellSpace flattens characters that would break a tabwriter row.
var cellSpace = strings.NewReplacer("\r\n", " ", "\t", " ", "\n", " ", "\r", " ", "\v", " ", "\f", " ")

func clip(s string, limit int) string {
	s = cellSpace.Replace(s)
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit-1]) + "…"
}
