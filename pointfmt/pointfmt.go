// Package pointfmt renders slices of points as aligned rows for debugging
// output. Each point goes on its own "( x, y[, z] )" line with every
// coordinate column right-aligned to the widest cell in that column.
package pointfmt

import (
	"fmt"
	"strings"

	dw "github.com/mattn/go-runewidth"

	"github.com/hnimtadd/points"
	"github.com/hnimtadd/points/numeric"
)

// Rows2 renders the two dimensional points one per line with aligned
// coordinate columns. Returns "" for an empty slice.
func Rows2[N numeric.Real](ps []points.Point2D[N]) string {
	rows := make([][]string, len(ps))
	for i, p := range ps {
		arr := p.Array()
		rows[i] = cells(arr[:])
	}
	return render(rows)
}

// Rows3 renders the three dimensional points one per line with aligned
// coordinate columns. Returns "" for an empty slice.
func Rows3[N numeric.Real](ps []points.Point3D[N]) string {
	rows := make([][]string, len(ps))
	for i, p := range ps {
		arr := p.Array()
		rows[i] = cells(arr[:])
	}
	return render(rows)
}

func cells[N numeric.Real](coords []N) []string {
	out := make([]string, len(coords))
	for i, c := range coords {
		out[i] = fmt.Sprint(c)
	}
	return out
}

// render pads every cell to its column width and wraps each row in the
// point display format. Widths are display widths, not byte lengths.
func render(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := dw.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString("( ")
		for i, cell := range row {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strings.Repeat(" ", widths[i]-dw.StringWidth(cell)))
			sb.WriteString(cell)
		}
		sb.WriteString(" )\n")
	}
	return sb.String()
}
