package render

import (
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultTermWidth  = 80
	defaultTermHeight = 15
	labelWidth        = 8 // "%7.2f" plus the axis rune

	dotGlyph       = "●"
	thresholdGlyph = "─"
	bandGlyph      = "░"
)

// Terminal draws the chart as text. Styling comes from a lipgloss renderer
// bound to W, so colors are dropped when W is not a terminal.
type Terminal struct {
	W      io.Writer
	Width  int // total columns; 0 = 80
	Height int // plot rows; 0 = 15
}

type termStyles struct {
	title, axis, line, threshold, band, legend lipgloss.Style
}

func newTermStyles(w io.Writer) termStyles {
	lr := lipgloss.NewRenderer(w)
	return termStyles{
		title:     lr.NewStyle().Bold(true),
		axis:      lr.NewStyle().Foreground(lipgloss.Color("8")),
		line:      lr.NewStyle().Foreground(lipgloss.Color("12")),
		threshold: lr.NewStyle().Foreground(lipgloss.Color("9")),
		band:      lr.NewStyle().Foreground(lipgloss.Color("214")),
		legend:    lr.NewStyle().Faint(true).PaddingLeft(labelWidth),
	}
}

func (t Terminal) Render(ctx context.Context, c Chart) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	st := newTermStyles(t.W)
	var out strings.Builder
	out.WriteString(st.title.Render(c.Title))
	out.WriteByte('\n')
	if c.Len() == 0 {
		out.WriteString(st.axis.Render("(no residues to plot)"))
		out.WriteByte('\n')
		_, err := io.WriteString(t.W, out.String())
		return err
	}

	width, height := t.Width, t.Height
	if width <= 0 {
		width = defaultTermWidth
	}
	if height < 3 {
		height = defaultTermHeight
	}
	cols, vals, shaded := bucketize(c, max(1, width-labelWidth-1))

	lo, hi := yBounds(c)
	row := func(v float64) int {
		if hi == lo {
			return height / 2
		}
		return int(math.Round((hi - v) / (hi - lo) * float64(height-1)))
	}
	refRow := row(c.Reference.Y)

	fmt.Fprintln(&out, st.axis.Render(c.YLabel))
	for r := 0; r < height; r++ {
		label := strings.Repeat(" ", labelWidth-1)
		switch r {
		case 0:
			label = fmt.Sprintf("%7.2f", hi)
		case refRow:
			label = fmt.Sprintf("%7.2f", c.Reference.Y)
		case height - 1:
			label = fmt.Sprintf("%7.2f", lo)
		}
		out.WriteString(st.axis.Render(label + "│"))
		for col := 0; col < cols; col++ {
			switch {
			case row(vals[col]) == r:
				out.WriteString(st.line.Render(dotGlyph))
			case r == refRow:
				out.WriteString(st.threshold.Render(thresholdGlyph))
			case shaded[col]:
				out.WriteString(st.band.Render(bandGlyph))
			default:
				out.WriteByte(' ')
			}
		}
		out.WriteByte('\n')
	}

	first := int(c.Series.X[0])
	last := int(c.Series.X[c.Len()-1])
	out.WriteString(st.axis.Render(strings.Repeat(" ", labelWidth-1) + "└" + strings.Repeat("─", cols)))
	out.WriteByte('\n')
	left, right := fmt.Sprint(first), fmt.Sprint(last)
	gap := max(1, cols-len(left)-len(right)+1)
	out.WriteString(st.axis.Render(strings.Repeat(" ", labelWidth) + left + strings.Repeat(" ", gap) + right))
	out.WriteByte('\n')
	out.WriteString(st.axis.Render(strings.Repeat(" ", labelWidth) + c.XLabel))
	out.WriteByte('\n')

	legend := fmt.Sprintf("%s %s   %s %s   %s >= %g",
		st.line.Render(dotGlyph), c.Series.Label,
		st.threshold.Render(thresholdGlyph), c.Reference.Label,
		st.band.Render(bandGlyph), c.Reference.Y)
	out.WriteString(st.legend.Render(legend))
	out.WriteByte('\n')

	_, err := io.WriteString(t.W, out.String())
	return err
}

// bucketize folds the series into at most maxCols columns. Each column holds
// the mean of its points and is shaded when any of its points lies in a band.
func bucketize(c Chart, maxCols int) (cols int, vals []float64, shaded []bool) {
	n := c.Len()
	size := (n + maxCols - 1) / maxCols
	cols = (n + size - 1) / size

	inBand := make([]bool, n)
	bands := append([]Band(nil), c.Bands...)
	sort.Slice(bands, func(i, j int) bool { return bands[i].Lo < bands[j].Lo })
	bi := 0
	for i, x := range c.Series.X {
		for bi < len(bands) && bands[bi].Hi < x {
			bi++
		}
		inBand[i] = bi < len(bands) && bands[bi].Lo <= x
	}

	vals = make([]float64, cols)
	shaded = make([]bool, cols)
	for col := 0; col < cols; col++ {
		from, to := col*size, min(n, (col+1)*size)
		sum := 0.0
		for i := from; i < to; i++ {
			sum += c.Series.Y[i]
			shaded[col] = shaded[col] || inBand[i]
		}
		vals[col] = sum / float64(to-from)
	}
	return cols, vals, shaded
}
