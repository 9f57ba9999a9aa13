package render

import (
	"context"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Image formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

var (
	lineColor      = drawing.Color{R: 0, G: 0, B: 255, A: 255}
	thresholdColor = drawing.Color{R: 255, G: 0, B: 0, A: 255}
	bandColor      = drawing.Color{R: 255, G: 165, B: 0, A: 77}
	gridColor      = drawing.Color{R: 220, G: 220, B: 220, A: 255}
)

// Image draws the chart as a PNG or SVG into W.
type Image struct {
	W      io.Writer
	Format string // FormatPNG or FormatSVG
	Width  int    // 0 = 1200
	Height int    // 0 = 600
}

func (im Image) Render(ctx context.Context, c Chart) error {
	if c.Len() == 0 {
		return ErrEmptyChart
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	var rp chart.RendererProvider
	switch im.Format {
	case FormatPNG, "":
		rp = chart.PNG
	case FormatSVG:
		rp = chart.SVG
	default:
		return fmt.Errorf("render: unsupported image format %q", im.Format)
	}
	gc := im.build(c)
	if err := gc.Render(rp, im.W); err != nil {
		return fmt.Errorf("render %s: %w", im.Format, err)
	}
	return nil
}

func (im Image) build(c Chart) chart.Chart {
	width, height := im.Width, im.Height
	if width <= 0 {
		width = 1200
	}
	if height <= 0 {
		height = 600
	}

	n := c.Len()
	xmin, xmax := c.Series.X[0]-0.5, c.Series.X[n-1]+0.5
	ylo, yhi := yBounds(c)
	pad := (yhi - ylo) * 0.1
	if pad == 0 {
		pad = 1
	}
	ylo, yhi = ylo-pad, yhi+pad

	// Bands go first so the lines are drawn over them. Each band is a
	// two-point line at the top of the y-range filled down to the axis.
	series := make([]chart.Series, 0, len(c.Bands)+3)
	for _, b := range c.Bands {
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{b.Lo, b.Hi},
			YValues: []float64{yhi, yhi},
			Style:   chart.Style{StrokeColor: bandColor, StrokeWidth: 1, FillColor: bandColor},
		})
	}
	profile := chart.ContinuousSeries{
		Name:    c.Series.Label,
		XValues: c.Series.X,
		YValues: c.Series.Y,
		Style:   chart.Style{StrokeColor: lineColor, StrokeWidth: 1.5},
	}
	threshold := chart.ContinuousSeries{
		Name:    c.Reference.Label,
		XValues: []float64{xmin, xmax},
		YValues: []float64{c.Reference.Y, c.Reference.Y},
		Style:   chart.Style{StrokeColor: thresholdColor, StrokeWidth: 1.5, StrokeDashArray: []float64{6, 4}},
	}
	label := chart.AnnotationSeries{
		Annotations: []chart.Value2{{XValue: xmin, YValue: c.Reference.Y, Label: fmt.Sprintf("%g", c.Reference.Y)}},
	}
	series = append(series, profile, threshold, label)

	grid := chart.Style{StrokeColor: gridColor, StrokeWidth: 1}
	gc := chart.Chart{
		Title:      c.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           c.XLabel,
			Range:          &chart.ContinuousRange{Min: xmin, Max: xmax},
			GridMajorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           c.YLabel,
			Range:          &chart.ContinuousRange{Min: ylo, Max: yhi},
			GridMajorStyle: grid,
		},
		Series: series,
	}
	// The legend only lists the named lines, not one entry per band.
	legend := gc
	legend.Series = []chart.Series{profile, threshold}
	gc.Elements = []chart.Renderable{chart.Legend(&legend)}
	return gc
}
