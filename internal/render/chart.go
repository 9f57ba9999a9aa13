// Package render defines the drawing capability the presenter hands its
// data to, along with its image and terminal implementations.
package render

import (
	"context"
	"errors"
)

// ErrEmptyChart is returned by renderers that cannot draw a series with no
// points.
var ErrEmptyChart = errors.New("render: chart has no data points")

// Series is a labeled line of (X[i], Y[i]) points.
type Series struct {
	Label string
	X     []float64
	Y     []float64
}

// Reference is a horizontal line at Y.
type Reference struct {
	Label string
	Y     float64
}

// Band is a highlighted x-range [Lo, Hi] spanning the whole y-axis.
type Band struct {
	Lo, Hi float64
}

// Chart is everything a renderer needs to draw one plot.
type Chart struct {
	Title  string
	XLabel string
	YLabel string

	Series    Series
	Reference Reference
	Bands     []Band
}

// Len is the number of points in the series.
func (c Chart) Len() int { return len(c.Series.Y) }

// Renderer draws a Chart somewhere.
type Renderer interface {
	Render(ctx context.Context, c Chart) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(ctx context.Context, c Chart) error

func (f RendererFunc) Render(ctx context.Context, c Chart) error { return f(ctx, c) }

// yBounds returns the min and max over the series and the reference line.
func yBounds(c Chart) (lo, hi float64) {
	lo, hi = c.Reference.Y, c.Reference.Y
	for _, v := range c.Series.Y {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
