// Package region marks the profile positions at or above a hydropathy
// threshold and turns the result into a renderable chart.
package region

import (
	"context"
	"fmt"

	"hydropathy/internal/hydropathy"
	"hydropathy/internal/render"
)

// DefaultThreshold is the cutoff for candidate transmembrane positions.
const DefaultThreshold = 1.6

// Title is the chart title prefix.
const Title = "Kyte-Doolittle Hydropathy Plot"

// Point is one plotted profile value.
type Point struct {
	Position int
	Score    float64
}

// Bundle is the presenter's output: everything needed to draw the plot.
type Bundle struct {
	Name        string
	Points      []Point
	Threshold   float64
	Highlighted []int // positions with Score >= Threshold, ascending
}

// Span is the x-range drawn for highlighted position i.
func Span(i int) (lo, hi float64) {
	return float64(i) - 0.5, float64(i) + 0.5
}

// Presenter applies a fixed threshold to profiles.
type Presenter struct {
	Threshold float64
}

// NewPresenter returns a Presenter using threshold.
func NewPresenter(threshold float64) Presenter {
	return Presenter{Threshold: threshold}
}

// Present builds the bundle for the named profile. Every position meeting
// the threshold is reported on its own; runs are not merged.
func (p Presenter) Present(name string, prof hydropathy.Profile) Bundle {
	b := Bundle{
		Name:      name,
		Points:    make([]Point, len(prof)),
		Threshold: p.Threshold,
	}
	for i, v := range prof {
		b.Points[i] = Point{Position: i, Score: v}
		if v >= p.Threshold {
			b.Highlighted = append(b.Highlighted, i)
		}
	}
	return b
}

// Chart converts the bundle to the renderer's chart model.
func (b Bundle) Chart() render.Chart {
	xs := make([]float64, len(b.Points))
	ys := make([]float64, len(b.Points))
	for i, pt := range b.Points {
		xs[i] = float64(pt.Position)
		ys[i] = pt.Score
	}
	bands := make([]render.Band, len(b.Highlighted))
	for i, pos := range b.Highlighted {
		lo, hi := Span(pos)
		bands[i] = render.Band{Lo: lo, Hi: hi}
	}
	title := Title
	if b.Name != "" {
		title = fmt.Sprintf("%s: %s", Title, b.Name)
	}
	return render.Chart{
		Title:     title,
		XLabel:    "Amino Acid Position",
		YLabel:    "Hydropathy",
		Series:    render.Series{Label: "Hydropathy", X: xs, Y: ys},
		Reference: render.Reference{Label: fmt.Sprintf("Threshold = %g", b.Threshold), Y: b.Threshold},
		Bands:     bands,
	}
}

// Render hands the bundle to r.
func (p Presenter) Render(ctx context.Context, r render.Renderer, b Bundle) error {
	if err := r.Render(ctx, b.Chart()); err != nil {
		return fmt.Errorf("render %q: %w", b.Name, err)
	}
	return nil
}
