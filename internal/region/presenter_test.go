package region

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hydropathy/internal/hydropathy"
	"hydropathy/internal/render"
)

func TestThresholdInclusive(t *testing.T) {
	b := NewPresenter(DefaultThreshold).Present("x", hydropathy.Profile{1.5, 1.6, 1.7, -2})
	assert.Equal(t, []int{1, 2}, b.Highlighted)
	assert.Equal(t, DefaultThreshold, b.Threshold)
}

func TestPointsInOrder(t *testing.T) {
	prof := hydropathy.Profile{0.1, -0.2, 3}
	b := NewPresenter(DefaultThreshold).Present("x", prof)
	require.Len(t, b.Points, 3)
	for i, pt := range b.Points {
		assert.Equal(t, i, pt.Position)
		assert.Equal(t, prof[i], pt.Score)
	}
}

func TestAllHydrophobicHighlighted(t *testing.T) {
	calc, err := hydropathy.NewCalculator(hydropathy.KyteDoolittle(), 4)
	require.NoError(t, err)
	prof, err := calc.Profile("IIIIII")
	require.NoError(t, err)

	b := NewPresenter(DefaultThreshold).Present("ile6", prof)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, b.Highlighted)
}

func TestEmptyProfile(t *testing.T) {
	b := NewPresenter(DefaultThreshold).Present("empty", nil)
	assert.Empty(t, b.Points)
	assert.Empty(t, b.Highlighted)
	c := b.Chart()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Bands)
}

func TestSpan(t *testing.T) {
	lo, hi := Span(3)
	assert.Equal(t, 2.5, lo)
	assert.Equal(t, 3.5, hi)
}

func TestChartContract(t *testing.T) {
	b := NewPresenter(DefaultThreshold).Present("seq1", hydropathy.Profile{2, 0, 2, 2})
	c := b.Chart()

	assert.Equal(t, "Kyte-Doolittle Hydropathy Plot: seq1", c.Title)
	assert.Equal(t, []float64{0, 1, 2, 3}, c.Series.X)
	assert.Equal(t, []float64{2, 0, 2, 2}, c.Series.Y)
	assert.Equal(t, "Threshold = 1.6", c.Reference.Label)
	assert.Equal(t, 1.6, c.Reference.Y)
	// Adjacent positions 2 and 3 stay separate bands that touch at 2.5.
	assert.Equal(t, []render.Band{{Lo: -0.5, Hi: 0.5}, {Lo: 1.5, Hi: 2.5}, {Lo: 2.5, Hi: 3.5}}, c.Bands)
}

func TestRenderHandsChartToRenderer(t *testing.T) {
	var got render.Chart
	r := render.RendererFunc(func(_ context.Context, c render.Chart) error {
		got = c
		return nil
	})
	p := NewPresenter(DefaultThreshold)
	require.NoError(t, p.Render(context.Background(), r, p.Present("s", hydropathy.Profile{4.5})))
	assert.Equal(t, 1, got.Len())
	assert.Len(t, got.Bands, 1)
}

func TestRenderWrapsError(t *testing.T) {
	boom := errors.New("boom")
	r := render.RendererFunc(func(context.Context, render.Chart) error { return boom })
	p := NewPresenter(DefaultThreshold)
	err := p.Render(context.Background(), r, p.Present("s", hydropathy.Profile{1}))
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `"s"`)
}
