package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleChart(ys ...float64) Chart {
	xs := make([]float64, len(ys))
	var bands []Band
	for i, y := range ys {
		xs[i] = float64(i)
		if y >= 1.6 {
			bands = append(bands, Band{Lo: float64(i) - 0.5, Hi: float64(i) + 0.5})
		}
	}
	return Chart{
		Title:     "Kyte-Doolittle Hydropathy Plot: test",
		XLabel:    "Amino Acid Position",
		YLabel:    "Hydropathy",
		Series:    Series{Label: "Hydropathy", X: xs, Y: ys},
		Reference: Reference{Label: "Threshold = 1.6", Y: 1.6},
		Bands:     bands,
	}
}

func TestImagePNG(t *testing.T) {
	var buf bytes.Buffer
	err := Image{W: &buf, Format: FormatPNG, Width: 400, Height: 200}.Render(context.Background(), sampleChart(-1, 0.5, 2, 3, 2, -0.5))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")), "missing PNG signature")
}

func TestImageSVG(t *testing.T) {
	var buf bytes.Buffer
	err := Image{W: &buf, Format: FormatSVG}.Render(context.Background(), sampleChart(4.5, 4.5, 4.5))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<svg")
	assert.Contains(t, buf.String(), "Threshold = 1.6")
}

func TestImageSinglePointFlatProfile(t *testing.T) {
	var buf bytes.Buffer
	err := Image{W: &buf, Format: FormatPNG}.Render(context.Background(), sampleChart(1.6))
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

func TestImageEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := Image{W: &buf}.Render(context.Background(), sampleChart())
	assert.ErrorIs(t, err, ErrEmptyChart)
	assert.Zero(t, buf.Len())
}

func TestImageUnknownFormat(t *testing.T) {
	err := Image{W: &bytes.Buffer{}, Format: "gif"}.Render(context.Background(), sampleChart(1))
	assert.Error(t, err)
}

func TestImageCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Image{W: &bytes.Buffer{}}.Render(ctx, sampleChart(1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTerminalRender(t *testing.T) {
	var buf bytes.Buffer
	err := Terminal{W: &buf, Width: 40, Height: 8}.Render(context.Background(), sampleChart(4.5, 4.5, 4.5, 4.5, 4.5, 4.5))
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "Kyte-Doolittle Hydropathy Plot: test")
	assert.Contains(t, out, "Threshold = 1.6")
	assert.Contains(t, out, "Amino Acid Position")
	// One legend dot plus one per column.
	assert.Equal(t, 7, strings.Count(out, dotGlyph))
	assert.Contains(t, out, bandGlyph)
	assert.Contains(t, out, "4.50")
	assert.Contains(t, out, "1.60")
}

func TestTerminalNoBandsBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	err := Terminal{W: &buf, Width: 40, Height: 8}.Render(context.Background(), sampleChart(-1, -2, -3))
	require.NoError(t, err)
	// Only the legend sample is shaded.
	assert.Equal(t, 1, strings.Count(buf.String(), bandGlyph))
}

func TestTerminalEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Terminal{W: &buf}.Render(context.Background(), sampleChart()))
	assert.Contains(t, buf.String(), "no residues")
}

func TestBucketizeLongSequence(t *testing.T) {
	ys := make([]float64, 100)
	for i := range ys {
		ys[i] = -1
	}
	ys[57] = 3
	cols, vals, shaded := bucketize(sampleChart(ys...), 30)

	assert.Equal(t, 25, cols) // bucket size 4
	require.Len(t, vals, cols)
	assert.InDelta(t, (3.0-3)/4, vals[14], 1e-12)
	for i, s := range shaded {
		assert.Equal(t, i == 14, s, "column %d", i)
	}
}
