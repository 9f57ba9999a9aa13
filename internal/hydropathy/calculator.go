package hydropathy

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultWindow is the window size used when none is configured.
const DefaultWindow = 6

// minBlock keeps tiny sequences on a single goroutine.
const minBlock = 4096

// ErrInvalidWindowSize is returned for a window size below 1.
var ErrInvalidWindowSize = errors.New("window size must be a positive integer")

// Profile holds one averaged score per residue position.
type Profile []float64

// Calculator averages scale values over a centered window.
type Calculator struct {
	Scale   Scale
	Window  int
	Workers int // ProfileContext only; 0 = all CPUs
}

// NewCalculator validates window and returns a Calculator on scale.
func NewCalculator(scale Scale, window int) (Calculator, error) {
	c := Calculator{Scale: scale, Window: window}
	if err := c.Validate(); err != nil {
		return Calculator{}, err
	}
	return c, nil
}

// Validate checks the window size.
func (c Calculator) Validate() error {
	if c.Window < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWindowSize, c.Window)
	}
	return nil
}

// Window returns the half-open bounds [lo, hi) of the window centered on i
// in a sequence of length n. The bounds are clipped to the sequence, and an
// even w takes one extra residue on the right.
func Window(i, n, w int) (lo, hi int) {
	half := w / 2
	lo = max(0, i-half)
	hi = min(n, i+half+1)
	return lo, hi
}

// Profile computes the profile of seq serially.
func (c Calculator) Profile(seq string) (Profile, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	res := []rune(seq)
	out := make(Profile, len(res))
	c.fill(res, out, 0, len(res))
	return out, nil
}

// ProfileContext computes the same profile as Profile, splitting positions
// into contiguous blocks scored concurrently. ctx is checked between blocks.
func (c Calculator) ProfileContext(ctx context.Context, seq string) (Profile, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	res := []rune(seq)
	n := len(res)
	out := make(Profile, n)

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	block := (n + workers - 1) / workers
	if block < minBlock {
		block = minBlock
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += block {
		lo, hi := lo, min(n, lo+block)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c.fill(res, out, lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// fill scores positions [from, to) of res into out.
func (c Calculator) fill(res []rune, out Profile, from, to int) {
	n := len(res)
	for i := from; i < to; i++ {
		lo, hi := Window(i, n, c.Window)
		sum := 0.0
		for _, r := range res[lo:hi] {
			sum += c.Scale.Value(r)
		}
		out[i] = sum / float64(hi-lo)
	}
}
