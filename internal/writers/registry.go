package writers

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"hydropathy/internal/render"
)

// Target is where a renderer sends its output.
type Target struct {
	Out    io.Writer
	Width  int // terminal columns or image pixels; 0 = renderer default
	Height int // terminal rows or image pixels; 0 = renderer default
}

// Format describes one registered output format.
type Format struct {
	Name string
	// File reports whether output goes to a file rather than stdout.
	File bool
	// DefaultPath is used when File is set and no path was given.
	DefaultPath string
	New         func(Target) render.Renderer
}

// Formats is the registry (name → format). Register in init() blocks.
var Formats = map[string]Format{}

// Register adds f (idempotent last-wins).
func Register(f Format) { Formats[f.Name] = f }

// Lookup returns the format registered under name.
func Lookup(name string) (Format, error) {
	f, ok := Formats[name]
	if !ok {
		return Format{}, fmt.Errorf("unknown output format %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names lists registered formats, sorted.
func Names() []string {
	names := make([]string, 0, len(Formats))
	for n := range Formats {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Format{
		Name: "terminal",
		New: func(t Target) render.Renderer {
			return render.Terminal{W: t.Out, Width: t.Width, Height: t.Height}
		},
	})
	for _, name := range []string{render.FormatPNG, render.FormatSVG} {
		name := name
		Register(Format{
			Name:        name,
			File:        true,
			DefaultPath: "hydropathy." + name,
			New: func(t Target) render.Renderer {
				return render.Image{W: t.Out, Format: name, Width: t.Width, Height: t.Height}
			},
		})
	}
}
