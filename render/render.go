// Package render draws a polyclip2d.Polygon's contours to SVG using
// tdewolff/canvas, for visual debugging of boolean operation results. It is
// not part of the boolean engine itself.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/mikenye/polyclip2d"
	"github.com/tdewolff/canvas"
)

// ToSVG writes an SVG rendering of every contour in p to w, as one black
// path holding each contour as a closed subpath. Hole contours (odd depth in a BooleanResult) are
// drawn the same as shells: ToSVG only visualizes geometry, it does not
// recompute or display nesting.
func ToSVG(w io.Writer, p polyclip2d.Polygon) error {
	path := &canvas.Path{}

	minX, minY, maxX, maxY := 0.0, 0.0, 0.0, 0.0
	first := true
	for _, contour := range p.Contours {
		if len(contour) == 0 {
			continue
		}
		for i, pt := range contour {
			x, y := pt.X(), pt.Y()
			if first {
				minX, maxX, minY, maxY = x, x, y, y
				first = false
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
			if i == 0 {
				path.MoveTo(x, y)
			} else {
				path.LineTo(x, y)
			}
		}
		path.Close()
	}

	width := maxX - minX
	height := maxY - minY
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	c := canvas.New()
	c.Open(width, height)
	c.SetColor(canvas.Black)
	c.DrawPath(-minX, -minY, path)
	c.WriteSVG(w)
	return nil
}

// WriteFile renders p to an SVG file at path.
func WriteFile(path string, p polyclip2d.Polygon) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return ToSVG(f, p)
}
