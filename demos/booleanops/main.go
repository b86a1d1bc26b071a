// Command booleanops is a minimal demonstration of polyclip2d's four
// boolean operations, run against a pair of overlapping rhombuses.
package main

import (
	"fmt"

	"github.com/mikenye/polyclip2d"
	"github.com/mikenye/polyclip2d/options"
	"github.com/mikenye/polyclip2d/point"
)

func main() {
	subject := polyclip2d.NewPolygon([]point.Point{
		point.New(1, 1), point.New(3.5, 1), point.New(5, 3), point.New(3, 3),
	})
	clip := polyclip2d.NewPolygon([]point.Point{
		point.New(3, 2), point.New(5, 2), point.New(7, 4), point.New(5, 4),
	})

	ops := map[string]func(a, b polyclip2d.Polygon, opts ...options.GeometryOptionsFunc) polyclip2d.BooleanResult{
		"union":        polyclip2d.Union,
		"intersection": polyclip2d.Intersection,
		"difference":   polyclip2d.Difference,
		"xor":          polyclip2d.Xor,
	}

	for _, name := range []string{"union", "intersection", "difference", "xor"} {
		result := ops[name](subject, clip)
		fmt.Printf("%s:\n", name)
		for i, contour := range result.Polygon.Contours {
			fmt.Printf("  contour %d:", i)
			for _, p := range contour {
				fmt.Printf(" %s", p)
			}
			fmt.Println()
		}
	}
}
