package main

import (
	"github.com/mikenye/polyclip2d"
	"github.com/mikenye/polyclip2d/render"
)

func renderSVG(path string, p polyclip2d.Polygon) error {
	return render.WriteFile(path, p)
}
