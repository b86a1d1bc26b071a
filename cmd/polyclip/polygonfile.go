package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mikenye/polyclip2d"
	"github.com/mikenye/polyclip2d/numeric"
	"github.com/mikenye/polyclip2d/point"
	"gopkg.in/yaml.v3"
)

// fileContour is the on-disk representation of one contour: a flat list of
// [x,y] pairs. Closure is implicit, matching Polygon's own contour format.
type fileContour [][2]float64

// filePolygon is the on-disk representation of a [polyclip2d.Polygon],
// loaded and saved as either JSON or YAML depending on the file extension.
type filePolygon struct {
	Contours []fileContour `json:"contours" yaml:"contours"`
}

// loadPolygon reads a polygon file in JSON or YAML format, selected by the
// file's extension (".yaml"/".yml" for YAML, anything else for JSON).
func loadPolygon(path string) (polyclip2d.Polygon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return polyclip2d.Polygon{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var fp filePolygon
	if isYAMLPath(path) {
		if err := yaml.Unmarshal(data, &fp); err != nil {
			return polyclip2d.Polygon{}, fmt.Errorf("parsing %s as YAML: %w", path, err)
		}
	} else {
		if err := json.Unmarshal(data, &fp); err != nil {
			return polyclip2d.Polygon{}, fmt.Errorf("parsing %s as JSON: %w", path, err)
		}
	}

	return fp.toPolygon(), nil
}

// savePolygon writes result's polygon to path in JSON or YAML, selected the
// same way loadPolygon selects its input format.
func savePolygon(path string, p polyclip2d.Polygon) error {
	fp := fromPolygon(p)

	var data []byte
	var err error
	if isYAMLPath(path) {
		data, err = yaml.Marshal(fp)
	} else {
		data, err = json.MarshalIndent(fp, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// snapPolygon rounds p's coordinates to the nearest whole number wherever
// numeric.SnapToEpsilon finds one within epsilon, the CLI's handling for
// hand-edited polygon files whose coordinates were meant to be integers but
// carry float64 typing noise. epsilon <= 0 leaves p untouched.
func snapPolygon(p polyclip2d.Polygon, epsilon float64) polyclip2d.Polygon {
	if epsilon <= 0 {
		return p
	}
	contours := make([][]point.Point, len(p.Contours))
	for i, contour := range p.Contours {
		pts := make([]point.Point, len(contour))
		for j, pt := range contour {
			pts[j] = point.New(numeric.SnapToEpsilon(pt.X(), epsilon), numeric.SnapToEpsilon(pt.Y(), epsilon))
		}
		contours[i] = pts
	}
	return polyclip2d.NewPolygon(contours...)
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func (fp filePolygon) toPolygon() polyclip2d.Polygon {
	contours := make([][]point.Point, len(fp.Contours))
	for i, c := range fp.Contours {
		pts := make([]point.Point, len(c))
		for j, xy := range c {
			pts[j] = point.New(xy[0], xy[1])
		}
		contours[i] = pts
	}
	return polyclip2d.Polygon{Contours: contours}
}

func fromPolygon(p polyclip2d.Polygon) filePolygon {
	fp := filePolygon{Contours: make([]fileContour, len(p.Contours))}
	for i, contour := range p.Contours {
		fc := make(fileContour, len(contour))
		for j, pt := range contour {
			fc[j] = [2]float64{pt.X(), pt.Y()}
		}
		fp.Contours[i] = fc
	}
	return fp
}
