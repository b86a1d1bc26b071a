package sweep

import "github.com/mikenye/polyclip2d/point"

// rotations returns every cyclic rotation of points, so tests can assert a
// contour matches an expected loop without depending on which vertex the
// Contour Assembler happened to start from.
func rotations(points []point.Point) [][]point.Point {
	n := len(points)
	out := make([][]point.Point, 0, n)
	for start := 0; start < n; start++ {
		rotated := make([]point.Point, n)
		for i := 0; i < n; i++ {
			rotated[i] = points[(start+i)%n]
		}
		out = append(out, rotated)
	}
	return out
}

// sameCycle reports whether got matches expected under some rotation,
// either walked forward or reversed (boolean output contours may come back
// wound either direction for a given operation/shell).
func sameCycle(got, expected []point.Point) bool {
	if len(got) != len(expected) {
		return false
	}
	for _, rotated := range rotations(expected) {
		if pointsEqual(got, rotated) {
			return true
		}
	}
	reversed := make([]point.Point, len(expected))
	for i, p := range expected {
		reversed[len(expected)-1-i] = p
	}
	for _, rotated := range rotations(reversed) {
		if pointsEqual(got, rotated) {
			return true
		}
	}
	return false
}

func pointsEqual(a, b []point.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Eq(b[i]) {
			return false
		}
	}
	return true
}

func containsCycle(contours [][]point.Point, expected []point.Point) bool {
	for _, c := range contours {
		if sameCycle(c, expected) {
			return true
		}
	}
	return false
}
