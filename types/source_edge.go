package types

// SourceEdge identifies the input polygon, contour, and edge a result
// fragment traces back to, so a caller can recover which original shape and
// edge produced each piece of a boolean result's output contours.
type SourceEdge struct {
	// IsFromSubject reports whether the edge came from the subject polygon
	// rather than the clip polygon.
	IsFromSubject bool

	// Contour is the index of the contour within its input polygon, in
	// input order. Input contours are not tagged as shells or holes.
	Contour int

	// Edge is the index of the edge within its contour, i.e. the index of
	// the edge's starting vertex.
	Edge int
}
