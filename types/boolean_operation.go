package types

import "fmt"

// BooleanOperation identifies which of the four set operations a sweep is
// running. The Subdivider consults it when deriving in_result for each
// edge fragment; the root polyclip2d package consults it again
// in the disjoint bounding-box fast path.
type BooleanOperation uint8

// Valid values for BooleanOperation.
const (
	// OpIntersection keeps only the parts of the subject covered by the clip
	// and vice versa.
	OpIntersection BooleanOperation = iota

	// OpUnion keeps every part covered by either input.
	OpUnion

	// OpDifference keeps the parts of the subject not covered by the clip.
	OpDifference

	// OpXOR keeps the parts covered by exactly one of the two inputs.
	OpXOR
)

// String converts a BooleanOperation constant into its string representation.
func (op BooleanOperation) String() string {
	switch op {
	case OpIntersection:
		return "Intersection"
	case OpUnion:
		return "Union"
	case OpDifference:
		return "Difference"
	case OpXOR:
		return "XOR"
	default:
		panic(fmt.Errorf("unsupported boolean operation: %d", op))
	}
}
