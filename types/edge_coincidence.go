package types

import "fmt"

// EdgeCoincidenceType classifies how an edge fragment relates to another
// fragment discovered to be exactly collinear and overlapping with it
//. It overrides the normal in_result derivation for the pair.
type EdgeCoincidenceType uint8

// Valid values for EdgeCoincidenceType.
const (
	// CoincidenceNone means the edge has no collinear overlapping twin.
	CoincidenceNone EdgeCoincidenceType = iota

	// CoincidenceSameTransition means the edge and its twin cross the
	// sweep line in the same inside/outside direction.
	CoincidenceSameTransition

	// CoincidenceDifferentTransition means the edge and its twin cross the
	// sweep line in opposite inside/outside directions.
	CoincidenceDifferentTransition

	// CoincidenceDuplicate marks the fragment that lost the tie-break
	// against the primary fragment of a coincident pair; it never
	// contributes to the result.
	CoincidenceDuplicate
)

// String converts an EdgeCoincidenceType constant into its string
// representation.
func (e EdgeCoincidenceType) String() string {
	switch e {
	case CoincidenceNone:
		return "None"
	case CoincidenceSameTransition:
		return "SameTransition"
	case CoincidenceDifferentTransition:
		return "DifferentTransition"
	case CoincidenceDuplicate:
		return "Duplicate"
	default:
		panic(fmt.Errorf("unsupported edge coincidence type: %d", e))
	}
}
