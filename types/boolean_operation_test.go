package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooleanOperation_String(t *testing.T) {
	tests := map[string]struct {
		op       BooleanOperation
		expected string
	}{
		"Intersection": {OpIntersection, "Intersection"},
		"Union":        {OpUnion, "Union"},
		"Difference":   {OpDifference, "Difference"},
		"XOR":          {OpXOR, "XOR"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.op.String())
		})
	}
}

func TestBooleanOperation_String_panicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() {
		_ = BooleanOperation(255).String()
	})
}

func TestEdgeCoincidenceType_String(t *testing.T) {
	tests := map[string]struct {
		e        EdgeCoincidenceType
		expected string
	}{
		"None":                {CoincidenceNone, "None"},
		"SameTransition":      {CoincidenceSameTransition, "SameTransition"},
		"DifferentTransition": {CoincidenceDifferentTransition, "DifferentTransition"},
		"Duplicate":           {CoincidenceDuplicate, "Duplicate"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.e.String())
		})
	}
}

func TestEdgeCoincidenceType_String_panicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() {
		_ = EdgeCoincidenceType(255).String()
	})
}
