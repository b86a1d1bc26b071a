package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelationship_String(t *testing.T) {
	tests := map[string]struct {
		r        Relationship
		expected string
	}{
		"Disjoint":     {RelationshipDisjoint, "RelationshipDisjoint"},
		"Intersection": {RelationshipIntersection, "RelationshipIntersection"},
		"ContainedBy":  {RelationshipContainedBy, "RelationshipContainedBy"},
		"Contains":     {RelationshipContains, "RelationshipContains"},
		"Equal":        {RelationshipEqual, "RelationshipEqual"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.r.String())
		})
	}
}

func TestRelationship_String_panicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() {
		_ = Relationship(255).String()
	})
}

func TestRelationship_FlipContainment(t *testing.T) {
	tests := map[string]struct {
		r        Relationship
		expected Relationship
	}{
		"ContainedBy flips to Contains": {RelationshipContainedBy, RelationshipContains},
		"Contains flips to ContainedBy": {RelationshipContains, RelationshipContainedBy},
		"Disjoint is unchanged":         {RelationshipDisjoint, RelationshipDisjoint},
		"Equal is unchanged":            {RelationshipEqual, RelationshipEqual},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.r.FlipContainment())
		})
	}
}
