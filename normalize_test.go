package polyclip2d

import (
	"testing"

	"github.com/mikenye/polyclip2d/options"
	"github.com/mikenye/polyclip2d/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeResult_ZeroEpsilonLeavesCoordinatesUntouched(t *testing.T) {
	result := BooleanResult{Polygon: square(1.00000001, 1, 3, 3)}
	got := normalizeResult(result, options.GeometryOptions{})
	assert.Equal(t, result.Polygon, got.Polygon)
}

func TestNormalizeResult_SnapsNearIntegerCoordinates(t *testing.T) {
	result := BooleanResult{
		Polygon: NewPolygon([]point.Point{
			point.New(1.0000000001, 2), point.New(3, 2), point.New(3, 4),
		}),
	}
	got := normalizeResult(result, options.GeometryOptions{Epsilon: 1e-6})
	require.Len(t, got.Polygon.Contours, 1)
	assert.True(t, got.Polygon.Contours[0][0].Eq(point.New(1, 2)))
}

func TestIntersection_WithEpsilonSnapsResultCoordinates(t *testing.T) {
	subject := square(1, 1, 3.0000000001, 3)
	clip := square(2, 2, 4, 4)

	result := Intersection(subject, clip, options.WithEpsilon(1e-6))
	require.Len(t, result.Polygon.Contours, 1)
	for _, p := range result.Polygon.Contours[0] {
		assert.Equal(t, p.X(), float64(int64(p.X())), "expected whole-number x, got %v", p.X())
	}
}
