package point

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_Coordinates(t *testing.T) {
	tests := map[string]struct {
		point Point
		wantX float64
		wantY float64
	}{
		"origin":          {New(0, 0), 0, 0},
		"positive values": {New(3, 4), 3, 4},
		"negative values": {New(-5, -10), -5, -10},
		"mixed values":    {New(-7, 9), -7, 9},
		"large values":    {New(1000000, -999999), 1000000, -999999},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			x, y := tc.point.Coordinates()
			assert.Equal(t, tc.wantX, x, "X coordinate mismatch")
			assert.Equal(t, tc.wantY, y, "Y coordinate mismatch")
		})
	}
}

func TestPoint_Add(t *testing.T) {
	tests := []struct {
		name     string
		p, q     Point
		expected Point
	}{
		{
			name:     "(1.0,2.0)+(3.0,4.0)",
			p:        New(1.0, 2.0),
			q:        New(3.0, 4.0),
			expected: New(4.0, 6.0),
		},
		{
			name:     "(-1.5,-2.5)+(3.5,4.5)",
			p:        New(-1.5, -2.5),
			q:        New(3.5, 4.5),
			expected: New(2.0, 2.0),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual := tc.p.Add(tc.q)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestPoint_Sub(t *testing.T) {
	tests := []struct {
		name     string
		p, q     Point
		expected Point
	}{
		{
			name:     "(4.0,6.0)-(3.0,4.0)",
			p:        New(4.0, 6.0),
			q:        New(3.0, 4.0),
			expected: New(1.0, 2.0),
		},
		{
			name:     "(2.0,2.0)-(3.5,4.5)",
			p:        New(2.0, 2.0),
			q:        New(3.5, 4.5),
			expected: New(-1.5, -2.5),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual := tc.p.Sub(tc.q)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestPoint_Dot(t *testing.T) {
	tests := []struct {
		name     string
		p, q     Point
		expected float64
	}{
		{
			name:     "(2.0,3.0) . (4.0,5.0)",
			p:        New(2.0, 3.0),
			q:        New(4.0, 5.0),
			expected: 23.0,
		},
		{
			name:     "(1.5,2.5) . (3.5,4.5)",
			p:        New(1.5, 2.5),
			q:        New(3.5, 4.5),
			expected: 16.5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual := tc.p.Dot(tc.q)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestPoint_PerpDot(t *testing.T) {
	tests := []struct {
		name     string
		p, q     Point
		expected float64
	}{
		{
			name:     "(2.0,3.0) perpdot (4.0,5.0)",
			p:        New(2.0, 3.0),
			q:        New(4.0, 5.0),
			expected: -2.0,
		},
		{
			name:     "(3.5,2.5) perpdot (4.0,6.0)",
			p:        New(3.5, 2.5),
			q:        New(4.0, 6.0),
			expected: 11.0,
		},
		{
			name:     "parallel vectors perpdot to zero",
			p:        New(2.0, 4.0),
			q:        New(1.0, 2.0),
			expected: 0.0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual := tc.p.PerpDot(tc.q)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestPoint_Scale(t *testing.T) {
	tests := map[string]struct {
		point    Point
		k        float64
		expected Point
	}{
		"scale by 1.5": {
			point:    New(2.0, 3.0),
			k:        1.5,
			expected: New(3.0, 4.5),
		},
		"scale by 0.25": {
			point:    New(4.0, 8.0),
			k:        0.25,
			expected: New(1.0, 2.0),
		},
		"scale by zero collapses to origin": {
			point:    New(4.0, 8.0),
			k:        0,
			expected: New(0, 0),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			actual := tc.point.Scale(tc.k)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestPoint_Eq(t *testing.T) {
	tests := map[string]struct {
		p, q     Point
		expected bool
	}{
		"(2.0,3.0) == (4.0,5.0)": {
			p:        New(2.0, 3.0),
			q:        New(4.0, 5.0),
			expected: false,
		},
		"(2.0,3.0) == (2.0,3.0)": {
			p:        New(2.0, 3.0),
			q:        New(2.0, 3.0),
			expected: true,
		},
		"exact equality rejects the nearest representable neighbor": {
			p:        New(math.Nextafter(0.3, 1), 0.3),
			q:        New(0.3, 0.3),
			expected: false,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			actual := tc.p.Eq(tc.q)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestPoint_Compare(t *testing.T) {
	tests := map[string]struct {
		p, q     Point
		expected int
	}{
		"p.x < q.x":               {New(1, 5), New(2, 0), -1},
		"p.x > q.x":                {New(2, 0), New(1, 5), 1},
		"equal x, p.y < q.y":      {New(1, 1), New(1, 2), -1},
		"equal x, p.y > q.y":      {New(1, 2), New(1, 1), 1},
		"fully equal":             {New(1, 2), New(1, 2), 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.p.Compare(tc.q))
		})
	}
}

func TestPoint_Less(t *testing.T) {
	assert.True(t, New(1, 5).Less(New(2, 0)))
	assert.False(t, New(2, 0).Less(New(1, 5)))
	assert.False(t, New(1, 2).Less(New(1, 2)))
	assert.True(t, New(1, 1).Less(New(1, 2)))
}

func TestPoint_String(t *testing.T) {
	tests := map[string]struct {
		p        Point
		expected string
	}{
		"(1.2,3.4)":   {New(1.2, 3.4), "(1.2,3.4)"},
		"(-1.5,-2.5)": {New(-1.5, -2.5), "(-1.5,-2.5)"},
		"(3,4)":       {New(3, 4), "(3,4)"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.p.String())
		})
	}
}

func TestPoint_MarshalUnmarshalJSON(t *testing.T) {
	tests := map[string]struct {
		point Point
	}{
		"origin":  {New(0, 0)},
		"Point":   {New(3.5, 7.2)},
		"negative": {New(-1.5, -2.25)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			data, err := json.Marshal(tc.point)
			require.NoErrorf(t, err, "failed to marshal %s: %v", tc.point, err)

			var result Point
			err = json.Unmarshal(data, &result)
			require.NoErrorf(t, err, "failed to unmarshal `%s`: %v", string(data), err)
			assert.Truef(t, tc.point.Eq(result), "expected %v, got %v", tc.point, result)
		})
	}
}

func TestPoint_X(t *testing.T) {
	tests := []struct {
		name     string
		point    Point
		expected float64
	}{
		{"positive coordinates", New(3.5, 4.5), 3.5},
		{"negative coordinates", New(-7.1, -5.2), -7.1},
		{"zero x-coordinate", New(0.0, 4.5), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.point.X())
		})
	}
}

func TestPoint_Y(t *testing.T) {
	tests := []struct {
		name     string
		point    Point
		expected float64
	}{
		{"positive coordinates", New(3.5, 4.5), 4.5},
		{"negative coordinates", New(-7.1, -5.2), -5.2},
		{"zero y-coordinate", New(3.0, 0.0), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.point.Y())
		})
	}
}
