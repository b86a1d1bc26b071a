package sweep

import (
	"testing"

	"github.com/mikenye/polyclip2d/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueue_PopsInAscendingOrder(t *testing.T) {
	q := newEventQueue()
	a := Event{ID: 1, Point: point.New(2, 2), Left: true, OtherPoint: point.New(3, 3)}
	b := Event{ID: 2, Point: point.New(0, 0), Left: true, OtherPoint: point.New(1, 1)}
	c := Event{ID: 3, Point: point.New(1, 1), Left: true, OtherPoint: point.New(2, 2)}

	q.Push(a)
	q.Push(b)
	q.Push(c)
	assert.Equal(t, 3, q.Len())

	first, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, b.ID, first.ID)

	second, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, c.ID, second.ID)

	third, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, a.ID, third.ID)

	assert.Equal(t, 0, q.Len())
}

func TestEventQueue_PopOnEmptyQueue(t *testing.T) {
	q := newEventQueue()
	_, ok := q.Pop()
	assert.False(t, ok)
}
