package sweep

import "github.com/google/btree"

// eventQueue is a min-priority queue of events under
// eventQueueLess, backed by a B-tree.
type eventQueue struct {
	tree *btree.BTreeG[Event]
}

// newEventQueue returns an empty eventQueue.
func newEventQueue() *eventQueue {
	return &eventQueue{tree: btree.NewG[Event](32, eventQueueLess)}
}

// Push inserts e into the queue.
func (q *eventQueue) Push(e Event) {
	logDebugf("queue: push event %d at %s (left=%v)", e.ID, e.Point, e.Left)
	q.tree.ReplaceOrInsert(e)
}

// Pop removes and returns the smallest remaining event under eventQueueLess.
// The second return value is false if the queue is empty.
func (q *eventQueue) Pop() (Event, bool) {
	e, ok := q.tree.DeleteMin()
	if ok {
		logDebugf("queue: pop event %d at %s (left=%v)", e.ID, e.Point, e.Left)
	}
	return e, ok
}

// Len returns the number of events currently queued.
func (q *eventQueue) Len() int {
	return q.tree.Len()
}
