package sweep

import rbt "github.com/emirpasic/gods/trees/redblacktree"

// status is an ordered container, keyed by sweepLineLess, of
// the currently active left events, supporting sorted insert and remove and
// predecessor/successor lookup. It is backed by a red-black tree, since
// gods' tree gives the GetNode/IteratorAt pairing a plain sorted-array
// binary search does not: true predecessor/successor of an already-inserted
// key.
type status struct {
	tree *rbt.Tree
}

// newStatus returns an empty status structure.
func newStatus() *status {
	return &status{tree: rbt.NewWith(statusComparator)}
}

func statusComparator(a, b interface{}) int {
	ea, eb := a.(Event), b.(Event)
	switch {
	case ea.ID == eb.ID:
		return 0
	case sweepLineLess(ea, eb):
		return -1
	default:
		return 1
	}
}

// Insert adds e to the status structure at its sorted position.
func (s *status) Insert(e Event) {
	logDebugf("status: insert event %d at %s", e.ID, e.Point)
	s.tree.Put(e, nil)
}

// Remove deletes e from the status structure.
func (s *status) Remove(e Event) {
	logDebugf("status: remove event %d at %s", e.ID, e.Point)
	s.tree.Remove(e)
}

// Predecessor returns the event immediately below e in sweep-line order, if
// one is present.
func (s *status) Predecessor(e Event) (Event, bool) {
	node := s.tree.GetNode(e)
	if node == nil {
		return Event{}, false
	}
	iter := s.tree.IteratorAt(node)
	if iter.Node() == nil || !iter.Prev() {
		return Event{}, false
	}
	return iter.Key().(Event), true
}

// Successor returns the event immediately above e in sweep-line order, if
// one is present.
func (s *status) Successor(e Event) (Event, bool) {
	node := s.tree.GetNode(e)
	if node == nil {
		return Event{}, false
	}
	iter := s.tree.IteratorAt(node)
	if iter.Node() == nil || !iter.Next() {
		return Event{}, false
	}
	return iter.Key().(Event), true
}
