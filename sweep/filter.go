package sweep

// filterResult retains only the events whose in_result flag is still true once every
// split and edge-coincidence has been resolved. An event can be admitted
// when first dequeued and later demoted, when its collinear twin is
// discovered further along the sweep, so this pass must run
// only after the Subdivider's queue has fully drained.
func filterResult(relations []EventRelation, resultEventIDs []int) []int {
	filtered := make([]int, 0, len(resultEventIDs))
	for _, id := range resultEventIDs {
		if relations[id].InResult {
			filtered = append(filtered, id)
		}
	}
	return filtered
}
