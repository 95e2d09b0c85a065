package handanalyzer

// applyWilds adds the wild cards to the largest group.
// Only the size of the largest group decides the category, so it is always
// the best group to join
func applyWilds(groups []group, wildCount int) []group {
	if wildCount == 0 || len(groups) == 0 {
		return groups
	}

	groups[0].count += wildCount
	return groups
}
