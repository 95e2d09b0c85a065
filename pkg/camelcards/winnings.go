package camelcards

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// Rank returns the hands ordered from the weakest to the strongest.
// The hand at index i has a rank of i+1. The given slice is not modified
func Rank(hands []*Hand) []*Hand {
	sorted := make([]*Hand, len(hands))
	copy(sorted, hands)
	sort.Stable(sortByStrength(sorted))

	return sorted
}

// Winnings ranks the hands and returns the sum of each bid multiplied by its rank
func Winnings(hands []*Hand) int {
	total := 0
	for i, hand := range Rank(hands) {
		rank := i + 1
		total += hand.Bid * rank

		logrus.WithField("hand", hand.Cards.String()).
			WithField("category", hand.Category().String()).
			WithField("rank", rank).
			Trace("ranked hand")
	}

	logrus.WithField("hands", len(hands)).WithField("total", total).Debug("calculated winnings")
	return total
}

type sortByStrength []*Hand

func (s sortByStrength) Len() int {
	return len(s)
}

func (s sortByStrength) Less(i, j int) bool {
	return Compare(s[i], s[j]) < 0
}

func (s sortByStrength) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
