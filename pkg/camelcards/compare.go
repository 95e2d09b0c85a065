package camelcards

import "camelcards/pkg/deck"

// Compare orders hands by category, and hands of the same category by their
// cards from left to right. It returns a negative number if a is weaker than b,
// a positive number if a is stronger, and 0 if both hold the same cards.
//
// The ranks that make up the category are never consulted, only the cards as dealt.
// This is the ordering used for scoring
func Compare(a, b *Hand) int {
	if ca, cb := a.Category(), b.Category(); ca != cb {
		return int(ca) - int(cb)
	}

	return CompareCards(a.Cards, b.Cards)
}

// CompareDiscriminated orders hands by category, then by the ranks of the groups
// that make the category (the three before the pair in a full house, the higher pair
// before the lower one in two pair), and only then by the cards as dealt.
// It disagrees with Compare on hands such as 2AAAA and 33332, and is not used for scoring
func CompareDiscriminated(a, b *Hand) int {
	ra, rb := a.Result(), b.Result()
	if ra.Category != rb.Category {
		return int(ra.Category) - int(rb.Category)
	}

	if ra.Major != rb.Major {
		return ra.Major - rb.Major
	}

	if ra.Minor != rb.Minor {
		return ra.Minor - rb.Minor
	}

	return CompareCards(a.Cards, b.Cards)
}

// CompareCards compares two hands card by card, from left to right.
// The first pair of cards that differ decide: the result is the difference in rank
func CompareCards(a, b deck.Hand) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if d := a[i].Rank - b[i].Rank; d != 0 {
			return d
		}
	}

	return len(a) - len(b)
}
