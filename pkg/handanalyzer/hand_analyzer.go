package handanalyzer

import (
	"camelcards/pkg/deck"
	"sort"
)

// HandAnalyzer can analyze a hand
type HandAnalyzer struct {
	// dealt keeps the cards in their original order for tie-breaks
	dealt     deck.Hand
	cards     deck.Hand
	wildCards deck.Hand
	groups    []group

	result   Result
	strength int
}

// group is a set of cards that share a rank
type group struct {
	rank  int
	count int
}

// Analyze will return a new HandAnalyzer, or an error if the hand is not exactly five cards
func Analyze(cards deck.Hand) (*HandAnalyzer, error) {
	if len(cards) != deck.HandSize {
		return nil, deck.InvalidHandFormatError{Hand: cards.String()}
	}

	// clone to prevent modifying original
	sortedCards := cards.Clone()
	sort.Sort(sort.Reverse(sortByRank(sortedCards)))

	nonWilds := make(deck.Hand, 0, len(sortedCards))
	wilds := make(deck.Hand, 0, len(sortedCards))

	for _, card := range sortedCards {
		if card.IsWild {
			wilds.AddCard(card)
		} else {
			nonWilds.AddCard(card)
		}
	}

	h := &HandAnalyzer{
		dealt:     cards.Clone(),
		cards:     nonWilds,
		wildCards: wilds,
	}

	h.analyzeHand()
	return h, nil
}

// New will return a new HandAnalyzer instance
// This will panic if the hand is not exactly five cards
func New(cards deck.Hand) *HandAnalyzer {
	h, err := Analyze(cards)
	if err != nil {
		panic(err)
	}

	return h
}

// Classify returns the category of a five symbol hand such as 32T3K
// If jokersWild is true, every J is a wild Joker
func Classify(cards string, jokersWild bool) (Result, error) {
	hand, err := deck.HandFromString(cards, jokersWild)
	if err != nil {
		return Result{}, err
	}

	return New(hand).GetResult(), nil
}

// analyzeHand groups the cards by rank, lets the wilds join the largest group
// and decides on the category.
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	if len(h.cards) == 0 {
		// nothing for the wilds to join, so they are five of a kind of jokers
		h.result = Result{Category: FiveOfAKind, Major: deck.Joker}
		return
	}

	h.groups = applyWilds(countGroups(h.cards), len(h.wildCards))

	best := h.groups[0]
	var second group
	if len(h.groups) > 1 {
		second = h.groups[1]
	}

	switch {
	case best.count == 5:
		h.result = Result{Category: FiveOfAKind, Major: best.rank}
	case best.count == 4:
		h.result = Result{Category: FourOfAKind, Major: best.rank}
	case best.count == 3 && second.count == 2:
		h.result = Result{Category: FullHouse, Major: best.rank, Minor: second.rank}
	case best.count == 3:
		h.result = Result{Category: ThreeOfAKind, Major: best.rank}
	case best.count == 2 && second.count == 2:
		major, minor := best.rank, second.rank
		if minor > major {
			major, minor = minor, major
		}

		h.result = Result{Category: TwoPair, Major: major, Minor: minor}
	case best.count == 2:
		h.result = Result{Category: OnePair, Major: best.rank}
	default:
		h.result = Result{Category: HighCard, Major: h.highestRank()}
	}
}

// countGroups counts the cards of each rank. The largest group comes first
// and groups of the same size are ordered by rank, highest first
func countGroups(cards deck.Hand) []group {
	counts := make(map[int]int)
	for _, card := range cards {
		counts[card.Rank]++
	}

	groups := make([]group, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, group{rank: rank, count: count})
	}

	sort.Sort(sort.Reverse(sortBySize(groups)))
	return groups
}

func (h *HandAnalyzer) highestRank() int {
	highest := 0
	for _, card := range h.dealt {
		if card.Rank > highest {
			highest = card.Rank
		}
	}

	return highest
}

// GetCategory will return the category the cards make
func (h *HandAnalyzer) GetCategory() Category {
	return h.result.Category
}

// GetResult will return the category along with its distinguishing ranks
func (h *HandAnalyzer) GetResult() Result {
	return h.result
}

// GetCards returns the cards in the order they were dealt
func (h *HandAnalyzer) GetCards() deck.Hand {
	return h.dealt.Clone()
}

// GetFiveOfAKind will return the rank of the five of a kind, if possible
func (h *HandAnalyzer) GetFiveOfAKind() (int, bool) {
	return h.single(FiveOfAKind)
}

// GetFourOfAKind will return the rank of the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	return h.single(FourOfAKind)
}

// GetFullHouse will return the ranks of the three and the pair, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	return h.double(FullHouse)
}

// GetThreeOfAKind will return the rank of the three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	return h.single(ThreeOfAKind)
}

// GetTwoPair will return the ranks of both pairs, highest first, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	return h.double(TwoPair)
}

// GetPair will return the rank of the pair, if possible
func (h *HandAnalyzer) GetPair() (int, bool) {
	return h.single(OnePair)
}

// GetHighCard will return the ranks of the cards, highest first
func (h *HandAnalyzer) GetHighCard() ([]int, bool) {
	sorted := h.dealt.Clone()
	sort.Sort(sort.Reverse(sortByRank(sorted)))
	return sorted.Ranks(), true
}

func (h *HandAnalyzer) single(category Category) (int, bool) {
	if h.result.Category != category {
		return 0, false
	}

	return h.result.Major, true
}

func (h *HandAnalyzer) double(category Category) ([]int, bool) {
	if h.result.Category != category {
		return nil, false
	}

	return []int{h.result.Major, h.result.Minor}, true
}

// strengthBase is larger than any card rank
const strengthBase = deck.Ace + 1

// calculateStrength packs the category and the ranks, in order, into a single number.
// A higher number is a stronger hand
func calculateStrength(category Category, ranks []int) int {
	strength := int(category)
	for i := 0; i < deck.HandSize; i++ {
		strength *= strengthBase
		if i < len(ranks) {
			strength += ranks[i]
		}
	}

	return strength
}

// GetStrength returns the strength of the hand.
// Hands are ordered by category, then by the cards as dealt from left to right
func (h *HandAnalyzer) GetStrength() int {
	if h.strength > 0 {
		return h.strength
	}

	h.strength = calculateStrength(h.result.Category, h.dealt.Ranks())
	return h.strength
}

type sortByRank []*deck.Card

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	return s[i].Rank < s[j].Rank
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

type sortBySize []group

func (s sortBySize) Len() int {
	return len(s)
}

func (s sortBySize) Less(i, j int) bool {
	if s[i].count != s[j].count {
		return s[i].count < s[j].count
	}

	return s[i].rank < s[j].rank
}

func (s sortBySize) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
