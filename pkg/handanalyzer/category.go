package handanalyzer

import "fmt"

// Category is a camel cards hand, i.e., full house
type Category int

// Constants for category, weakest first
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// Categories lists every category from weakest to strongest
var Categories = []Category{
	HighCard,
	OnePair,
	TwoPair,
	ThreeOfAKind,
	FullHouse,
	FourOfAKind,
	FiveOfAKind,
}

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case FiveOfAKind:
		return "Five of a kind"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// Result is a category along with the ranks that tell two hands of that category apart
//
// FullHouse: Major is the rank of the three, Minor is the rank of the pair
// TwoPair: Major is the higher pair, Minor is the lower pair
// Every other category only sets Major: the rank of the group, or the highest card for HighCard
type Result struct {
	Category Category `json:"category"`
	Major    int      `json:"major"`
	Minor    int      `json:"minor,omitempty"`
}

func (r Result) String() string {
	switch r.Category {
	case FullHouse:
		return fmt.Sprintf("%s (%d over %d)", r.Category, r.Major, r.Minor)
	case TwoPair:
		return fmt.Sprintf("%s (%d and %d)", r.Category, r.Major, r.Minor)
	}

	return fmt.Sprintf("%s (%d)", r.Category, r.Major)
}
