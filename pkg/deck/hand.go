package deck

import (
	"fmt"
	"strings"
)

// InvalidHandFormatError describes why a hand could not be parsed
type InvalidHandFormatError struct {
	Hand string
	// Position is the 1-based position of the bad symbol, or 0 if the length is wrong
	Position int
	Symbol   rune
}

func (e InvalidHandFormatError) Error() string {
	if e.Position == 0 {
		return fmt.Sprintf("%s: %q has %d cards, expected %d", ErrInvalidHandFormat, e.Hand, len([]rune(e.Hand)), HandSize)
	}

	return fmt.Sprintf("%s: %q has unknown card %q at position %d", ErrInvalidHandFormat, e.Hand, e.Symbol, e.Position)
}

// Is allows errors.Is(err, ErrInvalidHandFormat)
func (e InvalidHandFormatError) Is(target error) bool {
	return target == ErrInvalidHandFormat
}

// Hand represents a collection of cards in the order they were dealt
type Hand []*Card

// HandFromString parses a five symbol hand such as 32T3K
// If jokersWild is true, every J in the hand is a wild Joker
func HandFromString(s string, jokersWild bool) (Hand, error) {
	symbols := []rune(s)
	if len(symbols) != HandSize {
		return nil, InvalidHandFormatError{Hand: s}
	}

	hand := make(Hand, 0, HandSize)
	for i, symbol := range symbols {
		card, err := CardFromSymbol(symbol, jokersWild)
		if err != nil {
			return nil, InvalidHandFormatError{
				Hand:     s,
				Position: i + 1,
				Symbol:   symbol,
			}
		}

		hand.AddCard(card)
	}

	return hand, nil
}

// MustHandFromString is like HandFromString but panics on error
func MustHandFromString(s string, jokersWild bool) Hand {
	hand, err := HandFromString(s, jokersWild)
	if err != nil {
		panic(err)
	}

	return hand
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// Ranks returns the rank of each card, in order
func (h Hand) Ranks() []int {
	ranks := make([]int, len(h))
	for i, card := range h {
		ranks[i] = card.Rank
	}

	return ranks
}

// WildCount returns the number of wild cards in the hand
func (h Hand) WildCount() int {
	n := 0
	for _, card := range h {
		if card.IsWild {
			n++
		}
	}

	return n
}

func (h Hand) String() string {
	var sb strings.Builder
	for _, card := range h {
		sb.WriteByte(card.Symbol())
	}

	return sb.String()
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
