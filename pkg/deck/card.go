package deck

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHandFormat is returned when a hand is not exactly five valid card symbols
var ErrInvalidHandFormat = errors.New("invalid hand format")

// ErrInvalidCard is returned when a symbol is not part of the card alphabet
var ErrInvalidCard = errors.New("invalid card")

// Symbols is the card alphabet ordered from the weakest card to the strongest
const Symbols = "23456789TJQKA"

// HandSize is the number of cards in a hand
const HandSize = 5

// face cards
const (
	Ten   = 10
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14

	// Joker is the rank of a jack played as a wild card, lower than a two
	Joker = 1
)

// Card is an individual camel card
type Card struct {
	Rank   int  `json:"rank"`
	IsWild bool `json:"isWild"`
}

// Symbol returns the single character used for the card in puzzle input
func (c *Card) Symbol() byte {
	switch c.Rank {
	case Joker, Jack:
		return 'J'
	case Ten:
		return 'T'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	case Ace:
		return 'A'
	}

	if c.Rank >= 2 && c.Rank <= 9 {
		return strconv.Itoa(c.Rank)[0]
	}

	panic(fmt.Sprintf("unknown rank: %d", c.Rank))
}

func (c *Card) String() string {
	return string(c.Symbol())
}

// Equal returns true if the cards are equal (matches rank and wildness)
func (c *Card) Equal(card *Card) bool {
	return c.Rank == card.Rank && c.IsWild == card.IsWild
}

// RankOf returns the rank of a symbol.
// If jokersWild is true, J ranks as a Joker; every other symbol is unaffected.
func RankOf(symbol rune, jokersWild bool) (int, bool) {
	switch symbol {
	case 'T':
		return Ten, true
	case 'J':
		if jokersWild {
			return Joker, true
		}
		return Jack, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	case 'A':
		return Ace, true
	}

	if symbol >= '2' && symbol <= '9' {
		return int(symbol - '0'), true
	}

	return 0, false
}

// CardFromSymbol returns the card for a single symbol
func CardFromSymbol(symbol rune, jokersWild bool) (*Card, error) {
	rank, ok := RankOf(symbol, jokersWild)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCard, symbol)
	}

	return &Card{
		Rank:   rank,
		IsWild: rank == Joker,
	}, nil
}

// CardFromString returns a Card from the string.
// The string is a single symbol, optionally prefixed with ! to mark a wild jack (i.e., !J)
// This will panic if the card cannot be parsed, so it is best suited for tests
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	jokersWild := strings.HasPrefix(s, "!")
	symbols := []rune(strings.TrimPrefix(s, "!"))
	if len(symbols) != 1 {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	card, err := CardFromSymbol(symbols[0], jokersWild)
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	if jokersWild && !card.IsWild {
		panic(fmt.Sprintf("only a jack can be wild: %s", s))
	}

	return card
}

// CardToString converts a card to a string, wild cards are prefixed with !
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	if card.IsWild {
		return "!" + card.String()
	}

	return card.String()
}

// CardsToString will convert a slice of cards to a string in the format of 2,3,!J,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
