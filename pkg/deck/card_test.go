package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 10, Ten)
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
	assert.Equal(t, 1, Joker)
}

func TestRankOf_standard(t *testing.T) {
	seen := make(map[int]rune)
	for i, symbol := range Symbols {
		rank, ok := RankOf(symbol, false)
		assert.True(t, ok, string(symbol))
		assert.Equal(t, i+2, rank, string(symbol))

		_, dup := seen[rank]
		assert.False(t, dup, "rank %d mapped twice", rank)
		seen[rank] = symbol
	}

	assert.Len(t, seen, 13)
}

func TestRankOf_jokersWild(t *testing.T) {
	for _, symbol := range Symbols {
		standard, _ := RankOf(symbol, false)
		wild, ok := RankOf(symbol, true)
		assert.True(t, ok)

		if symbol == 'J' {
			assert.Equal(t, Joker, wild)
		} else {
			assert.Equal(t, standard, wild, string(symbol))
		}
	}
}

func TestRankOf_invalid(t *testing.T) {
	for _, symbol := range "01Xjt*" {
		_, ok := RankOf(symbol, false)
		assert.False(t, ok, string(symbol))
	}
}

func TestCardFromSymbol(t *testing.T) {
	card, err := CardFromSymbol('J', false)
	assert.NoError(t, err)
	assert.Equal(t, Card{Rank: Jack}, *card)

	card, err = CardFromSymbol('J', true)
	assert.NoError(t, err)
	assert.Equal(t, Card{Rank: Joker, IsWild: true}, *card)

	card, err = CardFromSymbol('K', true)
	assert.NoError(t, err)
	assert.Equal(t, Card{Rank: King}, *card)

	card, err = CardFromSymbol('1', false)
	assert.Nil(t, card)
	assert.True(t, errors.Is(err, ErrInvalidCard))
}

func TestCard_String(t *testing.T) {
	for _, symbol := range Symbols {
		card, err := CardFromSymbol(symbol, false)
		assert.NoError(t, err)
		assert.Equal(t, string(symbol), card.String())
	}

	assert.Equal(t, "J", CardFromString("!J").String())
	assert.PanicsWithValue(t, "unknown rank: 15", func() {
		_ = (&Card{Rank: 15}).String()
	})
}

func TestCardFromString(t *testing.T) {
	assert.Nil(t, CardFromString(""))
	assert.Equal(t, Card{Rank: Ace}, *CardFromString("A"))
	assert.Equal(t, Card{Rank: Joker, IsWild: true}, *CardFromString("!J"))

	assert.PanicsWithValue(t, "could not parse card: AK", func() {
		CardFromString("AK")
	})
	assert.PanicsWithValue(t, "only a jack can be wild: !A", func() {
		CardFromString("!A")
	})
}

func TestCardsToString(t *testing.T) {
	cards := []*Card{CardFromString("2"), CardFromString("!J"), CardFromString("J")}
	assert.Equal(t, "2,!J,J", CardsToString(cards))
	assert.Equal(t, "", CardToString(nil))
}

func TestCard_Equal(t *testing.T) {
	assert.True(t, CardFromString("J").Equal(CardFromString("J")))
	assert.False(t, CardFromString("J").Equal(CardFromString("!J")))
}
