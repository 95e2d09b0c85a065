package handanalyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "High card", HighCard.String())
	assert.Equal(t, "Five of a kind", FiveOfAKind.String())
	assert.PanicsWithValue(t, "unknown category: -1", func() {
		_ = Category(-1).String()
	})
}

func TestCategories(t *testing.T) {
	assert.Len(t, Categories, 7)
	for i, c := range Categories {
		assert.Equal(t, Category(i), c)
	}
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "Full house (3 over 10)", Result{Category: FullHouse, Major: 3, Minor: 10}.String())
	assert.Equal(t, "Two pair (10 and 5)", Result{Category: TwoPair, Major: 10, Minor: 5}.String())
	assert.Equal(t, "Pair (6)", Result{Category: OnePair, Major: 6}.String())
}
