package camelcards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRulesFromString(t *testing.T) {
	r, err := RulesFromString("JOKERS")
	assert.NoError(t, err)
	assert.Equal(t, Jokers, r)
	assert.True(t, r.JokersWild())

	r, err = RulesFromString("standard")
	assert.NoError(t, err)
	assert.Equal(t, Standard, r)
	assert.False(t, r.JokersWild())

	r, err = RulesFromString("wild")
	assert.EqualError(t, err, "invalid rules: wild")
	assert.Equal(t, Rules(""), r)
}

func TestRules_String(t *testing.T) {
	assert.Equal(t, "Standard", Standard.String())
	assert.Equal(t, "Jokers", Jokers.String())
	assert.PanicsWithValue(t, "unknown rules: wild", func() {
		_ = Rules("wild").String()
	})
}

func TestRules_text(t *testing.T) {
	var r Rules
	assert.NoError(t, r.UnmarshalText([]byte("Jokers")))
	assert.Equal(t, Jokers, r)

	assert.Error(t, r.UnmarshalText([]byte("nope")))
	assert.Equal(t, Jokers, r)

	b, err := Standard.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "standard", string(b))
}
