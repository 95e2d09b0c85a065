package main

import (
	"bytes"
	"camelcards/pkg/deck"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestHandsCmd_Run(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, (&HandsCmd{Example: true}).Run(&buf, testLogger()))
	assert.Equal(t, "6440\n5905\n", buf.String())

	buf.Reset()
	assert.NoError(t, (&HandsCmd{}).Run(&buf, testLogger()))
	assert.Equal(t, "250946742\n251824095\n", buf.String())
}

func TestClassifyCmd_Run(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, (&ClassifyCmd{Hand: "KTJJT", Rules: "jokers"}).Run(&buf, testLogger()))
	assert.Equal(t, "KTJJT: Four of a kind (10)\n", buf.String())

	buf.Reset()
	assert.NoError(t, (&ClassifyCmd{Hand: "KTJJT", Rules: "standard"}).Run(&buf, testLogger()))
	assert.Equal(t, "KTJJT: Two pair (11 and 10)\n", buf.String())

	err := (&ClassifyCmd{Hand: "KTJJ", Rules: "standard"}).Run(&buf, testLogger())
	assert.True(t, errors.Is(err, deck.ErrInvalidHandFormat))

	err = (&ClassifyCmd{Hand: "KTJJT", Rules: "wild"}).Run(&buf, testLogger())
	assert.EqualError(t, err, "invalid rules: wild")
}

func TestRacesCmd_Run(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, (&RacesCmd{Example: true}).Run(&buf, testLogger()))
	assert.Equal(t, "288\n71503\n", buf.String())

	buf.Reset()
	assert.NoError(t, (&RacesCmd{}).Run(&buf, testLogger()))
	assert.Equal(t, "800280\n45128024\n", buf.String())
}
