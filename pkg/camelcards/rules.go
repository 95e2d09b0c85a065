package camelcards

import (
	"fmt"
	"strings"
)

// Rules specifies how jacks are played
type Rules string

// Rules constants
const (
	// Standard plays J as a jack, ranked between the ten and the queen
	Standard Rules = "standard"
	// Jokers plays J as a wild joker that ranks below the two
	Jokers Rules = "jokers"
)

var validRules = map[Rules]bool{
	Standard: true,
	Jokers:   true,
}

// JokersWild returns true if J is a wild card
func (r Rules) JokersWild() bool {
	return r == Jokers
}

func (r Rules) String() string {
	switch r {
	case Standard:
		return "Standard"
	case Jokers:
		return "Jokers"
	}

	panic(fmt.Sprintf("unknown rules: %s", string(r)))
}

// UnmarshalText decodes the rules from flags and config files
func (r *Rules) UnmarshalText(text []byte) error {
	rules, err := RulesFromString(string(text))
	if err != nil {
		return err
	}

	*r = rules
	return nil
}

// MarshalText encodes the rules
func (r Rules) MarshalText() ([]byte, error) {
	return []byte(r), nil
}

// RulesFromString returns the rules from a string
func RulesFromString(s string) (Rules, error) {
	rules := Rules(strings.ToLower(s))
	if _, ok := validRules[rules]; ok {
		return rules, nil
	}

	return "", fmt.Errorf("invalid rules: %s", s)
}
