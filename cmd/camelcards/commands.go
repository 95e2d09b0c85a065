package main

import (
	"camelcards/pkg/camelcards"
	"camelcards/pkg/race"
	_ "embed"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

var (
	//go:embed input/hands.txt
	handsInput string

	//go:embed input/hands_example.txt
	handsExample string

	//go:embed input/races.txt
	racesInput string

	//go:embed input/races_example.txt
	racesExample string
)

// HandsCmd prints the winnings for every hand, first with standard rules and then with jokers
type HandsCmd struct {
	Example bool `help:"Use the example hands from the puzzle description"`
}

// Run runs the command
func (h *HandsCmd) Run(out io.Writer, log *logrus.Entry) error {
	input := handsInput
	if h.Example {
		input = handsExample
	}

	for _, rules := range []camelcards.Rules{camelcards.Standard, camelcards.Jokers} {
		hands, err := camelcards.ParseHands(input, rules)
		if err != nil {
			return err
		}

		total := camelcards.Winnings(hands)
		log.WithField("rules", string(rules)).WithField("total", total).Debug("calculated winnings")

		if _, err := fmt.Fprintln(out, total); err != nil {
			return err
		}
	}

	return nil
}

// ClassifyCmd prints the category of a single hand
type ClassifyCmd struct {
	Hand  string `arg:"" help:"Five cards, i.e., 32T3K"`
	Rules string `help:"Either standard or jokers" enum:"standard,jokers" default:"${rules}"`
}

// Run runs the command
func (c *ClassifyCmd) Run(out io.Writer, log *logrus.Entry) error {
	rules, err := camelcards.RulesFromString(c.Rules)
	if err != nil {
		return err
	}

	hand, err := camelcards.NewHand(c.Hand, 0, rules)
	if err != nil {
		return err
	}

	log.WithField("strength", hand.Strength()).Debug("classified hand")

	_, err = fmt.Fprintf(out, "%s: %s\n", hand.Cards, hand.Result())
	return err
}

// RacesCmd prints the product of the ways to win each race, and the ways to win the kerned race
type RacesCmd struct {
	Example bool `help:"Use the example races from the puzzle description"`
}

// Run runs the command
func (r *RacesCmd) Run(out io.Writer, log *logrus.Entry) error {
	input := racesInput
	if r.Example {
		input = racesExample
	}

	races, err := race.ParseRaces(input)
	if err != nil {
		return err
	}

	kerned, err := race.ParseKernedRace(input)
	if err != nil {
		return err
	}

	product := race.Product(races)
	ways := kerned.WaysToWin()
	log.WithField("races", len(races)).WithField("product", product).WithField("kerned", ways).Debug("calculated races")

	_, err = fmt.Fprintf(out, "%d\n%d\n", product, ways)
	return err
}
