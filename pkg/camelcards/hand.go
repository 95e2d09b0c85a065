package camelcards

import (
	"camelcards/pkg/deck"
	"camelcards/pkg/handanalyzer"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Hand is a set of five cards and the bid placed on it
type Hand struct {
	Cards deck.Hand `json:"cards"`
	Bid   int       `json:"bid"`

	analyzer *handanalyzer.HandAnalyzer
}

// NewHand returns a hand from its five symbols, i.e., 32T3K
func NewHand(cards string, bid int, rules Rules) (*Hand, error) {
	if _, ok := validRules[rules]; !ok {
		return nil, fmt.Errorf("invalid rules: %q", string(rules))
	}

	if bid < 0 {
		return nil, BidError{Bid: strconv.Itoa(bid)}
	}

	parsed, err := deck.HandFromString(cards, rules.JokersWild())
	if err != nil {
		return nil, err
	}

	analyzer, err := handanalyzer.Analyze(parsed)
	if err != nil {
		return nil, err
	}

	return &Hand{
		Cards:    parsed,
		Bid:      bid,
		analyzer: analyzer,
	}, nil
}

// ParseHand parses a line in the format of "<cards> <bid>", i.e., "32T3K 765"
func ParseHand(line string, rules Rules) (*Hand, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLine, line)
	}

	bid, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, BidError{Bid: fields[1], Err: err}
	}

	return NewHand(fields[0], bid, rules)
}

// ParseHands parses one hand per line. Blank lines are ignored
func ParseHands(input string, rules Rules) ([]*Hand, error) {
	hands := make([]*Hand, 0)
	for i, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		hand, err := ParseHand(line, rules)
		if err != nil {
			return nil, LineError{Line: i + 1, Err: err}
		}

		hands = append(hands, hand)
	}

	logrus.WithField("hands", len(hands)).WithField("rules", string(rules)).Debug("parsed hands")
	return hands, nil
}

// Category returns the category of the hand
func (h *Hand) Category() handanalyzer.Category {
	return h.analyzer.GetCategory()
}

// Result returns the category of the hand along with its distinguishing ranks
func (h *Hand) Result() handanalyzer.Result {
	return h.analyzer.GetResult()
}

// Strength returns a number that orders hands the same way Compare does
func (h *Hand) Strength() int {
	return h.analyzer.GetStrength()
}

func (h *Hand) String() string {
	return fmt.Sprintf("%s %d", h.Cards, h.Bid)
}
