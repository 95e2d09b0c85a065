package race

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrInvalidInput is returned when the race sheet cannot be parsed
var ErrInvalidInput = errors.New("invalid race sheet")

// Race is a single boat race
// Holding the button for h milliseconds makes the boat travel h * (Time - h) millimeters
type Race struct {
	Time   int `json:"time"`
	Record int `json:"record"`
}

// distance returns how far the boat travels when the button is held for hold milliseconds
func (r Race) distance(hold int) int {
	return hold * (r.Time - hold)
}

// WaysToWin returns how many whole millisecond hold times beat the record
//
// The winning hold times lie strictly between the roots of h² - Time·h + Record = 0.
// The roots are found with floating point math and then nudged with exact
// integer checks, which keeps large races accurate
func (r Race) WaysToWin() int {
	t := float64(r.Time)
	target := float64(r.Record) + 1
	disc := t*t - 4*target
	if disc < 0 {
		return 0
	}

	core := math.Sqrt(disc)
	low := int(math.Ceil((t - core) / 2))
	high := int(math.Floor((t + core) / 2))

	for low > 0 && r.distance(low-1) > r.Record {
		low--
	}
	for low <= high && r.distance(low) <= r.Record {
		low++
	}
	for high < r.Time && r.distance(high+1) > r.Record {
		high++
	}
	for high >= low && r.distance(high) <= r.Record {
		high--
	}

	if high < low {
		return 0
	}

	return high - low + 1
}

// Product multiplies the ways to win each race
func Product(races []Race) int {
	product := 1
	for _, r := range races {
		ways := r.WaysToWin()
		logrus.WithField("time", r.Time).WithField("record", r.Record).WithField("ways", ways).Trace("race")
		product *= ways
	}

	return product
}

// ParseRaces parses a race sheet with a line of times and a line of record distances
//
//	Time:      7  15   30
//	Distance:  9  40  200
func ParseRaces(input string) ([]Race, error) {
	times, records, err := parseSheet(input)
	if err != nil {
		return nil, err
	}

	if len(times) != len(records) {
		return nil, fmt.Errorf("%w: %d times but %d distances", ErrInvalidInput, len(times), len(records))
	}

	races := make([]Race, len(times))
	for i := range times {
		if races[i].Time, err = parseNumber(times[i]); err != nil {
			return nil, err
		}

		if races[i].Record, err = parseNumber(records[i]); err != nil {
			return nil, err
		}
	}

	return races, nil
}

// ParseKernedRace parses a race sheet as a single race, ignoring the spaces between the numbers
func ParseKernedRace(input string) (Race, error) {
	times, records, err := parseSheet(input)
	if err != nil {
		return Race{}, err
	}

	time, err := parseNumber(strings.Join(times, ""))
	if err != nil {
		return Race{}, err
	}

	record, err := parseNumber(strings.Join(records, ""))
	if err != nil {
		return Race{}, err
	}

	return Race{Time: time, Record: record}, nil
}

func parseSheet(input string) (times, records []string, err error) {
	var foundTime, foundDistance bool
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "Time:"):
			times = strings.Fields(strings.TrimPrefix(line, "Time:"))
			foundTime = true
		case strings.HasPrefix(line, "Distance:"):
			records = strings.Fields(strings.TrimPrefix(line, "Distance:"))
			foundDistance = true
		default:
			return nil, nil, fmt.Errorf("%w: unexpected line %q", ErrInvalidInput, line)
		}
	}

	if !foundTime {
		return nil, nil, fmt.Errorf("%w: missing Time line", ErrInvalidInput)
	}

	if !foundDistance {
		return nil, nil, fmt.Errorf("%w: missing Distance line", ErrInvalidInput)
	}

	return times, records, nil
}

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: negative number %d", ErrInvalidInput, n)
	}

	return n, nil
}
