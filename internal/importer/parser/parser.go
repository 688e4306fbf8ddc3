// Package parser turns raw statement exports into draft transactions.
//
// Every supported source format registers its own parse function under a
// stable format key. Adding a format means adding a registry entry, the
// existing parsers never branch on the key.
package parser

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Draft is a parsed statement row that has not been persisted yet.
type Draft struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string // optional, only set by formats with a category column
	Line        int    // 1-based line of the input the row was parsed from
}

// Func parses one statement export. The returned sequence produces one
// draft at a time and ends after yielding a non-nil error. It is not
// restartable, a fresh call re-reads the input from the beginning.
type Func func(data string) iter.Seq2[Draft, error]

// Format describes one supported statement export format.
type Format struct {
	Key         string
	Description string
	Parse       Func
}

var (
	// ErrUnknownFormat is returned for format keys without a registered parser.
	ErrUnknownFormat = errors.New("unsupported statement format")

	// ErrParse is wrapped by all errors for structurally invalid input.
	ErrParse = errors.New("invalid statement data")
)

var formats = []Format{
	{
		Key:         "HSBC_CC",
		Description: "HSBC credit card",
		Parse:       parseHSBCCreditCard,
	},
	{
		Key:         "HSBC_CHK",
		Description: "HSBC checking account",
		Parse:       parseHSBCChecking,
	},
	{
		Key:         "VIRGIN_CC",
		Description: "Virgin credit card",
		Parse:       parseVirginCreditCard,
	},
}

// All returns all registered formats.
func All() []Format {
	return formats
}

// For returns the parse function registered for the format key.
func For(key string) (Func, error) {
	for _, format := range formats {
		if format.Key == key {
			return format.Parse, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, key)
}

// lines yields the non-empty, whitespace-trimmed lines of the input
// together with their 1-based line number.
func lines(data string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for number, line := range strings.Split(data, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			if !yield(number+1, line) {
				return
			}
		}
	}
}

// splitColumns splits a row into its tab-separated columns.
func splitColumns(line string) []string {
	return strings.Split(line, "\t")
}

// lineError wraps a row-level problem with ErrParse and the line context.
func lineError(line int, content string, err error) error {
	return fmt.Errorf("%w: line %d (%q): %s", ErrParse, line, content, err)
}

// parseAmount converts a source amount string into a decimal. A single
// leading currency symbol and thousands separators are stripped. With
// flip set the sign is inverted, for sources that report debits as
// positive numbers.
func parseAmount(s string, flip bool) (decimal.Decimal, error) {
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if flip {
		return amount.Neg(), nil
	}

	return amount, nil
}
