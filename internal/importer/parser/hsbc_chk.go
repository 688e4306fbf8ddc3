package parser

import (
	"fmt"
	"iter"
	"time"
)

// parseHSBCChecking parses HSBC checking account exports.
//
// Rows have 3 tab-separated columns: date, description, amount.
func parseHSBCChecking(data string) iter.Seq2[Draft, error] {
	return func(yield func(Draft, error) bool) {
		for number, line := range lines(data) {
			fields := splitColumns(line)
			if len(fields) != 3 {
				yield(Draft{}, lineError(number, line, fmt.Errorf("expected 3 tab-separated columns, got %d", len(fields))))
				return
			}

			date, err := time.Parse("01/02/2006", fields[0])
			if err != nil {
				yield(Draft{}, lineError(number, line, err))
				return
			}

			amount, err := parseAmount(fields[2], false)
			if err != nil {
				yield(Draft{}, lineError(number, line, err))
				return
			}

			draft := Draft{
				Date:        date,
				Description: fields[1],
				Amount:      amount,
				Line:        number,
			}

			if !yield(draft, nil) {
				return
			}
		}
	}
}
