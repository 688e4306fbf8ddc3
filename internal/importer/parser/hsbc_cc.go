package parser

import (
	"fmt"
	"iter"
	"time"
)

// parseHSBCCreditCard parses HSBC credit card exports.
//
// Rows have 4 or 5 tab-separated columns: transaction date, posting
// date, description, amount and an optional category. The source
// reports debits as positive amounts, so the sign is flipped.
func parseHSBCCreditCard(data string) iter.Seq2[Draft, error] {
	return func(yield func(Draft, error) bool) {
		for number, line := range lines(data) {
			fields := splitColumns(line)
			if len(fields) != 4 && len(fields) != 5 {
				yield(Draft{}, lineError(number, line, fmt.Errorf("expected 4 or 5 tab-separated columns, got %d", len(fields))))
				return
			}

			date, err := time.Parse("01/02/06", fields[0])
			if err != nil {
				yield(Draft{}, lineError(number, line, err))
				return
			}

			amount, err := parseAmount(fields[3], true)
			if err != nil {
				yield(Draft{}, lineError(number, line, err))
				return
			}

			draft := Draft{
				Date:        date,
				Description: fields[2],
				Amount:      amount,
				Line:        number,
			}
			if len(fields) == 5 {
				draft.Category = fields[4]
			}

			if !yield(draft, nil) {
				return
			}
		}
	}
}
