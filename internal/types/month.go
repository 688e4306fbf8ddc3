// Package types implements special types for Billfold.
package types

import (
	"fmt"
	"strings"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, t.Location()))
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m)), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The month is expected to be a "YYYY-MM" string.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	month, err := ParseMonth(value)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// UnmarshalParam implements the binding used by gin for URI and
// query parameters.
func (m *Month) UnmarshalParam(param string) error {
	if param == "" {
		*m = Month{}
		return nil
	}

	month, err := ParseMonth(param)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// First returns the first instant of the month.
func (m Month) First() time.Time {
	return time.Time(m)
}

// Next returns the first instant of the following month.
func (m Month) Next() time.Time {
	return time.Time(m).AddDate(0, 1, 0)
}

// Year returns the year the month is in.
func (m Month) Year() int {
	return time.Time(m).Year()
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}
