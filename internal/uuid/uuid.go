// Package uuid wraps github.com/google/uuid so that UUIDs can be
// bound directly from URI and query parameters.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// UnmarshalParam implements the binding used by gin for URI and
// query parameters.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}
