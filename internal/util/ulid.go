package util

import "github.com/oklog/ulid/v2"

// NewULID returns a new lexicographically sortable identifier. Request ids
// use it so log lines order by arrival.
func NewULID() string {
	return ulid.Make().String()
}
