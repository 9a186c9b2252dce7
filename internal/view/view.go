// Package view contains the pure, stateless helpers that shape a list of
// records for output: pagination, field projection and date encoding.
// Helpers operate on open-ended Record maps because projection can strip
// any subset of fields; the store itself keeps fixed-shape structs.
package view

import (
	"strings"
	"time"

	"concertd/internal/model"
)

// Record is one concert rendered as a key/value map, ready for shaping
// and JSON encoding.
type Record = map[string]any

// FromConcert renders a stored concert as a Record.  The date stays a
// time.Time until EncodeDates turns it into an ISO-8601 string.
func FromConcert(c model.Concert) Record {
	return Record{
		"id":     c.ID,
		"artist": c.Artist,
		"venue":  c.Venue,
		"date":   c.Date,
	}
}

// FromConcerts renders a list of stored concerts, preserving order.
func FromConcerts(cs []model.Concert) []Record {
	out := make([]Record, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromConcert(c))
	}
	return out
}

// Paginate returns list[offset : offset+limit] when either limit or
// offset is non-zero, truncating at the ends of the list; otherwise it
// returns the list unchanged.  A zero limit combined with a non-zero
// offset therefore yields an empty slice — that is the literal slice
// semantics, not a "no limit" sentinel.
func Paginate(list []Record, limit, offset int) []Record {
	if limit == 0 && offset == 0 {
		return list
	}
	start := offset
	if start < 0 {
		start = 0
	}
	if start > len(list) {
		start = len(list)
	}
	end := offset + limit
	if end < start {
		end = start
	}
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

// Project keeps only the fields named in the comma-separated fields
// string, returning new records in the same order.  An empty fields
// string returns the list unchanged without copying.
func Project(list []Record, fields string) []Record {
	if fields == "" {
		return list
	}
	keep := make(map[string]bool)
	for _, f := range strings.Split(fields, ",") {
		keep[f] = true
	}
	out := make([]Record, 0, len(list))
	for _, r := range list {
		nr := make(Record)
		for k, v := range r {
			if keep[k] {
				nr[k] = v
			}
		}
		out = append(out, nr)
	}
	return out
}

// EncodeDates renders the named fields of every record as ISO-8601
// strings.  The decision is made once, off the first record: when any
// requested field is missing from its key set the whole list is returned
// unconverted.  There is no per-record check.  The input list is never
// mutated; conversion works on copies.
func EncodeDates(list []Record, fields string) []Record {
	if len(list) == 0 {
		return list
	}
	names := strings.Split(fields, ",")
	for _, f := range names {
		if _, ok := list[0][f]; !ok {
			return list
		}
	}
	out := make([]Record, len(list))
	for i, r := range list {
		nr := make(Record, len(r))
		for k, v := range r {
			nr[k] = v
		}
		for _, f := range names {
			if t, ok := nr[f].(time.Time); ok {
				nr[f] = t.Format(time.RFC3339)
			}
		}
		out[i] = nr
	}
	return out
}
