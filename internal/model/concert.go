package model

import "time"

// Concert represents a single concert record held in the in-memory store.
//
// Fields:
//  ID     – unique identifier, client-supplied or server-generated.
//  Artist – performing artist or band.
//  Venue  – where the concert takes place.
//  Date   – concert date and time, carrying the timezone offset it was
//           submitted with.  Parsed from and rendered back to ISO-8601.
type Concert struct {
	ID     int
	Artist string
	Venue  string
	Date   time.Time
}

// ConcertBody is the JSON shape accepted by POST and PUT.  All fields are
// pointers so that an absent key can be told apart from a present-but-empty
// value; only presence is validated.  The optional ID is honoured by the
// collection POST and ignored by PUT, which takes the id from the path.
type ConcertBody struct {
	ID     *int    `json:"id"`
	Artist *string `json:"artist"`
	Venue  *string `json:"venue"`
	Date   *string `json:"date"`
}

// ConcertPatch is the JSON shape accepted by PATCH.  Every field is
// optional; only the fields present in the request are merged into the
// stored record.
type ConcertPatch struct {
	Artist *string `json:"artist"`
	Venue  *string `json:"venue"`
	Date   *string `json:"date"`
}
