package model

import "time"

// Guess is a scored event attributed to a user. The service only reads
// guesses for aggregate statistics; deleting a user leaves its guesses
// in place.
type Guess struct {
	ID        int64
	UserID    int64
	Score     float64
	CreatedAt time.Time
}
