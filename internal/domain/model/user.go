package model

import "time"

// User represents a registered account.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// UserScore is a read-time aggregation of a user's guesses. It is never
// persisted; users without guesses produce no UserScore at all.
type UserScore struct {
	User
	TotalScore   float64
	MaxScore     float64
	AverageScore float64
}
