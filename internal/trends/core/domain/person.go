package domain

import "time"

// Person is a distinct end-user, possibly merged from several distinct ids.
type Person struct {
	ID         int64
	Name       string
	Properties map[string]any
	CreatedAt  time.Time
}
