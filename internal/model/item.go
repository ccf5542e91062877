package model

import "time"

// Item is the domain model for a todo entry.
// Timestamps are optional so files that only carry text and completed
// still load and round-trip unchanged.
type Item struct {
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
