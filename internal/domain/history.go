package domain

import "time"

// ApplyRecord is one line of the apply history trail (.srclist/history.jsonl).
type ApplyRecord struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Target    string    `json:"target"`
	Backup    string    `json:"backup"`
	FileCount int       `json:"file_count"`
}
