// Package model defines the journal data types.
package model

import "time"

// Record is one rendered sentence kept in the journal.
type Record struct {
	ID        string     `json:"id"`
	Input     string     `json:"input"`
	Text      string     `json:"text"`
	Style     string     `json:"style"`
	Source    string     `json:"source"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Sources of a record.
const (
	SourceNow    = "now"
	SourceSay    = "say"
	SourceImport = "import"
)

// ValidSources are the allowed record sources.
var ValidSources = map[string]bool{
	SourceNow:    true,
	SourceSay:    true,
	SourceImport: true,
}
