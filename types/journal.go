package types

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry represents a dated entry in the daily log. Entries are
// immutable once written.
type JournalEntry struct {
	// ID is the unique identifier of the entry.
	ID uuid.UUID `json:"id" db:"id"`

	// Date is the calendar day the entry belongs to, rendered as
	// YYYY-MM-DD. It carries no time component.
	Date string `json:"date" db:"date"`

	// EntryType classifies the entry ("note", "reflection", ...).
	// Free-form, not enforced.
	EntryType string `json:"entry_type" db:"entry_type"`

	// Mood is an optional free-form mood label.
	Mood *string `json:"mood" db:"mood"`

	// Content is the free-text body of the entry.
	Content string `json:"content" db:"content"`

	// CreatedAt is the timestamp the entry was persisted.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
