package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/cyberme/apiserver/types"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// JournalRepository handles persistence for daily log entries.
type JournalRepository struct {
	db *sql.DB
}

func NewJournalRepository(db *sql.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// Create inserts a new log entry and returns the persisted row. Entries
// are immutable after this point; no update path exists.
func (r *JournalRepository) Create(ctx context.Context, date time.Time, entryType string, mood *string, content string) (types.JournalEntry, error) {
	entry := types.JournalEntry{
		ID:        uuid.New(),
		Date:      date.Format(dateLayout),
		EntryType: entryType,
		Mood:      mood,
		Content:   content,
		CreatedAt: time.Now(),
	}

	const query = `
		INSERT INTO daily_logs (id, date, entry_type, mood, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.ExecContext(
		ctx,
		query,
		entry.ID,
		date,
		entry.EntryType,
		entry.Mood,
		entry.Content,
		entry.CreatedAt,
	); err != nil {
		return types.JournalEntry{}, err
	}
	return entry, nil
}

// Recent returns up to limit entries ordered by date, newest first.
func (r *JournalRepository) Recent(ctx context.Context, limit int) ([]types.JournalEntry, error) {
	const query = `
		SELECT id, date, entry_type, mood, content, created_at
		FROM daily_logs
		ORDER BY date DESC
		LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]types.JournalEntry, 0, limit)
	for rows.Next() {
		var entry types.JournalEntry
		var date time.Time
		if err := rows.Scan(
			&entry.ID,
			&date,
			&entry.EntryType,
			&entry.Mood,
			&entry.Content,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entry.Date = date.Format(dateLayout)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
