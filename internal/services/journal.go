package services

import (
	"context"
	"time"

	"github.com/cyberme/apiserver/types"
)

const defaultRecentLogs = 10

// JournalRepository defines persistence operations for daily log entries.
type JournalRepository interface {
	Create(ctx context.Context, date time.Time, entryType string, mood *string, content string) (types.JournalEntry, error)
	Recent(ctx context.Context, limit int) ([]types.JournalEntry, error)
}

// JournalService encapsulates daily log use-cases.
type JournalService struct {
	repo JournalRepository
}

func NewJournalService(repo JournalRepository) *JournalService {
	return &JournalService{repo: repo}
}

func (s *JournalService) Create(ctx context.Context, date time.Time, entryType string, mood *string, content string) (types.JournalEntry, error) {
	return s.repo.Create(ctx, date, entryType, mood, content)
}

func (s *JournalService) Recent(ctx context.Context, limit int) ([]types.JournalEntry, error) {
	if limit < 1 {
		limit = defaultRecentLogs
	}
	return s.repo.Recent(ctx, limit)
}
