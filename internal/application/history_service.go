package application

import (
	"time"

	"github.com/felixgeelhaar/srclist/internal/domain"
	"github.com/google/uuid"
)

// HistoryService keeps the append-only trail of successful applies.
type HistoryService struct {
	repo domain.TargetRepository
}

func NewHistoryService(repo domain.TargetRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

func (s *HistoryService) Record(target, backup string, fileCount int) error {
	rec := domain.ApplyRecord{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Target:    target,
		Backup:    backup,
		FileCount: fileCount,
	}
	return s.repo.RecordApply(rec)
}

func (s *HistoryService) Timeline() ([]domain.ApplyRecord, error) {
	return s.repo.LoadHistory()
}
