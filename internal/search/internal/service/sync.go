package service

import (
	"context"

	"github.com/ecodeclub/jobreview/internal/search/internal/repository"
)

type SyncService interface {
	Input(ctx context.Context, index, docID, data string) error
}

type syncService struct {
	anyRepo repository.AnyRepo
}

func NewSyncService(anyRepo repository.AnyRepo) SyncService {
	return &syncService{anyRepo: anyRepo}
}

func (s *syncService) Input(ctx context.Context, index, docID, data string) error {
	return s.anyRepo.Input(ctx, index, docID, data)
}
