package service

import (
	"context"

	"github.com/ecodeclub/jobreview/internal/search/internal/domain"
	"github.com/ecodeclub/jobreview/internal/search/internal/repository"
)

// defaultLimit 不传分页参数就给 20 条
const defaultLimit = 20

type SearchService interface {
	SearchReview(ctx context.Context, offset, limit int, keywords string) ([]domain.Review, error)
}

type searchService struct {
	reviewRepo repository.ReviewRepo
}

func NewSearchService(reviewRepo repository.ReviewRepo) SearchService {
	return &searchService{reviewRepo: reviewRepo}
}

func (s *searchService) SearchReview(ctx context.Context, offset, limit int, keywords string) ([]domain.Review, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return s.reviewRepo.SearchReview(ctx, offset, limit, keywords)
}
