package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobreview/internal/search/internal/domain"
	"github.com/ecodeclub/jobreview/internal/search/internal/repository/dao"
)

type ReviewRepo interface {
	SearchReview(ctx context.Context, offset, limit int, keywords string) ([]domain.Review, error)
}

type reviewRepo struct {
	dao dao.ReviewDAO
}

func NewReviewRepo(d dao.ReviewDAO) ReviewRepo {
	return &reviewRepo{dao: d}
}

func (r *reviewRepo) SearchReview(ctx context.Context, offset, limit int, keywords string) ([]domain.Review, error) {
	reviews, err := r.dao.SearchReview(ctx, offset, limit, keywords)
	if err != nil {
		return nil, err
	}
	return slice.Map(reviews, func(idx int, src dao.Review) domain.Review {
		return domain.Review{
			Id:             src.Id,
			Uid:            src.Uid,
			Title:          src.Title,
			Company:        src.Company,
			Locations:      src.Locations,
			Department:     src.Department,
			Description:    src.Description,
			HourlyPay:      src.HourlyPay,
			Benefits:       src.Benefits,
			Content:        src.Content,
			Rating:         src.Rating,
			Recommendation: src.Recommendation,
			Utime:          time.UnixMilli(src.Utime),
			Highlights:     src.EsHighlights,
		}
	}), nil
}
