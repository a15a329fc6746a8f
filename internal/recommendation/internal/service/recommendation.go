package service

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobreview/internal/recommendation/internal/cache"
	"github.com/ecodeclub/jobreview/internal/recommendation/internal/domain"
	"github.com/ecodeclub/jobreview/internal/review"
	"github.com/gotomicro/ego/core/elog"
)

const (
	// DefaultTopN 不传就按老规矩推 10 条
	DefaultTopN = 10
	// 相似度计算是 O(用户数² x 职位数)，语料量要封顶
	defaultMaxCorpusSize = 10000
)

type RecommendationService interface {
	// Recommend topN 传 0 用默认条数
	Recommend(ctx context.Context, uid int64, topN int) ([]review.Review, error)
}

type recommendationService struct {
	reviewSvc     review.Svc
	cache         cache.RecommendationCache
	logger        *elog.Component
	maxCorpusSize int
}

func NewRecommendationService(reviewSvc review.Svc,
	c cache.RecommendationCache, maxCorpusSize int) RecommendationService {
	if maxCorpusSize <= 0 {
		maxCorpusSize = defaultMaxCorpusSize
	}
	return &recommendationService{
		reviewSvc:     reviewSvc,
		cache:         c,
		logger:        elog.DefaultLogger,
		maxCorpusSize: maxCorpusSize,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, uid int64, topN int) ([]review.Review, error) {
	if topN == 0 {
		topN = DefaultTopN
	}
	if res, err := s.cache.GetList(ctx, uid, topN); err == nil {
		return res, nil
	}
	corpus, err := s.reviewSvc.All(ctx, s.maxCorpusSize)
	if err != nil {
		return nil, err
	}
	res, err := Recommend(s.toRated(corpus), uid, topN)
	if err != nil {
		return nil, err
	}
	if cerr := s.cache.SetList(ctx, uid, topN, res); cerr != nil {
		s.logger.Error("缓存推荐结果失败",
			elog.FieldErr(cerr),
			elog.Int64("uid", uid))
	}
	return res, nil
}

func (s *recommendationService) toRated(reviews []review.Review) []domain.RatedReview {
	return slice.Map(reviews, func(idx int, src review.Review) domain.RatedReview {
		// 库里查出来的记录结构上一定完整，rating/recommendation 的 NULL
		// 映射成 null 观测值，由引擎过滤。职位用自然键，
		// 不同作者对同一个职位的点评才能落到同一列上
		return domain.RatedReview{
			JobID:          domain.ObservationOf(src.JobKey()),
			Author:         domain.ObservationOf(src.Uid),
			Rating:         domain.Observed(src.Rating),
			Recommendation: domain.Observed(src.Recommendation),
			Source:         src,
		}
	})
}
