package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/ecodeclub/jobreview/internal/recommendation/internal/cache"
	"github.com/ecodeclub/jobreview/internal/review"
	reviewmocks "github.com/ecodeclub/jobreview/internal/review/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeCache struct {
	lists map[string][]review.Review
	sets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{lists: map[string][]review.Review{}}
}

func (f *fakeCache) key(uid int64, topN int) string {
	return fmt.Sprintf("%d:%d", uid, topN)
}

func (f *fakeCache) GetList(_ context.Context, uid int64, topN int) ([]review.Review, error) {
	res, ok := f.lists[f.key(uid, topN)]
	if !ok {
		return nil, cache.ErrListNotFound
	}
	return res, nil
}

func (f *fakeCache) SetList(_ context.Context, uid int64, topN int, list []review.Review) error {
	f.sets++
	f.lists[f.key(uid, topN)] = list
	return nil
}

func testReviews() []review.Review {
	mk := func(uid int64, title string, rating, rec int64) review.Review {
		return review.Review{
			Uid:            uid,
			Title:          title,
			Company:        "Acme",
			Rating:         &rating,
			Recommendation: &rec,
		}
	}
	return []review.Review{
		mk(1, "后端开发", 4, 8),
		mk(1, "测试开发", 5, 9),
		mk(2, "后端开发", 3, 7),
		mk(2, "前端开发", 4, 6),
		mk(3, "测试开发", 4, 9),
		mk(3, "前端开发", 5, 10),
		mk(3, "运维", 3, 6),
	}
}

func TestRecommendationService_Recommend(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	reviewSvc := reviewmocks.NewMockReviewService(ctrl)
	// 默认 topN 是 10，语料上限走配置
	reviewSvc.EXPECT().All(gomock.Any(), 100).Return(testReviews(), nil)
	c := newFakeCache()
	svc := NewRecommendationService(reviewSvc, c, 100)

	res, err := svc.Recommend(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "前端开发", res[0].Title)
	assert.Equal(t, "运维", res[1].Title)
	assert.Equal(t, 1, c.sets)

	// 第二次命中缓存，不再拉语料
	res, err = svc.Recommend(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, 1, c.sets)
}

func TestRecommendationService_Recommend_unknownUser(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	reviewSvc := reviewmocks.NewMockReviewService(ctrl)
	reviewSvc.EXPECT().All(gomock.Any(), 100).Return(testReviews(), nil)
	svc := NewRecommendationService(reviewSvc, newFakeCache(), 100)

	// 没点评过的新用户给空列表
	res, err := svc.Recommend(context.Background(), 999, 5)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestRecommendationService_Recommend_negativeTopN(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	reviewSvc := reviewmocks.NewMockReviewService(ctrl)
	reviewSvc.EXPECT().All(gomock.Any(), 100).Return(testReviews(), nil)
	c := newFakeCache()
	svc := NewRecommendationService(reviewSvc, c, 100)

	_, err := svc.Recommend(context.Background(), 1, -1)
	assert.ErrorIs(t, err, ErrInvalidTopN)
	// 出错不落缓存
	assert.Zero(t, c.sets)
}
