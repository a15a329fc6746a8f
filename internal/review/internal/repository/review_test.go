package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/jobreview/internal/review/internal/domain"
	"github.com/ecodeclub/jobreview/internal/review/internal/repository/dao"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewDAO struct {
	dao.ReviewDAO
	review    dao.Review
	err       error
	findCalls int
}

func (f *fakeReviewDAO) FindById(_ context.Context, _ int64) (dao.Review, error) {
	f.findCalls++
	return f.review, f.err
}

type fakeReviewCache struct {
	cached map[int64]domain.Review
	sets   []domain.Review
}

func newFakeReviewCache() *fakeReviewCache {
	return &fakeReviewCache{cached: make(map[int64]domain.Review)}
}

func (f *fakeReviewCache) SetReview(_ context.Context, r domain.Review) error {
	f.sets = append(f.sets, r)
	f.cached[r.Id] = r
	return nil
}

func (f *fakeReviewCache) GetReview(_ context.Context, id int64) (domain.Review, error) {
	r, ok := f.cached[id]
	if !ok {
		return domain.Review{}, errors.New("缓存未命中")
	}
	return r, nil
}

func (f *fakeReviewCache) DelReview(_ context.Context, id int64) error {
	delete(f.cached, id)
	return nil
}

func (f *fakeReviewCache) SetTopList(_ context.Context, _ []domain.Review) error {
	return nil
}

func (f *fakeReviewCache) GetTopList(_ context.Context) ([]domain.Review, error) {
	return nil, errors.New("缓存未命中")
}

func TestCachedReviewRepository_FindById(t *testing.T) {
	t.Parallel()
	now := time.UnixMilli(time.Now().UnixMilli())
	d := &fakeReviewDAO{
		review: dao.Review{
			Id:          3,
			SN:          "sn-3",
			Uid:         11,
			Jkey:        "后端开发|Acme|上海",
			Title:       "后端开发",
			Company:     "Acme",
			Locations:   sqlx.JsonColumn[[]string]{Val: []string{"上海"}, Valid: true},
			Department:  "平台部",
			Description: "写 Go",
			HourlyPay:   300,
			Benefits:    "下午茶",
			Content:     "加班不少",
			Rating:      sql.NullInt64{Int64: 4, Valid: true},
			// 推荐度没打，NULL 要映射成 nil 指针
			Ctime: now.UnixMilli(),
			Utime: now.UnixMilli(),
		},
	}
	c := newFakeReviewCache()
	repo := NewCachedReviewRepository(d, c)

	got, err := repo.FindById(context.Background(), 3)
	require.NoError(t, err)
	rating := int64(4)
	assert.Equal(t, domain.Review{
		Id:          3,
		SN:          "sn-3",
		Uid:         11,
		Title:       "后端开发",
		Company:     "Acme",
		Locations:   []string{"上海"},
		Department:  "平台部",
		Description: "写 Go",
		HourlyPay:   300,
		Benefits:    "下午茶",
		Content:     "加班不少",
		Rating:      &rating,
		Ctime:       now,
		Utime:       now,
	}, got)
	// 未命中之后回写缓存
	require.Len(t, c.sets, 1)
	assert.Equal(t, got, c.sets[0])

	// 第二次命中缓存，不再查库
	again, err := repo.FindById(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, got, again)
	assert.Equal(t, 1, d.findCalls)
}

func TestCachedReviewRepository_FindById_notFound(t *testing.T) {
	t.Parallel()
	d := &fakeReviewDAO{err: dao.ErrRecordNotFound}
	repo := NewCachedReviewRepository(d, newFakeReviewCache())

	_, err := repo.FindById(context.Background(), 404)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
