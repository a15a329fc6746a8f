package service

import (
	"context"
	"testing"

	"github.com/ecodeclub/jobreview/internal/stats/internal/domain"
	"github.com/ecodeclub/jobreview/internal/stats/internal/repository"
	usermocks "github.com/ecodeclub/jobreview/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeRepo struct {
	repository.StatsRepository
}

func (f *fakeRepo) TotalReviews(_ context.Context) (int64, error) {
	return 42, nil
}

func (f *fakeRepo) Companies(_ context.Context, limit int) ([]domain.Bucket, error) {
	return []domain.Bucket{{Name: "Acme", Cnt: 20}}, nil
}

func (f *fakeRepo) Ratings(_ context.Context) ([]domain.RatingBucket, error) {
	return []domain.RatingBucket{{Rating: 5, Cnt: 10}}, nil
}

func (f *fakeRepo) Locations(_ context.Context) ([]domain.Bucket, []domain.PayBucket, error) {
	return []domain.Bucket{{Name: "上海", Cnt: 15}},
		[]domain.PayBucket{{Location: "上海", AvgPay: 120}}, nil
}

func TestStatsService_Dashboard(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	userSvc := usermocks.NewMockUserService(ctrl)
	userSvc.EXPECT().Total(gomock.Any()).Return(int64(7), nil)
	svc := NewStatsService(&fakeRepo{}, userSvc)

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Dashboard{
		TotalUsers:       7,
		TotalReviews:     42,
		Locations:        []domain.Bucket{{Name: "上海", Cnt: 15}},
		Companies:        []domain.Bucket{{Name: "Acme", Cnt: 20}},
		AvgPayByLocation: []domain.PayBucket{{Location: "上海", AvgPay: 120}},
		Ratings:          []domain.RatingBucket{{Rating: 5, Cnt: 10}},
	}, d)
}
