package repository

import (
	"context"
	"testing"

	"github.com/ecodeclub/jobreview/internal/stats/internal/domain"
	"github.com/ecodeclub/jobreview/internal/stats/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDAO struct {
	dao.StatsDAO
	rows []dao.LocationRow
}

func (f *fakeDAO) LocationRows(_ context.Context) ([]dao.LocationRow, error) {
	return f.rows, nil
}

func TestStatsRepository_Locations(t *testing.T) {
	t.Parallel()
	repo := NewStatsRepository(&fakeDAO{
		rows: []dao.LocationRow{
			{Locations: `["上海","北京"]`, HourlyPay: 100},
			{Locations: `["上海"]`, HourlyPay: 200},
			// 没填时薪的只计数，不参与均值
			{Locations: `["北京"]`, HourlyPay: 0},
			// 脏数据直接跳过
			{Locations: `not json`, HourlyPay: 50},
		},
	})

	counts, pays, err := repo.Locations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Bucket{
		{Name: "上海", Cnt: 2},
		{Name: "北京", Cnt: 2},
	}, counts)
	assert.Equal(t, []domain.PayBucket{
		{Location: "上海", AvgPay: 150},
		{Location: "北京", AvgPay: 100},
	}, pays)
}
