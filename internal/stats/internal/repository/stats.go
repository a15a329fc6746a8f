package repository

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobreview/internal/stats/internal/domain"
	"github.com/ecodeclub/jobreview/internal/stats/internal/repository/dao"
)

type StatsRepository interface {
	TotalReviews(ctx context.Context) (int64, error)
	Companies(ctx context.Context, limit int) ([]domain.Bucket, error)
	Ratings(ctx context.Context) ([]domain.RatingBucket, error)
	// Locations 地点的点评数直方图和平均时薪，一次摊平算出来
	Locations(ctx context.Context) ([]domain.Bucket, []domain.PayBucket, error)
}

type statsRepository struct {
	dao dao.StatsDAO
}

func NewStatsRepository(d dao.StatsDAO) StatsRepository {
	return &statsRepository{dao: d}
}

func (r *statsRepository) TotalReviews(ctx context.Context) (int64, error) {
	return r.dao.TotalReviews(ctx)
}

func (r *statsRepository) Companies(ctx context.Context, limit int) ([]domain.Bucket, error) {
	buckets, err := r.dao.Companies(ctx, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(buckets, func(idx int, src dao.CompanyBucket) domain.Bucket {
		return domain.Bucket{Name: src.Company, Cnt: src.Cnt}
	}), nil
}

func (r *statsRepository) Ratings(ctx context.Context) ([]domain.RatingBucket, error) {
	buckets, err := r.dao.Ratings(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(buckets, func(idx int, src dao.RatingBucket) domain.RatingBucket {
		return domain.RatingBucket{Rating: src.Rating, Cnt: src.Cnt}
	}), nil
}

func (r *statsRepository) Locations(ctx context.Context) ([]domain.Bucket, []domain.PayBucket, error) {
	rows, err := r.dao.LocationRows(ctx)
	if err != nil {
		return nil, nil, err
	}
	type acc struct {
		cnt    int64
		paySum float64
		payCnt int64
	}
	accs := make(map[string]*acc)
	for _, row := range rows {
		var locations []string
		if uerr := json.Unmarshal([]byte(row.Locations), &locations); uerr != nil {
			// 个别脏数据不至于让整个仪表盘挂掉
			continue
		}
		for _, loc := range locations {
			a := accs[loc]
			if a == nil {
				a = &acc{}
				accs[loc] = a
			}
			a.cnt++
			if row.HourlyPay > 0 {
				a.paySum += row.HourlyPay
				a.payCnt++
			}
		}
	}
	counts := make([]domain.Bucket, 0, len(accs))
	pays := make([]domain.PayBucket, 0, len(accs))
	for loc, a := range accs {
		counts = append(counts, domain.Bucket{Name: loc, Cnt: a.cnt})
		if a.payCnt > 0 {
			pays = append(pays, domain.PayBucket{
				Location: loc,
				AvgPay:   a.paySum / float64(a.payCnt),
			})
		}
	}
	// 图表要稳定的展示顺序
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Cnt != counts[j].Cnt {
			return counts[i].Cnt > counts[j].Cnt
		}
		return counts[i].Name < counts[j].Name
	})
	sort.Slice(pays, func(i, j int) bool {
		if pays[i].AvgPay != pays[j].AvgPay {
			return pays[i].AvgPay > pays[j].AvgPay
		}
		return pays[i].Location < pays[j].Location
	})
	return counts, pays, nil
}
