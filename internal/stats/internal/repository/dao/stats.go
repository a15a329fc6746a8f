package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

// 只读统计查询，表归 review 模块建，这里不做迁移

type CompanyBucket struct {
	Company string
	Cnt     int64
}

type RatingBucket struct {
	Rating int64
	Cnt    int64
}

// LocationRow 地点是 JSON 数组列，数据库里没法直接 GROUP BY，
// 整行拉回来在内存里摊平
type LocationRow struct {
	Locations string
	HourlyPay float64
}

type StatsDAO interface {
	TotalReviews(ctx context.Context) (int64, error)
	Companies(ctx context.Context, limit int) ([]CompanyBucket, error)
	Ratings(ctx context.Context) ([]RatingBucket, error)
	LocationRows(ctx context.Context) ([]LocationRow, error)
}

type GORMStatsDAO struct {
	db *egorm.Component
}

func NewGORMStatsDAO(db *egorm.Component) StatsDAO {
	return &GORMStatsDAO{db: db}
}

func (d *GORMStatsDAO) TotalReviews(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Table("reviews").Count(&res).Error
	return res, err
}

func (d *GORMStatsDAO) Companies(ctx context.Context, limit int) ([]CompanyBucket, error) {
	var res []CompanyBucket
	err := d.db.WithContext(ctx).Table("reviews").
		Select("company, COUNT(*) AS cnt").
		Group("company").
		Order("cnt DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMStatsDAO) Ratings(ctx context.Context) ([]RatingBucket, error) {
	var res []RatingBucket
	err := d.db.WithContext(ctx).Table("reviews").
		Select("rating, COUNT(*) AS cnt").
		Where("rating IS NOT NULL").
		Group("rating").
		Order("rating ASC").
		Find(&res).Error
	return res, err
}

func (d *GORMStatsDAO) LocationRows(ctx context.Context) ([]LocationRow, error) {
	var res []LocationRow
	err := d.db.WithContext(ctx).Table("reviews").
		Select("locations, hourly_pay").
		Find(&res).Error
	return res, err
}
