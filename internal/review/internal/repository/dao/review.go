package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrDeleteNotAllowed 删除别人的点评
	ErrDeleteNotAllowed = errors.New("只能删除自己的点评")
)

// Filter 列表页的筛选条件，零值字段不参与筛选
type Filter struct {
	Department string
	Company    string
	Location   string
}

type ReviewDAO interface {
	// Save 同一个作者对同一个职位的点评是覆盖语义
	Save(ctx context.Context, r Review) (int64, error)
	FindById(ctx context.Context, id int64) (Review, error)
	List(ctx context.Context, f Filter, offset, limit int) ([]Review, error)
	Count(ctx context.Context, f Filter) (int64, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Review, error)
	Delete(ctx context.Context, id, uid int64) error
	// TopList 按照打分和推荐度之和倒序
	TopList(ctx context.Context, limit int) ([]Review, error)
	// All 推荐引擎的语料，带上限
	All(ctx context.Context, limit int) ([]Review, error)
	Departments(ctx context.Context) ([]string, error)
	Companies(ctx context.Context) ([]string, error)
	// LocationValues 返回的是去重后的 locations 列原始 JSON
	LocationValues(ctx context.Context) ([]string, error)
}

type GORMReviewDAO struct {
	db *egorm.Component
}

func NewGORMReviewDAO(db *egorm.Component) ReviewDAO {
	return &GORMReviewDAO{
		db: db,
	}
}

func (d *GORMReviewDAO) Save(ctx context.Context, r Review) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}, {Name: "jkey"}},
		DoUpdates: clause.Assignments(map[string]any{
			"department":     r.Department,
			"description":    r.Description,
			"hourly_pay":     r.HourlyPay,
			"benefits":       r.Benefits,
			"content":        r.Content,
			"rating":         r.Rating,
			"recommendation": r.Recommendation,
			"utime":          now,
		}),
	}).Create(&r).Error
	return r.Id, err
}

func (d *GORMReviewDAO) FindById(ctx context.Context, id int64) (Review, error) {
	var r Review
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	return r, err
}

func (d *GORMReviewDAO) List(ctx context.Context, f Filter, offset, limit int) ([]Review, error) {
	var reviews []Review
	err := d.query(ctx, f).
		Order("id desc").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (d *GORMReviewDAO) Count(ctx context.Context, f Filter) (int64, error) {
	var res int64
	err := d.query(ctx, f).Select("COUNT(id)").Count(&res).Error
	return res, err
}

func (d *GORMReviewDAO) query(ctx context.Context, f Filter) *gorm.DB {
	query := d.db.WithContext(ctx).Model(&Review{})
	if f.Department != "" {
		query = query.Where("department = ?", f.Department)
	}
	if f.Company != "" {
		query = query.Where("company = ?", f.Company)
	}
	if f.Location != "" {
		// locations 是 JSON 数组，这里用模糊匹配
		query = query.Where("locations LIKE ?", "%\""+f.Location+"\"%")
	}
	return query
}

func (d *GORMReviewDAO) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Review, error) {
	var reviews []Review
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id desc").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (d *GORMReviewDAO) Delete(ctx context.Context, id, uid int64) error {
	res := d.db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return ErrDeleteNotAllowed
	}
	return nil
}

func (d *GORMReviewDAO) TopList(ctx context.Context, limit int) ([]Review, error) {
	var reviews []Review
	err := d.db.WithContext(ctx).
		Where("rating IS NOT NULL AND recommendation IS NOT NULL").
		Order("rating + recommendation DESC, id DESC").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (d *GORMReviewDAO) All(ctx context.Context, limit int) ([]Review, error) {
	var reviews []Review
	err := d.db.WithContext(ctx).
		Order("id asc").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (d *GORMReviewDAO) Departments(ctx context.Context) ([]string, error) {
	var res []string
	err := d.db.WithContext(ctx).Model(&Review{}).
		Distinct("department").
		Where("department != ''").
		Pluck("department", &res).Error
	return res, err
}

func (d *GORMReviewDAO) Companies(ctx context.Context) ([]string, error) {
	var res []string
	err := d.db.WithContext(ctx).Model(&Review{}).
		Distinct("company").
		Where("company != ''").
		Pluck("company", &res).Error
	return res, err
}

func (d *GORMReviewDAO) LocationValues(ctx context.Context) ([]string, error) {
	var res []string
	err := d.db.WithContext(ctx).Model(&Review{}).
		Distinct("locations").
		Where("locations != ''").
		Pluck("locations", &res).Error
	return res, err
}
