package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/jobreview/internal/review/internal/domain"
	"github.com/ecodeclub/jobreview/internal/review/internal/repository/cache"
	"github.com/ecodeclub/jobreview/internal/review/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrRecordNotFound   = dao.ErrRecordNotFound
	ErrDeleteNotAllowed = dao.ErrDeleteNotAllowed
)

// Filter 列表页的筛选条件
type Filter = dao.Filter

// Filters 筛选项，由现有数据里的取值聚合出来
type Filters struct {
	Departments []string
	Companies   []string
	Locations   []string
}

type ReviewRepository interface {
	Save(ctx context.Context, r domain.Review) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Review, error)
	List(ctx context.Context, f Filter, offset, limit int) ([]domain.Review, error)
	Total(ctx context.Context, f Filter) (int64, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Review, error)
	Delete(ctx context.Context, id, uid int64) error
	TopList(ctx context.Context, limit int) ([]domain.Review, error)
	All(ctx context.Context, limit int) ([]domain.Review, error)
	Filters(ctx context.Context) (Filters, error)
}

type CachedReviewRepository struct {
	dao    dao.ReviewDAO
	cache  cache.ReviewCache
	logger *elog.Component
}

func NewCachedReviewRepository(d dao.ReviewDAO, c cache.ReviewCache) ReviewRepository {
	return &CachedReviewRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedReviewRepository) Save(ctx context.Context, r domain.Review) (int64, error) {
	id, err := repo.dao.Save(ctx, repo.toEntity(r))
	if err != nil {
		return 0, err
	}
	// 覆盖保存之后旧缓存就不对了
	if id > 0 {
		if e := repo.cache.DelReview(ctx, id); e != nil {
			repo.logger.Error("删除点评缓存失败", elog.FieldErr(e), elog.Int64("rid", id))
		}
	}
	return id, nil
}

func (repo *CachedReviewRepository) FindById(ctx context.Context, id int64) (domain.Review, error) {
	r, err := repo.cache.GetReview(ctx, id)
	if err == nil {
		return r, nil
	}
	ent, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.Review{}, err
	}
	res := repo.toDomain(ent)
	if e := repo.cache.SetReview(ctx, res); e != nil {
		repo.logger.Error("回写点评缓存失败", elog.FieldErr(e), elog.Int64("rid", id))
	}
	return res, nil
}

func (repo *CachedReviewRepository) List(ctx context.Context, f Filter, offset, limit int) ([]domain.Review, error) {
	reviews, err := repo.dao.List(ctx, f, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(reviews, func(idx int, src dao.Review) domain.Review {
		return repo.toDomain(src)
	}), nil
}

func (repo *CachedReviewRepository) Total(ctx context.Context, f Filter) (int64, error) {
	return repo.dao.Count(ctx, f)
}

func (repo *CachedReviewRepository) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Review, error) {
	reviews, err := repo.dao.ListByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(reviews, func(idx int, src dao.Review) domain.Review {
		return repo.toDomain(src)
	}), nil
}

func (repo *CachedReviewRepository) Delete(ctx context.Context, id, uid int64) error {
	err := repo.dao.Delete(ctx, id, uid)
	if err != nil {
		return err
	}
	if e := repo.cache.DelReview(ctx, id); e != nil {
		repo.logger.Error("删除点评缓存失败", elog.FieldErr(e), elog.Int64("rid", id))
	}
	return nil
}

func (repo *CachedReviewRepository) TopList(ctx context.Context, limit int) ([]domain.Review, error) {
	res, err := repo.cache.GetTopList(ctx)
	if err == nil && len(res) > 0 {
		if len(res) > limit {
			res = res[:limit]
		}
		return res, nil
	}
	reviews, err := repo.dao.TopList(ctx, limit)
	if err != nil {
		return nil, err
	}
	res = slice.Map(reviews, func(idx int, src dao.Review) domain.Review {
		return repo.toDomain(src)
	})
	if e := repo.cache.SetTopList(ctx, res); e != nil {
		repo.logger.Error("回写榜单缓存失败", elog.FieldErr(e))
	}
	return res, nil
}

func (repo *CachedReviewRepository) All(ctx context.Context, limit int) ([]domain.Review, error) {
	reviews, err := repo.dao.All(ctx, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(reviews, func(idx int, src dao.Review) domain.Review {
		return repo.toDomain(src)
	}), nil
}

func (repo *CachedReviewRepository) Filters(ctx context.Context) (Filters, error) {
	departments, err := repo.dao.Departments(ctx)
	if err != nil {
		return Filters{}, err
	}
	companies, err := repo.dao.Companies(ctx)
	if err != nil {
		return Filters{}, err
	}
	vals, err := repo.dao.LocationValues(ctx)
	if err != nil {
		return Filters{}, err
	}
	// locations 列存的是 JSON 数组，去重展开
	locationSet := make(map[string]struct{})
	locations := make([]string, 0, len(vals))
	for _, val := range vals {
		var locs []string
		if e := json.Unmarshal([]byte(val), &locs); e != nil {
			continue
		}
		for _, loc := range locs {
			if _, ok := locationSet[loc]; ok {
				continue
			}
			locationSet[loc] = struct{}{}
			locations = append(locations, loc)
		}
	}
	return Filters{
		Departments: departments,
		Companies:   companies,
		Locations:   locations,
	}, nil
}

func (repo *CachedReviewRepository) toEntity(r domain.Review) dao.Review {
	e := dao.Review{
		Id:          r.Id,
		SN:          r.SN,
		Uid:         r.Uid,
		Jkey:        r.JobKey(),
		Title:       r.Title,
		Company:     r.Company,
		Department:  r.Department,
		Description: r.Description,
		HourlyPay:   r.HourlyPay,
		Benefits:    r.Benefits,
		Content:     r.Content,
		Ctime:       r.Ctime.UnixMilli(),
		Utime:       r.Utime.UnixMilli(),
	}
	if len(r.Locations) > 0 {
		e.Locations = sqlx.JsonColumn[[]string]{Val: r.Locations, Valid: true}
	}
	if r.Rating != nil {
		e.Rating = sql.NullInt64{Int64: *r.Rating, Valid: true}
	}
	if r.Recommendation != nil {
		e.Recommendation = sql.NullInt64{Int64: *r.Recommendation, Valid: true}
	}
	return e
}

func (repo *CachedReviewRepository) toDomain(e dao.Review) domain.Review {
	r := domain.Review{
		Id:          e.Id,
		SN:          e.SN,
		Uid:         e.Uid,
		Title:       e.Title,
		Company:     e.Company,
		Department:  e.Department,
		Description: e.Description,
		HourlyPay:   e.HourlyPay,
		Benefits:    e.Benefits,
		Content:     e.Content,
		Ctime:       time.UnixMilli(e.Ctime),
		Utime:       time.UnixMilli(e.Utime),
	}
	if e.Locations.Valid {
		r.Locations = e.Locations.Val
	}
	if e.Rating.Valid {
		rating := e.Rating.Int64
		r.Rating = &rating
	}
	if e.Recommendation.Valid {
		rec := e.Recommendation.Int64
		r.Recommendation = &rec
	}
	return r
}
