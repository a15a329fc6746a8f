package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobreview/internal/review/internal/domain"
	"github.com/pkg/errors"
)

const (
	detailExpiration = 15 * time.Minute
	// 榜单有定时任务刷新，可以放久一点
	topListExpiration = 24 * time.Hour
)

var ErrReviewNotFound = errors.New("点评没找到")

type ReviewCache interface {
	SetReview(ctx context.Context, r domain.Review) error
	GetReview(ctx context.Context, id int64) (domain.Review, error)
	DelReview(ctx context.Context, id int64) error
	SetTopList(ctx context.Context, reviews []domain.Review) error
	GetTopList(ctx context.Context) ([]domain.Review, error)
}

type reviewCache struct {
	ec ecache.Cache
}

func NewReviewCache(ec ecache.Cache) ReviewCache {
	return &reviewCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "review:",
		},
	}
}

func (c *reviewCache) SetReview(ctx context.Context, r domain.Review) error {
	data, err := json.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "序列化点评失败")
	}
	return c.ec.Set(ctx, c.reviewKey(r.Id), string(data), detailExpiration)
}

func (c *reviewCache) GetReview(ctx context.Context, id int64) (domain.Review, error) {
	val := c.ec.Get(ctx, c.reviewKey(id))
	if val.KeyNotFound() {
		return domain.Review{}, ErrReviewNotFound
	}
	if val.Err != nil {
		return domain.Review{}, val.Err
	}
	var res domain.Review
	err := json.Unmarshal([]byte(val.Val.(string)), &res)
	return res, errors.Wrap(err, "反序列化点评失败")
}

func (c *reviewCache) DelReview(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.reviewKey(id))
	return err
}

func (c *reviewCache) SetTopList(ctx context.Context, reviews []domain.Review) error {
	data, err := json.Marshal(reviews)
	if err != nil {
		return errors.Wrap(err, "序列化榜单失败")
	}
	return c.ec.Set(ctx, c.topListKey(), string(data), topListExpiration)
}

func (c *reviewCache) GetTopList(ctx context.Context) ([]domain.Review, error) {
	val := c.ec.Get(ctx, c.topListKey())
	if val.KeyNotFound() {
		return nil, ErrReviewNotFound
	}
	if val.Err != nil {
		return nil, val.Err
	}
	var res []domain.Review
	err := json.Unmarshal([]byte(val.Val.(string)), &res)
	return res, errors.Wrap(err, "反序列化榜单失败")
}

func (c *reviewCache) reviewKey(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}

func (c *reviewCache) topListKey() string {
	return "top"
}
