package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobreview/internal/review"
	"github.com/pkg/errors"
)

// 推荐结果算一次要扫全量语料，短缓存一下，新点评最多延迟十分钟生效
const listExpiration = 10 * time.Minute

var ErrListNotFound = errors.New("推荐结果没找到")

type RecommendationCache interface {
	GetList(ctx context.Context, uid int64, topN int) ([]review.Review, error)
	SetList(ctx context.Context, uid int64, topN int, list []review.Review) error
}

type recommendationCache struct {
	ec ecache.Cache
}

func NewRecommendationCache(ec ecache.Cache) RecommendationCache {
	return &recommendationCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "recommendation:",
		},
	}
}

func (c *recommendationCache) GetList(ctx context.Context, uid int64, topN int) ([]review.Review, error) {
	val := c.ec.Get(ctx, c.listKey(uid, topN))
	if val.KeyNotFound() {
		return nil, ErrListNotFound
	}
	if val.Err != nil {
		return nil, val.Err
	}
	var res []review.Review
	err := json.Unmarshal([]byte(val.Val.(string)), &res)
	return res, errors.Wrap(err, "反序列化推荐结果失败")
}

func (c *recommendationCache) SetList(ctx context.Context, uid int64, topN int, list []review.Review) error {
	data, err := json.Marshal(list)
	if err != nil {
		return errors.Wrap(err, "序列化推荐结果失败")
	}
	return c.ec.Set(ctx, c.listKey(uid, topN), string(data), listExpiration)
}

func (c *recommendationCache) listKey(uid int64, topN int) string {
	return fmt.Sprintf("list:%d:%d", uid, topN)
}
