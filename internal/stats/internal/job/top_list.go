package job

import (
	"context"

	"github.com/ecodeclub/jobreview/internal/review"
)

// TopListWarmJob 榜单缓存 24 小时过期，夜里跑一把，
// 把新一天的榜单提前灌回缓存
type TopListWarmJob struct {
	reviewSvc review.Svc
}

func NewTopListWarmJob(reviewSvc review.Svc) *TopListWarmJob {
	return &TopListWarmJob{reviewSvc: reviewSvc}
}

func (j *TopListWarmJob) Name() string {
	return "review_top_list_warm"
}

func (j *TopListWarmJob) Run(ctx context.Context) error {
	_, err := j.reviewSvc.TopList(ctx)
	return err
}
