package service

import (
	"context"
	"time"

	"github.com/ecodeclub/jobreview/internal/pkg/sngenerator"
	"github.com/ecodeclub/jobreview/internal/review/internal/domain"
	"github.com/ecodeclub/jobreview/internal/review/internal/event"
	"github.com/ecodeclub/jobreview/internal/review/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrRecordNotFound   = repository.ErrRecordNotFound
	ErrDeleteNotAllowed = repository.ErrDeleteNotAllowed
)

// topListSize 对应原来的 top 10 榜单
const topListSize = 10

//go:generate mockgen -source=./review.go -package=reviewmocks -destination=../../mocks/review.mock.go ReviewService
type ReviewService interface {
	// Save 同一个作者对同一个职位重复提交是覆盖语义
	Save(ctx context.Context, r domain.Review) (int64, error)
	List(ctx context.Context, f repository.Filter, offset, limit int) ([]domain.Review, int64, error)
	// Detail 会异步发一个浏览计数事件
	Detail(ctx context.Context, id int64) (domain.Review, error)
	ListMine(ctx context.Context, uid int64, offset, limit int) ([]domain.Review, error)
	Delete(ctx context.Context, id, uid int64) error
	TopList(ctx context.Context) ([]domain.Review, error)
	// All 全量语料，推荐和 AI 反馈用
	All(ctx context.Context, limit int) ([]domain.Review, error)
	Filters(ctx context.Context) (repository.Filters, error)
}

type reviewService struct {
	repo           repository.ReviewRepository
	sngen          *sngenerator.SequenceNumberGenerator
	producer       event.SyncEventProducer
	intrProducer   event.InteractiveEventProducer
	logger         *elog.Component
	produceTimeout time.Duration
}

func NewReviewService(repo repository.ReviewRepository,
	intrProducer event.InteractiveEventProducer,
	producer event.SyncEventProducer) ReviewService {
	return &reviewService{
		repo:           repo,
		sngen:          sngenerator.NewSequenceNumberGenerator(),
		producer:       producer,
		intrProducer:   intrProducer,
		logger:         elog.DefaultLogger,
		produceTimeout: 3 * time.Second,
	}
}

func (s *reviewService) Save(ctx context.Context, r domain.Review) (int64, error) {
	sn, err := s.sngen.Generate(r.Uid)
	if err != nil {
		return 0, err
	}
	r.SN = sn
	id, err := s.repo.Save(ctx, r)
	if err != nil {
		return 0, err
	}
	r.Id = id
	go s.syncReview(r)
	return id, nil
}

func (s *reviewService) List(ctx context.Context, f repository.Filter, offset, limit int) ([]domain.Review, int64, error) {
	var (
		total   int64
		reviews []domain.Review
		eg      errgroup.Group
	)
	eg.Go(func() error {
		var err error
		reviews, err = s.repo.List(ctx, f, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx, f)
		return err
	})
	return reviews, total, eg.Wait()
}

func (s *reviewService) Detail(ctx context.Context, id int64) (domain.Review, error) {
	res, err := s.repo.FindById(ctx, id)
	if err == nil {
		go func() {
			newCtx, cancel := context.WithTimeout(context.Background(), s.produceTimeout)
			defer cancel()
			evt := event.NewViewCntEvent(id)
			if e := s.intrProducer.Produce(newCtx, evt); e != nil {
				s.logger.Error("发送点评浏览计数消息失败",
					elog.FieldErr(e),
					elog.Int64("rid", id))
			}
		}()
	}
	return res, err
}

func (s *reviewService) ListMine(ctx context.Context, uid int64, offset, limit int) ([]domain.Review, error) {
	return s.repo.ListByUid(ctx, uid, offset, limit)
}

func (s *reviewService) Delete(ctx context.Context, id, uid int64) error {
	return s.repo.Delete(ctx, id, uid)
}

func (s *reviewService) TopList(ctx context.Context) ([]domain.Review, error) {
	return s.repo.TopList(ctx, topListSize)
}

func (s *reviewService) All(ctx context.Context, limit int) ([]domain.Review, error) {
	return s.repo.All(ctx, limit)
}

func (s *reviewService) Filters(ctx context.Context) (repository.Filters, error) {
	return s.repo.Filters(ctx)
}

func (s *reviewService) syncReview(r domain.Review) {
	ctx, cancel := context.WithTimeout(context.Background(), s.produceTimeout)
	defer cancel()
	evt := event.NewReviewEvent(r)
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送点评内容到搜索失败",
			elog.FieldErr(err),
			elog.Any("event", evt))
	}
}
