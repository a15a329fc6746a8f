package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/jobreview/internal/interactive/internal/domain"
	"github.com/ecodeclub/jobreview/internal/interactive/internal/repository"
	"golang.org/x/sync/errgroup"
)

type InteractiveService interface {
	IncrViewCnt(ctx context.Context, biz string, bizId int64) error
	// Like 点赞或取消点赞，toggle 语义
	Like(ctx context.Context, biz string, id int64, uid int64) error
	Collect(ctx context.Context, biz string, bizId, uid int64) error
	Get(ctx context.Context, biz string, id int64, uid int64) (domain.Interactive, error)
	GetByIds(ctx context.Context, biz string, uid int64, ids []int64) ([]domain.Interactive, error)
}

type interactiveService struct {
	repo repository.InteractiveRepository
}

func NewService(repo repository.InteractiveRepository) InteractiveService {
	return &interactiveService{
		repo: repo,
	}
}

func (i *interactiveService) IncrViewCnt(ctx context.Context, biz string, bizId int64) error {
	return i.repo.IncrViewCnt(ctx, biz, bizId)
}

func (i *interactiveService) Like(ctx context.Context, biz string, id int64, uid int64) error {
	return i.repo.LikeToggle(ctx, biz, id, uid)
}

func (i *interactiveService) Collect(ctx context.Context, biz string, bizId, uid int64) error {
	return i.repo.CollectToggle(ctx, biz, bizId, uid)
}

func (i *interactiveService) Get(ctx context.Context, biz string, id int64, uid int64) (domain.Interactive, error) {
	intr, err := i.repo.Get(ctx, biz, id)
	if err != nil {
		if !errors.Is(err, repository.ErrRecordNotFound) {
			return domain.Interactive{}, err
		}
		// 还没有任何互动，各个计数都是 0
		intr = domain.Interactive{Biz: biz, BizId: id}
	}
	var eg errgroup.Group
	eg.Go(func() error {
		var er error
		intr.Liked, er = i.repo.Liked(ctx, biz, id, uid)
		return er
	})
	eg.Go(func() error {
		var er error
		intr.Collected, er = i.repo.Collected(ctx, biz, id, uid)
		return er
	})
	return intr, eg.Wait()
}

func (i *interactiveService) GetByIds(ctx context.Context, biz string, uid int64, ids []int64) ([]domain.Interactive, error) {
	return i.repo.GetByIds(ctx, biz, uid, ids)
}
