// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/jobreview/internal/interactive/internal/domain"
	"github.com/ecodeclub/jobreview/internal/interactive/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

const (
	// ReviewBiz 点评
	ReviewBiz = "review"
	// TopicBiz 论坛帖子
	TopicBiz = "topic"
	// CommentBiz 帖子下的评论
	CommentBiz = "comment"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type InteractiveRepository interface {
	IncrViewCnt(ctx context.Context, biz string, bizId int64) error
	LikeToggle(ctx context.Context, biz string, id int64, uid int64) error
	CollectToggle(ctx context.Context, biz string, id int64, uid int64) error
	Get(ctx context.Context, biz string, id int64) (domain.Interactive, error)
	GetByIds(ctx context.Context, biz string, uid int64, ids []int64) ([]domain.Interactive, error)
	Liked(ctx context.Context, biz string, id int64, uid int64) (bool, error)
	Collected(ctx context.Context, biz string, id int64, uid int64) (bool, error)
}

type interactiveRepository struct {
	interactiveDao dao.InteractiveDAO
}

func NewInteractiveRepository(interactiveDao dao.InteractiveDAO) InteractiveRepository {
	return &interactiveRepository{
		interactiveDao: interactiveDao,
	}
}

func (i *interactiveRepository) IncrViewCnt(ctx context.Context, biz string, bizId int64) error {
	return i.interactiveDao.IncrViewCnt(ctx, biz, bizId)
}

func (i *interactiveRepository) LikeToggle(ctx context.Context, biz string, id int64, uid int64) error {
	return i.interactiveDao.LikeToggle(ctx, biz, id, uid)
}

func (i *interactiveRepository) CollectToggle(ctx context.Context, biz string, id int64, uid int64) error {
	return i.interactiveDao.CollectToggle(ctx, biz, id, uid)
}

func (i *interactiveRepository) Liked(ctx context.Context, biz string, id int64, uid int64) (bool, error) {
	_, err := i.interactiveDao.GetLikeInfo(ctx, biz, id, uid)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, dao.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (i *interactiveRepository) Collected(ctx context.Context, biz string, id int64, uid int64) (bool, error) {
	_, err := i.interactiveDao.GetCollectInfo(ctx, biz, id, uid)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, dao.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (i *interactiveRepository) Get(ctx context.Context, biz string, id int64) (domain.Interactive, error) {
	intr, err := i.interactiveDao.Get(ctx, biz, id)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return domain.Interactive{}, ErrRecordNotFound
		}
		return domain.Interactive{}, err
	}
	return i.toDomain(intr), nil
}

func (i *interactiveRepository) GetByIds(ctx context.Context, biz string, uid int64, ids []int64) ([]domain.Interactive, error) {
	var (
		intrs        []dao.Interactive
		likedMap     = map[int64]struct{}{}
		collectedMap = map[int64]struct{}{}
		eg           errgroup.Group
	)
	eg.Go(func() error {
		var eerr error
		intrs, eerr = i.interactiveDao.GetByIds(ctx, biz, ids)
		return eerr
	})

	eg.Go(func() error {
		likeds, eerr := i.interactiveDao.GetUserLikes(ctx, uid, biz, ids)
		if eerr != nil {
			return eerr
		}
		for _, liked := range likeds {
			likedMap[liked.BizId] = struct{}{}
		}
		return nil
	})

	eg.Go(func() error {
		collecteds, eerr := i.interactiveDao.GetUserCollects(ctx, uid, biz, ids)
		if eerr != nil {
			return eerr
		}
		for _, collected := range collecteds {
			collectedMap[collected.BizId] = struct{}{}
		}
		return nil
	})

	err := eg.Wait()
	if err != nil {
		return nil, err
	}
	list := make([]domain.Interactive, 0, len(intrs))
	for _, intr := range intrs {
		domainIntr := i.toDomain(intr)
		_, domainIntr.Collected = collectedMap[domainIntr.BizId]
		_, domainIntr.Liked = likedMap[domainIntr.BizId]
		list = append(list, domainIntr)
	}
	return list, nil
}

func (i *interactiveRepository) toDomain(ie dao.Interactive) domain.Interactive {
	return domain.Interactive{
		Biz:        ie.Biz,
		BizId:      ie.BizId,
		LikeCnt:    ie.LikeCnt,
		CollectCnt: ie.CollectCnt,
		ViewCnt:    ie.ViewCnt,
	}
}
