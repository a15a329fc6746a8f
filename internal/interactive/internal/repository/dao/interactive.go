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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type InteractiveDAO interface {
	IncrViewCnt(ctx context.Context, biz string, bizId int64) error
	// LikeToggle 已点赞则取消，未点赞则点上
	LikeToggle(ctx context.Context, biz string, id int64, uid int64) error
	CollectToggle(ctx context.Context, biz string, id int64, uid int64) error
	GetLikeInfo(ctx context.Context, biz string, id int64, uid int64) (UserLikeBiz, error)
	GetCollectInfo(ctx context.Context, biz string, id int64, uid int64) (UserCollectionBiz, error)
	Get(ctx context.Context, biz string, id int64) (Interactive, error)
	GetByIds(ctx context.Context, biz string, ids []int64) ([]Interactive, error)
	GetUserLikes(ctx context.Context, uid int64, biz string, ids []int64) ([]UserLikeBiz, error)
	GetUserCollects(ctx context.Context, uid int64, biz string, ids []int64) ([]UserCollectionBiz, error)
}

type GORMInteractiveDAO struct {
	db *egorm.Component
}

func NewInteractiveDAO(db *egorm.Component) *GORMInteractiveDAO {
	return &GORMInteractiveDAO{
		db: db,
	}
}

func (g *GORMInteractiveDAO) IncrViewCnt(ctx context.Context, biz string, bizId int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"view_cnt": gorm.Expr("`view_cnt` + 1"),
			"utime":    now,
		}),
	}).Create(&Interactive{
		Biz:     biz,
		BizId:   bizId,
		ViewCnt: 1,
		Ctime:   now,
		Utime:   now,
	}).Error
}

func (g *GORMInteractiveDAO) LikeToggle(ctx context.Context, biz string, id int64, uid int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("biz = ? AND biz_id = ? AND uid = ?", biz, id, uid).
			First(&UserLikeBiz{}).Error
		switch {
		case err == nil:
			return g.deleteLikeInfo(tx, biz, id, uid)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return g.insertLikeInfo(tx, biz, id, uid)
		default:
			return err
		}
	})
}

func (g *GORMInteractiveDAO) insertLikeInfo(tx *gorm.DB, biz string, id int64, uid int64) error {
	now := time.Now().UnixMilli()
	err := tx.Create(&UserLikeBiz{
		Uid:   uid,
		Biz:   biz,
		BizId: id,
		Utime: now,
		Ctime: now,
	}).Error
	if err != nil {
		return err
	}
	return tx.Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"like_cnt": gorm.Expr("`like_cnt` + 1"),
			"utime":    now,
		}),
	}).Create(&Interactive{
		Biz:     biz,
		BizId:   id,
		LikeCnt: 1,
		Ctime:   now,
		Utime:   now,
	}).Error
}

func (g *GORMInteractiveDAO) deleteLikeInfo(tx *gorm.DB, biz string, id int64, uid int64) error {
	now := time.Now().UnixMilli()
	res := tx.Model(&UserLikeBiz{}).
		Where("uid=? AND biz_id = ? AND biz=?", uid, id, biz).
		Delete(&UserLikeBiz{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return nil
	}
	return tx.Model(&Interactive{}).
		Where("biz =? AND biz_id=?", biz, id).
		Updates(map[string]any{
			"like_cnt": gorm.Expr("`like_cnt` - 1"),
			"utime":    now,
		}).Error
}

func (g *GORMInteractiveDAO) CollectToggle(ctx context.Context, biz string, id int64, uid int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("biz = ? AND biz_id = ? AND uid = ?", biz, id, uid).
			First(&UserCollectionBiz{}).Error
		switch {
		case err == nil:
			return g.deleteCollectionInfo(tx, biz, id, uid)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return g.insertCollectionInfo(tx, biz, id, uid)
		default:
			return err
		}
	})
}

func (g *GORMInteractiveDAO) insertCollectionInfo(tx *gorm.DB, biz string, id int64, uid int64) error {
	now := time.Now().UnixMilli()
	err := tx.Create(&UserCollectionBiz{
		Uid:   uid,
		Biz:   biz,
		BizId: id,
		Ctime: now,
		Utime: now,
	}).Error
	if err != nil {
		return err
	}
	return tx.Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"collect_cnt": gorm.Expr("`collect_cnt` + 1"),
			"utime":       now,
		}),
	}).Create(&Interactive{
		Biz:        biz,
		BizId:      id,
		CollectCnt: 1,
		Ctime:      now,
		Utime:      now,
	}).Error
}

func (g *GORMInteractiveDAO) deleteCollectionInfo(tx *gorm.DB, biz string, id int64, uid int64) error {
	now := time.Now().UnixMilli()
	res := tx.Model(&UserCollectionBiz{}).
		Where("uid=? AND biz_id = ? AND biz=?", uid, id, biz).
		Delete(&UserCollectionBiz{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return nil
	}
	return tx.Model(&Interactive{}).
		Where("biz =? AND biz_id=?", biz, id).
		Updates(map[string]any{
			"collect_cnt": gorm.Expr("`collect_cnt` - 1"),
			"utime":       now,
		}).Error
}

func (g *GORMInteractiveDAO) GetLikeInfo(ctx context.Context, biz string, id int64, uid int64) (UserLikeBiz, error) {
	var res UserLikeBiz
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id = ? AND uid = ?", biz, id, uid).
		First(&res).Error
	return res, err
}

func (g *GORMInteractiveDAO) GetCollectInfo(ctx context.Context, biz string, id int64, uid int64) (UserCollectionBiz, error) {
	var res UserCollectionBiz
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id = ? AND uid = ?", biz, id, uid).
		First(&res).Error
	return res, err
}

func (g *GORMInteractiveDAO) Get(ctx context.Context, biz string, id int64) (Interactive, error) {
	var res Interactive
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id = ?", biz, id).
		First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Interactive{}, ErrRecordNotFound
	}
	return res, err
}

func (g *GORMInteractiveDAO) GetByIds(ctx context.Context, biz string, ids []int64) ([]Interactive, error) {
	var res []Interactive
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id IN ?", biz, ids).
		Order("biz_id desc").
		Find(&res).Error
	return res, err
}

func (g *GORMInteractiveDAO) GetUserLikes(ctx context.Context, uid int64, biz string, ids []int64) ([]UserLikeBiz, error) {
	var likes []UserLikeBiz
	err := g.db.WithContext(ctx).
		Model(&UserLikeBiz{}).
		Where("biz = ? AND biz_id in ? and uid = ?", biz, ids, uid).Scan(&likes).Error
	return likes, err
}

func (g *GORMInteractiveDAO) GetUserCollects(ctx context.Context, uid int64, biz string, ids []int64) ([]UserCollectionBiz, error) {
	var collects []UserCollectionBiz
	err := g.db.WithContext(ctx).
		Model(&UserCollectionBiz{}).
		Where("biz = ? AND biz_id in ? and uid = ?", biz, ids, uid).Scan(&collects).Error
	return collects, err
}
