package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrInvalidParentID  = errors.New("父评论ID非法")
	ErrDeleteNotAllowed = errors.New("只能删除自己的评论")
)

// Comment 针对某一资源的评论。ID 由雪花算法生成
type Comment struct {
	ID  int64 `gorm:"primaryKey"`
	Uid int64 `gorm:"not null;index"`

	// 评论的对象
	Biz   string `gorm:"type:varchar(256);not null;index:idx_biz_biz_id,priority:1"`
	BizID int64  `gorm:"type:bigint;not null;index:idx_biz_biz_id,priority:2"`

	Content string `gorm:"type:text;not null"`

	// 这两个字段都可以为 NULL，NULL 代表它自身就是一个根评论
	AncestorID sql.Null[int64] `gorm:"type:bigint;index:idx_ancestor_id"`
	ParentID   sql.Null[int64] `gorm:"type:bigint;index:idx_parent_id"`

	Utime int64
	Ctime int64
}

func (Comment) TableName() string {
	return "comments"
}

type CommentDAO interface {
	// Create 创建根评论或者回复，回复会顺着父评论找到始祖评论
	Create(ctx context.Context, comment Comment) (int64, error)
	// FindAncestors 查找某一业务下的根评论，按时间倒序，minID 用来翻页
	FindAncestors(ctx context.Context, biz string, bizID, minID int64, limit int) ([]Comment, error)
	// FindChildren 查找直接子评论
	FindChildren(ctx context.Context, parentID int64, limit int) ([]Comment, error)
	CountAncestors(ctx context.Context, biz string, bizID int64) (int64, error)
	// FindDescendants 查找根评论的所有后裔，按时间正序
	FindDescendants(ctx context.Context, ancestorID, maxID int64, limit int) ([]Comment, error)
	CountDescendants(ctx context.Context, ancestorID int64) (int64, error)
	FindByID(ctx context.Context, id int64) (Comment, error)
	// Delete 删除评论及其后裔，只允许删自己的
	Delete(ctx context.Context, id, uid int64) error
}

type commentDAO struct {
	db *egorm.Component
}

func NewCommentGORMDAO(db *egorm.Component) CommentDAO {
	return &commentDAO{db: db}
}

func (g *commentDAO) Create(ctx context.Context, c Comment) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ancestorID int64
		if c.ParentID.Valid {
			var parent Comment
			if err := tx.First(&parent, "id = ?", c.ParentID.V).Error; err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidParentID, err)
			}
			// 父评论是根评论，始祖就是父评论，否则沿用父评论的始祖
			if !parent.ParentID.Valid {
				ancestorID = parent.ID
			} else {
				ancestorID = parent.AncestorID.V
			}
		}
		c.AncestorID = sql.Null[int64]{V: ancestorID, Valid: ancestorID != 0}
		return tx.Create(&c).Error
	})
	return c.ID, err
}

func (g *commentDAO) FindAncestors(ctx context.Context, biz string, bizID, minID int64, limit int) ([]Comment, error) {
	var res []Comment
	err := g.db.WithContext(ctx).
		Where("id < ? AND biz = ? AND biz_id = ?", minID, biz, bizID).
		Where("ancestor_id IS NULL AND parent_id IS NULL").
		Order("id DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *commentDAO) FindChildren(ctx context.Context, parentID int64, limit int) ([]Comment, error) {
	var res []Comment
	err := g.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *commentDAO) CountAncestors(ctx context.Context, biz string, bizID int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Comment{}).
		Where("biz = ? AND biz_id = ?", biz, bizID).
		Where("ancestor_id IS NULL AND parent_id IS NULL").
		Count(&count).Error
	return count, err
}

func (g *commentDAO) FindDescendants(ctx context.Context, ancestorID, maxID int64, limit int) ([]Comment, error) {
	var res []Comment
	err := g.db.WithContext(ctx).
		Where("id > ? AND ancestor_id = ?", maxID, ancestorID).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *commentDAO) CountDescendants(ctx context.Context, ancestorID int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Comment{}).
		Where("ancestor_id = ?", ancestorID).
		Count(&count).Error
	return count, err
}

func (g *commentDAO) FindByID(ctx context.Context, id int64) (Comment, error) {
	var c Comment
	err := g.db.WithContext(ctx).First(&c, id).Error
	return c, err
}

func (g *commentDAO) Delete(ctx context.Context, id, uid int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND uid = ?", id, uid).Delete(&Comment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return ErrDeleteNotAllowed
		}
		// 后裔评论一并删除
		return tx.Where("ancestor_id = ?", id).Delete(&Comment{}).Error
	})
}
