package repository

import (
	"context"
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobreview/internal/forum/internal/domain"
	"github.com/ecodeclub/jobreview/internal/forum/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidParentID  = dao.ErrInvalidParentID
	ErrDeleteNotAllowed = dao.ErrDeleteNotAllowed
)

type CommentRepository interface {
	Create(ctx context.Context, comment domain.Comment) (int64, error)
	// FindAncestors 根评论翻页，每条根评论带上最早的 maxSubCnt 条回复
	FindAncestors(ctx context.Context, biz string, bizID, minID int64, limit, maxSubCnt int) ([]domain.Comment, error)
	CountAncestors(ctx context.Context, biz string, bizID int64) (int64, error)
	FindDescendants(ctx context.Context, ancestorID, maxID int64, limit int) ([]domain.Comment, error)
	CountDescendants(ctx context.Context, ancestorID int64) (int64, error)
	Delete(ctx context.Context, id, uid int64) error
}

type commentRepository struct {
	dao dao.CommentDAO
}

func NewCommentRepository(d dao.CommentDAO) CommentRepository {
	return &commentRepository{dao: d}
}

func (r *commentRepository) Create(ctx context.Context, comment domain.Comment) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(comment))
}

func (r *commentRepository) FindAncestors(ctx context.Context, biz string, bizID, minID int64, limit, maxSubCnt int) ([]domain.Comment, error) {
	ancestors, err := r.dao.FindAncestors(ctx, biz, bizID, minID, limit)
	if err != nil {
		return nil, err
	}
	res := slice.Map(ancestors, func(idx int, src dao.Comment) domain.Comment {
		return r.toDomain(src)
	})
	if maxSubCnt <= 0 {
		return res, nil
	}
	// 并发装配每条根评论的前几条回复
	var eg errgroup.Group
	for i := range res {
		i := i
		eg.Go(func() error {
			children, cerr := r.dao.FindChildren(ctx, res[i].ID, maxSubCnt)
			if cerr != nil {
				return cerr
			}
			res[i].Replies = slice.Map(children, func(idx int, src dao.Comment) domain.Comment {
				return r.toDomain(src)
			})
			return nil
		})
	}
	return res, eg.Wait()
}

func (r *commentRepository) CountAncestors(ctx context.Context, biz string, bizID int64) (int64, error) {
	return r.dao.CountAncestors(ctx, biz, bizID)
}

func (r *commentRepository) FindDescendants(ctx context.Context, ancestorID, maxID int64, limit int) ([]domain.Comment, error) {
	comments, err := r.dao.FindDescendants(ctx, ancestorID, maxID, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(comments, func(idx int, src dao.Comment) domain.Comment {
		return r.toDomain(src)
	}), nil
}

func (r *commentRepository) CountDescendants(ctx context.Context, ancestorID int64) (int64, error) {
	return r.dao.CountDescendants(ctx, ancestorID)
}

func (r *commentRepository) Delete(ctx context.Context, id, uid int64) error {
	return r.dao.Delete(ctx, id, uid)
}

func (r *commentRepository) toEntity(comment domain.Comment) dao.Comment {
	e := dao.Comment{
		ID:      comment.ID,
		Uid:     comment.User.ID,
		Biz:     comment.Biz,
		BizID:   comment.BizID,
		Content: comment.Content,
	}
	if comment.ParentID != 0 {
		e.ParentID = sql.Null[int64]{V: comment.ParentID, Valid: true}
	}
	return e
}

func (r *commentRepository) toDomain(comment dao.Comment) domain.Comment {
	return domain.Comment{
		ID:       comment.ID,
		User:     domain.User{ID: comment.Uid},
		Biz:      comment.Biz,
		BizID:    comment.BizID,
		ParentID: comment.ParentID.V,
		Content:  comment.Content,
		Utime:    comment.Utime,
	}
}
