package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobreview/internal/forum/internal/domain"
	"github.com/ecodeclub/jobreview/internal/forum/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type TopicRepository interface {
	Create(ctx context.Context, t domain.Topic) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Topic, error)
	List(ctx context.Context, offset, limit int) ([]domain.Topic, error)
	Total(ctx context.Context) (int64, error)
}

type topicRepository struct {
	dao dao.TopicDAO
}

func NewTopicRepository(d dao.TopicDAO) TopicRepository {
	return &topicRepository{dao: d}
}

func (r *topicRepository) Create(ctx context.Context, t domain.Topic) (int64, error) {
	return r.dao.Create(ctx, dao.Topic{
		Id:      t.Id,
		Uid:     t.Author.ID,
		Title:   t.Title,
		Content: t.Content,
	})
}

func (r *topicRepository) FindById(ctx context.Context, id int64) (domain.Topic, error) {
	t, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Topic{}, err
	}
	return r.toDomain(t), nil
}

func (r *topicRepository) List(ctx context.Context, offset, limit int) ([]domain.Topic, error) {
	topics, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(topics, func(idx int, src dao.Topic) domain.Topic {
		return r.toDomain(src)
	}), nil
}

func (r *topicRepository) Total(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *topicRepository) toDomain(t dao.Topic) domain.Topic {
	return domain.Topic{
		Id:      t.Id,
		Author:  domain.User{ID: t.Uid},
		Title:   t.Title,
		Content: t.Content,
		Ctime:   t.Ctime,
		Utime:   t.Utime,
	}
}
