package service

import (
	"context"
	"math"

	"github.com/ecodeclub/jobreview/internal/forum/internal/domain"
	"github.com/ecodeclub/jobreview/internal/forum/internal/repository"
	"github.com/ecodeclub/jobreview/internal/pkg/snowflake"
	"github.com/ecodeclub/jobreview/internal/user"
	"golang.org/x/sync/errgroup"
)

// TopicBiz 评论目前只挂在帖子下面
const TopicBiz = "topic"

var (
	ErrRecordNotFound   = repository.ErrRecordNotFound
	ErrInvalidParentID  = repository.ErrInvalidParentID
	ErrDeleteNotAllowed = repository.ErrDeleteNotAllowed
)

type ForumService interface {
	CreateTopic(ctx context.Context, t domain.Topic) (int64, error)
	ListTopics(ctx context.Context, offset, limit int) ([]domain.Topic, int64, error)
	TopicDetail(ctx context.Context, id int64) (domain.Topic, error)
	TotalTopics(ctx context.Context) (int64, error)

	CreateComment(ctx context.Context, comment domain.Comment) (int64, error)
	// ListComments 根评论翻页，minID 传 0 表示从最新的开始
	ListComments(ctx context.Context, topicID, minID int64, limit int) ([]domain.Comment, int64, error)
	// Replies 根评论下的所有回复，maxID 翻页
	Replies(ctx context.Context, ancestorID, maxID int64, limit int) ([]domain.Comment, int64, error)
	DeleteComment(ctx context.Context, id, uid int64) error
}

type forumService struct {
	topicRepo   repository.TopicRepository
	commentRepo repository.CommentRepository
	userSvc     user.UserService
	idgen       snowflake.Generator
	// 根评论列表页每条带几条回复
	maxSubCnt int
}

func NewForumService(topicRepo repository.TopicRepository,
	commentRepo repository.CommentRepository,
	userSvc user.UserService,
	idgen snowflake.Generator) ForumService {
	return &forumService{
		topicRepo:   topicRepo,
		commentRepo: commentRepo,
		userSvc:     userSvc,
		idgen:       idgen,
		maxSubCnt:   3,
	}
}

func (s *forumService) CreateTopic(ctx context.Context, t domain.Topic) (int64, error) {
	t.Id = s.idgen.NextID()
	return s.topicRepo.Create(ctx, t)
}

func (s *forumService) ListTopics(ctx context.Context, offset, limit int) ([]domain.Topic, int64, error) {
	var (
		eg     errgroup.Group
		topics []domain.Topic
		total  int64
	)
	eg.Go(func() error {
		var err error
		topics, err = s.topicRepo.List(ctx, offset, limit)
		if err != nil {
			return err
		}
		return s.setTopicAuthors(ctx, topics)
	})
	eg.Go(func() error {
		var err error
		total, err = s.topicRepo.Total(ctx)
		return err
	})
	return topics, total, eg.Wait()
}

func (s *forumService) TopicDetail(ctx context.Context, id int64) (domain.Topic, error) {
	t, err := s.topicRepo.FindById(ctx, id)
	if err != nil {
		return domain.Topic{}, err
	}
	topics := []domain.Topic{t}
	if err = s.setTopicAuthors(ctx, topics); err != nil {
		return domain.Topic{}, err
	}
	return topics[0], nil
}

func (s *forumService) TotalTopics(ctx context.Context) (int64, error) {
	return s.topicRepo.Total(ctx)
}

func (s *forumService) CreateComment(ctx context.Context, comment domain.Comment) (int64, error) {
	comment.ID = s.idgen.NextID()
	comment.Biz = TopicBiz
	return s.commentRepo.Create(ctx, comment)
}

func (s *forumService) ListComments(ctx context.Context, topicID, minID int64, limit int) ([]domain.Comment, int64, error) {
	var (
		eg       errgroup.Group
		comments []domain.Comment
		total    int64
	)
	if minID <= 0 {
		minID = math.MaxInt64
	}
	eg.Go(func() error {
		var err error
		comments, err = s.commentRepo.FindAncestors(ctx, TopicBiz, topicID, minID, limit, s.maxSubCnt)
		if err != nil {
			return err
		}
		return s.setCommentUsers(ctx, comments)
	})
	eg.Go(func() error {
		var err error
		total, err = s.commentRepo.CountAncestors(ctx, TopicBiz, topicID)
		return err
	})
	return comments, total, eg.Wait()
}

func (s *forumService) Replies(ctx context.Context, ancestorID, maxID int64, limit int) ([]domain.Comment, int64, error) {
	var (
		eg      errgroup.Group
		replies []domain.Comment
		total   int64
	)
	eg.Go(func() error {
		var err error
		replies, err = s.commentRepo.FindDescendants(ctx, ancestorID, maxID, limit)
		if err != nil {
			return err
		}
		return s.setCommentUsers(ctx, replies)
	})
	eg.Go(func() error {
		var err error
		total, err = s.commentRepo.CountDescendants(ctx, ancestorID)
		return err
	})
	return replies, total, eg.Wait()
}

func (s *forumService) DeleteComment(ctx context.Context, id, uid int64) error {
	return s.commentRepo.Delete(ctx, id, uid)
}

func (s *forumService) setTopicAuthors(ctx context.Context, topics []domain.Topic) error {
	if len(topics) == 0 {
		return nil
	}
	uids := make([]int64, 0, len(topics))
	for i := range topics {
		uids = append(uids, topics[i].Author.ID)
	}
	userMap, err := s.userMap(ctx, uids)
	if err != nil {
		return err
	}
	for i := range topics {
		if u, ok := userMap[topics[i].Author.ID]; ok {
			topics[i].Author = u
		}
	}
	return nil
}

func (s *forumService) setCommentUsers(ctx context.Context, comments []domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}
	uids := make([]int64, 0, len(comments)*2)
	for i := range comments {
		uids = append(uids, comments[i].User.ID)
		for j := range comments[i].Replies {
			uids = append(uids, comments[i].Replies[j].User.ID)
		}
	}
	userMap, err := s.userMap(ctx, uids)
	if err != nil {
		return err
	}
	for i := range comments {
		if u, ok := userMap[comments[i].User.ID]; ok {
			comments[i].User = u
		}
		for j := range comments[i].Replies {
			if u, ok := userMap[comments[i].Replies[j].User.ID]; ok {
				comments[i].Replies[j] = withUser(comments[i].Replies[j], u)
			}
		}
	}
	return nil
}

func withUser(c domain.Comment, u domain.User) domain.Comment {
	c.User = u
	return c
}

func (s *forumService) userMap(ctx context.Context, uids []int64) (map[int64]domain.User, error) {
	profiles, err := s.userSvc.FindByIds(ctx, uids)
	if err != nil {
		return nil, err
	}
	userMap := make(map[int64]domain.User, len(profiles))
	for _, p := range profiles {
		userMap[p.Id] = domain.User{
			ID:       p.Id,
			Nickname: p.Nickname,
			Avatar:   p.Avatar,
		}
	}
	return userMap, nil
}
