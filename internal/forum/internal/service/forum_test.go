package service

import (
	"context"
	"math"
	"testing"

	"github.com/ecodeclub/jobreview/internal/forum/internal/domain"
	"github.com/ecodeclub/jobreview/internal/forum/internal/repository"
	"github.com/ecodeclub/jobreview/internal/user"
	usermocks "github.com/ecodeclub/jobreview/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeIDGen struct {
	next int64
}

func (f *fakeIDGen) NextID() int64 {
	f.next++
	return f.next
}

type fakeTopicRepo struct {
	repository.TopicRepository
	topics []domain.Topic
}

func (f *fakeTopicRepo) Create(_ context.Context, t domain.Topic) (int64, error) {
	f.topics = append(f.topics, t)
	return t.Id, nil
}

func (f *fakeTopicRepo) FindById(_ context.Context, id int64) (domain.Topic, error) {
	for _, t := range f.topics {
		if t.Id == id {
			return t, nil
		}
	}
	return domain.Topic{}, ErrRecordNotFound
}

func (f *fakeTopicRepo) List(_ context.Context, offset, limit int) ([]domain.Topic, error) {
	if offset >= len(f.topics) {
		return nil, nil
	}
	res := f.topics[offset:]
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (f *fakeTopicRepo) Total(_ context.Context) (int64, error) {
	return int64(len(f.topics)), nil
}

type fakeCommentRepo struct {
	repository.CommentRepository
	created   []domain.Comment
	ancestors []domain.Comment
	// 记录翻页参数方便断言
	lastMinID int64
}

func (f *fakeCommentRepo) Create(_ context.Context, comment domain.Comment) (int64, error) {
	f.created = append(f.created, comment)
	return comment.ID, nil
}

func (f *fakeCommentRepo) FindAncestors(_ context.Context, _ string, _, minID int64,
	limit, _ int) ([]domain.Comment, error) {
	f.lastMinID = minID
	res := f.ancestors
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (f *fakeCommentRepo) CountAncestors(_ context.Context, _ string, _ int64) (int64, error) {
	return int64(len(f.ancestors)), nil
}

func TestForumService_CreateTopic(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	userSvc := usermocks.NewMockUserService(ctrl)
	topicRepo := &fakeTopicRepo{}
	svc := NewForumService(topicRepo, &fakeCommentRepo{}, userSvc, &fakeIDGen{})

	id, err := svc.CreateTopic(context.Background(), domain.Topic{
		Author:  domain.User{ID: 123},
		Title:   "大家聊聊加班",
		Content: "最近面了几家公司",
	})
	require.NoError(t, err)
	// 主键由发号器生成，不靠数据库自增
	assert.Equal(t, int64(1), id)
	require.Len(t, topicRepo.topics, 1)
	assert.Equal(t, int64(1), topicRepo.topics[0].Id)
	assert.Equal(t, int64(123), topicRepo.topics[0].Author.ID)
}

func TestForumService_ListTopics(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	userSvc := usermocks.NewMockUserService(ctrl)
	userSvc.EXPECT().FindByIds(gomock.Any(), []int64{11, 22}).
		Return([]user.User{
			{Id: 11, Nickname: "小明", Avatar: "a.png"},
			{Id: 22, Nickname: "小红", Avatar: "b.png"},
		}, nil)
	topicRepo := &fakeTopicRepo{
		topics: []domain.Topic{
			{Id: 1, Author: domain.User{ID: 11}, Title: "第一帖"},
			{Id: 2, Author: domain.User{ID: 22}, Title: "第二帖"},
		},
	}
	svc := NewForumService(topicRepo, &fakeCommentRepo{}, userSvc, &fakeIDGen{})

	topics, total, err := svc.ListTopics(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, topics, 2)
	// 列表要补齐作者昵称和头像
	assert.Equal(t, domain.User{ID: 11, Nickname: "小明", Avatar: "a.png"}, topics[0].Author)
	assert.Equal(t, domain.User{ID: 22, Nickname: "小红", Avatar: "b.png"}, topics[1].Author)
}

func TestForumService_CreateComment(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	userSvc := usermocks.NewMockUserService(ctrl)
	commentRepo := &fakeCommentRepo{}
	svc := NewForumService(&fakeTopicRepo{}, commentRepo, userSvc, &fakeIDGen{})

	id, err := svc.CreateComment(context.Background(), domain.Comment{
		User:    domain.User{ID: 123},
		BizID:   7,
		Content: "说得对",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	require.Len(t, commentRepo.created, 1)
	assert.Equal(t, TopicBiz, commentRepo.created[0].Biz)
	assert.Equal(t, int64(7), commentRepo.created[0].BizID)
}

func TestForumService_ListComments(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	userSvc := usermocks.NewMockUserService(ctrl)
	userSvc.EXPECT().FindByIds(gomock.Any(), []int64{11, 22}).
		Return([]user.User{
			{Id: 11, Nickname: "小明"},
			{Id: 22, Nickname: "小红"},
		}, nil)
	commentRepo := &fakeCommentRepo{
		ancestors: []domain.Comment{
			{
				ID:   100,
				User: domain.User{ID: 11},
				Replies: []domain.Comment{
					{ID: 101, User: domain.User{ID: 22}},
				},
			},
		},
	}
	svc := NewForumService(&fakeTopicRepo{}, commentRepo, userSvc, &fakeIDGen{})

	comments, total, err := svc.ListComments(context.Background(), 7, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, comments, 1)
	// minID 传 0 表示从最新的开始往前翻
	assert.Equal(t, int64(math.MaxInt64), commentRepo.lastMinID)
	assert.Equal(t, "小明", comments[0].User.Nickname)
	require.Len(t, comments[0].Replies, 1)
	// 回复的用户信息也要补齐
	assert.Equal(t, "小红", comments[0].Replies[0].User.Nickname)
}
