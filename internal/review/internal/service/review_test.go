package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/jobreview/internal/review/internal/domain"
	"github.com/ecodeclub/jobreview/internal/review/internal/event"
	"github.com/ecodeclub/jobreview/internal/review/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	repository.ReviewRepository
	saved   []domain.Review
	byId    map[int64]domain.Review
	deleted [][2]int64
}

func (f *fakeRepo) Save(_ context.Context, r domain.Review) (int64, error) {
	f.saved = append(f.saved, r)
	return int64(len(f.saved)), nil
}

func (f *fakeRepo) FindById(_ context.Context, id int64) (domain.Review, error) {
	r, ok := f.byId[id]
	if !ok {
		return domain.Review{}, ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeRepo) List(_ context.Context, _ repository.Filter, offset, limit int) ([]domain.Review, error) {
	res := make([]domain.Review, 0, limit)
	for _, r := range f.saved {
		res = append(res, r)
	}
	if offset >= len(res) {
		return nil, nil
	}
	res = res[offset:]
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (f *fakeRepo) Total(_ context.Context, _ repository.Filter) (int64, error) {
	return int64(len(f.saved)), nil
}

func (f *fakeRepo) Delete(_ context.Context, id, uid int64) error {
	f.deleted = append(f.deleted, [2]int64{id, uid})
	return nil
}

type fakeSyncProducer struct {
	mu   sync.Mutex
	once sync.Once
	evts []event.ReviewEvent
	done chan struct{}
}

func (f *fakeSyncProducer) Produce(_ context.Context, evt event.ReviewEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.evts = append(f.evts, evt)
	f.once.Do(func() { close(f.done) })
	return nil
}

type fakeIntrProducer struct {
	mu   sync.Mutex
	once sync.Once
	evts []event.InteractiveEvent
	done chan struct{}
}

func (f *fakeIntrProducer) Produce(_ context.Context, evt event.InteractiveEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.evts = append(f.evts, evt)
	f.once.Do(func() { close(f.done) })
	return nil
}

func TestReviewService_Save(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	syncProducer := &fakeSyncProducer{done: make(chan struct{})}
	svc := NewReviewService(repo, &fakeIntrProducer{done: make(chan struct{})}, syncProducer)

	rating := int64(4)
	rec := int64(8)
	id, err := svc.Save(context.Background(), domain.Review{
		Uid:            123,
		Title:          "后端开发",
		Company:        "Acme",
		Locations:      []string{"上海"},
		Rating:         &rating,
		Recommendation: &rec,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	require.Len(t, repo.saved, 1)
	// 保存之前就生成好了序列号
	assert.NotEmpty(t, repo.saved[0].SN)

	// 保存成功之后异步发搜索同步事件
	select {
	case <-syncProducer.done:
	case <-time.After(3 * time.Second):
		t.Fatal("没有收到搜索同步事件")
	}
	syncProducer.mu.Lock()
	defer syncProducer.mu.Unlock()
	require.Len(t, syncProducer.evts, 1)
	assert.Equal(t, "review", syncProducer.evts[0].Biz)
	assert.Equal(t, id, syncProducer.evts[0].BizID)
}

func TestReviewService_Detail(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{
		byId: map[int64]domain.Review{
			5: {Id: 5, Title: "测试开发", Company: "Acme"},
		},
	}
	intrProducer := &fakeIntrProducer{done: make(chan struct{})}
	svc := NewReviewService(repo, intrProducer, &fakeSyncProducer{done: make(chan struct{})})

	r, err := svc.Detail(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "测试开发", r.Title)

	// 详情页要发浏览计数事件
	select {
	case <-intrProducer.done:
	case <-time.After(3 * time.Second):
		t.Fatal("没有收到浏览计数事件")
	}
	intrProducer.mu.Lock()
	defer intrProducer.mu.Unlock()
	require.Len(t, intrProducer.evts, 1)
	assert.Equal(t, event.InteractiveEvent{
		Biz:    "review",
		BizId:  5,
		Action: "view",
	}, intrProducer.evts[0])
}

func TestReviewService_Detail_notFound(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{byId: map[int64]domain.Review{}}
	intrProducer := &fakeIntrProducer{done: make(chan struct{})}
	svc := NewReviewService(repo, intrProducer, &fakeSyncProducer{done: make(chan struct{})})
	_, err := svc.Detail(context.Background(), 404)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	// 没查到就不应该发浏览事件
	select {
	case <-intrProducer.done:
		t.Fatal("不该收到浏览计数事件")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestReviewService_List(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc := NewReviewService(repo,
		&fakeIntrProducer{done: make(chan struct{})},
		&fakeSyncProducer{done: make(chan struct{})})
	for i := 0; i < 5; i++ {
		_, err := svc.Save(context.Background(), domain.Review{
			Uid:     int64(i + 1),
			Title:   "职位",
			Company: "Acme",
		})
		require.NoError(t, err)
	}
	reviews, total, err := svc.List(context.Background(), repository.Filter{}, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, reviews, 3)
}
