package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/jobreview/internal/interactive/internal/domain"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	views    []Event
	likes    []Event
	collects []Event
}

func (f *fakeService) IncrViewCnt(_ context.Context, biz string, bizId int64) error {
	f.views = append(f.views, Event{Biz: biz, BizId: bizId})
	return nil
}

func (f *fakeService) Like(_ context.Context, biz string, id int64, uid int64) error {
	f.likes = append(f.likes, Event{Biz: biz, BizId: id, Uid: uid})
	return nil
}

func (f *fakeService) Collect(_ context.Context, biz string, bizId, uid int64) error {
	f.collects = append(f.collects, Event{Biz: biz, BizId: bizId, Uid: uid})
	return nil
}

func (f *fakeService) Get(_ context.Context, biz string, id int64, _ int64) (domain.Interactive, error) {
	return domain.Interactive{Biz: biz, BizId: id}, nil
}

func (f *fakeService) GetByIds(_ context.Context, _ string, _ int64, _ []int64) ([]domain.Interactive, error) {
	return nil, nil
}

func TestConsumer_Consume(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		evt     Event
		after   func(t *testing.T, svc *fakeService)
		wantErr bool
	}{
		{
			name: "点赞事件",
			evt:  Event{Biz: "review", BizId: 1, Action: "like", Uid: 123},
			after: func(t *testing.T, svc *fakeService) {
				assert.Equal(t, []Event{{Biz: "review", BizId: 1, Uid: 123}}, svc.likes)
			},
		},
		{
			name: "收藏事件",
			evt:  Event{Biz: "topic", BizId: 2, Action: "collect", Uid: 124},
			after: func(t *testing.T, svc *fakeService) {
				assert.Equal(t, []Event{{Biz: "topic", BizId: 2, Uid: 124}}, svc.collects)
			},
		},
		{
			name: "浏览事件",
			evt:  Event{Biz: "review", BizId: 3, Action: "view"},
			after: func(t *testing.T, svc *fakeService) {
				assert.Equal(t, []Event{{Biz: "review", BizId: 3}}, svc.views)
			},
		},
		{
			name:    "未知事件",
			evt:     Event{Biz: "review", BizId: 4, Action: "unknown"},
			after:   func(t *testing.T, svc *fakeService) {},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			testmq := memory.NewMQ()
			err := testmq.CreateTopic(context.Background(), "interactive_events", 1)
			require.NoError(t, err)
			producer, err := testmq.Producer("interactive_events")
			require.NoError(t, err)
			svc := &fakeService{}
			consumer, err := NewSyncConsumer(svc, testmq)
			require.NoError(t, err)
			defer consumer.Stop(context.Background())

			data, err := json.Marshal(tc.evt)
			require.NoError(t, err)
			_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			err = consumer.Consume(ctx)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			tc.after(t, svc)
		})
	}
}
