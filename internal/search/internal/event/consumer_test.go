package event

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type input struct {
	index string
	docID string
	data  string
}

type fakeSyncService struct {
	inputs []input
}

func (f *fakeSyncService) Input(_ context.Context, index, docID, data string) error {
	f.inputs = append(f.inputs, input{index: index, docID: docID, data: data})
	return nil
}

func TestSyncConsumer_Consume(t *testing.T) {
	t.Parallel()
	testmq := memory.NewMQ()
	err := testmq.CreateTopic(context.Background(), SyncTopic, 1)
	require.NoError(t, err)
	producer, err := testmq.Producer(SyncTopic)
	require.NoError(t, err)
	svc := &fakeSyncService{}
	consumer, err := NewSyncConsumer(svc, testmq)
	require.NoError(t, err)
	defer consumer.Stop(context.Background())

	data, err := json.Marshal(SyncEvent{
		Biz:   "review",
		BizID: 5,
		Data:  `{"id":5,"title":"后端开发"}`,
	})
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))
	// biz 映射到对应的索引，文档原样灌进去
	assert.Equal(t, []input{{
		index: "review_index",
		docID: "5",
		data:  `{"id":5,"title":"后端开发"}`,
	}}, svc.inputs)
}
