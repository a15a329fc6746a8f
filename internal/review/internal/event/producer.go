package event

import (
	"github.com/ecodeclub/jobreview/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const SyncTopic = "review_sync_events"

type SyncEventProducer mqx.Producer[ReviewEvent]

func NewSyncEventProducer(q mq.MQ) (SyncEventProducer, error) {
	return mqx.NewGeneralProducer[ReviewEvent](q, SyncTopic)
}
