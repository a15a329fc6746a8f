package event

import (
	"github.com/ecodeclub/jobreview/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const intrTopic = "interactive_events"

type InteractiveEvent struct {
	Biz    string `json:"biz,omitempty"`
	BizId  int64  `json:"biz_id,omitempty"`
	Action string `json:"action,omitempty"`
	Uid    int64  `json:"uid,omitempty"`
}

func NewViewCntEvent(id int64) InteractiveEvent {
	return InteractiveEvent{
		Biz:    "review",
		BizId:  id,
		Action: "view",
	}
}

type InteractiveEventProducer mqx.Producer[InteractiveEvent]

func NewInteractiveEventProducer(q mq.MQ) (InteractiveEventProducer, error) {
	return mqx.NewGeneralProducer[InteractiveEvent](q, intrTopic)
}
