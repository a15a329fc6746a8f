package event

import (
	"github.com/ecodeclub/jobreview/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const registrationEventsTopic = "user_registration_events"

type RegistrationEvent struct {
	Uid int64 `json:"uid"`
}

type RegistrationEventProducer mqx.Producer[RegistrationEvent]

func NewRegistrationEventProducer(q mq.MQ) (RegistrationEventProducer, error) {
	return mqx.NewGeneralProducer[RegistrationEvent](q, registrationEventsTopic)
}
