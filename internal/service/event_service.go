package service

import (
	"context"
	"encoding/json"
	"movie_vault/model"
	errorHandler "movie_vault/pkg/error"
	"movie_vault/pkg/logger"

	"go.uber.org/zap"
)

type IEventService interface {
	Publish(ctx context.Context, event *model.Event)
}

type EventPublisher interface {
	Publish(ctx context.Context, body []byte) error
}

type EventService struct {
	publisher EventPublisher
}

// NewEventService returns a service that drops every event when publisher is nil.
func NewEventService(publisher EventPublisher) *EventService {
	return &EventService{publisher: publisher}
}

//------------------------------------------
//------------------------------------------

// Publish is best effort, failures are reported and never returned to the caller.
func (s *EventService) Publish(ctx context.Context, event *model.Event) {
	if s.publisher == nil || event == nil {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		errorHandler.SaveError("failed to marshal event", err)
		return
	}

	// the request context may be cancelled as soon as the response is written
	if err = s.publisher.Publish(context.WithoutCancel(ctx), body); err != nil {
		errorHandler.SaveError("failed to publish event "+string(event.Type), err)
		return
	}
	logger.L().Debug("event published", zap.String("type", string(event.Type)))
}
