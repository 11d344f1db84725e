package service

import (
	"context"
	"encoding/json"
	"errors"
	"movie_vault/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakePublisher struct {
	bodies [][]byte
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, body []byte) error {
	if f.err != nil {
		return f.err
	}
	f.bodies = append(f.bodies, body)
	return nil
}

func TestEventService_Publish(t *testing.T) {
	publisher := &fakePublisher{}
	svc := NewEventService(publisher)
	userId := primitive.NewObjectID()
	reviewId := primitive.NewObjectID()

	svc.Publish(context.Background(), model.NewEvent(model.EventReviewDeleted, userId, primitive.NilObjectID, reviewId))

	require.Len(t, publisher.bodies, 1)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(publisher.bodies[0], &decoded))
	assert.Equal(t, "review.deleted", decoded["type"])
	assert.Equal(t, userId.Hex(), decoded["userId"])
	assert.Equal(t, reviewId.Hex(), decoded["reviewId"])
	assert.NotContains(t, decoded, "movieId")
}

func TestEventService_FailuresAreSwallowed(t *testing.T) {
	svc := NewEventService(&fakePublisher{err: errors.New("channel closed")})
	assert.NotPanics(t, func() {
		svc.Publish(context.Background(), model.NewEvent(model.EventUserDeleted, primitive.NewObjectID(), primitive.NilObjectID, primitive.NilObjectID))
	})

	noop := NewEventService(nil)
	assert.NotPanics(t, func() {
		noop.Publish(context.Background(), model.NewEvent(model.EventUserDeleted, primitive.NewObjectID(), primitive.NilObjectID, primitive.NilObjectID))
	})
}
