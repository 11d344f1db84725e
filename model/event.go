package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventType string

const (
	EventReviewCreated     EventType = "review.created"
	EventReviewUpdated     EventType = "review.updated"
	EventReviewDeleted     EventType = "review.deleted"
	EventCollectionAdded   EventType = "collection.added"
	EventCollectionUpdated EventType = "collection.updated"
	EventCollectionRemoved EventType = "collection.removed"
	EventMovieCreated      EventType = "movie.created"
	EventMovieUpdated      EventType = "movie.updated"
	EventMovieDeleted      EventType = "movie.deleted"
	EventUserDeleted       EventType = "user.deleted"
)

type Event struct {
	Type       EventType           `json:"type"`
	UserId     *primitive.ObjectID `json:"userId,omitempty"`
	MovieId    *primitive.ObjectID `json:"movieId,omitempty"`
	ReviewId   *primitive.ObjectID `json:"reviewId,omitempty"`
	OccurredAt time.Time           `json:"occurredAt"`
}

func NewEvent(eventType EventType, userId, movieId, reviewId primitive.ObjectID) *Event {
	e := &Event{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
	}
	if !userId.IsZero() {
		e.UserId = &userId
	}
	if !movieId.IsZero() {
		e.MovieId = &movieId
	}
	if !reviewId.IsZero() {
		e.ReviewId = &reviewId
	}
	return e
}
