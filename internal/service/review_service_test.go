package service

import (
	"context"
	"movie_vault/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestReviewService_Create(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	user := s.createUser(t, "1")
	movie := s.createMovie(t, "Arrival", 2016)

	created, err := s.reviews.CreateReview(ctx, user.Id, movie.Id, review(5, "Brilliant"))
	require.NoError(t, err)
	assert.Equal(t, user.Id, created.User)
	assert.Equal(t, movie.Id, created.Movie)
	assert.Equal(t, 5, created.Rating)

	_, err = s.reviews.CreateReview(ctx, user.Id, movie.Id, review(1, "Changed my mind"))
	assert.ErrorIs(t, err, model.ErrReviewAlreadyExist)

	_, err = s.reviews.CreateReview(ctx, user.Id, primitive.NewObjectID(), review(3, "?"))
	assert.ErrorIs(t, err, model.ErrMovieNotFound)

	_, _, reviews, _ := s.store.Counts()
	assert.Equal(t, 1, reviews)
	assert.Equal(t, []model.EventType{model.EventMovieCreated, model.EventReviewCreated}, s.events.types())
}

func TestReviewService_OwnershipIsolation(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	louise := s.createUser(t, "1")
	ian := s.createUser(t, "2")
	movie := s.createMovie(t, "Arrival", 2016)

	own, err := s.reviews.CreateReview(ctx, louise.Id, movie.Id, review(5, "Brilliant"))
	require.NoError(t, err)

	_, err = s.reviews.GetUserMovieReview(ctx, ian.Id, movie.Id)
	assert.ErrorIs(t, err, model.ErrReviewNotFound)

	_, err = s.reviews.UpdateUserMovieReview(ctx, ian.Id, movie.Id, review(1, "hijack"))
	assert.ErrorIs(t, err, model.ErrReviewNotFound)

	_, err = s.reviews.UpdateReviewById(ctx, ian.Id, own.Id, review(1, "hijack"))
	assert.ErrorIs(t, err, model.ErrReviewNotFound)

	assert.ErrorIs(t, s.reviews.DeleteUserMovieReview(ctx, ian.Id, movie.Id), model.ErrReviewNotFound)
	assert.ErrorIs(t, s.reviews.DeleteReviewById(ctx, ian.Id, own.Id), model.ErrReviewNotFound)

	res, err := s.reviews.GetUserReviews(ctx, ian.Id, nil)
	require.NoError(t, err)
	assert.Zero(t, res.Count)

	stored, err := s.reviews.GetUserMovieReview(ctx, louise.Id, movie.Id)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Rating)
	assert.Equal(t, "Brilliant", stored.Message)
}

func TestReviewService_UpdateAndDelete(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	user := s.createUser(t, "1")
	movie := s.createMovie(t, "Arrival", 2016)
	created, err := s.reviews.CreateReview(ctx, user.Id, movie.Id, review(4, "Good"))
	require.NoError(t, err)

	updated, err := s.reviews.UpdateUserMovieReview(ctx, user.Id, movie.Id, review(5, "Better on rewatch"))
	require.NoError(t, err)
	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, 5, updated.Rating)

	updated, err = s.reviews.UpdateReviewById(ctx, user.Id, created.Id, review(3, "Hmm"))
	require.NoError(t, err)
	assert.Equal(t, "Hmm", updated.Message)

	require.NoError(t, s.reviews.DeleteReviewById(ctx, user.Id, created.Id))
	_, err = s.reviews.GetUserMovieReview(ctx, user.Id, movie.Id)
	assert.ErrorIs(t, err, model.ErrReviewNotFound)
	assert.ErrorIs(t, s.reviews.DeleteUserMovieReview(ctx, user.Id, movie.Id), model.ErrReviewNotFound)
}

func TestReviewService_GetUserReviews(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	user := s.createUser(t, "1")
	arrival := s.createMovie(t, "Arrival", 2016)
	dune := s.createMovie(t, "Dune", 2021)

	_, err := s.reviews.CreateReview(ctx, user.Id, arrival.Id, review(5, "a"))
	require.NoError(t, err)
	_, err = s.reviews.CreateReview(ctx, user.Id, dune.Id, review(4, "b"))
	require.NoError(t, err)

	res, err := s.reviews.GetUserReviews(ctx, user.Id, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)

	res, err = s.reviews.GetUserReviews(ctx, user.Id, &dune.Id)
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, dune.Id, res.Reviews[0].Movie)
}
