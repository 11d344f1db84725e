package service

import (
	"context"
	"errors"
	"movie_vault/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMovieService_CreateDuplicate(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	s.createMovie(t, "Arrival", 2016)

	_, err := s.movies.CreateMovie(ctx, primitive.NewObjectID(), &model.CreateMovieReq{Title: "Arrival", Year: intPtr(2016)})
	assert.ErrorIs(t, err, model.ErrMovieAlreadyExist)

	// same title in another year is a different movie
	_, err = s.movies.CreateMovie(ctx, primitive.NewObjectID(), &model.CreateMovieReq{Title: "Arrival", Year: intPtr(1996)})
	assert.NoError(t, err)

	_, movies, _, _ := s.store.Counts()
	assert.Equal(t, 2, movies)
}

func TestMovieService_GetMissing(t *testing.T) {
	s := newServices()

	_, err := s.movies.GetMovie(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, model.ErrMovieNotFound)
}

func TestMovieService_GetMovies(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	s.createMovie(t, "Interstellar", 2014, "Sci-Fi")
	s.createMovie(t, "Arrival", 2016, "Sci-Fi", "Drama")
	s.createMovie(t, "Sicario", 2015, "Thriller")

	res, err := s.movies.GetMovies(ctx, model.MovieFilter{})
	require.NoError(t, err)
	require.Equal(t, 3, res.Count)
	assert.Equal(t, "Arrival", res.Movies[0].Title)
	assert.Equal(t, "Sicario", res.Movies[2].Title)

	res, err = s.movies.GetMovies(ctx, model.MovieFilter{Genre: "Sci-Fi", Year: 2016})
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "Arrival", res.Movies[0].Title)

	res, err = s.movies.GetMovies(ctx, model.MovieFilter{Title: "STELL"})
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "Interstellar", res.Movies[0].Title)
}

func TestMovieService_Update(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	arrival := s.createMovie(t, "Arrival", 2016, "Sci-Fi")
	s.createMovie(t, "Dune", 2021)

	updated, err := s.movies.UpdateMovie(ctx, primitive.NewObjectID(), arrival.Id, &model.UpdateMovieReq{Director: strPtr("Denis Villeneuve")})
	require.NoError(t, err)
	assert.Equal(t, "Denis Villeneuve", updated.Director)
	assert.Equal(t, "Arrival", updated.Title)
	assert.Equal(t, []string{"Sci-Fi"}, updated.Genre)

	_, err = s.movies.UpdateMovie(ctx, primitive.NewObjectID(), arrival.Id, &model.UpdateMovieReq{Title: strPtr("Dune"), Year: intPtr(2021)})
	assert.ErrorIs(t, err, model.ErrMovieAlreadyExist)

	_, err = s.movies.UpdateMovie(ctx, primitive.NewObjectID(), primitive.NewObjectID(), &model.UpdateMovieReq{Title: strPtr("x")})
	assert.ErrorIs(t, err, model.ErrMovieNotFound)
}

func TestMovieService_DeleteGuardedByReviews(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	user := s.createUser(t, "1")
	movie := s.createMovie(t, "Arrival", 2016)

	_, err := s.reviews.CreateReview(ctx, user.Id, movie.Id, review(5, "Brilliant"))
	require.NoError(t, err)

	err = s.movies.DeleteMovie(ctx, user.Id, movie.Id)
	assert.ErrorIs(t, err, model.ErrMovieHasReviews)
	_, err = s.movies.GetMovie(ctx, movie.Id)
	assert.NoError(t, err)

	require.NoError(t, s.reviews.DeleteUserMovieReview(ctx, user.Id, movie.Id))
	assert.NoError(t, s.movies.DeleteMovie(ctx, user.Id, movie.Id))
	_, err = s.movies.GetMovie(ctx, movie.Id)
	assert.ErrorIs(t, err, model.ErrMovieNotFound)
}

func TestMovieService_DeleteRemovesCollectionEntries(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	user := s.createUser(t, "1")
	movie := s.createMovie(t, "Arrival", 2016)

	_, err := s.collection.AddMovie(ctx, user.Id, movie.Id, "")
	require.NoError(t, err)

	require.NoError(t, s.movies.DeleteMovie(ctx, user.Id, movie.Id))
	_, _, _, userMovies := s.store.Counts()
	assert.Zero(t, userMovies)
	assert.Contains(t, s.events.types(), model.EventMovieDeleted)

	assert.ErrorIs(t, s.movies.DeleteMovie(ctx, user.Id, movie.Id), model.ErrMovieNotFound)
}

func TestMovieService_GetMovieReviews(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	movie := s.createMovie(t, "Arrival", 2016)
	louise := s.createUser(t, "1")
	ian := s.createUser(t, "2")

	_, err := s.reviews.CreateReview(ctx, louise.Id, movie.Id, review(5, "first"))
	require.NoError(t, err)
	_, err = s.reviews.CreateReview(ctx, ian.Id, movie.Id, review(4, "second"))
	require.NoError(t, err)

	res, err := s.movies.GetMovieReviews(ctx, movie.Id)
	require.NoError(t, err)
	require.Equal(t, 2, res.Count)
	assert.Equal(t, "second", res.Reviews[0].Message)

	_, err = s.movies.GetMovieReviews(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, model.ErrMovieNotFound)
}

func TestMovieService_StoreFailure(t *testing.T) {
	s := newServices()
	storeErr := errors.New("connection refused")
	s.store.Err = storeErr

	_, err := s.movies.GetMovies(context.Background(), model.MovieFilter{})
	assert.ErrorIs(t, err, storeErr)
	assert.Zero(t, model.GetErrorCode(err))
}
