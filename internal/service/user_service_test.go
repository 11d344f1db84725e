package service

import (
	"context"
	"errors"
	"movie_vault/internal/repository"
	"movie_vault/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserService_LoginCreatesThenRefreshes(t *testing.T) {
	s := newServices()
	ctx := context.Background()

	created, err := s.users.LoginWithGithub(ctx, model.GithubProfile{
		Id:        "42",
		Login:     "lbanks",
		Email:     "louise@banks.dev",
		AvatarUrl: "https://avatars.example/1",
	})
	require.NoError(t, err)
	assert.Equal(t, "lbanks", created.Name)
	assert.Equal(t, "louise@banks.dev", created.Email)

	refreshed, err := s.users.LoginWithGithub(ctx, model.GithubProfile{
		Id:    "42",
		Login: "lbanks",
		Name:  "Louise Banks",
	})
	require.NoError(t, err)
	assert.Equal(t, created.Id, refreshed.Id)
	assert.Equal(t, "Louise Banks", refreshed.Name)
	assert.Equal(t, "louise@banks.dev", refreshed.Email)

	users, _, _, _ := s.store.Counts()
	assert.Equal(t, 1, users)
}

func TestUserService_LoginEmailCollision(t *testing.T) {
	s := newServices()
	ctx := context.Background()

	first, err := s.users.LoginWithGithub(ctx, model.GithubProfile{Id: "1", Login: "a", Email: "shared@example.com"})
	require.NoError(t, err)

	second, err := s.users.LoginWithGithub(ctx, model.GithubProfile{Id: "2", Login: "b", Email: "shared@example.com"})
	require.NoError(t, err)
	assert.NotEqual(t, first.Id, second.Id)
	assert.Empty(t, second.Email)

	second, err = s.users.LoginWithGithub(ctx, model.GithubProfile{Id: "2", Login: "b", Email: "shared@example.com"})
	require.NoError(t, err)
	assert.Empty(t, second.Email)
}

func TestUserService_UpdateProfile(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	louise := s.createUser(t, "1")
	ian, err := s.users.LoginWithGithub(ctx, model.GithubProfile{Id: "2", Login: "ian", Email: "ian@example.com"})
	require.NoError(t, err)

	updated, err := s.users.UpdateProfile(ctx, louise.Id, &model.UpdateProfileReq{
		Name:  strPtr("Louise Banks"),
		Email: strPtr("louise@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Louise Banks", updated.Name)
	assert.Equal(t, "louise@example.com", updated.Email)

	_, err = s.users.UpdateProfile(ctx, louise.Id, &model.UpdateProfileReq{Email: strPtr(ian.Email)})
	assert.ErrorIs(t, err, model.ErrEmailAlreadyExist)

	_, err = s.users.UpdateProfile(ctx, primitive.NewObjectID(), &model.UpdateProfileReq{Name: strPtr("x")})
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestUserService_DeleteAccountCascades(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	louise := s.createUser(t, "1")
	ian := s.createUser(t, "2")
	arrival := s.createMovie(t, "Arrival", 2016)
	dune := s.createMovie(t, "Dune", 2021)

	for _, movieId := range []primitive.ObjectID{arrival.Id, dune.Id} {
		_, err := s.reviews.CreateReview(ctx, louise.Id, movieId, review(5, "x"))
		require.NoError(t, err)
		_, err = s.collection.AddMovie(ctx, louise.Id, movieId, "")
		require.NoError(t, err)
	}
	_, err := s.reviews.CreateReview(ctx, ian.Id, arrival.Id, review(3, "y"))
	require.NoError(t, err)

	require.NoError(t, s.users.DeleteAccount(ctx, louise.Id))

	users, movies, reviews, userMovies := s.store.Counts()
	assert.Equal(t, 1, users)
	assert.Equal(t, 2, movies)
	assert.Equal(t, 1, reviews)
	assert.Zero(t, userMovies)
	assert.Contains(t, s.events.types(), model.EventUserDeleted)

	_, err = s.users.GetUser(ctx, louise.Id)
	assert.ErrorIs(t, err, model.ErrUserNotFound)
	assert.ErrorIs(t, s.users.DeleteAccount(ctx, louise.Id), model.ErrUserNotFound)
}

type failingUserMovies struct {
	repository.IUserMovieRepository
}

func (f failingUserMovies) DeleteUserMovies(context.Context, primitive.ObjectID) (int64, error) {
	return 0, errors.New("write concern timeout")
}

func TestUserService_DeleteAccountKeepsUserOnFailure(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	louise := s.createUser(t, "1")
	arrival := s.createMovie(t, "Arrival", 2016)
	_, err := s.collection.AddMovie(ctx, louise.Id, arrival.Id, "")
	require.NoError(t, err)

	failing := NewUserService(s.store, s.store, failingUserMovies{s.store}, s.events)
	require.Error(t, failing.DeleteAccount(ctx, louise.Id))

	_, err = s.users.GetUser(ctx, louise.Id)
	require.NoError(t, err)
	assert.NotContains(t, s.events.types(), model.EventUserDeleted)

	require.NoError(t, s.users.DeleteAccount(ctx, louise.Id))
	users, _, _, userMovies := s.store.Counts()
	assert.Zero(t, users)
	assert.Zero(t, userMovies)
}
