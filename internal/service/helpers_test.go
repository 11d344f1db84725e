package service

import (
	"context"
	"movie_vault/internal/repository/repotest"
	"movie_vault/model"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type recordingEvents struct {
	mu     sync.Mutex
	events []*model.Event
}

func (r *recordingEvents) Publish(_ context.Context, event *model.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingEvents) types() []model.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]model.EventType, 0, len(r.events))
	for _, e := range r.events {
		res = append(res, e.Type)
	}
	return res
}

type services struct {
	store      *repotest.Store
	events     *recordingEvents
	movies     *MovieService
	reviews    *ReviewService
	collection *CollectionService
	users      *UserService
}

func newServices() *services {
	store := repotest.NewStore()
	events := &recordingEvents{}
	return &services{
		store:      store,
		events:     events,
		movies:     NewMovieService(store, store, store, events),
		reviews:    NewReviewService(store, store, events),
		collection: NewCollectionService(store, store, events),
		users:      NewUserService(store, store, store, events),
	}
}

func intPtr(i int) *int {
	return &i
}

func strPtr(s string) *string {
	return &s
}

func (s *services) createMovie(t *testing.T, title string, year int, genre ...string) *model.Movie {
	t.Helper()
	movie, err := s.movies.CreateMovie(context.Background(), primitive.NewObjectID(), &model.CreateMovieReq{
		Title: title,
		Year:  intPtr(year),
		Genre: genre,
	})
	require.NoError(t, err)
	return movie
}

func (s *services) createUser(t *testing.T, githubId string) *model.User {
	t.Helper()
	user, err := s.users.LoginWithGithub(context.Background(), model.GithubProfile{
		Id:    githubId,
		Login: "user" + githubId,
	})
	require.NoError(t, err)
	return user
}

func review(rating int, message string) *model.ReviewReq {
	return &model.ReviewReq{Rating: intPtr(rating), Message: message}
}
