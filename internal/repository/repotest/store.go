// Package repotest provides an in-memory implementation of every repository interface.
// It enforces the same unique constraints as the mongo indexes so services can be
// tested without a database.
package repotest

import (
	"context"
	"movie_vault/model"
	"slices"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mu         sync.Mutex
	users      []model.User
	movies     []model.Movie
	reviews    []model.Review
	userMovies []model.UserMovie

	// Err, when set, is returned by every call to simulate a store failure.
	Err error
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Counts() (users, movies, reviews, userMovies int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users), len(s.movies), len(s.reviews), len(s.userMovies)
}

//------------------------------------------
//------------------------------------------

func (s *Store) CreateMovie(_ context.Context, movie *model.Movie) (*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, m := range s.movies {
		if m.Title == movie.Title && m.Year == movie.Year {
			return nil, model.ErrMovieAlreadyExist
		}
	}
	now := time.Now().UTC()
	movie.Id = primitive.NewObjectID()
	movie.CreatedAt = now
	movie.UpdatedAt = now
	s.movies = append(s.movies, cloneMovie(*movie))
	return movie, nil
}

func (s *Store) GetMovieById(_ context.Context, movieId primitive.ObjectID) (*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.movieById(movieId), nil
}

func (s *Store) FindMovieByTitleYear(_ context.Context, title string, year int) (*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, m := range s.movies {
		if m.Title == title && m.Year == year {
			res := cloneMovie(m)
			return &res, nil
		}
	}
	return nil, nil
}

func (s *Store) GetMovies(_ context.Context, filter model.MovieFilter) ([]model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	result := []model.Movie{}
	for i := range s.movies {
		if filter.Matches(&s.movies[i]) {
			result = append(result, cloneMovie(s.movies[i]))
		}
	}
	slices.SortStableFunc(result, func(a, b model.Movie) int {
		if c := strings.Compare(a.Title, b.Title); c != 0 {
			return c
		}
		return a.Year - b.Year
	})
	return result, nil
}

func (s *Store) UpdateMovie(_ context.Context, movie *model.Movie) (*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	idx := slices.IndexFunc(s.movies, func(m model.Movie) bool { return m.Id == movie.Id })
	if idx == -1 {
		return nil, nil
	}
	for _, m := range s.movies {
		if m.Id != movie.Id && m.Title == movie.Title && m.Year == movie.Year {
			return nil, model.ErrMovieAlreadyExist
		}
	}
	movie.UpdatedAt = time.Now().UTC()
	s.movies[idx] = cloneMovie(*movie)
	res := cloneMovie(s.movies[idx])
	return &res, nil
}

func (s *Store) DeleteMovie(_ context.Context, movieId primitive.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	n := len(s.movies)
	s.movies = slices.DeleteFunc(s.movies, func(m model.Movie) bool { return m.Id == movieId })
	return len(s.movies) < n, nil
}

func (s *Store) movieById(movieId primitive.ObjectID) *model.Movie {
	for _, m := range s.movies {
		if m.Id == movieId {
			res := cloneMovie(m)
			return &res
		}
	}
	return nil
}

func cloneMovie(m model.Movie) model.Movie {
	m.Genre = slices.Clone(m.Genre)
	if m.Genre == nil {
		m.Genre = []string{}
	}
	if m.Length != nil {
		l := *m.Length
		m.Length = &l
	}
	return m
}

//------------------------------------------
//------------------------------------------

func (s *Store) CreateReview(_ context.Context, review *model.Review) (*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, r := range s.reviews {
		if r.Movie == review.Movie && r.User == review.User {
			return nil, model.ErrReviewAlreadyExist
		}
	}
	now := time.Now().UTC()
	review.Id = primitive.NewObjectID()
	review.CreatedAt = now
	review.UpdatedAt = now
	s.reviews = append(s.reviews, *review)
	return review, nil
}

func (s *Store) GetUserMovieReview(_ context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) (*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if idx := s.reviewIndex(func(r model.Review) bool { return r.User == userId && r.Movie == movieId }); idx != -1 {
		res := s.reviews[idx]
		return &res, nil
	}
	return nil, nil
}

func (s *Store) GetUserReviews(_ context.Context, userId primitive.ObjectID, movieId *primitive.ObjectID) ([]model.Review, error) {
	return s.findReviews(func(r model.Review) bool {
		return r.User == userId && (movieId == nil || r.Movie == *movieId)
	})
}

func (s *Store) GetMovieReviews(_ context.Context, movieId primitive.ObjectID) ([]model.Review, error) {
	return s.findReviews(func(r model.Review) bool { return r.Movie == movieId })
}

// findReviews returns matches newest first, insertion order breaks timestamp ties.
func (s *Store) findReviews(match func(model.Review) bool) ([]model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	result := []model.Review{}
	for i := len(s.reviews) - 1; i >= 0; i-- {
		if match(s.reviews[i]) {
			result = append(result, s.reviews[i])
		}
	}
	return result, nil
}

func (s *Store) UpdateUserMovieReview(_ context.Context, userId primitive.ObjectID, movieId primitive.ObjectID, rating int, message string) (*model.Review, error) {
	return s.updateReview(func(r model.Review) bool { return r.User == userId && r.Movie == movieId }, rating, message)
}

func (s *Store) UpdateUserReviewById(_ context.Context, userId primitive.ObjectID, reviewId primitive.ObjectID, rating int, message string) (*model.Review, error) {
	return s.updateReview(func(r model.Review) bool { return r.Id == reviewId && r.User == userId }, rating, message)
}

func (s *Store) updateReview(match func(model.Review) bool, rating int, message string) (*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	idx := s.reviewIndex(match)
	if idx == -1 {
		return nil, nil
	}
	s.reviews[idx].Rating = rating
	s.reviews[idx].Message = message
	s.reviews[idx].UpdatedAt = time.Now().UTC()
	res := s.reviews[idx]
	return &res, nil
}

func (s *Store) DeleteUserMovieReview(_ context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) (*model.Review, error) {
	return s.deleteReview(func(r model.Review) bool { return r.User == userId && r.Movie == movieId })
}

func (s *Store) DeleteUserReviewById(_ context.Context, userId primitive.ObjectID, reviewId primitive.ObjectID) (*model.Review, error) {
	return s.deleteReview(func(r model.Review) bool { return r.Id == reviewId && r.User == userId })
}

func (s *Store) deleteReview(match func(model.Review) bool) (*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	idx := s.reviewIndex(match)
	if idx == -1 {
		return nil, nil
	}
	res := s.reviews[idx]
	s.reviews = slices.Delete(s.reviews, idx, idx+1)
	return &res, nil
}

func (s *Store) CountMovieReviews(_ context.Context, movieId primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	var n int64
	for _, r := range s.reviews {
		if r.Movie == movieId {
			n++
		}
	}
	return n, nil
}

func (s *Store) DeleteUserReviews(_ context.Context, userId primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	n := len(s.reviews)
	s.reviews = slices.DeleteFunc(s.reviews, func(r model.Review) bool { return r.User == userId })
	return int64(n - len(s.reviews)), nil
}

func (s *Store) reviewIndex(match func(model.Review) bool) int {
	return slices.IndexFunc(s.reviews, match)
}

//------------------------------------------
//------------------------------------------

func (s *Store) AddUserMovie(_ context.Context, userMovie *model.UserMovie) (*model.UserMovie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, um := range s.userMovies {
		if um.User == userMovie.User && um.Movie == userMovie.Movie {
			return nil, model.ErrUserMovieAlreadyExist
		}
	}
	now := time.Now().UTC()
	userMovie.Id = primitive.NewObjectID()
	userMovie.CreatedAt = now
	userMovie.UpdatedAt = now
	if userMovie.Status == "" {
		userMovie.Status = model.StatusPlannedToWatch
	}
	s.userMovies = append(s.userMovies, *userMovie)
	return userMovie, nil
}

func (s *Store) GetUserMovie(_ context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) (*model.UserMovie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if idx := s.userMovieIndex(userId, movieId); idx != -1 {
		res := s.userMovies[idx]
		return &res, nil
	}
	return nil, nil
}

// GetUserMovies mirrors the aggregation: entries without a catalog movie are skipped
// and the result is newest first.
func (s *Store) GetUserMovies(_ context.Context, userId primitive.ObjectID, filter model.CollectionFilter) ([]model.CollectionMovie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	result := []model.CollectionMovie{}
	for i := len(s.userMovies) - 1; i >= 0; i-- {
		um := s.userMovies[i]
		if um.User != userId {
			continue
		}
		m := s.movieById(um.Movie)
		if m == nil {
			continue
		}
		cm := model.NewCollectionMovie(&um, m)
		if filter.Matches(&cm) {
			result = append(result, cm)
		}
	}
	return result, nil
}

func (s *Store) UpdateUserMovieStatus(_ context.Context, userId primitive.ObjectID, movieId primitive.ObjectID, status model.WatchStatus) (*model.UserMovie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	idx := s.userMovieIndex(userId, movieId)
	if idx == -1 {
		return nil, nil
	}
	s.userMovies[idx].Status = status
	s.userMovies[idx].UpdatedAt = time.Now().UTC()
	res := s.userMovies[idx]
	return &res, nil
}

func (s *Store) DeleteUserMovie(_ context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	idx := s.userMovieIndex(userId, movieId)
	if idx == -1 {
		return false, nil
	}
	s.userMovies = slices.Delete(s.userMovies, idx, idx+1)
	return true, nil
}

func (s *Store) DeleteUserMovies(_ context.Context, userId primitive.ObjectID) (int64, error) {
	return s.deleteUserMovies(func(um model.UserMovie) bool { return um.User == userId })
}

func (s *Store) DeleteMovieEntries(_ context.Context, movieId primitive.ObjectID) (int64, error) {
	return s.deleteUserMovies(func(um model.UserMovie) bool { return um.Movie == movieId })
}

func (s *Store) deleteUserMovies(match func(model.UserMovie) bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	n := len(s.userMovies)
	s.userMovies = slices.DeleteFunc(s.userMovies, match)
	return int64(n - len(s.userMovies)), nil
}

func (s *Store) userMovieIndex(userId primitive.ObjectID, movieId primitive.ObjectID) int {
	return slices.IndexFunc(s.userMovies, func(um model.UserMovie) bool {
		return um.User == userId && um.Movie == movieId
	})
}

//------------------------------------------
//------------------------------------------

func (s *Store) GetUserById(_ context.Context, userId primitive.ObjectID) (*model.User, error) {
	return s.findUser(func(u model.User) bool { return u.Id == userId })
}

func (s *Store) GetUserByGithubId(_ context.Context, githubId string) (*model.User, error) {
	return s.findUser(func(u model.User) bool { return u.GithubId == githubId })
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	return s.findUser(func(u model.User) bool { return email != "" && u.Email == email })
}

func (s *Store) findUser(match func(model.User) bool) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if idx := slices.IndexFunc(s.users, match); idx != -1 {
		res := s.users[idx]
		return &res, nil
	}
	return nil, nil
}

func (s *Store) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if err := s.checkUserUnique(user); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user.Id = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users = append(s.users, *user)
	return user, nil
}

func (s *Store) UpdateUser(_ context.Context, user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	idx := slices.IndexFunc(s.users, func(u model.User) bool { return u.Id == user.Id })
	if idx == -1 {
		return nil, nil
	}
	if err := s.checkUserUnique(user); err != nil {
		return nil, err
	}
	user.UpdatedAt = time.Now().UTC()
	s.users[idx] = *user
	res := s.users[idx]
	return &res, nil
}

func (s *Store) DeleteUser(_ context.Context, userId primitive.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	n := len(s.users)
	s.users = slices.DeleteFunc(s.users, func(u model.User) bool { return u.Id == userId })
	return len(s.users) < n, nil
}

func (s *Store) checkUserUnique(user *model.User) error {
	for _, u := range s.users {
		if u.Id == user.Id {
			continue
		}
		if u.GithubId == user.GithubId {
			return model.ErrUserAlreadyExist
		}
		if user.Email != "" && u.Email == user.Email {
			return model.ErrEmailAlreadyExist
		}
	}
	return nil
}
