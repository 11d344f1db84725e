package service

import (
	"context"
	"movie_vault/internal/repository"
	"movie_vault/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ICollectionService interface {
	AddMovie(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID, status model.WatchStatus) (*model.CollectionMovie, error)
	GetCollection(ctx context.Context, userId primitive.ObjectID, filter model.CollectionFilter) (*model.CollectionRes, error)
	GetCollectionMovie(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) (*model.CollectionMovie, error)
	UpdateStatus(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID, status model.WatchStatus) (*model.CollectionMovie, error)
	RemoveMovie(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) error
}

type CollectionService struct {
	userMovieRepo repository.IUserMovieRepository
	movieRepo     repository.IMovieRepository
	eventService  IEventService
}

func NewCollectionService(
	userMovieRepo repository.IUserMovieRepository,
	movieRepo repository.IMovieRepository,
	eventService IEventService,
) *CollectionService {
	return &CollectionService{
		userMovieRepo: userMovieRepo,
		movieRepo:     movieRepo,
		eventService:  eventService,
	}
}

//------------------------------------------
//------------------------------------------

func (s *CollectionService) AddMovie(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID, status model.WatchStatus) (*model.CollectionMovie, error) {
	movie, err := s.movieRepo.GetMovieById(ctx, movieId)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, model.ErrMovieNotFound
	}

	existing, err := s.userMovieRepo.GetUserMovie(ctx, userId, movieId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrUserMovieAlreadyExist
	}

	if status == "" {
		status = model.StatusPlannedToWatch
	}
	userMovie, err := s.userMovieRepo.AddUserMovie(ctx, &model.UserMovie{
		User:   userId,
		Movie:  movieId,
		Status: status,
	})
	if err != nil {
		return nil, err
	}

	s.eventService.Publish(ctx, model.NewEvent(model.EventCollectionAdded, userId, movieId, primitive.NilObjectID))
	res := model.NewCollectionMovie(userMovie, movie)
	return &res, nil
}

// GetCollection joins the user's entries with the catalog and applies filter. It
// never returns entries of another user.
func (s *CollectionService) GetCollection(ctx context.Context, userId primitive.ObjectID, filter model.CollectionFilter) (*model.CollectionRes, error) {
	movies, err := s.userMovieRepo.GetUserMovies(ctx, userId, filter)
	if err != nil {
		return nil, err
	}
	return &model.CollectionRes{Count: len(movies), Movies: movies}, nil
}

func (s *CollectionService) GetCollectionMovie(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) (*model.CollectionMovie, error) {
	userMovie, err := s.userMovieRepo.GetUserMovie(ctx, userId, movieId)
	if err != nil {
		return nil, err
	}
	if userMovie == nil {
		return nil, model.ErrUserMovieNotFound
	}
	return s.withMovie(ctx, userMovie)
}

func (s *CollectionService) UpdateStatus(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID, status model.WatchStatus) (*model.CollectionMovie, error) {
	userMovie, err := s.userMovieRepo.UpdateUserMovieStatus(ctx, userId, movieId, status)
	if err != nil {
		return nil, err
	}
	if userMovie == nil {
		return nil, model.ErrUserMovieNotFound
	}

	s.eventService.Publish(ctx, model.NewEvent(model.EventCollectionUpdated, userId, movieId, primitive.NilObjectID))
	return s.withMovie(ctx, userMovie)
}

func (s *CollectionService) RemoveMovie(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) error {
	deleted, err := s.userMovieRepo.DeleteUserMovie(ctx, userId, movieId)
	if err != nil {
		return err
	}
	if !deleted {
		return model.ErrUserMovieNotFound
	}

	s.eventService.Publish(ctx, model.NewEvent(model.EventCollectionRemoved, userId, movieId, primitive.NilObjectID))
	return nil
}

func (s *CollectionService) withMovie(ctx context.Context, userMovie *model.UserMovie) (*model.CollectionMovie, error) {
	movie, err := s.movieRepo.GetMovieById(ctx, userMovie.Movie)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, model.ErrMovieNotFound
	}
	res := model.NewCollectionMovie(userMovie, movie)
	return &res, nil
}
