package service

import (
	"context"
	"movie_vault/internal/repository"
	"movie_vault/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IMovieService interface {
	CreateMovie(ctx context.Context, userId primitive.ObjectID, req *model.CreateMovieReq) (*model.Movie, error)
	GetMovie(ctx context.Context, movieId primitive.ObjectID) (*model.Movie, error)
	GetMovies(ctx context.Context, filter model.MovieFilter) (*model.MoviesRes, error)
	UpdateMovie(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID, req *model.UpdateMovieReq) (*model.Movie, error)
	DeleteMovie(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) error
	GetMovieReviews(ctx context.Context, movieId primitive.ObjectID) (*model.ReviewsRes, error)
}

type MovieService struct {
	movieRepo     repository.IMovieRepository
	reviewRepo    repository.IReviewRepository
	userMovieRepo repository.IUserMovieRepository
	eventService  IEventService
}

func NewMovieService(
	movieRepo repository.IMovieRepository,
	reviewRepo repository.IReviewRepository,
	userMovieRepo repository.IUserMovieRepository,
	eventService IEventService,
) *MovieService {
	return &MovieService{
		movieRepo:     movieRepo,
		reviewRepo:    reviewRepo,
		userMovieRepo: userMovieRepo,
		eventService:  eventService,
	}
}

//------------------------------------------
//------------------------------------------

func (s *MovieService) CreateMovie(ctx context.Context, userId primitive.ObjectID, req *model.CreateMovieReq) (*model.Movie, error) {
	movie := req.ToMovie()

	existing, err := s.movieRepo.FindMovieByTitleYear(ctx, movie.Title, movie.Year)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrMovieAlreadyExist
	}

	movie, err = s.movieRepo.CreateMovie(ctx, movie)
	if err != nil {
		return nil, err
	}

	s.eventService.Publish(ctx, model.NewEvent(model.EventMovieCreated, userId, movie.Id, primitive.NilObjectID))
	return movie, nil
}

func (s *MovieService) GetMovie(ctx context.Context, movieId primitive.ObjectID) (*model.Movie, error) {
	movie, err := s.movieRepo.GetMovieById(ctx, movieId)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, model.ErrMovieNotFound
	}
	return movie, nil
}

func (s *MovieService) GetMovies(ctx context.Context, filter model.MovieFilter) (*model.MoviesRes, error) {
	movies, err := s.movieRepo.GetMovies(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &model.MoviesRes{Count: len(movies), Movies: movies}, nil
}

func (s *MovieService) UpdateMovie(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID, req *model.UpdateMovieReq) (*model.Movie, error) {
	movie, err := s.GetMovie(ctx, movieId)
	if err != nil {
		return nil, err
	}

	oldTitle, oldYear := movie.Title, movie.Year
	if !req.ApplyTo(movie) {
		return movie, nil
	}

	if movie.Title != oldTitle || movie.Year != oldYear {
		existing, err := s.movieRepo.FindMovieByTitleYear(ctx, movie.Title, movie.Year)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.Id != movie.Id {
			return nil, model.ErrMovieAlreadyExist
		}
	}

	updated, err := s.movieRepo.UpdateMovie(ctx, movie)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, model.ErrMovieNotFound
	}

	s.eventService.Publish(ctx, model.NewEvent(model.EventMovieUpdated, userId, movieId, primitive.NilObjectID))
	return updated, nil
}

// DeleteMovie refuses to remove a movie that still has reviews. Collection entries
// pointing at the movie are removed with it.
func (s *MovieService) DeleteMovie(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) error {
	if _, err := s.GetMovie(ctx, movieId); err != nil {
		return err
	}

	count, err := s.reviewRepo.CountMovieReviews(ctx, movieId)
	if err != nil {
		return err
	}
	if count > 0 {
		return model.ErrMovieHasReviews
	}

	deleted, err := s.movieRepo.DeleteMovie(ctx, movieId)
	if err != nil {
		return err
	}
	if !deleted {
		return model.ErrMovieNotFound
	}

	if _, err = s.userMovieRepo.DeleteMovieEntries(ctx, movieId); err != nil {
		return err
	}

	s.eventService.Publish(ctx, model.NewEvent(model.EventMovieDeleted, userId, movieId, primitive.NilObjectID))
	return nil
}

func (s *MovieService) GetMovieReviews(ctx context.Context, movieId primitive.ObjectID) (*model.ReviewsRes, error) {
	if _, err := s.GetMovie(ctx, movieId); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.GetMovieReviews(ctx, movieId)
	if err != nil {
		return nil, err
	}
	return &model.ReviewsRes{Count: len(reviews), Reviews: reviews}, nil
}
