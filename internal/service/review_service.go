package service

import (
	"context"
	"movie_vault/internal/repository"
	"movie_vault/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IReviewService scopes every operation to the calling user. A review that belongs to
// someone else is reported as not found.
type IReviewService interface {
	CreateReview(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID, req *model.ReviewReq) (*model.Review, error)
	GetUserMovieReview(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) (*model.Review, error)
	UpdateUserMovieReview(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID, req *model.ReviewReq) (*model.Review, error)
	DeleteUserMovieReview(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) error
	GetUserReviews(ctx context.Context, userId primitive.ObjectID, movieId *primitive.ObjectID) (*model.ReviewsRes, error)
	UpdateReviewById(ctx context.Context, userId primitive.ObjectID, reviewId primitive.ObjectID, req *model.ReviewReq) (*model.Review, error)
	DeleteReviewById(ctx context.Context, userId primitive.ObjectID, reviewId primitive.ObjectID) error
}

type ReviewService struct {
	reviewRepo   repository.IReviewRepository
	movieRepo    repository.IMovieRepository
	eventService IEventService
}

func NewReviewService(
	reviewRepo repository.IReviewRepository,
	movieRepo repository.IMovieRepository,
	eventService IEventService,
) *ReviewService {
	return &ReviewService{
		reviewRepo:   reviewRepo,
		movieRepo:    movieRepo,
		eventService: eventService,
	}
}

//------------------------------------------
//------------------------------------------

func (s *ReviewService) CreateReview(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID, req *model.ReviewReq) (*model.Review, error) {
	movie, err := s.movieRepo.GetMovieById(ctx, movieId)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, model.ErrMovieNotFound
	}

	existing, err := s.reviewRepo.GetUserMovieReview(ctx, userId, movieId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrReviewAlreadyExist
	}

	review, err := s.reviewRepo.CreateReview(ctx, &model.Review{
		Movie:   movieId,
		User:    userId,
		Rating:  *req.Rating,
		Message: req.Message,
	})
	if err != nil {
		return nil, err
	}

	s.eventService.Publish(ctx, model.NewEvent(model.EventReviewCreated, userId, movieId, review.Id))
	return review, nil
}

func (s *ReviewService) GetUserMovieReview(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) (*model.Review, error) {
	review, err := s.reviewRepo.GetUserMovieReview(ctx, userId, movieId)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, model.ErrReviewNotFound
	}
	return review, nil
}

func (s *ReviewService) UpdateUserMovieReview(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID, req *model.ReviewReq) (*model.Review, error) {
	review, err := s.reviewRepo.UpdateUserMovieReview(ctx, userId, movieId, *req.Rating, req.Message)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, model.ErrReviewNotFound
	}

	s.eventService.Publish(ctx, model.NewEvent(model.EventReviewUpdated, userId, movieId, review.Id))
	return review, nil
}

func (s *ReviewService) DeleteUserMovieReview(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) error {
	review, err := s.reviewRepo.DeleteUserMovieReview(ctx, userId, movieId)
	if err != nil {
		return err
	}
	if review == nil {
		return model.ErrReviewNotFound
	}

	s.eventService.Publish(ctx, model.NewEvent(model.EventReviewDeleted, userId, movieId, review.Id))
	return nil
}

func (s *ReviewService) GetUserReviews(ctx context.Context, userId primitive.ObjectID, movieId *primitive.ObjectID) (*model.ReviewsRes, error) {
	reviews, err := s.reviewRepo.GetUserReviews(ctx, userId, movieId)
	if err != nil {
		return nil, err
	}
	return &model.ReviewsRes{Count: len(reviews), Reviews: reviews}, nil
}

//------------------------------------------
//------------------------------------------

func (s *ReviewService) UpdateReviewById(ctx context.Context, userId primitive.ObjectID, reviewId primitive.ObjectID, req *model.ReviewReq) (*model.Review, error) {
	review, err := s.reviewRepo.UpdateUserReviewById(ctx, userId, reviewId, *req.Rating, req.Message)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, model.ErrReviewNotFound
	}

	s.eventService.Publish(ctx, model.NewEvent(model.EventReviewUpdated, userId, review.Movie, review.Id))
	return review, nil
}

func (s *ReviewService) DeleteReviewById(ctx context.Context, userId primitive.ObjectID, reviewId primitive.ObjectID) error {
	review, err := s.reviewRepo.DeleteUserReviewById(ctx, userId, reviewId)
	if err != nil {
		return err
	}
	if review == nil {
		return model.ErrReviewNotFound
	}

	s.eventService.Publish(ctx, model.NewEvent(model.EventReviewDeleted, userId, review.Movie, review.Id))
	return nil
}
