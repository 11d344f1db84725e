package repository

import (
	"context"
	"errors"
	"movie_vault/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IReviewRepository never selects a review by its id alone, every filter carries the
// owning user.
type IReviewRepository interface {
	CreateReview(ctx context.Context, review *model.Review) (*model.Review, error)
	GetUserMovieReview(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) (*model.Review, error)
	GetUserReviews(ctx context.Context, userId primitive.ObjectID, movieId *primitive.ObjectID) ([]model.Review, error)
	GetMovieReviews(ctx context.Context, movieId primitive.ObjectID) ([]model.Review, error)
	UpdateUserMovieReview(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID, rating int, message string) (*model.Review, error)
	DeleteUserMovieReview(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) (*model.Review, error)
	UpdateUserReviewById(ctx context.Context, userId primitive.ObjectID, reviewId primitive.ObjectID, rating int, message string) (*model.Review, error)
	DeleteUserReviewById(ctx context.Context, userId primitive.ObjectID, reviewId primitive.ObjectID) (*model.Review, error)
	CountMovieReviews(ctx context.Context, movieId primitive.ObjectID) (int64, error)
	DeleteUserReviews(ctx context.Context, userId primitive.ObjectID) (int64, error)
}

type ReviewRepository struct {
	mongodb *mongo.Database
}

func NewReviewRepository(mongodb *mongo.Database) *ReviewRepository {
	return &ReviewRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

func (r *ReviewRepository) CreateReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	now := time.Now().UTC()
	review.Id = primitive.NewObjectID()
	review.CreatedAt = now
	review.UpdatedAt = now

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.mongodb.
		Collection(ReviewsCollection).
		InsertOne(ctx, review)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, model.ErrReviewAlreadyExist
		}
		return nil, err
	}
	return review, nil
}

func (r *ReviewRepository) GetUserMovieReview(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) (*model.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result model.Review
	err := r.mongodb.
		Collection(ReviewsCollection).
		FindOne(ctx, bson.M{"user": userId, "movie": movieId}).
		Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *ReviewRepository) GetUserReviews(ctx context.Context, userId primitive.ObjectID, movieId *primitive.ObjectID) ([]model.Review, error) {
	filter := bson.M{"user": userId}
	if movieId != nil {
		filter["movie"] = *movieId
	}
	return r.find(ctx, filter)
}

func (r *ReviewRepository) GetMovieReviews(ctx context.Context, movieId primitive.ObjectID) ([]model.Review, error) {
	return r.find(ctx, bson.M{"movie": movieId})
}

func (r *ReviewRepository) find(ctx context.Context, filter bson.M) ([]model.Review, error) {
	opts := options.Find().SetSort(bson.D{{"createdAt", -1}, {"_id", -1}})

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	cursor, err := r.mongodb.
		Collection(ReviewsCollection).
		Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	result := []model.Review{}
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

//------------------------------------------
//------------------------------------------

func (r *ReviewRepository) UpdateUserMovieReview(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID, rating int, message string) (*model.Review, error) {
	return r.updateOne(ctx, bson.M{"user": userId, "movie": movieId}, rating, message)
}

func (r *ReviewRepository) UpdateUserReviewById(ctx context.Context, userId primitive.ObjectID, reviewId primitive.ObjectID, rating int, message string) (*model.Review, error) {
	return r.updateOne(ctx, bson.M{"_id": reviewId, "user": userId}, rating, message)
}

func (r *ReviewRepository) updateOne(ctx context.Context, filter bson.M, rating int, message string) (*model.Review, error) {
	update := bson.M{
		"$set": bson.M{
			"rating":    rating,
			"message":   message,
			"updatedAt": time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var result model.Review
	err := r.mongodb.
		Collection(ReviewsCollection).
		FindOneAndUpdate(ctx, filter, update, opts).
		Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *ReviewRepository) DeleteUserMovieReview(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) (*model.Review, error) {
	return r.deleteOne(ctx, bson.M{"user": userId, "movie": movieId})
}

func (r *ReviewRepository) DeleteUserReviewById(ctx context.Context, userId primitive.ObjectID, reviewId primitive.ObjectID) (*model.Review, error) {
	return r.deleteOne(ctx, bson.M{"_id": reviewId, "user": userId})
}

func (r *ReviewRepository) deleteOne(ctx context.Context, filter bson.M) (*model.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var result model.Review
	err := r.mongodb.
		Collection(ReviewsCollection).
		FindOneAndDelete(ctx, filter).
		Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

//------------------------------------------
//------------------------------------------

func (r *ReviewRepository) CountMovieReviews(ctx context.Context, movieId primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.mongodb.
		Collection(ReviewsCollection).
		CountDocuments(ctx, bson.M{"movie": movieId})
}

func (r *ReviewRepository) DeleteUserReviews(ctx context.Context, userId primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := r.mongodb.
		Collection(ReviewsCollection).
		DeleteMany(ctx, bson.M{"user": userId})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
