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

type IUserMovieRepository interface {
	AddUserMovie(ctx context.Context, userMovie *model.UserMovie) (*model.UserMovie, error)
	GetUserMovie(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) (*model.UserMovie, error)
	GetUserMovies(ctx context.Context, userId primitive.ObjectID, filter model.CollectionFilter) ([]model.CollectionMovie, error)
	UpdateUserMovieStatus(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID, status model.WatchStatus) (*model.UserMovie, error)
	DeleteUserMovie(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) (bool, error)
	DeleteUserMovies(ctx context.Context, userId primitive.ObjectID) (int64, error)
	DeleteMovieEntries(ctx context.Context, movieId primitive.ObjectID) (int64, error)
}

type UserMovieRepository struct {
	mongodb *mongo.Database
}

func NewUserMovieRepository(mongodb *mongo.Database) *UserMovieRepository {
	return &UserMovieRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

type userMovieWithMovie struct {
	model.UserMovie `bson:",inline"`
	MovieDoc        model.Movie `bson:"movieDoc"`
}

//------------------------------------------
//------------------------------------------

func (r *UserMovieRepository) AddUserMovie(ctx context.Context, userMovie *model.UserMovie) (*model.UserMovie, error) {
	now := time.Now().UTC()
	userMovie.Id = primitive.NewObjectID()
	userMovie.CreatedAt = now
	userMovie.UpdatedAt = now
	if userMovie.Status == "" {
		userMovie.Status = model.StatusPlannedToWatch
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.mongodb.
		Collection(UserMoviesCollection).
		InsertOne(ctx, userMovie)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, model.ErrUserMovieAlreadyExist
		}
		return nil, err
	}
	return userMovie, nil
}

func (r *UserMovieRepository) GetUserMovie(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) (*model.UserMovie, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result model.UserMovie
	err := r.mongodb.
		Collection(UserMoviesCollection).
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

func (r *UserMovieRepository) GetUserMovies(ctx context.Context, userId primitive.ObjectID, filter model.CollectionFilter) ([]model.CollectionMovie, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cursor, err := r.mongodb.
		Collection(UserMoviesCollection).
		Aggregate(ctx, buildCollectionPipeline(userId, filter))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []userMovieWithMovie
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	result := make([]model.CollectionMovie, 0, len(rows))
	for i := range rows {
		result = append(result, model.NewCollectionMovie(&rows[i].UserMovie, &rows[i].MovieDoc))
	}
	return result, nil
}

func (r *UserMovieRepository) UpdateUserMovieStatus(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID, status model.WatchStatus) (*model.UserMovie, error) {
	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var result model.UserMovie
	err := r.mongodb.
		Collection(UserMoviesCollection).
		FindOneAndUpdate(ctx, bson.M{"user": userId, "movie": movieId}, update, opts).
		Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *UserMovieRepository) DeleteUserMovie(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := r.mongodb.
		Collection(UserMoviesCollection).
		DeleteOne(ctx, bson.M{"user": userId, "movie": movieId})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *UserMovieRepository) DeleteUserMovies(ctx context.Context, userId primitive.ObjectID) (int64, error) {
	return r.deleteMany(ctx, bson.M{"user": userId})
}

func (r *UserMovieRepository) DeleteMovieEntries(ctx context.Context, movieId primitive.ObjectID) (int64, error) {
	return r.deleteMany(ctx, bson.M{"movie": movieId})
}

func (r *UserMovieRepository) deleteMany(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := r.mongodb.
		Collection(UserMoviesCollection).
		DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

//------------------------------------------
//------------------------------------------

// buildCollectionPipeline matches the user's entries (and status) first, joins the
// catalog movie and then applies the movie side filters. Entries whose movie no longer
// exists are dropped by the unwind.
func buildCollectionPipeline(userId primitive.ObjectID, filter model.CollectionFilter) mongo.Pipeline {
	entryMatch := bson.D{{"user", userId}}
	if filter.Status != "" {
		entryMatch = append(entryMatch, bson.E{Key: "status", Value: filter.Status})
	}

	movieMatch := bson.D{}
	if filter.Genre != "" {
		movieMatch = append(movieMatch, bson.E{Key: "movieDoc.genre", Value: filter.Genre})
	}
	if filter.Year != 0 {
		movieMatch = append(movieMatch, bson.E{Key: "movieDoc.year", Value: filter.Year})
	}
	if filter.Title != "" {
		movieMatch = append(movieMatch, bson.E{Key: "movieDoc.title", Value: model.TitleRegex(filter.Title)})
	}

	pipeline := mongo.Pipeline{
		{{"$match", entryMatch}},
		{
			{"$lookup",
				bson.D{
					{"from", MoviesCollection},
					{"localField", "movie"},
					{"foreignField", "_id"},
					{"as", "movieDoc"},
				},
			},
		},
		{
			{"$unwind",
				bson.D{
					{"path", "$movieDoc"},
					{"preserveNullAndEmptyArrays", false},
				},
			},
		},
	}
	if len(movieMatch) > 0 {
		pipeline = append(pipeline, bson.D{{"$match", movieMatch}})
	}
	pipeline = append(pipeline, bson.D{{"$sort", bson.D{{"createdAt", -1}, {"_id", -1}}}})

	return pipeline
}
