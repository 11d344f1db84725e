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

type IMovieRepository interface {
	CreateMovie(ctx context.Context, movie *model.Movie) (*model.Movie, error)
	GetMovieById(ctx context.Context, movieId primitive.ObjectID) (*model.Movie, error)
	FindMovieByTitleYear(ctx context.Context, title string, year int) (*model.Movie, error)
	GetMovies(ctx context.Context, filter model.MovieFilter) ([]model.Movie, error)
	UpdateMovie(ctx context.Context, movie *model.Movie) (*model.Movie, error)
	DeleteMovie(ctx context.Context, movieId primitive.ObjectID) (bool, error)
}

type MovieRepository struct {
	mongodb *mongo.Database
}

func NewMovieRepository(mongodb *mongo.Database) *MovieRepository {
	return &MovieRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

func (m *MovieRepository) CreateMovie(ctx context.Context, movie *model.Movie) (*model.Movie, error) {
	now := time.Now().UTC()
	movie.Id = primitive.NewObjectID()
	movie.CreatedAt = now
	movie.UpdatedAt = now

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := m.mongodb.
		Collection(MoviesCollection).
		InsertOne(ctx, movie)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, model.ErrMovieAlreadyExist
		}
		return nil, err
	}
	return movie, nil
}

func (m *MovieRepository) GetMovieById(ctx context.Context, movieId primitive.ObjectID) (*model.Movie, error) {
	return m.findOne(ctx, bson.M{"_id": movieId})
}

func (m *MovieRepository) FindMovieByTitleYear(ctx context.Context, title string, year int) (*model.Movie, error) {
	return m.findOne(ctx, bson.M{"title": title, "year": year})
}

func (m *MovieRepository) findOne(ctx context.Context, filter bson.M) (*model.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result model.Movie
	err := m.mongodb.
		Collection(MoviesCollection).
		FindOne(ctx, filter).
		Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (m *MovieRepository) GetMovies(ctx context.Context, filter model.MovieFilter) ([]model.Movie, error) {
	opts := options.Find().SetSort(bson.D{{"title", 1}, {"year", 1}})

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	cursor, err := m.mongodb.
		Collection(MoviesCollection).
		Find(ctx, buildMovieFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	result := []model.Movie{}
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (m *MovieRepository) UpdateMovie(ctx context.Context, movie *model.Movie) (*model.Movie, error) {
	movie.UpdatedAt = time.Now().UTC()
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var result model.Movie
	err := m.mongodb.
		Collection(MoviesCollection).
		FindOneAndReplace(ctx, bson.M{"_id": movie.Id}, movie, opts).
		Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, model.ErrMovieAlreadyExist
		}
		return nil, err
	}
	return &result, nil
}

func (m *MovieRepository) DeleteMovie(ctx context.Context, movieId primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := m.mongodb.
		Collection(MoviesCollection).
		DeleteOne(ctx, bson.M{"_id": movieId})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

//------------------------------------------
//------------------------------------------

func buildMovieFilter(filter model.MovieFilter) bson.M {
	query := bson.M{}
	if filter.Genre != "" {
		query["genre"] = filter.Genre
	}
	if filter.Year != 0 {
		query["year"] = filter.Year
	}
	if filter.Director != "" {
		query["director"] = filter.Director
	}
	if filter.Title != "" {
		query["title"] = model.TitleRegex(filter.Title)
	}
	return query
}
