package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes every store relies on. Creating an
// index that already exists with the same definition is a no-op on the server.
func EnsureIndexes(ctx context.Context, mongodb *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	for collection, models := range indexModels() {
		if _, err := mongodb.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}

func indexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		UsersCollection: {
			{
				Keys:    bson.D{{"githubId", 1}},
				Options: options.Index().SetName("githubId_unique").SetUnique(true),
			},
			{
				Keys: bson.D{{"email", 1}},
				Options: options.Index().
					SetName("email_unique").
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"email": bson.M{"$type": "string"}}),
			},
		},
		MoviesCollection: {
			{
				Keys:    bson.D{{"title", 1}, {"year", 1}},
				Options: options.Index().SetName("title_year_unique").SetUnique(true),
			},
			{
				Keys:    bson.D{{"genre", 1}},
				Options: options.Index().SetName("genre"),
			},
		},
		ReviewsCollection: {
			{
				Keys:    bson.D{{"movie", 1}, {"user", 1}},
				Options: options.Index().SetName("movie_user_unique").SetUnique(true),
			},
			{
				Keys:    bson.D{{"user", 1}, {"createdAt", -1}},
				Options: options.Index().SetName("user_createdAt"),
			},
		},
		UserMoviesCollection: {
			{
				Keys:    bson.D{{"user", 1}, {"movie", 1}},
				Options: options.Index().SetName("user_movie_unique").SetUnique(true),
			},
			{
				Keys:    bson.D{{"movie", 1}},
				Options: options.Index().SetName("movie"),
			},
		},
	}
}
