package repository

import (
	"context"
	"movie_vault/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func duplicateKeyResponse(index string) bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{
		Index:   0,
		Code:    11000,
		Message: "E11000 duplicate key error collection: movie_vault index: " + index + " dup key",
	})
}

func TestMovieRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create maps duplicate key to conflict", func(mt *mtest.T) {
		mt.AddMockResponses(duplicateKeyResponse("title_year_unique"))
		repo := NewMovieRepository(mt.DB)

		_, err := repo.CreateMovie(context.Background(), &model.Movie{Title: "Arrival", Year: 2016})
		assert.ErrorIs(mt, err, model.ErrMovieAlreadyExist)
	})

	mt.Run("get missing movie returns nil", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "movie_vault.movies", mtest.FirstBatch))
		repo := NewMovieRepository(mt.DB)

		movie, err := repo.GetMovieById(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Nil(mt, movie)
	})

	mt.Run("get movie decodes document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "movie_vault.movies", mtest.FirstBatch, bson.D{
			{"_id", id},
			{"title", "Arrival"},
			{"year", 2016},
			{"genre", bson.A{"Sci-Fi"}},
		}))
		repo := NewMovieRepository(mt.DB)

		movie, err := repo.GetMovieById(context.Background(), id)
		require.NoError(mt, err)
		require.NotNil(mt, movie)
		assert.Equal(mt, "Arrival", movie.Title)
		assert.Equal(mt, []string{"Sci-Fi"}, movie.Genre)
	})

	mt.Run("delete reports missing movie", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		repo := NewMovieRepository(mt.DB)

		deleted, err := repo.DeleteMovie(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.False(mt, deleted)
	})
}

func TestReviewRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create maps duplicate key to conflict", func(mt *mtest.T) {
		mt.AddMockResponses(duplicateKeyResponse("movie_user_unique"))
		repo := NewReviewRepository(mt.DB)

		_, err := repo.CreateReview(context.Background(), &model.Review{
			Movie:   primitive.NewObjectID(),
			User:    primitive.NewObjectID(),
			Rating:  5,
			Message: "great",
		})
		assert.ErrorIs(mt, err, model.ErrReviewAlreadyExist)
	})

	mt.Run("update of another user's review finds nothing", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{"ok", 1}, {"value", nil}})
		repo := NewReviewRepository(mt.DB)

		review, err := repo.UpdateUserReviewById(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), 3, "ok")
		require.NoError(mt, err)
		assert.Nil(mt, review)
	})

	mt.Run("count movie reviews", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "movie_vault.reviews", mtest.FirstBatch, bson.D{{"n", 2}}))
		repo := NewReviewRepository(mt.DB)

		count, err := repo.CountMovieReviews(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), count)
	})
}

func TestUserMovieRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("add maps duplicate key to conflict", func(mt *mtest.T) {
		mt.AddMockResponses(duplicateKeyResponse("user_movie_unique"))
		repo := NewUserMovieRepository(mt.DB)

		_, err := repo.AddUserMovie(context.Background(), &model.UserMovie{
			User:  primitive.NewObjectID(),
			Movie: primitive.NewObjectID(),
		})
		assert.ErrorIs(mt, err, model.ErrUserMovieAlreadyExist)
	})

	mt.Run("collection rows are merged with their movie", func(mt *mtest.T) {
		userId := primitive.NewObjectID()
		movieId := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "movie_vault.usermovies", mtest.FirstBatch, bson.D{
			{"_id", primitive.NewObjectID()},
			{"user", userId},
			{"movie", movieId},
			{"status", "watching"},
			{"movieDoc", bson.D{
				{"_id", movieId},
				{"title", "Arrival"},
				{"year", 2016},
				{"genre", bson.A{"Sci-Fi"}},
			}},
		}))
		repo := NewUserMovieRepository(mt.DB)

		movies, err := repo.GetUserMovies(context.Background(), userId, model.CollectionFilter{})
		require.NoError(mt, err)
		require.Len(mt, movies, 1)
		assert.Equal(mt, movieId, movies[0].MovieId)
		assert.Equal(mt, "Arrival", movies[0].Title)
		assert.Equal(mt, model.StatusWatching, movies[0].Status)
	})
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("email collision", func(mt *mtest.T) {
		mt.AddMockResponses(duplicateKeyResponse("email_unique"))
		repo := NewUserRepository(mt.DB)

		_, err := repo.CreateUser(context.Background(), &model.User{GithubId: "1", Name: "a", Email: "a@b.c"})
		assert.ErrorIs(mt, err, model.ErrEmailAlreadyExist)
	})

	mt.Run("githubId collision", func(mt *mtest.T) {
		mt.AddMockResponses(duplicateKeyResponse("githubId_unique"))
		repo := NewUserRepository(mt.DB)

		_, err := repo.CreateUser(context.Background(), &model.User{GithubId: "1", Name: "a"})
		assert.ErrorIs(mt, err, model.ErrUserAlreadyExist)
	})
}
