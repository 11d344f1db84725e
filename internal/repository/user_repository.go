package repository

import (
	"context"
	"errors"
	"movie_vault/model"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IUserRepository interface {
	GetUserById(ctx context.Context, userId primitive.ObjectID) (*model.User, error)
	GetUserByGithubId(ctx context.Context, githubId string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) (*model.User, error)
	DeleteUser(ctx context.Context, userId primitive.ObjectID) (bool, error)
}

type UserRepository struct {
	mongodb *mongo.Database
}

func NewUserRepository(mongodb *mongo.Database) *UserRepository {
	return &UserRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) GetUserById(ctx context.Context, userId primitive.ObjectID) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": userId})
}

func (r *UserRepository) GetUserByGithubId(ctx context.Context, githubId string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"githubId": githubId})
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result model.User
	err := r.mongodb.
		Collection(UsersCollection).
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

//------------------------------------------
//------------------------------------------

func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now().UTC()
	user.Id = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.mongodb.
		Collection(UsersCollection).
		InsertOne(ctx, user)
	if err != nil {
		return nil, userWriteError(err)
	}
	return user, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	user.UpdatedAt = time.Now().UTC()
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var result model.User
	err := r.mongodb.
		Collection(UsersCollection).
		FindOneAndReplace(ctx, bson.M{"_id": user.Id}, user, opts).
		Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, userWriteError(err)
	}
	return &result, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, userId primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := r.mongodb.
		Collection(UsersCollection).
		DeleteOne(ctx, bson.M{"_id": userId})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// userWriteError tells an email collision apart from a githubId collision by the
// index name reported in the duplicate key message.
func userWriteError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return err
	}
	if strings.Contains(err.Error(), "email") {
		return model.ErrEmailAlreadyExist
	}
	return model.ErrUserAlreadyExist
}
