package service

import (
	"context"
	"errors"
	"movie_vault/internal/repository"
	"movie_vault/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IUserService interface {
	GetUser(ctx context.Context, userId primitive.ObjectID) (*model.User, error)
	LoginWithGithub(ctx context.Context, profile model.GithubProfile) (*model.User, error)
	UpdateProfile(ctx context.Context, userId primitive.ObjectID, req *model.UpdateProfileReq) (*model.User, error)
	DeleteAccount(ctx context.Context, userId primitive.ObjectID) error
}

type UserService struct {
	userRepo      repository.IUserRepository
	reviewRepo    repository.IReviewRepository
	userMovieRepo repository.IUserMovieRepository
	eventService  IEventService
}

func NewUserService(
	userRepo repository.IUserRepository,
	reviewRepo repository.IReviewRepository,
	userMovieRepo repository.IUserMovieRepository,
	eventService IEventService,
) *UserService {
	return &UserService{
		userRepo:      userRepo,
		reviewRepo:    reviewRepo,
		userMovieRepo: userMovieRepo,
		eventService:  eventService,
	}
}

//------------------------------------------
//------------------------------------------

func (s *UserService) GetUser(ctx context.Context, userId primitive.ObjectID) (*model.User, error) {
	user, err := s.userRepo.GetUserById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// LoginWithGithub creates the user on first login and refreshes the profile fields
// afterwards. An email already owned by another account is dropped instead of failing
// the login.
func (s *UserService) LoginWithGithub(ctx context.Context, profile model.GithubProfile) (*model.User, error) {
	user, err := s.userRepo.GetUserByGithubId(ctx, profile.Id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return s.createGithubUser(ctx, profile)
	}

	user.Name = profile.DisplayName()
	user.GithubUsername = profile.Login
	user.AvatarUrl = profile.AvatarUrl
	oldEmail := user.Email
	if profile.Email != "" && profile.Email != user.Email {
		free, err := s.isEmailFree(ctx, profile.Email, user.Id)
		if err != nil {
			return nil, err
		}
		if free {
			user.Email = profile.Email
		}
	}

	updated, err := s.userRepo.UpdateUser(ctx, user)
	if errors.Is(err, model.ErrEmailAlreadyExist) {
		user.Email = oldEmail
		updated, err = s.userRepo.UpdateUser(ctx, user)
	}
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, model.ErrUserNotFound
	}
	return updated, nil
}

func (s *UserService) createGithubUser(ctx context.Context, profile model.GithubProfile) (*model.User, error) {
	user := &model.User{
		GithubId:       profile.Id,
		Name:           profile.DisplayName(),
		GithubUsername: profile.Login,
		AvatarUrl:      profile.AvatarUrl,
	}
	if profile.Email != "" {
		free, err := s.isEmailFree(ctx, profile.Email, primitive.NilObjectID)
		if err != nil {
			return nil, err
		}
		if free {
			user.Email = profile.Email
		}
	}

	created, err := s.userRepo.CreateUser(ctx, user)
	switch {
	case errors.Is(err, model.ErrEmailAlreadyExist):
		user.Email = ""
		return s.userRepo.CreateUser(ctx, user)
	case errors.Is(err, model.ErrUserAlreadyExist):
		// a concurrent login created the same account first
		existing, err := s.userRepo.GetUserByGithubId(ctx, profile.Id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, model.ErrUserAlreadyExist
		}
		return existing, nil
	case err != nil:
		return nil, err
	}
	return created, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userId primitive.ObjectID, req *model.UpdateProfileReq) (*model.User, error) {
	user, err := s.GetUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != user.Email {
		free, err := s.isEmailFree(ctx, *req.Email, user.Id)
		if err != nil {
			return nil, err
		}
		if !free {
			return nil, model.ErrEmailAlreadyExist
		}
		user.Email = *req.Email
	}

	updated, err := s.userRepo.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, model.ErrUserNotFound
	}
	return updated, nil
}

// DeleteAccount removes everything the user owns, and the user itself last.
func (s *UserService) DeleteAccount(ctx context.Context, userId primitive.ObjectID) error {
	user, err := s.userRepo.GetUserById(ctx, userId)
	if err != nil {
		return err
	}
	if user == nil {
		return model.ErrUserNotFound
	}

	if _, err = s.reviewRepo.DeleteUserReviews(ctx, userId); err != nil {
		return err
	}
	if _, err = s.userMovieRepo.DeleteUserMovies(ctx, userId); err != nil {
		return err
	}

	deleted, err := s.userRepo.DeleteUser(ctx, userId)
	if err != nil {
		return err
	}
	if !deleted {
		return model.ErrUserNotFound
	}

	s.eventService.Publish(ctx, model.NewEvent(model.EventUserDeleted, userId, primitive.NilObjectID, primitive.NilObjectID))
	return nil
}

func (s *UserService) isEmailFree(ctx context.Context, email string, ownerId primitive.ObjectID) (bool, error) {
	other, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return other == nil || other.Id == ownerId, nil
}
