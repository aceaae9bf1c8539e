package services

import (
	"errors"
	"fmt"

	"github.com/truethari/SocialMedia-API/app/models"
	"github.com/truethari/SocialMedia-API/app/repositories"
)

// UserService handles business logic for user accounts
type UserService struct {
	userRepo    repositories.UserRepository
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	statsRepo   repositories.StatsRepository
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	statsRepo repositories.StatsRepository,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		statsRepo:   statsRepo,
	}
}

// CreateUser validates the user, hashes its plaintext password and stores it
func (s *UserService) CreateUser(user *models.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(user.Password) < 4 {
		return fmt.Errorf("%w: password must be at least 4 characters", ErrInvalidInput)
	}

	hash, err := HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hash

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return err
	}

	return s.statsRepo.Increment(repositories.StatUsersCreated)
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(id int) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// ListUsers retrieves a paginated list of users
func (s *UserService) ListUsers(page, perPage int) ([]*models.User, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	return s.userRepo.List(perPage, (page-1)*perPage)
}

// UpdateUser applies a partial update to an already loaded user. Fields
// absent from the update are left unchanged.
func (s *UserService) UpdateUser(user *models.User, upd *models.UserUpdate) error {
	if !upd.HasChanges() {
		return fmt.Errorf("%w: provide fName, lName or email", ErrInvalidInput)
	}

	if err := user.ApplyUpdate(upd); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return err
	}

	return s.statsRepo.Increment(repositories.StatUsersUpdated)
}

// DeleteUser deletes a user. A user with remaining posts or comments is a
// conflict, never a cascade: those resources belong to the deployment's
// audit trail and must be removed explicitly first.
func (s *UserService) DeleteUser(user *models.User) error {
	posts, err := s.postRepo.ListByUser(user.ID)
	if err != nil {
		return err
	}
	if len(posts) > 0 {
		return fmt.Errorf("%w: user still owns %d post(s)", ErrConflict, len(posts))
	}

	comments, err := s.commentRepo.ListByUser(user.ID)
	if err != nil {
		return err
	}
	if len(comments) > 0 {
		return fmt.Errorf("%w: user still owns %d comment(s)", ErrConflict, len(comments))
	}

	if err := s.userRepo.Delete(user.ID); err != nil {
		return err
	}
	return s.statsRepo.Increment(repositories.StatUsersDeleted)
}
