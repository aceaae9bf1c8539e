package services

import (
	"fmt"

	"github.com/truethari/SocialMedia-API/app/models"
	"github.com/truethari/SocialMedia-API/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	statsRepo   repositories.StatsRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, statsRepo repositories.StatsRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		statsRepo:   statsRepo,
	}
}

// CreateComment validates and stores a new comment. The parent post was
// confirmed by the existence gate and the owner set from the caller
// identity before this is called.
func (s *CommentService) CreateComment(comment *models.Comment) error {
	comment.BeforeCreate()
	if err := comment.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return err
	}
	return s.statsRepo.Increment(repositories.StatCommentsCreated)
}

// GetComment retrieves a comment by ID
func (s *CommentService) GetComment(id int) (*models.Comment, error) {
	return s.commentRepo.GetByID(id)
}

// ListPostComments retrieves all comments for a post
func (s *CommentService) ListPostComments(postID int) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(postID)
}

// UpdateComment applies a partial update to an already loaded comment
func (s *CommentService) UpdateComment(comment *models.Comment, upd *models.CommentUpdate) error {
	if !upd.HasChanges() {
		return fmt.Errorf("%w: provide a body", ErrInvalidInput)
	}

	if err := comment.ApplyUpdate(upd); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := comment.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.commentRepo.Update(comment); err != nil {
		return err
	}
	return s.statsRepo.Increment(repositories.StatCommentsUpdated)
}

// DeleteComment deletes an already loaded comment
func (s *CommentService) DeleteComment(comment *models.Comment) error {
	if err := s.commentRepo.Delete(comment.ID); err != nil {
		return err
	}
	return s.statsRepo.Increment(repositories.StatCommentsDeleted)
}
