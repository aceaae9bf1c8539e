package services

import (
	"fmt"

	"github.com/truethari/SocialMedia-API/app/models"
	"github.com/truethari/SocialMedia-API/app/repositories"
)

// PostService handles business logic for posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	statsRepo   repositories.StatsRepository
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	statsRepo repositories.StatsRepository,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		statsRepo:   statsRepo,
	}
}

// CreatePost validates and stores a new post. The owner must already be set
// from the caller identity, never from client input.
func (s *PostService) CreatePost(post *models.Post) error {
	post.BeforeCreate()
	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.postRepo.Create(post); err != nil {
		return err
	}
	return s.statsRepo.Increment(repositories.StatPostsCreated)
}

// GetPost retrieves a post by ID with its comments
func (s *PostService) GetPost(id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %v", err)
	}
	post.Comments = comments

	return post, nil
}

// ListPosts retrieves a paginated list of posts with their comments
func (s *PostService) ListPosts(page, perPage int) ([]*models.Post, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	posts, err := s.postRepo.List(perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		comments, err := s.commentRepo.ListByPost(post.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get comments for post %d: %v", post.ID, err)
		}
		post.Comments = comments
	}

	return posts, nil
}

// UpdatePost applies a partial update to an already loaded post. The
// existence gate performed the single load; no second fetch happens here.
func (s *PostService) UpdatePost(post *models.Post, upd *models.PostUpdate) error {
	if !upd.HasChanges() {
		return fmt.Errorf("%w: provide a title or body", ErrInvalidInput)
	}

	if err := post.ApplyUpdate(upd); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Comments are a loaded view, not part of the stored record.
	comments := post.Comments
	post.Comments = nil
	err := s.postRepo.Update(post)
	post.Comments = comments
	if err != nil {
		return err
	}

	return s.statsRepo.Increment(repositories.StatPostsUpdated)
}

// DeletePost deletes an already loaded post and all its comments
func (s *PostService) DeletePost(post *models.Post) error {
	comments, err := s.commentRepo.ListByPost(post.ID)
	if err != nil {
		return fmt.Errorf("failed to get comments: %v", err)
	}

	for _, comment := range comments {
		if err := s.commentRepo.Delete(comment.ID); err != nil {
			return fmt.Errorf("failed to delete comment %d: %v", comment.ID, err)
		}
	}

	if err := s.postRepo.Delete(post.ID); err != nil {
		return err
	}
	return s.statsRepo.Increment(repositories.StatPostsDeleted)
}
