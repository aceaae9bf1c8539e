package repositories

import "github.com/truethari/SocialMedia-API/app/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List(limit, offset int) ([]*models.User, error)
	Update(user *models.User) error
	Delete(id int) error
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List(limit, offset int) ([]*models.Post, error)
	ListByUser(userID int) ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id int) (*models.Comment, error)
	ListByPost(postID int) ([]*models.Comment, error)
	ListByUser(userID int) ([]*models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id int) error
}

// StatsRepository tracks operation counters for the stats endpoint
type StatsRepository interface {
	Increment(counter string) error
	Snapshot() (map[string]int, error)
}
