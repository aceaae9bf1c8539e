package models

import "time"

// User represents a registered account. Password holds the bcrypt hash;
// controllers call Sanitize before serializing a user into a response.
type User struct {
	ID        int       `json:"id" validate:"gte=0"`
	FName     string    `json:"fName" validate:"required,min=3,max=50"`
	LName     string    `json:"lName,omitempty" validate:"max=50"`
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"password,omitempty" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post represents a post owned by a user.
type Post struct {
	ID        int        `json:"id" validate:"gte=0"`
	UserID    int        `json:"userId" validate:"gte=0"`
	Title     string     `json:"title" validate:"required,min=3,max=100"`
	Body      string     `json:"body" validate:"required,min=1"`
	CreatedAt time.Time  `json:"createdAt"`
	Comments  []*Comment `json:"comments,omitempty" validate:"-"`
}

// Comment represents a comment on a post, owned by the user who wrote it.
type Comment struct {
	ID        int       `json:"id" validate:"gte=0"`
	PostID    int       `json:"postId" validate:"gte=0"`
	UserID    int       `json:"userId" validate:"gte=0"`
	Body      string    `json:"body" validate:"required,min=1,max=1000"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserUpdate carries a partial user update. A nil field leaves the stored
// value unchanged.
type UserUpdate struct {
	FName *string `json:"fName"`
	LName *string `json:"lName"`
	Email *string `json:"email"`
}

// PostUpdate carries a partial post update.
type PostUpdate struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

// CommentUpdate carries a partial comment update.
type CommentUpdate struct {
	Body *string `json:"body"`
}
