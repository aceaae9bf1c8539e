package models

import (
	"errors"
	"time"
)

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	return validate.Struct(c)
}

// BeforeCreate sets up any necessary fields before creation
func (c *Comment) BeforeCreate() {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
}

// ApplyUpdate copies the fields present in the update onto the comment.
// Nil fields are left unchanged; the owner and parent post are never
// touched.
func (c *Comment) ApplyUpdate(upd *CommentUpdate) error {
	if upd == nil {
		return errors.New("update cannot be nil")
	}
	if upd.Body != nil {
		c.Body = *upd.Body
	}
	return nil
}

// HasChanges reports whether the update carries at least one field.
func (upd *CommentUpdate) HasChanges() bool {
	return upd != nil && upd.Body != nil
}
