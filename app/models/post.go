package models

import (
	"errors"
	"time"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	return validate.Struct(p)
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
}

// ApplyUpdate copies the fields present in the update onto the post.
// Nil fields are left unchanged; the owner and creation time are never
// touched.
func (p *Post) ApplyUpdate(upd *PostUpdate) error {
	if upd == nil {
		return errors.New("update cannot be nil")
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Body != nil {
		p.Body = *upd.Body
	}
	return nil
}

// HasChanges reports whether the update carries at least one field.
func (upd *PostUpdate) HasChanges() bool {
	return upd != nil && (upd.Title != nil || upd.Body != nil)
}
