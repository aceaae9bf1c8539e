package models

import (
	"errors"
	"time"
)

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	return validate.Struct(u)
}

// BeforeCreate sets up any necessary fields before creation
func (u *User) BeforeCreate() {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
}

// Sanitize clears the password hash so the user can be serialized into a
// response.
func (u *User) Sanitize() *User {
	u.Password = ""
	return u
}

// ApplyUpdate copies the fields present in the update onto the user.
// Nil fields are left unchanged.
func (u *User) ApplyUpdate(upd *UserUpdate) error {
	if upd == nil {
		return errors.New("update cannot be nil")
	}
	if upd.FName != nil {
		u.FName = *upd.FName
	}
	if upd.LName != nil {
		u.LName = *upd.LName
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	return nil
}

// HasChanges reports whether the update carries at least one field.
func (upd *UserUpdate) HasChanges() bool {
	return upd != nil && (upd.FName != nil || upd.LName != nil || upd.Email != nil)
}
