package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/truethari/SocialMedia-API/app/middleware"
	"github.com/truethari/SocialMedia-API/app/models"
	"github.com/truethari/SocialMedia-API/app/services"
)

// UserController handles HTTP requests for user accounts
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// Signup handles creating a new user account
func (uc *UserController) Signup(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	user.ID = 0

	if err := uc.userService.CreateUser(&user); err != nil {
		mapError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, user.Sanitize())
}

// Index handles listing all users
func (uc *UserController) Index(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r)

	users, err := uc.userService.ListUsers(page, perPage)
	if err != nil {
		mapError(w, err)
		return
	}

	for _, user := range users {
		user.Sanitize()
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
		"page":  page,
	})
}

// Show returns the user resolved by the existence gate
func (uc *UserController) Show(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusNotFound, "user not found")
		return
	}
	sendJSON(w, http.StatusOK, user.Sanitize())
}

// Update applies a partial update to the gate-loaded user
func (uc *UserController) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusNotFound, "user not found")
		return
	}

	var upd models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := uc.userService.UpdateUser(user, &upd); err != nil {
		mapError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, user.Sanitize())
}

// Delete removes the gate-loaded user
func (uc *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusNotFound, "user not found")
		return
	}

	if err := uc.userService.DeleteUser(user); err != nil {
		mapError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
