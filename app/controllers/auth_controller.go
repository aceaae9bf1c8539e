package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/truethari/SocialMedia-API/app/middleware"
	"github.com/truethari/SocialMedia-API/app/services"
)

// AuthController handles signin and identity requests
type AuthController struct {
	authService *services.AuthService
	userService *services.UserService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, userService *services.UserService) *AuthController {
	return &AuthController{
		authService: authService,
		userService: userService,
	}
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signin verifies credentials and issues a token
func (ac *AuthController) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	token, user, err := ac.authService.Login(req.Email, req.Password)
	if err != nil {
		mapError(w, err)
		return
	}

	w.Header().Set("X-Auth-Token", token)
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"msg":   "login successful",
		"token": token,
		"user":  user.Sanitize(),
	})
}

// Me returns the account of the authenticated caller
func (ac *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	user, err := ac.userService.GetUser(callerID)
	if err != nil {
		mapError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, user.Sanitize())
}
