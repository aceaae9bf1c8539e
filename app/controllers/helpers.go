package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/truethari/SocialMedia-API/app/repositories"
	"github.com/truethari/SocialMedia-API/app/services"
)

// Helper functions for consistent response handling

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"msg": msg})
}

// mapError translates service errors to HTTP statuses. Unknown errors stay
// opaque to the client.
func mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrInvalidInput):
		sendError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		sendError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrInvalidToken):
		sendError(w, http.StatusUnauthorized, "invalid token")
	case errors.Is(err, services.ErrEmailTaken):
		sendError(w, http.StatusConflict, "email already exists")
	case errors.Is(err, services.ErrConflict):
		sendError(w, http.StatusConflict, err.Error())
	default:
		sendError(w, http.StatusInternalServerError, "something went wrong")
	}
}

func parsePagination(r *http.Request) (page, perPage int) {
	page = 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	perPage = 10
	if perPageStr := r.URL.Query().Get("per_page"); perPageStr != "" {
		if pp, err := strconv.Atoi(perPageStr); err == nil && pp > 0 && pp <= 100 {
			perPage = pp
		}
	}
	return page, perPage
}
