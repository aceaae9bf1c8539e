package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/truethari/SocialMedia-API/app/middleware"
	"github.com/truethari/SocialMedia-API/app/models"
	"github.com/truethari/SocialMedia-API/app/services"
)

// PostController handles HTTP requests for posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r)

	posts, err := pc.postService.ListPosts(page, perPage)
	if err != nil {
		mapError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
		"page":  page,
	})
}

// Show returns the post resolved by the existence gate
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, ok := middleware.PostFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusNotFound, "post not found")
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post. The author is always the
// authenticated caller; a userId in the payload is discarded.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	post.ID = 0
	post.UserID = callerID
	post.Comments = nil

	if err := pc.postService.CreatePost(&post); err != nil {
		mapError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, post)
}

// Update applies a partial update to the gate-loaded post
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	post, ok := middleware.PostFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusNotFound, "post not found")
		return
	}

	var upd models.PostUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := pc.postService.UpdatePost(post, &upd); err != nil {
		mapError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, post)
}

// Delete removes the gate-loaded post and its comments
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	post, ok := middleware.PostFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusNotFound, "post not found")
		return
	}

	if err := pc.postService.DeletePost(post); err != nil {
		mapError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
