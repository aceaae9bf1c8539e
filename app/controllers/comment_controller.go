package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/truethari/SocialMedia-API/app/middleware"
	"github.com/truethari/SocialMedia-API/app/models"
	"github.com/truethari/SocialMedia-API/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// IndexByPost lists the comments of the gate-loaded post
func (cc *CommentController) IndexByPost(w http.ResponseWriter, r *http.Request) {
	post, ok := middleware.PostFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusNotFound, "post not found")
		return
	}

	comments, err := cc.commentService.ListPostComments(post.ID)
	if err != nil {
		mapError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"comments": comments,
	})
}

// Create adds a comment to the gate-loaded post. The author is always the
// authenticated caller; a userId in the payload is discarded.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	post, ok := middleware.PostFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusNotFound, "post not found")
		return
	}

	var comment models.Comment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	comment.ID = 0
	comment.PostID = post.ID
	comment.UserID = callerID

	if err := cc.commentService.CreateComment(&comment); err != nil {
		mapError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, comment)
}

// Show returns the comment resolved by the existence gate
func (cc *CommentController) Show(w http.ResponseWriter, r *http.Request) {
	comment, ok := middleware.CommentFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusNotFound, "comment not found")
		return
	}
	sendJSON(w, http.StatusOK, comment)
}

// Update applies a partial update to the gate-loaded comment
func (cc *CommentController) Update(w http.ResponseWriter, r *http.Request) {
	comment, ok := middleware.CommentFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusNotFound, "comment not found")
		return
	}

	var upd models.CommentUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := cc.commentService.UpdateComment(comment, &upd); err != nil {
		mapError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, comment)
}

// Delete removes the gate-loaded comment
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	comment, ok := middleware.CommentFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusNotFound, "comment not found")
		return
	}

	if err := cc.commentService.DeleteComment(comment); err != nil {
		mapError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
