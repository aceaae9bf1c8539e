package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/truethari/SocialMedia-API/app/models"
	"github.com/truethari/SocialMedia-API/app/repositories"

	"github.com/gorilla/mux"
)

// PostGetter loads a post by ID.
type PostGetter interface {
	GetPost(id int) (*models.Post, error)
}

// CommentGetter loads a comment by ID.
type CommentGetter interface {
	GetComment(id int) (*models.Comment, error)
}

// UserGetter loads a user by ID.
type UserGetter interface {
	GetUser(id int) (*models.User, error)
}

// LoadPost resolves the {id} route variable to a stored post and puts it on
// the request context. The handler behind the gate works with this single
// load; it never fetches the post again.
func LoadPost(posts PostGetter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := routeID(r)
			if !ok {
				jsonError(w, http.StatusNotFound, "post not found")
				return
			}

			post, err := posts.GetPost(id)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					jsonError(w, http.StatusNotFound, "post not found")
					return
				}
				jsonError(w, http.StatusInternalServerError, "something went wrong")
				return
			}

			ctx := WithPost(r.Context(), post)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoadComment resolves the {id} route variable to a stored comment.
func LoadComment(comments CommentGetter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := routeID(r)
			if !ok {
				jsonError(w, http.StatusNotFound, "comment not found")
				return
			}

			comment, err := comments.GetComment(id)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					jsonError(w, http.StatusNotFound, "comment not found")
					return
				}
				jsonError(w, http.StatusInternalServerError, "something went wrong")
				return
			}

			ctx := WithComment(r.Context(), comment)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoadUser resolves the {id} route variable to a stored user.
func LoadUser(users UserGetter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := routeID(r)
			if !ok {
				jsonError(w, http.StatusNotFound, "user not found")
				return
			}

			user, err := users.GetUser(id)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					jsonError(w, http.StatusNotFound, "user not found")
					return
				}
				jsonError(w, http.StatusInternalServerError, "something went wrong")
				return
			}

			ctx := WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePostOwner rejects callers that do not own the loaded post. The gate
// fails closed: a missing caller reads as unauthenticated and a missing post
// as not found, never as permission granted.
func RequirePostOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := CallerID(r.Context())
		if !ok {
			jsonError(w, http.StatusUnauthorized, "no token provided")
			return
		}

		post, ok := PostFromContext(r.Context())
		if !ok {
			jsonError(w, http.StatusNotFound, "post not found")
			return
		}

		if post.UserID != callerID {
			jsonError(w, http.StatusForbidden, "you do not own this post")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireCommentOwner rejects callers that do not own the loaded comment.
func RequireCommentOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := CallerID(r.Context())
		if !ok {
			jsonError(w, http.StatusUnauthorized, "no token provided")
			return
		}

		comment, ok := CommentFromContext(r.Context())
		if !ok {
			jsonError(w, http.StatusNotFound, "comment not found")
			return
		}

		if comment.UserID != callerID {
			jsonError(w, http.StatusForbidden, "you do not own this comment")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSelf rejects callers trying to act on another user's account.
func RequireSelf(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := CallerID(r.Context())
		if !ok {
			jsonError(w, http.StatusUnauthorized, "no token provided")
			return
		}

		user, ok := UserFromContext(r.Context())
		if !ok {
			jsonError(w, http.StatusNotFound, "user not found")
			return
		}

		if user.ID != callerID {
			jsonError(w, http.StatusForbidden, "you can only modify your own account")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithPost returns a context carrying a loaded post.
func WithPost(ctx context.Context, post *models.Post) context.Context {
	return context.WithValue(ctx, postKey, post)
}

// WithComment returns a context carrying a loaded comment.
func WithComment(ctx context.Context, comment *models.Comment) context.Context {
	return context.WithValue(ctx, commentKey, comment)
}

// WithUser returns a context carrying a loaded user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// PostFromContext returns the post loaded by LoadPost.
func PostFromContext(ctx context.Context) (*models.Post, bool) {
	post, ok := ctx.Value(postKey).(*models.Post)
	return post, ok
}

// CommentFromContext returns the comment loaded by LoadComment.
func CommentFromContext(ctx context.Context) (*models.Comment, bool) {
	comment, ok := ctx.Value(commentKey).(*models.Comment)
	return comment, ok
}

// UserFromContext returns the user loaded by LoadUser.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

func routeID(r *http.Request) (int, bool) {
	raw, ok := mux.Vars(r)["id"]
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
