package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/truethari/SocialMedia-API/app/middleware"
	"github.com/truethari/SocialMedia-API/app/models"
	"github.com/truethari/SocialMedia-API/app/repositories/mock"
	"github.com/truethari/SocialMedia-API/app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostTestEnv() (*PostController, *mock.PostRepository, *mock.CommentRepository) {
	postRepo := mock.NewPostRepository()
	commentRepo := mock.NewCommentRepository()
	statsRepo := mock.NewStatsRepository()
	service := services.NewPostService(postRepo, commentRepo, statsRepo)
	return NewPostController(service), postRepo, commentRepo
}

func TestPostControllerCreate(t *testing.T) {
	t.Run("author comes from the caller", func(t *testing.T) {
		controller, postRepo, _ := newPostTestEnv()

		body := `{"title":"My Post","body":"hello world","userId":999}`
		req := httptest.NewRequest("POST", "/api/posts", strings.NewReader(body))
		req = req.WithContext(middleware.WithCaller(req.Context(), 7))
		w := httptest.NewRecorder()

		controller.Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var created models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, 7, created.UserID, "spoofed userId must be discarded")

		stored, err := postRepo.GetByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, 7, stored.UserID)
	})

	t.Run("missing caller", func(t *testing.T) {
		controller, _, _ := newPostTestEnv()

		req := httptest.NewRequest("POST", "/api/posts", strings.NewReader(`{"title":"x","body":"y"}`))
		w := httptest.NewRecorder()

		controller.Create(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		controller, _, _ := newPostTestEnv()

		req := httptest.NewRequest("POST", "/api/posts", strings.NewReader(`{not json`))
		req = req.WithContext(middleware.WithCaller(req.Context(), 7))
		w := httptest.NewRecorder()

		controller.Create(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		controller, _, _ := newPostTestEnv()

		req := httptest.NewRequest("POST", "/api/posts", strings.NewReader(`{"title":"","body":"y"}`))
		req = req.WithContext(middleware.WithCaller(req.Context(), 7))
		w := httptest.NewRecorder()

		controller.Create(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPostControllerUpdate(t *testing.T) {
	controller, postRepo, _ := newPostTestEnv()

	post := &models.Post{UserID: 7, Title: "Original", Body: "original body"}
	require.NoError(t, postRepo.Create(post))

	t.Run("partial update keeps other fields", func(t *testing.T) {
		loaded, err := postRepo.GetByID(post.ID)
		require.NoError(t, err)

		req := httptest.NewRequest("PUT", "/api/posts/1", strings.NewReader(`{"title":"Renamed"}`))
		req = req.WithContext(middleware.WithPost(req.Context(), loaded))
		w := httptest.NewRecorder()

		controller.Update(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		stored, err := postRepo.GetByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", stored.Title)
		assert.Equal(t, "original body", stored.Body)
	})

	t.Run("empty update rejected", func(t *testing.T) {
		loaded, err := postRepo.GetByID(post.ID)
		require.NoError(t, err)

		req := httptest.NewRequest("PUT", "/api/posts/1", strings.NewReader(`{}`))
		req = req.WithContext(middleware.WithPost(req.Context(), loaded))
		w := httptest.NewRecorder()

		controller.Update(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing gate context", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/api/posts/1", strings.NewReader(`{"title":"x"}`))
		w := httptest.NewRecorder()

		controller.Update(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPostControllerDelete(t *testing.T) {
	controller, postRepo, commentRepo := newPostTestEnv()

	post := &models.Post{UserID: 7, Title: "Doomed", Body: "to be removed"}
	require.NoError(t, postRepo.Create(post))
	comment := &models.Comment{PostID: post.ID, UserID: 8, Body: "attached"}
	require.NoError(t, commentRepo.Create(comment))

	loaded, err := postRepo.GetByID(post.ID)
	require.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/api/posts/1", nil)
	req = req.WithContext(middleware.WithPost(req.Context(), loaded))
	w := httptest.NewRecorder()

	controller.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)

	_, err = postRepo.GetByID(post.ID)
	assert.Error(t, err)

	comments, err := commentRepo.ListByPost(post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestPostControllerIndex(t *testing.T) {
	controller, postRepo, _ := newPostTestEnv()

	for i := 0; i < 3; i++ {
		require.NoError(t, postRepo.Create(&models.Post{UserID: 1, Title: "Post", Body: "body"}))
	}

	req := httptest.NewRequest("GET", "/api/posts?page=1&per_page=2", nil)
	w := httptest.NewRecorder()

	controller.Index(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Posts []*models.Post `json:"posts"`
		Page  int            `json:"page"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Posts, 2)
	assert.Equal(t, 1, resp.Page)
}
