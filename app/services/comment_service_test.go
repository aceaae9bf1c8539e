package services

import (
	"testing"

	"github.com/truethari/SocialMedia-API/app/models"
	"github.com/truethari/SocialMedia-API/app/repositories"
	"github.com/truethari/SocialMedia-API/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService(t *testing.T) {
	commentRepo := mock.NewCommentRepository()
	statsRepo := mock.NewStatsRepository()
	service := NewCommentService(commentRepo, statsRepo)

	t.Run("create comment", func(t *testing.T) {
		comment := &models.Comment{
			PostID: 1,
			UserID: 7,
			Body:   "Nice post",
		}

		err := service.CreateComment(comment)
		assert.NoError(t, err)
		assert.Equal(t, 1, comment.ID)
		assert.False(t, comment.CreatedAt.IsZero())
	})

	t.Run("get comment", func(t *testing.T) {
		comment, err := service.GetComment(1)
		assert.NoError(t, err)
		assert.Equal(t, "Nice post", comment.Body)
		assert.Equal(t, 7, comment.UserID)
	})

	t.Run("list by post", func(t *testing.T) {
		other := &models.Comment{PostID: 2, UserID: 7, Body: "Other thread"}
		require.NoError(t, service.CreateComment(other))

		comments, err := service.ListPostComments(1)
		assert.NoError(t, err)
		assert.Len(t, comments, 1)
		assert.Equal(t, 1, comments[0].PostID)
	})

	t.Run("update comment partially", func(t *testing.T) {
		comment, err := service.GetComment(1)
		require.NoError(t, err)

		body := "Edited comment"
		err = service.UpdateComment(comment, &models.CommentUpdate{Body: &body})
		assert.NoError(t, err)

		updated, err := service.GetComment(1)
		assert.NoError(t, err)
		assert.Equal(t, "Edited comment", updated.Body)
		assert.Equal(t, 7, updated.UserID)
	})

	t.Run("update without changes", func(t *testing.T) {
		comment, err := service.GetComment(1)
		require.NoError(t, err)

		err = service.UpdateComment(comment, &models.CommentUpdate{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("update to empty body", func(t *testing.T) {
		comment, err := service.GetComment(1)
		require.NoError(t, err)

		empty := ""
		err = service.UpdateComment(comment, &models.CommentUpdate{Body: &empty})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("delete comment", func(t *testing.T) {
		comment, err := service.GetComment(1)
		require.NoError(t, err)

		err = service.DeleteComment(comment)
		assert.NoError(t, err)

		_, err = service.GetComment(1)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("stats counters", func(t *testing.T) {
		snapshot, err := statsRepo.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, 2, snapshot[repositories.StatCommentsCreated])
		assert.Equal(t, 1, snapshot[repositories.StatCommentsUpdated])
		assert.Equal(t, 1, snapshot[repositories.StatCommentsDeleted])
	})
}
