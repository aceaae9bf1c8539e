package services

import (
	"testing"

	"github.com/truethari/SocialMedia-API/app/models"
	"github.com/truethari/SocialMedia-API/app/repositories"
	"github.com/truethari/SocialMedia-API/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService(t *testing.T) {
	userRepo := mock.NewUserRepository()
	postRepo := mock.NewPostRepository()
	commentRepo := mock.NewCommentRepository()
	statsRepo := mock.NewStatsRepository()
	service := NewUserService(userRepo, postRepo, commentRepo, statsRepo)

	t.Run("create user hashes password", func(t *testing.T) {
		user := &models.User{
			FName:    "Alice",
			LName:    "Smith",
			Email:    "alice@example.com",
			Password: "secret123",
		}

		err := service.CreateUser(user)
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.NotEqual(t, "secret123", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		user := &models.User{
			FName:    "Alicia",
			LName:    "Smith",
			Email:    "alice@example.com",
			Password: "another1",
		}
		err := service.CreateUser(user)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("short password", func(t *testing.T) {
		user := &models.User{
			FName:    "Bob",
			LName:    "Jones",
			Email:    "bob@example.com",
			Password: "abc",
		}
		err := service.CreateUser(user)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid email", func(t *testing.T) {
		user := &models.User{
			FName:    "Bob",
			LName:    "Jones",
			Email:    "not-an-email",
			Password: "secret123",
		}
		err := service.CreateUser(user)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("update user partially", func(t *testing.T) {
		user, err := service.GetUser(1)
		require.NoError(t, err)

		fName := "Alicia"
		err = service.UpdateUser(user, &models.UserUpdate{FName: &fName})
		assert.NoError(t, err)

		updated, err := service.GetUser(1)
		assert.NoError(t, err)
		assert.Equal(t, "Alicia", updated.FName)
		assert.Equal(t, "alice@example.com", updated.Email)
	})

	t.Run("update to taken email", func(t *testing.T) {
		other := &models.User{
			FName:    "Carol",
			LName:    "White",
			Email:    "carol@example.com",
			Password: "secret123",
		}
		require.NoError(t, service.CreateUser(other))

		email := "alice@example.com"
		err := service.UpdateUser(other, &models.UserUpdate{Email: &email})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("update without changes", func(t *testing.T) {
		user, err := service.GetUser(1)
		require.NoError(t, err)

		err = service.UpdateUser(user, &models.UserUpdate{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("delete blocked by owned posts", func(t *testing.T) {
		user, err := service.GetUser(1)
		require.NoError(t, err)

		post := &models.Post{UserID: user.ID, Title: "Held post", Body: "body"}
		require.NoError(t, postRepo.Create(post))

		err = service.DeleteUser(user)
		assert.ErrorIs(t, err, ErrConflict)

		_, err = service.GetUser(user.ID)
		assert.NoError(t, err, "conflicting delete must not remove the user")

		require.NoError(t, postRepo.Delete(post.ID))
	})

	t.Run("delete blocked by owned comments", func(t *testing.T) {
		user, err := service.GetUser(1)
		require.NoError(t, err)

		comment := &models.Comment{PostID: 99, UserID: user.ID, Body: "held comment"}
		require.NoError(t, commentRepo.Create(comment))

		err = service.DeleteUser(user)
		assert.ErrorIs(t, err, ErrConflict)

		require.NoError(t, commentRepo.Delete(comment.ID))
	})

	t.Run("delete user", func(t *testing.T) {
		user, err := service.GetUser(1)
		require.NoError(t, err)

		err = service.DeleteUser(user)
		assert.NoError(t, err)

		_, err = service.GetUser(1)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("list users", func(t *testing.T) {
		users, err := service.ListUsers(1, 10)
		assert.NoError(t, err)
		assert.Len(t, users, 1)
		assert.Equal(t, "carol@example.com", users[0].Email)
	})

	t.Run("stats counters", func(t *testing.T) {
		snapshot, err := statsRepo.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, 2, snapshot[repositories.StatUsersCreated])
		assert.Equal(t, 1, snapshot[repositories.StatUsersUpdated])
		assert.Equal(t, 1, snapshot[repositories.StatUsersDeleted])
	})
}
