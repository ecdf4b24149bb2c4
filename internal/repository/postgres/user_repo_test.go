package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/chiroyli/salon-backend/internal/domain"
	"github.com/chiroyli/salon-backend/internal/repository/postgres"
	"github.com/chiroyli/salon-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	hash := "$2a$10$examplehash"
	user := &domain.User{
		ID:           domain.NewLocalUserID(time.Now()),
		Email:        "repo@example.com",
		PasswordHash: &hash,
	}

	t.Run("create and get", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, user))

		byID, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, byID.Email)

		byEmail, err := repo.GetByEmail(ctx, "repo@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
	})

	t.Run("missing user yields record not found", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "missing@example.com")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("duplicate email violates the unique index", func(t *testing.T) {
		dup := &domain.User{
			ID:    domain.NewLocalUserID(time.Now()),
			Email: "repo@example.com",
		}
		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("update persists profile changes", func(t *testing.T) {
		name := "Updated"
		user.FirstName = &name
		require.NoError(t, repo.Update(ctx, user))

		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, got.FirstName)
		assert.Equal(t, "Updated", *got.FirstName)
	})
}

func TestSessionRepository(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewSessionRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	newSession := func(expiresAt time.Time) *domain.Session {
		s := &domain.Session{
			ID:        domain.NewSessionID(),
			UserID:    user.ID,
			Claims:    []byte(`{"sub":"` + user.ID + `"}`),
			ExpiresAt: expiresAt,
		}
		require.NoError(t, repo.Create(ctx, s))
		return s
	}

	t.Run("create and get", func(t *testing.T) {
		s := newSession(time.Now().Add(time.Hour))
		got, err := repo.GetByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.UserID)
		assert.JSONEq(t, string(s.Claims), string(got.Claims))
	})

	t.Run("delete", func(t *testing.T) {
		s := newSession(time.Now().Add(time.Hour))
		require.NoError(t, repo.Delete(ctx, s.ID))
		_, err := repo.GetByID(ctx, s.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("delete by user removes all the user's sessions", func(t *testing.T) {
		a := newSession(time.Now().Add(time.Hour))
		b := newSession(time.Now().Add(time.Hour))
		require.NoError(t, repo.DeleteByUserID(ctx, user.ID))

		_, err := repo.GetByID(ctx, a.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		_, err = repo.GetByID(ctx, b.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("delete expired leaves live sessions", func(t *testing.T) {
		stale := newSession(time.Now().Add(-time.Minute))
		live := newSession(time.Now().Add(time.Hour))

		require.NoError(t, repo.DeleteExpired(ctx))

		_, err := repo.GetByID(ctx, stale.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		_, err = repo.GetByID(ctx, live.ID)
		assert.NoError(t, err)
	})
}
