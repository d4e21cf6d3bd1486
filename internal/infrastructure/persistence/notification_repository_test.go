package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellbeing/backend/internal/domain/notification"
	"github.com/wellbeing/backend/internal/domain/shared"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupNotificationTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&notification.Notification{})
	require.NoError(t, err)

	return db
}

func mustNotification(t *testing.T, userID uuid.UUID, kind notification.Kind, title string) *notification.Notification {
	n, err := notification.New(userID, kind, title, "body")
	require.NoError(t, err)
	return n
}

func TestGormNotificationRepository_SaveAndFind(t *testing.T) {
	db := setupNotificationTestDB(t)
	repo := NewGormNotificationRepository(db)
	ctx := context.Background()

	t.Run("saves and finds notification by ID", func(t *testing.T) {
		userID := uuid.New()
		n := mustNotification(t, userID, notification.KindBriefing, "Morning briefing")

		err := repo.Save(ctx, n)
		require.NoError(t, err)

		found, err := repo.FindByIDForUser(ctx, userID, n.ID)
		require.NoError(t, err)
		assert.Equal(t, n.ID, found.ID)
		assert.Equal(t, notification.KindBriefing, found.Kind)
		assert.Equal(t, "Morning briefing", found.Title)
		assert.False(t, found.Read)
	})

	t.Run("does not expose another user's notification", func(t *testing.T) {
		userID := uuid.New()
		n := mustNotification(t, userID, notification.KindBudgetAlert, "Budget alert")
		require.NoError(t, repo.Save(ctx, n))

		found, err := repo.FindByIDForUser(ctx, uuid.New(), n.ID)
		assert.Nil(t, found)
		assert.Equal(t, shared.ErrNotFound, err)
	})

	t.Run("returns error for non-existent notification", func(t *testing.T) {
		found, err := repo.FindByIDForUser(ctx, uuid.New(), uuid.New())
		assert.Nil(t, found)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormNotificationRepository_FindUnread(t *testing.T) {
	db := setupNotificationTestDB(t)
	repo := NewGormNotificationRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	now := time.Now()

	older := mustNotification(t, userID, notification.KindBriefing, "Older")
	older.CreatedAt = now.Add(-2 * time.Hour)
	newer := mustNotification(t, userID, notification.KindBudgetAlert, "Newer")
	newer.CreatedAt = now.Add(-1 * time.Hour)
	seen := mustNotification(t, userID, notification.KindBurnoutWarning, "Seen")
	seen.CreatedAt = now.Add(-30 * time.Minute)
	seen.MarkRead()

	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))
	require.NoError(t, repo.Save(ctx, seen))

	t.Run("returns unread notifications newest first", func(t *testing.T) {
		unread, err := repo.FindUnread(ctx, userID)
		require.NoError(t, err)
		require.Len(t, unread, 2)
		assert.Equal(t, "Newer", unread[0].Title)
		assert.Equal(t, "Older", unread[1].Title)
	})

	t.Run("marking read removes from unread", func(t *testing.T) {
		newer.MarkRead()
		require.NoError(t, repo.Save(ctx, newer))

		unread, err := repo.FindUnread(ctx, userID)
		require.NoError(t, err)
		require.Len(t, unread, 1)
		assert.Equal(t, "Older", unread[0].Title)
	})

	t.Run("returns empty slice for user with no notifications", func(t *testing.T) {
		unread, err := repo.FindUnread(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, unread)
	})
}

func TestGormNotificationRepository_FindAllForUser(t *testing.T) {
	db := setupNotificationTestDB(t)
	repo := NewGormNotificationRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	briefing := mustNotification(t, userID, notification.KindBriefing, "Briefing")
	alert := mustNotification(t, userID, notification.KindBudgetAlert, "Alert")
	alert.MarkRead()
	require.NoError(t, repo.Save(ctx, briefing))
	require.NoError(t, repo.Save(ctx, alert))

	t.Run("returns all notifications without filters", func(t *testing.T) {
		items, err := repo.FindAllForUser(ctx, userID, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("filters by kind", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["kind"] = string(notification.KindBriefing)

		items, err := repo.FindAllForUser(ctx, userID, filter)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, notification.KindBriefing, items[0].Kind)
	})

	t.Run("filters unread only", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["unread"] = true

		items, err := repo.FindAllForUser(ctx, userID, filter)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Briefing", items[0].Title)
	})
}

func TestGormNotificationRepository_ExistsSince(t *testing.T) {
	db := setupNotificationTestDB(t)
	repo := NewGormNotificationRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	n := mustNotification(t, userID, notification.KindBriefing, "Today's briefing")
	n.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Save(ctx, n))

	t.Run("finds notification created after cutoff", func(t *testing.T) {
		exists, err := repo.ExistsSince(ctx, userID, notification.KindBriefing, time.Now().Add(-2*time.Hour))
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("ignores notifications before cutoff", func(t *testing.T) {
		exists, err := repo.ExistsSince(ctx, userID, notification.KindBriefing, time.Now())
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("ignores other kinds", func(t *testing.T) {
		exists, err := repo.ExistsSince(ctx, userID, notification.KindBurnoutWarning, time.Now().Add(-2*time.Hour))
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestGormNotificationRepository_DeleteForUser(t *testing.T) {
	db := setupNotificationTestDB(t)
	repo := NewGormNotificationRepository(db)
	ctx := context.Background()

	t.Run("deletes owned notification", func(t *testing.T) {
		userID := uuid.New()
		n := mustNotification(t, userID, notification.KindHealthReminder, "Reminder")
		require.NoError(t, repo.Save(ctx, n))

		err := repo.DeleteForUser(ctx, userID, n.ID)
		require.NoError(t, err)

		_, err = repo.FindByIDForUser(ctx, userID, n.ID)
		assert.Equal(t, shared.ErrNotFound, err)
	})

	t.Run("returns error when deleting another user's notification", func(t *testing.T) {
		userID := uuid.New()
		n := mustNotification(t, userID, notification.KindHealthReminder, "Reminder")
		require.NoError(t, repo.Save(ctx, n))

		err := repo.DeleteForUser(ctx, uuid.New(), n.ID)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormNotificationRepository_InterfaceCompliance(t *testing.T) {
	db := setupNotificationTestDB(t)
	var _ notification.Repository = NewGormNotificationRepository(db)
}
