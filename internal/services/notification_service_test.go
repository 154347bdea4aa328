package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hirewire/hirewire/internal/models"
	"github.com/hirewire/hirewire/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	return st
}

func newTestNotificationService(t *testing.T) (*NotificationService, *store.Store) {
	t.Helper()
	st := newTestStore(t)
	svc, err := NewNotificationService(st, nil)
	require.NoError(t, err)
	return svc, st
}

func TestNotificationDispatchAndList(t *testing.T) {
	svc, _ := newTestNotificationService(t)
	ctx := context.Background()

	first, err := svc.Dispatch(ctx, DispatchInput{
		UserEmail: "alice@example.com",
		UserType:  "candidate",
		Message:   "New job matches your skills: Backend Engineer",
		Data:      map[string]any{"job_id": "1"},
	})
	require.NoError(t, err)
	require.Equal(t, "1", first.ID)
	require.Equal(t, "info", first.Type)
	require.False(t, first.Read)

	second, err := svc.Dispatch(ctx, DispatchInput{
		UserEmail: "alice@example.com",
		UserType:  "candidate",
		Message:   "Your application for SRE status updated to 'reviewed'",
		Type:      "application",
	})
	require.NoError(t, err)
	require.Equal(t, "2", second.ID)

	items, err := svc.ListForUser(ctx, "alice@example.com", false)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestNotificationDispatchValidation(t *testing.T) {
	svc, _ := newTestNotificationService(t)
	ctx := context.Background()

	_, err := svc.Dispatch(ctx, DispatchInput{UserType: "candidate", Message: "x"})
	require.Error(t, err)

	_, err = svc.Dispatch(ctx, DispatchInput{UserEmail: "a@b.c", UserType: "admin", Message: "x"})
	require.Error(t, err)
}

func TestNotificationDuplicateMessagesGetDistinctIDs(t *testing.T) {
	svc, _ := newTestNotificationService(t)
	ctx := context.Background()

	input := DispatchInput{UserEmail: "a@b.c", UserType: "candidate", Message: "same"}
	first, err := svc.Dispatch(ctx, input)
	require.NoError(t, err)
	second, err := svc.Dispatch(ctx, input)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
}

func TestNotificationUnreadFilterAndCount(t *testing.T) {
	svc, _ := newTestNotificationService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Dispatch(ctx, DispatchInput{UserEmail: "bob@x.io", UserType: "company", Message: "m"})
		require.NoError(t, err)
	}
	_, err := svc.Dispatch(ctx, DispatchInput{UserEmail: "other@x.io", UserType: "company", Message: "m"})
	require.NoError(t, err)

	count, err := svc.UnreadCount(ctx, "bob@x.io")
	require.NoError(t, err)
	require.Equal(t, 3, count)

	require.NoError(t, svc.MarkRead(ctx, "1"))

	count, err = svc.UnreadCount(ctx, "bob@x.io")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	unread, err := svc.ListForUser(ctx, "bob@x.io", true)
	require.NoError(t, err)
	require.Len(t, unread, 2)

	require.NoError(t, svc.MarkAllRead(ctx, "bob@x.io"))
	count, err = svc.UnreadCount(ctx, "bob@x.io")
	require.NoError(t, err)
	require.Zero(t, count)

	// The other recipient is untouched.
	count, err = svc.UnreadCount(ctx, "other@x.io")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestNotificationMarkReadIdempotent(t *testing.T) {
	svc, st := newTestNotificationService(t)
	ctx := context.Background()

	_, err := svc.Dispatch(ctx, DispatchInput{UserEmail: "a@b.c", UserType: "candidate", Message: "m"})
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(ctx, "1"))

	var notifications []models.Notification
	require.NoError(t, st.Load(store.Notifications, &notifications))
	require.True(t, notifications[0].Read)
	require.NotNil(t, notifications[0].ReadAt)
	stamped := *notifications[0].ReadAt

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, svc.MarkRead(ctx, "1"))

	require.NoError(t, st.Load(store.Notifications, &notifications))
	require.True(t, notifications[0].ReadAt.Equal(stamped))
}

func TestNotificationMarkReadUnknownIDIsNoOp(t *testing.T) {
	svc, _ := newTestNotificationService(t)
	require.NoError(t, svc.MarkRead(context.Background(), "999"))
}

func TestNotificationListNewestFirst(t *testing.T) {
	svc, st := newTestNotificationService(t)
	ctx := context.Background()

	base := time.Now().UTC()
	seeded := []models.Notification{
		{ID: "1", UserEmail: "a@b.c", UserType: "candidate", Message: "oldest", Type: "info", CreatedAt: base.Add(-2 * time.Hour)},
		{ID: "2", UserEmail: "a@b.c", UserType: "candidate", Message: "newest", Type: "info", CreatedAt: base},
		{ID: "3", UserEmail: "a@b.c", UserType: "candidate", Message: "middle", Type: "info", CreatedAt: base.Add(-1 * time.Hour)},
	}
	require.NoError(t, st.Save(store.Notifications, seeded))

	items, err := svc.ListForUser(ctx, "a@b.c", false)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "newest", items[0].Message)
	require.Equal(t, "middle", items[1].Message)
	require.Equal(t, "oldest", items[2].Message)
}
