package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"streetshine/internal/db"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu        sync.Mutex
	reminders []int64
}

func (n *recordingNotifier) SendBookingReceived(db.Booking)  {}
func (n *recordingNotifier) SendBookingConfirmed(db.Booking) {}
func (n *recordingNotifier) SendBookingReminder(b db.Booking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reminders = append(n.reminders, b.ID)
}

func TestSendUpcomingRemindersOnlyTomorrowConfirmed(t *testing.T) {
	store := newFakeStore()
	notifier := &recordingNotifier{}
	job := NewJobService(store, notifier, zerolog.Nop())
	ctx := context.Background()

	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	nextWeek := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")

	mk := func(date, status string) int64 {
		input := testInput()
		input.PreferredDate = date
		b, err := store.CreateBooking(ctx, input)
		require.NoError(t, err)
		require.NoError(t, store.UpdateBookingStatus(ctx, b.ID, status))
		return b.ID
	}

	due := mk(tomorrow, db.StatusConfirmed)
	mk(tomorrow, db.StatusPending)   // not confirmed yet
	mk(nextWeek, db.StatusConfirmed) // not tomorrow
	mk(tomorrow, db.StatusCompleted) // already done

	require.NoError(t, job.SendUpcomingReminders())

	assert.Equal(t, []int64{due}, notifier.reminders)
}

func TestSendUpcomingRemindersNoConfirmedBookings(t *testing.T) {
	store := newFakeStore()
	notifier := &recordingNotifier{}
	job := NewJobService(store, notifier, zerolog.Nop())

	require.NoError(t, job.SendUpcomingReminders())
	assert.Empty(t, notifier.reminders)
}
