package service

import (
	"context"
	"fmt"
	"time"

	"streetshine/internal/db"

	"github.com/rs/zerolog"
)

// JobService holds the scheduled work run from cron. It only reads and
// notifies; booking status is never changed automatically.
type JobService struct {
	store    BookingStore
	notifier Notifier
	log      zerolog.Logger
}

func NewJobService(store BookingStore, notifier Notifier, log zerolog.Logger) *JobService {
	return &JobService{store: store, notifier: notifier, log: log}
}

// SendUpcomingReminders emails every confirmed booking whose preferred date
// is tomorrow. Run once a day.
func (s *JobService) SendUpcomingReminders() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

	bookings, err := s.store.ListBookingsByStatus(ctx, db.StatusConfirmed)
	if err != nil {
		return fmt.Errorf("reminder job: failed to list confirmed bookings: %w", err)
	}

	sent := 0
	for _, b := range bookings {
		if b.PreferredDate != tomorrow {
			continue
		}
		if s.notifier != nil {
			s.notifier.SendBookingReminder(b)
		}
		sent++
	}

	if sent > 0 {
		s.log.Info().Int("count", sent).Str("date", tomorrow).Msg("reminder job: reminders sent")
	}
	return nil
}
