package reminders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"taskPlanner/models"
	"taskPlanner/repository"
)

// DefaultSchedule polls for due reminders twice a minute.
const DefaultSchedule = "@every 30s"

// Notifier delivers one due reminder.
type Notifier interface {
	Notify(ctx context.Context, r models.Reminder) error
}

// LogNotifier writes due reminders to the structured log.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, r models.Reminder) error {
	log.Info().
		Int64("reminder_id", r.ID).
		Int64("user_id", r.UserID).
		Int64("task_id", r.TaskID).
		Time("reminder_time", r.ReminderTime).
		Msg("reminder due")
	return nil
}

// Store is the subset of the reminder repository the dispatcher needs.
type Store interface {
	ListDue(ctx context.Context, now time.Time, after repository.DueCursor, limit int) ([]models.Reminder, error)
	MarkNotified(ctx context.Context, id int64) (bool, error)
}

// Dispatcher periodically hands due reminders to a Notifier and flags them as notified.
type Dispatcher struct {
	store     Store
	notifier  Notifier
	batchSize int
	now       func() time.Time
	cron      *cron.Cron
}

func NewDispatcher(store Store, notifier Notifier, batchSize int) *Dispatcher {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Dispatcher{
		store:     store,
		notifier:  notifier,
		batchSize: batchSize,
		now:       time.Now,
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}
}

// RunOnce dispatches every reminder due at the current time and returns how many were
// delivered. It pages by cursor, so reminders whose delivery fails stay unnotified without
// hiding later ones; they are retried on the next run.
func (d *Dispatcher) RunOnce(ctx context.Context) (int, error) {
	now := d.now()
	var cursor repository.DueCursor
	sent := 0
	for {
		due, err := d.store.ListDue(ctx, now, cursor, d.batchSize)
		if err != nil {
			return sent, fmt.Errorf("list due reminders: %w", err)
		}
		for _, r := range due {
			cursor = repository.After(r)
			if err := d.notifier.Notify(ctx, r); err != nil {
				log.Warn().Err(err).Int64("reminder_id", r.ID).Msg("reminder delivery failed")
				continue
			}
			ok, err := d.store.MarkNotified(ctx, r.ID)
			if err != nil {
				return sent, fmt.Errorf("mark reminder %d notified: %w", r.ID, err)
			}
			if ok {
				sent++
			}
		}
		if len(due) < d.batchSize {
			return sent, nil
		}
		if err := ctx.Err(); err != nil {
			return sent, err
		}
	}
}

// Start registers RunOnce on the cron schedule spec and starts the scheduler.
func (d *Dispatcher) Start(spec string) error {
	if spec == "" {
		spec = DefaultSchedule
	}
	_, err := d.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		n, err := d.RunOnce(ctx)
		switch {
		case errors.Is(err, repository.ErrStoreUnavailable):
			log.Warn().Msg("reminder dispatch skipped: store unavailable")
		case err != nil:
			log.Error().Err(err).Msg("reminder dispatch failed")
		case n > 0:
			log.Debug().Int("sent", n).Msg("reminders dispatched")
		}
	})
	if err != nil {
		return fmt.Errorf("schedule reminders %q: %w", spec, err)
	}
	d.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running dispatch to finish.
func (d *Dispatcher) Stop() {
	ctx := d.cron.Stop()
	<-ctx.Done()
}
