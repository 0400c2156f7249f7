package grpcserver

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	plannerv1 "taskPlanner/api/planner/v1"
	"taskPlanner/internal/auth"
	"taskPlanner/models"
	"taskPlanner/repository"
)

const dateOnlyLayout = "2006-01-02"

// parseTime accepts an RFC3339 timestamp or a YYYY-MM-DD date (midnight UTC).
func parseTime(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, status.Errorf(codes.InvalidArgument, "%s must be an RFC3339 timestamp or YYYY-MM-DD date", field)
}

func parseTimePtr(field string, s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseTime(field, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func requireTitle(field string, title string) error {
	if strings.TrimSpace(title) == "" {
		return status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	return nil
}

func requireID(field string, id int64) error {
	if id <= 0 {
		return status.Errorf(codes.InvalidArgument, "%s must be positive", field)
	}
	return nil
}

func parsePriority(s *string) (*models.TaskPriority, error) {
	if s == nil {
		return nil, nil
	}
	p, err := models.ParseTaskPriority(*s)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &p, nil
}

func parseStatus(s *string) (*models.TaskStatus, error) {
	if s == nil {
		return nil, nil
	}
	st, err := models.ParseTaskStatus(*s)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &st, nil
}

func parseColor(s *string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	if !models.ValidColor(*s) {
		return nil, status.Errorf(codes.InvalidArgument, "color %q must be a #rrggbb hex value", *s)
	}
	return s, nil
}

// storeStatus maps repository errors onto gRPC status codes.
func storeStatus(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s: not found", op)
	case errors.Is(err, repository.ErrStoreUnavailable):
		return status.Errorf(codes.Unavailable, "%s: store unavailable", op)
	case errors.Is(err, repository.ErrInvalidValue):
		return status.Errorf(codes.InvalidArgument, "%s: %v", op, err)
	default:
		log.Error().Err(err).Str("op", op).Msg("store error")
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}

// degraded reports whether a list failure should fall back to an empty result.
func degraded(ctx context.Context, op string, err error) bool {
	if !errors.Is(err, repository.ErrStoreUnavailable) {
		return false
	}
	log.Ctx(ctx).Warn().Str("op", op).Msg("store unavailable, returning empty list")
	return true
}

// readUser resolves the caller of a read-only method. When the caller's session is valid but the
// identity store is unreachable it reports offline instead of an error.
func readUser(ctx context.Context, op string) (u *models.User, offline bool, err error) {
	u, err = auth.RequireUser(ctx)
	if status.Code(err) == codes.Unavailable {
		log.Ctx(ctx).Warn().Str("op", op).Msg("identity store unavailable, returning empty result")
		return nil, true, nil
	}
	return u, false, err
}

func toProtoUser(u *models.User) *plannerv1.User {
	if u == nil {
		return nil
	}
	return &plannerv1.User{
		ID:           u.ID,
		OpenID:       u.OpenID,
		Name:         u.Name,
		Email:        u.Email,
		LoginMethod:  u.LoginMethod,
		Role:         string(u.Role),
		CreatedAt:    formatTime(u.CreatedAt),
		UpdatedAt:    formatTime(u.UpdatedAt),
		LastSignedIn: formatTime(u.LastSignedIn),
	}
}

func toProtoTask(t *models.Task) *plannerv1.Task {
	if t == nil {
		return nil
	}
	return &plannerv1.Task{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     formatTimePtr(t.DueDate),
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
	}
}

func toProtoTasks(list []models.Task) []*plannerv1.Task {
	out := make([]*plannerv1.Task, 0, len(list))
	for i := range list {
		out = append(out, toProtoTask(&list[i]))
	}
	return out
}

func toProtoReminder(r *models.Reminder) *plannerv1.Reminder {
	if r == nil {
		return nil
	}
	return &plannerv1.Reminder{
		ID:           r.ID,
		UserID:       r.UserID,
		TaskID:       r.TaskID,
		ReminderTime: formatTime(r.ReminderTime),
		Notified:     r.Notified,
		CreatedAt:    formatTime(r.CreatedAt),
	}
}

func toProtoEvent(e *models.CalendarEvent) *plannerv1.CalendarEvent {
	if e == nil {
		return nil
	}
	return &plannerv1.CalendarEvent{
		ID:          e.ID,
		UserID:      e.UserID,
		TaskID:      e.TaskID,
		Title:       e.Title,
		Description: e.Description,
		StartDate:   formatTime(e.StartDate),
		EndDate:     formatTimePtr(e.EndDate),
		Color:       e.Color,
		CreatedAt:   formatTime(e.CreatedAt),
		UpdatedAt:   formatTime(e.UpdatedAt),
	}
}

func toProtoEvents(list []models.CalendarEvent) []*plannerv1.CalendarEvent {
	out := make([]*plannerv1.CalendarEvent, 0, len(list))
	for i := range list {
		out = append(out, toProtoEvent(&list[i]))
	}
	return out
}
