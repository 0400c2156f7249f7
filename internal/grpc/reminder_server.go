package grpcserver

import (
	"context"

	plannerv1 "taskPlanner/api/planner/v1"
	"taskPlanner/internal/auth"
	"taskPlanner/repository"
)

// ReminderServer implements ReminderService for the signed-in user.
type ReminderServer struct {
	plannerv1.UnimplementedReminderServiceServer
	Reminders repository.ReminderRepositoryI
}

func (s *ReminderServer) List(ctx context.Context, _ *plannerv1.ListRemindersRequest) (*plannerv1.ListRemindersResponse, error) {
	u, offline, err := readUser(ctx, "list reminders")
	if err != nil {
		return nil, err
	}
	if offline {
		return &plannerv1.ListRemindersResponse{Reminders: []*plannerv1.Reminder{}, Degraded: true}, nil
	}
	list, err := s.Reminders.ListByUser(ctx, u.ID)
	if err != nil {
		if degraded(ctx, "list reminders", err) {
			return &plannerv1.ListRemindersResponse{Reminders: []*plannerv1.Reminder{}, Degraded: true}, nil
		}
		return nil, storeStatus("list reminders", err)
	}
	out := make([]*plannerv1.Reminder, 0, len(list))
	for i := range list {
		out = append(out, toProtoReminder(&list[i]))
	}
	return &plannerv1.ListRemindersResponse{Reminders: out}, nil
}

// Create schedules a reminder. The referenced task is not checked for existence or ownership.
func (s *ReminderServer) Create(ctx context.Context, req *plannerv1.CreateReminderRequest) (*plannerv1.CreateReminderResponse, error) {
	u, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req == nil {
		req = &plannerv1.CreateReminderRequest{}
	}
	if err := requireID("taskId", req.TaskID); err != nil {
		return nil, err
	}
	at, err := parseTime("reminderTime", req.ReminderTime)
	if err != nil {
		return nil, err
	}
	r, err := s.Reminders.Create(ctx, u.ID, repository.NewReminder{TaskID: req.TaskID, ReminderTime: at})
	if err != nil {
		return nil, storeStatus("create reminder", err)
	}
	return &plannerv1.CreateReminderResponse{Reminder: toProtoReminder(r)}, nil
}

func (s *ReminderServer) Delete(ctx context.Context, req *plannerv1.DeleteReminderRequest) (*plannerv1.DeleteReminderResponse, error) {
	u, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req == nil || req.ID <= 0 {
		return nil, requireID("id", 0)
	}
	if err := s.Reminders.Delete(ctx, u.ID, req.ID); err != nil {
		return nil, storeStatus("delete reminder", err)
	}
	return &plannerv1.DeleteReminderResponse{Deleted: true}, nil
}
