package grpcserver

import (
	"context"

	plannerv1 "taskPlanner/api/planner/v1"
	"taskPlanner/internal/auth"
	"taskPlanner/models"
	"taskPlanner/repository"
)

// TaskServer implements TaskService for the signed-in user.
type TaskServer struct {
	plannerv1.UnimplementedTaskServiceServer
	Tasks repository.TaskRepositoryI
}

// List returns the caller's tasks. An unreachable store yields an empty, degraded list.
func (s *TaskServer) List(ctx context.Context, _ *plannerv1.ListTasksRequest) (*plannerv1.ListTasksResponse, error) {
	u, offline, err := readUser(ctx, "list tasks")
	if err != nil {
		return nil, err
	}
	if offline {
		return &plannerv1.ListTasksResponse{Tasks: []*plannerv1.Task{}, Degraded: true}, nil
	}
	list, err := s.Tasks.ListByUser(ctx, u.ID)
	if err != nil {
		if degraded(ctx, "list tasks", err) {
			return &plannerv1.ListTasksResponse{Tasks: []*plannerv1.Task{}, Degraded: true}, nil
		}
		return nil, storeStatus("list tasks", err)
	}
	return &plannerv1.ListTasksResponse{Tasks: toProtoTasks(list)}, nil
}

// Create stores a new pending task. Priority defaults to medium.
func (s *TaskServer) Create(ctx context.Context, req *plannerv1.CreateTaskRequest) (*plannerv1.CreateTaskResponse, error) {
	u, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req == nil {
		req = &plannerv1.CreateTaskRequest{}
	}
	if err := requireTitle("title", req.Title); err != nil {
		return nil, err
	}
	due, err := parseTimePtr("dueDate", req.DueDate)
	if err != nil {
		return nil, err
	}
	prio, err := parsePriority(req.Priority)
	if err != nil {
		return nil, err
	}
	in := repository.NewTask{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatusPending,
		Priority:    models.TaskPriorityMedium,
		DueDate:     due,
	}
	if prio != nil {
		in.Priority = *prio
	}
	t, err := s.Tasks.Create(ctx, u.ID, in)
	if err != nil {
		return nil, storeStatus("create task", err)
	}
	return &plannerv1.CreateTaskResponse{Task: toProtoTask(t)}, nil
}

// Update applies the supplied fields to one of the caller's tasks.
func (s *TaskServer) Update(ctx context.Context, req *plannerv1.UpdateTaskRequest) (*plannerv1.UpdateTaskResponse, error) {
	u, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req == nil {
		req = &plannerv1.UpdateTaskRequest{}
	}
	if err := requireID("id", req.ID); err != nil {
		return nil, err
	}
	if req.Title != nil {
		if err := requireTitle("title", *req.Title); err != nil {
			return nil, err
		}
	}
	st, err := parseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	prio, err := parsePriority(req.Priority)
	if err != nil {
		return nil, err
	}
	due, err := parseTimePtr("dueDate", req.DueDate)
	if err != nil {
		return nil, err
	}
	t, err := s.Tasks.Update(ctx, u.ID, req.ID, repository.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      st,
		Priority:    prio,
		DueDate:     due,
	})
	if err != nil {
		return nil, storeStatus("update task", err)
	}
	return &plannerv1.UpdateTaskResponse{Task: toProtoTask(t)}, nil
}

func (s *TaskServer) Delete(ctx context.Context, req *plannerv1.DeleteTaskRequest) (*plannerv1.DeleteTaskResponse, error) {
	u, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req == nil || req.ID <= 0 {
		return nil, requireID("id", 0)
	}
	if err := s.Tasks.Delete(ctx, u.ID, req.ID); err != nil {
		return nil, storeStatus("delete task", err)
	}
	return &plannerv1.DeleteTaskResponse{Deleted: true}, nil
}

// Stats returns the caller's task counts per status.
func (s *TaskServer) Stats(ctx context.Context, _ *plannerv1.TaskStatsRequest) (*plannerv1.TaskStatsResponse, error) {
	u, offline, err := readUser(ctx, "task stats")
	if err != nil {
		return nil, err
	}
	if offline {
		return &plannerv1.TaskStatsResponse{Degraded: true}, nil
	}
	c, err := s.Tasks.CountByStatus(ctx, u.ID)
	if err != nil {
		if degraded(ctx, "task stats", err) {
			return &plannerv1.TaskStatsResponse{Degraded: true}, nil
		}
		return nil, storeStatus("task stats", err)
	}
	return &plannerv1.TaskStatsResponse{
		Total:      int32(c.Total),
		Pending:    int32(c.Pending),
		InProgress: int32(c.InProgress),
		Completed:  int32(c.Completed),
	}, nil
}
