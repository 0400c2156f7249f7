package grpcserver

import (
	"context"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	plannerv1 "taskPlanner/api/planner/v1"
	"taskPlanner/internal/auth"
	"taskPlanner/internal/calendar"
	"taskPlanner/models"
	"taskPlanner/repository"
)

// CalendarServer implements CalendarService for the signed-in user.
type CalendarServer struct {
	plannerv1.UnimplementedCalendarServiceServer
	Events repository.CalendarRepositoryI
	Tasks  repository.TaskRepositoryI
	// Location buckets days for Month when the request names no time zone. Nil means UTC.
	Location *time.Location
}

func (s *CalendarServer) List(ctx context.Context, _ *plannerv1.ListEventsRequest) (*plannerv1.ListEventsResponse, error) {
	u, offline, err := readUser(ctx, "list events")
	if err != nil {
		return nil, err
	}
	if offline {
		return &plannerv1.ListEventsResponse{Events: []*plannerv1.CalendarEvent{}, Degraded: true}, nil
	}
	list, err := s.Events.ListByUser(ctx, u.ID)
	if err != nil {
		if degraded(ctx, "list events", err) {
			return &plannerv1.ListEventsResponse{Events: []*plannerv1.CalendarEvent{}, Degraded: true}, nil
		}
		return nil, storeStatus("list events", err)
	}
	return &plannerv1.ListEventsResponse{Events: toProtoEvents(list)}, nil
}

// Create stores a new event. Color defaults to models.DefaultEventColor.
func (s *CalendarServer) Create(ctx context.Context, req *plannerv1.CreateEventRequest) (*plannerv1.CreateEventResponse, error) {
	u, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req == nil {
		req = &plannerv1.CreateEventRequest{}
	}
	if err := requireTitle("title", req.Title); err != nil {
		return nil, err
	}
	start, err := parseTime("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseTimePtr("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	if req.TaskID != nil {
		if err := requireID("taskId", *req.TaskID); err != nil {
			return nil, err
		}
	}
	color, err := parseColor(req.Color)
	if err != nil {
		return nil, err
	}
	in := repository.NewEvent{
		TaskID:      req.TaskID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		Color:       models.DefaultEventColor,
	}
	if color != nil {
		in.Color = *color
	}
	e, err := s.Events.Create(ctx, u.ID, in)
	if err != nil {
		return nil, storeStatus("create event", err)
	}
	return &plannerv1.CreateEventResponse{Event: toProtoEvent(e)}, nil
}

func (s *CalendarServer) Update(ctx context.Context, req *plannerv1.UpdateEventRequest) (*plannerv1.UpdateEventResponse, error) {
	u, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req == nil {
		req = &plannerv1.UpdateEventRequest{}
	}
	if err := requireID("id", req.ID); err != nil {
		return nil, err
	}
	if req.Title != nil {
		if err := requireTitle("title", *req.Title); err != nil {
			return nil, err
		}
	}
	start, err := parseTimePtr("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseTimePtr("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	color, err := parseColor(req.Color)
	if err != nil {
		return nil, err
	}
	e, err := s.Events.Update(ctx, u.ID, req.ID, repository.EventPatch{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		Color:       color,
	})
	if err != nil {
		return nil, storeStatus("update event", err)
	}
	return &plannerv1.UpdateEventResponse{Event: toProtoEvent(e)}, nil
}

func (s *CalendarServer) Delete(ctx context.Context, req *plannerv1.DeleteEventRequest) (*plannerv1.DeleteEventResponse, error) {
	u, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req == nil || req.ID <= 0 {
		return nil, requireID("id", 0)
	}
	if err := s.Events.Delete(ctx, u.ID, req.ID); err != nil {
		return nil, storeStatus("delete event", err)
	}
	return &plannerv1.DeleteEventResponse{Deleted: true}, nil
}

// Month returns per-day task and event counts for one month, plus the items of the
// selected day when one is given.
func (s *CalendarServer) Month(ctx context.Context, req *plannerv1.MonthRequest) (*plannerv1.MonthResponse, error) {
	u, offline, err := readUser(ctx, "month")
	if err != nil {
		return nil, err
	}
	if req == nil {
		req = &plannerv1.MonthRequest{}
	}
	if req.Month < 1 || req.Month > 12 {
		return nil, status.Error(codes.InvalidArgument, "month must be between 1 and 12")
	}
	if req.Year < 1 || req.Year > 9999 {
		return nil, status.Error(codes.InvalidArgument, "year is out of range")
	}
	loc, err := s.location(req.TimeZone)
	if err != nil {
		return nil, err
	}
	var selected *time.Time
	if req.SelectedDate != nil {
		d, err := time.ParseInLocation(dateOnlyLayout, strings.TrimSpace(*req.SelectedDate), loc)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "selectedDate must be YYYY-MM-DD")
		}
		selected = &d
	}

	resp := &plannerv1.MonthResponse{
		SelectedTasks:  []*plannerv1.Task{},
		SelectedEvents: []*plannerv1.CalendarEvent{},
		Degraded:       offline,
	}
	var tasks []models.Task
	var events []models.CalendarEvent
	if !offline {
		tasks, err = s.Tasks.ListByUser(ctx, u.ID)
		if err != nil {
			if !degraded(ctx, "month tasks", err) {
				return nil, storeStatus("month tasks", err)
			}
			resp.Degraded = true
		}
		events, err = s.Events.ListByUser(ctx, u.ID)
		if err != nil {
			if !degraded(ctx, "month events", err) {
				return nil, storeStatus("month events", err)
			}
			resp.Degraded = true
		}
	}

	counts := calendar.MonthCounts(int(req.Year), time.Month(req.Month), loc, tasks, events)
	resp.Days = make([]*plannerv1.DayCount, 0, len(counts))
	for _, c := range counts {
		resp.Days = append(resp.Days, &plannerv1.DayCount{
			Date:   c.Date.Format(dateOnlyLayout),
			Tasks:  int32(c.Tasks),
			Events: int32(c.Events),
		})
	}
	if selected != nil {
		resp.SelectedTasks = toProtoTasks(calendar.TasksOn(tasks, *selected, loc))
		resp.SelectedEvents = toProtoEvents(calendar.EventsOn(events, *selected, loc))
	}
	return resp, nil
}

func (s *CalendarServer) location(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		if s.Location != nil {
			return s.Location, nil
		}
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "unknown time zone %q", name)
	}
	return loc, nil
}
