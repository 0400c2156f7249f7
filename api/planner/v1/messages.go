package plannerv1

// Timestamps on the wire are RFC3339 strings. Optional fields are pointers; an absent or
// null field means "not supplied".

type User struct {
	ID           int64   `json:"id"`
	OpenID       string  `json:"openId"`
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	LoginMethod  *string `json:"loginMethod,omitempty"`
	Role         string  `json:"role"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
	LastSignedIn string  `json:"lastSignedIn"`
}

type MeRequest struct{}

// MeResponse carries the caller, or no user for anonymous callers.
type MeResponse struct {
	User *User `json:"user"`
}

type LogoutRequest struct{}

type LogoutResponse struct {
	Success bool `json:"success"`
}

type Task struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type ListTasksRequest struct{}

// ListTasksResponse.Degraded is set when the store could not be reached and the list is empty
// for that reason.
type ListTasksResponse struct {
	Tasks    []*Task `json:"tasks"`
	Degraded bool    `json:"degraded,omitempty"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	Priority    *string `json:"priority,omitempty"`
}

type CreateTaskResponse struct {
	Task *Task `json:"task"`
}

type UpdateTaskRequest struct {
	ID          int64   `json:"id"`
	Status      *string `json:"status,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	Priority    *string `json:"priority,omitempty"`
}

type UpdateTaskResponse struct {
	Task *Task `json:"task"`
}

type DeleteTaskRequest struct {
	ID int64 `json:"id"`
}

type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
}

type TaskStatsRequest struct{}

type TaskStatsResponse struct {
	Total      int32 `json:"total"`
	Pending    int32 `json:"pending"`
	InProgress int32 `json:"inProgress"`
	Completed  int32 `json:"completed"`
	Degraded   bool  `json:"degraded,omitempty"`
}

type Reminder struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	TaskID       int64  `json:"taskId"`
	ReminderTime string `json:"reminderTime"`
	Notified     bool   `json:"notified"`
	CreatedAt    string `json:"createdAt"`
}

type ListRemindersRequest struct{}

type ListRemindersResponse struct {
	Reminders []*Reminder `json:"reminders"`
	Degraded  bool        `json:"degraded,omitempty"`
}

type CreateReminderRequest struct {
	TaskID       int64  `json:"taskId"`
	ReminderTime string `json:"reminderTime"`
}

type CreateReminderResponse struct {
	Reminder *Reminder `json:"reminder"`
}

type DeleteReminderRequest struct {
	ID int64 `json:"id"`
}

type DeleteReminderResponse struct {
	Deleted bool `json:"deleted"`
}

type CalendarEvent struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	TaskID      *int64  `json:"taskId,omitempty"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
	Color       string  `json:"color"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type ListEventsRequest struct{}

type ListEventsResponse struct {
	Events   []*CalendarEvent `json:"events"`
	Degraded bool             `json:"degraded,omitempty"`
}

type CreateEventRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
	TaskID      *int64  `json:"taskId,omitempty"`
	Color       *string `json:"color,omitempty"`
}

type CreateEventResponse struct {
	Event *CalendarEvent `json:"event"`
}

type UpdateEventRequest struct {
	ID          int64   `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Color       *string `json:"color,omitempty"`
}

type UpdateEventResponse struct {
	Event *CalendarEvent `json:"event"`
}

type DeleteEventRequest struct {
	ID int64 `json:"id"`
}

type DeleteEventResponse struct {
	Deleted bool `json:"deleted"`
}

// MonthRequest asks for the day counts of one month and, optionally, the items of one
// selected day (YYYY-MM-DD). TimeZone is an IANA name; empty means the server default.
type MonthRequest struct {
	Year         int32   `json:"year"`
	Month        int32   `json:"month"`
	SelectedDate *string `json:"selectedDate,omitempty"`
	TimeZone     string  `json:"timeZone,omitempty"`
}

type DayCount struct {
	Date   string `json:"date"`
	Tasks  int32  `json:"tasks"`
	Events int32  `json:"events"`
}

type MonthResponse struct {
	Days           []*DayCount      `json:"days"`
	SelectedTasks  []*Task          `json:"selectedTasks"`
	SelectedEvents []*CalendarEvent `json:"selectedEvents"`
	Degraded       bool             `json:"degraded,omitempty"`
}

type TranscribeRequest struct {
	AudioURL string  `json:"audioUrl"`
	Language *string `json:"language,omitempty"`
}

type TranscribeResponse struct {
	Text     string  `json:"text"`
	Language string  `json:"language,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}
