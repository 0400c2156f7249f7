// Package calendar buckets tasks and events by calendar day for month views.
//
// Day equality is year/month/day in a given location; time of day is ignored. Tasks are
// bucketed by DueDate and events by StartDate. Items without the relevant date never
// appear in a bucket or a count.
package calendar

import (
	"time"

	"taskPlanner/models"
)

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// TasksOn returns the tasks due on day, preserving input order.
func TasksOn(tasks []models.Task, day time.Time, loc *time.Location) []models.Task {
	out := []models.Task{}
	for _, t := range tasks {
		if t.DueDate != nil && SameDay(*t.DueDate, day, loc) {
			out = append(out, t)
		}
	}
	return out
}

// EventsOn returns the events starting on day, preserving input order.
func EventsOn(events []models.CalendarEvent, day time.Time, loc *time.Location) []models.CalendarEvent {
	out := []models.CalendarEvent{}
	for _, e := range events {
		if SameDay(e.StartDate, day, loc) {
			out = append(out, e)
		}
	}
	return out
}

// DayCount is the number of tasks and events on one day.
type DayCount struct {
	Date   time.Time // midnight in the month's location
	Tasks  int
	Events int
}

// MonthCounts returns one DayCount for every day of the month, in order.
func MonthCounts(year int, month time.Month, loc *time.Location, tasks []models.Task, events []models.CalendarEvent) []DayCount {
	if loc == nil {
		loc = time.UTC
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	days := DaysIn(year, month)
	out := make([]DayCount, days)
	for i := range out {
		out[i].Date = first.AddDate(0, 0, i)
	}
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		if i, ok := dayIndex(*t.DueDate, year, month, loc); ok {
			out[i].Tasks++
		}
	}
	for _, e := range events {
		if i, ok := dayIndex(e.StartDate, year, month, loc); ok {
			out[i].Events++
		}
	}
	return out
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dayIndex(t time.Time, year int, month time.Month, loc *time.Location) (int, bool) {
	y, m, d := t.In(loc).Date()
	if y != year || m != month {
		return 0, false
	}
	return d - 1, true
}
