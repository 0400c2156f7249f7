package models

import "testing"

func TestParseEnums(t *testing.T) {
	for _, s := range []string{"pending", "in-progress", "completed"} {
		if _, err := ParseTaskStatus(s); err != nil {
			t.Fatalf("ParseTaskStatus(%q): %v", s, err)
		}
	}
	for _, s := range []string{"", "done", "Pending", "in_progress"} {
		if _, err := ParseTaskStatus(s); err == nil {
			t.Fatalf("expected error for status %q", s)
		}
	}
	for _, s := range []string{"low", "medium", "high"} {
		if _, err := ParseTaskPriority(s); err != nil {
			t.Fatalf("ParseTaskPriority(%q): %v", s, err)
		}
	}
	if _, err := ParseTaskPriority("urgent"); err == nil {
		t.Fatalf("expected error for priority urgent")
	}
	if r, err := ParseRole(" Admin "); err != nil || r != RoleAdmin {
		t.Fatalf("ParseRole admin: %v %q", err, r)
	}
	if _, err := ParseRole("root"); err == nil {
		t.Fatalf("expected error for role root")
	}
}

func TestTaskCounts(t *testing.T) {
	var c TaskCounts
	c.Add(TaskStatusPending, 2)
	c.Add(TaskStatusCompleted, 1)
	c.Add(TaskStatusInProgress, 3)
	if c.Total != 6 || c.Pending != 2 || c.InProgress != 3 || c.Completed != 1 {
		t.Fatalf("unexpected counts: %+v", c)
	}
}

func TestValidColor(t *testing.T) {
	if !ValidColor(DefaultEventColor) || !ValidColor("#ABCDEF") {
		t.Fatalf("expected valid colors")
	}
	for _, c := range []string{"", "3b82f6", "#3b82f", "#3b82f6ff", "#zzzzzz"} {
		if ValidColor(c) {
			t.Fatalf("expected %q to be invalid", c)
		}
	}
}
