package models

import "testing"

func TestParseTaskStatus(t *testing.T) {
	valid := []string{"pending", "in-progress", "completed"}
	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			status, ok := ParseTaskStatus(s)
			if !ok {
				t.Fatalf("ParseTaskStatus(%q) not ok", s)
			}
			if string(status) != s {
				t.Errorf("expected %q, got %q", s, status)
			}
		})
	}

	invalid := []string{"", "done", "PENDING", "in_progress", "cancelled"}
	for _, s := range invalid {
		t.Run("invalid "+s, func(t *testing.T) {
			if _, ok := ParseTaskStatus(s); ok {
				t.Errorf("ParseTaskStatus(%q) should not be ok", s)
			}
		})
	}
}

func TestNextStatus(t *testing.T) {
	next, ok := StatusPending.NextStatus()
	if !ok || next != StatusInProgress {
		t.Errorf("pending should advance to in-progress, got %q (%v)", next, ok)
	}

	next, ok = StatusInProgress.NextStatus()
	if !ok || next != StatusCompleted {
		t.Errorf("in-progress should advance to completed, got %q (%v)", next, ok)
	}

	if _, ok := StatusCompleted.NextStatus(); ok {
		t.Error("completed should have no next status")
	}
}

func TestAllStatusesMatchesEnum(t *testing.T) {
	all := AllStatuses()
	if len(all) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(all))
	}
	for _, s := range all {
		if !s.IsValid() {
			t.Errorf("status %q from AllStatuses is not valid", s)
		}
	}
}
