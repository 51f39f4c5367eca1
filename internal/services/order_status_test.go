package services

import (
	"testing"
	"time"
)

func TestProgressPercent(t *testing.T) {
	cases := map[string]int{
		StatusPending:   10,
		StatusConfirmed: 25,
		StatusPrinting:  45,
		StatusReady:     65,
		StatusShipped:   85,
		StatusDelivered: 100,
		StatusCancelled: 0,
		"bogus":         0,
	}
	for status, want := range cases {
		if got := ProgressPercent(status); got != want {
			t.Errorf("ProgressPercent(%q) = %d, want %d", status, got, want)
		}
	}
}

func TestStatusNote_Fallback(t *testing.T) {
	if note := StatusNote(StatusShipped); note != statusNotes[StatusShipped] {
		t.Errorf("expected table note for shipped, got %q", note)
	}
	if note := StatusNote("weird"); note != defaultStatusNote {
		t.Errorf("unknown status should fall back to generic note, got %q", note)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range orderStatuses {
		if !ValidStatus(s) {
			t.Errorf("%q should be a valid status", s)
		}
	}
	if ValidStatus("processing") {
		t.Error("legacy 'processing' vocabulary must not be accepted")
	}
	if ValidStatus("") {
		t.Error("empty status must not be accepted")
	}
}

func TestPlanStatusChange(t *testing.T) {
	// same-status transition is a silent no-op
	if ch := PlanStatusChange(StatusPending, StatusPending, "", ""); ch != nil {
		t.Errorf("no-op transition should produce nothing, got %+v", ch)
	}

	ch := PlanStatusChange(StatusPending, StatusShipped, "", "")
	if ch == nil {
		t.Fatal("distinct transition must produce a history row")
	}
	if ch.OldStatus != StatusPending || ch.NewStatus != StatusShipped {
		t.Errorf("unexpected transition %q -> %q", ch.OldStatus, ch.NewStatus)
	}
	if ch.Note != statusNotes[StatusShipped] {
		t.Errorf("empty note should default from the table, got %q", ch.Note)
	}
	if ch.ChangedBy != "Admin" {
		t.Errorf("changedBy should default to Admin, got %q", ch.ChangedBy)
	}

	// explicit note and actor win over the defaults
	ch = PlanStatusChange(StatusPending, StatusConfirmed, "called the customer", "sara")
	if ch.Note != "called the customer" || ch.ChangedBy != "sara" {
		t.Errorf("explicit values overridden: %+v", ch)
	}
}

func TestPlanStatusChange_HistoryCountMatchesTransitions(t *testing.T) {
	// walking the whole lifecycle produces exactly one row per distinct
	// transition, repeats produce none
	sequence := []string{
		StatusPending,   // no-op, order starts pending
		StatusConfirmed, // 1
		StatusConfirmed, // no-op
		StatusPrinting,  // 2
		StatusReady,     // 3
		StatusShipped,   // 4
		StatusShipped,   // no-op
		StatusDelivered, // 5
	}

	current := StatusPending
	rows := 0
	for _, next := range sequence {
		if ch := PlanStatusChange(current, next, "", ""); ch != nil {
			rows++
			current = ch.NewStatus
		}
	}
	if rows != 5 {
		t.Errorf("expected 5 history rows, got %d", rows)
	}
	if current != StatusDelivered {
		t.Errorf("expected final status delivered, got %q", current)
	}
}

func TestDeliveryEstimate_TerminalStates(t *testing.T) {
	created := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC) // a Sunday
	if DeliveryEstimate(StatusDelivered, created) != nil {
		t.Error("delivered orders have no estimate")
	}
	if DeliveryEstimate(StatusCancelled, created) != nil {
		t.Error("cancelled orders have no estimate")
	}
}

func TestDeliveryEstimate_Shipped(t *testing.T) {
	created := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	r := DeliveryEstimate(StatusShipped, created)
	if r == nil {
		t.Fatal("shipped orders must have an estimate")
	}
	if !r.From.Equal(created.AddDate(0, 0, 1)) || !r.To.Equal(created.AddDate(0, 0, 2)) {
		t.Errorf("shipped window should be createdAt+[1,2] days, got %v..%v", r.From, r.To)
	}
}

func TestDeliveryEstimate_BusinessDays(t *testing.T) {
	// Wednesday; +3 business days crosses the Fri/Sat weekend
	created := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	r := DeliveryEstimate(StatusPending, created)
	if r == nil {
		t.Fatal("pending orders must have an estimate")
	}
	// Thu 6th, (skip Fri 7th, Sat 8th), Sun 9th, Mon 10th
	wantFrom := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	// ... Tue 11th, Wed 12th
	wantTo := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	if !r.From.Equal(wantFrom) {
		t.Errorf("From = %v, want %v", r.From, wantFrom)
	}
	if !r.To.Equal(wantTo) {
		t.Errorf("To = %v, want %v", r.To, wantTo)
	}
}

func TestAddBusinessDays_SkipsWeekend(t *testing.T) {
	thu := time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)
	got := addBusinessDays(thu, 1)
	// Fri and Sat are skipped, so one business day lands on Sunday
	want := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("addBusinessDays(Thu, 1) = %v, want %v", got, want)
	}
}
