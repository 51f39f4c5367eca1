package services

import "time"

// Unified order status vocabulary. Terminal states are delivered and
// cancelled; cancelled is reachable from any non-terminal state.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPrinting  = "printing"
	StatusReady     = "ready"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

var orderStatuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusPrinting,
	StatusReady,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// auto-generated history notes, keyed by the status being entered
var statusNotes = map[string]string{
	StatusPending:   "الطلب قيد المراجعة",
	StatusConfirmed: "تم تأكيد الطلب",
	StatusPrinting:  "جاري طباعة الطلب",
	StatusReady:     "الطلب جاهز للشحن",
	StatusShipped:   "تم شحن الطلب",
	StatusDelivered: "تم تسليم الطلب",
	StatusCancelled: "تم إلغاء الطلب",
}

// customer-facing labels for the tracking page
var statusLabels = map[string]string{
	StatusPending:   "قيد الانتظار",
	StatusConfirmed: "مؤكد",
	StatusPrinting:  "قيد الطباعة",
	StatusReady:     "جاهز للشحن",
	StatusShipped:   "تم الشحن",
	StatusDelivered: "تم التسليم",
	StatusCancelled: "ملغي",
}

var statusProgress = map[string]int{
	StatusPending:   10,
	StatusConfirmed: 25,
	StatusPrinting:  45,
	StatusReady:     65,
	StatusShipped:   85,
	StatusDelivered: 100,
	StatusCancelled: 0,
}

const defaultStatusNote = "تم تحديث حالة الطلب"

// ValidStatus reports whether s is one of the defined order statuses.
func ValidStatus(s string) bool {
	_, ok := statusProgress[s]
	return ok
}

// StatusNote returns the history note for entering status s, falling
// back to a generic note for unrecognized values.
func StatusNote(s string) string {
	if n, ok := statusNotes[s]; ok {
		return n
	}
	return defaultStatusNote
}

// StatusLabel returns the customer-facing label for status s.
func StatusLabel(s string) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return s
}

// ProgressPercent maps a status to a 0-100 value for progress bars.
// Unknown statuses map to 0.
func ProgressPercent(s string) int {
	return statusProgress[s]
}

// StatusChange is the history row a transition will produce.
type StatusChange struct {
	OldStatus string
	NewStatus string
	Note      string
	ChangedBy string
}

// PlanStatusChange decides what a transition does. It returns nil when
// next equals current: a no-op transition writes nothing, not even a
// history row. Empty note and changedBy get their defaults.
func PlanStatusChange(current, next, note, changedBy string) *StatusChange {
	if next == current {
		return nil
	}
	if note == "" {
		note = StatusNote(next)
	}
	if changedBy == "" {
		changedBy = "Admin"
	}
	return &StatusChange{
		OldStatus: current,
		NewStatus: next,
		Note:      note,
		ChangedBy: changedBy,
	}
}

// DateRange is an inclusive delivery window.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// DeliveryEstimate computes the expected delivery window for an order.
// Terminal orders have no estimate. Before shipping the window is
// createdAt + 3..5 business days; once shipped it narrows to
// createdAt + 1..2 days.
func DeliveryEstimate(status string, createdAt time.Time) *DateRange {
	switch status {
	case StatusDelivered, StatusCancelled:
		return nil
	case StatusShipped:
		return &DateRange{
			From: createdAt.AddDate(0, 0, 1),
			To:   createdAt.AddDate(0, 0, 2),
		}
	default:
		return &DateRange{
			From: addBusinessDays(createdAt, 3),
			To:   addBusinessDays(createdAt, 5),
		}
	}
}

// addBusinessDays advances t by n days, skipping Fridays and Saturdays
// (the regional weekend).
func addBusinessDays(t time.Time, n int) time.Time {
	for n > 0 {
		t = t.AddDate(0, 0, 1)
		if wd := t.Weekday(); wd != time.Friday && wd != time.Saturday {
			n--
		}
	}
	return t
}
