package formatter

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
)

// DateSpan formats a scheduled item's date range, or a dash when unscheduled.
func DateSpan(w *domain.WorkItem) string {
	if !w.Scheduled() {
		return StyleDim.Render("unscheduled")
	}
	return fmt.Sprintf("%s → %s", domain.FormatDay(*w.StartDate), domain.FormatDay(*w.EndDate))
}

// RelativeDate returns a human-friendly relative date string.
func RelativeDate(t time.Time) string {
	return RelativeDateFrom(t, time.Now())
}

// RelativeDateFrom returns a human-friendly relative date string from a reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	diff := t.Sub(now)
	days := int(math.Round(diff.Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days < 0 && days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days < 0 && days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// DurationDays formats a scheduled item's day count, such as "5d".
func DurationDays(w *domain.WorkItem) string {
	if !w.Scheduled() {
		return StyleDim.Render("--")
	}
	return fmt.Sprintf("%dd", w.DurationDays())
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// CriticalBadge returns a red marker for critical-path items, or empty.
func CriticalBadge(critical bool) string {
	if !critical {
		return ""
	}
	return StyleRed.Render("▲ critical")
}
