package domain

import "time"

type WorkItem struct {
	ID     string
	Title  string
	Status WorkItemStatus

	// Schedule (calendar-day granularity, nil means unscheduled)
	StartDate *time.Time
	EndDate   *time.Time

	// Display
	RowIndex     int
	AssigneeName string
	Critical     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Scheduled reports whether the item carries both a start and an end date.
// Only scheduled items produce bar geometry or accept drag rescheduling.
func (w *WorkItem) Scheduled() bool {
	return w.StartDate != nil && w.EndDate != nil
}

// DurationDays returns the scheduled span in whole days, or 0 when unscheduled.
func (w *WorkItem) DurationDays() int {
	if !w.Scheduled() {
		return 0
	}
	return DaysBetween(*w.StartDate, *w.EndDate)
}
