package domain

import "time"

// Milestone is a dated marker on the timeline connected to work items by
// "contributes to" links, distinct from predecessor/successor dependencies.
type Milestone struct {
	ID                string
	Title             string
	TargetDate        time.Time
	LinkedWorkItemIDs []string

	CreatedAt time.Time
	UpdatedAt time.Time
}
