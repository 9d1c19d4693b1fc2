package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Plan holds the converted domain objects ready for persistence.
type Plan struct {
	Items        []*domain.WorkItem
	Dependencies []domain.Dependency
	Milestones   []*domain.Milestone
}

// Parse decodes and validates a YAML plan document.
func Parse(data []byte) (*PlanSchema, error) {
	var schema PlanSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}
	if err := ValidateSchema(&schema); err != nil {
		return nil, fmt.Errorf("validating plan: %w", err)
	}
	return &schema, nil
}

// Convert transforms a validated schema into domain objects. Refs become
// generated uuids; item order in the file becomes the display row order.
// Call ValidateSchema first; Convert assumes the schema is valid.
func Convert(schema *PlanSchema) (*Plan, error) {
	now := time.Now().UTC()
	refMap := make(map[string]string) // ref -> uuid

	plan := &Plan{}
	for row, src := range schema.Items {
		id := uuid.New().String()
		refMap[src.Ref] = id

		status := domain.WorkItemStatus(src.Status)
		if status == "" {
			status = domain.WorkItemPlanned
		}

		item := &domain.WorkItem{
			ID:           id,
			Title:        src.Title,
			Status:       status,
			RowIndex:     row,
			AssigneeName: src.Assignee,
			Critical:     src.Critical,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if src.Start != "" {
			start, err := domain.ParseDay(src.Start)
			if err != nil {
				return nil, fmt.Errorf("item %q: %w", src.Ref, err)
			}
			end, err := domain.ParseDay(src.End)
			if err != nil {
				return nil, fmt.Errorf("item %q: %w", src.Ref, err)
			}
			item.StartDate = &start
			item.EndDate = &end
		}
		plan.Items = append(plan.Items, item)
	}

	for _, src := range schema.Dependencies {
		depType := domain.DependencyType(src.Type)
		if depType == "" {
			depType = domain.FinishToStart
		}
		plan.Dependencies = append(plan.Dependencies, domain.Dependency{
			PredecessorID: refMap[src.From],
			SuccessorID:   refMap[src.To],
			Type:          depType,
			LeadLagDays:   src.Lag,
		})
	}

	for _, src := range schema.Milestones {
		target, err := domain.ParseDay(src.Target)
		if err != nil {
			return nil, fmt.Errorf("milestone %q: %w", src.Title, err)
		}
		linked := make([]string, 0, len(src.Items))
		for _, ref := range src.Items {
			linked = append(linked, refMap[ref])
		}
		plan.Milestones = append(plan.Milestones, &domain.Milestone{
			ID:                uuid.New().String(),
			Title:             src.Title,
			TargetDate:        target,
			LinkedWorkItemIDs: linked,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	}

	return plan, nil
}
