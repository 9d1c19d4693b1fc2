package importer

import (
	"fmt"

	"github.com/alexanderramin/chronos/internal/domain"
)

// ValidateSchema checks referential integrity and field validity before any
// conversion happens, so a bad file is rejected whole.
func ValidateSchema(schema *PlanSchema) error {
	if len(schema.Items) == 0 {
		return fmt.Errorf("plan contains no items")
	}

	refs := make(map[string]bool)
	for i, item := range schema.Items {
		if item.Ref == "" {
			return fmt.Errorf("item %d: ref is required", i)
		}
		if refs[item.Ref] {
			return fmt.Errorf("duplicate item ref %q", item.Ref)
		}
		refs[item.Ref] = true

		if item.Title == "" {
			return fmt.Errorf("item %q: title is required", item.Ref)
		}
		if item.Status != "" && !domain.ValidWorkItemStatuses[item.Status] {
			return fmt.Errorf("item %q: invalid status %q", item.Ref, item.Status)
		}
		if (item.Start == "") != (item.End == "") {
			return fmt.Errorf("item %q: start and end must be set together", item.Ref)
		}
		if item.Start != "" {
			start, err := domain.ParseDay(item.Start)
			if err != nil {
				return fmt.Errorf("item %q: invalid start date: %w", item.Ref, err)
			}
			end, err := domain.ParseDay(item.End)
			if err != nil {
				return fmt.Errorf("item %q: invalid end date: %w", item.Ref, err)
			}
			if !start.Before(end) {
				return fmt.Errorf("item %q: start must precede end", item.Ref)
			}
		}
	}

	for i, dep := range schema.Dependencies {
		if !refs[dep.From] {
			return fmt.Errorf("dependency %d: unknown ref %q", i, dep.From)
		}
		if !refs[dep.To] {
			return fmt.Errorf("dependency %d: unknown ref %q", i, dep.To)
		}
		if dep.From == dep.To {
			return fmt.Errorf("dependency %d: %q depends on itself", i, dep.From)
		}
		if dep.Type != "" && !domain.ValidDependencyTypes[dep.Type] {
			return fmt.Errorf("dependency %d: invalid type %q", i, dep.Type)
		}
	}

	for i, ms := range schema.Milestones {
		if ms.Title == "" {
			return fmt.Errorf("milestone %d: title is required", i)
		}
		if _, err := domain.ParseDay(ms.Target); err != nil {
			return fmt.Errorf("milestone %q: invalid target date: %w", ms.Title, err)
		}
		for _, ref := range ms.Items {
			if !refs[ref] {
				return fmt.Errorf("milestone %q: unknown ref %q", ms.Title, ref)
			}
		}
	}

	return nil
}
