package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSchema() *PlanSchema {
	return &PlanSchema{
		Items: []ItemSchema{
			{Ref: "a", Title: "A", Start: "2026-03-01", End: "2026-03-05"},
			{Ref: "b", Title: "B"},
		},
		Dependencies: []DependencySchema{{From: "a", To: "b"}},
		Milestones:   []MilestoneSchema{{Title: "Beta", Target: "2026-04-01", Items: []string{"a"}}},
	}
}

func TestValidateSchema_Valid(t *testing.T) {
	assert.NoError(t, ValidateSchema(validSchema()))
}

func TestValidateSchema_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PlanSchema)
	}{
		{"empty plan", func(s *PlanSchema) { s.Items = nil }},
		{"missing ref", func(s *PlanSchema) { s.Items[0].Ref = "" }},
		{"duplicate ref", func(s *PlanSchema) { s.Items[1].Ref = "a" }},
		{"missing title", func(s *PlanSchema) { s.Items[0].Title = "" }},
		{"invalid status", func(s *PlanSchema) { s.Items[0].Status = "paused" }},
		{"one-sided dates", func(s *PlanSchema) { s.Items[0].End = "" }},
		{"inverted dates", func(s *PlanSchema) { s.Items[0].Start = "2026-03-09"; s.Items[0].End = "2026-03-01" }},
		{"unknown dep ref", func(s *PlanSchema) { s.Dependencies[0].To = "ghost" }},
		{"self dependency", func(s *PlanSchema) { s.Dependencies[0].To = "a" }},
		{"invalid dep type", func(s *PlanSchema) { s.Dependencies[0].Type = "sideways" }},
		{"bad milestone date", func(s *PlanSchema) { s.Milestones[0].Target = "April 1st" }},
		{"unknown milestone ref", func(s *PlanSchema) { s.Milestones[0].Items = []string{"ghost"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSchema()
			tt.mutate(s)
			assert.Error(t, ValidateSchema(s))
		})
	}
}
