// Package importer loads a whole plan from a YAML file: work items in
// display order, dependency edges, and milestones. Refs are
// human-writable handles local to the file; they are rewritten to
// generated ids on conversion.
package importer

// PlanSchema is the root of the YAML import document.
type PlanSchema struct {
	Items        []ItemSchema      `yaml:"items"`
	Dependencies []DependencySchema `yaml:"dependencies"`
	Milestones   []MilestoneSchema `yaml:"milestones"`
}

type ItemSchema struct {
	Ref      string `yaml:"ref"`
	Title    string `yaml:"title"`
	Status   string `yaml:"status"`
	Start    string `yaml:"start"` // YYYY-MM-DD, empty for unscheduled
	End      string `yaml:"end"`
	Assignee string `yaml:"assignee"`
	Critical bool   `yaml:"critical"`
}

type DependencySchema struct {
	From string `yaml:"from"` // predecessor ref
	To   string `yaml:"to"`   // successor ref
	Type string `yaml:"type"` // defaults to finish_to_start
	Lag  int    `yaml:"lag"`  // lead/lag days
}

type MilestoneSchema struct {
	Title  string   `yaml:"title"`
	Target string   `yaml:"target"` // YYYY-MM-DD
	Items  []string `yaml:"items"`  // linked item refs
}
