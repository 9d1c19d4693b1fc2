package domain

// Dependency is a directed edge between two work items. The graph formed by
// dependencies is not guaranteed acyclic; consumers must restrict themselves
// to direct-neighbor lookups.
type Dependency struct {
	PredecessorID string
	SuccessorID   string
	Type          DependencyType
	LeadLagDays   int
}
