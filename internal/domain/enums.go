package domain

type WorkItemStatus string

const (
	WorkItemPlanned    WorkItemStatus = "planned"
	WorkItemInProgress WorkItemStatus = "in_progress"
	WorkItemDone       WorkItemStatus = "done"
	WorkItemBlocked    WorkItemStatus = "blocked"
)

// ValidWorkItemStatuses is the canonical set of accepted status strings.
var ValidWorkItemStatuses = map[string]bool{
	"planned": true, "in_progress": true, "done": true, "blocked": true,
}

type DependencyType string

const (
	FinishToStart  DependencyType = "finish_to_start"
	StartToStart   DependencyType = "start_to_start"
	FinishToFinish DependencyType = "finish_to_finish"
)

// ValidDependencyTypes is the canonical set of accepted dependency type strings.
var ValidDependencyTypes = map[string]bool{
	"finish_to_start": true, "start_to_start": true, "finish_to_finish": true,
}

// Label returns the human-readable form used in connector descriptions.
func (t DependencyType) Label() string {
	switch t {
	case StartToStart:
		return "start to start"
	case FinishToFinish:
		return "finish to finish"
	default:
		return "finish to start"
	}
}
