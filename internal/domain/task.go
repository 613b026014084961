package domain

// Task is a single schedulable activity supplied by the caller. Start and
// Finish are calendar date strings (YYYY-MM-DD, or ISO-8601 with time and
// offset). Dependencies lists predecessor task IDs.
type Task struct {
	ID           string   `json:"id"`
	Name         string   `json:"name,omitempty"`
	Start        string   `json:"start"`
	Finish       string   `json:"finish"`
	Dependencies []string `json:"dependencies,omitempty"`
}

// TaskMetrics holds the derived schedule numbers for one task. All offsets
// are in days relative to project day zero.
type TaskMetrics struct {
	Duration       float64 `json:"duration"`
	EarliestStart  float64 `json:"earliestStart"`
	EarliestFinish float64 `json:"earliestFinish"`
	LatestStart    float64 `json:"latestStart"`
	LatestFinish   float64 `json:"latestFinish"`
	Slack          float64 `json:"slack"`
	Critical       bool    `json:"critical"`
}

// Wave is a group of tasks sharing the same earliest start, i.e. tasks that
// could run in parallel.
type Wave struct {
	Index    int      `json:"index"`
	TaskIDs  []string `json:"taskIds"`
	Critical bool     `json:"critical"`
}

// CPMResult is the aggregate output of one critical path analysis.
type CPMResult struct {
	Tasks           map[string]*TaskMetrics `json:"tasks"`
	CriticalPath    []string                `json:"criticalPath"`
	ProjectDuration float64                 `json:"projectDuration"`
	Waves           []Wave                  `json:"waves,omitempty"`
}
