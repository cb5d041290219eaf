package models

type GoalType string

const (
	GoalCareer GoalType = "career"
	GoalBucket GoalType = "bucket"
)

// Goal is a long-term objective. Progress is clamped to [0,100] by the
// store's adjustment path, which is also the only path that reconciles
// Progress with Completed. Toggling Completed directly leaves Progress
// untouched.
type Goal struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Reason    string   `json:"reason"`
	Action    string   `json:"action"`
	Progress  int      `json:"progress"` // 0-100
	Type      GoalType `json:"type"`
	Completed bool     `json:"completed"`
}
