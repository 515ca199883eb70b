package entities

import "time"

// ModuleProgress records one completed module for one user. The
// (user_id, module_id) pair is unique; marking twice is a no-op.
type ModuleProgress struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            string    `gorm:"index;uniqueIndex:idx_user_module;size:100" json:"user_id"`
	ModuleID          string    `gorm:"uniqueIndex:idx_user_module;size:36" json:"module_id"`
	BranchID          string    `gorm:"size:36" json:"branch_id"`
	RoadmapID         string    `gorm:"index;size:36" json:"roadmap_id"`
	DurationCompleted int       `json:"duration_completed"`
	CompletedAt       time.Time `json:"completed_at"`
}
