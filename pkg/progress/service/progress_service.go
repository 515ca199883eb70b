package service

import "mantrix/entities"

// CompleteResult reports whether the mark created a new record or hit
// an already-completed module.
type CompleteResult struct {
	ModuleID         string `json:"module_id"`
	AlreadyCompleted bool   `json:"already_completed"`
}

// RoadmapProgress is the per-roadmap slice of a user's summary.
type RoadmapProgress struct {
	RoadmapID        string  `json:"roadmap_id"`
	Title            string  `json:"title"`
	TotalModules     int     `json:"total_modules"`
	CompletedModules int     `json:"completed_modules"`
	CompletionPct    float64 `json:"completion_pct"`
}

type ProgressSummary struct {
	TotalCompleted   int                      `json:"total_completed"`
	SecondsCompleted int                      `json:"seconds_completed"`
	Roadmaps         []RoadmapProgress        `json:"roadmaps"`
	Recent           []entities.ModuleProgress `json:"recent"`
}

type ProgressService interface {
	MarkComplete(uid, roadmapID, moduleID string) (*CompleteResult, error)
	Summary(uid string) (*ProgressSummary, error)
}
