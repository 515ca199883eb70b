package service

import (
	"mantrix/entities"
	"mantrix/pkg/calendar"
	"mantrix/pkg/merge/engine"
)

// MergeResult is the payload returned after a persisted merge.
type MergeResult struct {
	MergedRoadmap   *entities.Roadmap                      `json:"merged_roadmap"`
	Calendar        map[string][]calendar.ScheduledModule  `json:"calendar,omitempty"`
	SourceCount     int                                    `json:"source_count"`
	ScheduleMode    string                                 `json:"schedule_mode"`
	CalendarEnabled bool                                   `json:"calendar_enabled"`
}

// RoadmapSummary is the mergeable-roadmap listing shape.
type RoadmapSummary struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	EstimatedDuration int    `json:"estimatedDuration"`
	BranchCount       int    `json:"branchCount"`
}

type MergeService interface {
	MergeRoadmaps(ids []string, uid, scheduleMode string, calendarView bool, dailyStudyHours float64) (*MergeResult, error)
	PreviewMerge(ids []string, uid string) (*entities.Roadmap, *engine.MergeStatistics, error)
	MergeableRoadmaps(uid string) ([]RoadmapSummary, error)
}
