package serviceImp

import (
	"fmt"
	"time"

	"mantrix/entities"
	"mantrix/pkg/calendar"
	"mantrix/pkg/merge/engine"
	"mantrix/pkg/merge/service"
	roadmaprepo "mantrix/pkg/roadmap/repository"
)

// MergeSvc orchestrates merge operations: fetch sources, run the engine,
// optionally schedule, persist. It holds no state between calls beyond its
// collaborators.
type MergeSvc struct {
	roadmaps roadmaprepo.RoadmapRepository
	now      func() time.Time
}

func New(roadmaps roadmaprepo.RoadmapRepository) *MergeSvc {
	return &MergeSvc{roadmaps: roadmaps, now: time.Now}
}

// fetchSources resolves ids in the order given. Ids that do not resolve or
// belong to someone else are silently skipped; fewer than two survivors is a
// validation failure.
func (s *MergeSvc) fetchSources(ids []string, uid string) ([]entities.Roadmap, error) {
	sources := make([]entities.Roadmap, 0, len(ids))
	for _, id := range ids {
		r, err := s.roadmaps.FindByID(id, uid)
		if err != nil {
			continue
		}
		sources = append(sources, *r)
	}
	if len(sources) < 2 {
		return nil, &engine.ValidationError{Msg: "at least 2 roadmaps required for merging"}
	}
	return sources, nil
}

func (s *MergeSvc) MergeRoadmaps(ids []string, uid, scheduleMode string, calendarView bool, dailyStudyHours float64) (*service.MergeResult, error) {
	sources, err := s.fetchSources(ids, uid)
	if err != nil {
		return nil, err
	}

	merged, err := engine.Merge(sources, uid)
	if err != nil {
		return nil, err
	}

	res := &service.MergeResult{
		MergedRoadmap:   merged,
		SourceCount:     len(sources),
		ScheduleMode:    scheduleMode,
		CalendarEnabled: calendarView,
	}
	if scheduleMode == "auto" && calendarView {
		res.Calendar = calendar.BuildSchedule(merged, dailyStudyHours, s.now())
	}

	if err := s.roadmaps.Create(merged); err != nil {
		return nil, fmt.Errorf("save merged roadmap: %w", err)
	}
	return res, nil
}

func (s *MergeSvc) PreviewMerge(ids []string, uid string) (*entities.Roadmap, *engine.MergeStatistics, error) {
	sources, err := s.fetchSources(ids, uid)
	if err != nil {
		return nil, nil, err
	}
	merged, err := engine.Merge(sources, uid)
	if err != nil {
		return nil, nil, err
	}
	stats := engine.Stats(sources, merged)
	return merged, &stats, nil
}

// MergeableRoadmaps lists the owner's roadmaps that are not themselves merge
// products, preventing nested merges of merges.
func (s *MergeSvc) MergeableRoadmaps(uid string) ([]service.RoadmapSummary, error) {
	all, err := s.roadmaps.ListByUser(uid)
	if err != nil {
		return nil, err
	}
	out := make([]service.RoadmapSummary, 0, len(all))
	for _, r := range all {
		if r.IsMergeProduct() {
			continue
		}
		out = append(out, service.RoadmapSummary{
			ID:                r.ID,
			Title:             r.Title,
			Description:       r.Description,
			EstimatedDuration: r.TotalDuration,
			BranchCount:       len(r.Branches),
		})
	}
	return out, nil
}
