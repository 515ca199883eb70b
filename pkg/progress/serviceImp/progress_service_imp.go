package serviceImp

import (
	"fmt"
	"math"
	"time"

	"mantrix/entities"
	"mantrix/pkg/progress/repository"
	"mantrix/pkg/progress/service"
	roadmaprepo "mantrix/pkg/roadmap/repository"
)

const recentLimit = 10

type ProgressSvc struct {
	progress repository.ProgressRepository
	roadmaps roadmaprepo.RoadmapRepository
	now      func() time.Time
}

func New(progress repository.ProgressRepository, roadmaps roadmaprepo.RoadmapRepository) *ProgressSvc {
	return &ProgressSvc{progress: progress, roadmaps: roadmaps, now: time.Now}
}

// MarkComplete records a finished module. The module must belong to a
// roadmap the user owns; marking the same module twice is a no-op.
func (s *ProgressSvc) MarkComplete(uid, roadmapID, moduleID string) (*service.CompleteResult, error) {
	r, err := s.roadmaps.FindByID(roadmapID, uid)
	if err != nil {
		return nil, err
	}

	var found *entities.VideoModule
	branchID := ""
	for bi := range r.Branches {
		for vi := range r.Branches[bi].Videos {
			if r.Branches[bi].Videos[vi].ID == moduleID {
				found = &r.Branches[bi].Videos[vi]
				branchID = r.Branches[bi].ID
			}
		}
	}
	if found == nil {
		return nil, fmt.Errorf("module %s not found in roadmap %s", moduleID, roadmapID)
	}

	done, err := s.progress.Exists(uid, moduleID)
	if err != nil {
		return nil, err
	}
	if done {
		return &service.CompleteResult{ModuleID: moduleID, AlreadyCompleted: true}, nil
	}

	rec := &entities.ModuleProgress{
		UserID:            uid,
		ModuleID:          moduleID,
		BranchID:          branchID,
		RoadmapID:         r.ID,
		DurationCompleted: found.Duration,
		CompletedAt:       s.now(),
	}
	if err := s.progress.Insert(rec); err != nil {
		return nil, err
	}
	return &service.CompleteResult{ModuleID: moduleID, AlreadyCompleted: false}, nil
}

func (s *ProgressSvc) Summary(uid string) (*service.ProgressSummary, error) {
	records, err := s.progress.ListByUser(uid)
	if err != nil {
		return nil, err
	}
	roadmaps, err := s.roadmaps.ListByUser(uid)
	if err != nil {
		return nil, err
	}

	completed := make(map[string]bool, len(records))
	out := &service.ProgressSummary{Roadmaps: []service.RoadmapProgress{}, Recent: []entities.ModuleProgress{}}
	for _, rec := range records {
		completed[rec.ModuleID] = true
		out.TotalCompleted++
		out.SecondsCompleted += rec.DurationCompleted
	}

	for _, r := range roadmaps {
		rp := service.RoadmapProgress{RoadmapID: r.ID, Title: r.Title}
		for _, b := range r.Branches {
			for _, v := range b.Videos {
				rp.TotalModules++
				if completed[v.ID] {
					rp.CompletedModules++
				}
			}
		}
		if rp.TotalModules > 0 {
			pct := float64(rp.CompletedModules) / float64(rp.TotalModules) * 100
			rp.CompletionPct = math.Round(pct*10) / 10
		}
		out.Roadmaps = append(out.Roadmaps, rp)
	}

	// ListByUser returns newest first.
	if len(records) > recentLimit {
		records = records[:recentLimit]
	}
	out.Recent = records
	return out, nil
}
