package serviceImp

import (
	"sort"

	progressrepo "mantrix/pkg/progress/repository"
	"mantrix/pkg/recommend/service"
	roadmaprepo "mantrix/pkg/roadmap/repository"
)

type RecommendSvc struct {
	roadmaps roadmaprepo.RoadmapRepository
	progress progressrepo.ProgressRepository
}

func New(roadmaps roadmaprepo.RoadmapRepository, progress progressrepo.ProgressRepository) *RecommendSvc {
	return &RecommendSvc{roadmaps: roadmaps, progress: progress}
}

// NextUp lists the user's uncompleted modules, core content first and
// shorter modules before longer ones within each tier.
func (s *RecommendSvc) NextUp(uid string, limit int) ([]service.Recommendation, error) {
	roadmaps, err := s.roadmaps.ListByUser(uid)
	if err != nil {
		return nil, err
	}
	records, err := s.progress.ListByUser(uid)
	if err != nil {
		return nil, err
	}
	completed := make(map[string]bool, len(records))
	for _, rec := range records {
		completed[rec.ModuleID] = true
	}

	out := []service.Recommendation{}
	for _, r := range roadmaps {
		for _, b := range r.Branches {
			for _, v := range b.Videos {
				if completed[v.ID] {
					continue
				}
				out = append(out, service.Recommendation{
					ModuleID:     v.ID,
					Title:        v.Title,
					Duration:     v.Duration,
					IsCore:       v.IsCore,
					BranchTitle:  b.Title,
					RoadmapID:    r.ID,
					RoadmapTitle: r.Title,
				})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsCore != out[j].IsCore {
			return out[i].IsCore
		}
		return out[i].Duration < out[j].Duration
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
