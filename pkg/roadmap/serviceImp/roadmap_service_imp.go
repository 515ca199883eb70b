package serviceImp

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"mantrix/entities"
	"mantrix/pkg/ai"
	"mantrix/pkg/roadmap/repository"
)

type RoadmapSvc struct {
	llm  ai.Client
	repo repository.RoadmapRepository
}

func New(llm ai.Client, repo repository.RoadmapRepository) *RoadmapSvc {
	return &RoadmapSvc{llm: llm, repo: repo}
}

// Generate asks the LLM for 2-3 roadmap drafts, falls back to the
// deterministic generator when the call fails, then persists each draft
// under the caller's ownership.
func (s *RoadmapSvc) Generate(uid, userInput string) ([]entities.Roadmap, error) {
	drafts, err := s.llm.GenerateRoadmaps(userInput)
	if err != nil || len(drafts) < 2 {
		log.Printf("[roadmap] generation fallback: %v", err)
		drafts = ai.Fallback(userInput)
	}

	saved := make([]entities.Roadmap, 0, len(drafts))
	for _, d := range drafts {
		d.ID = uuid.NewString()
		d.UserID = uid
		d.UserInput = userInput
		for i := range d.Branches {
			d.Branches[i].ID = uuid.NewString()
			for j := range d.Branches[i].Videos {
				d.Branches[i].Videos[j].ID = uuid.NewString()
			}
		}
		d.RecomputeDurations()
		if err := s.repo.Create(&d); err != nil {
			return nil, fmt.Errorf("save roadmap: %w", err)
		}
		saved = append(saved, d)
	}
	return saved, nil
}

// Customize derives a new roadmap from an existing one by keeping only the
// selected branches. The copy records customized_from lineage and leaves the
// source untouched.
func (s *RoadmapSvc) Customize(uid, roadmapID, title string, branchIDs []string) (*entities.Roadmap, error) {
	src, err := s.repo.FindByID(roadmapID, uid)
	if err != nil {
		return nil, err
	}

	want := make(map[string]struct{}, len(branchIDs))
	for _, id := range branchIDs {
		want[id] = struct{}{}
	}
	var picked []entities.Branch
	for _, b := range src.Branches {
		if _, ok := want[b.ID]; !ok {
			continue
		}
		kept := b
		kept.Videos = append([]entities.VideoModule(nil), b.Videos...)
		picked = append(picked, kept)
	}
	if len(picked) == 0 {
		return nil, fmt.Errorf("no matching branches selected")
	}

	if title == "" {
		title = src.Title + " (custom)"
	}
	out := &entities.Roadmap{
		ID:             uuid.NewString(),
		UserID:         uid,
		Title:          title,
		Description:    src.Description,
		Branches:       picked,
		CustomizedFrom: &src.ID,
	}
	out.RecomputeDurations()
	if err := s.repo.Create(out); err != nil {
		return nil, fmt.Errorf("save customized roadmap: %w", err)
	}
	return out, nil
}
