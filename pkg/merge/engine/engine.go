// Package engine implements the roadmap merge core: branch grouping by
// normalized title, per-group deduplicating merges, and the statistics
// reported by merge previews. Everything here is a pure function of its
// inputs; source roadmaps are never mutated.
package engine

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"mantrix/entities"
)

// ValidationError marks caller mistakes. The HTTP boundary maps it to 400.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// NormalizeTitle builds the key used for both branch grouping and module
// deduplication: lower-case, trimmed, with spaces/hyphens/underscores removed.
func NormalizeTitle(title string) string {
	t := strings.ToLower(strings.TrimSpace(title))
	t = strings.ReplaceAll(t, " ", "")
	t = strings.ReplaceAll(t, "-", "")
	t = strings.ReplaceAll(t, "_", "")
	return t
}

// GroupBranches partitions branches by normalized title. The returned key
// slice preserves first-encounter order, which downstream merging relies on:
// iterating it yields groups in source-roadmap order, then branch order.
func GroupBranches(branches []entities.Branch) ([]string, map[string][]entities.Branch) {
	order := make([]string, 0, len(branches))
	groups := make(map[string][]entities.Branch, len(branches))
	for _, b := range branches {
		key := NormalizeTitle(b.Title)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], b)
	}
	return order, groups
}

// MergeGroup collapses a group of same-topic branches into one. The first
// branch wins id and title. Core modules are always kept, even when their
// normalized title repeats; non-core modules are kept first-seen only.
func MergeGroup(group []entities.Branch) entities.Branch {
	base := group[0]
	merged := entities.Branch{
		ID:          base.ID,
		Title:       base.Title,
		Description: base.Description,
	}

	seen := make(map[string]struct{})
	for _, b := range group {
		for _, v := range b.Videos {
			key := NormalizeTitle(v.Title)
			if _, dup := seen[key]; dup && !v.IsCore {
				continue
			}
			merged.Videos = append(merged.Videos, v)
			seen[key] = struct{}{}
		}
	}

	d := 0
	for _, v := range merged.Videos {
		d += v.Duration
	}
	merged.EstimatedDuration = d

	if len(group) > 1 {
		note := fmt.Sprintf("(Merged from: %s)", strings.Join(sourceTitles(group), ", "))
		merged.Description = strings.TrimSpace(merged.Description + " " + note)
	}
	return merged
}

// sourceTitles lists the distinct contributing roadmap titles in
// first-seen order.
func sourceTitles(group []entities.Branch) []string {
	seen := make(map[string]struct{}, len(group))
	out := make([]string, 0, len(group))
	for _, b := range group {
		name := b.SourceRoadmap
		if name == "" {
			name = "Unknown"
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Merge combines at least two roadmaps into a single deduplicated one owned
// by userID. Sources are processed strictly in input order; the output is
// deterministic for a fixed input (modulo the generated id).
func Merge(sources []entities.Roadmap, userID string) (*entities.Roadmap, error) {
	if len(sources) < 2 {
		return nil, &ValidationError{Msg: "at least 2 roadmaps required for merging"}
	}

	titles := make([]string, 0, len(sources))
	ids := make([]string, 0, len(sources))
	var all []entities.Branch
	for _, r := range sources {
		titles = append(titles, r.Title)
		ids = append(ids, r.ID)
		for _, b := range r.Branches {
			tagged := b
			tagged.Videos = append([]entities.VideoModule(nil), b.Videos...)
			tagged.SourceRoadmap = r.Title
			all = append(all, tagged)
		}
	}

	order, groups := GroupBranches(all)
	branches := make([]entities.Branch, 0, len(order))
	total := 0
	for _, key := range order {
		group := groups[key]
		var mb entities.Branch
		if len(group) == 1 {
			mb = group[0]
			mb.SourceRoadmap = ""
		} else {
			mb = MergeGroup(group)
		}
		branches = append(branches, mb)
		total += mb.EstimatedDuration
	}

	return &entities.Roadmap{
		ID:             NewMergeID(),
		UserID:         userID,
		Title:          mergedTitle(titles),
		Description:    fmt.Sprintf("Intelligent merge of %d learning tracks", len(sources)),
		UserInput:      fmt.Sprintf("Merged from roadmaps: %s", strings.Join(ids, ", ")),
		TotalDuration:  total,
		Branches:       branches,
		MergedFrom:     ids,
		CustomizedFrom: nil, // a merge starts a new lineage root
		CreatedAt:      time.Now(),
	}, nil
}

// mergedTitle joins up to the first three source titles; extras are counted.
func mergedTitle(titles []string) string {
	head := titles
	if len(head) > 3 {
		head = head[:3]
	}
	t := "Merged: " + strings.Join(head, " + ")
	if len(titles) > 3 {
		t += fmt.Sprintf(" (+%d more)", len(titles)-3)
	}
	return t
}

// NewMergeID returns a fresh merged-roadmap id of the form mrg_xxxxxxxx.
func NewMergeID() string {
	u := uuid.New()
	return fmt.Sprintf("mrg_%x", u[:4])
}

type MergeStatistics struct {
	OriginalRoadmaps int     `json:"original_roadmaps"`
	OriginalDuration int     `json:"original_duration"`
	FinalDuration    int     `json:"final_duration"`
	DurationSaved    int     `json:"duration_saved"`
	OriginalBranches int     `json:"original_branches"`
	FinalBranches    int     `json:"final_branches"`
	EfficiencyGain   float64 `json:"efficiency_gain"`
}

// Stats compares a merge result against its sources. EfficiencyGain is a
// percentage rounded to one decimal and is 0 when the sources are empty.
func Stats(sources []entities.Roadmap, merged *entities.Roadmap) MergeStatistics {
	s := MergeStatistics{
		OriginalRoadmaps: len(sources),
		FinalDuration:    merged.TotalDuration,
		FinalBranches:    len(merged.Branches),
	}
	for _, r := range sources {
		s.OriginalDuration += r.TotalDuration
		s.OriginalBranches += len(r.Branches)
	}
	if saved := s.OriginalDuration - s.FinalDuration; saved > 0 {
		s.DurationSaved = saved
	}
	if s.OriginalDuration > 0 {
		pct := float64(s.DurationSaved) / float64(s.OriginalDuration) * 100
		s.EfficiencyGain = math.Round(pct*10) / 10
	}
	return s
}
