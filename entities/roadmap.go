package entities

import "time"

// VideoModule is the smallest schedulable unit of study content.
// Duration is in seconds; generation keeps it within [300,1800] by
// convention but the merge path does not re-validate it.
type VideoModule struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration int    `json:"duration"`
	IsCore   bool   `json:"isCore"`
}

// Branch groups video modules under one topic within a roadmap.
type Branch struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description,omitempty"`
	Videos            []VideoModule `json:"videos"`
	EstimatedDuration int           `json:"estimatedDuration"`

	// SourceRoadmap tags a branch with the title of the roadmap it came
	// from while a merge is in flight. Never serialized or persisted.
	SourceRoadmap string `json:"-"`
}

type Roadmap struct {
	ID            string   `gorm:"primaryKey;size:36" json:"id"`
	UserID        string   `gorm:"index;size:100" json:"user_id"`
	Title         string   `gorm:"size:500" json:"title"`
	Description   string   `json:"description"`
	UserInput     string   `json:"user_input,omitempty"`
	TotalDuration int      `json:"total_duration"`
	Branches      []Branch `gorm:"serializer:json" json:"branches"`

	// Lineage. MergedFrom lists source roadmap ids for merge products;
	// CustomizedFrom points at the roadmap a branch-selection copy was
	// derived from. A roadmap never carries both.
	MergedFrom     []string `gorm:"serializer:json" json:"merged_from,omitempty"`
	CustomizedFrom *string  `json:"customized_from,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecomputeDurations resets every branch's estimated duration and the
// roadmap total from the literal module content.
func (r *Roadmap) RecomputeDurations() {
	total := 0
	for i := range r.Branches {
		d := 0
		for _, v := range r.Branches[i].Videos {
			d += v.Duration
		}
		r.Branches[i].EstimatedDuration = d
		total += d
	}
	r.TotalDuration = total
}

// IsMergeProduct reports whether this roadmap was produced by a merge.
func (r *Roadmap) IsMergeProduct() bool { return len(r.MergedFrom) > 0 }
