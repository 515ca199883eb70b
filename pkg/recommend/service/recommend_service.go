package service

// Recommendation is one not-yet-completed module the user should
// tackle next.
type Recommendation struct {
	ModuleID     string `json:"module_id"`
	Title        string `json:"title"`
	Duration     int    `json:"duration"`
	IsCore       bool   `json:"is_core"`
	BranchTitle  string `json:"branch_title"`
	RoadmapID    string `json:"roadmap_id"`
	RoadmapTitle string `json:"roadmap_title"`
}

type RecommendService interface {
	NextUp(uid string, limit int) ([]Recommendation, error)
}
