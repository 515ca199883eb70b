package service

import "mantrix/entities"

// Source is a curated catalog entry users can import roadmaps from.
type Source struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type ExternalService interface {
	Sources() []Source
	ImportFromURL(uid, rawURL string) (*entities.Roadmap, error)
}
