// pkg/ai/client.go

package ai

import "mantrix/entities"

// Client generates structured learning roadmaps from free-form user input.
// Implementations return 2-3 roadmap drafts without ids or owners; the
// roadmap service assigns those before persisting.
type Client interface {
	GenerateRoadmaps(userInput string) ([]entities.Roadmap, error)
}
