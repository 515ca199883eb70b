// pkg/ai/mock_client.go

package ai

import (
	"strings"

	"mantrix/entities"
)

type mockClient struct{}

// NewMock returns a client that produces deterministic roadmaps without any
// external call. Used when no LLM endpoint is configured, and as the
// fallback shape when generation fails.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) GenerateRoadmaps(userInput string) ([]entities.Roadmap, error) {
	return Fallback(userInput), nil
}

// Fallback builds two plain roadmaps around the user's topic: a fundamentals
// track and a project track. Durations stay inside the 300-1800s convention.
func Fallback(userInput string) []entities.Roadmap {
	topic := strings.TrimSpace(userInput)
	if topic == "" {
		topic = "General Programming"
	}

	fundamentals := entities.Roadmap{
		Title:       topic + " Fundamentals",
		Description: "Foundation-first track for " + topic,
		Branches: []entities.Branch{
			{
				Title: topic + " Basics",
				Videos: []entities.VideoModule{
					{Title: "Introduction to " + topic, Duration: 600, IsCore: true},
					{Title: "Core Concepts of " + topic, Duration: 1200, IsCore: true},
					{Title: "Common Pitfalls in " + topic, Duration: 900, IsCore: false},
				},
			},
			{
				Title: "Practice and Tooling",
				Videos: []entities.VideoModule{
					{Title: "Setting Up Your Environment", Duration: 600, IsCore: true},
					{Title: "Hands-on Exercises", Duration: 1500, IsCore: false},
				},
			},
		},
	}

	applied := entities.Roadmap{
		Title:       topic + " in Practice",
		Description: "Project-driven track for " + topic,
		Branches: []entities.Branch{
			{
				Title: topic + " Basics",
				Videos: []entities.VideoModule{
					{Title: "Introduction to " + topic, Duration: 600, IsCore: true},
					{Title: "Quick Refresher", Duration: 450, IsCore: false},
				},
			},
			{
				Title: "Building a Project",
				Videos: []entities.VideoModule{
					{Title: "Planning Your First Project", Duration: 900, IsCore: true},
					{Title: "Step-by-step Build", Duration: 1800, IsCore: true},
					{Title: "Polish and Ship", Duration: 1200, IsCore: false},
				},
			},
		},
	}

	fundamentals.RecomputeDurations()
	applied.RecomputeDurations()
	return []entities.Roadmap{fundamentals, applied}
}
