package service

import "mantrix/entities"

type RoadmapService interface {
	Generate(uid, userInput string) ([]entities.Roadmap, error)
	Customize(uid, roadmapID, title string, branchIDs []string) (*entities.Roadmap, error)
}
