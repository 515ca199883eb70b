package repository

import "mantrix/entities"

type RoadmapRepository interface {
	Create(r *entities.Roadmap) error
	FindByID(id, uid string) (*entities.Roadmap, error)
	ListByUser(uid string) ([]entities.Roadmap, error)
	Delete(id, uid string) (bool, error)
}
