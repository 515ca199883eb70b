package repository

import "mantrix/entities"

type ProgressRepository interface {
	Insert(p *entities.ModuleProgress) error
	Exists(uid, moduleID string) (bool, error)
	ListByUser(uid string) ([]entities.ModuleProgress, error)
}
