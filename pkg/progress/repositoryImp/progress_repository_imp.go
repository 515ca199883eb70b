package repositoryImp

import (
	"gorm.io/gorm"

	"mantrix/entities"
	"mantrix/pkg/progress/repository"
)

type progressRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProgressRepository { return &progressRepo{db} }

func (r *progressRepo) Insert(p *entities.ModuleProgress) error { return r.db.Create(p).Error }

func (r *progressRepo) Exists(uid, moduleID string) (bool, error) {
	var n int64
	err := r.db.Model(&entities.ModuleProgress{}).
		Where("user_id = ? AND module_id = ?", uid, moduleID).
		Count(&n).Error
	return n > 0, err
}

func (r *progressRepo) ListByUser(uid string) ([]entities.ModuleProgress, error) {
	var ps []entities.ModuleProgress
	if err := r.db.Where("user_id = ?", uid).Order("completed_at DESC").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}
