package repositoryImp

import (
	"gorm.io/gorm"

	"mantrix/entities"
	"mantrix/pkg/roadmap/repository"
)

type roadmapRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RoadmapRepository { return &roadmapRepo{db} }

func (r *roadmapRepo) Create(m *entities.Roadmap) error { return r.db.Create(m).Error }

func (r *roadmapRepo) FindByID(id, uid string) (*entities.Roadmap, error) {
	var m entities.Roadmap
	if err := r.db.Where("id = ? AND user_id = ?", id, uid).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *roadmapRepo) ListByUser(uid string) ([]entities.Roadmap, error) {
	var ms []entities.Roadmap
	if err := r.db.Where("user_id = ?", uid).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}

func (r *roadmapRepo) Delete(id, uid string) (bool, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, uid).Delete(&entities.Roadmap{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
