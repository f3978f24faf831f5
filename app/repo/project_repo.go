package repo

import (
	"tanzo-api/app/models"

	"gorm.io/gorm"
)

type ProjectRepository struct{ db *gorm.DB }

func NewProjectRepository(db *gorm.DB) *ProjectRepository { return &ProjectRepository{db: db} }

func (r *ProjectRepository) Create(p *models.Project) error { return r.db.Create(p).Error }

func (r *ProjectRepository) FindByID(id uint) (*models.Project, error) {
	var p models.Project
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) FindByUser(userID uint) ([]models.Project, error) {
	var projects []models.Project
	return projects, r.db.Where("user_id = ?", userID).Find(&projects).Error
}

func (r *ProjectRepository) All() ([]models.Project, error) {
	var projects []models.Project
	return projects, r.db.Find(&projects).Error
}

func (r *ProjectRepository) Save(p *models.Project) error { return r.db.Save(p).Error }

func (r *ProjectRepository) Delete(p *models.Project) error { return r.db.Delete(p).Error }
