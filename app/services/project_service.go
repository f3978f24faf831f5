package services

import (
	"errors"

	"tanzo-api/app/models"
	"tanzo-api/app/repo"

	"gorm.io/gorm"
)

type ProjectService struct{ projects *repo.ProjectRepository }

func NewProjectService(projects *repo.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// authorize is the single ownership policy: every read and mutation of
// an existing project passes through it before anything else happens.
func authorize(p *models.Project, userID uint) error {
	if p.UserID != userID {
		return ErrNotOwned
	}
	return nil
}

func (s *ProjectService) ListForUser(userID uint) ([]models.Project, error) {
	return s.projects.FindByUser(userID)
}

func (s *ProjectService) ListAll() ([]models.Project, error) { return s.projects.All() }

func (s *ProjectService) GetProject(id, userID uint) (*models.Project, error) {
	p, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if err := authorize(p, userID); err != nil {
		return nil, err
	}
	return p, nil
}

// CreateProject always records the session user as owner; the caller
// cannot create a project on someone else's behalf.
func (s *ProjectService) CreateProject(userID uint, name, description string) (*models.Project, error) {
	p := &models.Project{Name: name, Description: description, UserID: userID}
	if err := s.projects.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) UpdateProject(id, userID uint, name, description string) (*models.Project, error) {
	p, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if err := authorize(p, userID); err != nil {
		return nil, err
	}
	p.Name = name
	p.Description = description
	if err := s.projects.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) DeleteProject(id, userID uint) error {
	p, err := s.find(id)
	if err != nil {
		return err
	}
	if err := authorize(p, userID); err != nil {
		return err
	}
	return s.projects.Delete(p)
}

func (s *ProjectService) find(id uint) (*models.Project, error) {
	p, err := s.projects.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
