package services

import (
	"errors"
	"fmt"

	"tanzo-api/app/models"
	"tanzo-api/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

// CreateUser is the only path that persists a new user, so every entry
// point (register and admin create alike) stores a bcrypt hash.
func (s *UserService) CreateUser(email, password string) (*models.User, error) {
	count, err := s.users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &models.User{Email: email, Password: string(hash)}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) ValidateCredentials(email, password string) (*models.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) GetUser(id uint) (*models.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) ListUsers() ([]models.User, error) { return s.users.All() }

func (s *UserService) UpdateUser(id uint, email, password string) (*models.User, error) {
	u, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}
	u.Email = email
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u.Password = string(hash)
	if err := s.users.Save(u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUser removes the user and cascades to their projects.
func (s *UserService) DeleteUser(id uint) error {
	u, err := s.GetUser(id)
	if err != nil {
		return err
	}
	return s.users.Delete(u)
}
