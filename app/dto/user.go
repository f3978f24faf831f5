package dto

import "tanzo-api/app/models"

type UserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResource is the public projection returned by get-by-id.
// Timestamps use the m/d/Y form the rest of the API's resources use.
type UserResource struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewUserResource(u *models.User) UserResource {
	return UserResource{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format("01/02/2006"),
		UpdatedAt: u.UpdatedAt.Format("01/02/2006"),
	}
}
