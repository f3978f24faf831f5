package dto

type ProjectRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"required"`
	UserID      uint   `json:"user_id" validate:"required"`
}
