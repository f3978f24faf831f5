package dto

type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterSuccess struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type LoginSuccess struct {
	Token  string `json:"token"`
	UserID uint   `json:"userId"`
}
