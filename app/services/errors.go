package services

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrNotOwned           = errors.New("record does not belong to the user")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
