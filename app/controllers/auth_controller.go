package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tanzo-api/app/dto"
	jwtutil "tanzo-api/app/jwt"
	"tanzo-api/app/middleware"
	"tanzo-api/app/respond"
	"tanzo-api/app/services"
	"tanzo-api/app/validate"
)

type AuthController struct {
	Users  *services.UserService
	Signer *jwtutil.Signer
}

func NewAuthController(users *services.UserService, signer *jwtutil.Signer) *AuthController {
	return &AuthController{Users: users, Signer: signer}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if errs := validate.Struct(req); errs != nil {
		respond.Invalid(w, errs)
		return
	}
	u, err := c.Users.CreateUser(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			respond.Invalid(w, emailTakenErrors())
			return
		}
		respond.ServerError(w)
		return
	}
	token, err := c.Signer.Sign(u.ID, u.Email)
	if err != nil {
		respond.ServerError(w)
		return
	}
	respond.Issued(w, http.StatusCreated, dto.RegisterSuccess{Token: token, Email: u.Email})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	u, err := c.Users.ValidateCredentials(req.Email, req.Password)
	if err != nil {
		respond.Unauthorised(w)
		return
	}
	token, err := c.Signer.Sign(u.ID, u.Email)
	if err != nil {
		respond.ServerError(w)
		return
	}
	respond.Issued(w, http.StatusOK, dto.LoginSuccess{Token: token, UserID: u.ID})
}

func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	u := middleware.CurrentUser(r.Context())
	respond.Issued(w, http.StatusOK, u)
}
