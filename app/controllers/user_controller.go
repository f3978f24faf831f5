package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"tanzo-api/app/dto"
	"tanzo-api/app/respond"
	"tanzo-api/app/services"
	"tanzo-api/app/validate"

	"github.com/gorilla/mux"
)

type UserController struct{ Users *services.UserService }

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.ListUsers()
	if err != nil {
		respond.ServerError(w)
		return
	}
	respond.Listing(w, map[string]any{"users": users})
}

func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	u, err := c.Users.GetUser(pathID(r))
	if err != nil {
		respond.Missing(w, "User does not exist")
		return
	}
	respond.Loaded(w, "User loaded successfully", "user", dto.NewUserResource(u))
}

func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.UserRequest
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
	respond.Created(w, "User created successfully", "user", u)
}

func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UserRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if errs := validate.Struct(req); errs != nil {
		respond.Invalid(w, errs)
		return
	}
	u, err := c.Users.UpdateUser(pathID(r), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.missingWithEcho(w)
			return
		}
		respond.ServerError(w)
		return
	}
	respond.Loaded(w, "User updated successfully", "user", u)
}

func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Users.DeleteUser(pathID(r)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.missingWithEcho(w)
			return
		}
		respond.ServerError(w)
		return
	}
	respond.Loaded(w, "User deleted successfully", "", nil)
}

// missingWithEcho builds the legacy error body that carries the full
// user listing next to the error. The listing is a fresh read-only
// query made only for this response.
func (c *UserController) missingWithEcho(w http.ResponseWriter) {
	users, err := c.Users.ListUsers()
	if err != nil {
		respond.ServerError(w)
		return
	}
	respond.MissingUserEcho(w, users)
}

func emailTakenErrors() validate.Errors {
	errs := validate.Errors{}
	errs.Add("email", "The email has already been taken.")
	return errs
}

func pathID(r *http.Request) uint {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id)
}
