package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tanzo-api/app/dto"
	"tanzo-api/app/middleware"
	"tanzo-api/app/respond"
	"tanzo-api/app/services"
	"tanzo-api/app/validate"
)

type ProjectController struct{ Projects *services.ProjectService }

func NewProjectController(projects *services.ProjectService) *ProjectController {
	return &ProjectController{Projects: projects}
}

func (c *ProjectController) List(w http.ResponseWriter, r *http.Request) {
	u := middleware.CurrentUser(r.Context())
	projects, err := c.Projects.ListForUser(u.ID)
	if err != nil {
		respond.ServerError(w)
		return
	}
	// An empty list is an error condition here, not an empty array.
	if len(projects) == 0 {
		respond.Missing(w, "No projects for the logged in user")
		return
	}
	respond.Listing(w, map[string]any{"user_id": u.ID, "projects": projects})
}

func (c *ProjectController) Get(w http.ResponseWriter, r *http.Request) {
	u := middleware.CurrentUser(r.Context())
	p, err := c.Projects.GetProject(pathID(r), u.ID)
	if err != nil {
		c.missing(w, err)
		return
	}
	respond.Loaded(w, "Project loaded successfully", "project", p)
}

func (c *ProjectController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ProjectRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if errs := validate.Struct(req); errs != nil {
		respond.Invalid(w, errs)
		return
	}
	// Ownership comes from the session, never from the request body.
	u := middleware.CurrentUser(r.Context())
	p, err := c.Projects.CreateProject(u.ID, req.Name, req.Description)
	if err != nil {
		respond.ServerError(w)
		return
	}
	respond.Created(w, "Project created successfully", "project", p)
}

func (c *ProjectController) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.ProjectRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if errs := validate.Struct(req); errs != nil {
		respond.Invalid(w, errs)
		return
	}
	u := middleware.CurrentUser(r.Context())
	p, err := c.Projects.UpdateProject(pathID(r), u.ID, req.Name, req.Description)
	if err != nil {
		c.missingOnMutate(w, err)
		return
	}
	respond.Loaded(w, "Project updated successfully", "project", p)
}

func (c *ProjectController) Delete(w http.ResponseWriter, r *http.Request) {
	u := middleware.CurrentUser(r.Context())
	if err := c.Projects.DeleteProject(pathID(r), u.ID); err != nil {
		c.missingOnMutate(w, err)
		return
	}
	respond.Loaded(w, "Project deleted successfully", "", nil)
}

// missing maps read failures: both branches answer 404 but with
// distinct messages so callers can tell absence from foreign ownership.
func (c *ProjectController) missing(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotOwned):
		respond.Missing(w, "The project does not belong to the logged in user")
	case errors.Is(err, services.ErrNotFound):
		respond.Missing(w, "Project does not exist")
	default:
		respond.ServerError(w)
	}
}

// missingOnMutate keeps the legacy mutate-path shape: an absent id
// answers 200 with the error plus the full project listing, while a
// foreign project answers like an unowned read.
func (c *ProjectController) missingOnMutate(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotOwned):
		respond.Missing(w, "The project does not belong to the logged in user")
	case errors.Is(err, services.ErrNotFound):
		projects, lerr := c.Projects.ListAll()
		if lerr != nil {
			respond.ServerError(w)
			return
		}
		respond.MissingProjectEcho(w, projects)
	default:
		respond.ServerError(w)
	}
}
