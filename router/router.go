package router

import (
	"net/http"

	"tanzo-api/app/controllers"
	"tanzo-api/app/middleware"

	"github.com/gorilla/mux"
)

func New(authCtrl *controllers.AuthController, userCtrl *controllers.UserController, projectCtrl *controllers.ProjectController, mw *middleware.Auth) http.Handler {
	r := mux.NewRouter()

	// public
	r.HandleFunc("/login", authCtrl.Login).Methods(http.MethodPost)
	r.HandleFunc("/register", authCtrl.Register).Methods(http.MethodPost)

	// everything else sits behind the auth gateway
	protected := r.PathPrefix("/").Subrouter()
	protected.Use(mw.RequireAuth)

	protected.HandleFunc("/profile", authCtrl.Profile).Methods(http.MethodGet)

	protected.HandleFunc("/users", userCtrl.List).Methods(http.MethodGet)
	protected.HandleFunc("/users", userCtrl.Create).Methods(http.MethodPost)
	protected.HandleFunc("/users/{id}", userCtrl.Get).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}", userCtrl.Update).Methods(http.MethodPut)
	protected.HandleFunc("/users/{id}", userCtrl.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/projects", projectCtrl.List).Methods(http.MethodGet)
	protected.HandleFunc("/projects", projectCtrl.Create).Methods(http.MethodPost)
	protected.HandleFunc("/projects/{id}", projectCtrl.Get).Methods(http.MethodGet)
	protected.HandleFunc("/projects/{id}", projectCtrl.Update).Methods(http.MethodPut)
	protected.HandleFunc("/projects/{id}", projectCtrl.Delete).Methods(http.MethodDelete)

	return r
}
