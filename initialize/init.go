package initialize

import (
	"fmt"
	"net/http"

	"tanzo-api/app/controllers"
	"tanzo-api/app/db"
	jwtutil "tanzo-api/app/jwt"
	"tanzo-api/app/middleware"
	"tanzo-api/app/models"
	"tanzo-api/app/repo"
	"tanzo-api/app/services"
	"tanzo-api/config"
	"tanzo-api/global"
	"tanzo-api/router"

	"github.com/rs/cors"
	"gorm.io/gorm"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Router   http.Handler
	Auth     *controllers.AuthController
	Users    *controllers.UserController
	Projects *controllers.ProjectController
	UserSvc  *services.UserService
	ProjSvc  *services.ProjectService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	gdb, err := db.Connect(db.Config{Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.Project{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	app := Assemble(cfg, gdb, signer)
	return app, nil
}

// Assemble wires repos, services, controllers and the router on top of
// an already opened database. Tests call it directly with sqlite.
func Assemble(cfg *config.Config, gdb *gorm.DB, signer *jwtutil.Signer) *App {
	userRepo := repo.NewUserRepository(gdb)
	projectRepo := repo.NewProjectRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	projSvc := services.NewProjectService(projectRepo)

	authCtrl := controllers.NewAuthController(userSvc, signer)
	userCtrl := controllers.NewUserController(userSvc)
	projectCtrl := controllers.NewProjectController(projSvc)
	mw := &middleware.Auth{Signer: signer, Users: userSvc}

	h := router.New(authCtrl, userCtrl, projectCtrl, mw)
	h = middleware.Logging(h)
	h = cors.AllowAll().Handler(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Auth: authCtrl, Users: userCtrl, Projects: projectCtrl, UserSvc: userSvc, ProjSvc: projSvc}
}
