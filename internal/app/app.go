package app

import (
	"net/http"

	"gorm.io/gorm"

	"visionx-go/internal/config"
	"visionx-go/internal/db"
	communitydomain "visionx-go/internal/domain/community"
	coachingdomain "visionx-go/internal/domain/coaching"
	reportsdomain "visionx-go/internal/domain/reports"
	tournamentdomain "visionx-go/internal/domain/tournament"
	userdomain "visionx-go/internal/domain/user"
	communityrepo "visionx-go/internal/repository/postgres/community"
	coachingrepo "visionx-go/internal/repository/postgres/coaching"
	reportsrepo "visionx-go/internal/repository/postgres/reports"
	tournamentrepo "visionx-go/internal/repository/postgres/tournament"
	userrepo "visionx-go/internal/repository/postgres/user"
	"visionx-go/internal/transport/httpserver"
	"visionx-go/internal/transport/httpserver/handler"
	"visionx-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: running migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	tokens := userdomain.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)

	users := userdomain.NewService(userrepo.NewPostgres(dbConn), tokens)
	coaching := coachingdomain.NewService(coachingrepo.NewPostgres(dbConn))
	tournaments := tournamentdomain.NewService(tournamentrepo.NewPostgres(dbConn))
	community := communitydomain.NewService(communityrepo.NewPostgres(dbConn))
	reports := reportsdomain.NewService(reportsrepo.NewPostgres(dbConn))

	handlers := handler.New(users, coaching, tournaments, community, reports, log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, log)

	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
