package router

import (
	"github.com/putrafajarh/protospace/internal/application"
	"github.com/putrafajarh/protospace/internal/container"
	gcsinfra "github.com/putrafajarh/protospace/internal/infrastructure/gcs"
	pginfra "github.com/putrafajarh/protospace/internal/infrastructure/postgres"
	handlers "github.com/putrafajarh/protospace/internal/interface/http"
	"github.com/putrafajarh/protospace/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	userRepo := pginfra.NewUserRepository(pool)
	protoRepo := pginfra.NewPrototypeRepository(pool)
	commentRepo := pginfra.NewCommentRepository(pool)

	images := gcsinfra.NewImageStore(container.GetGCS(), cfg.GCSBucket)

	var pub application.WelcomePublisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}

	userSvc := application.NewUserService(userRepo, container.GetJWT(), container.GetRedis(), logger, pub)
	protoSvc := application.NewPrototypeService(protoRepo, images, logger)
	commentSvc := application.NewCommentService(commentRepo, protoRepo, logger)

	userHandler := handlers.NewUserHandler(userSvc, protoSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	protoHandler := handlers.NewPrototypeHandler(protoSvc, commentSvc, logger)
	commentHandler := handlers.NewCommentHandler(commentSvc, logger)

	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
	r.Add(modules.NewPrototypeModule(protoHandler, commentHandler, container.GetJWT()))
}
