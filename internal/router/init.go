package router

import (
	"github.com/snapfeed/snapfeed-api/internal/application"
	"github.com/snapfeed/snapfeed-api/internal/container"
	handlers "github.com/snapfeed/snapfeed-api/internal/interface/http"
	"github.com/snapfeed/snapfeed-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	repos := container.GetRepos()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	authSvc := application.NewAuthService(repos.Users, jwt, logger)
	feedSvc := application.NewFeedService(repos, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewFeedModule(handlers.NewFeedHandler(feedSvc, logger), jwt))
}
