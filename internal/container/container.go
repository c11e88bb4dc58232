package container

import (
	"github.com/sirupsen/logrus"

	"github.com/snapfeed/snapfeed-api/config"
	"github.com/snapfeed/snapfeed-api/internal/domain/repository"
	"github.com/snapfeed/snapfeed-api/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg        *config.Config
	logger     *logrus.Logger
	repos      *repository.Repositories
	jwtManager *helpers.JWTManager
)

func SetConfig(c *config.Config)          { cfg = c }
func GetConfig() *config.Config           { return cfg }
func SetLogger(l *logrus.Logger)          { logger = l }
func GetLogger() *logrus.Logger           { return logger }
func SetRepos(r *repository.Repositories) { repos = r }
func GetRepos() *repository.Repositories  { return repos }
func SetJWT(m *helpers.JWTManager)        { jwtManager = m }
func GetJWT() *helpers.JWTManager         { return jwtManager }
