package api

import (
	"os"

	"github.com/redis/go-redis/v9"

	"droneworks/hangar/internal/common"
	"droneworks/hangar/internal/constants"
	"droneworks/hangar/internal/db"
	"droneworks/hangar/internal/db/repositories"
	"droneworks/hangar/internal/logging"
	"droneworks/hangar/internal/metrics"
	"droneworks/hangar/internal/services"
)

type Repositories struct {
	Component *repositories.ComponentRepository
	Aircraft  *repositories.AircraftRepository
	Assembly  *repositories.AssemblyRepository
	Team      *repositories.TeamRepository
	Personnel *repositories.PersonnelRepository
	Keys      *repositories.KeysRepo
}

type Services struct {
	Cache         common.CacheInterface
	Token         *common.TokenService
	Authorization *services.AuthorizationService
	Component     *services.ComponentService
	Aircraft      *services.AircraftService
	Assembly      *services.AssemblyService
	Recycle       *services.RecycleService
	Registration  *services.RegistrationService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Redis    *redis.Client
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Component: repositories.NewComponentRepository(db.PgDB),
		Aircraft:  repositories.NewAircraftRepository(db.PgDB),
		Assembly:  repositories.NewAssemblyRepository(db.PgDB),
		Team:      repositories.NewTeamRepository(db.PgDB),
		Personnel: repositories.NewPersonnelRepository(db.PgDB),
		Keys:      repositories.NewApiKeysRepo(db.DB),
	}

	redisClient := common.NewRedisClient()

	// Prefer Redis cache; fall back to in-memory when unreachable.
	var cacheSvc common.CacheInterface
	if redisCache, err := common.NewRedisCacheService(redisClient); err == nil {
		cacheSvc = redisCache
	} else {
		logging.Warn("Redis cache unavailable, using in-memory cache", "error", err.Error())
		cacheSvc = common.NewCacheService(300, 600)
	}

	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		secret = "dev-only-secret-change-me"
	}
	tokenSvc := common.NewTokenService([]byte(secret), redisClient)

	authSvc := services.NewAuthorizationService(
		constants.DefaultTeamCategories(),
		repos.Personnel,
		repos.Team,
		cacheSvc,
	)

	locks := services.NewLockRegistry()

	svcs := &Services{
		Cache:         cacheSvc,
		Token:         tokenSvc,
		Authorization: authSvc,
		Component:     services.NewComponentService(authSvc, repos.Component, metricsReg),
		Aircraft:      services.NewAircraftService(repos.Aircraft),
		Assembly:      services.NewAssemblyService(db.PgDB, repos.Aircraft, repos.Component, repos.Assembly, locks, metricsReg),
		Recycle:       services.NewRecycleService(db.PgDB, authSvc, repos.Component, locks, metricsReg),
		Registration:  services.NewRegistrationService(repos.Personnel, repos.Team, tokenSvc),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Redis:    redisClient,
	}, nil
}
