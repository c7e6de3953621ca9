package api

import (
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"vattours/server/internal/common"
	"vattours/server/internal/db/repositories"
	"vattours/server/internal/metrics"
	"vattours/server/internal/services"
)

type Repositories struct {
	Airport    *repositories.AirportRepository
	Tour       *repositories.TourRepository
	Pirep      *repositories.PirepRepository
	PirepQuery *repositories.PirepQueryRepository
	User       *repositories.UserRepository
	Badge      *repositories.BadgeRepository
}

type Services struct {
	Cache    common.CacheInterface
	Session  *common.SessionService
	Images   *common.ImageStore
	Progress *services.TourProgressService
	Tour     *services.TourService
	Submit   *services.PirepSubmissionService
	Review   *services.PirepReviewService
	Airport  *services.AirportService
	Badge    *services.BadgeService
	User     *services.UserService
}

type Dependencies struct {
	GormDB  *gorm.DB
	SqlxDB  *sqlx.DB
	Metrics *metrics.MetricsRegistry

	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories and services around the injected
// handles. Nothing here reaches for package-level state.
func InitDependencies(
	gormDB *gorm.DB,
	sqlxDB *sqlx.DB,
	cache common.CacheInterface,
	sessionSvc *common.SessionService,
	imageStore *common.ImageStore,
	metricsReg *metrics.MetricsRegistry,
) *Dependencies {

	repos := &Repositories{
		Airport:    repositories.NewAirportRepository(gormDB),
		Tour:       repositories.NewTourRepository(gormDB),
		Pirep:      repositories.NewPirepRepository(gormDB),
		PirepQuery: repositories.NewPirepQueryRepository(sqlxDB),
		User:       repositories.NewUserRepository(gormDB),
		Badge:      repositories.NewBadgeRepository(gormDB),
	}

	progressSvc := services.NewTourProgressService(repos.Tour, repos.Pirep)

	svcs := &Services{
		Cache:    cache,
		Session:  sessionSvc,
		Images:   imageStore,
		Progress: progressSvc,
		Tour:     services.NewTourService(gormDB, repos.Tour, repos.Airport, progressSvc, cache),
		Submit:   services.NewPirepSubmissionService(gormDB, repos.Tour, repos.Pirep, metricsReg),
		Review:   services.NewPirepReviewService(repos.Pirep, repos.Badge, progressSvc, metricsReg),
		Airport:  services.NewAirportService(repos.Airport, cache),
		Badge:    services.NewBadgeService(repos.Badge, repos.Tour, cache),
		User:     services.NewUserService(repos.User),
	}

	return &Dependencies{
		GormDB:   gormDB,
		SqlxDB:   sqlxDB,
		Metrics:  metricsReg,
		Repo:     repos,
		Services: svcs,
	}
}
