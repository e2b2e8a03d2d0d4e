package services

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/mskustudx/studx/internal/app/repositories"
	"github.com/mskustudx/studx/internal/pkg/auth"
	"github.com/mskustudx/studx/internal/pkg/livefeed"
)

// VotePublisher receives the tallies of a material after every vote
type VotePublisher interface {
	Publish(event livefeed.Event)
}

// Services holds all the service instances
type Services struct {
	CatalogService    *CatalogService
	MaterialService   *MaterialService
	VoteService       *VoteService
	EngagementService *EngagementService
	AuthService       *AuthService
}

// Deps are the collaborators shared by the services. JWT and Feed are optional.
type Deps struct {
	JWT    *auth.JWTService
	Feed   VotePublisher
	Logger zerolog.Logger
	Now    func() time.Time
}

// NewServices wires every service on top of the repositories
func NewServices(repos *repositories.Repositories, deps Deps) *Services {
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &Services{
		CatalogService:    NewCatalogService(repos.CatalogRepository),
		MaterialService:   NewMaterialService(repos.MaterialRepository, repos.CatalogRepository),
		VoteService:       NewVoteService(repos.MaterialRepository, repos.UserRepository, deps.Feed, deps.Logger),
		EngagementService: NewEngagementService(repos.UserRepository, repos.CatalogRepository, deps.Now, deps.Logger),
		AuthService:       NewAuthService(repos.UserRepository, deps.JWT, deps.Now, deps.Logger),
	}
}
