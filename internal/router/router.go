// AngelaMos | 2026
// router.go

package router

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/travel-marketplace/internal/agency"
	"github.com/carterperez-dev/travel-marketplace/internal/auth"
	"github.com/carterperez-dev/travel-marketplace/internal/core"
	"github.com/carterperez-dev/travel-marketplace/internal/destination"
	"github.com/carterperez-dev/travel-marketplace/internal/message"
	"github.com/carterperez-dev/travel-marketplace/internal/middleware"
	"github.com/carterperez-dev/travel-marketplace/internal/preference"
	"github.com/carterperez-dev/travel-marketplace/internal/session"
	"github.com/carterperez-dev/travel-marketplace/internal/travelpackage"
	"github.com/carterperez-dev/travel-marketplace/internal/user"
)

// API owns the domain services and their HTTP handlers.
type API struct {
	sessions     *session.Manager
	users        *user.Service
	destinations *destination.Service

	auth        *auth.Handler
	user        *user.Handler
	destination *destination.Handler
	agency      *agency.Handler
	preference  *preference.Handler
	travelPkg   *travelpackage.Handler
	message     *message.Handler
}

func New(db *core.Database, sessions *session.Manager) *API {
	userSvc := user.NewService(user.NewRepository(db.DB))
	destinationSvc := destination.NewService(destination.NewRepository(db.DB))
	agencySvc := agency.NewService(agency.NewRepository(db.DB), userSvc)
	preferenceSvc := preference.NewService(preference.NewRepository(db.DB))
	packageSvc := travelpackage.NewService(
		travelpackage.NewRepository(db.DB),
		agencySvc,
		preferenceSvc,
	)
	messageSvc := message.NewService(message.NewRepository(db.DB))

	return &API{
		sessions:     sessions,
		users:        userSvc,
		destinations: destinationSvc,

		auth:        auth.NewHandler(auth.NewService(userSvc), sessions),
		user:        user.NewHandler(userSvc),
		destination: destination.NewHandler(destinationSvc),
		agency:      agency.NewHandler(agencySvc),
		preference:  preference.NewHandler(preferenceSvc),
		travelPkg:   travelpackage.NewHandler(packageSvc),
		message:     message.NewHandler(messageSvc),
	}
}

// Register mounts every endpoint under /api. Session resolution runs for
// the whole group; individual routes decide whether it is required.
func (a *API) Register(r chi.Router) {
	requireSession := middleware.RequireSession
	agencyOnly := middleware.RequireRole(user.RoleAgency)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Authenticator(a.sessions, a.users))

		a.auth.RegisterRoutes(r)
		a.user.RegisterRoutes(r, agencyOnly)
		a.destination.RegisterRoutes(r)
		a.agency.RegisterRoutes(r, requireSession, agencyOnly)
		a.preference.RegisterRoutes(r, requireSession)
		a.travelPkg.RegisterRoutes(r, requireSession, agencyOnly)
		a.message.RegisterRoutes(r, requireSession)
	})
}

func (a *API) SeedDestinations(ctx context.Context) (int, error) {
	return a.destinations.Seed(ctx)
}
