package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/ecarehq/ecare_backend/config"
	"github.com/ecarehq/ecare_backend/internal/api/http/handler"
	"github.com/ecarehq/ecare_backend/internal/api/http/middleware"
	"github.com/ecarehq/ecare_backend/internal/repo"
	"github.com/ecarehq/ecare_backend/internal/service/leave"
	"github.com/ecarehq/ecare_backend/internal/service/scheduling"
	"github.com/ecarehq/ecare_backend/pkg/reqctx"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg           *config.Config
	Redis         *redis.Client
	DB            *repo.Client
	SchedulingSvc scheduling.Service
	LeaveSvc      leave.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired()
	adminOnly := middleware.RequireRole(reqctx.RoleAdmin)
	staffOnly := middleware.RequireRole(reqctx.RoleAdmin, reqctx.RoleDoctor)
	labOnly := middleware.RequireRole(reqctx.RoleAdmin, reqctx.RoleLab)

	// 3. Initialize Handlers
	appointmentH := handler.NewAppointmentHandler(r.p.SchedulingSvc)
	leaveH := handler.NewLeaveHandler(r.p.LeaveSvc)
	labH := handler.NewLabHandler(r.p.SchedulingSvc)

	api := app.Group("/api/v1", middleware.Identity())

	// 4. Delegate to sub-files
	r.registerAppointmentRoutes(api, appointmentH, authRequired, adminOnly, staffOnly)
	r.registerLeaveRoutes(api, leaveH, authRequired, adminOnly)
	r.registerLabRoutes(api, labH, authRequired, labOnly)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			_, err := r.p.DB.Doctor.Query().Limit(1).All(c.Context())
			return err == nil
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
