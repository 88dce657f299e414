package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/gunarwibowo/erp_backoffice_app/internal/core/ports/services"
	"github.com/gunarwibowo/erp_backoffice_app/internal/middleware"
	"github.com/gunarwibowo/erp_backoffice_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, cfg, services.User)

	setupAPIV1Routes(r, cfg, services)
}

// loginRateFormat caps login attempts per client IP.
const loginRateFormat = "5-M"

// registerAuthRoutes sets up the public authentication routes. Login is
// rate-limited per client IP to slow down credential stuffing.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := newAuthHandler(userService, cfg)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(newIPRateLimiter(loginRateFormat)), h.login)
	}
}

// newIPRateLimiter builds an in-memory limiter from a rate format string.
// The formats are compile-time constants, so a parse failure is a programming
// error and aborts startup.
func newIPRateLimiter(format string) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(format)
	if err != nil {
		panic("invalid rate limit format " + format + ": " + err.Error())
	}
	return limiter.New(memory.NewStore(), rate)
}

// setupAPIV1Routes configures the authenticated /api/v1 group.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerAccountRoutes(v1, services.Account)
	registerJournalRoutes(v1, services.Journal)
	registerEmployeeRoutes(v1, services.Onboarding)
}
