package router

import (
	"net/http"
	"time"

	"github.com/campuspath/campuspath-backend/internal/config"
	"github.com/campuspath/campuspath-backend/internal/handler"
	"github.com/campuspath/campuspath-backend/internal/middleware"
	"github.com/campuspath/campuspath-backend/internal/response"
	"github.com/campuspath/campuspath-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth     *handler.AuthHandler
	Catalog  *handler.CatalogHandler
	Schedule *handler.ScheduleHandler
	Planner  *handler.PlannerHandler
	WS       *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)

		// Authenticated profile route
		auth.GET("/me", middleware.RequireJWT(authService), handlers.Auth.Me)
	}

	// ─── 2. Catalog Group (Public, Cached) ─────────────────────────────
	// Catalog responses change rarely; let clients cache for 5 minutes.
	catalog := router.Group("/api/v1/catalog")
	catalog.Use(middleware.CacheControl(300))
	{
		catalog.GET("/colleges", handlers.Catalog.ListColleges)
		catalog.GET("/subjects", handlers.Catalog.ListSubjects)
		catalog.GET("/subjects/:code/courses", handlers.Catalog.ListSubjectCourses)
		catalog.GET("/courses/:id", handlers.Catalog.GetCourse)
		catalog.GET("/majors", handlers.Catalog.ListMajors)
		catalog.GET("/majors/:id", handlers.Catalog.GetMajor)
	}

	// ─── 3. Plan Group (JWT) ───────────────────────────────────────────
	plan := router.Group("/api/v1/plan")
	plan.Use(middleware.RequireJWT(authService))
	{
		plan.GET("/schedule", handlers.Schedule.GetSchedule)
		plan.POST("/schedule/courses", handlers.Schedule.AddCourse)
		plan.PUT("/schedule/courses/:course_id", handlers.Schedule.MoveCourse)
		plan.DELETE("/schedule/courses/:course_id", handlers.Schedule.RemoveCourse)

		plan.PUT("/profile", handlers.Schedule.UpdateProfile)

		plan.GET("/requirements", handlers.Planner.GetRequirements)
		plan.GET("/courses/:id/eligibility", handlers.Planner.GetEligibility)
		plan.POST("/recommendations", handlers.Planner.Recommend)
	}

	// ─── 4. WebSocket Group (WS Auth) ──────────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireWSAuth(authService))
	{
		ws.GET("/plan/stream", handlers.WS.PlanStream)
	}

	return router
}
