package app

import (
	"github.com/VihaFernando/TickTocker/internal/auth"
	"github.com/VihaFernando/TickTocker/internal/cache"
	"github.com/VihaFernando/TickTocker/internal/config"
	"github.com/VihaFernando/TickTocker/internal/handlers"
	"github.com/VihaFernando/TickTocker/internal/repo"
	"github.com/VihaFernando/TickTocker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	sessionStore := auth.NewStore(rdb, cfg.Session.TTL.Duration())
	userSvc := service.NewUserService(repo.NewPGUserRepo(db))
	timerCache := cache.NewTimerCache(rdb, cfg.Redis.DefaultTTL.Duration())
	timerSvc := service.NewTimerService(repo.NewPGTimerRepo(db), timerCache)

	Mount(r, cfg, Services{
		Sessions: sessionStore,
		Users:    userSvc,
		Timers:   timerSvc,
	})
}

// Services are the dependencies the HTTP surface is built from.
type Services struct {
	Sessions *auth.Store
	Users    *service.UserService
	Timers   *service.TimerService
}

// Mount registers the meta, docs and API routes backed by svc.
func Mount(r *gin.Engine, cfg config.Config, svc Services) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")
	requireSession := auth.RequireSession(svc.Sessions)

	authHandler := handlers.NewAuthHandler(svc.Sessions, svc.Users, cfg.Session.CookieSecure)
	registerAuthRoutes(api, authHandler, requireSession)

	timerHandler := handlers.NewTimerHandler(svc.Timers, cfg.App.PublicURL)
	api.GET("/share/:shareId", timerHandler.Shared)
	registerTimerRoutes(api.Group("", requireSession), timerHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "TickTocker API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerTimerRoutes(api *gin.RouterGroup, h *handlers.TimerHandler) {
	api.POST("/timers", h.Create)
	api.GET("/timers", h.List)
	api.GET("/timers/main", h.Main)
	api.GET("/timers/:id", h.GetByID)
	api.PUT("/timers/:id", h.Update)
	api.DELETE("/timers/:id", h.Delete)
	api.POST("/timers/:id/main", h.SetMain)
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler, requireSession gin.HandlerFunc) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)
	api.GET("/auth/me", requireSession, h.Me)
}
