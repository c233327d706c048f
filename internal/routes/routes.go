package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"medtour-server/internal/cache"
	"medtour-server/internal/config"
	"medtour-server/internal/handlers"
	"medtour-server/internal/middleware"
	"medtour-server/internal/models"
	"medtour-server/internal/payment"
	"medtour-server/internal/store"
	"medtour-server/internal/utils"
)

// Dependencies are the long-lived components the handlers are built from.
// DoctorCache, Redis and Payment are optional.
type Dependencies struct {
	Config      *config.Config
	Log         zerolog.Logger
	Store       *store.Store
	Backend     string
	Admin       *models.Admin
	DoctorCache cache.DoctorCache
	Redis       *redis.Client
	Payment     payment.Provider
}

// NewRouter builds the gin engine with middleware and every route mounted.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(deps.Log))
	// recovery runs inside the logger so a panic still gets its 500 logged
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(deps.Config.Origin)))

	SetupRoutes(router, deps)
	return router
}

func corsConfig(origin string) cors.Config {
	corsCfg := cors.DefaultConfig()
	if origin == "" || origin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{origin}
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"}
	corsCfg.ExposeHeaders = []string{"X-Request-ID"}
	return corsCfg
}

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, deps Dependencies) {
	authHandler := handlers.NewAuthHandler(deps.Admin, deps.Config.Admin.Token)
	doctorHandler := handlers.NewDoctorHandler(deps.Store, deps.DoctorCache, deps.Log)
	appointmentHandler := handlers.NewAppointmentHandler(deps.Store)
	paymentHandler := handlers.NewPaymentHandler(deps.Payment)
	healthHandler := handlers.NewHealthHandler(deps.Store, deps.Redis, deps.Backend, deps.Config.Environment)

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		public.POST("/login", authHandler.Login)
		public.GET("/doctors", doctorHandler.ListDoctors)
		public.POST("/book", appointmentHandler.CreateBooking)
		public.POST("/create-payment-intent", paymentHandler.CreatePaymentIntent)
	}

	// Admin routes, gated by the shared bearer token
	admin := router.Group("/api/admin")
	admin.Use(middleware.AdminAuthMiddleware(deps.Config.Admin.Token))
	{
		admin.POST("/doctors", doctorHandler.CreateDoctor)
		admin.PUT("/doctors/:id", doctorHandler.UpdateDoctor)
		admin.DELETE("/doctors/:id", doctorHandler.DeleteDoctor)
		admin.GET("/orders", appointmentHandler.ListOrders)
	}

	router.GET("/health", healthHandler.Liveness)
	router.GET("/health/ready", healthHandler.Readiness)

	router.NoRoute(func(c *gin.Context) {
		utils.NotFound(c, "Route not found")
	})
}
