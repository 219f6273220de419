package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/givebridge/donation-platform/internal/api/handler"
	"github.com/givebridge/donation-platform/internal/api/middleware"
	"github.com/givebridge/donation-platform/internal/api/session"
	"github.com/givebridge/donation-platform/internal/core/service"
	"github.com/givebridge/donation-platform/internal/infrastructure/config"
	mongodb "github.com/givebridge/donation-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/givebridge/donation-platform/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("givebridge"))

	// --- Session store ---
	codec := session.NewCodec(cfg.SessionSecret, cfg.SessionTTL)
	sessions := session.NewCookieStore(codec, cfg.Env == "production")
	e.Use(middleware.CurrentUser(sessions))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	identity := service.NewIdentityService(userRepo, cfg.OpTimeout, log)
	authHandler := handler.NewAuthHandler(identity, sessions)

	donationRepo := mongodb.NewDonationRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)
	donations := service.NewDonationService(donationRepo, dedup, log)
	donationHandler := handler.NewDonationHandler(donations)

	feedbackRepo := mongodb.NewFeedbackRepository(db)
	feedback := service.NewFeedbackService(feedbackRepo)
	feedbackHandler := handler.NewFeedbackHandler(feedback)

	currencyHandler := handler.NewCurrencyHandler()

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/signin", authHandler.SignIn)
	e.POST("/auth/signout", authHandler.SignOut)
	e.GET("/auth/me", authHandler.Me)

	// --- Currency directory (public, static) ---
	e.GET("/currencies", currencyHandler.List)
	e.GET("/currencies/country/:code", currencyHandler.ForCountry)

	// --- Donations (session required) ---
	d := e.Group("/donations", middleware.RequireSession())
	d.POST("", donationHandler.Submit)
	d.GET("", donationHandler.List)
	d.POST("/monthly", donationHandler.CreateMonthly)
	d.DELETE("/monthly/:id", donationHandler.CancelMonthly)

	// --- Feedback (read is public) ---
	e.GET("/feedback", feedbackHandler.Recent)
	e.POST("/feedback", feedbackHandler.Submit, middleware.RequireSession())

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
