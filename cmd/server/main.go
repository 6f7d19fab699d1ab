package main

import (
	"lawyer_diary_go/config"
	"lawyer_diary_go/db"
	"lawyer_diary_go/handlers"
	"lawyer_diary_go/middleware"
	"lawyer_diary_go/models"
	"lawyer_diary_go/services"
	"lawyer_diary_go/services/jobs"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := config.ValidateJWTSecret(cfg.JWTSecret, cfg.Environment); err != nil {
		log.Fatalf("Invalid JWT secret: %v", err)
	}

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.BlacklistedToken{},
		&models.Court{},
		&models.Client{},
		&models.Case{},
		&models.Hearing{},
		&models.Document{},
		&models.TaskReminder{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Web auth routes (session cookie)
	e.GET("/", handlers.HomeHandler)
	e.GET("/signup", handlers.SignupPageHandler)
	e.GET("/login", handlers.LoginPageHandler)
	e.POST("/signup", handlers.SignupPostHandler, middleware.SignupRateLimiter.Middleware())
	e.POST("/login", handlers.LoginPostHandler, middleware.LoginRateLimiter.Middleware())

	// Session-protected routes
	protected := e.Group("")
	protected.Use(middleware.RequireAuth())
	{
		protected.POST("/logout", handlers.LogoutHandler)
		protected.GET("/api/me", handlers.GetCurrentUserHandler)
		protected.GET("/dashboard", handlers.DashboardHandler)
		protected.GET("/calendar", handlers.CalendarHandler)
	}

	// Bearer token auth routes
	jwtAuth := e.Group("/api/jwt")
	{
		jwtAuth.POST("/signup", handlers.APISignupHandler, middleware.SignupRateLimiter.Middleware())
		jwtAuth.POST("/login", handlers.APILoginHandler, middleware.LoginRateLimiter.Middleware())
		jwtAuth.POST("/refresh", handlers.APIRefreshHandler)
		jwtAuth.POST("/logout", handlers.APILogoutHandler)
		jwtAuth.GET("/profile", handlers.APIProfileHandler, middleware.ResolveToken(cfg), middleware.RequireToken())
	}

	// Cookie token auth routes
	cookieAuth := e.Group("/api/auth")
	cookieAuth.Use(middleware.ResolveToken(cfg))
	{
		cookieAuth.POST("/signup", handlers.CookieSignupHandler, middleware.SignupRateLimiter.Middleware())
		cookieAuth.POST("/login", handlers.CookieLoginHandler, middleware.LoginRateLimiter.Middleware())
		cookieAuth.POST("/refresh", handlers.CookieRefreshHandler)
		cookieAuth.POST("/logout", handlers.CookieLogoutHandler)
		cookieAuth.GET("/status", handlers.AuthStatusHandler)
		cookieAuth.GET("/profile", handlers.APIProfileHandler, middleware.RequireToken())
	}

	// Token-protected API routes
	api := e.Group("/api")
	api.Use(middleware.ResolveToken(cfg))
	api.Use(middleware.RequireToken())
	{
		api.GET("/dashboard", handlers.DashboardHandler)
		api.GET("/calendar", handlers.CalendarHandler)

		api.GET("/courts", handlers.ListCourtsHandler)
		api.GET("/courts/:id", handlers.GetCourtHandler)

		api.POST("/clients", handlers.CreateClientHandler)
		api.GET("/clients", handlers.ListClientsHandler)
		api.GET("/clients/:id", handlers.GetClientHandler)
		api.DELETE("/clients/:id", handlers.DeleteClientHandler)

		api.POST("/cases", handlers.CreateCaseHandler)
		api.GET("/cases", handlers.ListCasesHandler)
		api.GET("/cases/:id", handlers.GetCaseHandler)
		api.PUT("/cases/:id/status", handlers.UpdateCaseStatusHandler)
		api.DELETE("/cases/:id", handlers.DeleteCaseHandler)

		api.POST("/hearings", handlers.CreateHearingHandler)
		api.GET("/hearings", handlers.ListHearingsHandler)
		api.GET("/hearings/:id", handlers.GetHearingHandler)
		api.PUT("/hearings/:id/outcome", handlers.RecordHearingOutcomeHandler)

		api.POST("/documents", handlers.CreateDocumentHandler)
		api.GET("/documents", handlers.ListDocumentsHandler)
		api.GET("/documents/:id", handlers.GetDocumentHandler)

		api.POST("/tasks", handlers.CreateTaskHandler)
		api.GET("/tasks", handlers.ListTasksHandler)
		api.GET("/tasks/:id", handlers.GetTaskHandler)
		api.POST("/tasks/:id/complete", handlers.CompleteTaskHandler)

		api.GET("/reports/case-register", handlers.CaseRegisterHandler)
	}

	// Start background jobs (runs every hour)
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		loc := cfg.Location()
		for range ticker.C {
			if err := services.CleanupExpiredSessions(db.DB); err != nil {
				log.Printf("Error cleaning up expired sessions: %v", err)
			}
			if err := services.CleanupExpiredBlacklistedTokens(db.DB); err != nil {
				log.Printf("Error cleaning up blacklisted tokens: %v", err)
			}
			jobs.SendTaskReminders(db.DB, cfg, loc)
			jobs.SendHearingReminders(db.DB, cfg, loc)
		}
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
