// Package server assembles the HTTP API server
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/platewise/platewise/internal/infrastructure/config"
	"github.com/platewise/platewise/internal/infrastructure/http/handlers"
	"github.com/platewise/platewise/internal/infrastructure/http/middleware"
	"github.com/platewise/platewise/internal/infrastructure/security"
	"github.com/platewise/platewise/internal/ports/inbound"
)

// Server represents the HTTP server
type Server struct {
	config *config.Config
	logger *zap.Logger
	server *http.Server
}

// NewServer creates a new HTTP server instance with all routes wired
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	tokens *security.TokenService,
	userService inbound.UserService,
	recipeService inbound.RecipeService,
	mealPlanService inbound.MealPlanService,
	groceryService inbound.GroceryService,
	insightsService inbound.InsightsService,
) *Server {
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	mw := middleware.New(cfg, logger)
	router.Use(
		mw.RequestID(),
		mw.Logger(),
		mw.Recovery(),
		mw.Metrics(),
		mw.CORS(),
		mw.RateLimit(),
	)

	health := handlers.NewHealthHandler(db, cfg.App.Version)
	router.GET("/health", health.Health)
	router.GET("/ready", health.Ready)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := handlers.NewAuthHandler(userService)
	recipes := handlers.NewRecipeHandler(recipeService)
	plans := handlers.NewMealPlanHandler(mealPlanService)
	groceries := handlers.NewGroceryHandler(groceryService)
	insights := handlers.NewInsightsHandler(insightsService)
	profile := handlers.NewProfileHandler(userService)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/register", auth.Register)
		v1.POST("/auth/login", auth.Login)

		authed := v1.Group("", middleware.Auth(tokens))
		{
			authed.GET("/recipes", recipes.List)
			authed.POST("/recipes", recipes.Create)
			authed.POST("/recipes/complete", recipes.Complete)
			authed.GET("/recipes/:id", recipes.Get)
			authed.PUT("/recipes/:id", recipes.Update)
			authed.DELETE("/recipes/:id", recipes.Delete)

			authed.POST("/mealplan", plans.Schedule)
			authed.GET("/mealplan/day", plans.Day)
			authed.GET("/mealplan/week", plans.Week)
			authed.PATCH("/mealplan/:id/consumed", plans.SetConsumed)
			authed.DELETE("/mealplan/:id", plans.Remove)

			authed.GET("/grocery", groceries.Week)
			authed.POST("/grocery/regenerate", groceries.Regenerate)
			authed.PATCH("/grocery/:id/toggle", groceries.Toggle)
			authed.DELETE("/grocery/:id", groceries.Remove)

			authed.GET("/insights/daily", insights.Daily)
			authed.GET("/insights/trend", insights.Trend)
			authed.GET("/insights/recommendations", insights.Recommendations)

			authed.GET("/profile", profile.Get)
			authed.PUT("/profile/goals", profile.UpdateGoals)
			authed.PUT("/profile/preferences", profile.UpdatePreferences)
		}
	}

	return &Server{
		config: cfg,
		logger: logger.Named("server"),
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}
}

// Start begins serving requests, blocking until the listener fails
func (s *Server) Start() error {
	s.logger.Info("http server listening", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	ctx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}
