// Package container provides dependency injection using Uber FX
package container

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	groceryapp "github.com/platewise/platewise/internal/application/grocery"
	insightsapp "github.com/platewise/platewise/internal/application/insights"
	mealplanapp "github.com/platewise/platewise/internal/application/mealplan"
	recipeapp "github.com/platewise/platewise/internal/application/recipe"
	userapp "github.com/platewise/platewise/internal/application/user"
	"github.com/platewise/platewise/internal/infrastructure/ai/openai"
	"github.com/platewise/platewise/internal/infrastructure/config"
	"github.com/platewise/platewise/internal/infrastructure/http/server"
	gormRepo "github.com/platewise/platewise/internal/infrastructure/persistence/gorm"
	"github.com/platewise/platewise/internal/infrastructure/persistence/memory"
	redisRepo "github.com/platewise/platewise/internal/infrastructure/persistence/redis"
	"github.com/platewise/platewise/internal/infrastructure/security"
	"github.com/platewise/platewise/internal/infrastructure/storage"
	"github.com/platewise/platewise/internal/ports/inbound"
	"github.com/platewise/platewise/internal/ports/outbound"
	"github.com/platewise/platewise/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	SecurityModule,
	StorageModule,
	AIModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the database connection
var DatabaseModule = fx.Provide(
	gormRepo.NewDatabase,
)

// CacheModule provides caching, falling back to an in-process cache
// when Redis is disabled
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if !cfg.Redis.Enabled {
			log.Info("redis disabled, using in-memory cache")
			return memory.NewCacheRepository(), nil
		}

		client, err := redisRepo.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return redisRepo.NewCacheRepository(client, log), nil
	},
)

// SecurityModule provides token signing
var SecurityModule = fx.Provide(
	security.NewTokenService,
)

// StorageModule provides object storage when configured
var StorageModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.StorageService, error) {
		if !cfg.Storage.Enabled {
			log.Info("object storage disabled")
			return nil, nil
		}
		return storage.NewMinioStorage(cfg, log)
	},
)

// AIModule provides the AI service when configured
var AIModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.AIService {
		if !cfg.AI.Enabled || cfg.AI.APIKey == "" {
			log.Info("ai features disabled")
			return nil
		}
		return openai.NewClient(cfg, log)
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewRecipeRepository,
	gormRepo.NewMealPlanRepository,
	gormRepo.NewGroceryRepository,
	gormRepo.NewUserRepository,
)

// ServiceModule provides the application services
var ServiceModule = fx.Provide(
	func(
		recipeRepo outbound.RecipeRepository,
		userRepo outbound.UserRepository,
		aiService outbound.AIService,
		storageService outbound.StorageService,
		log *zap.Logger,
	) inbound.RecipeService {
		return recipeapp.NewRecipeService(recipeRepo, userRepo, aiService, storageService, log)
	},
	func(
		planRepo outbound.MealPlanRepository,
		recipeRepo outbound.RecipeRepository,
		log *zap.Logger,
	) inbound.MealPlanService {
		return mealplanapp.NewMealPlanService(planRepo, recipeRepo, log)
	},
	func(
		groceryRepo outbound.GroceryRepository,
		planRepo outbound.MealPlanRepository,
		log *zap.Logger,
	) inbound.GroceryService {
		return groceryapp.NewGroceryService(groceryRepo, planRepo, log)
	},
	func(
		planRepo outbound.MealPlanRepository,
		recipeRepo outbound.RecipeRepository,
		userRepo outbound.UserRepository,
		cache outbound.CacheRepository,
		aiService outbound.AIService,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.InsightsService {
		return insightsapp.NewInsightsService(
			planRepo, recipeRepo, userRepo, cache, aiService, cfg.AI.CacheTTL, log)
	},
	func(
		userRepo outbound.UserRepository,
		tokens *security.TokenService,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.UserService {
		return userapp.NewUserService(userRepo, tokens, cfg.Auth.BCryptCost, log)
	},
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule wires startup and shutdown hooks
var LifecycleModule = fx.Invoke(
	func(lc fx.Lifecycle, srv *server.Server, db *gorm.DB, log *zap.Logger) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				go func() {
					if err := srv.Start(); err != nil {
						log.Fatal("http server failed", zap.Error(err))
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				if err := srv.Shutdown(ctx); err != nil {
					log.Warn("http shutdown incomplete", zap.Error(err))
				}
				if sqlDB, err := db.DB(); err == nil {
					return sqlDB.Close()
				}
				return nil
			},
		})
	},
)
