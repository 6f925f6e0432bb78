package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/present-lee/module-6/internal/auth"
	"github.com/present-lee/module-6/internal/cache"
	config "github.com/present-lee/module-6/internal/configs"
	httpapi "github.com/present-lee/module-6/internal/http"
	middleware "github.com/present-lee/module-6/internal/http/middlewares"
	repository "github.com/present-lee/module-6/internal/repositories"
	"github.com/present-lee/module-6/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the kanban board HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		database := config.New(cfg.DatabaseDSN)
		config.SeedDefaultCategories(database)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		boardCache := cache.NewRedisBoardCache(
			redisClient,
			cfg.BoardCacheKey,
			time.Duration(cfg.BoardCacheTTLSeconds)*time.Second,
		)

		userRepo := repository.NewUserRepository(database)
		categoryRepo := repository.NewCategoryRepository(database)
		taskRepo := repository.NewTaskRepository(database)

		tokenManager := auth.NewTokenManager(
			cfg.JWTSecretKey,
			time.Duration(cfg.TokenExpireMinutes)*time.Minute,
		)

		userService := services.NewUserService(database, userRepo, taskRepo, tokenManager)
		categoryService := services.NewCategoryService(database, categoryRepo, taskRepo, boardCache)
		taskService := services.NewTaskService(database, taskRepo, categoryRepo, userRepo)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		handler := httpapi.NewHandler(userService, categoryService, taskService)
		authn := middleware.Authenticate(tokenManager, userRepo)
		httpapi.Register(e, handler, authn, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
