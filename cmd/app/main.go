package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "hatch-egg-webapp/docs"
	"hatch-egg-webapp/internal/app"
	appHTTP "hatch-egg-webapp/internal/app/delivery/http"
	lookupcache "hatch-egg-webapp/internal/cache/redis"
	"hatch-egg-webapp/internal/common/config"
	"hatch-egg-webapp/internal/common/logger"
	"hatch-egg-webapp/internal/common/middleware"
	"hatch-egg-webapp/internal/features/explorer"
	explorerHTTP "hatch-egg-webapp/internal/features/explorer/delivery/http"
	"hatch-egg-webapp/internal/features/stats"
	statsHTTP "hatch-egg-webapp/internal/features/stats/delivery/http"
	"hatch-egg-webapp/internal/features/tasks"
	tasksHTTP "hatch-egg-webapp/internal/features/tasks/delivery/http"
	walletHTTP "hatch-egg-webapp/internal/features/wallet/delivery/http"
	"hatch-egg-webapp/internal/platform/eggchain"
	"hatch-egg-webapp/internal/platform/redis"
)

// @title           Hatch Egg WebApp API
// @version         1.0
// @description     Session gateway for the Hatch Egg Telegram Mini App: stats, subscription task, TON wallet and eggchain explorer.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey TelegramInitData
// @in header
// @name init_data
// @description Telegram Mini App init_data string for authentication

// @tag.name app
// @tag.description Page navigation and share link

// @tag.name stats
// @tag.description Points counter and profile data

// @tag.name tasks
// @tag.description Channel subscription task

// @tag.name wallet
// @tag.description TON wallet connection

// @tag.name explorer
// @tag.description Eggchain explorer search and egg history
func main() {
	cfg := config.Load()

	logger.Init("hatch-egg-webapp", cfg.Debug)

	// Отдельный zap-логгер для error-middleware.
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	logger.Info().
		Bool("debug", cfg.Debug).
		Str("upstream", cfg.Upstream.APIURL).
		Msg("Starting Hatch Egg WebApp gateway")

	// Клиент stats/eggchain API
	client := eggchain.NewClient(cfg.StatsURL(), cfg.APIRoot(), cfg.Upstream.Timeout)

	// Опциональный Redis-кэш lookup'ов; пустой адрес отключает кэш.
	var cache explorer.Cache
	if cfg.Redis.Addr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := redis.Open(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		cancel()
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redisClient.Close()

		cache = lookupcache.NewLookupCache(redisClient, cfg.Redis.TTL)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("Lookup cache enabled")
	}

	// Сервисы фич
	statsSvc := stats.NewService(client)
	tasksSvc := tasks.NewService(client, cfg.Telegram.ChannelLink, cfg.App.TaskRecheckDelay)
	explorerCtrl := explorer.NewController(client, cache)

	// Сессии
	sessions := app.NewStore(&app.Services{
		Stats:               statsSvc,
		Tasks:               tasksSvc,
		Explorer:            explorerCtrl,
		StatsPollInterval:   cfg.App.StatsPollInterval,
		WalletInitRetry:     cfg.App.WalletInitRetry,
		CounterAnimDuration: cfg.App.CounterAnimDuration,
	}, cfg.App.SessionTTL)
	defer sessions.Close()

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go sessions.Run(janitorCtx)

	// Настраиваем Gin
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(zapLogger))
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept", "init_data"}
	router.Use(cors.New(corsConfig))

	setupRoutes(router, cfg, sessions, tasksSvc, explorerCtrl, zapLogger)

	logger.Info().Msg("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

func setupRoutes(router *gin.Engine, cfg *config.Config, sessions *app.Store, tasksSvc *tasks.Service, explorerCtrl *explorer.Controller, zapLogger *zap.Logger) {
	api := router.Group("/app")
	api.Use(middleware.TelegramInitData())
	{
		appHTTP.NewAppHandler(sessions, cfg.Telegram.BotUsername).RegisterRoutes(api)
		statsHTTP.NewStatsHandler(sessions).RegisterRoutes(api)
		tasksHTTP.NewTaskHandler(tasksSvc, sessions, zapLogger).RegisterRoutes(api)
		walletHTTP.NewWalletHandler(sessions).RegisterRoutes(api)
		explorerHTTP.NewExplorerHandler(explorerCtrl, sessions, zapLogger).RegisterRoutes(api)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "hatch-egg-webapp",
		})
	})

	// Liveness probe
	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
