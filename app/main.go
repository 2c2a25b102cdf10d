package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/pratikw008/blog-rest-api/internal/repository"
	mysqlRepo "github.com/pratikw008/blog-rest-api/internal/repository/mysql"
	myRedisCache "github.com/pratikw008/blog-rest-api/internal/repository/redis"
	"github.com/pratikw008/blog-rest-api/internal/rest"
	"github.com/pratikw008/blog-rest-api/internal/rest/middleware"
	"github.com/pratikw008/blog-rest-api/internal/usecase/comment"
	"github.com/pratikw008/blog-rest-api/internal/usecase/post"
)

func init() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, reading configuration from the environment")
	}
}

func main() {
	cfg := loadConfig()
	setupLogger(cfg)
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	//prepare database
	db, err := mysqlRepo.Open(mysqlRepo.Options{
		Host:          cfg.DBHost,
		Port:          cfg.DBPort,
		User:          cfg.DBUser,
		Password:      cfg.DBPass,
		Name:          cfg.DBName,
		MaxRetry:      dbMaxRetry,
		RetryInterval: dbRetryIntervalSec * time.Second,
	})
	if err != nil {
		logrus.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("got error when getting sql.DB from gorm.DB: ", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logrus.Error("got error when closing the DB connection: ", err)
		}
	}()

	if cfg.DBAutoMigrate {
		if err := mysqlRepo.AutoMigrate(db); err != nil {
			logrus.Fatal("failed to migrate schema: ", err)
		}
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.CacheHost, cfg.CachePort),
		Password: cfg.CachePass,
		DB:       cfg.CacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error("got error when closing the cache connection: ", err)
		}
	}()

	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.Fatal("failed to open connection to cache: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Post相关的三层架构
	// 1. DB层
	postDBRepo := mysqlRepo.NewPostRepository(db)
	// 2. Cache层
	postCache := myRedisCache.NewPostCache(client, cfg.CacheTTL)
	// 3. Repository协调层
	postRepo := repository.NewPostRepository(postDBRepo, postCache)

	commentRepo := mysqlRepo.NewCommentRepository(db)
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, cfg.BloomBitSize)

	// Build service Layer
	postSvc := post.NewService(postRepo, bloomRepo)
	commentSvc := comment.NewService(commentRepo, postRepo, bloomRepo)

	// Prepare bloom filter
	if err := postSvc.InitBloomFilter(ctx); err != nil {
		logrus.Fatal("failed to init bloom filter: ", err)
	}

	// prepare gin
	route := gin.New()
	route.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.CORS(),
		middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
		middleware.SetRequestContextWithTimeout(cfg.ContextTimeout),
		middleware.ErrorHandler(),
	)

	health := rest.NewHealthHandler(map[string]rest.HealthCheck{
		"database": sqlDB.PingContext,
		"cache": func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
	})
	route.GET("/health", health.Health)
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rest.RegisterRoutes(route, rest.NewPostHandler(postSvc), rest.NewCommentHandler(commentSvc))

	// Start Server
	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           route,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.Infof("Server is running on %s", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logrus.Info("Shutdown signal received, stopping server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logrus.Error("server stopped with error: ", err)
		return
	}
	logrus.Info("Server exiting")
}
