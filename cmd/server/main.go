package main

import (
    "context"
    "errors"
    "net/http"
    "os/signal"
    "syscall"
    "time"

    "github.com/getsentry/sentry-go"
    "go.uber.org/zap"

    "github.com/greenpandorik/yatube-project-api/config"
    "github.com/greenpandorik/yatube-project-api/internal/api"
    "github.com/greenpandorik/yatube-project-api/internal/api/handler"
    "github.com/greenpandorik/yatube-project-api/internal/repository"
    "github.com/greenpandorik/yatube-project-api/internal/service"
    "github.com/greenpandorik/yatube-project-api/pkg/cache"
    "github.com/greenpandorik/yatube-project-api/pkg/database"
    "github.com/greenpandorik/yatube-project-api/pkg/logger"
    "github.com/greenpandorik/yatube-project-api/pkg/tracing"
)

// @title Yatube Project API
// @version 1.0
// @description content and social graph API: posts, groups, comments, follows
// @BasePath /api/v1
func main() {
    cfg, err := config.Load()
    if err != nil {
        panic(err)
    }
    if err := logger.Init(cfg.Log.Level, cfg.Log.Encoding); err != nil {
        panic(err)
    }
    defer logger.Sync()

    if cfg.Sentry.DSN != "" {
        if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
            logger.Warn("sentry init failed", zap.Error(err))
        }
        defer sentry.Flush(2 * time.Second)
    }

    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()

    shutdownTracing, err := tracing.Init(ctx, cfg)
    if err != nil {
        logger.Error("tracing init failed", zap.Error(err))
    }

    db, err := database.InitDB(cfg)
    if err != nil {
        logger.Error("database init failed", zap.Error(err))
        return
    }

    redisClient, err := cache.New(cfg)
    if err != nil {
        // 缓存只是加速层，连不上降级为直连存储
        logger.Warn("redis unavailable, running without cache", zap.Error(err))
        redisClient = nil
    }

    userRepo := repository.NewUserRepository(db)
    groupRepo := repository.NewGroupRepository(db)
    postRepo := repository.NewPostRepository(db)
    commentRepo := repository.NewCommentRepository(db)
    followRepo := repository.NewFollowRepository(db)

    authSvc := service.NewAuthService(userRepo, cfg.JWT)
    followSvc := service.NewFollowService(followRepo, userRepo, redisClient)

    h := handler.New(groupRepo, postRepo, commentRepo, authSvc, followSvc)
    router := api.NewRouter(cfg, h)

    srv := &http.Server{Addr: cfg.Server.Addr, Handler: router}
    go func() {
        logger.Info("server listening", zap.String("addr", cfg.Server.Addr))
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            logger.Error("server error", zap.Error(err))
            stop()
        }
    }()

    <-ctx.Done()
    logger.Info("shutting down")

    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    if err := srv.Shutdown(shutdownCtx); err != nil {
        logger.Error("server shutdown failed", zap.Error(err))
    }
    if shutdownTracing != nil {
        _ = shutdownTracing(shutdownCtx)
    }
}
