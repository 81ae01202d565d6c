package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/ystas1205/Educational-project/docs"
	"github.com/ystas1205/Educational-project/internal/auth"
	"github.com/ystas1205/Educational-project/internal/config"
	"github.com/ystas1205/Educational-project/internal/domain/category"
	"github.com/ystas1205/Educational-project/internal/domain/product"
	"github.com/ystas1205/Educational-project/internal/domain/review"
	"github.com/ystas1205/Educational-project/internal/domain/user"
	api "github.com/ystas1205/Educational-project/internal/http"
	"github.com/ystas1205/Educational-project/internal/metrics"
	"github.com/ystas1205/Educational-project/internal/platform/database"
	jwtpkg "github.com/ystas1205/Educational-project/internal/platform/jwt"
	"github.com/ystas1205/Educational-project/internal/platform/password"
	"github.com/ystas1205/Educational-project/internal/platform/revocation"
	"github.com/ystas1205/Educational-project/internal/repository/postgres"
)

// @title           Shop API
// @version         1.0
// @description     Catalog backend with JWT auth, role gates and product ratings
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)
	api.SetLogger(logger)
	metrics.Register()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.DB_DSN, logger)
	if err != nil {
		logger.Error("db connect error", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		logger.Error("schema error", "error", err)
		os.Exit(1)
	}

	jwtOpts := []jwtpkg.Option{}
	if cfg.RedisAddr != "" {
		denylist, err := revocation.NewRedisDenylist(ctx, revocation.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.Error("redis connect error", "error", err)
			os.Exit(1)
		}
		defer denylist.Close()
		jwtOpts = append(jwtOpts, jwtpkg.WithDenylist(denylist))
		logger.Info("token revocation enabled", "redis", cfg.RedisAddr)
	}

	tokens, err := jwtpkg.NewManager(jwtpkg.Config{
		Secret:     cfg.JWTSecret,
		Algorithm:  cfg.JWTAlgorithm,
		Issuer:     cfg.JWTIssuer,
		AccessTTL:  cfg.AccessTTL,
		RefreshTTL: cfg.RefreshTTL,
	}, jwtOpts...)
	if err != nil {
		logger.Error("jwt config error", "error", err)
		os.Exit(1)
	}

	txm := database.NewTxManager(db)
	userRepo := postgres.NewUserRepo(db)
	categoryRepo := postgres.NewCategoryRepo(db)
	productRepo := postgres.NewProductRepo(db)
	reviewRepo := postgres.NewReviewRepo(db)

	userSvc := user.NewService(userRepo, password.NewHasher(cfg.BcryptCost))
	categorySvc := category.NewService(categoryRepo)
	productSvc := product.NewService(productRepo, categorySvc, txm)
	reviewSvc := review.NewService(reviewRepo, productRepo, review.NewAggregator(reviewRepo), txm,
		review.WithRecomputeHook(metrics.IncRatingRecompute))

	if cfg.AdminEmail != "" {
		created, err := userSvc.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			logger.Error("admin seed error", "error", err)
			os.Exit(1)
		}
		if created {
			logger.Info("admin account created", "email", user.NormalizeEmail(cfg.AdminEmail))
		}
	}

	router := api.NewRouter(api.Deps{
		Users:           userSvc,
		Sessions:        auth.NewSessions(tokens, userSvc),
		Guard:           auth.NewGuard(tokens, userSvc),
		Categories:      categorySvc,
		Products:        productSvc,
		Reviews:         reviewSvc,
		DB:              db,
		LoginRatePerMin: cfg.LoginRatePerMin,
		LoginBurst:      cfg.LoginBurst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
		return
	}
	logger.Info("server stopped")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
