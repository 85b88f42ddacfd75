package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/DeepanshuSagore/HackFinder/src/internal/api"
	"github.com/DeepanshuSagore/HackFinder/src/internal/config"
	"github.com/DeepanshuSagore/HackFinder/src/internal/seed"
	"github.com/DeepanshuSagore/HackFinder/src/internal/service"
	"github.com/DeepanshuSagore/HackFinder/src/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.LogLevel)
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)
	sugar := logger.Sugar()

	st := store.New(logger)
	if cfg.SeedDemoData {
		seed.Load(st, logger)
	}

	session := sessionIdentity(st, cfg.CurrentUserID, sugar)
	svc := service.NewService(st, logger, session)
	h := api.NewHandler(svc, logger)

	r := chi.NewRouter()
	r.Use(api.RequestIDMiddleware, api.LoggerMiddleware(logger), api.Recoverer(logger))
	api.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infof("listening on %s as user %s", srv.Addr, session.ID)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	sugar.Infof("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Fatalf("server forced to shutdown: %v", err)
	}
	sugar.Info("server stopped")
}

// sessionIdentity resolves the configured current user against seeded
// profiles; an unknown id still yields a usable identity.
func sessionIdentity(st *store.Store, userID string, sugar *zap.SugaredLogger) service.Session {
	if u, err := st.GetUser(userID); err == nil {
		return service.Session{ID: u.ID, Name: u.Name, Email: u.Email, Avatar: u.Avatar}
	}
	sugar.Warnf("current user %s has no seeded profile", userID)
	return service.Session{ID: userID}
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
