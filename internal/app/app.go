package app

import (
	"bookshelf_backend/internal/config"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

// Run поднимает HTTP сервер и блокируется до отмены ctx
func (s *App) Run(ctx context.Context) error {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	s.initServiceProvider()

	srv, err := s.buildServer(ctx)
	if err != nil {
		_ = s.ServiceProvider.Close(context.Background())
		return err
	}

	return s.serve(ctx, srv)
}

// buildServer собирает зависимости, паника геттера становится ошибкой
func (s *App) buildServer(ctx context.Context) (srv *http.Server, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("init: %v", r)
		}
	}()

	sp := s.ServiceProvider
	return &http.Server{
		Addr:              sp.HTTPCfg().Address(),
		Handler:           sp.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}, nil
}

func (s *App) serve(ctx context.Context, srv *http.Server) error {
	l := s.ServiceProvider.Logger()
	l.Info("server.start", "addr", srv.Addr, "sessions", s.ServiceProvider.StorageCfg().Sessions())

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		l.Info("server.stop", "reason", "context_done")
	case runErr = <-errCh:
		l.Error("server.fail", "err", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error("server.shutdown.fail", "err", err)
		if runErr == nil {
			runErr = err
		}
	}
	if err := s.ServiceProvider.Close(shutdownCtx); err != nil {
		l.Error("storage.close.fail", "err", err)
	}

	l.Info("server.stopped")
	return runErr
}
