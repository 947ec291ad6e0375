package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/internal/service"
	"github.com/MKhiriev/go-client-panel/internal/store"
	"github.com/MKhiriev/go-client-panel/internal/workers"
)

var errNothingToRun = errors.New("client app needs services, a UI and storage")

type App struct {
	services *service.ClientServices
	ui       UI
	storage  store.LocalStorage
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, storage store.LocalStorage, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil || storage == nil {
		return nil, errNothingToRun
	}
	return &App{services: services, ui: ui, storage: storage, logger: logger}, nil
}

// Run blocks until the dashboard exits or the process is signalled.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	session := a.services.Session

	if err := session.LoadRoster(ctx); err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	workersCtx, cancelWorkers := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		workers.NewWorkers(session.Worker()).Run(workersCtx)
	}()
	a.logger.Info().Str("func", "App.run").Msg("panel started")

	uiErr := a.ui.Run(ctx)
	if uiErr != nil {
		uiErr = fmt.Errorf("dashboard: %w", uiErr)
	}

	// Logout writes whatever the debouncer has not flushed yet.
	if session.LoggedIn() {
		session.Logout(context.WithoutCancel(ctx))
	}
	cancelWorkers()
	<-done
	session.Close()

	var closeErr error
	if err := a.storage.Close(); err != nil {
		closeErr = fmt.Errorf("close local storage: %w", err)
	}
	a.logger.Info().Str("func", "App.run").Msg("panel stopped")

	return errors.Join(uiErr, closeErr)
}
