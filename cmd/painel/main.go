package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-client-panel/internal/adapter"
	"github.com/MKhiriev/go-client-panel/internal/client"
	"github.com/MKhiriev/go-client-panel/internal/config"
	"github.com/MKhiriev/go-client-panel/internal/crypto"
	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/internal/service"
	"github.com/MKhiriev/go-client-panel/internal/store"
	"github.com/MKhiriev/go-client-panel/internal/tui"
	"github.com/MKhiriev/go-client-panel/internal/utils"
	"github.com/MKhiriev/go-client-panel/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	bootLog := logger.NewLogger("painel")
	cfg, err := config.GetClientConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log, logFile, err := logger.NewClientLogger("painel", cfg.LogFile, cfg.LogLevel)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error opening log file")
	}
	defer logFile.Close()

	ctx := context.Background()

	localStorage, err := store.NewLocalStorage(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	bins, err := adapter.NewBinClient(ctx, cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create bin client")
	}

	var generator adapter.TextGenerator
	switch gen, err := adapter.NewGenAITextGenerator(ctx, cfg.AI, log); {
	case errors.Is(err, adapter.ErrNotConfigured):
		log.Info().Msg("no AI key configured, assistant answers with fallback texts")
	case err != nil:
		log.Fatal().Err(err).Msg("create text generator")
	default:
		generator = gen
	}

	notices := tui.NewNoticeQueue()
	services := service.NewClientServices(service.ClientServicesDeps{
		Storage:       localStorage,
		Bins:          bins,
		Envelope:      crypto.NewEnvelope(cfg.KDFIterations),
		Generator:     generator,
		Notifier:      notices,
		Clock:         utils.SystemClock{},
		PersistWindow: cfg.Workers.DebounceWindow,
		Logger:        log,
	})

	ui := tui.New(services, notices, buildInfo, log)

	app, err := client.NewApp(services, ui, localStorage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())

	return info
}
