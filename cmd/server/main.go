package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/sforsanjnarao/prevAuth-sub000/internal/adapter"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/config"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/crypto"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/handler"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/logger"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/server"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/service"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/store"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	// cfg holds the token sign key and the server secret key; never log it.
	logg := logger.NewLogger("prevauth-server", cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, logg)
	if err != nil {
		logg.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logg.Fatal().Err(err).Msg("error applying migrations")
	}

	kdf, err := crypto.NewKeyDeriver(cfg.Crypto)
	if err != nil {
		logg.Fatal().Err(err).Msg("error creating key deriver")
	}
	fieldCipher := crypto.NewFieldCipher()
	serverCipher, err := crypto.NewServerSecretCipher(&cfg.Crypto, fieldCipher)
	if err != nil {
		logg.Fatal().Err(err).Msg("error creating server secret cipher")
	}

	mailbox, err := adapter.NewHTTPMailboxAdapter(cfg.Adapter, logg)
	if err != nil {
		logg.Fatal().Err(err).Msg("error creating mailbox adapter")
	}

	services, err := service.NewServices(
		store.NewRepositories(db, logg),
		service.Crypto{KeyDerivation: kdf, FieldCipher: fieldCipher, ServerCipher: serverCipher},
		mailbox,
		cfg,
		logg,
	)
	if err != nil {
		logg.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, logg)
	if err != nil {
		logg.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, logg)
	if err != nil {
		logg.Fatal().Err(err).Msg("error creating server")
	}

	bg := workers.NewWorkers(services, cfg.Workers, logg)
	bg.Run(ctx)

	logg.Info().
		Str("address", cfg.Server.HTTPAddress).
		Str("version", cfg.App.Version).
		Int("kdf_iterations", cfg.Crypto.KDFIterations).
		Str("kdf_digest", cfg.Crypto.KDFDigest).
		Msg("starting server")

	if err := srv.RunServer(ctx); err != nil {
		logg.Error().Err(err).Msg("server stopped with error")
	}

	stop()
	bg.Wait()
	logg.Info().Msg("server stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
