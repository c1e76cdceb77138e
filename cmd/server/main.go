package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"party-lab/auth"
	grpcserver "party-lab/infrastructure/grpc/server"
	httpserver "party-lab/infrastructure/http/server"
	"party-lab/internal"
	"party-lab/moderation"
	"party-lab/observability"
	"party-lab/repositories"
	"party-lab/runtime/workers"
	"party-lab/services"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Exit codes returned to the service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal arrives.
// Deferred cleanups run before main exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	censorChar, err := internal.CharacterRune(config.CensorCharacter)
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	characterRepository := repositories.NewCharacterRepository(db, log)
	userRepository := repositories.NewUserRepository(db)
	bannedWordRepository := repositories.NewBannedWordRepository(db)

	// 3. Moderation, seeded from BANNED_WORDS on top of what is already stored
	if err = bannedWordRepository.Add(config.BannedWordList()); err != nil {
		return exitRuntime, fmt.Errorf("banned words seeding failed: %w", err)
	}
	bannedWords, err := bannedWordRepository.List()
	if err != nil {
		return exitRuntime, err
	}
	moderator, err := moderation.NewModerator(bannedWords, censorChar, log)
	if err != nil {
		return exitRuntime, fmt.Errorf("moderator build failed: %w", err)
	}

	// 4. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics, err := observability.NewPrometheus(registry, "")
	if err != nil {
		return exitRuntime, fmt.Errorf("metrics registration failed: %w", err)
	}

	// 5. Services
	issuer := auth.NewTokenIssuer(config.AuthSecret, config.AuthTokenDuration)
	authService := services.NewAuthService(userRepository, issuer, log)
	characterService := services.NewCharacterService(characterRepository, moderator, log)
	partyService := services.NewPartyService(characterRepository, metrics, config.PartyConfig(), log)

	// 6. Transports
	httpServer := httpserver.NewServer(authService, characterService, partyService, issuer, registry, log)
	if config.FrontendPath != "" {
		httpServer.WithFrontend(config.FrontendPath)
	}
	grpcServer := grpcserver.NewGRPCServer(
		grpcserver.NewPartyServer(log, authService, characterService, partyService),
		issuer,
	)

	// 7. Supervision
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewHTTPServerWorker(log, config.HTTPAddr(), httpServer.Handler(), config.ShutdownTimeout),
		workers.NewGRPCServerWorker(log, config.GRPCAddr(), grpcServer, config.ShutdownTimeout),
		workers.NewProcessStatsWorker(log, int32(os.Getpid()), config.ProcessStatsInterval, metrics),
	)

	log.Info("Party lab started",
		"http", config.HTTPAddr(),
		"grpc", config.GRPCAddr(),
		"banned_words", len(bannedWords),
	)
	sup.Run(ctx)

	log.Info("Program stopped cleanly")
	return exitOK, nil
}
