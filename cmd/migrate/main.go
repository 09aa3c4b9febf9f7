package main

import (
	"flag"
	"fmt"
	"os"

	"wallet-ledger-service/config"
	pgStorage "wallet-ledger-service/internal/adapter/storage/postgres"
	"wallet-ledger-service/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional, env vars used otherwise)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("database", cfg.Database.DBName).
		Str("migrations", cfg.Database.MigrationsPath).
		Msg("Applying schema migrations")

	if err := pgStorage.RunMigrations(cfg.Database.DSN(), cfg.Database.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}

	log.Info().Msg("Schema up to date")
}
