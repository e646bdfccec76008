package main

import (
	"flag"
	"os"

	"github.com/arhyth/acctbatch"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfp := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()
	// a missing .env is fine
	_ = godotenv.Load()
	if p := os.Getenv("ACCTBATCH_CONFIG"); p != "" {
		*cfp = p
	}

	cfg, err := acctbatch.LoadConfig(*cfp)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *cfp).Msg("error loading config file")
	}

	auditfl, err := acctbatch.OpenAuditFile(cfg.Files.Audit)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Files.Audit).Msg("error opening audit log")
	}
	defer auditfl.Close()
	audit := acctbatch.NewAuditLog(acctbatch.NewBreakerWriter("audit", auditfl, &logger))

	sess, err := acctbatch.NewSession(cfg.Ledger, audit, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting session")
	}

	menu := &acctbatch.Menu{
		Sess:  sess,
		Files: cfg.Files,
		In:    os.Stdin,
		Out:   os.Stdout,
		Log:   &logger,
	}
	if err = menu.Run(); err != nil {
		logger.Err(err).Msg("menu stopped with error")
		auditfl.Close()
		os.Exit(1)
	}
}
