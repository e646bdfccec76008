package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/arhyth/acctbatch"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfp := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()
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
	rejectfl, err := os.Create(cfg.Files.Rejects)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Files.Rejects).Msg("error opening rejects file")
	}
	defer rejectfl.Close()

	audit := acctbatch.NewAuditLog(acctbatch.NewBreakerWriter("audit", auditfl, &logger))
	sess, err := acctbatch.NewSession(cfg.Ledger, audit, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting session")
	}

	var svc acctbatch.Service = acctbatch.NewService(sess, acctbatch.NewBreakerWriter("rejects", rejectfl, &logger))
	svc = acctbatch.NewLimitMiddleware(semaphore.NewWeighted(1), cfg.Server.BusyTimeout)(svc)
	hndlr := acctbatch.NewHTTPHandler(svc, &logger)

	logger.Info().Str("addr", cfg.Server.Addr).Str("run", sess.RunID.String()).Msg("listening")
	if err = http.ListenAndServe(cfg.Server.Addr, hndlr); err != nil {
		logger.Err(err).Msg("server stopped")
	}
}
