package main

import (
	"flag"
	"os"

	"github.com/arhyth/acctbatch"
	"github.com/rs/zerolog"
)

// seeder writes a requests file of valid records, e.g. to fill the ledger
// past capacity.
func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfp := flag.String("config", "config.yml", "path to configuration file")
	n := flag.Int("n", 210, "number of requests to write")
	flag.Parse()

	cfg, err := acctbatch.LoadConfig(*cfp)
	if err != nil {
		logger.Fatal().Err(err).Msg("error loading config file")
	}

	fl, err := os.Create(cfg.Files.Input)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Files.Input).Msg("error creating requests file")
	}
	defer fl.Close()
	if err = acctbatch.WriteSeedRequests(fl, *n); err != nil {
		logger.Fatal().Err(err).Msg("error writing requests")
	}
	logger.Info().Int("requests", *n).Str("path", cfg.Files.Input).Msg("seeded")
}
