package acctbatch

import (
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type LedgerConfig struct {
	Capacity          int             `yaml:"capacity"`
	MaxOverdraft      decimal.Decimal `yaml:"max_overdraft"`
	EduOverdraft      decimal.Decimal `yaml:"edu_overdraft"`
	OpeningBalance    decimal.Decimal `yaml:"opening_balance"`
	EduOpeningBalance decimal.Decimal `yaml:"edu_opening_balance"`
	Decimals          int32           `yaml:"decimals"`
	NodeID            int64           `yaml:"node_id"`
}

type FilesConfig struct {
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	Rejects   string `yaml:"rejects"`
	Audit     string `yaml:"audit"`
	Statement string `yaml:"statement"`
}

type Config struct {
	Ledger LedgerConfig `yaml:"ledger"`
	Files  FilesConfig  `yaml:"files"`
	Server struct {
		Addr        string        `yaml:"addr"`
		BusyTimeout time.Duration `yaml:"busy_timeout"`
	} `yaml:"server"`
}

func DefaultConfig() Config {
	var cfg Config
	cfg.Ledger = LedgerConfig{
		Capacity:          200,
		MaxOverdraft:      decimal.New(50, 0),
		EduOverdraft:      decimal.New(150, 0),
		OpeningBalance:    decimal.New(100, 0),
		EduOpeningBalance: decimal.New(-150, 0),
		Decimals:          2,
		NodeID:            1,
	}
	cfg.Files = FilesConfig{
		Input:     "requests.txt",
		Output:    "new_accounts.txt",
		Rejects:   "invalid_records.txt",
		Audit:     "bank_log.txt",
		Statement: "new_accounts.pdf",
	}
	cfg.Server.Addr = ":3000"
	cfg.Server.BusyTimeout = 5 * time.Second
	return cfg
}

// LoadConfig decodes the YAML file at path over DefaultConfig, so any key the
// file leaves out keeps its default.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err = yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
