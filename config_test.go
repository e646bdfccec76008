package acctbatch_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arhyth/acctbatch"
)

func TestLoadConfig(t *testing.T) {
	t.Run("overlays the file on the defaults", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		cfg, err := acctbatch.LoadConfig(filepath.Join("testdata", "config.yml"))
		reqrd.Nil(err)
		as.Equal(3, cfg.Ledger.Capacity)
		as.Equal("25.50", cfg.Ledger.MaxOverdraft.StringFixed(2))
		as.Equal("150.00", cfg.Ledger.EduOverdraft.StringFixed(2))
		as.Equal("-150.00", cfg.Ledger.EduOpeningBalance.StringFixed(2))
		as.Equal(int32(2), cfg.Ledger.Decimals)
		as.Equal("in.txt", cfg.Files.Input)
		as.Equal("new_accounts.txt", cfg.Files.Output)
		as.Equal(250*time.Millisecond, cfg.Server.BusyTimeout)
		as.Equal(":3000", cfg.Server.Addr)
	})

	t.Run("returns an error on a missing file", func(tt *testing.T) {
		_, err := acctbatch.LoadConfig(filepath.Join(tt.TempDir(), "config.yml"))
		assert.NotNil(tt, err)
	})

	t.Run("default config carries the fixed constants", func(tt *testing.T) {
		as := assert.New(tt)
		cfg := acctbatch.DefaultConfig()
		as.Equal(200, cfg.Ledger.Capacity)
		as.Equal("50.00", cfg.Ledger.MaxOverdraft.StringFixed(2))
		as.Equal("100.00", cfg.Ledger.OpeningBalance.StringFixed(2))
		as.Equal(int32(2), cfg.Ledger.Decimals)
	})
}
