package acctbatch_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arhyth/acctbatch"
)

func newMenu(t *testing.T, input string) (*acctbatch.Menu, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	files := acctbatch.FilesConfig{
		Input:     filepath.Join("testdata", "requests.txt"),
		Output:    filepath.Join(dir, "new_accounts.txt"),
		Rejects:   filepath.Join(dir, "invalid_records.txt"),
		Audit:     filepath.Join(dir, "bank_log.txt"),
		Statement: filepath.Join(dir, "new_accounts.pdf"),
	}
	auditfl, err := acctbatch.OpenAuditFile(files.Audit)
	require.Nil(t, err)
	t.Cleanup(func() { auditfl.Close() })

	log := zerolog.Nop()
	out := new(bytes.Buffer)
	return &acctbatch.Menu{
		Sess:  newSession(t, 200, acctbatch.NewAuditLog(auditfl)),
		Files: files,
		In:    strings.NewReader(input),
		Out:   out,
		Log:   &log,
	}, out
}

func TestMenuRun(t *testing.T) {
	t.Run("processes once, prints and writes the output file", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		m, out := newMenu(tt, "2\n1\n1\n2\n3\n4\n6\nabc\n9\n5\n")

		reqrd.Nil(m.Run())
		got := out.String()
		as.Contains(got, "No accounts.")
		as.Contains(got, "Processed: 3 | Created: 2 | Invalid: 1")
		as.Contains(got, "Requests already processed.")
		as.Contains(got, "mary_lee@lapc.edu")
		as.Contains(got, "123 A B a@b.com :: Invalid SSN")
		as.Contains(got, "=== Log start ===")
		as.Contains(got, "batch summary: processed=3 created=2 invalid=1")
		as.Contains(got, "Wrote statement to "+m.Files.Statement)
		as.Equal(2, strings.Count(got, "Invalid choice."))
		as.Contains(got, "Wrote 2 account(s) to "+m.Files.Output)

		bits, err := os.ReadFile(m.Files.Output)
		reqrd.Nil(err)
		as.Contains(string(bits), "alan.turing@computing.com")
		_, err = os.Stat(m.Files.Statement)
		as.Nil(err)
	})

	t.Run("reads several choices from one line", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		m, out := newMenu(tt, "1 2  3\t5")

		reqrd.Nil(m.Run())
		got := out.String()
		as.Contains(got, "Processed: 3 | Created: 2 | Invalid: 1")
		as.Contains(got, "mary_lee@lapc.edu")
		as.Contains(got, "123 A B a@b.com :: Invalid SSN")
		as.NotContains(got, "Invalid choice.")
		as.Contains(got, "Wrote 2 account(s) to "+m.Files.Output)
	})

	t.Run("end of input stops without writing the output file", func(tt *testing.T) {
		as := assert.New(tt)
		m, _ := newMenu(tt, "1\n")
		as.Nil(m.Run())
		_, err := os.Stat(m.Files.Output)
		as.True(os.IsNotExist(err))
	})

	t.Run("reports a missing input file and allows a retry", func(tt *testing.T) {
		as := assert.New(tt)
		m, out := newMenu(tt, "1\n5\n")
		m.Files.Input = filepath.Join(tt.TempDir(), "missing.txt")
		as.Nil(m.Run())
		as.Contains(out.String(), "Cannot process requests")
		as.Contains(out.String(), "Wrote 0 account(s)")
	})
}
