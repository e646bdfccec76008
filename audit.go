package acctbatch

import (
	"io"
	"os"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=audit.go -destination=mocks/audit.go -package=mocks

// Auditor receives one line per validation attempt and one per batch summary.
type Auditor interface {
	Audit(line string)
}

// AuditLog writes audit lines as plain, uncolored console log lines.
type AuditLog struct {
	log zerolog.Logger
}

var _ Auditor = (*AuditLog)(nil)

func NewAuditLog(w io.Writer) *AuditLog {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}
	return &AuditLog{log: zerolog.New(cw).With().Timestamp().Logger()}
}

// WithRun returns an audit log that stamps every line with run.
func (a *AuditLog) WithRun(run snowflake.ID) *AuditLog {
	return &AuditLog{log: a.log.With().Str("run", run.String()).Logger()}
}

func (a *AuditLog) Audit(line string) {
	a.log.Info().Msg(line)
}

// OpenAuditFile truncates the audit file at path and marks the start of a
// new log. The caller closes the returned file.
func OpenAuditFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	if _, err = io.WriteString(f, "=== Log start ===\n"); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}
