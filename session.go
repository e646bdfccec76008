package acctbatch

import (
	"fmt"
	"io"
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Summary counts the outcome of one batch.
type Summary struct {
	RunID     snowflake.ID `json:"run_id"`
	Processed int          `json:"processed"`
	Created   int          `json:"created"`
	Invalid   int          `json:"invalid"`
}

func (s Summary) String() string {
	return fmt.Sprintf("processed=%d created=%d invalid=%d", s.Processed, s.Created, s.Invalid)
}

// Session owns the state of one run: the ledger, the in-memory rejection
// records and the run counter behind generated account numbers. It is not
// safe for concurrent use.
type Session struct {
	RunID snowflake.ID

	cfg     LedgerConfig
	ids     *IDGenerator
	ledger  *Ledger
	rejects *Rejections
	audit   Auditor
	log     *zerolog.Logger
}

type SessionOption func(*Session)

// WithIDGenerator replaces the wall-clock seeded generator.
func WithIDGenerator(g *IDGenerator) SessionOption {
	return func(s *Session) {
		s.ids = g
	}
}

// NewSession starts a run with a fresh snowflake run id. Audit lines written
// through an *AuditLog carry the run id as a field.
func NewSession(cfg LedgerConfig, audit Auditor, log *zerolog.Logger, opts ...SessionOption) (*Session, error) {
	node, err := snowflake.NewNode(cfg.NodeID)
	if err != nil {
		return nil, err
	}
	runID := node.Generate()
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	if al, ok := audit.(*AuditLog); ok {
		audit = al.WithRun(runID)
	}
	sl := log.With().Str("run", runID.String()).Logger()
	s := &Session{
		RunID:   runID,
		cfg:     cfg,
		ids:     NewIDGenerator(),
		ledger:  NewLedger(cfg.Capacity),
		rejects: NewRejections(cfg.Capacity),
		audit:   audit,
		log:     &sl,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Session) Config() LedgerConfig          { return s.cfg }
func (s *Session) Accounts() []Account           { return s.ledger.Accounts() }
func (s *Session) Rejections() []Rejection       { return s.rejects.Items() }
func (s *Session) Ledger() *Ledger               { return s.ledger }
func (s *Session) RejectionRecords() *Rejections { return s.rejects }

// Process runs every request from src through validation and admission.
// Each rejection is written to sink, even once the in-memory rejection
// records are full. Sink write errors are logged and do not stop the batch.
func (s *Session) Process(src RequestSource, sink io.Writer) Summary {
	sum := Summary{RunID: s.RunID}
	for {
		req, ok := src.Next()
		if !ok {
			break
		}
		sum.Processed++
		if err := s.admit(req); err != nil {
			sum.Invalid++
			s.reject(req, err, sink)
			continue
		}
		sum.Created++
	}
	if es, ok := src.(interface{ Err() error }); ok && es.Err() != nil {
		s.log.Err(es.Err()).Msg("error reading requests")
	}

	s.audit.Audit("batch summary: " + sum.String())
	s.log.Info().
		Int("processed", sum.Processed).
		Int("created", sum.Created).
		Int("invalid", sum.Invalid).
		Msg("batch done")
	return sum
}

// ProcessFiles reads requests from inputPath and writes rejection lines to
// rejectPath, which is truncated first. Both files are closed before it
// returns.
func (s *Session) ProcessFiles(inputPath, rejectPath string) (Summary, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		s.audit.Audit("cannot open " + inputPath)
		return Summary{RunID: s.RunID}, fmt.Errorf("open requests: %w", err)
	}
	defer in.Close()

	out, err := os.Create(rejectPath)
	if err != nil {
		s.audit.Audit("cannot open " + rejectPath)
		return Summary{RunID: s.RunID}, fmt.Errorf("open rejects: %w", err)
	}
	defer out.Close()

	sink := NewBreakerWriter("rejects", out, s.log)
	return s.Process(NewRequestReader(in), sink), nil
}

// opening picks the opening present balance and overdraft limit. Accounts
// with an edu address open overdrawn and get the larger limit.
func (s *Session) opening(email string) (present, overdraft decimal.Decimal) {
	if EmailDomain(email) == "edu" {
		return s.cfg.EduOpeningBalance, s.cfg.EduOverdraft
	}
	return s.cfg.OpeningBalance, s.cfg.MaxOverdraft
}

func (s *Session) admit(req Request) error {
	acctNo := s.ids.Next()
	present, overdraft := s.opening(req.Email)

	acct := NewAccount(overdraft)
	acct.SetAcctNo(acctNo)
	err := acct.SetAccount(req.SSN, req.FirstName, req.LastName, req.Email, present, decimal.Zero)
	if err != nil {
		s.audit.Audit(fmt.Sprintf("validation failed: %s | %s", err, req))
		return err
	}
	s.audit.Audit(fmt.Sprintf("validation ok: %s %s (%s)", req.FirstName, req.LastName, acctNo))

	if err = s.ledger.Admit(acct); err != nil {
		s.audit.Audit(fmt.Sprintf("admission failed (%s) for account %s", err, acctNo))
		return err
	}
	return nil
}

func (s *Session) reject(req Request, reason error, sink io.Writer) {
	rec := Rejection{Request: req, Reason: reason.Error()}
	if err := s.rejects.Add(rec); err != nil {
		s.log.Warn().Err(err).Str("request", req.String()).Msg("rejection not kept in memory")
	}
	if sink == nil {
		return
	}
	if _, err := io.WriteString(sink, rec.Line()+"\n"); err != nil {
		s.log.Err(err).Str("request", req.String()).Msg("error writing rejection sink")
	}
}
