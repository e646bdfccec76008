package acctbatch

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/semaphore"
)

type Middleware func(Service) Service

// limitMiddleware serializes calls into the service with a weighted
// semaphore of weight 1 and an acquisition timeout. A session is not safe
// for concurrent use, so reads wait for a running batch too.
type limitMiddleware struct {
	next    Service
	sem     *semaphore.Weighted
	timeout time.Duration
}

var (
	_ Service = (*limitMiddleware)(nil)
)

func NewLimitMiddleware(sem *semaphore.Weighted, timeout time.Duration) Middleware {
	return func(next Service) Service {
		return &limitMiddleware{
			next:    next,
			sem:     sem,
			timeout: timeout,
		}
	}
}

func (l *limitMiddleware) acquire() (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, ErrBusy
	}
	return func() { l.sem.Release(1) }, nil
}

func (l *limitMiddleware) ProcessBatch(src io.Reader) (*Summary, error) {
	release, err := l.acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.ProcessBatch(src)
}

func (l *limitMiddleware) Accounts() ([]Account, error) {
	release, err := l.acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.Accounts()
}

func (l *limitMiddleware) Rejections() ([]Rejection, error) {
	release, err := l.acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.Rejections()
}

func (l *limitMiddleware) Statement(w io.Writer) error {
	release, err := l.acquire()
	if err != nil {
		return err
	}
	defer release()
	return l.next.Statement(w)
}

// BreakerWriter guards a file-backed sink with a circuit breaker. After three
// consecutive write failures it stops touching the underlying writer and
// fails fast with gobreaker.ErrOpenState until the breaker half-opens.
type BreakerWriter struct {
	w  io.Writer
	cb *gobreaker.CircuitBreaker[int]
}

var _ io.Writer = (*BreakerWriter)(nil)

func NewBreakerWriter(name string, w io.Writer, log *zerolog.Logger) *BreakerWriter {
	st := gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("sink", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("sink breaker state changed")
		},
	}
	return &BreakerWriter{
		w:  w,
		cb: gobreaker.NewCircuitBreaker[int](st),
	}
}

func (b *BreakerWriter) Write(p []byte) (int, error) {
	return b.cb.Execute(func() (int, error) {
		return b.w.Write(p)
	})
}

// State reports the breaker state, mostly for tests and diagnostics.
func (b *BreakerWriter) State() gobreaker.State {
	return b.cb.State()
}
