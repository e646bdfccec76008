package acctbatch

// Bounded is an append-only arena of pre-sized slots. It never grows: an
// append past capacity fails and the contents stay as they were.
type Bounded[T any] struct {
	slots []T
	n     int
}

func NewBounded[T any](capacity int) *Bounded[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Bounded[T]{slots: make([]T, capacity)}
}

// Append copies v into the next free slot. It returns false when full.
func (b *Bounded[T]) Append(v T) bool {
	if b.n >= len(b.slots) {
		return false
	}
	b.slots[b.n] = v
	b.n++
	return true
}

func (b *Bounded[T]) Len() int   { return b.n }
func (b *Bounded[T]) Cap() int   { return len(b.slots) }
func (b *Bounded[T]) Full() bool { return b.n >= len(b.slots) }

// Items returns a copy of the occupied slots in insertion order.
func (b *Bounded[T]) Items() []T {
	out := make([]T, b.n)
	copy(out, b.slots[:b.n])
	return out
}

// Ledger holds admitted accounts in admission order.
type Ledger struct {
	accts *Bounded[Account]
}

func NewLedger(capacity int) *Ledger {
	return &Ledger{accts: NewBounded[Account](capacity)}
}

// Admit copies acct into the ledger. The caller's account can be reset and
// reused afterwards.
func (l *Ledger) Admit(acct *Account) error {
	if !l.accts.Append(*acct) {
		return ErrLedgerFull
	}
	return nil
}

func (l *Ledger) Len() int            { return l.accts.Len() }
func (l *Ledger) Cap() int            { return l.accts.Cap() }
func (l *Ledger) Accounts() []Account { return l.accts.Items() }

// Rejection is a request that did not make it into the ledger.
type Rejection struct {
	Request Request
	Reason  string
}

// Line formats the rejection the way it is written to the rejection sink.
func (r Rejection) Line() string {
	return r.Request.String() + " :: " + r.Reason
}

// Rejections mirrors rejected requests in memory up to a fixed capacity.
type Rejections struct {
	recs *Bounded[Rejection]
}

func NewRejections(capacity int) *Rejections {
	return &Rejections{recs: NewBounded[Rejection](capacity)}
}

func (r *Rejections) Add(rec Rejection) error {
	if !r.recs.Append(rec) {
		return ErrRejectionsFull
	}
	return nil
}

func (r *Rejections) Len() int           { return r.recs.Len() }
func (r *Rejections) Cap() int           { return r.recs.Cap() }
func (r *Rejections) Items() []Rejection { return r.recs.Items() }
