package acctbatch

import (
	"bufio"
	"io"
	"strings"
)

// Request is one raw account-opening record.
type Request struct {
	SSN       string
	FirstName string
	LastName  string
	Email     string
}

func (r Request) String() string {
	return strings.Join([]string{r.SSN, r.FirstName, r.LastName, r.Email}, " ")
}

// RequestSource yields requests until it is exhausted.
type RequestSource interface {
	Next() (Request, bool)
}

// RequestReader reads whitespace-separated four-field records. Line breaks
// carry no meaning. A trailing record with fewer than four fields ends the
// stream and is not returned.
type RequestReader struct {
	sc   *bufio.Scanner
	done bool
}

var _ RequestSource = (*RequestReader)(nil)

func NewRequestReader(r io.Reader) *RequestReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &RequestReader{sc: sc}
}

func (rr *RequestReader) Next() (Request, bool) {
	if rr.done {
		return Request{}, false
	}
	var f [4]string
	for i := range f {
		if !rr.sc.Scan() {
			rr.done = true
			return Request{}, false
		}
		f[i] = rr.sc.Text()
	}
	return Request{SSN: f[0], FirstName: f[1], LastName: f[2], Email: f[3]}, true
}

// Err returns the first non-EOF read error, if any.
func (rr *RequestReader) Err() error {
	return rr.sc.Err()
}
