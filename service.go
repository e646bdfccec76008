package acctbatch

import (
	"io"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Service interface {
	ProcessBatch(src io.Reader) (*Summary, error)
	Accounts() ([]Account, error)
	Rejections() ([]Rejection, error)
	Statement(w io.Writer) error
}

// NewService exposes a session as a Service. Rejection lines go to sink,
// which may be nil.
func NewService(sess *Session, sink io.Writer) *serviceImpl {
	return &serviceImpl{
		sess: sess,
		sink: sink,
	}
}

type serviceImpl struct {
	sess *Session
	sink io.Writer
}

func (s *serviceImpl) ProcessBatch(src io.Reader) (*Summary, error) {
	sum := s.sess.Process(NewRequestReader(src), s.sink)
	return &sum, nil
}

func (s *serviceImpl) Accounts() ([]Account, error) {
	return s.sess.Accounts(), nil
}

func (s *serviceImpl) Rejections() ([]Rejection, error) {
	return s.sess.Rejections(), nil
}

func (s *serviceImpl) Statement(w io.Writer) error {
	return RenderStatementPDF(w, s.sess.Accounts(), s.sess.Config().Decimals)
}
