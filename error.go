package acctbatch

import (
	"errors"
	"fmt"
)

var (
	ErrInternalServer = errors.New("internal server error")
	ErrBusy           = errors.New("session busy")
	ErrRejectionsFull = errors.New("rejection records full")
)

// RejectionError is a rejection whose message is the reason recorded
// against the request.
type RejectionError string

func (e RejectionError) Error() string {
	return string(e)
}

const (
	ErrInvalidSSN       RejectionError = "Invalid SSN"
	ErrInvalidName      RejectionError = "Invalid name"
	ErrInvalidEmail     RejectionError = "Invalid email"
	ErrInvalidPresent   RejectionError = "Invalid present balance"
	ErrInvalidAvailable RejectionError = "Invalid available balance"
	ErrLedgerFull       RejectionError = "ledger full"
)

type ErrBadRequest struct {
	Fields map[string]string
}

func (e ErrBadRequest) Error() string {
	return fmt.Sprintf("missing/invalid params: %v", e.Fields)
}
