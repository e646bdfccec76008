package acctbatch

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// maxBatchBytes caps a submitted request body.
const maxBatchBytes = 1 << 20

func NewHTTPHandler(svc Service, log *zerolog.Logger) http.Handler {
	hndlr := &httpHandler{
		Svc: svc,
		Log: log,
	}
	mux := chi.NewMux()
	mux.NotFound(HTTPNotFound)
	mux.Post("/batches", hndlr.ProcessBatch)
	mux.Get("/rejections", hndlr.Rejections)
	mux.Route("/accounts", func(r chi.Router) {
		r.Get("/", hndlr.Accounts)
		r.Get("/statement", hndlr.Statement)
	})

	return mux
}

type httpHandler struct {
	Svc Service
	Log *zerolog.Logger
}

func (h *httpHandler) ProcessBatch(w http.ResponseWriter, r *http.Request) {
	buf, err := io.ReadAll(io.LimitReader(r.Body, maxBatchBytes+1))
	defer r.Body.Close()
	if err != nil {
		h.Log.Err(err).Str("method", "process_batch").Msg("error reading HTTP request")
		WriteHTTPError(w, ErrInternalServer)
		return
	}
	if len(buf) > maxBatchBytes {
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"request body": "too large"}})
		return
	}
	if len(bytes.TrimSpace(buf)) == 0 {
		WriteHTTPError(w, ErrBadRequest{Fields: map[string]string{"request body": "empty"}})
		return
	}

	sum, err := h.Svc.ProcessBatch(bytes.NewReader(buf))
	if err != nil {
		h.Log.Err(err).Str("method", "process_batch").Msg("error processing batch")
		WriteHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(sum); err != nil {
		WriteHTTPError(w, err)
	}
}

func (h *httpHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	accts, err := h.Svc.Accounts()
	if err != nil {
		h.Log.Err(err).Str("method", "accounts").Msg("error listing accounts")
		WriteHTTPError(w, err)
		return
	}
	if accts == nil {
		accts = []Account{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(accts); err != nil {
		WriteHTTPError(w, err)
	}
}

func (h *httpHandler) Rejections(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Svc.Rejections()
	if err != nil {
		h.Log.Err(err).Str("method", "rejections").Msg("error listing rejections")
		WriteHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	for _, rec := range recs {
		if _, err = io.WriteString(w, rec.Line()+"\n"); err != nil {
			h.Log.Err(err).Str("method", "rejections").Msg("error writing response")
			return
		}
	}
}

// Statement renders into a buffer first so a failure can still be reported
// as a JSON error instead of a truncated PDF.
func (h *httpHandler) Statement(w http.ResponseWriter, r *http.Request) {
	buf := new(bytes.Buffer)
	if err := h.Svc.Statement(buf); err != nil {
		h.Log.Err(err).Str("method", "statement").Msg("error rendering statement")
		WriteHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	if _, err := buf.WriteTo(w); err != nil {
		h.Log.Err(err).Str("method", "statement").Msg("error writing response")
	}
}

func WriteHTTPError(w http.ResponseWriter, err error) {
	var ne error
	defer func() {
		if ne != nil {
			log.Error().
				Err(ne).
				Msg("error response encoding failed")
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	errbr := &ErrBadRequest{}
	if errors.As(err, errbr) {
		w.WriteHeader(http.StatusBadRequest)
		ne = json.NewEncoder(w).Encode(errbr)
	} else if errors.Is(err, ErrBusy) {
		w.WriteHeader(http.StatusServiceUnavailable)
		resp := map[string]string{
			"message": err.Error(),
		}
		ne = json.NewEncoder(w).Encode(resp)
	} else {
		w.WriteHeader(http.StatusInternalServerError)
		resp := map[string]string{
			"message": "server error",
		}
		ne = json.NewEncoder(w).Encode(resp)
	}
}

func HTTPNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	resp := map[string]string{
		"path": r.URL.Path,
	}
	json.NewEncoder(w).Encode(resp)
}
