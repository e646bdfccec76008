package acctbatch_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/semaphore"

	"github.com/arhyth/acctbatch"
)

func TestService(t *testing.T) {
	t.Run("processes a batch and exposes the session state", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		sess := newSession(tt, 200, acctbatch.NewAuditLog(new(bytes.Buffer)))
		sink := new(bytes.Buffer)
		svc := acctbatch.NewService(sess, sink)

		sum, err := svc.ProcessBatch(strings.NewReader(threeRequests))
		reqrd.Nil(err)
		as.Equal("processed=3 created=2 invalid=1", sum.String())

		accts, err := svc.Accounts()
		reqrd.Nil(err)
		as.Len(accts, 2)
		recs, err := svc.Rejections()
		reqrd.Nil(err)
		as.Len(recs, 1)
		as.Equal("123 A B a@b.com :: Invalid SSN\n", sink.String())

		pdf := new(bytes.Buffer)
		reqrd.Nil(svc.Statement(pdf))
		as.True(bytes.HasPrefix(pdf.Bytes(), []byte("%PDF-")))
	})

	t.Run("batches accumulate into one ledger behind the limit middleware", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		sess := newSession(tt, 3, acctbatch.NewAuditLog(new(bytes.Buffer)))
		var svc acctbatch.Service = acctbatch.NewService(sess, nil)
		svc = acctbatch.NewLimitMiddleware(semaphore.NewWeighted(1), time.Second)(svc)

		first, err := svc.ProcessBatch(strings.NewReader(threeRequests))
		reqrd.Nil(err)
		as.Equal(2, first.Created)
		second, err := svc.ProcessBatch(strings.NewReader(threeRequests))
		reqrd.Nil(err)
		as.Equal("processed=3 created=1 invalid=2", second.String())

		recs, err := svc.Rejections()
		reqrd.Nil(err)
		reqrd.Len(recs, 3)
		as.Equal("Invalid SSN", recs[0].Reason)
		as.Equal("ledger full", recs[1].Reason)
		as.Equal("Invalid SSN", recs[2].Reason)
	})
}
