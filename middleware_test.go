package acctbatch_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/semaphore"

	"github.com/arhyth/acctbatch"
	"github.com/arhyth/acctbatch/mocks"
)

func TestLimitMiddleware(t *testing.T) {
	t.Run("passes calls through when the session is free", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		sem := semaphore.NewWeighted(1)
		l := acctbatch.NewLimitMiddleware(sem, 50*time.Millisecond)(svc)

		want := &acctbatch.Summary{Processed: 1, Created: 1}
		svc.EXPECT().
			ProcessBatch(gomock.Any()).
			Return(want, nil)
		sum, err := l.ProcessBatch(bytes.NewBufferString("1234567890 Mary Lee mary_lee@lapc.edu"))
		as.Nil(err)
		as.Equal(want, sum)

		// released after the call
		as.True(sem.TryAcquire(1))
	})

	t.Run("returns ErrBusy while the session is held", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		sem := semaphore.NewWeighted(1)
		reqrd.Nil(sem.Acquire(context.Background(), 1))
		l := acctbatch.NewLimitMiddleware(sem, 10*time.Millisecond)(svc)

		sum, err := l.ProcessBatch(bytes.NewBufferString(""))
		as.ErrorIs(err, acctbatch.ErrBusy)
		as.Nil(sum)
		accts, err := l.Accounts()
		as.ErrorIs(err, acctbatch.ErrBusy)
		as.Nil(accts)
		_, err = l.Rejections()
		as.ErrorIs(err, acctbatch.ErrBusy)
		as.ErrorIs(l.Statement(new(bytes.Buffer)), acctbatch.ErrBusy)

		sem.Release(1)
		svc.EXPECT().
			Accounts().
			Return(nil, nil)
		_, err = l.Accounts()
		as.Nil(err)
	})
}

func TestBreakerWriter(t *testing.T) {
	t.Run("writes through while closed", func(tt *testing.T) {
		as := assert.New(tt)
		log := zerolog.Nop()
		buf := new(bytes.Buffer)
		bw := acctbatch.NewBreakerWriter("rejects", buf, &log)
		n, err := bw.Write([]byte("line\n"))
		as.Nil(err)
		as.Equal(5, n)
		as.Equal("line\n", buf.String())
		as.Equal(gobreaker.StateClosed, bw.State())
	})

	t.Run("opens after consecutive failures and stops writing", func(tt *testing.T) {
		as := assert.New(tt)
		log := zerolog.Nop()
		fw := &failWriter{}
		bw := acctbatch.NewBreakerWriter("rejects", fw, &log)
		for i := 0; i < 3; i++ {
			_, err := bw.Write([]byte("x"))
			as.NotNil(err)
		}
		as.Equal(gobreaker.StateOpen, bw.State())

		_, err := bw.Write([]byte("x"))
		as.True(errors.Is(err, gobreaker.ErrOpenState))
		as.Equal(3, fw.calls)
	})
}
