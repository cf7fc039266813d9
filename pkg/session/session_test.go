package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eprover/eprover-sub005/pkg/bank"
	"github.com/eprover/eprover-sub005/pkg/order"
)

func newTestSession(t *testing.T, hardLimit time.Duration) *Session {
	t.Helper()
	b := bank.New(nil)
	ocb := order.NewOCB(order.KindLPO, b.Sig)
	s := New(b, ocb, nil, hardLimit)
	t.Cleanup(s.Close)
	return s
}

func TestCheckDeadlineWithinLimit(t *testing.T) {
	s := newTestSession(t, time.Hour)
	start := time.Unix(1000, 0)
	s.Start(start)
	err := s.CheckDeadline(start.Add(time.Minute))
	require.NoError(t, err)
}

func TestCheckDeadlineExceedsHardLimit(t *testing.T) {
	s := newTestSession(t, time.Second)
	start := time.Unix(1000, 0)
	s.Start(start)
	err := s.CheckDeadline(start.Add(2 * time.Second))
	require.Error(t, err)
	var re *ResourceError
	require.ErrorAs(t, err, &re)
}

func TestSoftLimitFiresOnceBeforeHardLimit(t *testing.T) {
	s := newTestSession(t, time.Hour)
	start := time.Unix(1000, 0)
	s.Start(start)

	fired := 0
	s.SetSoftLimit(time.Minute, func() { fired++ })

	require.NoError(t, s.CheckDeadline(start.Add(2*time.Minute)))
	require.NoError(t, s.CheckDeadline(start.Add(3*time.Minute)))
	require.Equal(t, 1, fired)
}
