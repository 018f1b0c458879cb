package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// settleRecorder counts settlements and signals each one on a channel
type settleRecorder struct {
	count int32
	fired chan int
}

func newSettleRecorder() *settleRecorder {
	return &settleRecorder{fired: make(chan int, 16)}
}

func (r *settleRecorder) settle(auctionID int) {
	atomic.AddInt32(&r.count, 1)
	r.fired <- auctionID
}

func (r *settleRecorder) settled() int {
	return int(atomic.LoadInt32(&r.count))
}

func waitForSettle(t *testing.T, recorder *settleRecorder, within time.Duration) int {
	t.Helper()
	select {
	case auctionID := <-recorder.fired:
		return auctionID
	case <-time.After(within):
		t.Fatalf("no settlement within %v", within)
		return 0
	}
}

func TestScheduler_FiresOnce(t *testing.T) {
	t.Parallel()

	recorder := newSettleRecorder()
	sched := New(recorder.settle, nil)
	defer sched.Stop()

	sched.Arm(1, time.Now().Add(20*time.Millisecond))

	require.Equal(t, 1, waitForSettle(t, recorder, time.Second))
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, 1, recorder.settled())
}

func TestScheduler_PastDeadlineFiresImmediately(t *testing.T) {
	t.Parallel()

	recorder := newSettleRecorder()
	sched := New(recorder.settle, nil)
	defer sched.Stop()

	sched.Arm(7, time.Now().Add(-time.Minute))
	require.Equal(t, 7, waitForSettle(t, recorder, time.Second))
}

// Re-arming replaces the pending timer, so an extended deadline results
// in a single settlement at the later time.
func TestScheduler_RearmReplacesTimer(t *testing.T) {
	t.Parallel()

	recorder := newSettleRecorder()
	sched := New(recorder.settle, nil)
	defer sched.Stop()

	sched.Arm(1, time.Now().Add(30*time.Millisecond))
	sched.Arm(1, time.Now().Add(150*time.Millisecond))

	// The original deadline passes without firing
	time.Sleep(80 * time.Millisecond)
	require.Zero(t, recorder.settled())

	require.Equal(t, 1, waitForSettle(t, recorder, time.Second))
	require.Equal(t, 1, recorder.settled())
}

func TestScheduler_Cancel(t *testing.T) {
	t.Parallel()

	recorder := newSettleRecorder()
	sched := New(recorder.settle, nil)
	defer sched.Stop()

	sched.Arm(1, time.Now().Add(30*time.Millisecond))
	sched.Cancel(1)

	time.Sleep(100 * time.Millisecond)
	require.Zero(t, recorder.settled())

	// Cancelling an unknown auction is a no-op
	sched.Cancel(99)
}

func TestScheduler_IndependentTimers(t *testing.T) {
	t.Parallel()

	recorder := newSettleRecorder()
	sched := New(recorder.settle, nil)
	defer sched.Stop()

	sched.Arm(1, time.Now().Add(20*time.Millisecond))
	sched.Arm(2, time.Now().Add(40*time.Millisecond))
	sched.Cancel(1)

	require.Equal(t, 2, waitForSettle(t, recorder, time.Second))
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, 1, recorder.settled())
}

func TestScheduler_StopCancelsAll(t *testing.T) {
	t.Parallel()

	recorder := newSettleRecorder()
	sched := New(recorder.settle, nil)

	sched.Arm(1, time.Now().Add(30*time.Millisecond))
	sched.Arm(2, time.Now().Add(30*time.Millisecond))
	sched.Stop()

	time.Sleep(100 * time.Millisecond)
	require.Zero(t, recorder.settled())
}
