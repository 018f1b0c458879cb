package scheduler

import (
	"sync"
	"time"
)

// SettleFunc is invoked when an auction's deadline elapses. Implementations
// must tolerate the auction already being gone from the registry.
type SettleFunc func(auctionID int)

// Scheduler keeps one countdown per open auction. Re-arming replaces the
// existing timer rather than adding a second one, so an extended auction
// still settles exactly once.
type Scheduler struct {
	mu     sync.Mutex
	timers map[int]*time.Timer
	settle SettleFunc
	nowFn  func() time.Time
}

// New creates a scheduler that calls settle on expiry. A nil clock
// defaults to time.Now.
func New(settle SettleFunc, now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{
		timers: make(map[int]*time.Timer),
		settle: settle,
		nowFn:  now,
	}
}

// Arm schedules (or reschedules) settlement of the auction at endTime.
// A deadline already in the past fires immediately.
func (s *Scheduler) Arm(auctionID int, endTime time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delay := endTime.Sub(s.nowFn())
	if delay < 0 {
		delay = 0
	}

	if timer, ok := s.timers[auctionID]; ok {
		timer.Stop()
	}
	s.timers[auctionID] = time.AfterFunc(delay, func() {
		s.fire(auctionID)
	})
}

// Cancel stops the pending timer for an auction, if any. Used by
// force-close and administrative deletion; a timer that already fired is
// a no-op here, and the settlement entry point resolves the race.
func (s *Scheduler) Cancel(auctionID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[auctionID]; ok {
		timer.Stop()
		delete(s.timers, auctionID)
	}
}

// Stop cancels every pending timer. Used on shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for auctionID, timer := range s.timers {
		timer.Stop()
		delete(s.timers, auctionID)
	}
}

func (s *Scheduler) fire(auctionID int) {
	s.mu.Lock()
	delete(s.timers, auctionID)
	s.mu.Unlock()

	s.settle(auctionID)
}
