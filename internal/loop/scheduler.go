// Package loop drives a target once per display frame.
//
// A [Scheduler] hands out one-shot frame callbacks identified by a [FrameID]
// and can cancel them. An [Animator] chains those callbacks into an endless
// redraw loop and tears it down cleanly: once Stop returns, the target is
// never stepped again.
package loop

import (
	"sync"
	"time"
)

const DefaultFPS = 60

type FrameID uint64

// Scheduler requests and cancels one-shot frame callbacks.
type Scheduler interface {
	RequestFrame(cb func(time.Time)) FrameID
	CancelFrame(id FrameID)
}

// TimerScheduler fires callbacks on runtime timers spaced one frame apart.
type TimerScheduler struct {
	interval time.Duration

	mu     sync.Mutex
	next   FrameID
	timers map[FrameID]*time.Timer
}

func NewTimerScheduler(fps int) *TimerScheduler {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &TimerScheduler{
		interval: time.Second / time.Duration(fps),
		timers:   make(map[FrameID]*time.Timer),
	}
}

func (s *TimerScheduler) Interval() time.Duration { return s.interval }

func (s *TimerScheduler) RequestFrame(cb func(time.Time)) FrameID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	id := s.next
	s.timers[id] = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		_, live := s.timers[id]
		delete(s.timers, id)
		s.mu.Unlock()
		if live {
			cb(time.Now())
		}
	})
	return id
}

func (s *TimerScheduler) CancelFrame(id FrameID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
}

// Pending reports how many callbacks are scheduled and not yet fired.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
