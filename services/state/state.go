// Package state holds the record shared between the controller (sole
// writer) and the renderer (sole reader).
//
// Every accessor takes the lock for the duration of a copy or a mutation
// only; callers must never hold it across a sleep.
package state

import (
	"sync"

	"rgbcal/bus"
	"rgbcal/types"
	"rgbcal/x/mathx"
)

var (
	topicLevels    = bus.T("state", "levels")
	topicFrameRate = bus.T("state", "frame_rate")
)

type Shared struct {
	mu        sync.Mutex
	levels    [types.Channels]uint32
	frameRate uint64

	conn *bus.Connection // optional observer
}

// New returns the power-on state: all channels off at the default frame rate.
func New() *Shared {
	return &Shared{frameRate: types.DefaultFrameRate}
}

// Observe publishes a retained snapshot on conn after every write.
// Call before the tasks start.
func (s *Shared) Observe(conn *bus.Connection) {
	s.conn = conn
}

func (s *Shared) GetLevels() [types.Channels]uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.levels
}

// SetLevels applies fn under the lock. Out-of-range results are clamped to
// the top brightness step.
func (s *Shared) SetLevels(fn func(levels *[types.Channels]uint32)) {
	s.mu.Lock()
	fn(&s.levels)
	for i := range s.levels {
		s.levels[i] = mathx.Min(s.levels[i], types.Levels-1)
	}
	snap := s.levels
	s.mu.Unlock()

	if s.conn != nil {
		s.conn.Publish(s.conn.NewMessage(topicLevels, types.LevelsValue{Levels: snap}, true))
	}
}

func (s *Shared) GetFrameRate() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameRate
}

// SetFrameRate applies fn under the lock. The result is clamped to
// [FrameRateMin, FrameRateMax]; a zero rate can never reach the renderer.
func (s *Shared) SetFrameRate(fn func(fps *uint64)) {
	s.mu.Lock()
	fn(&s.frameRate)
	s.frameRate = mathx.Clamp(s.frameRate, types.FrameRateMin, types.FrameRateMax)
	fps := s.frameRate
	s.mu.Unlock()

	if s.conn != nil {
		s.conn.Publish(s.conn.NewMessage(topicFrameRate, types.FrameRateValue{FPS: fps}, true))
	}
}
