// Package heartbeat periodically reports renderer progress so a wedged
// renderer is visible on the console.
package heartbeat

import (
	"context"
	"time"

	"rgbcal/bus"
	"rgbcal/types"
	"rgbcal/x/conv"
)

var topicConfigHeartbeat = bus.T("config", "heartbeat")

// FrameCounter is satisfied by the renderer.
type FrameCounter interface {
	Frames() uint64
}

type Service struct {
	frames FrameCounter
	line   func(string)
}

func New(frames FrameCounter) *Service {
	return &Service{frames: frames, line: func(s string) { println(s) }}
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(topicConfigHeartbeat)
	defer conn.Unsubscribe(cfgSub)

	// Disabled until a config message names a positive interval.
	var tick *time.Ticker
	var tickC <-chan time.Time
	defer func() {
		if tick != nil {
			tick.Stop()
		}
	}()

	last, lastAt := s.frames.Frames(), time.Now()

	for {
		select {
		case <-ctx.Done():
			println("[hb] stopping")
			return
		case now := <-tickC:
			n := s.frames.Frames()
			s.line("[hb] frames=" + conv.Utoa(n) + " fps=" + conv.Utoa(rate(n-last, now.Sub(lastAt))))
			last, lastAt = n, now
		case msg := <-cfgSub.Channel():
			cfg, err := types.DecodeHeartbeatConfig(msg.Payload)
			if err != nil {
				println("[hb] bad config:", err.Error())
				continue
			}
			iv := time.Duration(cfg.Interval * float64(time.Second))
			if iv <= 0 {
				if tick != nil {
					tick.Stop()
				}
				tickC = nil
				println("[hb] disabled")
				continue
			}
			if tick == nil {
				tick = time.NewTicker(iv)
			} else {
				tick.Reset(iv)
			}
			tickC = tick.C
			last, lastAt = s.frames.Frames(), time.Now()
			println("[hb] interval set to", iv.Milliseconds(), "ms")
		}
	}
}

// rate returns n events over d as a rounded per-second figure.
func rate(n uint64, d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	return (n*uint64(time.Second) + uint64(d)/2) / uint64(d)
}

// Start the heartbeat service.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}
