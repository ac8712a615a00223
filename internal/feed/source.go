// Package feed owns the externally defined game-state records and their
// delivery. The record shapes (three-float vectors, physics, ticks) are
// dictated by the feed; this package consumes them, it does not define a
// format of its own.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"time"
)

// Source delivers game ticks on a channel until exhausted or canceled.
type Source interface {
	// Run sends ticks on out in feed order. It returns nil when the feed
	// ends, or the context error if ctx is canceled first. Run does not
	// close out; the caller owns the channel.
	Run(ctx context.Context, out chan<- GameTick) error
}

// JSONSource reads newline-delimited GameTick JSON from an io.Reader,
// such as a recorded session file or a socket owned by the feed process.
type JSONSource struct {
	R io.Reader
}

func (s JSONSource) Run(ctx context.Context, out chan<- GameTick) error {
	dec := json.NewDecoder(s.R)
	for {
		var tick GameTick
		if err := dec.Decode(&tick); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("feed: decode tick: %w", err)
		}
		select {
		case out <- tick:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// SyntheticSource generates a deterministic kickoff scenario: the ball
// starts at the center and drifts toward the blue goal while one car per
// team sits on its own side. Used by the demo binary and tests.
type SyntheticSource struct {
	// TickHz is the delivery rate. Zero or negative means no pacing,
	// which tests use to drain ticks immediately.
	TickHz float64
	// Ticks is the number of ticks to emit. Zero means 600.
	Ticks int
}

func (s SyntheticSource) Run(ctx context.Context, out chan<- GameTick) error {
	n := s.Ticks
	if n <= 0 {
		n = 600
	}

	var wait func() error
	if s.TickHz > 0 {
		tick := time.NewTicker(time.Duration(float64(time.Second) / s.TickHz))
		defer tick.Stop()
		wait = func() error {
			select {
			case <-tick.C:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	} else {
		wait = func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return nil
			}
		}
	}

	start := time.Now()
	dt := 1.0 / 60.0
	for i := 0; i < n; i++ {
		if err := wait(); err != nil {
			return err
		}
		t := float64(i) * dt
		tick := GameTick{
			TS:      start.Add(time.Duration(t * float64(time.Second))),
			Seconds: t,
			Ball: BallInfo{Physics: Physics{
				// straight roll toward the blue goal with a slight curve
				Location: Vector3{X: 200 * math.Sin(t/4), Y: -900 * t, Z: 93},
				Velocity: Vector3{X: 50 * math.Cos(t/4), Y: -900, Z: 0},
			}},
			Players: []PlayerInfo{
				{
					Name: "blue-1", Team: 0, Boost: 33,
					Physics: Physics{
						Location: Vector3{X: 0, Y: -4608, Z: 17},
						Velocity: Vector3{X: 0, Y: 0, Z: 0},
					},
				},
				{
					Name: "orange-1", Team: 1, Boost: 33,
					Physics: Physics{
						Location: Vector3{X: 0, Y: 4608, Z: 17},
						Velocity: Vector3{X: 0, Y: -100 * t, Z: 0},
					},
				},
			},
		}
		select {
		case out <- tick:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
