// Package bot turns game-state ticks into steering decisions. A single
// goroutine owns all decision state; callers talk to it over channels.
package bot

import (
	"context"

	"game-bot/internal/feed"
)

type decisionReq struct {
	reply chan Decision
}

type subscribeReq struct {
	ch chan Decision
}

type Bot struct {
	playerIndex int
	tactics     Tactic

	// Actor channels
	decReqCh    chan decisionReq
	subscribeCh chan subscribeReq
	unsubCh     chan chan Decision

	maxThrottleStep float64
}

type Config struct {
	// PlayerIndex selects which feed player this bot controls.
	PlayerIndex int

	// Tactics is the decision policy. Nil means the default chain
	// (retreat when beaten, otherwise chase the ball).
	Tactics Tactic

	// MaxThrottleStep caps the per-tick throttle change. Zero means 0.1.
	MaxThrottleStep float64
}

func New(cfg Config) *Bot {
	if cfg.Tactics == nil {
		cfg.Tactics = Chain{Tactics: []Tactic{DefaultRetreat(), DefaultChase()}}
	}
	if cfg.MaxThrottleStep <= 0 {
		cfg.MaxThrottleStep = 0.1
	}
	return &Bot{
		playerIndex:     cfg.PlayerIndex,
		tactics:         cfg.Tactics,
		decReqCh:        make(chan decisionReq, 32),
		subscribeCh:     make(chan subscribeReq, 32),
		unsubCh:         make(chan chan Decision, 32),
		maxThrottleStep: cfg.MaxThrottleStep,
	}
}

// GetDecision returns the latest decision snapshot.
func (b *Bot) GetDecision(ctx context.Context) (Decision, error) {
	req := decisionReq{reply: make(chan Decision, 1)}
	select {
	case b.decReqCh <- req:
	case <-ctx.Done():
		return Decision{}, ctx.Err()
	}

	select {
	case d := <-req.reply:
		return d, nil
	case <-ctx.Done():
		return Decision{}, ctx.Err()
	}
}

// Subscribe returns a channel of decision snapshots and an unsubscribe
// function. Slow subscribers miss frames rather than stalling the loop.
func (b *Bot) Subscribe(ctx context.Context) (<-chan Decision, func()) {
	ch := make(chan Decision, 32)

	select {
	case b.subscribeCh <- subscribeReq{ch: ch}:
	case <-ctx.Done():
		close(ch)
		return ch, func() {}
	}

	unsub := func() {
		select {
		case b.unsubCh <- ch:
		default:
		}
	}
	return ch, unsub
}

// Run consumes ticks until the channel closes or ctx is canceled.
// It owns all decision state; there is exactly one Run per Bot.
func (b *Bot) Run(ctx context.Context, ticks <-chan feed.GameTick) error {
	// Actor-owned state
	var latest Decision
	latest.Tactic = TacticHold

	subs := map[chan Decision]struct{}{}

	publish := func(d Decision) {
		for ch := range subs {
			select {
			case ch <- d:
			default:
				// slow subscriber -> drop frame
			}
		}
	}

	closeSubs := func() {
		for ch := range subs {
			close(ch)
		}
	}

	for {
		select {
		case <-ctx.Done():
			closeSubs()
			return nil

		case req := <-b.subscribeCh:
			subs[req.ch] = struct{}{}
			req.ch <- latest

		case ch := <-b.unsubCh:
			if _, ok := subs[ch]; ok {
				delete(subs, ch)
				close(ch)
			}

		case req := <-b.decReqCh:
			req.reply <- latest

		case tick, ok := <-ticks:
			if !ok {
				closeSubs()
				return nil
			}

			me, ok := tick.Player(b.playerIndex)
			if !ok {
				// not spawned in this tick; hold
				latest = Decision{TS: tick.TS, Tactic: TacticHold}
				publish(latest)
				continue
			}

			d, _ := b.tactics.Evaluate(tick, me)
			d.Throttle = approach(latest.Throttle, d.Throttle, b.maxThrottleStep)
			latest = d
			publish(latest)
		}
	}
}
