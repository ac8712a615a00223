package bot

import (
	"math"

	"game-bot/internal/feed"
	"game-bot/internal/geometry/vector"
)

// Field geometry of the left-handed game world. Blue (team 0) defends
// the -y goal, orange (team 1) the +y goal.
const (
	goalY       = 5120.0
	maxBoostAng = 0.3 // radians; boost only when roughly lined up
)

// GoalCenter returns the center of the given team's own goal mouth.
func GoalCenter(team int) vector.Vec3 {
	if team == 0 {
		return vector.NewVec3(0, -goalY, 0)
	}
	return vector.NewVec3(0, goalY, 0)
}

// Tactic is an interface for turning one game tick into a decision.
// Each implementation covers one situation; tactics are composed with a
// Chain, which picks the first one that applies.
type Tactic interface {
	// Evaluate returns the decision for this tick and whether the
	// tactic applies. A tactic that does not apply leaves the decision
	// to the rest of the chain.
	Evaluate(tick feed.GameTick, me feed.PlayerInfo) (Decision, bool)
}

// Chain is a composite tactic that tries its tactics in order.
type Chain struct {
	Tactics []Tactic
}

// Evaluate returns the first applying tactic's decision. When nothing
// applies the chain falls back to Hold.
func (c Chain) Evaluate(tick feed.GameTick, me feed.PlayerInfo) (Decision, bool) {
	for _, tac := range c.Tactics {
		if d, ok := tac.Evaluate(tick, me); ok {
			return d, true
		}
	}
	return Hold.Evaluate(tick, me)
}

// Hold is a tactic that always applies and keeps the car still.
var Hold Tactic = holdTactic{}

type holdTactic struct{}

func (holdTactic) Evaluate(tick feed.GameTick, me feed.PlayerInfo) (Decision, bool) {
	return Decision{TS: tick.TS, Tactic: TacticHold}, true
}

// RetreatToGoal applies when the ball is nearer to our goal than we are,
// and drives back to cover the goal mouth.
type RetreatToGoal struct {
	// MarginU is how much closer (in world units) the ball must be to
	// our goal before retreating kicks in.
	MarginU float64
}

// DefaultRetreat returns a RetreatToGoal with a reasonable margin.
func DefaultRetreat() RetreatToGoal {
	return RetreatToGoal{MarginU: 500}
}

func (r RetreatToGoal) Evaluate(tick feed.GameTick, me feed.PlayerInfo) (Decision, bool) {
	car := vector.FromRecord(me.Physics.Location)
	ball := vector.FromRecord(tick.Ball.Physics.Location)
	goal := GoalCenter(me.Team)

	// compare flat distances so ball height does not trigger a retreat
	if ball.Flat().Dist(goal.Flat())+r.MarginU >= car.Flat().Dist(goal.Flat()) {
		return Decision{}, false
	}

	target := goal
	toTarget := target.Sub(car)
	forward := carForward(me, toTarget)

	return Decision{
		TS:       tick.TS,
		Tactic:   TacticRetreat,
		Steer:    steerToward(forward, toTarget),
		Throttle: 1,
		Boost:    forward.AngleTo(toTarget) < maxBoostAng,
		Target:   target,
		Note:     "covering " + target.String(),
	}, true
}

// ChaseBall drives at the ball, leading it by a fraction of its velocity.
type ChaseBall struct {
	// LeadSeconds is how far ahead along the ball's velocity to aim.
	LeadSeconds float64
}

// DefaultChase returns a ChaseBall with a small lead.
func DefaultChase() ChaseBall {
	return ChaseBall{LeadSeconds: 0.4}
}

func (c ChaseBall) Evaluate(tick feed.GameTick, me feed.PlayerInfo) (Decision, bool) {
	car := vector.FromRecord(me.Physics.Location)
	ball := vector.FromRecord(tick.Ball.Physics.Location)
	ballVel := vector.FromRecord(tick.Ball.Physics.Velocity)

	// aim slightly ahead of the rolling ball
	target := ball.Add(ballVel.Mul(c.LeadSeconds)).Flat()
	toTarget := target.Sub(car)
	if toTarget.Flat().Length() < 1e-9 {
		// on top of the ball; nothing sensible to steer at
		return Decision{}, false
	}
	forward := carForward(me, toTarget)

	ang := forward.AngleTo(toTarget)
	throttle := 1.0
	if ang > math.Pi/2 {
		// target behind us: slow down while the turn comes around
		throttle = 0.3
	}

	return Decision{
		TS:       tick.TS,
		Tactic:   TacticChase,
		Steer:    steerToward(forward, toTarget),
		Throttle: throttle,
		Boost:    ang < maxBoostAng && toTarget.Length() > 1000,
		Target:   target,
		Note:     "chasing " + target.String(),
	}, true
}

// carForward estimates the car's facing direction from its velocity,
// falling back to the intended direction when the car is at rest.
func carForward(me feed.PlayerInfo, fallback vector.Vec3) vector.Vec3 {
	vel := vector.FromRecord(me.Physics.Velocity)
	if vel.Flat().Length() > 1 {
		return vel
	}
	return fallback
}
