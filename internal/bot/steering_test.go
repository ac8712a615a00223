package bot

import (
	"math"
	"testing"

	"game-bot/internal/feed"
	"game-bot/internal/geometry/vector"
)

func TestHeadingDeg(t *testing.T) {
	cases := []struct {
		v    vector.Vec3
		want float64
	}{
		{vector.NewVec3(0, 1, 0), 0},
		{vector.NewVec3(1, 0, 0), 90},
		{vector.NewVec3(0, -1, 0), 180},
		{vector.NewVec3(-1, 0, 0), 270},
		{vector.NewVec3(0, 0, 5), 0}, // straight up has no heading
	}
	for _, c := range cases {
		if got := HeadingDeg(c.v); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("HeadingDeg(%v) got %v, want %v", c.v, got, c.want)
		}
	}
}

func TestSteerToward(t *testing.T) {
	forward := vector.NewVec3(0, 1, 0)

	if got := steerToward(forward, forward); got != 0 {
		t.Fatalf("steer straight ahead got %v", got)
	}
	// target to the right of a +y-facing car
	right := steerToward(forward, vector.NewVec3(1, 1, 0))
	left := steerToward(forward, vector.NewVec3(-1, 1, 0))
	if right <= 0 || left >= 0 {
		t.Fatalf("steer signs: right=%v left=%v", right, left)
	}
	if math.Abs(right+left) > 1e-9 {
		t.Fatalf("mirrored targets should steer symmetrically: %v vs %v", right, left)
	}
	// a full U-turn saturates the input
	if got := steerToward(forward, vector.NewVec3(1e-6, -1, 0)); got != 1 && got != -1 {
		t.Fatalf("U-turn steer got %v, want saturated", got)
	}
	// degenerate inputs steer straight
	if got := steerToward(vector.Vec3{}, forward); got != 0 {
		t.Fatalf("zero forward got %v", got)
	}
}

func TestApproach(t *testing.T) {
	if got := approach(0, 1, 0.1); got != 0.1 {
		t.Fatalf("approach up got %v", got)
	}
	if got := approach(0.5, -1, 0.1); got != 0.4 {
		t.Fatalf("approach down got %v", got)
	}
	if got := approach(0.95, 1, 0.1); got != 1 {
		t.Fatalf("approach within step got %v", got)
	}
}

func tickAt(ball, ballVel, car, carVel vector.Vec3) (feed.GameTick, feed.PlayerInfo) {
	me := feed.PlayerInfo{
		Name: "blue-1", Team: 0,
		Physics: feed.Physics{
			Location: feed.Vector3{X: car.X, Y: car.Y, Z: car.Z},
			Velocity: feed.Vector3{X: carVel.X, Y: carVel.Y, Z: carVel.Z},
		},
	}
	tick := feed.GameTick{
		Ball: feed.BallInfo{Physics: feed.Physics{
			Location: feed.Vector3{X: ball.X, Y: ball.Y, Z: ball.Z},
			Velocity: feed.Vector3{X: ballVel.X, Y: ballVel.Y, Z: ballVel.Z},
		}},
		Players: []feed.PlayerInfo{me},
	}
	return tick, me
}

func TestChaseBallLeadsTheBall(t *testing.T) {
	// ball rolling +x, car behind it at the origin facing +y
	tick, me := tickAt(
		vector.NewVec3(0, 2000, 93), vector.NewVec3(1000, 0, 0),
		vector.NewVec3(0, 0, 17), vector.NewVec3(0, 500, 0),
	)

	d, ok := ChaseBall{LeadSeconds: 0.5}.Evaluate(tick, me)
	if !ok {
		t.Fatalf("chase should apply")
	}
	if d.Tactic != TacticChase {
		t.Fatalf("tactic got %v", d.Tactic)
	}
	// lead point is half a second down the ball's velocity, flattened
	want := vector.NewVec3(500, 2000, 0)
	if d.Target != want {
		t.Fatalf("target got %v, want %v", d.Target, want)
	}
	if d.Steer <= 0 {
		t.Fatalf("target is to the right, steer got %v", d.Steer)
	}
	if d.Throttle != 1 {
		t.Fatalf("throttle got %v", d.Throttle)
	}
}

func TestChaseBallDoesNotApplyOnTopOfBall(t *testing.T) {
	pos := vector.NewVec3(100, 100, 17)
	tick, me := tickAt(pos, vector.Vec3{}, pos, vector.Vec3{})
	if _, ok := (ChaseBall{}).Evaluate(tick, me); ok {
		t.Fatalf("chase should not apply on top of the ball")
	}
}

func TestRetreatAppliesWhenBeaten(t *testing.T) {
	// ball between the car and the blue goal
	tick, me := tickAt(
		vector.NewVec3(0, -4000, 93), vector.Vec3{},
		vector.NewVec3(0, 2000, 17), vector.NewVec3(0, -800, 0),
	)

	d, ok := DefaultRetreat().Evaluate(tick, me)
	if !ok {
		t.Fatalf("retreat should apply")
	}
	if d.Tactic != TacticRetreat {
		t.Fatalf("tactic got %v", d.Tactic)
	}
	if d.Target != GoalCenter(0) {
		t.Fatalf("target got %v, want own goal", d.Target)
	}
}

func TestRetreatDoesNotApplyWhenGoalSide(t *testing.T) {
	// car already between ball and goal
	tick, me := tickAt(
		vector.NewVec3(0, 2000, 93), vector.Vec3{},
		vector.NewVec3(0, -4000, 17), vector.Vec3{},
	)
	if _, ok := DefaultRetreat().Evaluate(tick, me); ok {
		t.Fatalf("retreat should not apply when goal side")
	}
}

func TestChainFallsBackToHold(t *testing.T) {
	pos := vector.NewVec3(0, 0, 17)
	tick, me := tickAt(pos, vector.Vec3{}, pos, vector.Vec3{})

	d, ok := Chain{Tactics: []Tactic{DefaultRetreat(), DefaultChase()}}.Evaluate(tick, me)
	if !ok {
		t.Fatalf("chain should always produce a decision")
	}
	if d.Tactic != TacticHold {
		t.Fatalf("tactic got %v, want hold", d.Tactic)
	}
	if d.Steer != 0 || d.Throttle != 0 {
		t.Fatalf("hold should not move: %+v", d)
	}
}
