package bot

import (
	"math"

	"game-bot/internal/geometry/vector"
)

// HeadingDeg returns the compass-style heading of a direction vector:
// 0 = toward the orange goal (+y), 90 = +x, ignoring the vertical
// component. The zero vector maps to 0.
func HeadingDeg(v vector.Vec3) float64 {
	if math.Abs(v.X) < 1e-9 && math.Abs(v.Y) < 1e-9 {
		return 0
	}
	deg := math.Atan2(v.X, v.Y) * 180.0 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// steerToward returns the steer input in [-1, 1] that turns a car facing
// along forward toward the target offset. Both vectors are flattened to
// the ground plane first; the turn direction comes from the sign of the
// cross product's z component (left-handed world: negative z means the
// target is to the car's right).
func steerToward(forward, toTarget vector.Vec3) float64 {
	f := forward.Flat()
	d := toTarget.Flat()
	if f.Length() < 1e-9 || d.Length() < 1e-9 {
		return 0
	}
	steer := clamp(f.AngleTo(d)/(math.Pi/2), 0, 1)
	if f.Cross(d).Z > 0 {
		steer = -steer
	}
	return steer
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// approach moves cur toward des by at most maxStep, used to smooth the
// throttle between ticks
func approach(cur, des, maxStep float64) float64 {
	diff := des - cur
	if diff > maxStep {
		return cur + maxStep
	}
	if diff < -maxStep {
		return cur - maxStep
	}
	return des
}
