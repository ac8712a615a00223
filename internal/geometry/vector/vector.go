// Package vector provides 3D vector operations for game world quantities
// (positions, velocities, directions).
//
// The game world is left-handed; that changes how cross products read in
// the world, not the arithmetic. Operations on zero-length vectors keep
// the feed's numeric behavior and silently produce non-finite components
// instead of failing; callers that cannot rule out zero-length inputs
// must check Length first.
package vector

import (
	"fmt"
	"math"
)

// NewVec3 creates a new 3D vector with the given components
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Vec3 represents a 3D quantity in game world coordinates.
// It is a plain value: every operation returns a new Vec3 and never
// mutates its receiver, so values can be shared freely across goroutines.
type Vec3 struct{ X, Y, Z float64 }

// Record is any value exposing x, y and z components, such as a
// feed-provided physics location record.
type Record interface {
	XYZ() (x, y, z float64)
}

// FromRecord copies the three components of a feed record into a fresh,
// independent Vec3
func FromRecord(r Record) Vec3 {
	x, y, z := r.XYZ()
	return Vec3{X: x, Y: y, Z: z}
}

// At returns the component at index 0, 1 or 2 (x, y, z). Any other index
// panics, like indexing past the end of a slice.
func (v Vec3) At(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("vector: index %d out of range [0, 2]", i))
}

// Add returns the sum of two vectors
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference between two vectors
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Neg returns the component-wise negation
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Mul scales a vector by a scalar
func (v Vec3) Mul(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Div divides a vector by a scalar. Division by zero follows float64
// semantics and yields non-finite components.
func (v Vec3) Div(k float64) Vec3 { return v.Mul(1 / k) }

// Flat returns the vector projected onto the ground plane, i.e. with z=0
func (v Vec3) Flat() Vec3 { return Vec3{v.X, v.Y, 0} }

// Length returns the vector's magnitude (Euclidean norm)
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dist returns the distance between two positions
func (v Vec3) Dist(o Vec3) float64 { return v.Sub(o).Length() }

// Normalized returns a vector with the same direction but a length of one.
// The receiver must not be the zero vector; a zero-length input yields
// non-finite components.
func (v Vec3) Normalized() Vec3 { return v.Div(v.Length()) }

// Rescale returns a vector with the same direction but the given length.
// The receiver must not be the zero vector.
func (v Vec3) Rescale(newLen float64) Vec3 { return v.Normalized().Mul(newLen) }

// Dot returns the dot product of two vectors
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of two vectors
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// AngleTo returns the angle in radians between v and ideal, in [0, pi].
// Neither vector may be zero-length. The cosine ratio is clamped to
// [-1, 1] so that rounding on near-parallel inputs cannot push Acos
// outside its domain.
func (v Vec3) AngleTo(ideal Vec3) float64 {
	cos := v.Dot(ideal) / (v.Length() * ideal.Length())
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}

// String formats the vector for diagnostics, e.g. "Vec3(1.00, 2.00, 3.00)".
// The form is not meant to be parsed back.
func (v Vec3) String() string {
	return fmt.Sprintf("Vec3(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}
