package feed

import (
	"time"
)

// Vector3 is the feed's raw three-float record. Its layout is defined by
// the external feed; the bot copies it into vector.Vec3 at the boundary
// and never computes on it directly.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// XYZ exposes the record's components for copy-construction of a Vec3.
func (v Vector3) XYZ() (x, y, z float64) { return v.X, v.Y, v.Z }

// Physics is the feed's physics record for one body.
type Physics struct {
	Location Vector3 `json:"location"`
	Velocity Vector3 `json:"velocity"`
}

type BallInfo struct {
	Physics Physics `json:"physics"`
}

type PlayerInfo struct {
	Name    string  `json:"name"`
	Team    int     `json:"team"`
	Boost   float64 `json:"boost"`
	Physics Physics `json:"physics"`
}

// GameTick is one frame of game state as delivered by the feed.
type GameTick struct {
	TS      time.Time    `json:"ts"`
	Seconds float64      `json:"seconds"` // game clock, seconds elapsed
	Ball    BallInfo     `json:"ball"`
	Players []PlayerInfo `json:"players"`
}

// Player returns the player at index i and whether it exists.
func (t GameTick) Player(i int) (PlayerInfo, bool) {
	if i < 0 || i >= len(t.Players) {
		return PlayerInfo{}, false
	}
	return t.Players[i], true
}
