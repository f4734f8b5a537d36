package nbody

import "math"

// Vec3 is a 3-component vector. All methods are value methods returning
// new vectors.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Norm2 returns the squared magnitude.
func (v Vec3) Norm2() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Norm2())
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// IsValid reports whether all components are finite.
func (v Vec3) IsValid() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Body is a point mass. Acc is scratch state: it holds whatever the most
// recent force evaluation computed for the current positions and is stale
// after any position update until recomputed.
type Body struct {
	Mass float64
	Pos  Vec3
	Vel  Vec3
	Acc  Vec3
}

// NewBody returns a body with the given mass, position and velocity and
// zero acceleration. Callers supply valid scalars; nothing is checked.
func NewBody(mass float64, pos, vel Vec3) Body {
	return Body{Mass: mass, Pos: pos, Vel: vel}
}
