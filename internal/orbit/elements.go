// Package orbit builds initial two-body conditions from orbital elements.
package orbit

import (
	"math"

	"github.com/san-kum/orbitlab/internal/nbody"
)

// Elements describes a star-planet or binary pair: component masses in
// MSun, semimajor axis in AU, and eccentricity (0 ≤ e < 1 for a bound
// orbit). Values outside those ranges yield unbound or degenerate
// trajectories; nothing here rejects them.
type Elements struct {
	M1           float64 `yaml:"m1"`
	M2           float64 `yaml:"m2"`
	SemiMajor    float64 `yaml:"a"`
	Eccentricity float64 `yaml:"ecc"`
}

// Mu returns the total mass M1+M2, which in G=1 units is also the
// gravitational parameter of the pair.
func (el Elements) Mu() float64 {
	return el.M1 + el.M2
}

// Period returns the orbital period 2π·√(a³/μ) in internal time units.
func (el Elements) Period() float64 {
	return 2 * math.Pi * math.Sqrt(el.SemiMajor*el.SemiMajor*el.SemiMajor/el.Mu())
}

// Pericenter returns the pericenter separation a·(1−e).
func (el Elements) Pericenter() float64 {
	return el.SemiMajor * (1 - el.Eccentricity)
}

// PericenterSpeed returns the relative speed at pericenter from the
// vis-viva relation, √(2·(E+μ/rp)) with E = −μ/(2a). An inconsistent
// (a, e) pair can push the argument negative; the NaN is propagated,
// not reported.
func (el Elements) PericenterSpeed() float64 {
	mu := el.Mu()
	e := -0.5 * mu / el.SemiMajor
	return math.Sqrt(2 * (e + mu/el.Pericenter()))
}

// NewBinary places the primary at the origin at rest and the secondary at
// pericenter on the +x axis moving in +y, then shifts both into the
// center-of-mass frame. The primary is body 0.
func NewBinary(el Elements) *nbody.System {
	rp := el.Pericenter()
	vp := el.PericenterSpeed()

	s := nbody.NewSystem(
		nbody.NewBody(el.M1, nbody.Vec3{}, nbody.Vec3{}),
		nbody.NewBody(el.M2, nbody.Vec3{X: rp}, nbody.Vec3{Y: vp}),
	)
	s.Centralize()
	return s
}
