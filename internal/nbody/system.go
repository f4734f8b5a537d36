package nbody

// System owns a fixed, ordered set of bodies. Order carries no physical
// meaning but is preserved so output columns stay stable across a run.
// Bodies are never added or removed after construction; only their
// mass/position/velocity/acceleration mutate.
type System struct {
	Bodies []Body
}

// NewSystem assembles a system from the given bodies, copying them so the
// system owns its state exclusively.
func NewSystem(bodies ...Body) *System {
	s := &System{Bodies: make([]Body, len(bodies))}
	copy(s.Bodies, bodies)
	return s
}

// ComputeAccelerations resets every acceleration and accumulates the
// pairwise Newtonian terms over all unordered pairs, each visited once.
// G = 1 by unit convention. Coincident bodies (r = 0) are not guarded.
func (s *System) ComputeAccelerations() {
	b := s.Bodies
	for i := range b {
		b[i].Acc = Vec3{}
	}

	for i := 0; i < len(b); i++ {
		for j := i + 1; j < len(b); j++ {
			d := b[i].Pos.Sub(b[j].Pos)
			r := d.Norm()
			r3 := r * r * r

			b[i].Acc = b[i].Acc.Sub(d.Scale(b[j].Mass / r3))
			b[j].Acc = b[j].Acc.Add(d.Scale(b[i].Mass / r3))
		}
	}
}

// Step advances the system by dt with explicit Forward Euler. The pass
// ordering is load-bearing: accelerations for all bodies first, then every
// position from its pre-update velocity, then every velocity from the
// accelerations of pass one. Interleaving the updates per body would turn
// this into semi-implicit Euler and change the error characteristics the
// method is meant to exhibit.
func (s *System) Step(dt float64) {
	s.ComputeAccelerations()

	b := s.Bodies
	for i := range b {
		b[i].Pos = b[i].Pos.Add(b[i].Vel.Scale(dt))
	}
	for i := range b {
		b[i].Vel = b[i].Vel.Add(b[i].Acc.Scale(dt))
	}
}

// Energy returns total energy: Σ ½m|v|² over bodies plus Σ −m_i·m_j/r_ij
// over unordered pairs. No side effects.
func (s *System) Energy() float64 {
	b := s.Bodies
	ek := 0.0
	ep := 0.0

	for i := range b {
		ek += 0.5 * b[i].Mass * b[i].Vel.Norm2()
	}
	for i := 0; i < len(b); i++ {
		for j := i + 1; j < len(b); j++ {
			r := b[i].Pos.Sub(b[j].Pos).Norm()
			ep -= b[i].Mass * b[j].Mass / r
		}
	}

	return ek + ep
}

// Centralize shifts every position and velocity into the center-of-mass
// frame, leaving the system with zero net linear momentum. Called once
// after construction; integrator drift away from this frame is left
// visible in the output.
func (s *System) Centralize() {
	m := s.TotalMass()

	var pos, vel Vec3
	for i := range s.Bodies {
		pos = pos.Add(s.Bodies[i].Pos.Scale(s.Bodies[i].Mass))
		vel = vel.Add(s.Bodies[i].Vel.Scale(s.Bodies[i].Mass))
	}
	pos = pos.Scale(1 / m)
	vel = vel.Scale(1 / m)

	for i := range s.Bodies {
		s.Bodies[i].Pos = s.Bodies[i].Pos.Sub(pos)
		s.Bodies[i].Vel = s.Bodies[i].Vel.Sub(vel)
	}
}

// Coordinates returns the flat phase-space snapshot: mass, position and
// velocity components per body in system order, 7 values per body.
func (s *System) Coordinates() []float64 {
	out := make([]float64, 0, 7*len(s.Bodies))
	for i := range s.Bodies {
		b := &s.Bodies[i]
		out = append(out,
			b.Mass,
			b.Pos.X, b.Pos.Y, b.Pos.Z,
			b.Vel.X, b.Vel.Y, b.Vel.Z,
		)
	}
	return out
}

func (s *System) TotalMass() float64 {
	m := 0.0
	for i := range s.Bodies {
		m += s.Bodies[i].Mass
	}
	return m
}

// Momentum returns total linear momentum Σ m·v.
func (s *System) Momentum() Vec3 {
	var p Vec3
	for i := range s.Bodies {
		p = p.Add(s.Bodies[i].Vel.Scale(s.Bodies[i].Mass))
	}
	return p
}

// AngularMomentum returns total angular momentum Σ m·(r × v) about the
// origin.
func (s *System) AngularMomentum() Vec3 {
	var l Vec3
	for i := range s.Bodies {
		l = l.Add(s.Bodies[i].Pos.Cross(s.Bodies[i].Vel).Scale(s.Bodies[i].Mass))
	}
	return l
}

// IsValid reports whether every body's position and velocity are finite.
// Numerical faults (coincident bodies, unbound parameter combinations)
// surface here rather than as errors from the stepping code.
func (s *System) IsValid() bool {
	for i := range s.Bodies {
		if !s.Bodies[i].Pos.IsValid() || !s.Bodies[i].Vel.IsValid() {
			return false
		}
	}
	return true
}
