package orbit_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitlab/internal/nbody"
	"github.com/san-kum/orbitlab/internal/orbit"
)

var _ = Describe("Elements", func() {
	Context("with a circular orbit (e=0)", func() {
		el := orbit.Elements{M1: 1.0, M2: 1e-6, SemiMajor: 1.0, Eccentricity: 0.0}

		It("has pericenter distance equal to the semimajor axis", func() {
			Expect(el.Pericenter()).To(Equal(1.0))
		})

		It("has pericenter speed equal to the circular speed √(μ/a)", func() {
			circular := math.Sqrt(el.Mu() / el.SemiMajor)
			Expect(el.PericenterSpeed()).To(BeNumerically("~", circular, 1e-12))
		})
	})

	Context("with unit masses and semimajor axis", func() {
		el := orbit.Elements{M1: 1.0, M2: 0.0, SemiMajor: 1.0, Eccentricity: 0.1}

		It("has period 2π", func() {
			Expect(el.Period()).To(BeNumerically("~", 2*math.Pi, 1e-12))
		})

		It("has pericenter a(1−e)", func() {
			Expect(el.Pericenter()).To(BeNumerically("~", 0.9, 1e-15))
		})
	})

	It("scales the period as a^(3/2)", func() {
		small := orbit.Elements{M1: 1.0, SemiMajor: 1.0}
		large := orbit.Elements{M1: 1.0, SemiMajor: 4.0}
		Expect(large.Period() / small.Period()).To(BeNumerically("~", 8.0, 1e-12))
	})

	It("propagates NaN for an inconsistent element set", func() {
		// e > 1 with positive a makes the vis-viva argument negative.
		el := orbit.Elements{M1: 1.0, M2: 0.0, SemiMajor: 1.0, Eccentricity: 3.0}
		Expect(math.IsNaN(el.PericenterSpeed())).To(BeTrue())
	})
})

var _ = Describe("NewBinary", func() {
	el := orbit.Elements{M1: 1.0, M2: 1e-3, SemiMajor: 1.0, Eccentricity: 0.1}

	var sys *nbody.System
	BeforeEach(func() {
		sys = orbit.NewBinary(el)
	})

	It("assembles exactly two bodies, primary first", func() {
		Expect(sys.Bodies).To(HaveLen(2))
		Expect(sys.Bodies[0].Mass).To(Equal(1.0))
		Expect(sys.Bodies[1].Mass).To(Equal(1e-3))
	})

	It("returns a 14-value flat coordinate record", func() {
		Expect(sys.Coordinates()).To(HaveLen(14))
	})

	It("separates the bodies by rp = a(1−e) along x", func() {
		sep := sys.Bodies[1].Pos.Sub(sys.Bodies[0].Pos)
		Expect(sep.X).To(BeNumerically("~", 0.9, 1e-15))
		Expect(sep.Y).To(BeZero())
		Expect(sep.Z).To(BeZero())
	})

	It("gives the pair the pericenter relative speed along y", func() {
		rel := sys.Bodies[1].Vel.Sub(sys.Bodies[0].Vel)
		Expect(rel.Y).To(BeNumerically("~", el.PericenterSpeed(), 1e-12))
		Expect(rel.X).To(BeZero())
		Expect(rel.Z).To(BeZero())
	})

	It("leaves the pair in the center-of-mass frame", func() {
		// Centralize shifts the primary off the origin by the mass ratio.
		Expect(sys.Momentum().Norm()).To(BeNumerically("<", 1e-15))
		Expect(sys.Bodies[0].Pos.Norm()).To(BeNumerically("<", el.Pericenter()*el.M2/el.Mu()+1e-12))
	})

	It("keeps motion in the xy plane", func() {
		for _, b := range sys.Bodies {
			Expect(b.Pos.Z).To(BeZero())
			Expect(b.Vel.Z).To(BeZero())
		}
	})
})
