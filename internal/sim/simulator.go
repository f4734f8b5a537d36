// Package sim drives an nbody.System forward in time and collects
// snapshot records for output.
package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/orbitlab/internal/nbody"
)

// SnapshotsPerOrbit fixes the snapshot interval at period/100.
const SnapshotsPerOrbit = 100

// YearInUnits converts years to internal angular time: with
// G = MSun = AU = 1, one year is 2π time units.
const YearInUnits = 2 * math.Pi

// Config controls a single run.
type Config struct {
	// Years is the total simulated time in years.
	Years float64
	// DtFraction sets the timestep as dt = DtFraction · orbital period.
	DtFraction float64
}

// Snapshot is one output record: elapsed time in years, relative energy
// drift |(E−E0)/E0|, and the flat (m,x,y,z,vx,vy,vz)-per-body coordinates.
// Records are immutable once appended.
type Snapshot struct {
	Time   float64
	Drift  float64
	Coords []float64
}

// Result collects the run's snapshot sequence in order, oldest first.
type Result struct {
	Snapshots     []Snapshot
	Steps         int
	InitialEnergy float64
	FinalEnergy   float64
}

// Simulator owns the system and the time loop. Not safe for concurrent
// use; a run is fully sequential and deterministic.
type Simulator struct {
	sys    *nbody.System
	period float64
}

// New wraps a system whose orbital period (internal units) sets the
// timestep and snapshot cadence.
func New(sys *nbody.System, period float64) *Simulator {
	return &Simulator{sys: sys, period: period}
}

// Run integrates from t=0 until t ≥ Years·2π, recording a snapshot at
// t=0 and whenever t reaches the next multiple of period/100, with the
// final marker clamped to the end time so a trailing record is always
// produced. The last step may overshoot the end time by up to one dt;
// the recorded time is the actual step time. On cancellation the partial
// result is returned along with the context error.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	tEnd := cfg.Years * YearInUnits
	dt := cfg.DtFraction * s.period
	interval := s.period / SnapshotsPerOrbit

	steps := int(tEnd / dt)
	result := &Result{
		Snapshots: make([]Snapshot, 0, steps/SnapshotsPerOrbit+2),
	}

	e0 := s.sys.Energy()
	result.InitialEnergy = e0

	record := func(t float64) {
		drift := math.Abs((s.sys.Energy() - e0) / e0)
		result.Snapshots = append(result.Snapshots, Snapshot{
			Time:   t / YearInUnits,
			Drift:  drift,
			Coords: s.sys.Coordinates(),
		})
	}

	t := 0.0
	record(t)
	next := interval
	if next > tEnd {
		next = tEnd
	}

	for t < tEnd {
		select {
		case <-ctx.Done():
			result.FinalEnergy = s.sys.Energy()
			return result, ctx.Err()
		default:
		}

		s.sys.Step(dt)
		t += dt
		result.Steps++

		if t >= next {
			record(t)
			next += interval
			if next > tEnd {
				next = tEnd
			}
		}
	}

	result.FinalEnergy = s.sys.Energy()
	return result, nil
}

func validate(cfg Config) error {
	if cfg.Years <= 0 {
		return fmt.Errorf("sim: years must be positive, got %f", cfg.Years)
	}
	if cfg.DtFraction <= 0 {
		return fmt.Errorf("sim: dt fraction must be positive, got %f", cfg.DtFraction)
	}
	return nil
}
