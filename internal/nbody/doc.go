// Package nbody implements point-mass gravitational dynamics in the
// G = MSun = AU = 1 unit system (1 year = 2π time units).
//
// The package provides:
//
//   - [Vec3]: 3-component vector arithmetic
//   - [Body]: a single point mass (mass, position, velocity, acceleration)
//   - [System]: a fixed set of bodies with pairwise Newtonian gravity,
//     Forward Euler stepping, and energy/momentum diagnostics
//
// Forces are summed over the n·(n-1)/2 unordered pairs with no softening:
// coincident bodies divide by zero and the resulting NaN/Inf values
// propagate through subsequent steps rather than being trapped here.
package nbody
