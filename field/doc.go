// Package field simulates the particle field background.
//
// A Field owns an ordered set of particles inside a rectangular surface.
// Each frame every particle drifts by its velocity, is nudged away from the
// pointer when close to it, shrinks toward a floor radius and bounces off the
// surface edges. Rendering draws each particle with a glow and joins every
// pair closer than the connect distance with a line whose opacity falls off
// linearly with distance.
//
// The particle count is derived once from the surface area when the field is
// initialized; resizing only moves the bounce boundaries.
//
// A Field is not safe for concurrent use. The animator drives it from a single
// goroutine.
package field
