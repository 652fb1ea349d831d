// Package field provides magnetic field models and the charged-particle
// derivative providers built on them. Positions are in cm, fields in
// kilogauss, momenta in GeV/c.
package field

import "math"

// Field returns the magnetic field vector at a point.
type Field interface {
	At(x, y, z float64) (bx, by, bz float64)
}

// Uniform is a constant field.
type Uniform struct {
	Bx, By, Bz float64
}

func (f Uniform) At(x, y, z float64) (float64, float64, float64) {
	return f.Bx, f.By, f.Bz
}

// Solenoid approximates an axial field centered at Z0 with a Lorentzian
// fringe falloff of characteristic length L.
type Solenoid struct {
	B0 float64 // peak axial field, kG
	Z0 float64 // center, cm
	L  float64 // falloff length, cm
}

func (f Solenoid) At(x, y, z float64) (float64, float64, float64) {
	u := (z - f.Z0) / f.L
	return 0, 0, f.B0 / (1 + u*u)
}

// Composite superimposes fields.
type Composite []Field

func (f Composite) At(x, y, z float64) (float64, float64, float64) {
	var bx, by, bz float64
	for _, sub := range f {
		sx, sy, sz := sub.At(x, y, z)
		bx += sx
		by += sy
		bz += sz
	}
	return bx, by, bz
}

// Rotated evaluates a field in a frame rotated about the y axis by Angle
// (radians): the lookup point is rotated into the wrapped field's frame
// and the resulting vector rotated back.
type Rotated struct {
	Inner Field
	Angle float64
}

func (f Rotated) At(x, y, z float64) (float64, float64, float64) {
	c, s := math.Cos(f.Angle), math.Sin(f.Angle)
	xr := c*x - s*z
	zr := s*x + c*z
	bx, by, bz := f.Inner.At(xr, y, zr)
	return c*bx + s*bz, by, -s*bx + c*bz
}
