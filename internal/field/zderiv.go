package field

import (
	"math"

	"github.com/san-kum/swimz/internal/swim"
)

// cLight converts q*B to a slope curvature for q in units of e, p in
// GeV/c, B in kG and distances in cm.
const cLight = 2.99792458e-4

// ZDim is the dimension of the reduced state [x, y, tx, ty] swum over z.
const ZDim = 4

// ZDerivative is the equation of motion of a charged particle in a
// magnetic field, written with z as the independent variable. The state is
// [x, y, tx, ty] where tx = dx/dz and ty = dy/dz; pz is carried implicitly
// through the slopes.
type ZDerivative struct {
	Field Field
	Q     float64 // charge, units of e
	P     float64 // momentum magnitude, GeV/c
}

func (d *ZDerivative) Derivative(z float64, y swim.State, dydz swim.State) {
	tx := y[2]
	ty := y[3]
	bx, by, bz := d.Field.At(y[0], y[1], z)

	// q*v/pz factor; the slopes fold the direction of motion in
	a := cLight * d.Q / d.P * math.Sqrt(1+tx*tx+ty*ty)

	dydz[0] = tx
	dydz[1] = ty
	dydz[2] = a * (tx*ty*bx - (1+tx*tx)*by + ty*bz)
	dydz[3] = a * ((1+ty*ty)*bx - tx*ty*by - tx*bz)
}

// Line is field-free straight-line motion: the slopes never change.
type Line struct{}

func (Line) Derivative(z float64, y swim.State, dydz swim.State) {
	dydz[0] = y[2]
	dydz[1] = y[3]
	dydz[2] = 0
	dydz[3] = 0
}
