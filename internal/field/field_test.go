package field

import (
	"math"
	"testing"

	"github.com/san-kum/swimz/internal/swim"
)

func TestUniform(t *testing.T) {
	f := Uniform{Bx: 1, By: 2, Bz: 3}
	bx, by, bz := f.At(10, -5, 100)
	if bx != 1 || by != 2 || bz != 3 {
		t.Errorf("uniform field not uniform: %v %v %v", bx, by, bz)
	}
}

func TestSolenoid(t *testing.T) {
	f := Solenoid{B0: 50, Z0: 100, L: 50}

	_, _, peak := f.At(0, 0, 100)
	if peak != 50 {
		t.Errorf("expected peak at center, got %v", peak)
	}

	_, _, off := f.At(0, 0, 150)
	if off >= peak {
		t.Error("field should fall off away from center")
	}
	if off != 25 {
		t.Errorf("expected half peak one falloff length out, got %v", off)
	}
}

func TestComposite(t *testing.T) {
	f := Composite{
		Uniform{Bz: 2},
		Uniform{Bx: 1, Bz: 3},
	}
	bx, by, bz := f.At(0, 0, 0)
	if bx != 1 || by != 0 || bz != 5 {
		t.Errorf("superposition wrong: %v %v %v", bx, by, bz)
	}
}

func TestRotated(t *testing.T) {
	inner := Uniform{Bz: 10}

	// zero angle is the identity
	f := Rotated{Inner: inner, Angle: 0}
	bx, by, bz := f.At(1, 2, 3)
	if bx != 0 || by != 0 || bz != 10 {
		t.Errorf("zero rotation changed the field: %v %v %v", bx, by, bz)
	}

	// a quarter turn about y sends Bz into Bx
	f = Rotated{Inner: inner, Angle: math.Pi / 2}
	bx, by, bz = f.At(0, 0, 0)
	if math.Abs(bx-10) > 1e-12 || math.Abs(by) > 1e-12 || math.Abs(bz) > 1e-12 {
		t.Errorf("quarter turn wrong: %v %v %v", bx, by, bz)
	}

	// rotation preserves magnitude
	f = Rotated{Inner: inner, Angle: 0.7}
	bx, by, bz = f.At(3, -1, 8)
	mag := math.Sqrt(bx*bx + by*by + bz*bz)
	if math.Abs(mag-10) > 1e-12 {
		t.Errorf("rotation changed magnitude: %v", mag)
	}
}

func TestZDerivativeSlopeMagnitude(t *testing.T) {
	// with a pure axial field the slope vector only rotates, so the
	// derivative of tx^2+ty^2 vanishes
	d := &ZDerivative{Field: Uniform{Bz: 30}, Q: -1, P: 2}

	y := swim.State{5, -3, 0.2, 0.1}
	dydz := make(swim.State, 4)
	d.Derivative(0, y, dydz)

	if dydz[0] != y[2] || dydz[1] != y[3] {
		t.Error("position derivatives must equal the slopes")
	}

	ddt := 2*y[2]*dydz[2] + 2*y[3]*dydz[3]
	if math.Abs(ddt) > 1e-15 {
		t.Errorf("axial field should not change slope magnitude, got d/dz=%v", ddt)
	}
}

func TestZDerivativeChargeSign(t *testing.T) {
	neg := &ZDerivative{Field: Uniform{Bz: 30}, Q: -1, P: 2}
	pos := &ZDerivative{Field: Uniform{Bz: 30}, Q: 1, P: 2}

	y := swim.State{0, 0, 0.2, 0.1}
	dNeg := make(swim.State, 4)
	dPos := make(swim.State, 4)
	neg.Derivative(0, y, dNeg)
	pos.Derivative(0, y, dPos)

	if dNeg[2] != -dPos[2] || dNeg[3] != -dPos[3] {
		t.Error("opposite charges must bend in opposite directions")
	}
}

func TestLine(t *testing.T) {
	var d Line
	y := swim.State{1, 2, 0.3, -0.4}
	dydz := make(swim.State, 4)
	d.Derivative(12.5, y, dydz)

	want := swim.State{0.3, -0.4, 0, 0}
	for i := range want {
		if dydz[i] != want[i] {
			t.Errorf("component %d: expected %v, got %v", i, want[i], dydz[i])
		}
	}
}
