package advance

import (
	"math"
	"reflect"
	"testing"

	"github.com/san-kum/swimz/internal/swim"
)

// oscillator is y' = (y2, -y1); from (1, 0) the solution is
// (cos z, -sin z).
func oscillator(z float64, y swim.State, dydz swim.State) {
	dydz[0] = y[1]
	dydz[1] = -y[0]
}

func oscillatorStart() (swim.State, swim.State) {
	y := swim.State{1.0, 0.0}
	dydz := make(swim.State, 2)
	oscillator(0, y, dydz)
	return y, dydz
}

func advanceOnce(t *testing.T, adv swim.Advancer, h float64) (swim.State, swim.State) {
	t.Helper()
	y, dydz := oscillatorStart()
	yout := make(swim.State, 2)
	errEst := make(swim.State, 2)
	adv.Advance(0, y, dydz, h, swim.DerivativeFunc(oscillator), yout, errEst)
	return yout, errEst
}

func checkOscillatorStep(t *testing.T, name string, yout swim.State, h, maxErr float64) {
	t.Helper()
	if math.Abs(yout[0]-math.Cos(h)) > maxErr {
		t.Errorf("%s: y1 error too large: got %.10f, expected %.10f", name, yout[0], math.Cos(h))
	}
	if math.Abs(yout[1]-(-math.Sin(h))) > maxErr {
		t.Errorf("%s: y2 error too large: got %.10f, expected %.10f", name, yout[1], -math.Sin(h))
	}
}

func TestHalfStepAccuracy(t *testing.T) {
	adv := NewHalfStep()
	h := 0.1

	yout, errEst := advanceOnce(t, adv, h)
	checkOscillatorStep(t, "halfstep", yout, h, 1e-7)

	for i, e := range errEst {
		if e < 0 {
			t.Errorf("error estimate %d negative: %v", i, e)
		}
		if e > 1e-6 {
			t.Errorf("error estimate %d implausibly large: %v", i, e)
		}
	}
}

func TestHalfStepBackwardStep(t *testing.T) {
	adv := NewHalfStep()
	h := -0.1

	yout, _ := advanceOnce(t, adv, h)
	checkOscillatorStep(t, "halfstep backward", yout, h, 1e-7)
}

func TestHalfStepComputesError(t *testing.T) {
	if !NewHalfStep().ComputesError() {
		t.Error("half-step advancer must compute error")
	}
}

func TestHalfStepPure(t *testing.T) {
	adv := NewHalfStep()

	a, aerr := advanceOnce(t, adv, 0.3)
	// a retry with a different h must not disturb a later identical call
	advanceOnce(t, adv, 0.15)
	b, berr := advanceOnce(t, adv, 0.3)

	if !reflect.DeepEqual(a, b) || !reflect.DeepEqual(aerr, berr) {
		t.Error("Advance is not a pure function of its inputs")
	}
}

func TestTableauAccuracy(t *testing.T) {
	for _, tab := range []*Tableau{Fehlberg45, DormandPrince54} {
		adv := NewTableauStep(tab)
		h := 0.1

		yout, errEst := advanceOnce(t, adv, h)
		checkOscillatorStep(t, tab.Name, yout, h, 1e-9)

		if !adv.ComputesError() {
			t.Errorf("%s: expected an augmented tableau", tab.Name)
		}
		for i, e := range errEst {
			if e > 1e-8 {
				t.Errorf("%s: error estimate %d implausibly large: %v", tab.Name, i, e)
			}
		}
	}
}

func TestTableauClassicRK4(t *testing.T) {
	adv := NewTableauStep(ClassicRK4)
	if adv.ComputesError() {
		t.Error("plain RK4 tableau must not claim error estimation")
	}

	yout, _ := advanceOnce(t, adv, 0.1)
	checkOscillatorStep(t, "rk4 tableau", yout, 0.1, 1e-7)
}

func TestTableauMatchesRK4Step(t *testing.T) {
	// the classic tableau and the dedicated RK4 kernel are the same scheme
	y, dydz := oscillatorStart()
	h := 0.2

	tabOut := make(swim.State, 2)
	NewTableauStep(ClassicRK4).Advance(0, y, dydz, h, swim.DerivativeFunc(oscillator), tabOut, nil)

	kernelOut := make(swim.State, 2)
	var s rk4Scratch
	rk4Step(0, y, dydz, h, swim.DerivativeFunc(oscillator), kernelOut, &s)

	for i := range tabOut {
		if math.Abs(tabOut[i]-kernelOut[i]) > 1e-14 {
			t.Errorf("component %d: tableau %v vs kernel %v", i, tabOut[i], kernelOut[i])
		}
	}
}

func TestWeightsConsistent(t *testing.T) {
	for _, tab := range []*Tableau{Fehlberg45, DormandPrince54, ClassicRK4} {
		sum := 0.0
		for _, b := range tab.B {
			sum += b
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("%s: solution weights sum to %v", tab.Name, sum)
		}

		if tab.Augmented() {
			sum = 0
			for _, b := range tab.BStar {
				sum += b
			}
			if math.Abs(sum-1) > 1e-12 {
				t.Errorf("%s: embedded weights sum to %v", tab.Name, sum)
			}
		}

		if len(tab.A) != tab.Stages()-1 || len(tab.C) != tab.Stages() {
			t.Errorf("%s: inconsistent stage count", tab.Name)
		}
	}
}
