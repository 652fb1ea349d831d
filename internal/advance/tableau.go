package advance

import (
	"math"

	"github.com/san-kum/swimz/internal/swim"
)

// Tableau describes an explicit Runge-Kutta scheme. A is the strictly
// lower-triangular stage matrix (row s holds the s coefficients feeding
// stage s+1), B the solution weights, C the nodes. An augmented tableau
// additionally carries the embedded lower-order weights BStar, whose
// difference against B yields a per-component error estimate.
type Tableau struct {
	Name  string
	A     [][]float64
	B     []float64
	BStar []float64
	C     []float64
}

func (t *Tableau) Stages() int     { return len(t.B) }
func (t *Tableau) Augmented() bool { return t.BStar != nil }

// TableauStep advances with an arbitrary explicit tableau. With an
// augmented tableau it doubles as an embedded-pair error estimator; with a
// plain one it cannot drive adaptive stepping.
type TableauStep struct {
	tab  *Tableau
	k    []swim.State
	ytmp swim.State
}

func NewTableauStep(t *Tableau) *TableauStep {
	return &TableauStep{tab: t}
}

func (a *TableauStep) ComputesError() bool { return a.tab.Augmented() }

func (a *TableauStep) ensure(n int) {
	stages := a.tab.Stages()
	if len(a.k) != stages || len(a.ytmp) != n {
		a.k = make([]swim.State, stages)
		for s := range a.k {
			a.k[s] = make(swim.State, n)
		}
		a.ytmp = make(swim.State, n)
	}
}

func (a *TableauStep) Advance(z float64, y, dydz swim.State, h float64, deriv swim.Derivative, yout, errEst swim.State) {
	n := len(y)
	stages := a.tab.Stages()
	a.ensure(n)

	// k1 is just h*dydz
	for i := 0; i < n; i++ {
		a.k[0][i] = h * dydz[i]
	}

	for s := 1; s < stages; s++ {
		row := a.tab.A[s-1]
		for i := 0; i < n; i++ {
			sum := y[i]
			for j := 0; j < s; j++ {
				sum += row[j] * a.k[j][i]
			}
			a.ytmp[i] = sum
		}
		deriv.Derivative(z+a.tab.C[s]*h, a.ytmp, a.k[s])
		for i := 0; i < n; i++ {
			a.k[s][i] *= h
		}
	}

	for i := 0; i < n; i++ {
		sum := 0.0
		for s := 0; s < stages; s++ {
			sum += a.tab.B[s] * a.k[s][i]
		}
		yout[i] = y[i] + sum
	}

	if a.tab.Augmented() && errEst != nil {
		for i := 0; i < n; i++ {
			sum := 0.0
			for s := 0; s < stages; s++ {
				sum += (a.tab.B[s] - a.tab.BStar[s]) * a.k[s][i]
			}
			errEst[i] = math.Abs(sum)
		}
	}
}
