// Package advance provides single-step advance strategies for the swim
// driver: a step-doubling half-step advancer and a generic embedded-pair
// Butcher tableau advancer.
package advance

import "github.com/san-kum/swimz/internal/swim"

// rk4Scratch holds the intermediate slope vectors for one classical
// fourth-order step, reused across calls.
type rk4Scratch struct {
	k2, k3, k4 swim.State
	ytmp       swim.State
}

func (s *rk4Scratch) ensure(n int) {
	if len(s.k2) != n {
		s.k2 = make(swim.State, n)
		s.k3 = make(swim.State, n)
		s.k4 = make(swim.State, n)
		s.ytmp = make(swim.State, n)
	}
}

// rk4Step takes one classical RK4 step of signed size h from (z, y) into
// yout. dydz is the derivative already evaluated at (z, y) and serves as k1.
func rk4Step(z float64, y, dydz swim.State, h float64, deriv swim.Derivative, yout swim.State, s *rk4Scratch) {
	n := len(y)
	s.ensure(n)

	hh := h * 0.5
	for i := 0; i < n; i++ {
		s.ytmp[i] = y[i] + hh*dydz[i]
	}
	deriv.Derivative(z+hh, s.ytmp, s.k2)

	for i := 0; i < n; i++ {
		s.ytmp[i] = y[i] + hh*s.k2[i]
	}
	deriv.Derivative(z+hh, s.ytmp, s.k3)

	for i := 0; i < n; i++ {
		s.ytmp[i] = y[i] + h*s.k3[i]
	}
	deriv.Derivative(z+h, s.ytmp, s.k4)

	h6 := h / 6.0
	for i := 0; i < n; i++ {
		yout[i] = y[i] + h6*(dydz[i]+2*s.k2[i]+2*s.k3[i]+s.k4[i])
	}
}
