package swim

// StepStats accumulates the step sizes actually used across the accepted
// steps of one integration. Avg holds a running sum during the swim and is
// divided by the step count exactly once, at whichever exit path is taken.
// If no step is accepted all three slots retain the initial step size.
type StepStats struct {
	Min float64
	Avg float64
	Max float64
}

func (st *StepStats) init(h float64) {
	st.Min = h
	st.Avg = h
	st.Max = h
}

func (st *StepStats) record(h float64) {
	if h < st.Min {
		st.Min = h
	}
	st.Avg += h
	if h > st.Max {
		st.Max = h
	}
}

func (st *StepStats) finalize(nstep int) {
	if nstep > 0 {
		st.Avg /= float64(nstep)
	}
}
