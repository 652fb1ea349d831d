// Package trajectory provides the trajectory recorder and the result
// container produced by a swim.
package trajectory

import "github.com/san-kum/swimz/internal/swim"

// Trajectory records the (z, state) samples of a swim. It implements
// swim.Listener, so it can be handed directly to the driver; the driver
// hands it freshly copied states, so samples are never aliased.
type Trajectory struct {
	Zs     []float64
	States []swim.State
	Hs     []float64
}

// Start seeds the trajectory with the initial point; the driver only
// reports accepted steps. The initial "step size" slot is recorded as 0.
func (t *Trajectory) Start(z float64, y swim.State) {
	t.Zs = append(t.Zs, z)
	t.States = append(t.States, y.Clone())
	t.Hs = append(t.Hs, 0)
}

func (t *Trajectory) OnStep(z float64, y swim.State, h float64) {
	t.Zs = append(t.Zs, z)
	t.States = append(t.States, y)
	t.Hs = append(t.Hs, h)
}

func (t *Trajectory) Len() int { return len(t.Zs) }

// Last returns the final recorded sample, or (0, nil) when empty.
func (t *Trajectory) Last() (float64, swim.State) {
	if len(t.Zs) == 0 {
		return 0, nil
	}
	return t.Zs[len(t.Zs)-1], t.States[len(t.States)-1]
}

func (t *Trajectory) Clear() {
	t.Zs = t.Zs[:0]
	t.States = t.States[:0]
	t.Hs = t.Hs[:0]
}
