package phys

// Params tunes a World. Zero values are replaced with defaults by NewWorld.
type Params struct {
	// G is the gravitational constant coupling body masses.
	G float64

	// MassCutoff prunes bodies lighter than it from acting as gravity
	// sources. They still fall toward heavier bodies.
	MassCutoff float64

	// Substeps divides each Step into fixed fractions for stability.
	Substeps int
}

// DefaultParams are the tunings used when a scenario does not override them.
func DefaultParams() Params {
	return Params{
		G:          60,
		MassCutoff: 1,
		Substeps:   4,
	}
}

// World owns the simulated bodies and weld groups and advances them in fixed
// substeps. It is not safe for concurrent use; the driving loop owns it.
type World struct {
	Bodies []*Body
	Welds  []*WeldGroup
	Params Params

	grav []Vec // per-body net gravity impulse for the latest substep
}

// NewWorld creates an empty world, filling in defaults for any zero Params
// field.
func NewWorld(p Params) *World {
	def := DefaultParams()
	if p.G == 0 {
		p.G = def.G
	}
	if p.MassCutoff == 0 {
		p.MassCutoff = def.MassCutoff
	}
	if p.Substeps <= 0 {
		p.Substeps = def.Substeps
	}
	return &World{Params: p}
}

// AddBody registers a body and returns its stable index.
func (w *World) AddBody(b *Body) int {
	w.Bodies = append(w.Bodies, b)
	return len(w.Bodies) - 1
}

// AddWeld registers a weld group. Its members must already be in the world.
func (w *World) AddWeld(g *WeldGroup) {
	w.Welds = append(w.Welds, g)
}

// Step advances the simulation by dt, split into the configured number of
// substeps. Each substep accumulates gravity, integrates, enforces welds and
// resolves every overlapping pair once.
func (w *World) Step(dt float64) {
	h := dt / float64(w.Params.Substeps)
	for s := 0; s < w.Params.Substeps; s++ {
		w.substep(h)
	}
}

func (w *World) substep(h float64) {
	w.accumulateGravity(h)

	for _, b := range w.Bodies {
		b.Integrate(h)
	}

	for _, g := range w.Welds {
		g.Update()
	}

	for i, a := range w.Bodies {
		for _, b := range w.Bodies[i+1:] {
			c, ok := Detect(a, b)
			if !ok {
				continue
			}
			c.Resolve()
			c.Correct()
		}
	}
}

// Settle damps initial placement jitter by briefly welding every movable body
// into one transient group and running a single constraint update. Scenarios
// call it once after spawning so loosely stacked bodies start coherent
// instead of exploding on the first tick.
func (w *World) Settle() {
	var movable []*Body
	for _, b := range w.Bodies {
		if b.Movable() {
			movable = append(movable, b)
		}
	}
	if len(movable) < 2 {
		return
	}
	g, err := NewWeldGroup(movable...)
	if err != nil {
		return
	}
	g.Update()
}
