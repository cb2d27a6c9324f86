package phys

import "sort"

// accumulateGravity computes pairwise inverse-square attraction for one
// substep and stores each body's net impulse in the world's scratch slice,
// keyed by body index. Impulses are applied afterwards at each body's center
// (no torque), including to immovable bodies, where the zero inverse mass
// makes the application a no-op.
//
// Bodies are walked heaviest-first (inverse mass ascending, so immovable
// sources lead, in no particular mass order among themselves). A body lighter
// than the configured cutoff exerts nothing but still receives; the walk ends
// at the first sub-cutoff movable body, since every movable body after it is
// lighter still and only negligible pairs remain.
func (w *World) accumulateGravity(dt float64) {
	if len(w.grav) != len(w.Bodies) {
		w.grav = make([]Vec, len(w.Bodies))
	}
	for i := range w.grav {
		w.grav[i] = Vec{}
	}

	order := make([]int, len(w.Bodies))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return w.Bodies[order[i]].InvMass < w.Bodies[order[j]].InvMass
	})

	for oi, i := range order {
		a := w.Bodies[i]
		if a.Mass < w.Params.MassCutoff && a.Movable() {
			// Every movable body from here on is lighter still. Immovable
			// bodies sort to the front regardless of mass, so a light one
			// must not end the walk for the heavy sources behind it.
			break
		}
		for _, j := range order[oi+1:] {
			b := w.Bodies[j]

			offset := b.Pos.Sub(a.Pos)
			r2 := offset.LenSq()
			if r2 == 0 {
				continue
			}
			// The offset vector itself carries one factor of r, so
			// dividing by r³ yields the inverse-square law.
			r := offset.Len()
			imp := offset.Scale(dt * w.Params.G * a.Mass * b.Mass / (r2 * r))

			// Each side's pull counts only if it is a significant source;
			// sub-cutoff bodies receive without exerting.
			if b.Mass >= w.Params.MassCutoff {
				w.grav[i] = w.grav[i].Add(imp)
			}
			if a.Mass >= w.Params.MassCutoff {
				w.grav[j] = w.grav[j].Sub(imp)
			}
		}
	}

	for i, b := range w.Bodies {
		b.ApplyImpulse(w.grav[i], b.Pos)
	}
}

// GravityImpulse returns the net gravitational impulse accumulated for the
// body at the given index during the most recent substep. The camera layer
// uses it to orient "down" toward net gravity.
func (w *World) GravityImpulse(i int) Vec {
	if i < 0 || i >= len(w.grav) {
		return Vec{}
	}
	return w.grav[i]
}
