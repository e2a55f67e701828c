// Package sim runs the reference hitbox scenario: a mover steps toward a
// target until the two collide, then the target is switched off and the
// pair is checked again. It only uses the public store API.
package sim

import (
	"fmt"
	"io"

	"github.com/automoto/hitbox/config"
	"github.com/automoto/hitbox/store"
)

// Result summarises a run.
type Result struct {
	Steps           int  // step lines printed
	CollisionStep   int  // first step with a collision, -1 if none
	AfterDeactivate bool // collision result once the target is inactive
}

// Collided reports whether the mover reached the target.
func (r Result) Collided() bool {
	return r.CollisionStep >= 0
}

// Run plays sc against st and writes the transcript to w.
// Both hitboxes are destroyed before Run returns. A failed Create returns an
// error wrapping store.ErrAllocation after releasing anything already created.
func Run(w io.Writer, st *store.Store, sc config.Scenario) (Result, error) {
	res := Result{CollisionStep: -1}

	if err := sc.Validate(); err != nil {
		return res, fmt.Errorf("invalid scenario: %w", err)
	}

	mover, err := st.Create(sc.Mover.X, sc.Mover.Y, sc.Mover.W, sc.Mover.H)
	if err != nil {
		return res, fmt.Errorf("create %s: %w", sc.Mover.Label, err)
	}
	defer st.Destroy(mover)

	target, err := st.Create(sc.Target.X, sc.Target.Y, sc.Target.W, sc.Target.H)
	if err != nil {
		return res, fmt.Errorf("create %s: %w", sc.Target.Label, err)
	}
	defer st.Destroy(target)

	var roster store.Collection
	roster.Add(mover)
	roster.Add(target)
	labels := []string{sc.Mover.Label, sc.Target.Label}

	fmt.Fprintln(w, "Initial state:")
	for i, h := range roster.Handles() {
		fmt.Fprintln(w, st.Describe(h, labels[i]))
	}

	fmt.Fprintf(w, "\nSimulation: move %s by (%.2f, %.2f) per step\n",
		sc.Mover.Label, sc.Step.DX, sc.Step.DY)

	for step := 0; step <= sc.MaxSteps; step++ {
		res.Steps++
		fmt.Fprintf(w, "Step %d: %s\n", step, st.Describe(mover, sc.Mover.Label))

		if st.Collide(mover, target) {
			res.CollisionStep = step
			fmt.Fprintf(w, "  => Collision detected at step %d!\n", step)
			break
		}
		fmt.Fprintln(w, "  => No collision")

		st.Move(mover, sc.Step.DX, sc.Step.DY)
	}

	st.SetActive(target, false)
	res.AfterDeactivate = st.Collide(mover, target)

	verdict := "No collision (expected)"
	if res.AfterDeactivate {
		verdict = "Collision (unexpected)"
	}
	fmt.Fprintf(w, "\nSet %s inactive and check collision again: %s\n", sc.Target.Label, verdict)

	return res, nil
}
