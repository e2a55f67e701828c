package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/automoto/hitbox/config"
	"github.com/automoto/hitbox/sim"
	"github.com/automoto/hitbox/store"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the simulation and returns the process exit status:
// 0 on success, 1 on bad input, allocation failure or any other error.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", log.LstdFlags)

	fs := flag.NewFlagSet("hitboxsim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	scenarioPath := fs.String("scenario", "", "Scenario YAML file (empty = built-in reference scenario)")
	capacity := fs.Int("capacity", config.Store.MaxHitboxes, "Maximum live hitboxes (0 = unlimited)")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *capacity < 0 {
		logger.Printf("Invalid capacity %d: must be >= 0", *capacity)
		return 1
	}

	sc := config.DefaultScenario()
	if *scenarioPath != "" {
		loaded, err := config.LoadScenario(*scenarioPath)
		if err != nil {
			logger.Printf("Failed to load scenario: %v", err)
			return 1
		}
		sc = loaded
	}

	st := store.New(store.WithCapacity(*capacity))

	res, err := sim.Run(stdout, st, sc)
	if err != nil {
		if errors.Is(err, store.ErrAllocation) {
			logger.Printf("Hitbox allocation failed: %v", err)
		} else {
			logger.Printf("Simulation error: %v", err)
		}
		return 1
	}

	if res.Collided() {
		logger.Printf("%s reached %s at step %d", sc.Mover.Label, sc.Target.Label, res.CollisionStep)
	} else {
		logger.Printf("%s never reached %s in %d steps", sc.Mover.Label, sc.Target.Label, res.Steps)
	}
	return 0
}
