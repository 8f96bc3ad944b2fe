// Package tourga evolves short closed tours through points in the plane with
// a genetic algorithm: the Euclidean Travelling Salesman Problem, solved
// approximately and watchably.
//
// What is inside?
//
//	matrix      dense row-major float64 storage with bounds-checked access
//	geom        points, coordinate layouts (random, concentric circles) and
//	            the precomputed symmetric distance table
//	tsp         permutation and closed-tour utilities: validation, rotation,
//	            segment reversal, tour cost
//	ga          the engine: individuals, populations, tournament selection,
//	            PMX+insertion and OX+2-opt operator sets, elitism, a bounded
//	            fitness log
//	runner      a host controller with clamped knobs, batched ticks, YAML
//	            config, structured logs and snapshots
//	cmd/tourga  command-line front end
//
// Quick look:
//
//	eng, _ := ga.NewRandom(50, ga.WithSeed(42))
//	_ = eng.Evolve(1000)
//	best := eng.Best() // best.Tour starts and ends at node 0
//
// The library packages (matrix, geom, tsp, ga) never log and never panic on
// user input; they return sentinel errors wrapped with context.
//
//	go install github.com/katalvlaran/tourga/cmd/tourga@latest
package tourga
