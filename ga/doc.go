// Package ga implements a genetic-algorithm engine for the Euclidean
// Travelling Salesman Problem.
//
// Individuals are permutations of node indices read as closed tours; fitness
// is the reciprocal of the tour length. Each generation is bred by tournament
// selection (with replacement), crossover and probabilistic mutation, with
// optional elitism. Two interchangeable policies are provided:
//
//   - PMXInsertion: partially-mapped crossover with guarded cycle resolution,
//     plus single-gene insertion mutation.
//   - OrderTwoOpt: order crossover plus 2-opt segment-reversal mutation.
//
// The engine keeps a FitnessLog of the best fitness per generation whose
// sampling stride doubles whenever it outgrows its budget, so memory stays
// bounded over unbounded runs.
//
// Determinism: with the same seed, options and call sequence an engine
// produces identical populations, routes and logs.
//
// Errors: configuration is validated at the boundary (New, setters) and
// reported with sentinels; a corrupt PMX substitution table surfaces as
// ErrCrossoverCycle instead of looping. Nothing here logs.
//
// Example:
//
//	eng, err := ga.NewRandom(50, ga.WithSeed(42), ga.WithStrategy(ga.PMXInsertion{}))
//	if err != nil {
//	    return err
//	}
//	if err = eng.Evolve(500); err != nil {
//	    return err
//	}
//	best := eng.Best()
//	fmt.Println(best.Distance, best.Tour)
package ga
