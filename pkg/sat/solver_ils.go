package sat

import (
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"
)

// ILSOptions tune the iterated local search.
type ILSOptions struct {
	MaxIterations    int
	LocalSearchFlips int
	// PerturbationStrength is the proportion of variables flipped between
	// local searches, in (0, 1].
	PerturbationStrength float64
	NoiseProbability     float64
	// Seed makes runs reproducible; 0 draws a fresh seed per solve.
	Seed uint64
}

func DefaultILSOptions() ILSOptions {
	return ILSOptions{
		MaxIterations:        100,
		LocalSearchFlips:     1000,
		PerturbationStrength: 0.1,
		NoiseProbability:     0.57,
	}
}

// worseningAcceptance is the small probability of accepting a worse
// candidate, to escape deep local minima.
const worseningAcceptance = 0.001

type ilsSolver struct {
	options ILSOptions
}

// NewILSSolver returns an incomplete solver combining local search with
// perturbation: each iteration flips a fraction of the variables of the
// current assignment, re-runs the flip-based local search, and keeps the
// candidate when it satisfies at least as many clauses. It maximizes
// satisfied clauses, so a nil solution means no full model was reached,
// never that the formula is unsatisfiable.
func NewILSSolver() Solver {
	return &ilsSolver{options: DefaultILSOptions()}
}

func NewILSSolverWithOptions(options ILSOptions) Solver {
	return &ilsSolver{options: options}
}

func (solver *ilsSolver) Complete() bool { return false }

func (solver *ilsSolver) Solve(formula *Formula) (Solution, error) {
	if err := formula.Validate(); err != nil {
		return nil, fmt.Errorf("cannot solve invalid formula: %w", err)
	}

	// An empty clause can never be satisfied, no point flipping.
	if lo.SomeBy(formula.Clauses, func(clause Clause) bool { return len(clause.Literals) == 0 }) {
		return nil, nil
	}

	seed := solver.options.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	occurrences := buildOccurrences(formula)

	current, currentFitness := solver.localSearch(formula, occurrences, randomAssignment(formula.Variables, rng), rng)
	best, bestFitness := current, currentFitness
	if bestFitness == len(formula.Clauses) {
		return best.Solution(), nil
	}

	for range solver.options.MaxIterations {
		perturbed := solver.perturb(current, formula.Variables, rng)
		candidate, candidateFitness := solver.localSearch(formula, occurrences, perturbed, rng)

		if candidateFitness >= currentFitness || rng.Float64() < worseningAcceptance {
			current, currentFitness = candidate, candidateFitness
			if candidateFitness > bestFitness {
				best, bestFitness = candidate, candidateFitness
			}
		}

		if bestFitness == len(formula.Clauses) {
			return best.Solution(), nil
		}
	}

	return nil, nil
}

// localSearch runs the flip-based walk from the given assignment and returns
// the best assignment seen with its fitness, the number of satisfied
// clauses. The walk owns the assignment it is handed.
func (solver *ilsSolver) localSearch(formula *Formula, occurrences [][]int, current *Assignment, rng *rand.Rand) (*Assignment, int) {
	best := current.Clone()
	bestFitness := formula.CountSatisfied(current)

	for range solver.options.LocalSearchFlips {
		unsatisfied := formula.UnsatisfiedClauses(current)
		if len(unsatisfied) == 0 {
			return current, len(formula.Clauses)
		}

		clause := formula.Clauses[unsatisfied[rng.IntN(len(unsatisfied))]]

		var variable int64
		if rng.Float64() < solver.options.NoiseProbability {
			variable = abs(clause.Literals[rng.IntN(len(clause.Literals))])
		} else {
			variable = bestVariable(formula, occurrences, clause, current, rng)
		}

		current.Flip(variable)

		if fitness := formula.CountSatisfied(current); fitness > bestFitness {
			bestFitness = fitness
			best = current.Clone()
		}
	}

	return best, bestFitness
}

// perturb flips a strength-sized sample of variables on a copy of the
// assignment, at least one.
func (solver *ilsSolver) perturb(assignment *Assignment, variables int64, rng *rand.Rand) *Assignment {
	perturbed := assignment.Clone()

	flips := max(1, min(int(variables), int(float64(variables)*solver.options.PerturbationStrength)))
	for _, index := range rng.Perm(int(variables))[:flips] {
		perturbed.Flip(int64(index) + 1)
	}

	return perturbed
}
