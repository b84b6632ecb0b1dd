package sat

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/samber/lo"
)

// WalkSATOptions tune the local search. The noise probability default comes
// from the WalkSAT literature.
type WalkSATOptions struct {
	MaxFlips         int
	MaxRestarts      int
	NoiseProbability float64
	// Seed makes runs reproducible; 0 draws a fresh seed per solve.
	Seed uint64
}

func DefaultWalkSATOptions() WalkSATOptions {
	return WalkSATOptions{
		MaxFlips:         10000,
		MaxRestarts:      100,
		NoiseProbability: 0.57,
	}
}

type walkSATSolver struct {
	options WalkSATOptions
}

// NewWalkSATSolver returns an incomplete stochastic local-search solver:
// starting from a random complete assignment it repeatedly picks an
// unsatisfied clause and flips one of its variables, greedily minimizing the
// number of satisfied clauses broken, with a random walk under the noise
// probability. A nil solution means the search gave up, never that the
// formula is unsatisfiable.
func NewWalkSATSolver() Solver {
	return &walkSATSolver{options: DefaultWalkSATOptions()}
}

func NewWalkSATSolverWithOptions(options WalkSATOptions) Solver {
	return &walkSATSolver{options: options}
}

func (solver *walkSATSolver) Complete() bool { return false }

func (solver *walkSATSolver) Solve(formula *Formula) (Solution, error) {
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

	for restart := 0; restart < solver.options.MaxRestarts; restart++ {
		assignment := randomAssignment(formula.Variables, rng)

		for flip := 0; flip < solver.options.MaxFlips; flip++ {
			unsatisfied := formula.UnsatisfiedClauses(assignment)
			if len(unsatisfied) == 0 {
				return assignment.Solution(), nil
			}

			clause := formula.Clauses[unsatisfied[rng.IntN(len(unsatisfied))]]

			var variable int64
			if rng.Float64() < solver.options.NoiseProbability {
				variable = abs(clause.Literals[rng.IntN(len(clause.Literals))])
			} else {
				variable = bestVariable(formula, occurrences, clause, assignment, rng)
			}

			assignment.Flip(variable)
		}
	}

	return nil, nil
}

// buildOccurrences maps each variable to the indices of the clauses that
// mention it.
func buildOccurrences(formula *Formula) [][]int {
	occurrences := make([][]int, formula.Variables+1)
	for i, clause := range formula.Clauses {
		for _, variable := range clause.Variables() {
			occurrences[variable] = append(occurrences[variable], i)
		}
	}
	return occurrences
}

func randomAssignment(variables int64, rng *rand.Rand) *Assignment {
	assignment := NewAssignment(variables)
	for variable := int64(1); variable <= variables; variable++ {
		assignment.Assign(variable, rng.IntN(2) == 0)
	}
	return assignment
}

// bestVariable picks, from the clause, a variable with minimum break count:
// the number of currently satisfied clauses that flipping it would
// unsatisfy. Ties are broken at random.
func bestVariable(formula *Formula, occurrences [][]int, clause Clause, assignment *Assignment, rng *rand.Rand) int64 {
	bestVariables := make([]int64, 0, len(clause.Literals))
	bestBreakCount := math.MaxInt

	for _, variable := range clause.Variables() {
		breakCount := calculateBreakCount(formula, occurrences, variable, assignment)
		if breakCount < bestBreakCount {
			bestBreakCount = breakCount
			bestVariables = []int64{variable}
		} else if breakCount == bestBreakCount {
			bestVariables = append(bestVariables, variable)
		}
	}

	return bestVariables[rng.IntN(len(bestVariables))]
}

func calculateBreakCount(formula *Formula, occurrences [][]int, variable int64, assignment *Assignment) int {
	breakCount := 0
	for _, clauseIndex := range occurrences[variable] {
		clause := formula.Clauses[clauseIndex]
		if !clause.IsSatisfied(assignment) {
			continue
		}

		assignment.Flip(variable)
		if !clause.IsSatisfied(assignment) {
			breakCount++
		}
		assignment.Flip(variable)
	}
	return breakCount
}
