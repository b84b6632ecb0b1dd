package sat

import "fmt"

const bruteForceMaxVariables = 30

type bruteForceSolver struct{}

// NewBruteForceSolver returns a solver that enumerates all 2^n assignments.
// It is the completeness oracle the other backends are tested against and
// only accepts small instances.
func NewBruteForceSolver() Solver {
	return &bruteForceSolver{}
}

func (solver *bruteForceSolver) Complete() bool { return true }

func (solver *bruteForceSolver) Solve(formula *Formula) (Solution, error) {
	if err := formula.Validate(); err != nil {
		return nil, fmt.Errorf("cannot solve invalid formula: %w", err)
	}
	if formula.Variables > bruteForceMaxVariables {
		return nil, fmt.Errorf("brute force is limited to %v variables, got %v", bruteForceMaxVariables, formula.Variables)
	}

	assignment := NewAssignment(formula.Variables)
	for mask := uint64(0); mask < 1<<formula.Variables; mask++ {
		for variable := int64(1); variable <= formula.Variables; variable++ {
			assignment.Assign(variable, mask&(1<<(variable-1)) != 0)
		}
		if formula.IsSatisfied(assignment) {
			return assignment.Solution(), nil
		}
	}

	return nil, nil
}
