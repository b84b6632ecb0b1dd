package sat

// DecisionHeuristic selects the variable the DPLL search branches on next.
// Implementations must be deterministic for a fixed formula so solves are
// reproducible.
type DecisionHeuristic interface {
	// Initialize is called once per solve, before the search starts.
	Initialize(formula *Formula)
	// PickUnassigned returns a currently-unassigned variable, or false when
	// every variable is assigned.
	PickUnassigned(assignment *Assignment) (int64, bool)
	// HandleConflict is called with the conflicting clause whenever
	// propagation fails, letting activity-based heuristics update state.
	HandleConflict(conflict Clause)
}

// firstUnassignedHeuristic picks the lowest-numbered unassigned variable.
type firstUnassignedHeuristic struct {
	variables int64
}

func NewFirstUnassignedHeuristic() DecisionHeuristic {
	return &firstUnassignedHeuristic{}
}

func (h *firstUnassignedHeuristic) Initialize(formula *Formula) {
	h.variables = formula.Variables
}

func (h *firstUnassignedHeuristic) PickUnassigned(assignment *Assignment) (int64, bool) {
	for variable := int64(1); variable <= h.variables; variable++ {
		if assignment.IsUnassigned(variable) {
			return variable, true
		}
	}
	return 0, false
}

func (h *firstUnassignedHeuristic) HandleConflict(Clause) {}

const (
	vsidsDecayFactor = 0.95
	vsidsDecayPeriod = 256
)

// vsidsHeuristic implements Variable State Independent Decaying Sum: scores
// start at occurrence counts, conflicts bump the variables involved, and all
// scores decay periodically so recent conflicts dominate.
type vsidsHeuristic struct {
	scores    []float64
	variables int64
	conflicts int
}

func NewVSIDSHeuristic() DecisionHeuristic {
	return &vsidsHeuristic{}
}

func (h *vsidsHeuristic) Initialize(formula *Formula) {
	h.variables = formula.Variables
	h.conflicts = 0
	h.scores = make([]float64, formula.Variables+1)
	for _, clause := range formula.Clauses {
		for _, variable := range clause.Variables() {
			h.scores[variable]++
		}
	}
}

func (h *vsidsHeuristic) PickUnassigned(assignment *Assignment) (int64, bool) {
	best, bestScore := int64(0), -1.0
	for variable := int64(1); variable <= h.variables; variable++ {
		if assignment.IsUnassigned(variable) && h.scores[variable] > bestScore {
			best, bestScore = variable, h.scores[variable]
		}
	}
	return best, best != 0
}

func (h *vsidsHeuristic) HandleConflict(conflict Clause) {
	for _, variable := range conflict.Variables() {
		h.scores[variable]++
	}

	h.conflicts++
	if h.conflicts >= vsidsDecayPeriod {
		for i := range h.scores {
			h.scores[i] *= vsidsDecayFactor
		}
		h.conflicts = 0
	}
}
