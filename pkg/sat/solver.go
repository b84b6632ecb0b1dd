package sat

// Solution is a model expressed as signed literals, one per variable in
// increasing order of magnitude, DIMACS "v" line style.
type Solution []int64

// Solver solves a CNF formula. A nil solution with a nil error means no model
// was produced: for complete backends that is a proof of unsatisfiability,
// for local-search backends it only means the search gave up. Errors are
// reserved for invalid formulas and execution failures.
type Solver interface {
	Solve(*Formula) (Solution, error)
	// Complete reports whether a nil solution proves unsatisfiability.
	Complete() bool
}

// Satisfies reports whether the solution is a well-formed model of the
// formula: no duplicate or contradictory literals, and every clause contains
// at least one literal the solution makes true.
func (s Solution) Satisfies(formula *Formula) bool {
	literals := make(map[int64]bool)
	for _, literal := range s {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	for _, clause := range formula.Clauses {
		satisfied := false
		for _, literal := range clause.Literals {
			if literals[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}
