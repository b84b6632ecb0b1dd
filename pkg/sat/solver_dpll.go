package sat

import "fmt"

type dpllSolver struct {
	heuristic DecisionHeuristic
}

// NewDPLLSolver returns a complete solver implementing the classic
// Davis-Putnam-Logemann-Loveland procedure: unit propagation to fixpoint,
// then branch on an unassigned variable and backtrack on conflicts. Branching
// uses the first-unassigned heuristic.
func NewDPLLSolver() Solver {
	return &dpllSolver{heuristic: NewFirstUnassignedHeuristic()}
}

// NewDPLLSolverWithHeuristic returns a DPLL solver branching with the given
// decision heuristic.
func NewDPLLSolverWithHeuristic(heuristic DecisionHeuristic) Solver {
	return &dpllSolver{heuristic: heuristic}
}

func (solver *dpllSolver) Complete() bool { return true }

func (solver *dpllSolver) Solve(formula *Formula) (Solution, error) {
	if err := formula.Validate(); err != nil {
		return nil, fmt.Errorf("cannot solve invalid formula: %w", err)
	}

	search := newSearch(formula, solver.heuristic)
	if !search.dpll() {
		return nil, nil
	}
	return search.assignment.Solution(), nil
}

// search holds the mutable state of one in-progress DPLL solve. The trail
// records every variable assigned, in order, so a failed branch can restore
// the assignment exactly as it was on entry.
type search struct {
	formula    *Formula
	assignment *Assignment
	heuristic  DecisionHeuristic
	trail      []int64
}

func newSearch(formula *Formula, heuristic DecisionHeuristic) *search {
	heuristic.Initialize(formula)
	return &search{
		formula:    formula,
		assignment: NewAssignment(formula.Variables),
		heuristic:  heuristic,
		trail:      make([]int64, 0, formula.Variables),
	}
}

// dpll runs one search node: propagate to fixpoint, succeed if the
// assignment is complete, otherwise branch on a fresh variable, trying true
// before false. On failure every variable assigned within this call, whether
// by decision or propagation, is unassigned again before returning, so
// sibling branches never observe leftover state.
func (s *search) dpll() bool {
	mark := len(s.trail)

	if !s.propagate() {
		s.unwind(mark)
		return false
	}

	if s.assignment.Complete() {
		return true
	}

	variable, ok := s.heuristic.PickUnassigned(s.assignment)
	if !ok {
		// Unreachable: the completeness check above precedes branching.
		return true
	}

	for _, v := range []bool{true, false} {
		decision := len(s.trail)
		s.assign(variable, v)
		if s.dpll() {
			return true
		}
		s.unwind(decision)
	}

	s.unwind(mark)
	return false
}

// propagate forces all currently-unit clauses until a full pass over the
// formula makes no change, rescanning every clause each pass. It returns
// false on conflict, i.e. when some clause has every literal false; the
// assignments it already made stay on the trail for the caller to unwind.
func (s *search) propagate() bool {
	changed := true
	for changed {
		changed = false

		for _, clause := range s.formula.Clauses {
			satisfied := false
			candidates := 0
			var unit int64

			for _, literal := range clause.Literals {
				variable := abs(literal)
				if (literal > 0 && s.assignment.IsTrue(variable)) || (literal < 0 && s.assignment.IsFalse(variable)) {
					satisfied = true
					break
				}
				if s.assignment.IsUnassigned(variable) {
					candidates++
					unit = literal
				}
			}

			if satisfied {
				continue
			}
			if candidates == 0 {
				s.heuristic.HandleConflict(clause)
				return false
			}
			if candidates == 1 {
				s.assign(abs(unit), unit > 0)
				changed = true
			}
		}
	}
	return true
}

func (s *search) assign(variable int64, v bool) {
	s.assignment.Assign(variable, v)
	s.trail = append(s.trail, variable)
}

// unwind unassigns every variable recorded since the trail mark, most recent
// first.
func (s *search) unwind(mark int) {
	for i := len(s.trail) - 1; i >= mark; i-- {
		s.assignment.Unassign(s.trail[i])
	}
	s.trail = s.trail[:mark]
}
