// Package sat solves boolean satisfiability over CNF formulas. It ships a
// complete DPLL backend with pluggable decision heuristics, a WalkSAT
// local-search backend and a brute-force oracle, all behind a common Solver
// interface, plus a DIMACS reader and writer.
package sat

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Clause is a disjunction of literals. A literal is a non-zero integer whose
// magnitude names a variable and whose sign encodes polarity, as in DIMACS.
type Clause struct {
	Literals []int64
}

// IsSatisfied reports whether at least one literal evaluates true under the
// given assignment. Unassigned variables satisfy nothing.
func (c Clause) IsSatisfied(assignment *Assignment) bool {
	for _, literal := range c.Literals {
		variable := abs(literal)
		if (literal > 0 && assignment.IsTrue(variable)) || (literal < 0 && assignment.IsFalse(variable)) {
			return true
		}
	}
	return false
}

// Variables returns the variables mentioned by the clause.
func (c Clause) Variables() []int64 {
	return lo.Map(c.Literals, func(literal int64, _ int) int64 { return abs(literal) })
}

func (c Clause) String() string {
	literals := lo.Map(c.Literals, func(literal int64, _ int) string { return fmt.Sprint(literal) })
	return strings.Join(literals, " ")
}

// Formula is a conjunction of clauses over variables 1..Variables. It is
// built once (by the DIMACS parser or AddClause calls) and never mutated by
// the solvers.
type Formula struct {
	Variables int64
	Clauses   []Clause
}

// AddClause appends a clause after checking every literal is non-zero and
// names a declared variable. An empty clause is legal and makes the formula
// unconditionally unsatisfiable.
func (f *Formula) AddClause(literals []int64) error {
	for _, literal := range literals {
		if literal == 0 {
			return fmt.Errorf("clause literals cannot be zero: %v", literals)
		}
		if abs(literal) > f.Variables {
			return fmt.Errorf("literal %v is out of bounds [1, %v]", literal, f.Variables)
		}
	}
	f.Clauses = append(f.Clauses, Clause{Literals: literals})
	return nil
}

// Validate checks the formula is one the solvers may operate on. Formulas
// produced by ParseDIMACS or AddClause always pass.
func (f *Formula) Validate() error {
	if f.Variables < 0 {
		return fmt.Errorf("variable count cannot be negative: %v", f.Variables)
	}
	for _, clause := range f.Clauses {
		for _, literal := range clause.Literals {
			if literal == 0 || abs(literal) > f.Variables {
				return fmt.Errorf("invalid literal %v in clause [%v]", literal, clause)
			}
		}
	}
	return nil
}

// IsSatisfied reports whether every clause is satisfied under the assignment.
func (f *Formula) IsSatisfied(assignment *Assignment) bool {
	for _, clause := range f.Clauses {
		if !clause.IsSatisfied(assignment) {
			return false
		}
	}
	return true
}

// CountSatisfied counts the clauses satisfied under the assignment.
func (f *Formula) CountSatisfied(assignment *Assignment) int {
	return lo.CountBy(f.Clauses, func(clause Clause) bool { return clause.IsSatisfied(assignment) })
}

// UnsatisfiedClauses returns the indices of clauses left unsatisfied under
// the assignment.
func (f *Formula) UnsatisfiedClauses(assignment *Assignment) []int {
	unsatisfied := make([]int, 0)
	for i, clause := range f.Clauses {
		if !clause.IsSatisfied(assignment) {
			unsatisfied = append(unsatisfied, i)
		}
	}
	return unsatisfied
}

// ToDIMACS serializes the formula into DIMACS-CNF string format.
func (f *Formula) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", f.Variables, len(f.Clauses))
	for _, clause := range f.Clauses {
		for _, literal := range clause.Literals {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
