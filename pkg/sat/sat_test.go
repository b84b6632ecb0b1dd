package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClauseIsSatisfied(t *testing.T) {
	//** Arrange
	clause := Clause{Literals: []int64{1, -2, 3}}
	assignment := NewAssignment(3)

	//** Assert
	assert.False(t, clause.IsSatisfied(assignment), "unassigned variables satisfy nothing")

	assignment.Assign(2, true)
	assert.False(t, clause.IsSatisfied(assignment))

	assignment.Assign(2, false)
	assert.True(t, clause.IsSatisfied(assignment), "negative literal over a false variable is true")

	assignment.Reset()
	assignment.Assign(1, true)
	assert.True(t, clause.IsSatisfied(assignment))
}

func TestAddClauseRejectsInvalidLiterals(t *testing.T) {
	formula := &Formula{Variables: 3}

	assert.Error(t, formula.AddClause([]int64{1, 0, 2}), "zero literal")
	assert.Error(t, formula.AddClause([]int64{4}), "out-of-range literal")
	assert.Error(t, formula.AddClause([]int64{-4}), "out-of-range negative literal")
	assert.NoError(t, formula.AddClause([]int64{1, -3}))
	assert.NoError(t, formula.AddClause([]int64{}), "empty clause is legal")
	assert.Len(t, formula.Clauses, 2)
}

func TestFormulaSatisfaction(t *testing.T) {
	//** Arrange
	formula := &Formula{Variables: 2}
	assert.NoError(t, formula.AddClause([]int64{1, 2}))
	assert.NoError(t, formula.AddClause([]int64{-1, -2}))

	//** Act
	assignment := NewAssignment(2)
	assignment.Assign(1, true)
	assignment.Assign(2, false)

	//** Assert
	assert.True(t, formula.IsSatisfied(assignment))
	assert.Equal(t, 2, formula.CountSatisfied(assignment))
	assert.Empty(t, formula.UnsatisfiedClauses(assignment))

	assignment.Assign(2, true)
	assert.False(t, formula.IsSatisfied(assignment))
	assert.Equal(t, []int{1}, formula.UnsatisfiedClauses(assignment))
}

func TestToDIMACS(t *testing.T) {
	formula := &Formula{Variables: 3}
	assert.NoError(t, formula.AddClause([]int64{1, -2}))
	assert.NoError(t, formula.AddClause([]int64{3}))

	assert.Equal(t, "p cnf 3 2\n1 -2 0\n3 0\n", formula.ToDIMACS())
}

func TestAssignment(t *testing.T) {
	assignment := NewAssignment(3)
	assert.Equal(t, int64(3), assignment.Variables())
	assert.False(t, assignment.Complete())

	assignment.Assign(1, true)
	assignment.Assign(2, false)
	assert.True(t, assignment.IsTrue(1))
	assert.True(t, assignment.IsFalse(2))
	assert.True(t, assignment.IsUnassigned(3))
	assert.False(t, assignment.Complete())

	assignment.Assign(3, true)
	assert.True(t, assignment.Complete())
	assert.Equal(t, Solution{1, -2, 3}, assignment.Solution())

	assignment.Flip(1)
	assert.True(t, assignment.IsFalse(1))
	assignment.Flip(1)
	assert.True(t, assignment.IsTrue(1))

	assignment.Unassign(3)
	assert.True(t, assignment.IsUnassigned(3))

	assignment.Reset()
	for variable := int64(1); variable <= 3; variable++ {
		assert.True(t, assignment.IsUnassigned(variable))
	}
}

func TestAssignmentClone(t *testing.T) {
	//** Arrange
	assignment := NewAssignment(3)
	assignment.Assign(1, true)
	assignment.Assign(2, false)

	//** Act
	clone := assignment.Clone()
	clone.Flip(1)
	clone.Assign(3, true)

	//** Assert: the original never observes the clone's mutations.
	assert.True(t, assignment.IsTrue(1))
	assert.True(t, assignment.IsUnassigned(3))
	assert.True(t, clone.IsFalse(1))
	assert.True(t, clone.IsTrue(3))
}

func TestSolverCompleteness(t *testing.T) {
	// A nil solution from a complete backend proves unsatisfiability; the
	// local-search backends only report giving up.
	assert.True(t, NewDPLLSolver().Complete())
	assert.True(t, NewDPLLSolverWithHeuristic(NewVSIDSHeuristic()).Complete())
	assert.True(t, NewBruteForceSolver().Complete())
	assert.False(t, NewWalkSATSolver().Complete())
	assert.False(t, NewILSSolver().Complete())
}

func TestSolutionSatisfies(t *testing.T) {
	formula := &Formula{Variables: 2}
	assert.NoError(t, formula.AddClause([]int64{1, 2}))
	assert.NoError(t, formula.AddClause([]int64{-1, -2}))

	assert.True(t, Solution{1, -2}.Satisfies(formula))
	assert.True(t, Solution{-1, 2}.Satisfies(formula))
	assert.False(t, Solution{1, 2}.Satisfies(formula))
	assert.False(t, Solution{1, -1}.Satisfies(formula), "contradictory literals")
	assert.False(t, Solution{1, 1}.Satisfies(formula), "duplicate literals")
}
