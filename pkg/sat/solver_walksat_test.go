package sat

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalkSATSolvesPlantedInstances(t *testing.T) {
	solver := NewWalkSATSolverWithOptions(WalkSATOptions{
		MaxFlips:         10000,
		MaxRestarts:      20,
		NoiseProbability: 0.57,
		Seed:             42,
	})

	for range 10 {
		//** Arrange
		variables := int64(rand.IntN(30) + 3)
		clauses := rand.IntN(60) + 1
		formula := GeneratePlantedInstance(variables, clauses)

		//** Act
		solution, err := solver.Solve(formula)

		//** Assert
		assert.NoError(t, err)
		assert.NotNil(t, solution, "planted instance is satisfiable:\n%v", formula.ToDIMACS())
		assert.True(t, solution.Satisfies(formula))
	}
}

func TestWalkSATReproducibleWithSeed(t *testing.T) {
	//** Arrange
	formula := GeneratePlantedInstance(15, 30)
	options := DefaultWalkSATOptions()
	options.Seed = 7

	//** Act
	first, err := NewWalkSATSolverWithOptions(options).Solve(formula)
	assert.NoError(t, err)
	second, err := NewWalkSATSolverWithOptions(options).Solve(formula)
	assert.NoError(t, err)

	//** Assert
	assert.Equal(t, first, second)
}

func TestWalkSATEmptyClause(t *testing.T) {
	formula := mustFormula(t, 2, []int64{1, 2}, []int64{})

	solution, err := NewWalkSATSolver().Solve(formula)

	assert.NoError(t, err)
	assert.Nil(t, solution)
}

func TestWalkSATGivesUpOnUnsatisfiable(t *testing.T) {
	//** Arrange
	formula := mustFormula(t, 1, []int64{1}, []int64{-1})
	options := WalkSATOptions{MaxFlips: 100, MaxRestarts: 2, NoiseProbability: 0.5, Seed: 1}

	//** Act
	solution, err := NewWalkSATSolverWithOptions(options).Solve(formula)

	//** Assert
	assert.NoError(t, err)
	assert.Nil(t, solution)
}

func TestWalkSATTrivialFormula(t *testing.T) {
	solution, err := NewWalkSATSolver().Solve(&Formula{})

	assert.NoError(t, err)
	assert.NotNil(t, solution)
	assert.Empty(t, solution)
}
