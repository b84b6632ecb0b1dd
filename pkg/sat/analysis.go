package sat

import (
	"slices"

	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// MatchedSolution looks for a matching in the bipartite clause-variable graph
// that pairs every clause with a distinct variable it mentions. When one
// exists the formula is satisfiable outright: give each matched variable the
// polarity of its literal in the matched clause, and since no two clauses
// share a matched variable every clause ends up satisfied. Unmatched
// variables default to false. A nil solution means no saturating matching
// exists, which proves nothing about satisfiability.
func MatchedSolution(formula *Formula) (Solution, error) {
	variables := lo.RangeFrom(int64(1), int(formula.Variables))
	clauseIndices := lo.Range(len(formula.Clauses))

	neighbors := func(left, right any) (bool, error) {
		clause := formula.Clauses[left.(int)]
		return slices.Contains(clause.Variables(), right.(int64)), nil
	}

	// Transform clause indices and variables to slices of any
	clausesAny := lo.Map(clauseIndices, func(clauseIndex int, _ int) any { return clauseIndex })
	variablesAny := lo.Map(variables, func(variable int64, _ int) any { return variable })

	graph, err := bipartitegraph.NewBipartiteGraph(clausesAny, variablesAny, neighbors)
	if err != nil {
		return nil, err
	}

	matching := graph.LargestMatching()

	// Check the matching saturates the clauses
	if len(matching) < len(formula.Clauses) {
		return nil, nil
	}

	assignment := NewAssignment(formula.Variables)
	for _, edge := range matching {
		clauseIndex, variableIndex := edge.Node1, edge.Node2-len(formula.Clauses)
		clause, variable := formula.Clauses[clauseIndex], variables[variableIndex]

		literal, _ := lo.Find(clause.Literals, func(literal int64) bool { return abs(literal) == variable })
		assignment.Assign(variable, literal > 0)
	}

	return assignment.Solution(), nil
}
