package sat

import "math/rand/v2"

// GenerateInstance builds a random CNF instance: each clause includes each
// variable with probability 1/2 under a random polarity, and never comes out
// empty.
func GenerateInstance(variables int64, clauses int) *Formula {
	formula := &Formula{
		Variables: variables,
		Clauses:   make([]Clause, 0, clauses),
	}

	for range clauses {
		literals := make([]int64, 0, variables)
		for variable := int64(1); variable <= variables; variable++ {
			if rand.Float32() < 0.5 {
				var sign int64 = 1
				if rand.Float32() < 0.5 {
					sign = -1
				}
				literals = append(literals, sign*variable)
			}
		}

		if len(literals) == 0 {
			var sign int64 = 1
			if rand.Float32() < 0.5 {
				sign = -1
			}
			literals = append(literals, sign*(1+rand.Int64N(variables)))
		}

		formula.Clauses = append(formula.Clauses, Clause{Literals: literals})
	}

	return formula
}

// GeneratePlantedInstance builds a random 3-CNF instance guaranteed
// satisfiable: a hidden assignment is drawn first and every clause is forced
// to contain at least one literal that agrees with it.
func GeneratePlantedInstance(variables int64, clauses int) *Formula {
	planted := make([]bool, variables+1)
	for variable := int64(1); variable <= variables; variable++ {
		planted[variable] = rand.IntN(2) == 0
	}

	formula := &Formula{
		Variables: variables,
		Clauses:   make([]Clause, 0, clauses),
	}

	for range clauses {
		literals := make([]int64, 0, 3)
		for len(literals) < 3 {
			variable := 1 + rand.Int64N(variables)
			var sign int64 = 1
			if rand.IntN(2) == 0 {
				sign = -1
			}
			literals = append(literals, sign*variable)
		}

		// Force one literal to agree with the planted assignment.
		variable := abs(literals[0])
		if planted[variable] {
			literals[0] = variable
		} else {
			literals[0] = -variable
		}

		formula.Clauses = append(formula.Clauses, Clause{Literals: literals})
	}

	return formula
}
