package sat

type value int8

const (
	unassigned value = iota
	valueFalse
	valueTrue
)

// Assignment is a tri-state mapping from variable to true, false or
// unassigned. Entry 0 is reserved so variables index directly. A single
// in-progress solve owns the assignment exclusively; it is mutated in place
// as the search moves.
type Assignment struct {
	values []value
}

func NewAssignment(variables int64) *Assignment {
	return &Assignment{values: make([]value, variables+1)}
}

// Variables returns the number of variables the assignment covers.
func (a *Assignment) Variables() int64 {
	return int64(len(a.values)) - 1
}

func (a *Assignment) IsTrue(variable int64) bool {
	return a.values[variable] == valueTrue
}

func (a *Assignment) IsFalse(variable int64) bool {
	return a.values[variable] == valueFalse
}

func (a *Assignment) IsUnassigned(variable int64) bool {
	return a.values[variable] == unassigned
}

func (a *Assignment) Assign(variable int64, v bool) {
	if v {
		a.values[variable] = valueTrue
	} else {
		a.values[variable] = valueFalse
	}
}

func (a *Assignment) Unassign(variable int64) {
	a.values[variable] = unassigned
}

// Flip inverts an assigned variable. Flipping an unassigned variable sets it
// to true.
func (a *Assignment) Flip(variable int64) {
	if a.values[variable] == valueTrue {
		a.values[variable] = valueFalse
	} else {
		a.values[variable] = valueTrue
	}
}

// Clone returns an independent copy of the assignment.
func (a *Assignment) Clone() *Assignment {
	values := make([]value, len(a.values))
	copy(values, a.values)
	return &Assignment{values: values}
}

// Reset returns every variable to unassigned.
func (a *Assignment) Reset() {
	for i := range a.values {
		a.values[i] = unassigned
	}
}

// Complete reports whether every variable holds a concrete value.
func (a *Assignment) Complete() bool {
	for variable := int64(1); variable < int64(len(a.values)); variable++ {
		if a.values[variable] == unassigned {
			return false
		}
	}
	return true
}

// Solution exports the assignment as a list of signed literals, one per
// variable in increasing order. Variables still unassigned export as false.
func (a *Assignment) Solution() Solution {
	solution := make(Solution, 0, len(a.values)-1)
	for variable := int64(1); variable < int64(len(a.values)); variable++ {
		if a.values[variable] == valueTrue {
			solution = append(solution, variable)
		} else {
			solution = append(solution, -variable)
		}
	}
	return solution
}
