package sat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseDIMACSFile reads a DIMACS-CNF file into a Formula.
func ParseDIMACSFile(filename string) (*Formula, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer file.Close()

	formula, err := ParseDIMACS(file)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return formula, nil
}

// ParseDIMACS reads DIMACS-CNF text into a Formula. Comment lines (starting
// with "c") and blank lines are skipped anywhere, including before the
// header. Exactly one "p cnf <variables> <clauses>" header must precede all
// clause lines. Clause lines are whitespace-separated non-zero literals
// terminated by a 0 sentinel; the sentinel is discarded. A lone sentinel is a
// valid, always-false empty clause.
func ParseDIMACS(reader io.Reader) (*Formula, error) {
	var formula *Formula
	scanner := bufio.NewScanner(reader)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}

		if formula == nil {
			variables, clauses, err := parseHeader(line)
			if err != nil {
				return nil, err
			}
			formula = &Formula{
				Variables: variables,
				Clauses:   make([]Clause, 0, clauses),
			}
			continue
		}

		literals, err := parseClauseLine(line)
		if err != nil {
			return nil, err
		}
		if err := formula.AddClause(literals); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read input: %w", err)
	}
	if formula == nil {
		return nil, errors.New("no \"p cnf\" header found")
	}
	return formula, nil
}

func parseHeader(line string) (variables int64, clauses int64, err error) {
	parts := strings.Fields(line)
	if len(parts) != 4 || parts[0] != "p" || parts[1] != "cnf" {
		return 0, 0, fmt.Errorf("invalid header line: %q", line)
	}

	variables, err = strconv.ParseInt(parts[2], 10, 64)
	if err != nil || variables < 0 {
		return 0, 0, fmt.Errorf("invalid variable count in header %q", line)
	}
	clauses, err = strconv.ParseInt(parts[3], 10, 64)
	if err != nil || clauses < 0 {
		return 0, 0, fmt.Errorf("invalid clause count in header %q", line)
	}
	return variables, clauses, nil
}

func parseClauseLine(line string) ([]int64, error) {
	parts := strings.Fields(line)
	literals := make([]int64, 0, len(parts))
	for i, part := range parts {
		literal, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid literal %q in clause line %q", part, line)
		}
		if literal == 0 {
			if i != len(parts)-1 {
				return nil, fmt.Errorf("0 terminator before end of clause line %q", line)
			}
			return literals, nil
		}
		literals = append(literals, literal)
	}
	// Tolerate a clause line missing its 0 terminator, as common DIMACS
	// tools do.
	return literals, nil
}
