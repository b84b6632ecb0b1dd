package bench

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/limaJavier/dpllsat/pkg/sat"
)

type Verdict int

const (
	satisfiable Verdict = iota
	unsatisfiable
	unknown
)

var verdicts = map[Verdict]string{
	satisfiable:   "satisfiable",
	unsatisfiable: "unsatisfiable",
	unknown:       "unknown",
}

// Result holds the measurements of one solver on one instance.
type Result struct {
	File      string
	Solver    string
	Variables int64
	Clauses   int
	Verdict   Verdict
	Verified  bool
	Matched   bool
	Duration  time.Duration
}

type Runner struct {
	config  Config
	solvers map[string]sat.Solver
}

func NewRunner(config Config) (*Runner, error) {
	constructors := map[string]func(Config) sat.Solver{
		"dpll": func(Config) sat.Solver { return sat.NewDPLLSolver() },
		"vsids": func(Config) sat.Solver {
			return sat.NewDPLLSolverWithHeuristic(sat.NewVSIDSHeuristic())
		},
		"brute": func(Config) sat.Solver { return sat.NewBruteForceSolver() },
		"walksat": func(config Config) sat.Solver {
			return sat.NewWalkSATSolverWithOptions(sat.WalkSATOptions{
				MaxFlips:         config.WalkSAT.MaxFlips,
				MaxRestarts:      config.WalkSAT.MaxRestarts,
				NoiseProbability: config.WalkSAT.NoiseProbability,
				Seed:             config.WalkSAT.Seed,
			})
		},
		"ils": func(config Config) sat.Solver {
			return sat.NewILSSolverWithOptions(sat.ILSOptions{
				MaxIterations:        config.ILS.MaxIterations,
				LocalSearchFlips:     config.ILS.LocalSearchFlips,
				PerturbationStrength: config.ILS.PerturbationStrength,
				NoiseProbability:     config.ILS.NoiseProbability,
				Seed:                 config.ILS.Seed,
			})
		},
	}

	solvers := make(map[string]sat.Solver)
	for _, name := range config.Solvers {
		constructor, ok := constructors[name]
		if !ok {
			return nil, fmt.Errorf("%v is not a valid solver", name)
		}
		solvers[name] = constructor(config)
	}

	return &Runner{config: config, solvers: solvers}, nil
}

// Run solves every .cnf file under the configured data directory with every
// configured solver. Incomplete backends report unknown instead of
// unsatisfiable when they give up.
func (runner *Runner) Run() ([]Result, error) {
	files, err := findInstances(runner.config.DataDir)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(files)*len(runner.solvers))
	for _, file := range files {
		formula, err := sat.ParseDIMACSFile(file)
		if err != nil {
			return nil, fmt.Errorf("cannot parse instance: %w", err)
		}

		matched, err := sat.MatchedSolution(formula)
		if err != nil {
			return nil, fmt.Errorf("matching analysis failed on %v: %w", file, err)
		}

		names := lo.Keys(runner.solvers)
		slices.Sort(names)
		for _, name := range names {
			log.Printf("Benchmarking %v with solver %v", file, name)

			result, err := runner.measure(name, file, formula)
			if err != nil {
				return nil, err
			}
			result.Matched = matched != nil
			results = append(results, result)
		}
	}

	return results, nil
}

func (runner *Runner) measure(name, file string, formula *sat.Formula) (Result, error) {
	start := time.Now()
	solution, err := runner.solvers[name].Solve(formula)
	duration := time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("solver %v failed on %v: %w", name, file, err)
	}

	result := Result{
		File:      file,
		Solver:    name,
		Variables: formula.Variables,
		Clauses:   len(formula.Clauses),
		Duration:  duration,
	}

	if solution == nil {
		// A local-search backend giving up is not a proof of
		// unsatisfiability.
		if runner.solvers[name].Complete() {
			result.Verdict = unsatisfiable
		} else {
			result.Verdict = unknown
		}
		return result, nil
	}

	result.Verdict = satisfiable
	result.Verified = solution.Satisfies(formula)
	return result, nil
}

func findInstances(directory string) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory: %w", err)
	}

	files := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		return path.Join(directory, entry.Name()), strings.HasSuffix(entry.Name(), ".cnf")
	})
	return files, nil
}

// WriteCSV writes the benchmark results to the given file.
func WriteCSV(results []Result, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"File", "Solver", "Variables", "Clauses", "Verdict", "Verified", "Matched", "Duration(ms)"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			result.File,
			result.Solver,
			fmt.Sprintf("%d", result.Variables),
			fmt.Sprintf("%d", result.Clauses),
			verdicts[result.Verdict],
			fmt.Sprintf("%v", result.Verified),
			fmt.Sprintf("%v", result.Matched),
			fmt.Sprintf("%d", result.Duration.Milliseconds()),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	return nil
}
