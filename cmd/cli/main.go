package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/limaJavier/dpllsat/pkg/sat"
)

const (
	exitSatisfiable   = 10
	exitUnsatisfiable = 20
)

var (
	validSolvers    = []string{"dpll", "walksat", "ils", "brute"}
	validHeuristics = []string{"first", "vsids"}
	heuristics      = map[string]func() sat.DecisionHeuristic{
		"first": sat.NewFirstUnassignedHeuristic,
		"vsids": sat.NewVSIDSHeuristic,
	}
)

func main() {
	// Define arguments
	solverPtr := flag.String("solver", "dpll", "Solver to use. Allowed values are: \"dpll\", \"walksat\", \"ils\", \"brute\", where \"dpll\" is the default")
	heuristicPtr := flag.String("heuristic", "first", "Decision heuristic for the dpll solver. Allowed values are: \"first\" (lowest-numbered unassigned variable) and \"vsids\", where \"first\" is the default")
	filePathPtr := flag.String("file", "", "Path to the DIMACS-CNF input file")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	verifyPtr := flag.Bool("verify", false, "Re-check the model against the formula before reporting it")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)
	heuristicStr := strings.ToLower(*heuristicPtr)
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if _, ok := heuristics[heuristicStr]; !ok {
		log.Fatalf("%v is not a valid heuristic: allowed values are %v", heuristicStr, validHeuristics)
	} else if filePath == "" {
		log.Fatal("an input file must be specified")
	}

	solvers := map[string]func() sat.Solver{
		"dpll": func() sat.Solver {
			return sat.NewDPLLSolverWithHeuristic(heuristics[heuristicStr]())
		},
		"walksat": sat.NewWalkSATSolver,
		"ils":     sat.NewILSSolver,
		"brute":   sat.NewBruteForceSolver,
	}
	constructor, ok := solvers[solverStr]
	if !ok {
		log.Fatalf("%v is not a valid solver: allowed values are %v", solverStr, validSolvers)
	}

	// Extract formula
	formula, err := sat.ParseDIMACSFile(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	// Solve
	solver := constructor()
	solution, err := solver.Solve(formula)
	if err != nil {
		log.Fatalf("an error occurred while solving: %v", err)
	}

	if solution == nil {
		// A local-search backend giving up proves nothing; the complete
		// backends prove unsatisfiability by exhaustion.
		if !solver.Complete() {
			report("s UNKNOWN\n", outFile)
			return
		}
		report("s UNSATISFIABLE\n", outFile)
		os.Exit(exitUnsatisfiable)
	}

	if *verifyPtr && !solution.Satisfies(formula) {
		log.Fatalf("solver %v produced a model that does not satisfy the formula", solverStr)
	}

	var builder strings.Builder
	builder.WriteString("s SATISFIABLE\nv ")
	for _, literal := range solution {
		fmt.Fprintf(&builder, "%d ", literal)
	}
	builder.WriteString("0\n")

	report(builder.String(), outFile)
	os.Exit(exitSatisfiable)
}

func report(output, outFile string) {
	if outFile == "" {
		fmt.Print(output)
		return
	}
	if err := os.WriteFile(outFile, []byte(output), 0666); err != nil {
		log.Fatalf("an error occurred while writing to the output file: %v", err)
	}
}
