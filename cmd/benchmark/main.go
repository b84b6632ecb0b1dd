package main

import (
	"flag"
	"log"

	"github.com/limaJavier/dpllsat/internal/bench"
)

func main() {
	configPtr := flag.String("config", "bench.json", "Path to the benchmark configuration file")
	flag.Parse()

	config, err := bench.LoadConfig(*configPtr)
	if err != nil {
		log.Fatalf("cannot load benchmark config: %v", err)
	}

	runner, err := bench.NewRunner(config)
	if err != nil {
		log.Fatalf("cannot initialize benchmark runner: %v", err)
	}

	results, err := runner.Run()
	if err != nil {
		log.Fatalf("an error occurred during the benchmark: %v", err)
	}

	if err := bench.WriteCSV(results, config.Output); err != nil {
		log.Fatalf("cannot write benchmark results: %v", err)
	}

	log.Printf("Wrote %v results to %v", len(results), config.Output)
}
