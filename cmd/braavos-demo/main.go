// Command braavos-demo exercises a trapdoor accumulator end to end: it
// adds elements, deletes some, refreshes the surviving witnesses, and
// checks every expected outcome, logging each step.
package main

import (
	"flag"
	"log"

	"github.com/cronokirby/saferith"

	"github.com/Bren2010/braavos/accumulator"
	"github.com/Bren2010/braavos/db"
	"github.com/Bren2010/braavos/db/memory"
)

var (
	configFile = flag.String("config", "", "Location of config file.")
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.LUTC)
	flag.Parse()

	// Load config from disk.
	if *configFile == "" {
		log.Fatalf("No config file provided, see --help.")
	}
	config, err := ReadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}

	// Start the metrics server.
	if config.MetricsAddr != "" {
		go metrics(config.MetricsAddr)
	}

	// Build the accumulator and the witness store behind it.
	acc, err := setupAccumulator(config)
	if err != nil {
		log.Fatalf("Failed to set up accumulator: %v", err)
	}
	acc.SetObserver(logObserver{})

	var store db.WitnessStore
	if config.DatabaseFile != "" {
		store, err = db.NewLDBWitnessStore(config.DatabaseFile)
		if err != nil {
			log.Fatalf("Failed to open witness database: %v", err)
		}
	} else {
		store = memory.NewWitnessStore()
	}

	for i := 0; i < config.Loop; i++ {
		if err := runScenario(acc, store); err != nil {
			log.Fatalf("Demonstration failed: %v", err)
		}
	}
	log.Println("Demonstration completed successfully.")
}

func setupAccumulator(config *Config) (*accumulator.Accumulator, error) {
	if config.p != nil {
		return accumulator.SetupFromPrimes(config.p, config.q)
	}
	return accumulator.Setup(config.PrimeBits)
}

// logObserver logs the intermediate values the accumulator computes, in
// place of debug printing inside the engine.
type logObserver struct{}

func (logObserver) ObserveVerify(element []byte, computed, current *saferith.Nat) {
	log.Printf("verify %q: computed=%v current=%v", element, computed.Big(), current.Big())
}

func (logObserver) ObserveWitnessUpdate(element, deleted []byte, updated *saferith.Nat) {
	log.Printf("update %q after deleting %q: witness=%v", element, deleted, updated.Big())
}
