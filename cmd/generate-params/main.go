// Command generate-params outputs a fresh safe-prime pair for configuring
// an accumulator.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Bren2010/braavos/accumulator"
	"github.com/Bren2010/braavos/crypto/primes"
)

var bits = flag.Int("bits", 64, "Bit length of each safe prime.")

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	flag.Parse()

	p := primes.GenerateSafePrime(*bits)
	q := primes.GenerateSafePrime(*bits)
	if _, err := accumulator.SetupFromPrimes(p, q); err != nil {
		log.Fatalf("Generated pair failed validation: %v", err)
	}

	fmt.Printf("p: %x\n", p)
	fmt.Printf("q: %x\n", q)
}
