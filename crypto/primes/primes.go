// Package primes provides safe-prime generation and primality testing.
package primes

import (
	"math/big"

	"github.com/privacybydesign/gabi/safeprime"
)

// GenerateSafePrime returns a fresh prime p of the requested bit length such
// that (p-1)/2 is also prime. Generation runs until a suitable prime is
// found; it panics only when the process randomness source is broken.
func GenerateSafePrime(bits int) *big.Int {
	p, err := safeprime.Generate(bits, nil)
	if err != nil {
		panic(err)
	}
	return p.Value()
}

// IsPrime reports whether n is prime with overwhelming probability.
func IsPrime(n *big.Int) bool {
	return n.ProbablyPrime(80)
}
