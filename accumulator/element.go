package accumulator

import (
	"github.com/cronokirby/saferith"

	"github.com/Bren2010/braavos/crypto/primes"
)

// elementPrime resolves an element to its prime exponent, generating and
// caching a fresh safe prime on first sight. The exponent for a given
// element is stable for the lifetime of the instance.
func (acc *Accumulator) elementPrime(element []byte) *saferith.Nat {
	if e, ok := acc.elements[string(element)]; ok {
		return e
	}

	// The seed binds the element to this instance's PRF key.
	// TODO: thread the seed into prime generation so that exponents are
	// reproducible from the key; today generation draws fresh randomness
	// and only the cache keeps the mapping stable.
	seed := make([]byte, 0, len(element)+len(acc.prfKey))
	seed = append(seed, element...)
	seed = append(seed, acc.prfKey...)
	_ = seed

	e := new(saferith.Nat).SetBytes(primes.GenerateSafePrime(acc.elemBits).Bytes())
	acc.elements[string(element)] = e
	return e
}
