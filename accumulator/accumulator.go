// Package accumulator implements an RSA-style cryptographic accumulator
// whose manager holds the group order as a trapdoor. The manager can add
// elements, delete elements, and refresh witnesses after deletions;
// verifiers check membership with a single modular exponentiation.
//
// Add computes witnesses without folding new elements into the stored
// accumulator value, so a successful Verify after Add demonstrates a root
// extraction by the trapdoor holder rather than membership in a fixed set.
// Callers that need the stronger dynamic-accumulator guarantee must track
// the accumulated set externally.
//
// An instance has a single logical owner. Callers sharing one across
// goroutines must serialize Add, Delete, Verify, and
// UpdateWitnessOnDeletion: Delete rewrites the accumulator value and every
// operation may grow the element cache.
package accumulator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"

	"github.com/Bren2010/braavos/crypto/primes"
	"github.com/Bren2010/braavos/crypto/ring"
)

var (
	// ErrInvalidSafePrime is returned by setup when a generated or supplied
	// prime fails safe-prime validation.
	ErrInvalidSafePrime = errors.New("prime fails safe-prime validation")
	// ErrNotInvertible is returned when an element's exponent shares a
	// factor with the secret group order.
	ErrNotInvertible = errors.New("element not invertible modulo group order")
	// ErrBezoutIdentity is returned by Bezout when the computed
	// coefficients fail the identity check.
	ErrBezoutIdentity = errors.New("bezout coefficients fail identity check")
)

const (
	// defaultElementBits is the bit length of element exponents.
	defaultElementBits = 256
	// maxPrimeBits caps the trapdoor primes so that exponents inverted
	// modulo the group order fit the exponentiation engine's window.
	maxPrimeBits = ring.ExpBits / 2
	// minSetupBits keeps generated trapdoor primes out of the range where
	// safe-prime search degenerates.
	minSetupBits = 16
	// prfKeySize is the byte length of the per-instance PRF key.
	prfKeySize = 32
)

// Witness is a ring element proving an element's membership. Witnesses are
// returned by Add, consumed and re-produced by UpdateWitnessOnDeletion, and
// checked by Verify. The accumulator does not retain them; callers do.
type Witness = *saferith.Nat

// Accumulator is a trapdoor accumulator instance.
type Accumulator struct {
	ring  *ring.Ring        // multiplicative ring mod n = p*q
	order *saferith.Modulus // secret group order p'*q'
	value *saferith.Nat     // current accumulator value, reduced mod n

	prfKey   []byte
	elements map[string]*saferith.Nat
	elemBits int

	observer Observer
}

// Setup generates a fresh accumulator from two safe primes of the given bit
// length. Lengths outside [16, 256] are rejected: the exponentiation engine
// scans a fixed 512-bit window, which caps the group order's width.
func Setup(bits uint) (*Accumulator, error) {
	if bits < minSetupBits || bits > maxPrimeBits {
		return nil, fmt.Errorf("%w: bit length %d outside [%d, %d]", ErrInvalidSafePrime, bits, minSetupBits, maxPrimeBits)
	}
	p := primes.GenerateSafePrime(int(bits))
	q := primes.GenerateSafePrime(int(bits))
	return newAccumulator(p, q)
}

// SetupFromPrimes builds an accumulator from an externally generated
// safe-prime pair, running the same validation as Setup. The pair is
// expected to be distinct; equality is not checked.
func SetupFromPrimes(p, q *big.Int) (*Accumulator, error) {
	return newAccumulator(new(big.Int).Set(p), new(big.Int).Set(q))
}

func newAccumulator(p, q *big.Int) (*Accumulator, error) {
	if err := validateSafePrime(p); err != nil {
		return nil, err
	}
	if err := validateSafePrime(q); err != nil {
		return nil, err
	}

	pCompanion := new(big.Int).Rsh(p, 1)
	qCompanion := new(big.Int).Rsh(q, 1)
	n := new(big.Int).Mul(p, q)
	order := new(big.Int).Mul(pCompanion, qCompanion)

	r := ring.NewRing(new(saferith.Nat).SetBytes(n.Bytes()))
	base := r.Random()
	value := r.Mul(base, base) // squaring lands the value in the quadratic residues

	prfKey := make([]byte, prfKeySize)
	if _, err := rand.Read(prfKey); err != nil {
		panic(err)
	}

	return &Accumulator{
		ring:     r,
		order:    saferith.ModulusFromNat(new(saferith.Nat).SetBytes(order.Bytes())),
		value:    value,
		prfKey:   prfKey,
		elements: make(map[string]*saferith.Nat),
		elemBits: defaultElementBits,
		observer: noopObserver{},
	}, nil
}

// validateSafePrime confirms that p is prime, that its companion (p-1)/2 is
// prime, and that doubling the companion reconstructs p. Primes of 5 or
// below are rejected because their companions make the group order even,
// which the inverse arithmetic cannot handle.
func validateSafePrime(p *big.Int) error {
	if p.BitLen() > maxPrimeBits {
		return fmt.Errorf("%w: %d-bit prime exceeds %d bits", ErrInvalidSafePrime, p.BitLen(), maxPrimeBits)
	}
	if p.Cmp(big.NewInt(5)) <= 0 {
		return fmt.Errorf("%w: prime too small", ErrInvalidSafePrime)
	}
	if !primes.IsPrime(p) {
		return fmt.Errorf("%w: not prime", ErrInvalidSafePrime)
	}
	companion := new(big.Int).Rsh(p, 1)
	if !primes.IsPrime(companion) {
		return fmt.Errorf("%w: companion factor is not prime", ErrInvalidSafePrime)
	}
	back := new(big.Int).Add(new(big.Int).Lsh(companion, 1), big.NewInt(1))
	if back.Cmp(p) != 0 {
		return fmt.Errorf("%w: companion does not reconstruct the prime", ErrInvalidSafePrime)
	}
	return nil
}

// Value returns a copy of the current accumulator value.
func (acc *Accumulator) Value() *saferith.Nat {
	return acc.value.Clone()
}

// Modulus returns a copy of the public modulus n.
func (acc *Accumulator) Modulus() *saferith.Nat {
	return acc.ring.Modulus()
}
