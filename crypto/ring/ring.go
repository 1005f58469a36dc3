// Package ring implements arithmetic in the multiplicative ring of integers
// modulo a fixed odd modulus.
package ring

import (
	"crypto/rand"

	"github.com/cronokirby/saferith"
)

// ExpBits is the fixed exponent window scanned by Exp.
const ExpBits = 512

// Ring holds the reduction parameters for a single modulus. Elements are
// natural numbers reduced modulo it; multiplication runs in Montgomery form
// internally.
type Ring struct {
	n *saferith.Modulus
}

// NewRing builds a ring modulo n. The modulus must be odd.
func NewRing(n *saferith.Nat) *Ring {
	return &Ring{n: saferith.ModulusFromNat(n)}
}

// Modulus returns the ring's modulus as a fresh Nat.
func (r *Ring) Modulus() *saferith.Nat {
	return r.n.Nat()
}

// Reduce returns x mod n.
func (r *Ring) Reduce(x *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).Mod(x, r.n)
}

// Mul returns x*y mod n.
func (r *Ring) Mul(x, y *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModMul(x, y, r.n)
}

// Exp returns base^exponent mod n by square-and-multiply: the exponent is
// serialized into a fixed 512-bit window and scanned from the most
// significant bit down to bit zero. Every step multiplies through ModMul,
// which hands back a fully reduced value, so the running result never grows
// past the modulus width. Exponents wider than the window are a caller bug
// and panic.
func (r *Ring) Exp(base, exponent *saferith.Nat) *saferith.Nat {
	if exponent.AnnouncedLen() > ExpBits {
		panic("ring: exponent exceeds the 512-bit window")
	}
	var window [ExpBits / 8]byte
	exponent.FillBytes(window[:])

	result := new(saferith.Nat).SetUint64(1)
	for _, b := range window {
		for bit := 7; bit >= 0; bit-- {
			result.ModMul(result, result, r.n)
			if b>>uint(bit)&1 == 1 {
				result.ModMul(result, base, r.n)
			}
		}
	}
	return result
}

// Random returns a uniformly random ring element in [0, n). It panics if
// the process randomness source is broken.
func (r *Ring) Random() *saferith.Nat {
	x, err := rand.Int(rand.Reader, r.n.Nat().Big())
	if err != nil {
		panic(err)
	}
	return new(saferith.Nat).SetBytes(x.Bytes())
}
