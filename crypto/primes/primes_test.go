package primes

import (
	"math/big"
	"testing"
)

func TestGenerateSafePrime(t *testing.T) {
	p := GenerateSafePrime(32)
	if p.BitLen() != 32 {
		t.Fatalf("bit length = %v, want 32", p.BitLen())
	}
	if !IsPrime(p) {
		t.Fatal("generated value is not prime")
	}

	companion := new(big.Int).Rsh(p, 1)
	if !IsPrime(companion) {
		t.Fatal("companion is not prime")
	}
	back := new(big.Int).Add(new(big.Int).Lsh(companion, 1), big.NewInt(1))
	if back.Cmp(p) != 0 {
		t.Fatal("companion does not reconstruct the prime")
	}
}

func TestIsPrime(t *testing.T) {
	if !IsPrime(big.NewInt(23)) {
		t.Fatal("23 reported composite")
	}
	if IsPrime(big.NewInt(25)) {
		t.Fatal("25 reported prime")
	}
}
