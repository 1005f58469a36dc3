package accumulator

import "math/big"

var bigOne = big.NewInt(1)

// Bezout computes coefficients s, t with a*s + b*t = 1 modulo the group
// order, normalizing both into [0, order). It returns ErrBezoutIdentity
// when the identity fails to hold after normalization, which happens when
// the inputs share a factor that does not reduce to one modulo the order
// (in particular when both are zero). Bezout is self-contained and is not
// used by the accumulator operations, which invert through the ring's
// arithmetic instead.
func (acc *Accumulator) Bezout(a, b *big.Int) (s, t *big.Int, err error) {
	order := acc.order.Nat().Big()

	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, curS := big.NewInt(1), big.NewInt(0)
	oldT, curT := big.NewInt(0), big.NewInt(1)
	for r.Sign() != 0 {
		quo := new(big.Int).Div(oldR, r)
		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(quo, r))
		oldS, curS = curS, new(big.Int).Sub(oldS, new(big.Int).Mul(quo, curS))
		oldT, curT = curT, new(big.Int).Sub(oldT, new(big.Int).Mul(quo, curT))
	}

	s = new(big.Int).Mod(oldS, order)
	t = new(big.Int).Mod(oldT, order)

	check := new(big.Int).Mul(a, s)
	check.Add(check, new(big.Int).Mul(b, t))
	check.Mod(check, order)
	if check.Cmp(bigOne) != 0 {
		return nil, nil, ErrBezoutIdentity
	}
	return s, t, nil
}
