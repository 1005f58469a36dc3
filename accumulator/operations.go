package accumulator

import (
	"fmt"

	"github.com/cronokirby/saferith"
)

var natOne = new(saferith.Nat).SetUint64(1)

// inverseModOrder returns e's inverse modulo the group order, confirming
// the inverse by multiplying back to one. A failed confirmation means e
// shares a factor with the order.
func (acc *Accumulator) inverseModOrder(e *saferith.Nat) (*saferith.Nat, error) {
	reduced := new(saferith.Nat).Mod(e, acc.order)
	inv := new(saferith.Nat).ModInverse(reduced, acc.order)
	if new(saferith.Nat).ModMul(inv, e, acc.order).Eq(natOne) != 1 {
		return nil, ErrNotInvertible
	}
	return inv, nil
}

// Add issues a membership witness for element: the element-th root of the
// current accumulator value. The stored value is left untouched, so
// witnesses from earlier adds stay valid.
func (acc *Accumulator) Add(element []byte) (Witness, error) {
	e := acc.elementPrime(element)
	inv, err := acc.inverseModOrder(e)
	if err != nil {
		return nil, fmt.Errorf("add %q: %w", element, err)
	}
	return acc.ring.Exp(acc.value, inv), nil
}

// Delete removes element from the accumulated set by replacing the stored
// value with its element-th root. Witnesses issued before the deletion stop
// verifying and must be refreshed with UpdateWitnessOnDeletion. Deleting an
// element that was never added still assigns it an exponent and re-roots
// the value.
func (acc *Accumulator) Delete(element []byte) error {
	e := acc.elementPrime(element)
	inv, err := acc.inverseModOrder(e)
	if err != nil {
		return fmt.Errorf("delete %q: %w", element, err)
	}
	acc.value = acc.ring.Exp(acc.value, inv)
	return nil
}

// Verify reports whether w is a valid membership witness for element
// against the current accumulator value. Elements never seen before are
// assigned a fresh exponent, which fails verification with overwhelming
// probability. Verify never mutates the accumulator value.
func (acc *Accumulator) Verify(element []byte, w Witness) bool {
	e := acc.elementPrime(element)
	computed := acc.ring.Exp(acc.ring.Reduce(w), e)
	acc.observer.ObserveVerify(element, computed, acc.value)
	return computed.Eq(acc.value) == 1
}

// UpdateWitnessOnDeletion refreshes a witness after a deletion: given a
// witness w for element and the element removed by the most recent Delete,
// it returns element's witness against the post-deletion value. If w
// verified before the deletion, the result verifies after it.
func (acc *Accumulator) UpdateWitnessOnDeletion(element []byte, w Witness, deleted []byte) (Witness, error) {
	acc.elementPrime(element) // both arguments resolve through the mapper
	y := acc.elementPrime(deleted)
	inv, err := acc.inverseModOrder(y)
	if err != nil {
		return nil, fmt.Errorf("update witness for %q after deleting %q: %w", element, deleted, err)
	}
	updated := acc.ring.Exp(acc.ring.Reduce(w), inv)
	acc.observer.ObserveWitnessUpdate(element, deleted, updated)
	return updated, nil
}
