package accumulator

import (
	"errors"
	"testing"

	"github.com/cronokirby/saferith"
)

func TestAddVerifyRoundTrip(t *testing.T) {
	acc := fixture(t)

	w, err := acc.Add([]byte("element_x"))
	if err != nil {
		t.Fatal(err)
	}
	if !acc.Verify([]byte("element_x"), w) {
		t.Fatal("fresh witness failed verification")
	}

	// Witnesses survive the byte round trip callers use to retain them.
	restored := new(saferith.Nat).SetBytes(w.Bytes())
	if !acc.Verify([]byte("element_x"), restored) {
		t.Fatal("witness failed verification after byte round trip")
	}
}

func TestRepeatedAddsCoexist(t *testing.T) {
	acc := fixture(t)

	w1, err := acc.Add([]byte("element_x"))
	if err != nil {
		t.Fatal(err)
	}
	w2, err := acc.Add([]byte("element_x"))
	if err != nil {
		t.Fatal(err)
	}
	if w1.Eq(w2) != 1 {
		t.Fatal("repeated adds issued different witnesses")
	}
	if !acc.Verify([]byte("element_x"), w1) {
		t.Fatal("first witness failed verification")
	}
	if !acc.Verify([]byte("element_x"), w2) {
		t.Fatal("second witness failed verification")
	}
}

func TestVerifyRejectsWrongElement(t *testing.T) {
	acc := randomFixture(t)

	w, err := acc.Add([]byte("element_x"))
	if err != nil {
		t.Fatal(err)
	}
	if acc.Verify([]byte("element_z"), w) {
		t.Fatal("witness for element_x verified element_z")
	}
}

func TestDeleteInvalidatesAndUpdateRestores(t *testing.T) {
	acc := randomFixture(t)

	wx, err := acc.Add([]byte("element_x"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := acc.Add([]byte("element_y")); err != nil {
		t.Fatal(err)
	}
	if err := acc.Delete([]byte("element_y")); err != nil {
		t.Fatal(err)
	}
	if acc.Verify([]byte("element_x"), wx) {
		t.Fatal("stale witness still verifies after a deletion")
	}

	updated, err := acc.UpdateWitnessOnDeletion([]byte("element_x"), wx, []byte("element_y"))
	if err != nil {
		t.Fatal(err)
	}
	if !acc.Verify([]byte("element_x"), updated) {
		t.Fatal("updated witness failed verification")
	}
	if acc.Verify([]byte("element_x"), wx) {
		t.Fatal("stale witness verifies alongside the updated one")
	}
}

func TestDeleteUnknownElementReRoots(t *testing.T) {
	acc := randomFixture(t)

	w, err := acc.Add([]byte("element_x"))
	if err != nil {
		t.Fatal(err)
	}
	if err := acc.Delete([]byte("element_never_added")); err != nil {
		t.Fatal(err)
	}
	if acc.Verify([]byte("element_x"), w) {
		t.Fatal("witness survived an unrelated deletion")
	}
}

func TestNotInvertibleExponentRejected(t *testing.T) {
	acc := fixture(t)
	// 11 divides the fixture group order 253.
	acc.elements["poison"] = new(saferith.Nat).SetUint64(11)

	if _, err := acc.Add([]byte("poison")); !errors.Is(err, ErrNotInvertible) {
		t.Fatalf("Add err = %v, want ErrNotInvertible", err)
	}
	if err := acc.Delete([]byte("poison")); !errors.Is(err, ErrNotInvertible) {
		t.Fatalf("Delete err = %v, want ErrNotInvertible", err)
	}

	w, err := acc.Add([]byte("element_x"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := acc.UpdateWitnessOnDeletion([]byte("element_x"), w, []byte("poison")); !errors.Is(err, ErrNotInvertible) {
		t.Fatalf("UpdateWitnessOnDeletion err = %v, want ErrNotInvertible", err)
	}
}

type recordingObserver struct {
	verifies int
	updates  int
}

func (r *recordingObserver) ObserveVerify([]byte, *saferith.Nat, *saferith.Nat) { r.verifies++ }
func (r *recordingObserver) ObserveWitnessUpdate([]byte, []byte, *saferith.Nat) { r.updates++ }

func TestObserverReceivesEvents(t *testing.T) {
	acc := fixture(t)
	obs := &recordingObserver{}
	acc.SetObserver(obs)

	w, err := acc.Add([]byte("element_x"))
	if err != nil {
		t.Fatal(err)
	}
	acc.Verify([]byte("element_x"), w)
	if err := acc.Delete([]byte("element_y")); err != nil {
		t.Fatal(err)
	}
	if _, err := acc.UpdateWitnessOnDeletion([]byte("element_x"), w, []byte("element_y")); err != nil {
		t.Fatal(err)
	}

	if obs.verifies != 1 {
		t.Fatalf("verify observations = %v, want 1", obs.verifies)
	}
	if obs.updates != 1 {
		t.Fatalf("update observations = %v, want 1", obs.updates)
	}
}

// TestScriptedScenario runs the full demonstration sequence at production
// element-exponent size against 64-bit trapdoor primes.
func TestScriptedScenario(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-size element prime generation")
	}
	acc, err := Setup(64)
	if err != nil {
		t.Fatal(err)
	}

	w1, err := acc.Add([]byte("element_x"))
	if err != nil {
		t.Fatal(err)
	}
	if !acc.Verify([]byte("element_x"), w1) {
		t.Fatal("verify(element_x, w1) = false, want true")
	}
	if _, err := acc.Add([]byte("element_y")); err != nil {
		t.Fatal(err)
	}
	if err := acc.Delete([]byte("element_y")); err != nil {
		t.Fatal(err)
	}
	w1Updated, err := acc.UpdateWitnessOnDeletion([]byte("element_x"), w1, []byte("element_y"))
	if err != nil {
		t.Fatal(err)
	}
	if !acc.Verify([]byte("element_x"), w1Updated) {
		t.Fatal("verify(element_x, w1') = false, want true")
	}
	if acc.Verify([]byte("element_x"), w1) {
		t.Fatal("verify(element_x, w1) = true after deletion, want false")
	}
}
