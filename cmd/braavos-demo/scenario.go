package main

import (
	"fmt"
	"log"
	"time"

	"github.com/cronokirby/saferith"

	"github.com/Bren2010/braavos/accumulator"
	"github.com/Bren2010/braavos/db"
)

// instrument runs fn and records its duration and outcome under the given
// operation kind.
func instrument(kind string, fn func() error) error {
	start := time.Now()
	err := fn()
	accumulatorOps.WithLabelValues(kind, fmt.Sprint(err == nil)).Inc()
	accumulatorOpDur.WithLabelValues(kind).Observe(float64(time.Since(start).Microseconds()))
	return err
}

func addAndStore(acc *accumulator.Accumulator, store db.WitnessStore, element string) error {
	var w accumulator.Witness
	err := instrument("add", func() (err error) {
		w, err = acc.Add([]byte(element))
		return err
	})
	if err != nil {
		return fmt.Errorf("add %v: %w", element, err)
	}
	if err := store.PutWitness([]byte(element), w.Bytes()); err != nil {
		return err
	}
	log.Printf("Added %v.", element)
	return nil
}

func deleteElement(acc *accumulator.Accumulator, store db.WitnessStore, element string) error {
	err := instrument("delete", func() error {
		return acc.Delete([]byte(element))
	})
	if err != nil {
		return fmt.Errorf("delete %v: %w", element, err)
	}
	if err := store.DeleteWitness([]byte(element)); err != nil {
		return err
	}
	log.Printf("Deleted %v.", element)
	return nil
}

func storedWitness(store db.WitnessStore, element string) (accumulator.Witness, error) {
	raw, err := store.GetWitness([]byte(element))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("no stored witness for %v", element)
	}
	return new(saferith.Nat).SetBytes(raw), nil
}

func verifyWitness(acc *accumulator.Accumulator, element string, w accumulator.Witness, want bool) error {
	start := time.Now()
	ok := acc.Verify([]byte(element), w)
	accumulatorOps.WithLabelValues("verify", fmt.Sprint(ok)).Inc()
	accumulatorOpDur.WithLabelValues("verify").Observe(float64(time.Since(start).Microseconds()))

	if ok != want {
		return fmt.Errorf("verify(%v) = %v, want %v", element, ok, want)
	}
	log.Printf("Verified %v: %v.", element, ok)
	return nil
}

func verifyStored(acc *accumulator.Accumulator, store db.WitnessStore, element string, want bool) error {
	w, err := storedWitness(store, element)
	if err != nil {
		return err
	}
	return verifyWitness(acc, element, w, want)
}

func refreshWitness(acc *accumulator.Accumulator, store db.WitnessStore, element, deleted string) error {
	w, err := storedWitness(store, element)
	if err != nil {
		return err
	}
	var updated accumulator.Witness
	err = instrument("update-witness", func() (err error) {
		updated, err = acc.UpdateWitnessOnDeletion([]byte(element), w, []byte(deleted))
		return err
	})
	if err != nil {
		return fmt.Errorf("update witness for %v: %w", element, err)
	}
	if err := store.PutWitness([]byte(element), updated.Bytes()); err != nil {
		return err
	}
	log.Printf("Refreshed witness for %v after deleting %v.", element, deleted)
	return nil
}

// runScenario walks the accumulator through a scripted sequence of adds,
// deletions, verifications, and witness refreshes. Every issued witness
// goes through the store, the way a real caller would retain them. The
// sequence is self-contained: repeated runs against the same accumulator
// and store pass as well.
func runScenario(acc *accumulator.Accumulator, store db.WitnessStore) error {
	// Case 1: a fresh witness verifies.
	if err := addAndStore(acc, store, "element_x"); err != nil {
		return err
	}
	if err := verifyStored(acc, store, "element_x", true); err != nil {
		return err
	}

	// Case 2: a witness only verifies the element it was issued for.
	if err := addAndStore(acc, store, "element_y"); err != nil {
		return err
	}
	wy, err := storedWitness(store, "element_y")
	if err != nil {
		return err
	}
	if err := verifyWitness(acc, "element_z", wy, false); err != nil {
		return err
	}

	// Case 3: deleting one element invalidates other witnesses.
	wx, err := storedWitness(store, "element_x")
	if err != nil {
		return err
	}
	if err := deleteElement(acc, store, "element_y"); err != nil {
		return err
	}
	if err := verifyWitness(acc, "element_x", wx, false); err != nil {
		return err
	}

	// Case 4: refreshing the witness restores it.
	if err := refreshWitness(acc, store, "element_x", "element_y"); err != nil {
		return err
	}
	if err := verifyStored(acc, store, "element_x", true); err != nil {
		return err
	}

	// Case 5: one deletion, several witnesses to refresh.
	for _, element := range []string{"element_d", "element_e", "element_f"} {
		if err := addAndStore(acc, store, element); err != nil {
			return err
		}
	}
	staleD, err := storedWitness(store, "element_d")
	if err != nil {
		return err
	}
	if err := deleteElement(acc, store, "element_f"); err != nil {
		return err
	}
	for _, element := range []string{"element_d", "element_e"} {
		if err := refreshWitness(acc, store, element, "element_f"); err != nil {
			return err
		}
		if err := verifyStored(acc, store, element, true); err != nil {
			return err
		}
	}
	if err := verifyWitness(acc, "element_d", staleD, false); err != nil {
		return err
	}

	// Case 6: deleting an element invalidates its own witness.
	if err := addAndStore(acc, store, "element_g"); err != nil {
		return err
	}
	wg, err := storedWitness(store, "element_g")
	if err != nil {
		return err
	}
	if err := deleteElement(acc, store, "element_g"); err != nil {
		return err
	}
	if err := verifyWitness(acc, "element_g", wg, false); err != nil {
		return err
	}

	return store.Commit()
}
