package memory

import (
	"bytes"
	"testing"
)

func TestWitnessStoreRoundTrip(t *testing.T) {
	store := NewWitnessStore()

	if raw, err := store.GetWitness([]byte("element_x")); err != nil {
		t.Fatal(err)
	} else if raw != nil {
		t.Fatalf("fresh store returned witness %v", raw)
	}

	if err := store.PutWitness([]byte("element_x"), []byte{4, 5, 6}); err != nil {
		t.Fatal(err)
	}
	raw, err := store.GetWitness([]byte("element_x"))
	if err != nil {
		t.Fatal(err)
	} else if !bytes.Equal(raw, []byte{4, 5, 6}) {
		t.Fatalf("witness = %v, want [4 5 6]", raw)
	}

	// Mutating the returned slice must not reach the store.
	raw[0] = 99
	if again, _ := store.GetWitness([]byte("element_x")); !bytes.Equal(again, []byte{4, 5, 6}) {
		t.Fatalf("stored witness mutated to %v", again)
	}

	if err := store.DeleteWitness([]byte("element_x")); err != nil {
		t.Fatal(err)
	}
	if raw, _ := store.GetWitness([]byte("element_x")); raw != nil {
		t.Fatalf("deleted witness still returns %v", raw)
	}
}
