// Package db implements witness stores that match a common interface.
//
// The accumulator engine never retains the witnesses it issues; the calling
// program does. A WitnessStore is the shape of that duty: raw element bytes
// map to the big-endian bytes of the element's current witness.
package db

// WitnessStore is the interface a calling program uses to retain the
// membership witnesses an accumulator issues.
type WitnessStore interface {
	// GetWitness returns the stored witness for an element, or nil if no
	// witness is stored.
	GetWitness(element []byte) ([]byte, error)
	// PutWitness stages a witness for an element, replacing any previous
	// one.
	PutWitness(element []byte, raw []byte) error
	// DeleteWitness stages removal of an element's witness.
	DeleteWitness(element []byte) error
	// Commit flushes staged writes to the backing store.
	Commit() error
}
