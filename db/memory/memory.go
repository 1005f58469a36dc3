// Package memory provides an in-memory implementation of the witness store.
package memory

import (
	"errors"
	"fmt"
)

func dup(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// WitnessStore keeps witnesses in a map, for tests and ephemeral runs.
type WitnessStore struct {
	Data map[string][]byte
}

func NewWitnessStore() *WitnessStore {
	return &WitnessStore{Data: make(map[string][]byte)}
}

func (ws *WitnessStore) GetWitness(element []byte) ([]byte, error) {
	return dup(ws.Data[fmt.Sprintf("%x", element)]), nil
}

func (ws *WitnessStore) PutWitness(element, raw []byte) error {
	if raw == nil {
		return errors.New("unable to store nil witness")
	}
	ws.Data[fmt.Sprintf("%x", element)] = dup(raw)
	return nil
}

func (ws *WitnessStore) DeleteWitness(element []byte) error {
	delete(ws.Data, fmt.Sprintf("%x", element))
	return nil
}

func (ws *WitnessStore) Commit() error { return nil }
