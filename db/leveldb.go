package db

import (
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
)

func dup(in []byte) []byte {
	out := make([]byte, len(in))
	copy(out, in)
	return out
}

// ldbWitnessStore implements the WitnessStore interface over a LevelDB
// database, buffering writes between commits. A nil value in the buffer
// marks a staged delete.
type ldbWitnessStore struct {
	conn  *leveldb.DB
	batch map[string][]byte
}

// NewLDBWitnessStore opens (or creates) a LevelDB-backed witness store at
// the given path, recovering the database if it was left corrupted.
func NewLDBWitnessStore(file string) (WitnessStore, error) {
	conn, err := leveldb.OpenFile(file, nil)
	if errors.IsCorrupted(err) {
		conn, err = leveldb.RecoverFile(file, nil)
	}
	if err != nil {
		return nil, err
	}
	return &ldbWitnessStore{conn: conn, batch: make(map[string][]byte)}, nil
}

func witnessKey(element []byte) string {
	return "w" + fmt.Sprintf("%x", element)
}

func (ldb *ldbWitnessStore) GetWitness(element []byte) ([]byte, error) {
	key := witnessKey(element)
	if value, ok := ldb.batch[key]; ok {
		if value == nil {
			return nil, nil
		}
		return dup(value), nil
	}
	raw, err := ldb.conn.Get([]byte(key), nil)
	if err == leveldb.ErrNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return raw, nil
}

func (ldb *ldbWitnessStore) PutWitness(element, raw []byte) error {
	if raw == nil {
		return fmt.Errorf("unable to store nil witness")
	}
	ldb.batch[witnessKey(element)] = dup(raw)
	return nil
}

func (ldb *ldbWitnessStore) DeleteWitness(element []byte) error {
	ldb.batch[witnessKey(element)] = nil
	return nil
}

func (ldb *ldbWitnessStore) Commit() error {
	b := new(leveldb.Batch)
	for key, value := range ldb.batch {
		if value == nil {
			b.Delete([]byte(key))
		} else {
			b.Put([]byte(key), value)
		}
	}
	if err := ldb.conn.Write(b, nil); err != nil {
		return err
	}

	ldb.batch = make(map[string][]byte)
	return nil
}
