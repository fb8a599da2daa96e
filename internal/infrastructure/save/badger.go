package save

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
)

// badgerKey is the key the current save lives under
var badgerKey = []byte("save/current")

// BadgerStore keeps the save in an embedded key-value database
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens (or creates) a store in dir
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open save db: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Load reads the current save
func (b *BadgerStore) Load() (State, error) {
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey)
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return State{}, fmt.Errorf("save db: %w", ErrNoSave)
	}
	if err != nil {
		return State{}, fmt.Errorf("failed to read save db: %w", err)
	}
	return Decode(data)
}

// Save replaces the current save
func (b *BadgerStore) Save(s State) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey, data)
	})
	if err != nil {
		return fmt.Errorf("failed to write save db: %w", err)
	}
	return nil
}

// Close closes the database
func (b *BadgerStore) Close() error {
	return b.db.Close()
}
