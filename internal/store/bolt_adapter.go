package store

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

var sessionsBucket = []byte("sessions")

// BoltAdapter persists session state to a local bbolt file so carts survive a
// storefront restart. One bucket, one JSON value per session.
type BoltAdapter struct {
	db *bolt.DB
}

func NewBoltAdapter(path string) (*BoltAdapter, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init session store: %w", err)
	}
	return &BoltAdapter{db: db}, nil
}

func (b *BoltAdapter) Load(sessionID string) (*State, error) {
	if sessionID == "" {
		return nil, errNoSession
	}
	var st *State
	err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(sessionsBucket).Get([]byte(sessionID))
		if raw == nil {
			return nil
		}
		st = &State{}
		return json.Unmarshal(raw, st)
	})
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	return st, nil
}

func (b *BoltAdapter) Save(sessionID string, st *State) error {
	if sessionID == "" {
		return errNoSession
	}
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionsBucket).Put([]byte(sessionID), raw)
	})
}

func (b *BoltAdapter) Delete(sessionID string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionsBucket).Delete([]byte(sessionID))
	})
}

func (b *BoltAdapter) Close() error {
	return b.db.Close()
}
