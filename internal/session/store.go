// Package session implements the admin login gate and the locally
// persisted session state. The gate is enforced purely in the client
// and is a UI convenience, not a security boundary.
package session

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/interiorpro/adminconsole/internal/domain"
)

// Store persists the session flag and the cached operator profile.
// Both are written and cleared together. Implementations are injected
// so tests can use an in-memory fake.
type Store interface {
	Save(token string, profile domain.Profile) error
	Load() (token string, profile domain.Profile, ok bool, err error)
	Clear() error
}

var (
	sessionBucket = []byte("session")
	tokenKey      = []byte("adminToken")
	profileKey    = []byte("adminUser")
)

// BoltStore keeps the session in a local bbolt database.
type BoltStore struct {
	db *bolt.DB
}

// Open opens (creating if needed) the session database at path.
func Open(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open session db")
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Close() error { return s.db.Close() }

func (s *BoltStore) Save(token string, profile domain.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return errors.Wrap(err, "encode profile")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(sessionBucket)
		if err != nil {
			return err
		}
		if err := b.Put(tokenKey, []byte(token)); err != nil {
			return err
		}
		return b.Put(profileKey, data)
	})
}

func (s *BoltStore) Load() (string, domain.Profile, bool, error) {
	var (
		token   string
		profile domain.Profile
		found   bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionBucket)
		if b == nil {
			return nil
		}
		raw := b.Get(tokenKey)
		if len(raw) == 0 {
			return nil
		}
		token = string(raw)
		if data := b.Get(profileKey); len(data) > 0 {
			if err := json.Unmarshal(data, &profile); err != nil {
				return errors.Wrap(err, "decode profile")
			}
		}
		found = true
		return nil
	})
	if err != nil {
		return "", domain.Profile{}, false, err
	}
	return token, profile, found, nil
}

func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionBucket)
		if b == nil {
			return nil
		}
		if err := b.Delete(tokenKey); err != nil {
			return err
		}
		return b.Delete(profileKey)
	})
}
