package session

import (
	"sync"
	"time"

	bolt "github.com/boltdb/bolt"
)

const (
	bucketName = "session"
	tokenKey   = "adminToken"
)

// Persister holds the single durable value the storefront keeps: the admin token.
type Persister interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// BoltStore keeps the token in an embedded BoltDB file under a fixed key.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the session file at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Load returns the stored token, or "" when nobody is signed in.
func (s *BoltStore) Load() (string, error) {
	var token string
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(tokenKey)); v != nil {
			token = string(v)
		}
		return nil
	})
	return token, err
}

func (s *BoltStore) Save(token string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(tokenKey), []byte(token))
	})
}

func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(tokenKey))
	})
}

// MemoryStore is a Persister that forgets the token when the process exits.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func (m *MemoryStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) Clear() error {
	return m.Save("")
}
