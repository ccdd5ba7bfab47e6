// Package sessioncache persists the candidate profile (job description and
// resume text) so a restarted client can rehydrate without re-uploading. It
// is a convenience cache, never authoritative; the live session remains the
// source of truth.
package sessioncache

import (
	"context"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

const (
	jobKey    = "job"
	resumeKey = "resume"
)

// Store is a Badger-backed profile cache.
type Store struct {
	db *badger.DB
}

func Open(dir string) (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("failed to open profile cache: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) PutProfile(_ context.Context, job, resume string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(jobKey), []byte(job)); err != nil {
			return err
		}
		return txn.Set([]byte(resumeKey), []byte(resume))
	})
	if err != nil {
		return fmt.Errorf("failed to cache profile: %w", err)
	}
	return nil
}

// Profile returns the cached job and resume text. Missing entries come back
// as empty strings.
func (s *Store) Profile(_ context.Context) (job string, resume string, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		var readErr error
		if job, readErr = readString(txn, jobKey); readErr != nil {
			return readErr
		}
		resume, readErr = readString(txn, resumeKey)
		return readErr
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to read cached profile: %w", err)
	}
	return job, resume, nil
}

func (s *Store) Clear(_ context.Context) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(jobKey)); err != nil {
			return err
		}
		return txn.Delete([]byte(resumeKey))
	})
	if err != nil {
		return fmt.Errorf("failed to clear cached profile: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func readString(txn *badger.Txn, key string) (string, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	value, err := item.ValueCopy(nil)
	if err != nil {
		return "", err
	}
	return string(value), nil
}
