package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/inovacc/cvehunt/internal/model"
)

const (
	boltBucketClones = "clones" // key: UID -> Clone JSON
	boltBucketPaths  = "paths"  // key: Path -> UID
)

var _ Store = (*Bolt)(nil)

type Bolt struct {
	db *bbolt.DB
}

// NewBolt opens (creating if needed) the history database at path
func NewBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open history %s: %w", path, err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketClones)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketPaths)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Close() error {
	return b.db.Close()
}

// SaveClone stores a clone record, assigning UID and ClonedAt when unset.
// A previous record for the same path is replaced.
func (b *Bolt) SaveClone(clone *model.Clone) error {
	if clone == nil {
		return errors.New("clone is required")
	}

	if clone.Path == "" {
		return errors.New("clone path is required")
	}

	if clone.UID == "" {
		clone.UID = uuid.New().String()
	}

	if clone.ClonedAt.IsZero() {
		clone.ClonedAt = time.Now()
	}

	data, err := json.Marshal(clone)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		var (
			clones = tx.Bucket([]byte(boltBucketClones))
			paths  = tx.Bucket([]byte(boltBucketPaths))
		)

		if old := paths.Get([]byte(clone.Path)); old != nil && string(old) != clone.UID {
			if err := clones.Delete(old); err != nil {
				return err
			}
		}

		if err := clones.Put([]byte(clone.UID), data); err != nil {
			return err
		}

		return paths.Put([]byte(clone.Path), []byte(clone.UID))
	})
}

// ListClones returns all clone records, newest first
func (b *Bolt) ListClones() ([]model.Clone, error) {
	var clones []model.Clone

	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketClones))

		return bucket.ForEach(func(_, v []byte) error {
			var clone model.Clone
			if err := json.Unmarshal(v, &clone); err != nil {
				return err
			}

			clones = append(clones, clone)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(clones, func(i, j int) bool {
		return clones[i].ClonedAt.After(clones[j].ClonedAt)
	})

	return clones, nil
}
