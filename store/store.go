// Package store persists the task and session collections in a
// BoltDB database.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/tobisalami/studia/internal/models"
)

const (
	taskBucket    = "tasks"
	sessionBucket = "sessions"
)

var errStudiaRunning = errors.New(
	"is studia already running? Only one instance can be active at a time",
)

// Client is a BoltDB database client. Each collection lives in its own
// bucket as JSON records under zero-padded sequence keys, so iterating
// a bucket in key order yields the collection in insertion order.
type Client struct {
	*bolt.DB
}

// seqKey formats a collection index as a fixed-width bucket key.
func seqKey(i int) []byte {
	return fmt.Appendf(nil, "%08d", i)
}

// saveRecords replaces the entire contents of a bucket with the given
// records. Every mutation rewrites the full collection.
func (c *Client) saveRecords(bucket string, records [][]byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(bucket))
		if err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}

		b, err := tx.CreateBucket([]byte(bucket))
		if err != nil {
			return err
		}

		for i, r := range records {
			err = b.Put(seqKey(i), r)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// loadRecords returns every record in a bucket in key order. A missing
// bucket yields an empty result.
func (c *Client) loadRecords(bucket string) ([][]byte, error) {
	var records [][]byte

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return nil
		}

		cur := b.Cursor()

		// values are only valid for the life of the transaction
		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			records = append(records, append([]byte(nil), v...))
		}

		return nil
	})

	return records, err
}

// SaveTasks rewrites the persisted task collection.
func (c *Client) SaveTasks(tasks []models.Task) error {
	records := make([][]byte, len(tasks))

	for i := range tasks {
		b, err := json.Marshal(tasks[i])
		if err != nil {
			return err
		}

		records[i] = b
	}

	return c.saveRecords(taskBucket, records)
}

// LoadTasks returns the persisted task collection in insertion order.
// Records that fail to decode are discarded so that startup never
// fails on bad persisted state.
func (c *Client) LoadTasks() ([]models.Task, error) {
	records, err := c.loadRecords(taskBucket)
	if err != nil {
		return nil, err
	}

	var tasks []models.Task

	for _, r := range records {
		var t models.Task

		if err := json.Unmarshal(r, &t); err != nil {
			continue
		}

		tasks = append(tasks, t)
	}

	return tasks, nil
}

// SaveSessions rewrites the persisted session collection.
func (c *Client) SaveSessions(sessions []models.Session) error {
	records := make([][]byte, len(sessions))

	for i := range sessions {
		b, err := json.Marshal(sessions[i])
		if err != nil {
			return err
		}

		records[i] = b
	}

	return c.saveRecords(sessionBucket, records)
}

// LoadSessions returns the persisted session collection in insertion
// order, discarding records that fail to decode.
func (c *Client) LoadSessions() ([]models.Session, error) {
	records, err := c.loadRecords(sessionBucket)
	if err != nil {
		return nil, err
	}

	var sessions []models.Session

	for _, r := range records {
		var s models.Session

		if err := json.Unmarshal(r, &s); err != nil {
			continue
		}

		sessions = append(sessions, s)
	}

	return sessions, nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errStudiaRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection. An unreadable
// database file is discarded and recreated empty so that corrupted
// persisted state never prevents startup.
func NewClient(pathToDB string) (*Client, error) {
	db, err := openDB(pathToDB)
	if err != nil {
		if errors.Is(err, errStudiaRunning) {
			return nil, err
		}

		if err = os.Remove(pathToDB); err != nil {
			return nil, err
		}

		db, err = openDB(pathToDB)
		if err != nil {
			return nil, err
		}
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(taskBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(sessionBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
