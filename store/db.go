package store

import (
	"github.com/tobisalami/studia/internal/models"
)

// DB is the database storage interface. Each Save call rewrites the
// full collection it is given; each Load call returns the collection
// in insertion order.
type DB interface {
	// SaveTasks replaces the persisted task collection
	SaveTasks(tasks []models.Task) error
	// LoadTasks returns the persisted task collection
	LoadTasks() ([]models.Task, error)
	// SaveSessions replaces the persisted session collection
	SaveSessions(sessions []models.Session) error
	// LoadSessions returns the persisted session collection
	LoadSessions() ([]models.Session, error)
	// Close ends the database connection
	Close() error
}
