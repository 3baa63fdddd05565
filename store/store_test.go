package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	bolt "go.etcd.io/bbolt"

	"github.com/tobisalami/studia/internal/models"
	"github.com/tobisalami/studia/internal/testutil"
	"github.com/tobisalami/studia/store"
)

func sampleTasks() []models.Task {
	completedAt := time.Date(2025, 2, 2, 9, 30, 0, 0, time.UTC)

	return []models.Task{
		{
			ID:          "a1b2c3d4",
			Title:       "Read chapter 4",
			Description: "Operating systems",
			Priority:    models.PriorityHigh,
			DueDate:     "2025-03-01",
			CreatedAt:   time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:          "e5f6a7b8",
			Title:       "Flashcards",
			Priority:    models.PriorityLow,
			CreatedAt:   time.Date(2025, 2, 1, 11, 0, 0, 0, time.UTC),
			Completed:   true,
			CompletedAt: &completedAt,
		},
	}
}

func sampleSessions() []models.Session {
	return []models.Session{
		{
			Subject:         "Math",
			PlannedDuration: 45,
			ActualDuration:  45,
			StartTime:       time.Date(2025, 2, 1, 18, 0, 0, 0, time.UTC),
			Date:            "2025-02-01",
			Completed:       true,
		},
		{
			Subject:         "History",
			PlannedDuration: 30,
			ActualDuration:  30,
			StartTime:       time.Date(2025, 2, 2, 19, 0, 0, 0, time.UTC),
			Date:            "2025-02-02",
			Completed:       true,
		},
	}
}

func TestLoadEmpty(t *testing.T) {
	db := testutil.NewDB(t)

	tasks, err := db.LoadTasks()
	assert.NoError(t, err)
	assert.Empty(t, tasks)

	sessions, err := db.LoadSessions()
	assert.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestRoundTrip(t *testing.T) {
	pathToDB := filepath.Join(t.TempDir(), "studia_test.db")

	db, err := store.NewClient(pathToDB)
	if err != nil {
		t.Fatal(err)
	}

	tasks := sampleTasks()
	sessions := sampleSessions()

	assert.NoError(t, db.SaveTasks(tasks))
	assert.NoError(t, db.SaveSessions(sessions))

	if err = db.Close(); err != nil {
		t.Fatal(err)
	}

	db, err = store.NewClient(pathToDB)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	gotTasks, err := db.LoadTasks()
	assert.NoError(t, err)
	assert.Equal(t, tasks, gotTasks)

	gotSessions, err := db.LoadSessions()
	assert.NoError(t, err)
	assert.Equal(t, sessions, gotSessions)
}

func TestRewriteReplacesCollection(t *testing.T) {
	db := testutil.NewDB(t)

	tasks := sampleTasks()

	assert.NoError(t, db.SaveTasks(tasks))
	assert.NoError(t, db.SaveTasks(tasks[:1]))

	got, err := db.LoadTasks()
	assert.NoError(t, err)
	assert.Equal(t, tasks[:1], got)
}

func TestCorruptRecordIsDiscarded(t *testing.T) {
	pathToDB := filepath.Join(t.TempDir(), "studia_test.db")

	db, err := store.NewClient(pathToDB)
	if err != nil {
		t.Fatal(err)
	}

	tasks := sampleTasks()

	assert.NoError(t, db.SaveTasks(tasks))

	if err = db.Close(); err != nil {
		t.Fatal(err)
	}

	// plant a record that is not valid JSON
	raw, err := bolt.Open(pathToDB, 0o600, nil)
	if err != nil {
		t.Fatal(err)
	}

	err = raw.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte("tasks")).Put([]byte("99999999"), []byte("{oops"))
	})
	if err != nil {
		t.Fatal(err)
	}

	if err = raw.Close(); err != nil {
		t.Fatal(err)
	}

	db, err = store.NewClient(pathToDB)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	got, err := db.LoadTasks()
	assert.NoError(t, err)
	assert.Equal(t, tasks, got)
}

func TestCorruptDatabaseIsRecreated(t *testing.T) {
	pathToDB := filepath.Join(t.TempDir(), "studia_test.db")

	err := os.WriteFile(pathToDB, []byte("this is not a bolt database"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	db, err := store.NewClient(pathToDB)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	tasks, err := db.LoadTasks()
	assert.NoError(t, err)
	assert.Empty(t, tasks)
}
