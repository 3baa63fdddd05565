// Package tracker logs study sessions and reports aggregate study
// statistics.
package tracker

import (
	"sort"
	"strings"
	"time"

	"github.com/tobisalami/studia/internal/models"
	"github.com/tobisalami/studia/internal/timeutil"
	"github.com/tobisalami/studia/store"
)

// DefaultRecentLimit is the number of sessions returned by Recent when
// no limit is given.
const DefaultRecentLimit = 5

const minutesInAnHour = 60

// NoSubject is reported as the most-studied subject when no sessions
// have been logged yet.
const NoSubject = "None"

// Stats summarizes the session log. AvgDuration is in minutes and is 0
// when the log is empty.
type Stats struct {
	TotalSessions int
	TotalHours    float64
	AvgDuration   float64
	MostStudied   string
}

// SubjectTime is one entry of the subject breakdown.
type SubjectTime struct {
	Subject string
	Minutes int
}

// Tracker owns the append-only session collection and keeps the
// persisted collection in sync on every mutation.
type Tracker struct {
	db       store.DB
	sessions []models.Session
}

// New loads the persisted session collection and returns a tracker
// over it.
func New(db store.DB) (*Tracker, error) {
	sessions, err := db.LoadSessions()
	if err != nil {
		return nil, err
	}

	return &Tracker{
		db:       db,
		sessions: sessions,
	}, nil
}

// Start records a study session for the subject. Sessions are logged
// after the fact, so the session is complete at creation and its
// actual duration equals the planned duration. The caller is expected
// to have validated that minutes is positive.
func (t *Tracker) Start(subject string, minutes int) (models.Session, error) {
	now := time.Now()

	s := models.Session{
		Subject:         subject,
		PlannedDuration: minutes,
		ActualDuration:  minutes,
		StartTime:       now,
		Date:            timeutil.Date(now),
		Completed:       true,
	}

	t.sessions = append(t.sessions, s)

	return s, t.db.SaveSessions(t.sessions)
}

// Sessions returns every logged session in insertion order.
func (t *Tracker) Sessions() []models.Session {
	sessions := make([]models.Session, len(t.sessions))
	copy(sessions, t.sessions)

	return sessions
}

// BySubject returns the sessions whose subject matches, ignoring case.
func (t *Tracker) BySubject(subject string) []models.Session {
	var sessions []models.Session

	for i := range t.sessions {
		if strings.EqualFold(t.sessions[i].Subject, subject) {
			sessions = append(sessions, t.sessions[i])
		}
	}

	return sessions
}

// Recent returns up to limit sessions ordered by start time, newest
// first. A non-positive limit falls back to DefaultRecentLimit.
func (t *Tracker) Recent(limit int) []models.Session {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	sessions := t.Sessions()

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime.After(sessions[j].StartTime)
	})

	if len(sessions) > limit {
		sessions = sessions[:limit]
	}

	return sessions
}

// Statistics computes aggregate study statistics. The most studied
// subject is the one with the highest session count, with ties broken
// by whichever subject was encountered first.
func (t *Tracker) Statistics() Stats {
	if len(t.sessions) == 0 {
		return Stats{MostStudied: NoSubject}
	}

	var totalMinutes int

	counts := make(map[string]int)

	var order []string

	for i := range t.sessions {
		s := t.sessions[i]

		totalMinutes += s.ActualDuration

		if _, seen := counts[s.Subject]; !seen {
			order = append(order, s.Subject)
		}

		counts[s.Subject]++
	}

	mostStudied := NoSubject

	var best int

	for _, subject := range order {
		if counts[subject] > best {
			best = counts[subject]
			mostStudied = subject
		}
	}

	total := len(t.sessions)

	return Stats{
		TotalSessions: total,
		TotalHours:    float64(totalMinutes) / minutesInAnHour,
		AvgDuration:   float64(totalMinutes) / float64(total),
		MostStudied:   mostStudied,
	}
}

// Breakdown sums the minutes studied per subject, ordered by total
// descending. Subjects with equal totals keep the order in which they
// first appeared in the log.
func (t *Tracker) Breakdown() []SubjectTime {
	totals := make(map[string]int)

	var order []string

	for i := range t.sessions {
		s := t.sessions[i]

		if _, seen := totals[s.Subject]; !seen {
			order = append(order, s.Subject)
		}

		totals[s.Subject] += s.ActualDuration
	}

	breakdown := make([]SubjectTime, 0, len(order))

	for _, subject := range order {
		breakdown = append(breakdown, SubjectTime{
			Subject: subject,
			Minutes: totals[subject],
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Minutes > breakdown[j].Minutes
	})

	return breakdown
}
