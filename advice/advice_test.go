package advice_test

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tobisalami/studia/advice"
	"github.com/tobisalami/studia/internal/models"
	"github.com/tobisalami/studia/internal/testutil"
	"github.com/tobisalami/studia/tracker"
)

const (
	onboardingMsg = "Start your learning journey! Add your first study session to track your progress."
	momentumMsg   = "Keep building momentum! Try to study consistently for better retention."
	longerMsg     = "Consider longer study sessions (45-60 minutes) for deep focus and better learning."
	breaksMsg     = "Great dedication! Remember to take breaks every 50 minutes to maintain focus."
	optimalMsg    = "Excellent session duration! You're in the optimal learning zone (30-90 minutes)."
	diversifyMsg  = "Try diversifying your study topics to develop a well-rounded knowledge base."
	diversityMsg  = "Great subject diversity! Interleaving different topics enhances learning."
	consistentMsg = "Outstanding consistency! Daily practice is the key to mastery."
	frequencyMsg  = "Try to study more frequently. Even 20-30 minutes daily is more effective than long, infrequent sessions."
	pomodoroMsg   = "Pro tip: Use the Pomodoro Technique - 25 minutes of focused study followed by a 5-minute break."
)

func session(subject string, minutes int, start time.Time) models.Session {
	return models.Session{
		Subject:         subject,
		PlannedDuration: minutes,
		ActualDuration:  minutes,
		StartTime:       start,
		Date:            start.Format(time.DateOnly),
		Completed:       true,
	}
}

// newEngine seeds a store with the given sessions and returns an
// engine with its random source pinned to the pool's first entry.
func newEngine(t *testing.T, sessions []models.Session) *advice.Engine {
	t.Helper()

	db := testutil.NewDB(t)

	if err := db.SaveSessions(sessions); err != nil {
		t.Fatal(err)
	}

	log, err := tracker.New(db)
	if err != nil {
		t.Fatal(err)
	}

	return advice.New(log, advice.WithRandInt(func(int) int { return 0 }))
}

// sameDay returns n sessions for the subjects, one per hour on a
// single calendar date.
func sameDay(minutes int, subjects ...string) []models.Session {
	start := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)

	sessions := make([]models.Session, len(subjects))
	for i, subject := range subjects {
		sessions[i] = session(
			subject,
			minutes,
			start.Add(time.Duration(i)*time.Hour),
		)
	}

	return sessions
}

// spreadDays returns one session per calendar date for the subjects.
func spreadDays(minutes int, subjects ...string) []models.Session {
	start := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)

	sessions := make([]models.Session, len(subjects))
	for i, subject := range subjects {
		sessions[i] = session(subject, minutes, start.AddDate(0, 0, i))
	}

	return sessions
}

func TestRecommendationsNoSessions(t *testing.T) {
	e := newEngine(t, nil)

	got := e.Recommendations()

	assert.Len(t, got, 3)
	assert.Equal(t, onboardingMsg, got[0])
	assert.Equal(t, pomodoroMsg, got[1])
	assert.Contains(t, advice.BestPractices, got[2])
}

func TestFrequencyRule(t *testing.T) {
	cases := []struct {
		name     string
		sessions []models.Session
		want     string
	}{
		{
			name:     "few sessions build momentum",
			sessions: sameDay(60, "Math", "Math"),
			want:     momentumMsg,
		},
		{
			name:     "short average suggests longer sessions",
			sessions: sameDay(20, "Math", "Math", "Math", "Math", "Math"),
			want:     longerMsg,
		},
		{
			name:     "long average suggests breaks",
			sessions: sameDay(120, "Math", "Math", "Math", "Math", "Math"),
			want:     breaksMsg,
		},
		{
			name:     "optimal zone",
			sessions: sameDay(60, "Math", "Math", "Math", "Math", "Math"),
			want:     optimalMsg,
		},
		{
			name:     "lower bound is inclusive",
			sessions: sameDay(30, "Math", "Math", "Math", "Math", "Math"),
			want:     optimalMsg,
		},
		{
			name:     "upper bound is inclusive",
			sessions: sameDay(90, "Math", "Math", "Math", "Math", "Math"),
			want:     optimalMsg,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEngine(t, tc.sessions)

			got := e.Recommendations()

			assert.Equal(t, tc.want, got[0])
		})
	}
}

func TestDiversityRule(t *testing.T) {
	singleSubject := newEngine(t, sameDay(60, "Math")).Recommendations()
	assert.Contains(t, singleSubject, diversifyMsg)

	twoSubjects := newEngine(t, sameDay(60, "Math", "History")).Recommendations()
	assert.NotContains(t, twoSubjects, diversifyMsg)
	assert.NotContains(t, twoSubjects, diversityMsg)

	threeSubjects := newEngine(
		t,
		sameDay(60, "Math", "History", "Biology"),
	).Recommendations()
	assert.Contains(t, threeSubjects, diversityMsg)
}

func TestConsistencyRule(t *testing.T) {
	spread := newEngine(
		t,
		spreadDays(60, "Math", "Math", "Math", "Math", "Math"),
	).Recommendations()
	assert.Contains(t, spread, consistentMsg)

	clustered := newEngine(
		t,
		sameDay(60, "Math", "Math", "Math", "Math"),
	).Recommendations()
	assert.Contains(t, clustered, frequencyMsg)

	middling := newEngine(t, slices.Concat(
		spreadDays(60, "Math", "Math", "Math"),
		sameDay(60, "Math"),
	)).Recommendations()
	assert.NotContains(t, middling, consistentMsg)
	assert.NotContains(t, middling, frequencyMsg)

	// fewer than three sessions never triggers the rule
	few := newEngine(t, sameDay(60, "Math", "Math")).Recommendations()
	assert.NotContains(t, few, consistentMsg)
	assert.NotContains(t, few, frequencyMsg)
}

func TestRecommendationsCapped(t *testing.T) {
	// optimal + diversity + consistency + tip + filler
	sessions := spreadDays(60, "Math", "History", "Biology", "Math", "History")

	got := newEngine(t, sessions).Recommendations()

	assert.Len(t, got, 5)
	assert.Equal(t, optimalMsg, got[0])
	assert.Equal(t, diversityMsg, got[1])
	assert.Equal(t, consistentMsg, got[2])
	assert.Equal(t, pomodoroMsg, got[3])
	assert.Contains(t, advice.BestPractices, got[4])
}

func TestFillerDrawnFromPool(t *testing.T) {
	db := testutil.NewDB(t)

	log, err := tracker.New(db)
	if err != nil {
		t.Fatal(err)
	}

	for i := range advice.BestPractices {
		e := advice.New(log, advice.WithRandInt(func(int) int { return i }))

		got := e.Recommendations()

		assert.Equal(t, advice.BestPractices[i], got[len(got)-1])
	}
}

func TestNextSubject(t *testing.T) {
	e := newEngine(t, nil)

	_, ok := e.NextSubject()
	assert.False(t, ok)

	start := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)

	e = newEngine(t, []models.Session{
		session("Math", 90, start),
		session("Math", 90, start.Add(time.Hour)),
		session("History", 20, start.Add(2*time.Hour)),
	})

	subject, ok := e.NextSubject()
	assert.True(t, ok)
	assert.Equal(t, "History", subject)
}

func TestNextSubjectTieBreak(t *testing.T) {
	start := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)

	e := newEngine(t, []models.Session{
		session("Physics", 30, start),
		session("Chemistry", 30, start.Add(time.Hour)),
	})

	subject, ok := e.NextSubject()
	assert.True(t, ok)
	assert.Equal(t, "Physics", subject)
}

func TestOptimalDuration(t *testing.T) {
	cases := []struct {
		name     string
		sessions []models.Session
		want     int
	}{
		{
			name: "no sessions defaults to 45",
			want: 45,
		},
		{
			name:     "short average nudges upward",
			sessions: sameDay(20, "Math"),
			want:     40,
		},
		{
			name:     "long average recommends shorter sessions",
			sessions: sameDay(120, "Math"),
			want:     60,
		},
		{
			name:     "average in the optimal zone is kept",
			sessions: sameDay(50, "Math"),
			want:     50,
		},
		{
			name: "fractional average truncates toward zero",
			sessions: []models.Session{
				session("Math", 40, time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)),
				session("Math", 51, time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)),
			},
			want: 45,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEngine(t, tc.sessions)

			assert.Equal(t, tc.want, e.OptimalDuration())
		})
	}
}
