// Package advice turns study statistics into recommendation messages
// using a fixed rule table.
package advice

import (
	"math/rand/v2"

	"github.com/tobisalami/studia/tracker"
)

const (
	maxRecommendations = 5

	// consistency is judged over the most recent sessions
	consistencyWindow         = 7
	minSessionsForConsistency = 3
)

const (
	msgOnboarding = "Start your learning journey! Add your first study session to track your progress."
	msgMomentum   = "Keep building momentum! Try to study consistently for better retention."
	msgLonger     = "Consider longer study sessions (45-60 minutes) for deep focus and better learning."
	msgBreaks     = "Great dedication! Remember to take breaks every 50 minutes to maintain focus."
	msgOptimal    = "Excellent session duration! You're in the optimal learning zone (30-90 minutes)."
	msgDiversify  = "Try diversifying your study topics to develop a well-rounded knowledge base."
	msgDiversity  = "Great subject diversity! Interleaving different topics enhances learning."
	msgConsistent = "Outstanding consistency! Daily practice is the key to mastery."
	msgFrequency  = "Try to study more frequently. Even 20-30 minutes daily is more effective than long, infrequent sessions."
	msgPomodoro   = "Pro tip: Use the Pomodoro Technique - 25 minutes of focused study followed by a 5-minute break."
)

// BestPractices is the pool the filler recommendation is drawn from.
var BestPractices = []string{
	"Review your notes within 24 hours of learning for better retention.",
	"Practice active recall by testing yourself instead of just re-reading.",
	"Teach concepts to others (or explain out loud) to solidify understanding.",
	"Study in a distraction-free environment for maximum focus.",
	"Get adequate sleep (7-9 hours) - it's crucial for memory consolidation.",
	"Stay hydrated and take short breaks to maintain cognitive performance.",
}

// Engine produces recommendations from a read-only view of the
// session log. It keeps no state of its own.
type Engine struct {
	log  *tracker.Tracker
	intn func(n int) int
}

// Option is a function that modifies an Engine.
type Option func(*Engine)

// WithRandInt overrides the random integer source used to pick the
// filler recommendation, which tests use to pin the choice.
func WithRandInt(fn func(n int) int) Option {
	return func(e *Engine) {
		e.intn = fn
	}
}

// New returns an engine reading from the given session log.
func New(log *tracker.Tracker, opts ...Option) *Engine {
	e := &Engine{
		log:  log,
		intn: rand.IntN,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// frequency always yields exactly one message based on how many
// sessions exist and, past five sessions, the average duration.
func (e *Engine) frequency(stats tracker.Stats) string {
	switch {
	case stats.TotalSessions == 0:
		return msgOnboarding
	case stats.TotalSessions < 5:
		return msgMomentum
	case stats.AvgDuration < 30:
		return msgLonger
	case stats.AvgDuration > 90:
		return msgBreaks
	default:
		return msgOptimal
	}
}

// diversity yields a message only when exactly one or at least three
// distinct subjects have been studied.
func (e *Engine) diversity() (string, bool) {
	subjects := len(e.log.Breakdown())

	switch {
	case subjects == 1:
		return msgDiversify, true
	case subjects >= 3:
		return msgDiversity, true
	default:
		return "", false
	}
}

// consistency counts the distinct calendar dates among the most recent
// sessions and yields a message only at the extremes.
func (e *Engine) consistency() (string, bool) {
	recent := e.log.Recent(consistencyWindow)

	dates := make(map[string]struct{})

	for i := range recent {
		dates[recent[i].Date] = struct{}{}
	}

	switch {
	case len(dates) >= 5:
		return msgConsistent, true
	case len(dates) <= 2:
		return msgFrequency, true
	default:
		return "", false
	}
}

// Recommendations evaluates the rule table in fixed order and returns
// up to five messages. The random filler pick is the only
// non-deterministic element.
func (e *Engine) Recommendations() []string {
	var recommendations []string

	stats := e.log.Statistics()

	recommendations = append(recommendations, e.frequency(stats))

	if stats.TotalSessions > 0 {
		if msg, ok := e.diversity(); ok {
			recommendations = append(recommendations, msg)
		}
	}

	if stats.TotalSessions >= minSessionsForConsistency {
		if msg, ok := e.consistency(); ok {
			recommendations = append(recommendations, msg)
		}
	}

	recommendations = append(recommendations, msgPomodoro)

	if len(recommendations) < maxRecommendations {
		recommendations = append(
			recommendations,
			BestPractices[e.intn(len(BestPractices))],
		)
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	return recommendations
}

// NextSubject suggests the subject with the least studied time.
// ok is false when no sessions have been logged.
func (e *Engine) NextSubject() (subject string, ok bool) {
	breakdown := e.log.Breakdown()
	if len(breakdown) == 0 {
		return "", false
	}

	least := breakdown[0]

	for _, st := range breakdown[1:] {
		if st.Minutes < least.Minutes {
			least = st
		}
	}

	return least.Subject, true
}

// OptimalDuration maps the current average session duration to a
// recommended session length in minutes.
func (e *Engine) OptimalDuration() int {
	avg := e.log.Statistics().AvgDuration

	switch {
	case avg == 0:
		return 45
	case avg < 30:
		return 40
	case avg > 90:
		return 60
	default:
		return int(avg)
	}
}
