// Package metrics exposes Prometheus counters for voting, course views and
// user snapshot writes. Metrics are served in text format on the configured
// metrics path (default /metrics).
package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Votes counts material vote transitions
	Votes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studx_votes_total",
			Help: "Total number of material votes by direction and resulting transition",
		},
		[]string{"direction", "transition"}, // transition: "neutral_to_liked", "liked_to_neutral", ...
	)

	CourseViews = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "studx_course_views_total",
			Help: "Total number of recorded course views",
		},
	)

	CoursePreferences = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studx_course_preferences_total",
			Help: "Total number of course like/dislike calls",
		},
		[]string{"preference"},
	)

	SnapshotWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studx_snapshot_writes_total",
			Help: "Total number of user snapshot writes by result",
		},
		[]string{"result"}, // "ok", "error"
	)

	Registrations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "studx_registrations_total",
			Help: "Total number of registered users",
		},
	)
)

// RecordVote records one vote transition
func RecordVote(direction, from, to string) {
	Votes.WithLabelValues(strings.ToLower(direction), strings.ToLower(from+"_to_"+to)).Inc()
}

// RecordCourseView records one course view
func RecordCourseView() {
	CourseViews.Inc()
}

// RecordCoursePreference records a like or dislike call
func RecordCoursePreference(preference string) {
	CoursePreferences.WithLabelValues(preference).Inc()
}

// RecordSnapshotWrite records the outcome of a snapshot write
func RecordSnapshotWrite(err error) {
	if err != nil {
		SnapshotWrites.WithLabelValues("error").Inc()
		return
	}
	SnapshotWrites.WithLabelValues("ok").Inc()
}

// RecordRegistration records a new account
func RecordRegistration() {
	Registrations.Inc()
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
