package quiz

import (
	"github.com/prometheus/client_golang/prometheus"
)

var quizSubmissionsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "quiz_submissions_total",
		Help: "Count of completed preference quiz submissions.",
	},
)

func init() {
	prometheus.MustRegister(quizSubmissionsTotal)
}
