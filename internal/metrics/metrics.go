package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Open outcomes.
const (
	OutcomeCompleted    = "completed"
	OutcomeDenied       = "denied"
	OutcomeRefunded     = "refunded"
	OutcomeRecordFailed = "record_failed"
	OutcomeReplayed     = "replayed"
)

var (
	OpensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "caseforge_opens_total",
			Help: "Case open requests by final outcome.",
		},
		[]string{"outcome"},
	)

	DropsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "caseforge_drops_total",
			Help: "Items dropped by rarity tier.",
		},
		[]string{"rarity"},
	)

	ReconcileActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "caseforge_reconcile_actions_total",
			Help: "Repairs applied by the reconciliation worker.",
		},
		[]string{"action"},
	)

	EventsPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "caseforge_drop_events_published_total",
			Help: "Drop events handed to the notification sink.",
		},
	)
)
