// Package metrics exposes prometheus instrumentation for the stores.
//
// Persistence is fire-and-forget: a failed sync never blocks or rolls back
// the in-memory mutation that triggered it, so SyncFailures is the only
// place that divergence between memory and durable storage becomes visible.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreMutations counts project-store mutations by operation name.
	StoreMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "consentmap_store_mutations_total",
		Help: "Total project store mutations, labeled by operation.",
	}, []string{"operation"})

	// SessionChanges counts login and logout transitions.
	SessionChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "consentmap_session_changes_total",
		Help: "Total session identity changes, labeled by kind (login/logout).",
	}, []string{"kind"})

	// SyncFailures counts failed writes to durable storage.
	SyncFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "consentmap_persistence_sync_failures_total",
		Help: "Total persistence sync failures (in-memory state kept, durable write lost).",
	})
)
