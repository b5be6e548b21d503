// Package metrics exposes prometheus counters for the persistence layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SavesTotal counts bulk saves by outcome ("ok" or "error").
	SavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aura",
			Name:      "persist_saves_total",
			Help:      "Bulk state saves by outcome.",
		},
		[]string{"outcome"},
	)

	// LoadsTotal counts bulk loads by outcome ("found" or "empty").
	LoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aura",
			Name:      "persist_loads_total",
			Help:      "Bulk state loads by outcome.",
		},
		[]string{"outcome"},
	)

	// CollectionFallbacksTotal counts stored collections discarded for their
	// in-memory default during load.
	CollectionFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aura",
			Name:      "persist_collection_fallbacks_total",
			Help:      "Stored collections discarded as malformed during load.",
		},
		[]string{"collection"},
	)

	// ImportsTotal counts backup imports by outcome
	// ("ok", "parse_error", "validation_error").
	ImportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aura",
			Name:      "backup_imports_total",
			Help:      "Backup imports by outcome.",
		},
		[]string{"outcome"},
	)

	// ExportsTotal counts backup exports by outcome.
	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aura",
			Name:      "backup_exports_total",
			Help:      "Backup exports by outcome.",
		},
		[]string{"outcome"},
	)
)
