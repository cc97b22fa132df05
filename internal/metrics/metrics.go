// Package metrics defines all custom Prometheus metrics for the fingerprint
// consent API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at init time; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fingerprint"

// AuthAttemptsTotal counts credential verification attempts.
// Label:
//   - result: "accepted" or "rejected" (unknown user and wrong password share
//     the rejected label, like the HTTP response they produce)
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of credential verification attempts, by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts successfully issued bearer tokens.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued.",
	},
)

// ConsentDecisionsTotal counts recorded consent decisions.
// Label:
//   - shared: "true" (accepted sharing) or "false" (declined)
var ConsentDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "consent_decisions_total",
		Help:      "Total number of consent decisions recorded, by value.",
	},
	[]string{"shared"},
)

// ConsentLookupsTotal counts consent lookups that passed the ownership gate.
// Label:
//   - result: "hit" (record found) or "miss" (no record for that user)
var ConsentLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "consent_lookups_total",
		Help:      "Total number of consent lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
