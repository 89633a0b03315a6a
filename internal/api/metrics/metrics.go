// Package metrics defines and registers all custom Prometheus metrics for the
// PixelForge Nexus API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nexus"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthDenialsTotal counts rejected requests on protected routes.
// Label:
//   - reason: "no_token", "expired_token", "invalid_token", "forbidden"
var AuthDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denials_total",
		Help:      "Total number of requests rejected by authentication or authorization, by reason.",
	},
	[]string{"reason"},
)

// ProjectsCreatedTotal counts newly created projects.
var ProjectsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created.",
	},
)

// ProjectsCompletedTotal counts project completions, including idempotent re-completions.
var ProjectsCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_completed_total",
		Help:      "Total number of project completion calls that succeeded.",
	},
)

// AssignmentMutationsTotal counts team-set mutations.
// Label:
//   - action: "assign" or "unassign"
var AssignmentMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignment_mutations_total",
		Help:      "Total number of successful team assignment mutations, by action.",
	},
	[]string{"action"},
)

// DocumentsUploadedTotal counts stored document uploads.
var DocumentsUploadedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_uploaded_total",
		Help:      "Total number of documents uploaded.",
	},
)
