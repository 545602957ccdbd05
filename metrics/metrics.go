package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ToolInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collection_tool_invocations_total",
			Help: "Total number of tool invocations by outcome",
		},
		[]string{"tool", "outcome"},
	)

	ToolDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "collection_tool_duration_seconds",
			Help: "Duration of tool invocations in seconds",
		},
		[]string{"tool"},
	)

	BridgeCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collection_bridge_calls_total",
			Help: "Total number of GraphQL bridge executions by funct and operation",
		},
		[]string{"funct", "operation", "outcome"},
	)

	EventPublishFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collection_event_publish_failures_total",
			Help: "Total number of failed event publications",
		},
		[]string{"tool"},
	)
)
