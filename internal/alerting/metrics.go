package alerting

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	alertsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labops_alerts_dispatched_total",
			Help: "Alert events handed to the notification transport, by kind and severity",
		},
		[]string{"kind", "severity"},
	)

	alertsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labops_alerts_failed_total",
			Help: "Alert events the transport rejected, by kind",
		},
		[]string{"kind"},
	)

	alertsThrottled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "labops_alerts_throttled_total",
			Help: "Alerts suppressed by the cooldown gate",
		},
	)
)
