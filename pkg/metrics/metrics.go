package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hirewire_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// NotificationsDispatched counts persisted notifications by category.
	NotificationsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hirewire_notifications_dispatched_total",
			Help: "Total number of notifications written to the log",
		},
		[]string{"category"},
	)

	// NotificationPushes records live push attempts by outcome (delivered|offline).
	NotificationPushes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hirewire_notification_pushes_total",
			Help: "Live delivery attempts for dispatched notifications",
		},
		[]string{"outcome"},
	)

	// LiveConnections tracks currently registered websocket channels.
	LiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hirewire_live_connections",
			Help: "Number of registered live user connections",
		},
	)

	// InterviewQuestions counts AI question generations by source (model|fallback).
	InterviewQuestions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hirewire_interview_questions_total",
			Help: "Interview questions produced, by source",
		},
		[]string{"source"},
	)
)
