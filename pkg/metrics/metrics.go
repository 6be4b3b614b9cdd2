package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "avs_operator"

const (
	Status_Success = "success"
	Status_Failed  = "failed"
	Status_Timeout = "timeout"
	Status_Skipped = "skipped"
)

var (
	// Poll loop
	PollCyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "poller",
		Name:      "cycles_total",
		Help:      "Total poll cycles that fetched a block range",
	}, []string{"contract"})

	PollCycleErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "poller",
		Name:      "cycle_errors_total",
		Help:      "Total poll cycles aborted by a chain read failure",
	}, []string{"contract"})

	PollCycleLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "poller",
		Name:      "cycle_duration_seconds",
		Help:      "Poll cycle duration including event handling",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"contract"})

	CursorHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "poller",
		Name:      "cursor_height",
		Help:      "Next block height the poller will scan from",
	}, []string{"contract"})

	// Decoder
	EventsDecoded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "decoder",
		Name:      "events_total",
		Help:      "Total domain events decoded from contract logs",
	}, []string{"kind"})

	DecodeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "decoder",
		Name:      "errors_total",
		Help:      "Total logs with a known signature that failed to decode",
	}, []string{"contract"})

	DuplicateEventsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "decoder",
		Name:      "duplicates_skipped_total",
		Help:      "Total events skipped because they were already processed",
	}, []string{"kind"})

	// Responder
	ValidationVerdicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "responder",
		Name:      "validation_verdicts_total",
		Help:      "Total paste validation verdicts by outcome",
	}, []string{"valid"})

	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "responder",
		Name:      "submissions_total",
		Help:      "Total response submissions by kind and final status",
	}, []string{"kind", "status"})

	SubmissionAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "responder",
		Name:      "submission_attempts_total",
		Help:      "Total submission attempts including retries",
	}, []string{"kind"})

	SubmissionLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "responder",
		Name:      "submission_duration_seconds",
		Help:      "Time from first attempt to final submission outcome",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 15, 30, 60, 120, 300},
	}, []string{"kind"})

	// RPC
	RpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rpc",
		Name:      "requests_total",
		Help:      "Total chain RPC read requests by method and status",
	}, []string{"method", "status"})
)
