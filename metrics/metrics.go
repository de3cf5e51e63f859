// Package metrics instruments the dispatcher with Prometheus counters,
// grounded in the pack's network-telemetry tools (simeonmiteff/go-tcpinfo,
// m-lab/tcp-info) that instrument protocol-level state with the same
// client library.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	decodeAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gtpv1c",
		Name:      "decode_attempts_total",
		Help:      "Number of top-level parse attempts, by dispatch side.",
	}, []string{"side"})

	decodeStatuses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gtpv1c",
		Name:      "decode_status_total",
		Help:      "Number of top-level parse outcomes, by dispatch side and status.",
	}, []string{"side", "status"})

	encodeAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gtpv1c",
		Name:      "encode_attempts_total",
		Help:      "Number of message encode attempts, by dispatch side.",
	}, []string{"side"})
)

func init() {
	prometheus.MustRegister(decodeAttempts, decodeStatuses, encodeAttempts)
}

// DecodeAttempt records one top-level parse attempt for side.
func DecodeAttempt(side string) {
	decodeAttempts.WithLabelValues(side).Inc()
}

// DecodeStatus records one top-level parse outcome for side.
func DecodeStatus(side, status string) {
	decodeStatuses.WithLabelValues(side, status).Inc()
}

// EncodeAttempt records one message encode attempt for side.
func EncodeAttempt(side string) {
	encodeAttempts.WithLabelValues(side).Inc()
}

// Registry exposes the default Prometheus registerer, for cmd/gtpdump or
// any embedding process that wants to serve /metrics.
var Registry = prometheus.DefaultRegisterer
