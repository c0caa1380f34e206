package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/free5gc/e2ap/internal/logger"
	"github.com/free5gc/e2ap/pkg/ric"
)

const (
	ResultSuccess  = "success"
	ResultMismatch = "mismatch"
	ResultError    = "error"

	DirectionEncode = "encode"
	DirectionDecode = "decode"
)

// Registry holds the E2AP collectors only; it is what /metrics serves.
var Registry = prometheus.NewRegistry()

var (
	encodeTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "e2ap",
			Name:      "encode_total",
			Help:      "Total number of E2AP messages encoded, by message and result",
		},
		[]string{"message", "result"},
	)

	decodeTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "e2ap",
			Name:      "decode_total",
			Help:      "Total number of E2AP messages decoded, by message and result",
		},
		[]string{"message", "result"},
	)

	messageSize = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "e2ap",
			Name:      "message_size_bytes",
			Help:      "Size of encoded or decoded E2AP-PDUs",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
		},
		[]string{"direction"},
	)
)

func result(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, ric.ErrProcedureMismatch):
		return ResultMismatch
	default:
		return ResultError
	}
}

// RecordEncode counts one encode attempt of message producing n bytes.
func RecordEncode(message string, n int, err error) {
	res := result(err)
	encodeTotal.WithLabelValues(message, res).Inc()
	if err == nil {
		messageSize.WithLabelValues(DirectionEncode).Observe(float64(n))
	}
	logger.MetricsLog.Tracef("encode %s: %s", message, res)
}

// RecordDecode counts one decode attempt of an n byte buffer as message.
func RecordDecode(message string, n int, err error) {
	res := result(err)
	decodeTotal.WithLabelValues(message, res).Inc()
	messageSize.WithLabelValues(DirectionDecode).Observe(float64(n))
	logger.MetricsLog.Tracef("decode %s: %s", message, res)
}

func EncodeCount(message, res string) prometheus.Counter {
	return encodeTotal.WithLabelValues(message, res)
}

func DecodeCount(message, res string) prometheus.Counter {
	return decodeTotal.WithLabelValues(message, res)
}
