package core

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/docchat-ai/docchat/pkg/metrics"
)

type Metrics struct {
	apiResponseTime      *prometheus.HistogramVec
	apiErrorCounter      *prometheus.CounterVec
	completionTime       *prometheus.HistogramVec
	completionError      *prometheus.CounterVec
	retrievalTime        *prometheus.HistogramVec
	documentUploadedSize *prometheus.HistogramVec
}

func NewMetrics(ns, system string) *Metrics {
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	m := &Metrics{
		apiResponseTime:      metrics.NewHistogramVec("api_response_time", []string{"api"}),
		apiErrorCounter:      metrics.NewCounterVec("api_error", []string{"method", "api", "status"}),
		completionTime:       metrics.NewHistogramVec("completion_time", []string{"model"}),
		completionError:      metrics.NewCounterVec("completion_error", []string{"type"}),
		retrievalTime:        metrics.NewHistogramVec("retrieval_time", nil),
		documentUploadedSize: metrics.NewHistogramVec("document_uploaded_size", []string{"kind"}),
	}

	return m
}

func (m *Metrics) ApiResponseTimer(api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(api))
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) CompletionTimer(model string) *prometheus.Timer {
	return prometheus.NewTimer(m.completionTime.WithLabelValues(model))
}

func (m *Metrics) CompletionErrorInc(types string) {
	m.completionError.WithLabelValues(types).Inc()
}

func (m *Metrics) RetrievalTimer() *prometheus.Timer {
	return prometheus.NewTimer(m.retrievalTime.WithLabelValues())
}

func (m *Metrics) DocumentUploadedSize(kind string, size float64) {
	m.documentUploadedSize.WithLabelValues(kind).Observe(size)
}
