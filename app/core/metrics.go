package core

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/renty-ai/renty-ai/pkg/metrics"
)

type Metrics struct {
	apiResponseTime  *prometheus.HistogramVec
	apiErrorCounter  *prometheus.CounterVec
	chatIntentCount  *prometheus.CounterVec
	searchResultSize *prometheus.HistogramVec
	activeSessions   *prometheus.GaugeVec
}

func NewMetrics(ns, system string) *Metrics {
	// setup metric
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	m := &Metrics{
		apiResponseTime:  metrics.NewHistogramVec("api_response_time", []string{"api"}),
		apiErrorCounter:  metrics.NewCounterVec("api_error", []string{"method", "api", "status"}),
		chatIntentCount:  metrics.NewCounterVec("chat_intent", []string{"intent", "language"}),
		searchResultSize: metrics.NewHistogramVec("search_result_size", []string{"language"}),
		activeSessions:   metrics.NewGaugeVec("active_sessions", []string{"store"}),
	}

	return m
}

func (m *Metrics) ApiResponseTimer(api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(api))
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) ChatIntentInc(intent, language string) {
	m.chatIntentCount.WithLabelValues(intent, language).Inc()
}

func (m *Metrics) ObserveSearchResultSize(language string, size int) {
	m.searchResultSize.WithLabelValues(language).Observe(float64(size))
}

func (m *Metrics) SetActiveSessions(count int) {
	m.activeSessions.WithLabelValues("memory").Set(float64(count))
}
