package shared

import (
	"bytes"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

type Metrics struct{}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// RegisterCounter register counter
func (m *Metrics) RegisterCounter(name string, help string, labels []string) *prometheus.CounterVec {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	prometheus.MustRegister(counter)
	return counter
}

// RegisterGauge register gauge
func (m *Metrics) RegisterGauge(name string, help string, labels []string) *prometheus.GaugeVec {
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: name,
		Help: help,
	}, labels)

	prometheus.MustRegister(gauge)
	return gauge
}

// RegisterHistogram register histogram
func (m *Metrics) RegisterHistogram(name string, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	histogram := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    name,
		Help:    help,
		Buckets: buckets,
	}, labels)

	prometheus.MustRegister(histogram)
	return histogram
}

// IncCounter increase counter
func (m *Metrics) IncCounter(counter *prometheus.CounterVec, labels ...string) {
	counter.WithLabelValues(labels...).Inc()
}

// IncGauge increase gauge
func (m *Metrics) IncGauge(gauge *prometheus.GaugeVec, labels ...string) {
	gauge.WithLabelValues(labels...).Inc()
}

// ObserveHistogram observe histogram
func (m *Metrics) ObserveHistogram(histogram *prometheus.HistogramVec, value float64, labels ...string) {
	histogram.WithLabelValues(labels...).Observe(value)
}

func (m *Metrics) GetPrometheusMetrics() (string, error) {
	var metrics bytes.Buffer
	reg := prometheus.DefaultRegisterer.(*prometheus.Registry)
	metricFamilies, err := reg.Gather()
	if err != nil {
		return "", err
	}

	encoder := expfmt.NewEncoder(&metrics, expfmt.FmtText)
	for _, mf := range metricFamilies {
		if err := encoder.Encode(mf); err != nil {
			return "", err
		}
	}

	return metrics.String(), nil
}
