package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "docfrag"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	documents      *prom.CounterVec
	renderDuration *prom.HistogramVec
	blocks         *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them with reg.
// A nil reg gets a private registry.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		documents: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "documents_total",
			Help:      "Documents processed by output format and result",
		}, []string{"format", "result"}),
		renderDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering and writing a document",
			Buckets:   prom.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"format"}),
		blocks: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_total",
			Help:      "Rendered document blocks by type",
		}, []string{"type"}),
	}
	reg.MustRegister(pr.documents, pr.renderDuration, pr.blocks)
	return pr
}

func (p *PrometheusRecorder) IncDocument(format string, result ResultLabel) {
	if p == nil {
		return
	}
	p.documents.WithLabelValues(format, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveRenderDuration(format string, d time.Duration) {
	if p == nil {
		return
	}
	p.renderDuration.WithLabelValues(format).Observe(d.Seconds())
}

func (p *PrometheusRecorder) AddBlocks(blockType string, n int) {
	if p == nil || n <= 0 {
		return
	}
	p.blocks.WithLabelValues(blockType).Add(float64(n))
}
