package monitor

import (
	"strings"

	"github.com/hashdist/hashdist/internal/analyzer"
	"github.com/hashdist/hashdist/pkg/hdlog"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	namespace = "hashdist"
)

type Prometheus struct {
	registry *prometheus.Registry

	wordsGauge       *prometheus.GaugeVec
	collisionsGauge  *prometheus.GaugeVec
	usedBucketsGauge *prometheus.GaugeVec
	maxLoadGauge     *prometheus.GaugeVec
	rangeGauge       *prometheus.GaugeVec
}

func NewPrometheus() *Prometheus {
	wordsGauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "words",
		Help:      "Number of words analyzed",
	}, []string{"hash"})

	collisionsGauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "collisions",
		Help:      "Number of words that share their bucket with another word",
	}, []string{"hash"})

	usedBucketsGauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "buckets_used",
		Help:      "Number of buckets holding at least one word",
	}, []string{"hash"})

	maxLoadGauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "bucket_max_load",
		Help:      "Largest number of words in a single bucket",
	}, []string{"hash"})

	rangeGauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "range_occurrences",
		Help:      "Number of words whose bucket falls in the range",
	}, []string{"hash", "range"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(wordsGauge, collisionsGauge, usedBucketsGauge, maxLoadGauge, rangeGauge)

	return &Prometheus{
		registry:         registry,
		wordsGauge:       wordsGauge,
		collisionsGauge:  collisionsGauge,
		usedBucketsGauge: usedBucketsGauge,
		maxLoadGauge:     maxLoadGauge,
		rangeGauge:       rangeGauge,
	}
}

// Observe 记录一次分析结果
func (p *Prometheus) Observe(r *analyzer.Result) {
	p.wordsGauge.WithLabelValues(r.Name).Set(float64(r.Words))
	p.collisionsGauge.WithLabelValues(r.Name).Set(float64(r.Collisions))
	p.usedBucketsGauge.WithLabelValues(r.Name).Set(float64(r.UsedBuckets()))
	p.maxLoadGauge.WithLabelValues(r.Name).Set(float64(r.MaxBucketLoad()))
	for _, rg := range r.Histogram {
		p.rangeGauge.WithLabelValues(r.Name, rg.Label).Set(float64(rg.Count))
	}
}

// WriteToTextfile 以 node_exporter textfile collector 的格式写出
func (p *Prometheus) WriteToTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, p.registry); err != nil {
		return errors.Wrapf(err, "write metrics %s", path)
	}
	hdlog.Info("metrics written", zap.String("path", path))
	return nil
}

// Export 记录结果并写出，path 为空时不做任何事
func Export(path string, results ...*analyzer.Result) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	p := NewPrometheus()
	for _, r := range results {
		p.Observe(r)
	}
	return p.WriteToTextfile(path)
}
