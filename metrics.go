// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package workq

import (
	"code.hybscloud.com/atomix"
	"github.com/prometheus/client_golang/prometheus"
)

// Counter is a lock-free [Gauge] readable from any goroutine.
//
// Values are stored as uint64; watermarks are never negative.
type Counter struct {
	v atomix.Uint64
}

// Set stores v.
func (c *Counter) Set(v float64) {
	c.v.StoreRelease(uint64(v))
}

// Value returns the last stored value.
func (c *Counter) Value() uint64 {
	return c.v.LoadAcquire()
}

// nopGauge discards updates.
type nopGauge struct{}

func (nopGauge) Set(float64) {}

// WatermarkOpts names the Prometheus gauges created by [NewWatermarkGauges].
type WatermarkOpts struct {
	Namespace   string
	Subsystem   string
	Name        string // Metric name prefix, e.g. "work_queue"
	ConstLabels prometheus.Labels
}

// WatermarkGauges publishes a queue's watermarks to Prometheus.
//
// WatermarkGauges implements prometheus.Collector, so both gauges register
// with a single call:
//
//	wm := workq.NewWatermarkGauges(workq.WatermarkOpts{Namespace: "app", Name: "irq_work"})
//	prometheus.MustRegister(wm)
//	q := workq.Build[Event](workq.NewBuilder(64).Gauges(wm.MaxUsed, wm.MinRemaining), handle)
type WatermarkGauges struct {
	MaxUsed      prometheus.Gauge
	MinRemaining prometheus.Gauge
}

// NewWatermarkGauges creates the <Name>_max_used and <Name>_min_remaining
// gauges.
func NewWatermarkGauges(opts WatermarkOpts) *WatermarkGauges {
	return &WatermarkGauges{
		MaxUsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   opts.Namespace,
			Subsystem:   opts.Subsystem,
			Name:        opts.Name + "_max_used",
			Help:        "Maximum number of items ever held by the work queue.",
			ConstLabels: opts.ConstLabels,
		}),
		MinRemaining: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   opts.Namespace,
			Subsystem:   opts.Subsystem,
			Name:        opts.Name + "_min_remaining",
			Help:        "Minimum free capacity ever observed after a push.",
			ConstLabels: opts.ConstLabels,
		}),
	}
}

// Describe implements prometheus.Collector.
func (g *WatermarkGauges) Describe(ch chan<- *prometheus.Desc) {
	g.MaxUsed.Describe(ch)
	g.MinRemaining.Describe(ch)
}

// Collect implements prometheus.Collector.
func (g *WatermarkGauges) Collect(ch chan<- prometheus.Metric) {
	g.MaxUsed.Collect(ch)
	g.MinRemaining.Collect(ch)
}
