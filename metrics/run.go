// Copyright 2026 RetailNext, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type run struct {
	LastRunAtGauge   prometheus.Gauge
	LastRunOkGauge   prometheus.Gauge
	InProgressGauge  prometheus.Gauge
	ErrorCounter     prometheus.Counter
	CompletedCounter prometheus.Counter
	registerOnce     sync.Once
}

var (
	Run = run{
		LastRunAtGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pinbatch",
			Subsystem: "run",
			Name:      "last_at_seconds",
			Help:      "Time the last upload cycle successfully completed.",
		}),
		LastRunOkGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pinbatch",
			Subsystem: "run",
			Name:      "last_ok",
			Help:      "1 if the last upload cycle completed successfully.",
		}),
		InProgressGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pinbatch",
			Subsystem: "run",
			Name:      "in_progress",
			Help:      "1 if an upload cycle is in progress.",
		}),
		ErrorCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pinbatch",
			Subsystem: "run",
			Name:      "errors_total",
			Help:      "Number of failed upload cycles.",
		}),
		CompletedCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pinbatch",
			Subsystem: "run",
			Name:      "completed_total",
			Help:      "Number of completed upload cycles.",
		}),
	}
)

func (c *run) RegisterMetrics() {
	c.registerOnce.Do(func() {
		prometheus.MustRegister(c.CompletedCounter)
		prometheus.MustRegister(c.ErrorCounter)
		prometheus.MustRegister(c.InProgressGauge)
		prometheus.MustRegister(c.LastRunAtGauge)
		prometheus.MustRegister(c.LastRunOkGauge)

		c.InProgressGauge.Set(0)
		c.LastRunAtGauge.Set(0)
		c.LastRunOkGauge.Set(0)
	})
}
