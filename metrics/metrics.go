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
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type cache struct {
	getHitsVec       *prometheus.CounterVec
	getMissesVec     *prometheus.CounterVec
	getPromotionsVec *prometheus.CounterVec
	putsVec          *prometheus.CounterVec
}

type pinata struct {
	SkippedBytes  prometheus.Counter
	SkippedFiles  prometheus.Counter
	UploadedBytes prometheus.Counter
	UploadedFiles prometheus.Counter
	UploadErrors  prometheus.Counter
	ListPages     prometheus.Counter
	ListRows      prometheus.Counter
}

type digest struct {
	HitBytesTotal    prometheus.Counter
	HitFilesTotal    prometheus.Counter
	MissBytesTotal   prometheus.Counter
	MissFilesTotal   prometheus.Counter
	MissSecondsTotal prometheus.Counter
}

type CacheCounters struct {
	Hits       prometheus.Counter
	Misses     prometheus.Counter
	Promotions prometheus.Counter
	Puts       prometheus.Counter
}

func NewCacheCounters(name string) *CacheCounters {
	return &CacheCounters{
		Hits:       Cache.getHitsVec.WithLabelValues(name),
		Misses:     Cache.getMissesVec.WithLabelValues(name),
		Promotions: Cache.getPromotionsVec.WithLabelValues(name),
		Puts:       Cache.putsVec.WithLabelValues(name),
	}
}

var (
	Pinata = pinata{
		SkippedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pinbatch",
			Subsystem: "pinata",
			Name:      "skipped_bytes_total",
			Help:      "Total bytes not uploaded due to a known CID for the file name.",
		}),
		SkippedFiles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pinbatch",
			Subsystem: "pinata",
			Name:      "skipped_files_total",
			Help:      "Number of files not uploaded due to a known CID for the file name.",
		}),
		UploadedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pinbatch",
			Subsystem: "pinata",
			Name:      "upload_bytes_total",
			Help:      "Total bytes uploaded to the pinning service.",
		}),
		UploadedFiles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pinbatch",
			Subsystem: "pinata",
			Name:      "upload_files_total",
			Help:      "Number of files uploaded to the pinning service.",
		}),
		UploadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pinbatch",
			Subsystem: "pinata",
			Name:      "upload_errors_total",
			Help:      "Number of failed file uploads.",
		}),
		ListPages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pinbatch",
			Subsystem: "pinata",
			Name:      "list_pages_total",
			Help:      "Number of pin list pages fetched from the pinning service.",
		}),
		ListRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pinbatch",
			Subsystem: "pinata",
			Name:      "list_rows_total",
			Help:      "Number of pin list rows fetched from the pinning service.",
		}),
	}

	Cache = cache{
		getHitsVec: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pinbatch",
			Subsystem: "cache",
			Name:      "get_hits_total",
			Help:      "Number of cache gets that were hits.",
		}, []string{"cache"}),
		getMissesVec: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pinbatch",
			Subsystem: "cache",
			Name:      "get_misses_total",
			Help:      "Number of cache gets that were misses.",
		}, []string{"cache"}),
		getPromotionsVec: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pinbatch",
			Subsystem: "cache",
			Name:      "promotions_total",
			Help:      "Number of cache gets that resulted in promoting a value from the previous generation.",
		}, []string{"cache"}),
		putsVec: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pinbatch",
			Subsystem: "cache",
			Name:      "puts_total",
			Help:      "Number of cache put requests.",
		}, []string{"cache"}),
	}

	Digest = digest{
		HitBytesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pinbatch",
			Subsystem: "digestcache",
			Name:      "hit_bytes_total",
			Help:      "Total file size of digest requests processed that were a cache hit.",
		}),
		HitFilesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pinbatch",
			Subsystem: "digestcache",
			Name:      "hit_files_total",
			Help:      "Number of digest requests that were a cache hit.",
		}),
		MissBytesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pinbatch",
			Subsystem: "digestcache",
			Name:      "miss_bytes_total",
			Help:      "Total file size of digest requests processed that were a cache miss.",
		}),
		MissFilesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pinbatch",
			Subsystem: "digestcache",
			Name:      "miss_files_total",
			Help:      "Number of digest requests that were a cache miss.",
		}),
		MissSecondsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pinbatch",
			Subsystem: "digestcache",
			Name:      "miss_seconds_total",
			Help:      "Total time spent calculating new digests.",
		}),
	}
)

func SetupPrometheus(metricsListenAddress, metricsPath *string) {
	if metricsListenAddress == nil || *metricsListenAddress == "" {
		return
	}
	go func() {
		http.Handle(*metricsPath, promhttp.Handler())
		err := http.ListenAndServe(*metricsListenAddress, nil)
		zap.S().Fatalw("metrics_listen_error", "err", err)
	}()
}

func init() {
	prometheus.MustRegister(Cache.getHitsVec)
	prometheus.MustRegister(Cache.getMissesVec)
	prometheus.MustRegister(Cache.getPromotionsVec)
	prometheus.MustRegister(Cache.putsVec)

	prometheus.MustRegister(Pinata.SkippedBytes)
	prometheus.MustRegister(Pinata.SkippedFiles)
	prometheus.MustRegister(Pinata.UploadedBytes)
	prometheus.MustRegister(Pinata.UploadedFiles)
	prometheus.MustRegister(Pinata.UploadErrors)
	prometheus.MustRegister(Pinata.ListPages)
	prometheus.MustRegister(Pinata.ListRows)

	prometheus.MustRegister(Digest.HitBytesTotal)
	prometheus.MustRegister(Digest.HitFilesTotal)
	prometheus.MustRegister(Digest.MissBytesTotal)
	prometheus.MustRegister(Digest.MissFilesTotal)
	prometheus.MustRegister(Digest.MissSecondsTotal)
}
