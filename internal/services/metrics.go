package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	importsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "weekpi",
		Subsystem: "import",
		Name:      "imports_total",
		Help:      "Number of dataset imports accepted.",
	})

	importedRowsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "weekpi",
		Subsystem: "import",
		Name:      "rows_total",
		Help:      "Number of records accepted across all imports.",
	})

	importRejectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "weekpi",
		Subsystem: "import",
		Name:      "rejections_total",
		Help:      "Number of imports rejected during validation.",
	})

	kpiComputationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weekpi",
		Subsystem: "kpi",
		Name:      "computations_total",
		Help:      "Number of KPI computations by calculation mode.",
	}, []string{"mode"})

	kpiCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "weekpi",
		Subsystem: "kpi",
		Name:      "cache_hits_total",
		Help:      "Number of KPI computations served from the cache.",
	})
)
