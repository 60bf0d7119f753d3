package usecase

import (
	"github.com/nguyentranbao-ct/catalog-console/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
)

var displayRefreshes = mustCounterVec(util.GetCounterVec(prometheus.CounterOpts{
	Namespace: "catalog_console",
	Subsystem: "display",
	Name:      "refresh_total",
	Help:      "Product list fetches by trigger and result",
}, "trigger", "result"))

func mustCounterVec(c *prometheus.CounterVec, err error) *prometheus.CounterVec {
	if err != nil {
		panic(err)
	}
	return c
}

func observeRefresh(trigger string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	displayRefreshes.WithLabelValues(trigger, result).Inc()
}
