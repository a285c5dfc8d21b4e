// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var apiRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "junit2ado",
		Subsystem: "restclient",
		Name:      "api_requests_total",
		Help:      "API requests issued, by method and status class",
	},
	[]string{
		"method",
		"status",
	},
)

func init() {
	prometheus.MustRegister(apiRequests)
}

// statusClass collapses an HTTP status code to its class, "2xx" and
// so on, to keep the label cardinality down.
func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}

func observeRequest(method, status string) {
	apiRequests.With(prometheus.Labels{
		"method": method,
		"status": status,
	}).Inc()
}
