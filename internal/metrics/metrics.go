package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewShipmentsSubmittedTotal returns a Prometheus counter for shipments the carrier accepted
func NewShipmentsSubmittedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shipments_submitted_total",
		Help: "Total number of shipments accepted by the carrier",
	})
}

// NewShipmentsRejectedTotal returns a Prometheus counter for shipments the carrier rejected
func NewShipmentsRejectedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shipments_rejected_total",
		Help: "Total number of shipments rejected by the carrier",
	})
}

// NewUpstreamErrorsTotal returns a Prometheus counter vector for aborting pipeline failures by stage
func NewUpstreamErrorsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_errors_total",
		Help: "Total number of aborting pipeline failures by stage",
	}, []string{"stage"})
}
