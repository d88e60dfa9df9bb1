//
//  Copyright © Opsrig Inc. All rights reserved.
//

package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sov_validations_total",
			Help: "Total number of validation requests by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	validationLines = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sov_validation_lines",
			Help:    "Number of records produced per validation",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)

// observeValidation records metrics for one completed validation.
func observeValidation(record *ValidationRecord) {
	outcome := "valid"
	if record.Summary.Errors > 0 {
		outcome = "invalid"
	}
	validationsTotal.WithLabelValues(string(record.Mode), outcome).Inc()
	validationLines.Observe(float64(record.Summary.Total))
}
