// Package prommetrics exports idtracker metrics to Prometheus.
package prommetrics
