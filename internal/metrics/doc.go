// Package metrics records engine activity as Prometheus metrics and reads
// runtime memory statistics for the --details report.
package metrics
