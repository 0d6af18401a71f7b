// Package metrics exposes Prometheus metrics for the catalog and its lookups.
//
// Collectors live in a private registry created by New and are served by
// Handler, which is mounted at Config.Path when metrics are enabled.
package metrics
