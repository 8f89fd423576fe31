// Package combined provides interaction benchmarks that exercise the
// blocking queue together with the rest of the estimation pipeline.
//
// These benchmarks are more representative of real-world performance
// than isolated micro-benchmarks, as they capture goroutine handoff
// and the cumulative cost of the full hot path.
package combined
