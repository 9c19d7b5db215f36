// Package analytics computes the admin reports for the mentorship program:
// continuity and effectiveness metrics, predictive risk scoring, mentor load
// classification, greedy assignment suggestions and program-wide insights.
//
// Every function here is a pure computation over an already materialized
// snapshot of records. Nothing in this package performs I/O, keeps state
// between calls or mutates its inputs, so concurrent calls are independent.
// The evaluation time is always passed in by the caller.
package analytics
