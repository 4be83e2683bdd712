package types

// MetricsCollector defines methods for collecting operational metrics from
// the executor session.
//
// The op label is the statement kind being executed: "create", "drop",
// "insert", "update", "delete" or "select". Implementations should be
// thread-safe as methods may be called concurrently.
type MetricsCollector interface {
	// IncQueryTotal increments the total executed statements counter.
	IncQueryTotal(op string)

	// IncQueryError increments the failed statements counter.
	IncQueryError(op string)

	// ObserveQueryDuration records a statement execution duration in seconds.
	ObserveQueryDuration(op string, seconds float64)
}
