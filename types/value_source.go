package types

// ValueSource computes the value stored at a buffer index.
//
// A ValueSource is the value_at(i) function of a fill: a deterministic, pure
// function of the index. It must not depend on call order, on other indices,
// or on hidden mutable state, and it must be safe for concurrent use, since
// every worker of a parallel fill calls it at the same time.
//
// Infallible sources always return a nil error. Sources that can fail report
// the failure for the index they were asked about; the filler turns it into a
// TaskError and fails the whole call.
type ValueSource interface {
	// ValueAt returns the value for index i.
	//
	// Parameters:
	//   - i: Buffer index (0 <= i < len)
	//
	// Returns:
	//   - int: Value to store at index i
	//   - error: Non-nil if the value cannot be computed
	ValueAt(i int) (int, error)
}
