package models

import "fmt"

// FetchError indicates a read from storage failed. Callers keep their
// previous in-memory state and may retry.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// PersistenceError indicates a write failed after an optimistic update was
// already applied. The owning view must re-fetch the authoritative state
// rather than attempt a fine-grained rollback.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// PartialBatchError indicates that some but not all writes in a batch
// succeeded. Index identifies the first failed item. Partial success cannot
// be safely reasoned about without a transaction, so callers treat this
// exactly like a PersistenceError: discard optimistic state and re-fetch.
type PartialBatchError struct {
	Op    string
	Index int
	Err   error
}

func (e *PartialBatchError) Error() string {
	return fmt.Sprintf("persist %s: item %d: %v", e.Op, e.Index, e.Err)
}

func (e *PartialBatchError) Unwrap() error { return e.Err }
