package usecase

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

var (
	// ErrTransientFetch marks remote failures worth retrying: network errors,
	// 5xx responses, and rate-limit rejections.
	ErrTransientFetch = crerr.New("transient fetch failure")

	// ErrNotFound marks a remote resource that does not exist (404). Never
	// retried.
	ErrNotFound = crerr.New("resource not found")

	// ErrDependencyUnavailable is returned when the circuit breaker rejects a
	// request before it reaches the remote source.
	ErrDependencyUnavailable = crerr.New("dependency unavailable")

	// ErrPersistence wraps repository failures surfaced through the
	// reconciler.
	ErrPersistence = crerr.New("persistence failure")
)

// MalformedRecordError describes a single remote record that failed
// required-field validation. Malformed records are dropped and counted as
// per-record failures; they never abort the batch.
type MalformedRecordError struct {
	Kind     string
	RemoteID int64
	Field    string
}

func (e MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed %s record remote_id=%d: missing or invalid %s", e.Kind, e.RemoteID, e.Field)
}

// ReferenceUnresolvedWarning flags a record whose foreign reference could not
// be resolved to a local row. The record itself is still written with the
// relation unset.
type ReferenceUnresolvedWarning struct {
	Kind      string
	RemoteID  int64
	Relation  string
	Reference string
}

func (w ReferenceUnresolvedWarning) String() string {
	return fmt.Sprintf("%s remote_id=%d: unresolved %s reference %q", w.Kind, w.RemoteID, w.Relation, w.Reference)
}
