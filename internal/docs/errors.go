package docs

import "errors"

// ErrDirectoryNotFound aborts a whole Aggregator run. It is the only run-level
// failure besides context cancellation; it is surfaced to callers as a
// structured error report, never a raised fault.
var ErrDirectoryNotFound = errors.New("directory not found")

// ErrDocumentUnreadable marks a single document that could not be parsed.
// It is always recovered at the per-document boundary and recorded as an
// error entry in the report.
var ErrDocumentUnreadable = errors.New("document unreadable")
