package readback

import "errors"

// ErrNotReady is returned when a result is requested before its
// associated fence has completed.
var ErrNotReady = errors.New("readback: result not ready")

// ErrBufferTooSmall is returned when a destination slice is too small to
// hold a readback's data.
var ErrBufferTooSmall = errors.New("readback: destination buffer too small")

// ErrNeverEnqueued is returned when a result is requested before any
// EnqueueCopy has run.
var ErrNeverEnqueued = errors.New("readback: no copy has been enqueued yet")
