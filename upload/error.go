package upload

import "errors"

// ErrStagingExhausted is returned when the upload heap's ring has no room
// for a requested staging allocation.
var ErrStagingExhausted = errors.New("upload: staging ring exhausted")

// ErrEmptySource is returned when a request's source data is empty.
var ErrEmptySource = errors.New("upload: request has no source data")

// ErrUnknownHandle names an AsyncUploadHandle the manager never issued.
// AsyncManager's Status and Wait do not return it: they report any handle
// they are not tracking as completed.
var ErrUnknownHandle = errors.New("upload: unknown async upload handle")
