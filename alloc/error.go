package alloc

import "errors"

// ErrPoolExhausted is returned when a Pool is asked to Acquire beyond its
// configured maximum block count and has no free block to reuse.
var ErrPoolExhausted = errors.New("alloc: pool exhausted at its configured block limit")

// ErrNoMatchingPool is returned when MultiSizePool.Acquire has no pool
// whose block size is large enough to satisfy the request.
var ErrNoMatchingPool = errors.New("alloc: no pool large enough for the requested size")
