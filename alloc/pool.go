package alloc

// Factory creates one fixed-size backing buffer for a Pool to hand out.
type Factory func() (Buffer, error)

// Pool manages fixed-size blocks from a Factory, recycling released
// blocks through a free list (spec.md §4.9, grounded on RHIBufferPool).
// Not internally synchronized.
type Pool struct {
	blockSize uint64
	maxBlocks uint32 // 0 means unbounded
	factory   Factory

	free  []Buffer
	total uint32
}

// NewPool creates a Pool of blocks sized blockSize, capped at maxBlocks
// total live blocks (0 for unbounded).
func NewPool(blockSize uint64, maxBlocks uint32, factory Factory) *Pool {
	return &Pool{blockSize: blockSize, maxBlocks: maxBlocks, factory: factory}
}

// BlockSize returns this pool's fixed block size.
func (p *Pool) BlockSize() uint64 { return p.blockSize }

// AvailableCount returns the number of blocks currently on the free list.
func (p *Pool) AvailableCount() int { return len(p.free) }

// TotalCount returns the number of blocks ever created by this pool.
func (p *Pool) TotalCount() uint32 { return p.total }

// Acquire pops a free block, or creates a new one via Factory if the
// pool has not yet reached maxBlocks. Returns ErrPoolExhausted once the
// limit is reached with no free block available.
func (p *Pool) Acquire() (Buffer, error) {
	if n := len(p.free); n > 0 {
		b := p.free[n-1]
		p.free = p.free[:n-1]
		return b, nil
	}
	if p.maxBlocks > 0 && p.total >= p.maxBlocks {
		return nil, ErrPoolExhausted
	}
	b, err := p.factory()
	if err != nil {
		return nil, err
	}
	p.total++
	return b, nil
}

// Release returns buf to the free list.
func (p *Pool) Release(buf Buffer) {
	if buf == nil {
		return
	}
	p.free = append(p.free, buf)
}
