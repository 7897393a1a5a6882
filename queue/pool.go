package queue

import "sync"

// AllocatorFactory constructs a fresh CommandAllocator for a pool, backed
// by whatever native allocator object the caller's backend provides.
type AllocatorFactory func() (*CommandAllocator, error)

// AllocatorPool hands out CommandAllocators by queue kind, reclaiming them
// as their tagged fences complete (spec §4.4). It never blocks: Acquire
// either reclaims a Reusable allocator, creates a fresh one below MaxLive,
// or returns ErrPoolExhausted.
type AllocatorPool struct {
	kind    Kind
	factory AllocatorFactory
	MaxLive int // 0 means unbounded

	mu   sync.Mutex
	live []*CommandAllocator // every allocator this pool has ever created
}

// NewAllocatorPool creates a pool for kind, using factory to create new
// allocators on demand.
func NewAllocatorPool(kind Kind, factory AllocatorFactory) *AllocatorPool {
	return &AllocatorPool{kind: kind, factory: factory}
}

// Kind returns the queue family this pool serves.
func (p *AllocatorPool) Kind() Kind { return p.kind }

// Acquire returns an allocator ready for recording: it first polls every
// live allocator for completion, reuses the first Reusable one found
// (after Reset), and otherwise creates a new one if under MaxLive.
func (p *AllocatorPool) Acquire() (*CommandAllocator, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, a := range p.live {
		a.Poll()
		if a.Status() == Reusable {
			if err := a.Reset(); err != nil {
				return nil, err
			}
			return a, nil
		}
	}

	if p.MaxLive > 0 && len(p.live) >= p.MaxLive {
		return nil, ErrPoolExhausted
	}

	a, err := p.factory()
	if err != nil {
		return nil, err
	}
	p.live = append(p.live, a)
	return a, nil
}

// Len returns the number of allocators this pool has created so far.
func (p *AllocatorPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.live)
}
