package gpusync

import "sync"

// MaxSyncGraphNodes bounds PipelineSync's debug-build cycle detector to an
// 8x8 adjacency bitset, one node per distinct queue/context participating
// in cross-queue sync during a frame.
const MaxSyncGraphNodes = 8

// SyncQueue is the capability PipelineSync needs from a queue: an index
// into its debug sync graph plus the ability to enqueue a signal and a
// wait. queue.Queue implements this.
type SyncQueue interface {
	QueueSignaler
	// EnqueueWait enqueues a GPU-side wait for fence to reach value before
	// queue continues executing subsequent submissions.
	EnqueueWait(fence *Fence, value uint64) error
	// GraphIndex returns this queue's node index (0..MaxSyncGraphNodes-1)
	// in PipelineSync's per-frame cycle-detection graph.
	GraphIndex() int
}

// PipelineSync composes a shared fence with cross-queue wait insertion, and
// — in debug mode — a per-frame cycle check so that a chain of sync_queues
// calls can never deadlock two queues waiting on each other.
type PipelineSync struct {
	tracker *FenceValueTracker

	Debug bool

	mu    sync.Mutex
	graph [MaxSyncGraphNodes]uint8 // graph[a] bit b set means edge a->b exists this frame
}

// NewPipelineSync creates a PipelineSync backed by fence.
func NewPipelineSync(fence *Fence) *PipelineSync {
	return &PipelineSync{tracker: NewFenceValueTracker(fence)}
}

// InsertSyncPoint allocates the next timeline value and enqueues its signal
// on fromQueue, returning the resulting SyncPoint.
func (p *PipelineSync) InsertSyncPoint(fromQueue QueueSignaler) (SyncPoint, error) {
	v, err := p.tracker.Signal(fromQueue)
	if err != nil {
		return SyncPoint{}, err
	}
	return SyncPoint{Fence: p.tracker.Fence(), Value: v}, nil
}

// WaitForSyncPoint enqueues a GPU-side wait on queue for sp to complete.
func (p *PipelineSync) WaitForSyncPoint(queue SyncQueue, sp SyncPoint) error {
	return queue.EnqueueWait(sp.Fence, sp.Value)
}

// SyncQueues is the composition: insert a sync point on a, then enqueue a
// wait for it on b, establishing a happens-before edge a->b this frame. In
// debug mode, the edge is checked against the existing graph first: if a
// path b->...->a already exists, inserting a->b would close a cycle, and
// the call is rejected with a CircularDependencyError instead of being
// enqueued.
func (p *PipelineSync) SyncQueues(a, b SyncQueue) error {
	if p.Debug {
		if err := p.addEdgeChecked(a.GraphIndex(), b.GraphIndex()); err != nil {
			return err
		}
	}
	sp, err := p.InsertSyncPoint(a)
	if err != nil {
		return err
	}
	return p.WaitForSyncPoint(b, sp)
}

// ResetFrame clears the debug sync graph. Call once per frame boundary.
func (p *PipelineSync) ResetFrame() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.graph {
		p.graph[i] = 0
	}
}

// addEdgeChecked adds edge from->to to the graph after verifying no path
// to->...->from already exists (which would make from->to close a cycle).
func (p *PipelineSync) addEdgeChecked(from, to int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if from < 0 || from >= MaxSyncGraphNodes || to < 0 || to >= MaxSyncGraphNodes {
		return &OverflowError{What: "PipelineSync graph", Limit: MaxSyncGraphNodes}
	}
	if p.hasPathLocked(to, from) {
		return &CircularDependencyError{From: from, To: to}
	}
	p.graph[from] |= 1 << uint(to)
	return nil
}

// hasPathLocked does a depth-first reachability search over the adjacency
// bitset. Must be called with mu held.
func (p *PipelineSync) hasPathLocked(from, to int) bool {
	var visited uint8
	var visit func(n int) bool
	visit = func(n int) bool {
		if visited&(1<<uint(n)) != 0 {
			return false
		}
		visited |= 1 << uint(n)
		if n == to {
			return true
		}
		edges := p.graph[n]
		for bit := 0; bit < MaxSyncGraphNodes; bit++ {
			if edges&(1<<uint(bit)) != 0 && visit(bit) {
				return true
			}
		}
		return false
	}
	return visit(from)
}
