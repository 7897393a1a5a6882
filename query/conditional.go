package query

import "github.com/gogpu/rhi/queue"

type objectState struct {
	queryID QueryID
	visible bool
	tested  bool
}

// ConditionalRendering drives per-object occlusion tests and uses their
// previous frame's resolved result to skip draws for objects known to
// be hidden, defaulting to visible for objects with no resolved data yet
// ("optimistic visibility", spec.md §4.12). Unlike
// original_source/RHIOcclusion.cpp's RHIConditionalRendering — whose
// BeginOcclusionTest/EndOcclusionTest never actually recorded which
// query belonged to which object — this tracks the QueryID each
// BeginOcclusionTest call allocates so EndOcclusionTest ends the right
// query and a later frame can read back the right result.
type ConditionalRendering struct {
	occlusion *OcclusionManager
	objects   map[uint32]*objectState
}

// NewConditionalRendering creates a ConditionalRendering driven by
// occlusion.
func NewConditionalRendering(occlusion *OcclusionManager) *ConditionalRendering {
	return &ConditionalRendering{occlusion: occlusion, objects: make(map[uint32]*objectState)}
}

// RegisterObject starts tracking objectID, defaulting it to visible
// until its first occlusion test resolves.
func (c *ConditionalRendering) RegisterObject(objectID uint32) bool {
	if _, ok := c.objects[objectID]; !ok {
		c.objects[objectID] = &objectState{queryID: InvalidQueryID(), visible: true}
	}
	return true
}

// UnregisterObject stops tracking objectID.
func (c *ConditionalRendering) UnregisterObject(objectID uint32) {
	delete(c.objects, objectID)
}

// BeginFrame promotes any pending query whose frame has resolved into
// each object's cached visible flag, then releases the consumed query.
func (c *ConditionalRendering) BeginFrame() {
	if !c.occlusion.AreResultsReady() {
		return
	}
	for _, obj := range c.objects {
		if obj.tested && obj.queryID.IsValid() {
			obj.visible = c.occlusion.IsVisible(obj.queryID)
			obj.tested = false
			obj.queryID = InvalidQueryID()
		}
	}
}

// EndFrame is a pass-through hook mirroring the occlusion manager's
// frame boundary; no per-frame bookkeeping of its own is needed.
func (c *ConditionalRendering) EndFrame(ctx queue.BaseContext) {}

// BeginOcclusionTest starts an occlusion query for objectID.
func (c *ConditionalRendering) BeginOcclusionTest(ctx queue.BaseContext, objectID uint32) {
	obj, ok := c.objects[objectID]
	if !ok {
		return
	}
	obj.queryID = c.occlusion.BeginQuery(ctx)
}

// EndOcclusionTest ends the occlusion query started for objectID.
func (c *ConditionalRendering) EndOcclusionTest(ctx queue.BaseContext, objectID uint32) {
	obj, ok := c.objects[objectID]
	if !ok || !obj.queryID.IsValid() {
		return
	}
	c.occlusion.EndQuery(ctx, obj.queryID)
	obj.tested = true
}

// BeginConditionalDraw reports whether objectID should be drawn, based
// on its previous frame's resolved occlusion result.
func (c *ConditionalRendering) BeginConditionalDraw(ctx queue.BaseContext, objectID uint32) bool {
	return c.IsObjectVisible(objectID)
}

// EndConditionalDraw is a pass-through hook; predication-backed
// hardware skip is a backend concern with nothing for this layer to do.
func (c *ConditionalRendering) EndConditionalDraw(ctx queue.BaseContext) {}

// QueryIDFor returns the QueryID most recently assigned to objectID by
// BeginOcclusionTest, for a caller decoding raw occlusion results into
// the shared OcclusionManager via SetResult.
func (c *ConditionalRendering) QueryIDFor(objectID uint32) QueryID {
	obj, ok := c.objects[objectID]
	if !ok {
		return InvalidQueryID()
	}
	return obj.queryID
}

// IsObjectVisible reports objectID's cached visibility, defaulting to
// visible for an unregistered or never-tested object.
func (c *ConditionalRendering) IsObjectVisible(objectID uint32) bool {
	obj, ok := c.objects[objectID]
	if !ok {
		return true
	}
	return obj.visible
}
