package barrier

// State is a resource's usage state, expressed as a bitmask so several
// logically read-only states can be checked for containment without a
// dedicated "is read" flag (spec.md §4.7 / Open Question #2 — grounded on
// ERHIBarrierAccess in RHIBarrier.h, a RHI_ENUM_CLASS_FLAGS bitmask enum
// with one bit per access type).
type State uint32

const Common State = 0

const (
	VertexBuffer State = 1 << iota
	IndexBuffer
	ConstantBuffer
	ShaderResource
	UnorderedAccess
	RenderTarget
	DepthWrite
	DepthRead
	CopySource
	CopyDest
	IndirectArgument
	Present
	ResolveSource
	ResolveDest
)

// readOnlyMask is every state that hardware may hold simultaneously with
// other read-only states, per spec.md §4.7.
const readOnlyMask = VertexBuffer | IndexBuffer | ConstantBuffer | ShaderResource |
	CopySource | DepthRead | IndirectArgument

// IsReadOnly reports whether s consists only of read-only bits (and is
// non-zero).
func (s State) IsReadOnly() bool {
	return s != 0 && s & ^readOnlyMask == 0
}

// Contains reports whether s has every bit of other set.
func (s State) Contains(other State) bool {
	return s&other == other
}

// NeedsTransition is the validator from spec.md §4.7: no transition is
// required when current already equals required, or when required is a
// read-only state already bitwise-contained in current. Write-capable
// states (UnorderedAccess, RenderTarget, DepthWrite, CopyDest, Present,
// ResolveDest) always require an exact match.
func NeedsTransition(current, required State) bool {
	if current == required {
		return false
	}
	if required.IsReadOnly() && current.Contains(required) {
		return false
	}
	return true
}
