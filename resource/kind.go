// Package resource provides the intrusive refcount base, typed resource
// identity, and deferred-delete plumbing every GPU object in the RHI rides
// on (spec.md C1/C2).
package resource

// Kind tags the concrete type of a GPU object. It is checked at runtime by
// Cast instead of relying on language RTTI, per the source's virtual
// inheritance being re-architected as a tagged base plus per-kind data
// (spec.md §9, "Dynamic dispatch / inheritance hierarchies").
type Kind uint16

const (
	KindUnknown Kind = iota
	KindBuffer
	KindTexture
	KindTextureView
	KindSampler
	KindShaderModule
	KindShaderLibrary
	KindPipelineState
	KindFence
	KindQueryHeap
	KindSwapChain
	KindAccelerationStructure
	KindShaderBindingTable
	KindHeap
	KindDescriptorHeap
	KindInputLayout
	KindCommandList
	KindCommandAllocator
)

// String returns a human-readable name, used in debug names and log lines.
func (k Kind) String() string {
	switch k {
	case KindBuffer:
		return "Buffer"
	case KindTexture:
		return "Texture"
	case KindTextureView:
		return "TextureView"
	case KindSampler:
		return "Sampler"
	case KindShaderModule:
		return "ShaderModule"
	case KindShaderLibrary:
		return "ShaderLibrary"
	case KindPipelineState:
		return "PipelineState"
	case KindFence:
		return "Fence"
	case KindQueryHeap:
		return "QueryHeap"
	case KindSwapChain:
		return "SwapChain"
	case KindAccelerationStructure:
		return "AccelerationStructure"
	case KindShaderBindingTable:
		return "ShaderBindingTable"
	case KindHeap:
		return "Heap"
	case KindDescriptorHeap:
		return "DescriptorHeap"
	case KindInputLayout:
		return "InputLayout"
	case KindCommandList:
		return "CommandList"
	case KindCommandAllocator:
		return "CommandAllocator"
	default:
		return "Unknown"
	}
}
