// types.go

// Package native holds Go declarations whose memory layout is identical to the
// Vulkan C declarations, plus the table of driver entry points. It has no cgo
// dependency so that the typed layer and its tests build without a Vulkan SDK.
package native

// HeaderVersion is the VK_HEADER_VERSION these declarations were written
// against. cvk refuses to build against any other header.
const HeaderVersion = 328

type (
	Flags      = uint32
	Bool32     = uint32
	DeviceSize = uint64
)

type Result int32

type StructureType int32

// Dispatchable handles are opaque pointers on the C side.
type (
	Instance       uintptr
	PhysicalDevice uintptr
	Device         uintptr
	Queue          uintptr
	CommandBuffer  uintptr
)

// Non-dispatchable handles are 64-bit values on every platform.
type (
	Semaphore           uint64
	Fence               uint64
	DeviceMemory        uint64
	Buffer              uint64
	Image               uint64
	Event               uint64
	QueryPool           uint64
	BufferView          uint64
	ImageView           uint64
	ShaderModule        uint64
	PipelineCache       uint64
	PipelineLayout      uint64
	RenderPass          uint64
	Pipeline            uint64
	DescriptorSetLayout uint64
	Sampler             uint64
	DescriptorPool      uint64
	DescriptorSet       uint64
	Framebuffer         uint64
	CommandPool         uint64
	SurfaceKHR          uint64
	SwapchainKHR        uint64
)

// ClearColorValue is the 16-byte VkClearColorValue union. The three C views
// (float32, int32, uint32) share the same storage.
type ClearColorValue [4]uint32

type ClearDepthStencilValue struct {
	Depth   float32
	Stencil uint32
}

// ClearValue is the 16-byte VkClearValue union of a color and a depth/stencil
// value.
type ClearValue [4]uint32
