// handles.go
package vk

import "github.com/NOT-REAL-GAMES/vk/native"

// Handles share the representation of their native counterparts, so arrays of
// them can be handed to the driver without copying. The zero value is
// VK_NULL_HANDLE.
type (
	Instance       native.Instance
	PhysicalDevice native.PhysicalDevice
	Device         native.Device
	Queue          native.Queue
	CommandBuffer  native.CommandBuffer
)

type (
	Semaphore           native.Semaphore
	Fence               native.Fence
	DeviceMemory        native.DeviceMemory
	Buffer              native.Buffer
	Image               native.Image
	Event               native.Event
	QueryPool           native.QueryPool
	BufferView          native.BufferView
	ImageView           native.ImageView
	ShaderModule        native.ShaderModule
	PipelineCache       native.PipelineCache
	PipelineLayout      native.PipelineLayout
	RenderPass          native.RenderPass
	Pipeline            native.Pipeline
	DescriptorSetLayout native.DescriptorSetLayout
	Sampler             native.Sampler
	DescriptorPool      native.DescriptorPool
	DescriptorSet       native.DescriptorSet
	Framebuffer         native.Framebuffer
	CommandPool         native.CommandPool
	SurfaceKHR          native.SurfaceKHR
	SwapchainKHR        native.SwapchainKHR
)

// NULL_HANDLE converts to any handle type.
const NULL_HANDLE = 0
