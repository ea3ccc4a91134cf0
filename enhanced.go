// enhanced.go

//go:build !vk_noenhanced

package vk

import "unsafe"

// Enhanced re-declares the entry points that write through output pointers
// with Go-shaped signatures: created objects and queried values are returned
// alongside the Result, and two-call enumerations return slices. The plain
// forms stay reachable through the embedded Dispatch.
//
// Building with the vk_noenhanced tag leaves Enhanced out entirely.
type Enhanced struct {
	*Dispatch
}

func NewEnhanced(d *Dispatch) Enhanced {
	return Enhanced{Dispatch: d}
}

// enumerate runs the Vulkan two-call idiom: the first call asks for the
// count, the second fills a slice of exactly that size. A failing first call
// is returned as is without a second call. The second call's result is
// returned verbatim (INCOMPLETE included) and the slice is trimmed to the
// count the driver wrote back.
func enumerate[T any](call func(count *uint32, data *T) Result) ([]T, Result) {
	var count uint32
	if r := call(&count, nil); r != SUCCESS {
		return nil, r
	}
	items := make([]T, count)
	var data *T
	if count > 0 {
		data = &items[0]
	}
	r := call(&count, data)
	if int(count) < len(items) {
		items = items[:count]
	}
	return items, r
}

// cstr returns a NUL-terminated copy of s, or nil for the empty string.
func cstr(s string) *byte {
	if s == "" {
		return nil
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

func (e Enhanced) EnumerateInstanceVersion() (uint32, Result) {
	var v uint32
	r := e.Dispatch.EnumerateInstanceVersion(&v)
	return v, r
}

func (e Enhanced) EnumerateInstanceLayerProperties() ([]LayerProperties, Result) {
	return enumerate(func(n *uint32, p *LayerProperties) Result {
		return e.Dispatch.EnumerateInstanceLayerProperties(n, p)
	})
}

// EnumerateInstanceExtensionProperties lists the extensions of layerName, or
// of the implementation and implicit layers when layerName is empty.
func (e Enhanced) EnumerateInstanceExtensionProperties(layerName string) ([]ExtensionProperties, Result) {
	name := cstr(layerName)
	return enumerate(func(n *uint32, p *ExtensionProperties) Result {
		return e.Dispatch.EnumerateInstanceExtensionProperties(name, n, p)
	})
}

func (e Enhanced) EnumeratePhysicalDevices(instance Instance) ([]PhysicalDevice, Result) {
	return enumerate(func(n *uint32, p *PhysicalDevice) Result {
		return e.Dispatch.EnumeratePhysicalDevices(instance, n, p)
	})
}

func (e Enhanced) EnumerateDeviceLayerProperties(physicalDevice PhysicalDevice) ([]LayerProperties, Result) {
	return enumerate(func(n *uint32, p *LayerProperties) Result {
		return e.Dispatch.EnumerateDeviceLayerProperties(physicalDevice, n, p)
	})
}

func (e Enhanced) EnumerateDeviceExtensionProperties(physicalDevice PhysicalDevice, layerName string) ([]ExtensionProperties, Result) {
	name := cstr(layerName)
	return enumerate(func(n *uint32, p *ExtensionProperties) Result {
		return e.Dispatch.EnumerateDeviceExtensionProperties(physicalDevice, name, n, p)
	})
}

// GetPhysicalDeviceQueueFamilyProperties cannot fail, so it returns only the
// slice.
func (e Enhanced) GetPhysicalDeviceQueueFamilyProperties(physicalDevice PhysicalDevice) []QueueFamilyProperties {
	props, _ := enumerate(func(n *uint32, p *QueueFamilyProperties) Result {
		e.Dispatch.GetPhysicalDeviceQueueFamilyProperties(physicalDevice, n, p)
		return SUCCESS
	})
	return props
}

func (e Enhanced) GetPhysicalDeviceProperties(physicalDevice PhysicalDevice) PhysicalDeviceProperties {
	var props PhysicalDeviceProperties
	e.Dispatch.GetPhysicalDeviceProperties(physicalDevice, &props)
	return props
}

func (e Enhanced) GetPhysicalDeviceFeatures(physicalDevice PhysicalDevice) PhysicalDeviceFeatures {
	var features PhysicalDeviceFeatures
	e.Dispatch.GetPhysicalDeviceFeatures(physicalDevice, &features)
	return features
}

func (e Enhanced) GetPhysicalDeviceMemoryProperties(physicalDevice PhysicalDevice) PhysicalDeviceMemoryProperties {
	var props PhysicalDeviceMemoryProperties
	e.Dispatch.GetPhysicalDeviceMemoryProperties(physicalDevice, &props)
	return props
}

func (e Enhanced) GetPhysicalDeviceFormatProperties(physicalDevice PhysicalDevice, format Format) FormatProperties {
	var props FormatProperties
	e.Dispatch.GetPhysicalDeviceFormatProperties(physicalDevice, format, &props)
	return props
}

func (e Enhanced) CreateInstance(createInfo *InstanceCreateInfo, allocator *AllocationCallbacks) (Instance, Result) {
	var instance Instance
	r := e.Dispatch.CreateInstance(createInfo, allocator, &instance)
	return instance, r
}

func (e Enhanced) CreateDevice(physicalDevice PhysicalDevice, createInfo *DeviceCreateInfo, allocator *AllocationCallbacks) (Device, Result) {
	var device Device
	r := e.Dispatch.CreateDevice(physicalDevice, createInfo, allocator, &device)
	return device, r
}

func (e Enhanced) GetDeviceQueue(device Device, queueFamilyIndex, queueIndex uint32) Queue {
	var queue Queue
	e.Dispatch.GetDeviceQueue(device, queueFamilyIndex, queueIndex, &queue)
	return queue
}

func (e Enhanced) AllocateMemory(device Device, allocateInfo *MemoryAllocateInfo, allocator *AllocationCallbacks) (DeviceMemory, Result) {
	var memory DeviceMemory
	r := e.Dispatch.AllocateMemory(device, allocateInfo, allocator, &memory)
	return memory, r
}

func (e Enhanced) MapMemory(device Device, memory DeviceMemory, offset, size DeviceSize, flags MemoryMapFlags) (unsafe.Pointer, Result) {
	var data unsafe.Pointer
	r := e.Dispatch.MapMemory(device, memory, offset, size, flags, &data)
	return data, r
}

func (e Enhanced) GetBufferMemoryRequirements(device Device, buffer Buffer) MemoryRequirements {
	var reqs MemoryRequirements
	e.Dispatch.GetBufferMemoryRequirements(device, buffer, &reqs)
	return reqs
}

func (e Enhanced) GetImageMemoryRequirements(device Device, image Image) MemoryRequirements {
	var reqs MemoryRequirements
	e.Dispatch.GetImageMemoryRequirements(device, image, &reqs)
	return reqs
}

func (e Enhanced) CreateBuffer(device Device, createInfo *BufferCreateInfo, allocator *AllocationCallbacks) (Buffer, Result) {
	var buffer Buffer
	r := e.Dispatch.CreateBuffer(device, createInfo, allocator, &buffer)
	return buffer, r
}

func (e Enhanced) CreateImage(device Device, createInfo *ImageCreateInfo, allocator *AllocationCallbacks) (Image, Result) {
	var image Image
	r := e.Dispatch.CreateImage(device, createInfo, allocator, &image)
	return image, r
}

func (e Enhanced) CreateImageView(device Device, createInfo *ImageViewCreateInfo, allocator *AllocationCallbacks) (ImageView, Result) {
	var view ImageView
	r := e.Dispatch.CreateImageView(device, createInfo, allocator, &view)
	return view, r
}

func (e Enhanced) CreateShaderModule(device Device, createInfo *ShaderModuleCreateInfo, allocator *AllocationCallbacks) (ShaderModule, Result) {
	var module ShaderModule
	r := e.Dispatch.CreateShaderModule(device, createInfo, allocator, &module)
	return module, r
}

func (e Enhanced) CreateFence(device Device, createInfo *FenceCreateInfo, allocator *AllocationCallbacks) (Fence, Result) {
	var fence Fence
	r := e.Dispatch.CreateFence(device, createInfo, allocator, &fence)
	return fence, r
}

func (e Enhanced) CreateSemaphore(device Device, createInfo *SemaphoreCreateInfo, allocator *AllocationCallbacks) (Semaphore, Result) {
	var semaphore Semaphore
	r := e.Dispatch.CreateSemaphore(device, createInfo, allocator, &semaphore)
	return semaphore, r
}

func (e Enhanced) CreateEvent(device Device, createInfo *EventCreateInfo, allocator *AllocationCallbacks) (Event, Result) {
	var event Event
	r := e.Dispatch.CreateEvent(device, createInfo, allocator, &event)
	return event, r
}

func (e Enhanced) CreateDescriptorSetLayout(device Device, createInfo *DescriptorSetLayoutCreateInfo, allocator *AllocationCallbacks) (DescriptorSetLayout, Result) {
	var layout DescriptorSetLayout
	r := e.Dispatch.CreateDescriptorSetLayout(device, createInfo, allocator, &layout)
	return layout, r
}

func (e Enhanced) CreateDescriptorPool(device Device, createInfo *DescriptorPoolCreateInfo, allocator *AllocationCallbacks) (DescriptorPool, Result) {
	var pool DescriptorPool
	r := e.Dispatch.CreateDescriptorPool(device, createInfo, allocator, &pool)
	return pool, r
}

// AllocateDescriptorSets returns one set per layout in allocateInfo. On
// failure the slice is nil.
func (e Enhanced) AllocateDescriptorSets(device Device, allocateInfo *DescriptorSetAllocateInfo) ([]DescriptorSet, Result) {
	sets := make([]DescriptorSet, allocateInfo.DescriptorSetCount())
	var p *DescriptorSet
	if len(sets) > 0 {
		p = &sets[0]
	}
	if r := e.Dispatch.AllocateDescriptorSets(device, allocateInfo, p); r != SUCCESS {
		return nil, r
	}
	return sets, SUCCESS
}

func (e Enhanced) CreatePipelineLayout(device Device, createInfo *PipelineLayoutCreateInfo, allocator *AllocationCallbacks) (PipelineLayout, Result) {
	var layout PipelineLayout
	r := e.Dispatch.CreatePipelineLayout(device, createInfo, allocator, &layout)
	return layout, r
}

// CreateComputePipelines returns one pipeline per create info. The slice is
// returned even on failure because the driver sets the entries it could not
// create to NULL_HANDLE.
func (e Enhanced) CreateComputePipelines(device Device, pipelineCache PipelineCache, createInfos []ComputePipelineCreateInfo, allocator *AllocationCallbacks) ([]Pipeline, Result) {
	if len(createInfos) == 0 {
		return nil, SUCCESS
	}
	pipelines := make([]Pipeline, len(createInfos))
	r := e.Dispatch.CreateComputePipelines(device, pipelineCache, uint32(len(createInfos)), &createInfos[0], allocator, &pipelines[0])
	return pipelines, r
}

// CreateGraphicsPipelines returns one pipeline per create info, with the same
// partial-failure contract as CreateComputePipelines.
func (e Enhanced) CreateGraphicsPipelines(device Device, pipelineCache PipelineCache, createInfos []GraphicsPipelineCreateInfo, allocator *AllocationCallbacks) ([]Pipeline, Result) {
	if len(createInfos) == 0 {
		return nil, SUCCESS
	}
	pipelines := make([]Pipeline, len(createInfos))
	r := e.Dispatch.CreateGraphicsPipelines(device, pipelineCache, uint32(len(createInfos)), &createInfos[0], allocator, &pipelines[0])
	return pipelines, r
}

func (e Enhanced) CreateSampler(device Device, createInfo *SamplerCreateInfo, allocator *AllocationCallbacks) (Sampler, Result) {
	var sampler Sampler
	r := e.Dispatch.CreateSampler(device, createInfo, allocator, &sampler)
	return sampler, r
}

// GetImageSparseMemoryRequirements returns nil for images created without
// sparse residency.
func (e Enhanced) GetImageSparseMemoryRequirements(device Device, image Image) []SparseImageMemoryRequirements {
	reqs, _ := enumerate(func(n *uint32, p *SparseImageMemoryRequirements) Result {
		e.Dispatch.GetImageSparseMemoryRequirements(device, image, n, p)
		return SUCCESS
	})
	return reqs
}

func (e Enhanced) CreateRenderPass(device Device, createInfo *RenderPassCreateInfo, allocator *AllocationCallbacks) (RenderPass, Result) {
	var renderPass RenderPass
	r := e.Dispatch.CreateRenderPass(device, createInfo, allocator, &renderPass)
	return renderPass, r
}

func (e Enhanced) CreateFramebuffer(device Device, createInfo *FramebufferCreateInfo, allocator *AllocationCallbacks) (Framebuffer, Result) {
	var framebuffer Framebuffer
	r := e.Dispatch.CreateFramebuffer(device, createInfo, allocator, &framebuffer)
	return framebuffer, r
}

func (e Enhanced) CreateCommandPool(device Device, createInfo *CommandPoolCreateInfo, allocator *AllocationCallbacks) (CommandPool, Result) {
	var pool CommandPool
	r := e.Dispatch.CreateCommandPool(device, createInfo, allocator, &pool)
	return pool, r
}

func (e Enhanced) AllocateCommandBuffers(device Device, allocateInfo *CommandBufferAllocateInfo) ([]CommandBuffer, Result) {
	buffers := make([]CommandBuffer, allocateInfo.CommandBufferCount())
	var p *CommandBuffer
	if len(buffers) > 0 {
		p = &buffers[0]
	}
	if r := e.Dispatch.AllocateCommandBuffers(device, allocateInfo, p); r != SUCCESS {
		return nil, r
	}
	return buffers, SUCCESS
}

func (e Enhanced) GetPhysicalDeviceSurfaceSupportKHR(physicalDevice PhysicalDevice, queueFamilyIndex uint32, surface SurfaceKHR) (bool, Result) {
	var supported Bool32
	r := e.Dispatch.GetPhysicalDeviceSurfaceSupportKHR(physicalDevice, queueFamilyIndex, surface, &supported)
	return supported != FALSE, r
}

func (e Enhanced) GetPhysicalDeviceSurfaceCapabilitiesKHR(physicalDevice PhysicalDevice, surface SurfaceKHR) (SurfaceCapabilitiesKHR, Result) {
	var caps SurfaceCapabilitiesKHR
	r := e.Dispatch.GetPhysicalDeviceSurfaceCapabilitiesKHR(physicalDevice, surface, &caps)
	return caps, r
}

func (e Enhanced) GetPhysicalDeviceSurfaceFormatsKHR(physicalDevice PhysicalDevice, surface SurfaceKHR) ([]SurfaceFormatKHR, Result) {
	return enumerate(func(n *uint32, p *SurfaceFormatKHR) Result {
		return e.Dispatch.GetPhysicalDeviceSurfaceFormatsKHR(physicalDevice, surface, n, p)
	})
}

func (e Enhanced) GetPhysicalDeviceSurfacePresentModesKHR(physicalDevice PhysicalDevice, surface SurfaceKHR) ([]PresentModeKHR, Result) {
	return enumerate(func(n *uint32, p *PresentModeKHR) Result {
		return e.Dispatch.GetPhysicalDeviceSurfacePresentModesKHR(physicalDevice, surface, n, p)
	})
}

func (e Enhanced) CreateSwapchainKHR(device Device, createInfo *SwapchainCreateInfoKHR, allocator *AllocationCallbacks) (SwapchainKHR, Result) {
	var swapchain SwapchainKHR
	r := e.Dispatch.CreateSwapchainKHR(device, createInfo, allocator, &swapchain)
	return swapchain, r
}

func (e Enhanced) GetSwapchainImagesKHR(device Device, swapchain SwapchainKHR) ([]Image, Result) {
	return enumerate(func(n *uint32, p *Image) Result {
		return e.Dispatch.GetSwapchainImagesKHR(device, swapchain, n, p)
	})
}

// AcquireNextImageKHR returns the acquired index. SUBOPTIMAL still carries a
// valid index.
func (e Enhanced) AcquireNextImageKHR(device Device, swapchain SwapchainKHR, timeout uint64, semaphore Semaphore, fence Fence) (uint32, Result) {
	var index uint32
	r := e.Dispatch.AcquireNextImageKHR(device, swapchain, timeout, semaphore, fence, &index)
	return index, r
}
