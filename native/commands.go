// commands.go
package native

import "unsafe"

// Commands is the table of driver entry points. Each field has the C signature
// of the Vulkan command of the same name (without the vk prefix). A nil field
// behaves like a NULL function pointer: calling it panics.
type Commands struct {
	CreateInstance                       func(pCreateInfo *InstanceCreateInfo, pAllocator *AllocationCallbacks, pInstance *Instance) Result
	DestroyInstance                      func(instance Instance, pAllocator *AllocationCallbacks)
	EnumerateInstanceVersion             func(pApiVersion *uint32) Result
	EnumerateInstanceLayerProperties     func(pPropertyCount *uint32, pProperties *LayerProperties) Result
	EnumerateInstanceExtensionProperties func(pLayerName *byte, pPropertyCount *uint32, pProperties *ExtensionProperties) Result
	EnumeratePhysicalDevices             func(instance Instance, pPhysicalDeviceCount *uint32, pPhysicalDevices *PhysicalDevice) Result

	GetPhysicalDeviceProperties            func(physicalDevice PhysicalDevice, pProperties *PhysicalDeviceProperties)
	GetPhysicalDeviceFeatures              func(physicalDevice PhysicalDevice, pFeatures *PhysicalDeviceFeatures)
	GetPhysicalDeviceQueueFamilyProperties func(physicalDevice PhysicalDevice, pQueueFamilyPropertyCount *uint32, pQueueFamilyProperties *QueueFamilyProperties)
	GetPhysicalDeviceMemoryProperties      func(physicalDevice PhysicalDevice, pMemoryProperties *PhysicalDeviceMemoryProperties)
	GetPhysicalDeviceFormatProperties      func(physicalDevice PhysicalDevice, format int32, pFormatProperties *FormatProperties)
	EnumerateDeviceLayerProperties         func(physicalDevice PhysicalDevice, pPropertyCount *uint32, pProperties *LayerProperties) Result
	EnumerateDeviceExtensionProperties     func(physicalDevice PhysicalDevice, pLayerName *byte, pPropertyCount *uint32, pProperties *ExtensionProperties) Result

	CreateDevice   func(physicalDevice PhysicalDevice, pCreateInfo *DeviceCreateInfo, pAllocator *AllocationCallbacks, pDevice *Device) Result
	DestroyDevice  func(device Device, pAllocator *AllocationCallbacks)
	GetDeviceQueue func(device Device, queueFamilyIndex uint32, queueIndex uint32, pQueue *Queue)
	DeviceWaitIdle func(device Device) Result

	QueueSubmit      func(queue Queue, submitCount uint32, pSubmits *SubmitInfo, fence Fence) Result
	QueueWaitIdle    func(queue Queue) Result
	CreateFence      func(device Device, pCreateInfo *FenceCreateInfo, pAllocator *AllocationCallbacks, pFence *Fence) Result
	DestroyFence     func(device Device, fence Fence, pAllocator *AllocationCallbacks)
	ResetFences      func(device Device, fenceCount uint32, pFences *Fence) Result
	GetFenceStatus   func(device Device, fence Fence) Result
	WaitForFences    func(device Device, fenceCount uint32, pFences *Fence, waitAll Bool32, timeout uint64) Result
	CreateSemaphore  func(device Device, pCreateInfo *SemaphoreCreateInfo, pAllocator *AllocationCallbacks, pSemaphore *Semaphore) Result
	DestroySemaphore func(device Device, semaphore Semaphore, pAllocator *AllocationCallbacks)
	CreateEvent      func(device Device, pCreateInfo *EventCreateInfo, pAllocator *AllocationCallbacks, pEvent *Event) Result
	DestroyEvent     func(device Device, event Event, pAllocator *AllocationCallbacks)
	GetEventStatus   func(device Device, event Event) Result
	SetEvent         func(device Device, event Event) Result
	ResetEvent       func(device Device, event Event) Result

	AllocateMemory               func(device Device, pAllocateInfo *MemoryAllocateInfo, pAllocator *AllocationCallbacks, pMemory *DeviceMemory) Result
	FreeMemory                   func(device Device, memory DeviceMemory, pAllocator *AllocationCallbacks)
	MapMemory                    func(device Device, memory DeviceMemory, offset DeviceSize, size DeviceSize, flags Flags, ppData *unsafe.Pointer) Result
	UnmapMemory                  func(device Device, memory DeviceMemory)
	FlushMappedMemoryRanges      func(device Device, memoryRangeCount uint32, pMemoryRanges *MappedMemoryRange) Result
	InvalidateMappedMemoryRanges func(device Device, memoryRangeCount uint32, pMemoryRanges *MappedMemoryRange) Result
	BindBufferMemory             func(device Device, buffer Buffer, memory DeviceMemory, memoryOffset DeviceSize) Result
	GetBufferMemoryRequirements  func(device Device, buffer Buffer, pMemoryRequirements *MemoryRequirements)
	CreateBuffer                 func(device Device, pCreateInfo *BufferCreateInfo, pAllocator *AllocationCallbacks, pBuffer *Buffer) Result
	DestroyBuffer                func(device Device, buffer Buffer, pAllocator *AllocationCallbacks)

	CreateImage                func(device Device, pCreateInfo *ImageCreateInfo, pAllocator *AllocationCallbacks, pImage *Image) Result
	DestroyImage               func(device Device, image Image, pAllocator *AllocationCallbacks)
	BindImageMemory            func(device Device, image Image, memory DeviceMemory, memoryOffset DeviceSize) Result
	GetImageMemoryRequirements func(device Device, image Image, pMemoryRequirements *MemoryRequirements)

	CreateImageView  func(device Device, pCreateInfo *ImageViewCreateInfo, pAllocator *AllocationCallbacks, pView *ImageView) Result
	DestroyImageView func(device Device, imageView ImageView, pAllocator *AllocationCallbacks)

	CreateShaderModule  func(device Device, pCreateInfo *ShaderModuleCreateInfo, pAllocator *AllocationCallbacks, pShaderModule *ShaderModule) Result
	DestroyShaderModule func(device Device, shaderModule ShaderModule, pAllocator *AllocationCallbacks)

	CreateSampler  func(device Device, pCreateInfo *SamplerCreateInfo, pAllocator *AllocationCallbacks, pSampler *Sampler) Result
	DestroySampler func(device Device, sampler Sampler, pAllocator *AllocationCallbacks)

	GetImageSparseMemoryRequirements func(device Device, image Image, pSparseMemoryRequirementCount *uint32, pSparseMemoryRequirements *SparseImageMemoryRequirements)
	QueueBindSparse                  func(queue Queue, bindInfoCount uint32, pBindInfo *BindSparseInfo, fence Fence) Result

	CreateDescriptorSetLayout  func(device Device, pCreateInfo *DescriptorSetLayoutCreateInfo, pAllocator *AllocationCallbacks, pSetLayout *DescriptorSetLayout) Result
	DestroyDescriptorSetLayout func(device Device, descriptorSetLayout DescriptorSetLayout, pAllocator *AllocationCallbacks)
	CreateDescriptorPool       func(device Device, pCreateInfo *DescriptorPoolCreateInfo, pAllocator *AllocationCallbacks, pDescriptorPool *DescriptorPool) Result
	DestroyDescriptorPool      func(device Device, descriptorPool DescriptorPool, pAllocator *AllocationCallbacks)
	ResetDescriptorPool        func(device Device, descriptorPool DescriptorPool, flags Flags) Result
	AllocateDescriptorSets     func(device Device, pAllocateInfo *DescriptorSetAllocateInfo, pDescriptorSets *DescriptorSet) Result
	FreeDescriptorSets         func(device Device, descriptorPool DescriptorPool, descriptorSetCount uint32, pDescriptorSets *DescriptorSet) Result
	UpdateDescriptorSets       func(device Device, descriptorWriteCount uint32, pDescriptorWrites *WriteDescriptorSet, descriptorCopyCount uint32, pDescriptorCopies unsafe.Pointer)

	CreatePipelineLayout    func(device Device, pCreateInfo *PipelineLayoutCreateInfo, pAllocator *AllocationCallbacks, pPipelineLayout *PipelineLayout) Result
	DestroyPipelineLayout   func(device Device, pipelineLayout PipelineLayout, pAllocator *AllocationCallbacks)
	CreateComputePipelines  func(device Device, pipelineCache PipelineCache, createInfoCount uint32, pCreateInfos *ComputePipelineCreateInfo, pAllocator *AllocationCallbacks, pPipelines *Pipeline) Result
	CreateGraphicsPipelines func(device Device, pipelineCache PipelineCache, createInfoCount uint32, pCreateInfos *GraphicsPipelineCreateInfo, pAllocator *AllocationCallbacks, pPipelines *Pipeline) Result
	DestroyPipeline         func(device Device, pipeline Pipeline, pAllocator *AllocationCallbacks)

	CreateRenderPass   func(device Device, pCreateInfo *RenderPassCreateInfo, pAllocator *AllocationCallbacks, pRenderPass *RenderPass) Result
	DestroyRenderPass  func(device Device, renderPass RenderPass, pAllocator *AllocationCallbacks)
	CreateFramebuffer  func(device Device, pCreateInfo *FramebufferCreateInfo, pAllocator *AllocationCallbacks, pFramebuffer *Framebuffer) Result
	DestroyFramebuffer func(device Device, framebuffer Framebuffer, pAllocator *AllocationCallbacks)

	CreateCommandPool      func(device Device, pCreateInfo *CommandPoolCreateInfo, pAllocator *AllocationCallbacks, pCommandPool *CommandPool) Result
	DestroyCommandPool     func(device Device, commandPool CommandPool, pAllocator *AllocationCallbacks)
	ResetCommandPool       func(device Device, commandPool CommandPool, flags Flags) Result
	AllocateCommandBuffers func(device Device, pAllocateInfo *CommandBufferAllocateInfo, pCommandBuffers *CommandBuffer) Result
	FreeCommandBuffers     func(device Device, commandPool CommandPool, commandBufferCount uint32, pCommandBuffers *CommandBuffer)
	BeginCommandBuffer     func(commandBuffer CommandBuffer, pBeginInfo *CommandBufferBeginInfo) Result
	EndCommandBuffer       func(commandBuffer CommandBuffer) Result
	ResetCommandBuffer     func(commandBuffer CommandBuffer, flags Flags) Result
	CmdBindPipeline        func(commandBuffer CommandBuffer, pipelineBindPoint int32, pipeline Pipeline)
	CmdBindDescriptorSets  func(commandBuffer CommandBuffer, pipelineBindPoint int32, layout PipelineLayout, firstSet uint32, descriptorSetCount uint32, pDescriptorSets *DescriptorSet, dynamicOffsetCount uint32, pDynamicOffsets *uint32)
	CmdBindVertexBuffers   func(commandBuffer CommandBuffer, firstBinding uint32, bindingCount uint32, pBuffers *Buffer, pOffsets *DeviceSize)
	CmdBindIndexBuffer     func(commandBuffer CommandBuffer, buffer Buffer, offset DeviceSize, indexType int32)
	CmdDispatch            func(commandBuffer CommandBuffer, groupCountX uint32, groupCountY uint32, groupCountZ uint32)
	CmdDraw                func(commandBuffer CommandBuffer, vertexCount uint32, instanceCount uint32, firstVertex uint32, firstInstance uint32)
	CmdDrawIndexed         func(commandBuffer CommandBuffer, indexCount uint32, instanceCount uint32, firstIndex uint32, vertexOffset int32, firstInstance uint32)
	CmdSetViewport         func(commandBuffer CommandBuffer, firstViewport uint32, viewportCount uint32, pViewports *Viewport)
	CmdSetScissor          func(commandBuffer CommandBuffer, firstScissor uint32, scissorCount uint32, pScissors *Rect2D)
	CmdCopyBuffer          func(commandBuffer CommandBuffer, srcBuffer Buffer, dstBuffer Buffer, regionCount uint32, pRegions *BufferCopy)
	CmdCopyBufferToImage   func(commandBuffer CommandBuffer, srcBuffer Buffer, dstImage Image, dstImageLayout int32, regionCount uint32, pRegions *BufferImageCopy)
	CmdFillBuffer          func(commandBuffer CommandBuffer, dstBuffer Buffer, dstOffset DeviceSize, size DeviceSize, data uint32)
	CmdUpdateBuffer        func(commandBuffer CommandBuffer, dstBuffer Buffer, dstOffset DeviceSize, dataSize DeviceSize, pData unsafe.Pointer)
	CmdClearColorImage     func(commandBuffer CommandBuffer, image Image, imageLayout int32, pColor *ClearColorValue, rangeCount uint32, pRanges *ImageSubresourceRange)
	CmdPipelineBarrier     func(commandBuffer CommandBuffer, srcStageMask Flags, dstStageMask Flags, dependencyFlags Flags, memoryBarrierCount uint32, pMemoryBarriers *MemoryBarrier, bufferMemoryBarrierCount uint32, pBufferMemoryBarriers *BufferMemoryBarrier, imageMemoryBarrierCount uint32, pImageMemoryBarriers *ImageMemoryBarrier)
	CmdPushConstants       func(commandBuffer CommandBuffer, layout PipelineLayout, stageFlags Flags, offset uint32, size uint32, pValues unsafe.Pointer)
	CmdBeginRenderPass     func(commandBuffer CommandBuffer, pRenderPassBegin *RenderPassBeginInfo, contents int32)
	CmdEndRenderPass       func(commandBuffer CommandBuffer)
	CmdBeginRendering      func(commandBuffer CommandBuffer, pRenderingInfo *RenderingInfo)
	CmdEndRendering        func(commandBuffer CommandBuffer)

	DestroySurfaceKHR                       func(instance Instance, surface SurfaceKHR, pAllocator *AllocationCallbacks)
	GetPhysicalDeviceSurfaceSupportKHR      func(physicalDevice PhysicalDevice, queueFamilyIndex uint32, surface SurfaceKHR, pSupported *Bool32) Result
	GetPhysicalDeviceSurfaceCapabilitiesKHR func(physicalDevice PhysicalDevice, surface SurfaceKHR, pSurfaceCapabilities *SurfaceCapabilitiesKHR) Result
	GetPhysicalDeviceSurfaceFormatsKHR      func(physicalDevice PhysicalDevice, surface SurfaceKHR, pSurfaceFormatCount *uint32, pSurfaceFormats *SurfaceFormatKHR) Result
	GetPhysicalDeviceSurfacePresentModesKHR func(physicalDevice PhysicalDevice, surface SurfaceKHR, pPresentModeCount *uint32, pPresentModes *int32) Result

	CreateSwapchainKHR    func(device Device, pCreateInfo *SwapchainCreateInfoKHR, pAllocator *AllocationCallbacks, pSwapchain *SwapchainKHR) Result
	DestroySwapchainKHR   func(device Device, swapchain SwapchainKHR, pAllocator *AllocationCallbacks)
	GetSwapchainImagesKHR func(device Device, swapchain SwapchainKHR, pSwapchainImageCount *uint32, pSwapchainImages *Image) Result
	AcquireNextImageKHR   func(device Device, swapchain SwapchainKHR, timeout uint64, semaphore Semaphore, fence Fence, pImageIndex *uint32) Result
	QueuePresentKHR       func(queue Queue, pPresentInfo *PresentInfoKHR) Result

	CreateXlibSurfaceKHR                        func(instance Instance, pCreateInfo *XlibSurfaceCreateInfoKHR, pAllocator *AllocationCallbacks, pSurface *SurfaceKHR) Result
	GetPhysicalDeviceXlibPresentationSupportKHR func(physicalDevice PhysicalDevice, queueFamilyIndex uint32, dpy unsafe.Pointer, visualID uint) Bool32

	CreateXcbSurfaceKHR                        func(instance Instance, pCreateInfo *XcbSurfaceCreateInfoKHR, pAllocator *AllocationCallbacks, pSurface *SurfaceKHR) Result
	GetPhysicalDeviceXcbPresentationSupportKHR func(physicalDevice PhysicalDevice, queueFamilyIndex uint32, connection unsafe.Pointer, visualID uint32) Bool32

	CreateWaylandSurfaceKHR                        func(instance Instance, pCreateInfo *WaylandSurfaceCreateInfoKHR, pAllocator *AllocationCallbacks, pSurface *SurfaceKHR) Result
	GetPhysicalDeviceWaylandPresentationSupportKHR func(physicalDevice PhysicalDevice, queueFamilyIndex uint32, display unsafe.Pointer) Bool32

	CreateMirSurfaceKHR                        func(instance Instance, pCreateInfo *MirSurfaceCreateInfoKHR, pAllocator *AllocationCallbacks, pSurface *SurfaceKHR) Result
	GetPhysicalDeviceMirPresentationSupportKHR func(physicalDevice PhysicalDevice, queueFamilyIndex uint32, connection unsafe.Pointer) Bool32

	CreateAndroidSurfaceKHR func(instance Instance, pCreateInfo *AndroidSurfaceCreateInfoKHR, pAllocator *AllocationCallbacks, pSurface *SurfaceKHR) Result

	CreateWin32SurfaceKHR                        func(instance Instance, pCreateInfo *Win32SurfaceCreateInfoKHR, pAllocator *AllocationCallbacks, pSurface *SurfaceKHR) Result
	GetPhysicalDeviceWin32PresentationSupportKHR func(physicalDevice PhysicalDevice, queueFamilyIndex uint32) Bool32
}
