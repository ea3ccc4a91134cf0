package native

import (
	"testing"
	"unsafe"
)

// Expected sizes follow the LP64/LLP64 C layout of vulkan_core.h on 64-bit targets.
func TestStructSizes(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("layout table is for 64-bit targets")
	}

	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"Offset2D", unsafe.Sizeof(Offset2D{}), 8},
		{"Offset3D", unsafe.Sizeof(Offset3D{}), 12},
		{"Extent2D", unsafe.Sizeof(Extent2D{}), 8},
		{"Extent3D", unsafe.Sizeof(Extent3D{}), 12},
		{"Rect2D", unsafe.Sizeof(Rect2D{}), 16},
		{"Viewport", unsafe.Sizeof(Viewport{}), 24},
		{"ApplicationInfo", unsafe.Sizeof(ApplicationInfo{}), 48},
		{"InstanceCreateInfo", unsafe.Sizeof(InstanceCreateInfo{}), 64},
		{"AllocationCallbacks", unsafe.Sizeof(AllocationCallbacks{}), 48},
		{"LayerProperties", unsafe.Sizeof(LayerProperties{}), 520},
		{"ExtensionProperties", unsafe.Sizeof(ExtensionProperties{}), 260},
		{"PhysicalDeviceLimits", unsafe.Sizeof(PhysicalDeviceLimits{}), 504},
		{"PhysicalDeviceSparseProperties", unsafe.Sizeof(PhysicalDeviceSparseProperties{}), 20},
		{"PhysicalDeviceProperties", unsafe.Sizeof(PhysicalDeviceProperties{}), 824},
		{"PhysicalDeviceFeatures", unsafe.Sizeof(PhysicalDeviceFeatures{}), 220},
		{"QueueFamilyProperties", unsafe.Sizeof(QueueFamilyProperties{}), 24},
		{"MemoryType", unsafe.Sizeof(MemoryType{}), 8},
		{"MemoryHeap", unsafe.Sizeof(MemoryHeap{}), 16},
		{"PhysicalDeviceMemoryProperties", unsafe.Sizeof(PhysicalDeviceMemoryProperties{}), 520},
		{"FormatProperties", unsafe.Sizeof(FormatProperties{}), 12},
		{"DeviceQueueCreateInfo", unsafe.Sizeof(DeviceQueueCreateInfo{}), 40},
		{"DeviceCreateInfo", unsafe.Sizeof(DeviceCreateInfo{}), 72},
		{"SubmitInfo", unsafe.Sizeof(SubmitInfo{}), 72},
		{"FenceCreateInfo", unsafe.Sizeof(FenceCreateInfo{}), 24},
		{"SemaphoreCreateInfo", unsafe.Sizeof(SemaphoreCreateInfo{}), 24},
		{"EventCreateInfo", unsafe.Sizeof(EventCreateInfo{}), 24},
		{"MemoryAllocateInfo", unsafe.Sizeof(MemoryAllocateInfo{}), 32},
		{"MappedMemoryRange", unsafe.Sizeof(MappedMemoryRange{}), 40},
		{"MemoryRequirements", unsafe.Sizeof(MemoryRequirements{}), 24},
		{"BufferCreateInfo", unsafe.Sizeof(BufferCreateInfo{}), 56},
		{"ImageCreateInfo", unsafe.Sizeof(ImageCreateInfo{}), 88},
		{"ComponentMapping", unsafe.Sizeof(ComponentMapping{}), 16},
		{"ImageSubresourceRange", unsafe.Sizeof(ImageSubresourceRange{}), 20},
		{"ImageSubresourceLayers", unsafe.Sizeof(ImageSubresourceLayers{}), 16},
		{"ImageViewCreateInfo", unsafe.Sizeof(ImageViewCreateInfo{}), 80},
		{"ShaderModuleCreateInfo", unsafe.Sizeof(ShaderModuleCreateInfo{}), 40},
		{"CommandPoolCreateInfo", unsafe.Sizeof(CommandPoolCreateInfo{}), 24},
		{"CommandBufferAllocateInfo", unsafe.Sizeof(CommandBufferAllocateInfo{}), 32},
		{"CommandBufferInheritanceInfo", unsafe.Sizeof(CommandBufferInheritanceInfo{}), 56},
		{"CommandBufferBeginInfo", unsafe.Sizeof(CommandBufferBeginInfo{}), 32},
		{"BufferCopy", unsafe.Sizeof(BufferCopy{}), 24},
		{"BufferImageCopy", unsafe.Sizeof(BufferImageCopy{}), 56},
		{"MemoryBarrier", unsafe.Sizeof(MemoryBarrier{}), 24},
		{"BufferMemoryBarrier", unsafe.Sizeof(BufferMemoryBarrier{}), 56},
		{"ImageMemoryBarrier", unsafe.Sizeof(ImageMemoryBarrier{}), 72},
		{"RenderingAttachmentInfo", unsafe.Sizeof(RenderingAttachmentInfo{}), 72},
		{"RenderingInfo", unsafe.Sizeof(RenderingInfo{}), 72},
		{"AttachmentDescription", unsafe.Sizeof(AttachmentDescription{}), 36},
		{"AttachmentReference", unsafe.Sizeof(AttachmentReference{}), 8},
		{"SubpassDescription", unsafe.Sizeof(SubpassDescription{}), 72},
		{"SubpassDependency", unsafe.Sizeof(SubpassDependency{}), 28},
		{"RenderPassCreateInfo", unsafe.Sizeof(RenderPassCreateInfo{}), 64},
		{"FramebufferCreateInfo", unsafe.Sizeof(FramebufferCreateInfo{}), 64},
		{"RenderPassBeginInfo", unsafe.Sizeof(RenderPassBeginInfo{}), 64},
		{"DescriptorSetLayoutBinding", unsafe.Sizeof(DescriptorSetLayoutBinding{}), 24},
		{"DescriptorSetLayoutCreateInfo", unsafe.Sizeof(DescriptorSetLayoutCreateInfo{}), 32},
		{"DescriptorPoolSize", unsafe.Sizeof(DescriptorPoolSize{}), 8},
		{"DescriptorPoolCreateInfo", unsafe.Sizeof(DescriptorPoolCreateInfo{}), 40},
		{"DescriptorSetAllocateInfo", unsafe.Sizeof(DescriptorSetAllocateInfo{}), 40},
		{"DescriptorBufferInfo", unsafe.Sizeof(DescriptorBufferInfo{}), 24},
		{"DescriptorImageInfo", unsafe.Sizeof(DescriptorImageInfo{}), 24},
		{"WriteDescriptorSet", unsafe.Sizeof(WriteDescriptorSet{}), 64},
		{"PushConstantRange", unsafe.Sizeof(PushConstantRange{}), 12},
		{"PipelineLayoutCreateInfo", unsafe.Sizeof(PipelineLayoutCreateInfo{}), 48},
		{"SpecializationMapEntry", unsafe.Sizeof(SpecializationMapEntry{}), 16},
		{"SpecializationInfo", unsafe.Sizeof(SpecializationInfo{}), 32},
		{"PipelineShaderStageCreateInfo", unsafe.Sizeof(PipelineShaderStageCreateInfo{}), 48},
		{"ComputePipelineCreateInfo", unsafe.Sizeof(ComputePipelineCreateInfo{}), 96},
		{"VertexInputBindingDescription", unsafe.Sizeof(VertexInputBindingDescription{}), 12},
		{"VertexInputAttributeDescription", unsafe.Sizeof(VertexInputAttributeDescription{}), 16},
		{"PipelineVertexInputStateCreateInfo", unsafe.Sizeof(PipelineVertexInputStateCreateInfo{}), 48},
		{"PipelineInputAssemblyStateCreateInfo", unsafe.Sizeof(PipelineInputAssemblyStateCreateInfo{}), 32},
		{"PipelineTessellationStateCreateInfo", unsafe.Sizeof(PipelineTessellationStateCreateInfo{}), 24},
		{"PipelineViewportStateCreateInfo", unsafe.Sizeof(PipelineViewportStateCreateInfo{}), 48},
		{"PipelineRasterizationStateCreateInfo", unsafe.Sizeof(PipelineRasterizationStateCreateInfo{}), 64},
		{"PipelineMultisampleStateCreateInfo", unsafe.Sizeof(PipelineMultisampleStateCreateInfo{}), 48},
		{"StencilOpState", unsafe.Sizeof(StencilOpState{}), 28},
		{"PipelineDepthStencilStateCreateInfo", unsafe.Sizeof(PipelineDepthStencilStateCreateInfo{}), 104},
		{"PipelineColorBlendAttachmentState", unsafe.Sizeof(PipelineColorBlendAttachmentState{}), 32},
		{"PipelineColorBlendStateCreateInfo", unsafe.Sizeof(PipelineColorBlendStateCreateInfo{}), 56},
		{"PipelineDynamicStateCreateInfo", unsafe.Sizeof(PipelineDynamicStateCreateInfo{}), 32},
		{"GraphicsPipelineCreateInfo", unsafe.Sizeof(GraphicsPipelineCreateInfo{}), 144},
		{"PipelineRenderingCreateInfo", unsafe.Sizeof(PipelineRenderingCreateInfo{}), 40},
		{"SamplerCreateInfo", unsafe.Sizeof(SamplerCreateInfo{}), 80},
		{"SparseMemoryBind", unsafe.Sizeof(SparseMemoryBind{}), 40},
		{"SparseBufferMemoryBindInfo", unsafe.Sizeof(SparseBufferMemoryBindInfo{}), 24},
		{"SparseImageOpaqueMemoryBindInfo", unsafe.Sizeof(SparseImageOpaqueMemoryBindInfo{}), 24},
		{"ImageSubresource", unsafe.Sizeof(ImageSubresource{}), 12},
		{"SparseImageMemoryBind", unsafe.Sizeof(SparseImageMemoryBind{}), 64},
		{"SparseImageMemoryBindInfo", unsafe.Sizeof(SparseImageMemoryBindInfo{}), 24},
		{"BindSparseInfo", unsafe.Sizeof(BindSparseInfo{}), 96},
		{"SparseImageFormatProperties", unsafe.Sizeof(SparseImageFormatProperties{}), 20},
		{"SparseImageMemoryRequirements", unsafe.Sizeof(SparseImageMemoryRequirements{}), 48},
		{"SurfaceCapabilitiesKHR", unsafe.Sizeof(SurfaceCapabilitiesKHR{}), 52},
		{"SurfaceFormatKHR", unsafe.Sizeof(SurfaceFormatKHR{}), 8},
		{"SwapchainCreateInfoKHR", unsafe.Sizeof(SwapchainCreateInfoKHR{}), 104},
		{"PresentInfoKHR", unsafe.Sizeof(PresentInfoKHR{}), 64},
		{"XlibSurfaceCreateInfoKHR", unsafe.Sizeof(XlibSurfaceCreateInfoKHR{}), 40},
		{"XcbSurfaceCreateInfoKHR", unsafe.Sizeof(XcbSurfaceCreateInfoKHR{}), 40},
		{"WaylandSurfaceCreateInfoKHR", unsafe.Sizeof(WaylandSurfaceCreateInfoKHR{}), 40},
		{"MirSurfaceCreateInfoKHR", unsafe.Sizeof(MirSurfaceCreateInfoKHR{}), 40},
		{"AndroidSurfaceCreateInfoKHR", unsafe.Sizeof(AndroidSurfaceCreateInfoKHR{}), 32},
		{"Win32SurfaceCreateInfoKHR", unsafe.Sizeof(Win32SurfaceCreateInfoKHR{}), 40},
		{"ClearColorValue", unsafe.Sizeof(ClearColorValue{}), 16},
		{"ClearDepthStencilValue", unsafe.Sizeof(ClearDepthStencilValue{}), 8},
		{"ClearValue", unsafe.Sizeof(ClearValue{}), 16},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("sizeof(%s) = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

// Same-sized fields in the wrong order keep the struct size intact, so every
// field position is pinned as well.
func TestFieldOffsets(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("layout table is for 64-bit targets")
	}

	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"Offset2D.x", unsafe.Offsetof(Offset2D{}.X), 0},
		{"Offset2D.y", unsafe.Offsetof(Offset2D{}.Y), 4},
		{"Offset3D.x", unsafe.Offsetof(Offset3D{}.X), 0},
		{"Offset3D.y", unsafe.Offsetof(Offset3D{}.Y), 4},
		{"Offset3D.z", unsafe.Offsetof(Offset3D{}.Z), 8},
		{"Extent2D.width", unsafe.Offsetof(Extent2D{}.Width), 0},
		{"Extent2D.height", unsafe.Offsetof(Extent2D{}.Height), 4},
		{"Extent3D.width", unsafe.Offsetof(Extent3D{}.Width), 0},
		{"Extent3D.height", unsafe.Offsetof(Extent3D{}.Height), 4},
		{"Extent3D.depth", unsafe.Offsetof(Extent3D{}.Depth), 8},
		{"Rect2D.offset", unsafe.Offsetof(Rect2D{}.Offset), 0},
		{"Rect2D.extent", unsafe.Offsetof(Rect2D{}.Extent), 8},
		{"Viewport.x", unsafe.Offsetof(Viewport{}.X), 0},
		{"Viewport.y", unsafe.Offsetof(Viewport{}.Y), 4},
		{"Viewport.width", unsafe.Offsetof(Viewport{}.Width), 8},
		{"Viewport.height", unsafe.Offsetof(Viewport{}.Height), 12},
		{"Viewport.minDepth", unsafe.Offsetof(Viewport{}.MinDepth), 16},
		{"Viewport.maxDepth", unsafe.Offsetof(Viewport{}.MaxDepth), 20},
		{"ApplicationInfo.sType", unsafe.Offsetof(ApplicationInfo{}.SType), 0},
		{"ApplicationInfo.pNext", unsafe.Offsetof(ApplicationInfo{}.PNext), 8},
		{"ApplicationInfo.pApplicationName", unsafe.Offsetof(ApplicationInfo{}.PApplicationName), 16},
		{"ApplicationInfo.applicationVersion", unsafe.Offsetof(ApplicationInfo{}.ApplicationVersion), 24},
		{"ApplicationInfo.pEngineName", unsafe.Offsetof(ApplicationInfo{}.PEngineName), 32},
		{"ApplicationInfo.engineVersion", unsafe.Offsetof(ApplicationInfo{}.EngineVersion), 40},
		{"ApplicationInfo.apiVersion", unsafe.Offsetof(ApplicationInfo{}.ApiVersion), 44},
		{"InstanceCreateInfo.sType", unsafe.Offsetof(InstanceCreateInfo{}.SType), 0},
		{"InstanceCreateInfo.pNext", unsafe.Offsetof(InstanceCreateInfo{}.PNext), 8},
		{"InstanceCreateInfo.flags", unsafe.Offsetof(InstanceCreateInfo{}.Flags), 16},
		{"InstanceCreateInfo.pApplicationInfo", unsafe.Offsetof(InstanceCreateInfo{}.PApplicationInfo), 24},
		{"InstanceCreateInfo.enabledLayerCount", unsafe.Offsetof(InstanceCreateInfo{}.EnabledLayerCount), 32},
		{"InstanceCreateInfo.ppEnabledLayerNames", unsafe.Offsetof(InstanceCreateInfo{}.PpEnabledLayerNames), 40},
		{"InstanceCreateInfo.enabledExtensionCount", unsafe.Offsetof(InstanceCreateInfo{}.EnabledExtensionCount), 48},
		{"InstanceCreateInfo.ppEnabledExtensionNames", unsafe.Offsetof(InstanceCreateInfo{}.PpEnabledExtensionNames), 56},
		{"AllocationCallbacks.pUserData", unsafe.Offsetof(AllocationCallbacks{}.PUserData), 0},
		{"AllocationCallbacks.pfnAllocation", unsafe.Offsetof(AllocationCallbacks{}.PfnAllocation), 8},
		{"AllocationCallbacks.pfnReallocation", unsafe.Offsetof(AllocationCallbacks{}.PfnReallocation), 16},
		{"AllocationCallbacks.pfnFree", unsafe.Offsetof(AllocationCallbacks{}.PfnFree), 24},
		{"AllocationCallbacks.pfnInternalAllocation", unsafe.Offsetof(AllocationCallbacks{}.PfnInternalAllocation), 32},
		{"AllocationCallbacks.pfnInternalFree", unsafe.Offsetof(AllocationCallbacks{}.PfnInternalFree), 40},
		{"LayerProperties.layerName", unsafe.Offsetof(LayerProperties{}.LayerName), 0},
		{"LayerProperties.specVersion", unsafe.Offsetof(LayerProperties{}.SpecVersion), 256},
		{"LayerProperties.implementationVersion", unsafe.Offsetof(LayerProperties{}.ImplementationVersion), 260},
		{"LayerProperties.description", unsafe.Offsetof(LayerProperties{}.Description), 264},
		{"ExtensionProperties.extensionName", unsafe.Offsetof(ExtensionProperties{}.ExtensionName), 0},
		{"ExtensionProperties.specVersion", unsafe.Offsetof(ExtensionProperties{}.SpecVersion), 256},
		{"PhysicalDeviceLimits.maxImageDimension1D", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxImageDimension1D), 0},
		{"PhysicalDeviceLimits.maxImageDimension2D", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxImageDimension2D), 4},
		{"PhysicalDeviceLimits.maxImageDimension3D", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxImageDimension3D), 8},
		{"PhysicalDeviceLimits.maxImageDimensionCube", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxImageDimensionCube), 12},
		{"PhysicalDeviceLimits.maxImageArrayLayers", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxImageArrayLayers), 16},
		{"PhysicalDeviceLimits.maxTexelBufferElements", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxTexelBufferElements), 20},
		{"PhysicalDeviceLimits.maxUniformBufferRange", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxUniformBufferRange), 24},
		{"PhysicalDeviceLimits.maxStorageBufferRange", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxStorageBufferRange), 28},
		{"PhysicalDeviceLimits.maxPushConstantsSize", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxPushConstantsSize), 32},
		{"PhysicalDeviceLimits.maxMemoryAllocationCount", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxMemoryAllocationCount), 36},
		{"PhysicalDeviceLimits.maxSamplerAllocationCount", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxSamplerAllocationCount), 40},
		{"PhysicalDeviceLimits.bufferImageGranularity", unsafe.Offsetof(PhysicalDeviceLimits{}.BufferImageGranularity), 48},
		{"PhysicalDeviceLimits.sparseAddressSpaceSize", unsafe.Offsetof(PhysicalDeviceLimits{}.SparseAddressSpaceSize), 56},
		{"PhysicalDeviceLimits.maxBoundDescriptorSets", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxBoundDescriptorSets), 64},
		{"PhysicalDeviceLimits.maxPerStageDescriptorSamplers", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxPerStageDescriptorSamplers), 68},
		{"PhysicalDeviceLimits.maxPerStageDescriptorUniformBuffers", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxPerStageDescriptorUniformBuffers), 72},
		{"PhysicalDeviceLimits.maxPerStageDescriptorStorageBuffers", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxPerStageDescriptorStorageBuffers), 76},
		{"PhysicalDeviceLimits.maxPerStageDescriptorSampledImages", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxPerStageDescriptorSampledImages), 80},
		{"PhysicalDeviceLimits.maxPerStageDescriptorStorageImages", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxPerStageDescriptorStorageImages), 84},
		{"PhysicalDeviceLimits.maxPerStageDescriptorInputAttachments", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxPerStageDescriptorInputAttachments), 88},
		{"PhysicalDeviceLimits.maxPerStageResources", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxPerStageResources), 92},
		{"PhysicalDeviceLimits.maxDescriptorSetSamplers", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxDescriptorSetSamplers), 96},
		{"PhysicalDeviceLimits.maxDescriptorSetUniformBuffers", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxDescriptorSetUniformBuffers), 100},
		{"PhysicalDeviceLimits.maxDescriptorSetUniformBuffersDynamic", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxDescriptorSetUniformBuffersDynamic), 104},
		{"PhysicalDeviceLimits.maxDescriptorSetStorageBuffers", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxDescriptorSetStorageBuffers), 108},
		{"PhysicalDeviceLimits.maxDescriptorSetStorageBuffersDynamic", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxDescriptorSetStorageBuffersDynamic), 112},
		{"PhysicalDeviceLimits.maxDescriptorSetSampledImages", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxDescriptorSetSampledImages), 116},
		{"PhysicalDeviceLimits.maxDescriptorSetStorageImages", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxDescriptorSetStorageImages), 120},
		{"PhysicalDeviceLimits.maxDescriptorSetInputAttachments", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxDescriptorSetInputAttachments), 124},
		{"PhysicalDeviceLimits.maxVertexInputAttributes", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxVertexInputAttributes), 128},
		{"PhysicalDeviceLimits.maxVertexInputBindings", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxVertexInputBindings), 132},
		{"PhysicalDeviceLimits.maxVertexInputAttributeOffset", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxVertexInputAttributeOffset), 136},
		{"PhysicalDeviceLimits.maxVertexInputBindingStride", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxVertexInputBindingStride), 140},
		{"PhysicalDeviceLimits.maxVertexOutputComponents", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxVertexOutputComponents), 144},
		{"PhysicalDeviceLimits.maxTessellationGenerationLevel", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxTessellationGenerationLevel), 148},
		{"PhysicalDeviceLimits.maxTessellationPatchSize", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxTessellationPatchSize), 152},
		{"PhysicalDeviceLimits.maxTessellationControlPerVertexInputComponents", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxTessellationControlPerVertexInputComponents), 156},
		{"PhysicalDeviceLimits.maxTessellationControlPerVertexOutputComponents", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxTessellationControlPerVertexOutputComponents), 160},
		{"PhysicalDeviceLimits.maxTessellationControlPerPatchOutputComponents", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxTessellationControlPerPatchOutputComponents), 164},
		{"PhysicalDeviceLimits.maxTessellationControlTotalOutputComponents", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxTessellationControlTotalOutputComponents), 168},
		{"PhysicalDeviceLimits.maxTessellationEvaluationInputComponents", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxTessellationEvaluationInputComponents), 172},
		{"PhysicalDeviceLimits.maxTessellationEvaluationOutputComponents", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxTessellationEvaluationOutputComponents), 176},
		{"PhysicalDeviceLimits.maxGeometryShaderInvocations", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxGeometryShaderInvocations), 180},
		{"PhysicalDeviceLimits.maxGeometryInputComponents", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxGeometryInputComponents), 184},
		{"PhysicalDeviceLimits.maxGeometryOutputComponents", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxGeometryOutputComponents), 188},
		{"PhysicalDeviceLimits.maxGeometryOutputVertices", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxGeometryOutputVertices), 192},
		{"PhysicalDeviceLimits.maxGeometryTotalOutputComponents", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxGeometryTotalOutputComponents), 196},
		{"PhysicalDeviceLimits.maxFragmentInputComponents", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxFragmentInputComponents), 200},
		{"PhysicalDeviceLimits.maxFragmentOutputAttachments", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxFragmentOutputAttachments), 204},
		{"PhysicalDeviceLimits.maxFragmentDualSrcAttachments", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxFragmentDualSrcAttachments), 208},
		{"PhysicalDeviceLimits.maxFragmentCombinedOutputResources", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxFragmentCombinedOutputResources), 212},
		{"PhysicalDeviceLimits.maxComputeSharedMemorySize", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxComputeSharedMemorySize), 216},
		{"PhysicalDeviceLimits.maxComputeWorkGroupCount", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxComputeWorkGroupCount), 220},
		{"PhysicalDeviceLimits.maxComputeWorkGroupInvocations", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxComputeWorkGroupInvocations), 232},
		{"PhysicalDeviceLimits.maxComputeWorkGroupSize", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxComputeWorkGroupSize), 236},
		{"PhysicalDeviceLimits.subPixelPrecisionBits", unsafe.Offsetof(PhysicalDeviceLimits{}.SubPixelPrecisionBits), 248},
		{"PhysicalDeviceLimits.subTexelPrecisionBits", unsafe.Offsetof(PhysicalDeviceLimits{}.SubTexelPrecisionBits), 252},
		{"PhysicalDeviceLimits.mipmapPrecisionBits", unsafe.Offsetof(PhysicalDeviceLimits{}.MipmapPrecisionBits), 256},
		{"PhysicalDeviceLimits.maxDrawIndexedIndexValue", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxDrawIndexedIndexValue), 260},
		{"PhysicalDeviceLimits.maxDrawIndirectCount", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxDrawIndirectCount), 264},
		{"PhysicalDeviceLimits.maxSamplerLodBias", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxSamplerLodBias), 268},
		{"PhysicalDeviceLimits.maxSamplerAnisotropy", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxSamplerAnisotropy), 272},
		{"PhysicalDeviceLimits.maxViewports", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxViewports), 276},
		{"PhysicalDeviceLimits.maxViewportDimensions", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxViewportDimensions), 280},
		{"PhysicalDeviceLimits.viewportBoundsRange", unsafe.Offsetof(PhysicalDeviceLimits{}.ViewportBoundsRange), 288},
		{"PhysicalDeviceLimits.viewportSubPixelBits", unsafe.Offsetof(PhysicalDeviceLimits{}.ViewportSubPixelBits), 296},
		{"PhysicalDeviceLimits.minMemoryMapAlignment", unsafe.Offsetof(PhysicalDeviceLimits{}.MinMemoryMapAlignment), 304},
		{"PhysicalDeviceLimits.minTexelBufferOffsetAlignment", unsafe.Offsetof(PhysicalDeviceLimits{}.MinTexelBufferOffsetAlignment), 312},
		{"PhysicalDeviceLimits.minUniformBufferOffsetAlignment", unsafe.Offsetof(PhysicalDeviceLimits{}.MinUniformBufferOffsetAlignment), 320},
		{"PhysicalDeviceLimits.minStorageBufferOffsetAlignment", unsafe.Offsetof(PhysicalDeviceLimits{}.MinStorageBufferOffsetAlignment), 328},
		{"PhysicalDeviceLimits.minTexelOffset", unsafe.Offsetof(PhysicalDeviceLimits{}.MinTexelOffset), 336},
		{"PhysicalDeviceLimits.maxTexelOffset", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxTexelOffset), 340},
		{"PhysicalDeviceLimits.minTexelGatherOffset", unsafe.Offsetof(PhysicalDeviceLimits{}.MinTexelGatherOffset), 344},
		{"PhysicalDeviceLimits.maxTexelGatherOffset", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxTexelGatherOffset), 348},
		{"PhysicalDeviceLimits.minInterpolationOffset", unsafe.Offsetof(PhysicalDeviceLimits{}.MinInterpolationOffset), 352},
		{"PhysicalDeviceLimits.maxInterpolationOffset", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxInterpolationOffset), 356},
		{"PhysicalDeviceLimits.subPixelInterpolationOffsetBits", unsafe.Offsetof(PhysicalDeviceLimits{}.SubPixelInterpolationOffsetBits), 360},
		{"PhysicalDeviceLimits.maxFramebufferWidth", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxFramebufferWidth), 364},
		{"PhysicalDeviceLimits.maxFramebufferHeight", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxFramebufferHeight), 368},
		{"PhysicalDeviceLimits.maxFramebufferLayers", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxFramebufferLayers), 372},
		{"PhysicalDeviceLimits.framebufferColorSampleCounts", unsafe.Offsetof(PhysicalDeviceLimits{}.FramebufferColorSampleCounts), 376},
		{"PhysicalDeviceLimits.framebufferDepthSampleCounts", unsafe.Offsetof(PhysicalDeviceLimits{}.FramebufferDepthSampleCounts), 380},
		{"PhysicalDeviceLimits.framebufferStencilSampleCounts", unsafe.Offsetof(PhysicalDeviceLimits{}.FramebufferStencilSampleCounts), 384},
		{"PhysicalDeviceLimits.framebufferNoAttachmentsSampleCounts", unsafe.Offsetof(PhysicalDeviceLimits{}.FramebufferNoAttachmentsSampleCounts), 388},
		{"PhysicalDeviceLimits.maxColorAttachments", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxColorAttachments), 392},
		{"PhysicalDeviceLimits.sampledImageColorSampleCounts", unsafe.Offsetof(PhysicalDeviceLimits{}.SampledImageColorSampleCounts), 396},
		{"PhysicalDeviceLimits.sampledImageIntegerSampleCounts", unsafe.Offsetof(PhysicalDeviceLimits{}.SampledImageIntegerSampleCounts), 400},
		{"PhysicalDeviceLimits.sampledImageDepthSampleCounts", unsafe.Offsetof(PhysicalDeviceLimits{}.SampledImageDepthSampleCounts), 404},
		{"PhysicalDeviceLimits.sampledImageStencilSampleCounts", unsafe.Offsetof(PhysicalDeviceLimits{}.SampledImageStencilSampleCounts), 408},
		{"PhysicalDeviceLimits.storageImageSampleCounts", unsafe.Offsetof(PhysicalDeviceLimits{}.StorageImageSampleCounts), 412},
		{"PhysicalDeviceLimits.maxSampleMaskWords", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxSampleMaskWords), 416},
		{"PhysicalDeviceLimits.timestampComputeAndGraphics", unsafe.Offsetof(PhysicalDeviceLimits{}.TimestampComputeAndGraphics), 420},
		{"PhysicalDeviceLimits.timestampPeriod", unsafe.Offsetof(PhysicalDeviceLimits{}.TimestampPeriod), 424},
		{"PhysicalDeviceLimits.maxClipDistances", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxClipDistances), 428},
		{"PhysicalDeviceLimits.maxCullDistances", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxCullDistances), 432},
		{"PhysicalDeviceLimits.maxCombinedClipAndCullDistances", unsafe.Offsetof(PhysicalDeviceLimits{}.MaxCombinedClipAndCullDistances), 436},
		{"PhysicalDeviceLimits.discreteQueuePriorities", unsafe.Offsetof(PhysicalDeviceLimits{}.DiscreteQueuePriorities), 440},
		{"PhysicalDeviceLimits.pointSizeRange", unsafe.Offsetof(PhysicalDeviceLimits{}.PointSizeRange), 444},
		{"PhysicalDeviceLimits.lineWidthRange", unsafe.Offsetof(PhysicalDeviceLimits{}.LineWidthRange), 452},
		{"PhysicalDeviceLimits.pointSizeGranularity", unsafe.Offsetof(PhysicalDeviceLimits{}.PointSizeGranularity), 460},
		{"PhysicalDeviceLimits.lineWidthGranularity", unsafe.Offsetof(PhysicalDeviceLimits{}.LineWidthGranularity), 464},
		{"PhysicalDeviceLimits.strictLines", unsafe.Offsetof(PhysicalDeviceLimits{}.StrictLines), 468},
		{"PhysicalDeviceLimits.standardSampleLocations", unsafe.Offsetof(PhysicalDeviceLimits{}.StandardSampleLocations), 472},
		{"PhysicalDeviceLimits.optimalBufferCopyOffsetAlignment", unsafe.Offsetof(PhysicalDeviceLimits{}.OptimalBufferCopyOffsetAlignment), 480},
		{"PhysicalDeviceLimits.optimalBufferCopyRowPitchAlignment", unsafe.Offsetof(PhysicalDeviceLimits{}.OptimalBufferCopyRowPitchAlignment), 488},
		{"PhysicalDeviceLimits.nonCoherentAtomSize", unsafe.Offsetof(PhysicalDeviceLimits{}.NonCoherentAtomSize), 496},
		{"PhysicalDeviceSparseProperties.residencyStandard2DBlockShape", unsafe.Offsetof(PhysicalDeviceSparseProperties{}.ResidencyStandard2DBlockShape), 0},
		{"PhysicalDeviceSparseProperties.residencyStandard2DMultisampleBlockShape", unsafe.Offsetof(PhysicalDeviceSparseProperties{}.ResidencyStandard2DMultisampleBlockShape), 4},
		{"PhysicalDeviceSparseProperties.residencyStandard3DBlockShape", unsafe.Offsetof(PhysicalDeviceSparseProperties{}.ResidencyStandard3DBlockShape), 8},
		{"PhysicalDeviceSparseProperties.residencyAlignedMipSize", unsafe.Offsetof(PhysicalDeviceSparseProperties{}.ResidencyAlignedMipSize), 12},
		{"PhysicalDeviceSparseProperties.residencyNonResidentStrict", unsafe.Offsetof(PhysicalDeviceSparseProperties{}.ResidencyNonResidentStrict), 16},
		{"PhysicalDeviceProperties.apiVersion", unsafe.Offsetof(PhysicalDeviceProperties{}.ApiVersion), 0},
		{"PhysicalDeviceProperties.driverVersion", unsafe.Offsetof(PhysicalDeviceProperties{}.DriverVersion), 4},
		{"PhysicalDeviceProperties.vendorID", unsafe.Offsetof(PhysicalDeviceProperties{}.VendorID), 8},
		{"PhysicalDeviceProperties.deviceID", unsafe.Offsetof(PhysicalDeviceProperties{}.DeviceID), 12},
		{"PhysicalDeviceProperties.deviceType", unsafe.Offsetof(PhysicalDeviceProperties{}.DeviceType), 16},
		{"PhysicalDeviceProperties.deviceName", unsafe.Offsetof(PhysicalDeviceProperties{}.DeviceName), 20},
		{"PhysicalDeviceProperties.pipelineCacheUUID", unsafe.Offsetof(PhysicalDeviceProperties{}.PipelineCacheUUID), 276},
		{"PhysicalDeviceProperties.limits", unsafe.Offsetof(PhysicalDeviceProperties{}.Limits), 296},
		{"PhysicalDeviceProperties.sparseProperties", unsafe.Offsetof(PhysicalDeviceProperties{}.SparseProperties), 800},
		{"PhysicalDeviceFeatures.robustBufferAccess", unsafe.Offsetof(PhysicalDeviceFeatures{}.RobustBufferAccess), 0},
		{"PhysicalDeviceFeatures.fullDrawIndexUint32", unsafe.Offsetof(PhysicalDeviceFeatures{}.FullDrawIndexUint32), 4},
		{"PhysicalDeviceFeatures.imageCubeArray", unsafe.Offsetof(PhysicalDeviceFeatures{}.ImageCubeArray), 8},
		{"PhysicalDeviceFeatures.independentBlend", unsafe.Offsetof(PhysicalDeviceFeatures{}.IndependentBlend), 12},
		{"PhysicalDeviceFeatures.geometryShader", unsafe.Offsetof(PhysicalDeviceFeatures{}.GeometryShader), 16},
		{"PhysicalDeviceFeatures.tessellationShader", unsafe.Offsetof(PhysicalDeviceFeatures{}.TessellationShader), 20},
		{"PhysicalDeviceFeatures.sampleRateShading", unsafe.Offsetof(PhysicalDeviceFeatures{}.SampleRateShading), 24},
		{"PhysicalDeviceFeatures.dualSrcBlend", unsafe.Offsetof(PhysicalDeviceFeatures{}.DualSrcBlend), 28},
		{"PhysicalDeviceFeatures.logicOp", unsafe.Offsetof(PhysicalDeviceFeatures{}.LogicOp), 32},
		{"PhysicalDeviceFeatures.multiDrawIndirect", unsafe.Offsetof(PhysicalDeviceFeatures{}.MultiDrawIndirect), 36},
		{"PhysicalDeviceFeatures.drawIndirectFirstInstance", unsafe.Offsetof(PhysicalDeviceFeatures{}.DrawIndirectFirstInstance), 40},
		{"PhysicalDeviceFeatures.depthClamp", unsafe.Offsetof(PhysicalDeviceFeatures{}.DepthClamp), 44},
		{"PhysicalDeviceFeatures.depthBiasClamp", unsafe.Offsetof(PhysicalDeviceFeatures{}.DepthBiasClamp), 48},
		{"PhysicalDeviceFeatures.fillModeNonSolid", unsafe.Offsetof(PhysicalDeviceFeatures{}.FillModeNonSolid), 52},
		{"PhysicalDeviceFeatures.depthBounds", unsafe.Offsetof(PhysicalDeviceFeatures{}.DepthBounds), 56},
		{"PhysicalDeviceFeatures.wideLines", unsafe.Offsetof(PhysicalDeviceFeatures{}.WideLines), 60},
		{"PhysicalDeviceFeatures.largePoints", unsafe.Offsetof(PhysicalDeviceFeatures{}.LargePoints), 64},
		{"PhysicalDeviceFeatures.alphaToOne", unsafe.Offsetof(PhysicalDeviceFeatures{}.AlphaToOne), 68},
		{"PhysicalDeviceFeatures.multiViewport", unsafe.Offsetof(PhysicalDeviceFeatures{}.MultiViewport), 72},
		{"PhysicalDeviceFeatures.samplerAnisotropy", unsafe.Offsetof(PhysicalDeviceFeatures{}.SamplerAnisotropy), 76},
		{"PhysicalDeviceFeatures.textureCompressionETC2", unsafe.Offsetof(PhysicalDeviceFeatures{}.TextureCompressionETC2), 80},
		{"PhysicalDeviceFeatures.textureCompressionASTC_LDR", unsafe.Offsetof(PhysicalDeviceFeatures{}.TextureCompressionASTCLDR), 84},
		{"PhysicalDeviceFeatures.textureCompressionBC", unsafe.Offsetof(PhysicalDeviceFeatures{}.TextureCompressionBC), 88},
		{"PhysicalDeviceFeatures.occlusionQueryPrecise", unsafe.Offsetof(PhysicalDeviceFeatures{}.OcclusionQueryPrecise), 92},
		{"PhysicalDeviceFeatures.pipelineStatisticsQuery", unsafe.Offsetof(PhysicalDeviceFeatures{}.PipelineStatisticsQuery), 96},
		{"PhysicalDeviceFeatures.vertexPipelineStoresAndAtomics", unsafe.Offsetof(PhysicalDeviceFeatures{}.VertexPipelineStoresAndAtomics), 100},
		{"PhysicalDeviceFeatures.fragmentStoresAndAtomics", unsafe.Offsetof(PhysicalDeviceFeatures{}.FragmentStoresAndAtomics), 104},
		{"PhysicalDeviceFeatures.shaderTessellationAndGeometryPointSize", unsafe.Offsetof(PhysicalDeviceFeatures{}.ShaderTessellationAndGeometryPointSize), 108},
		{"PhysicalDeviceFeatures.shaderImageGatherExtended", unsafe.Offsetof(PhysicalDeviceFeatures{}.ShaderImageGatherExtended), 112},
		{"PhysicalDeviceFeatures.shaderStorageImageExtendedFormats", unsafe.Offsetof(PhysicalDeviceFeatures{}.ShaderStorageImageExtendedFormats), 116},
		{"PhysicalDeviceFeatures.shaderStorageImageMultisample", unsafe.Offsetof(PhysicalDeviceFeatures{}.ShaderStorageImageMultisample), 120},
		{"PhysicalDeviceFeatures.shaderStorageImageReadWithoutFormat", unsafe.Offsetof(PhysicalDeviceFeatures{}.ShaderStorageImageReadWithoutFormat), 124},
		{"PhysicalDeviceFeatures.shaderStorageImageWriteWithoutFormat", unsafe.Offsetof(PhysicalDeviceFeatures{}.ShaderStorageImageWriteWithoutFormat), 128},
		{"PhysicalDeviceFeatures.shaderUniformBufferArrayDynamicIndexing", unsafe.Offsetof(PhysicalDeviceFeatures{}.ShaderUniformBufferArrayDynamicIndexing), 132},
		{"PhysicalDeviceFeatures.shaderSampledImageArrayDynamicIndexing", unsafe.Offsetof(PhysicalDeviceFeatures{}.ShaderSampledImageArrayDynamicIndexing), 136},
		{"PhysicalDeviceFeatures.shaderStorageBufferArrayDynamicIndexing", unsafe.Offsetof(PhysicalDeviceFeatures{}.ShaderStorageBufferArrayDynamicIndexing), 140},
		{"PhysicalDeviceFeatures.shaderStorageImageArrayDynamicIndexing", unsafe.Offsetof(PhysicalDeviceFeatures{}.ShaderStorageImageArrayDynamicIndexing), 144},
		{"PhysicalDeviceFeatures.shaderClipDistance", unsafe.Offsetof(PhysicalDeviceFeatures{}.ShaderClipDistance), 148},
		{"PhysicalDeviceFeatures.shaderCullDistance", unsafe.Offsetof(PhysicalDeviceFeatures{}.ShaderCullDistance), 152},
		{"PhysicalDeviceFeatures.shaderFloat64", unsafe.Offsetof(PhysicalDeviceFeatures{}.ShaderFloat64), 156},
		{"PhysicalDeviceFeatures.shaderInt64", unsafe.Offsetof(PhysicalDeviceFeatures{}.ShaderInt64), 160},
		{"PhysicalDeviceFeatures.shaderInt16", unsafe.Offsetof(PhysicalDeviceFeatures{}.ShaderInt16), 164},
		{"PhysicalDeviceFeatures.shaderResourceResidency", unsafe.Offsetof(PhysicalDeviceFeatures{}.ShaderResourceResidency), 168},
		{"PhysicalDeviceFeatures.shaderResourceMinLod", unsafe.Offsetof(PhysicalDeviceFeatures{}.ShaderResourceMinLod), 172},
		{"PhysicalDeviceFeatures.sparseBinding", unsafe.Offsetof(PhysicalDeviceFeatures{}.SparseBinding), 176},
		{"PhysicalDeviceFeatures.sparseResidencyBuffer", unsafe.Offsetof(PhysicalDeviceFeatures{}.SparseResidencyBuffer), 180},
		{"PhysicalDeviceFeatures.sparseResidencyImage2D", unsafe.Offsetof(PhysicalDeviceFeatures{}.SparseResidencyImage2D), 184},
		{"PhysicalDeviceFeatures.sparseResidencyImage3D", unsafe.Offsetof(PhysicalDeviceFeatures{}.SparseResidencyImage3D), 188},
		{"PhysicalDeviceFeatures.sparseResidency2Samples", unsafe.Offsetof(PhysicalDeviceFeatures{}.SparseResidency2Samples), 192},
		{"PhysicalDeviceFeatures.sparseResidency4Samples", unsafe.Offsetof(PhysicalDeviceFeatures{}.SparseResidency4Samples), 196},
		{"PhysicalDeviceFeatures.sparseResidency8Samples", unsafe.Offsetof(PhysicalDeviceFeatures{}.SparseResidency8Samples), 200},
		{"PhysicalDeviceFeatures.sparseResidency16Samples", unsafe.Offsetof(PhysicalDeviceFeatures{}.SparseResidency16Samples), 204},
		{"PhysicalDeviceFeatures.sparseResidencyAliased", unsafe.Offsetof(PhysicalDeviceFeatures{}.SparseResidencyAliased), 208},
		{"PhysicalDeviceFeatures.variableMultisampleRate", unsafe.Offsetof(PhysicalDeviceFeatures{}.VariableMultisampleRate), 212},
		{"PhysicalDeviceFeatures.inheritedQueries", unsafe.Offsetof(PhysicalDeviceFeatures{}.InheritedQueries), 216},
		{"QueueFamilyProperties.queueFlags", unsafe.Offsetof(QueueFamilyProperties{}.QueueFlags), 0},
		{"QueueFamilyProperties.queueCount", unsafe.Offsetof(QueueFamilyProperties{}.QueueCount), 4},
		{"QueueFamilyProperties.timestampValidBits", unsafe.Offsetof(QueueFamilyProperties{}.TimestampValidBits), 8},
		{"QueueFamilyProperties.minImageTransferGranularity", unsafe.Offsetof(QueueFamilyProperties{}.MinImageTransferGranularity), 12},
		{"MemoryType.propertyFlags", unsafe.Offsetof(MemoryType{}.PropertyFlags), 0},
		{"MemoryType.heapIndex", unsafe.Offsetof(MemoryType{}.HeapIndex), 4},
		{"MemoryHeap.size", unsafe.Offsetof(MemoryHeap{}.Size), 0},
		{"MemoryHeap.flags", unsafe.Offsetof(MemoryHeap{}.Flags), 8},
		{"PhysicalDeviceMemoryProperties.memoryTypeCount", unsafe.Offsetof(PhysicalDeviceMemoryProperties{}.MemoryTypeCount), 0},
		{"PhysicalDeviceMemoryProperties.memoryTypes", unsafe.Offsetof(PhysicalDeviceMemoryProperties{}.MemoryTypes), 4},
		{"PhysicalDeviceMemoryProperties.memoryHeapCount", unsafe.Offsetof(PhysicalDeviceMemoryProperties{}.MemoryHeapCount), 260},
		{"PhysicalDeviceMemoryProperties.memoryHeaps", unsafe.Offsetof(PhysicalDeviceMemoryProperties{}.MemoryHeaps), 264},
		{"FormatProperties.linearTilingFeatures", unsafe.Offsetof(FormatProperties{}.LinearTilingFeatures), 0},
		{"FormatProperties.optimalTilingFeatures", unsafe.Offsetof(FormatProperties{}.OptimalTilingFeatures), 4},
		{"FormatProperties.bufferFeatures", unsafe.Offsetof(FormatProperties{}.BufferFeatures), 8},
		{"DeviceQueueCreateInfo.sType", unsafe.Offsetof(DeviceQueueCreateInfo{}.SType), 0},
		{"DeviceQueueCreateInfo.pNext", unsafe.Offsetof(DeviceQueueCreateInfo{}.PNext), 8},
		{"DeviceQueueCreateInfo.flags", unsafe.Offsetof(DeviceQueueCreateInfo{}.Flags), 16},
		{"DeviceQueueCreateInfo.queueFamilyIndex", unsafe.Offsetof(DeviceQueueCreateInfo{}.QueueFamilyIndex), 20},
		{"DeviceQueueCreateInfo.queueCount", unsafe.Offsetof(DeviceQueueCreateInfo{}.QueueCount), 24},
		{"DeviceQueueCreateInfo.pQueuePriorities", unsafe.Offsetof(DeviceQueueCreateInfo{}.PQueuePriorities), 32},
		{"DeviceCreateInfo.sType", unsafe.Offsetof(DeviceCreateInfo{}.SType), 0},
		{"DeviceCreateInfo.pNext", unsafe.Offsetof(DeviceCreateInfo{}.PNext), 8},
		{"DeviceCreateInfo.flags", unsafe.Offsetof(DeviceCreateInfo{}.Flags), 16},
		{"DeviceCreateInfo.queueCreateInfoCount", unsafe.Offsetof(DeviceCreateInfo{}.QueueCreateInfoCount), 20},
		{"DeviceCreateInfo.pQueueCreateInfos", unsafe.Offsetof(DeviceCreateInfo{}.PQueueCreateInfos), 24},
		{"DeviceCreateInfo.enabledLayerCount", unsafe.Offsetof(DeviceCreateInfo{}.EnabledLayerCount), 32},
		{"DeviceCreateInfo.ppEnabledLayerNames", unsafe.Offsetof(DeviceCreateInfo{}.PpEnabledLayerNames), 40},
		{"DeviceCreateInfo.enabledExtensionCount", unsafe.Offsetof(DeviceCreateInfo{}.EnabledExtensionCount), 48},
		{"DeviceCreateInfo.ppEnabledExtensionNames", unsafe.Offsetof(DeviceCreateInfo{}.PpEnabledExtensionNames), 56},
		{"DeviceCreateInfo.pEnabledFeatures", unsafe.Offsetof(DeviceCreateInfo{}.PEnabledFeatures), 64},
		{"SubmitInfo.sType", unsafe.Offsetof(SubmitInfo{}.SType), 0},
		{"SubmitInfo.pNext", unsafe.Offsetof(SubmitInfo{}.PNext), 8},
		{"SubmitInfo.waitSemaphoreCount", unsafe.Offsetof(SubmitInfo{}.WaitSemaphoreCount), 16},
		{"SubmitInfo.pWaitSemaphores", unsafe.Offsetof(SubmitInfo{}.PWaitSemaphores), 24},
		{"SubmitInfo.pWaitDstStageMask", unsafe.Offsetof(SubmitInfo{}.PWaitDstStageMask), 32},
		{"SubmitInfo.commandBufferCount", unsafe.Offsetof(SubmitInfo{}.CommandBufferCount), 40},
		{"SubmitInfo.pCommandBuffers", unsafe.Offsetof(SubmitInfo{}.PCommandBuffers), 48},
		{"SubmitInfo.signalSemaphoreCount", unsafe.Offsetof(SubmitInfo{}.SignalSemaphoreCount), 56},
		{"SubmitInfo.pSignalSemaphores", unsafe.Offsetof(SubmitInfo{}.PSignalSemaphores), 64},
		{"FenceCreateInfo.sType", unsafe.Offsetof(FenceCreateInfo{}.SType), 0},
		{"FenceCreateInfo.pNext", unsafe.Offsetof(FenceCreateInfo{}.PNext), 8},
		{"FenceCreateInfo.flags", unsafe.Offsetof(FenceCreateInfo{}.Flags), 16},
		{"SemaphoreCreateInfo.sType", unsafe.Offsetof(SemaphoreCreateInfo{}.SType), 0},
		{"SemaphoreCreateInfo.pNext", unsafe.Offsetof(SemaphoreCreateInfo{}.PNext), 8},
		{"SemaphoreCreateInfo.flags", unsafe.Offsetof(SemaphoreCreateInfo{}.Flags), 16},
		{"EventCreateInfo.sType", unsafe.Offsetof(EventCreateInfo{}.SType), 0},
		{"EventCreateInfo.pNext", unsafe.Offsetof(EventCreateInfo{}.PNext), 8},
		{"EventCreateInfo.flags", unsafe.Offsetof(EventCreateInfo{}.Flags), 16},
		{"MemoryAllocateInfo.sType", unsafe.Offsetof(MemoryAllocateInfo{}.SType), 0},
		{"MemoryAllocateInfo.pNext", unsafe.Offsetof(MemoryAllocateInfo{}.PNext), 8},
		{"MemoryAllocateInfo.allocationSize", unsafe.Offsetof(MemoryAllocateInfo{}.AllocationSize), 16},
		{"MemoryAllocateInfo.memoryTypeIndex", unsafe.Offsetof(MemoryAllocateInfo{}.MemoryTypeIndex), 24},
		{"MappedMemoryRange.sType", unsafe.Offsetof(MappedMemoryRange{}.SType), 0},
		{"MappedMemoryRange.pNext", unsafe.Offsetof(MappedMemoryRange{}.PNext), 8},
		{"MappedMemoryRange.memory", unsafe.Offsetof(MappedMemoryRange{}.Memory), 16},
		{"MappedMemoryRange.offset", unsafe.Offsetof(MappedMemoryRange{}.Offset), 24},
		{"MappedMemoryRange.size", unsafe.Offsetof(MappedMemoryRange{}.Size), 32},
		{"MemoryRequirements.size", unsafe.Offsetof(MemoryRequirements{}.Size), 0},
		{"MemoryRequirements.alignment", unsafe.Offsetof(MemoryRequirements{}.Alignment), 8},
		{"MemoryRequirements.memoryTypeBits", unsafe.Offsetof(MemoryRequirements{}.MemoryTypeBits), 16},
		{"BufferCreateInfo.sType", unsafe.Offsetof(BufferCreateInfo{}.SType), 0},
		{"BufferCreateInfo.pNext", unsafe.Offsetof(BufferCreateInfo{}.PNext), 8},
		{"BufferCreateInfo.flags", unsafe.Offsetof(BufferCreateInfo{}.Flags), 16},
		{"BufferCreateInfo.size", unsafe.Offsetof(BufferCreateInfo{}.Size), 24},
		{"BufferCreateInfo.usage", unsafe.Offsetof(BufferCreateInfo{}.Usage), 32},
		{"BufferCreateInfo.sharingMode", unsafe.Offsetof(BufferCreateInfo{}.SharingMode), 36},
		{"BufferCreateInfo.queueFamilyIndexCount", unsafe.Offsetof(BufferCreateInfo{}.QueueFamilyIndexCount), 40},
		{"BufferCreateInfo.pQueueFamilyIndices", unsafe.Offsetof(BufferCreateInfo{}.PQueueFamilyIndices), 48},
		{"ImageCreateInfo.sType", unsafe.Offsetof(ImageCreateInfo{}.SType), 0},
		{"ImageCreateInfo.pNext", unsafe.Offsetof(ImageCreateInfo{}.PNext), 8},
		{"ImageCreateInfo.flags", unsafe.Offsetof(ImageCreateInfo{}.Flags), 16},
		{"ImageCreateInfo.imageType", unsafe.Offsetof(ImageCreateInfo{}.ImageType), 20},
		{"ImageCreateInfo.format", unsafe.Offsetof(ImageCreateInfo{}.Format), 24},
		{"ImageCreateInfo.extent", unsafe.Offsetof(ImageCreateInfo{}.Extent), 28},
		{"ImageCreateInfo.mipLevels", unsafe.Offsetof(ImageCreateInfo{}.MipLevels), 40},
		{"ImageCreateInfo.arrayLayers", unsafe.Offsetof(ImageCreateInfo{}.ArrayLayers), 44},
		{"ImageCreateInfo.samples", unsafe.Offsetof(ImageCreateInfo{}.Samples), 48},
		{"ImageCreateInfo.tiling", unsafe.Offsetof(ImageCreateInfo{}.Tiling), 52},
		{"ImageCreateInfo.usage", unsafe.Offsetof(ImageCreateInfo{}.Usage), 56},
		{"ImageCreateInfo.sharingMode", unsafe.Offsetof(ImageCreateInfo{}.SharingMode), 60},
		{"ImageCreateInfo.queueFamilyIndexCount", unsafe.Offsetof(ImageCreateInfo{}.QueueFamilyIndexCount), 64},
		{"ImageCreateInfo.pQueueFamilyIndices", unsafe.Offsetof(ImageCreateInfo{}.PQueueFamilyIndices), 72},
		{"ImageCreateInfo.initialLayout", unsafe.Offsetof(ImageCreateInfo{}.InitialLayout), 80},
		{"ComponentMapping.r", unsafe.Offsetof(ComponentMapping{}.R), 0},
		{"ComponentMapping.g", unsafe.Offsetof(ComponentMapping{}.G), 4},
		{"ComponentMapping.b", unsafe.Offsetof(ComponentMapping{}.B), 8},
		{"ComponentMapping.a", unsafe.Offsetof(ComponentMapping{}.A), 12},
		{"ImageSubresourceRange.aspectMask", unsafe.Offsetof(ImageSubresourceRange{}.AspectMask), 0},
		{"ImageSubresourceRange.baseMipLevel", unsafe.Offsetof(ImageSubresourceRange{}.BaseMipLevel), 4},
		{"ImageSubresourceRange.levelCount", unsafe.Offsetof(ImageSubresourceRange{}.LevelCount), 8},
		{"ImageSubresourceRange.baseArrayLayer", unsafe.Offsetof(ImageSubresourceRange{}.BaseArrayLayer), 12},
		{"ImageSubresourceRange.layerCount", unsafe.Offsetof(ImageSubresourceRange{}.LayerCount), 16},
		{"ImageSubresourceLayers.aspectMask", unsafe.Offsetof(ImageSubresourceLayers{}.AspectMask), 0},
		{"ImageSubresourceLayers.mipLevel", unsafe.Offsetof(ImageSubresourceLayers{}.MipLevel), 4},
		{"ImageSubresourceLayers.baseArrayLayer", unsafe.Offsetof(ImageSubresourceLayers{}.BaseArrayLayer), 8},
		{"ImageSubresourceLayers.layerCount", unsafe.Offsetof(ImageSubresourceLayers{}.LayerCount), 12},
		{"ImageViewCreateInfo.sType", unsafe.Offsetof(ImageViewCreateInfo{}.SType), 0},
		{"ImageViewCreateInfo.pNext", unsafe.Offsetof(ImageViewCreateInfo{}.PNext), 8},
		{"ImageViewCreateInfo.flags", unsafe.Offsetof(ImageViewCreateInfo{}.Flags), 16},
		{"ImageViewCreateInfo.image", unsafe.Offsetof(ImageViewCreateInfo{}.Image), 24},
		{"ImageViewCreateInfo.viewType", unsafe.Offsetof(ImageViewCreateInfo{}.ViewType), 32},
		{"ImageViewCreateInfo.format", unsafe.Offsetof(ImageViewCreateInfo{}.Format), 36},
		{"ImageViewCreateInfo.components", unsafe.Offsetof(ImageViewCreateInfo{}.Components), 40},
		{"ImageViewCreateInfo.subresourceRange", unsafe.Offsetof(ImageViewCreateInfo{}.SubresourceRange), 56},
		{"ShaderModuleCreateInfo.sType", unsafe.Offsetof(ShaderModuleCreateInfo{}.SType), 0},
		{"ShaderModuleCreateInfo.pNext", unsafe.Offsetof(ShaderModuleCreateInfo{}.PNext), 8},
		{"ShaderModuleCreateInfo.flags", unsafe.Offsetof(ShaderModuleCreateInfo{}.Flags), 16},
		{"ShaderModuleCreateInfo.codeSize", unsafe.Offsetof(ShaderModuleCreateInfo{}.CodeSize), 24},
		{"ShaderModuleCreateInfo.pCode", unsafe.Offsetof(ShaderModuleCreateInfo{}.PCode), 32},
		{"CommandPoolCreateInfo.sType", unsafe.Offsetof(CommandPoolCreateInfo{}.SType), 0},
		{"CommandPoolCreateInfo.pNext", unsafe.Offsetof(CommandPoolCreateInfo{}.PNext), 8},
		{"CommandPoolCreateInfo.flags", unsafe.Offsetof(CommandPoolCreateInfo{}.Flags), 16},
		{"CommandPoolCreateInfo.queueFamilyIndex", unsafe.Offsetof(CommandPoolCreateInfo{}.QueueFamilyIndex), 20},
		{"CommandBufferAllocateInfo.sType", unsafe.Offsetof(CommandBufferAllocateInfo{}.SType), 0},
		{"CommandBufferAllocateInfo.pNext", unsafe.Offsetof(CommandBufferAllocateInfo{}.PNext), 8},
		{"CommandBufferAllocateInfo.commandPool", unsafe.Offsetof(CommandBufferAllocateInfo{}.CommandPool), 16},
		{"CommandBufferAllocateInfo.level", unsafe.Offsetof(CommandBufferAllocateInfo{}.Level), 24},
		{"CommandBufferAllocateInfo.commandBufferCount", unsafe.Offsetof(CommandBufferAllocateInfo{}.CommandBufferCount), 28},
		{"CommandBufferInheritanceInfo.sType", unsafe.Offsetof(CommandBufferInheritanceInfo{}.SType), 0},
		{"CommandBufferInheritanceInfo.pNext", unsafe.Offsetof(CommandBufferInheritanceInfo{}.PNext), 8},
		{"CommandBufferInheritanceInfo.renderPass", unsafe.Offsetof(CommandBufferInheritanceInfo{}.RenderPass), 16},
		{"CommandBufferInheritanceInfo.subpass", unsafe.Offsetof(CommandBufferInheritanceInfo{}.Subpass), 24},
		{"CommandBufferInheritanceInfo.framebuffer", unsafe.Offsetof(CommandBufferInheritanceInfo{}.Framebuffer), 32},
		{"CommandBufferInheritanceInfo.occlusionQueryEnable", unsafe.Offsetof(CommandBufferInheritanceInfo{}.OcclusionQueryEnable), 40},
		{"CommandBufferInheritanceInfo.queryFlags", unsafe.Offsetof(CommandBufferInheritanceInfo{}.QueryFlags), 44},
		{"CommandBufferInheritanceInfo.pipelineStatistics", unsafe.Offsetof(CommandBufferInheritanceInfo{}.PipelineStatistics), 48},
		{"CommandBufferBeginInfo.sType", unsafe.Offsetof(CommandBufferBeginInfo{}.SType), 0},
		{"CommandBufferBeginInfo.pNext", unsafe.Offsetof(CommandBufferBeginInfo{}.PNext), 8},
		{"CommandBufferBeginInfo.flags", unsafe.Offsetof(CommandBufferBeginInfo{}.Flags), 16},
		{"CommandBufferBeginInfo.pInheritanceInfo", unsafe.Offsetof(CommandBufferBeginInfo{}.PInheritanceInfo), 24},
		{"BufferCopy.srcOffset", unsafe.Offsetof(BufferCopy{}.SrcOffset), 0},
		{"BufferCopy.dstOffset", unsafe.Offsetof(BufferCopy{}.DstOffset), 8},
		{"BufferCopy.size", unsafe.Offsetof(BufferCopy{}.Size), 16},
		{"BufferImageCopy.bufferOffset", unsafe.Offsetof(BufferImageCopy{}.BufferOffset), 0},
		{"BufferImageCopy.bufferRowLength", unsafe.Offsetof(BufferImageCopy{}.BufferRowLength), 8},
		{"BufferImageCopy.bufferImageHeight", unsafe.Offsetof(BufferImageCopy{}.BufferImageHeight), 12},
		{"BufferImageCopy.imageSubresource", unsafe.Offsetof(BufferImageCopy{}.ImageSubresource), 16},
		{"BufferImageCopy.imageOffset", unsafe.Offsetof(BufferImageCopy{}.ImageOffset), 32},
		{"BufferImageCopy.imageExtent", unsafe.Offsetof(BufferImageCopy{}.ImageExtent), 44},
		{"MemoryBarrier.sType", unsafe.Offsetof(MemoryBarrier{}.SType), 0},
		{"MemoryBarrier.pNext", unsafe.Offsetof(MemoryBarrier{}.PNext), 8},
		{"MemoryBarrier.srcAccessMask", unsafe.Offsetof(MemoryBarrier{}.SrcAccessMask), 16},
		{"MemoryBarrier.dstAccessMask", unsafe.Offsetof(MemoryBarrier{}.DstAccessMask), 20},
		{"BufferMemoryBarrier.sType", unsafe.Offsetof(BufferMemoryBarrier{}.SType), 0},
		{"BufferMemoryBarrier.pNext", unsafe.Offsetof(BufferMemoryBarrier{}.PNext), 8},
		{"BufferMemoryBarrier.srcAccessMask", unsafe.Offsetof(BufferMemoryBarrier{}.SrcAccessMask), 16},
		{"BufferMemoryBarrier.dstAccessMask", unsafe.Offsetof(BufferMemoryBarrier{}.DstAccessMask), 20},
		{"BufferMemoryBarrier.srcQueueFamilyIndex", unsafe.Offsetof(BufferMemoryBarrier{}.SrcQueueFamilyIndex), 24},
		{"BufferMemoryBarrier.dstQueueFamilyIndex", unsafe.Offsetof(BufferMemoryBarrier{}.DstQueueFamilyIndex), 28},
		{"BufferMemoryBarrier.buffer", unsafe.Offsetof(BufferMemoryBarrier{}.Buffer), 32},
		{"BufferMemoryBarrier.offset", unsafe.Offsetof(BufferMemoryBarrier{}.Offset), 40},
		{"BufferMemoryBarrier.size", unsafe.Offsetof(BufferMemoryBarrier{}.Size), 48},
		{"ImageMemoryBarrier.sType", unsafe.Offsetof(ImageMemoryBarrier{}.SType), 0},
		{"ImageMemoryBarrier.pNext", unsafe.Offsetof(ImageMemoryBarrier{}.PNext), 8},
		{"ImageMemoryBarrier.srcAccessMask", unsafe.Offsetof(ImageMemoryBarrier{}.SrcAccessMask), 16},
		{"ImageMemoryBarrier.dstAccessMask", unsafe.Offsetof(ImageMemoryBarrier{}.DstAccessMask), 20},
		{"ImageMemoryBarrier.oldLayout", unsafe.Offsetof(ImageMemoryBarrier{}.OldLayout), 24},
		{"ImageMemoryBarrier.newLayout", unsafe.Offsetof(ImageMemoryBarrier{}.NewLayout), 28},
		{"ImageMemoryBarrier.srcQueueFamilyIndex", unsafe.Offsetof(ImageMemoryBarrier{}.SrcQueueFamilyIndex), 32},
		{"ImageMemoryBarrier.dstQueueFamilyIndex", unsafe.Offsetof(ImageMemoryBarrier{}.DstQueueFamilyIndex), 36},
		{"ImageMemoryBarrier.image", unsafe.Offsetof(ImageMemoryBarrier{}.Image), 40},
		{"ImageMemoryBarrier.subresourceRange", unsafe.Offsetof(ImageMemoryBarrier{}.SubresourceRange), 48},
		{"RenderingAttachmentInfo.sType", unsafe.Offsetof(RenderingAttachmentInfo{}.SType), 0},
		{"RenderingAttachmentInfo.pNext", unsafe.Offsetof(RenderingAttachmentInfo{}.PNext), 8},
		{"RenderingAttachmentInfo.imageView", unsafe.Offsetof(RenderingAttachmentInfo{}.ImageView), 16},
		{"RenderingAttachmentInfo.imageLayout", unsafe.Offsetof(RenderingAttachmentInfo{}.ImageLayout), 24},
		{"RenderingAttachmentInfo.resolveMode", unsafe.Offsetof(RenderingAttachmentInfo{}.ResolveMode), 28},
		{"RenderingAttachmentInfo.resolveImageView", unsafe.Offsetof(RenderingAttachmentInfo{}.ResolveImageView), 32},
		{"RenderingAttachmentInfo.resolveImageLayout", unsafe.Offsetof(RenderingAttachmentInfo{}.ResolveImageLayout), 40},
		{"RenderingAttachmentInfo.loadOp", unsafe.Offsetof(RenderingAttachmentInfo{}.LoadOp), 44},
		{"RenderingAttachmentInfo.storeOp", unsafe.Offsetof(RenderingAttachmentInfo{}.StoreOp), 48},
		{"RenderingAttachmentInfo.clearValue", unsafe.Offsetof(RenderingAttachmentInfo{}.ClearValue), 52},
		{"RenderingInfo.sType", unsafe.Offsetof(RenderingInfo{}.SType), 0},
		{"RenderingInfo.pNext", unsafe.Offsetof(RenderingInfo{}.PNext), 8},
		{"RenderingInfo.flags", unsafe.Offsetof(RenderingInfo{}.Flags), 16},
		{"RenderingInfo.renderArea", unsafe.Offsetof(RenderingInfo{}.RenderArea), 20},
		{"RenderingInfo.layerCount", unsafe.Offsetof(RenderingInfo{}.LayerCount), 36},
		{"RenderingInfo.viewMask", unsafe.Offsetof(RenderingInfo{}.ViewMask), 40},
		{"RenderingInfo.colorAttachmentCount", unsafe.Offsetof(RenderingInfo{}.ColorAttachmentCount), 44},
		{"RenderingInfo.pColorAttachments", unsafe.Offsetof(RenderingInfo{}.PColorAttachments), 48},
		{"RenderingInfo.pDepthAttachment", unsafe.Offsetof(RenderingInfo{}.PDepthAttachment), 56},
		{"RenderingInfo.pStencilAttachment", unsafe.Offsetof(RenderingInfo{}.PStencilAttachment), 64},
		{"AttachmentDescription.flags", unsafe.Offsetof(AttachmentDescription{}.Flags), 0},
		{"AttachmentDescription.format", unsafe.Offsetof(AttachmentDescription{}.Format), 4},
		{"AttachmentDescription.samples", unsafe.Offsetof(AttachmentDescription{}.Samples), 8},
		{"AttachmentDescription.loadOp", unsafe.Offsetof(AttachmentDescription{}.LoadOp), 12},
		{"AttachmentDescription.storeOp", unsafe.Offsetof(AttachmentDescription{}.StoreOp), 16},
		{"AttachmentDescription.stencilLoadOp", unsafe.Offsetof(AttachmentDescription{}.StencilLoadOp), 20},
		{"AttachmentDescription.stencilStoreOp", unsafe.Offsetof(AttachmentDescription{}.StencilStoreOp), 24},
		{"AttachmentDescription.initialLayout", unsafe.Offsetof(AttachmentDescription{}.InitialLayout), 28},
		{"AttachmentDescription.finalLayout", unsafe.Offsetof(AttachmentDescription{}.FinalLayout), 32},
		{"AttachmentReference.attachment", unsafe.Offsetof(AttachmentReference{}.Attachment), 0},
		{"AttachmentReference.layout", unsafe.Offsetof(AttachmentReference{}.Layout), 4},
		{"SubpassDescription.flags", unsafe.Offsetof(SubpassDescription{}.Flags), 0},
		{"SubpassDescription.pipelineBindPoint", unsafe.Offsetof(SubpassDescription{}.PipelineBindPoint), 4},
		{"SubpassDescription.inputAttachmentCount", unsafe.Offsetof(SubpassDescription{}.InputAttachmentCount), 8},
		{"SubpassDescription.pInputAttachments", unsafe.Offsetof(SubpassDescription{}.PInputAttachments), 16},
		{"SubpassDescription.colorAttachmentCount", unsafe.Offsetof(SubpassDescription{}.ColorAttachmentCount), 24},
		{"SubpassDescription.pColorAttachments", unsafe.Offsetof(SubpassDescription{}.PColorAttachments), 32},
		{"SubpassDescription.pResolveAttachments", unsafe.Offsetof(SubpassDescription{}.PResolveAttachments), 40},
		{"SubpassDescription.pDepthStencilAttachment", unsafe.Offsetof(SubpassDescription{}.PDepthStencilAttachment), 48},
		{"SubpassDescription.preserveAttachmentCount", unsafe.Offsetof(SubpassDescription{}.PreserveAttachmentCount), 56},
		{"SubpassDescription.pPreserveAttachments", unsafe.Offsetof(SubpassDescription{}.PPreserveAttachments), 64},
		{"SubpassDependency.srcSubpass", unsafe.Offsetof(SubpassDependency{}.SrcSubpass), 0},
		{"SubpassDependency.dstSubpass", unsafe.Offsetof(SubpassDependency{}.DstSubpass), 4},
		{"SubpassDependency.srcStageMask", unsafe.Offsetof(SubpassDependency{}.SrcStageMask), 8},
		{"SubpassDependency.dstStageMask", unsafe.Offsetof(SubpassDependency{}.DstStageMask), 12},
		{"SubpassDependency.srcAccessMask", unsafe.Offsetof(SubpassDependency{}.SrcAccessMask), 16},
		{"SubpassDependency.dstAccessMask", unsafe.Offsetof(SubpassDependency{}.DstAccessMask), 20},
		{"SubpassDependency.dependencyFlags", unsafe.Offsetof(SubpassDependency{}.DependencyFlags), 24},
		{"RenderPassCreateInfo.sType", unsafe.Offsetof(RenderPassCreateInfo{}.SType), 0},
		{"RenderPassCreateInfo.pNext", unsafe.Offsetof(RenderPassCreateInfo{}.PNext), 8},
		{"RenderPassCreateInfo.flags", unsafe.Offsetof(RenderPassCreateInfo{}.Flags), 16},
		{"RenderPassCreateInfo.attachmentCount", unsafe.Offsetof(RenderPassCreateInfo{}.AttachmentCount), 20},
		{"RenderPassCreateInfo.pAttachments", unsafe.Offsetof(RenderPassCreateInfo{}.PAttachments), 24},
		{"RenderPassCreateInfo.subpassCount", unsafe.Offsetof(RenderPassCreateInfo{}.SubpassCount), 32},
		{"RenderPassCreateInfo.pSubpasses", unsafe.Offsetof(RenderPassCreateInfo{}.PSubpasses), 40},
		{"RenderPassCreateInfo.dependencyCount", unsafe.Offsetof(RenderPassCreateInfo{}.DependencyCount), 48},
		{"RenderPassCreateInfo.pDependencies", unsafe.Offsetof(RenderPassCreateInfo{}.PDependencies), 56},
		{"FramebufferCreateInfo.sType", unsafe.Offsetof(FramebufferCreateInfo{}.SType), 0},
		{"FramebufferCreateInfo.pNext", unsafe.Offsetof(FramebufferCreateInfo{}.PNext), 8},
		{"FramebufferCreateInfo.flags", unsafe.Offsetof(FramebufferCreateInfo{}.Flags), 16},
		{"FramebufferCreateInfo.renderPass", unsafe.Offsetof(FramebufferCreateInfo{}.RenderPass), 24},
		{"FramebufferCreateInfo.attachmentCount", unsafe.Offsetof(FramebufferCreateInfo{}.AttachmentCount), 32},
		{"FramebufferCreateInfo.pAttachments", unsafe.Offsetof(FramebufferCreateInfo{}.PAttachments), 40},
		{"FramebufferCreateInfo.width", unsafe.Offsetof(FramebufferCreateInfo{}.Width), 48},
		{"FramebufferCreateInfo.height", unsafe.Offsetof(FramebufferCreateInfo{}.Height), 52},
		{"FramebufferCreateInfo.layers", unsafe.Offsetof(FramebufferCreateInfo{}.Layers), 56},
		{"RenderPassBeginInfo.sType", unsafe.Offsetof(RenderPassBeginInfo{}.SType), 0},
		{"RenderPassBeginInfo.pNext", unsafe.Offsetof(RenderPassBeginInfo{}.PNext), 8},
		{"RenderPassBeginInfo.renderPass", unsafe.Offsetof(RenderPassBeginInfo{}.RenderPass), 16},
		{"RenderPassBeginInfo.framebuffer", unsafe.Offsetof(RenderPassBeginInfo{}.Framebuffer), 24},
		{"RenderPassBeginInfo.renderArea", unsafe.Offsetof(RenderPassBeginInfo{}.RenderArea), 32},
		{"RenderPassBeginInfo.clearValueCount", unsafe.Offsetof(RenderPassBeginInfo{}.ClearValueCount), 48},
		{"RenderPassBeginInfo.pClearValues", unsafe.Offsetof(RenderPassBeginInfo{}.PClearValues), 56},
		{"DescriptorSetLayoutBinding.binding", unsafe.Offsetof(DescriptorSetLayoutBinding{}.Binding), 0},
		{"DescriptorSetLayoutBinding.descriptorType", unsafe.Offsetof(DescriptorSetLayoutBinding{}.DescriptorType), 4},
		{"DescriptorSetLayoutBinding.descriptorCount", unsafe.Offsetof(DescriptorSetLayoutBinding{}.DescriptorCount), 8},
		{"DescriptorSetLayoutBinding.stageFlags", unsafe.Offsetof(DescriptorSetLayoutBinding{}.StageFlags), 12},
		{"DescriptorSetLayoutBinding.pImmutableSamplers", unsafe.Offsetof(DescriptorSetLayoutBinding{}.PImmutableSamplers), 16},
		{"DescriptorSetLayoutCreateInfo.sType", unsafe.Offsetof(DescriptorSetLayoutCreateInfo{}.SType), 0},
		{"DescriptorSetLayoutCreateInfo.pNext", unsafe.Offsetof(DescriptorSetLayoutCreateInfo{}.PNext), 8},
		{"DescriptorSetLayoutCreateInfo.flags", unsafe.Offsetof(DescriptorSetLayoutCreateInfo{}.Flags), 16},
		{"DescriptorSetLayoutCreateInfo.bindingCount", unsafe.Offsetof(DescriptorSetLayoutCreateInfo{}.BindingCount), 20},
		{"DescriptorSetLayoutCreateInfo.pBindings", unsafe.Offsetof(DescriptorSetLayoutCreateInfo{}.PBindings), 24},
		{"DescriptorPoolSize.type", unsafe.Offsetof(DescriptorPoolSize{}.Type), 0},
		{"DescriptorPoolSize.descriptorCount", unsafe.Offsetof(DescriptorPoolSize{}.DescriptorCount), 4},
		{"DescriptorPoolCreateInfo.sType", unsafe.Offsetof(DescriptorPoolCreateInfo{}.SType), 0},
		{"DescriptorPoolCreateInfo.pNext", unsafe.Offsetof(DescriptorPoolCreateInfo{}.PNext), 8},
		{"DescriptorPoolCreateInfo.flags", unsafe.Offsetof(DescriptorPoolCreateInfo{}.Flags), 16},
		{"DescriptorPoolCreateInfo.maxSets", unsafe.Offsetof(DescriptorPoolCreateInfo{}.MaxSets), 20},
		{"DescriptorPoolCreateInfo.poolSizeCount", unsafe.Offsetof(DescriptorPoolCreateInfo{}.PoolSizeCount), 24},
		{"DescriptorPoolCreateInfo.pPoolSizes", unsafe.Offsetof(DescriptorPoolCreateInfo{}.PPoolSizes), 32},
		{"DescriptorSetAllocateInfo.sType", unsafe.Offsetof(DescriptorSetAllocateInfo{}.SType), 0},
		{"DescriptorSetAllocateInfo.pNext", unsafe.Offsetof(DescriptorSetAllocateInfo{}.PNext), 8},
		{"DescriptorSetAllocateInfo.descriptorPool", unsafe.Offsetof(DescriptorSetAllocateInfo{}.DescriptorPool), 16},
		{"DescriptorSetAllocateInfo.descriptorSetCount", unsafe.Offsetof(DescriptorSetAllocateInfo{}.DescriptorSetCount), 24},
		{"DescriptorSetAllocateInfo.pSetLayouts", unsafe.Offsetof(DescriptorSetAllocateInfo{}.PSetLayouts), 32},
		{"DescriptorBufferInfo.buffer", unsafe.Offsetof(DescriptorBufferInfo{}.Buffer), 0},
		{"DescriptorBufferInfo.offset", unsafe.Offsetof(DescriptorBufferInfo{}.Offset), 8},
		{"DescriptorBufferInfo.range", unsafe.Offsetof(DescriptorBufferInfo{}.Range), 16},
		{"DescriptorImageInfo.sampler", unsafe.Offsetof(DescriptorImageInfo{}.Sampler), 0},
		{"DescriptorImageInfo.imageView", unsafe.Offsetof(DescriptorImageInfo{}.ImageView), 8},
		{"DescriptorImageInfo.imageLayout", unsafe.Offsetof(DescriptorImageInfo{}.ImageLayout), 16},
		{"WriteDescriptorSet.sType", unsafe.Offsetof(WriteDescriptorSet{}.SType), 0},
		{"WriteDescriptorSet.pNext", unsafe.Offsetof(WriteDescriptorSet{}.PNext), 8},
		{"WriteDescriptorSet.dstSet", unsafe.Offsetof(WriteDescriptorSet{}.DstSet), 16},
		{"WriteDescriptorSet.dstBinding", unsafe.Offsetof(WriteDescriptorSet{}.DstBinding), 24},
		{"WriteDescriptorSet.dstArrayElement", unsafe.Offsetof(WriteDescriptorSet{}.DstArrayElement), 28},
		{"WriteDescriptorSet.descriptorCount", unsafe.Offsetof(WriteDescriptorSet{}.DescriptorCount), 32},
		{"WriteDescriptorSet.descriptorType", unsafe.Offsetof(WriteDescriptorSet{}.DescriptorType), 36},
		{"WriteDescriptorSet.pImageInfo", unsafe.Offsetof(WriteDescriptorSet{}.PImageInfo), 40},
		{"WriteDescriptorSet.pBufferInfo", unsafe.Offsetof(WriteDescriptorSet{}.PBufferInfo), 48},
		{"WriteDescriptorSet.pTexelBufferView", unsafe.Offsetof(WriteDescriptorSet{}.PTexelBufferView), 56},
		{"PushConstantRange.stageFlags", unsafe.Offsetof(PushConstantRange{}.StageFlags), 0},
		{"PushConstantRange.offset", unsafe.Offsetof(PushConstantRange{}.Offset), 4},
		{"PushConstantRange.size", unsafe.Offsetof(PushConstantRange{}.Size), 8},
		{"PipelineLayoutCreateInfo.sType", unsafe.Offsetof(PipelineLayoutCreateInfo{}.SType), 0},
		{"PipelineLayoutCreateInfo.pNext", unsafe.Offsetof(PipelineLayoutCreateInfo{}.PNext), 8},
		{"PipelineLayoutCreateInfo.flags", unsafe.Offsetof(PipelineLayoutCreateInfo{}.Flags), 16},
		{"PipelineLayoutCreateInfo.setLayoutCount", unsafe.Offsetof(PipelineLayoutCreateInfo{}.SetLayoutCount), 20},
		{"PipelineLayoutCreateInfo.pSetLayouts", unsafe.Offsetof(PipelineLayoutCreateInfo{}.PSetLayouts), 24},
		{"PipelineLayoutCreateInfo.pushConstantRangeCount", unsafe.Offsetof(PipelineLayoutCreateInfo{}.PushConstantRangeCount), 32},
		{"PipelineLayoutCreateInfo.pPushConstantRanges", unsafe.Offsetof(PipelineLayoutCreateInfo{}.PPushConstantRanges), 40},
		{"SpecializationMapEntry.constantID", unsafe.Offsetof(SpecializationMapEntry{}.ConstantID), 0},
		{"SpecializationMapEntry.offset", unsafe.Offsetof(SpecializationMapEntry{}.Offset), 4},
		{"SpecializationMapEntry.size", unsafe.Offsetof(SpecializationMapEntry{}.Size), 8},
		{"SpecializationInfo.mapEntryCount", unsafe.Offsetof(SpecializationInfo{}.MapEntryCount), 0},
		{"SpecializationInfo.pMapEntries", unsafe.Offsetof(SpecializationInfo{}.PMapEntries), 8},
		{"SpecializationInfo.dataSize", unsafe.Offsetof(SpecializationInfo{}.DataSize), 16},
		{"SpecializationInfo.pData", unsafe.Offsetof(SpecializationInfo{}.PData), 24},
		{"PipelineShaderStageCreateInfo.sType", unsafe.Offsetof(PipelineShaderStageCreateInfo{}.SType), 0},
		{"PipelineShaderStageCreateInfo.pNext", unsafe.Offsetof(PipelineShaderStageCreateInfo{}.PNext), 8},
		{"PipelineShaderStageCreateInfo.flags", unsafe.Offsetof(PipelineShaderStageCreateInfo{}.Flags), 16},
		{"PipelineShaderStageCreateInfo.stage", unsafe.Offsetof(PipelineShaderStageCreateInfo{}.Stage), 20},
		{"PipelineShaderStageCreateInfo.module", unsafe.Offsetof(PipelineShaderStageCreateInfo{}.Module), 24},
		{"PipelineShaderStageCreateInfo.pName", unsafe.Offsetof(PipelineShaderStageCreateInfo{}.PName), 32},
		{"PipelineShaderStageCreateInfo.pSpecializationInfo", unsafe.Offsetof(PipelineShaderStageCreateInfo{}.PSpecializationInfo), 40},
		{"ComputePipelineCreateInfo.sType", unsafe.Offsetof(ComputePipelineCreateInfo{}.SType), 0},
		{"ComputePipelineCreateInfo.pNext", unsafe.Offsetof(ComputePipelineCreateInfo{}.PNext), 8},
		{"ComputePipelineCreateInfo.flags", unsafe.Offsetof(ComputePipelineCreateInfo{}.Flags), 16},
		{"ComputePipelineCreateInfo.stage", unsafe.Offsetof(ComputePipelineCreateInfo{}.Stage), 24},
		{"ComputePipelineCreateInfo.layout", unsafe.Offsetof(ComputePipelineCreateInfo{}.Layout), 72},
		{"ComputePipelineCreateInfo.basePipelineHandle", unsafe.Offsetof(ComputePipelineCreateInfo{}.BasePipelineHandle), 80},
		{"ComputePipelineCreateInfo.basePipelineIndex", unsafe.Offsetof(ComputePipelineCreateInfo{}.BasePipelineIndex), 88},
		{"VertexInputBindingDescription.binding", unsafe.Offsetof(VertexInputBindingDescription{}.Binding), 0},
		{"VertexInputBindingDescription.stride", unsafe.Offsetof(VertexInputBindingDescription{}.Stride), 4},
		{"VertexInputBindingDescription.inputRate", unsafe.Offsetof(VertexInputBindingDescription{}.InputRate), 8},
		{"VertexInputAttributeDescription.location", unsafe.Offsetof(VertexInputAttributeDescription{}.Location), 0},
		{"VertexInputAttributeDescription.binding", unsafe.Offsetof(VertexInputAttributeDescription{}.Binding), 4},
		{"VertexInputAttributeDescription.format", unsafe.Offsetof(VertexInputAttributeDescription{}.Format), 8},
		{"VertexInputAttributeDescription.offset", unsafe.Offsetof(VertexInputAttributeDescription{}.Offset), 12},
		{"PipelineVertexInputStateCreateInfo.sType", unsafe.Offsetof(PipelineVertexInputStateCreateInfo{}.SType), 0},
		{"PipelineVertexInputStateCreateInfo.pNext", unsafe.Offsetof(PipelineVertexInputStateCreateInfo{}.PNext), 8},
		{"PipelineVertexInputStateCreateInfo.flags", unsafe.Offsetof(PipelineVertexInputStateCreateInfo{}.Flags), 16},
		{"PipelineVertexInputStateCreateInfo.vertexBindingDescriptionCount", unsafe.Offsetof(PipelineVertexInputStateCreateInfo{}.VertexBindingDescriptionCount), 20},
		{"PipelineVertexInputStateCreateInfo.pVertexBindingDescriptions", unsafe.Offsetof(PipelineVertexInputStateCreateInfo{}.PVertexBindingDescriptions), 24},
		{"PipelineVertexInputStateCreateInfo.vertexAttributeDescriptionCount", unsafe.Offsetof(PipelineVertexInputStateCreateInfo{}.VertexAttributeDescriptionCount), 32},
		{"PipelineVertexInputStateCreateInfo.pVertexAttributeDescriptions", unsafe.Offsetof(PipelineVertexInputStateCreateInfo{}.PVertexAttributeDescriptions), 40},
		{"PipelineInputAssemblyStateCreateInfo.sType", unsafe.Offsetof(PipelineInputAssemblyStateCreateInfo{}.SType), 0},
		{"PipelineInputAssemblyStateCreateInfo.pNext", unsafe.Offsetof(PipelineInputAssemblyStateCreateInfo{}.PNext), 8},
		{"PipelineInputAssemblyStateCreateInfo.flags", unsafe.Offsetof(PipelineInputAssemblyStateCreateInfo{}.Flags), 16},
		{"PipelineInputAssemblyStateCreateInfo.topology", unsafe.Offsetof(PipelineInputAssemblyStateCreateInfo{}.Topology), 20},
		{"PipelineInputAssemblyStateCreateInfo.primitiveRestartEnable", unsafe.Offsetof(PipelineInputAssemblyStateCreateInfo{}.PrimitiveRestartEnable), 24},
		{"PipelineTessellationStateCreateInfo.sType", unsafe.Offsetof(PipelineTessellationStateCreateInfo{}.SType), 0},
		{"PipelineTessellationStateCreateInfo.pNext", unsafe.Offsetof(PipelineTessellationStateCreateInfo{}.PNext), 8},
		{"PipelineTessellationStateCreateInfo.flags", unsafe.Offsetof(PipelineTessellationStateCreateInfo{}.Flags), 16},
		{"PipelineTessellationStateCreateInfo.patchControlPoints", unsafe.Offsetof(PipelineTessellationStateCreateInfo{}.PatchControlPoints), 20},
		{"PipelineViewportStateCreateInfo.sType", unsafe.Offsetof(PipelineViewportStateCreateInfo{}.SType), 0},
		{"PipelineViewportStateCreateInfo.pNext", unsafe.Offsetof(PipelineViewportStateCreateInfo{}.PNext), 8},
		{"PipelineViewportStateCreateInfo.flags", unsafe.Offsetof(PipelineViewportStateCreateInfo{}.Flags), 16},
		{"PipelineViewportStateCreateInfo.viewportCount", unsafe.Offsetof(PipelineViewportStateCreateInfo{}.ViewportCount), 20},
		{"PipelineViewportStateCreateInfo.pViewports", unsafe.Offsetof(PipelineViewportStateCreateInfo{}.PViewports), 24},
		{"PipelineViewportStateCreateInfo.scissorCount", unsafe.Offsetof(PipelineViewportStateCreateInfo{}.ScissorCount), 32},
		{"PipelineViewportStateCreateInfo.pScissors", unsafe.Offsetof(PipelineViewportStateCreateInfo{}.PScissors), 40},
		{"PipelineRasterizationStateCreateInfo.sType", unsafe.Offsetof(PipelineRasterizationStateCreateInfo{}.SType), 0},
		{"PipelineRasterizationStateCreateInfo.pNext", unsafe.Offsetof(PipelineRasterizationStateCreateInfo{}.PNext), 8},
		{"PipelineRasterizationStateCreateInfo.flags", unsafe.Offsetof(PipelineRasterizationStateCreateInfo{}.Flags), 16},
		{"PipelineRasterizationStateCreateInfo.depthClampEnable", unsafe.Offsetof(PipelineRasterizationStateCreateInfo{}.DepthClampEnable), 20},
		{"PipelineRasterizationStateCreateInfo.rasterizerDiscardEnable", unsafe.Offsetof(PipelineRasterizationStateCreateInfo{}.RasterizerDiscardEnable), 24},
		{"PipelineRasterizationStateCreateInfo.polygonMode", unsafe.Offsetof(PipelineRasterizationStateCreateInfo{}.PolygonMode), 28},
		{"PipelineRasterizationStateCreateInfo.cullMode", unsafe.Offsetof(PipelineRasterizationStateCreateInfo{}.CullMode), 32},
		{"PipelineRasterizationStateCreateInfo.frontFace", unsafe.Offsetof(PipelineRasterizationStateCreateInfo{}.FrontFace), 36},
		{"PipelineRasterizationStateCreateInfo.depthBiasEnable", unsafe.Offsetof(PipelineRasterizationStateCreateInfo{}.DepthBiasEnable), 40},
		{"PipelineRasterizationStateCreateInfo.depthBiasConstantFactor", unsafe.Offsetof(PipelineRasterizationStateCreateInfo{}.DepthBiasConstantFactor), 44},
		{"PipelineRasterizationStateCreateInfo.depthBiasClamp", unsafe.Offsetof(PipelineRasterizationStateCreateInfo{}.DepthBiasClamp), 48},
		{"PipelineRasterizationStateCreateInfo.depthBiasSlopeFactor", unsafe.Offsetof(PipelineRasterizationStateCreateInfo{}.DepthBiasSlopeFactor), 52},
		{"PipelineRasterizationStateCreateInfo.lineWidth", unsafe.Offsetof(PipelineRasterizationStateCreateInfo{}.LineWidth), 56},
		{"PipelineMultisampleStateCreateInfo.sType", unsafe.Offsetof(PipelineMultisampleStateCreateInfo{}.SType), 0},
		{"PipelineMultisampleStateCreateInfo.pNext", unsafe.Offsetof(PipelineMultisampleStateCreateInfo{}.PNext), 8},
		{"PipelineMultisampleStateCreateInfo.flags", unsafe.Offsetof(PipelineMultisampleStateCreateInfo{}.Flags), 16},
		{"PipelineMultisampleStateCreateInfo.rasterizationSamples", unsafe.Offsetof(PipelineMultisampleStateCreateInfo{}.RasterizationSamples), 20},
		{"PipelineMultisampleStateCreateInfo.sampleShadingEnable", unsafe.Offsetof(PipelineMultisampleStateCreateInfo{}.SampleShadingEnable), 24},
		{"PipelineMultisampleStateCreateInfo.minSampleShading", unsafe.Offsetof(PipelineMultisampleStateCreateInfo{}.MinSampleShading), 28},
		{"PipelineMultisampleStateCreateInfo.pSampleMask", unsafe.Offsetof(PipelineMultisampleStateCreateInfo{}.PSampleMask), 32},
		{"PipelineMultisampleStateCreateInfo.alphaToCoverageEnable", unsafe.Offsetof(PipelineMultisampleStateCreateInfo{}.AlphaToCoverageEnable), 40},
		{"PipelineMultisampleStateCreateInfo.alphaToOneEnable", unsafe.Offsetof(PipelineMultisampleStateCreateInfo{}.AlphaToOneEnable), 44},
		{"StencilOpState.failOp", unsafe.Offsetof(StencilOpState{}.FailOp), 0},
		{"StencilOpState.passOp", unsafe.Offsetof(StencilOpState{}.PassOp), 4},
		{"StencilOpState.depthFailOp", unsafe.Offsetof(StencilOpState{}.DepthFailOp), 8},
		{"StencilOpState.compareOp", unsafe.Offsetof(StencilOpState{}.CompareOp), 12},
		{"StencilOpState.compareMask", unsafe.Offsetof(StencilOpState{}.CompareMask), 16},
		{"StencilOpState.writeMask", unsafe.Offsetof(StencilOpState{}.WriteMask), 20},
		{"StencilOpState.reference", unsafe.Offsetof(StencilOpState{}.Reference), 24},
		{"PipelineDepthStencilStateCreateInfo.sType", unsafe.Offsetof(PipelineDepthStencilStateCreateInfo{}.SType), 0},
		{"PipelineDepthStencilStateCreateInfo.pNext", unsafe.Offsetof(PipelineDepthStencilStateCreateInfo{}.PNext), 8},
		{"PipelineDepthStencilStateCreateInfo.flags", unsafe.Offsetof(PipelineDepthStencilStateCreateInfo{}.Flags), 16},
		{"PipelineDepthStencilStateCreateInfo.depthTestEnable", unsafe.Offsetof(PipelineDepthStencilStateCreateInfo{}.DepthTestEnable), 20},
		{"PipelineDepthStencilStateCreateInfo.depthWriteEnable", unsafe.Offsetof(PipelineDepthStencilStateCreateInfo{}.DepthWriteEnable), 24},
		{"PipelineDepthStencilStateCreateInfo.depthCompareOp", unsafe.Offsetof(PipelineDepthStencilStateCreateInfo{}.DepthCompareOp), 28},
		{"PipelineDepthStencilStateCreateInfo.depthBoundsTestEnable", unsafe.Offsetof(PipelineDepthStencilStateCreateInfo{}.DepthBoundsTestEnable), 32},
		{"PipelineDepthStencilStateCreateInfo.stencilTestEnable", unsafe.Offsetof(PipelineDepthStencilStateCreateInfo{}.StencilTestEnable), 36},
		{"PipelineDepthStencilStateCreateInfo.front", unsafe.Offsetof(PipelineDepthStencilStateCreateInfo{}.Front), 40},
		{"PipelineDepthStencilStateCreateInfo.back", unsafe.Offsetof(PipelineDepthStencilStateCreateInfo{}.Back), 68},
		{"PipelineDepthStencilStateCreateInfo.minDepthBounds", unsafe.Offsetof(PipelineDepthStencilStateCreateInfo{}.MinDepthBounds), 96},
		{"PipelineDepthStencilStateCreateInfo.maxDepthBounds", unsafe.Offsetof(PipelineDepthStencilStateCreateInfo{}.MaxDepthBounds), 100},
		{"PipelineColorBlendAttachmentState.blendEnable", unsafe.Offsetof(PipelineColorBlendAttachmentState{}.BlendEnable), 0},
		{"PipelineColorBlendAttachmentState.srcColorBlendFactor", unsafe.Offsetof(PipelineColorBlendAttachmentState{}.SrcColorBlendFactor), 4},
		{"PipelineColorBlendAttachmentState.dstColorBlendFactor", unsafe.Offsetof(PipelineColorBlendAttachmentState{}.DstColorBlendFactor), 8},
		{"PipelineColorBlendAttachmentState.colorBlendOp", unsafe.Offsetof(PipelineColorBlendAttachmentState{}.ColorBlendOp), 12},
		{"PipelineColorBlendAttachmentState.srcAlphaBlendFactor", unsafe.Offsetof(PipelineColorBlendAttachmentState{}.SrcAlphaBlendFactor), 16},
		{"PipelineColorBlendAttachmentState.dstAlphaBlendFactor", unsafe.Offsetof(PipelineColorBlendAttachmentState{}.DstAlphaBlendFactor), 20},
		{"PipelineColorBlendAttachmentState.alphaBlendOp", unsafe.Offsetof(PipelineColorBlendAttachmentState{}.AlphaBlendOp), 24},
		{"PipelineColorBlendAttachmentState.colorWriteMask", unsafe.Offsetof(PipelineColorBlendAttachmentState{}.ColorWriteMask), 28},
		{"PipelineColorBlendStateCreateInfo.sType", unsafe.Offsetof(PipelineColorBlendStateCreateInfo{}.SType), 0},
		{"PipelineColorBlendStateCreateInfo.pNext", unsafe.Offsetof(PipelineColorBlendStateCreateInfo{}.PNext), 8},
		{"PipelineColorBlendStateCreateInfo.flags", unsafe.Offsetof(PipelineColorBlendStateCreateInfo{}.Flags), 16},
		{"PipelineColorBlendStateCreateInfo.logicOpEnable", unsafe.Offsetof(PipelineColorBlendStateCreateInfo{}.LogicOpEnable), 20},
		{"PipelineColorBlendStateCreateInfo.logicOp", unsafe.Offsetof(PipelineColorBlendStateCreateInfo{}.LogicOp), 24},
		{"PipelineColorBlendStateCreateInfo.attachmentCount", unsafe.Offsetof(PipelineColorBlendStateCreateInfo{}.AttachmentCount), 28},
		{"PipelineColorBlendStateCreateInfo.pAttachments", unsafe.Offsetof(PipelineColorBlendStateCreateInfo{}.PAttachments), 32},
		{"PipelineColorBlendStateCreateInfo.blendConstants", unsafe.Offsetof(PipelineColorBlendStateCreateInfo{}.BlendConstants), 40},
		{"PipelineDynamicStateCreateInfo.sType", unsafe.Offsetof(PipelineDynamicStateCreateInfo{}.SType), 0},
		{"PipelineDynamicStateCreateInfo.pNext", unsafe.Offsetof(PipelineDynamicStateCreateInfo{}.PNext), 8},
		{"PipelineDynamicStateCreateInfo.flags", unsafe.Offsetof(PipelineDynamicStateCreateInfo{}.Flags), 16},
		{"PipelineDynamicStateCreateInfo.dynamicStateCount", unsafe.Offsetof(PipelineDynamicStateCreateInfo{}.DynamicStateCount), 20},
		{"PipelineDynamicStateCreateInfo.pDynamicStates", unsafe.Offsetof(PipelineDynamicStateCreateInfo{}.PDynamicStates), 24},
		{"GraphicsPipelineCreateInfo.sType", unsafe.Offsetof(GraphicsPipelineCreateInfo{}.SType), 0},
		{"GraphicsPipelineCreateInfo.pNext", unsafe.Offsetof(GraphicsPipelineCreateInfo{}.PNext), 8},
		{"GraphicsPipelineCreateInfo.flags", unsafe.Offsetof(GraphicsPipelineCreateInfo{}.Flags), 16},
		{"GraphicsPipelineCreateInfo.stageCount", unsafe.Offsetof(GraphicsPipelineCreateInfo{}.StageCount), 20},
		{"GraphicsPipelineCreateInfo.pStages", unsafe.Offsetof(GraphicsPipelineCreateInfo{}.PStages), 24},
		{"GraphicsPipelineCreateInfo.pVertexInputState", unsafe.Offsetof(GraphicsPipelineCreateInfo{}.PVertexInputState), 32},
		{"GraphicsPipelineCreateInfo.pInputAssemblyState", unsafe.Offsetof(GraphicsPipelineCreateInfo{}.PInputAssemblyState), 40},
		{"GraphicsPipelineCreateInfo.pTessellationState", unsafe.Offsetof(GraphicsPipelineCreateInfo{}.PTessellationState), 48},
		{"GraphicsPipelineCreateInfo.pViewportState", unsafe.Offsetof(GraphicsPipelineCreateInfo{}.PViewportState), 56},
		{"GraphicsPipelineCreateInfo.pRasterizationState", unsafe.Offsetof(GraphicsPipelineCreateInfo{}.PRasterizationState), 64},
		{"GraphicsPipelineCreateInfo.pMultisampleState", unsafe.Offsetof(GraphicsPipelineCreateInfo{}.PMultisampleState), 72},
		{"GraphicsPipelineCreateInfo.pDepthStencilState", unsafe.Offsetof(GraphicsPipelineCreateInfo{}.PDepthStencilState), 80},
		{"GraphicsPipelineCreateInfo.pColorBlendState", unsafe.Offsetof(GraphicsPipelineCreateInfo{}.PColorBlendState), 88},
		{"GraphicsPipelineCreateInfo.pDynamicState", unsafe.Offsetof(GraphicsPipelineCreateInfo{}.PDynamicState), 96},
		{"GraphicsPipelineCreateInfo.layout", unsafe.Offsetof(GraphicsPipelineCreateInfo{}.Layout), 104},
		{"GraphicsPipelineCreateInfo.renderPass", unsafe.Offsetof(GraphicsPipelineCreateInfo{}.RenderPass), 112},
		{"GraphicsPipelineCreateInfo.subpass", unsafe.Offsetof(GraphicsPipelineCreateInfo{}.Subpass), 120},
		{"GraphicsPipelineCreateInfo.basePipelineHandle", unsafe.Offsetof(GraphicsPipelineCreateInfo{}.BasePipelineHandle), 128},
		{"GraphicsPipelineCreateInfo.basePipelineIndex", unsafe.Offsetof(GraphicsPipelineCreateInfo{}.BasePipelineIndex), 136},
		{"PipelineRenderingCreateInfo.sType", unsafe.Offsetof(PipelineRenderingCreateInfo{}.SType), 0},
		{"PipelineRenderingCreateInfo.pNext", unsafe.Offsetof(PipelineRenderingCreateInfo{}.PNext), 8},
		{"PipelineRenderingCreateInfo.viewMask", unsafe.Offsetof(PipelineRenderingCreateInfo{}.ViewMask), 16},
		{"PipelineRenderingCreateInfo.colorAttachmentCount", unsafe.Offsetof(PipelineRenderingCreateInfo{}.ColorAttachmentCount), 20},
		{"PipelineRenderingCreateInfo.pColorAttachmentFormats", unsafe.Offsetof(PipelineRenderingCreateInfo{}.PColorAttachmentFormats), 24},
		{"PipelineRenderingCreateInfo.depthAttachmentFormat", unsafe.Offsetof(PipelineRenderingCreateInfo{}.DepthAttachmentFormat), 32},
		{"PipelineRenderingCreateInfo.stencilAttachmentFormat", unsafe.Offsetof(PipelineRenderingCreateInfo{}.StencilAttachmentFormat), 36},
		{"SamplerCreateInfo.sType", unsafe.Offsetof(SamplerCreateInfo{}.SType), 0},
		{"SamplerCreateInfo.pNext", unsafe.Offsetof(SamplerCreateInfo{}.PNext), 8},
		{"SamplerCreateInfo.flags", unsafe.Offsetof(SamplerCreateInfo{}.Flags), 16},
		{"SamplerCreateInfo.magFilter", unsafe.Offsetof(SamplerCreateInfo{}.MagFilter), 20},
		{"SamplerCreateInfo.minFilter", unsafe.Offsetof(SamplerCreateInfo{}.MinFilter), 24},
		{"SamplerCreateInfo.mipmapMode", unsafe.Offsetof(SamplerCreateInfo{}.MipmapMode), 28},
		{"SamplerCreateInfo.addressModeU", unsafe.Offsetof(SamplerCreateInfo{}.AddressModeU), 32},
		{"SamplerCreateInfo.addressModeV", unsafe.Offsetof(SamplerCreateInfo{}.AddressModeV), 36},
		{"SamplerCreateInfo.addressModeW", unsafe.Offsetof(SamplerCreateInfo{}.AddressModeW), 40},
		{"SamplerCreateInfo.mipLodBias", unsafe.Offsetof(SamplerCreateInfo{}.MipLodBias), 44},
		{"SamplerCreateInfo.anisotropyEnable", unsafe.Offsetof(SamplerCreateInfo{}.AnisotropyEnable), 48},
		{"SamplerCreateInfo.maxAnisotropy", unsafe.Offsetof(SamplerCreateInfo{}.MaxAnisotropy), 52},
		{"SamplerCreateInfo.compareEnable", unsafe.Offsetof(SamplerCreateInfo{}.CompareEnable), 56},
		{"SamplerCreateInfo.compareOp", unsafe.Offsetof(SamplerCreateInfo{}.CompareOp), 60},
		{"SamplerCreateInfo.minLod", unsafe.Offsetof(SamplerCreateInfo{}.MinLod), 64},
		{"SamplerCreateInfo.maxLod", unsafe.Offsetof(SamplerCreateInfo{}.MaxLod), 68},
		{"SamplerCreateInfo.borderColor", unsafe.Offsetof(SamplerCreateInfo{}.BorderColor), 72},
		{"SamplerCreateInfo.unnormalizedCoordinates", unsafe.Offsetof(SamplerCreateInfo{}.UnnormalizedCoordinates), 76},
		{"SparseMemoryBind.resourceOffset", unsafe.Offsetof(SparseMemoryBind{}.ResourceOffset), 0},
		{"SparseMemoryBind.size", unsafe.Offsetof(SparseMemoryBind{}.Size), 8},
		{"SparseMemoryBind.memory", unsafe.Offsetof(SparseMemoryBind{}.Memory), 16},
		{"SparseMemoryBind.memoryOffset", unsafe.Offsetof(SparseMemoryBind{}.MemoryOffset), 24},
		{"SparseMemoryBind.flags", unsafe.Offsetof(SparseMemoryBind{}.Flags), 32},
		{"SparseBufferMemoryBindInfo.buffer", unsafe.Offsetof(SparseBufferMemoryBindInfo{}.Buffer), 0},
		{"SparseBufferMemoryBindInfo.bindCount", unsafe.Offsetof(SparseBufferMemoryBindInfo{}.BindCount), 8},
		{"SparseBufferMemoryBindInfo.pBinds", unsafe.Offsetof(SparseBufferMemoryBindInfo{}.PBinds), 16},
		{"SparseImageOpaqueMemoryBindInfo.image", unsafe.Offsetof(SparseImageOpaqueMemoryBindInfo{}.Image), 0},
		{"SparseImageOpaqueMemoryBindInfo.bindCount", unsafe.Offsetof(SparseImageOpaqueMemoryBindInfo{}.BindCount), 8},
		{"SparseImageOpaqueMemoryBindInfo.pBinds", unsafe.Offsetof(SparseImageOpaqueMemoryBindInfo{}.PBinds), 16},
		{"ImageSubresource.aspectMask", unsafe.Offsetof(ImageSubresource{}.AspectMask), 0},
		{"ImageSubresource.mipLevel", unsafe.Offsetof(ImageSubresource{}.MipLevel), 4},
		{"ImageSubresource.arrayLayer", unsafe.Offsetof(ImageSubresource{}.ArrayLayer), 8},
		{"SparseImageMemoryBind.subresource", unsafe.Offsetof(SparseImageMemoryBind{}.Subresource), 0},
		{"SparseImageMemoryBind.offset", unsafe.Offsetof(SparseImageMemoryBind{}.Offset), 12},
		{"SparseImageMemoryBind.extent", unsafe.Offsetof(SparseImageMemoryBind{}.Extent), 24},
		{"SparseImageMemoryBind.memory", unsafe.Offsetof(SparseImageMemoryBind{}.Memory), 40},
		{"SparseImageMemoryBind.memoryOffset", unsafe.Offsetof(SparseImageMemoryBind{}.MemoryOffset), 48},
		{"SparseImageMemoryBind.flags", unsafe.Offsetof(SparseImageMemoryBind{}.Flags), 56},
		{"SparseImageMemoryBindInfo.image", unsafe.Offsetof(SparseImageMemoryBindInfo{}.Image), 0},
		{"SparseImageMemoryBindInfo.bindCount", unsafe.Offsetof(SparseImageMemoryBindInfo{}.BindCount), 8},
		{"SparseImageMemoryBindInfo.pBinds", unsafe.Offsetof(SparseImageMemoryBindInfo{}.PBinds), 16},
		{"BindSparseInfo.sType", unsafe.Offsetof(BindSparseInfo{}.SType), 0},
		{"BindSparseInfo.pNext", unsafe.Offsetof(BindSparseInfo{}.PNext), 8},
		{"BindSparseInfo.waitSemaphoreCount", unsafe.Offsetof(BindSparseInfo{}.WaitSemaphoreCount), 16},
		{"BindSparseInfo.pWaitSemaphores", unsafe.Offsetof(BindSparseInfo{}.PWaitSemaphores), 24},
		{"BindSparseInfo.bufferBindCount", unsafe.Offsetof(BindSparseInfo{}.BufferBindCount), 32},
		{"BindSparseInfo.pBufferBinds", unsafe.Offsetof(BindSparseInfo{}.PBufferBinds), 40},
		{"BindSparseInfo.imageOpaqueBindCount", unsafe.Offsetof(BindSparseInfo{}.ImageOpaqueBindCount), 48},
		{"BindSparseInfo.pImageOpaqueBinds", unsafe.Offsetof(BindSparseInfo{}.PImageOpaqueBinds), 56},
		{"BindSparseInfo.imageBindCount", unsafe.Offsetof(BindSparseInfo{}.ImageBindCount), 64},
		{"BindSparseInfo.pImageBinds", unsafe.Offsetof(BindSparseInfo{}.PImageBinds), 72},
		{"BindSparseInfo.signalSemaphoreCount", unsafe.Offsetof(BindSparseInfo{}.SignalSemaphoreCount), 80},
		{"BindSparseInfo.pSignalSemaphores", unsafe.Offsetof(BindSparseInfo{}.PSignalSemaphores), 88},
		{"SparseImageFormatProperties.aspectMask", unsafe.Offsetof(SparseImageFormatProperties{}.AspectMask), 0},
		{"SparseImageFormatProperties.imageGranularity", unsafe.Offsetof(SparseImageFormatProperties{}.ImageGranularity), 4},
		{"SparseImageFormatProperties.flags", unsafe.Offsetof(SparseImageFormatProperties{}.Flags), 16},
		{"SparseImageMemoryRequirements.formatProperties", unsafe.Offsetof(SparseImageMemoryRequirements{}.FormatProperties), 0},
		{"SparseImageMemoryRequirements.imageMipTailFirstLod", unsafe.Offsetof(SparseImageMemoryRequirements{}.ImageMipTailFirstLod), 20},
		{"SparseImageMemoryRequirements.imageMipTailSize", unsafe.Offsetof(SparseImageMemoryRequirements{}.ImageMipTailSize), 24},
		{"SparseImageMemoryRequirements.imageMipTailOffset", unsafe.Offsetof(SparseImageMemoryRequirements{}.ImageMipTailOffset), 32},
		{"SparseImageMemoryRequirements.imageMipTailStride", unsafe.Offsetof(SparseImageMemoryRequirements{}.ImageMipTailStride), 40},
		{"SurfaceCapabilitiesKHR.minImageCount", unsafe.Offsetof(SurfaceCapabilitiesKHR{}.MinImageCount), 0},
		{"SurfaceCapabilitiesKHR.maxImageCount", unsafe.Offsetof(SurfaceCapabilitiesKHR{}.MaxImageCount), 4},
		{"SurfaceCapabilitiesKHR.currentExtent", unsafe.Offsetof(SurfaceCapabilitiesKHR{}.CurrentExtent), 8},
		{"SurfaceCapabilitiesKHR.minImageExtent", unsafe.Offsetof(SurfaceCapabilitiesKHR{}.MinImageExtent), 16},
		{"SurfaceCapabilitiesKHR.maxImageExtent", unsafe.Offsetof(SurfaceCapabilitiesKHR{}.MaxImageExtent), 24},
		{"SurfaceCapabilitiesKHR.maxImageArrayLayers", unsafe.Offsetof(SurfaceCapabilitiesKHR{}.MaxImageArrayLayers), 32},
		{"SurfaceCapabilitiesKHR.supportedTransforms", unsafe.Offsetof(SurfaceCapabilitiesKHR{}.SupportedTransforms), 36},
		{"SurfaceCapabilitiesKHR.currentTransform", unsafe.Offsetof(SurfaceCapabilitiesKHR{}.CurrentTransform), 40},
		{"SurfaceCapabilitiesKHR.supportedCompositeAlpha", unsafe.Offsetof(SurfaceCapabilitiesKHR{}.SupportedCompositeAlpha), 44},
		{"SurfaceCapabilitiesKHR.supportedUsageFlags", unsafe.Offsetof(SurfaceCapabilitiesKHR{}.SupportedUsageFlags), 48},
		{"SurfaceFormatKHR.format", unsafe.Offsetof(SurfaceFormatKHR{}.Format), 0},
		{"SurfaceFormatKHR.colorSpace", unsafe.Offsetof(SurfaceFormatKHR{}.ColorSpace), 4},
		{"SwapchainCreateInfoKHR.sType", unsafe.Offsetof(SwapchainCreateInfoKHR{}.SType), 0},
		{"SwapchainCreateInfoKHR.pNext", unsafe.Offsetof(SwapchainCreateInfoKHR{}.PNext), 8},
		{"SwapchainCreateInfoKHR.flags", unsafe.Offsetof(SwapchainCreateInfoKHR{}.Flags), 16},
		{"SwapchainCreateInfoKHR.surface", unsafe.Offsetof(SwapchainCreateInfoKHR{}.Surface), 24},
		{"SwapchainCreateInfoKHR.minImageCount", unsafe.Offsetof(SwapchainCreateInfoKHR{}.MinImageCount), 32},
		{"SwapchainCreateInfoKHR.imageFormat", unsafe.Offsetof(SwapchainCreateInfoKHR{}.ImageFormat), 36},
		{"SwapchainCreateInfoKHR.imageColorSpace", unsafe.Offsetof(SwapchainCreateInfoKHR{}.ImageColorSpace), 40},
		{"SwapchainCreateInfoKHR.imageExtent", unsafe.Offsetof(SwapchainCreateInfoKHR{}.ImageExtent), 44},
		{"SwapchainCreateInfoKHR.imageArrayLayers", unsafe.Offsetof(SwapchainCreateInfoKHR{}.ImageArrayLayers), 52},
		{"SwapchainCreateInfoKHR.imageUsage", unsafe.Offsetof(SwapchainCreateInfoKHR{}.ImageUsage), 56},
		{"SwapchainCreateInfoKHR.imageSharingMode", unsafe.Offsetof(SwapchainCreateInfoKHR{}.ImageSharingMode), 60},
		{"SwapchainCreateInfoKHR.queueFamilyIndexCount", unsafe.Offsetof(SwapchainCreateInfoKHR{}.QueueFamilyIndexCount), 64},
		{"SwapchainCreateInfoKHR.pQueueFamilyIndices", unsafe.Offsetof(SwapchainCreateInfoKHR{}.PQueueFamilyIndices), 72},
		{"SwapchainCreateInfoKHR.preTransform", unsafe.Offsetof(SwapchainCreateInfoKHR{}.PreTransform), 80},
		{"SwapchainCreateInfoKHR.compositeAlpha", unsafe.Offsetof(SwapchainCreateInfoKHR{}.CompositeAlpha), 84},
		{"SwapchainCreateInfoKHR.presentMode", unsafe.Offsetof(SwapchainCreateInfoKHR{}.PresentMode), 88},
		{"SwapchainCreateInfoKHR.clipped", unsafe.Offsetof(SwapchainCreateInfoKHR{}.Clipped), 92},
		{"SwapchainCreateInfoKHR.oldSwapchain", unsafe.Offsetof(SwapchainCreateInfoKHR{}.OldSwapchain), 96},
		{"PresentInfoKHR.sType", unsafe.Offsetof(PresentInfoKHR{}.SType), 0},
		{"PresentInfoKHR.pNext", unsafe.Offsetof(PresentInfoKHR{}.PNext), 8},
		{"PresentInfoKHR.waitSemaphoreCount", unsafe.Offsetof(PresentInfoKHR{}.WaitSemaphoreCount), 16},
		{"PresentInfoKHR.pWaitSemaphores", unsafe.Offsetof(PresentInfoKHR{}.PWaitSemaphores), 24},
		{"PresentInfoKHR.swapchainCount", unsafe.Offsetof(PresentInfoKHR{}.SwapchainCount), 32},
		{"PresentInfoKHR.pSwapchains", unsafe.Offsetof(PresentInfoKHR{}.PSwapchains), 40},
		{"PresentInfoKHR.pImageIndices", unsafe.Offsetof(PresentInfoKHR{}.PImageIndices), 48},
		{"PresentInfoKHR.pResults", unsafe.Offsetof(PresentInfoKHR{}.PResults), 56},
		{"XlibSurfaceCreateInfoKHR.sType", unsafe.Offsetof(XlibSurfaceCreateInfoKHR{}.SType), 0},
		{"XlibSurfaceCreateInfoKHR.pNext", unsafe.Offsetof(XlibSurfaceCreateInfoKHR{}.PNext), 8},
		{"XlibSurfaceCreateInfoKHR.flags", unsafe.Offsetof(XlibSurfaceCreateInfoKHR{}.Flags), 16},
		{"XlibSurfaceCreateInfoKHR.dpy", unsafe.Offsetof(XlibSurfaceCreateInfoKHR{}.Dpy), 24},
		{"XlibSurfaceCreateInfoKHR.window", unsafe.Offsetof(XlibSurfaceCreateInfoKHR{}.Window), 32},
		{"XcbSurfaceCreateInfoKHR.sType", unsafe.Offsetof(XcbSurfaceCreateInfoKHR{}.SType), 0},
		{"XcbSurfaceCreateInfoKHR.pNext", unsafe.Offsetof(XcbSurfaceCreateInfoKHR{}.PNext), 8},
		{"XcbSurfaceCreateInfoKHR.flags", unsafe.Offsetof(XcbSurfaceCreateInfoKHR{}.Flags), 16},
		{"XcbSurfaceCreateInfoKHR.connection", unsafe.Offsetof(XcbSurfaceCreateInfoKHR{}.Connection), 24},
		{"XcbSurfaceCreateInfoKHR.window", unsafe.Offsetof(XcbSurfaceCreateInfoKHR{}.Window), 32},
		{"WaylandSurfaceCreateInfoKHR.sType", unsafe.Offsetof(WaylandSurfaceCreateInfoKHR{}.SType), 0},
		{"WaylandSurfaceCreateInfoKHR.pNext", unsafe.Offsetof(WaylandSurfaceCreateInfoKHR{}.PNext), 8},
		{"WaylandSurfaceCreateInfoKHR.flags", unsafe.Offsetof(WaylandSurfaceCreateInfoKHR{}.Flags), 16},
		{"WaylandSurfaceCreateInfoKHR.display", unsafe.Offsetof(WaylandSurfaceCreateInfoKHR{}.Display), 24},
		{"WaylandSurfaceCreateInfoKHR.surface", unsafe.Offsetof(WaylandSurfaceCreateInfoKHR{}.Surface), 32},
		{"MirSurfaceCreateInfoKHR.sType", unsafe.Offsetof(MirSurfaceCreateInfoKHR{}.SType), 0},
		{"MirSurfaceCreateInfoKHR.pNext", unsafe.Offsetof(MirSurfaceCreateInfoKHR{}.PNext), 8},
		{"MirSurfaceCreateInfoKHR.flags", unsafe.Offsetof(MirSurfaceCreateInfoKHR{}.Flags), 16},
		{"MirSurfaceCreateInfoKHR.connection", unsafe.Offsetof(MirSurfaceCreateInfoKHR{}.Connection), 24},
		{"MirSurfaceCreateInfoKHR.mirSurface", unsafe.Offsetof(MirSurfaceCreateInfoKHR{}.MirSurface), 32},
		{"AndroidSurfaceCreateInfoKHR.sType", unsafe.Offsetof(AndroidSurfaceCreateInfoKHR{}.SType), 0},
		{"AndroidSurfaceCreateInfoKHR.pNext", unsafe.Offsetof(AndroidSurfaceCreateInfoKHR{}.PNext), 8},
		{"AndroidSurfaceCreateInfoKHR.flags", unsafe.Offsetof(AndroidSurfaceCreateInfoKHR{}.Flags), 16},
		{"AndroidSurfaceCreateInfoKHR.window", unsafe.Offsetof(AndroidSurfaceCreateInfoKHR{}.Window), 24},
		{"Win32SurfaceCreateInfoKHR.sType", unsafe.Offsetof(Win32SurfaceCreateInfoKHR{}.SType), 0},
		{"Win32SurfaceCreateInfoKHR.pNext", unsafe.Offsetof(Win32SurfaceCreateInfoKHR{}.PNext), 8},
		{"Win32SurfaceCreateInfoKHR.flags", unsafe.Offsetof(Win32SurfaceCreateInfoKHR{}.Flags), 16},
		{"Win32SurfaceCreateInfoKHR.hinstance", unsafe.Offsetof(Win32SurfaceCreateInfoKHR{}.Hinstance), 24},
		{"Win32SurfaceCreateInfoKHR.hwnd", unsafe.Offsetof(Win32SurfaceCreateInfoKHR{}.Hwnd), 32},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("offsetof(%s) = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}
