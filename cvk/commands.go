// commands.go
package cvk

/*
#cgo linux LDFLAGS: -lvulkan
#cgo windows LDFLAGS: -lvulkan-1
#cgo darwin LDFLAGS: -lvulkan

#include "vkw.h"
*/
import "C"

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// coreCommands fills the entry points exported by the loader for Vulkan 1.0
// and the surface and swapchain extensions.
func coreCommands(c *native.Commands) {
	c.CreateInstance = func(pCreateInfo *native.InstanceCreateInfo, pAllocator *native.AllocationCallbacks, pInstance *native.Instance) native.Result {
		return native.Result(C.vkw_CreateInstance(unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pInstance)))
	}
	c.DestroyInstance = func(instance native.Instance, pAllocator *native.AllocationCallbacks) {
		C.vkw_DestroyInstance(C.uintptr_t(instance), unsafe.Pointer(pAllocator))
	}
	c.EnumerateInstanceVersion = func(pApiVersion *uint32) native.Result {
		return native.Result(C.vkw_EnumerateInstanceVersion((*C.uint32_t)(unsafe.Pointer(pApiVersion))))
	}
	c.EnumerateInstanceLayerProperties = func(pPropertyCount *uint32, pProperties *native.LayerProperties) native.Result {
		return native.Result(C.vkw_EnumerateInstanceLayerProperties((*C.uint32_t)(unsafe.Pointer(pPropertyCount)), unsafe.Pointer(pProperties)))
	}
	c.EnumerateInstanceExtensionProperties = func(pLayerName *byte, pPropertyCount *uint32, pProperties *native.ExtensionProperties) native.Result {
		return native.Result(C.vkw_EnumerateInstanceExtensionProperties((*C.char)(unsafe.Pointer(pLayerName)), (*C.uint32_t)(unsafe.Pointer(pPropertyCount)), unsafe.Pointer(pProperties)))
	}
	c.EnumeratePhysicalDevices = func(instance native.Instance, pPhysicalDeviceCount *uint32, pPhysicalDevices *native.PhysicalDevice) native.Result {
		return native.Result(C.vkw_EnumeratePhysicalDevices(C.uintptr_t(instance), (*C.uint32_t)(unsafe.Pointer(pPhysicalDeviceCount)), unsafe.Pointer(pPhysicalDevices)))
	}

	c.GetPhysicalDeviceProperties = func(physicalDevice native.PhysicalDevice, pProperties *native.PhysicalDeviceProperties) {
		C.vkw_GetPhysicalDeviceProperties(C.uintptr_t(physicalDevice), unsafe.Pointer(pProperties))
	}
	c.GetPhysicalDeviceFeatures = func(physicalDevice native.PhysicalDevice, pFeatures *native.PhysicalDeviceFeatures) {
		C.vkw_GetPhysicalDeviceFeatures(C.uintptr_t(physicalDevice), unsafe.Pointer(pFeatures))
	}
	c.GetPhysicalDeviceQueueFamilyProperties = func(physicalDevice native.PhysicalDevice, pQueueFamilyPropertyCount *uint32, pQueueFamilyProperties *native.QueueFamilyProperties) {
		C.vkw_GetPhysicalDeviceQueueFamilyProperties(C.uintptr_t(physicalDevice), (*C.uint32_t)(unsafe.Pointer(pQueueFamilyPropertyCount)), unsafe.Pointer(pQueueFamilyProperties))
	}
	c.GetPhysicalDeviceMemoryProperties = func(physicalDevice native.PhysicalDevice, pMemoryProperties *native.PhysicalDeviceMemoryProperties) {
		C.vkw_GetPhysicalDeviceMemoryProperties(C.uintptr_t(physicalDevice), unsafe.Pointer(pMemoryProperties))
	}
	c.GetPhysicalDeviceFormatProperties = func(physicalDevice native.PhysicalDevice, format int32, pFormatProperties *native.FormatProperties) {
		C.vkw_GetPhysicalDeviceFormatProperties(C.uintptr_t(physicalDevice), C.int32_t(format), unsafe.Pointer(pFormatProperties))
	}
	c.EnumerateDeviceLayerProperties = func(physicalDevice native.PhysicalDevice, pPropertyCount *uint32, pProperties *native.LayerProperties) native.Result {
		return native.Result(C.vkw_EnumerateDeviceLayerProperties(C.uintptr_t(physicalDevice), (*C.uint32_t)(unsafe.Pointer(pPropertyCount)), unsafe.Pointer(pProperties)))
	}
	c.EnumerateDeviceExtensionProperties = func(physicalDevice native.PhysicalDevice, pLayerName *byte, pPropertyCount *uint32, pProperties *native.ExtensionProperties) native.Result {
		return native.Result(C.vkw_EnumerateDeviceExtensionProperties(C.uintptr_t(physicalDevice), (*C.char)(unsafe.Pointer(pLayerName)), (*C.uint32_t)(unsafe.Pointer(pPropertyCount)), unsafe.Pointer(pProperties)))
	}

	c.CreateDevice = func(physicalDevice native.PhysicalDevice, pCreateInfo *native.DeviceCreateInfo, pAllocator *native.AllocationCallbacks, pDevice *native.Device) native.Result {
		return native.Result(C.vkw_CreateDevice(C.uintptr_t(physicalDevice), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pDevice)))
	}
	c.DestroyDevice = func(device native.Device, pAllocator *native.AllocationCallbacks) {
		C.vkw_DestroyDevice(C.uintptr_t(device), unsafe.Pointer(pAllocator))
	}
	c.GetDeviceQueue = func(device native.Device, queueFamilyIndex uint32, queueIndex uint32, pQueue *native.Queue) {
		C.vkw_GetDeviceQueue(C.uintptr_t(device), C.uint32_t(queueFamilyIndex), C.uint32_t(queueIndex), unsafe.Pointer(pQueue))
	}
	c.DeviceWaitIdle = func(device native.Device) native.Result {
		return native.Result(C.vkw_DeviceWaitIdle(C.uintptr_t(device)))
	}

	c.QueueSubmit = func(queue native.Queue, submitCount uint32, pSubmits *native.SubmitInfo, fence native.Fence) native.Result {
		return native.Result(C.vkw_QueueSubmit(C.uintptr_t(queue), C.uint32_t(submitCount), unsafe.Pointer(pSubmits), C.uint64_t(fence)))
	}
	c.QueueWaitIdle = func(queue native.Queue) native.Result {
		return native.Result(C.vkw_QueueWaitIdle(C.uintptr_t(queue)))
	}
	c.CreateFence = func(device native.Device, pCreateInfo *native.FenceCreateInfo, pAllocator *native.AllocationCallbacks, pFence *native.Fence) native.Result {
		return native.Result(C.vkw_CreateFence(C.uintptr_t(device), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pFence)))
	}
	c.DestroyFence = func(device native.Device, fence native.Fence, pAllocator *native.AllocationCallbacks) {
		C.vkw_DestroyFence(C.uintptr_t(device), C.uint64_t(fence), unsafe.Pointer(pAllocator))
	}
	c.ResetFences = func(device native.Device, fenceCount uint32, pFences *native.Fence) native.Result {
		return native.Result(C.vkw_ResetFences(C.uintptr_t(device), C.uint32_t(fenceCount), unsafe.Pointer(pFences)))
	}
	c.GetFenceStatus = func(device native.Device, fence native.Fence) native.Result {
		return native.Result(C.vkw_GetFenceStatus(C.uintptr_t(device), C.uint64_t(fence)))
	}
	c.WaitForFences = func(device native.Device, fenceCount uint32, pFences *native.Fence, waitAll native.Bool32, timeout uint64) native.Result {
		return native.Result(C.vkw_WaitForFences(C.uintptr_t(device), C.uint32_t(fenceCount), unsafe.Pointer(pFences), C.uint32_t(waitAll), C.uint64_t(timeout)))
	}
	c.CreateSemaphore = func(device native.Device, pCreateInfo *native.SemaphoreCreateInfo, pAllocator *native.AllocationCallbacks, pSemaphore *native.Semaphore) native.Result {
		return native.Result(C.vkw_CreateSemaphore(C.uintptr_t(device), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pSemaphore)))
	}
	c.DestroySemaphore = func(device native.Device, semaphore native.Semaphore, pAllocator *native.AllocationCallbacks) {
		C.vkw_DestroySemaphore(C.uintptr_t(device), C.uint64_t(semaphore), unsafe.Pointer(pAllocator))
	}
	c.CreateEvent = func(device native.Device, pCreateInfo *native.EventCreateInfo, pAllocator *native.AllocationCallbacks, pEvent *native.Event) native.Result {
		return native.Result(C.vkw_CreateEvent(C.uintptr_t(device), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pEvent)))
	}
	c.DestroyEvent = func(device native.Device, event native.Event, pAllocator *native.AllocationCallbacks) {
		C.vkw_DestroyEvent(C.uintptr_t(device), C.uint64_t(event), unsafe.Pointer(pAllocator))
	}
	c.GetEventStatus = func(device native.Device, event native.Event) native.Result {
		return native.Result(C.vkw_GetEventStatus(C.uintptr_t(device), C.uint64_t(event)))
	}
	c.SetEvent = func(device native.Device, event native.Event) native.Result {
		return native.Result(C.vkw_SetEvent(C.uintptr_t(device), C.uint64_t(event)))
	}
	c.ResetEvent = func(device native.Device, event native.Event) native.Result {
		return native.Result(C.vkw_ResetEvent(C.uintptr_t(device), C.uint64_t(event)))
	}

	c.AllocateMemory = func(device native.Device, pAllocateInfo *native.MemoryAllocateInfo, pAllocator *native.AllocationCallbacks, pMemory *native.DeviceMemory) native.Result {
		return native.Result(C.vkw_AllocateMemory(C.uintptr_t(device), unsafe.Pointer(pAllocateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pMemory)))
	}
	c.FreeMemory = func(device native.Device, memory native.DeviceMemory, pAllocator *native.AllocationCallbacks) {
		C.vkw_FreeMemory(C.uintptr_t(device), C.uint64_t(memory), unsafe.Pointer(pAllocator))
	}
	c.MapMemory = func(device native.Device, memory native.DeviceMemory, offset native.DeviceSize, size native.DeviceSize, flags native.Flags, ppData *unsafe.Pointer) native.Result {
		return native.Result(C.vkw_MapMemory(C.uintptr_t(device), C.uint64_t(memory), C.uint64_t(offset), C.uint64_t(size), C.uint32_t(flags), ppData))
	}
	c.UnmapMemory = func(device native.Device, memory native.DeviceMemory) {
		C.vkw_UnmapMemory(C.uintptr_t(device), C.uint64_t(memory))
	}
	c.FlushMappedMemoryRanges = func(device native.Device, memoryRangeCount uint32, pMemoryRanges *native.MappedMemoryRange) native.Result {
		return native.Result(C.vkw_FlushMappedMemoryRanges(C.uintptr_t(device), C.uint32_t(memoryRangeCount), unsafe.Pointer(pMemoryRanges)))
	}
	c.InvalidateMappedMemoryRanges = func(device native.Device, memoryRangeCount uint32, pMemoryRanges *native.MappedMemoryRange) native.Result {
		return native.Result(C.vkw_InvalidateMappedMemoryRanges(C.uintptr_t(device), C.uint32_t(memoryRangeCount), unsafe.Pointer(pMemoryRanges)))
	}
	c.BindBufferMemory = func(device native.Device, buffer native.Buffer, memory native.DeviceMemory, memoryOffset native.DeviceSize) native.Result {
		return native.Result(C.vkw_BindBufferMemory(C.uintptr_t(device), C.uint64_t(buffer), C.uint64_t(memory), C.uint64_t(memoryOffset)))
	}
	c.GetBufferMemoryRequirements = func(device native.Device, buffer native.Buffer, pMemoryRequirements *native.MemoryRequirements) {
		C.vkw_GetBufferMemoryRequirements(C.uintptr_t(device), C.uint64_t(buffer), unsafe.Pointer(pMemoryRequirements))
	}
	c.CreateBuffer = func(device native.Device, pCreateInfo *native.BufferCreateInfo, pAllocator *native.AllocationCallbacks, pBuffer *native.Buffer) native.Result {
		return native.Result(C.vkw_CreateBuffer(C.uintptr_t(device), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pBuffer)))
	}
	c.DestroyBuffer = func(device native.Device, buffer native.Buffer, pAllocator *native.AllocationCallbacks) {
		C.vkw_DestroyBuffer(C.uintptr_t(device), C.uint64_t(buffer), unsafe.Pointer(pAllocator))
	}

	c.CreateImage = func(device native.Device, pCreateInfo *native.ImageCreateInfo, pAllocator *native.AllocationCallbacks, pImage *native.Image) native.Result {
		return native.Result(C.vkw_CreateImage(C.uintptr_t(device), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pImage)))
	}
	c.DestroyImage = func(device native.Device, image native.Image, pAllocator *native.AllocationCallbacks) {
		C.vkw_DestroyImage(C.uintptr_t(device), C.uint64_t(image), unsafe.Pointer(pAllocator))
	}
	c.BindImageMemory = func(device native.Device, image native.Image, memory native.DeviceMemory, memoryOffset native.DeviceSize) native.Result {
		return native.Result(C.vkw_BindImageMemory(C.uintptr_t(device), C.uint64_t(image), C.uint64_t(memory), C.uint64_t(memoryOffset)))
	}
	c.GetImageMemoryRequirements = func(device native.Device, image native.Image, pMemoryRequirements *native.MemoryRequirements) {
		C.vkw_GetImageMemoryRequirements(C.uintptr_t(device), C.uint64_t(image), unsafe.Pointer(pMemoryRequirements))
	}

	c.CreateImageView = func(device native.Device, pCreateInfo *native.ImageViewCreateInfo, pAllocator *native.AllocationCallbacks, pView *native.ImageView) native.Result {
		return native.Result(C.vkw_CreateImageView(C.uintptr_t(device), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pView)))
	}
	c.DestroyImageView = func(device native.Device, imageView native.ImageView, pAllocator *native.AllocationCallbacks) {
		C.vkw_DestroyImageView(C.uintptr_t(device), C.uint64_t(imageView), unsafe.Pointer(pAllocator))
	}

	c.CreateShaderModule = func(device native.Device, pCreateInfo *native.ShaderModuleCreateInfo, pAllocator *native.AllocationCallbacks, pShaderModule *native.ShaderModule) native.Result {
		return native.Result(C.vkw_CreateShaderModule(C.uintptr_t(device), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pShaderModule)))
	}
	c.DestroyShaderModule = func(device native.Device, shaderModule native.ShaderModule, pAllocator *native.AllocationCallbacks) {
		C.vkw_DestroyShaderModule(C.uintptr_t(device), C.uint64_t(shaderModule), unsafe.Pointer(pAllocator))
	}

	c.CreateSampler = func(device native.Device, pCreateInfo *native.SamplerCreateInfo, pAllocator *native.AllocationCallbacks, pSampler *native.Sampler) native.Result {
		return native.Result(C.vkw_CreateSampler(C.uintptr_t(device), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pSampler)))
	}
	c.DestroySampler = func(device native.Device, sampler native.Sampler, pAllocator *native.AllocationCallbacks) {
		C.vkw_DestroySampler(C.uintptr_t(device), C.uint64_t(sampler), unsafe.Pointer(pAllocator))
	}

	c.GetImageSparseMemoryRequirements = func(device native.Device, image native.Image, pSparseMemoryRequirementCount *uint32, pSparseMemoryRequirements *native.SparseImageMemoryRequirements) {
		C.vkw_GetImageSparseMemoryRequirements(C.uintptr_t(device), C.uint64_t(image), (*C.uint32_t)(unsafe.Pointer(pSparseMemoryRequirementCount)), unsafe.Pointer(pSparseMemoryRequirements))
	}
	c.QueueBindSparse = func(queue native.Queue, bindInfoCount uint32, pBindInfo *native.BindSparseInfo, fence native.Fence) native.Result {
		return native.Result(C.vkw_QueueBindSparse(C.uintptr_t(queue), C.uint32_t(bindInfoCount), unsafe.Pointer(pBindInfo), C.uint64_t(fence)))
	}

	c.CreateDescriptorSetLayout = func(device native.Device, pCreateInfo *native.DescriptorSetLayoutCreateInfo, pAllocator *native.AllocationCallbacks, pSetLayout *native.DescriptorSetLayout) native.Result {
		return native.Result(C.vkw_CreateDescriptorSetLayout(C.uintptr_t(device), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pSetLayout)))
	}
	c.DestroyDescriptorSetLayout = func(device native.Device, descriptorSetLayout native.DescriptorSetLayout, pAllocator *native.AllocationCallbacks) {
		C.vkw_DestroyDescriptorSetLayout(C.uintptr_t(device), C.uint64_t(descriptorSetLayout), unsafe.Pointer(pAllocator))
	}
	c.CreateDescriptorPool = func(device native.Device, pCreateInfo *native.DescriptorPoolCreateInfo, pAllocator *native.AllocationCallbacks, pDescriptorPool *native.DescriptorPool) native.Result {
		return native.Result(C.vkw_CreateDescriptorPool(C.uintptr_t(device), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pDescriptorPool)))
	}
	c.DestroyDescriptorPool = func(device native.Device, descriptorPool native.DescriptorPool, pAllocator *native.AllocationCallbacks) {
		C.vkw_DestroyDescriptorPool(C.uintptr_t(device), C.uint64_t(descriptorPool), unsafe.Pointer(pAllocator))
	}
	c.ResetDescriptorPool = func(device native.Device, descriptorPool native.DescriptorPool, flags native.Flags) native.Result {
		return native.Result(C.vkw_ResetDescriptorPool(C.uintptr_t(device), C.uint64_t(descriptorPool), C.uint32_t(flags)))
	}
	c.AllocateDescriptorSets = func(device native.Device, pAllocateInfo *native.DescriptorSetAllocateInfo, pDescriptorSets *native.DescriptorSet) native.Result {
		return native.Result(C.vkw_AllocateDescriptorSets(C.uintptr_t(device), unsafe.Pointer(pAllocateInfo), unsafe.Pointer(pDescriptorSets)))
	}
	c.FreeDescriptorSets = func(device native.Device, descriptorPool native.DescriptorPool, descriptorSetCount uint32, pDescriptorSets *native.DescriptorSet) native.Result {
		return native.Result(C.vkw_FreeDescriptorSets(C.uintptr_t(device), C.uint64_t(descriptorPool), C.uint32_t(descriptorSetCount), unsafe.Pointer(pDescriptorSets)))
	}
	c.UpdateDescriptorSets = func(device native.Device, descriptorWriteCount uint32, pDescriptorWrites *native.WriteDescriptorSet, descriptorCopyCount uint32, pDescriptorCopies unsafe.Pointer) {
		C.vkw_UpdateDescriptorSets(C.uintptr_t(device), C.uint32_t(descriptorWriteCount), unsafe.Pointer(pDescriptorWrites), C.uint32_t(descriptorCopyCount), pDescriptorCopies)
	}

	c.CreatePipelineLayout = func(device native.Device, pCreateInfo *native.PipelineLayoutCreateInfo, pAllocator *native.AllocationCallbacks, pPipelineLayout *native.PipelineLayout) native.Result {
		return native.Result(C.vkw_CreatePipelineLayout(C.uintptr_t(device), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pPipelineLayout)))
	}
	c.DestroyPipelineLayout = func(device native.Device, pipelineLayout native.PipelineLayout, pAllocator *native.AllocationCallbacks) {
		C.vkw_DestroyPipelineLayout(C.uintptr_t(device), C.uint64_t(pipelineLayout), unsafe.Pointer(pAllocator))
	}
	c.CreateComputePipelines = func(device native.Device, pipelineCache native.PipelineCache, createInfoCount uint32, pCreateInfos *native.ComputePipelineCreateInfo, pAllocator *native.AllocationCallbacks, pPipelines *native.Pipeline) native.Result {
		return native.Result(C.vkw_CreateComputePipelines(C.uintptr_t(device), C.uint64_t(pipelineCache), C.uint32_t(createInfoCount), unsafe.Pointer(pCreateInfos), unsafe.Pointer(pAllocator), unsafe.Pointer(pPipelines)))
	}
	c.CreateGraphicsPipelines = func(device native.Device, pipelineCache native.PipelineCache, createInfoCount uint32, pCreateInfos *native.GraphicsPipelineCreateInfo, pAllocator *native.AllocationCallbacks, pPipelines *native.Pipeline) native.Result {
		return native.Result(C.vkw_CreateGraphicsPipelines(C.uintptr_t(device), C.uint64_t(pipelineCache), C.uint32_t(createInfoCount), unsafe.Pointer(pCreateInfos), unsafe.Pointer(pAllocator), unsafe.Pointer(pPipelines)))
	}
	c.DestroyPipeline = func(device native.Device, pipeline native.Pipeline, pAllocator *native.AllocationCallbacks) {
		C.vkw_DestroyPipeline(C.uintptr_t(device), C.uint64_t(pipeline), unsafe.Pointer(pAllocator))
	}

	c.CreateRenderPass = func(device native.Device, pCreateInfo *native.RenderPassCreateInfo, pAllocator *native.AllocationCallbacks, pRenderPass *native.RenderPass) native.Result {
		return native.Result(C.vkw_CreateRenderPass(C.uintptr_t(device), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pRenderPass)))
	}
	c.DestroyRenderPass = func(device native.Device, renderPass native.RenderPass, pAllocator *native.AllocationCallbacks) {
		C.vkw_DestroyRenderPass(C.uintptr_t(device), C.uint64_t(renderPass), unsafe.Pointer(pAllocator))
	}
	c.CreateFramebuffer = func(device native.Device, pCreateInfo *native.FramebufferCreateInfo, pAllocator *native.AllocationCallbacks, pFramebuffer *native.Framebuffer) native.Result {
		return native.Result(C.vkw_CreateFramebuffer(C.uintptr_t(device), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pFramebuffer)))
	}
	c.DestroyFramebuffer = func(device native.Device, framebuffer native.Framebuffer, pAllocator *native.AllocationCallbacks) {
		C.vkw_DestroyFramebuffer(C.uintptr_t(device), C.uint64_t(framebuffer), unsafe.Pointer(pAllocator))
	}

	c.CreateCommandPool = func(device native.Device, pCreateInfo *native.CommandPoolCreateInfo, pAllocator *native.AllocationCallbacks, pCommandPool *native.CommandPool) native.Result {
		return native.Result(C.vkw_CreateCommandPool(C.uintptr_t(device), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pCommandPool)))
	}
	c.DestroyCommandPool = func(device native.Device, commandPool native.CommandPool, pAllocator *native.AllocationCallbacks) {
		C.vkw_DestroyCommandPool(C.uintptr_t(device), C.uint64_t(commandPool), unsafe.Pointer(pAllocator))
	}
	c.ResetCommandPool = func(device native.Device, commandPool native.CommandPool, flags native.Flags) native.Result {
		return native.Result(C.vkw_ResetCommandPool(C.uintptr_t(device), C.uint64_t(commandPool), C.uint32_t(flags)))
	}
	c.AllocateCommandBuffers = func(device native.Device, pAllocateInfo *native.CommandBufferAllocateInfo, pCommandBuffers *native.CommandBuffer) native.Result {
		return native.Result(C.vkw_AllocateCommandBuffers(C.uintptr_t(device), unsafe.Pointer(pAllocateInfo), unsafe.Pointer(pCommandBuffers)))
	}
	c.FreeCommandBuffers = func(device native.Device, commandPool native.CommandPool, commandBufferCount uint32, pCommandBuffers *native.CommandBuffer) {
		C.vkw_FreeCommandBuffers(C.uintptr_t(device), C.uint64_t(commandPool), C.uint32_t(commandBufferCount), unsafe.Pointer(pCommandBuffers))
	}
	c.BeginCommandBuffer = func(commandBuffer native.CommandBuffer, pBeginInfo *native.CommandBufferBeginInfo) native.Result {
		return native.Result(C.vkw_BeginCommandBuffer(C.uintptr_t(commandBuffer), unsafe.Pointer(pBeginInfo)))
	}
	c.EndCommandBuffer = func(commandBuffer native.CommandBuffer) native.Result {
		return native.Result(C.vkw_EndCommandBuffer(C.uintptr_t(commandBuffer)))
	}
	c.ResetCommandBuffer = func(commandBuffer native.CommandBuffer, flags native.Flags) native.Result {
		return native.Result(C.vkw_ResetCommandBuffer(C.uintptr_t(commandBuffer), C.uint32_t(flags)))
	}
	c.CmdBindPipeline = func(commandBuffer native.CommandBuffer, pipelineBindPoint int32, pipeline native.Pipeline) {
		C.vkw_CmdBindPipeline(C.uintptr_t(commandBuffer), C.int32_t(pipelineBindPoint), C.uint64_t(pipeline))
	}
	c.CmdBindDescriptorSets = func(commandBuffer native.CommandBuffer, pipelineBindPoint int32, layout native.PipelineLayout, firstSet uint32, descriptorSetCount uint32, pDescriptorSets *native.DescriptorSet, dynamicOffsetCount uint32, pDynamicOffsets *uint32) {
		C.vkw_CmdBindDescriptorSets(C.uintptr_t(commandBuffer), C.int32_t(pipelineBindPoint), C.uint64_t(layout), C.uint32_t(firstSet), C.uint32_t(descriptorSetCount), unsafe.Pointer(pDescriptorSets), C.uint32_t(dynamicOffsetCount), (*C.uint32_t)(unsafe.Pointer(pDynamicOffsets)))
	}
	c.CmdBindVertexBuffers = func(commandBuffer native.CommandBuffer, firstBinding uint32, bindingCount uint32, pBuffers *native.Buffer, pOffsets *native.DeviceSize) {
		C.vkw_CmdBindVertexBuffers(C.uintptr_t(commandBuffer), C.uint32_t(firstBinding), C.uint32_t(bindingCount), unsafe.Pointer(pBuffers), (*C.uint64_t)(unsafe.Pointer(pOffsets)))
	}
	c.CmdBindIndexBuffer = func(commandBuffer native.CommandBuffer, buffer native.Buffer, offset native.DeviceSize, indexType int32) {
		C.vkw_CmdBindIndexBuffer(C.uintptr_t(commandBuffer), C.uint64_t(buffer), C.uint64_t(offset), C.int32_t(indexType))
	}
	c.CmdDispatch = func(commandBuffer native.CommandBuffer, groupCountX uint32, groupCountY uint32, groupCountZ uint32) {
		C.vkw_CmdDispatch(C.uintptr_t(commandBuffer), C.uint32_t(groupCountX), C.uint32_t(groupCountY), C.uint32_t(groupCountZ))
	}
	c.CmdDraw = func(commandBuffer native.CommandBuffer, vertexCount uint32, instanceCount uint32, firstVertex uint32, firstInstance uint32) {
		C.vkw_CmdDraw(C.uintptr_t(commandBuffer), C.uint32_t(vertexCount), C.uint32_t(instanceCount), C.uint32_t(firstVertex), C.uint32_t(firstInstance))
	}
	c.CmdDrawIndexed = func(commandBuffer native.CommandBuffer, indexCount uint32, instanceCount uint32, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
		C.vkw_CmdDrawIndexed(C.uintptr_t(commandBuffer), C.uint32_t(indexCount), C.uint32_t(instanceCount), C.uint32_t(firstIndex), C.int32_t(vertexOffset), C.uint32_t(firstInstance))
	}
	c.CmdSetViewport = func(commandBuffer native.CommandBuffer, firstViewport uint32, viewportCount uint32, pViewports *native.Viewport) {
		C.vkw_CmdSetViewport(C.uintptr_t(commandBuffer), C.uint32_t(firstViewport), C.uint32_t(viewportCount), unsafe.Pointer(pViewports))
	}
	c.CmdSetScissor = func(commandBuffer native.CommandBuffer, firstScissor uint32, scissorCount uint32, pScissors *native.Rect2D) {
		C.vkw_CmdSetScissor(C.uintptr_t(commandBuffer), C.uint32_t(firstScissor), C.uint32_t(scissorCount), unsafe.Pointer(pScissors))
	}
	c.CmdCopyBuffer = func(commandBuffer native.CommandBuffer, srcBuffer native.Buffer, dstBuffer native.Buffer, regionCount uint32, pRegions *native.BufferCopy) {
		C.vkw_CmdCopyBuffer(C.uintptr_t(commandBuffer), C.uint64_t(srcBuffer), C.uint64_t(dstBuffer), C.uint32_t(regionCount), unsafe.Pointer(pRegions))
	}
	c.CmdCopyBufferToImage = func(commandBuffer native.CommandBuffer, srcBuffer native.Buffer, dstImage native.Image, dstImageLayout int32, regionCount uint32, pRegions *native.BufferImageCopy) {
		C.vkw_CmdCopyBufferToImage(C.uintptr_t(commandBuffer), C.uint64_t(srcBuffer), C.uint64_t(dstImage), C.int32_t(dstImageLayout), C.uint32_t(regionCount), unsafe.Pointer(pRegions))
	}
	c.CmdFillBuffer = func(commandBuffer native.CommandBuffer, dstBuffer native.Buffer, dstOffset native.DeviceSize, size native.DeviceSize, data uint32) {
		C.vkw_CmdFillBuffer(C.uintptr_t(commandBuffer), C.uint64_t(dstBuffer), C.uint64_t(dstOffset), C.uint64_t(size), C.uint32_t(data))
	}
	c.CmdUpdateBuffer = func(commandBuffer native.CommandBuffer, dstBuffer native.Buffer, dstOffset native.DeviceSize, dataSize native.DeviceSize, pData unsafe.Pointer) {
		C.vkw_CmdUpdateBuffer(C.uintptr_t(commandBuffer), C.uint64_t(dstBuffer), C.uint64_t(dstOffset), C.uint64_t(dataSize), pData)
	}
	c.CmdClearColorImage = func(commandBuffer native.CommandBuffer, image native.Image, imageLayout int32, pColor *native.ClearColorValue, rangeCount uint32, pRanges *native.ImageSubresourceRange) {
		C.vkw_CmdClearColorImage(C.uintptr_t(commandBuffer), C.uint64_t(image), C.int32_t(imageLayout), unsafe.Pointer(pColor), C.uint32_t(rangeCount), unsafe.Pointer(pRanges))
	}
	c.CmdPipelineBarrier = func(commandBuffer native.CommandBuffer, srcStageMask native.Flags, dstStageMask native.Flags, dependencyFlags native.Flags, memoryBarrierCount uint32, pMemoryBarriers *native.MemoryBarrier, bufferMemoryBarrierCount uint32, pBufferMemoryBarriers *native.BufferMemoryBarrier, imageMemoryBarrierCount uint32, pImageMemoryBarriers *native.ImageMemoryBarrier) {
		C.vkw_CmdPipelineBarrier(C.uintptr_t(commandBuffer), C.uint32_t(srcStageMask), C.uint32_t(dstStageMask), C.uint32_t(dependencyFlags), C.uint32_t(memoryBarrierCount), unsafe.Pointer(pMemoryBarriers), C.uint32_t(bufferMemoryBarrierCount), unsafe.Pointer(pBufferMemoryBarriers), C.uint32_t(imageMemoryBarrierCount), unsafe.Pointer(pImageMemoryBarriers))
	}
	c.CmdPushConstants = func(commandBuffer native.CommandBuffer, layout native.PipelineLayout, stageFlags native.Flags, offset uint32, size uint32, pValues unsafe.Pointer) {
		C.vkw_CmdPushConstants(C.uintptr_t(commandBuffer), C.uint64_t(layout), C.uint32_t(stageFlags), C.uint32_t(offset), C.uint32_t(size), pValues)
	}
	c.CmdBeginRenderPass = func(commandBuffer native.CommandBuffer, pRenderPassBegin *native.RenderPassBeginInfo, contents int32) {
		C.vkw_CmdBeginRenderPass(C.uintptr_t(commandBuffer), unsafe.Pointer(pRenderPassBegin), C.int32_t(contents))
	}
	c.CmdEndRenderPass = func(commandBuffer native.CommandBuffer) {
		C.vkw_CmdEndRenderPass(C.uintptr_t(commandBuffer))
	}
	c.CmdBeginRendering = func(commandBuffer native.CommandBuffer, pRenderingInfo *native.RenderingInfo) {
		C.vkw_CmdBeginRendering(C.uintptr_t(commandBuffer), unsafe.Pointer(pRenderingInfo))
	}
	c.CmdEndRendering = func(commandBuffer native.CommandBuffer) {
		C.vkw_CmdEndRendering(C.uintptr_t(commandBuffer))
	}

	c.DestroySurfaceKHR = func(instance native.Instance, surface native.SurfaceKHR, pAllocator *native.AllocationCallbacks) {
		C.vkw_DestroySurfaceKHR(C.uintptr_t(instance), C.uint64_t(surface), unsafe.Pointer(pAllocator))
	}
	c.GetPhysicalDeviceSurfaceSupportKHR = func(physicalDevice native.PhysicalDevice, queueFamilyIndex uint32, surface native.SurfaceKHR, pSupported *native.Bool32) native.Result {
		return native.Result(C.vkw_GetPhysicalDeviceSurfaceSupportKHR(C.uintptr_t(physicalDevice), C.uint32_t(queueFamilyIndex), C.uint64_t(surface), (*C.uint32_t)(unsafe.Pointer(pSupported))))
	}
	c.GetPhysicalDeviceSurfaceCapabilitiesKHR = func(physicalDevice native.PhysicalDevice, surface native.SurfaceKHR, pSurfaceCapabilities *native.SurfaceCapabilitiesKHR) native.Result {
		return native.Result(C.vkw_GetPhysicalDeviceSurfaceCapabilitiesKHR(C.uintptr_t(physicalDevice), C.uint64_t(surface), unsafe.Pointer(pSurfaceCapabilities)))
	}
	c.GetPhysicalDeviceSurfaceFormatsKHR = func(physicalDevice native.PhysicalDevice, surface native.SurfaceKHR, pSurfaceFormatCount *uint32, pSurfaceFormats *native.SurfaceFormatKHR) native.Result {
		return native.Result(C.vkw_GetPhysicalDeviceSurfaceFormatsKHR(C.uintptr_t(physicalDevice), C.uint64_t(surface), (*C.uint32_t)(unsafe.Pointer(pSurfaceFormatCount)), unsafe.Pointer(pSurfaceFormats)))
	}
	c.GetPhysicalDeviceSurfacePresentModesKHR = func(physicalDevice native.PhysicalDevice, surface native.SurfaceKHR, pPresentModeCount *uint32, pPresentModes *int32) native.Result {
		return native.Result(C.vkw_GetPhysicalDeviceSurfacePresentModesKHR(C.uintptr_t(physicalDevice), C.uint64_t(surface), (*C.uint32_t)(unsafe.Pointer(pPresentModeCount)), (*C.int32_t)(unsafe.Pointer(pPresentModes))))
	}

	c.CreateSwapchainKHR = func(device native.Device, pCreateInfo *native.SwapchainCreateInfoKHR, pAllocator *native.AllocationCallbacks, pSwapchain *native.SwapchainKHR) native.Result {
		return native.Result(C.vkw_CreateSwapchainKHR(C.uintptr_t(device), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pSwapchain)))
	}
	c.DestroySwapchainKHR = func(device native.Device, swapchain native.SwapchainKHR, pAllocator *native.AllocationCallbacks) {
		C.vkw_DestroySwapchainKHR(C.uintptr_t(device), C.uint64_t(swapchain), unsafe.Pointer(pAllocator))
	}
	c.GetSwapchainImagesKHR = func(device native.Device, swapchain native.SwapchainKHR, pSwapchainImageCount *uint32, pSwapchainImages *native.Image) native.Result {
		return native.Result(C.vkw_GetSwapchainImagesKHR(C.uintptr_t(device), C.uint64_t(swapchain), (*C.uint32_t)(unsafe.Pointer(pSwapchainImageCount)), unsafe.Pointer(pSwapchainImages)))
	}
	c.AcquireNextImageKHR = func(device native.Device, swapchain native.SwapchainKHR, timeout uint64, semaphore native.Semaphore, fence native.Fence, pImageIndex *uint32) native.Result {
		return native.Result(C.vkw_AcquireNextImageKHR(C.uintptr_t(device), C.uint64_t(swapchain), C.uint64_t(timeout), C.uint64_t(semaphore), C.uint64_t(fence), (*C.uint32_t)(unsafe.Pointer(pImageIndex))))
	}
	c.QueuePresentKHR = func(queue native.Queue, pPresentInfo *native.PresentInfoKHR) native.Result {
		return native.Result(C.vkw_QueuePresentKHR(C.uintptr_t(queue), unsafe.Pointer(pPresentInfo)))
	}
}
