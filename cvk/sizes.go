// sizes.go
package cvk

/*
#include <stddef.h>
#include "vkw.h"

static const size_t vkw_offsets[] = {
	offsetof(VkOffset2D, x),
	offsetof(VkOffset2D, y),
	offsetof(VkOffset3D, x),
	offsetof(VkOffset3D, y),
	offsetof(VkOffset3D, z),
	offsetof(VkExtent2D, width),
	offsetof(VkExtent2D, height),
	offsetof(VkExtent3D, width),
	offsetof(VkExtent3D, height),
	offsetof(VkExtent3D, depth),
	offsetof(VkRect2D, offset),
	offsetof(VkRect2D, extent),
	offsetof(VkViewport, x),
	offsetof(VkViewport, y),
	offsetof(VkViewport, width),
	offsetof(VkViewport, height),
	offsetof(VkViewport, minDepth),
	offsetof(VkViewport, maxDepth),
	offsetof(VkApplicationInfo, sType),
	offsetof(VkApplicationInfo, pNext),
	offsetof(VkApplicationInfo, pApplicationName),
	offsetof(VkApplicationInfo, applicationVersion),
	offsetof(VkApplicationInfo, pEngineName),
	offsetof(VkApplicationInfo, engineVersion),
	offsetof(VkApplicationInfo, apiVersion),
	offsetof(VkInstanceCreateInfo, sType),
	offsetof(VkInstanceCreateInfo, pNext),
	offsetof(VkInstanceCreateInfo, flags),
	offsetof(VkInstanceCreateInfo, pApplicationInfo),
	offsetof(VkInstanceCreateInfo, enabledLayerCount),
	offsetof(VkInstanceCreateInfo, ppEnabledLayerNames),
	offsetof(VkInstanceCreateInfo, enabledExtensionCount),
	offsetof(VkInstanceCreateInfo, ppEnabledExtensionNames),
	offsetof(VkAllocationCallbacks, pUserData),
	offsetof(VkAllocationCallbacks, pfnAllocation),
	offsetof(VkAllocationCallbacks, pfnReallocation),
	offsetof(VkAllocationCallbacks, pfnFree),
	offsetof(VkAllocationCallbacks, pfnInternalAllocation),
	offsetof(VkAllocationCallbacks, pfnInternalFree),
	offsetof(VkLayerProperties, layerName),
	offsetof(VkLayerProperties, specVersion),
	offsetof(VkLayerProperties, implementationVersion),
	offsetof(VkLayerProperties, description),
	offsetof(VkExtensionProperties, extensionName),
	offsetof(VkExtensionProperties, specVersion),
	offsetof(VkPhysicalDeviceLimits, maxImageDimension1D),
	offsetof(VkPhysicalDeviceLimits, maxImageDimension2D),
	offsetof(VkPhysicalDeviceLimits, maxImageDimension3D),
	offsetof(VkPhysicalDeviceLimits, maxImageDimensionCube),
	offsetof(VkPhysicalDeviceLimits, maxImageArrayLayers),
	offsetof(VkPhysicalDeviceLimits, maxTexelBufferElements),
	offsetof(VkPhysicalDeviceLimits, maxUniformBufferRange),
	offsetof(VkPhysicalDeviceLimits, maxStorageBufferRange),
	offsetof(VkPhysicalDeviceLimits, maxPushConstantsSize),
	offsetof(VkPhysicalDeviceLimits, maxMemoryAllocationCount),
	offsetof(VkPhysicalDeviceLimits, maxSamplerAllocationCount),
	offsetof(VkPhysicalDeviceLimits, bufferImageGranularity),
	offsetof(VkPhysicalDeviceLimits, sparseAddressSpaceSize),
	offsetof(VkPhysicalDeviceLimits, maxBoundDescriptorSets),
	offsetof(VkPhysicalDeviceLimits, maxPerStageDescriptorSamplers),
	offsetof(VkPhysicalDeviceLimits, maxPerStageDescriptorUniformBuffers),
	offsetof(VkPhysicalDeviceLimits, maxPerStageDescriptorStorageBuffers),
	offsetof(VkPhysicalDeviceLimits, maxPerStageDescriptorSampledImages),
	offsetof(VkPhysicalDeviceLimits, maxPerStageDescriptorStorageImages),
	offsetof(VkPhysicalDeviceLimits, maxPerStageDescriptorInputAttachments),
	offsetof(VkPhysicalDeviceLimits, maxPerStageResources),
	offsetof(VkPhysicalDeviceLimits, maxDescriptorSetSamplers),
	offsetof(VkPhysicalDeviceLimits, maxDescriptorSetUniformBuffers),
	offsetof(VkPhysicalDeviceLimits, maxDescriptorSetUniformBuffersDynamic),
	offsetof(VkPhysicalDeviceLimits, maxDescriptorSetStorageBuffers),
	offsetof(VkPhysicalDeviceLimits, maxDescriptorSetStorageBuffersDynamic),
	offsetof(VkPhysicalDeviceLimits, maxDescriptorSetSampledImages),
	offsetof(VkPhysicalDeviceLimits, maxDescriptorSetStorageImages),
	offsetof(VkPhysicalDeviceLimits, maxDescriptorSetInputAttachments),
	offsetof(VkPhysicalDeviceLimits, maxVertexInputAttributes),
	offsetof(VkPhysicalDeviceLimits, maxVertexInputBindings),
	offsetof(VkPhysicalDeviceLimits, maxVertexInputAttributeOffset),
	offsetof(VkPhysicalDeviceLimits, maxVertexInputBindingStride),
	offsetof(VkPhysicalDeviceLimits, maxVertexOutputComponents),
	offsetof(VkPhysicalDeviceLimits, maxTessellationGenerationLevel),
	offsetof(VkPhysicalDeviceLimits, maxTessellationPatchSize),
	offsetof(VkPhysicalDeviceLimits, maxTessellationControlPerVertexInputComponents),
	offsetof(VkPhysicalDeviceLimits, maxTessellationControlPerVertexOutputComponents),
	offsetof(VkPhysicalDeviceLimits, maxTessellationControlPerPatchOutputComponents),
	offsetof(VkPhysicalDeviceLimits, maxTessellationControlTotalOutputComponents),
	offsetof(VkPhysicalDeviceLimits, maxTessellationEvaluationInputComponents),
	offsetof(VkPhysicalDeviceLimits, maxTessellationEvaluationOutputComponents),
	offsetof(VkPhysicalDeviceLimits, maxGeometryShaderInvocations),
	offsetof(VkPhysicalDeviceLimits, maxGeometryInputComponents),
	offsetof(VkPhysicalDeviceLimits, maxGeometryOutputComponents),
	offsetof(VkPhysicalDeviceLimits, maxGeometryOutputVertices),
	offsetof(VkPhysicalDeviceLimits, maxGeometryTotalOutputComponents),
	offsetof(VkPhysicalDeviceLimits, maxFragmentInputComponents),
	offsetof(VkPhysicalDeviceLimits, maxFragmentOutputAttachments),
	offsetof(VkPhysicalDeviceLimits, maxFragmentDualSrcAttachments),
	offsetof(VkPhysicalDeviceLimits, maxFragmentCombinedOutputResources),
	offsetof(VkPhysicalDeviceLimits, maxComputeSharedMemorySize),
	offsetof(VkPhysicalDeviceLimits, maxComputeWorkGroupCount),
	offsetof(VkPhysicalDeviceLimits, maxComputeWorkGroupInvocations),
	offsetof(VkPhysicalDeviceLimits, maxComputeWorkGroupSize),
	offsetof(VkPhysicalDeviceLimits, subPixelPrecisionBits),
	offsetof(VkPhysicalDeviceLimits, subTexelPrecisionBits),
	offsetof(VkPhysicalDeviceLimits, mipmapPrecisionBits),
	offsetof(VkPhysicalDeviceLimits, maxDrawIndexedIndexValue),
	offsetof(VkPhysicalDeviceLimits, maxDrawIndirectCount),
	offsetof(VkPhysicalDeviceLimits, maxSamplerLodBias),
	offsetof(VkPhysicalDeviceLimits, maxSamplerAnisotropy),
	offsetof(VkPhysicalDeviceLimits, maxViewports),
	offsetof(VkPhysicalDeviceLimits, maxViewportDimensions),
	offsetof(VkPhysicalDeviceLimits, viewportBoundsRange),
	offsetof(VkPhysicalDeviceLimits, viewportSubPixelBits),
	offsetof(VkPhysicalDeviceLimits, minMemoryMapAlignment),
	offsetof(VkPhysicalDeviceLimits, minTexelBufferOffsetAlignment),
	offsetof(VkPhysicalDeviceLimits, minUniformBufferOffsetAlignment),
	offsetof(VkPhysicalDeviceLimits, minStorageBufferOffsetAlignment),
	offsetof(VkPhysicalDeviceLimits, minTexelOffset),
	offsetof(VkPhysicalDeviceLimits, maxTexelOffset),
	offsetof(VkPhysicalDeviceLimits, minTexelGatherOffset),
	offsetof(VkPhysicalDeviceLimits, maxTexelGatherOffset),
	offsetof(VkPhysicalDeviceLimits, minInterpolationOffset),
	offsetof(VkPhysicalDeviceLimits, maxInterpolationOffset),
	offsetof(VkPhysicalDeviceLimits, subPixelInterpolationOffsetBits),
	offsetof(VkPhysicalDeviceLimits, maxFramebufferWidth),
	offsetof(VkPhysicalDeviceLimits, maxFramebufferHeight),
	offsetof(VkPhysicalDeviceLimits, maxFramebufferLayers),
	offsetof(VkPhysicalDeviceLimits, framebufferColorSampleCounts),
	offsetof(VkPhysicalDeviceLimits, framebufferDepthSampleCounts),
	offsetof(VkPhysicalDeviceLimits, framebufferStencilSampleCounts),
	offsetof(VkPhysicalDeviceLimits, framebufferNoAttachmentsSampleCounts),
	offsetof(VkPhysicalDeviceLimits, maxColorAttachments),
	offsetof(VkPhysicalDeviceLimits, sampledImageColorSampleCounts),
	offsetof(VkPhysicalDeviceLimits, sampledImageIntegerSampleCounts),
	offsetof(VkPhysicalDeviceLimits, sampledImageDepthSampleCounts),
	offsetof(VkPhysicalDeviceLimits, sampledImageStencilSampleCounts),
	offsetof(VkPhysicalDeviceLimits, storageImageSampleCounts),
	offsetof(VkPhysicalDeviceLimits, maxSampleMaskWords),
	offsetof(VkPhysicalDeviceLimits, timestampComputeAndGraphics),
	offsetof(VkPhysicalDeviceLimits, timestampPeriod),
	offsetof(VkPhysicalDeviceLimits, maxClipDistances),
	offsetof(VkPhysicalDeviceLimits, maxCullDistances),
	offsetof(VkPhysicalDeviceLimits, maxCombinedClipAndCullDistances),
	offsetof(VkPhysicalDeviceLimits, discreteQueuePriorities),
	offsetof(VkPhysicalDeviceLimits, pointSizeRange),
	offsetof(VkPhysicalDeviceLimits, lineWidthRange),
	offsetof(VkPhysicalDeviceLimits, pointSizeGranularity),
	offsetof(VkPhysicalDeviceLimits, lineWidthGranularity),
	offsetof(VkPhysicalDeviceLimits, strictLines),
	offsetof(VkPhysicalDeviceLimits, standardSampleLocations),
	offsetof(VkPhysicalDeviceLimits, optimalBufferCopyOffsetAlignment),
	offsetof(VkPhysicalDeviceLimits, optimalBufferCopyRowPitchAlignment),
	offsetof(VkPhysicalDeviceLimits, nonCoherentAtomSize),
	offsetof(VkPhysicalDeviceSparseProperties, residencyStandard2DBlockShape),
	offsetof(VkPhysicalDeviceSparseProperties, residencyStandard2DMultisampleBlockShape),
	offsetof(VkPhysicalDeviceSparseProperties, residencyStandard3DBlockShape),
	offsetof(VkPhysicalDeviceSparseProperties, residencyAlignedMipSize),
	offsetof(VkPhysicalDeviceSparseProperties, residencyNonResidentStrict),
	offsetof(VkPhysicalDeviceProperties, apiVersion),
	offsetof(VkPhysicalDeviceProperties, driverVersion),
	offsetof(VkPhysicalDeviceProperties, vendorID),
	offsetof(VkPhysicalDeviceProperties, deviceID),
	offsetof(VkPhysicalDeviceProperties, deviceType),
	offsetof(VkPhysicalDeviceProperties, deviceName),
	offsetof(VkPhysicalDeviceProperties, pipelineCacheUUID),
	offsetof(VkPhysicalDeviceProperties, limits),
	offsetof(VkPhysicalDeviceProperties, sparseProperties),
	offsetof(VkPhysicalDeviceFeatures, robustBufferAccess),
	offsetof(VkPhysicalDeviceFeatures, fullDrawIndexUint32),
	offsetof(VkPhysicalDeviceFeatures, imageCubeArray),
	offsetof(VkPhysicalDeviceFeatures, independentBlend),
	offsetof(VkPhysicalDeviceFeatures, geometryShader),
	offsetof(VkPhysicalDeviceFeatures, tessellationShader),
	offsetof(VkPhysicalDeviceFeatures, sampleRateShading),
	offsetof(VkPhysicalDeviceFeatures, dualSrcBlend),
	offsetof(VkPhysicalDeviceFeatures, logicOp),
	offsetof(VkPhysicalDeviceFeatures, multiDrawIndirect),
	offsetof(VkPhysicalDeviceFeatures, drawIndirectFirstInstance),
	offsetof(VkPhysicalDeviceFeatures, depthClamp),
	offsetof(VkPhysicalDeviceFeatures, depthBiasClamp),
	offsetof(VkPhysicalDeviceFeatures, fillModeNonSolid),
	offsetof(VkPhysicalDeviceFeatures, depthBounds),
	offsetof(VkPhysicalDeviceFeatures, wideLines),
	offsetof(VkPhysicalDeviceFeatures, largePoints),
	offsetof(VkPhysicalDeviceFeatures, alphaToOne),
	offsetof(VkPhysicalDeviceFeatures, multiViewport),
	offsetof(VkPhysicalDeviceFeatures, samplerAnisotropy),
	offsetof(VkPhysicalDeviceFeatures, textureCompressionETC2),
	offsetof(VkPhysicalDeviceFeatures, textureCompressionASTC_LDR),
	offsetof(VkPhysicalDeviceFeatures, textureCompressionBC),
	offsetof(VkPhysicalDeviceFeatures, occlusionQueryPrecise),
	offsetof(VkPhysicalDeviceFeatures, pipelineStatisticsQuery),
	offsetof(VkPhysicalDeviceFeatures, vertexPipelineStoresAndAtomics),
	offsetof(VkPhysicalDeviceFeatures, fragmentStoresAndAtomics),
	offsetof(VkPhysicalDeviceFeatures, shaderTessellationAndGeometryPointSize),
	offsetof(VkPhysicalDeviceFeatures, shaderImageGatherExtended),
	offsetof(VkPhysicalDeviceFeatures, shaderStorageImageExtendedFormats),
	offsetof(VkPhysicalDeviceFeatures, shaderStorageImageMultisample),
	offsetof(VkPhysicalDeviceFeatures, shaderStorageImageReadWithoutFormat),
	offsetof(VkPhysicalDeviceFeatures, shaderStorageImageWriteWithoutFormat),
	offsetof(VkPhysicalDeviceFeatures, shaderUniformBufferArrayDynamicIndexing),
	offsetof(VkPhysicalDeviceFeatures, shaderSampledImageArrayDynamicIndexing),
	offsetof(VkPhysicalDeviceFeatures, shaderStorageBufferArrayDynamicIndexing),
	offsetof(VkPhysicalDeviceFeatures, shaderStorageImageArrayDynamicIndexing),
	offsetof(VkPhysicalDeviceFeatures, shaderClipDistance),
	offsetof(VkPhysicalDeviceFeatures, shaderCullDistance),
	offsetof(VkPhysicalDeviceFeatures, shaderFloat64),
	offsetof(VkPhysicalDeviceFeatures, shaderInt64),
	offsetof(VkPhysicalDeviceFeatures, shaderInt16),
	offsetof(VkPhysicalDeviceFeatures, shaderResourceResidency),
	offsetof(VkPhysicalDeviceFeatures, shaderResourceMinLod),
	offsetof(VkPhysicalDeviceFeatures, sparseBinding),
	offsetof(VkPhysicalDeviceFeatures, sparseResidencyBuffer),
	offsetof(VkPhysicalDeviceFeatures, sparseResidencyImage2D),
	offsetof(VkPhysicalDeviceFeatures, sparseResidencyImage3D),
	offsetof(VkPhysicalDeviceFeatures, sparseResidency2Samples),
	offsetof(VkPhysicalDeviceFeatures, sparseResidency4Samples),
	offsetof(VkPhysicalDeviceFeatures, sparseResidency8Samples),
	offsetof(VkPhysicalDeviceFeatures, sparseResidency16Samples),
	offsetof(VkPhysicalDeviceFeatures, sparseResidencyAliased),
	offsetof(VkPhysicalDeviceFeatures, variableMultisampleRate),
	offsetof(VkPhysicalDeviceFeatures, inheritedQueries),
	offsetof(VkQueueFamilyProperties, queueFlags),
	offsetof(VkQueueFamilyProperties, queueCount),
	offsetof(VkQueueFamilyProperties, timestampValidBits),
	offsetof(VkQueueFamilyProperties, minImageTransferGranularity),
	offsetof(VkMemoryType, propertyFlags),
	offsetof(VkMemoryType, heapIndex),
	offsetof(VkMemoryHeap, size),
	offsetof(VkMemoryHeap, flags),
	offsetof(VkPhysicalDeviceMemoryProperties, memoryTypeCount),
	offsetof(VkPhysicalDeviceMemoryProperties, memoryTypes),
	offsetof(VkPhysicalDeviceMemoryProperties, memoryHeapCount),
	offsetof(VkPhysicalDeviceMemoryProperties, memoryHeaps),
	offsetof(VkFormatProperties, linearTilingFeatures),
	offsetof(VkFormatProperties, optimalTilingFeatures),
	offsetof(VkFormatProperties, bufferFeatures),
	offsetof(VkDeviceQueueCreateInfo, sType),
	offsetof(VkDeviceQueueCreateInfo, pNext),
	offsetof(VkDeviceQueueCreateInfo, flags),
	offsetof(VkDeviceQueueCreateInfo, queueFamilyIndex),
	offsetof(VkDeviceQueueCreateInfo, queueCount),
	offsetof(VkDeviceQueueCreateInfo, pQueuePriorities),
	offsetof(VkDeviceCreateInfo, sType),
	offsetof(VkDeviceCreateInfo, pNext),
	offsetof(VkDeviceCreateInfo, flags),
	offsetof(VkDeviceCreateInfo, queueCreateInfoCount),
	offsetof(VkDeviceCreateInfo, pQueueCreateInfos),
	offsetof(VkDeviceCreateInfo, enabledLayerCount),
	offsetof(VkDeviceCreateInfo, ppEnabledLayerNames),
	offsetof(VkDeviceCreateInfo, enabledExtensionCount),
	offsetof(VkDeviceCreateInfo, ppEnabledExtensionNames),
	offsetof(VkDeviceCreateInfo, pEnabledFeatures),
	offsetof(VkSubmitInfo, sType),
	offsetof(VkSubmitInfo, pNext),
	offsetof(VkSubmitInfo, waitSemaphoreCount),
	offsetof(VkSubmitInfo, pWaitSemaphores),
	offsetof(VkSubmitInfo, pWaitDstStageMask),
	offsetof(VkSubmitInfo, commandBufferCount),
	offsetof(VkSubmitInfo, pCommandBuffers),
	offsetof(VkSubmitInfo, signalSemaphoreCount),
	offsetof(VkSubmitInfo, pSignalSemaphores),
	offsetof(VkFenceCreateInfo, sType),
	offsetof(VkFenceCreateInfo, pNext),
	offsetof(VkFenceCreateInfo, flags),
	offsetof(VkSemaphoreCreateInfo, sType),
	offsetof(VkSemaphoreCreateInfo, pNext),
	offsetof(VkSemaphoreCreateInfo, flags),
	offsetof(VkEventCreateInfo, sType),
	offsetof(VkEventCreateInfo, pNext),
	offsetof(VkEventCreateInfo, flags),
	offsetof(VkMemoryAllocateInfo, sType),
	offsetof(VkMemoryAllocateInfo, pNext),
	offsetof(VkMemoryAllocateInfo, allocationSize),
	offsetof(VkMemoryAllocateInfo, memoryTypeIndex),
	offsetof(VkMappedMemoryRange, sType),
	offsetof(VkMappedMemoryRange, pNext),
	offsetof(VkMappedMemoryRange, memory),
	offsetof(VkMappedMemoryRange, offset),
	offsetof(VkMappedMemoryRange, size),
	offsetof(VkMemoryRequirements, size),
	offsetof(VkMemoryRequirements, alignment),
	offsetof(VkMemoryRequirements, memoryTypeBits),
	offsetof(VkBufferCreateInfo, sType),
	offsetof(VkBufferCreateInfo, pNext),
	offsetof(VkBufferCreateInfo, flags),
	offsetof(VkBufferCreateInfo, size),
	offsetof(VkBufferCreateInfo, usage),
	offsetof(VkBufferCreateInfo, sharingMode),
	offsetof(VkBufferCreateInfo, queueFamilyIndexCount),
	offsetof(VkBufferCreateInfo, pQueueFamilyIndices),
	offsetof(VkImageCreateInfo, sType),
	offsetof(VkImageCreateInfo, pNext),
	offsetof(VkImageCreateInfo, flags),
	offsetof(VkImageCreateInfo, imageType),
	offsetof(VkImageCreateInfo, format),
	offsetof(VkImageCreateInfo, extent),
	offsetof(VkImageCreateInfo, mipLevels),
	offsetof(VkImageCreateInfo, arrayLayers),
	offsetof(VkImageCreateInfo, samples),
	offsetof(VkImageCreateInfo, tiling),
	offsetof(VkImageCreateInfo, usage),
	offsetof(VkImageCreateInfo, sharingMode),
	offsetof(VkImageCreateInfo, queueFamilyIndexCount),
	offsetof(VkImageCreateInfo, pQueueFamilyIndices),
	offsetof(VkImageCreateInfo, initialLayout),
	offsetof(VkComponentMapping, r),
	offsetof(VkComponentMapping, g),
	offsetof(VkComponentMapping, b),
	offsetof(VkComponentMapping, a),
	offsetof(VkImageSubresourceRange, aspectMask),
	offsetof(VkImageSubresourceRange, baseMipLevel),
	offsetof(VkImageSubresourceRange, levelCount),
	offsetof(VkImageSubresourceRange, baseArrayLayer),
	offsetof(VkImageSubresourceRange, layerCount),
	offsetof(VkImageSubresourceLayers, aspectMask),
	offsetof(VkImageSubresourceLayers, mipLevel),
	offsetof(VkImageSubresourceLayers, baseArrayLayer),
	offsetof(VkImageSubresourceLayers, layerCount),
	offsetof(VkImageViewCreateInfo, sType),
	offsetof(VkImageViewCreateInfo, pNext),
	offsetof(VkImageViewCreateInfo, flags),
	offsetof(VkImageViewCreateInfo, image),
	offsetof(VkImageViewCreateInfo, viewType),
	offsetof(VkImageViewCreateInfo, format),
	offsetof(VkImageViewCreateInfo, components),
	offsetof(VkImageViewCreateInfo, subresourceRange),
	offsetof(VkShaderModuleCreateInfo, sType),
	offsetof(VkShaderModuleCreateInfo, pNext),
	offsetof(VkShaderModuleCreateInfo, flags),
	offsetof(VkShaderModuleCreateInfo, codeSize),
	offsetof(VkShaderModuleCreateInfo, pCode),
	offsetof(VkCommandPoolCreateInfo, sType),
	offsetof(VkCommandPoolCreateInfo, pNext),
	offsetof(VkCommandPoolCreateInfo, flags),
	offsetof(VkCommandPoolCreateInfo, queueFamilyIndex),
	offsetof(VkCommandBufferAllocateInfo, sType),
	offsetof(VkCommandBufferAllocateInfo, pNext),
	offsetof(VkCommandBufferAllocateInfo, commandPool),
	offsetof(VkCommandBufferAllocateInfo, level),
	offsetof(VkCommandBufferAllocateInfo, commandBufferCount),
	offsetof(VkCommandBufferInheritanceInfo, sType),
	offsetof(VkCommandBufferInheritanceInfo, pNext),
	offsetof(VkCommandBufferInheritanceInfo, renderPass),
	offsetof(VkCommandBufferInheritanceInfo, subpass),
	offsetof(VkCommandBufferInheritanceInfo, framebuffer),
	offsetof(VkCommandBufferInheritanceInfo, occlusionQueryEnable),
	offsetof(VkCommandBufferInheritanceInfo, queryFlags),
	offsetof(VkCommandBufferInheritanceInfo, pipelineStatistics),
	offsetof(VkCommandBufferBeginInfo, sType),
	offsetof(VkCommandBufferBeginInfo, pNext),
	offsetof(VkCommandBufferBeginInfo, flags),
	offsetof(VkCommandBufferBeginInfo, pInheritanceInfo),
	offsetof(VkBufferCopy, srcOffset),
	offsetof(VkBufferCopy, dstOffset),
	offsetof(VkBufferCopy, size),
	offsetof(VkBufferImageCopy, bufferOffset),
	offsetof(VkBufferImageCopy, bufferRowLength),
	offsetof(VkBufferImageCopy, bufferImageHeight),
	offsetof(VkBufferImageCopy, imageSubresource),
	offsetof(VkBufferImageCopy, imageOffset),
	offsetof(VkBufferImageCopy, imageExtent),
	offsetof(VkMemoryBarrier, sType),
	offsetof(VkMemoryBarrier, pNext),
	offsetof(VkMemoryBarrier, srcAccessMask),
	offsetof(VkMemoryBarrier, dstAccessMask),
	offsetof(VkBufferMemoryBarrier, sType),
	offsetof(VkBufferMemoryBarrier, pNext),
	offsetof(VkBufferMemoryBarrier, srcAccessMask),
	offsetof(VkBufferMemoryBarrier, dstAccessMask),
	offsetof(VkBufferMemoryBarrier, srcQueueFamilyIndex),
	offsetof(VkBufferMemoryBarrier, dstQueueFamilyIndex),
	offsetof(VkBufferMemoryBarrier, buffer),
	offsetof(VkBufferMemoryBarrier, offset),
	offsetof(VkBufferMemoryBarrier, size),
	offsetof(VkImageMemoryBarrier, sType),
	offsetof(VkImageMemoryBarrier, pNext),
	offsetof(VkImageMemoryBarrier, srcAccessMask),
	offsetof(VkImageMemoryBarrier, dstAccessMask),
	offsetof(VkImageMemoryBarrier, oldLayout),
	offsetof(VkImageMemoryBarrier, newLayout),
	offsetof(VkImageMemoryBarrier, srcQueueFamilyIndex),
	offsetof(VkImageMemoryBarrier, dstQueueFamilyIndex),
	offsetof(VkImageMemoryBarrier, image),
	offsetof(VkImageMemoryBarrier, subresourceRange),
	offsetof(VkRenderingAttachmentInfo, sType),
	offsetof(VkRenderingAttachmentInfo, pNext),
	offsetof(VkRenderingAttachmentInfo, imageView),
	offsetof(VkRenderingAttachmentInfo, imageLayout),
	offsetof(VkRenderingAttachmentInfo, resolveMode),
	offsetof(VkRenderingAttachmentInfo, resolveImageView),
	offsetof(VkRenderingAttachmentInfo, resolveImageLayout),
	offsetof(VkRenderingAttachmentInfo, loadOp),
	offsetof(VkRenderingAttachmentInfo, storeOp),
	offsetof(VkRenderingAttachmentInfo, clearValue),
	offsetof(VkRenderingInfo, sType),
	offsetof(VkRenderingInfo, pNext),
	offsetof(VkRenderingInfo, flags),
	offsetof(VkRenderingInfo, renderArea),
	offsetof(VkRenderingInfo, layerCount),
	offsetof(VkRenderingInfo, viewMask),
	offsetof(VkRenderingInfo, colorAttachmentCount),
	offsetof(VkRenderingInfo, pColorAttachments),
	offsetof(VkRenderingInfo, pDepthAttachment),
	offsetof(VkRenderingInfo, pStencilAttachment),
	offsetof(VkAttachmentDescription, flags),
	offsetof(VkAttachmentDescription, format),
	offsetof(VkAttachmentDescription, samples),
	offsetof(VkAttachmentDescription, loadOp),
	offsetof(VkAttachmentDescription, storeOp),
	offsetof(VkAttachmentDescription, stencilLoadOp),
	offsetof(VkAttachmentDescription, stencilStoreOp),
	offsetof(VkAttachmentDescription, initialLayout),
	offsetof(VkAttachmentDescription, finalLayout),
	offsetof(VkAttachmentReference, attachment),
	offsetof(VkAttachmentReference, layout),
	offsetof(VkSubpassDescription, flags),
	offsetof(VkSubpassDescription, pipelineBindPoint),
	offsetof(VkSubpassDescription, inputAttachmentCount),
	offsetof(VkSubpassDescription, pInputAttachments),
	offsetof(VkSubpassDescription, colorAttachmentCount),
	offsetof(VkSubpassDescription, pColorAttachments),
	offsetof(VkSubpassDescription, pResolveAttachments),
	offsetof(VkSubpassDescription, pDepthStencilAttachment),
	offsetof(VkSubpassDescription, preserveAttachmentCount),
	offsetof(VkSubpassDescription, pPreserveAttachments),
	offsetof(VkSubpassDependency, srcSubpass),
	offsetof(VkSubpassDependency, dstSubpass),
	offsetof(VkSubpassDependency, srcStageMask),
	offsetof(VkSubpassDependency, dstStageMask),
	offsetof(VkSubpassDependency, srcAccessMask),
	offsetof(VkSubpassDependency, dstAccessMask),
	offsetof(VkSubpassDependency, dependencyFlags),
	offsetof(VkRenderPassCreateInfo, sType),
	offsetof(VkRenderPassCreateInfo, pNext),
	offsetof(VkRenderPassCreateInfo, flags),
	offsetof(VkRenderPassCreateInfo, attachmentCount),
	offsetof(VkRenderPassCreateInfo, pAttachments),
	offsetof(VkRenderPassCreateInfo, subpassCount),
	offsetof(VkRenderPassCreateInfo, pSubpasses),
	offsetof(VkRenderPassCreateInfo, dependencyCount),
	offsetof(VkRenderPassCreateInfo, pDependencies),
	offsetof(VkFramebufferCreateInfo, sType),
	offsetof(VkFramebufferCreateInfo, pNext),
	offsetof(VkFramebufferCreateInfo, flags),
	offsetof(VkFramebufferCreateInfo, renderPass),
	offsetof(VkFramebufferCreateInfo, attachmentCount),
	offsetof(VkFramebufferCreateInfo, pAttachments),
	offsetof(VkFramebufferCreateInfo, width),
	offsetof(VkFramebufferCreateInfo, height),
	offsetof(VkFramebufferCreateInfo, layers),
	offsetof(VkRenderPassBeginInfo, sType),
	offsetof(VkRenderPassBeginInfo, pNext),
	offsetof(VkRenderPassBeginInfo, renderPass),
	offsetof(VkRenderPassBeginInfo, framebuffer),
	offsetof(VkRenderPassBeginInfo, renderArea),
	offsetof(VkRenderPassBeginInfo, clearValueCount),
	offsetof(VkRenderPassBeginInfo, pClearValues),
	offsetof(VkDescriptorSetLayoutBinding, binding),
	offsetof(VkDescriptorSetLayoutBinding, descriptorType),
	offsetof(VkDescriptorSetLayoutBinding, descriptorCount),
	offsetof(VkDescriptorSetLayoutBinding, stageFlags),
	offsetof(VkDescriptorSetLayoutBinding, pImmutableSamplers),
	offsetof(VkDescriptorSetLayoutCreateInfo, sType),
	offsetof(VkDescriptorSetLayoutCreateInfo, pNext),
	offsetof(VkDescriptorSetLayoutCreateInfo, flags),
	offsetof(VkDescriptorSetLayoutCreateInfo, bindingCount),
	offsetof(VkDescriptorSetLayoutCreateInfo, pBindings),
	offsetof(VkDescriptorPoolSize, type),
	offsetof(VkDescriptorPoolSize, descriptorCount),
	offsetof(VkDescriptorPoolCreateInfo, sType),
	offsetof(VkDescriptorPoolCreateInfo, pNext),
	offsetof(VkDescriptorPoolCreateInfo, flags),
	offsetof(VkDescriptorPoolCreateInfo, maxSets),
	offsetof(VkDescriptorPoolCreateInfo, poolSizeCount),
	offsetof(VkDescriptorPoolCreateInfo, pPoolSizes),
	offsetof(VkDescriptorSetAllocateInfo, sType),
	offsetof(VkDescriptorSetAllocateInfo, pNext),
	offsetof(VkDescriptorSetAllocateInfo, descriptorPool),
	offsetof(VkDescriptorSetAllocateInfo, descriptorSetCount),
	offsetof(VkDescriptorSetAllocateInfo, pSetLayouts),
	offsetof(VkDescriptorBufferInfo, buffer),
	offsetof(VkDescriptorBufferInfo, offset),
	offsetof(VkDescriptorBufferInfo, range),
	offsetof(VkDescriptorImageInfo, sampler),
	offsetof(VkDescriptorImageInfo, imageView),
	offsetof(VkDescriptorImageInfo, imageLayout),
	offsetof(VkWriteDescriptorSet, sType),
	offsetof(VkWriteDescriptorSet, pNext),
	offsetof(VkWriteDescriptorSet, dstSet),
	offsetof(VkWriteDescriptorSet, dstBinding),
	offsetof(VkWriteDescriptorSet, dstArrayElement),
	offsetof(VkWriteDescriptorSet, descriptorCount),
	offsetof(VkWriteDescriptorSet, descriptorType),
	offsetof(VkWriteDescriptorSet, pImageInfo),
	offsetof(VkWriteDescriptorSet, pBufferInfo),
	offsetof(VkWriteDescriptorSet, pTexelBufferView),
	offsetof(VkPushConstantRange, stageFlags),
	offsetof(VkPushConstantRange, offset),
	offsetof(VkPushConstantRange, size),
	offsetof(VkPipelineLayoutCreateInfo, sType),
	offsetof(VkPipelineLayoutCreateInfo, pNext),
	offsetof(VkPipelineLayoutCreateInfo, flags),
	offsetof(VkPipelineLayoutCreateInfo, setLayoutCount),
	offsetof(VkPipelineLayoutCreateInfo, pSetLayouts),
	offsetof(VkPipelineLayoutCreateInfo, pushConstantRangeCount),
	offsetof(VkPipelineLayoutCreateInfo, pPushConstantRanges),
	offsetof(VkSpecializationMapEntry, constantID),
	offsetof(VkSpecializationMapEntry, offset),
	offsetof(VkSpecializationMapEntry, size),
	offsetof(VkSpecializationInfo, mapEntryCount),
	offsetof(VkSpecializationInfo, pMapEntries),
	offsetof(VkSpecializationInfo, dataSize),
	offsetof(VkSpecializationInfo, pData),
	offsetof(VkPipelineShaderStageCreateInfo, sType),
	offsetof(VkPipelineShaderStageCreateInfo, pNext),
	offsetof(VkPipelineShaderStageCreateInfo, flags),
	offsetof(VkPipelineShaderStageCreateInfo, stage),
	offsetof(VkPipelineShaderStageCreateInfo, module),
	offsetof(VkPipelineShaderStageCreateInfo, pName),
	offsetof(VkPipelineShaderStageCreateInfo, pSpecializationInfo),
	offsetof(VkComputePipelineCreateInfo, sType),
	offsetof(VkComputePipelineCreateInfo, pNext),
	offsetof(VkComputePipelineCreateInfo, flags),
	offsetof(VkComputePipelineCreateInfo, stage),
	offsetof(VkComputePipelineCreateInfo, layout),
	offsetof(VkComputePipelineCreateInfo, basePipelineHandle),
	offsetof(VkComputePipelineCreateInfo, basePipelineIndex),
	offsetof(VkVertexInputBindingDescription, binding),
	offsetof(VkVertexInputBindingDescription, stride),
	offsetof(VkVertexInputBindingDescription, inputRate),
	offsetof(VkVertexInputAttributeDescription, location),
	offsetof(VkVertexInputAttributeDescription, binding),
	offsetof(VkVertexInputAttributeDescription, format),
	offsetof(VkVertexInputAttributeDescription, offset),
	offsetof(VkPipelineVertexInputStateCreateInfo, sType),
	offsetof(VkPipelineVertexInputStateCreateInfo, pNext),
	offsetof(VkPipelineVertexInputStateCreateInfo, flags),
	offsetof(VkPipelineVertexInputStateCreateInfo, vertexBindingDescriptionCount),
	offsetof(VkPipelineVertexInputStateCreateInfo, pVertexBindingDescriptions),
	offsetof(VkPipelineVertexInputStateCreateInfo, vertexAttributeDescriptionCount),
	offsetof(VkPipelineVertexInputStateCreateInfo, pVertexAttributeDescriptions),
	offsetof(VkPipelineInputAssemblyStateCreateInfo, sType),
	offsetof(VkPipelineInputAssemblyStateCreateInfo, pNext),
	offsetof(VkPipelineInputAssemblyStateCreateInfo, flags),
	offsetof(VkPipelineInputAssemblyStateCreateInfo, topology),
	offsetof(VkPipelineInputAssemblyStateCreateInfo, primitiveRestartEnable),
	offsetof(VkPipelineTessellationStateCreateInfo, sType),
	offsetof(VkPipelineTessellationStateCreateInfo, pNext),
	offsetof(VkPipelineTessellationStateCreateInfo, flags),
	offsetof(VkPipelineTessellationStateCreateInfo, patchControlPoints),
	offsetof(VkPipelineViewportStateCreateInfo, sType),
	offsetof(VkPipelineViewportStateCreateInfo, pNext),
	offsetof(VkPipelineViewportStateCreateInfo, flags),
	offsetof(VkPipelineViewportStateCreateInfo, viewportCount),
	offsetof(VkPipelineViewportStateCreateInfo, pViewports),
	offsetof(VkPipelineViewportStateCreateInfo, scissorCount),
	offsetof(VkPipelineViewportStateCreateInfo, pScissors),
	offsetof(VkPipelineRasterizationStateCreateInfo, sType),
	offsetof(VkPipelineRasterizationStateCreateInfo, pNext),
	offsetof(VkPipelineRasterizationStateCreateInfo, flags),
	offsetof(VkPipelineRasterizationStateCreateInfo, depthClampEnable),
	offsetof(VkPipelineRasterizationStateCreateInfo, rasterizerDiscardEnable),
	offsetof(VkPipelineRasterizationStateCreateInfo, polygonMode),
	offsetof(VkPipelineRasterizationStateCreateInfo, cullMode),
	offsetof(VkPipelineRasterizationStateCreateInfo, frontFace),
	offsetof(VkPipelineRasterizationStateCreateInfo, depthBiasEnable),
	offsetof(VkPipelineRasterizationStateCreateInfo, depthBiasConstantFactor),
	offsetof(VkPipelineRasterizationStateCreateInfo, depthBiasClamp),
	offsetof(VkPipelineRasterizationStateCreateInfo, depthBiasSlopeFactor),
	offsetof(VkPipelineRasterizationStateCreateInfo, lineWidth),
	offsetof(VkPipelineMultisampleStateCreateInfo, sType),
	offsetof(VkPipelineMultisampleStateCreateInfo, pNext),
	offsetof(VkPipelineMultisampleStateCreateInfo, flags),
	offsetof(VkPipelineMultisampleStateCreateInfo, rasterizationSamples),
	offsetof(VkPipelineMultisampleStateCreateInfo, sampleShadingEnable),
	offsetof(VkPipelineMultisampleStateCreateInfo, minSampleShading),
	offsetof(VkPipelineMultisampleStateCreateInfo, pSampleMask),
	offsetof(VkPipelineMultisampleStateCreateInfo, alphaToCoverageEnable),
	offsetof(VkPipelineMultisampleStateCreateInfo, alphaToOneEnable),
	offsetof(VkStencilOpState, failOp),
	offsetof(VkStencilOpState, passOp),
	offsetof(VkStencilOpState, depthFailOp),
	offsetof(VkStencilOpState, compareOp),
	offsetof(VkStencilOpState, compareMask),
	offsetof(VkStencilOpState, writeMask),
	offsetof(VkStencilOpState, reference),
	offsetof(VkPipelineDepthStencilStateCreateInfo, sType),
	offsetof(VkPipelineDepthStencilStateCreateInfo, pNext),
	offsetof(VkPipelineDepthStencilStateCreateInfo, flags),
	offsetof(VkPipelineDepthStencilStateCreateInfo, depthTestEnable),
	offsetof(VkPipelineDepthStencilStateCreateInfo, depthWriteEnable),
	offsetof(VkPipelineDepthStencilStateCreateInfo, depthCompareOp),
	offsetof(VkPipelineDepthStencilStateCreateInfo, depthBoundsTestEnable),
	offsetof(VkPipelineDepthStencilStateCreateInfo, stencilTestEnable),
	offsetof(VkPipelineDepthStencilStateCreateInfo, front),
	offsetof(VkPipelineDepthStencilStateCreateInfo, back),
	offsetof(VkPipelineDepthStencilStateCreateInfo, minDepthBounds),
	offsetof(VkPipelineDepthStencilStateCreateInfo, maxDepthBounds),
	offsetof(VkPipelineColorBlendAttachmentState, blendEnable),
	offsetof(VkPipelineColorBlendAttachmentState, srcColorBlendFactor),
	offsetof(VkPipelineColorBlendAttachmentState, dstColorBlendFactor),
	offsetof(VkPipelineColorBlendAttachmentState, colorBlendOp),
	offsetof(VkPipelineColorBlendAttachmentState, srcAlphaBlendFactor),
	offsetof(VkPipelineColorBlendAttachmentState, dstAlphaBlendFactor),
	offsetof(VkPipelineColorBlendAttachmentState, alphaBlendOp),
	offsetof(VkPipelineColorBlendAttachmentState, colorWriteMask),
	offsetof(VkPipelineColorBlendStateCreateInfo, sType),
	offsetof(VkPipelineColorBlendStateCreateInfo, pNext),
	offsetof(VkPipelineColorBlendStateCreateInfo, flags),
	offsetof(VkPipelineColorBlendStateCreateInfo, logicOpEnable),
	offsetof(VkPipelineColorBlendStateCreateInfo, logicOp),
	offsetof(VkPipelineColorBlendStateCreateInfo, attachmentCount),
	offsetof(VkPipelineColorBlendStateCreateInfo, pAttachments),
	offsetof(VkPipelineColorBlendStateCreateInfo, blendConstants),
	offsetof(VkPipelineDynamicStateCreateInfo, sType),
	offsetof(VkPipelineDynamicStateCreateInfo, pNext),
	offsetof(VkPipelineDynamicStateCreateInfo, flags),
	offsetof(VkPipelineDynamicStateCreateInfo, dynamicStateCount),
	offsetof(VkPipelineDynamicStateCreateInfo, pDynamicStates),
	offsetof(VkGraphicsPipelineCreateInfo, sType),
	offsetof(VkGraphicsPipelineCreateInfo, pNext),
	offsetof(VkGraphicsPipelineCreateInfo, flags),
	offsetof(VkGraphicsPipelineCreateInfo, stageCount),
	offsetof(VkGraphicsPipelineCreateInfo, pStages),
	offsetof(VkGraphicsPipelineCreateInfo, pVertexInputState),
	offsetof(VkGraphicsPipelineCreateInfo, pInputAssemblyState),
	offsetof(VkGraphicsPipelineCreateInfo, pTessellationState),
	offsetof(VkGraphicsPipelineCreateInfo, pViewportState),
	offsetof(VkGraphicsPipelineCreateInfo, pRasterizationState),
	offsetof(VkGraphicsPipelineCreateInfo, pMultisampleState),
	offsetof(VkGraphicsPipelineCreateInfo, pDepthStencilState),
	offsetof(VkGraphicsPipelineCreateInfo, pColorBlendState),
	offsetof(VkGraphicsPipelineCreateInfo, pDynamicState),
	offsetof(VkGraphicsPipelineCreateInfo, layout),
	offsetof(VkGraphicsPipelineCreateInfo, renderPass),
	offsetof(VkGraphicsPipelineCreateInfo, subpass),
	offsetof(VkGraphicsPipelineCreateInfo, basePipelineHandle),
	offsetof(VkGraphicsPipelineCreateInfo, basePipelineIndex),
	offsetof(VkPipelineRenderingCreateInfo, sType),
	offsetof(VkPipelineRenderingCreateInfo, pNext),
	offsetof(VkPipelineRenderingCreateInfo, viewMask),
	offsetof(VkPipelineRenderingCreateInfo, colorAttachmentCount),
	offsetof(VkPipelineRenderingCreateInfo, pColorAttachmentFormats),
	offsetof(VkPipelineRenderingCreateInfo, depthAttachmentFormat),
	offsetof(VkPipelineRenderingCreateInfo, stencilAttachmentFormat),
	offsetof(VkSamplerCreateInfo, sType),
	offsetof(VkSamplerCreateInfo, pNext),
	offsetof(VkSamplerCreateInfo, flags),
	offsetof(VkSamplerCreateInfo, magFilter),
	offsetof(VkSamplerCreateInfo, minFilter),
	offsetof(VkSamplerCreateInfo, mipmapMode),
	offsetof(VkSamplerCreateInfo, addressModeU),
	offsetof(VkSamplerCreateInfo, addressModeV),
	offsetof(VkSamplerCreateInfo, addressModeW),
	offsetof(VkSamplerCreateInfo, mipLodBias),
	offsetof(VkSamplerCreateInfo, anisotropyEnable),
	offsetof(VkSamplerCreateInfo, maxAnisotropy),
	offsetof(VkSamplerCreateInfo, compareEnable),
	offsetof(VkSamplerCreateInfo, compareOp),
	offsetof(VkSamplerCreateInfo, minLod),
	offsetof(VkSamplerCreateInfo, maxLod),
	offsetof(VkSamplerCreateInfo, borderColor),
	offsetof(VkSamplerCreateInfo, unnormalizedCoordinates),
	offsetof(VkSparseMemoryBind, resourceOffset),
	offsetof(VkSparseMemoryBind, size),
	offsetof(VkSparseMemoryBind, memory),
	offsetof(VkSparseMemoryBind, memoryOffset),
	offsetof(VkSparseMemoryBind, flags),
	offsetof(VkSparseBufferMemoryBindInfo, buffer),
	offsetof(VkSparseBufferMemoryBindInfo, bindCount),
	offsetof(VkSparseBufferMemoryBindInfo, pBinds),
	offsetof(VkSparseImageOpaqueMemoryBindInfo, image),
	offsetof(VkSparseImageOpaqueMemoryBindInfo, bindCount),
	offsetof(VkSparseImageOpaqueMemoryBindInfo, pBinds),
	offsetof(VkImageSubresource, aspectMask),
	offsetof(VkImageSubresource, mipLevel),
	offsetof(VkImageSubresource, arrayLayer),
	offsetof(VkSparseImageMemoryBind, subresource),
	offsetof(VkSparseImageMemoryBind, offset),
	offsetof(VkSparseImageMemoryBind, extent),
	offsetof(VkSparseImageMemoryBind, memory),
	offsetof(VkSparseImageMemoryBind, memoryOffset),
	offsetof(VkSparseImageMemoryBind, flags),
	offsetof(VkSparseImageMemoryBindInfo, image),
	offsetof(VkSparseImageMemoryBindInfo, bindCount),
	offsetof(VkSparseImageMemoryBindInfo, pBinds),
	offsetof(VkBindSparseInfo, sType),
	offsetof(VkBindSparseInfo, pNext),
	offsetof(VkBindSparseInfo, waitSemaphoreCount),
	offsetof(VkBindSparseInfo, pWaitSemaphores),
	offsetof(VkBindSparseInfo, bufferBindCount),
	offsetof(VkBindSparseInfo, pBufferBinds),
	offsetof(VkBindSparseInfo, imageOpaqueBindCount),
	offsetof(VkBindSparseInfo, pImageOpaqueBinds),
	offsetof(VkBindSparseInfo, imageBindCount),
	offsetof(VkBindSparseInfo, pImageBinds),
	offsetof(VkBindSparseInfo, signalSemaphoreCount),
	offsetof(VkBindSparseInfo, pSignalSemaphores),
	offsetof(VkSparseImageFormatProperties, aspectMask),
	offsetof(VkSparseImageFormatProperties, imageGranularity),
	offsetof(VkSparseImageFormatProperties, flags),
	offsetof(VkSparseImageMemoryRequirements, formatProperties),
	offsetof(VkSparseImageMemoryRequirements, imageMipTailFirstLod),
	offsetof(VkSparseImageMemoryRequirements, imageMipTailSize),
	offsetof(VkSparseImageMemoryRequirements, imageMipTailOffset),
	offsetof(VkSparseImageMemoryRequirements, imageMipTailStride),
	offsetof(VkSurfaceCapabilitiesKHR, minImageCount),
	offsetof(VkSurfaceCapabilitiesKHR, maxImageCount),
	offsetof(VkSurfaceCapabilitiesKHR, currentExtent),
	offsetof(VkSurfaceCapabilitiesKHR, minImageExtent),
	offsetof(VkSurfaceCapabilitiesKHR, maxImageExtent),
	offsetof(VkSurfaceCapabilitiesKHR, maxImageArrayLayers),
	offsetof(VkSurfaceCapabilitiesKHR, supportedTransforms),
	offsetof(VkSurfaceCapabilitiesKHR, currentTransform),
	offsetof(VkSurfaceCapabilitiesKHR, supportedCompositeAlpha),
	offsetof(VkSurfaceCapabilitiesKHR, supportedUsageFlags),
	offsetof(VkSurfaceFormatKHR, format),
	offsetof(VkSurfaceFormatKHR, colorSpace),
	offsetof(VkSwapchainCreateInfoKHR, sType),
	offsetof(VkSwapchainCreateInfoKHR, pNext),
	offsetof(VkSwapchainCreateInfoKHR, flags),
	offsetof(VkSwapchainCreateInfoKHR, surface),
	offsetof(VkSwapchainCreateInfoKHR, minImageCount),
	offsetof(VkSwapchainCreateInfoKHR, imageFormat),
	offsetof(VkSwapchainCreateInfoKHR, imageColorSpace),
	offsetof(VkSwapchainCreateInfoKHR, imageExtent),
	offsetof(VkSwapchainCreateInfoKHR, imageArrayLayers),
	offsetof(VkSwapchainCreateInfoKHR, imageUsage),
	offsetof(VkSwapchainCreateInfoKHR, imageSharingMode),
	offsetof(VkSwapchainCreateInfoKHR, queueFamilyIndexCount),
	offsetof(VkSwapchainCreateInfoKHR, pQueueFamilyIndices),
	offsetof(VkSwapchainCreateInfoKHR, preTransform),
	offsetof(VkSwapchainCreateInfoKHR, compositeAlpha),
	offsetof(VkSwapchainCreateInfoKHR, presentMode),
	offsetof(VkSwapchainCreateInfoKHR, clipped),
	offsetof(VkSwapchainCreateInfoKHR, oldSwapchain),
	offsetof(VkPresentInfoKHR, sType),
	offsetof(VkPresentInfoKHR, pNext),
	offsetof(VkPresentInfoKHR, waitSemaphoreCount),
	offsetof(VkPresentInfoKHR, pWaitSemaphores),
	offsetof(VkPresentInfoKHR, swapchainCount),
	offsetof(VkPresentInfoKHR, pSwapchains),
	offsetof(VkPresentInfoKHR, pImageIndices),
	offsetof(VkPresentInfoKHR, pResults),
};

static size_t vkw_offset(int i) {
	return vkw_offsets[i];
}
*/
import "C"

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

type layout struct {
	name string
	go_  uintptr
	c    uintptr
}

func layouts() []layout {
	return []layout{
		{"Offset2D", unsafe.Sizeof(native.Offset2D{}), C.sizeof_VkOffset2D},
		{"Offset3D", unsafe.Sizeof(native.Offset3D{}), C.sizeof_VkOffset3D},
		{"Extent2D", unsafe.Sizeof(native.Extent2D{}), C.sizeof_VkExtent2D},
		{"Extent3D", unsafe.Sizeof(native.Extent3D{}), C.sizeof_VkExtent3D},
		{"Rect2D", unsafe.Sizeof(native.Rect2D{}), C.sizeof_VkRect2D},
		{"Viewport", unsafe.Sizeof(native.Viewport{}), C.sizeof_VkViewport},
		{"ApplicationInfo", unsafe.Sizeof(native.ApplicationInfo{}), C.sizeof_VkApplicationInfo},
		{"InstanceCreateInfo", unsafe.Sizeof(native.InstanceCreateInfo{}), C.sizeof_VkInstanceCreateInfo},
		{"AllocationCallbacks", unsafe.Sizeof(native.AllocationCallbacks{}), C.sizeof_VkAllocationCallbacks},
		{"LayerProperties", unsafe.Sizeof(native.LayerProperties{}), C.sizeof_VkLayerProperties},
		{"ExtensionProperties", unsafe.Sizeof(native.ExtensionProperties{}), C.sizeof_VkExtensionProperties},
		{"PhysicalDeviceLimits", unsafe.Sizeof(native.PhysicalDeviceLimits{}), C.sizeof_VkPhysicalDeviceLimits},
		{"PhysicalDeviceSparseProperties", unsafe.Sizeof(native.PhysicalDeviceSparseProperties{}), C.sizeof_VkPhysicalDeviceSparseProperties},
		{"PhysicalDeviceProperties", unsafe.Sizeof(native.PhysicalDeviceProperties{}), C.sizeof_VkPhysicalDeviceProperties},
		{"PhysicalDeviceFeatures", unsafe.Sizeof(native.PhysicalDeviceFeatures{}), C.sizeof_VkPhysicalDeviceFeatures},
		{"QueueFamilyProperties", unsafe.Sizeof(native.QueueFamilyProperties{}), C.sizeof_VkQueueFamilyProperties},
		{"MemoryType", unsafe.Sizeof(native.MemoryType{}), C.sizeof_VkMemoryType},
		{"MemoryHeap", unsafe.Sizeof(native.MemoryHeap{}), C.sizeof_VkMemoryHeap},
		{"PhysicalDeviceMemoryProperties", unsafe.Sizeof(native.PhysicalDeviceMemoryProperties{}), C.sizeof_VkPhysicalDeviceMemoryProperties},
		{"FormatProperties", unsafe.Sizeof(native.FormatProperties{}), C.sizeof_VkFormatProperties},
		{"DeviceQueueCreateInfo", unsafe.Sizeof(native.DeviceQueueCreateInfo{}), C.sizeof_VkDeviceQueueCreateInfo},
		{"DeviceCreateInfo", unsafe.Sizeof(native.DeviceCreateInfo{}), C.sizeof_VkDeviceCreateInfo},
		{"SubmitInfo", unsafe.Sizeof(native.SubmitInfo{}), C.sizeof_VkSubmitInfo},
		{"FenceCreateInfo", unsafe.Sizeof(native.FenceCreateInfo{}), C.sizeof_VkFenceCreateInfo},
		{"SemaphoreCreateInfo", unsafe.Sizeof(native.SemaphoreCreateInfo{}), C.sizeof_VkSemaphoreCreateInfo},
		{"EventCreateInfo", unsafe.Sizeof(native.EventCreateInfo{}), C.sizeof_VkEventCreateInfo},
		{"MemoryAllocateInfo", unsafe.Sizeof(native.MemoryAllocateInfo{}), C.sizeof_VkMemoryAllocateInfo},
		{"MappedMemoryRange", unsafe.Sizeof(native.MappedMemoryRange{}), C.sizeof_VkMappedMemoryRange},
		{"MemoryRequirements", unsafe.Sizeof(native.MemoryRequirements{}), C.sizeof_VkMemoryRequirements},
		{"BufferCreateInfo", unsafe.Sizeof(native.BufferCreateInfo{}), C.sizeof_VkBufferCreateInfo},
		{"ImageCreateInfo", unsafe.Sizeof(native.ImageCreateInfo{}), C.sizeof_VkImageCreateInfo},
		{"ComponentMapping", unsafe.Sizeof(native.ComponentMapping{}), C.sizeof_VkComponentMapping},
		{"ImageSubresourceRange", unsafe.Sizeof(native.ImageSubresourceRange{}), C.sizeof_VkImageSubresourceRange},
		{"ImageSubresourceLayers", unsafe.Sizeof(native.ImageSubresourceLayers{}), C.sizeof_VkImageSubresourceLayers},
		{"ImageViewCreateInfo", unsafe.Sizeof(native.ImageViewCreateInfo{}), C.sizeof_VkImageViewCreateInfo},
		{"ShaderModuleCreateInfo", unsafe.Sizeof(native.ShaderModuleCreateInfo{}), C.sizeof_VkShaderModuleCreateInfo},
		{"CommandPoolCreateInfo", unsafe.Sizeof(native.CommandPoolCreateInfo{}), C.sizeof_VkCommandPoolCreateInfo},
		{"CommandBufferAllocateInfo", unsafe.Sizeof(native.CommandBufferAllocateInfo{}), C.sizeof_VkCommandBufferAllocateInfo},
		{"CommandBufferInheritanceInfo", unsafe.Sizeof(native.CommandBufferInheritanceInfo{}), C.sizeof_VkCommandBufferInheritanceInfo},
		{"CommandBufferBeginInfo", unsafe.Sizeof(native.CommandBufferBeginInfo{}), C.sizeof_VkCommandBufferBeginInfo},
		{"BufferCopy", unsafe.Sizeof(native.BufferCopy{}), C.sizeof_VkBufferCopy},
		{"BufferImageCopy", unsafe.Sizeof(native.BufferImageCopy{}), C.sizeof_VkBufferImageCopy},
		{"MemoryBarrier", unsafe.Sizeof(native.MemoryBarrier{}), C.sizeof_VkMemoryBarrier},
		{"BufferMemoryBarrier", unsafe.Sizeof(native.BufferMemoryBarrier{}), C.sizeof_VkBufferMemoryBarrier},
		{"ImageMemoryBarrier", unsafe.Sizeof(native.ImageMemoryBarrier{}), C.sizeof_VkImageMemoryBarrier},
		{"RenderingAttachmentInfo", unsafe.Sizeof(native.RenderingAttachmentInfo{}), C.sizeof_VkRenderingAttachmentInfo},
		{"RenderingInfo", unsafe.Sizeof(native.RenderingInfo{}), C.sizeof_VkRenderingInfo},
		{"AttachmentDescription", unsafe.Sizeof(native.AttachmentDescription{}), C.sizeof_VkAttachmentDescription},
		{"AttachmentReference", unsafe.Sizeof(native.AttachmentReference{}), C.sizeof_VkAttachmentReference},
		{"SubpassDescription", unsafe.Sizeof(native.SubpassDescription{}), C.sizeof_VkSubpassDescription},
		{"SubpassDependency", unsafe.Sizeof(native.SubpassDependency{}), C.sizeof_VkSubpassDependency},
		{"RenderPassCreateInfo", unsafe.Sizeof(native.RenderPassCreateInfo{}), C.sizeof_VkRenderPassCreateInfo},
		{"FramebufferCreateInfo", unsafe.Sizeof(native.FramebufferCreateInfo{}), C.sizeof_VkFramebufferCreateInfo},
		{"RenderPassBeginInfo", unsafe.Sizeof(native.RenderPassBeginInfo{}), C.sizeof_VkRenderPassBeginInfo},
		{"DescriptorSetLayoutBinding", unsafe.Sizeof(native.DescriptorSetLayoutBinding{}), C.sizeof_VkDescriptorSetLayoutBinding},
		{"DescriptorSetLayoutCreateInfo", unsafe.Sizeof(native.DescriptorSetLayoutCreateInfo{}), C.sizeof_VkDescriptorSetLayoutCreateInfo},
		{"DescriptorPoolSize", unsafe.Sizeof(native.DescriptorPoolSize{}), C.sizeof_VkDescriptorPoolSize},
		{"DescriptorPoolCreateInfo", unsafe.Sizeof(native.DescriptorPoolCreateInfo{}), C.sizeof_VkDescriptorPoolCreateInfo},
		{"DescriptorSetAllocateInfo", unsafe.Sizeof(native.DescriptorSetAllocateInfo{}), C.sizeof_VkDescriptorSetAllocateInfo},
		{"DescriptorBufferInfo", unsafe.Sizeof(native.DescriptorBufferInfo{}), C.sizeof_VkDescriptorBufferInfo},
		{"DescriptorImageInfo", unsafe.Sizeof(native.DescriptorImageInfo{}), C.sizeof_VkDescriptorImageInfo},
		{"WriteDescriptorSet", unsafe.Sizeof(native.WriteDescriptorSet{}), C.sizeof_VkWriteDescriptorSet},
		{"PushConstantRange", unsafe.Sizeof(native.PushConstantRange{}), C.sizeof_VkPushConstantRange},
		{"PipelineLayoutCreateInfo", unsafe.Sizeof(native.PipelineLayoutCreateInfo{}), C.sizeof_VkPipelineLayoutCreateInfo},
		{"SpecializationMapEntry", unsafe.Sizeof(native.SpecializationMapEntry{}), C.sizeof_VkSpecializationMapEntry},
		{"SpecializationInfo", unsafe.Sizeof(native.SpecializationInfo{}), C.sizeof_VkSpecializationInfo},
		{"PipelineShaderStageCreateInfo", unsafe.Sizeof(native.PipelineShaderStageCreateInfo{}), C.sizeof_VkPipelineShaderStageCreateInfo},
		{"ComputePipelineCreateInfo", unsafe.Sizeof(native.ComputePipelineCreateInfo{}), C.sizeof_VkComputePipelineCreateInfo},
		{"VertexInputBindingDescription", unsafe.Sizeof(native.VertexInputBindingDescription{}), C.sizeof_VkVertexInputBindingDescription},
		{"VertexInputAttributeDescription", unsafe.Sizeof(native.VertexInputAttributeDescription{}), C.sizeof_VkVertexInputAttributeDescription},
		{"PipelineVertexInputStateCreateInfo", unsafe.Sizeof(native.PipelineVertexInputStateCreateInfo{}), C.sizeof_VkPipelineVertexInputStateCreateInfo},
		{"PipelineInputAssemblyStateCreateInfo", unsafe.Sizeof(native.PipelineInputAssemblyStateCreateInfo{}), C.sizeof_VkPipelineInputAssemblyStateCreateInfo},
		{"PipelineTessellationStateCreateInfo", unsafe.Sizeof(native.PipelineTessellationStateCreateInfo{}), C.sizeof_VkPipelineTessellationStateCreateInfo},
		{"PipelineViewportStateCreateInfo", unsafe.Sizeof(native.PipelineViewportStateCreateInfo{}), C.sizeof_VkPipelineViewportStateCreateInfo},
		{"PipelineRasterizationStateCreateInfo", unsafe.Sizeof(native.PipelineRasterizationStateCreateInfo{}), C.sizeof_VkPipelineRasterizationStateCreateInfo},
		{"PipelineMultisampleStateCreateInfo", unsafe.Sizeof(native.PipelineMultisampleStateCreateInfo{}), C.sizeof_VkPipelineMultisampleStateCreateInfo},
		{"StencilOpState", unsafe.Sizeof(native.StencilOpState{}), C.sizeof_VkStencilOpState},
		{"PipelineDepthStencilStateCreateInfo", unsafe.Sizeof(native.PipelineDepthStencilStateCreateInfo{}), C.sizeof_VkPipelineDepthStencilStateCreateInfo},
		{"PipelineColorBlendAttachmentState", unsafe.Sizeof(native.PipelineColorBlendAttachmentState{}), C.sizeof_VkPipelineColorBlendAttachmentState},
		{"PipelineColorBlendStateCreateInfo", unsafe.Sizeof(native.PipelineColorBlendStateCreateInfo{}), C.sizeof_VkPipelineColorBlendStateCreateInfo},
		{"PipelineDynamicStateCreateInfo", unsafe.Sizeof(native.PipelineDynamicStateCreateInfo{}), C.sizeof_VkPipelineDynamicStateCreateInfo},
		{"GraphicsPipelineCreateInfo", unsafe.Sizeof(native.GraphicsPipelineCreateInfo{}), C.sizeof_VkGraphicsPipelineCreateInfo},
		{"PipelineRenderingCreateInfo", unsafe.Sizeof(native.PipelineRenderingCreateInfo{}), C.sizeof_VkPipelineRenderingCreateInfo},
		{"SamplerCreateInfo", unsafe.Sizeof(native.SamplerCreateInfo{}), C.sizeof_VkSamplerCreateInfo},
		{"SparseMemoryBind", unsafe.Sizeof(native.SparseMemoryBind{}), C.sizeof_VkSparseMemoryBind},
		{"SparseBufferMemoryBindInfo", unsafe.Sizeof(native.SparseBufferMemoryBindInfo{}), C.sizeof_VkSparseBufferMemoryBindInfo},
		{"SparseImageOpaqueMemoryBindInfo", unsafe.Sizeof(native.SparseImageOpaqueMemoryBindInfo{}), C.sizeof_VkSparseImageOpaqueMemoryBindInfo},
		{"ImageSubresource", unsafe.Sizeof(native.ImageSubresource{}), C.sizeof_VkImageSubresource},
		{"SparseImageMemoryBind", unsafe.Sizeof(native.SparseImageMemoryBind{}), C.sizeof_VkSparseImageMemoryBind},
		{"SparseImageMemoryBindInfo", unsafe.Sizeof(native.SparseImageMemoryBindInfo{}), C.sizeof_VkSparseImageMemoryBindInfo},
		{"BindSparseInfo", unsafe.Sizeof(native.BindSparseInfo{}), C.sizeof_VkBindSparseInfo},
		{"SparseImageFormatProperties", unsafe.Sizeof(native.SparseImageFormatProperties{}), C.sizeof_VkSparseImageFormatProperties},
		{"SparseImageMemoryRequirements", unsafe.Sizeof(native.SparseImageMemoryRequirements{}), C.sizeof_VkSparseImageMemoryRequirements},
		{"SurfaceCapabilitiesKHR", unsafe.Sizeof(native.SurfaceCapabilitiesKHR{}), C.sizeof_VkSurfaceCapabilitiesKHR},
		{"SurfaceFormatKHR", unsafe.Sizeof(native.SurfaceFormatKHR{}), C.sizeof_VkSurfaceFormatKHR},
		{"SwapchainCreateInfoKHR", unsafe.Sizeof(native.SwapchainCreateInfoKHR{}), C.sizeof_VkSwapchainCreateInfoKHR},
		{"PresentInfoKHR", unsafe.Sizeof(native.PresentInfoKHR{}), C.sizeof_VkPresentInfoKHR},
		{"ClearColorValue", unsafe.Sizeof(native.ClearColorValue{}), C.sizeof_VkClearColorValue},
		{"ClearDepthStencilValue", unsafe.Sizeof(native.ClearDepthStencilValue{}), C.sizeof_VkClearDepthStencilValue},
		{"ClearValue", unsafe.Sizeof(native.ClearValue{}), C.sizeof_VkClearValue},
	}
}

type offset struct {
	name string
	go_  uintptr
	c    uintptr
}

// offsets pairs the position of every native struct field with offsetof in C.
func offsets() []offset {
	return []offset{
		{"Offset2D.x", unsafe.Offsetof(native.Offset2D{}.X), uintptr(C.vkw_offset(0))},
		{"Offset2D.y", unsafe.Offsetof(native.Offset2D{}.Y), uintptr(C.vkw_offset(1))},
		{"Offset3D.x", unsafe.Offsetof(native.Offset3D{}.X), uintptr(C.vkw_offset(2))},
		{"Offset3D.y", unsafe.Offsetof(native.Offset3D{}.Y), uintptr(C.vkw_offset(3))},
		{"Offset3D.z", unsafe.Offsetof(native.Offset3D{}.Z), uintptr(C.vkw_offset(4))},
		{"Extent2D.width", unsafe.Offsetof(native.Extent2D{}.Width), uintptr(C.vkw_offset(5))},
		{"Extent2D.height", unsafe.Offsetof(native.Extent2D{}.Height), uintptr(C.vkw_offset(6))},
		{"Extent3D.width", unsafe.Offsetof(native.Extent3D{}.Width), uintptr(C.vkw_offset(7))},
		{"Extent3D.height", unsafe.Offsetof(native.Extent3D{}.Height), uintptr(C.vkw_offset(8))},
		{"Extent3D.depth", unsafe.Offsetof(native.Extent3D{}.Depth), uintptr(C.vkw_offset(9))},
		{"Rect2D.offset", unsafe.Offsetof(native.Rect2D{}.Offset), uintptr(C.vkw_offset(10))},
		{"Rect2D.extent", unsafe.Offsetof(native.Rect2D{}.Extent), uintptr(C.vkw_offset(11))},
		{"Viewport.x", unsafe.Offsetof(native.Viewport{}.X), uintptr(C.vkw_offset(12))},
		{"Viewport.y", unsafe.Offsetof(native.Viewport{}.Y), uintptr(C.vkw_offset(13))},
		{"Viewport.width", unsafe.Offsetof(native.Viewport{}.Width), uintptr(C.vkw_offset(14))},
		{"Viewport.height", unsafe.Offsetof(native.Viewport{}.Height), uintptr(C.vkw_offset(15))},
		{"Viewport.minDepth", unsafe.Offsetof(native.Viewport{}.MinDepth), uintptr(C.vkw_offset(16))},
		{"Viewport.maxDepth", unsafe.Offsetof(native.Viewport{}.MaxDepth), uintptr(C.vkw_offset(17))},
		{"ApplicationInfo.sType", unsafe.Offsetof(native.ApplicationInfo{}.SType), uintptr(C.vkw_offset(18))},
		{"ApplicationInfo.pNext", unsafe.Offsetof(native.ApplicationInfo{}.PNext), uintptr(C.vkw_offset(19))},
		{"ApplicationInfo.pApplicationName", unsafe.Offsetof(native.ApplicationInfo{}.PApplicationName), uintptr(C.vkw_offset(20))},
		{"ApplicationInfo.applicationVersion", unsafe.Offsetof(native.ApplicationInfo{}.ApplicationVersion), uintptr(C.vkw_offset(21))},
		{"ApplicationInfo.pEngineName", unsafe.Offsetof(native.ApplicationInfo{}.PEngineName), uintptr(C.vkw_offset(22))},
		{"ApplicationInfo.engineVersion", unsafe.Offsetof(native.ApplicationInfo{}.EngineVersion), uintptr(C.vkw_offset(23))},
		{"ApplicationInfo.apiVersion", unsafe.Offsetof(native.ApplicationInfo{}.ApiVersion), uintptr(C.vkw_offset(24))},
		{"InstanceCreateInfo.sType", unsafe.Offsetof(native.InstanceCreateInfo{}.SType), uintptr(C.vkw_offset(25))},
		{"InstanceCreateInfo.pNext", unsafe.Offsetof(native.InstanceCreateInfo{}.PNext), uintptr(C.vkw_offset(26))},
		{"InstanceCreateInfo.flags", unsafe.Offsetof(native.InstanceCreateInfo{}.Flags), uintptr(C.vkw_offset(27))},
		{"InstanceCreateInfo.pApplicationInfo", unsafe.Offsetof(native.InstanceCreateInfo{}.PApplicationInfo), uintptr(C.vkw_offset(28))},
		{"InstanceCreateInfo.enabledLayerCount", unsafe.Offsetof(native.InstanceCreateInfo{}.EnabledLayerCount), uintptr(C.vkw_offset(29))},
		{"InstanceCreateInfo.ppEnabledLayerNames", unsafe.Offsetof(native.InstanceCreateInfo{}.PpEnabledLayerNames), uintptr(C.vkw_offset(30))},
		{"InstanceCreateInfo.enabledExtensionCount", unsafe.Offsetof(native.InstanceCreateInfo{}.EnabledExtensionCount), uintptr(C.vkw_offset(31))},
		{"InstanceCreateInfo.ppEnabledExtensionNames", unsafe.Offsetof(native.InstanceCreateInfo{}.PpEnabledExtensionNames), uintptr(C.vkw_offset(32))},
		{"AllocationCallbacks.pUserData", unsafe.Offsetof(native.AllocationCallbacks{}.PUserData), uintptr(C.vkw_offset(33))},
		{"AllocationCallbacks.pfnAllocation", unsafe.Offsetof(native.AllocationCallbacks{}.PfnAllocation), uintptr(C.vkw_offset(34))},
		{"AllocationCallbacks.pfnReallocation", unsafe.Offsetof(native.AllocationCallbacks{}.PfnReallocation), uintptr(C.vkw_offset(35))},
		{"AllocationCallbacks.pfnFree", unsafe.Offsetof(native.AllocationCallbacks{}.PfnFree), uintptr(C.vkw_offset(36))},
		{"AllocationCallbacks.pfnInternalAllocation", unsafe.Offsetof(native.AllocationCallbacks{}.PfnInternalAllocation), uintptr(C.vkw_offset(37))},
		{"AllocationCallbacks.pfnInternalFree", unsafe.Offsetof(native.AllocationCallbacks{}.PfnInternalFree), uintptr(C.vkw_offset(38))},
		{"LayerProperties.layerName", unsafe.Offsetof(native.LayerProperties{}.LayerName), uintptr(C.vkw_offset(39))},
		{"LayerProperties.specVersion", unsafe.Offsetof(native.LayerProperties{}.SpecVersion), uintptr(C.vkw_offset(40))},
		{"LayerProperties.implementationVersion", unsafe.Offsetof(native.LayerProperties{}.ImplementationVersion), uintptr(C.vkw_offset(41))},
		{"LayerProperties.description", unsafe.Offsetof(native.LayerProperties{}.Description), uintptr(C.vkw_offset(42))},
		{"ExtensionProperties.extensionName", unsafe.Offsetof(native.ExtensionProperties{}.ExtensionName), uintptr(C.vkw_offset(43))},
		{"ExtensionProperties.specVersion", unsafe.Offsetof(native.ExtensionProperties{}.SpecVersion), uintptr(C.vkw_offset(44))},
		{"PhysicalDeviceLimits.maxImageDimension1D", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxImageDimension1D), uintptr(C.vkw_offset(45))},
		{"PhysicalDeviceLimits.maxImageDimension2D", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxImageDimension2D), uintptr(C.vkw_offset(46))},
		{"PhysicalDeviceLimits.maxImageDimension3D", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxImageDimension3D), uintptr(C.vkw_offset(47))},
		{"PhysicalDeviceLimits.maxImageDimensionCube", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxImageDimensionCube), uintptr(C.vkw_offset(48))},
		{"PhysicalDeviceLimits.maxImageArrayLayers", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxImageArrayLayers), uintptr(C.vkw_offset(49))},
		{"PhysicalDeviceLimits.maxTexelBufferElements", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxTexelBufferElements), uintptr(C.vkw_offset(50))},
		{"PhysicalDeviceLimits.maxUniformBufferRange", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxUniformBufferRange), uintptr(C.vkw_offset(51))},
		{"PhysicalDeviceLimits.maxStorageBufferRange", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxStorageBufferRange), uintptr(C.vkw_offset(52))},
		{"PhysicalDeviceLimits.maxPushConstantsSize", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxPushConstantsSize), uintptr(C.vkw_offset(53))},
		{"PhysicalDeviceLimits.maxMemoryAllocationCount", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxMemoryAllocationCount), uintptr(C.vkw_offset(54))},
		{"PhysicalDeviceLimits.maxSamplerAllocationCount", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxSamplerAllocationCount), uintptr(C.vkw_offset(55))},
		{"PhysicalDeviceLimits.bufferImageGranularity", unsafe.Offsetof(native.PhysicalDeviceLimits{}.BufferImageGranularity), uintptr(C.vkw_offset(56))},
		{"PhysicalDeviceLimits.sparseAddressSpaceSize", unsafe.Offsetof(native.PhysicalDeviceLimits{}.SparseAddressSpaceSize), uintptr(C.vkw_offset(57))},
		{"PhysicalDeviceLimits.maxBoundDescriptorSets", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxBoundDescriptorSets), uintptr(C.vkw_offset(58))},
		{"PhysicalDeviceLimits.maxPerStageDescriptorSamplers", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxPerStageDescriptorSamplers), uintptr(C.vkw_offset(59))},
		{"PhysicalDeviceLimits.maxPerStageDescriptorUniformBuffers", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxPerStageDescriptorUniformBuffers), uintptr(C.vkw_offset(60))},
		{"PhysicalDeviceLimits.maxPerStageDescriptorStorageBuffers", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxPerStageDescriptorStorageBuffers), uintptr(C.vkw_offset(61))},
		{"PhysicalDeviceLimits.maxPerStageDescriptorSampledImages", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxPerStageDescriptorSampledImages), uintptr(C.vkw_offset(62))},
		{"PhysicalDeviceLimits.maxPerStageDescriptorStorageImages", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxPerStageDescriptorStorageImages), uintptr(C.vkw_offset(63))},
		{"PhysicalDeviceLimits.maxPerStageDescriptorInputAttachments", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxPerStageDescriptorInputAttachments), uintptr(C.vkw_offset(64))},
		{"PhysicalDeviceLimits.maxPerStageResources", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxPerStageResources), uintptr(C.vkw_offset(65))},
		{"PhysicalDeviceLimits.maxDescriptorSetSamplers", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxDescriptorSetSamplers), uintptr(C.vkw_offset(66))},
		{"PhysicalDeviceLimits.maxDescriptorSetUniformBuffers", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxDescriptorSetUniformBuffers), uintptr(C.vkw_offset(67))},
		{"PhysicalDeviceLimits.maxDescriptorSetUniformBuffersDynamic", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxDescriptorSetUniformBuffersDynamic), uintptr(C.vkw_offset(68))},
		{"PhysicalDeviceLimits.maxDescriptorSetStorageBuffers", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxDescriptorSetStorageBuffers), uintptr(C.vkw_offset(69))},
		{"PhysicalDeviceLimits.maxDescriptorSetStorageBuffersDynamic", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxDescriptorSetStorageBuffersDynamic), uintptr(C.vkw_offset(70))},
		{"PhysicalDeviceLimits.maxDescriptorSetSampledImages", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxDescriptorSetSampledImages), uintptr(C.vkw_offset(71))},
		{"PhysicalDeviceLimits.maxDescriptorSetStorageImages", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxDescriptorSetStorageImages), uintptr(C.vkw_offset(72))},
		{"PhysicalDeviceLimits.maxDescriptorSetInputAttachments", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxDescriptorSetInputAttachments), uintptr(C.vkw_offset(73))},
		{"PhysicalDeviceLimits.maxVertexInputAttributes", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxVertexInputAttributes), uintptr(C.vkw_offset(74))},
		{"PhysicalDeviceLimits.maxVertexInputBindings", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxVertexInputBindings), uintptr(C.vkw_offset(75))},
		{"PhysicalDeviceLimits.maxVertexInputAttributeOffset", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxVertexInputAttributeOffset), uintptr(C.vkw_offset(76))},
		{"PhysicalDeviceLimits.maxVertexInputBindingStride", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxVertexInputBindingStride), uintptr(C.vkw_offset(77))},
		{"PhysicalDeviceLimits.maxVertexOutputComponents", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxVertexOutputComponents), uintptr(C.vkw_offset(78))},
		{"PhysicalDeviceLimits.maxTessellationGenerationLevel", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxTessellationGenerationLevel), uintptr(C.vkw_offset(79))},
		{"PhysicalDeviceLimits.maxTessellationPatchSize", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxTessellationPatchSize), uintptr(C.vkw_offset(80))},
		{"PhysicalDeviceLimits.maxTessellationControlPerVertexInputComponents", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxTessellationControlPerVertexInputComponents), uintptr(C.vkw_offset(81))},
		{"PhysicalDeviceLimits.maxTessellationControlPerVertexOutputComponents", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxTessellationControlPerVertexOutputComponents), uintptr(C.vkw_offset(82))},
		{"PhysicalDeviceLimits.maxTessellationControlPerPatchOutputComponents", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxTessellationControlPerPatchOutputComponents), uintptr(C.vkw_offset(83))},
		{"PhysicalDeviceLimits.maxTessellationControlTotalOutputComponents", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxTessellationControlTotalOutputComponents), uintptr(C.vkw_offset(84))},
		{"PhysicalDeviceLimits.maxTessellationEvaluationInputComponents", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxTessellationEvaluationInputComponents), uintptr(C.vkw_offset(85))},
		{"PhysicalDeviceLimits.maxTessellationEvaluationOutputComponents", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxTessellationEvaluationOutputComponents), uintptr(C.vkw_offset(86))},
		{"PhysicalDeviceLimits.maxGeometryShaderInvocations", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxGeometryShaderInvocations), uintptr(C.vkw_offset(87))},
		{"PhysicalDeviceLimits.maxGeometryInputComponents", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxGeometryInputComponents), uintptr(C.vkw_offset(88))},
		{"PhysicalDeviceLimits.maxGeometryOutputComponents", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxGeometryOutputComponents), uintptr(C.vkw_offset(89))},
		{"PhysicalDeviceLimits.maxGeometryOutputVertices", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxGeometryOutputVertices), uintptr(C.vkw_offset(90))},
		{"PhysicalDeviceLimits.maxGeometryTotalOutputComponents", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxGeometryTotalOutputComponents), uintptr(C.vkw_offset(91))},
		{"PhysicalDeviceLimits.maxFragmentInputComponents", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxFragmentInputComponents), uintptr(C.vkw_offset(92))},
		{"PhysicalDeviceLimits.maxFragmentOutputAttachments", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxFragmentOutputAttachments), uintptr(C.vkw_offset(93))},
		{"PhysicalDeviceLimits.maxFragmentDualSrcAttachments", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxFragmentDualSrcAttachments), uintptr(C.vkw_offset(94))},
		{"PhysicalDeviceLimits.maxFragmentCombinedOutputResources", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxFragmentCombinedOutputResources), uintptr(C.vkw_offset(95))},
		{"PhysicalDeviceLimits.maxComputeSharedMemorySize", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxComputeSharedMemorySize), uintptr(C.vkw_offset(96))},
		{"PhysicalDeviceLimits.maxComputeWorkGroupCount", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxComputeWorkGroupCount), uintptr(C.vkw_offset(97))},
		{"PhysicalDeviceLimits.maxComputeWorkGroupInvocations", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxComputeWorkGroupInvocations), uintptr(C.vkw_offset(98))},
		{"PhysicalDeviceLimits.maxComputeWorkGroupSize", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxComputeWorkGroupSize), uintptr(C.vkw_offset(99))},
		{"PhysicalDeviceLimits.subPixelPrecisionBits", unsafe.Offsetof(native.PhysicalDeviceLimits{}.SubPixelPrecisionBits), uintptr(C.vkw_offset(100))},
		{"PhysicalDeviceLimits.subTexelPrecisionBits", unsafe.Offsetof(native.PhysicalDeviceLimits{}.SubTexelPrecisionBits), uintptr(C.vkw_offset(101))},
		{"PhysicalDeviceLimits.mipmapPrecisionBits", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MipmapPrecisionBits), uintptr(C.vkw_offset(102))},
		{"PhysicalDeviceLimits.maxDrawIndexedIndexValue", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxDrawIndexedIndexValue), uintptr(C.vkw_offset(103))},
		{"PhysicalDeviceLimits.maxDrawIndirectCount", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxDrawIndirectCount), uintptr(C.vkw_offset(104))},
		{"PhysicalDeviceLimits.maxSamplerLodBias", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxSamplerLodBias), uintptr(C.vkw_offset(105))},
		{"PhysicalDeviceLimits.maxSamplerAnisotropy", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxSamplerAnisotropy), uintptr(C.vkw_offset(106))},
		{"PhysicalDeviceLimits.maxViewports", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxViewports), uintptr(C.vkw_offset(107))},
		{"PhysicalDeviceLimits.maxViewportDimensions", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxViewportDimensions), uintptr(C.vkw_offset(108))},
		{"PhysicalDeviceLimits.viewportBoundsRange", unsafe.Offsetof(native.PhysicalDeviceLimits{}.ViewportBoundsRange), uintptr(C.vkw_offset(109))},
		{"PhysicalDeviceLimits.viewportSubPixelBits", unsafe.Offsetof(native.PhysicalDeviceLimits{}.ViewportSubPixelBits), uintptr(C.vkw_offset(110))},
		{"PhysicalDeviceLimits.minMemoryMapAlignment", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MinMemoryMapAlignment), uintptr(C.vkw_offset(111))},
		{"PhysicalDeviceLimits.minTexelBufferOffsetAlignment", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MinTexelBufferOffsetAlignment), uintptr(C.vkw_offset(112))},
		{"PhysicalDeviceLimits.minUniformBufferOffsetAlignment", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MinUniformBufferOffsetAlignment), uintptr(C.vkw_offset(113))},
		{"PhysicalDeviceLimits.minStorageBufferOffsetAlignment", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MinStorageBufferOffsetAlignment), uintptr(C.vkw_offset(114))},
		{"PhysicalDeviceLimits.minTexelOffset", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MinTexelOffset), uintptr(C.vkw_offset(115))},
		{"PhysicalDeviceLimits.maxTexelOffset", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxTexelOffset), uintptr(C.vkw_offset(116))},
		{"PhysicalDeviceLimits.minTexelGatherOffset", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MinTexelGatherOffset), uintptr(C.vkw_offset(117))},
		{"PhysicalDeviceLimits.maxTexelGatherOffset", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxTexelGatherOffset), uintptr(C.vkw_offset(118))},
		{"PhysicalDeviceLimits.minInterpolationOffset", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MinInterpolationOffset), uintptr(C.vkw_offset(119))},
		{"PhysicalDeviceLimits.maxInterpolationOffset", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxInterpolationOffset), uintptr(C.vkw_offset(120))},
		{"PhysicalDeviceLimits.subPixelInterpolationOffsetBits", unsafe.Offsetof(native.PhysicalDeviceLimits{}.SubPixelInterpolationOffsetBits), uintptr(C.vkw_offset(121))},
		{"PhysicalDeviceLimits.maxFramebufferWidth", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxFramebufferWidth), uintptr(C.vkw_offset(122))},
		{"PhysicalDeviceLimits.maxFramebufferHeight", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxFramebufferHeight), uintptr(C.vkw_offset(123))},
		{"PhysicalDeviceLimits.maxFramebufferLayers", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxFramebufferLayers), uintptr(C.vkw_offset(124))},
		{"PhysicalDeviceLimits.framebufferColorSampleCounts", unsafe.Offsetof(native.PhysicalDeviceLimits{}.FramebufferColorSampleCounts), uintptr(C.vkw_offset(125))},
		{"PhysicalDeviceLimits.framebufferDepthSampleCounts", unsafe.Offsetof(native.PhysicalDeviceLimits{}.FramebufferDepthSampleCounts), uintptr(C.vkw_offset(126))},
		{"PhysicalDeviceLimits.framebufferStencilSampleCounts", unsafe.Offsetof(native.PhysicalDeviceLimits{}.FramebufferStencilSampleCounts), uintptr(C.vkw_offset(127))},
		{"PhysicalDeviceLimits.framebufferNoAttachmentsSampleCounts", unsafe.Offsetof(native.PhysicalDeviceLimits{}.FramebufferNoAttachmentsSampleCounts), uintptr(C.vkw_offset(128))},
		{"PhysicalDeviceLimits.maxColorAttachments", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxColorAttachments), uintptr(C.vkw_offset(129))},
		{"PhysicalDeviceLimits.sampledImageColorSampleCounts", unsafe.Offsetof(native.PhysicalDeviceLimits{}.SampledImageColorSampleCounts), uintptr(C.vkw_offset(130))},
		{"PhysicalDeviceLimits.sampledImageIntegerSampleCounts", unsafe.Offsetof(native.PhysicalDeviceLimits{}.SampledImageIntegerSampleCounts), uintptr(C.vkw_offset(131))},
		{"PhysicalDeviceLimits.sampledImageDepthSampleCounts", unsafe.Offsetof(native.PhysicalDeviceLimits{}.SampledImageDepthSampleCounts), uintptr(C.vkw_offset(132))},
		{"PhysicalDeviceLimits.sampledImageStencilSampleCounts", unsafe.Offsetof(native.PhysicalDeviceLimits{}.SampledImageStencilSampleCounts), uintptr(C.vkw_offset(133))},
		{"PhysicalDeviceLimits.storageImageSampleCounts", unsafe.Offsetof(native.PhysicalDeviceLimits{}.StorageImageSampleCounts), uintptr(C.vkw_offset(134))},
		{"PhysicalDeviceLimits.maxSampleMaskWords", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxSampleMaskWords), uintptr(C.vkw_offset(135))},
		{"PhysicalDeviceLimits.timestampComputeAndGraphics", unsafe.Offsetof(native.PhysicalDeviceLimits{}.TimestampComputeAndGraphics), uintptr(C.vkw_offset(136))},
		{"PhysicalDeviceLimits.timestampPeriod", unsafe.Offsetof(native.PhysicalDeviceLimits{}.TimestampPeriod), uintptr(C.vkw_offset(137))},
		{"PhysicalDeviceLimits.maxClipDistances", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxClipDistances), uintptr(C.vkw_offset(138))},
		{"PhysicalDeviceLimits.maxCullDistances", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxCullDistances), uintptr(C.vkw_offset(139))},
		{"PhysicalDeviceLimits.maxCombinedClipAndCullDistances", unsafe.Offsetof(native.PhysicalDeviceLimits{}.MaxCombinedClipAndCullDistances), uintptr(C.vkw_offset(140))},
		{"PhysicalDeviceLimits.discreteQueuePriorities", unsafe.Offsetof(native.PhysicalDeviceLimits{}.DiscreteQueuePriorities), uintptr(C.vkw_offset(141))},
		{"PhysicalDeviceLimits.pointSizeRange", unsafe.Offsetof(native.PhysicalDeviceLimits{}.PointSizeRange), uintptr(C.vkw_offset(142))},
		{"PhysicalDeviceLimits.lineWidthRange", unsafe.Offsetof(native.PhysicalDeviceLimits{}.LineWidthRange), uintptr(C.vkw_offset(143))},
		{"PhysicalDeviceLimits.pointSizeGranularity", unsafe.Offsetof(native.PhysicalDeviceLimits{}.PointSizeGranularity), uintptr(C.vkw_offset(144))},
		{"PhysicalDeviceLimits.lineWidthGranularity", unsafe.Offsetof(native.PhysicalDeviceLimits{}.LineWidthGranularity), uintptr(C.vkw_offset(145))},
		{"PhysicalDeviceLimits.strictLines", unsafe.Offsetof(native.PhysicalDeviceLimits{}.StrictLines), uintptr(C.vkw_offset(146))},
		{"PhysicalDeviceLimits.standardSampleLocations", unsafe.Offsetof(native.PhysicalDeviceLimits{}.StandardSampleLocations), uintptr(C.vkw_offset(147))},
		{"PhysicalDeviceLimits.optimalBufferCopyOffsetAlignment", unsafe.Offsetof(native.PhysicalDeviceLimits{}.OptimalBufferCopyOffsetAlignment), uintptr(C.vkw_offset(148))},
		{"PhysicalDeviceLimits.optimalBufferCopyRowPitchAlignment", unsafe.Offsetof(native.PhysicalDeviceLimits{}.OptimalBufferCopyRowPitchAlignment), uintptr(C.vkw_offset(149))},
		{"PhysicalDeviceLimits.nonCoherentAtomSize", unsafe.Offsetof(native.PhysicalDeviceLimits{}.NonCoherentAtomSize), uintptr(C.vkw_offset(150))},
		{"PhysicalDeviceSparseProperties.residencyStandard2DBlockShape", unsafe.Offsetof(native.PhysicalDeviceSparseProperties{}.ResidencyStandard2DBlockShape), uintptr(C.vkw_offset(151))},
		{"PhysicalDeviceSparseProperties.residencyStandard2DMultisampleBlockShape", unsafe.Offsetof(native.PhysicalDeviceSparseProperties{}.ResidencyStandard2DMultisampleBlockShape), uintptr(C.vkw_offset(152))},
		{"PhysicalDeviceSparseProperties.residencyStandard3DBlockShape", unsafe.Offsetof(native.PhysicalDeviceSparseProperties{}.ResidencyStandard3DBlockShape), uintptr(C.vkw_offset(153))},
		{"PhysicalDeviceSparseProperties.residencyAlignedMipSize", unsafe.Offsetof(native.PhysicalDeviceSparseProperties{}.ResidencyAlignedMipSize), uintptr(C.vkw_offset(154))},
		{"PhysicalDeviceSparseProperties.residencyNonResidentStrict", unsafe.Offsetof(native.PhysicalDeviceSparseProperties{}.ResidencyNonResidentStrict), uintptr(C.vkw_offset(155))},
		{"PhysicalDeviceProperties.apiVersion", unsafe.Offsetof(native.PhysicalDeviceProperties{}.ApiVersion), uintptr(C.vkw_offset(156))},
		{"PhysicalDeviceProperties.driverVersion", unsafe.Offsetof(native.PhysicalDeviceProperties{}.DriverVersion), uintptr(C.vkw_offset(157))},
		{"PhysicalDeviceProperties.vendorID", unsafe.Offsetof(native.PhysicalDeviceProperties{}.VendorID), uintptr(C.vkw_offset(158))},
		{"PhysicalDeviceProperties.deviceID", unsafe.Offsetof(native.PhysicalDeviceProperties{}.DeviceID), uintptr(C.vkw_offset(159))},
		{"PhysicalDeviceProperties.deviceType", unsafe.Offsetof(native.PhysicalDeviceProperties{}.DeviceType), uintptr(C.vkw_offset(160))},
		{"PhysicalDeviceProperties.deviceName", unsafe.Offsetof(native.PhysicalDeviceProperties{}.DeviceName), uintptr(C.vkw_offset(161))},
		{"PhysicalDeviceProperties.pipelineCacheUUID", unsafe.Offsetof(native.PhysicalDeviceProperties{}.PipelineCacheUUID), uintptr(C.vkw_offset(162))},
		{"PhysicalDeviceProperties.limits", unsafe.Offsetof(native.PhysicalDeviceProperties{}.Limits), uintptr(C.vkw_offset(163))},
		{"PhysicalDeviceProperties.sparseProperties", unsafe.Offsetof(native.PhysicalDeviceProperties{}.SparseProperties), uintptr(C.vkw_offset(164))},
		{"PhysicalDeviceFeatures.robustBufferAccess", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.RobustBufferAccess), uintptr(C.vkw_offset(165))},
		{"PhysicalDeviceFeatures.fullDrawIndexUint32", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.FullDrawIndexUint32), uintptr(C.vkw_offset(166))},
		{"PhysicalDeviceFeatures.imageCubeArray", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.ImageCubeArray), uintptr(C.vkw_offset(167))},
		{"PhysicalDeviceFeatures.independentBlend", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.IndependentBlend), uintptr(C.vkw_offset(168))},
		{"PhysicalDeviceFeatures.geometryShader", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.GeometryShader), uintptr(C.vkw_offset(169))},
		{"PhysicalDeviceFeatures.tessellationShader", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.TessellationShader), uintptr(C.vkw_offset(170))},
		{"PhysicalDeviceFeatures.sampleRateShading", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.SampleRateShading), uintptr(C.vkw_offset(171))},
		{"PhysicalDeviceFeatures.dualSrcBlend", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.DualSrcBlend), uintptr(C.vkw_offset(172))},
		{"PhysicalDeviceFeatures.logicOp", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.LogicOp), uintptr(C.vkw_offset(173))},
		{"PhysicalDeviceFeatures.multiDrawIndirect", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.MultiDrawIndirect), uintptr(C.vkw_offset(174))},
		{"PhysicalDeviceFeatures.drawIndirectFirstInstance", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.DrawIndirectFirstInstance), uintptr(C.vkw_offset(175))},
		{"PhysicalDeviceFeatures.depthClamp", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.DepthClamp), uintptr(C.vkw_offset(176))},
		{"PhysicalDeviceFeatures.depthBiasClamp", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.DepthBiasClamp), uintptr(C.vkw_offset(177))},
		{"PhysicalDeviceFeatures.fillModeNonSolid", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.FillModeNonSolid), uintptr(C.vkw_offset(178))},
		{"PhysicalDeviceFeatures.depthBounds", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.DepthBounds), uintptr(C.vkw_offset(179))},
		{"PhysicalDeviceFeatures.wideLines", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.WideLines), uintptr(C.vkw_offset(180))},
		{"PhysicalDeviceFeatures.largePoints", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.LargePoints), uintptr(C.vkw_offset(181))},
		{"PhysicalDeviceFeatures.alphaToOne", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.AlphaToOne), uintptr(C.vkw_offset(182))},
		{"PhysicalDeviceFeatures.multiViewport", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.MultiViewport), uintptr(C.vkw_offset(183))},
		{"PhysicalDeviceFeatures.samplerAnisotropy", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.SamplerAnisotropy), uintptr(C.vkw_offset(184))},
		{"PhysicalDeviceFeatures.textureCompressionETC2", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.TextureCompressionETC2), uintptr(C.vkw_offset(185))},
		{"PhysicalDeviceFeatures.textureCompressionASTC_LDR", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.TextureCompressionASTCLDR), uintptr(C.vkw_offset(186))},
		{"PhysicalDeviceFeatures.textureCompressionBC", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.TextureCompressionBC), uintptr(C.vkw_offset(187))},
		{"PhysicalDeviceFeatures.occlusionQueryPrecise", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.OcclusionQueryPrecise), uintptr(C.vkw_offset(188))},
		{"PhysicalDeviceFeatures.pipelineStatisticsQuery", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.PipelineStatisticsQuery), uintptr(C.vkw_offset(189))},
		{"PhysicalDeviceFeatures.vertexPipelineStoresAndAtomics", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.VertexPipelineStoresAndAtomics), uintptr(C.vkw_offset(190))},
		{"PhysicalDeviceFeatures.fragmentStoresAndAtomics", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.FragmentStoresAndAtomics), uintptr(C.vkw_offset(191))},
		{"PhysicalDeviceFeatures.shaderTessellationAndGeometryPointSize", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.ShaderTessellationAndGeometryPointSize), uintptr(C.vkw_offset(192))},
		{"PhysicalDeviceFeatures.shaderImageGatherExtended", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.ShaderImageGatherExtended), uintptr(C.vkw_offset(193))},
		{"PhysicalDeviceFeatures.shaderStorageImageExtendedFormats", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.ShaderStorageImageExtendedFormats), uintptr(C.vkw_offset(194))},
		{"PhysicalDeviceFeatures.shaderStorageImageMultisample", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.ShaderStorageImageMultisample), uintptr(C.vkw_offset(195))},
		{"PhysicalDeviceFeatures.shaderStorageImageReadWithoutFormat", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.ShaderStorageImageReadWithoutFormat), uintptr(C.vkw_offset(196))},
		{"PhysicalDeviceFeatures.shaderStorageImageWriteWithoutFormat", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.ShaderStorageImageWriteWithoutFormat), uintptr(C.vkw_offset(197))},
		{"PhysicalDeviceFeatures.shaderUniformBufferArrayDynamicIndexing", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.ShaderUniformBufferArrayDynamicIndexing), uintptr(C.vkw_offset(198))},
		{"PhysicalDeviceFeatures.shaderSampledImageArrayDynamicIndexing", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.ShaderSampledImageArrayDynamicIndexing), uintptr(C.vkw_offset(199))},
		{"PhysicalDeviceFeatures.shaderStorageBufferArrayDynamicIndexing", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.ShaderStorageBufferArrayDynamicIndexing), uintptr(C.vkw_offset(200))},
		{"PhysicalDeviceFeatures.shaderStorageImageArrayDynamicIndexing", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.ShaderStorageImageArrayDynamicIndexing), uintptr(C.vkw_offset(201))},
		{"PhysicalDeviceFeatures.shaderClipDistance", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.ShaderClipDistance), uintptr(C.vkw_offset(202))},
		{"PhysicalDeviceFeatures.shaderCullDistance", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.ShaderCullDistance), uintptr(C.vkw_offset(203))},
		{"PhysicalDeviceFeatures.shaderFloat64", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.ShaderFloat64), uintptr(C.vkw_offset(204))},
		{"PhysicalDeviceFeatures.shaderInt64", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.ShaderInt64), uintptr(C.vkw_offset(205))},
		{"PhysicalDeviceFeatures.shaderInt16", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.ShaderInt16), uintptr(C.vkw_offset(206))},
		{"PhysicalDeviceFeatures.shaderResourceResidency", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.ShaderResourceResidency), uintptr(C.vkw_offset(207))},
		{"PhysicalDeviceFeatures.shaderResourceMinLod", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.ShaderResourceMinLod), uintptr(C.vkw_offset(208))},
		{"PhysicalDeviceFeatures.sparseBinding", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.SparseBinding), uintptr(C.vkw_offset(209))},
		{"PhysicalDeviceFeatures.sparseResidencyBuffer", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.SparseResidencyBuffer), uintptr(C.vkw_offset(210))},
		{"PhysicalDeviceFeatures.sparseResidencyImage2D", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.SparseResidencyImage2D), uintptr(C.vkw_offset(211))},
		{"PhysicalDeviceFeatures.sparseResidencyImage3D", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.SparseResidencyImage3D), uintptr(C.vkw_offset(212))},
		{"PhysicalDeviceFeatures.sparseResidency2Samples", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.SparseResidency2Samples), uintptr(C.vkw_offset(213))},
		{"PhysicalDeviceFeatures.sparseResidency4Samples", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.SparseResidency4Samples), uintptr(C.vkw_offset(214))},
		{"PhysicalDeviceFeatures.sparseResidency8Samples", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.SparseResidency8Samples), uintptr(C.vkw_offset(215))},
		{"PhysicalDeviceFeatures.sparseResidency16Samples", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.SparseResidency16Samples), uintptr(C.vkw_offset(216))},
		{"PhysicalDeviceFeatures.sparseResidencyAliased", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.SparseResidencyAliased), uintptr(C.vkw_offset(217))},
		{"PhysicalDeviceFeatures.variableMultisampleRate", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.VariableMultisampleRate), uintptr(C.vkw_offset(218))},
		{"PhysicalDeviceFeatures.inheritedQueries", unsafe.Offsetof(native.PhysicalDeviceFeatures{}.InheritedQueries), uintptr(C.vkw_offset(219))},
		{"QueueFamilyProperties.queueFlags", unsafe.Offsetof(native.QueueFamilyProperties{}.QueueFlags), uintptr(C.vkw_offset(220))},
		{"QueueFamilyProperties.queueCount", unsafe.Offsetof(native.QueueFamilyProperties{}.QueueCount), uintptr(C.vkw_offset(221))},
		{"QueueFamilyProperties.timestampValidBits", unsafe.Offsetof(native.QueueFamilyProperties{}.TimestampValidBits), uintptr(C.vkw_offset(222))},
		{"QueueFamilyProperties.minImageTransferGranularity", unsafe.Offsetof(native.QueueFamilyProperties{}.MinImageTransferGranularity), uintptr(C.vkw_offset(223))},
		{"MemoryType.propertyFlags", unsafe.Offsetof(native.MemoryType{}.PropertyFlags), uintptr(C.vkw_offset(224))},
		{"MemoryType.heapIndex", unsafe.Offsetof(native.MemoryType{}.HeapIndex), uintptr(C.vkw_offset(225))},
		{"MemoryHeap.size", unsafe.Offsetof(native.MemoryHeap{}.Size), uintptr(C.vkw_offset(226))},
		{"MemoryHeap.flags", unsafe.Offsetof(native.MemoryHeap{}.Flags), uintptr(C.vkw_offset(227))},
		{"PhysicalDeviceMemoryProperties.memoryTypeCount", unsafe.Offsetof(native.PhysicalDeviceMemoryProperties{}.MemoryTypeCount), uintptr(C.vkw_offset(228))},
		{"PhysicalDeviceMemoryProperties.memoryTypes", unsafe.Offsetof(native.PhysicalDeviceMemoryProperties{}.MemoryTypes), uintptr(C.vkw_offset(229))},
		{"PhysicalDeviceMemoryProperties.memoryHeapCount", unsafe.Offsetof(native.PhysicalDeviceMemoryProperties{}.MemoryHeapCount), uintptr(C.vkw_offset(230))},
		{"PhysicalDeviceMemoryProperties.memoryHeaps", unsafe.Offsetof(native.PhysicalDeviceMemoryProperties{}.MemoryHeaps), uintptr(C.vkw_offset(231))},
		{"FormatProperties.linearTilingFeatures", unsafe.Offsetof(native.FormatProperties{}.LinearTilingFeatures), uintptr(C.vkw_offset(232))},
		{"FormatProperties.optimalTilingFeatures", unsafe.Offsetof(native.FormatProperties{}.OptimalTilingFeatures), uintptr(C.vkw_offset(233))},
		{"FormatProperties.bufferFeatures", unsafe.Offsetof(native.FormatProperties{}.BufferFeatures), uintptr(C.vkw_offset(234))},
		{"DeviceQueueCreateInfo.sType", unsafe.Offsetof(native.DeviceQueueCreateInfo{}.SType), uintptr(C.vkw_offset(235))},
		{"DeviceQueueCreateInfo.pNext", unsafe.Offsetof(native.DeviceQueueCreateInfo{}.PNext), uintptr(C.vkw_offset(236))},
		{"DeviceQueueCreateInfo.flags", unsafe.Offsetof(native.DeviceQueueCreateInfo{}.Flags), uintptr(C.vkw_offset(237))},
		{"DeviceQueueCreateInfo.queueFamilyIndex", unsafe.Offsetof(native.DeviceQueueCreateInfo{}.QueueFamilyIndex), uintptr(C.vkw_offset(238))},
		{"DeviceQueueCreateInfo.queueCount", unsafe.Offsetof(native.DeviceQueueCreateInfo{}.QueueCount), uintptr(C.vkw_offset(239))},
		{"DeviceQueueCreateInfo.pQueuePriorities", unsafe.Offsetof(native.DeviceQueueCreateInfo{}.PQueuePriorities), uintptr(C.vkw_offset(240))},
		{"DeviceCreateInfo.sType", unsafe.Offsetof(native.DeviceCreateInfo{}.SType), uintptr(C.vkw_offset(241))},
		{"DeviceCreateInfo.pNext", unsafe.Offsetof(native.DeviceCreateInfo{}.PNext), uintptr(C.vkw_offset(242))},
		{"DeviceCreateInfo.flags", unsafe.Offsetof(native.DeviceCreateInfo{}.Flags), uintptr(C.vkw_offset(243))},
		{"DeviceCreateInfo.queueCreateInfoCount", unsafe.Offsetof(native.DeviceCreateInfo{}.QueueCreateInfoCount), uintptr(C.vkw_offset(244))},
		{"DeviceCreateInfo.pQueueCreateInfos", unsafe.Offsetof(native.DeviceCreateInfo{}.PQueueCreateInfos), uintptr(C.vkw_offset(245))},
		{"DeviceCreateInfo.enabledLayerCount", unsafe.Offsetof(native.DeviceCreateInfo{}.EnabledLayerCount), uintptr(C.vkw_offset(246))},
		{"DeviceCreateInfo.ppEnabledLayerNames", unsafe.Offsetof(native.DeviceCreateInfo{}.PpEnabledLayerNames), uintptr(C.vkw_offset(247))},
		{"DeviceCreateInfo.enabledExtensionCount", unsafe.Offsetof(native.DeviceCreateInfo{}.EnabledExtensionCount), uintptr(C.vkw_offset(248))},
		{"DeviceCreateInfo.ppEnabledExtensionNames", unsafe.Offsetof(native.DeviceCreateInfo{}.PpEnabledExtensionNames), uintptr(C.vkw_offset(249))},
		{"DeviceCreateInfo.pEnabledFeatures", unsafe.Offsetof(native.DeviceCreateInfo{}.PEnabledFeatures), uintptr(C.vkw_offset(250))},
		{"SubmitInfo.sType", unsafe.Offsetof(native.SubmitInfo{}.SType), uintptr(C.vkw_offset(251))},
		{"SubmitInfo.pNext", unsafe.Offsetof(native.SubmitInfo{}.PNext), uintptr(C.vkw_offset(252))},
		{"SubmitInfo.waitSemaphoreCount", unsafe.Offsetof(native.SubmitInfo{}.WaitSemaphoreCount), uintptr(C.vkw_offset(253))},
		{"SubmitInfo.pWaitSemaphores", unsafe.Offsetof(native.SubmitInfo{}.PWaitSemaphores), uintptr(C.vkw_offset(254))},
		{"SubmitInfo.pWaitDstStageMask", unsafe.Offsetof(native.SubmitInfo{}.PWaitDstStageMask), uintptr(C.vkw_offset(255))},
		{"SubmitInfo.commandBufferCount", unsafe.Offsetof(native.SubmitInfo{}.CommandBufferCount), uintptr(C.vkw_offset(256))},
		{"SubmitInfo.pCommandBuffers", unsafe.Offsetof(native.SubmitInfo{}.PCommandBuffers), uintptr(C.vkw_offset(257))},
		{"SubmitInfo.signalSemaphoreCount", unsafe.Offsetof(native.SubmitInfo{}.SignalSemaphoreCount), uintptr(C.vkw_offset(258))},
		{"SubmitInfo.pSignalSemaphores", unsafe.Offsetof(native.SubmitInfo{}.PSignalSemaphores), uintptr(C.vkw_offset(259))},
		{"FenceCreateInfo.sType", unsafe.Offsetof(native.FenceCreateInfo{}.SType), uintptr(C.vkw_offset(260))},
		{"FenceCreateInfo.pNext", unsafe.Offsetof(native.FenceCreateInfo{}.PNext), uintptr(C.vkw_offset(261))},
		{"FenceCreateInfo.flags", unsafe.Offsetof(native.FenceCreateInfo{}.Flags), uintptr(C.vkw_offset(262))},
		{"SemaphoreCreateInfo.sType", unsafe.Offsetof(native.SemaphoreCreateInfo{}.SType), uintptr(C.vkw_offset(263))},
		{"SemaphoreCreateInfo.pNext", unsafe.Offsetof(native.SemaphoreCreateInfo{}.PNext), uintptr(C.vkw_offset(264))},
		{"SemaphoreCreateInfo.flags", unsafe.Offsetof(native.SemaphoreCreateInfo{}.Flags), uintptr(C.vkw_offset(265))},
		{"EventCreateInfo.sType", unsafe.Offsetof(native.EventCreateInfo{}.SType), uintptr(C.vkw_offset(266))},
		{"EventCreateInfo.pNext", unsafe.Offsetof(native.EventCreateInfo{}.PNext), uintptr(C.vkw_offset(267))},
		{"EventCreateInfo.flags", unsafe.Offsetof(native.EventCreateInfo{}.Flags), uintptr(C.vkw_offset(268))},
		{"MemoryAllocateInfo.sType", unsafe.Offsetof(native.MemoryAllocateInfo{}.SType), uintptr(C.vkw_offset(269))},
		{"MemoryAllocateInfo.pNext", unsafe.Offsetof(native.MemoryAllocateInfo{}.PNext), uintptr(C.vkw_offset(270))},
		{"MemoryAllocateInfo.allocationSize", unsafe.Offsetof(native.MemoryAllocateInfo{}.AllocationSize), uintptr(C.vkw_offset(271))},
		{"MemoryAllocateInfo.memoryTypeIndex", unsafe.Offsetof(native.MemoryAllocateInfo{}.MemoryTypeIndex), uintptr(C.vkw_offset(272))},
		{"MappedMemoryRange.sType", unsafe.Offsetof(native.MappedMemoryRange{}.SType), uintptr(C.vkw_offset(273))},
		{"MappedMemoryRange.pNext", unsafe.Offsetof(native.MappedMemoryRange{}.PNext), uintptr(C.vkw_offset(274))},
		{"MappedMemoryRange.memory", unsafe.Offsetof(native.MappedMemoryRange{}.Memory), uintptr(C.vkw_offset(275))},
		{"MappedMemoryRange.offset", unsafe.Offsetof(native.MappedMemoryRange{}.Offset), uintptr(C.vkw_offset(276))},
		{"MappedMemoryRange.size", unsafe.Offsetof(native.MappedMemoryRange{}.Size), uintptr(C.vkw_offset(277))},
		{"MemoryRequirements.size", unsafe.Offsetof(native.MemoryRequirements{}.Size), uintptr(C.vkw_offset(278))},
		{"MemoryRequirements.alignment", unsafe.Offsetof(native.MemoryRequirements{}.Alignment), uintptr(C.vkw_offset(279))},
		{"MemoryRequirements.memoryTypeBits", unsafe.Offsetof(native.MemoryRequirements{}.MemoryTypeBits), uintptr(C.vkw_offset(280))},
		{"BufferCreateInfo.sType", unsafe.Offsetof(native.BufferCreateInfo{}.SType), uintptr(C.vkw_offset(281))},
		{"BufferCreateInfo.pNext", unsafe.Offsetof(native.BufferCreateInfo{}.PNext), uintptr(C.vkw_offset(282))},
		{"BufferCreateInfo.flags", unsafe.Offsetof(native.BufferCreateInfo{}.Flags), uintptr(C.vkw_offset(283))},
		{"BufferCreateInfo.size", unsafe.Offsetof(native.BufferCreateInfo{}.Size), uintptr(C.vkw_offset(284))},
		{"BufferCreateInfo.usage", unsafe.Offsetof(native.BufferCreateInfo{}.Usage), uintptr(C.vkw_offset(285))},
		{"BufferCreateInfo.sharingMode", unsafe.Offsetof(native.BufferCreateInfo{}.SharingMode), uintptr(C.vkw_offset(286))},
		{"BufferCreateInfo.queueFamilyIndexCount", unsafe.Offsetof(native.BufferCreateInfo{}.QueueFamilyIndexCount), uintptr(C.vkw_offset(287))},
		{"BufferCreateInfo.pQueueFamilyIndices", unsafe.Offsetof(native.BufferCreateInfo{}.PQueueFamilyIndices), uintptr(C.vkw_offset(288))},
		{"ImageCreateInfo.sType", unsafe.Offsetof(native.ImageCreateInfo{}.SType), uintptr(C.vkw_offset(289))},
		{"ImageCreateInfo.pNext", unsafe.Offsetof(native.ImageCreateInfo{}.PNext), uintptr(C.vkw_offset(290))},
		{"ImageCreateInfo.flags", unsafe.Offsetof(native.ImageCreateInfo{}.Flags), uintptr(C.vkw_offset(291))},
		{"ImageCreateInfo.imageType", unsafe.Offsetof(native.ImageCreateInfo{}.ImageType), uintptr(C.vkw_offset(292))},
		{"ImageCreateInfo.format", unsafe.Offsetof(native.ImageCreateInfo{}.Format), uintptr(C.vkw_offset(293))},
		{"ImageCreateInfo.extent", unsafe.Offsetof(native.ImageCreateInfo{}.Extent), uintptr(C.vkw_offset(294))},
		{"ImageCreateInfo.mipLevels", unsafe.Offsetof(native.ImageCreateInfo{}.MipLevels), uintptr(C.vkw_offset(295))},
		{"ImageCreateInfo.arrayLayers", unsafe.Offsetof(native.ImageCreateInfo{}.ArrayLayers), uintptr(C.vkw_offset(296))},
		{"ImageCreateInfo.samples", unsafe.Offsetof(native.ImageCreateInfo{}.Samples), uintptr(C.vkw_offset(297))},
		{"ImageCreateInfo.tiling", unsafe.Offsetof(native.ImageCreateInfo{}.Tiling), uintptr(C.vkw_offset(298))},
		{"ImageCreateInfo.usage", unsafe.Offsetof(native.ImageCreateInfo{}.Usage), uintptr(C.vkw_offset(299))},
		{"ImageCreateInfo.sharingMode", unsafe.Offsetof(native.ImageCreateInfo{}.SharingMode), uintptr(C.vkw_offset(300))},
		{"ImageCreateInfo.queueFamilyIndexCount", unsafe.Offsetof(native.ImageCreateInfo{}.QueueFamilyIndexCount), uintptr(C.vkw_offset(301))},
		{"ImageCreateInfo.pQueueFamilyIndices", unsafe.Offsetof(native.ImageCreateInfo{}.PQueueFamilyIndices), uintptr(C.vkw_offset(302))},
		{"ImageCreateInfo.initialLayout", unsafe.Offsetof(native.ImageCreateInfo{}.InitialLayout), uintptr(C.vkw_offset(303))},
		{"ComponentMapping.r", unsafe.Offsetof(native.ComponentMapping{}.R), uintptr(C.vkw_offset(304))},
		{"ComponentMapping.g", unsafe.Offsetof(native.ComponentMapping{}.G), uintptr(C.vkw_offset(305))},
		{"ComponentMapping.b", unsafe.Offsetof(native.ComponentMapping{}.B), uintptr(C.vkw_offset(306))},
		{"ComponentMapping.a", unsafe.Offsetof(native.ComponentMapping{}.A), uintptr(C.vkw_offset(307))},
		{"ImageSubresourceRange.aspectMask", unsafe.Offsetof(native.ImageSubresourceRange{}.AspectMask), uintptr(C.vkw_offset(308))},
		{"ImageSubresourceRange.baseMipLevel", unsafe.Offsetof(native.ImageSubresourceRange{}.BaseMipLevel), uintptr(C.vkw_offset(309))},
		{"ImageSubresourceRange.levelCount", unsafe.Offsetof(native.ImageSubresourceRange{}.LevelCount), uintptr(C.vkw_offset(310))},
		{"ImageSubresourceRange.baseArrayLayer", unsafe.Offsetof(native.ImageSubresourceRange{}.BaseArrayLayer), uintptr(C.vkw_offset(311))},
		{"ImageSubresourceRange.layerCount", unsafe.Offsetof(native.ImageSubresourceRange{}.LayerCount), uintptr(C.vkw_offset(312))},
		{"ImageSubresourceLayers.aspectMask", unsafe.Offsetof(native.ImageSubresourceLayers{}.AspectMask), uintptr(C.vkw_offset(313))},
		{"ImageSubresourceLayers.mipLevel", unsafe.Offsetof(native.ImageSubresourceLayers{}.MipLevel), uintptr(C.vkw_offset(314))},
		{"ImageSubresourceLayers.baseArrayLayer", unsafe.Offsetof(native.ImageSubresourceLayers{}.BaseArrayLayer), uintptr(C.vkw_offset(315))},
		{"ImageSubresourceLayers.layerCount", unsafe.Offsetof(native.ImageSubresourceLayers{}.LayerCount), uintptr(C.vkw_offset(316))},
		{"ImageViewCreateInfo.sType", unsafe.Offsetof(native.ImageViewCreateInfo{}.SType), uintptr(C.vkw_offset(317))},
		{"ImageViewCreateInfo.pNext", unsafe.Offsetof(native.ImageViewCreateInfo{}.PNext), uintptr(C.vkw_offset(318))},
		{"ImageViewCreateInfo.flags", unsafe.Offsetof(native.ImageViewCreateInfo{}.Flags), uintptr(C.vkw_offset(319))},
		{"ImageViewCreateInfo.image", unsafe.Offsetof(native.ImageViewCreateInfo{}.Image), uintptr(C.vkw_offset(320))},
		{"ImageViewCreateInfo.viewType", unsafe.Offsetof(native.ImageViewCreateInfo{}.ViewType), uintptr(C.vkw_offset(321))},
		{"ImageViewCreateInfo.format", unsafe.Offsetof(native.ImageViewCreateInfo{}.Format), uintptr(C.vkw_offset(322))},
		{"ImageViewCreateInfo.components", unsafe.Offsetof(native.ImageViewCreateInfo{}.Components), uintptr(C.vkw_offset(323))},
		{"ImageViewCreateInfo.subresourceRange", unsafe.Offsetof(native.ImageViewCreateInfo{}.SubresourceRange), uintptr(C.vkw_offset(324))},
		{"ShaderModuleCreateInfo.sType", unsafe.Offsetof(native.ShaderModuleCreateInfo{}.SType), uintptr(C.vkw_offset(325))},
		{"ShaderModuleCreateInfo.pNext", unsafe.Offsetof(native.ShaderModuleCreateInfo{}.PNext), uintptr(C.vkw_offset(326))},
		{"ShaderModuleCreateInfo.flags", unsafe.Offsetof(native.ShaderModuleCreateInfo{}.Flags), uintptr(C.vkw_offset(327))},
		{"ShaderModuleCreateInfo.codeSize", unsafe.Offsetof(native.ShaderModuleCreateInfo{}.CodeSize), uintptr(C.vkw_offset(328))},
		{"ShaderModuleCreateInfo.pCode", unsafe.Offsetof(native.ShaderModuleCreateInfo{}.PCode), uintptr(C.vkw_offset(329))},
		{"CommandPoolCreateInfo.sType", unsafe.Offsetof(native.CommandPoolCreateInfo{}.SType), uintptr(C.vkw_offset(330))},
		{"CommandPoolCreateInfo.pNext", unsafe.Offsetof(native.CommandPoolCreateInfo{}.PNext), uintptr(C.vkw_offset(331))},
		{"CommandPoolCreateInfo.flags", unsafe.Offsetof(native.CommandPoolCreateInfo{}.Flags), uintptr(C.vkw_offset(332))},
		{"CommandPoolCreateInfo.queueFamilyIndex", unsafe.Offsetof(native.CommandPoolCreateInfo{}.QueueFamilyIndex), uintptr(C.vkw_offset(333))},
		{"CommandBufferAllocateInfo.sType", unsafe.Offsetof(native.CommandBufferAllocateInfo{}.SType), uintptr(C.vkw_offset(334))},
		{"CommandBufferAllocateInfo.pNext", unsafe.Offsetof(native.CommandBufferAllocateInfo{}.PNext), uintptr(C.vkw_offset(335))},
		{"CommandBufferAllocateInfo.commandPool", unsafe.Offsetof(native.CommandBufferAllocateInfo{}.CommandPool), uintptr(C.vkw_offset(336))},
		{"CommandBufferAllocateInfo.level", unsafe.Offsetof(native.CommandBufferAllocateInfo{}.Level), uintptr(C.vkw_offset(337))},
		{"CommandBufferAllocateInfo.commandBufferCount", unsafe.Offsetof(native.CommandBufferAllocateInfo{}.CommandBufferCount), uintptr(C.vkw_offset(338))},
		{"CommandBufferInheritanceInfo.sType", unsafe.Offsetof(native.CommandBufferInheritanceInfo{}.SType), uintptr(C.vkw_offset(339))},
		{"CommandBufferInheritanceInfo.pNext", unsafe.Offsetof(native.CommandBufferInheritanceInfo{}.PNext), uintptr(C.vkw_offset(340))},
		{"CommandBufferInheritanceInfo.renderPass", unsafe.Offsetof(native.CommandBufferInheritanceInfo{}.RenderPass), uintptr(C.vkw_offset(341))},
		{"CommandBufferInheritanceInfo.subpass", unsafe.Offsetof(native.CommandBufferInheritanceInfo{}.Subpass), uintptr(C.vkw_offset(342))},
		{"CommandBufferInheritanceInfo.framebuffer", unsafe.Offsetof(native.CommandBufferInheritanceInfo{}.Framebuffer), uintptr(C.vkw_offset(343))},
		{"CommandBufferInheritanceInfo.occlusionQueryEnable", unsafe.Offsetof(native.CommandBufferInheritanceInfo{}.OcclusionQueryEnable), uintptr(C.vkw_offset(344))},
		{"CommandBufferInheritanceInfo.queryFlags", unsafe.Offsetof(native.CommandBufferInheritanceInfo{}.QueryFlags), uintptr(C.vkw_offset(345))},
		{"CommandBufferInheritanceInfo.pipelineStatistics", unsafe.Offsetof(native.CommandBufferInheritanceInfo{}.PipelineStatistics), uintptr(C.vkw_offset(346))},
		{"CommandBufferBeginInfo.sType", unsafe.Offsetof(native.CommandBufferBeginInfo{}.SType), uintptr(C.vkw_offset(347))},
		{"CommandBufferBeginInfo.pNext", unsafe.Offsetof(native.CommandBufferBeginInfo{}.PNext), uintptr(C.vkw_offset(348))},
		{"CommandBufferBeginInfo.flags", unsafe.Offsetof(native.CommandBufferBeginInfo{}.Flags), uintptr(C.vkw_offset(349))},
		{"CommandBufferBeginInfo.pInheritanceInfo", unsafe.Offsetof(native.CommandBufferBeginInfo{}.PInheritanceInfo), uintptr(C.vkw_offset(350))},
		{"BufferCopy.srcOffset", unsafe.Offsetof(native.BufferCopy{}.SrcOffset), uintptr(C.vkw_offset(351))},
		{"BufferCopy.dstOffset", unsafe.Offsetof(native.BufferCopy{}.DstOffset), uintptr(C.vkw_offset(352))},
		{"BufferCopy.size", unsafe.Offsetof(native.BufferCopy{}.Size), uintptr(C.vkw_offset(353))},
		{"BufferImageCopy.bufferOffset", unsafe.Offsetof(native.BufferImageCopy{}.BufferOffset), uintptr(C.vkw_offset(354))},
		{"BufferImageCopy.bufferRowLength", unsafe.Offsetof(native.BufferImageCopy{}.BufferRowLength), uintptr(C.vkw_offset(355))},
		{"BufferImageCopy.bufferImageHeight", unsafe.Offsetof(native.BufferImageCopy{}.BufferImageHeight), uintptr(C.vkw_offset(356))},
		{"BufferImageCopy.imageSubresource", unsafe.Offsetof(native.BufferImageCopy{}.ImageSubresource), uintptr(C.vkw_offset(357))},
		{"BufferImageCopy.imageOffset", unsafe.Offsetof(native.BufferImageCopy{}.ImageOffset), uintptr(C.vkw_offset(358))},
		{"BufferImageCopy.imageExtent", unsafe.Offsetof(native.BufferImageCopy{}.ImageExtent), uintptr(C.vkw_offset(359))},
		{"MemoryBarrier.sType", unsafe.Offsetof(native.MemoryBarrier{}.SType), uintptr(C.vkw_offset(360))},
		{"MemoryBarrier.pNext", unsafe.Offsetof(native.MemoryBarrier{}.PNext), uintptr(C.vkw_offset(361))},
		{"MemoryBarrier.srcAccessMask", unsafe.Offsetof(native.MemoryBarrier{}.SrcAccessMask), uintptr(C.vkw_offset(362))},
		{"MemoryBarrier.dstAccessMask", unsafe.Offsetof(native.MemoryBarrier{}.DstAccessMask), uintptr(C.vkw_offset(363))},
		{"BufferMemoryBarrier.sType", unsafe.Offsetof(native.BufferMemoryBarrier{}.SType), uintptr(C.vkw_offset(364))},
		{"BufferMemoryBarrier.pNext", unsafe.Offsetof(native.BufferMemoryBarrier{}.PNext), uintptr(C.vkw_offset(365))},
		{"BufferMemoryBarrier.srcAccessMask", unsafe.Offsetof(native.BufferMemoryBarrier{}.SrcAccessMask), uintptr(C.vkw_offset(366))},
		{"BufferMemoryBarrier.dstAccessMask", unsafe.Offsetof(native.BufferMemoryBarrier{}.DstAccessMask), uintptr(C.vkw_offset(367))},
		{"BufferMemoryBarrier.srcQueueFamilyIndex", unsafe.Offsetof(native.BufferMemoryBarrier{}.SrcQueueFamilyIndex), uintptr(C.vkw_offset(368))},
		{"BufferMemoryBarrier.dstQueueFamilyIndex", unsafe.Offsetof(native.BufferMemoryBarrier{}.DstQueueFamilyIndex), uintptr(C.vkw_offset(369))},
		{"BufferMemoryBarrier.buffer", unsafe.Offsetof(native.BufferMemoryBarrier{}.Buffer), uintptr(C.vkw_offset(370))},
		{"BufferMemoryBarrier.offset", unsafe.Offsetof(native.BufferMemoryBarrier{}.Offset), uintptr(C.vkw_offset(371))},
		{"BufferMemoryBarrier.size", unsafe.Offsetof(native.BufferMemoryBarrier{}.Size), uintptr(C.vkw_offset(372))},
		{"ImageMemoryBarrier.sType", unsafe.Offsetof(native.ImageMemoryBarrier{}.SType), uintptr(C.vkw_offset(373))},
		{"ImageMemoryBarrier.pNext", unsafe.Offsetof(native.ImageMemoryBarrier{}.PNext), uintptr(C.vkw_offset(374))},
		{"ImageMemoryBarrier.srcAccessMask", unsafe.Offsetof(native.ImageMemoryBarrier{}.SrcAccessMask), uintptr(C.vkw_offset(375))},
		{"ImageMemoryBarrier.dstAccessMask", unsafe.Offsetof(native.ImageMemoryBarrier{}.DstAccessMask), uintptr(C.vkw_offset(376))},
		{"ImageMemoryBarrier.oldLayout", unsafe.Offsetof(native.ImageMemoryBarrier{}.OldLayout), uintptr(C.vkw_offset(377))},
		{"ImageMemoryBarrier.newLayout", unsafe.Offsetof(native.ImageMemoryBarrier{}.NewLayout), uintptr(C.vkw_offset(378))},
		{"ImageMemoryBarrier.srcQueueFamilyIndex", unsafe.Offsetof(native.ImageMemoryBarrier{}.SrcQueueFamilyIndex), uintptr(C.vkw_offset(379))},
		{"ImageMemoryBarrier.dstQueueFamilyIndex", unsafe.Offsetof(native.ImageMemoryBarrier{}.DstQueueFamilyIndex), uintptr(C.vkw_offset(380))},
		{"ImageMemoryBarrier.image", unsafe.Offsetof(native.ImageMemoryBarrier{}.Image), uintptr(C.vkw_offset(381))},
		{"ImageMemoryBarrier.subresourceRange", unsafe.Offsetof(native.ImageMemoryBarrier{}.SubresourceRange), uintptr(C.vkw_offset(382))},
		{"RenderingAttachmentInfo.sType", unsafe.Offsetof(native.RenderingAttachmentInfo{}.SType), uintptr(C.vkw_offset(383))},
		{"RenderingAttachmentInfo.pNext", unsafe.Offsetof(native.RenderingAttachmentInfo{}.PNext), uintptr(C.vkw_offset(384))},
		{"RenderingAttachmentInfo.imageView", unsafe.Offsetof(native.RenderingAttachmentInfo{}.ImageView), uintptr(C.vkw_offset(385))},
		{"RenderingAttachmentInfo.imageLayout", unsafe.Offsetof(native.RenderingAttachmentInfo{}.ImageLayout), uintptr(C.vkw_offset(386))},
		{"RenderingAttachmentInfo.resolveMode", unsafe.Offsetof(native.RenderingAttachmentInfo{}.ResolveMode), uintptr(C.vkw_offset(387))},
		{"RenderingAttachmentInfo.resolveImageView", unsafe.Offsetof(native.RenderingAttachmentInfo{}.ResolveImageView), uintptr(C.vkw_offset(388))},
		{"RenderingAttachmentInfo.resolveImageLayout", unsafe.Offsetof(native.RenderingAttachmentInfo{}.ResolveImageLayout), uintptr(C.vkw_offset(389))},
		{"RenderingAttachmentInfo.loadOp", unsafe.Offsetof(native.RenderingAttachmentInfo{}.LoadOp), uintptr(C.vkw_offset(390))},
		{"RenderingAttachmentInfo.storeOp", unsafe.Offsetof(native.RenderingAttachmentInfo{}.StoreOp), uintptr(C.vkw_offset(391))},
		{"RenderingAttachmentInfo.clearValue", unsafe.Offsetof(native.RenderingAttachmentInfo{}.ClearValue), uintptr(C.vkw_offset(392))},
		{"RenderingInfo.sType", unsafe.Offsetof(native.RenderingInfo{}.SType), uintptr(C.vkw_offset(393))},
		{"RenderingInfo.pNext", unsafe.Offsetof(native.RenderingInfo{}.PNext), uintptr(C.vkw_offset(394))},
		{"RenderingInfo.flags", unsafe.Offsetof(native.RenderingInfo{}.Flags), uintptr(C.vkw_offset(395))},
		{"RenderingInfo.renderArea", unsafe.Offsetof(native.RenderingInfo{}.RenderArea), uintptr(C.vkw_offset(396))},
		{"RenderingInfo.layerCount", unsafe.Offsetof(native.RenderingInfo{}.LayerCount), uintptr(C.vkw_offset(397))},
		{"RenderingInfo.viewMask", unsafe.Offsetof(native.RenderingInfo{}.ViewMask), uintptr(C.vkw_offset(398))},
		{"RenderingInfo.colorAttachmentCount", unsafe.Offsetof(native.RenderingInfo{}.ColorAttachmentCount), uintptr(C.vkw_offset(399))},
		{"RenderingInfo.pColorAttachments", unsafe.Offsetof(native.RenderingInfo{}.PColorAttachments), uintptr(C.vkw_offset(400))},
		{"RenderingInfo.pDepthAttachment", unsafe.Offsetof(native.RenderingInfo{}.PDepthAttachment), uintptr(C.vkw_offset(401))},
		{"RenderingInfo.pStencilAttachment", unsafe.Offsetof(native.RenderingInfo{}.PStencilAttachment), uintptr(C.vkw_offset(402))},
		{"AttachmentDescription.flags", unsafe.Offsetof(native.AttachmentDescription{}.Flags), uintptr(C.vkw_offset(403))},
		{"AttachmentDescription.format", unsafe.Offsetof(native.AttachmentDescription{}.Format), uintptr(C.vkw_offset(404))},
		{"AttachmentDescription.samples", unsafe.Offsetof(native.AttachmentDescription{}.Samples), uintptr(C.vkw_offset(405))},
		{"AttachmentDescription.loadOp", unsafe.Offsetof(native.AttachmentDescription{}.LoadOp), uintptr(C.vkw_offset(406))},
		{"AttachmentDescription.storeOp", unsafe.Offsetof(native.AttachmentDescription{}.StoreOp), uintptr(C.vkw_offset(407))},
		{"AttachmentDescription.stencilLoadOp", unsafe.Offsetof(native.AttachmentDescription{}.StencilLoadOp), uintptr(C.vkw_offset(408))},
		{"AttachmentDescription.stencilStoreOp", unsafe.Offsetof(native.AttachmentDescription{}.StencilStoreOp), uintptr(C.vkw_offset(409))},
		{"AttachmentDescription.initialLayout", unsafe.Offsetof(native.AttachmentDescription{}.InitialLayout), uintptr(C.vkw_offset(410))},
		{"AttachmentDescription.finalLayout", unsafe.Offsetof(native.AttachmentDescription{}.FinalLayout), uintptr(C.vkw_offset(411))},
		{"AttachmentReference.attachment", unsafe.Offsetof(native.AttachmentReference{}.Attachment), uintptr(C.vkw_offset(412))},
		{"AttachmentReference.layout", unsafe.Offsetof(native.AttachmentReference{}.Layout), uintptr(C.vkw_offset(413))},
		{"SubpassDescription.flags", unsafe.Offsetof(native.SubpassDescription{}.Flags), uintptr(C.vkw_offset(414))},
		{"SubpassDescription.pipelineBindPoint", unsafe.Offsetof(native.SubpassDescription{}.PipelineBindPoint), uintptr(C.vkw_offset(415))},
		{"SubpassDescription.inputAttachmentCount", unsafe.Offsetof(native.SubpassDescription{}.InputAttachmentCount), uintptr(C.vkw_offset(416))},
		{"SubpassDescription.pInputAttachments", unsafe.Offsetof(native.SubpassDescription{}.PInputAttachments), uintptr(C.vkw_offset(417))},
		{"SubpassDescription.colorAttachmentCount", unsafe.Offsetof(native.SubpassDescription{}.ColorAttachmentCount), uintptr(C.vkw_offset(418))},
		{"SubpassDescription.pColorAttachments", unsafe.Offsetof(native.SubpassDescription{}.PColorAttachments), uintptr(C.vkw_offset(419))},
		{"SubpassDescription.pResolveAttachments", unsafe.Offsetof(native.SubpassDescription{}.PResolveAttachments), uintptr(C.vkw_offset(420))},
		{"SubpassDescription.pDepthStencilAttachment", unsafe.Offsetof(native.SubpassDescription{}.PDepthStencilAttachment), uintptr(C.vkw_offset(421))},
		{"SubpassDescription.preserveAttachmentCount", unsafe.Offsetof(native.SubpassDescription{}.PreserveAttachmentCount), uintptr(C.vkw_offset(422))},
		{"SubpassDescription.pPreserveAttachments", unsafe.Offsetof(native.SubpassDescription{}.PPreserveAttachments), uintptr(C.vkw_offset(423))},
		{"SubpassDependency.srcSubpass", unsafe.Offsetof(native.SubpassDependency{}.SrcSubpass), uintptr(C.vkw_offset(424))},
		{"SubpassDependency.dstSubpass", unsafe.Offsetof(native.SubpassDependency{}.DstSubpass), uintptr(C.vkw_offset(425))},
		{"SubpassDependency.srcStageMask", unsafe.Offsetof(native.SubpassDependency{}.SrcStageMask), uintptr(C.vkw_offset(426))},
		{"SubpassDependency.dstStageMask", unsafe.Offsetof(native.SubpassDependency{}.DstStageMask), uintptr(C.vkw_offset(427))},
		{"SubpassDependency.srcAccessMask", unsafe.Offsetof(native.SubpassDependency{}.SrcAccessMask), uintptr(C.vkw_offset(428))},
		{"SubpassDependency.dstAccessMask", unsafe.Offsetof(native.SubpassDependency{}.DstAccessMask), uintptr(C.vkw_offset(429))},
		{"SubpassDependency.dependencyFlags", unsafe.Offsetof(native.SubpassDependency{}.DependencyFlags), uintptr(C.vkw_offset(430))},
		{"RenderPassCreateInfo.sType", unsafe.Offsetof(native.RenderPassCreateInfo{}.SType), uintptr(C.vkw_offset(431))},
		{"RenderPassCreateInfo.pNext", unsafe.Offsetof(native.RenderPassCreateInfo{}.PNext), uintptr(C.vkw_offset(432))},
		{"RenderPassCreateInfo.flags", unsafe.Offsetof(native.RenderPassCreateInfo{}.Flags), uintptr(C.vkw_offset(433))},
		{"RenderPassCreateInfo.attachmentCount", unsafe.Offsetof(native.RenderPassCreateInfo{}.AttachmentCount), uintptr(C.vkw_offset(434))},
		{"RenderPassCreateInfo.pAttachments", unsafe.Offsetof(native.RenderPassCreateInfo{}.PAttachments), uintptr(C.vkw_offset(435))},
		{"RenderPassCreateInfo.subpassCount", unsafe.Offsetof(native.RenderPassCreateInfo{}.SubpassCount), uintptr(C.vkw_offset(436))},
		{"RenderPassCreateInfo.pSubpasses", unsafe.Offsetof(native.RenderPassCreateInfo{}.PSubpasses), uintptr(C.vkw_offset(437))},
		{"RenderPassCreateInfo.dependencyCount", unsafe.Offsetof(native.RenderPassCreateInfo{}.DependencyCount), uintptr(C.vkw_offset(438))},
		{"RenderPassCreateInfo.pDependencies", unsafe.Offsetof(native.RenderPassCreateInfo{}.PDependencies), uintptr(C.vkw_offset(439))},
		{"FramebufferCreateInfo.sType", unsafe.Offsetof(native.FramebufferCreateInfo{}.SType), uintptr(C.vkw_offset(440))},
		{"FramebufferCreateInfo.pNext", unsafe.Offsetof(native.FramebufferCreateInfo{}.PNext), uintptr(C.vkw_offset(441))},
		{"FramebufferCreateInfo.flags", unsafe.Offsetof(native.FramebufferCreateInfo{}.Flags), uintptr(C.vkw_offset(442))},
		{"FramebufferCreateInfo.renderPass", unsafe.Offsetof(native.FramebufferCreateInfo{}.RenderPass), uintptr(C.vkw_offset(443))},
		{"FramebufferCreateInfo.attachmentCount", unsafe.Offsetof(native.FramebufferCreateInfo{}.AttachmentCount), uintptr(C.vkw_offset(444))},
		{"FramebufferCreateInfo.pAttachments", unsafe.Offsetof(native.FramebufferCreateInfo{}.PAttachments), uintptr(C.vkw_offset(445))},
		{"FramebufferCreateInfo.width", unsafe.Offsetof(native.FramebufferCreateInfo{}.Width), uintptr(C.vkw_offset(446))},
		{"FramebufferCreateInfo.height", unsafe.Offsetof(native.FramebufferCreateInfo{}.Height), uintptr(C.vkw_offset(447))},
		{"FramebufferCreateInfo.layers", unsafe.Offsetof(native.FramebufferCreateInfo{}.Layers), uintptr(C.vkw_offset(448))},
		{"RenderPassBeginInfo.sType", unsafe.Offsetof(native.RenderPassBeginInfo{}.SType), uintptr(C.vkw_offset(449))},
		{"RenderPassBeginInfo.pNext", unsafe.Offsetof(native.RenderPassBeginInfo{}.PNext), uintptr(C.vkw_offset(450))},
		{"RenderPassBeginInfo.renderPass", unsafe.Offsetof(native.RenderPassBeginInfo{}.RenderPass), uintptr(C.vkw_offset(451))},
		{"RenderPassBeginInfo.framebuffer", unsafe.Offsetof(native.RenderPassBeginInfo{}.Framebuffer), uintptr(C.vkw_offset(452))},
		{"RenderPassBeginInfo.renderArea", unsafe.Offsetof(native.RenderPassBeginInfo{}.RenderArea), uintptr(C.vkw_offset(453))},
		{"RenderPassBeginInfo.clearValueCount", unsafe.Offsetof(native.RenderPassBeginInfo{}.ClearValueCount), uintptr(C.vkw_offset(454))},
		{"RenderPassBeginInfo.pClearValues", unsafe.Offsetof(native.RenderPassBeginInfo{}.PClearValues), uintptr(C.vkw_offset(455))},
		{"DescriptorSetLayoutBinding.binding", unsafe.Offsetof(native.DescriptorSetLayoutBinding{}.Binding), uintptr(C.vkw_offset(456))},
		{"DescriptorSetLayoutBinding.descriptorType", unsafe.Offsetof(native.DescriptorSetLayoutBinding{}.DescriptorType), uintptr(C.vkw_offset(457))},
		{"DescriptorSetLayoutBinding.descriptorCount", unsafe.Offsetof(native.DescriptorSetLayoutBinding{}.DescriptorCount), uintptr(C.vkw_offset(458))},
		{"DescriptorSetLayoutBinding.stageFlags", unsafe.Offsetof(native.DescriptorSetLayoutBinding{}.StageFlags), uintptr(C.vkw_offset(459))},
		{"DescriptorSetLayoutBinding.pImmutableSamplers", unsafe.Offsetof(native.DescriptorSetLayoutBinding{}.PImmutableSamplers), uintptr(C.vkw_offset(460))},
		{"DescriptorSetLayoutCreateInfo.sType", unsafe.Offsetof(native.DescriptorSetLayoutCreateInfo{}.SType), uintptr(C.vkw_offset(461))},
		{"DescriptorSetLayoutCreateInfo.pNext", unsafe.Offsetof(native.DescriptorSetLayoutCreateInfo{}.PNext), uintptr(C.vkw_offset(462))},
		{"DescriptorSetLayoutCreateInfo.flags", unsafe.Offsetof(native.DescriptorSetLayoutCreateInfo{}.Flags), uintptr(C.vkw_offset(463))},
		{"DescriptorSetLayoutCreateInfo.bindingCount", unsafe.Offsetof(native.DescriptorSetLayoutCreateInfo{}.BindingCount), uintptr(C.vkw_offset(464))},
		{"DescriptorSetLayoutCreateInfo.pBindings", unsafe.Offsetof(native.DescriptorSetLayoutCreateInfo{}.PBindings), uintptr(C.vkw_offset(465))},
		{"DescriptorPoolSize.type", unsafe.Offsetof(native.DescriptorPoolSize{}.Type), uintptr(C.vkw_offset(466))},
		{"DescriptorPoolSize.descriptorCount", unsafe.Offsetof(native.DescriptorPoolSize{}.DescriptorCount), uintptr(C.vkw_offset(467))},
		{"DescriptorPoolCreateInfo.sType", unsafe.Offsetof(native.DescriptorPoolCreateInfo{}.SType), uintptr(C.vkw_offset(468))},
		{"DescriptorPoolCreateInfo.pNext", unsafe.Offsetof(native.DescriptorPoolCreateInfo{}.PNext), uintptr(C.vkw_offset(469))},
		{"DescriptorPoolCreateInfo.flags", unsafe.Offsetof(native.DescriptorPoolCreateInfo{}.Flags), uintptr(C.vkw_offset(470))},
		{"DescriptorPoolCreateInfo.maxSets", unsafe.Offsetof(native.DescriptorPoolCreateInfo{}.MaxSets), uintptr(C.vkw_offset(471))},
		{"DescriptorPoolCreateInfo.poolSizeCount", unsafe.Offsetof(native.DescriptorPoolCreateInfo{}.PoolSizeCount), uintptr(C.vkw_offset(472))},
		{"DescriptorPoolCreateInfo.pPoolSizes", unsafe.Offsetof(native.DescriptorPoolCreateInfo{}.PPoolSizes), uintptr(C.vkw_offset(473))},
		{"DescriptorSetAllocateInfo.sType", unsafe.Offsetof(native.DescriptorSetAllocateInfo{}.SType), uintptr(C.vkw_offset(474))},
		{"DescriptorSetAllocateInfo.pNext", unsafe.Offsetof(native.DescriptorSetAllocateInfo{}.PNext), uintptr(C.vkw_offset(475))},
		{"DescriptorSetAllocateInfo.descriptorPool", unsafe.Offsetof(native.DescriptorSetAllocateInfo{}.DescriptorPool), uintptr(C.vkw_offset(476))},
		{"DescriptorSetAllocateInfo.descriptorSetCount", unsafe.Offsetof(native.DescriptorSetAllocateInfo{}.DescriptorSetCount), uintptr(C.vkw_offset(477))},
		{"DescriptorSetAllocateInfo.pSetLayouts", unsafe.Offsetof(native.DescriptorSetAllocateInfo{}.PSetLayouts), uintptr(C.vkw_offset(478))},
		{"DescriptorBufferInfo.buffer", unsafe.Offsetof(native.DescriptorBufferInfo{}.Buffer), uintptr(C.vkw_offset(479))},
		{"DescriptorBufferInfo.offset", unsafe.Offsetof(native.DescriptorBufferInfo{}.Offset), uintptr(C.vkw_offset(480))},
		{"DescriptorBufferInfo.range", unsafe.Offsetof(native.DescriptorBufferInfo{}.Range), uintptr(C.vkw_offset(481))},
		{"DescriptorImageInfo.sampler", unsafe.Offsetof(native.DescriptorImageInfo{}.Sampler), uintptr(C.vkw_offset(482))},
		{"DescriptorImageInfo.imageView", unsafe.Offsetof(native.DescriptorImageInfo{}.ImageView), uintptr(C.vkw_offset(483))},
		{"DescriptorImageInfo.imageLayout", unsafe.Offsetof(native.DescriptorImageInfo{}.ImageLayout), uintptr(C.vkw_offset(484))},
		{"WriteDescriptorSet.sType", unsafe.Offsetof(native.WriteDescriptorSet{}.SType), uintptr(C.vkw_offset(485))},
		{"WriteDescriptorSet.pNext", unsafe.Offsetof(native.WriteDescriptorSet{}.PNext), uintptr(C.vkw_offset(486))},
		{"WriteDescriptorSet.dstSet", unsafe.Offsetof(native.WriteDescriptorSet{}.DstSet), uintptr(C.vkw_offset(487))},
		{"WriteDescriptorSet.dstBinding", unsafe.Offsetof(native.WriteDescriptorSet{}.DstBinding), uintptr(C.vkw_offset(488))},
		{"WriteDescriptorSet.dstArrayElement", unsafe.Offsetof(native.WriteDescriptorSet{}.DstArrayElement), uintptr(C.vkw_offset(489))},
		{"WriteDescriptorSet.descriptorCount", unsafe.Offsetof(native.WriteDescriptorSet{}.DescriptorCount), uintptr(C.vkw_offset(490))},
		{"WriteDescriptorSet.descriptorType", unsafe.Offsetof(native.WriteDescriptorSet{}.DescriptorType), uintptr(C.vkw_offset(491))},
		{"WriteDescriptorSet.pImageInfo", unsafe.Offsetof(native.WriteDescriptorSet{}.PImageInfo), uintptr(C.vkw_offset(492))},
		{"WriteDescriptorSet.pBufferInfo", unsafe.Offsetof(native.WriteDescriptorSet{}.PBufferInfo), uintptr(C.vkw_offset(493))},
		{"WriteDescriptorSet.pTexelBufferView", unsafe.Offsetof(native.WriteDescriptorSet{}.PTexelBufferView), uintptr(C.vkw_offset(494))},
		{"PushConstantRange.stageFlags", unsafe.Offsetof(native.PushConstantRange{}.StageFlags), uintptr(C.vkw_offset(495))},
		{"PushConstantRange.offset", unsafe.Offsetof(native.PushConstantRange{}.Offset), uintptr(C.vkw_offset(496))},
		{"PushConstantRange.size", unsafe.Offsetof(native.PushConstantRange{}.Size), uintptr(C.vkw_offset(497))},
		{"PipelineLayoutCreateInfo.sType", unsafe.Offsetof(native.PipelineLayoutCreateInfo{}.SType), uintptr(C.vkw_offset(498))},
		{"PipelineLayoutCreateInfo.pNext", unsafe.Offsetof(native.PipelineLayoutCreateInfo{}.PNext), uintptr(C.vkw_offset(499))},
		{"PipelineLayoutCreateInfo.flags", unsafe.Offsetof(native.PipelineLayoutCreateInfo{}.Flags), uintptr(C.vkw_offset(500))},
		{"PipelineLayoutCreateInfo.setLayoutCount", unsafe.Offsetof(native.PipelineLayoutCreateInfo{}.SetLayoutCount), uintptr(C.vkw_offset(501))},
		{"PipelineLayoutCreateInfo.pSetLayouts", unsafe.Offsetof(native.PipelineLayoutCreateInfo{}.PSetLayouts), uintptr(C.vkw_offset(502))},
		{"PipelineLayoutCreateInfo.pushConstantRangeCount", unsafe.Offsetof(native.PipelineLayoutCreateInfo{}.PushConstantRangeCount), uintptr(C.vkw_offset(503))},
		{"PipelineLayoutCreateInfo.pPushConstantRanges", unsafe.Offsetof(native.PipelineLayoutCreateInfo{}.PPushConstantRanges), uintptr(C.vkw_offset(504))},
		{"SpecializationMapEntry.constantID", unsafe.Offsetof(native.SpecializationMapEntry{}.ConstantID), uintptr(C.vkw_offset(505))},
		{"SpecializationMapEntry.offset", unsafe.Offsetof(native.SpecializationMapEntry{}.Offset), uintptr(C.vkw_offset(506))},
		{"SpecializationMapEntry.size", unsafe.Offsetof(native.SpecializationMapEntry{}.Size), uintptr(C.vkw_offset(507))},
		{"SpecializationInfo.mapEntryCount", unsafe.Offsetof(native.SpecializationInfo{}.MapEntryCount), uintptr(C.vkw_offset(508))},
		{"SpecializationInfo.pMapEntries", unsafe.Offsetof(native.SpecializationInfo{}.PMapEntries), uintptr(C.vkw_offset(509))},
		{"SpecializationInfo.dataSize", unsafe.Offsetof(native.SpecializationInfo{}.DataSize), uintptr(C.vkw_offset(510))},
		{"SpecializationInfo.pData", unsafe.Offsetof(native.SpecializationInfo{}.PData), uintptr(C.vkw_offset(511))},
		{"PipelineShaderStageCreateInfo.sType", unsafe.Offsetof(native.PipelineShaderStageCreateInfo{}.SType), uintptr(C.vkw_offset(512))},
		{"PipelineShaderStageCreateInfo.pNext", unsafe.Offsetof(native.PipelineShaderStageCreateInfo{}.PNext), uintptr(C.vkw_offset(513))},
		{"PipelineShaderStageCreateInfo.flags", unsafe.Offsetof(native.PipelineShaderStageCreateInfo{}.Flags), uintptr(C.vkw_offset(514))},
		{"PipelineShaderStageCreateInfo.stage", unsafe.Offsetof(native.PipelineShaderStageCreateInfo{}.Stage), uintptr(C.vkw_offset(515))},
		{"PipelineShaderStageCreateInfo.module", unsafe.Offsetof(native.PipelineShaderStageCreateInfo{}.Module), uintptr(C.vkw_offset(516))},
		{"PipelineShaderStageCreateInfo.pName", unsafe.Offsetof(native.PipelineShaderStageCreateInfo{}.PName), uintptr(C.vkw_offset(517))},
		{"PipelineShaderStageCreateInfo.pSpecializationInfo", unsafe.Offsetof(native.PipelineShaderStageCreateInfo{}.PSpecializationInfo), uintptr(C.vkw_offset(518))},
		{"ComputePipelineCreateInfo.sType", unsafe.Offsetof(native.ComputePipelineCreateInfo{}.SType), uintptr(C.vkw_offset(519))},
		{"ComputePipelineCreateInfo.pNext", unsafe.Offsetof(native.ComputePipelineCreateInfo{}.PNext), uintptr(C.vkw_offset(520))},
		{"ComputePipelineCreateInfo.flags", unsafe.Offsetof(native.ComputePipelineCreateInfo{}.Flags), uintptr(C.vkw_offset(521))},
		{"ComputePipelineCreateInfo.stage", unsafe.Offsetof(native.ComputePipelineCreateInfo{}.Stage), uintptr(C.vkw_offset(522))},
		{"ComputePipelineCreateInfo.layout", unsafe.Offsetof(native.ComputePipelineCreateInfo{}.Layout), uintptr(C.vkw_offset(523))},
		{"ComputePipelineCreateInfo.basePipelineHandle", unsafe.Offsetof(native.ComputePipelineCreateInfo{}.BasePipelineHandle), uintptr(C.vkw_offset(524))},
		{"ComputePipelineCreateInfo.basePipelineIndex", unsafe.Offsetof(native.ComputePipelineCreateInfo{}.BasePipelineIndex), uintptr(C.vkw_offset(525))},
		{"VertexInputBindingDescription.binding", unsafe.Offsetof(native.VertexInputBindingDescription{}.Binding), uintptr(C.vkw_offset(526))},
		{"VertexInputBindingDescription.stride", unsafe.Offsetof(native.VertexInputBindingDescription{}.Stride), uintptr(C.vkw_offset(527))},
		{"VertexInputBindingDescription.inputRate", unsafe.Offsetof(native.VertexInputBindingDescription{}.InputRate), uintptr(C.vkw_offset(528))},
		{"VertexInputAttributeDescription.location", unsafe.Offsetof(native.VertexInputAttributeDescription{}.Location), uintptr(C.vkw_offset(529))},
		{"VertexInputAttributeDescription.binding", unsafe.Offsetof(native.VertexInputAttributeDescription{}.Binding), uintptr(C.vkw_offset(530))},
		{"VertexInputAttributeDescription.format", unsafe.Offsetof(native.VertexInputAttributeDescription{}.Format), uintptr(C.vkw_offset(531))},
		{"VertexInputAttributeDescription.offset", unsafe.Offsetof(native.VertexInputAttributeDescription{}.Offset), uintptr(C.vkw_offset(532))},
		{"PipelineVertexInputStateCreateInfo.sType", unsafe.Offsetof(native.PipelineVertexInputStateCreateInfo{}.SType), uintptr(C.vkw_offset(533))},
		{"PipelineVertexInputStateCreateInfo.pNext", unsafe.Offsetof(native.PipelineVertexInputStateCreateInfo{}.PNext), uintptr(C.vkw_offset(534))},
		{"PipelineVertexInputStateCreateInfo.flags", unsafe.Offsetof(native.PipelineVertexInputStateCreateInfo{}.Flags), uintptr(C.vkw_offset(535))},
		{"PipelineVertexInputStateCreateInfo.vertexBindingDescriptionCount", unsafe.Offsetof(native.PipelineVertexInputStateCreateInfo{}.VertexBindingDescriptionCount), uintptr(C.vkw_offset(536))},
		{"PipelineVertexInputStateCreateInfo.pVertexBindingDescriptions", unsafe.Offsetof(native.PipelineVertexInputStateCreateInfo{}.PVertexBindingDescriptions), uintptr(C.vkw_offset(537))},
		{"PipelineVertexInputStateCreateInfo.vertexAttributeDescriptionCount", unsafe.Offsetof(native.PipelineVertexInputStateCreateInfo{}.VertexAttributeDescriptionCount), uintptr(C.vkw_offset(538))},
		{"PipelineVertexInputStateCreateInfo.pVertexAttributeDescriptions", unsafe.Offsetof(native.PipelineVertexInputStateCreateInfo{}.PVertexAttributeDescriptions), uintptr(C.vkw_offset(539))},
		{"PipelineInputAssemblyStateCreateInfo.sType", unsafe.Offsetof(native.PipelineInputAssemblyStateCreateInfo{}.SType), uintptr(C.vkw_offset(540))},
		{"PipelineInputAssemblyStateCreateInfo.pNext", unsafe.Offsetof(native.PipelineInputAssemblyStateCreateInfo{}.PNext), uintptr(C.vkw_offset(541))},
		{"PipelineInputAssemblyStateCreateInfo.flags", unsafe.Offsetof(native.PipelineInputAssemblyStateCreateInfo{}.Flags), uintptr(C.vkw_offset(542))},
		{"PipelineInputAssemblyStateCreateInfo.topology", unsafe.Offsetof(native.PipelineInputAssemblyStateCreateInfo{}.Topology), uintptr(C.vkw_offset(543))},
		{"PipelineInputAssemblyStateCreateInfo.primitiveRestartEnable", unsafe.Offsetof(native.PipelineInputAssemblyStateCreateInfo{}.PrimitiveRestartEnable), uintptr(C.vkw_offset(544))},
		{"PipelineTessellationStateCreateInfo.sType", unsafe.Offsetof(native.PipelineTessellationStateCreateInfo{}.SType), uintptr(C.vkw_offset(545))},
		{"PipelineTessellationStateCreateInfo.pNext", unsafe.Offsetof(native.PipelineTessellationStateCreateInfo{}.PNext), uintptr(C.vkw_offset(546))},
		{"PipelineTessellationStateCreateInfo.flags", unsafe.Offsetof(native.PipelineTessellationStateCreateInfo{}.Flags), uintptr(C.vkw_offset(547))},
		{"PipelineTessellationStateCreateInfo.patchControlPoints", unsafe.Offsetof(native.PipelineTessellationStateCreateInfo{}.PatchControlPoints), uintptr(C.vkw_offset(548))},
		{"PipelineViewportStateCreateInfo.sType", unsafe.Offsetof(native.PipelineViewportStateCreateInfo{}.SType), uintptr(C.vkw_offset(549))},
		{"PipelineViewportStateCreateInfo.pNext", unsafe.Offsetof(native.PipelineViewportStateCreateInfo{}.PNext), uintptr(C.vkw_offset(550))},
		{"PipelineViewportStateCreateInfo.flags", unsafe.Offsetof(native.PipelineViewportStateCreateInfo{}.Flags), uintptr(C.vkw_offset(551))},
		{"PipelineViewportStateCreateInfo.viewportCount", unsafe.Offsetof(native.PipelineViewportStateCreateInfo{}.ViewportCount), uintptr(C.vkw_offset(552))},
		{"PipelineViewportStateCreateInfo.pViewports", unsafe.Offsetof(native.PipelineViewportStateCreateInfo{}.PViewports), uintptr(C.vkw_offset(553))},
		{"PipelineViewportStateCreateInfo.scissorCount", unsafe.Offsetof(native.PipelineViewportStateCreateInfo{}.ScissorCount), uintptr(C.vkw_offset(554))},
		{"PipelineViewportStateCreateInfo.pScissors", unsafe.Offsetof(native.PipelineViewportStateCreateInfo{}.PScissors), uintptr(C.vkw_offset(555))},
		{"PipelineRasterizationStateCreateInfo.sType", unsafe.Offsetof(native.PipelineRasterizationStateCreateInfo{}.SType), uintptr(C.vkw_offset(556))},
		{"PipelineRasterizationStateCreateInfo.pNext", unsafe.Offsetof(native.PipelineRasterizationStateCreateInfo{}.PNext), uintptr(C.vkw_offset(557))},
		{"PipelineRasterizationStateCreateInfo.flags", unsafe.Offsetof(native.PipelineRasterizationStateCreateInfo{}.Flags), uintptr(C.vkw_offset(558))},
		{"PipelineRasterizationStateCreateInfo.depthClampEnable", unsafe.Offsetof(native.PipelineRasterizationStateCreateInfo{}.DepthClampEnable), uintptr(C.vkw_offset(559))},
		{"PipelineRasterizationStateCreateInfo.rasterizerDiscardEnable", unsafe.Offsetof(native.PipelineRasterizationStateCreateInfo{}.RasterizerDiscardEnable), uintptr(C.vkw_offset(560))},
		{"PipelineRasterizationStateCreateInfo.polygonMode", unsafe.Offsetof(native.PipelineRasterizationStateCreateInfo{}.PolygonMode), uintptr(C.vkw_offset(561))},
		{"PipelineRasterizationStateCreateInfo.cullMode", unsafe.Offsetof(native.PipelineRasterizationStateCreateInfo{}.CullMode), uintptr(C.vkw_offset(562))},
		{"PipelineRasterizationStateCreateInfo.frontFace", unsafe.Offsetof(native.PipelineRasterizationStateCreateInfo{}.FrontFace), uintptr(C.vkw_offset(563))},
		{"PipelineRasterizationStateCreateInfo.depthBiasEnable", unsafe.Offsetof(native.PipelineRasterizationStateCreateInfo{}.DepthBiasEnable), uintptr(C.vkw_offset(564))},
		{"PipelineRasterizationStateCreateInfo.depthBiasConstantFactor", unsafe.Offsetof(native.PipelineRasterizationStateCreateInfo{}.DepthBiasConstantFactor), uintptr(C.vkw_offset(565))},
		{"PipelineRasterizationStateCreateInfo.depthBiasClamp", unsafe.Offsetof(native.PipelineRasterizationStateCreateInfo{}.DepthBiasClamp), uintptr(C.vkw_offset(566))},
		{"PipelineRasterizationStateCreateInfo.depthBiasSlopeFactor", unsafe.Offsetof(native.PipelineRasterizationStateCreateInfo{}.DepthBiasSlopeFactor), uintptr(C.vkw_offset(567))},
		{"PipelineRasterizationStateCreateInfo.lineWidth", unsafe.Offsetof(native.PipelineRasterizationStateCreateInfo{}.LineWidth), uintptr(C.vkw_offset(568))},
		{"PipelineMultisampleStateCreateInfo.sType", unsafe.Offsetof(native.PipelineMultisampleStateCreateInfo{}.SType), uintptr(C.vkw_offset(569))},
		{"PipelineMultisampleStateCreateInfo.pNext", unsafe.Offsetof(native.PipelineMultisampleStateCreateInfo{}.PNext), uintptr(C.vkw_offset(570))},
		{"PipelineMultisampleStateCreateInfo.flags", unsafe.Offsetof(native.PipelineMultisampleStateCreateInfo{}.Flags), uintptr(C.vkw_offset(571))},
		{"PipelineMultisampleStateCreateInfo.rasterizationSamples", unsafe.Offsetof(native.PipelineMultisampleStateCreateInfo{}.RasterizationSamples), uintptr(C.vkw_offset(572))},
		{"PipelineMultisampleStateCreateInfo.sampleShadingEnable", unsafe.Offsetof(native.PipelineMultisampleStateCreateInfo{}.SampleShadingEnable), uintptr(C.vkw_offset(573))},
		{"PipelineMultisampleStateCreateInfo.minSampleShading", unsafe.Offsetof(native.PipelineMultisampleStateCreateInfo{}.MinSampleShading), uintptr(C.vkw_offset(574))},
		{"PipelineMultisampleStateCreateInfo.pSampleMask", unsafe.Offsetof(native.PipelineMultisampleStateCreateInfo{}.PSampleMask), uintptr(C.vkw_offset(575))},
		{"PipelineMultisampleStateCreateInfo.alphaToCoverageEnable", unsafe.Offsetof(native.PipelineMultisampleStateCreateInfo{}.AlphaToCoverageEnable), uintptr(C.vkw_offset(576))},
		{"PipelineMultisampleStateCreateInfo.alphaToOneEnable", unsafe.Offsetof(native.PipelineMultisampleStateCreateInfo{}.AlphaToOneEnable), uintptr(C.vkw_offset(577))},
		{"StencilOpState.failOp", unsafe.Offsetof(native.StencilOpState{}.FailOp), uintptr(C.vkw_offset(578))},
		{"StencilOpState.passOp", unsafe.Offsetof(native.StencilOpState{}.PassOp), uintptr(C.vkw_offset(579))},
		{"StencilOpState.depthFailOp", unsafe.Offsetof(native.StencilOpState{}.DepthFailOp), uintptr(C.vkw_offset(580))},
		{"StencilOpState.compareOp", unsafe.Offsetof(native.StencilOpState{}.CompareOp), uintptr(C.vkw_offset(581))},
		{"StencilOpState.compareMask", unsafe.Offsetof(native.StencilOpState{}.CompareMask), uintptr(C.vkw_offset(582))},
		{"StencilOpState.writeMask", unsafe.Offsetof(native.StencilOpState{}.WriteMask), uintptr(C.vkw_offset(583))},
		{"StencilOpState.reference", unsafe.Offsetof(native.StencilOpState{}.Reference), uintptr(C.vkw_offset(584))},
		{"PipelineDepthStencilStateCreateInfo.sType", unsafe.Offsetof(native.PipelineDepthStencilStateCreateInfo{}.SType), uintptr(C.vkw_offset(585))},
		{"PipelineDepthStencilStateCreateInfo.pNext", unsafe.Offsetof(native.PipelineDepthStencilStateCreateInfo{}.PNext), uintptr(C.vkw_offset(586))},
		{"PipelineDepthStencilStateCreateInfo.flags", unsafe.Offsetof(native.PipelineDepthStencilStateCreateInfo{}.Flags), uintptr(C.vkw_offset(587))},
		{"PipelineDepthStencilStateCreateInfo.depthTestEnable", unsafe.Offsetof(native.PipelineDepthStencilStateCreateInfo{}.DepthTestEnable), uintptr(C.vkw_offset(588))},
		{"PipelineDepthStencilStateCreateInfo.depthWriteEnable", unsafe.Offsetof(native.PipelineDepthStencilStateCreateInfo{}.DepthWriteEnable), uintptr(C.vkw_offset(589))},
		{"PipelineDepthStencilStateCreateInfo.depthCompareOp", unsafe.Offsetof(native.PipelineDepthStencilStateCreateInfo{}.DepthCompareOp), uintptr(C.vkw_offset(590))},
		{"PipelineDepthStencilStateCreateInfo.depthBoundsTestEnable", unsafe.Offsetof(native.PipelineDepthStencilStateCreateInfo{}.DepthBoundsTestEnable), uintptr(C.vkw_offset(591))},
		{"PipelineDepthStencilStateCreateInfo.stencilTestEnable", unsafe.Offsetof(native.PipelineDepthStencilStateCreateInfo{}.StencilTestEnable), uintptr(C.vkw_offset(592))},
		{"PipelineDepthStencilStateCreateInfo.front", unsafe.Offsetof(native.PipelineDepthStencilStateCreateInfo{}.Front), uintptr(C.vkw_offset(593))},
		{"PipelineDepthStencilStateCreateInfo.back", unsafe.Offsetof(native.PipelineDepthStencilStateCreateInfo{}.Back), uintptr(C.vkw_offset(594))},
		{"PipelineDepthStencilStateCreateInfo.minDepthBounds", unsafe.Offsetof(native.PipelineDepthStencilStateCreateInfo{}.MinDepthBounds), uintptr(C.vkw_offset(595))},
		{"PipelineDepthStencilStateCreateInfo.maxDepthBounds", unsafe.Offsetof(native.PipelineDepthStencilStateCreateInfo{}.MaxDepthBounds), uintptr(C.vkw_offset(596))},
		{"PipelineColorBlendAttachmentState.blendEnable", unsafe.Offsetof(native.PipelineColorBlendAttachmentState{}.BlendEnable), uintptr(C.vkw_offset(597))},
		{"PipelineColorBlendAttachmentState.srcColorBlendFactor", unsafe.Offsetof(native.PipelineColorBlendAttachmentState{}.SrcColorBlendFactor), uintptr(C.vkw_offset(598))},
		{"PipelineColorBlendAttachmentState.dstColorBlendFactor", unsafe.Offsetof(native.PipelineColorBlendAttachmentState{}.DstColorBlendFactor), uintptr(C.vkw_offset(599))},
		{"PipelineColorBlendAttachmentState.colorBlendOp", unsafe.Offsetof(native.PipelineColorBlendAttachmentState{}.ColorBlendOp), uintptr(C.vkw_offset(600))},
		{"PipelineColorBlendAttachmentState.srcAlphaBlendFactor", unsafe.Offsetof(native.PipelineColorBlendAttachmentState{}.SrcAlphaBlendFactor), uintptr(C.vkw_offset(601))},
		{"PipelineColorBlendAttachmentState.dstAlphaBlendFactor", unsafe.Offsetof(native.PipelineColorBlendAttachmentState{}.DstAlphaBlendFactor), uintptr(C.vkw_offset(602))},
		{"PipelineColorBlendAttachmentState.alphaBlendOp", unsafe.Offsetof(native.PipelineColorBlendAttachmentState{}.AlphaBlendOp), uintptr(C.vkw_offset(603))},
		{"PipelineColorBlendAttachmentState.colorWriteMask", unsafe.Offsetof(native.PipelineColorBlendAttachmentState{}.ColorWriteMask), uintptr(C.vkw_offset(604))},
		{"PipelineColorBlendStateCreateInfo.sType", unsafe.Offsetof(native.PipelineColorBlendStateCreateInfo{}.SType), uintptr(C.vkw_offset(605))},
		{"PipelineColorBlendStateCreateInfo.pNext", unsafe.Offsetof(native.PipelineColorBlendStateCreateInfo{}.PNext), uintptr(C.vkw_offset(606))},
		{"PipelineColorBlendStateCreateInfo.flags", unsafe.Offsetof(native.PipelineColorBlendStateCreateInfo{}.Flags), uintptr(C.vkw_offset(607))},
		{"PipelineColorBlendStateCreateInfo.logicOpEnable", unsafe.Offsetof(native.PipelineColorBlendStateCreateInfo{}.LogicOpEnable), uintptr(C.vkw_offset(608))},
		{"PipelineColorBlendStateCreateInfo.logicOp", unsafe.Offsetof(native.PipelineColorBlendStateCreateInfo{}.LogicOp), uintptr(C.vkw_offset(609))},
		{"PipelineColorBlendStateCreateInfo.attachmentCount", unsafe.Offsetof(native.PipelineColorBlendStateCreateInfo{}.AttachmentCount), uintptr(C.vkw_offset(610))},
		{"PipelineColorBlendStateCreateInfo.pAttachments", unsafe.Offsetof(native.PipelineColorBlendStateCreateInfo{}.PAttachments), uintptr(C.vkw_offset(611))},
		{"PipelineColorBlendStateCreateInfo.blendConstants", unsafe.Offsetof(native.PipelineColorBlendStateCreateInfo{}.BlendConstants), uintptr(C.vkw_offset(612))},
		{"PipelineDynamicStateCreateInfo.sType", unsafe.Offsetof(native.PipelineDynamicStateCreateInfo{}.SType), uintptr(C.vkw_offset(613))},
		{"PipelineDynamicStateCreateInfo.pNext", unsafe.Offsetof(native.PipelineDynamicStateCreateInfo{}.PNext), uintptr(C.vkw_offset(614))},
		{"PipelineDynamicStateCreateInfo.flags", unsafe.Offsetof(native.PipelineDynamicStateCreateInfo{}.Flags), uintptr(C.vkw_offset(615))},
		{"PipelineDynamicStateCreateInfo.dynamicStateCount", unsafe.Offsetof(native.PipelineDynamicStateCreateInfo{}.DynamicStateCount), uintptr(C.vkw_offset(616))},
		{"PipelineDynamicStateCreateInfo.pDynamicStates", unsafe.Offsetof(native.PipelineDynamicStateCreateInfo{}.PDynamicStates), uintptr(C.vkw_offset(617))},
		{"GraphicsPipelineCreateInfo.sType", unsafe.Offsetof(native.GraphicsPipelineCreateInfo{}.SType), uintptr(C.vkw_offset(618))},
		{"GraphicsPipelineCreateInfo.pNext", unsafe.Offsetof(native.GraphicsPipelineCreateInfo{}.PNext), uintptr(C.vkw_offset(619))},
		{"GraphicsPipelineCreateInfo.flags", unsafe.Offsetof(native.GraphicsPipelineCreateInfo{}.Flags), uintptr(C.vkw_offset(620))},
		{"GraphicsPipelineCreateInfo.stageCount", unsafe.Offsetof(native.GraphicsPipelineCreateInfo{}.StageCount), uintptr(C.vkw_offset(621))},
		{"GraphicsPipelineCreateInfo.pStages", unsafe.Offsetof(native.GraphicsPipelineCreateInfo{}.PStages), uintptr(C.vkw_offset(622))},
		{"GraphicsPipelineCreateInfo.pVertexInputState", unsafe.Offsetof(native.GraphicsPipelineCreateInfo{}.PVertexInputState), uintptr(C.vkw_offset(623))},
		{"GraphicsPipelineCreateInfo.pInputAssemblyState", unsafe.Offsetof(native.GraphicsPipelineCreateInfo{}.PInputAssemblyState), uintptr(C.vkw_offset(624))},
		{"GraphicsPipelineCreateInfo.pTessellationState", unsafe.Offsetof(native.GraphicsPipelineCreateInfo{}.PTessellationState), uintptr(C.vkw_offset(625))},
		{"GraphicsPipelineCreateInfo.pViewportState", unsafe.Offsetof(native.GraphicsPipelineCreateInfo{}.PViewportState), uintptr(C.vkw_offset(626))},
		{"GraphicsPipelineCreateInfo.pRasterizationState", unsafe.Offsetof(native.GraphicsPipelineCreateInfo{}.PRasterizationState), uintptr(C.vkw_offset(627))},
		{"GraphicsPipelineCreateInfo.pMultisampleState", unsafe.Offsetof(native.GraphicsPipelineCreateInfo{}.PMultisampleState), uintptr(C.vkw_offset(628))},
		{"GraphicsPipelineCreateInfo.pDepthStencilState", unsafe.Offsetof(native.GraphicsPipelineCreateInfo{}.PDepthStencilState), uintptr(C.vkw_offset(629))},
		{"GraphicsPipelineCreateInfo.pColorBlendState", unsafe.Offsetof(native.GraphicsPipelineCreateInfo{}.PColorBlendState), uintptr(C.vkw_offset(630))},
		{"GraphicsPipelineCreateInfo.pDynamicState", unsafe.Offsetof(native.GraphicsPipelineCreateInfo{}.PDynamicState), uintptr(C.vkw_offset(631))},
		{"GraphicsPipelineCreateInfo.layout", unsafe.Offsetof(native.GraphicsPipelineCreateInfo{}.Layout), uintptr(C.vkw_offset(632))},
		{"GraphicsPipelineCreateInfo.renderPass", unsafe.Offsetof(native.GraphicsPipelineCreateInfo{}.RenderPass), uintptr(C.vkw_offset(633))},
		{"GraphicsPipelineCreateInfo.subpass", unsafe.Offsetof(native.GraphicsPipelineCreateInfo{}.Subpass), uintptr(C.vkw_offset(634))},
		{"GraphicsPipelineCreateInfo.basePipelineHandle", unsafe.Offsetof(native.GraphicsPipelineCreateInfo{}.BasePipelineHandle), uintptr(C.vkw_offset(635))},
		{"GraphicsPipelineCreateInfo.basePipelineIndex", unsafe.Offsetof(native.GraphicsPipelineCreateInfo{}.BasePipelineIndex), uintptr(C.vkw_offset(636))},
		{"PipelineRenderingCreateInfo.sType", unsafe.Offsetof(native.PipelineRenderingCreateInfo{}.SType), uintptr(C.vkw_offset(637))},
		{"PipelineRenderingCreateInfo.pNext", unsafe.Offsetof(native.PipelineRenderingCreateInfo{}.PNext), uintptr(C.vkw_offset(638))},
		{"PipelineRenderingCreateInfo.viewMask", unsafe.Offsetof(native.PipelineRenderingCreateInfo{}.ViewMask), uintptr(C.vkw_offset(639))},
		{"PipelineRenderingCreateInfo.colorAttachmentCount", unsafe.Offsetof(native.PipelineRenderingCreateInfo{}.ColorAttachmentCount), uintptr(C.vkw_offset(640))},
		{"PipelineRenderingCreateInfo.pColorAttachmentFormats", unsafe.Offsetof(native.PipelineRenderingCreateInfo{}.PColorAttachmentFormats), uintptr(C.vkw_offset(641))},
		{"PipelineRenderingCreateInfo.depthAttachmentFormat", unsafe.Offsetof(native.PipelineRenderingCreateInfo{}.DepthAttachmentFormat), uintptr(C.vkw_offset(642))},
		{"PipelineRenderingCreateInfo.stencilAttachmentFormat", unsafe.Offsetof(native.PipelineRenderingCreateInfo{}.StencilAttachmentFormat), uintptr(C.vkw_offset(643))},
		{"SamplerCreateInfo.sType", unsafe.Offsetof(native.SamplerCreateInfo{}.SType), uintptr(C.vkw_offset(644))},
		{"SamplerCreateInfo.pNext", unsafe.Offsetof(native.SamplerCreateInfo{}.PNext), uintptr(C.vkw_offset(645))},
		{"SamplerCreateInfo.flags", unsafe.Offsetof(native.SamplerCreateInfo{}.Flags), uintptr(C.vkw_offset(646))},
		{"SamplerCreateInfo.magFilter", unsafe.Offsetof(native.SamplerCreateInfo{}.MagFilter), uintptr(C.vkw_offset(647))},
		{"SamplerCreateInfo.minFilter", unsafe.Offsetof(native.SamplerCreateInfo{}.MinFilter), uintptr(C.vkw_offset(648))},
		{"SamplerCreateInfo.mipmapMode", unsafe.Offsetof(native.SamplerCreateInfo{}.MipmapMode), uintptr(C.vkw_offset(649))},
		{"SamplerCreateInfo.addressModeU", unsafe.Offsetof(native.SamplerCreateInfo{}.AddressModeU), uintptr(C.vkw_offset(650))},
		{"SamplerCreateInfo.addressModeV", unsafe.Offsetof(native.SamplerCreateInfo{}.AddressModeV), uintptr(C.vkw_offset(651))},
		{"SamplerCreateInfo.addressModeW", unsafe.Offsetof(native.SamplerCreateInfo{}.AddressModeW), uintptr(C.vkw_offset(652))},
		{"SamplerCreateInfo.mipLodBias", unsafe.Offsetof(native.SamplerCreateInfo{}.MipLodBias), uintptr(C.vkw_offset(653))},
		{"SamplerCreateInfo.anisotropyEnable", unsafe.Offsetof(native.SamplerCreateInfo{}.AnisotropyEnable), uintptr(C.vkw_offset(654))},
		{"SamplerCreateInfo.maxAnisotropy", unsafe.Offsetof(native.SamplerCreateInfo{}.MaxAnisotropy), uintptr(C.vkw_offset(655))},
		{"SamplerCreateInfo.compareEnable", unsafe.Offsetof(native.SamplerCreateInfo{}.CompareEnable), uintptr(C.vkw_offset(656))},
		{"SamplerCreateInfo.compareOp", unsafe.Offsetof(native.SamplerCreateInfo{}.CompareOp), uintptr(C.vkw_offset(657))},
		{"SamplerCreateInfo.minLod", unsafe.Offsetof(native.SamplerCreateInfo{}.MinLod), uintptr(C.vkw_offset(658))},
		{"SamplerCreateInfo.maxLod", unsafe.Offsetof(native.SamplerCreateInfo{}.MaxLod), uintptr(C.vkw_offset(659))},
		{"SamplerCreateInfo.borderColor", unsafe.Offsetof(native.SamplerCreateInfo{}.BorderColor), uintptr(C.vkw_offset(660))},
		{"SamplerCreateInfo.unnormalizedCoordinates", unsafe.Offsetof(native.SamplerCreateInfo{}.UnnormalizedCoordinates), uintptr(C.vkw_offset(661))},
		{"SparseMemoryBind.resourceOffset", unsafe.Offsetof(native.SparseMemoryBind{}.ResourceOffset), uintptr(C.vkw_offset(662))},
		{"SparseMemoryBind.size", unsafe.Offsetof(native.SparseMemoryBind{}.Size), uintptr(C.vkw_offset(663))},
		{"SparseMemoryBind.memory", unsafe.Offsetof(native.SparseMemoryBind{}.Memory), uintptr(C.vkw_offset(664))},
		{"SparseMemoryBind.memoryOffset", unsafe.Offsetof(native.SparseMemoryBind{}.MemoryOffset), uintptr(C.vkw_offset(665))},
		{"SparseMemoryBind.flags", unsafe.Offsetof(native.SparseMemoryBind{}.Flags), uintptr(C.vkw_offset(666))},
		{"SparseBufferMemoryBindInfo.buffer", unsafe.Offsetof(native.SparseBufferMemoryBindInfo{}.Buffer), uintptr(C.vkw_offset(667))},
		{"SparseBufferMemoryBindInfo.bindCount", unsafe.Offsetof(native.SparseBufferMemoryBindInfo{}.BindCount), uintptr(C.vkw_offset(668))},
		{"SparseBufferMemoryBindInfo.pBinds", unsafe.Offsetof(native.SparseBufferMemoryBindInfo{}.PBinds), uintptr(C.vkw_offset(669))},
		{"SparseImageOpaqueMemoryBindInfo.image", unsafe.Offsetof(native.SparseImageOpaqueMemoryBindInfo{}.Image), uintptr(C.vkw_offset(670))},
		{"SparseImageOpaqueMemoryBindInfo.bindCount", unsafe.Offsetof(native.SparseImageOpaqueMemoryBindInfo{}.BindCount), uintptr(C.vkw_offset(671))},
		{"SparseImageOpaqueMemoryBindInfo.pBinds", unsafe.Offsetof(native.SparseImageOpaqueMemoryBindInfo{}.PBinds), uintptr(C.vkw_offset(672))},
		{"ImageSubresource.aspectMask", unsafe.Offsetof(native.ImageSubresource{}.AspectMask), uintptr(C.vkw_offset(673))},
		{"ImageSubresource.mipLevel", unsafe.Offsetof(native.ImageSubresource{}.MipLevel), uintptr(C.vkw_offset(674))},
		{"ImageSubresource.arrayLayer", unsafe.Offsetof(native.ImageSubresource{}.ArrayLayer), uintptr(C.vkw_offset(675))},
		{"SparseImageMemoryBind.subresource", unsafe.Offsetof(native.SparseImageMemoryBind{}.Subresource), uintptr(C.vkw_offset(676))},
		{"SparseImageMemoryBind.offset", unsafe.Offsetof(native.SparseImageMemoryBind{}.Offset), uintptr(C.vkw_offset(677))},
		{"SparseImageMemoryBind.extent", unsafe.Offsetof(native.SparseImageMemoryBind{}.Extent), uintptr(C.vkw_offset(678))},
		{"SparseImageMemoryBind.memory", unsafe.Offsetof(native.SparseImageMemoryBind{}.Memory), uintptr(C.vkw_offset(679))},
		{"SparseImageMemoryBind.memoryOffset", unsafe.Offsetof(native.SparseImageMemoryBind{}.MemoryOffset), uintptr(C.vkw_offset(680))},
		{"SparseImageMemoryBind.flags", unsafe.Offsetof(native.SparseImageMemoryBind{}.Flags), uintptr(C.vkw_offset(681))},
		{"SparseImageMemoryBindInfo.image", unsafe.Offsetof(native.SparseImageMemoryBindInfo{}.Image), uintptr(C.vkw_offset(682))},
		{"SparseImageMemoryBindInfo.bindCount", unsafe.Offsetof(native.SparseImageMemoryBindInfo{}.BindCount), uintptr(C.vkw_offset(683))},
		{"SparseImageMemoryBindInfo.pBinds", unsafe.Offsetof(native.SparseImageMemoryBindInfo{}.PBinds), uintptr(C.vkw_offset(684))},
		{"BindSparseInfo.sType", unsafe.Offsetof(native.BindSparseInfo{}.SType), uintptr(C.vkw_offset(685))},
		{"BindSparseInfo.pNext", unsafe.Offsetof(native.BindSparseInfo{}.PNext), uintptr(C.vkw_offset(686))},
		{"BindSparseInfo.waitSemaphoreCount", unsafe.Offsetof(native.BindSparseInfo{}.WaitSemaphoreCount), uintptr(C.vkw_offset(687))},
		{"BindSparseInfo.pWaitSemaphores", unsafe.Offsetof(native.BindSparseInfo{}.PWaitSemaphores), uintptr(C.vkw_offset(688))},
		{"BindSparseInfo.bufferBindCount", unsafe.Offsetof(native.BindSparseInfo{}.BufferBindCount), uintptr(C.vkw_offset(689))},
		{"BindSparseInfo.pBufferBinds", unsafe.Offsetof(native.BindSparseInfo{}.PBufferBinds), uintptr(C.vkw_offset(690))},
		{"BindSparseInfo.imageOpaqueBindCount", unsafe.Offsetof(native.BindSparseInfo{}.ImageOpaqueBindCount), uintptr(C.vkw_offset(691))},
		{"BindSparseInfo.pImageOpaqueBinds", unsafe.Offsetof(native.BindSparseInfo{}.PImageOpaqueBinds), uintptr(C.vkw_offset(692))},
		{"BindSparseInfo.imageBindCount", unsafe.Offsetof(native.BindSparseInfo{}.ImageBindCount), uintptr(C.vkw_offset(693))},
		{"BindSparseInfo.pImageBinds", unsafe.Offsetof(native.BindSparseInfo{}.PImageBinds), uintptr(C.vkw_offset(694))},
		{"BindSparseInfo.signalSemaphoreCount", unsafe.Offsetof(native.BindSparseInfo{}.SignalSemaphoreCount), uintptr(C.vkw_offset(695))},
		{"BindSparseInfo.pSignalSemaphores", unsafe.Offsetof(native.BindSparseInfo{}.PSignalSemaphores), uintptr(C.vkw_offset(696))},
		{"SparseImageFormatProperties.aspectMask", unsafe.Offsetof(native.SparseImageFormatProperties{}.AspectMask), uintptr(C.vkw_offset(697))},
		{"SparseImageFormatProperties.imageGranularity", unsafe.Offsetof(native.SparseImageFormatProperties{}.ImageGranularity), uintptr(C.vkw_offset(698))},
		{"SparseImageFormatProperties.flags", unsafe.Offsetof(native.SparseImageFormatProperties{}.Flags), uintptr(C.vkw_offset(699))},
		{"SparseImageMemoryRequirements.formatProperties", unsafe.Offsetof(native.SparseImageMemoryRequirements{}.FormatProperties), uintptr(C.vkw_offset(700))},
		{"SparseImageMemoryRequirements.imageMipTailFirstLod", unsafe.Offsetof(native.SparseImageMemoryRequirements{}.ImageMipTailFirstLod), uintptr(C.vkw_offset(701))},
		{"SparseImageMemoryRequirements.imageMipTailSize", unsafe.Offsetof(native.SparseImageMemoryRequirements{}.ImageMipTailSize), uintptr(C.vkw_offset(702))},
		{"SparseImageMemoryRequirements.imageMipTailOffset", unsafe.Offsetof(native.SparseImageMemoryRequirements{}.ImageMipTailOffset), uintptr(C.vkw_offset(703))},
		{"SparseImageMemoryRequirements.imageMipTailStride", unsafe.Offsetof(native.SparseImageMemoryRequirements{}.ImageMipTailStride), uintptr(C.vkw_offset(704))},
		{"SurfaceCapabilitiesKHR.minImageCount", unsafe.Offsetof(native.SurfaceCapabilitiesKHR{}.MinImageCount), uintptr(C.vkw_offset(705))},
		{"SurfaceCapabilitiesKHR.maxImageCount", unsafe.Offsetof(native.SurfaceCapabilitiesKHR{}.MaxImageCount), uintptr(C.vkw_offset(706))},
		{"SurfaceCapabilitiesKHR.currentExtent", unsafe.Offsetof(native.SurfaceCapabilitiesKHR{}.CurrentExtent), uintptr(C.vkw_offset(707))},
		{"SurfaceCapabilitiesKHR.minImageExtent", unsafe.Offsetof(native.SurfaceCapabilitiesKHR{}.MinImageExtent), uintptr(C.vkw_offset(708))},
		{"SurfaceCapabilitiesKHR.maxImageExtent", unsafe.Offsetof(native.SurfaceCapabilitiesKHR{}.MaxImageExtent), uintptr(C.vkw_offset(709))},
		{"SurfaceCapabilitiesKHR.maxImageArrayLayers", unsafe.Offsetof(native.SurfaceCapabilitiesKHR{}.MaxImageArrayLayers), uintptr(C.vkw_offset(710))},
		{"SurfaceCapabilitiesKHR.supportedTransforms", unsafe.Offsetof(native.SurfaceCapabilitiesKHR{}.SupportedTransforms), uintptr(C.vkw_offset(711))},
		{"SurfaceCapabilitiesKHR.currentTransform", unsafe.Offsetof(native.SurfaceCapabilitiesKHR{}.CurrentTransform), uintptr(C.vkw_offset(712))},
		{"SurfaceCapabilitiesKHR.supportedCompositeAlpha", unsafe.Offsetof(native.SurfaceCapabilitiesKHR{}.SupportedCompositeAlpha), uintptr(C.vkw_offset(713))},
		{"SurfaceCapabilitiesKHR.supportedUsageFlags", unsafe.Offsetof(native.SurfaceCapabilitiesKHR{}.SupportedUsageFlags), uintptr(C.vkw_offset(714))},
		{"SurfaceFormatKHR.format", unsafe.Offsetof(native.SurfaceFormatKHR{}.Format), uintptr(C.vkw_offset(715))},
		{"SurfaceFormatKHR.colorSpace", unsafe.Offsetof(native.SurfaceFormatKHR{}.ColorSpace), uintptr(C.vkw_offset(716))},
		{"SwapchainCreateInfoKHR.sType", unsafe.Offsetof(native.SwapchainCreateInfoKHR{}.SType), uintptr(C.vkw_offset(717))},
		{"SwapchainCreateInfoKHR.pNext", unsafe.Offsetof(native.SwapchainCreateInfoKHR{}.PNext), uintptr(C.vkw_offset(718))},
		{"SwapchainCreateInfoKHR.flags", unsafe.Offsetof(native.SwapchainCreateInfoKHR{}.Flags), uintptr(C.vkw_offset(719))},
		{"SwapchainCreateInfoKHR.surface", unsafe.Offsetof(native.SwapchainCreateInfoKHR{}.Surface), uintptr(C.vkw_offset(720))},
		{"SwapchainCreateInfoKHR.minImageCount", unsafe.Offsetof(native.SwapchainCreateInfoKHR{}.MinImageCount), uintptr(C.vkw_offset(721))},
		{"SwapchainCreateInfoKHR.imageFormat", unsafe.Offsetof(native.SwapchainCreateInfoKHR{}.ImageFormat), uintptr(C.vkw_offset(722))},
		{"SwapchainCreateInfoKHR.imageColorSpace", unsafe.Offsetof(native.SwapchainCreateInfoKHR{}.ImageColorSpace), uintptr(C.vkw_offset(723))},
		{"SwapchainCreateInfoKHR.imageExtent", unsafe.Offsetof(native.SwapchainCreateInfoKHR{}.ImageExtent), uintptr(C.vkw_offset(724))},
		{"SwapchainCreateInfoKHR.imageArrayLayers", unsafe.Offsetof(native.SwapchainCreateInfoKHR{}.ImageArrayLayers), uintptr(C.vkw_offset(725))},
		{"SwapchainCreateInfoKHR.imageUsage", unsafe.Offsetof(native.SwapchainCreateInfoKHR{}.ImageUsage), uintptr(C.vkw_offset(726))},
		{"SwapchainCreateInfoKHR.imageSharingMode", unsafe.Offsetof(native.SwapchainCreateInfoKHR{}.ImageSharingMode), uintptr(C.vkw_offset(727))},
		{"SwapchainCreateInfoKHR.queueFamilyIndexCount", unsafe.Offsetof(native.SwapchainCreateInfoKHR{}.QueueFamilyIndexCount), uintptr(C.vkw_offset(728))},
		{"SwapchainCreateInfoKHR.pQueueFamilyIndices", unsafe.Offsetof(native.SwapchainCreateInfoKHR{}.PQueueFamilyIndices), uintptr(C.vkw_offset(729))},
		{"SwapchainCreateInfoKHR.preTransform", unsafe.Offsetof(native.SwapchainCreateInfoKHR{}.PreTransform), uintptr(C.vkw_offset(730))},
		{"SwapchainCreateInfoKHR.compositeAlpha", unsafe.Offsetof(native.SwapchainCreateInfoKHR{}.CompositeAlpha), uintptr(C.vkw_offset(731))},
		{"SwapchainCreateInfoKHR.presentMode", unsafe.Offsetof(native.SwapchainCreateInfoKHR{}.PresentMode), uintptr(C.vkw_offset(732))},
		{"SwapchainCreateInfoKHR.clipped", unsafe.Offsetof(native.SwapchainCreateInfoKHR{}.Clipped), uintptr(C.vkw_offset(733))},
		{"SwapchainCreateInfoKHR.oldSwapchain", unsafe.Offsetof(native.SwapchainCreateInfoKHR{}.OldSwapchain), uintptr(C.vkw_offset(734))},
		{"PresentInfoKHR.sType", unsafe.Offsetof(native.PresentInfoKHR{}.SType), uintptr(C.vkw_offset(735))},
		{"PresentInfoKHR.pNext", unsafe.Offsetof(native.PresentInfoKHR{}.PNext), uintptr(C.vkw_offset(736))},
		{"PresentInfoKHR.waitSemaphoreCount", unsafe.Offsetof(native.PresentInfoKHR{}.WaitSemaphoreCount), uintptr(C.vkw_offset(737))},
		{"PresentInfoKHR.pWaitSemaphores", unsafe.Offsetof(native.PresentInfoKHR{}.PWaitSemaphores), uintptr(C.vkw_offset(738))},
		{"PresentInfoKHR.swapchainCount", unsafe.Offsetof(native.PresentInfoKHR{}.SwapchainCount), uintptr(C.vkw_offset(739))},
		{"PresentInfoKHR.pSwapchains", unsafe.Offsetof(native.PresentInfoKHR{}.PSwapchains), uintptr(C.vkw_offset(740))},
		{"PresentInfoKHR.pImageIndices", unsafe.Offsetof(native.PresentInfoKHR{}.PImageIndices), uintptr(C.vkw_offset(741))},
		{"PresentInfoKHR.pResults", unsafe.Offsetof(native.PresentInfoKHR{}.PResults), uintptr(C.vkw_offset(742))},
	}
}
