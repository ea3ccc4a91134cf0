// physical_device.go
package vk

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// PhysicalDeviceLimits wraps VkPhysicalDeviceLimits.
type PhysicalDeviceLimits struct {
	raw native.PhysicalDeviceLimits
}

func (s PhysicalDeviceLimits) MaxImageDimension1D() uint32 {
	return s.raw.MaxImageDimension1D
}

func (s PhysicalDeviceLimits) MaxImageDimension2D() uint32 {
	return s.raw.MaxImageDimension2D
}

func (s PhysicalDeviceLimits) MaxImageDimension3D() uint32 {
	return s.raw.MaxImageDimension3D
}

func (s PhysicalDeviceLimits) MaxImageDimensionCube() uint32 {
	return s.raw.MaxImageDimensionCube
}

func (s PhysicalDeviceLimits) MaxImageArrayLayers() uint32 {
	return s.raw.MaxImageArrayLayers
}

func (s PhysicalDeviceLimits) MaxTexelBufferElements() uint32 {
	return s.raw.MaxTexelBufferElements
}

func (s PhysicalDeviceLimits) MaxUniformBufferRange() uint32 {
	return s.raw.MaxUniformBufferRange
}

func (s PhysicalDeviceLimits) MaxStorageBufferRange() uint32 {
	return s.raw.MaxStorageBufferRange
}

func (s PhysicalDeviceLimits) MaxPushConstantsSize() uint32 {
	return s.raw.MaxPushConstantsSize
}

func (s PhysicalDeviceLimits) MaxMemoryAllocationCount() uint32 {
	return s.raw.MaxMemoryAllocationCount
}

func (s PhysicalDeviceLimits) MaxSamplerAllocationCount() uint32 {
	return s.raw.MaxSamplerAllocationCount
}

func (s PhysicalDeviceLimits) BufferImageGranularity() DeviceSize {
	return s.raw.BufferImageGranularity
}

func (s PhysicalDeviceLimits) SparseAddressSpaceSize() DeviceSize {
	return s.raw.SparseAddressSpaceSize
}

func (s PhysicalDeviceLimits) MaxBoundDescriptorSets() uint32 {
	return s.raw.MaxBoundDescriptorSets
}

func (s PhysicalDeviceLimits) MaxPerStageDescriptorSamplers() uint32 {
	return s.raw.MaxPerStageDescriptorSamplers
}

func (s PhysicalDeviceLimits) MaxPerStageDescriptorUniformBuffers() uint32 {
	return s.raw.MaxPerStageDescriptorUniformBuffers
}

func (s PhysicalDeviceLimits) MaxPerStageDescriptorStorageBuffers() uint32 {
	return s.raw.MaxPerStageDescriptorStorageBuffers
}

func (s PhysicalDeviceLimits) MaxPerStageDescriptorSampledImages() uint32 {
	return s.raw.MaxPerStageDescriptorSampledImages
}

func (s PhysicalDeviceLimits) MaxPerStageDescriptorStorageImages() uint32 {
	return s.raw.MaxPerStageDescriptorStorageImages
}

func (s PhysicalDeviceLimits) MaxPerStageDescriptorInputAttachments() uint32 {
	return s.raw.MaxPerStageDescriptorInputAttachments
}

func (s PhysicalDeviceLimits) MaxPerStageResources() uint32 {
	return s.raw.MaxPerStageResources
}

func (s PhysicalDeviceLimits) MaxDescriptorSetSamplers() uint32 {
	return s.raw.MaxDescriptorSetSamplers
}

func (s PhysicalDeviceLimits) MaxDescriptorSetUniformBuffers() uint32 {
	return s.raw.MaxDescriptorSetUniformBuffers
}

func (s PhysicalDeviceLimits) MaxDescriptorSetUniformBuffersDynamic() uint32 {
	return s.raw.MaxDescriptorSetUniformBuffersDynamic
}

func (s PhysicalDeviceLimits) MaxDescriptorSetStorageBuffers() uint32 {
	return s.raw.MaxDescriptorSetStorageBuffers
}

func (s PhysicalDeviceLimits) MaxDescriptorSetStorageBuffersDynamic() uint32 {
	return s.raw.MaxDescriptorSetStorageBuffersDynamic
}

func (s PhysicalDeviceLimits) MaxDescriptorSetSampledImages() uint32 {
	return s.raw.MaxDescriptorSetSampledImages
}

func (s PhysicalDeviceLimits) MaxDescriptorSetStorageImages() uint32 {
	return s.raw.MaxDescriptorSetStorageImages
}

func (s PhysicalDeviceLimits) MaxDescriptorSetInputAttachments() uint32 {
	return s.raw.MaxDescriptorSetInputAttachments
}

func (s PhysicalDeviceLimits) MaxVertexInputAttributes() uint32 {
	return s.raw.MaxVertexInputAttributes
}

func (s PhysicalDeviceLimits) MaxVertexInputBindings() uint32 {
	return s.raw.MaxVertexInputBindings
}

func (s PhysicalDeviceLimits) MaxVertexInputAttributeOffset() uint32 {
	return s.raw.MaxVertexInputAttributeOffset
}

func (s PhysicalDeviceLimits) MaxVertexInputBindingStride() uint32 {
	return s.raw.MaxVertexInputBindingStride
}

func (s PhysicalDeviceLimits) MaxVertexOutputComponents() uint32 {
	return s.raw.MaxVertexOutputComponents
}

func (s PhysicalDeviceLimits) MaxTessellationGenerationLevel() uint32 {
	return s.raw.MaxTessellationGenerationLevel
}

func (s PhysicalDeviceLimits) MaxTessellationPatchSize() uint32 {
	return s.raw.MaxTessellationPatchSize
}

func (s PhysicalDeviceLimits) MaxTessellationControlPerVertexInputComponents() uint32 {
	return s.raw.MaxTessellationControlPerVertexInputComponents
}

func (s PhysicalDeviceLimits) MaxTessellationControlPerVertexOutputComponents() uint32 {
	return s.raw.MaxTessellationControlPerVertexOutputComponents
}

func (s PhysicalDeviceLimits) MaxTessellationControlPerPatchOutputComponents() uint32 {
	return s.raw.MaxTessellationControlPerPatchOutputComponents
}

func (s PhysicalDeviceLimits) MaxTessellationControlTotalOutputComponents() uint32 {
	return s.raw.MaxTessellationControlTotalOutputComponents
}

func (s PhysicalDeviceLimits) MaxTessellationEvaluationInputComponents() uint32 {
	return s.raw.MaxTessellationEvaluationInputComponents
}

func (s PhysicalDeviceLimits) MaxTessellationEvaluationOutputComponents() uint32 {
	return s.raw.MaxTessellationEvaluationOutputComponents
}

func (s PhysicalDeviceLimits) MaxGeometryShaderInvocations() uint32 {
	return s.raw.MaxGeometryShaderInvocations
}

func (s PhysicalDeviceLimits) MaxGeometryInputComponents() uint32 {
	return s.raw.MaxGeometryInputComponents
}

func (s PhysicalDeviceLimits) MaxGeometryOutputComponents() uint32 {
	return s.raw.MaxGeometryOutputComponents
}

func (s PhysicalDeviceLimits) MaxGeometryOutputVertices() uint32 {
	return s.raw.MaxGeometryOutputVertices
}

func (s PhysicalDeviceLimits) MaxGeometryTotalOutputComponents() uint32 {
	return s.raw.MaxGeometryTotalOutputComponents
}

func (s PhysicalDeviceLimits) MaxFragmentInputComponents() uint32 {
	return s.raw.MaxFragmentInputComponents
}

func (s PhysicalDeviceLimits) MaxFragmentOutputAttachments() uint32 {
	return s.raw.MaxFragmentOutputAttachments
}

func (s PhysicalDeviceLimits) MaxFragmentDualSrcAttachments() uint32 {
	return s.raw.MaxFragmentDualSrcAttachments
}

func (s PhysicalDeviceLimits) MaxFragmentCombinedOutputResources() uint32 {
	return s.raw.MaxFragmentCombinedOutputResources
}

func (s PhysicalDeviceLimits) MaxComputeSharedMemorySize() uint32 {
	return s.raw.MaxComputeSharedMemorySize
}

func (s PhysicalDeviceLimits) MaxComputeWorkGroupCount() [3]uint32 {
	return s.raw.MaxComputeWorkGroupCount
}

func (s PhysicalDeviceLimits) MaxComputeWorkGroupInvocations() uint32 {
	return s.raw.MaxComputeWorkGroupInvocations
}

func (s PhysicalDeviceLimits) MaxComputeWorkGroupSize() [3]uint32 {
	return s.raw.MaxComputeWorkGroupSize
}

func (s PhysicalDeviceLimits) SubPixelPrecisionBits() uint32 {
	return s.raw.SubPixelPrecisionBits
}

func (s PhysicalDeviceLimits) SubTexelPrecisionBits() uint32 {
	return s.raw.SubTexelPrecisionBits
}

func (s PhysicalDeviceLimits) MipmapPrecisionBits() uint32 {
	return s.raw.MipmapPrecisionBits
}

func (s PhysicalDeviceLimits) MaxDrawIndexedIndexValue() uint32 {
	return s.raw.MaxDrawIndexedIndexValue
}

func (s PhysicalDeviceLimits) MaxDrawIndirectCount() uint32 {
	return s.raw.MaxDrawIndirectCount
}

func (s PhysicalDeviceLimits) MaxSamplerLodBias() float32 {
	return s.raw.MaxSamplerLodBias
}

func (s PhysicalDeviceLimits) MaxSamplerAnisotropy() float32 {
	return s.raw.MaxSamplerAnisotropy
}

func (s PhysicalDeviceLimits) MaxViewports() uint32 {
	return s.raw.MaxViewports
}

func (s PhysicalDeviceLimits) MaxViewportDimensions() [2]uint32 {
	return s.raw.MaxViewportDimensions
}

func (s PhysicalDeviceLimits) ViewportBoundsRange() [2]float32 {
	return s.raw.ViewportBoundsRange
}

func (s PhysicalDeviceLimits) ViewportSubPixelBits() uint32 {
	return s.raw.ViewportSubPixelBits
}

func (s PhysicalDeviceLimits) MinMemoryMapAlignment() uint {
	return s.raw.MinMemoryMapAlignment
}

func (s PhysicalDeviceLimits) MinTexelBufferOffsetAlignment() DeviceSize {
	return s.raw.MinTexelBufferOffsetAlignment
}

func (s PhysicalDeviceLimits) MinUniformBufferOffsetAlignment() DeviceSize {
	return s.raw.MinUniformBufferOffsetAlignment
}

func (s PhysicalDeviceLimits) MinStorageBufferOffsetAlignment() DeviceSize {
	return s.raw.MinStorageBufferOffsetAlignment
}

func (s PhysicalDeviceLimits) MinTexelOffset() int32 {
	return s.raw.MinTexelOffset
}

func (s PhysicalDeviceLimits) MaxTexelOffset() uint32 {
	return s.raw.MaxTexelOffset
}

func (s PhysicalDeviceLimits) MinTexelGatherOffset() int32 {
	return s.raw.MinTexelGatherOffset
}

func (s PhysicalDeviceLimits) MaxTexelGatherOffset() uint32 {
	return s.raw.MaxTexelGatherOffset
}

func (s PhysicalDeviceLimits) MinInterpolationOffset() float32 {
	return s.raw.MinInterpolationOffset
}

func (s PhysicalDeviceLimits) MaxInterpolationOffset() float32 {
	return s.raw.MaxInterpolationOffset
}

func (s PhysicalDeviceLimits) SubPixelInterpolationOffsetBits() uint32 {
	return s.raw.SubPixelInterpolationOffsetBits
}

func (s PhysicalDeviceLimits) MaxFramebufferWidth() uint32 {
	return s.raw.MaxFramebufferWidth
}

func (s PhysicalDeviceLimits) MaxFramebufferHeight() uint32 {
	return s.raw.MaxFramebufferHeight
}

func (s PhysicalDeviceLimits) MaxFramebufferLayers() uint32 {
	return s.raw.MaxFramebufferLayers
}

func (s PhysicalDeviceLimits) FramebufferColorSampleCounts() SampleCountFlags {
	return SampleCountFlags(s.raw.FramebufferColorSampleCounts)
}

func (s PhysicalDeviceLimits) FramebufferDepthSampleCounts() SampleCountFlags {
	return SampleCountFlags(s.raw.FramebufferDepthSampleCounts)
}

func (s PhysicalDeviceLimits) FramebufferStencilSampleCounts() SampleCountFlags {
	return SampleCountFlags(s.raw.FramebufferStencilSampleCounts)
}

func (s PhysicalDeviceLimits) FramebufferNoAttachmentsSampleCounts() SampleCountFlags {
	return SampleCountFlags(s.raw.FramebufferNoAttachmentsSampleCounts)
}

func (s PhysicalDeviceLimits) MaxColorAttachments() uint32 {
	return s.raw.MaxColorAttachments
}

func (s PhysicalDeviceLimits) SampledImageColorSampleCounts() SampleCountFlags {
	return SampleCountFlags(s.raw.SampledImageColorSampleCounts)
}

func (s PhysicalDeviceLimits) SampledImageIntegerSampleCounts() SampleCountFlags {
	return SampleCountFlags(s.raw.SampledImageIntegerSampleCounts)
}

func (s PhysicalDeviceLimits) SampledImageDepthSampleCounts() SampleCountFlags {
	return SampleCountFlags(s.raw.SampledImageDepthSampleCounts)
}

func (s PhysicalDeviceLimits) SampledImageStencilSampleCounts() SampleCountFlags {
	return SampleCountFlags(s.raw.SampledImageStencilSampleCounts)
}

func (s PhysicalDeviceLimits) StorageImageSampleCounts() SampleCountFlags {
	return SampleCountFlags(s.raw.StorageImageSampleCounts)
}

func (s PhysicalDeviceLimits) MaxSampleMaskWords() uint32 {
	return s.raw.MaxSampleMaskWords
}

func (s PhysicalDeviceLimits) TimestampComputeAndGraphics() bool {
	return s.raw.TimestampComputeAndGraphics != 0
}

func (s PhysicalDeviceLimits) TimestampPeriod() float32 {
	return s.raw.TimestampPeriod
}

func (s PhysicalDeviceLimits) MaxClipDistances() uint32 {
	return s.raw.MaxClipDistances
}

func (s PhysicalDeviceLimits) MaxCullDistances() uint32 {
	return s.raw.MaxCullDistances
}

func (s PhysicalDeviceLimits) MaxCombinedClipAndCullDistances() uint32 {
	return s.raw.MaxCombinedClipAndCullDistances
}

func (s PhysicalDeviceLimits) DiscreteQueuePriorities() uint32 {
	return s.raw.DiscreteQueuePriorities
}

func (s PhysicalDeviceLimits) PointSizeRange() [2]float32 {
	return s.raw.PointSizeRange
}

func (s PhysicalDeviceLimits) LineWidthRange() [2]float32 {
	return s.raw.LineWidthRange
}

func (s PhysicalDeviceLimits) PointSizeGranularity() float32 {
	return s.raw.PointSizeGranularity
}

func (s PhysicalDeviceLimits) LineWidthGranularity() float32 {
	return s.raw.LineWidthGranularity
}

func (s PhysicalDeviceLimits) StrictLines() bool {
	return s.raw.StrictLines != 0
}

func (s PhysicalDeviceLimits) StandardSampleLocations() bool {
	return s.raw.StandardSampleLocations != 0
}

func (s PhysicalDeviceLimits) OptimalBufferCopyOffsetAlignment() DeviceSize {
	return s.raw.OptimalBufferCopyOffsetAlignment
}

func (s PhysicalDeviceLimits) OptimalBufferCopyRowPitchAlignment() DeviceSize {
	return s.raw.OptimalBufferCopyRowPitchAlignment
}

func (s PhysicalDeviceLimits) NonCoherentAtomSize() DeviceSize {
	return s.raw.NonCoherentAtomSize
}

func (s PhysicalDeviceLimits) Native() native.PhysicalDeviceLimits {
	return s.raw
}

// PhysicalDeviceSparseProperties wraps VkPhysicalDeviceSparseProperties.
type PhysicalDeviceSparseProperties struct {
	raw native.PhysicalDeviceSparseProperties
}

func (s PhysicalDeviceSparseProperties) ResidencyStandard2DBlockShape() bool {
	return s.raw.ResidencyStandard2DBlockShape != 0
}

func (s PhysicalDeviceSparseProperties) ResidencyStandard2DMultisampleBlockShape() bool {
	return s.raw.ResidencyStandard2DMultisampleBlockShape != 0
}

func (s PhysicalDeviceSparseProperties) ResidencyStandard3DBlockShape() bool {
	return s.raw.ResidencyStandard3DBlockShape != 0
}

func (s PhysicalDeviceSparseProperties) ResidencyAlignedMipSize() bool {
	return s.raw.ResidencyAlignedMipSize != 0
}

func (s PhysicalDeviceSparseProperties) ResidencyNonResidentStrict() bool {
	return s.raw.ResidencyNonResidentStrict != 0
}

func (s PhysicalDeviceSparseProperties) Native() native.PhysicalDeviceSparseProperties {
	return s.raw
}

// PhysicalDeviceProperties wraps VkPhysicalDeviceProperties.
type PhysicalDeviceProperties struct {
	raw native.PhysicalDeviceProperties
}

func (s PhysicalDeviceProperties) ApiVersion() uint32 {
	return s.raw.ApiVersion
}

func (s PhysicalDeviceProperties) DriverVersion() uint32 {
	return s.raw.DriverVersion
}

func (s PhysicalDeviceProperties) VendorID() uint32 {
	return s.raw.VendorID
}

func (s PhysicalDeviceProperties) DeviceID() uint32 {
	return s.raw.DeviceID
}

func (s PhysicalDeviceProperties) DeviceType() PhysicalDeviceType {
	return PhysicalDeviceType(s.raw.DeviceType)
}

func (s PhysicalDeviceProperties) DeviceName() string {
	return cstring(s.raw.DeviceName[:])
}

func (s PhysicalDeviceProperties) PipelineCacheUUID() [16]uint8 {
	return s.raw.PipelineCacheUUID
}

func (s PhysicalDeviceProperties) Limits() PhysicalDeviceLimits {
	return PhysicalDeviceLimits{raw: s.raw.Limits}
}

func (s PhysicalDeviceProperties) SparseProperties() PhysicalDeviceSparseProperties {
	return PhysicalDeviceSparseProperties{raw: s.raw.SparseProperties}
}

func (s PhysicalDeviceProperties) Native() native.PhysicalDeviceProperties {
	return s.raw
}

// PhysicalDeviceFeatures wraps VkPhysicalDeviceFeatures. It is both queried and
// passed to CreateDevice, so it carries setters.
type PhysicalDeviceFeatures struct {
	raw native.PhysicalDeviceFeatures
}

func MakePhysicalDeviceFeatures(
	robustBufferAccess bool,
	fullDrawIndexUint32 bool,
	imageCubeArray bool,
	independentBlend bool,
	geometryShader bool,
	tessellationShader bool,
	sampleRateShading bool,
	dualSrcBlend bool,
	logicOp bool,
	multiDrawIndirect bool,
	drawIndirectFirstInstance bool,
	depthClamp bool,
	depthBiasClamp bool,
	fillModeNonSolid bool,
	depthBounds bool,
	wideLines bool,
	largePoints bool,
	alphaToOne bool,
	multiViewport bool,
	samplerAnisotropy bool,
	textureCompressionETC2 bool,
	textureCompressionASTCLDR bool,
	textureCompressionBC bool,
	occlusionQueryPrecise bool,
	pipelineStatisticsQuery bool,
	vertexPipelineStoresAndAtomics bool,
	fragmentStoresAndAtomics bool,
	shaderTessellationAndGeometryPointSize bool,
	shaderImageGatherExtended bool,
	shaderStorageImageExtendedFormats bool,
	shaderStorageImageMultisample bool,
	shaderStorageImageReadWithoutFormat bool,
	shaderStorageImageWriteWithoutFormat bool,
	shaderUniformBufferArrayDynamicIndexing bool,
	shaderSampledImageArrayDynamicIndexing bool,
	shaderStorageBufferArrayDynamicIndexing bool,
	shaderStorageImageArrayDynamicIndexing bool,
	shaderClipDistance bool,
	shaderCullDistance bool,
	shaderFloat64 bool,
	shaderInt64 bool,
	shaderInt16 bool,
	shaderResourceResidency bool,
	shaderResourceMinLod bool,
	sparseBinding bool,
	sparseResidencyBuffer bool,
	sparseResidencyImage2D bool,
	sparseResidencyImage3D bool,
	sparseResidency2Samples bool,
	sparseResidency4Samples bool,
	sparseResidency8Samples bool,
	sparseResidency16Samples bool,
	sparseResidencyAliased bool,
	variableMultisampleRate bool,
	inheritedQueries bool,
) PhysicalDeviceFeatures {
	return PhysicalDeviceFeatures{raw: native.PhysicalDeviceFeatures{
		RobustBufferAccess:                      bool32(robustBufferAccess),
		FullDrawIndexUint32:                     bool32(fullDrawIndexUint32),
		ImageCubeArray:                          bool32(imageCubeArray),
		IndependentBlend:                        bool32(independentBlend),
		GeometryShader:                          bool32(geometryShader),
		TessellationShader:                      bool32(tessellationShader),
		SampleRateShading:                       bool32(sampleRateShading),
		DualSrcBlend:                            bool32(dualSrcBlend),
		LogicOp:                                 bool32(logicOp),
		MultiDrawIndirect:                       bool32(multiDrawIndirect),
		DrawIndirectFirstInstance:               bool32(drawIndirectFirstInstance),
		DepthClamp:                              bool32(depthClamp),
		DepthBiasClamp:                          bool32(depthBiasClamp),
		FillModeNonSolid:                        bool32(fillModeNonSolid),
		DepthBounds:                             bool32(depthBounds),
		WideLines:                               bool32(wideLines),
		LargePoints:                             bool32(largePoints),
		AlphaToOne:                              bool32(alphaToOne),
		MultiViewport:                           bool32(multiViewport),
		SamplerAnisotropy:                       bool32(samplerAnisotropy),
		TextureCompressionETC2:                  bool32(textureCompressionETC2),
		TextureCompressionASTCLDR:               bool32(textureCompressionASTCLDR),
		TextureCompressionBC:                    bool32(textureCompressionBC),
		OcclusionQueryPrecise:                   bool32(occlusionQueryPrecise),
		PipelineStatisticsQuery:                 bool32(pipelineStatisticsQuery),
		VertexPipelineStoresAndAtomics:          bool32(vertexPipelineStoresAndAtomics),
		FragmentStoresAndAtomics:                bool32(fragmentStoresAndAtomics),
		ShaderTessellationAndGeometryPointSize:  bool32(shaderTessellationAndGeometryPointSize),
		ShaderImageGatherExtended:               bool32(shaderImageGatherExtended),
		ShaderStorageImageExtendedFormats:       bool32(shaderStorageImageExtendedFormats),
		ShaderStorageImageMultisample:           bool32(shaderStorageImageMultisample),
		ShaderStorageImageReadWithoutFormat:     bool32(shaderStorageImageReadWithoutFormat),
		ShaderStorageImageWriteWithoutFormat:    bool32(shaderStorageImageWriteWithoutFormat),
		ShaderUniformBufferArrayDynamicIndexing: bool32(shaderUniformBufferArrayDynamicIndexing),
		ShaderSampledImageArrayDynamicIndexing:  bool32(shaderSampledImageArrayDynamicIndexing),
		ShaderStorageBufferArrayDynamicIndexing: bool32(shaderStorageBufferArrayDynamicIndexing),
		ShaderStorageImageArrayDynamicIndexing:  bool32(shaderStorageImageArrayDynamicIndexing),
		ShaderClipDistance:                      bool32(shaderClipDistance),
		ShaderCullDistance:                      bool32(shaderCullDistance),
		ShaderFloat64:                           bool32(shaderFloat64),
		ShaderInt64:                             bool32(shaderInt64),
		ShaderInt16:                             bool32(shaderInt16),
		ShaderResourceResidency:                 bool32(shaderResourceResidency),
		ShaderResourceMinLod:                    bool32(shaderResourceMinLod),
		SparseBinding:                           bool32(sparseBinding),
		SparseResidencyBuffer:                   bool32(sparseResidencyBuffer),
		SparseResidencyImage2D:                  bool32(sparseResidencyImage2D),
		SparseResidencyImage3D:                  bool32(sparseResidencyImage3D),
		SparseResidency2Samples:                 bool32(sparseResidency2Samples),
		SparseResidency4Samples:                 bool32(sparseResidency4Samples),
		SparseResidency8Samples:                 bool32(sparseResidency8Samples),
		SparseResidency16Samples:                bool32(sparseResidency16Samples),
		SparseResidencyAliased:                  bool32(sparseResidencyAliased),
		VariableMultisampleRate:                 bool32(variableMultisampleRate),
		InheritedQueries:                        bool32(inheritedQueries),
	}}
}

func NewPhysicalDeviceFeatures() *PhysicalDeviceFeatures {
	return &PhysicalDeviceFeatures{}
}

func (s PhysicalDeviceFeatures) RobustBufferAccess() bool {
	return s.raw.RobustBufferAccess != 0
}

func (s *PhysicalDeviceFeatures) SetRobustBufferAccess(robustBufferAccess bool) *PhysicalDeviceFeatures {
	s.raw.RobustBufferAccess = bool32(robustBufferAccess)
	return s
}

func (s PhysicalDeviceFeatures) FullDrawIndexUint32() bool {
	return s.raw.FullDrawIndexUint32 != 0
}

func (s *PhysicalDeviceFeatures) SetFullDrawIndexUint32(fullDrawIndexUint32 bool) *PhysicalDeviceFeatures {
	s.raw.FullDrawIndexUint32 = bool32(fullDrawIndexUint32)
	return s
}

func (s PhysicalDeviceFeatures) ImageCubeArray() bool {
	return s.raw.ImageCubeArray != 0
}

func (s *PhysicalDeviceFeatures) SetImageCubeArray(imageCubeArray bool) *PhysicalDeviceFeatures {
	s.raw.ImageCubeArray = bool32(imageCubeArray)
	return s
}

func (s PhysicalDeviceFeatures) IndependentBlend() bool {
	return s.raw.IndependentBlend != 0
}

func (s *PhysicalDeviceFeatures) SetIndependentBlend(independentBlend bool) *PhysicalDeviceFeatures {
	s.raw.IndependentBlend = bool32(independentBlend)
	return s
}

func (s PhysicalDeviceFeatures) GeometryShader() bool {
	return s.raw.GeometryShader != 0
}

func (s *PhysicalDeviceFeatures) SetGeometryShader(geometryShader bool) *PhysicalDeviceFeatures {
	s.raw.GeometryShader = bool32(geometryShader)
	return s
}

func (s PhysicalDeviceFeatures) TessellationShader() bool {
	return s.raw.TessellationShader != 0
}

func (s *PhysicalDeviceFeatures) SetTessellationShader(tessellationShader bool) *PhysicalDeviceFeatures {
	s.raw.TessellationShader = bool32(tessellationShader)
	return s
}

func (s PhysicalDeviceFeatures) SampleRateShading() bool {
	return s.raw.SampleRateShading != 0
}

func (s *PhysicalDeviceFeatures) SetSampleRateShading(sampleRateShading bool) *PhysicalDeviceFeatures {
	s.raw.SampleRateShading = bool32(sampleRateShading)
	return s
}

func (s PhysicalDeviceFeatures) DualSrcBlend() bool {
	return s.raw.DualSrcBlend != 0
}

func (s *PhysicalDeviceFeatures) SetDualSrcBlend(dualSrcBlend bool) *PhysicalDeviceFeatures {
	s.raw.DualSrcBlend = bool32(dualSrcBlend)
	return s
}

func (s PhysicalDeviceFeatures) LogicOp() bool {
	return s.raw.LogicOp != 0
}

func (s *PhysicalDeviceFeatures) SetLogicOp(logicOp bool) *PhysicalDeviceFeatures {
	s.raw.LogicOp = bool32(logicOp)
	return s
}

func (s PhysicalDeviceFeatures) MultiDrawIndirect() bool {
	return s.raw.MultiDrawIndirect != 0
}

func (s *PhysicalDeviceFeatures) SetMultiDrawIndirect(multiDrawIndirect bool) *PhysicalDeviceFeatures {
	s.raw.MultiDrawIndirect = bool32(multiDrawIndirect)
	return s
}

func (s PhysicalDeviceFeatures) DrawIndirectFirstInstance() bool {
	return s.raw.DrawIndirectFirstInstance != 0
}

func (s *PhysicalDeviceFeatures) SetDrawIndirectFirstInstance(drawIndirectFirstInstance bool) *PhysicalDeviceFeatures {
	s.raw.DrawIndirectFirstInstance = bool32(drawIndirectFirstInstance)
	return s
}

func (s PhysicalDeviceFeatures) DepthClamp() bool {
	return s.raw.DepthClamp != 0
}

func (s *PhysicalDeviceFeatures) SetDepthClamp(depthClamp bool) *PhysicalDeviceFeatures {
	s.raw.DepthClamp = bool32(depthClamp)
	return s
}

func (s PhysicalDeviceFeatures) DepthBiasClamp() bool {
	return s.raw.DepthBiasClamp != 0
}

func (s *PhysicalDeviceFeatures) SetDepthBiasClamp(depthBiasClamp bool) *PhysicalDeviceFeatures {
	s.raw.DepthBiasClamp = bool32(depthBiasClamp)
	return s
}

func (s PhysicalDeviceFeatures) FillModeNonSolid() bool {
	return s.raw.FillModeNonSolid != 0
}

func (s *PhysicalDeviceFeatures) SetFillModeNonSolid(fillModeNonSolid bool) *PhysicalDeviceFeatures {
	s.raw.FillModeNonSolid = bool32(fillModeNonSolid)
	return s
}

func (s PhysicalDeviceFeatures) DepthBounds() bool {
	return s.raw.DepthBounds != 0
}

func (s *PhysicalDeviceFeatures) SetDepthBounds(depthBounds bool) *PhysicalDeviceFeatures {
	s.raw.DepthBounds = bool32(depthBounds)
	return s
}

func (s PhysicalDeviceFeatures) WideLines() bool {
	return s.raw.WideLines != 0
}

func (s *PhysicalDeviceFeatures) SetWideLines(wideLines bool) *PhysicalDeviceFeatures {
	s.raw.WideLines = bool32(wideLines)
	return s
}

func (s PhysicalDeviceFeatures) LargePoints() bool {
	return s.raw.LargePoints != 0
}

func (s *PhysicalDeviceFeatures) SetLargePoints(largePoints bool) *PhysicalDeviceFeatures {
	s.raw.LargePoints = bool32(largePoints)
	return s
}

func (s PhysicalDeviceFeatures) AlphaToOne() bool {
	return s.raw.AlphaToOne != 0
}

func (s *PhysicalDeviceFeatures) SetAlphaToOne(alphaToOne bool) *PhysicalDeviceFeatures {
	s.raw.AlphaToOne = bool32(alphaToOne)
	return s
}

func (s PhysicalDeviceFeatures) MultiViewport() bool {
	return s.raw.MultiViewport != 0
}

func (s *PhysicalDeviceFeatures) SetMultiViewport(multiViewport bool) *PhysicalDeviceFeatures {
	s.raw.MultiViewport = bool32(multiViewport)
	return s
}

func (s PhysicalDeviceFeatures) SamplerAnisotropy() bool {
	return s.raw.SamplerAnisotropy != 0
}

func (s *PhysicalDeviceFeatures) SetSamplerAnisotropy(samplerAnisotropy bool) *PhysicalDeviceFeatures {
	s.raw.SamplerAnisotropy = bool32(samplerAnisotropy)
	return s
}

func (s PhysicalDeviceFeatures) TextureCompressionETC2() bool {
	return s.raw.TextureCompressionETC2 != 0
}

func (s *PhysicalDeviceFeatures) SetTextureCompressionETC2(textureCompressionETC2 bool) *PhysicalDeviceFeatures {
	s.raw.TextureCompressionETC2 = bool32(textureCompressionETC2)
	return s
}

func (s PhysicalDeviceFeatures) TextureCompressionASTCLDR() bool {
	return s.raw.TextureCompressionASTCLDR != 0
}

func (s *PhysicalDeviceFeatures) SetTextureCompressionASTCLDR(textureCompressionASTCLDR bool) *PhysicalDeviceFeatures {
	s.raw.TextureCompressionASTCLDR = bool32(textureCompressionASTCLDR)
	return s
}

func (s PhysicalDeviceFeatures) TextureCompressionBC() bool {
	return s.raw.TextureCompressionBC != 0
}

func (s *PhysicalDeviceFeatures) SetTextureCompressionBC(textureCompressionBC bool) *PhysicalDeviceFeatures {
	s.raw.TextureCompressionBC = bool32(textureCompressionBC)
	return s
}

func (s PhysicalDeviceFeatures) OcclusionQueryPrecise() bool {
	return s.raw.OcclusionQueryPrecise != 0
}

func (s *PhysicalDeviceFeatures) SetOcclusionQueryPrecise(occlusionQueryPrecise bool) *PhysicalDeviceFeatures {
	s.raw.OcclusionQueryPrecise = bool32(occlusionQueryPrecise)
	return s
}

func (s PhysicalDeviceFeatures) PipelineStatisticsQuery() bool {
	return s.raw.PipelineStatisticsQuery != 0
}

func (s *PhysicalDeviceFeatures) SetPipelineStatisticsQuery(pipelineStatisticsQuery bool) *PhysicalDeviceFeatures {
	s.raw.PipelineStatisticsQuery = bool32(pipelineStatisticsQuery)
	return s
}

func (s PhysicalDeviceFeatures) VertexPipelineStoresAndAtomics() bool {
	return s.raw.VertexPipelineStoresAndAtomics != 0
}

func (s *PhysicalDeviceFeatures) SetVertexPipelineStoresAndAtomics(vertexPipelineStoresAndAtomics bool) *PhysicalDeviceFeatures {
	s.raw.VertexPipelineStoresAndAtomics = bool32(vertexPipelineStoresAndAtomics)
	return s
}

func (s PhysicalDeviceFeatures) FragmentStoresAndAtomics() bool {
	return s.raw.FragmentStoresAndAtomics != 0
}

func (s *PhysicalDeviceFeatures) SetFragmentStoresAndAtomics(fragmentStoresAndAtomics bool) *PhysicalDeviceFeatures {
	s.raw.FragmentStoresAndAtomics = bool32(fragmentStoresAndAtomics)
	return s
}

func (s PhysicalDeviceFeatures) ShaderTessellationAndGeometryPointSize() bool {
	return s.raw.ShaderTessellationAndGeometryPointSize != 0
}

func (s *PhysicalDeviceFeatures) SetShaderTessellationAndGeometryPointSize(shaderTessellationAndGeometryPointSize bool) *PhysicalDeviceFeatures {
	s.raw.ShaderTessellationAndGeometryPointSize = bool32(shaderTessellationAndGeometryPointSize)
	return s
}

func (s PhysicalDeviceFeatures) ShaderImageGatherExtended() bool {
	return s.raw.ShaderImageGatherExtended != 0
}

func (s *PhysicalDeviceFeatures) SetShaderImageGatherExtended(shaderImageGatherExtended bool) *PhysicalDeviceFeatures {
	s.raw.ShaderImageGatherExtended = bool32(shaderImageGatherExtended)
	return s
}

func (s PhysicalDeviceFeatures) ShaderStorageImageExtendedFormats() bool {
	return s.raw.ShaderStorageImageExtendedFormats != 0
}

func (s *PhysicalDeviceFeatures) SetShaderStorageImageExtendedFormats(shaderStorageImageExtendedFormats bool) *PhysicalDeviceFeatures {
	s.raw.ShaderStorageImageExtendedFormats = bool32(shaderStorageImageExtendedFormats)
	return s
}

func (s PhysicalDeviceFeatures) ShaderStorageImageMultisample() bool {
	return s.raw.ShaderStorageImageMultisample != 0
}

func (s *PhysicalDeviceFeatures) SetShaderStorageImageMultisample(shaderStorageImageMultisample bool) *PhysicalDeviceFeatures {
	s.raw.ShaderStorageImageMultisample = bool32(shaderStorageImageMultisample)
	return s
}

func (s PhysicalDeviceFeatures) ShaderStorageImageReadWithoutFormat() bool {
	return s.raw.ShaderStorageImageReadWithoutFormat != 0
}

func (s *PhysicalDeviceFeatures) SetShaderStorageImageReadWithoutFormat(shaderStorageImageReadWithoutFormat bool) *PhysicalDeviceFeatures {
	s.raw.ShaderStorageImageReadWithoutFormat = bool32(shaderStorageImageReadWithoutFormat)
	return s
}

func (s PhysicalDeviceFeatures) ShaderStorageImageWriteWithoutFormat() bool {
	return s.raw.ShaderStorageImageWriteWithoutFormat != 0
}

func (s *PhysicalDeviceFeatures) SetShaderStorageImageWriteWithoutFormat(shaderStorageImageWriteWithoutFormat bool) *PhysicalDeviceFeatures {
	s.raw.ShaderStorageImageWriteWithoutFormat = bool32(shaderStorageImageWriteWithoutFormat)
	return s
}

func (s PhysicalDeviceFeatures) ShaderUniformBufferArrayDynamicIndexing() bool {
	return s.raw.ShaderUniformBufferArrayDynamicIndexing != 0
}

func (s *PhysicalDeviceFeatures) SetShaderUniformBufferArrayDynamicIndexing(shaderUniformBufferArrayDynamicIndexing bool) *PhysicalDeviceFeatures {
	s.raw.ShaderUniformBufferArrayDynamicIndexing = bool32(shaderUniformBufferArrayDynamicIndexing)
	return s
}

func (s PhysicalDeviceFeatures) ShaderSampledImageArrayDynamicIndexing() bool {
	return s.raw.ShaderSampledImageArrayDynamicIndexing != 0
}

func (s *PhysicalDeviceFeatures) SetShaderSampledImageArrayDynamicIndexing(shaderSampledImageArrayDynamicIndexing bool) *PhysicalDeviceFeatures {
	s.raw.ShaderSampledImageArrayDynamicIndexing = bool32(shaderSampledImageArrayDynamicIndexing)
	return s
}

func (s PhysicalDeviceFeatures) ShaderStorageBufferArrayDynamicIndexing() bool {
	return s.raw.ShaderStorageBufferArrayDynamicIndexing != 0
}

func (s *PhysicalDeviceFeatures) SetShaderStorageBufferArrayDynamicIndexing(shaderStorageBufferArrayDynamicIndexing bool) *PhysicalDeviceFeatures {
	s.raw.ShaderStorageBufferArrayDynamicIndexing = bool32(shaderStorageBufferArrayDynamicIndexing)
	return s
}

func (s PhysicalDeviceFeatures) ShaderStorageImageArrayDynamicIndexing() bool {
	return s.raw.ShaderStorageImageArrayDynamicIndexing != 0
}

func (s *PhysicalDeviceFeatures) SetShaderStorageImageArrayDynamicIndexing(shaderStorageImageArrayDynamicIndexing bool) *PhysicalDeviceFeatures {
	s.raw.ShaderStorageImageArrayDynamicIndexing = bool32(shaderStorageImageArrayDynamicIndexing)
	return s
}

func (s PhysicalDeviceFeatures) ShaderClipDistance() bool {
	return s.raw.ShaderClipDistance != 0
}

func (s *PhysicalDeviceFeatures) SetShaderClipDistance(shaderClipDistance bool) *PhysicalDeviceFeatures {
	s.raw.ShaderClipDistance = bool32(shaderClipDistance)
	return s
}

func (s PhysicalDeviceFeatures) ShaderCullDistance() bool {
	return s.raw.ShaderCullDistance != 0
}

func (s *PhysicalDeviceFeatures) SetShaderCullDistance(shaderCullDistance bool) *PhysicalDeviceFeatures {
	s.raw.ShaderCullDistance = bool32(shaderCullDistance)
	return s
}

func (s PhysicalDeviceFeatures) ShaderFloat64() bool {
	return s.raw.ShaderFloat64 != 0
}

func (s *PhysicalDeviceFeatures) SetShaderFloat64(shaderFloat64 bool) *PhysicalDeviceFeatures {
	s.raw.ShaderFloat64 = bool32(shaderFloat64)
	return s
}

func (s PhysicalDeviceFeatures) ShaderInt64() bool {
	return s.raw.ShaderInt64 != 0
}

func (s *PhysicalDeviceFeatures) SetShaderInt64(shaderInt64 bool) *PhysicalDeviceFeatures {
	s.raw.ShaderInt64 = bool32(shaderInt64)
	return s
}

func (s PhysicalDeviceFeatures) ShaderInt16() bool {
	return s.raw.ShaderInt16 != 0
}

func (s *PhysicalDeviceFeatures) SetShaderInt16(shaderInt16 bool) *PhysicalDeviceFeatures {
	s.raw.ShaderInt16 = bool32(shaderInt16)
	return s
}

func (s PhysicalDeviceFeatures) ShaderResourceResidency() bool {
	return s.raw.ShaderResourceResidency != 0
}

func (s *PhysicalDeviceFeatures) SetShaderResourceResidency(shaderResourceResidency bool) *PhysicalDeviceFeatures {
	s.raw.ShaderResourceResidency = bool32(shaderResourceResidency)
	return s
}

func (s PhysicalDeviceFeatures) ShaderResourceMinLod() bool {
	return s.raw.ShaderResourceMinLod != 0
}

func (s *PhysicalDeviceFeatures) SetShaderResourceMinLod(shaderResourceMinLod bool) *PhysicalDeviceFeatures {
	s.raw.ShaderResourceMinLod = bool32(shaderResourceMinLod)
	return s
}

func (s PhysicalDeviceFeatures) SparseBinding() bool {
	return s.raw.SparseBinding != 0
}

func (s *PhysicalDeviceFeatures) SetSparseBinding(sparseBinding bool) *PhysicalDeviceFeatures {
	s.raw.SparseBinding = bool32(sparseBinding)
	return s
}

func (s PhysicalDeviceFeatures) SparseResidencyBuffer() bool {
	return s.raw.SparseResidencyBuffer != 0
}

func (s *PhysicalDeviceFeatures) SetSparseResidencyBuffer(sparseResidencyBuffer bool) *PhysicalDeviceFeatures {
	s.raw.SparseResidencyBuffer = bool32(sparseResidencyBuffer)
	return s
}

func (s PhysicalDeviceFeatures) SparseResidencyImage2D() bool {
	return s.raw.SparseResidencyImage2D != 0
}

func (s *PhysicalDeviceFeatures) SetSparseResidencyImage2D(sparseResidencyImage2D bool) *PhysicalDeviceFeatures {
	s.raw.SparseResidencyImage2D = bool32(sparseResidencyImage2D)
	return s
}

func (s PhysicalDeviceFeatures) SparseResidencyImage3D() bool {
	return s.raw.SparseResidencyImage3D != 0
}

func (s *PhysicalDeviceFeatures) SetSparseResidencyImage3D(sparseResidencyImage3D bool) *PhysicalDeviceFeatures {
	s.raw.SparseResidencyImage3D = bool32(sparseResidencyImage3D)
	return s
}

func (s PhysicalDeviceFeatures) SparseResidency2Samples() bool {
	return s.raw.SparseResidency2Samples != 0
}

func (s *PhysicalDeviceFeatures) SetSparseResidency2Samples(sparseResidency2Samples bool) *PhysicalDeviceFeatures {
	s.raw.SparseResidency2Samples = bool32(sparseResidency2Samples)
	return s
}

func (s PhysicalDeviceFeatures) SparseResidency4Samples() bool {
	return s.raw.SparseResidency4Samples != 0
}

func (s *PhysicalDeviceFeatures) SetSparseResidency4Samples(sparseResidency4Samples bool) *PhysicalDeviceFeatures {
	s.raw.SparseResidency4Samples = bool32(sparseResidency4Samples)
	return s
}

func (s PhysicalDeviceFeatures) SparseResidency8Samples() bool {
	return s.raw.SparseResidency8Samples != 0
}

func (s *PhysicalDeviceFeatures) SetSparseResidency8Samples(sparseResidency8Samples bool) *PhysicalDeviceFeatures {
	s.raw.SparseResidency8Samples = bool32(sparseResidency8Samples)
	return s
}

func (s PhysicalDeviceFeatures) SparseResidency16Samples() bool {
	return s.raw.SparseResidency16Samples != 0
}

func (s *PhysicalDeviceFeatures) SetSparseResidency16Samples(sparseResidency16Samples bool) *PhysicalDeviceFeatures {
	s.raw.SparseResidency16Samples = bool32(sparseResidency16Samples)
	return s
}

func (s PhysicalDeviceFeatures) SparseResidencyAliased() bool {
	return s.raw.SparseResidencyAliased != 0
}

func (s *PhysicalDeviceFeatures) SetSparseResidencyAliased(sparseResidencyAliased bool) *PhysicalDeviceFeatures {
	s.raw.SparseResidencyAliased = bool32(sparseResidencyAliased)
	return s
}

func (s PhysicalDeviceFeatures) VariableMultisampleRate() bool {
	return s.raw.VariableMultisampleRate != 0
}

func (s *PhysicalDeviceFeatures) SetVariableMultisampleRate(variableMultisampleRate bool) *PhysicalDeviceFeatures {
	s.raw.VariableMultisampleRate = bool32(variableMultisampleRate)
	return s
}

func (s PhysicalDeviceFeatures) InheritedQueries() bool {
	return s.raw.InheritedQueries != 0
}

func (s *PhysicalDeviceFeatures) SetInheritedQueries(inheritedQueries bool) *PhysicalDeviceFeatures {
	s.raw.InheritedQueries = bool32(inheritedQueries)
	return s
}

func (s PhysicalDeviceFeatures) Native() native.PhysicalDeviceFeatures {
	return s.raw
}

// QueueFamilyProperties wraps VkQueueFamilyProperties.
type QueueFamilyProperties struct {
	raw native.QueueFamilyProperties
}

func (s QueueFamilyProperties) QueueFlags() QueueFlags {
	return QueueFlags(s.raw.QueueFlags)
}

func (s QueueFamilyProperties) QueueCount() uint32 {
	return s.raw.QueueCount
}

func (s QueueFamilyProperties) TimestampValidBits() uint32 {
	return s.raw.TimestampValidBits
}

func (s QueueFamilyProperties) MinImageTransferGranularity() Extent3D {
	return Extent3D{raw: s.raw.MinImageTransferGranularity}
}

func (s QueueFamilyProperties) Native() native.QueueFamilyProperties {
	return s.raw
}

// MemoryType wraps VkMemoryType.
type MemoryType struct {
	raw native.MemoryType
}

func (s MemoryType) PropertyFlags() MemoryPropertyFlags {
	return MemoryPropertyFlags(s.raw.PropertyFlags)
}

func (s MemoryType) HeapIndex() uint32 {
	return s.raw.HeapIndex
}

func (s MemoryType) Native() native.MemoryType {
	return s.raw
}

// MemoryHeap wraps VkMemoryHeap.
type MemoryHeap struct {
	raw native.MemoryHeap
}

func (s MemoryHeap) Size() DeviceSize {
	return s.raw.Size
}

func (s MemoryHeap) Flags() MemoryHeapFlags {
	return MemoryHeapFlags(s.raw.Flags)
}

func (s MemoryHeap) Native() native.MemoryHeap {
	return s.raw
}

// PhysicalDeviceMemoryProperties wraps VkPhysicalDeviceMemoryProperties.
type PhysicalDeviceMemoryProperties struct {
	raw native.PhysicalDeviceMemoryProperties
}

func (s PhysicalDeviceMemoryProperties) MemoryTypeCount() uint32 {
	return s.raw.MemoryTypeCount
}

func (s PhysicalDeviceMemoryProperties) MemoryTypes() [32]MemoryType {
	return *(*[32]MemoryType)(unsafe.Pointer(&s.raw.MemoryTypes))
}

func (s PhysicalDeviceMemoryProperties) MemoryHeapCount() uint32 {
	return s.raw.MemoryHeapCount
}

func (s PhysicalDeviceMemoryProperties) MemoryHeaps() [16]MemoryHeap {
	return *(*[16]MemoryHeap)(unsafe.Pointer(&s.raw.MemoryHeaps))
}

func (s PhysicalDeviceMemoryProperties) Native() native.PhysicalDeviceMemoryProperties {
	return s.raw
}

// FormatProperties wraps VkFormatProperties.
type FormatProperties struct {
	raw native.FormatProperties
}

func (s FormatProperties) LinearTilingFeatures() FormatFeatureFlags {
	return FormatFeatureFlags(s.raw.LinearTilingFeatures)
}

func (s FormatProperties) OptimalTilingFeatures() FormatFeatureFlags {
	return FormatFeatureFlags(s.raw.OptimalTilingFeatures)
}

func (s FormatProperties) BufferFeatures() FormatFeatureFlags {
	return FormatFeatureFlags(s.raw.BufferFeatures)
}

func (s FormatProperties) Native() native.FormatProperties {
	return s.raw
}

func (d *Dispatch) GetPhysicalDeviceProperties(
	physicalDevice PhysicalDevice,
	properties *PhysicalDeviceProperties,
) {
	d.cmds.GetPhysicalDeviceProperties(
		native.PhysicalDevice(physicalDevice),
		(*native.PhysicalDeviceProperties)(unsafe.Pointer(properties)),
	)
}

func (d *Dispatch) GetPhysicalDeviceFeatures(
	physicalDevice PhysicalDevice,
	features *PhysicalDeviceFeatures,
) {
	d.cmds.GetPhysicalDeviceFeatures(
		native.PhysicalDevice(physicalDevice),
		(*native.PhysicalDeviceFeatures)(unsafe.Pointer(features)),
	)
}

func (d *Dispatch) GetPhysicalDeviceQueueFamilyProperties(
	physicalDevice PhysicalDevice,
	queueFamilyPropertyCount *uint32,
	queueFamilyProperties *QueueFamilyProperties,
) {
	d.cmds.GetPhysicalDeviceQueueFamilyProperties(
		native.PhysicalDevice(physicalDevice),
		queueFamilyPropertyCount,
		(*native.QueueFamilyProperties)(unsafe.Pointer(queueFamilyProperties)),
	)
}

func (d *Dispatch) GetPhysicalDeviceMemoryProperties(
	physicalDevice PhysicalDevice,
	memoryProperties *PhysicalDeviceMemoryProperties,
) {
	d.cmds.GetPhysicalDeviceMemoryProperties(
		native.PhysicalDevice(physicalDevice),
		(*native.PhysicalDeviceMemoryProperties)(unsafe.Pointer(memoryProperties)),
	)
}

func (d *Dispatch) GetPhysicalDeviceFormatProperties(
	physicalDevice PhysicalDevice,
	format Format,
	formatProperties *FormatProperties,
) {
	d.cmds.GetPhysicalDeviceFormatProperties(
		native.PhysicalDevice(physicalDevice),
		int32(format),
		(*native.FormatProperties)(unsafe.Pointer(formatProperties)),
	)
}

func (d *Dispatch) EnumerateDeviceLayerProperties(
	physicalDevice PhysicalDevice,
	propertyCount *uint32,
	properties *LayerProperties,
) Result {
	return Result(d.cmds.EnumerateDeviceLayerProperties(
		native.PhysicalDevice(physicalDevice),
		propertyCount,
		(*native.LayerProperties)(unsafe.Pointer(properties)),
	))
}

func (d *Dispatch) EnumerateDeviceExtensionProperties(
	physicalDevice PhysicalDevice,
	layerName *byte,
	propertyCount *uint32,
	properties *ExtensionProperties,
) Result {
	return Result(d.cmds.EnumerateDeviceExtensionProperties(
		native.PhysicalDevice(physicalDevice),
		layerName,
		propertyCount,
		(*native.ExtensionProperties)(unsafe.Pointer(properties)),
	))
}
