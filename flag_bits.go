// flag_bits.go
package vk

type QueueFlagBits uint32

const (
	QUEUE_GRAPHICS_BIT       QueueFlagBits = 0x00000001
	QUEUE_COMPUTE_BIT        QueueFlagBits = 0x00000002
	QUEUE_TRANSFER_BIT       QueueFlagBits = 0x00000004
	QUEUE_SPARSE_BINDING_BIT QueueFlagBits = 0x00000008
)

func (b QueueFlagBits) String() string {
	switch b {
	case QUEUE_GRAPHICS_BIT:
		return "Graphics"
	case QUEUE_COMPUTE_BIT:
		return "Compute"
	case QUEUE_TRANSFER_BIT:
		return "Transfer"
	case QUEUE_SPARSE_BINDING_BIT:
		return "SparseBinding"
	default:
		return "unknown"
	}
}

type MemoryPropertyFlagBits uint32

const (
	MEMORY_PROPERTY_DEVICE_LOCAL_BIT     MemoryPropertyFlagBits = 0x00000001
	MEMORY_PROPERTY_HOST_VISIBLE_BIT     MemoryPropertyFlagBits = 0x00000002
	MEMORY_PROPERTY_HOST_COHERENT_BIT    MemoryPropertyFlagBits = 0x00000004
	MEMORY_PROPERTY_HOST_CACHED_BIT      MemoryPropertyFlagBits = 0x00000008
	MEMORY_PROPERTY_LAZILY_ALLOCATED_BIT MemoryPropertyFlagBits = 0x00000010
)

func (b MemoryPropertyFlagBits) String() string {
	switch b {
	case MEMORY_PROPERTY_DEVICE_LOCAL_BIT:
		return "DeviceLocal"
	case MEMORY_PROPERTY_HOST_VISIBLE_BIT:
		return "HostVisible"
	case MEMORY_PROPERTY_HOST_COHERENT_BIT:
		return "HostCoherent"
	case MEMORY_PROPERTY_HOST_CACHED_BIT:
		return "HostCached"
	case MEMORY_PROPERTY_LAZILY_ALLOCATED_BIT:
		return "LazilyAllocated"
	default:
		return "unknown"
	}
}

type MemoryHeapFlagBits uint32

const (
	MEMORY_HEAP_DEVICE_LOCAL_BIT MemoryHeapFlagBits = 0x00000001
)

func (b MemoryHeapFlagBits) String() string {
	switch b {
	case MEMORY_HEAP_DEVICE_LOCAL_BIT:
		return "DeviceLocal"
	default:
		return "unknown"
	}
}

type FormatFeatureFlagBits uint32

const (
	FORMAT_FEATURE_SAMPLED_IMAGE_BIT               FormatFeatureFlagBits = 0x00000001
	FORMAT_FEATURE_STORAGE_IMAGE_BIT               FormatFeatureFlagBits = 0x00000002
	FORMAT_FEATURE_STORAGE_IMAGE_ATOMIC_BIT        FormatFeatureFlagBits = 0x00000004
	FORMAT_FEATURE_UNIFORM_TEXEL_BUFFER_BIT        FormatFeatureFlagBits = 0x00000008
	FORMAT_FEATURE_STORAGE_TEXEL_BUFFER_BIT        FormatFeatureFlagBits = 0x00000010
	FORMAT_FEATURE_STORAGE_TEXEL_BUFFER_ATOMIC_BIT FormatFeatureFlagBits = 0x00000020
	FORMAT_FEATURE_VERTEX_BUFFER_BIT               FormatFeatureFlagBits = 0x00000040
	FORMAT_FEATURE_COLOR_ATTACHMENT_BIT            FormatFeatureFlagBits = 0x00000080
	FORMAT_FEATURE_COLOR_ATTACHMENT_BLEND_BIT      FormatFeatureFlagBits = 0x00000100
	FORMAT_FEATURE_DEPTH_STENCIL_ATTACHMENT_BIT    FormatFeatureFlagBits = 0x00000200
	FORMAT_FEATURE_BLIT_SRC_BIT                    FormatFeatureFlagBits = 0x00000400
	FORMAT_FEATURE_BLIT_DST_BIT                    FormatFeatureFlagBits = 0x00000800
	FORMAT_FEATURE_SAMPLED_IMAGE_FILTER_LINEAR_BIT FormatFeatureFlagBits = 0x00001000
)

func (b FormatFeatureFlagBits) String() string {
	switch b {
	case FORMAT_FEATURE_SAMPLED_IMAGE_BIT:
		return "SampledImage"
	case FORMAT_FEATURE_STORAGE_IMAGE_BIT:
		return "StorageImage"
	case FORMAT_FEATURE_STORAGE_IMAGE_ATOMIC_BIT:
		return "StorageImageAtomic"
	case FORMAT_FEATURE_UNIFORM_TEXEL_BUFFER_BIT:
		return "UniformTexelBuffer"
	case FORMAT_FEATURE_STORAGE_TEXEL_BUFFER_BIT:
		return "StorageTexelBuffer"
	case FORMAT_FEATURE_STORAGE_TEXEL_BUFFER_ATOMIC_BIT:
		return "StorageTexelBufferAtomic"
	case FORMAT_FEATURE_VERTEX_BUFFER_BIT:
		return "VertexBuffer"
	case FORMAT_FEATURE_COLOR_ATTACHMENT_BIT:
		return "ColorAttachment"
	case FORMAT_FEATURE_COLOR_ATTACHMENT_BLEND_BIT:
		return "ColorAttachmentBlend"
	case FORMAT_FEATURE_DEPTH_STENCIL_ATTACHMENT_BIT:
		return "DepthStencilAttachment"
	case FORMAT_FEATURE_BLIT_SRC_BIT:
		return "BlitSrc"
	case FORMAT_FEATURE_BLIT_DST_BIT:
		return "BlitDst"
	case FORMAT_FEATURE_SAMPLED_IMAGE_FILTER_LINEAR_BIT:
		return "SampledImageFilterLinear"
	default:
		return "unknown"
	}
}

type BufferCreateFlagBits uint32

const (
	BUFFER_CREATE_SPARSE_BINDING_BIT   BufferCreateFlagBits = 0x00000001
	BUFFER_CREATE_SPARSE_RESIDENCY_BIT BufferCreateFlagBits = 0x00000002
	BUFFER_CREATE_SPARSE_ALIASED_BIT   BufferCreateFlagBits = 0x00000004
)

func (b BufferCreateFlagBits) String() string {
	switch b {
	case BUFFER_CREATE_SPARSE_BINDING_BIT:
		return "SparseBinding"
	case BUFFER_CREATE_SPARSE_RESIDENCY_BIT:
		return "SparseResidency"
	case BUFFER_CREATE_SPARSE_ALIASED_BIT:
		return "SparseAliased"
	default:
		return "unknown"
	}
}

type BufferUsageFlagBits uint32

const (
	BUFFER_USAGE_TRANSFER_SRC_BIT         BufferUsageFlagBits = 0x00000001
	BUFFER_USAGE_TRANSFER_DST_BIT         BufferUsageFlagBits = 0x00000002
	BUFFER_USAGE_UNIFORM_TEXEL_BUFFER_BIT BufferUsageFlagBits = 0x00000004
	BUFFER_USAGE_STORAGE_TEXEL_BUFFER_BIT BufferUsageFlagBits = 0x00000008
	BUFFER_USAGE_UNIFORM_BUFFER_BIT       BufferUsageFlagBits = 0x00000010
	BUFFER_USAGE_STORAGE_BUFFER_BIT       BufferUsageFlagBits = 0x00000020
	BUFFER_USAGE_INDEX_BUFFER_BIT         BufferUsageFlagBits = 0x00000040
	BUFFER_USAGE_VERTEX_BUFFER_BIT        BufferUsageFlagBits = 0x00000080
	BUFFER_USAGE_INDIRECT_BUFFER_BIT      BufferUsageFlagBits = 0x00000100
)

func (b BufferUsageFlagBits) String() string {
	switch b {
	case BUFFER_USAGE_TRANSFER_SRC_BIT:
		return "TransferSrc"
	case BUFFER_USAGE_TRANSFER_DST_BIT:
		return "TransferDst"
	case BUFFER_USAGE_UNIFORM_TEXEL_BUFFER_BIT:
		return "UniformTexelBuffer"
	case BUFFER_USAGE_STORAGE_TEXEL_BUFFER_BIT:
		return "StorageTexelBuffer"
	case BUFFER_USAGE_UNIFORM_BUFFER_BIT:
		return "UniformBuffer"
	case BUFFER_USAGE_STORAGE_BUFFER_BIT:
		return "StorageBuffer"
	case BUFFER_USAGE_INDEX_BUFFER_BIT:
		return "IndexBuffer"
	case BUFFER_USAGE_VERTEX_BUFFER_BIT:
		return "VertexBuffer"
	case BUFFER_USAGE_INDIRECT_BUFFER_BIT:
		return "IndirectBuffer"
	default:
		return "unknown"
	}
}

type ImageCreateFlagBits uint32

const (
	IMAGE_CREATE_SPARSE_BINDING_BIT   ImageCreateFlagBits = 0x00000001
	IMAGE_CREATE_SPARSE_RESIDENCY_BIT ImageCreateFlagBits = 0x00000002
	IMAGE_CREATE_SPARSE_ALIASED_BIT   ImageCreateFlagBits = 0x00000004
	IMAGE_CREATE_MUTABLE_FORMAT_BIT   ImageCreateFlagBits = 0x00000008
	IMAGE_CREATE_CUBE_COMPATIBLE_BIT  ImageCreateFlagBits = 0x00000010
)

func (b ImageCreateFlagBits) String() string {
	switch b {
	case IMAGE_CREATE_SPARSE_BINDING_BIT:
		return "SparseBinding"
	case IMAGE_CREATE_SPARSE_RESIDENCY_BIT:
		return "SparseResidency"
	case IMAGE_CREATE_SPARSE_ALIASED_BIT:
		return "SparseAliased"
	case IMAGE_CREATE_MUTABLE_FORMAT_BIT:
		return "MutableFormat"
	case IMAGE_CREATE_CUBE_COMPATIBLE_BIT:
		return "CubeCompatible"
	default:
		return "unknown"
	}
}

type ImageUsageFlagBits uint32

const (
	IMAGE_USAGE_TRANSFER_SRC_BIT             ImageUsageFlagBits = 0x00000001
	IMAGE_USAGE_TRANSFER_DST_BIT             ImageUsageFlagBits = 0x00000002
	IMAGE_USAGE_SAMPLED_BIT                  ImageUsageFlagBits = 0x00000004
	IMAGE_USAGE_STORAGE_BIT                  ImageUsageFlagBits = 0x00000008
	IMAGE_USAGE_COLOR_ATTACHMENT_BIT         ImageUsageFlagBits = 0x00000010
	IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT ImageUsageFlagBits = 0x00000020
	IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT     ImageUsageFlagBits = 0x00000040
	IMAGE_USAGE_INPUT_ATTACHMENT_BIT         ImageUsageFlagBits = 0x00000080
)

func (b ImageUsageFlagBits) String() string {
	switch b {
	case IMAGE_USAGE_TRANSFER_SRC_BIT:
		return "TransferSrc"
	case IMAGE_USAGE_TRANSFER_DST_BIT:
		return "TransferDst"
	case IMAGE_USAGE_SAMPLED_BIT:
		return "Sampled"
	case IMAGE_USAGE_STORAGE_BIT:
		return "Storage"
	case IMAGE_USAGE_COLOR_ATTACHMENT_BIT:
		return "ColorAttachment"
	case IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT:
		return "DepthStencilAttachment"
	case IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT:
		return "TransientAttachment"
	case IMAGE_USAGE_INPUT_ATTACHMENT_BIT:
		return "InputAttachment"
	default:
		return "unknown"
	}
}

type SampleCountFlagBits uint32

const (
	SAMPLE_COUNT_1_BIT  SampleCountFlagBits = 0x00000001
	SAMPLE_COUNT_2_BIT  SampleCountFlagBits = 0x00000002
	SAMPLE_COUNT_4_BIT  SampleCountFlagBits = 0x00000004
	SAMPLE_COUNT_8_BIT  SampleCountFlagBits = 0x00000008
	SAMPLE_COUNT_16_BIT SampleCountFlagBits = 0x00000010
	SAMPLE_COUNT_32_BIT SampleCountFlagBits = 0x00000020
	SAMPLE_COUNT_64_BIT SampleCountFlagBits = 0x00000040
)

func (b SampleCountFlagBits) String() string {
	switch b {
	case SAMPLE_COUNT_1_BIT:
		return "1"
	case SAMPLE_COUNT_2_BIT:
		return "2"
	case SAMPLE_COUNT_4_BIT:
		return "4"
	case SAMPLE_COUNT_8_BIT:
		return "8"
	case SAMPLE_COUNT_16_BIT:
		return "16"
	case SAMPLE_COUNT_32_BIT:
		return "32"
	case SAMPLE_COUNT_64_BIT:
		return "64"
	default:
		return "unknown"
	}
}

type ImageAspectFlagBits uint32

const (
	IMAGE_ASPECT_COLOR_BIT    ImageAspectFlagBits = 0x00000001
	IMAGE_ASPECT_DEPTH_BIT    ImageAspectFlagBits = 0x00000002
	IMAGE_ASPECT_STENCIL_BIT  ImageAspectFlagBits = 0x00000004
	IMAGE_ASPECT_METADATA_BIT ImageAspectFlagBits = 0x00000008
)

func (b ImageAspectFlagBits) String() string {
	switch b {
	case IMAGE_ASPECT_COLOR_BIT:
		return "Color"
	case IMAGE_ASPECT_DEPTH_BIT:
		return "Depth"
	case IMAGE_ASPECT_STENCIL_BIT:
		return "Stencil"
	case IMAGE_ASPECT_METADATA_BIT:
		return "Metadata"
	default:
		return "unknown"
	}
}

type CommandPoolCreateFlagBits uint32

const (
	COMMAND_POOL_CREATE_TRANSIENT_BIT            CommandPoolCreateFlagBits = 0x00000001
	COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT CommandPoolCreateFlagBits = 0x00000002
)

func (b CommandPoolCreateFlagBits) String() string {
	switch b {
	case COMMAND_POOL_CREATE_TRANSIENT_BIT:
		return "Transient"
	case COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT:
		return "ResetCommandBuffer"
	default:
		return "unknown"
	}
}

type CommandPoolResetFlagBits uint32

const (
	COMMAND_POOL_RESET_RELEASE_RESOURCES_BIT CommandPoolResetFlagBits = 0x00000001
)

func (b CommandPoolResetFlagBits) String() string {
	switch b {
	case COMMAND_POOL_RESET_RELEASE_RESOURCES_BIT:
		return "ReleaseResources"
	default:
		return "unknown"
	}
}

type CommandBufferUsageFlagBits uint32

const (
	COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT      CommandBufferUsageFlagBits = 0x00000001
	COMMAND_BUFFER_USAGE_RENDER_PASS_CONTINUE_BIT CommandBufferUsageFlagBits = 0x00000002
	COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT     CommandBufferUsageFlagBits = 0x00000004
)

func (b CommandBufferUsageFlagBits) String() string {
	switch b {
	case COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT:
		return "OneTimeSubmit"
	case COMMAND_BUFFER_USAGE_RENDER_PASS_CONTINUE_BIT:
		return "RenderPassContinue"
	case COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT:
		return "SimultaneousUse"
	default:
		return "unknown"
	}
}

type CommandBufferResetFlagBits uint32

const (
	COMMAND_BUFFER_RESET_RELEASE_RESOURCES_BIT CommandBufferResetFlagBits = 0x00000001
)

func (b CommandBufferResetFlagBits) String() string {
	switch b {
	case COMMAND_BUFFER_RESET_RELEASE_RESOURCES_BIT:
		return "ReleaseResources"
	default:
		return "unknown"
	}
}

type QueryControlFlagBits uint32

const (
	QUERY_CONTROL_PRECISE_BIT QueryControlFlagBits = 0x00000001
)

func (b QueryControlFlagBits) String() string {
	switch b {
	case QUERY_CONTROL_PRECISE_BIT:
		return "Precise"
	default:
		return "unknown"
	}
}

type QueryPipelineStatisticFlagBits uint32

const (
	QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_VERTICES_BIT                    QueryPipelineStatisticFlagBits = 0x00000001
	QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_PRIMITIVES_BIT                  QueryPipelineStatisticFlagBits = 0x00000002
	QUERY_PIPELINE_STATISTIC_VERTEX_SHADER_INVOCATIONS_BIT                  QueryPipelineStatisticFlagBits = 0x00000004
	QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_INVOCATIONS_BIT                QueryPipelineStatisticFlagBits = 0x00000008
	QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_PRIMITIVES_BIT                 QueryPipelineStatisticFlagBits = 0x00000010
	QUERY_PIPELINE_STATISTIC_CLIPPING_INVOCATIONS_BIT                       QueryPipelineStatisticFlagBits = 0x00000020
	QUERY_PIPELINE_STATISTIC_CLIPPING_PRIMITIVES_BIT                        QueryPipelineStatisticFlagBits = 0x00000040
	QUERY_PIPELINE_STATISTIC_FRAGMENT_SHADER_INVOCATIONS_BIT                QueryPipelineStatisticFlagBits = 0x00000080
	QUERY_PIPELINE_STATISTIC_TESSELLATION_CONTROL_SHADER_PATCHES_BIT        QueryPipelineStatisticFlagBits = 0x00000100
	QUERY_PIPELINE_STATISTIC_TESSELLATION_EVALUATION_SHADER_INVOCATIONS_BIT QueryPipelineStatisticFlagBits = 0x00000200
	QUERY_PIPELINE_STATISTIC_COMPUTE_SHADER_INVOCATIONS_BIT                 QueryPipelineStatisticFlagBits = 0x00000400
)

func (b QueryPipelineStatisticFlagBits) String() string {
	switch b {
	case QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_VERTICES_BIT:
		return "InputAssemblyVertices"
	case QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_PRIMITIVES_BIT:
		return "InputAssemblyPrimitives"
	case QUERY_PIPELINE_STATISTIC_VERTEX_SHADER_INVOCATIONS_BIT:
		return "VertexShaderInvocations"
	case QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_INVOCATIONS_BIT:
		return "GeometryShaderInvocations"
	case QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_PRIMITIVES_BIT:
		return "GeometryShaderPrimitives"
	case QUERY_PIPELINE_STATISTIC_CLIPPING_INVOCATIONS_BIT:
		return "ClippingInvocations"
	case QUERY_PIPELINE_STATISTIC_CLIPPING_PRIMITIVES_BIT:
		return "ClippingPrimitives"
	case QUERY_PIPELINE_STATISTIC_FRAGMENT_SHADER_INVOCATIONS_BIT:
		return "FragmentShaderInvocations"
	case QUERY_PIPELINE_STATISTIC_TESSELLATION_CONTROL_SHADER_PATCHES_BIT:
		return "TessellationControlShaderPatches"
	case QUERY_PIPELINE_STATISTIC_TESSELLATION_EVALUATION_SHADER_INVOCATIONS_BIT:
		return "TessellationEvaluationShaderInvocations"
	case QUERY_PIPELINE_STATISTIC_COMPUTE_SHADER_INVOCATIONS_BIT:
		return "ComputeShaderInvocations"
	default:
		return "unknown"
	}
}

type FenceCreateFlagBits uint32

const (
	FENCE_CREATE_SIGNALED_BIT FenceCreateFlagBits = 0x00000001
)

func (b FenceCreateFlagBits) String() string {
	switch b {
	case FENCE_CREATE_SIGNALED_BIT:
		return "Signaled"
	default:
		return "unknown"
	}
}

type PipelineStageFlagBits uint32

const (
	PIPELINE_STAGE_TOP_OF_PIPE_BIT                    PipelineStageFlagBits = 0x00000001
	PIPELINE_STAGE_DRAW_INDIRECT_BIT                  PipelineStageFlagBits = 0x00000002
	PIPELINE_STAGE_VERTEX_INPUT_BIT                   PipelineStageFlagBits = 0x00000004
	PIPELINE_STAGE_VERTEX_SHADER_BIT                  PipelineStageFlagBits = 0x00000008
	PIPELINE_STAGE_TESSELLATION_CONTROL_SHADER_BIT    PipelineStageFlagBits = 0x00000010
	PIPELINE_STAGE_TESSELLATION_EVALUATION_SHADER_BIT PipelineStageFlagBits = 0x00000020
	PIPELINE_STAGE_GEOMETRY_SHADER_BIT                PipelineStageFlagBits = 0x00000040
	PIPELINE_STAGE_FRAGMENT_SHADER_BIT                PipelineStageFlagBits = 0x00000080
	PIPELINE_STAGE_EARLY_FRAGMENT_TESTS_BIT           PipelineStageFlagBits = 0x00000100
	PIPELINE_STAGE_LATE_FRAGMENT_TESTS_BIT            PipelineStageFlagBits = 0x00000200
	PIPELINE_STAGE_COLOR_ATTACHMENT_OUTPUT_BIT        PipelineStageFlagBits = 0x00000400
	PIPELINE_STAGE_COMPUTE_SHADER_BIT                 PipelineStageFlagBits = 0x00000800
	PIPELINE_STAGE_TRANSFER_BIT                       PipelineStageFlagBits = 0x00001000
	PIPELINE_STAGE_BOTTOM_OF_PIPE_BIT                 PipelineStageFlagBits = 0x00002000
	PIPELINE_STAGE_HOST_BIT                           PipelineStageFlagBits = 0x00004000
	PIPELINE_STAGE_ALL_GRAPHICS_BIT                   PipelineStageFlagBits = 0x00008000
	PIPELINE_STAGE_ALL_COMMANDS_BIT                   PipelineStageFlagBits = 0x00010000
)

func (b PipelineStageFlagBits) String() string {
	switch b {
	case PIPELINE_STAGE_TOP_OF_PIPE_BIT:
		return "TopOfPipe"
	case PIPELINE_STAGE_DRAW_INDIRECT_BIT:
		return "DrawIndirect"
	case PIPELINE_STAGE_VERTEX_INPUT_BIT:
		return "VertexInput"
	case PIPELINE_STAGE_VERTEX_SHADER_BIT:
		return "VertexShader"
	case PIPELINE_STAGE_TESSELLATION_CONTROL_SHADER_BIT:
		return "TessellationControlShader"
	case PIPELINE_STAGE_TESSELLATION_EVALUATION_SHADER_BIT:
		return "TessellationEvaluationShader"
	case PIPELINE_STAGE_GEOMETRY_SHADER_BIT:
		return "GeometryShader"
	case PIPELINE_STAGE_FRAGMENT_SHADER_BIT:
		return "FragmentShader"
	case PIPELINE_STAGE_EARLY_FRAGMENT_TESTS_BIT:
		return "EarlyFragmentTests"
	case PIPELINE_STAGE_LATE_FRAGMENT_TESTS_BIT:
		return "LateFragmentTests"
	case PIPELINE_STAGE_COLOR_ATTACHMENT_OUTPUT_BIT:
		return "ColorAttachmentOutput"
	case PIPELINE_STAGE_COMPUTE_SHADER_BIT:
		return "ComputeShader"
	case PIPELINE_STAGE_TRANSFER_BIT:
		return "Transfer"
	case PIPELINE_STAGE_BOTTOM_OF_PIPE_BIT:
		return "BottomOfPipe"
	case PIPELINE_STAGE_HOST_BIT:
		return "Host"
	case PIPELINE_STAGE_ALL_GRAPHICS_BIT:
		return "AllGraphics"
	case PIPELINE_STAGE_ALL_COMMANDS_BIT:
		return "AllCommands"
	default:
		return "unknown"
	}
}

type AccessFlagBits uint32

const (
	ACCESS_INDIRECT_COMMAND_READ_BIT          AccessFlagBits = 0x00000001
	ACCESS_INDEX_READ_BIT                     AccessFlagBits = 0x00000002
	ACCESS_VERTEX_ATTRIBUTE_READ_BIT          AccessFlagBits = 0x00000004
	ACCESS_UNIFORM_READ_BIT                   AccessFlagBits = 0x00000008
	ACCESS_INPUT_ATTACHMENT_READ_BIT          AccessFlagBits = 0x00000010
	ACCESS_SHADER_READ_BIT                    AccessFlagBits = 0x00000020
	ACCESS_SHADER_WRITE_BIT                   AccessFlagBits = 0x00000040
	ACCESS_COLOR_ATTACHMENT_READ_BIT          AccessFlagBits = 0x00000080
	ACCESS_COLOR_ATTACHMENT_WRITE_BIT         AccessFlagBits = 0x00000100
	ACCESS_DEPTH_STENCIL_ATTACHMENT_READ_BIT  AccessFlagBits = 0x00000200
	ACCESS_DEPTH_STENCIL_ATTACHMENT_WRITE_BIT AccessFlagBits = 0x00000400
	ACCESS_TRANSFER_READ_BIT                  AccessFlagBits = 0x00000800
	ACCESS_TRANSFER_WRITE_BIT                 AccessFlagBits = 0x00001000
	ACCESS_HOST_READ_BIT                      AccessFlagBits = 0x00002000
	ACCESS_HOST_WRITE_BIT                     AccessFlagBits = 0x00004000
	ACCESS_MEMORY_READ_BIT                    AccessFlagBits = 0x00008000
	ACCESS_MEMORY_WRITE_BIT                   AccessFlagBits = 0x00010000
)

func (b AccessFlagBits) String() string {
	switch b {
	case ACCESS_INDIRECT_COMMAND_READ_BIT:
		return "IndirectCommandRead"
	case ACCESS_INDEX_READ_BIT:
		return "IndexRead"
	case ACCESS_VERTEX_ATTRIBUTE_READ_BIT:
		return "VertexAttributeRead"
	case ACCESS_UNIFORM_READ_BIT:
		return "UniformRead"
	case ACCESS_INPUT_ATTACHMENT_READ_BIT:
		return "InputAttachmentRead"
	case ACCESS_SHADER_READ_BIT:
		return "ShaderRead"
	case ACCESS_SHADER_WRITE_BIT:
		return "ShaderWrite"
	case ACCESS_COLOR_ATTACHMENT_READ_BIT:
		return "ColorAttachmentRead"
	case ACCESS_COLOR_ATTACHMENT_WRITE_BIT:
		return "ColorAttachmentWrite"
	case ACCESS_DEPTH_STENCIL_ATTACHMENT_READ_BIT:
		return "DepthStencilAttachmentRead"
	case ACCESS_DEPTH_STENCIL_ATTACHMENT_WRITE_BIT:
		return "DepthStencilAttachmentWrite"
	case ACCESS_TRANSFER_READ_BIT:
		return "TransferRead"
	case ACCESS_TRANSFER_WRITE_BIT:
		return "TransferWrite"
	case ACCESS_HOST_READ_BIT:
		return "HostRead"
	case ACCESS_HOST_WRITE_BIT:
		return "HostWrite"
	case ACCESS_MEMORY_READ_BIT:
		return "MemoryRead"
	case ACCESS_MEMORY_WRITE_BIT:
		return "MemoryWrite"
	default:
		return "unknown"
	}
}

type DependencyFlagBits uint32

const (
	DEPENDENCY_BY_REGION_BIT DependencyFlagBits = 0x00000001
)

func (b DependencyFlagBits) String() string {
	switch b {
	case DEPENDENCY_BY_REGION_BIT:
		return "ByRegion"
	default:
		return "unknown"
	}
}

type AttachmentDescriptionFlagBits uint32

const (
	ATTACHMENT_DESCRIPTION_MAY_ALIAS_BIT AttachmentDescriptionFlagBits = 0x00000001
)

func (b AttachmentDescriptionFlagBits) String() string {
	switch b {
	case ATTACHMENT_DESCRIPTION_MAY_ALIAS_BIT:
		return "MayAlias"
	default:
		return "unknown"
	}
}

type DescriptorPoolCreateFlagBits uint32

const (
	DESCRIPTOR_POOL_CREATE_FREE_DESCRIPTOR_SET_BIT DescriptorPoolCreateFlagBits = 0x00000001
)

func (b DescriptorPoolCreateFlagBits) String() string {
	switch b {
	case DESCRIPTOR_POOL_CREATE_FREE_DESCRIPTOR_SET_BIT:
		return "FreeDescriptorSet"
	default:
		return "unknown"
	}
}

// ShaderStageFlagBits is VkShaderStageFlagBits. The composite values
// SHADER_STAGE_ALL_GRAPHICS and SHADER_STAGE_ALL are masks, not single bits.
type ShaderStageFlagBits uint32

const (
	SHADER_STAGE_VERTEX_BIT                  ShaderStageFlagBits = 0x00000001
	SHADER_STAGE_TESSELLATION_CONTROL_BIT    ShaderStageFlagBits = 0x00000002
	SHADER_STAGE_TESSELLATION_EVALUATION_BIT ShaderStageFlagBits = 0x00000004
	SHADER_STAGE_GEOMETRY_BIT                ShaderStageFlagBits = 0x00000008
	SHADER_STAGE_FRAGMENT_BIT                ShaderStageFlagBits = 0x00000010
	SHADER_STAGE_COMPUTE_BIT                 ShaderStageFlagBits = 0x00000020
)

func (b ShaderStageFlagBits) String() string {
	switch b {
	case SHADER_STAGE_VERTEX_BIT:
		return "Vertex"
	case SHADER_STAGE_TESSELLATION_CONTROL_BIT:
		return "TessellationControl"
	case SHADER_STAGE_TESSELLATION_EVALUATION_BIT:
		return "TessellationEvaluation"
	case SHADER_STAGE_GEOMETRY_BIT:
		return "Geometry"
	case SHADER_STAGE_FRAGMENT_BIT:
		return "Fragment"
	case SHADER_STAGE_COMPUTE_BIT:
		return "Compute"
	default:
		return "unknown"
	}
}

const (
	SHADER_STAGE_ALL_GRAPHICS ShaderStageFlagBits = 0x0000001F
	SHADER_STAGE_ALL          ShaderStageFlagBits = 0x7FFFFFFF
)

type PipelineCreateFlagBits uint32

const (
	PIPELINE_CREATE_DISABLE_OPTIMIZATION_BIT PipelineCreateFlagBits = 0x00000001
	PIPELINE_CREATE_ALLOW_DERIVATIVES_BIT    PipelineCreateFlagBits = 0x00000002
	PIPELINE_CREATE_DERIVATIVE_BIT           PipelineCreateFlagBits = 0x00000004
)

func (b PipelineCreateFlagBits) String() string {
	switch b {
	case PIPELINE_CREATE_DISABLE_OPTIMIZATION_BIT:
		return "DisableOptimization"
	case PIPELINE_CREATE_ALLOW_DERIVATIVES_BIT:
		return "AllowDerivatives"
	case PIPELINE_CREATE_DERIVATIVE_BIT:
		return "Derivative"
	default:
		return "unknown"
	}
}

type CullModeFlagBits uint32

const (
	CULL_MODE_FRONT_BIT CullModeFlagBits = 0x00000001
	CULL_MODE_BACK_BIT  CullModeFlagBits = 0x00000002
)

func (b CullModeFlagBits) String() string {
	switch b {
	case CULL_MODE_FRONT_BIT:
		return "Front"
	case CULL_MODE_BACK_BIT:
		return "Back"
	default:
		return "unknown"
	}
}

const (
	CULL_MODE_NONE           CullModeFlagBits = 0x00000000
	CULL_MODE_FRONT_AND_BACK CullModeFlagBits = 0x00000003
)

type ColorComponentFlagBits uint32

const (
	COLOR_COMPONENT_R_BIT ColorComponentFlagBits = 0x00000001
	COLOR_COMPONENT_G_BIT ColorComponentFlagBits = 0x00000002
	COLOR_COMPONENT_B_BIT ColorComponentFlagBits = 0x00000004
	COLOR_COMPONENT_A_BIT ColorComponentFlagBits = 0x00000008
)

func (b ColorComponentFlagBits) String() string {
	switch b {
	case COLOR_COMPONENT_R_BIT:
		return "R"
	case COLOR_COMPONENT_G_BIT:
		return "G"
	case COLOR_COMPONENT_B_BIT:
		return "B"
	case COLOR_COMPONENT_A_BIT:
		return "A"
	default:
		return "unknown"
	}
}

type ResolveModeFlagBits uint32

const (
	RESOLVE_MODE_SAMPLE_ZERO_BIT ResolveModeFlagBits = 0x00000001
	RESOLVE_MODE_AVERAGE_BIT     ResolveModeFlagBits = 0x00000002
	RESOLVE_MODE_MIN_BIT         ResolveModeFlagBits = 0x00000004
	RESOLVE_MODE_MAX_BIT         ResolveModeFlagBits = 0x00000008
)

func (b ResolveModeFlagBits) String() string {
	switch b {
	case RESOLVE_MODE_SAMPLE_ZERO_BIT:
		return "SampleZero"
	case RESOLVE_MODE_AVERAGE_BIT:
		return "Average"
	case RESOLVE_MODE_MIN_BIT:
		return "Min"
	case RESOLVE_MODE_MAX_BIT:
		return "Max"
	default:
		return "unknown"
	}
}

const (
	RESOLVE_MODE_NONE ResolveModeFlagBits = 0x00000000
)

type RenderingFlagBits uint32

const (
	RENDERING_CONTENTS_SECONDARY_COMMAND_BUFFERS_BIT RenderingFlagBits = 0x00000001
	RENDERING_SUSPENDING_BIT                         RenderingFlagBits = 0x00000002
	RENDERING_RESUMING_BIT                           RenderingFlagBits = 0x00000004
)

func (b RenderingFlagBits) String() string {
	switch b {
	case RENDERING_CONTENTS_SECONDARY_COMMAND_BUFFERS_BIT:
		return "ContentsSecondaryCommandBuffers"
	case RENDERING_SUSPENDING_BIT:
		return "Suspending"
	case RENDERING_RESUMING_BIT:
		return "Resuming"
	default:
		return "unknown"
	}
}

type SparseMemoryBindFlagBits uint32

const (
	SPARSE_MEMORY_BIND_METADATA_BIT SparseMemoryBindFlagBits = 0x00000001
)

func (b SparseMemoryBindFlagBits) String() string {
	switch b {
	case SPARSE_MEMORY_BIND_METADATA_BIT:
		return "Metadata"
	default:
		return "unknown"
	}
}

type SparseImageFormatFlagBits uint32

const (
	SPARSE_IMAGE_FORMAT_SINGLE_MIPTAIL_BIT         SparseImageFormatFlagBits = 0x00000001
	SPARSE_IMAGE_FORMAT_ALIGNED_MIP_SIZE_BIT       SparseImageFormatFlagBits = 0x00000002
	SPARSE_IMAGE_FORMAT_NONSTANDARD_BLOCK_SIZE_BIT SparseImageFormatFlagBits = 0x00000004
)

func (b SparseImageFormatFlagBits) String() string {
	switch b {
	case SPARSE_IMAGE_FORMAT_SINGLE_MIPTAIL_BIT:
		return "SingleMiptail"
	case SPARSE_IMAGE_FORMAT_ALIGNED_MIP_SIZE_BIT:
		return "AlignedMipSize"
	case SPARSE_IMAGE_FORMAT_NONSTANDARD_BLOCK_SIZE_BIT:
		return "NonstandardBlockSize"
	default:
		return "unknown"
	}
}

type SurfaceTransformFlagBitsKHR uint32

const (
	SURFACE_TRANSFORM_IDENTITY_BIT_KHR                     SurfaceTransformFlagBitsKHR = 0x00000001
	SURFACE_TRANSFORM_ROTATE_90_BIT_KHR                    SurfaceTransformFlagBitsKHR = 0x00000002
	SURFACE_TRANSFORM_ROTATE_180_BIT_KHR                   SurfaceTransformFlagBitsKHR = 0x00000004
	SURFACE_TRANSFORM_ROTATE_270_BIT_KHR                   SurfaceTransformFlagBitsKHR = 0x00000008
	SURFACE_TRANSFORM_HORIZONTAL_MIRROR_BIT_KHR            SurfaceTransformFlagBitsKHR = 0x00000010
	SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_90_BIT_KHR  SurfaceTransformFlagBitsKHR = 0x00000020
	SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_180_BIT_KHR SurfaceTransformFlagBitsKHR = 0x00000040
	SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_270_BIT_KHR SurfaceTransformFlagBitsKHR = 0x00000080
	SURFACE_TRANSFORM_INHERIT_BIT_KHR                      SurfaceTransformFlagBitsKHR = 0x00000100
)

func (b SurfaceTransformFlagBitsKHR) String() string {
	switch b {
	case SURFACE_TRANSFORM_IDENTITY_BIT_KHR:
		return "Identity"
	case SURFACE_TRANSFORM_ROTATE_90_BIT_KHR:
		return "Rotate90"
	case SURFACE_TRANSFORM_ROTATE_180_BIT_KHR:
		return "Rotate180"
	case SURFACE_TRANSFORM_ROTATE_270_BIT_KHR:
		return "Rotate270"
	case SURFACE_TRANSFORM_HORIZONTAL_MIRROR_BIT_KHR:
		return "HorizontalMirror"
	case SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_90_BIT_KHR:
		return "HorizontalMirrorRotate90"
	case SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_180_BIT_KHR:
		return "HorizontalMirrorRotate180"
	case SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_270_BIT_KHR:
		return "HorizontalMirrorRotate270"
	case SURFACE_TRANSFORM_INHERIT_BIT_KHR:
		return "Inherit"
	default:
		return "unknown"
	}
}

type CompositeAlphaFlagBitsKHR uint32

const (
	COMPOSITE_ALPHA_OPAQUE_BIT_KHR          CompositeAlphaFlagBitsKHR = 0x00000001
	COMPOSITE_ALPHA_PRE_MULTIPLIED_BIT_KHR  CompositeAlphaFlagBitsKHR = 0x00000002
	COMPOSITE_ALPHA_POST_MULTIPLIED_BIT_KHR CompositeAlphaFlagBitsKHR = 0x00000004
	COMPOSITE_ALPHA_INHERIT_BIT_KHR         CompositeAlphaFlagBitsKHR = 0x00000008
)

func (b CompositeAlphaFlagBitsKHR) String() string {
	switch b {
	case COMPOSITE_ALPHA_OPAQUE_BIT_KHR:
		return "Opaque"
	case COMPOSITE_ALPHA_PRE_MULTIPLIED_BIT_KHR:
		return "PreMultiplied"
	case COMPOSITE_ALPHA_POST_MULTIPLIED_BIT_KHR:
		return "PostMultiplied"
	case COMPOSITE_ALPHA_INHERIT_BIT_KHR:
		return "Inherit"
	default:
		return "unknown"
	}
}

// InstanceCreateFlagBits is reserved; no bits are defined for it yet.
type InstanceCreateFlagBits uint32

func (InstanceCreateFlagBits) String() string {
	return "unknown"
}

// DeviceCreateFlagBits is reserved; no bits are defined for it yet.
type DeviceCreateFlagBits uint32

func (DeviceCreateFlagBits) String() string {
	return "unknown"
}

// DeviceQueueCreateFlagBits is reserved; no bits are defined for it yet.
type DeviceQueueCreateFlagBits uint32

func (DeviceQueueCreateFlagBits) String() string {
	return "unknown"
}

// MemoryMapFlagBits is reserved; no bits are defined for it yet.
type MemoryMapFlagBits uint32

func (MemoryMapFlagBits) String() string {
	return "unknown"
}

// SemaphoreCreateFlagBits is reserved; no bits are defined for it yet.
type SemaphoreCreateFlagBits uint32

func (SemaphoreCreateFlagBits) String() string {
	return "unknown"
}

// EventCreateFlagBits is reserved; no bits are defined for it yet.
type EventCreateFlagBits uint32

func (EventCreateFlagBits) String() string {
	return "unknown"
}

// ImageViewCreateFlagBits is reserved; no bits are defined for it yet.
type ImageViewCreateFlagBits uint32

func (ImageViewCreateFlagBits) String() string {
	return "unknown"
}

// ShaderModuleCreateFlagBits is reserved; no bits are defined for it yet.
type ShaderModuleCreateFlagBits uint32

func (ShaderModuleCreateFlagBits) String() string {
	return "unknown"
}

// RenderPassCreateFlagBits is reserved; no bits are defined for it yet.
type RenderPassCreateFlagBits uint32

func (RenderPassCreateFlagBits) String() string {
	return "unknown"
}

// FramebufferCreateFlagBits is reserved; no bits are defined for it yet.
type FramebufferCreateFlagBits uint32

func (FramebufferCreateFlagBits) String() string {
	return "unknown"
}

// SubpassDescriptionFlagBits is reserved; no bits are defined for it yet.
type SubpassDescriptionFlagBits uint32

func (SubpassDescriptionFlagBits) String() string {
	return "unknown"
}

// DescriptorSetLayoutCreateFlagBits is reserved; no bits are defined for it yet.
type DescriptorSetLayoutCreateFlagBits uint32

func (DescriptorSetLayoutCreateFlagBits) String() string {
	return "unknown"
}

// DescriptorPoolResetFlagBits is reserved; no bits are defined for it yet.
type DescriptorPoolResetFlagBits uint32

func (DescriptorPoolResetFlagBits) String() string {
	return "unknown"
}

// PipelineLayoutCreateFlagBits is reserved; no bits are defined for it yet.
type PipelineLayoutCreateFlagBits uint32

func (PipelineLayoutCreateFlagBits) String() string {
	return "unknown"
}

// PipelineShaderStageCreateFlagBits is reserved; no bits are defined for it yet.
type PipelineShaderStageCreateFlagBits uint32

func (PipelineShaderStageCreateFlagBits) String() string {
	return "unknown"
}

// PipelineVertexInputStateCreateFlagBits is reserved; no bits are defined for it yet.
type PipelineVertexInputStateCreateFlagBits uint32

func (PipelineVertexInputStateCreateFlagBits) String() string {
	return "unknown"
}

// PipelineInputAssemblyStateCreateFlagBits is reserved; no bits are defined for it yet.
type PipelineInputAssemblyStateCreateFlagBits uint32

func (PipelineInputAssemblyStateCreateFlagBits) String() string {
	return "unknown"
}

// PipelineTessellationStateCreateFlagBits is reserved; no bits are defined for it yet.
type PipelineTessellationStateCreateFlagBits uint32

func (PipelineTessellationStateCreateFlagBits) String() string {
	return "unknown"
}

// PipelineViewportStateCreateFlagBits is reserved; no bits are defined for it yet.
type PipelineViewportStateCreateFlagBits uint32

func (PipelineViewportStateCreateFlagBits) String() string {
	return "unknown"
}

// PipelineRasterizationStateCreateFlagBits is reserved; no bits are defined for it yet.
type PipelineRasterizationStateCreateFlagBits uint32

func (PipelineRasterizationStateCreateFlagBits) String() string {
	return "unknown"
}

// PipelineMultisampleStateCreateFlagBits is reserved; no bits are defined for it yet.
type PipelineMultisampleStateCreateFlagBits uint32

func (PipelineMultisampleStateCreateFlagBits) String() string {
	return "unknown"
}

// PipelineDepthStencilStateCreateFlagBits is reserved; no bits are defined for it yet.
type PipelineDepthStencilStateCreateFlagBits uint32

func (PipelineDepthStencilStateCreateFlagBits) String() string {
	return "unknown"
}

// PipelineColorBlendStateCreateFlagBits is reserved; no bits are defined for it yet.
type PipelineColorBlendStateCreateFlagBits uint32

func (PipelineColorBlendStateCreateFlagBits) String() string {
	return "unknown"
}

// PipelineDynamicStateCreateFlagBits is reserved; no bits are defined for it yet.
type PipelineDynamicStateCreateFlagBits uint32

func (PipelineDynamicStateCreateFlagBits) String() string {
	return "unknown"
}

// SamplerCreateFlagBits is reserved; no bits are defined for it yet.
type SamplerCreateFlagBits uint32

func (SamplerCreateFlagBits) String() string {
	return "unknown"
}

// SwapchainCreateFlagBitsKHR is reserved; no bits are defined for it yet.
type SwapchainCreateFlagBitsKHR uint32

func (SwapchainCreateFlagBitsKHR) String() string {
	return "unknown"
}

// XlibSurfaceCreateFlagBitsKHR is reserved; no bits are defined for it yet.
type XlibSurfaceCreateFlagBitsKHR uint32

func (XlibSurfaceCreateFlagBitsKHR) String() string {
	return "unknown"
}

// XcbSurfaceCreateFlagBitsKHR is reserved; no bits are defined for it yet.
type XcbSurfaceCreateFlagBitsKHR uint32

func (XcbSurfaceCreateFlagBitsKHR) String() string {
	return "unknown"
}

// WaylandSurfaceCreateFlagBitsKHR is reserved; no bits are defined for it yet.
type WaylandSurfaceCreateFlagBitsKHR uint32

func (WaylandSurfaceCreateFlagBitsKHR) String() string {
	return "unknown"
}

// MirSurfaceCreateFlagBitsKHR is reserved; no bits are defined for it yet.
type MirSurfaceCreateFlagBitsKHR uint32

func (MirSurfaceCreateFlagBitsKHR) String() string {
	return "unknown"
}

// AndroidSurfaceCreateFlagBitsKHR is reserved; no bits are defined for it yet.
type AndroidSurfaceCreateFlagBitsKHR uint32

func (AndroidSurfaceCreateFlagBitsKHR) String() string {
	return "unknown"
}

// Win32SurfaceCreateFlagBitsKHR is reserved; no bits are defined for it yet.
type Win32SurfaceCreateFlagBitsKHR uint32

func (Win32SurfaceCreateFlagBitsKHR) String() string {
	return "unknown"
}

type (
	QueueFlags                            = Flags[QueueFlagBits]
	MemoryPropertyFlags                   = Flags[MemoryPropertyFlagBits]
	MemoryHeapFlags                       = Flags[MemoryHeapFlagBits]
	FormatFeatureFlags                    = Flags[FormatFeatureFlagBits]
	BufferCreateFlags                     = Flags[BufferCreateFlagBits]
	BufferUsageFlags                      = Flags[BufferUsageFlagBits]
	ImageCreateFlags                      = Flags[ImageCreateFlagBits]
	ImageUsageFlags                       = Flags[ImageUsageFlagBits]
	SampleCountFlags                      = Flags[SampleCountFlagBits]
	ImageAspectFlags                      = Flags[ImageAspectFlagBits]
	CommandPoolCreateFlags                = Flags[CommandPoolCreateFlagBits]
	CommandPoolResetFlags                 = Flags[CommandPoolResetFlagBits]
	CommandBufferUsageFlags               = Flags[CommandBufferUsageFlagBits]
	CommandBufferResetFlags               = Flags[CommandBufferResetFlagBits]
	QueryControlFlags                     = Flags[QueryControlFlagBits]
	QueryPipelineStatisticFlags           = Flags[QueryPipelineStatisticFlagBits]
	FenceCreateFlags                      = Flags[FenceCreateFlagBits]
	PipelineStageFlags                    = Flags[PipelineStageFlagBits]
	AccessFlags                           = Flags[AccessFlagBits]
	DependencyFlags                       = Flags[DependencyFlagBits]
	AttachmentDescriptionFlags            = Flags[AttachmentDescriptionFlagBits]
	DescriptorPoolCreateFlags             = Flags[DescriptorPoolCreateFlagBits]
	ShaderStageFlags                      = Flags[ShaderStageFlagBits]
	PipelineCreateFlags                   = Flags[PipelineCreateFlagBits]
	CullModeFlags                         = Flags[CullModeFlagBits]
	ColorComponentFlags                   = Flags[ColorComponentFlagBits]
	ResolveModeFlags                      = Flags[ResolveModeFlagBits]
	RenderingFlags                        = Flags[RenderingFlagBits]
	SparseMemoryBindFlags                 = Flags[SparseMemoryBindFlagBits]
	SparseImageFormatFlags                = Flags[SparseImageFormatFlagBits]
	SurfaceTransformFlagsKHR              = Flags[SurfaceTransformFlagBitsKHR]
	CompositeAlphaFlagsKHR                = Flags[CompositeAlphaFlagBitsKHR]
	InstanceCreateFlags                   = Flags[InstanceCreateFlagBits]
	DeviceCreateFlags                     = Flags[DeviceCreateFlagBits]
	DeviceQueueCreateFlags                = Flags[DeviceQueueCreateFlagBits]
	MemoryMapFlags                        = Flags[MemoryMapFlagBits]
	SemaphoreCreateFlags                  = Flags[SemaphoreCreateFlagBits]
	EventCreateFlags                      = Flags[EventCreateFlagBits]
	ImageViewCreateFlags                  = Flags[ImageViewCreateFlagBits]
	ShaderModuleCreateFlags               = Flags[ShaderModuleCreateFlagBits]
	RenderPassCreateFlags                 = Flags[RenderPassCreateFlagBits]
	FramebufferCreateFlags                = Flags[FramebufferCreateFlagBits]
	SubpassDescriptionFlags               = Flags[SubpassDescriptionFlagBits]
	DescriptorSetLayoutCreateFlags        = Flags[DescriptorSetLayoutCreateFlagBits]
	DescriptorPoolResetFlags              = Flags[DescriptorPoolResetFlagBits]
	PipelineLayoutCreateFlags             = Flags[PipelineLayoutCreateFlagBits]
	PipelineShaderStageCreateFlags        = Flags[PipelineShaderStageCreateFlagBits]
	PipelineVertexInputStateCreateFlags   = Flags[PipelineVertexInputStateCreateFlagBits]
	PipelineInputAssemblyStateCreateFlags = Flags[PipelineInputAssemblyStateCreateFlagBits]
	PipelineTessellationStateCreateFlags  = Flags[PipelineTessellationStateCreateFlagBits]
	PipelineViewportStateCreateFlags      = Flags[PipelineViewportStateCreateFlagBits]
	PipelineRasterizationStateCreateFlags = Flags[PipelineRasterizationStateCreateFlagBits]
	PipelineMultisampleStateCreateFlags   = Flags[PipelineMultisampleStateCreateFlagBits]
	PipelineDepthStencilStateCreateFlags  = Flags[PipelineDepthStencilStateCreateFlagBits]
	PipelineColorBlendStateCreateFlags    = Flags[PipelineColorBlendStateCreateFlagBits]
	PipelineDynamicStateCreateFlags       = Flags[PipelineDynamicStateCreateFlagBits]
	SamplerCreateFlags                    = Flags[SamplerCreateFlagBits]
	SwapchainCreateFlagsKHR               = Flags[SwapchainCreateFlagBitsKHR]
	XlibSurfaceCreateFlagsKHR             = Flags[XlibSurfaceCreateFlagBitsKHR]
	XcbSurfaceCreateFlagsKHR              = Flags[XcbSurfaceCreateFlagBitsKHR]
	WaylandSurfaceCreateFlagsKHR          = Flags[WaylandSurfaceCreateFlagBitsKHR]
	MirSurfaceCreateFlagsKHR              = Flags[MirSurfaceCreateFlagBitsKHR]
	AndroidSurfaceCreateFlagsKHR          = Flags[AndroidSurfaceCreateFlagBitsKHR]
	Win32SurfaceCreateFlagsKHR            = Flags[Win32SurfaceCreateFlagBitsKHR]
)
