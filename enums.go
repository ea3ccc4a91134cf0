// enums.go
package vk

type PhysicalDeviceType int32

const (
	PHYSICAL_DEVICE_TYPE_OTHER          PhysicalDeviceType = 0
	PHYSICAL_DEVICE_TYPE_INTEGRATED_GPU PhysicalDeviceType = 1
	PHYSICAL_DEVICE_TYPE_DISCRETE_GPU   PhysicalDeviceType = 2
	PHYSICAL_DEVICE_TYPE_VIRTUAL_GPU    PhysicalDeviceType = 3
	PHYSICAL_DEVICE_TYPE_CPU            PhysicalDeviceType = 4
)

func (v PhysicalDeviceType) String() string {
	switch v {
	case PHYSICAL_DEVICE_TYPE_OTHER:
		return "Other"
	case PHYSICAL_DEVICE_TYPE_INTEGRATED_GPU:
		return "IntegratedGpu"
	case PHYSICAL_DEVICE_TYPE_DISCRETE_GPU:
		return "DiscreteGpu"
	case PHYSICAL_DEVICE_TYPE_VIRTUAL_GPU:
		return "VirtualGpu"
	case PHYSICAL_DEVICE_TYPE_CPU:
		return "Cpu"
	default:
		return "unknown"
	}
}

type SharingMode int32

const (
	SHARING_MODE_EXCLUSIVE  SharingMode = 0
	SHARING_MODE_CONCURRENT SharingMode = 1
)

func (v SharingMode) String() string {
	switch v {
	case SHARING_MODE_EXCLUSIVE:
		return "Exclusive"
	case SHARING_MODE_CONCURRENT:
		return "Concurrent"
	default:
		return "unknown"
	}
}

type ImageType int32

const (
	IMAGE_TYPE_1D ImageType = 0
	IMAGE_TYPE_2D ImageType = 1
	IMAGE_TYPE_3D ImageType = 2
)

func (v ImageType) String() string {
	switch v {
	case IMAGE_TYPE_1D:
		return "1D"
	case IMAGE_TYPE_2D:
		return "2D"
	case IMAGE_TYPE_3D:
		return "3D"
	default:
		return "unknown"
	}
}

type ImageTiling int32

const (
	IMAGE_TILING_OPTIMAL ImageTiling = 0
	IMAGE_TILING_LINEAR  ImageTiling = 1
)

func (v ImageTiling) String() string {
	switch v {
	case IMAGE_TILING_OPTIMAL:
		return "Optimal"
	case IMAGE_TILING_LINEAR:
		return "Linear"
	default:
		return "unknown"
	}
}

type ImageViewType int32

const (
	IMAGE_VIEW_TYPE_1D         ImageViewType = 0
	IMAGE_VIEW_TYPE_2D         ImageViewType = 1
	IMAGE_VIEW_TYPE_3D         ImageViewType = 2
	IMAGE_VIEW_TYPE_CUBE       ImageViewType = 3
	IMAGE_VIEW_TYPE_1D_ARRAY   ImageViewType = 4
	IMAGE_VIEW_TYPE_2D_ARRAY   ImageViewType = 5
	IMAGE_VIEW_TYPE_CUBE_ARRAY ImageViewType = 6
)

func (v ImageViewType) String() string {
	switch v {
	case IMAGE_VIEW_TYPE_1D:
		return "1D"
	case IMAGE_VIEW_TYPE_2D:
		return "2D"
	case IMAGE_VIEW_TYPE_3D:
		return "3D"
	case IMAGE_VIEW_TYPE_CUBE:
		return "Cube"
	case IMAGE_VIEW_TYPE_1D_ARRAY:
		return "1DArray"
	case IMAGE_VIEW_TYPE_2D_ARRAY:
		return "2DArray"
	case IMAGE_VIEW_TYPE_CUBE_ARRAY:
		return "CubeArray"
	default:
		return "unknown"
	}
}

type ComponentSwizzle int32

const (
	COMPONENT_SWIZZLE_IDENTITY ComponentSwizzle = 0
	COMPONENT_SWIZZLE_ZERO     ComponentSwizzle = 1
	COMPONENT_SWIZZLE_ONE      ComponentSwizzle = 2
	COMPONENT_SWIZZLE_R        ComponentSwizzle = 3
	COMPONENT_SWIZZLE_G        ComponentSwizzle = 4
	COMPONENT_SWIZZLE_B        ComponentSwizzle = 5
	COMPONENT_SWIZZLE_A        ComponentSwizzle = 6
)

func (v ComponentSwizzle) String() string {
	switch v {
	case COMPONENT_SWIZZLE_IDENTITY:
		return "Identity"
	case COMPONENT_SWIZZLE_ZERO:
		return "Zero"
	case COMPONENT_SWIZZLE_ONE:
		return "One"
	case COMPONENT_SWIZZLE_R:
		return "R"
	case COMPONENT_SWIZZLE_G:
		return "G"
	case COMPONENT_SWIZZLE_B:
		return "B"
	case COMPONENT_SWIZZLE_A:
		return "A"
	default:
		return "unknown"
	}
}

type ImageLayout int32

const (
	IMAGE_LAYOUT_UNDEFINED                        ImageLayout = 0
	IMAGE_LAYOUT_GENERAL                          ImageLayout = 1
	IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL         ImageLayout = 2
	IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL ImageLayout = 3
	IMAGE_LAYOUT_DEPTH_STENCIL_READ_ONLY_OPTIMAL  ImageLayout = 4
	IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL         ImageLayout = 5
	IMAGE_LAYOUT_TRANSFER_SRC_OPTIMAL             ImageLayout = 6
	IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL             ImageLayout = 7
	IMAGE_LAYOUT_PREINITIALIZED                   ImageLayout = 8
	IMAGE_LAYOUT_PRESENT_SRC_KHR                  ImageLayout = 1000001002
)

func (v ImageLayout) String() string {
	switch v {
	case IMAGE_LAYOUT_UNDEFINED:
		return "Undefined"
	case IMAGE_LAYOUT_GENERAL:
		return "General"
	case IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL:
		return "ColorAttachmentOptimal"
	case IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL:
		return "DepthStencilAttachmentOptimal"
	case IMAGE_LAYOUT_DEPTH_STENCIL_READ_ONLY_OPTIMAL:
		return "DepthStencilReadOnlyOptimal"
	case IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL:
		return "ShaderReadOnlyOptimal"
	case IMAGE_LAYOUT_TRANSFER_SRC_OPTIMAL:
		return "TransferSrcOptimal"
	case IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL:
		return "TransferDstOptimal"
	case IMAGE_LAYOUT_PREINITIALIZED:
		return "Preinitialized"
	case IMAGE_LAYOUT_PRESENT_SRC_KHR:
		return "PresentSrcKHR"
	default:
		return "unknown"
	}
}

type CommandBufferLevel int32

const (
	COMMAND_BUFFER_LEVEL_PRIMARY   CommandBufferLevel = 0
	COMMAND_BUFFER_LEVEL_SECONDARY CommandBufferLevel = 1
)

func (v CommandBufferLevel) String() string {
	switch v {
	case COMMAND_BUFFER_LEVEL_PRIMARY:
		return "Primary"
	case COMMAND_BUFFER_LEVEL_SECONDARY:
		return "Secondary"
	default:
		return "unknown"
	}
}

type AttachmentLoadOp int32

const (
	ATTACHMENT_LOAD_OP_LOAD      AttachmentLoadOp = 0
	ATTACHMENT_LOAD_OP_CLEAR     AttachmentLoadOp = 1
	ATTACHMENT_LOAD_OP_DONT_CARE AttachmentLoadOp = 2
)

func (v AttachmentLoadOp) String() string {
	switch v {
	case ATTACHMENT_LOAD_OP_LOAD:
		return "Load"
	case ATTACHMENT_LOAD_OP_CLEAR:
		return "Clear"
	case ATTACHMENT_LOAD_OP_DONT_CARE:
		return "DontCare"
	default:
		return "unknown"
	}
}

type AttachmentStoreOp int32

const (
	ATTACHMENT_STORE_OP_STORE     AttachmentStoreOp = 0
	ATTACHMENT_STORE_OP_DONT_CARE AttachmentStoreOp = 1
)

func (v AttachmentStoreOp) String() string {
	switch v {
	case ATTACHMENT_STORE_OP_STORE:
		return "Store"
	case ATTACHMENT_STORE_OP_DONT_CARE:
		return "DontCare"
	default:
		return "unknown"
	}
}

type PipelineBindPoint int32

const (
	PIPELINE_BIND_POINT_GRAPHICS PipelineBindPoint = 0
	PIPELINE_BIND_POINT_COMPUTE  PipelineBindPoint = 1
)

func (v PipelineBindPoint) String() string {
	switch v {
	case PIPELINE_BIND_POINT_GRAPHICS:
		return "Graphics"
	case PIPELINE_BIND_POINT_COMPUTE:
		return "Compute"
	default:
		return "unknown"
	}
}

type SubpassContents int32

const (
	SUBPASS_CONTENTS_INLINE                    SubpassContents = 0
	SUBPASS_CONTENTS_SECONDARY_COMMAND_BUFFERS SubpassContents = 1
)

func (v SubpassContents) String() string {
	switch v {
	case SUBPASS_CONTENTS_INLINE:
		return "Inline"
	case SUBPASS_CONTENTS_SECONDARY_COMMAND_BUFFERS:
		return "SecondaryCommandBuffers"
	default:
		return "unknown"
	}
}

type DescriptorType int32

const (
	DESCRIPTOR_TYPE_SAMPLER                DescriptorType = 0
	DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER DescriptorType = 1
	DESCRIPTOR_TYPE_SAMPLED_IMAGE          DescriptorType = 2
	DESCRIPTOR_TYPE_STORAGE_IMAGE          DescriptorType = 3
	DESCRIPTOR_TYPE_UNIFORM_TEXEL_BUFFER   DescriptorType = 4
	DESCRIPTOR_TYPE_STORAGE_TEXEL_BUFFER   DescriptorType = 5
	DESCRIPTOR_TYPE_UNIFORM_BUFFER         DescriptorType = 6
	DESCRIPTOR_TYPE_STORAGE_BUFFER         DescriptorType = 7
	DESCRIPTOR_TYPE_UNIFORM_BUFFER_DYNAMIC DescriptorType = 8
	DESCRIPTOR_TYPE_STORAGE_BUFFER_DYNAMIC DescriptorType = 9
	DESCRIPTOR_TYPE_INPUT_ATTACHMENT       DescriptorType = 10
)

func (v DescriptorType) String() string {
	switch v {
	case DESCRIPTOR_TYPE_SAMPLER:
		return "Sampler"
	case DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER:
		return "CombinedImageSampler"
	case DESCRIPTOR_TYPE_SAMPLED_IMAGE:
		return "SampledImage"
	case DESCRIPTOR_TYPE_STORAGE_IMAGE:
		return "StorageImage"
	case DESCRIPTOR_TYPE_UNIFORM_TEXEL_BUFFER:
		return "UniformTexelBuffer"
	case DESCRIPTOR_TYPE_STORAGE_TEXEL_BUFFER:
		return "StorageTexelBuffer"
	case DESCRIPTOR_TYPE_UNIFORM_BUFFER:
		return "UniformBuffer"
	case DESCRIPTOR_TYPE_STORAGE_BUFFER:
		return "StorageBuffer"
	case DESCRIPTOR_TYPE_UNIFORM_BUFFER_DYNAMIC:
		return "UniformBufferDynamic"
	case DESCRIPTOR_TYPE_STORAGE_BUFFER_DYNAMIC:
		return "StorageBufferDynamic"
	case DESCRIPTOR_TYPE_INPUT_ATTACHMENT:
		return "InputAttachment"
	default:
		return "unknown"
	}
}

type IndexType int32

const (
	INDEX_TYPE_UINT16 IndexType = 0
	INDEX_TYPE_UINT32 IndexType = 1
)

func (v IndexType) String() string {
	switch v {
	case INDEX_TYPE_UINT16:
		return "Uint16"
	case INDEX_TYPE_UINT32:
		return "Uint32"
	default:
		return "unknown"
	}
}

type PrimitiveTopology int32

const (
	PRIMITIVE_TOPOLOGY_POINT_LIST                    PrimitiveTopology = 0
	PRIMITIVE_TOPOLOGY_LINE_LIST                     PrimitiveTopology = 1
	PRIMITIVE_TOPOLOGY_LINE_STRIP                    PrimitiveTopology = 2
	PRIMITIVE_TOPOLOGY_TRIANGLE_LIST                 PrimitiveTopology = 3
	PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP                PrimitiveTopology = 4
	PRIMITIVE_TOPOLOGY_TRIANGLE_FAN                  PrimitiveTopology = 5
	PRIMITIVE_TOPOLOGY_LINE_LIST_WITH_ADJACENCY      PrimitiveTopology = 6
	PRIMITIVE_TOPOLOGY_LINE_STRIP_WITH_ADJACENCY     PrimitiveTopology = 7
	PRIMITIVE_TOPOLOGY_TRIANGLE_LIST_WITH_ADJACENCY  PrimitiveTopology = 8
	PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP_WITH_ADJACENCY PrimitiveTopology = 9
	PRIMITIVE_TOPOLOGY_PATCH_LIST                    PrimitiveTopology = 10
)

func (v PrimitiveTopology) String() string {
	switch v {
	case PRIMITIVE_TOPOLOGY_POINT_LIST:
		return "PointList"
	case PRIMITIVE_TOPOLOGY_LINE_LIST:
		return "LineList"
	case PRIMITIVE_TOPOLOGY_LINE_STRIP:
		return "LineStrip"
	case PRIMITIVE_TOPOLOGY_TRIANGLE_LIST:
		return "TriangleList"
	case PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP:
		return "TriangleStrip"
	case PRIMITIVE_TOPOLOGY_TRIANGLE_FAN:
		return "TriangleFan"
	case PRIMITIVE_TOPOLOGY_LINE_LIST_WITH_ADJACENCY:
		return "LineListWithAdjacency"
	case PRIMITIVE_TOPOLOGY_LINE_STRIP_WITH_ADJACENCY:
		return "LineStripWithAdjacency"
	case PRIMITIVE_TOPOLOGY_TRIANGLE_LIST_WITH_ADJACENCY:
		return "TriangleListWithAdjacency"
	case PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP_WITH_ADJACENCY:
		return "TriangleStripWithAdjacency"
	case PRIMITIVE_TOPOLOGY_PATCH_LIST:
		return "PatchList"
	default:
		return "unknown"
	}
}

type PolygonMode int32

const (
	POLYGON_MODE_FILL  PolygonMode = 0
	POLYGON_MODE_LINE  PolygonMode = 1
	POLYGON_MODE_POINT PolygonMode = 2
)

func (v PolygonMode) String() string {
	switch v {
	case POLYGON_MODE_FILL:
		return "Fill"
	case POLYGON_MODE_LINE:
		return "Line"
	case POLYGON_MODE_POINT:
		return "Point"
	default:
		return "unknown"
	}
}

type FrontFace int32

const (
	FRONT_FACE_COUNTER_CLOCKWISE FrontFace = 0
	FRONT_FACE_CLOCKWISE         FrontFace = 1
)

func (v FrontFace) String() string {
	switch v {
	case FRONT_FACE_COUNTER_CLOCKWISE:
		return "CounterClockwise"
	case FRONT_FACE_CLOCKWISE:
		return "Clockwise"
	default:
		return "unknown"
	}
}

type CompareOp int32

const (
	COMPARE_OP_NEVER            CompareOp = 0
	COMPARE_OP_LESS             CompareOp = 1
	COMPARE_OP_EQUAL            CompareOp = 2
	COMPARE_OP_LESS_OR_EQUAL    CompareOp = 3
	COMPARE_OP_GREATER          CompareOp = 4
	COMPARE_OP_NOT_EQUAL        CompareOp = 5
	COMPARE_OP_GREATER_OR_EQUAL CompareOp = 6
	COMPARE_OP_ALWAYS           CompareOp = 7
)

func (v CompareOp) String() string {
	switch v {
	case COMPARE_OP_NEVER:
		return "Never"
	case COMPARE_OP_LESS:
		return "Less"
	case COMPARE_OP_EQUAL:
		return "Equal"
	case COMPARE_OP_LESS_OR_EQUAL:
		return "LessOrEqual"
	case COMPARE_OP_GREATER:
		return "Greater"
	case COMPARE_OP_NOT_EQUAL:
		return "NotEqual"
	case COMPARE_OP_GREATER_OR_EQUAL:
		return "GreaterOrEqual"
	case COMPARE_OP_ALWAYS:
		return "Always"
	default:
		return "unknown"
	}
}

type StencilOp int32

const (
	STENCIL_OP_KEEP                StencilOp = 0
	STENCIL_OP_ZERO                StencilOp = 1
	STENCIL_OP_REPLACE             StencilOp = 2
	STENCIL_OP_INCREMENT_AND_CLAMP StencilOp = 3
	STENCIL_OP_DECREMENT_AND_CLAMP StencilOp = 4
	STENCIL_OP_INVERT              StencilOp = 5
	STENCIL_OP_INCREMENT_AND_WRAP  StencilOp = 6
	STENCIL_OP_DECREMENT_AND_WRAP  StencilOp = 7
)

func (v StencilOp) String() string {
	switch v {
	case STENCIL_OP_KEEP:
		return "Keep"
	case STENCIL_OP_ZERO:
		return "Zero"
	case STENCIL_OP_REPLACE:
		return "Replace"
	case STENCIL_OP_INCREMENT_AND_CLAMP:
		return "IncrementAndClamp"
	case STENCIL_OP_DECREMENT_AND_CLAMP:
		return "DecrementAndClamp"
	case STENCIL_OP_INVERT:
		return "Invert"
	case STENCIL_OP_INCREMENT_AND_WRAP:
		return "IncrementAndWrap"
	case STENCIL_OP_DECREMENT_AND_WRAP:
		return "DecrementAndWrap"
	default:
		return "unknown"
	}
}

type LogicOp int32

const (
	LOGIC_OP_CLEAR         LogicOp = 0
	LOGIC_OP_AND           LogicOp = 1
	LOGIC_OP_AND_REVERSE   LogicOp = 2
	LOGIC_OP_COPY          LogicOp = 3
	LOGIC_OP_AND_INVERTED  LogicOp = 4
	LOGIC_OP_NO_OP         LogicOp = 5
	LOGIC_OP_XOR           LogicOp = 6
	LOGIC_OP_OR            LogicOp = 7
	LOGIC_OP_NOR           LogicOp = 8
	LOGIC_OP_EQUIVALENT    LogicOp = 9
	LOGIC_OP_INVERT        LogicOp = 10
	LOGIC_OP_OR_REVERSE    LogicOp = 11
	LOGIC_OP_COPY_INVERTED LogicOp = 12
	LOGIC_OP_OR_INVERTED   LogicOp = 13
	LOGIC_OP_NAND          LogicOp = 14
	LOGIC_OP_SET           LogicOp = 15
)

func (v LogicOp) String() string {
	switch v {
	case LOGIC_OP_CLEAR:
		return "Clear"
	case LOGIC_OP_AND:
		return "And"
	case LOGIC_OP_AND_REVERSE:
		return "AndReverse"
	case LOGIC_OP_COPY:
		return "Copy"
	case LOGIC_OP_AND_INVERTED:
		return "AndInverted"
	case LOGIC_OP_NO_OP:
		return "NoOp"
	case LOGIC_OP_XOR:
		return "Xor"
	case LOGIC_OP_OR:
		return "Or"
	case LOGIC_OP_NOR:
		return "Nor"
	case LOGIC_OP_EQUIVALENT:
		return "Equivalent"
	case LOGIC_OP_INVERT:
		return "Invert"
	case LOGIC_OP_OR_REVERSE:
		return "OrReverse"
	case LOGIC_OP_COPY_INVERTED:
		return "CopyInverted"
	case LOGIC_OP_OR_INVERTED:
		return "OrInverted"
	case LOGIC_OP_NAND:
		return "Nand"
	case LOGIC_OP_SET:
		return "Set"
	default:
		return "unknown"
	}
}

type BlendFactor int32

const (
	BLEND_FACTOR_ZERO                     BlendFactor = 0
	BLEND_FACTOR_ONE                      BlendFactor = 1
	BLEND_FACTOR_SRC_COLOR                BlendFactor = 2
	BLEND_FACTOR_ONE_MINUS_SRC_COLOR      BlendFactor = 3
	BLEND_FACTOR_DST_COLOR                BlendFactor = 4
	BLEND_FACTOR_ONE_MINUS_DST_COLOR      BlendFactor = 5
	BLEND_FACTOR_SRC_ALPHA                BlendFactor = 6
	BLEND_FACTOR_ONE_MINUS_SRC_ALPHA      BlendFactor = 7
	BLEND_FACTOR_DST_ALPHA                BlendFactor = 8
	BLEND_FACTOR_ONE_MINUS_DST_ALPHA      BlendFactor = 9
	BLEND_FACTOR_CONSTANT_COLOR           BlendFactor = 10
	BLEND_FACTOR_ONE_MINUS_CONSTANT_COLOR BlendFactor = 11
	BLEND_FACTOR_CONSTANT_ALPHA           BlendFactor = 12
	BLEND_FACTOR_ONE_MINUS_CONSTANT_ALPHA BlendFactor = 13
	BLEND_FACTOR_SRC_ALPHA_SATURATE       BlendFactor = 14
	BLEND_FACTOR_SRC1_COLOR               BlendFactor = 15
	BLEND_FACTOR_ONE_MINUS_SRC1_COLOR     BlendFactor = 16
	BLEND_FACTOR_SRC1_ALPHA               BlendFactor = 17
	BLEND_FACTOR_ONE_MINUS_SRC1_ALPHA     BlendFactor = 18
)

func (v BlendFactor) String() string {
	switch v {
	case BLEND_FACTOR_ZERO:
		return "Zero"
	case BLEND_FACTOR_ONE:
		return "One"
	case BLEND_FACTOR_SRC_COLOR:
		return "SrcColor"
	case BLEND_FACTOR_ONE_MINUS_SRC_COLOR:
		return "OneMinusSrcColor"
	case BLEND_FACTOR_DST_COLOR:
		return "DstColor"
	case BLEND_FACTOR_ONE_MINUS_DST_COLOR:
		return "OneMinusDstColor"
	case BLEND_FACTOR_SRC_ALPHA:
		return "SrcAlpha"
	case BLEND_FACTOR_ONE_MINUS_SRC_ALPHA:
		return "OneMinusSrcAlpha"
	case BLEND_FACTOR_DST_ALPHA:
		return "DstAlpha"
	case BLEND_FACTOR_ONE_MINUS_DST_ALPHA:
		return "OneMinusDstAlpha"
	case BLEND_FACTOR_CONSTANT_COLOR:
		return "ConstantColor"
	case BLEND_FACTOR_ONE_MINUS_CONSTANT_COLOR:
		return "OneMinusConstantColor"
	case BLEND_FACTOR_CONSTANT_ALPHA:
		return "ConstantAlpha"
	case BLEND_FACTOR_ONE_MINUS_CONSTANT_ALPHA:
		return "OneMinusConstantAlpha"
	case BLEND_FACTOR_SRC_ALPHA_SATURATE:
		return "SrcAlphaSaturate"
	case BLEND_FACTOR_SRC1_COLOR:
		return "Src1Color"
	case BLEND_FACTOR_ONE_MINUS_SRC1_COLOR:
		return "OneMinusSrc1Color"
	case BLEND_FACTOR_SRC1_ALPHA:
		return "Src1Alpha"
	case BLEND_FACTOR_ONE_MINUS_SRC1_ALPHA:
		return "OneMinusSrc1Alpha"
	default:
		return "unknown"
	}
}

type BlendOp int32

const (
	BLEND_OP_ADD              BlendOp = 0
	BLEND_OP_SUBTRACT         BlendOp = 1
	BLEND_OP_REVERSE_SUBTRACT BlendOp = 2
	BLEND_OP_MIN              BlendOp = 3
	BLEND_OP_MAX              BlendOp = 4
)

func (v BlendOp) String() string {
	switch v {
	case BLEND_OP_ADD:
		return "Add"
	case BLEND_OP_SUBTRACT:
		return "Subtract"
	case BLEND_OP_REVERSE_SUBTRACT:
		return "ReverseSubtract"
	case BLEND_OP_MIN:
		return "Min"
	case BLEND_OP_MAX:
		return "Max"
	default:
		return "unknown"
	}
}

type DynamicState int32

const (
	DYNAMIC_STATE_VIEWPORT             DynamicState = 0
	DYNAMIC_STATE_SCISSOR              DynamicState = 1
	DYNAMIC_STATE_LINE_WIDTH           DynamicState = 2
	DYNAMIC_STATE_DEPTH_BIAS           DynamicState = 3
	DYNAMIC_STATE_BLEND_CONSTANTS      DynamicState = 4
	DYNAMIC_STATE_DEPTH_BOUNDS         DynamicState = 5
	DYNAMIC_STATE_STENCIL_COMPARE_MASK DynamicState = 6
	DYNAMIC_STATE_STENCIL_WRITE_MASK   DynamicState = 7
	DYNAMIC_STATE_STENCIL_REFERENCE    DynamicState = 8
)

func (v DynamicState) String() string {
	switch v {
	case DYNAMIC_STATE_VIEWPORT:
		return "Viewport"
	case DYNAMIC_STATE_SCISSOR:
		return "Scissor"
	case DYNAMIC_STATE_LINE_WIDTH:
		return "LineWidth"
	case DYNAMIC_STATE_DEPTH_BIAS:
		return "DepthBias"
	case DYNAMIC_STATE_BLEND_CONSTANTS:
		return "BlendConstants"
	case DYNAMIC_STATE_DEPTH_BOUNDS:
		return "DepthBounds"
	case DYNAMIC_STATE_STENCIL_COMPARE_MASK:
		return "StencilCompareMask"
	case DYNAMIC_STATE_STENCIL_WRITE_MASK:
		return "StencilWriteMask"
	case DYNAMIC_STATE_STENCIL_REFERENCE:
		return "StencilReference"
	default:
		return "unknown"
	}
}

type VertexInputRate int32

const (
	VERTEX_INPUT_RATE_VERTEX   VertexInputRate = 0
	VERTEX_INPUT_RATE_INSTANCE VertexInputRate = 1
)

func (v VertexInputRate) String() string {
	switch v {
	case VERTEX_INPUT_RATE_VERTEX:
		return "Vertex"
	case VERTEX_INPUT_RATE_INSTANCE:
		return "Instance"
	default:
		return "unknown"
	}
}

type Filter int32

const (
	FILTER_NEAREST Filter = 0
	FILTER_LINEAR  Filter = 1
)

func (v Filter) String() string {
	switch v {
	case FILTER_NEAREST:
		return "Nearest"
	case FILTER_LINEAR:
		return "Linear"
	default:
		return "unknown"
	}
}

type SamplerMipmapMode int32

const (
	SAMPLER_MIPMAP_MODE_NEAREST SamplerMipmapMode = 0
	SAMPLER_MIPMAP_MODE_LINEAR  SamplerMipmapMode = 1
)

func (v SamplerMipmapMode) String() string {
	switch v {
	case SAMPLER_MIPMAP_MODE_NEAREST:
		return "Nearest"
	case SAMPLER_MIPMAP_MODE_LINEAR:
		return "Linear"
	default:
		return "unknown"
	}
}

type SamplerAddressMode int32

const (
	SAMPLER_ADDRESS_MODE_REPEAT               SamplerAddressMode = 0
	SAMPLER_ADDRESS_MODE_MIRRORED_REPEAT      SamplerAddressMode = 1
	SAMPLER_ADDRESS_MODE_CLAMP_TO_EDGE        SamplerAddressMode = 2
	SAMPLER_ADDRESS_MODE_CLAMP_TO_BORDER      SamplerAddressMode = 3
	SAMPLER_ADDRESS_MODE_MIRROR_CLAMP_TO_EDGE SamplerAddressMode = 4
)

func (v SamplerAddressMode) String() string {
	switch v {
	case SAMPLER_ADDRESS_MODE_REPEAT:
		return "Repeat"
	case SAMPLER_ADDRESS_MODE_MIRRORED_REPEAT:
		return "MirroredRepeat"
	case SAMPLER_ADDRESS_MODE_CLAMP_TO_EDGE:
		return "ClampToEdge"
	case SAMPLER_ADDRESS_MODE_CLAMP_TO_BORDER:
		return "ClampToBorder"
	case SAMPLER_ADDRESS_MODE_MIRROR_CLAMP_TO_EDGE:
		return "MirrorClampToEdge"
	default:
		return "unknown"
	}
}

type BorderColor int32

const (
	BORDER_COLOR_FLOAT_TRANSPARENT_BLACK BorderColor = 0
	BORDER_COLOR_INT_TRANSPARENT_BLACK   BorderColor = 1
	BORDER_COLOR_FLOAT_OPAQUE_BLACK      BorderColor = 2
	BORDER_COLOR_INT_OPAQUE_BLACK        BorderColor = 3
	BORDER_COLOR_FLOAT_OPAQUE_WHITE      BorderColor = 4
	BORDER_COLOR_INT_OPAQUE_WHITE        BorderColor = 5
)

func (v BorderColor) String() string {
	switch v {
	case BORDER_COLOR_FLOAT_TRANSPARENT_BLACK:
		return "FloatTransparentBlack"
	case BORDER_COLOR_INT_TRANSPARENT_BLACK:
		return "IntTransparentBlack"
	case BORDER_COLOR_FLOAT_OPAQUE_BLACK:
		return "FloatOpaqueBlack"
	case BORDER_COLOR_INT_OPAQUE_BLACK:
		return "IntOpaqueBlack"
	case BORDER_COLOR_FLOAT_OPAQUE_WHITE:
		return "FloatOpaqueWhite"
	case BORDER_COLOR_INT_OPAQUE_WHITE:
		return "IntOpaqueWhite"
	default:
		return "unknown"
	}
}

type PresentModeKHR int32

const (
	PRESENT_MODE_IMMEDIATE_KHR    PresentModeKHR = 0
	PRESENT_MODE_MAILBOX_KHR      PresentModeKHR = 1
	PRESENT_MODE_FIFO_KHR         PresentModeKHR = 2
	PRESENT_MODE_FIFO_RELAXED_KHR PresentModeKHR = 3
)

func (v PresentModeKHR) String() string {
	switch v {
	case PRESENT_MODE_IMMEDIATE_KHR:
		return "Immediate"
	case PRESENT_MODE_MAILBOX_KHR:
		return "Mailbox"
	case PRESENT_MODE_FIFO_KHR:
		return "Fifo"
	case PRESENT_MODE_FIFO_RELAXED_KHR:
		return "FifoRelaxed"
	default:
		return "unknown"
	}
}

type ColorSpaceKHR int32

const (
	COLOR_SPACE_SRGB_NONLINEAR_KHR ColorSpaceKHR = 0
)

func (v ColorSpaceKHR) String() string {
	switch v {
	case COLOR_SPACE_SRGB_NONLINEAR_KHR:
		return "SrgbNonlinear"
	default:
		return "unknown"
	}
}

// Format is VkFormat. Only the core 1.0 formats are named; other values pass
// through unchanged and print as "unknown".
type Format int32

const (
	FORMAT_UNDEFINED                  Format = 0
	FORMAT_R4G4_UNORM_PACK8           Format = 1
	FORMAT_R4G4B4A4_UNORM_PACK16      Format = 2
	FORMAT_B4G4R4A4_UNORM_PACK16      Format = 3
	FORMAT_R5G6B5_UNORM_PACK16        Format = 4
	FORMAT_B5G6R5_UNORM_PACK16        Format = 5
	FORMAT_R5G5B5A1_UNORM_PACK16      Format = 6
	FORMAT_B5G5R5A1_UNORM_PACK16      Format = 7
	FORMAT_A1R5G5B5_UNORM_PACK16      Format = 8
	FORMAT_R8_UNORM                   Format = 9
	FORMAT_R8_SNORM                   Format = 10
	FORMAT_R8_USCALED                 Format = 11
	FORMAT_R8_SSCALED                 Format = 12
	FORMAT_R8_UINT                    Format = 13
	FORMAT_R8_SINT                    Format = 14
	FORMAT_R8_SRGB                    Format = 15
	FORMAT_R8G8_UNORM                 Format = 16
	FORMAT_R8G8_SNORM                 Format = 17
	FORMAT_R8G8_USCALED               Format = 18
	FORMAT_R8G8_SSCALED               Format = 19
	FORMAT_R8G8_UINT                  Format = 20
	FORMAT_R8G8_SINT                  Format = 21
	FORMAT_R8G8_SRGB                  Format = 22
	FORMAT_R8G8B8_UNORM               Format = 23
	FORMAT_R8G8B8_SNORM               Format = 24
	FORMAT_R8G8B8_USCALED             Format = 25
	FORMAT_R8G8B8_SSCALED             Format = 26
	FORMAT_R8G8B8_UINT                Format = 27
	FORMAT_R8G8B8_SINT                Format = 28
	FORMAT_R8G8B8_SRGB                Format = 29
	FORMAT_B8G8R8_UNORM               Format = 30
	FORMAT_B8G8R8_SNORM               Format = 31
	FORMAT_B8G8R8_USCALED             Format = 32
	FORMAT_B8G8R8_SSCALED             Format = 33
	FORMAT_B8G8R8_UINT                Format = 34
	FORMAT_B8G8R8_SINT                Format = 35
	FORMAT_B8G8R8_SRGB                Format = 36
	FORMAT_R8G8B8A8_UNORM             Format = 37
	FORMAT_R8G8B8A8_SNORM             Format = 38
	FORMAT_R8G8B8A8_USCALED           Format = 39
	FORMAT_R8G8B8A8_SSCALED           Format = 40
	FORMAT_R8G8B8A8_UINT              Format = 41
	FORMAT_R8G8B8A8_SINT              Format = 42
	FORMAT_R8G8B8A8_SRGB              Format = 43
	FORMAT_B8G8R8A8_UNORM             Format = 44
	FORMAT_B8G8R8A8_SNORM             Format = 45
	FORMAT_B8G8R8A8_USCALED           Format = 46
	FORMAT_B8G8R8A8_SSCALED           Format = 47
	FORMAT_B8G8R8A8_UINT              Format = 48
	FORMAT_B8G8R8A8_SINT              Format = 49
	FORMAT_B8G8R8A8_SRGB              Format = 50
	FORMAT_A8B8G8R8_UNORM_PACK32      Format = 51
	FORMAT_A8B8G8R8_SNORM_PACK32      Format = 52
	FORMAT_A8B8G8R8_USCALED_PACK32    Format = 53
	FORMAT_A8B8G8R8_SSCALED_PACK32    Format = 54
	FORMAT_A8B8G8R8_UINT_PACK32       Format = 55
	FORMAT_A8B8G8R8_SINT_PACK32       Format = 56
	FORMAT_A8B8G8R8_SRGB_PACK32       Format = 57
	FORMAT_A2R10G10B10_UNORM_PACK32   Format = 58
	FORMAT_A2R10G10B10_SNORM_PACK32   Format = 59
	FORMAT_A2R10G10B10_USCALED_PACK32 Format = 60
	FORMAT_A2R10G10B10_SSCALED_PACK32 Format = 61
	FORMAT_A2R10G10B10_UINT_PACK32    Format = 62
	FORMAT_A2R10G10B10_SINT_PACK32    Format = 63
	FORMAT_A2B10G10R10_UNORM_PACK32   Format = 64
	FORMAT_A2B10G10R10_SNORM_PACK32   Format = 65
	FORMAT_A2B10G10R10_USCALED_PACK32 Format = 66
	FORMAT_A2B10G10R10_SSCALED_PACK32 Format = 67
	FORMAT_A2B10G10R10_UINT_PACK32    Format = 68
	FORMAT_A2B10G10R10_SINT_PACK32    Format = 69
	FORMAT_R16_UNORM                  Format = 70
	FORMAT_R16_SNORM                  Format = 71
	FORMAT_R16_USCALED                Format = 72
	FORMAT_R16_SSCALED                Format = 73
	FORMAT_R16_UINT                   Format = 74
	FORMAT_R16_SINT                   Format = 75
	FORMAT_R16_SFLOAT                 Format = 76
	FORMAT_R16G16_UNORM               Format = 77
	FORMAT_R16G16_SNORM               Format = 78
	FORMAT_R16G16_USCALED             Format = 79
	FORMAT_R16G16_SSCALED             Format = 80
	FORMAT_R16G16_UINT                Format = 81
	FORMAT_R16G16_SINT                Format = 82
	FORMAT_R16G16_SFLOAT              Format = 83
	FORMAT_R16G16B16_UNORM            Format = 84
	FORMAT_R16G16B16_SNORM            Format = 85
	FORMAT_R16G16B16_USCALED          Format = 86
	FORMAT_R16G16B16_SSCALED          Format = 87
	FORMAT_R16G16B16_UINT             Format = 88
	FORMAT_R16G16B16_SINT             Format = 89
	FORMAT_R16G16B16_SFLOAT           Format = 90
	FORMAT_R16G16B16A16_UNORM         Format = 91
	FORMAT_R16G16B16A16_SNORM         Format = 92
	FORMAT_R16G16B16A16_USCALED       Format = 93
	FORMAT_R16G16B16A16_SSCALED       Format = 94
	FORMAT_R16G16B16A16_UINT          Format = 95
	FORMAT_R16G16B16A16_SINT          Format = 96
	FORMAT_R16G16B16A16_SFLOAT        Format = 97
	FORMAT_R32_UINT                   Format = 98
	FORMAT_R32_SINT                   Format = 99
	FORMAT_R32_SFLOAT                 Format = 100
	FORMAT_R32G32_UINT                Format = 101
	FORMAT_R32G32_SINT                Format = 102
	FORMAT_R32G32_SFLOAT              Format = 103
	FORMAT_R32G32B32_UINT             Format = 104
	FORMAT_R32G32B32_SINT             Format = 105
	FORMAT_R32G32B32_SFLOAT           Format = 106
	FORMAT_R32G32B32A32_UINT          Format = 107
	FORMAT_R32G32B32A32_SINT          Format = 108
	FORMAT_R32G32B32A32_SFLOAT        Format = 109
	FORMAT_R64_UINT                   Format = 110
	FORMAT_R64_SINT                   Format = 111
	FORMAT_R64_SFLOAT                 Format = 112
	FORMAT_R64G64_UINT                Format = 113
	FORMAT_R64G64_SINT                Format = 114
	FORMAT_R64G64_SFLOAT              Format = 115
	FORMAT_R64G64B64_UINT             Format = 116
	FORMAT_R64G64B64_SINT             Format = 117
	FORMAT_R64G64B64_SFLOAT           Format = 118
	FORMAT_R64G64B64A64_UINT          Format = 119
	FORMAT_R64G64B64A64_SINT          Format = 120
	FORMAT_R64G64B64A64_SFLOAT        Format = 121
	FORMAT_B10G11R11_UFLOAT_PACK32    Format = 122
	FORMAT_E5B9G9R9_UFLOAT_PACK32     Format = 123
	FORMAT_D16_UNORM                  Format = 124
	FORMAT_X8_D24_UNORM_PACK32        Format = 125
	FORMAT_D32_SFLOAT                 Format = 126
	FORMAT_S8_UINT                    Format = 127
	FORMAT_D16_UNORM_S8_UINT          Format = 128
	FORMAT_D24_UNORM_S8_UINT          Format = 129
	FORMAT_D32_SFLOAT_S8_UINT         Format = 130
	FORMAT_BC1_RGB_UNORM_BLOCK        Format = 131
	FORMAT_BC1_RGB_SRGB_BLOCK         Format = 132
	FORMAT_BC1_RGBA_UNORM_BLOCK       Format = 133
	FORMAT_BC1_RGBA_SRGB_BLOCK        Format = 134
	FORMAT_BC2_UNORM_BLOCK            Format = 135
	FORMAT_BC2_SRGB_BLOCK             Format = 136
	FORMAT_BC3_UNORM_BLOCK            Format = 137
	FORMAT_BC3_SRGB_BLOCK             Format = 138
	FORMAT_BC4_UNORM_BLOCK            Format = 139
	FORMAT_BC4_SNORM_BLOCK            Format = 140
	FORMAT_BC5_UNORM_BLOCK            Format = 141
	FORMAT_BC5_SNORM_BLOCK            Format = 142
	FORMAT_BC6H_UFLOAT_BLOCK          Format = 143
	FORMAT_BC6H_SFLOAT_BLOCK          Format = 144
	FORMAT_BC7_UNORM_BLOCK            Format = 145
	FORMAT_BC7_SRGB_BLOCK             Format = 146
	FORMAT_ETC2_R8G8B8_UNORM_BLOCK    Format = 147
	FORMAT_ETC2_R8G8B8_SRGB_BLOCK     Format = 148
	FORMAT_ETC2_R8G8B8A1_UNORM_BLOCK  Format = 149
	FORMAT_ETC2_R8G8B8A1_SRGB_BLOCK   Format = 150
	FORMAT_ETC2_R8G8B8A8_UNORM_BLOCK  Format = 151
	FORMAT_ETC2_R8G8B8A8_SRGB_BLOCK   Format = 152
	FORMAT_EAC_R11_UNORM_BLOCK        Format = 153
	FORMAT_EAC_R11_SNORM_BLOCK        Format = 154
	FORMAT_EAC_R11G11_UNORM_BLOCK     Format = 155
	FORMAT_EAC_R11G11_SNORM_BLOCK     Format = 156
	FORMAT_ASTC_4x4_UNORM_BLOCK       Format = 157
	FORMAT_ASTC_4x4_SRGB_BLOCK        Format = 158
	FORMAT_ASTC_5x4_UNORM_BLOCK       Format = 159
	FORMAT_ASTC_5x4_SRGB_BLOCK        Format = 160
	FORMAT_ASTC_5x5_UNORM_BLOCK       Format = 161
	FORMAT_ASTC_5x5_SRGB_BLOCK        Format = 162
	FORMAT_ASTC_6x5_UNORM_BLOCK       Format = 163
	FORMAT_ASTC_6x5_SRGB_BLOCK        Format = 164
	FORMAT_ASTC_6x6_UNORM_BLOCK       Format = 165
	FORMAT_ASTC_6x6_SRGB_BLOCK        Format = 166
	FORMAT_ASTC_8x5_UNORM_BLOCK       Format = 167
	FORMAT_ASTC_8x5_SRGB_BLOCK        Format = 168
	FORMAT_ASTC_8x6_UNORM_BLOCK       Format = 169
	FORMAT_ASTC_8x6_SRGB_BLOCK        Format = 170
	FORMAT_ASTC_8x8_UNORM_BLOCK       Format = 171
	FORMAT_ASTC_8x8_SRGB_BLOCK        Format = 172
	FORMAT_ASTC_10x5_UNORM_BLOCK      Format = 173
	FORMAT_ASTC_10x5_SRGB_BLOCK       Format = 174
	FORMAT_ASTC_10x6_UNORM_BLOCK      Format = 175
	FORMAT_ASTC_10x6_SRGB_BLOCK       Format = 176
	FORMAT_ASTC_10x8_UNORM_BLOCK      Format = 177
	FORMAT_ASTC_10x8_SRGB_BLOCK       Format = 178
	FORMAT_ASTC_10x10_UNORM_BLOCK     Format = 179
	FORMAT_ASTC_10x10_SRGB_BLOCK      Format = 180
	FORMAT_ASTC_12x10_UNORM_BLOCK     Format = 181
	FORMAT_ASTC_12x10_SRGB_BLOCK      Format = 182
	FORMAT_ASTC_12x12_UNORM_BLOCK     Format = 183
	FORMAT_ASTC_12x12_SRGB_BLOCK      Format = 184
)

func (v Format) String() string {
	switch v {
	case FORMAT_UNDEFINED:
		return "Undefined"
	case FORMAT_R4G4_UNORM_PACK8:
		return "R4G4UnormPack8"
	case FORMAT_R4G4B4A4_UNORM_PACK16:
		return "R4G4B4A4UnormPack16"
	case FORMAT_B4G4R4A4_UNORM_PACK16:
		return "B4G4R4A4UnormPack16"
	case FORMAT_R5G6B5_UNORM_PACK16:
		return "R5G6B5UnormPack16"
	case FORMAT_B5G6R5_UNORM_PACK16:
		return "B5G6R5UnormPack16"
	case FORMAT_R5G5B5A1_UNORM_PACK16:
		return "R5G5B5A1UnormPack16"
	case FORMAT_B5G5R5A1_UNORM_PACK16:
		return "B5G5R5A1UnormPack16"
	case FORMAT_A1R5G5B5_UNORM_PACK16:
		return "A1R5G5B5UnormPack16"
	case FORMAT_R8_UNORM:
		return "R8Unorm"
	case FORMAT_R8_SNORM:
		return "R8Snorm"
	case FORMAT_R8_USCALED:
		return "R8Uscaled"
	case FORMAT_R8_SSCALED:
		return "R8Sscaled"
	case FORMAT_R8_UINT:
		return "R8Uint"
	case FORMAT_R8_SINT:
		return "R8Sint"
	case FORMAT_R8_SRGB:
		return "R8Srgb"
	case FORMAT_R8G8_UNORM:
		return "R8G8Unorm"
	case FORMAT_R8G8_SNORM:
		return "R8G8Snorm"
	case FORMAT_R8G8_USCALED:
		return "R8G8Uscaled"
	case FORMAT_R8G8_SSCALED:
		return "R8G8Sscaled"
	case FORMAT_R8G8_UINT:
		return "R8G8Uint"
	case FORMAT_R8G8_SINT:
		return "R8G8Sint"
	case FORMAT_R8G8_SRGB:
		return "R8G8Srgb"
	case FORMAT_R8G8B8_UNORM:
		return "R8G8B8Unorm"
	case FORMAT_R8G8B8_SNORM:
		return "R8G8B8Snorm"
	case FORMAT_R8G8B8_USCALED:
		return "R8G8B8Uscaled"
	case FORMAT_R8G8B8_SSCALED:
		return "R8G8B8Sscaled"
	case FORMAT_R8G8B8_UINT:
		return "R8G8B8Uint"
	case FORMAT_R8G8B8_SINT:
		return "R8G8B8Sint"
	case FORMAT_R8G8B8_SRGB:
		return "R8G8B8Srgb"
	case FORMAT_B8G8R8_UNORM:
		return "B8G8R8Unorm"
	case FORMAT_B8G8R8_SNORM:
		return "B8G8R8Snorm"
	case FORMAT_B8G8R8_USCALED:
		return "B8G8R8Uscaled"
	case FORMAT_B8G8R8_SSCALED:
		return "B8G8R8Sscaled"
	case FORMAT_B8G8R8_UINT:
		return "B8G8R8Uint"
	case FORMAT_B8G8R8_SINT:
		return "B8G8R8Sint"
	case FORMAT_B8G8R8_SRGB:
		return "B8G8R8Srgb"
	case FORMAT_R8G8B8A8_UNORM:
		return "R8G8B8A8Unorm"
	case FORMAT_R8G8B8A8_SNORM:
		return "R8G8B8A8Snorm"
	case FORMAT_R8G8B8A8_USCALED:
		return "R8G8B8A8Uscaled"
	case FORMAT_R8G8B8A8_SSCALED:
		return "R8G8B8A8Sscaled"
	case FORMAT_R8G8B8A8_UINT:
		return "R8G8B8A8Uint"
	case FORMAT_R8G8B8A8_SINT:
		return "R8G8B8A8Sint"
	case FORMAT_R8G8B8A8_SRGB:
		return "R8G8B8A8Srgb"
	case FORMAT_B8G8R8A8_UNORM:
		return "B8G8R8A8Unorm"
	case FORMAT_B8G8R8A8_SNORM:
		return "B8G8R8A8Snorm"
	case FORMAT_B8G8R8A8_USCALED:
		return "B8G8R8A8Uscaled"
	case FORMAT_B8G8R8A8_SSCALED:
		return "B8G8R8A8Sscaled"
	case FORMAT_B8G8R8A8_UINT:
		return "B8G8R8A8Uint"
	case FORMAT_B8G8R8A8_SINT:
		return "B8G8R8A8Sint"
	case FORMAT_B8G8R8A8_SRGB:
		return "B8G8R8A8Srgb"
	case FORMAT_A8B8G8R8_UNORM_PACK32:
		return "A8B8G8R8UnormPack32"
	case FORMAT_A8B8G8R8_SNORM_PACK32:
		return "A8B8G8R8SnormPack32"
	case FORMAT_A8B8G8R8_USCALED_PACK32:
		return "A8B8G8R8UscaledPack32"
	case FORMAT_A8B8G8R8_SSCALED_PACK32:
		return "A8B8G8R8SscaledPack32"
	case FORMAT_A8B8G8R8_UINT_PACK32:
		return "A8B8G8R8UintPack32"
	case FORMAT_A8B8G8R8_SINT_PACK32:
		return "A8B8G8R8SintPack32"
	case FORMAT_A8B8G8R8_SRGB_PACK32:
		return "A8B8G8R8SrgbPack32"
	case FORMAT_A2R10G10B10_UNORM_PACK32:
		return "A2R10G10B10UnormPack32"
	case FORMAT_A2R10G10B10_SNORM_PACK32:
		return "A2R10G10B10SnormPack32"
	case FORMAT_A2R10G10B10_USCALED_PACK32:
		return "A2R10G10B10UscaledPack32"
	case FORMAT_A2R10G10B10_SSCALED_PACK32:
		return "A2R10G10B10SscaledPack32"
	case FORMAT_A2R10G10B10_UINT_PACK32:
		return "A2R10G10B10UintPack32"
	case FORMAT_A2R10G10B10_SINT_PACK32:
		return "A2R10G10B10SintPack32"
	case FORMAT_A2B10G10R10_UNORM_PACK32:
		return "A2B10G10R10UnormPack32"
	case FORMAT_A2B10G10R10_SNORM_PACK32:
		return "A2B10G10R10SnormPack32"
	case FORMAT_A2B10G10R10_USCALED_PACK32:
		return "A2B10G10R10UscaledPack32"
	case FORMAT_A2B10G10R10_SSCALED_PACK32:
		return "A2B10G10R10SscaledPack32"
	case FORMAT_A2B10G10R10_UINT_PACK32:
		return "A2B10G10R10UintPack32"
	case FORMAT_A2B10G10R10_SINT_PACK32:
		return "A2B10G10R10SintPack32"
	case FORMAT_R16_UNORM:
		return "R16Unorm"
	case FORMAT_R16_SNORM:
		return "R16Snorm"
	case FORMAT_R16_USCALED:
		return "R16Uscaled"
	case FORMAT_R16_SSCALED:
		return "R16Sscaled"
	case FORMAT_R16_UINT:
		return "R16Uint"
	case FORMAT_R16_SINT:
		return "R16Sint"
	case FORMAT_R16_SFLOAT:
		return "R16Sfloat"
	case FORMAT_R16G16_UNORM:
		return "R16G16Unorm"
	case FORMAT_R16G16_SNORM:
		return "R16G16Snorm"
	case FORMAT_R16G16_USCALED:
		return "R16G16Uscaled"
	case FORMAT_R16G16_SSCALED:
		return "R16G16Sscaled"
	case FORMAT_R16G16_UINT:
		return "R16G16Uint"
	case FORMAT_R16G16_SINT:
		return "R16G16Sint"
	case FORMAT_R16G16_SFLOAT:
		return "R16G16Sfloat"
	case FORMAT_R16G16B16_UNORM:
		return "R16G16B16Unorm"
	case FORMAT_R16G16B16_SNORM:
		return "R16G16B16Snorm"
	case FORMAT_R16G16B16_USCALED:
		return "R16G16B16Uscaled"
	case FORMAT_R16G16B16_SSCALED:
		return "R16G16B16Sscaled"
	case FORMAT_R16G16B16_UINT:
		return "R16G16B16Uint"
	case FORMAT_R16G16B16_SINT:
		return "R16G16B16Sint"
	case FORMAT_R16G16B16_SFLOAT:
		return "R16G16B16Sfloat"
	case FORMAT_R16G16B16A16_UNORM:
		return "R16G16B16A16Unorm"
	case FORMAT_R16G16B16A16_SNORM:
		return "R16G16B16A16Snorm"
	case FORMAT_R16G16B16A16_USCALED:
		return "R16G16B16A16Uscaled"
	case FORMAT_R16G16B16A16_SSCALED:
		return "R16G16B16A16Sscaled"
	case FORMAT_R16G16B16A16_UINT:
		return "R16G16B16A16Uint"
	case FORMAT_R16G16B16A16_SINT:
		return "R16G16B16A16Sint"
	case FORMAT_R16G16B16A16_SFLOAT:
		return "R16G16B16A16Sfloat"
	case FORMAT_R32_UINT:
		return "R32Uint"
	case FORMAT_R32_SINT:
		return "R32Sint"
	case FORMAT_R32_SFLOAT:
		return "R32Sfloat"
	case FORMAT_R32G32_UINT:
		return "R32G32Uint"
	case FORMAT_R32G32_SINT:
		return "R32G32Sint"
	case FORMAT_R32G32_SFLOAT:
		return "R32G32Sfloat"
	case FORMAT_R32G32B32_UINT:
		return "R32G32B32Uint"
	case FORMAT_R32G32B32_SINT:
		return "R32G32B32Sint"
	case FORMAT_R32G32B32_SFLOAT:
		return "R32G32B32Sfloat"
	case FORMAT_R32G32B32A32_UINT:
		return "R32G32B32A32Uint"
	case FORMAT_R32G32B32A32_SINT:
		return "R32G32B32A32Sint"
	case FORMAT_R32G32B32A32_SFLOAT:
		return "R32G32B32A32Sfloat"
	case FORMAT_R64_UINT:
		return "R64Uint"
	case FORMAT_R64_SINT:
		return "R64Sint"
	case FORMAT_R64_SFLOAT:
		return "R64Sfloat"
	case FORMAT_R64G64_UINT:
		return "R64G64Uint"
	case FORMAT_R64G64_SINT:
		return "R64G64Sint"
	case FORMAT_R64G64_SFLOAT:
		return "R64G64Sfloat"
	case FORMAT_R64G64B64_UINT:
		return "R64G64B64Uint"
	case FORMAT_R64G64B64_SINT:
		return "R64G64B64Sint"
	case FORMAT_R64G64B64_SFLOAT:
		return "R64G64B64Sfloat"
	case FORMAT_R64G64B64A64_UINT:
		return "R64G64B64A64Uint"
	case FORMAT_R64G64B64A64_SINT:
		return "R64G64B64A64Sint"
	case FORMAT_R64G64B64A64_SFLOAT:
		return "R64G64B64A64Sfloat"
	case FORMAT_B10G11R11_UFLOAT_PACK32:
		return "B10G11R11UfloatPack32"
	case FORMAT_E5B9G9R9_UFLOAT_PACK32:
		return "E5B9G9R9UfloatPack32"
	case FORMAT_D16_UNORM:
		return "D16Unorm"
	case FORMAT_X8_D24_UNORM_PACK32:
		return "X8D24UnormPack32"
	case FORMAT_D32_SFLOAT:
		return "D32Sfloat"
	case FORMAT_S8_UINT:
		return "S8Uint"
	case FORMAT_D16_UNORM_S8_UINT:
		return "D16UnormS8Uint"
	case FORMAT_D24_UNORM_S8_UINT:
		return "D24UnormS8Uint"
	case FORMAT_D32_SFLOAT_S8_UINT:
		return "D32SfloatS8Uint"
	case FORMAT_BC1_RGB_UNORM_BLOCK:
		return "Bc1RgbUnormBlock"
	case FORMAT_BC1_RGB_SRGB_BLOCK:
		return "Bc1RgbSrgbBlock"
	case FORMAT_BC1_RGBA_UNORM_BLOCK:
		return "Bc1RgbaUnormBlock"
	case FORMAT_BC1_RGBA_SRGB_BLOCK:
		return "Bc1RgbaSrgbBlock"
	case FORMAT_BC2_UNORM_BLOCK:
		return "Bc2UnormBlock"
	case FORMAT_BC2_SRGB_BLOCK:
		return "Bc2SrgbBlock"
	case FORMAT_BC3_UNORM_BLOCK:
		return "Bc3UnormBlock"
	case FORMAT_BC3_SRGB_BLOCK:
		return "Bc3SrgbBlock"
	case FORMAT_BC4_UNORM_BLOCK:
		return "Bc4UnormBlock"
	case FORMAT_BC4_SNORM_BLOCK:
		return "Bc4SnormBlock"
	case FORMAT_BC5_UNORM_BLOCK:
		return "Bc5UnormBlock"
	case FORMAT_BC5_SNORM_BLOCK:
		return "Bc5SnormBlock"
	case FORMAT_BC6H_UFLOAT_BLOCK:
		return "Bc6hUfloatBlock"
	case FORMAT_BC6H_SFLOAT_BLOCK:
		return "Bc6hSfloatBlock"
	case FORMAT_BC7_UNORM_BLOCK:
		return "Bc7UnormBlock"
	case FORMAT_BC7_SRGB_BLOCK:
		return "Bc7SrgbBlock"
	case FORMAT_ETC2_R8G8B8_UNORM_BLOCK:
		return "Etc2R8G8B8UnormBlock"
	case FORMAT_ETC2_R8G8B8_SRGB_BLOCK:
		return "Etc2R8G8B8SrgbBlock"
	case FORMAT_ETC2_R8G8B8A1_UNORM_BLOCK:
		return "Etc2R8G8B8A1UnormBlock"
	case FORMAT_ETC2_R8G8B8A1_SRGB_BLOCK:
		return "Etc2R8G8B8A1SrgbBlock"
	case FORMAT_ETC2_R8G8B8A8_UNORM_BLOCK:
		return "Etc2R8G8B8A8UnormBlock"
	case FORMAT_ETC2_R8G8B8A8_SRGB_BLOCK:
		return "Etc2R8G8B8A8SrgbBlock"
	case FORMAT_EAC_R11_UNORM_BLOCK:
		return "EacR11UnormBlock"
	case FORMAT_EAC_R11_SNORM_BLOCK:
		return "EacR11SnormBlock"
	case FORMAT_EAC_R11G11_UNORM_BLOCK:
		return "EacR11G11UnormBlock"
	case FORMAT_EAC_R11G11_SNORM_BLOCK:
		return "EacR11G11SnormBlock"
	case FORMAT_ASTC_4x4_UNORM_BLOCK:
		return "Astc4x4UnormBlock"
	case FORMAT_ASTC_4x4_SRGB_BLOCK:
		return "Astc4x4SrgbBlock"
	case FORMAT_ASTC_5x4_UNORM_BLOCK:
		return "Astc5x4UnormBlock"
	case FORMAT_ASTC_5x4_SRGB_BLOCK:
		return "Astc5x4SrgbBlock"
	case FORMAT_ASTC_5x5_UNORM_BLOCK:
		return "Astc5x5UnormBlock"
	case FORMAT_ASTC_5x5_SRGB_BLOCK:
		return "Astc5x5SrgbBlock"
	case FORMAT_ASTC_6x5_UNORM_BLOCK:
		return "Astc6x5UnormBlock"
	case FORMAT_ASTC_6x5_SRGB_BLOCK:
		return "Astc6x5SrgbBlock"
	case FORMAT_ASTC_6x6_UNORM_BLOCK:
		return "Astc6x6UnormBlock"
	case FORMAT_ASTC_6x6_SRGB_BLOCK:
		return "Astc6x6SrgbBlock"
	case FORMAT_ASTC_8x5_UNORM_BLOCK:
		return "Astc8x5UnormBlock"
	case FORMAT_ASTC_8x5_SRGB_BLOCK:
		return "Astc8x5SrgbBlock"
	case FORMAT_ASTC_8x6_UNORM_BLOCK:
		return "Astc8x6UnormBlock"
	case FORMAT_ASTC_8x6_SRGB_BLOCK:
		return "Astc8x6SrgbBlock"
	case FORMAT_ASTC_8x8_UNORM_BLOCK:
		return "Astc8x8UnormBlock"
	case FORMAT_ASTC_8x8_SRGB_BLOCK:
		return "Astc8x8SrgbBlock"
	case FORMAT_ASTC_10x5_UNORM_BLOCK:
		return "Astc10x5UnormBlock"
	case FORMAT_ASTC_10x5_SRGB_BLOCK:
		return "Astc10x5SrgbBlock"
	case FORMAT_ASTC_10x6_UNORM_BLOCK:
		return "Astc10x6UnormBlock"
	case FORMAT_ASTC_10x6_SRGB_BLOCK:
		return "Astc10x6SrgbBlock"
	case FORMAT_ASTC_10x8_UNORM_BLOCK:
		return "Astc10x8UnormBlock"
	case FORMAT_ASTC_10x8_SRGB_BLOCK:
		return "Astc10x8SrgbBlock"
	case FORMAT_ASTC_10x10_UNORM_BLOCK:
		return "Astc10x10UnormBlock"
	case FORMAT_ASTC_10x10_SRGB_BLOCK:
		return "Astc10x10SrgbBlock"
	case FORMAT_ASTC_12x10_UNORM_BLOCK:
		return "Astc12x10UnormBlock"
	case FORMAT_ASTC_12x10_SRGB_BLOCK:
		return "Astc12x10SrgbBlock"
	case FORMAT_ASTC_12x12_UNORM_BLOCK:
		return "Astc12x12UnormBlock"
	case FORMAT_ASTC_12x12_SRGB_BLOCK:
		return "Astc12x12SrgbBlock"
	default:
		return "unknown"
	}
}
