// constants.go
package cvk

/*
#include "vkw.h"
*/
import "C"

import vk "github.com/NOT-REAL-GAMES/vk"

type constant struct {
	name string
	got  int64
	want int64
}

// constants pairs each Go value with the C enumerant it mirrors.
func constants() []constant {
	return []constant{
		{"SUCCESS", int64(vk.SUCCESS), int64(C.VK_SUCCESS)},
		{"NOT_READY", int64(vk.NOT_READY), int64(C.VK_NOT_READY)},
		{"TIMEOUT", int64(vk.TIMEOUT), int64(C.VK_TIMEOUT)},
		{"EVENT_SET", int64(vk.EVENT_SET), int64(C.VK_EVENT_SET)},
		{"EVENT_RESET", int64(vk.EVENT_RESET), int64(C.VK_EVENT_RESET)},
		{"INCOMPLETE", int64(vk.INCOMPLETE), int64(C.VK_INCOMPLETE)},
		{"OUT_OF_HOST_MEMORY", int64(vk.OUT_OF_HOST_MEMORY), int64(C.VK_ERROR_OUT_OF_HOST_MEMORY)},
		{"OUT_OF_DEVICE_MEMORY", int64(vk.OUT_OF_DEVICE_MEMORY), int64(C.VK_ERROR_OUT_OF_DEVICE_MEMORY)},
		{"INITIALIZATION_FAILED", int64(vk.INITIALIZATION_FAILED), int64(C.VK_ERROR_INITIALIZATION_FAILED)},
		{"DEVICE_LOST", int64(vk.DEVICE_LOST), int64(C.VK_ERROR_DEVICE_LOST)},
		{"MEMORY_MAP_FAILED", int64(vk.MEMORY_MAP_FAILED), int64(C.VK_ERROR_MEMORY_MAP_FAILED)},
		{"LAYER_NOT_PRESENT", int64(vk.LAYER_NOT_PRESENT), int64(C.VK_ERROR_LAYER_NOT_PRESENT)},
		{"EXTENSION_NOT_PRESENT", int64(vk.EXTENSION_NOT_PRESENT), int64(C.VK_ERROR_EXTENSION_NOT_PRESENT)},
		{"FEATURE_NOT_PRESENT", int64(vk.FEATURE_NOT_PRESENT), int64(C.VK_ERROR_FEATURE_NOT_PRESENT)},
		{"INCOMPATIBLE_DRIVER", int64(vk.INCOMPATIBLE_DRIVER), int64(C.VK_ERROR_INCOMPATIBLE_DRIVER)},
		{"TOO_MANY_OBJECTS", int64(vk.TOO_MANY_OBJECTS), int64(C.VK_ERROR_TOO_MANY_OBJECTS)},
		{"FORMAT_NOT_SUPPORTED", int64(vk.FORMAT_NOT_SUPPORTED), int64(C.VK_ERROR_FORMAT_NOT_SUPPORTED)},
		{"FRAGMENTED_POOL", int64(vk.FRAGMENTED_POOL), int64(C.VK_ERROR_FRAGMENTED_POOL)},
		{"UNKNOWN", int64(vk.UNKNOWN), int64(C.VK_ERROR_UNKNOWN)},
		{"OUT_OF_POOL_MEMORY", int64(vk.OUT_OF_POOL_MEMORY), int64(C.VK_ERROR_OUT_OF_POOL_MEMORY)},
		{"INVALID_EXTERNAL_HANDLE", int64(vk.INVALID_EXTERNAL_HANDLE), int64(C.VK_ERROR_INVALID_EXTERNAL_HANDLE)},
		{"FRAGMENTATION", int64(vk.FRAGMENTATION), int64(C.VK_ERROR_FRAGMENTATION)},
		{"INVALID_OPAQUE_CAPTURE_ADDRESS", int64(vk.INVALID_OPAQUE_CAPTURE_ADDRESS), int64(C.VK_ERROR_INVALID_OPAQUE_CAPTURE_ADDRESS)},
		{"PIPELINE_COMPILE_REQUIRED", int64(vk.PIPELINE_COMPILE_REQUIRED), int64(C.VK_PIPELINE_COMPILE_REQUIRED)},
		{"NOT_PERMITTED", int64(vk.NOT_PERMITTED), int64(C.VK_ERROR_NOT_PERMITTED)},
		{"SURFACE_LOST", int64(vk.SURFACE_LOST), int64(C.VK_ERROR_SURFACE_LOST_KHR)},
		{"NATIVE_WINDOW_IN_USE", int64(vk.NATIVE_WINDOW_IN_USE), int64(C.VK_ERROR_NATIVE_WINDOW_IN_USE_KHR)},
		{"SUBOPTIMAL", int64(vk.SUBOPTIMAL), int64(C.VK_SUBOPTIMAL_KHR)},
		{"OUT_OF_DATE", int64(vk.OUT_OF_DATE), int64(C.VK_ERROR_OUT_OF_DATE_KHR)},
		{"INCOMPATIBLE_DISPLAY", int64(vk.INCOMPATIBLE_DISPLAY), int64(C.VK_ERROR_INCOMPATIBLE_DISPLAY_KHR)},
		{"VALIDATION_FAILED", int64(vk.VALIDATION_FAILED), int64(C.VK_ERROR_VALIDATION_FAILED_EXT)},
		{"INVALID_SHADER", int64(vk.INVALID_SHADER), int64(C.VK_ERROR_INVALID_SHADER_NV)},
		{"IMAGE_USAGE_NOT_SUPPORTED", int64(vk.IMAGE_USAGE_NOT_SUPPORTED), int64(C.VK_ERROR_IMAGE_USAGE_NOT_SUPPORTED_KHR)},
		{"VIDEO_PICTURE_LAYOUT_NOT_SUPPORTED", int64(vk.VIDEO_PICTURE_LAYOUT_NOT_SUPPORTED), int64(C.VK_ERROR_VIDEO_PICTURE_LAYOUT_NOT_SUPPORTED_KHR)},
		{"VIDEO_PROFILE_OPERATION_NOT_SUPPORTED", int64(vk.VIDEO_PROFILE_OPERATION_NOT_SUPPORTED), int64(C.VK_ERROR_VIDEO_PROFILE_OPERATION_NOT_SUPPORTED_KHR)},
		{"VIDEO_PROFILE_FORMAT_NOT_SUPPORTED", int64(vk.VIDEO_PROFILE_FORMAT_NOT_SUPPORTED), int64(C.VK_ERROR_VIDEO_PROFILE_FORMAT_NOT_SUPPORTED_KHR)},
		{"VIDEO_PROFILE_CODEC_NOT_SUPPORTED", int64(vk.VIDEO_PROFILE_CODEC_NOT_SUPPORTED), int64(C.VK_ERROR_VIDEO_PROFILE_CODEC_NOT_SUPPORTED_KHR)},
		{"VIDEO_STD_VERSION_NOT_SUPPORTED", int64(vk.VIDEO_STD_VERSION_NOT_SUPPORTED), int64(C.VK_ERROR_VIDEO_STD_VERSION_NOT_SUPPORTED_KHR)},
		{"INVALID_DRM_FORMAT_MODIFIER_PLANE_LAYOUT", int64(vk.INVALID_DRM_FORMAT_MODIFIER_PLANE_LAYOUT), int64(C.VK_ERROR_INVALID_DRM_FORMAT_MODIFIER_PLANE_LAYOUT_EXT)},
		{"FULL_SCREEN_EXCLUSIVE_MODE_LOST", int64(vk.FULL_SCREEN_EXCLUSIVE_MODE_LOST), int64(C.VK_ERROR_FULL_SCREEN_EXCLUSIVE_MODE_LOST_EXT)},
		{"THREAD_IDLE", int64(vk.THREAD_IDLE), int64(C.VK_THREAD_IDLE_KHR)},
		{"THREAD_DONE", int64(vk.THREAD_DONE), int64(C.VK_THREAD_DONE_KHR)},
		{"OPERATION_DEFERRED", int64(vk.OPERATION_DEFERRED), int64(C.VK_OPERATION_DEFERRED_KHR)},
		{"OPERATION_NOT_DEFERRED", int64(vk.OPERATION_NOT_DEFERRED), int64(C.VK_OPERATION_NOT_DEFERRED_KHR)},
		{"INVALID_VIDEO_STD_PARAMETERS", int64(vk.INVALID_VIDEO_STD_PARAMETERS), int64(C.VK_ERROR_INVALID_VIDEO_STD_PARAMETERS_KHR)},
		{"COMPRESSION_EXHAUSTED", int64(vk.COMPRESSION_EXHAUSTED), int64(C.VK_ERROR_COMPRESSION_EXHAUSTED_EXT)},
		{"INCOMPATIBLE_SHADER_BINARY", int64(vk.INCOMPATIBLE_SHADER_BINARY), int64(C.VK_INCOMPATIBLE_SHADER_BINARY_EXT)},
		{"PIPELINE_BINARY_MISSING", int64(vk.PIPELINE_BINARY_MISSING), int64(C.VK_PIPELINE_BINARY_MISSING_KHR)},
		{"NOT_ENOUGH_SPACE", int64(vk.NOT_ENOUGH_SPACE), int64(C.VK_ERROR_NOT_ENOUGH_SPACE_KHR)},
		{"APPLICATION_INFO", int64(vk.APPLICATION_INFO), int64(C.VK_STRUCTURE_TYPE_APPLICATION_INFO)},
		{"INSTANCE_CREATE_INFO", int64(vk.INSTANCE_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_INSTANCE_CREATE_INFO)},
		{"DEVICE_QUEUE_CREATE_INFO", int64(vk.DEVICE_QUEUE_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_DEVICE_QUEUE_CREATE_INFO)},
		{"DEVICE_CREATE_INFO", int64(vk.DEVICE_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_DEVICE_CREATE_INFO)},
		{"SUBMIT_INFO", int64(vk.SUBMIT_INFO), int64(C.VK_STRUCTURE_TYPE_SUBMIT_INFO)},
		{"MEMORY_ALLOCATE_INFO", int64(vk.MEMORY_ALLOCATE_INFO), int64(C.VK_STRUCTURE_TYPE_MEMORY_ALLOCATE_INFO)},
		{"MAPPED_MEMORY_RANGE", int64(vk.MAPPED_MEMORY_RANGE), int64(C.VK_STRUCTURE_TYPE_MAPPED_MEMORY_RANGE)},
		{"BIND_SPARSE_INFO", int64(vk.BIND_SPARSE_INFO), int64(C.VK_STRUCTURE_TYPE_BIND_SPARSE_INFO)},
		{"FENCE_CREATE_INFO", int64(vk.FENCE_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_FENCE_CREATE_INFO)},
		{"SEMAPHORE_CREATE_INFO", int64(vk.SEMAPHORE_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_SEMAPHORE_CREATE_INFO)},
		{"EVENT_CREATE_INFO", int64(vk.EVENT_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_EVENT_CREATE_INFO)},
		{"BUFFER_CREATE_INFO", int64(vk.BUFFER_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_BUFFER_CREATE_INFO)},
		{"IMAGE_CREATE_INFO", int64(vk.IMAGE_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_IMAGE_CREATE_INFO)},
		{"IMAGE_VIEW_CREATE_INFO", int64(vk.IMAGE_VIEW_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_IMAGE_VIEW_CREATE_INFO)},
		{"SHADER_MODULE_CREATE_INFO", int64(vk.SHADER_MODULE_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_SHADER_MODULE_CREATE_INFO)},
		{"PIPELINE_SHADER_STAGE_CREATE_INFO", int64(vk.PIPELINE_SHADER_STAGE_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_PIPELINE_SHADER_STAGE_CREATE_INFO)},
		{"PIPELINE_VERTEX_INPUT_STATE_CREATE_INFO", int64(vk.PIPELINE_VERTEX_INPUT_STATE_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_PIPELINE_VERTEX_INPUT_STATE_CREATE_INFO)},
		{"PIPELINE_INPUT_ASSEMBLY_STATE_CREATE_INFO", int64(vk.PIPELINE_INPUT_ASSEMBLY_STATE_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_PIPELINE_INPUT_ASSEMBLY_STATE_CREATE_INFO)},
		{"PIPELINE_TESSELLATION_STATE_CREATE_INFO", int64(vk.PIPELINE_TESSELLATION_STATE_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_PIPELINE_TESSELLATION_STATE_CREATE_INFO)},
		{"PIPELINE_VIEWPORT_STATE_CREATE_INFO", int64(vk.PIPELINE_VIEWPORT_STATE_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_PIPELINE_VIEWPORT_STATE_CREATE_INFO)},
		{"PIPELINE_RASTERIZATION_STATE_CREATE_INFO", int64(vk.PIPELINE_RASTERIZATION_STATE_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_PIPELINE_RASTERIZATION_STATE_CREATE_INFO)},
		{"PIPELINE_MULTISAMPLE_STATE_CREATE_INFO", int64(vk.PIPELINE_MULTISAMPLE_STATE_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_PIPELINE_MULTISAMPLE_STATE_CREATE_INFO)},
		{"PIPELINE_DEPTH_STENCIL_STATE_CREATE_INFO", int64(vk.PIPELINE_DEPTH_STENCIL_STATE_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_PIPELINE_DEPTH_STENCIL_STATE_CREATE_INFO)},
		{"PIPELINE_COLOR_BLEND_STATE_CREATE_INFO", int64(vk.PIPELINE_COLOR_BLEND_STATE_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_PIPELINE_COLOR_BLEND_STATE_CREATE_INFO)},
		{"PIPELINE_DYNAMIC_STATE_CREATE_INFO", int64(vk.PIPELINE_DYNAMIC_STATE_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_PIPELINE_DYNAMIC_STATE_CREATE_INFO)},
		{"GRAPHICS_PIPELINE_CREATE_INFO", int64(vk.GRAPHICS_PIPELINE_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_GRAPHICS_PIPELINE_CREATE_INFO)},
		{"COMPUTE_PIPELINE_CREATE_INFO", int64(vk.COMPUTE_PIPELINE_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_COMPUTE_PIPELINE_CREATE_INFO)},
		{"PIPELINE_LAYOUT_CREATE_INFO", int64(vk.PIPELINE_LAYOUT_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_PIPELINE_LAYOUT_CREATE_INFO)},
		{"SAMPLER_CREATE_INFO", int64(vk.SAMPLER_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_SAMPLER_CREATE_INFO)},
		{"DESCRIPTOR_SET_LAYOUT_CREATE_INFO", int64(vk.DESCRIPTOR_SET_LAYOUT_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_DESCRIPTOR_SET_LAYOUT_CREATE_INFO)},
		{"DESCRIPTOR_POOL_CREATE_INFO", int64(vk.DESCRIPTOR_POOL_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_DESCRIPTOR_POOL_CREATE_INFO)},
		{"DESCRIPTOR_SET_ALLOCATE_INFO", int64(vk.DESCRIPTOR_SET_ALLOCATE_INFO), int64(C.VK_STRUCTURE_TYPE_DESCRIPTOR_SET_ALLOCATE_INFO)},
		{"WRITE_DESCRIPTOR_SET", int64(vk.WRITE_DESCRIPTOR_SET), int64(C.VK_STRUCTURE_TYPE_WRITE_DESCRIPTOR_SET)},
		{"FRAMEBUFFER_CREATE_INFO", int64(vk.FRAMEBUFFER_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_FRAMEBUFFER_CREATE_INFO)},
		{"RENDER_PASS_CREATE_INFO", int64(vk.RENDER_PASS_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_RENDER_PASS_CREATE_INFO)},
		{"COMMAND_POOL_CREATE_INFO", int64(vk.COMMAND_POOL_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_COMMAND_POOL_CREATE_INFO)},
		{"COMMAND_BUFFER_ALLOCATE_INFO", int64(vk.COMMAND_BUFFER_ALLOCATE_INFO), int64(C.VK_STRUCTURE_TYPE_COMMAND_BUFFER_ALLOCATE_INFO)},
		{"COMMAND_BUFFER_INHERITANCE_INFO", int64(vk.COMMAND_BUFFER_INHERITANCE_INFO), int64(C.VK_STRUCTURE_TYPE_COMMAND_BUFFER_INHERITANCE_INFO)},
		{"COMMAND_BUFFER_BEGIN_INFO", int64(vk.COMMAND_BUFFER_BEGIN_INFO), int64(C.VK_STRUCTURE_TYPE_COMMAND_BUFFER_BEGIN_INFO)},
		{"RENDER_PASS_BEGIN_INFO", int64(vk.RENDER_PASS_BEGIN_INFO), int64(C.VK_STRUCTURE_TYPE_RENDER_PASS_BEGIN_INFO)},
		{"BUFFER_MEMORY_BARRIER", int64(vk.BUFFER_MEMORY_BARRIER), int64(C.VK_STRUCTURE_TYPE_BUFFER_MEMORY_BARRIER)},
		{"IMAGE_MEMORY_BARRIER", int64(vk.IMAGE_MEMORY_BARRIER), int64(C.VK_STRUCTURE_TYPE_IMAGE_MEMORY_BARRIER)},
		{"MEMORY_BARRIER", int64(vk.MEMORY_BARRIER), int64(C.VK_STRUCTURE_TYPE_MEMORY_BARRIER)},
		{"RENDERING_INFO", int64(vk.RENDERING_INFO), int64(C.VK_STRUCTURE_TYPE_RENDERING_INFO)},
		{"RENDERING_ATTACHMENT_INFO", int64(vk.RENDERING_ATTACHMENT_INFO), int64(C.VK_STRUCTURE_TYPE_RENDERING_ATTACHMENT_INFO)},
		{"PIPELINE_RENDERING_CREATE_INFO", int64(vk.PIPELINE_RENDERING_CREATE_INFO), int64(C.VK_STRUCTURE_TYPE_PIPELINE_RENDERING_CREATE_INFO)},
		{"SWAPCHAIN_CREATE_INFO_KHR", int64(vk.SWAPCHAIN_CREATE_INFO_KHR), int64(C.VK_STRUCTURE_TYPE_SWAPCHAIN_CREATE_INFO_KHR)},
		{"PRESENT_INFO_KHR", int64(vk.PRESENT_INFO_KHR), int64(C.VK_STRUCTURE_TYPE_PRESENT_INFO_KHR)},
		{"XLIB_SURFACE_CREATE_INFO_KHR", int64(vk.XLIB_SURFACE_CREATE_INFO_KHR), int64(C.VK_STRUCTURE_TYPE_XLIB_SURFACE_CREATE_INFO_KHR)},
		{"XCB_SURFACE_CREATE_INFO_KHR", int64(vk.XCB_SURFACE_CREATE_INFO_KHR), int64(C.VK_STRUCTURE_TYPE_XCB_SURFACE_CREATE_INFO_KHR)},
		{"WAYLAND_SURFACE_CREATE_INFO_KHR", int64(vk.WAYLAND_SURFACE_CREATE_INFO_KHR), int64(C.VK_STRUCTURE_TYPE_WAYLAND_SURFACE_CREATE_INFO_KHR)},
		{"ANDROID_SURFACE_CREATE_INFO_KHR", int64(vk.ANDROID_SURFACE_CREATE_INFO_KHR), int64(C.VK_STRUCTURE_TYPE_ANDROID_SURFACE_CREATE_INFO_KHR)},
		{"WIN32_SURFACE_CREATE_INFO_KHR", int64(vk.WIN32_SURFACE_CREATE_INFO_KHR), int64(C.VK_STRUCTURE_TYPE_WIN32_SURFACE_CREATE_INFO_KHR)},
		{"PHYSICAL_DEVICE_TYPE_OTHER", int64(vk.PHYSICAL_DEVICE_TYPE_OTHER), int64(C.VK_PHYSICAL_DEVICE_TYPE_OTHER)},
		{"PHYSICAL_DEVICE_TYPE_INTEGRATED_GPU", int64(vk.PHYSICAL_DEVICE_TYPE_INTEGRATED_GPU), int64(C.VK_PHYSICAL_DEVICE_TYPE_INTEGRATED_GPU)},
		{"PHYSICAL_DEVICE_TYPE_DISCRETE_GPU", int64(vk.PHYSICAL_DEVICE_TYPE_DISCRETE_GPU), int64(C.VK_PHYSICAL_DEVICE_TYPE_DISCRETE_GPU)},
		{"PHYSICAL_DEVICE_TYPE_VIRTUAL_GPU", int64(vk.PHYSICAL_DEVICE_TYPE_VIRTUAL_GPU), int64(C.VK_PHYSICAL_DEVICE_TYPE_VIRTUAL_GPU)},
		{"PHYSICAL_DEVICE_TYPE_CPU", int64(vk.PHYSICAL_DEVICE_TYPE_CPU), int64(C.VK_PHYSICAL_DEVICE_TYPE_CPU)},
		{"SHARING_MODE_EXCLUSIVE", int64(vk.SHARING_MODE_EXCLUSIVE), int64(C.VK_SHARING_MODE_EXCLUSIVE)},
		{"SHARING_MODE_CONCURRENT", int64(vk.SHARING_MODE_CONCURRENT), int64(C.VK_SHARING_MODE_CONCURRENT)},
		{"IMAGE_TYPE_1D", int64(vk.IMAGE_TYPE_1D), int64(C.VK_IMAGE_TYPE_1D)},
		{"IMAGE_TYPE_2D", int64(vk.IMAGE_TYPE_2D), int64(C.VK_IMAGE_TYPE_2D)},
		{"IMAGE_TYPE_3D", int64(vk.IMAGE_TYPE_3D), int64(C.VK_IMAGE_TYPE_3D)},
		{"IMAGE_TILING_OPTIMAL", int64(vk.IMAGE_TILING_OPTIMAL), int64(C.VK_IMAGE_TILING_OPTIMAL)},
		{"IMAGE_TILING_LINEAR", int64(vk.IMAGE_TILING_LINEAR), int64(C.VK_IMAGE_TILING_LINEAR)},
		{"IMAGE_VIEW_TYPE_1D", int64(vk.IMAGE_VIEW_TYPE_1D), int64(C.VK_IMAGE_VIEW_TYPE_1D)},
		{"IMAGE_VIEW_TYPE_2D", int64(vk.IMAGE_VIEW_TYPE_2D), int64(C.VK_IMAGE_VIEW_TYPE_2D)},
		{"IMAGE_VIEW_TYPE_3D", int64(vk.IMAGE_VIEW_TYPE_3D), int64(C.VK_IMAGE_VIEW_TYPE_3D)},
		{"IMAGE_VIEW_TYPE_CUBE", int64(vk.IMAGE_VIEW_TYPE_CUBE), int64(C.VK_IMAGE_VIEW_TYPE_CUBE)},
		{"IMAGE_VIEW_TYPE_1D_ARRAY", int64(vk.IMAGE_VIEW_TYPE_1D_ARRAY), int64(C.VK_IMAGE_VIEW_TYPE_1D_ARRAY)},
		{"IMAGE_VIEW_TYPE_2D_ARRAY", int64(vk.IMAGE_VIEW_TYPE_2D_ARRAY), int64(C.VK_IMAGE_VIEW_TYPE_2D_ARRAY)},
		{"IMAGE_VIEW_TYPE_CUBE_ARRAY", int64(vk.IMAGE_VIEW_TYPE_CUBE_ARRAY), int64(C.VK_IMAGE_VIEW_TYPE_CUBE_ARRAY)},
		{"COMPONENT_SWIZZLE_IDENTITY", int64(vk.COMPONENT_SWIZZLE_IDENTITY), int64(C.VK_COMPONENT_SWIZZLE_IDENTITY)},
		{"COMPONENT_SWIZZLE_ZERO", int64(vk.COMPONENT_SWIZZLE_ZERO), int64(C.VK_COMPONENT_SWIZZLE_ZERO)},
		{"COMPONENT_SWIZZLE_ONE", int64(vk.COMPONENT_SWIZZLE_ONE), int64(C.VK_COMPONENT_SWIZZLE_ONE)},
		{"COMPONENT_SWIZZLE_R", int64(vk.COMPONENT_SWIZZLE_R), int64(C.VK_COMPONENT_SWIZZLE_R)},
		{"COMPONENT_SWIZZLE_G", int64(vk.COMPONENT_SWIZZLE_G), int64(C.VK_COMPONENT_SWIZZLE_G)},
		{"COMPONENT_SWIZZLE_B", int64(vk.COMPONENT_SWIZZLE_B), int64(C.VK_COMPONENT_SWIZZLE_B)},
		{"COMPONENT_SWIZZLE_A", int64(vk.COMPONENT_SWIZZLE_A), int64(C.VK_COMPONENT_SWIZZLE_A)},
		{"IMAGE_LAYOUT_UNDEFINED", int64(vk.IMAGE_LAYOUT_UNDEFINED), int64(C.VK_IMAGE_LAYOUT_UNDEFINED)},
		{"IMAGE_LAYOUT_GENERAL", int64(vk.IMAGE_LAYOUT_GENERAL), int64(C.VK_IMAGE_LAYOUT_GENERAL)},
		{"IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL", int64(vk.IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL), int64(C.VK_IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL)},
		{"IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL", int64(vk.IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL), int64(C.VK_IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL)},
		{"IMAGE_LAYOUT_DEPTH_STENCIL_READ_ONLY_OPTIMAL", int64(vk.IMAGE_LAYOUT_DEPTH_STENCIL_READ_ONLY_OPTIMAL), int64(C.VK_IMAGE_LAYOUT_DEPTH_STENCIL_READ_ONLY_OPTIMAL)},
		{"IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL", int64(vk.IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL), int64(C.VK_IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL)},
		{"IMAGE_LAYOUT_TRANSFER_SRC_OPTIMAL", int64(vk.IMAGE_LAYOUT_TRANSFER_SRC_OPTIMAL), int64(C.VK_IMAGE_LAYOUT_TRANSFER_SRC_OPTIMAL)},
		{"IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL", int64(vk.IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL), int64(C.VK_IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL)},
		{"IMAGE_LAYOUT_PREINITIALIZED", int64(vk.IMAGE_LAYOUT_PREINITIALIZED), int64(C.VK_IMAGE_LAYOUT_PREINITIALIZED)},
		{"IMAGE_LAYOUT_PRESENT_SRC_KHR", int64(vk.IMAGE_LAYOUT_PRESENT_SRC_KHR), int64(C.VK_IMAGE_LAYOUT_PRESENT_SRC_KHR)},
		{"COMMAND_BUFFER_LEVEL_PRIMARY", int64(vk.COMMAND_BUFFER_LEVEL_PRIMARY), int64(C.VK_COMMAND_BUFFER_LEVEL_PRIMARY)},
		{"COMMAND_BUFFER_LEVEL_SECONDARY", int64(vk.COMMAND_BUFFER_LEVEL_SECONDARY), int64(C.VK_COMMAND_BUFFER_LEVEL_SECONDARY)},
		{"ATTACHMENT_LOAD_OP_LOAD", int64(vk.ATTACHMENT_LOAD_OP_LOAD), int64(C.VK_ATTACHMENT_LOAD_OP_LOAD)},
		{"ATTACHMENT_LOAD_OP_CLEAR", int64(vk.ATTACHMENT_LOAD_OP_CLEAR), int64(C.VK_ATTACHMENT_LOAD_OP_CLEAR)},
		{"ATTACHMENT_LOAD_OP_DONT_CARE", int64(vk.ATTACHMENT_LOAD_OP_DONT_CARE), int64(C.VK_ATTACHMENT_LOAD_OP_DONT_CARE)},
		{"ATTACHMENT_STORE_OP_STORE", int64(vk.ATTACHMENT_STORE_OP_STORE), int64(C.VK_ATTACHMENT_STORE_OP_STORE)},
		{"ATTACHMENT_STORE_OP_DONT_CARE", int64(vk.ATTACHMENT_STORE_OP_DONT_CARE), int64(C.VK_ATTACHMENT_STORE_OP_DONT_CARE)},
		{"PIPELINE_BIND_POINT_GRAPHICS", int64(vk.PIPELINE_BIND_POINT_GRAPHICS), int64(C.VK_PIPELINE_BIND_POINT_GRAPHICS)},
		{"PIPELINE_BIND_POINT_COMPUTE", int64(vk.PIPELINE_BIND_POINT_COMPUTE), int64(C.VK_PIPELINE_BIND_POINT_COMPUTE)},
		{"SUBPASS_CONTENTS_INLINE", int64(vk.SUBPASS_CONTENTS_INLINE), int64(C.VK_SUBPASS_CONTENTS_INLINE)},
		{"SUBPASS_CONTENTS_SECONDARY_COMMAND_BUFFERS", int64(vk.SUBPASS_CONTENTS_SECONDARY_COMMAND_BUFFERS), int64(C.VK_SUBPASS_CONTENTS_SECONDARY_COMMAND_BUFFERS)},
		{"DESCRIPTOR_TYPE_SAMPLER", int64(vk.DESCRIPTOR_TYPE_SAMPLER), int64(C.VK_DESCRIPTOR_TYPE_SAMPLER)},
		{"DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER", int64(vk.DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER), int64(C.VK_DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER)},
		{"DESCRIPTOR_TYPE_SAMPLED_IMAGE", int64(vk.DESCRIPTOR_TYPE_SAMPLED_IMAGE), int64(C.VK_DESCRIPTOR_TYPE_SAMPLED_IMAGE)},
		{"DESCRIPTOR_TYPE_STORAGE_IMAGE", int64(vk.DESCRIPTOR_TYPE_STORAGE_IMAGE), int64(C.VK_DESCRIPTOR_TYPE_STORAGE_IMAGE)},
		{"DESCRIPTOR_TYPE_UNIFORM_TEXEL_BUFFER", int64(vk.DESCRIPTOR_TYPE_UNIFORM_TEXEL_BUFFER), int64(C.VK_DESCRIPTOR_TYPE_UNIFORM_TEXEL_BUFFER)},
		{"DESCRIPTOR_TYPE_STORAGE_TEXEL_BUFFER", int64(vk.DESCRIPTOR_TYPE_STORAGE_TEXEL_BUFFER), int64(C.VK_DESCRIPTOR_TYPE_STORAGE_TEXEL_BUFFER)},
		{"DESCRIPTOR_TYPE_UNIFORM_BUFFER", int64(vk.DESCRIPTOR_TYPE_UNIFORM_BUFFER), int64(C.VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER)},
		{"DESCRIPTOR_TYPE_STORAGE_BUFFER", int64(vk.DESCRIPTOR_TYPE_STORAGE_BUFFER), int64(C.VK_DESCRIPTOR_TYPE_STORAGE_BUFFER)},
		{"DESCRIPTOR_TYPE_UNIFORM_BUFFER_DYNAMIC", int64(vk.DESCRIPTOR_TYPE_UNIFORM_BUFFER_DYNAMIC), int64(C.VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER_DYNAMIC)},
		{"DESCRIPTOR_TYPE_STORAGE_BUFFER_DYNAMIC", int64(vk.DESCRIPTOR_TYPE_STORAGE_BUFFER_DYNAMIC), int64(C.VK_DESCRIPTOR_TYPE_STORAGE_BUFFER_DYNAMIC)},
		{"DESCRIPTOR_TYPE_INPUT_ATTACHMENT", int64(vk.DESCRIPTOR_TYPE_INPUT_ATTACHMENT), int64(C.VK_DESCRIPTOR_TYPE_INPUT_ATTACHMENT)},
		{"INDEX_TYPE_UINT16", int64(vk.INDEX_TYPE_UINT16), int64(C.VK_INDEX_TYPE_UINT16)},
		{"INDEX_TYPE_UINT32", int64(vk.INDEX_TYPE_UINT32), int64(C.VK_INDEX_TYPE_UINT32)},
		{"PRIMITIVE_TOPOLOGY_POINT_LIST", int64(vk.PRIMITIVE_TOPOLOGY_POINT_LIST), int64(C.VK_PRIMITIVE_TOPOLOGY_POINT_LIST)},
		{"PRIMITIVE_TOPOLOGY_LINE_LIST", int64(vk.PRIMITIVE_TOPOLOGY_LINE_LIST), int64(C.VK_PRIMITIVE_TOPOLOGY_LINE_LIST)},
		{"PRIMITIVE_TOPOLOGY_LINE_STRIP", int64(vk.PRIMITIVE_TOPOLOGY_LINE_STRIP), int64(C.VK_PRIMITIVE_TOPOLOGY_LINE_STRIP)},
		{"PRIMITIVE_TOPOLOGY_TRIANGLE_LIST", int64(vk.PRIMITIVE_TOPOLOGY_TRIANGLE_LIST), int64(C.VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST)},
		{"PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP", int64(vk.PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP), int64(C.VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP)},
		{"PRIMITIVE_TOPOLOGY_TRIANGLE_FAN", int64(vk.PRIMITIVE_TOPOLOGY_TRIANGLE_FAN), int64(C.VK_PRIMITIVE_TOPOLOGY_TRIANGLE_FAN)},
		{"PRIMITIVE_TOPOLOGY_LINE_LIST_WITH_ADJACENCY", int64(vk.PRIMITIVE_TOPOLOGY_LINE_LIST_WITH_ADJACENCY), int64(C.VK_PRIMITIVE_TOPOLOGY_LINE_LIST_WITH_ADJACENCY)},
		{"PRIMITIVE_TOPOLOGY_LINE_STRIP_WITH_ADJACENCY", int64(vk.PRIMITIVE_TOPOLOGY_LINE_STRIP_WITH_ADJACENCY), int64(C.VK_PRIMITIVE_TOPOLOGY_LINE_STRIP_WITH_ADJACENCY)},
		{"PRIMITIVE_TOPOLOGY_TRIANGLE_LIST_WITH_ADJACENCY", int64(vk.PRIMITIVE_TOPOLOGY_TRIANGLE_LIST_WITH_ADJACENCY), int64(C.VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST_WITH_ADJACENCY)},
		{"PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP_WITH_ADJACENCY", int64(vk.PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP_WITH_ADJACENCY), int64(C.VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP_WITH_ADJACENCY)},
		{"PRIMITIVE_TOPOLOGY_PATCH_LIST", int64(vk.PRIMITIVE_TOPOLOGY_PATCH_LIST), int64(C.VK_PRIMITIVE_TOPOLOGY_PATCH_LIST)},
		{"POLYGON_MODE_FILL", int64(vk.POLYGON_MODE_FILL), int64(C.VK_POLYGON_MODE_FILL)},
		{"POLYGON_MODE_LINE", int64(vk.POLYGON_MODE_LINE), int64(C.VK_POLYGON_MODE_LINE)},
		{"POLYGON_MODE_POINT", int64(vk.POLYGON_MODE_POINT), int64(C.VK_POLYGON_MODE_POINT)},
		{"FRONT_FACE_COUNTER_CLOCKWISE", int64(vk.FRONT_FACE_COUNTER_CLOCKWISE), int64(C.VK_FRONT_FACE_COUNTER_CLOCKWISE)},
		{"FRONT_FACE_CLOCKWISE", int64(vk.FRONT_FACE_CLOCKWISE), int64(C.VK_FRONT_FACE_CLOCKWISE)},
		{"COMPARE_OP_NEVER", int64(vk.COMPARE_OP_NEVER), int64(C.VK_COMPARE_OP_NEVER)},
		{"COMPARE_OP_LESS", int64(vk.COMPARE_OP_LESS), int64(C.VK_COMPARE_OP_LESS)},
		{"COMPARE_OP_EQUAL", int64(vk.COMPARE_OP_EQUAL), int64(C.VK_COMPARE_OP_EQUAL)},
		{"COMPARE_OP_LESS_OR_EQUAL", int64(vk.COMPARE_OP_LESS_OR_EQUAL), int64(C.VK_COMPARE_OP_LESS_OR_EQUAL)},
		{"COMPARE_OP_GREATER", int64(vk.COMPARE_OP_GREATER), int64(C.VK_COMPARE_OP_GREATER)},
		{"COMPARE_OP_NOT_EQUAL", int64(vk.COMPARE_OP_NOT_EQUAL), int64(C.VK_COMPARE_OP_NOT_EQUAL)},
		{"COMPARE_OP_GREATER_OR_EQUAL", int64(vk.COMPARE_OP_GREATER_OR_EQUAL), int64(C.VK_COMPARE_OP_GREATER_OR_EQUAL)},
		{"COMPARE_OP_ALWAYS", int64(vk.COMPARE_OP_ALWAYS), int64(C.VK_COMPARE_OP_ALWAYS)},
		{"STENCIL_OP_KEEP", int64(vk.STENCIL_OP_KEEP), int64(C.VK_STENCIL_OP_KEEP)},
		{"STENCIL_OP_ZERO", int64(vk.STENCIL_OP_ZERO), int64(C.VK_STENCIL_OP_ZERO)},
		{"STENCIL_OP_REPLACE", int64(vk.STENCIL_OP_REPLACE), int64(C.VK_STENCIL_OP_REPLACE)},
		{"STENCIL_OP_INCREMENT_AND_CLAMP", int64(vk.STENCIL_OP_INCREMENT_AND_CLAMP), int64(C.VK_STENCIL_OP_INCREMENT_AND_CLAMP)},
		{"STENCIL_OP_DECREMENT_AND_CLAMP", int64(vk.STENCIL_OP_DECREMENT_AND_CLAMP), int64(C.VK_STENCIL_OP_DECREMENT_AND_CLAMP)},
		{"STENCIL_OP_INVERT", int64(vk.STENCIL_OP_INVERT), int64(C.VK_STENCIL_OP_INVERT)},
		{"STENCIL_OP_INCREMENT_AND_WRAP", int64(vk.STENCIL_OP_INCREMENT_AND_WRAP), int64(C.VK_STENCIL_OP_INCREMENT_AND_WRAP)},
		{"STENCIL_OP_DECREMENT_AND_WRAP", int64(vk.STENCIL_OP_DECREMENT_AND_WRAP), int64(C.VK_STENCIL_OP_DECREMENT_AND_WRAP)},
		{"LOGIC_OP_CLEAR", int64(vk.LOGIC_OP_CLEAR), int64(C.VK_LOGIC_OP_CLEAR)},
		{"LOGIC_OP_AND", int64(vk.LOGIC_OP_AND), int64(C.VK_LOGIC_OP_AND)},
		{"LOGIC_OP_AND_REVERSE", int64(vk.LOGIC_OP_AND_REVERSE), int64(C.VK_LOGIC_OP_AND_REVERSE)},
		{"LOGIC_OP_COPY", int64(vk.LOGIC_OP_COPY), int64(C.VK_LOGIC_OP_COPY)},
		{"LOGIC_OP_AND_INVERTED", int64(vk.LOGIC_OP_AND_INVERTED), int64(C.VK_LOGIC_OP_AND_INVERTED)},
		{"LOGIC_OP_NO_OP", int64(vk.LOGIC_OP_NO_OP), int64(C.VK_LOGIC_OP_NO_OP)},
		{"LOGIC_OP_XOR", int64(vk.LOGIC_OP_XOR), int64(C.VK_LOGIC_OP_XOR)},
		{"LOGIC_OP_OR", int64(vk.LOGIC_OP_OR), int64(C.VK_LOGIC_OP_OR)},
		{"LOGIC_OP_NOR", int64(vk.LOGIC_OP_NOR), int64(C.VK_LOGIC_OP_NOR)},
		{"LOGIC_OP_EQUIVALENT", int64(vk.LOGIC_OP_EQUIVALENT), int64(C.VK_LOGIC_OP_EQUIVALENT)},
		{"LOGIC_OP_INVERT", int64(vk.LOGIC_OP_INVERT), int64(C.VK_LOGIC_OP_INVERT)},
		{"LOGIC_OP_OR_REVERSE", int64(vk.LOGIC_OP_OR_REVERSE), int64(C.VK_LOGIC_OP_OR_REVERSE)},
		{"LOGIC_OP_COPY_INVERTED", int64(vk.LOGIC_OP_COPY_INVERTED), int64(C.VK_LOGIC_OP_COPY_INVERTED)},
		{"LOGIC_OP_OR_INVERTED", int64(vk.LOGIC_OP_OR_INVERTED), int64(C.VK_LOGIC_OP_OR_INVERTED)},
		{"LOGIC_OP_NAND", int64(vk.LOGIC_OP_NAND), int64(C.VK_LOGIC_OP_NAND)},
		{"LOGIC_OP_SET", int64(vk.LOGIC_OP_SET), int64(C.VK_LOGIC_OP_SET)},
		{"BLEND_FACTOR_ZERO", int64(vk.BLEND_FACTOR_ZERO), int64(C.VK_BLEND_FACTOR_ZERO)},
		{"BLEND_FACTOR_ONE", int64(vk.BLEND_FACTOR_ONE), int64(C.VK_BLEND_FACTOR_ONE)},
		{"BLEND_FACTOR_SRC_COLOR", int64(vk.BLEND_FACTOR_SRC_COLOR), int64(C.VK_BLEND_FACTOR_SRC_COLOR)},
		{"BLEND_FACTOR_ONE_MINUS_SRC_COLOR", int64(vk.BLEND_FACTOR_ONE_MINUS_SRC_COLOR), int64(C.VK_BLEND_FACTOR_ONE_MINUS_SRC_COLOR)},
		{"BLEND_FACTOR_DST_COLOR", int64(vk.BLEND_FACTOR_DST_COLOR), int64(C.VK_BLEND_FACTOR_DST_COLOR)},
		{"BLEND_FACTOR_ONE_MINUS_DST_COLOR", int64(vk.BLEND_FACTOR_ONE_MINUS_DST_COLOR), int64(C.VK_BLEND_FACTOR_ONE_MINUS_DST_COLOR)},
		{"BLEND_FACTOR_SRC_ALPHA", int64(vk.BLEND_FACTOR_SRC_ALPHA), int64(C.VK_BLEND_FACTOR_SRC_ALPHA)},
		{"BLEND_FACTOR_ONE_MINUS_SRC_ALPHA", int64(vk.BLEND_FACTOR_ONE_MINUS_SRC_ALPHA), int64(C.VK_BLEND_FACTOR_ONE_MINUS_SRC_ALPHA)},
		{"BLEND_FACTOR_DST_ALPHA", int64(vk.BLEND_FACTOR_DST_ALPHA), int64(C.VK_BLEND_FACTOR_DST_ALPHA)},
		{"BLEND_FACTOR_ONE_MINUS_DST_ALPHA", int64(vk.BLEND_FACTOR_ONE_MINUS_DST_ALPHA), int64(C.VK_BLEND_FACTOR_ONE_MINUS_DST_ALPHA)},
		{"BLEND_FACTOR_CONSTANT_COLOR", int64(vk.BLEND_FACTOR_CONSTANT_COLOR), int64(C.VK_BLEND_FACTOR_CONSTANT_COLOR)},
		{"BLEND_FACTOR_ONE_MINUS_CONSTANT_COLOR", int64(vk.BLEND_FACTOR_ONE_MINUS_CONSTANT_COLOR), int64(C.VK_BLEND_FACTOR_ONE_MINUS_CONSTANT_COLOR)},
		{"BLEND_FACTOR_CONSTANT_ALPHA", int64(vk.BLEND_FACTOR_CONSTANT_ALPHA), int64(C.VK_BLEND_FACTOR_CONSTANT_ALPHA)},
		{"BLEND_FACTOR_ONE_MINUS_CONSTANT_ALPHA", int64(vk.BLEND_FACTOR_ONE_MINUS_CONSTANT_ALPHA), int64(C.VK_BLEND_FACTOR_ONE_MINUS_CONSTANT_ALPHA)},
		{"BLEND_FACTOR_SRC_ALPHA_SATURATE", int64(vk.BLEND_FACTOR_SRC_ALPHA_SATURATE), int64(C.VK_BLEND_FACTOR_SRC_ALPHA_SATURATE)},
		{"BLEND_FACTOR_SRC1_COLOR", int64(vk.BLEND_FACTOR_SRC1_COLOR), int64(C.VK_BLEND_FACTOR_SRC1_COLOR)},
		{"BLEND_FACTOR_ONE_MINUS_SRC1_COLOR", int64(vk.BLEND_FACTOR_ONE_MINUS_SRC1_COLOR), int64(C.VK_BLEND_FACTOR_ONE_MINUS_SRC1_COLOR)},
		{"BLEND_FACTOR_SRC1_ALPHA", int64(vk.BLEND_FACTOR_SRC1_ALPHA), int64(C.VK_BLEND_FACTOR_SRC1_ALPHA)},
		{"BLEND_FACTOR_ONE_MINUS_SRC1_ALPHA", int64(vk.BLEND_FACTOR_ONE_MINUS_SRC1_ALPHA), int64(C.VK_BLEND_FACTOR_ONE_MINUS_SRC1_ALPHA)},
		{"BLEND_OP_ADD", int64(vk.BLEND_OP_ADD), int64(C.VK_BLEND_OP_ADD)},
		{"BLEND_OP_SUBTRACT", int64(vk.BLEND_OP_SUBTRACT), int64(C.VK_BLEND_OP_SUBTRACT)},
		{"BLEND_OP_REVERSE_SUBTRACT", int64(vk.BLEND_OP_REVERSE_SUBTRACT), int64(C.VK_BLEND_OP_REVERSE_SUBTRACT)},
		{"BLEND_OP_MIN", int64(vk.BLEND_OP_MIN), int64(C.VK_BLEND_OP_MIN)},
		{"BLEND_OP_MAX", int64(vk.BLEND_OP_MAX), int64(C.VK_BLEND_OP_MAX)},
		{"DYNAMIC_STATE_VIEWPORT", int64(vk.DYNAMIC_STATE_VIEWPORT), int64(C.VK_DYNAMIC_STATE_VIEWPORT)},
		{"DYNAMIC_STATE_SCISSOR", int64(vk.DYNAMIC_STATE_SCISSOR), int64(C.VK_DYNAMIC_STATE_SCISSOR)},
		{"DYNAMIC_STATE_LINE_WIDTH", int64(vk.DYNAMIC_STATE_LINE_WIDTH), int64(C.VK_DYNAMIC_STATE_LINE_WIDTH)},
		{"DYNAMIC_STATE_DEPTH_BIAS", int64(vk.DYNAMIC_STATE_DEPTH_BIAS), int64(C.VK_DYNAMIC_STATE_DEPTH_BIAS)},
		{"DYNAMIC_STATE_BLEND_CONSTANTS", int64(vk.DYNAMIC_STATE_BLEND_CONSTANTS), int64(C.VK_DYNAMIC_STATE_BLEND_CONSTANTS)},
		{"DYNAMIC_STATE_DEPTH_BOUNDS", int64(vk.DYNAMIC_STATE_DEPTH_BOUNDS), int64(C.VK_DYNAMIC_STATE_DEPTH_BOUNDS)},
		{"DYNAMIC_STATE_STENCIL_COMPARE_MASK", int64(vk.DYNAMIC_STATE_STENCIL_COMPARE_MASK), int64(C.VK_DYNAMIC_STATE_STENCIL_COMPARE_MASK)},
		{"DYNAMIC_STATE_STENCIL_WRITE_MASK", int64(vk.DYNAMIC_STATE_STENCIL_WRITE_MASK), int64(C.VK_DYNAMIC_STATE_STENCIL_WRITE_MASK)},
		{"DYNAMIC_STATE_STENCIL_REFERENCE", int64(vk.DYNAMIC_STATE_STENCIL_REFERENCE), int64(C.VK_DYNAMIC_STATE_STENCIL_REFERENCE)},
		{"VERTEX_INPUT_RATE_VERTEX", int64(vk.VERTEX_INPUT_RATE_VERTEX), int64(C.VK_VERTEX_INPUT_RATE_VERTEX)},
		{"VERTEX_INPUT_RATE_INSTANCE", int64(vk.VERTEX_INPUT_RATE_INSTANCE), int64(C.VK_VERTEX_INPUT_RATE_INSTANCE)},
		{"FILTER_NEAREST", int64(vk.FILTER_NEAREST), int64(C.VK_FILTER_NEAREST)},
		{"FILTER_LINEAR", int64(vk.FILTER_LINEAR), int64(C.VK_FILTER_LINEAR)},
		{"SAMPLER_MIPMAP_MODE_NEAREST", int64(vk.SAMPLER_MIPMAP_MODE_NEAREST), int64(C.VK_SAMPLER_MIPMAP_MODE_NEAREST)},
		{"SAMPLER_MIPMAP_MODE_LINEAR", int64(vk.SAMPLER_MIPMAP_MODE_LINEAR), int64(C.VK_SAMPLER_MIPMAP_MODE_LINEAR)},
		{"SAMPLER_ADDRESS_MODE_REPEAT", int64(vk.SAMPLER_ADDRESS_MODE_REPEAT), int64(C.VK_SAMPLER_ADDRESS_MODE_REPEAT)},
		{"SAMPLER_ADDRESS_MODE_MIRRORED_REPEAT", int64(vk.SAMPLER_ADDRESS_MODE_MIRRORED_REPEAT), int64(C.VK_SAMPLER_ADDRESS_MODE_MIRRORED_REPEAT)},
		{"SAMPLER_ADDRESS_MODE_CLAMP_TO_EDGE", int64(vk.SAMPLER_ADDRESS_MODE_CLAMP_TO_EDGE), int64(C.VK_SAMPLER_ADDRESS_MODE_CLAMP_TO_EDGE)},
		{"SAMPLER_ADDRESS_MODE_CLAMP_TO_BORDER", int64(vk.SAMPLER_ADDRESS_MODE_CLAMP_TO_BORDER), int64(C.VK_SAMPLER_ADDRESS_MODE_CLAMP_TO_BORDER)},
		{"SAMPLER_ADDRESS_MODE_MIRROR_CLAMP_TO_EDGE", int64(vk.SAMPLER_ADDRESS_MODE_MIRROR_CLAMP_TO_EDGE), int64(C.VK_SAMPLER_ADDRESS_MODE_MIRROR_CLAMP_TO_EDGE)},
		{"BORDER_COLOR_FLOAT_TRANSPARENT_BLACK", int64(vk.BORDER_COLOR_FLOAT_TRANSPARENT_BLACK), int64(C.VK_BORDER_COLOR_FLOAT_TRANSPARENT_BLACK)},
		{"BORDER_COLOR_INT_TRANSPARENT_BLACK", int64(vk.BORDER_COLOR_INT_TRANSPARENT_BLACK), int64(C.VK_BORDER_COLOR_INT_TRANSPARENT_BLACK)},
		{"BORDER_COLOR_FLOAT_OPAQUE_BLACK", int64(vk.BORDER_COLOR_FLOAT_OPAQUE_BLACK), int64(C.VK_BORDER_COLOR_FLOAT_OPAQUE_BLACK)},
		{"BORDER_COLOR_INT_OPAQUE_BLACK", int64(vk.BORDER_COLOR_INT_OPAQUE_BLACK), int64(C.VK_BORDER_COLOR_INT_OPAQUE_BLACK)},
		{"BORDER_COLOR_FLOAT_OPAQUE_WHITE", int64(vk.BORDER_COLOR_FLOAT_OPAQUE_WHITE), int64(C.VK_BORDER_COLOR_FLOAT_OPAQUE_WHITE)},
		{"BORDER_COLOR_INT_OPAQUE_WHITE", int64(vk.BORDER_COLOR_INT_OPAQUE_WHITE), int64(C.VK_BORDER_COLOR_INT_OPAQUE_WHITE)},
		{"PRESENT_MODE_IMMEDIATE_KHR", int64(vk.PRESENT_MODE_IMMEDIATE_KHR), int64(C.VK_PRESENT_MODE_IMMEDIATE_KHR)},
		{"PRESENT_MODE_MAILBOX_KHR", int64(vk.PRESENT_MODE_MAILBOX_KHR), int64(C.VK_PRESENT_MODE_MAILBOX_KHR)},
		{"PRESENT_MODE_FIFO_KHR", int64(vk.PRESENT_MODE_FIFO_KHR), int64(C.VK_PRESENT_MODE_FIFO_KHR)},
		{"PRESENT_MODE_FIFO_RELAXED_KHR", int64(vk.PRESENT_MODE_FIFO_RELAXED_KHR), int64(C.VK_PRESENT_MODE_FIFO_RELAXED_KHR)},
		{"COLOR_SPACE_SRGB_NONLINEAR_KHR", int64(vk.COLOR_SPACE_SRGB_NONLINEAR_KHR), int64(C.VK_COLOR_SPACE_SRGB_NONLINEAR_KHR)},
		{"FORMAT_UNDEFINED", int64(vk.FORMAT_UNDEFINED), int64(C.VK_FORMAT_UNDEFINED)},
		{"FORMAT_R4G4_UNORM_PACK8", int64(vk.FORMAT_R4G4_UNORM_PACK8), int64(C.VK_FORMAT_R4G4_UNORM_PACK8)},
		{"FORMAT_R4G4B4A4_UNORM_PACK16", int64(vk.FORMAT_R4G4B4A4_UNORM_PACK16), int64(C.VK_FORMAT_R4G4B4A4_UNORM_PACK16)},
		{"FORMAT_B4G4R4A4_UNORM_PACK16", int64(vk.FORMAT_B4G4R4A4_UNORM_PACK16), int64(C.VK_FORMAT_B4G4R4A4_UNORM_PACK16)},
		{"FORMAT_R5G6B5_UNORM_PACK16", int64(vk.FORMAT_R5G6B5_UNORM_PACK16), int64(C.VK_FORMAT_R5G6B5_UNORM_PACK16)},
		{"FORMAT_B5G6R5_UNORM_PACK16", int64(vk.FORMAT_B5G6R5_UNORM_PACK16), int64(C.VK_FORMAT_B5G6R5_UNORM_PACK16)},
		{"FORMAT_R5G5B5A1_UNORM_PACK16", int64(vk.FORMAT_R5G5B5A1_UNORM_PACK16), int64(C.VK_FORMAT_R5G5B5A1_UNORM_PACK16)},
		{"FORMAT_B5G5R5A1_UNORM_PACK16", int64(vk.FORMAT_B5G5R5A1_UNORM_PACK16), int64(C.VK_FORMAT_B5G5R5A1_UNORM_PACK16)},
		{"FORMAT_A1R5G5B5_UNORM_PACK16", int64(vk.FORMAT_A1R5G5B5_UNORM_PACK16), int64(C.VK_FORMAT_A1R5G5B5_UNORM_PACK16)},
		{"FORMAT_R8_UNORM", int64(vk.FORMAT_R8_UNORM), int64(C.VK_FORMAT_R8_UNORM)},
		{"FORMAT_R8_SNORM", int64(vk.FORMAT_R8_SNORM), int64(C.VK_FORMAT_R8_SNORM)},
		{"FORMAT_R8_USCALED", int64(vk.FORMAT_R8_USCALED), int64(C.VK_FORMAT_R8_USCALED)},
		{"FORMAT_R8_SSCALED", int64(vk.FORMAT_R8_SSCALED), int64(C.VK_FORMAT_R8_SSCALED)},
		{"FORMAT_R8_UINT", int64(vk.FORMAT_R8_UINT), int64(C.VK_FORMAT_R8_UINT)},
		{"FORMAT_R8_SINT", int64(vk.FORMAT_R8_SINT), int64(C.VK_FORMAT_R8_SINT)},
		{"FORMAT_R8_SRGB", int64(vk.FORMAT_R8_SRGB), int64(C.VK_FORMAT_R8_SRGB)},
		{"FORMAT_R8G8_UNORM", int64(vk.FORMAT_R8G8_UNORM), int64(C.VK_FORMAT_R8G8_UNORM)},
		{"FORMAT_R8G8_SNORM", int64(vk.FORMAT_R8G8_SNORM), int64(C.VK_FORMAT_R8G8_SNORM)},
		{"FORMAT_R8G8_USCALED", int64(vk.FORMAT_R8G8_USCALED), int64(C.VK_FORMAT_R8G8_USCALED)},
		{"FORMAT_R8G8_SSCALED", int64(vk.FORMAT_R8G8_SSCALED), int64(C.VK_FORMAT_R8G8_SSCALED)},
		{"FORMAT_R8G8_UINT", int64(vk.FORMAT_R8G8_UINT), int64(C.VK_FORMAT_R8G8_UINT)},
		{"FORMAT_R8G8_SINT", int64(vk.FORMAT_R8G8_SINT), int64(C.VK_FORMAT_R8G8_SINT)},
		{"FORMAT_R8G8_SRGB", int64(vk.FORMAT_R8G8_SRGB), int64(C.VK_FORMAT_R8G8_SRGB)},
		{"FORMAT_R8G8B8_UNORM", int64(vk.FORMAT_R8G8B8_UNORM), int64(C.VK_FORMAT_R8G8B8_UNORM)},
		{"FORMAT_R8G8B8_SNORM", int64(vk.FORMAT_R8G8B8_SNORM), int64(C.VK_FORMAT_R8G8B8_SNORM)},
		{"FORMAT_R8G8B8_USCALED", int64(vk.FORMAT_R8G8B8_USCALED), int64(C.VK_FORMAT_R8G8B8_USCALED)},
		{"FORMAT_R8G8B8_SSCALED", int64(vk.FORMAT_R8G8B8_SSCALED), int64(C.VK_FORMAT_R8G8B8_SSCALED)},
		{"FORMAT_R8G8B8_UINT", int64(vk.FORMAT_R8G8B8_UINT), int64(C.VK_FORMAT_R8G8B8_UINT)},
		{"FORMAT_R8G8B8_SINT", int64(vk.FORMAT_R8G8B8_SINT), int64(C.VK_FORMAT_R8G8B8_SINT)},
		{"FORMAT_R8G8B8_SRGB", int64(vk.FORMAT_R8G8B8_SRGB), int64(C.VK_FORMAT_R8G8B8_SRGB)},
		{"FORMAT_B8G8R8_UNORM", int64(vk.FORMAT_B8G8R8_UNORM), int64(C.VK_FORMAT_B8G8R8_UNORM)},
		{"FORMAT_B8G8R8_SNORM", int64(vk.FORMAT_B8G8R8_SNORM), int64(C.VK_FORMAT_B8G8R8_SNORM)},
		{"FORMAT_B8G8R8_USCALED", int64(vk.FORMAT_B8G8R8_USCALED), int64(C.VK_FORMAT_B8G8R8_USCALED)},
		{"FORMAT_B8G8R8_SSCALED", int64(vk.FORMAT_B8G8R8_SSCALED), int64(C.VK_FORMAT_B8G8R8_SSCALED)},
		{"FORMAT_B8G8R8_UINT", int64(vk.FORMAT_B8G8R8_UINT), int64(C.VK_FORMAT_B8G8R8_UINT)},
		{"FORMAT_B8G8R8_SINT", int64(vk.FORMAT_B8G8R8_SINT), int64(C.VK_FORMAT_B8G8R8_SINT)},
		{"FORMAT_B8G8R8_SRGB", int64(vk.FORMAT_B8G8R8_SRGB), int64(C.VK_FORMAT_B8G8R8_SRGB)},
		{"FORMAT_R8G8B8A8_UNORM", int64(vk.FORMAT_R8G8B8A8_UNORM), int64(C.VK_FORMAT_R8G8B8A8_UNORM)},
		{"FORMAT_R8G8B8A8_SNORM", int64(vk.FORMAT_R8G8B8A8_SNORM), int64(C.VK_FORMAT_R8G8B8A8_SNORM)},
		{"FORMAT_R8G8B8A8_USCALED", int64(vk.FORMAT_R8G8B8A8_USCALED), int64(C.VK_FORMAT_R8G8B8A8_USCALED)},
		{"FORMAT_R8G8B8A8_SSCALED", int64(vk.FORMAT_R8G8B8A8_SSCALED), int64(C.VK_FORMAT_R8G8B8A8_SSCALED)},
		{"FORMAT_R8G8B8A8_UINT", int64(vk.FORMAT_R8G8B8A8_UINT), int64(C.VK_FORMAT_R8G8B8A8_UINT)},
		{"FORMAT_R8G8B8A8_SINT", int64(vk.FORMAT_R8G8B8A8_SINT), int64(C.VK_FORMAT_R8G8B8A8_SINT)},
		{"FORMAT_R8G8B8A8_SRGB", int64(vk.FORMAT_R8G8B8A8_SRGB), int64(C.VK_FORMAT_R8G8B8A8_SRGB)},
		{"FORMAT_B8G8R8A8_UNORM", int64(vk.FORMAT_B8G8R8A8_UNORM), int64(C.VK_FORMAT_B8G8R8A8_UNORM)},
		{"FORMAT_B8G8R8A8_SNORM", int64(vk.FORMAT_B8G8R8A8_SNORM), int64(C.VK_FORMAT_B8G8R8A8_SNORM)},
		{"FORMAT_B8G8R8A8_USCALED", int64(vk.FORMAT_B8G8R8A8_USCALED), int64(C.VK_FORMAT_B8G8R8A8_USCALED)},
		{"FORMAT_B8G8R8A8_SSCALED", int64(vk.FORMAT_B8G8R8A8_SSCALED), int64(C.VK_FORMAT_B8G8R8A8_SSCALED)},
		{"FORMAT_B8G8R8A8_UINT", int64(vk.FORMAT_B8G8R8A8_UINT), int64(C.VK_FORMAT_B8G8R8A8_UINT)},
		{"FORMAT_B8G8R8A8_SINT", int64(vk.FORMAT_B8G8R8A8_SINT), int64(C.VK_FORMAT_B8G8R8A8_SINT)},
		{"FORMAT_B8G8R8A8_SRGB", int64(vk.FORMAT_B8G8R8A8_SRGB), int64(C.VK_FORMAT_B8G8R8A8_SRGB)},
		{"FORMAT_A8B8G8R8_UNORM_PACK32", int64(vk.FORMAT_A8B8G8R8_UNORM_PACK32), int64(C.VK_FORMAT_A8B8G8R8_UNORM_PACK32)},
		{"FORMAT_A8B8G8R8_SNORM_PACK32", int64(vk.FORMAT_A8B8G8R8_SNORM_PACK32), int64(C.VK_FORMAT_A8B8G8R8_SNORM_PACK32)},
		{"FORMAT_A8B8G8R8_USCALED_PACK32", int64(vk.FORMAT_A8B8G8R8_USCALED_PACK32), int64(C.VK_FORMAT_A8B8G8R8_USCALED_PACK32)},
		{"FORMAT_A8B8G8R8_SSCALED_PACK32", int64(vk.FORMAT_A8B8G8R8_SSCALED_PACK32), int64(C.VK_FORMAT_A8B8G8R8_SSCALED_PACK32)},
		{"FORMAT_A8B8G8R8_UINT_PACK32", int64(vk.FORMAT_A8B8G8R8_UINT_PACK32), int64(C.VK_FORMAT_A8B8G8R8_UINT_PACK32)},
		{"FORMAT_A8B8G8R8_SINT_PACK32", int64(vk.FORMAT_A8B8G8R8_SINT_PACK32), int64(C.VK_FORMAT_A8B8G8R8_SINT_PACK32)},
		{"FORMAT_A8B8G8R8_SRGB_PACK32", int64(vk.FORMAT_A8B8G8R8_SRGB_PACK32), int64(C.VK_FORMAT_A8B8G8R8_SRGB_PACK32)},
		{"FORMAT_A2R10G10B10_UNORM_PACK32", int64(vk.FORMAT_A2R10G10B10_UNORM_PACK32), int64(C.VK_FORMAT_A2R10G10B10_UNORM_PACK32)},
		{"FORMAT_A2R10G10B10_SNORM_PACK32", int64(vk.FORMAT_A2R10G10B10_SNORM_PACK32), int64(C.VK_FORMAT_A2R10G10B10_SNORM_PACK32)},
		{"FORMAT_A2R10G10B10_USCALED_PACK32", int64(vk.FORMAT_A2R10G10B10_USCALED_PACK32), int64(C.VK_FORMAT_A2R10G10B10_USCALED_PACK32)},
		{"FORMAT_A2R10G10B10_SSCALED_PACK32", int64(vk.FORMAT_A2R10G10B10_SSCALED_PACK32), int64(C.VK_FORMAT_A2R10G10B10_SSCALED_PACK32)},
		{"FORMAT_A2R10G10B10_UINT_PACK32", int64(vk.FORMAT_A2R10G10B10_UINT_PACK32), int64(C.VK_FORMAT_A2R10G10B10_UINT_PACK32)},
		{"FORMAT_A2R10G10B10_SINT_PACK32", int64(vk.FORMAT_A2R10G10B10_SINT_PACK32), int64(C.VK_FORMAT_A2R10G10B10_SINT_PACK32)},
		{"FORMAT_A2B10G10R10_UNORM_PACK32", int64(vk.FORMAT_A2B10G10R10_UNORM_PACK32), int64(C.VK_FORMAT_A2B10G10R10_UNORM_PACK32)},
		{"FORMAT_A2B10G10R10_SNORM_PACK32", int64(vk.FORMAT_A2B10G10R10_SNORM_PACK32), int64(C.VK_FORMAT_A2B10G10R10_SNORM_PACK32)},
		{"FORMAT_A2B10G10R10_USCALED_PACK32", int64(vk.FORMAT_A2B10G10R10_USCALED_PACK32), int64(C.VK_FORMAT_A2B10G10R10_USCALED_PACK32)},
		{"FORMAT_A2B10G10R10_SSCALED_PACK32", int64(vk.FORMAT_A2B10G10R10_SSCALED_PACK32), int64(C.VK_FORMAT_A2B10G10R10_SSCALED_PACK32)},
		{"FORMAT_A2B10G10R10_UINT_PACK32", int64(vk.FORMAT_A2B10G10R10_UINT_PACK32), int64(C.VK_FORMAT_A2B10G10R10_UINT_PACK32)},
		{"FORMAT_A2B10G10R10_SINT_PACK32", int64(vk.FORMAT_A2B10G10R10_SINT_PACK32), int64(C.VK_FORMAT_A2B10G10R10_SINT_PACK32)},
		{"FORMAT_R16_UNORM", int64(vk.FORMAT_R16_UNORM), int64(C.VK_FORMAT_R16_UNORM)},
		{"FORMAT_R16_SNORM", int64(vk.FORMAT_R16_SNORM), int64(C.VK_FORMAT_R16_SNORM)},
		{"FORMAT_R16_USCALED", int64(vk.FORMAT_R16_USCALED), int64(C.VK_FORMAT_R16_USCALED)},
		{"FORMAT_R16_SSCALED", int64(vk.FORMAT_R16_SSCALED), int64(C.VK_FORMAT_R16_SSCALED)},
		{"FORMAT_R16_UINT", int64(vk.FORMAT_R16_UINT), int64(C.VK_FORMAT_R16_UINT)},
		{"FORMAT_R16_SINT", int64(vk.FORMAT_R16_SINT), int64(C.VK_FORMAT_R16_SINT)},
		{"FORMAT_R16_SFLOAT", int64(vk.FORMAT_R16_SFLOAT), int64(C.VK_FORMAT_R16_SFLOAT)},
		{"FORMAT_R16G16_UNORM", int64(vk.FORMAT_R16G16_UNORM), int64(C.VK_FORMAT_R16G16_UNORM)},
		{"FORMAT_R16G16_SNORM", int64(vk.FORMAT_R16G16_SNORM), int64(C.VK_FORMAT_R16G16_SNORM)},
		{"FORMAT_R16G16_USCALED", int64(vk.FORMAT_R16G16_USCALED), int64(C.VK_FORMAT_R16G16_USCALED)},
		{"FORMAT_R16G16_SSCALED", int64(vk.FORMAT_R16G16_SSCALED), int64(C.VK_FORMAT_R16G16_SSCALED)},
		{"FORMAT_R16G16_UINT", int64(vk.FORMAT_R16G16_UINT), int64(C.VK_FORMAT_R16G16_UINT)},
		{"FORMAT_R16G16_SINT", int64(vk.FORMAT_R16G16_SINT), int64(C.VK_FORMAT_R16G16_SINT)},
		{"FORMAT_R16G16_SFLOAT", int64(vk.FORMAT_R16G16_SFLOAT), int64(C.VK_FORMAT_R16G16_SFLOAT)},
		{"FORMAT_R16G16B16_UNORM", int64(vk.FORMAT_R16G16B16_UNORM), int64(C.VK_FORMAT_R16G16B16_UNORM)},
		{"FORMAT_R16G16B16_SNORM", int64(vk.FORMAT_R16G16B16_SNORM), int64(C.VK_FORMAT_R16G16B16_SNORM)},
		{"FORMAT_R16G16B16_USCALED", int64(vk.FORMAT_R16G16B16_USCALED), int64(C.VK_FORMAT_R16G16B16_USCALED)},
		{"FORMAT_R16G16B16_SSCALED", int64(vk.FORMAT_R16G16B16_SSCALED), int64(C.VK_FORMAT_R16G16B16_SSCALED)},
		{"FORMAT_R16G16B16_UINT", int64(vk.FORMAT_R16G16B16_UINT), int64(C.VK_FORMAT_R16G16B16_UINT)},
		{"FORMAT_R16G16B16_SINT", int64(vk.FORMAT_R16G16B16_SINT), int64(C.VK_FORMAT_R16G16B16_SINT)},
		{"FORMAT_R16G16B16_SFLOAT", int64(vk.FORMAT_R16G16B16_SFLOAT), int64(C.VK_FORMAT_R16G16B16_SFLOAT)},
		{"FORMAT_R16G16B16A16_UNORM", int64(vk.FORMAT_R16G16B16A16_UNORM), int64(C.VK_FORMAT_R16G16B16A16_UNORM)},
		{"FORMAT_R16G16B16A16_SNORM", int64(vk.FORMAT_R16G16B16A16_SNORM), int64(C.VK_FORMAT_R16G16B16A16_SNORM)},
		{"FORMAT_R16G16B16A16_USCALED", int64(vk.FORMAT_R16G16B16A16_USCALED), int64(C.VK_FORMAT_R16G16B16A16_USCALED)},
		{"FORMAT_R16G16B16A16_SSCALED", int64(vk.FORMAT_R16G16B16A16_SSCALED), int64(C.VK_FORMAT_R16G16B16A16_SSCALED)},
		{"FORMAT_R16G16B16A16_UINT", int64(vk.FORMAT_R16G16B16A16_UINT), int64(C.VK_FORMAT_R16G16B16A16_UINT)},
		{"FORMAT_R16G16B16A16_SINT", int64(vk.FORMAT_R16G16B16A16_SINT), int64(C.VK_FORMAT_R16G16B16A16_SINT)},
		{"FORMAT_R16G16B16A16_SFLOAT", int64(vk.FORMAT_R16G16B16A16_SFLOAT), int64(C.VK_FORMAT_R16G16B16A16_SFLOAT)},
		{"FORMAT_R32_UINT", int64(vk.FORMAT_R32_UINT), int64(C.VK_FORMAT_R32_UINT)},
		{"FORMAT_R32_SINT", int64(vk.FORMAT_R32_SINT), int64(C.VK_FORMAT_R32_SINT)},
		{"FORMAT_R32_SFLOAT", int64(vk.FORMAT_R32_SFLOAT), int64(C.VK_FORMAT_R32_SFLOAT)},
		{"FORMAT_R32G32_UINT", int64(vk.FORMAT_R32G32_UINT), int64(C.VK_FORMAT_R32G32_UINT)},
		{"FORMAT_R32G32_SINT", int64(vk.FORMAT_R32G32_SINT), int64(C.VK_FORMAT_R32G32_SINT)},
		{"FORMAT_R32G32_SFLOAT", int64(vk.FORMAT_R32G32_SFLOAT), int64(C.VK_FORMAT_R32G32_SFLOAT)},
		{"FORMAT_R32G32B32_UINT", int64(vk.FORMAT_R32G32B32_UINT), int64(C.VK_FORMAT_R32G32B32_UINT)},
		{"FORMAT_R32G32B32_SINT", int64(vk.FORMAT_R32G32B32_SINT), int64(C.VK_FORMAT_R32G32B32_SINT)},
		{"FORMAT_R32G32B32_SFLOAT", int64(vk.FORMAT_R32G32B32_SFLOAT), int64(C.VK_FORMAT_R32G32B32_SFLOAT)},
		{"FORMAT_R32G32B32A32_UINT", int64(vk.FORMAT_R32G32B32A32_UINT), int64(C.VK_FORMAT_R32G32B32A32_UINT)},
		{"FORMAT_R32G32B32A32_SINT", int64(vk.FORMAT_R32G32B32A32_SINT), int64(C.VK_FORMAT_R32G32B32A32_SINT)},
		{"FORMAT_R32G32B32A32_SFLOAT", int64(vk.FORMAT_R32G32B32A32_SFLOAT), int64(C.VK_FORMAT_R32G32B32A32_SFLOAT)},
		{"FORMAT_R64_UINT", int64(vk.FORMAT_R64_UINT), int64(C.VK_FORMAT_R64_UINT)},
		{"FORMAT_R64_SINT", int64(vk.FORMAT_R64_SINT), int64(C.VK_FORMAT_R64_SINT)},
		{"FORMAT_R64_SFLOAT", int64(vk.FORMAT_R64_SFLOAT), int64(C.VK_FORMAT_R64_SFLOAT)},
		{"FORMAT_R64G64_UINT", int64(vk.FORMAT_R64G64_UINT), int64(C.VK_FORMAT_R64G64_UINT)},
		{"FORMAT_R64G64_SINT", int64(vk.FORMAT_R64G64_SINT), int64(C.VK_FORMAT_R64G64_SINT)},
		{"FORMAT_R64G64_SFLOAT", int64(vk.FORMAT_R64G64_SFLOAT), int64(C.VK_FORMAT_R64G64_SFLOAT)},
		{"FORMAT_R64G64B64_UINT", int64(vk.FORMAT_R64G64B64_UINT), int64(C.VK_FORMAT_R64G64B64_UINT)},
		{"FORMAT_R64G64B64_SINT", int64(vk.FORMAT_R64G64B64_SINT), int64(C.VK_FORMAT_R64G64B64_SINT)},
		{"FORMAT_R64G64B64_SFLOAT", int64(vk.FORMAT_R64G64B64_SFLOAT), int64(C.VK_FORMAT_R64G64B64_SFLOAT)},
		{"FORMAT_R64G64B64A64_UINT", int64(vk.FORMAT_R64G64B64A64_UINT), int64(C.VK_FORMAT_R64G64B64A64_UINT)},
		{"FORMAT_R64G64B64A64_SINT", int64(vk.FORMAT_R64G64B64A64_SINT), int64(C.VK_FORMAT_R64G64B64A64_SINT)},
		{"FORMAT_R64G64B64A64_SFLOAT", int64(vk.FORMAT_R64G64B64A64_SFLOAT), int64(C.VK_FORMAT_R64G64B64A64_SFLOAT)},
		{"FORMAT_B10G11R11_UFLOAT_PACK32", int64(vk.FORMAT_B10G11R11_UFLOAT_PACK32), int64(C.VK_FORMAT_B10G11R11_UFLOAT_PACK32)},
		{"FORMAT_E5B9G9R9_UFLOAT_PACK32", int64(vk.FORMAT_E5B9G9R9_UFLOAT_PACK32), int64(C.VK_FORMAT_E5B9G9R9_UFLOAT_PACK32)},
		{"FORMAT_D16_UNORM", int64(vk.FORMAT_D16_UNORM), int64(C.VK_FORMAT_D16_UNORM)},
		{"FORMAT_X8_D24_UNORM_PACK32", int64(vk.FORMAT_X8_D24_UNORM_PACK32), int64(C.VK_FORMAT_X8_D24_UNORM_PACK32)},
		{"FORMAT_D32_SFLOAT", int64(vk.FORMAT_D32_SFLOAT), int64(C.VK_FORMAT_D32_SFLOAT)},
		{"FORMAT_S8_UINT", int64(vk.FORMAT_S8_UINT), int64(C.VK_FORMAT_S8_UINT)},
		{"FORMAT_D16_UNORM_S8_UINT", int64(vk.FORMAT_D16_UNORM_S8_UINT), int64(C.VK_FORMAT_D16_UNORM_S8_UINT)},
		{"FORMAT_D24_UNORM_S8_UINT", int64(vk.FORMAT_D24_UNORM_S8_UINT), int64(C.VK_FORMAT_D24_UNORM_S8_UINT)},
		{"FORMAT_D32_SFLOAT_S8_UINT", int64(vk.FORMAT_D32_SFLOAT_S8_UINT), int64(C.VK_FORMAT_D32_SFLOAT_S8_UINT)},
		{"FORMAT_BC1_RGB_UNORM_BLOCK", int64(vk.FORMAT_BC1_RGB_UNORM_BLOCK), int64(C.VK_FORMAT_BC1_RGB_UNORM_BLOCK)},
		{"FORMAT_BC1_RGB_SRGB_BLOCK", int64(vk.FORMAT_BC1_RGB_SRGB_BLOCK), int64(C.VK_FORMAT_BC1_RGB_SRGB_BLOCK)},
		{"FORMAT_BC1_RGBA_UNORM_BLOCK", int64(vk.FORMAT_BC1_RGBA_UNORM_BLOCK), int64(C.VK_FORMAT_BC1_RGBA_UNORM_BLOCK)},
		{"FORMAT_BC1_RGBA_SRGB_BLOCK", int64(vk.FORMAT_BC1_RGBA_SRGB_BLOCK), int64(C.VK_FORMAT_BC1_RGBA_SRGB_BLOCK)},
		{"FORMAT_BC2_UNORM_BLOCK", int64(vk.FORMAT_BC2_UNORM_BLOCK), int64(C.VK_FORMAT_BC2_UNORM_BLOCK)},
		{"FORMAT_BC2_SRGB_BLOCK", int64(vk.FORMAT_BC2_SRGB_BLOCK), int64(C.VK_FORMAT_BC2_SRGB_BLOCK)},
		{"FORMAT_BC3_UNORM_BLOCK", int64(vk.FORMAT_BC3_UNORM_BLOCK), int64(C.VK_FORMAT_BC3_UNORM_BLOCK)},
		{"FORMAT_BC3_SRGB_BLOCK", int64(vk.FORMAT_BC3_SRGB_BLOCK), int64(C.VK_FORMAT_BC3_SRGB_BLOCK)},
		{"FORMAT_BC4_UNORM_BLOCK", int64(vk.FORMAT_BC4_UNORM_BLOCK), int64(C.VK_FORMAT_BC4_UNORM_BLOCK)},
		{"FORMAT_BC4_SNORM_BLOCK", int64(vk.FORMAT_BC4_SNORM_BLOCK), int64(C.VK_FORMAT_BC4_SNORM_BLOCK)},
		{"FORMAT_BC5_UNORM_BLOCK", int64(vk.FORMAT_BC5_UNORM_BLOCK), int64(C.VK_FORMAT_BC5_UNORM_BLOCK)},
		{"FORMAT_BC5_SNORM_BLOCK", int64(vk.FORMAT_BC5_SNORM_BLOCK), int64(C.VK_FORMAT_BC5_SNORM_BLOCK)},
		{"FORMAT_BC6H_UFLOAT_BLOCK", int64(vk.FORMAT_BC6H_UFLOAT_BLOCK), int64(C.VK_FORMAT_BC6H_UFLOAT_BLOCK)},
		{"FORMAT_BC6H_SFLOAT_BLOCK", int64(vk.FORMAT_BC6H_SFLOAT_BLOCK), int64(C.VK_FORMAT_BC6H_SFLOAT_BLOCK)},
		{"FORMAT_BC7_UNORM_BLOCK", int64(vk.FORMAT_BC7_UNORM_BLOCK), int64(C.VK_FORMAT_BC7_UNORM_BLOCK)},
		{"FORMAT_BC7_SRGB_BLOCK", int64(vk.FORMAT_BC7_SRGB_BLOCK), int64(C.VK_FORMAT_BC7_SRGB_BLOCK)},
		{"FORMAT_ETC2_R8G8B8_UNORM_BLOCK", int64(vk.FORMAT_ETC2_R8G8B8_UNORM_BLOCK), int64(C.VK_FORMAT_ETC2_R8G8B8_UNORM_BLOCK)},
		{"FORMAT_ETC2_R8G8B8_SRGB_BLOCK", int64(vk.FORMAT_ETC2_R8G8B8_SRGB_BLOCK), int64(C.VK_FORMAT_ETC2_R8G8B8_SRGB_BLOCK)},
		{"FORMAT_ETC2_R8G8B8A1_UNORM_BLOCK", int64(vk.FORMAT_ETC2_R8G8B8A1_UNORM_BLOCK), int64(C.VK_FORMAT_ETC2_R8G8B8A1_UNORM_BLOCK)},
		{"FORMAT_ETC2_R8G8B8A1_SRGB_BLOCK", int64(vk.FORMAT_ETC2_R8G8B8A1_SRGB_BLOCK), int64(C.VK_FORMAT_ETC2_R8G8B8A1_SRGB_BLOCK)},
		{"FORMAT_ETC2_R8G8B8A8_UNORM_BLOCK", int64(vk.FORMAT_ETC2_R8G8B8A8_UNORM_BLOCK), int64(C.VK_FORMAT_ETC2_R8G8B8A8_UNORM_BLOCK)},
		{"FORMAT_ETC2_R8G8B8A8_SRGB_BLOCK", int64(vk.FORMAT_ETC2_R8G8B8A8_SRGB_BLOCK), int64(C.VK_FORMAT_ETC2_R8G8B8A8_SRGB_BLOCK)},
		{"FORMAT_EAC_R11_UNORM_BLOCK", int64(vk.FORMAT_EAC_R11_UNORM_BLOCK), int64(C.VK_FORMAT_EAC_R11_UNORM_BLOCK)},
		{"FORMAT_EAC_R11_SNORM_BLOCK", int64(vk.FORMAT_EAC_R11_SNORM_BLOCK), int64(C.VK_FORMAT_EAC_R11_SNORM_BLOCK)},
		{"FORMAT_EAC_R11G11_UNORM_BLOCK", int64(vk.FORMAT_EAC_R11G11_UNORM_BLOCK), int64(C.VK_FORMAT_EAC_R11G11_UNORM_BLOCK)},
		{"FORMAT_EAC_R11G11_SNORM_BLOCK", int64(vk.FORMAT_EAC_R11G11_SNORM_BLOCK), int64(C.VK_FORMAT_EAC_R11G11_SNORM_BLOCK)},
		{"FORMAT_ASTC_4x4_UNORM_BLOCK", int64(vk.FORMAT_ASTC_4x4_UNORM_BLOCK), int64(C.VK_FORMAT_ASTC_4x4_UNORM_BLOCK)},
		{"FORMAT_ASTC_4x4_SRGB_BLOCK", int64(vk.FORMAT_ASTC_4x4_SRGB_BLOCK), int64(C.VK_FORMAT_ASTC_4x4_SRGB_BLOCK)},
		{"FORMAT_ASTC_5x4_UNORM_BLOCK", int64(vk.FORMAT_ASTC_5x4_UNORM_BLOCK), int64(C.VK_FORMAT_ASTC_5x4_UNORM_BLOCK)},
		{"FORMAT_ASTC_5x4_SRGB_BLOCK", int64(vk.FORMAT_ASTC_5x4_SRGB_BLOCK), int64(C.VK_FORMAT_ASTC_5x4_SRGB_BLOCK)},
		{"FORMAT_ASTC_5x5_UNORM_BLOCK", int64(vk.FORMAT_ASTC_5x5_UNORM_BLOCK), int64(C.VK_FORMAT_ASTC_5x5_UNORM_BLOCK)},
		{"FORMAT_ASTC_5x5_SRGB_BLOCK", int64(vk.FORMAT_ASTC_5x5_SRGB_BLOCK), int64(C.VK_FORMAT_ASTC_5x5_SRGB_BLOCK)},
		{"FORMAT_ASTC_6x5_UNORM_BLOCK", int64(vk.FORMAT_ASTC_6x5_UNORM_BLOCK), int64(C.VK_FORMAT_ASTC_6x5_UNORM_BLOCK)},
		{"FORMAT_ASTC_6x5_SRGB_BLOCK", int64(vk.FORMAT_ASTC_6x5_SRGB_BLOCK), int64(C.VK_FORMAT_ASTC_6x5_SRGB_BLOCK)},
		{"FORMAT_ASTC_6x6_UNORM_BLOCK", int64(vk.FORMAT_ASTC_6x6_UNORM_BLOCK), int64(C.VK_FORMAT_ASTC_6x6_UNORM_BLOCK)},
		{"FORMAT_ASTC_6x6_SRGB_BLOCK", int64(vk.FORMAT_ASTC_6x6_SRGB_BLOCK), int64(C.VK_FORMAT_ASTC_6x6_SRGB_BLOCK)},
		{"FORMAT_ASTC_8x5_UNORM_BLOCK", int64(vk.FORMAT_ASTC_8x5_UNORM_BLOCK), int64(C.VK_FORMAT_ASTC_8x5_UNORM_BLOCK)},
		{"FORMAT_ASTC_8x5_SRGB_BLOCK", int64(vk.FORMAT_ASTC_8x5_SRGB_BLOCK), int64(C.VK_FORMAT_ASTC_8x5_SRGB_BLOCK)},
		{"FORMAT_ASTC_8x6_UNORM_BLOCK", int64(vk.FORMAT_ASTC_8x6_UNORM_BLOCK), int64(C.VK_FORMAT_ASTC_8x6_UNORM_BLOCK)},
		{"FORMAT_ASTC_8x6_SRGB_BLOCK", int64(vk.FORMAT_ASTC_8x6_SRGB_BLOCK), int64(C.VK_FORMAT_ASTC_8x6_SRGB_BLOCK)},
		{"FORMAT_ASTC_8x8_UNORM_BLOCK", int64(vk.FORMAT_ASTC_8x8_UNORM_BLOCK), int64(C.VK_FORMAT_ASTC_8x8_UNORM_BLOCK)},
		{"FORMAT_ASTC_8x8_SRGB_BLOCK", int64(vk.FORMAT_ASTC_8x8_SRGB_BLOCK), int64(C.VK_FORMAT_ASTC_8x8_SRGB_BLOCK)},
		{"FORMAT_ASTC_10x5_UNORM_BLOCK", int64(vk.FORMAT_ASTC_10x5_UNORM_BLOCK), int64(C.VK_FORMAT_ASTC_10x5_UNORM_BLOCK)},
		{"FORMAT_ASTC_10x5_SRGB_BLOCK", int64(vk.FORMAT_ASTC_10x5_SRGB_BLOCK), int64(C.VK_FORMAT_ASTC_10x5_SRGB_BLOCK)},
		{"FORMAT_ASTC_10x6_UNORM_BLOCK", int64(vk.FORMAT_ASTC_10x6_UNORM_BLOCK), int64(C.VK_FORMAT_ASTC_10x6_UNORM_BLOCK)},
		{"FORMAT_ASTC_10x6_SRGB_BLOCK", int64(vk.FORMAT_ASTC_10x6_SRGB_BLOCK), int64(C.VK_FORMAT_ASTC_10x6_SRGB_BLOCK)},
		{"FORMAT_ASTC_10x8_UNORM_BLOCK", int64(vk.FORMAT_ASTC_10x8_UNORM_BLOCK), int64(C.VK_FORMAT_ASTC_10x8_UNORM_BLOCK)},
		{"FORMAT_ASTC_10x8_SRGB_BLOCK", int64(vk.FORMAT_ASTC_10x8_SRGB_BLOCK), int64(C.VK_FORMAT_ASTC_10x8_SRGB_BLOCK)},
		{"FORMAT_ASTC_10x10_UNORM_BLOCK", int64(vk.FORMAT_ASTC_10x10_UNORM_BLOCK), int64(C.VK_FORMAT_ASTC_10x10_UNORM_BLOCK)},
		{"FORMAT_ASTC_10x10_SRGB_BLOCK", int64(vk.FORMAT_ASTC_10x10_SRGB_BLOCK), int64(C.VK_FORMAT_ASTC_10x10_SRGB_BLOCK)},
		{"FORMAT_ASTC_12x10_UNORM_BLOCK", int64(vk.FORMAT_ASTC_12x10_UNORM_BLOCK), int64(C.VK_FORMAT_ASTC_12x10_UNORM_BLOCK)},
		{"FORMAT_ASTC_12x10_SRGB_BLOCK", int64(vk.FORMAT_ASTC_12x10_SRGB_BLOCK), int64(C.VK_FORMAT_ASTC_12x10_SRGB_BLOCK)},
		{"FORMAT_ASTC_12x12_UNORM_BLOCK", int64(vk.FORMAT_ASTC_12x12_UNORM_BLOCK), int64(C.VK_FORMAT_ASTC_12x12_UNORM_BLOCK)},
		{"FORMAT_ASTC_12x12_SRGB_BLOCK", int64(vk.FORMAT_ASTC_12x12_SRGB_BLOCK), int64(C.VK_FORMAT_ASTC_12x12_SRGB_BLOCK)},
		{"QUEUE_GRAPHICS_BIT", int64(vk.QUEUE_GRAPHICS_BIT), int64(C.VK_QUEUE_GRAPHICS_BIT)},
		{"QUEUE_COMPUTE_BIT", int64(vk.QUEUE_COMPUTE_BIT), int64(C.VK_QUEUE_COMPUTE_BIT)},
		{"QUEUE_TRANSFER_BIT", int64(vk.QUEUE_TRANSFER_BIT), int64(C.VK_QUEUE_TRANSFER_BIT)},
		{"QUEUE_SPARSE_BINDING_BIT", int64(vk.QUEUE_SPARSE_BINDING_BIT), int64(C.VK_QUEUE_SPARSE_BINDING_BIT)},
		{"MEMORY_PROPERTY_DEVICE_LOCAL_BIT", int64(vk.MEMORY_PROPERTY_DEVICE_LOCAL_BIT), int64(C.VK_MEMORY_PROPERTY_DEVICE_LOCAL_BIT)},
		{"MEMORY_PROPERTY_HOST_VISIBLE_BIT", int64(vk.MEMORY_PROPERTY_HOST_VISIBLE_BIT), int64(C.VK_MEMORY_PROPERTY_HOST_VISIBLE_BIT)},
		{"MEMORY_PROPERTY_HOST_COHERENT_BIT", int64(vk.MEMORY_PROPERTY_HOST_COHERENT_BIT), int64(C.VK_MEMORY_PROPERTY_HOST_COHERENT_BIT)},
		{"MEMORY_PROPERTY_HOST_CACHED_BIT", int64(vk.MEMORY_PROPERTY_HOST_CACHED_BIT), int64(C.VK_MEMORY_PROPERTY_HOST_CACHED_BIT)},
		{"MEMORY_PROPERTY_LAZILY_ALLOCATED_BIT", int64(vk.MEMORY_PROPERTY_LAZILY_ALLOCATED_BIT), int64(C.VK_MEMORY_PROPERTY_LAZILY_ALLOCATED_BIT)},
		{"MEMORY_HEAP_DEVICE_LOCAL_BIT", int64(vk.MEMORY_HEAP_DEVICE_LOCAL_BIT), int64(C.VK_MEMORY_HEAP_DEVICE_LOCAL_BIT)},
		{"FORMAT_FEATURE_SAMPLED_IMAGE_BIT", int64(vk.FORMAT_FEATURE_SAMPLED_IMAGE_BIT), int64(C.VK_FORMAT_FEATURE_SAMPLED_IMAGE_BIT)},
		{"FORMAT_FEATURE_STORAGE_IMAGE_BIT", int64(vk.FORMAT_FEATURE_STORAGE_IMAGE_BIT), int64(C.VK_FORMAT_FEATURE_STORAGE_IMAGE_BIT)},
		{"FORMAT_FEATURE_STORAGE_IMAGE_ATOMIC_BIT", int64(vk.FORMAT_FEATURE_STORAGE_IMAGE_ATOMIC_BIT), int64(C.VK_FORMAT_FEATURE_STORAGE_IMAGE_ATOMIC_BIT)},
		{"FORMAT_FEATURE_UNIFORM_TEXEL_BUFFER_BIT", int64(vk.FORMAT_FEATURE_UNIFORM_TEXEL_BUFFER_BIT), int64(C.VK_FORMAT_FEATURE_UNIFORM_TEXEL_BUFFER_BIT)},
		{"FORMAT_FEATURE_STORAGE_TEXEL_BUFFER_BIT", int64(vk.FORMAT_FEATURE_STORAGE_TEXEL_BUFFER_BIT), int64(C.VK_FORMAT_FEATURE_STORAGE_TEXEL_BUFFER_BIT)},
		{"FORMAT_FEATURE_STORAGE_TEXEL_BUFFER_ATOMIC_BIT", int64(vk.FORMAT_FEATURE_STORAGE_TEXEL_BUFFER_ATOMIC_BIT), int64(C.VK_FORMAT_FEATURE_STORAGE_TEXEL_BUFFER_ATOMIC_BIT)},
		{"FORMAT_FEATURE_VERTEX_BUFFER_BIT", int64(vk.FORMAT_FEATURE_VERTEX_BUFFER_BIT), int64(C.VK_FORMAT_FEATURE_VERTEX_BUFFER_BIT)},
		{"FORMAT_FEATURE_COLOR_ATTACHMENT_BIT", int64(vk.FORMAT_FEATURE_COLOR_ATTACHMENT_BIT), int64(C.VK_FORMAT_FEATURE_COLOR_ATTACHMENT_BIT)},
		{"FORMAT_FEATURE_COLOR_ATTACHMENT_BLEND_BIT", int64(vk.FORMAT_FEATURE_COLOR_ATTACHMENT_BLEND_BIT), int64(C.VK_FORMAT_FEATURE_COLOR_ATTACHMENT_BLEND_BIT)},
		{"FORMAT_FEATURE_DEPTH_STENCIL_ATTACHMENT_BIT", int64(vk.FORMAT_FEATURE_DEPTH_STENCIL_ATTACHMENT_BIT), int64(C.VK_FORMAT_FEATURE_DEPTH_STENCIL_ATTACHMENT_BIT)},
		{"FORMAT_FEATURE_BLIT_SRC_BIT", int64(vk.FORMAT_FEATURE_BLIT_SRC_BIT), int64(C.VK_FORMAT_FEATURE_BLIT_SRC_BIT)},
		{"FORMAT_FEATURE_BLIT_DST_BIT", int64(vk.FORMAT_FEATURE_BLIT_DST_BIT), int64(C.VK_FORMAT_FEATURE_BLIT_DST_BIT)},
		{"FORMAT_FEATURE_SAMPLED_IMAGE_FILTER_LINEAR_BIT", int64(vk.FORMAT_FEATURE_SAMPLED_IMAGE_FILTER_LINEAR_BIT), int64(C.VK_FORMAT_FEATURE_SAMPLED_IMAGE_FILTER_LINEAR_BIT)},
		{"BUFFER_CREATE_SPARSE_BINDING_BIT", int64(vk.BUFFER_CREATE_SPARSE_BINDING_BIT), int64(C.VK_BUFFER_CREATE_SPARSE_BINDING_BIT)},
		{"BUFFER_CREATE_SPARSE_RESIDENCY_BIT", int64(vk.BUFFER_CREATE_SPARSE_RESIDENCY_BIT), int64(C.VK_BUFFER_CREATE_SPARSE_RESIDENCY_BIT)},
		{"BUFFER_CREATE_SPARSE_ALIASED_BIT", int64(vk.BUFFER_CREATE_SPARSE_ALIASED_BIT), int64(C.VK_BUFFER_CREATE_SPARSE_ALIASED_BIT)},
		{"BUFFER_USAGE_TRANSFER_SRC_BIT", int64(vk.BUFFER_USAGE_TRANSFER_SRC_BIT), int64(C.VK_BUFFER_USAGE_TRANSFER_SRC_BIT)},
		{"BUFFER_USAGE_TRANSFER_DST_BIT", int64(vk.BUFFER_USAGE_TRANSFER_DST_BIT), int64(C.VK_BUFFER_USAGE_TRANSFER_DST_BIT)},
		{"BUFFER_USAGE_UNIFORM_TEXEL_BUFFER_BIT", int64(vk.BUFFER_USAGE_UNIFORM_TEXEL_BUFFER_BIT), int64(C.VK_BUFFER_USAGE_UNIFORM_TEXEL_BUFFER_BIT)},
		{"BUFFER_USAGE_STORAGE_TEXEL_BUFFER_BIT", int64(vk.BUFFER_USAGE_STORAGE_TEXEL_BUFFER_BIT), int64(C.VK_BUFFER_USAGE_STORAGE_TEXEL_BUFFER_BIT)},
		{"BUFFER_USAGE_UNIFORM_BUFFER_BIT", int64(vk.BUFFER_USAGE_UNIFORM_BUFFER_BIT), int64(C.VK_BUFFER_USAGE_UNIFORM_BUFFER_BIT)},
		{"BUFFER_USAGE_STORAGE_BUFFER_BIT", int64(vk.BUFFER_USAGE_STORAGE_BUFFER_BIT), int64(C.VK_BUFFER_USAGE_STORAGE_BUFFER_BIT)},
		{"BUFFER_USAGE_INDEX_BUFFER_BIT", int64(vk.BUFFER_USAGE_INDEX_BUFFER_BIT), int64(C.VK_BUFFER_USAGE_INDEX_BUFFER_BIT)},
		{"BUFFER_USAGE_VERTEX_BUFFER_BIT", int64(vk.BUFFER_USAGE_VERTEX_BUFFER_BIT), int64(C.VK_BUFFER_USAGE_VERTEX_BUFFER_BIT)},
		{"BUFFER_USAGE_INDIRECT_BUFFER_BIT", int64(vk.BUFFER_USAGE_INDIRECT_BUFFER_BIT), int64(C.VK_BUFFER_USAGE_INDIRECT_BUFFER_BIT)},
		{"IMAGE_CREATE_SPARSE_BINDING_BIT", int64(vk.IMAGE_CREATE_SPARSE_BINDING_BIT), int64(C.VK_IMAGE_CREATE_SPARSE_BINDING_BIT)},
		{"IMAGE_CREATE_SPARSE_RESIDENCY_BIT", int64(vk.IMAGE_CREATE_SPARSE_RESIDENCY_BIT), int64(C.VK_IMAGE_CREATE_SPARSE_RESIDENCY_BIT)},
		{"IMAGE_CREATE_SPARSE_ALIASED_BIT", int64(vk.IMAGE_CREATE_SPARSE_ALIASED_BIT), int64(C.VK_IMAGE_CREATE_SPARSE_ALIASED_BIT)},
		{"IMAGE_CREATE_MUTABLE_FORMAT_BIT", int64(vk.IMAGE_CREATE_MUTABLE_FORMAT_BIT), int64(C.VK_IMAGE_CREATE_MUTABLE_FORMAT_BIT)},
		{"IMAGE_CREATE_CUBE_COMPATIBLE_BIT", int64(vk.IMAGE_CREATE_CUBE_COMPATIBLE_BIT), int64(C.VK_IMAGE_CREATE_CUBE_COMPATIBLE_BIT)},
		{"IMAGE_USAGE_TRANSFER_SRC_BIT", int64(vk.IMAGE_USAGE_TRANSFER_SRC_BIT), int64(C.VK_IMAGE_USAGE_TRANSFER_SRC_BIT)},
		{"IMAGE_USAGE_TRANSFER_DST_BIT", int64(vk.IMAGE_USAGE_TRANSFER_DST_BIT), int64(C.VK_IMAGE_USAGE_TRANSFER_DST_BIT)},
		{"IMAGE_USAGE_SAMPLED_BIT", int64(vk.IMAGE_USAGE_SAMPLED_BIT), int64(C.VK_IMAGE_USAGE_SAMPLED_BIT)},
		{"IMAGE_USAGE_STORAGE_BIT", int64(vk.IMAGE_USAGE_STORAGE_BIT), int64(C.VK_IMAGE_USAGE_STORAGE_BIT)},
		{"IMAGE_USAGE_COLOR_ATTACHMENT_BIT", int64(vk.IMAGE_USAGE_COLOR_ATTACHMENT_BIT), int64(C.VK_IMAGE_USAGE_COLOR_ATTACHMENT_BIT)},
		{"IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT", int64(vk.IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT), int64(C.VK_IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT)},
		{"IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT", int64(vk.IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT), int64(C.VK_IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT)},
		{"IMAGE_USAGE_INPUT_ATTACHMENT_BIT", int64(vk.IMAGE_USAGE_INPUT_ATTACHMENT_BIT), int64(C.VK_IMAGE_USAGE_INPUT_ATTACHMENT_BIT)},
		{"SAMPLE_COUNT_1_BIT", int64(vk.SAMPLE_COUNT_1_BIT), int64(C.VK_SAMPLE_COUNT_1_BIT)},
		{"SAMPLE_COUNT_2_BIT", int64(vk.SAMPLE_COUNT_2_BIT), int64(C.VK_SAMPLE_COUNT_2_BIT)},
		{"SAMPLE_COUNT_4_BIT", int64(vk.SAMPLE_COUNT_4_BIT), int64(C.VK_SAMPLE_COUNT_4_BIT)},
		{"SAMPLE_COUNT_8_BIT", int64(vk.SAMPLE_COUNT_8_BIT), int64(C.VK_SAMPLE_COUNT_8_BIT)},
		{"SAMPLE_COUNT_16_BIT", int64(vk.SAMPLE_COUNT_16_BIT), int64(C.VK_SAMPLE_COUNT_16_BIT)},
		{"SAMPLE_COUNT_32_BIT", int64(vk.SAMPLE_COUNT_32_BIT), int64(C.VK_SAMPLE_COUNT_32_BIT)},
		{"SAMPLE_COUNT_64_BIT", int64(vk.SAMPLE_COUNT_64_BIT), int64(C.VK_SAMPLE_COUNT_64_BIT)},
		{"IMAGE_ASPECT_COLOR_BIT", int64(vk.IMAGE_ASPECT_COLOR_BIT), int64(C.VK_IMAGE_ASPECT_COLOR_BIT)},
		{"IMAGE_ASPECT_DEPTH_BIT", int64(vk.IMAGE_ASPECT_DEPTH_BIT), int64(C.VK_IMAGE_ASPECT_DEPTH_BIT)},
		{"IMAGE_ASPECT_STENCIL_BIT", int64(vk.IMAGE_ASPECT_STENCIL_BIT), int64(C.VK_IMAGE_ASPECT_STENCIL_BIT)},
		{"IMAGE_ASPECT_METADATA_BIT", int64(vk.IMAGE_ASPECT_METADATA_BIT), int64(C.VK_IMAGE_ASPECT_METADATA_BIT)},
		{"COMMAND_POOL_CREATE_TRANSIENT_BIT", int64(vk.COMMAND_POOL_CREATE_TRANSIENT_BIT), int64(C.VK_COMMAND_POOL_CREATE_TRANSIENT_BIT)},
		{"COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT", int64(vk.COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT), int64(C.VK_COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT)},
		{"COMMAND_POOL_RESET_RELEASE_RESOURCES_BIT", int64(vk.COMMAND_POOL_RESET_RELEASE_RESOURCES_BIT), int64(C.VK_COMMAND_POOL_RESET_RELEASE_RESOURCES_BIT)},
		{"COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT", int64(vk.COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT), int64(C.VK_COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT)},
		{"COMMAND_BUFFER_USAGE_RENDER_PASS_CONTINUE_BIT", int64(vk.COMMAND_BUFFER_USAGE_RENDER_PASS_CONTINUE_BIT), int64(C.VK_COMMAND_BUFFER_USAGE_RENDER_PASS_CONTINUE_BIT)},
		{"COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT", int64(vk.COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT), int64(C.VK_COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT)},
		{"COMMAND_BUFFER_RESET_RELEASE_RESOURCES_BIT", int64(vk.COMMAND_BUFFER_RESET_RELEASE_RESOURCES_BIT), int64(C.VK_COMMAND_BUFFER_RESET_RELEASE_RESOURCES_BIT)},
		{"QUERY_CONTROL_PRECISE_BIT", int64(vk.QUERY_CONTROL_PRECISE_BIT), int64(C.VK_QUERY_CONTROL_PRECISE_BIT)},
		{"QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_VERTICES_BIT", int64(vk.QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_VERTICES_BIT), int64(C.VK_QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_VERTICES_BIT)},
		{"QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_PRIMITIVES_BIT", int64(vk.QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_PRIMITIVES_BIT), int64(C.VK_QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_PRIMITIVES_BIT)},
		{"QUERY_PIPELINE_STATISTIC_VERTEX_SHADER_INVOCATIONS_BIT", int64(vk.QUERY_PIPELINE_STATISTIC_VERTEX_SHADER_INVOCATIONS_BIT), int64(C.VK_QUERY_PIPELINE_STATISTIC_VERTEX_SHADER_INVOCATIONS_BIT)},
		{"QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_INVOCATIONS_BIT", int64(vk.QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_INVOCATIONS_BIT), int64(C.VK_QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_INVOCATIONS_BIT)},
		{"QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_PRIMITIVES_BIT", int64(vk.QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_PRIMITIVES_BIT), int64(C.VK_QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_PRIMITIVES_BIT)},
		{"QUERY_PIPELINE_STATISTIC_CLIPPING_INVOCATIONS_BIT", int64(vk.QUERY_PIPELINE_STATISTIC_CLIPPING_INVOCATIONS_BIT), int64(C.VK_QUERY_PIPELINE_STATISTIC_CLIPPING_INVOCATIONS_BIT)},
		{"QUERY_PIPELINE_STATISTIC_CLIPPING_PRIMITIVES_BIT", int64(vk.QUERY_PIPELINE_STATISTIC_CLIPPING_PRIMITIVES_BIT), int64(C.VK_QUERY_PIPELINE_STATISTIC_CLIPPING_PRIMITIVES_BIT)},
		{"QUERY_PIPELINE_STATISTIC_FRAGMENT_SHADER_INVOCATIONS_BIT", int64(vk.QUERY_PIPELINE_STATISTIC_FRAGMENT_SHADER_INVOCATIONS_BIT), int64(C.VK_QUERY_PIPELINE_STATISTIC_FRAGMENT_SHADER_INVOCATIONS_BIT)},
		{"QUERY_PIPELINE_STATISTIC_TESSELLATION_CONTROL_SHADER_PATCHES_BIT", int64(vk.QUERY_PIPELINE_STATISTIC_TESSELLATION_CONTROL_SHADER_PATCHES_BIT), int64(C.VK_QUERY_PIPELINE_STATISTIC_TESSELLATION_CONTROL_SHADER_PATCHES_BIT)},
		{"QUERY_PIPELINE_STATISTIC_TESSELLATION_EVALUATION_SHADER_INVOCATIONS_BIT", int64(vk.QUERY_PIPELINE_STATISTIC_TESSELLATION_EVALUATION_SHADER_INVOCATIONS_BIT), int64(C.VK_QUERY_PIPELINE_STATISTIC_TESSELLATION_EVALUATION_SHADER_INVOCATIONS_BIT)},
		{"QUERY_PIPELINE_STATISTIC_COMPUTE_SHADER_INVOCATIONS_BIT", int64(vk.QUERY_PIPELINE_STATISTIC_COMPUTE_SHADER_INVOCATIONS_BIT), int64(C.VK_QUERY_PIPELINE_STATISTIC_COMPUTE_SHADER_INVOCATIONS_BIT)},
		{"FENCE_CREATE_SIGNALED_BIT", int64(vk.FENCE_CREATE_SIGNALED_BIT), int64(C.VK_FENCE_CREATE_SIGNALED_BIT)},
		{"PIPELINE_STAGE_TOP_OF_PIPE_BIT", int64(vk.PIPELINE_STAGE_TOP_OF_PIPE_BIT), int64(C.VK_PIPELINE_STAGE_TOP_OF_PIPE_BIT)},
		{"PIPELINE_STAGE_DRAW_INDIRECT_BIT", int64(vk.PIPELINE_STAGE_DRAW_INDIRECT_BIT), int64(C.VK_PIPELINE_STAGE_DRAW_INDIRECT_BIT)},
		{"PIPELINE_STAGE_VERTEX_INPUT_BIT", int64(vk.PIPELINE_STAGE_VERTEX_INPUT_BIT), int64(C.VK_PIPELINE_STAGE_VERTEX_INPUT_BIT)},
		{"PIPELINE_STAGE_VERTEX_SHADER_BIT", int64(vk.PIPELINE_STAGE_VERTEX_SHADER_BIT), int64(C.VK_PIPELINE_STAGE_VERTEX_SHADER_BIT)},
		{"PIPELINE_STAGE_TESSELLATION_CONTROL_SHADER_BIT", int64(vk.PIPELINE_STAGE_TESSELLATION_CONTROL_SHADER_BIT), int64(C.VK_PIPELINE_STAGE_TESSELLATION_CONTROL_SHADER_BIT)},
		{"PIPELINE_STAGE_TESSELLATION_EVALUATION_SHADER_BIT", int64(vk.PIPELINE_STAGE_TESSELLATION_EVALUATION_SHADER_BIT), int64(C.VK_PIPELINE_STAGE_TESSELLATION_EVALUATION_SHADER_BIT)},
		{"PIPELINE_STAGE_GEOMETRY_SHADER_BIT", int64(vk.PIPELINE_STAGE_GEOMETRY_SHADER_BIT), int64(C.VK_PIPELINE_STAGE_GEOMETRY_SHADER_BIT)},
		{"PIPELINE_STAGE_FRAGMENT_SHADER_BIT", int64(vk.PIPELINE_STAGE_FRAGMENT_SHADER_BIT), int64(C.VK_PIPELINE_STAGE_FRAGMENT_SHADER_BIT)},
		{"PIPELINE_STAGE_EARLY_FRAGMENT_TESTS_BIT", int64(vk.PIPELINE_STAGE_EARLY_FRAGMENT_TESTS_BIT), int64(C.VK_PIPELINE_STAGE_EARLY_FRAGMENT_TESTS_BIT)},
		{"PIPELINE_STAGE_LATE_FRAGMENT_TESTS_BIT", int64(vk.PIPELINE_STAGE_LATE_FRAGMENT_TESTS_BIT), int64(C.VK_PIPELINE_STAGE_LATE_FRAGMENT_TESTS_BIT)},
		{"PIPELINE_STAGE_COLOR_ATTACHMENT_OUTPUT_BIT", int64(vk.PIPELINE_STAGE_COLOR_ATTACHMENT_OUTPUT_BIT), int64(C.VK_PIPELINE_STAGE_COLOR_ATTACHMENT_OUTPUT_BIT)},
		{"PIPELINE_STAGE_COMPUTE_SHADER_BIT", int64(vk.PIPELINE_STAGE_COMPUTE_SHADER_BIT), int64(C.VK_PIPELINE_STAGE_COMPUTE_SHADER_BIT)},
		{"PIPELINE_STAGE_TRANSFER_BIT", int64(vk.PIPELINE_STAGE_TRANSFER_BIT), int64(C.VK_PIPELINE_STAGE_TRANSFER_BIT)},
		{"PIPELINE_STAGE_BOTTOM_OF_PIPE_BIT", int64(vk.PIPELINE_STAGE_BOTTOM_OF_PIPE_BIT), int64(C.VK_PIPELINE_STAGE_BOTTOM_OF_PIPE_BIT)},
		{"PIPELINE_STAGE_HOST_BIT", int64(vk.PIPELINE_STAGE_HOST_BIT), int64(C.VK_PIPELINE_STAGE_HOST_BIT)},
		{"PIPELINE_STAGE_ALL_GRAPHICS_BIT", int64(vk.PIPELINE_STAGE_ALL_GRAPHICS_BIT), int64(C.VK_PIPELINE_STAGE_ALL_GRAPHICS_BIT)},
		{"PIPELINE_STAGE_ALL_COMMANDS_BIT", int64(vk.PIPELINE_STAGE_ALL_COMMANDS_BIT), int64(C.VK_PIPELINE_STAGE_ALL_COMMANDS_BIT)},
		{"ACCESS_INDIRECT_COMMAND_READ_BIT", int64(vk.ACCESS_INDIRECT_COMMAND_READ_BIT), int64(C.VK_ACCESS_INDIRECT_COMMAND_READ_BIT)},
		{"ACCESS_INDEX_READ_BIT", int64(vk.ACCESS_INDEX_READ_BIT), int64(C.VK_ACCESS_INDEX_READ_BIT)},
		{"ACCESS_VERTEX_ATTRIBUTE_READ_BIT", int64(vk.ACCESS_VERTEX_ATTRIBUTE_READ_BIT), int64(C.VK_ACCESS_VERTEX_ATTRIBUTE_READ_BIT)},
		{"ACCESS_UNIFORM_READ_BIT", int64(vk.ACCESS_UNIFORM_READ_BIT), int64(C.VK_ACCESS_UNIFORM_READ_BIT)},
		{"ACCESS_INPUT_ATTACHMENT_READ_BIT", int64(vk.ACCESS_INPUT_ATTACHMENT_READ_BIT), int64(C.VK_ACCESS_INPUT_ATTACHMENT_READ_BIT)},
		{"ACCESS_SHADER_READ_BIT", int64(vk.ACCESS_SHADER_READ_BIT), int64(C.VK_ACCESS_SHADER_READ_BIT)},
		{"ACCESS_SHADER_WRITE_BIT", int64(vk.ACCESS_SHADER_WRITE_BIT), int64(C.VK_ACCESS_SHADER_WRITE_BIT)},
		{"ACCESS_COLOR_ATTACHMENT_READ_BIT", int64(vk.ACCESS_COLOR_ATTACHMENT_READ_BIT), int64(C.VK_ACCESS_COLOR_ATTACHMENT_READ_BIT)},
		{"ACCESS_COLOR_ATTACHMENT_WRITE_BIT", int64(vk.ACCESS_COLOR_ATTACHMENT_WRITE_BIT), int64(C.VK_ACCESS_COLOR_ATTACHMENT_WRITE_BIT)},
		{"ACCESS_DEPTH_STENCIL_ATTACHMENT_READ_BIT", int64(vk.ACCESS_DEPTH_STENCIL_ATTACHMENT_READ_BIT), int64(C.VK_ACCESS_DEPTH_STENCIL_ATTACHMENT_READ_BIT)},
		{"ACCESS_DEPTH_STENCIL_ATTACHMENT_WRITE_BIT", int64(vk.ACCESS_DEPTH_STENCIL_ATTACHMENT_WRITE_BIT), int64(C.VK_ACCESS_DEPTH_STENCIL_ATTACHMENT_WRITE_BIT)},
		{"ACCESS_TRANSFER_READ_BIT", int64(vk.ACCESS_TRANSFER_READ_BIT), int64(C.VK_ACCESS_TRANSFER_READ_BIT)},
		{"ACCESS_TRANSFER_WRITE_BIT", int64(vk.ACCESS_TRANSFER_WRITE_BIT), int64(C.VK_ACCESS_TRANSFER_WRITE_BIT)},
		{"ACCESS_HOST_READ_BIT", int64(vk.ACCESS_HOST_READ_BIT), int64(C.VK_ACCESS_HOST_READ_BIT)},
		{"ACCESS_HOST_WRITE_BIT", int64(vk.ACCESS_HOST_WRITE_BIT), int64(C.VK_ACCESS_HOST_WRITE_BIT)},
		{"ACCESS_MEMORY_READ_BIT", int64(vk.ACCESS_MEMORY_READ_BIT), int64(C.VK_ACCESS_MEMORY_READ_BIT)},
		{"ACCESS_MEMORY_WRITE_BIT", int64(vk.ACCESS_MEMORY_WRITE_BIT), int64(C.VK_ACCESS_MEMORY_WRITE_BIT)},
		{"DEPENDENCY_BY_REGION_BIT", int64(vk.DEPENDENCY_BY_REGION_BIT), int64(C.VK_DEPENDENCY_BY_REGION_BIT)},
		{"ATTACHMENT_DESCRIPTION_MAY_ALIAS_BIT", int64(vk.ATTACHMENT_DESCRIPTION_MAY_ALIAS_BIT), int64(C.VK_ATTACHMENT_DESCRIPTION_MAY_ALIAS_BIT)},
		{"DESCRIPTOR_POOL_CREATE_FREE_DESCRIPTOR_SET_BIT", int64(vk.DESCRIPTOR_POOL_CREATE_FREE_DESCRIPTOR_SET_BIT), int64(C.VK_DESCRIPTOR_POOL_CREATE_FREE_DESCRIPTOR_SET_BIT)},
		{"SHADER_STAGE_VERTEX_BIT", int64(vk.SHADER_STAGE_VERTEX_BIT), int64(C.VK_SHADER_STAGE_VERTEX_BIT)},
		{"SHADER_STAGE_TESSELLATION_CONTROL_BIT", int64(vk.SHADER_STAGE_TESSELLATION_CONTROL_BIT), int64(C.VK_SHADER_STAGE_TESSELLATION_CONTROL_BIT)},
		{"SHADER_STAGE_TESSELLATION_EVALUATION_BIT", int64(vk.SHADER_STAGE_TESSELLATION_EVALUATION_BIT), int64(C.VK_SHADER_STAGE_TESSELLATION_EVALUATION_BIT)},
		{"SHADER_STAGE_GEOMETRY_BIT", int64(vk.SHADER_STAGE_GEOMETRY_BIT), int64(C.VK_SHADER_STAGE_GEOMETRY_BIT)},
		{"SHADER_STAGE_FRAGMENT_BIT", int64(vk.SHADER_STAGE_FRAGMENT_BIT), int64(C.VK_SHADER_STAGE_FRAGMENT_BIT)},
		{"SHADER_STAGE_COMPUTE_BIT", int64(vk.SHADER_STAGE_COMPUTE_BIT), int64(C.VK_SHADER_STAGE_COMPUTE_BIT)},
		{"SHADER_STAGE_ALL_GRAPHICS", int64(vk.SHADER_STAGE_ALL_GRAPHICS), int64(C.VK_SHADER_STAGE_ALL_GRAPHICS)},
		{"SHADER_STAGE_ALL", int64(vk.SHADER_STAGE_ALL), int64(C.VK_SHADER_STAGE_ALL)},
		{"PIPELINE_CREATE_DISABLE_OPTIMIZATION_BIT", int64(vk.PIPELINE_CREATE_DISABLE_OPTIMIZATION_BIT), int64(C.VK_PIPELINE_CREATE_DISABLE_OPTIMIZATION_BIT)},
		{"PIPELINE_CREATE_ALLOW_DERIVATIVES_BIT", int64(vk.PIPELINE_CREATE_ALLOW_DERIVATIVES_BIT), int64(C.VK_PIPELINE_CREATE_ALLOW_DERIVATIVES_BIT)},
		{"PIPELINE_CREATE_DERIVATIVE_BIT", int64(vk.PIPELINE_CREATE_DERIVATIVE_BIT), int64(C.VK_PIPELINE_CREATE_DERIVATIVE_BIT)},
		{"CULL_MODE_FRONT_BIT", int64(vk.CULL_MODE_FRONT_BIT), int64(C.VK_CULL_MODE_FRONT_BIT)},
		{"CULL_MODE_BACK_BIT", int64(vk.CULL_MODE_BACK_BIT), int64(C.VK_CULL_MODE_BACK_BIT)},
		{"CULL_MODE_NONE", int64(vk.CULL_MODE_NONE), int64(C.VK_CULL_MODE_NONE)},
		{"CULL_MODE_FRONT_AND_BACK", int64(vk.CULL_MODE_FRONT_AND_BACK), int64(C.VK_CULL_MODE_FRONT_AND_BACK)},
		{"COLOR_COMPONENT_R_BIT", int64(vk.COLOR_COMPONENT_R_BIT), int64(C.VK_COLOR_COMPONENT_R_BIT)},
		{"COLOR_COMPONENT_G_BIT", int64(vk.COLOR_COMPONENT_G_BIT), int64(C.VK_COLOR_COMPONENT_G_BIT)},
		{"COLOR_COMPONENT_B_BIT", int64(vk.COLOR_COMPONENT_B_BIT), int64(C.VK_COLOR_COMPONENT_B_BIT)},
		{"COLOR_COMPONENT_A_BIT", int64(vk.COLOR_COMPONENT_A_BIT), int64(C.VK_COLOR_COMPONENT_A_BIT)},
		{"RESOLVE_MODE_SAMPLE_ZERO_BIT", int64(vk.RESOLVE_MODE_SAMPLE_ZERO_BIT), int64(C.VK_RESOLVE_MODE_SAMPLE_ZERO_BIT)},
		{"RESOLVE_MODE_AVERAGE_BIT", int64(vk.RESOLVE_MODE_AVERAGE_BIT), int64(C.VK_RESOLVE_MODE_AVERAGE_BIT)},
		{"RESOLVE_MODE_MIN_BIT", int64(vk.RESOLVE_MODE_MIN_BIT), int64(C.VK_RESOLVE_MODE_MIN_BIT)},
		{"RESOLVE_MODE_MAX_BIT", int64(vk.RESOLVE_MODE_MAX_BIT), int64(C.VK_RESOLVE_MODE_MAX_BIT)},
		{"RESOLVE_MODE_NONE", int64(vk.RESOLVE_MODE_NONE), int64(C.VK_RESOLVE_MODE_NONE)},
		{"RENDERING_CONTENTS_SECONDARY_COMMAND_BUFFERS_BIT", int64(vk.RENDERING_CONTENTS_SECONDARY_COMMAND_BUFFERS_BIT), int64(C.VK_RENDERING_CONTENTS_SECONDARY_COMMAND_BUFFERS_BIT)},
		{"RENDERING_SUSPENDING_BIT", int64(vk.RENDERING_SUSPENDING_BIT), int64(C.VK_RENDERING_SUSPENDING_BIT)},
		{"RENDERING_RESUMING_BIT", int64(vk.RENDERING_RESUMING_BIT), int64(C.VK_RENDERING_RESUMING_BIT)},
		{"SPARSE_MEMORY_BIND_METADATA_BIT", int64(vk.SPARSE_MEMORY_BIND_METADATA_BIT), int64(C.VK_SPARSE_MEMORY_BIND_METADATA_BIT)},
		{"SPARSE_IMAGE_FORMAT_SINGLE_MIPTAIL_BIT", int64(vk.SPARSE_IMAGE_FORMAT_SINGLE_MIPTAIL_BIT), int64(C.VK_SPARSE_IMAGE_FORMAT_SINGLE_MIPTAIL_BIT)},
		{"SPARSE_IMAGE_FORMAT_ALIGNED_MIP_SIZE_BIT", int64(vk.SPARSE_IMAGE_FORMAT_ALIGNED_MIP_SIZE_BIT), int64(C.VK_SPARSE_IMAGE_FORMAT_ALIGNED_MIP_SIZE_BIT)},
		{"SPARSE_IMAGE_FORMAT_NONSTANDARD_BLOCK_SIZE_BIT", int64(vk.SPARSE_IMAGE_FORMAT_NONSTANDARD_BLOCK_SIZE_BIT), int64(C.VK_SPARSE_IMAGE_FORMAT_NONSTANDARD_BLOCK_SIZE_BIT)},
		{"SURFACE_TRANSFORM_IDENTITY_BIT_KHR", int64(vk.SURFACE_TRANSFORM_IDENTITY_BIT_KHR), int64(C.VK_SURFACE_TRANSFORM_IDENTITY_BIT_KHR)},
		{"SURFACE_TRANSFORM_ROTATE_90_BIT_KHR", int64(vk.SURFACE_TRANSFORM_ROTATE_90_BIT_KHR), int64(C.VK_SURFACE_TRANSFORM_ROTATE_90_BIT_KHR)},
		{"SURFACE_TRANSFORM_ROTATE_180_BIT_KHR", int64(vk.SURFACE_TRANSFORM_ROTATE_180_BIT_KHR), int64(C.VK_SURFACE_TRANSFORM_ROTATE_180_BIT_KHR)},
		{"SURFACE_TRANSFORM_ROTATE_270_BIT_KHR", int64(vk.SURFACE_TRANSFORM_ROTATE_270_BIT_KHR), int64(C.VK_SURFACE_TRANSFORM_ROTATE_270_BIT_KHR)},
		{"SURFACE_TRANSFORM_HORIZONTAL_MIRROR_BIT_KHR", int64(vk.SURFACE_TRANSFORM_HORIZONTAL_MIRROR_BIT_KHR), int64(C.VK_SURFACE_TRANSFORM_HORIZONTAL_MIRROR_BIT_KHR)},
		{"SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_90_BIT_KHR", int64(vk.SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_90_BIT_KHR), int64(C.VK_SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_90_BIT_KHR)},
		{"SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_180_BIT_KHR", int64(vk.SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_180_BIT_KHR), int64(C.VK_SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_180_BIT_KHR)},
		{"SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_270_BIT_KHR", int64(vk.SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_270_BIT_KHR), int64(C.VK_SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_270_BIT_KHR)},
		{"SURFACE_TRANSFORM_INHERIT_BIT_KHR", int64(vk.SURFACE_TRANSFORM_INHERIT_BIT_KHR), int64(C.VK_SURFACE_TRANSFORM_INHERIT_BIT_KHR)},
		{"COMPOSITE_ALPHA_OPAQUE_BIT_KHR", int64(vk.COMPOSITE_ALPHA_OPAQUE_BIT_KHR), int64(C.VK_COMPOSITE_ALPHA_OPAQUE_BIT_KHR)},
		{"COMPOSITE_ALPHA_PRE_MULTIPLIED_BIT_KHR", int64(vk.COMPOSITE_ALPHA_PRE_MULTIPLIED_BIT_KHR), int64(C.VK_COMPOSITE_ALPHA_PRE_MULTIPLIED_BIT_KHR)},
		{"COMPOSITE_ALPHA_POST_MULTIPLIED_BIT_KHR", int64(vk.COMPOSITE_ALPHA_POST_MULTIPLIED_BIT_KHR), int64(C.VK_COMPOSITE_ALPHA_POST_MULTIPLIED_BIT_KHR)},
		{"COMPOSITE_ALPHA_INHERIT_BIT_KHR", int64(vk.COMPOSITE_ALPHA_INHERIT_BIT_KHR), int64(C.VK_COMPOSITE_ALPHA_INHERIT_BIT_KHR)},
	}
}
