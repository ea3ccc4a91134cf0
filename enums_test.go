package vk

import (
	"errors"
	"testing"
)

func TestResultValues(t *testing.T) {
	tests := []struct {
		r    Result
		want int32
	}{
		{SUCCESS, 0},
		{NOT_READY, 1},
		{INCOMPLETE, 5},
		{OUT_OF_HOST_MEMORY, -1},
		{DEVICE_LOST, -4},
		{UNKNOWN, -13},
		{SURFACE_LOST, -1000000000},
		{SUBOPTIMAL, 1000001003},
		{OUT_OF_DATE, -1000001004},
	}
	for _, tt := range tests {
		if int32(tt.r) != tt.want {
			t.Errorf("%v = %d, want %d", tt.r, int32(tt.r), tt.want)
		}
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{SUCCESS, "Success"},
		{OUT_OF_HOST_MEMORY, "ErrorOutOfHostMemory"},
		{SUBOPTIMAL, "SuboptimalKHR"},
		{OUT_OF_DATE, "ErrorOutOfDateKHR"},
		{Result(12345), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Result(%d).String() = %q, want %q", int32(tt.r), got, tt.want)
		}
	}
}

func TestResultAsError(t *testing.T) {
	var err error = DEVICE_LOST
	if err.Error() != "ErrorDeviceLost" {
		t.Errorf("Error() = %q", err.Error())
	}
	var r Result
	if !errors.As(err, &r) || r != DEVICE_LOST {
		t.Errorf("errors.As did not recover the code, got %v", r)
	}
	if got := Result(-77).Error(); got != "VkResult(-77)" {
		t.Errorf("unknown code Error() = %q", got)
	}
}

func TestResultClassification(t *testing.T) {
	if !SUCCESS.IsSuccess() || SUCCESS.IsError() {
		t.Error("SUCCESS misclassified")
	}
	if SUBOPTIMAL.IsSuccess() || SUBOPTIMAL.IsError() {
		t.Error("SUBOPTIMAL is a status code, not success or error")
	}
	if !OUT_OF_DATE.IsError() {
		t.Error("OUT_OF_DATE should be an error")
	}
}

func TestStructureTypeValues(t *testing.T) {
	tests := []struct {
		s    StructureType
		want int32
		name string
	}{
		{APPLICATION_INFO, 0, "ApplicationInfo"},
		{INSTANCE_CREATE_INFO, 1, "InstanceCreateInfo"},
		{SWAPCHAIN_CREATE_INFO_KHR, 1000001000, "SwapchainCreateInfoKHR"},
		{XLIB_SURFACE_CREATE_INFO_KHR, 1000004000, "XlibSurfaceCreateInfoKHR"},
		{MIR_SURFACE_CREATE_INFO_KHR, 1000007000, "MirSurfaceCreateInfoKHR"},
		{WIN32_SURFACE_CREATE_INFO_KHR, 1000009000, "Win32SurfaceCreateInfoKHR"},
	}
	for _, tt := range tests {
		if int32(tt.s) != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, int32(tt.s), tt.want)
		}
		if got := tt.s.String(); got != tt.name {
			t.Errorf("StructureType(%d).String() = %q, want %q", tt.want, got, tt.name)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		v    interface{ String() string }
		want string
	}{
		{FORMAT_UNDEFINED, "Undefined"},
		{FORMAT_R8G8B8A8_UNORM, "R8G8B8A8Unorm"},
		{Format(-1), "unknown"},
		{PHYSICAL_DEVICE_TYPE_DISCRETE_GPU, "DiscreteGpu"},
		{PhysicalDeviceType(99), "unknown"},
		{PRESENT_MODE_FIFO_KHR, "Fifo"},
		{IMAGE_LAYOUT_PRESENT_SRC_KHR, "PresentSrcKHR"},
		{StructureType(0x7FFFFFFF), "unknown"},
		{BUFFER_USAGE_TRANSFER_SRC_BIT, "TransferSrc"},
		{BufferUsageFlagBits(0x40000000), "unknown"},
		{SHADER_STAGE_COMPUTE_BIT, "Compute"},
		{PRIMITIVE_TOPOLOGY_TRIANGLE_LIST, "TriangleList"},
		{COMPARE_OP_LESS_OR_EQUAL, "LessOrEqual"},
		{BLEND_FACTOR_ONE_MINUS_SRC_COLOR, "OneMinusSrcColor"},
		{CULL_MODE_BACK_BIT, "Back"},
		{CULL_MODE_FRONT_AND_BACK, "unknown"},
		{COLOR_COMPONENT_R_BIT, "R"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%T(%v).String() = %q, want %q", tt.v, tt.v, got, tt.want)
		}
	}
}

func TestEnumNumericFidelity(t *testing.T) {
	if FORMAT_R8G8B8A8_UNORM != 37 || IMAGE_LAYOUT_PRESENT_SRC_KHR != 1000001002 || COLOR_SPACE_SRGB_NONLINEAR_KHR != 0 {
		t.Error("enumerant values drifted from the C header")
	}
	if QUEUE_GRAPHICS_BIT != 0x1 || QUEUE_COMPUTE_BIT != 0x2 || QUEUE_TRANSFER_BIT != 0x4 {
		t.Error("queue bits drifted from the C header")
	}
	if PRIMITIVE_TOPOLOGY_PATCH_LIST != 10 || DYNAMIC_STATE_STENCIL_REFERENCE != 8 || SAMPLER_ADDRESS_MODE_MIRROR_CLAMP_TO_EDGE != 4 {
		t.Error("pipeline enumerants drifted from the C header")
	}
	if CULL_MODE_NONE != 0 || CULL_MODE_FRONT_AND_BACK != CULL_MODE_FRONT_BIT|CULL_MODE_BACK_BIT || RESOLVE_MODE_NONE != 0 {
		t.Error("composite masks drifted from the C header")
	}
}
