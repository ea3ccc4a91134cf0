//go:build !vk_noenhanced

package vk

import (
	"testing"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// fakeDevices answers EnumeratePhysicalDevices with n devices and records
// every call.
type fakeDevices struct {
	n        uint32
	first    native.Result
	second   native.Result
	calls    int
	gotCount []uint32
	nilData  []bool
}

func (f *fakeDevices) enumerate(_ native.Instance, count *uint32, devices *native.PhysicalDevice) native.Result {
	f.calls++
	f.gotCount = append(f.gotCount, *count)
	f.nilData = append(f.nilData, devices == nil)
	if devices == nil {
		*count = f.n
		return f.first
	}
	n := min(*count, f.n)
	out := unsafeSlice(devices, n)
	for i := range out {
		out[i] = native.PhysicalDevice(100 + i)
	}
	*count = n
	return f.second
}

func TestEnhancedTwoCallIdiom(t *testing.T) {
	f := &fakeDevices{n: 3}
	e := NewEnhanced(NewDispatch(&native.Commands{EnumeratePhysicalDevices: f.enumerate}))

	devices, r := e.EnumeratePhysicalDevices(1)
	if r != SUCCESS {
		t.Fatalf("result = %v", r)
	}
	if f.calls != 2 {
		t.Fatalf("native calls = %d, want 2", f.calls)
	}
	if !f.nilData[0] || f.nilData[1] {
		t.Errorf("first call must pass nil data, second a buffer: %v", f.nilData)
	}
	if f.gotCount[1] != 3 {
		t.Errorf("second call count = %d, want 3", f.gotCount[1])
	}
	if len(devices) != 3 || cap(devices) != 3 {
		t.Fatalf("len/cap = %d/%d, want 3/3", len(devices), cap(devices))
	}
	for i, d := range devices {
		if d != PhysicalDevice(100+i) {
			t.Errorf("devices[%d] = %d", i, d)
		}
	}
}

func TestEnhancedEarlyReturn(t *testing.T) {
	f := &fakeDevices{n: 3, first: native.Result(INITIALIZATION_FAILED)}
	e := NewEnhanced(NewDispatch(&native.Commands{EnumeratePhysicalDevices: f.enumerate}))

	devices, r := e.EnumeratePhysicalDevices(1)
	if r != INITIALIZATION_FAILED {
		t.Errorf("result = %v, want INITIALIZATION_FAILED", r)
	}
	if devices != nil {
		t.Errorf("devices = %v, want nil", devices)
	}
	if f.calls != 1 {
		t.Errorf("native calls = %d, want 1", f.calls)
	}
}

func TestEnhancedSecondResultVerbatim(t *testing.T) {
	f := &fakeDevices{n: 2, second: native.Result(INCOMPLETE)}
	e := NewEnhanced(NewDispatch(&native.Commands{EnumeratePhysicalDevices: f.enumerate}))

	devices, r := e.EnumeratePhysicalDevices(1)
	if r != INCOMPLETE {
		t.Errorf("result = %v, want INCOMPLETE", r)
	}
	if len(devices) != 2 {
		t.Errorf("len = %d, want 2", len(devices))
	}
}

func TestEnhancedEmptyEnumeration(t *testing.T) {
	f := &fakeDevices{n: 0}
	e := NewEnhanced(NewDispatch(&native.Commands{EnumeratePhysicalDevices: f.enumerate}))

	devices, r := e.EnumeratePhysicalDevices(1)
	if r != SUCCESS || len(devices) != 0 {
		t.Errorf("got %v, %v", devices, r)
	}
	if f.calls != 2 || !f.nilData[1] {
		t.Errorf("calls = %d, nil data = %v", f.calls, f.nilData)
	}
}

func TestEnhancedTrimsToReportedCount(t *testing.T) {
	calls := 0
	cmds := &native.Commands{
		GetPhysicalDeviceSurfaceFormatsKHR: func(_ native.PhysicalDevice, _ native.SurfaceKHR, count *uint32, formats *native.SurfaceFormatKHR) native.Result {
			calls++
			if formats == nil {
				*count = 4
				return native.Result(SUCCESS)
			}
			out := unsafeSlice(formats, *count)
			out[0] = native.SurfaceFormatKHR{Format: int32(FORMAT_B8G8R8A8_SRGB), ColorSpace: int32(COLOR_SPACE_SRGB_NONLINEAR_KHR)}
			*count = 1
			return native.Result(SUCCESS)
		},
	}
	e := NewEnhanced(NewDispatch(cmds))
	formats, r := e.GetPhysicalDeviceSurfaceFormatsKHR(0, 0)
	if r != SUCCESS || calls != 2 {
		t.Fatalf("result %v after %d calls", r, calls)
	}
	if len(formats) != 1 || formats[0].Format() != FORMAT_B8G8R8A8_SRGB {
		t.Errorf("formats = %+v", formats)
	}
}

func TestEnhancedExtensionLayerName(t *testing.T) {
	var gotName string
	var sawNil bool
	cmds := &native.Commands{
		EnumerateInstanceExtensionProperties: func(pLayerName *byte, count *uint32, _ *native.ExtensionProperties) native.Result {
			if pLayerName == nil {
				sawNil = true
			}
			gotName = GoString(pLayerName)
			*count = 0
			return native.Result(SUCCESS)
		},
	}
	e := NewEnhanced(NewDispatch(cmds))
	if _, r := e.EnumerateInstanceExtensionProperties("VK_LAYER_KHRONOS_validation"); r != SUCCESS {
		t.Fatal(r)
	}
	if gotName != "VK_LAYER_KHRONOS_validation" {
		t.Errorf("layer name = %q", gotName)
	}
	if _, r := e.EnumerateInstanceExtensionProperties(""); r != SUCCESS || !sawNil {
		t.Errorf("empty layer name should be passed as NULL (result %v)", r)
	}
}

func TestEnhancedQueueFamilies(t *testing.T) {
	cmds := &native.Commands{
		GetPhysicalDeviceQueueFamilyProperties: func(_ native.PhysicalDevice, count *uint32, props *native.QueueFamilyProperties) {
			if props == nil {
				*count = 2
				return
			}
			out := unsafeSlice(props, *count)
			out[0].QueueFlags = native.Flags(QUEUE_GRAPHICS_BIT | QUEUE_COMPUTE_BIT)
			out[0].QueueCount = 1
			out[1].QueueFlags = native.Flags(QUEUE_TRANSFER_BIT)
			out[1].QueueCount = 2
		},
	}
	families := NewEnhanced(NewDispatch(cmds)).GetPhysicalDeviceQueueFamilyProperties(0)
	if len(families) != 2 {
		t.Fatalf("len = %d", len(families))
	}
	if !families[0].QueueFlags().Has(QUEUE_GRAPHICS_BIT) || families[1].QueueCount() != 2 {
		t.Errorf("families = %+v", families)
	}
}

func TestEnhancedCreateReturnsHandle(t *testing.T) {
	cmds := &native.Commands{
		CreateFence: func(_ native.Device, info *native.FenceCreateInfo, _ *native.AllocationCallbacks, fence *native.Fence) native.Result {
			if info.Flags != native.Flags(FENCE_CREATE_SIGNALED_BIT) {
				t.Errorf("flags = %#x", info.Flags)
			}
			*fence = 9
			return native.Result(SUCCESS)
		},
	}
	info := MakeFenceCreateInfo(FlagsOf(FENCE_CREATE_SIGNALED_BIT))
	fence, r := NewEnhanced(NewDispatch(cmds)).CreateFence(1, &info, nil)
	if r != SUCCESS || fence != 9 {
		t.Errorf("got %d, %v", fence, r)
	}
}

func TestEnhancedSparseRequirements(t *testing.T) {
	tests := []struct {
		name  string
		count uint32
	}{
		{"non-sparse image", 0},
		{"two aspects", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds := &native.Commands{
				GetImageSparseMemoryRequirements: func(_ native.Device, _ native.Image, count *uint32, reqs *native.SparseImageMemoryRequirements) {
					if reqs == nil {
						*count = tt.count
						return
					}
					out := unsafeSlice(reqs, *count)
					for i := range out {
						out[i].ImageMipTailFirstLod = uint32(i + 1)
					}
				},
			}
			reqs := NewEnhanced(NewDispatch(cmds)).GetImageSparseMemoryRequirements(0, 1)
			if len(reqs) != int(tt.count) {
				t.Fatalf("len = %d, want %d", len(reqs), tt.count)
			}
			for i, r := range reqs {
				if r.ImageMipTailFirstLod() != uint32(i+1) {
					t.Errorf("reqs[%d] = %+v", i, r)
				}
			}
		})
	}
}

func TestEnhancedGraphicsPipelines(t *testing.T) {
	var calls int
	cmds := &native.Commands{
		CreateGraphicsPipelines: func(_ native.Device, _ native.PipelineCache, count uint32, _ *native.GraphicsPipelineCreateInfo, _ *native.AllocationCallbacks, pipelines *native.Pipeline) native.Result {
			calls++
			out := unsafeSlice(pipelines, count)
			out[0] = 40
			return native.Result(PIPELINE_COMPILE_REQUIRED)
		},
		CreateSampler: func(_ native.Device, _ *native.SamplerCreateInfo, _ *native.AllocationCallbacks, sampler *native.Sampler) native.Result {
			*sampler = 6
			return native.Result(SUCCESS)
		},
	}
	e := NewEnhanced(NewDispatch(cmds))

	if p, r := e.CreateGraphicsPipelines(0, 0, nil, nil); p != nil || r != SUCCESS || calls != 0 {
		t.Errorf("empty create infos: %v, %v, %d calls", p, r, calls)
	}

	infos := []GraphicsPipelineCreateInfo{*NewGraphicsPipelineCreateInfo(), *NewGraphicsPipelineCreateInfo()}
	p, r := e.CreateGraphicsPipelines(0, 0, infos, nil)
	if r != PIPELINE_COMPILE_REQUIRED {
		t.Errorf("result = %v", r)
	}
	if len(p) != 2 || p[0] != 40 || p[1] != NULL_HANDLE {
		t.Errorf("pipelines = %v", p)
	}

	s, r := e.CreateSampler(0, NewSamplerCreateInfo(), nil)
	if r != SUCCESS || s != 6 {
		t.Errorf("sampler %d, %v", s, r)
	}
}
