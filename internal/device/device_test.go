package device

import (
	"errors"
	"testing"
	"unsafe"

	vk "github.com/NOT-REAL-GAMES/vk"
	"github.com/NOT-REAL-GAMES/vk/native"
)

func fill[T any](count *uint32, out *T, src []T) native.Result {
	if out == nil {
		*count = uint32(len(src))
		return native.Result(vk.SUCCESS)
	}
	*count = uint32(copy(unsafe.Slice(out, *count), src))
	return native.Result(vk.SUCCESS)
}

func name256(s string) (b [256]byte) {
	copy(b[:], s)
	return b
}

type fakeGPU struct {
	name      string
	typ       vk.PhysicalDeviceType
	families  []native.QueueFamilyProperties
	present   map[uint32]bool
	swapchain bool
}

var (
	graphics = native.QueueFamilyProperties{QueueFlags: native.Flags(vk.QUEUE_GRAPHICS_BIT), QueueCount: 1}
	compute  = native.QueueFamilyProperties{QueueFlags: native.Flags(vk.QUEUE_COMPUTE_BIT), QueueCount: 2}
)

// fakeSystem exposes gpus as physical devices 1..n.
func fakeSystem(gpus ...fakeGPU) *native.Commands {
	gpu := func(pd native.PhysicalDevice) fakeGPU { return gpus[pd-1] }
	return &native.Commands{
		EnumeratePhysicalDevices: func(_ native.Instance, n *uint32, p *native.PhysicalDevice) native.Result {
			handles := make([]native.PhysicalDevice, len(gpus))
			for i := range gpus {
				handles[i] = native.PhysicalDevice(i + 1)
			}
			return fill(n, p, handles)
		},
		GetPhysicalDeviceProperties: func(pd native.PhysicalDevice, p *native.PhysicalDeviceProperties) {
			p.DeviceName = name256(gpu(pd).name)
			p.DeviceType = int32(gpu(pd).typ)
		},
		GetPhysicalDeviceQueueFamilyProperties: func(pd native.PhysicalDevice, n *uint32, p *native.QueueFamilyProperties) {
			fill(n, p, gpu(pd).families)
		},
		GetPhysicalDeviceSurfaceSupportKHR: func(pd native.PhysicalDevice, family uint32, _ native.SurfaceKHR, ok *native.Bool32) native.Result {
			*ok = 0
			if gpu(pd).present[family] {
				*ok = 1
			}
			return native.Result(vk.SUCCESS)
		},
		EnumerateDeviceExtensionProperties: func(pd native.PhysicalDevice, _ *byte, n *uint32, p *native.ExtensionProperties) native.Result {
			var exts []native.ExtensionProperties
			if gpu(pd).swapchain {
				exts = append(exts, native.ExtensionProperties{ExtensionName: name256(SwapchainExtension)})
			}
			return fill(n, p, exts)
		},
	}
}

func TestPick(t *testing.T) {
	integrated := fakeGPU{
		name:      "iGPU",
		typ:       vk.PHYSICAL_DEVICE_TYPE_INTEGRATED_GPU,
		families:  []native.QueueFamilyProperties{graphics},
		present:   map[uint32]bool{0: true},
		swapchain: true,
	}
	discrete := fakeGPU{
		name:      "dGPU",
		typ:       vk.PHYSICAL_DEVICE_TYPE_DISCRETE_GPU,
		families:  []native.QueueFamilyProperties{compute, graphics, graphics},
		present:   map[uint32]bool{2: true},
		swapchain: true,
	}
	noSwapchain := discrete
	noSwapchain.name = "headless"
	noSwapchain.swapchain = false
	noPresent := discrete
	noPresent.name = "offscreen"
	noPresent.present = nil

	tests := []struct {
		name       string
		gpus       []fakeGPU
		wantName   string
		wantFamily uint32
		wantErr    error
	}{
		{"discrete preferred", []fakeGPU{integrated, discrete}, "dGPU", 2, nil},
		{"first of equals", []fakeGPU{integrated, integrated}, "iGPU", 0, nil},
		{"missing swapchain skipped", []fakeGPU{noSwapchain, integrated}, "iGPU", 0, nil},
		{"no present support", []fakeGPU{noPresent}, "", 0, ErrNoSuitableDevice},
		{"no devices", nil, "", 0, ErrNoSuitableDevice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := vk.NewEnhanced(vk.NewDispatch(fakeSystem(tt.gpus...)))
			sel, err := Pick(e, 0x1, 0x2)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Pick() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if sel.Name != tt.wantName || sel.Family != tt.wantFamily {
				t.Errorf("Pick() = %s family %d, want %s family %d", sel.Name, sel.Family, tt.wantName, tt.wantFamily)
			}
		})
	}
}

func TestPickSurfaceError(t *testing.T) {
	cmds := fakeSystem(fakeGPU{families: []native.QueueFamilyProperties{graphics}, swapchain: true})
	cmds.GetPhysicalDeviceSurfaceSupportKHR = func(native.PhysicalDevice, uint32, native.SurfaceKHR, *native.Bool32) native.Result {
		return native.Result(vk.SURFACE_LOST)
	}
	e := vk.NewEnhanced(vk.NewDispatch(cmds))
	if _, err := Pick(e, 0x1, 0x2); !errors.Is(err, vk.SURFACE_LOST) {
		t.Errorf("Pick() error = %v, want SURFACE_LOST", err)
	}
}

func TestCreate(t *testing.T) {
	var (
		gotFamily   uint32
		gotPriority float32
		gotExt      string
		gotQueue    [2]uint32
	)
	cmds := &native.Commands{
		CreateDevice: func(_ native.PhysicalDevice, info *native.DeviceCreateInfo, _ *native.AllocationCallbacks, dev *native.Device) native.Result {
			gotFamily = info.PQueueCreateInfos.QueueFamilyIndex
			gotPriority = *info.PQueueCreateInfos.PQueuePriorities
			gotExt = vk.GoString(*info.PpEnabledExtensionNames)
			*dev = 0x77
			return native.Result(vk.SUCCESS)
		},
		GetDeviceQueue: func(_ native.Device, family, index uint32, q *native.Queue) {
			gotQueue = [2]uint32{family, index}
			*q = 0x88
		},
	}
	e := vk.NewEnhanced(vk.NewDispatch(cmds))

	dev, queue, err := Create(e, Selection{Physical: 0x1, Family: 3, Name: "dGPU"}, nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if dev != 0x77 || queue != 0x88 {
		t.Errorf("Create() = %#x, %#x, want 0x77, 0x88", dev, queue)
	}
	if gotFamily != 3 || gotPriority != 1 {
		t.Errorf("queue info = family %d priority %v, want 3 and 1", gotFamily, gotPriority)
	}
	if gotExt != SwapchainExtension {
		t.Errorf("extension = %q, want %q", gotExt, SwapchainExtension)
	}
	if gotQueue != [2]uint32{3, 0} {
		t.Errorf("GetDeviceQueue(%d, %d), want (3, 0)", gotQueue[0], gotQueue[1])
	}
}

func TestCreateFailure(t *testing.T) {
	cmds := &native.Commands{
		CreateDevice: func(native.PhysicalDevice, *native.DeviceCreateInfo, *native.AllocationCallbacks, *native.Device) native.Result {
			return native.Result(vk.FEATURE_NOT_PRESENT)
		},
	}
	e := vk.NewEnhanced(vk.NewDispatch(cmds))
	if _, _, err := Create(e, Selection{}, nil); !errors.Is(err, vk.FEATURE_NOT_PRESENT) {
		t.Errorf("Create() error = %v, want FEATURE_NOT_PRESENT", err)
	}
}
