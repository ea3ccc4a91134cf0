package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unsafe"

	"gopkg.in/yaml.v3"

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

// fakeLoader describes one instance with a single discrete GPU.
func fakeLoader() *native.Commands {
	return &native.Commands{
		EnumerateInstanceVersion: func(v *uint32) native.Result {
			*v = vk.MakeAPIVersion(0, 1, 3, 280)
			return native.Result(vk.SUCCESS)
		},
		EnumerateInstanceLayerProperties: func(n *uint32, p *native.LayerProperties) native.Result {
			return fill(n, p, []native.LayerProperties{{
				LayerName:   name256("VK_LAYER_KHRONOS_validation"),
				SpecVersion: vk.MakeAPIVersion(0, 1, 3, 280),
				Description: name256("Khronos validation"),
			}})
		},
		EnumerateInstanceExtensionProperties: func(_ *byte, n *uint32, p *native.ExtensionProperties) native.Result {
			return fill(n, p, []native.ExtensionProperties{
				{ExtensionName: name256("VK_KHR_surface"), SpecVersion: 25},
			})
		},
		EnumeratePhysicalDevices: func(_ native.Instance, n *uint32, p *native.PhysicalDevice) native.Result {
			return fill(n, p, []native.PhysicalDevice{0x10})
		},
		GetPhysicalDeviceProperties: func(_ native.PhysicalDevice, p *native.PhysicalDeviceProperties) {
			p.ApiVersion = vk.MakeAPIVersion(0, 1, 3, 0)
			p.VendorID = 0x10DE
			p.DeviceID = 0x2204
			p.DeviceType = int32(vk.PHYSICAL_DEVICE_TYPE_DISCRETE_GPU)
			p.DeviceName = name256("Test GPU")
			p.PipelineCacheUUID = [16]uint8{0x12, 0x34}
			p.Limits.MaxImageDimension2D = 16384
			p.Limits.MaxComputeWorkGroupSize = [3]uint32{1024, 1024, 64}
		},
		GetPhysicalDeviceQueueFamilyProperties: func(_ native.PhysicalDevice, n *uint32, p *native.QueueFamilyProperties) {
			fill(n, p, []native.QueueFamilyProperties{
				{QueueFlags: native.Flags(vk.QUEUE_GRAPHICS_BIT | vk.QUEUE_COMPUTE_BIT | vk.QUEUE_TRANSFER_BIT), QueueCount: 16},
				{QueueFlags: native.Flags(vk.QUEUE_TRANSFER_BIT), QueueCount: 2},
			})
		},
		GetPhysicalDeviceMemoryProperties: func(_ native.PhysicalDevice, p *native.PhysicalDeviceMemoryProperties) {
			p.MemoryHeapCount = 1
			p.MemoryHeaps[0] = native.MemoryHeap{Size: 8 << 30, Flags: native.Flags(vk.MEMORY_HEAP_DEVICE_LOCAL_BIT)}
			p.MemoryTypeCount = 1
			p.MemoryTypes[0] = native.MemoryType{PropertyFlags: native.Flags(vk.MEMORY_PROPERTY_DEVICE_LOCAL_BIT), HeapIndex: 0}
		},
		GetPhysicalDeviceFeatures: func(_ native.PhysicalDevice, f *native.PhysicalDeviceFeatures) {
			f.GeometryShader = 1
			f.SamplerAnisotropy = 1
		},
		EnumerateDeviceExtensionProperties: func(_ native.PhysicalDevice, _ *byte, n *uint32, p *native.ExtensionProperties) native.Result {
			return fill(n, p, []native.ExtensionProperties{
				{ExtensionName: name256("VK_KHR_swapchain"), SpecVersion: 70},
			})
		},
	}
}

func collect(t *testing.T) *Report {
	t.Helper()
	rep, err := Collect(vk.NewEnhanced(vk.NewDispatch(fakeLoader())), 1)
	if err != nil {
		t.Fatal(err)
	}
	return rep
}

func TestCollect(t *testing.T) {
	rep := collect(t)
	if rep.APIVersion != "1.3.280" {
		t.Errorf("api version = %q", rep.APIVersion)
	}
	if len(rep.Layers) != 1 || rep.Layers[0].Name != "VK_LAYER_KHRONOS_validation" {
		t.Errorf("layers = %+v", rep.Layers)
	}
	if len(rep.Devices) != 1 {
		t.Fatalf("devices = %d", len(rep.Devices))
	}
	d := rep.Devices[0]
	if d.Name != "Test GPU" || d.Type != "DiscreteGpu" || d.VendorID != "0x10DE" {
		t.Errorf("device = %+v", d)
	}
	if d.PipelineCacheUUID != "12340000-0000-0000-0000-000000000000" {
		t.Errorf("uuid = %q", d.PipelineCacheUUID)
	}
	if len(d.QueueFamilies) != 2 || d.QueueFamilies[0].Flags != "Graphics | Compute | Transfer" {
		t.Errorf("queue families = %+v", d.QueueFamilies)
	}
	if len(d.MemoryHeaps) != 1 || d.MemoryHeaps[0].Flags != "DeviceLocal" {
		t.Errorf("heaps = %+v", d.MemoryHeaps)
	}
	if strings.Join(d.Features, ",") != "geometryShader,samplerAnisotropy" {
		t.Errorf("features = %v", d.Features)
	}
	if len(d.Extensions) != 1 || d.Extensions[0].Name != "VK_KHR_swapchain" {
		t.Errorf("device extensions = %+v", d.Extensions)
	}
}

func TestCollectPropagatesResult(t *testing.T) {
	cmds := fakeLoader()
	cmds.EnumeratePhysicalDevices = func(native.Instance, *uint32, *native.PhysicalDevice) native.Result {
		return native.Result(vk.INITIALIZATION_FAILED)
	}
	_, err := Collect(vk.NewEnhanced(vk.NewDispatch(cmds)), 1)
	if !errors.Is(err, vk.INITIALIZATION_FAILED) {
		t.Errorf("err = %v", err)
	}
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := YAML(&buf, collect(t)); err != nil {
		t.Fatal(err)
	}
	var back Report
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("output does not parse: %v\n%s", err, buf.String())
	}
	if back.Devices[0].Limits.MaxComputeWorkGroupSize != [3]uint32{1024, 1024, 64} {
		t.Errorf("limits lost: %+v", back.Devices[0].Limits)
	}
	if !strings.Contains(buf.String(), "api_version: 1.3.280") {
		t.Errorf("missing api_version in\n%s", buf.String())
	}
}

func TestText(t *testing.T) {
	var plain, colored bytes.Buffer
	rep := collect(t)
	if err := Text(&plain, rep, false); err != nil {
		t.Fatal(err)
	}
	if err := Text(&colored, rep, true); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"GPU 0: Test GPU", "DiscreteGpu", "[0] x16 Graphics | Compute | Transfer", "8.0 GiB DeviceLocal", "VK_KHR_swapchain"} {
		if !strings.Contains(plain.String(), want) {
			t.Errorf("text output lacks %q:\n%s", want, plain.String())
		}
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Error("plain output contains escape codes")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Error("colored output has no escape codes")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := map[uint64]string{
		512:     "512 B",
		2048:    "2.0 KiB",
		8 << 30: "8.0 GiB",
	}
	for in, want := range tests {
		if got := formatBytes(in); got != want {
			t.Errorf("formatBytes(%d) = %q, want %q", in, got, want)
		}
	}
}
