package cvk

import (
	"errors"
	"strings"
	"testing"
	"unsafe"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	vk "github.com/NOT-REAL-GAMES/vk"
)

func TestVerify(t *testing.T) {
	if err := Verify(); err != nil {
		t.Fatalf("native declarations disagree with the C header:\n%v", err)
	}
}

func TestLayoutTableCoversWrappedStructs(t *testing.T) {
	seen := map[string]bool{}
	for _, l := range layouts() {
		if seen[l.name] {
			t.Errorf("duplicate layout entry %s", l.name)
		}
		seen[l.name] = true
	}
	for _, name := range []string{"Rect2D", "PhysicalDeviceProperties", "InstanceCreateInfo", "SwapchainCreateInfoKHR"} {
		if !seen[name] {
			t.Errorf("layout table is missing %s", name)
		}
	}
}

func TestOffsetTableCoversFields(t *testing.T) {
	seen := map[string]bool{}
	for _, o := range offsets() {
		if seen[o.name] {
			t.Errorf("duplicate offset entry %s", o.name)
		}
		seen[o.name] = true
	}
	for _, name := range []string{
		"ImageMemoryBarrier.srcAccessMask",
		"ImageMemoryBarrier.dstAccessMask",
		"SurfaceCapabilitiesKHR.minImageCount",
		"SurfaceCapabilitiesKHR.maxImageCount",
		"GraphicsPipelineCreateInfo.basePipelineIndex",
		"SwapchainCreateInfoKHR.oldSwapchain",
		"BindSparseInfo.pSignalSemaphores",
	} {
		if !seen[name] {
			t.Errorf("offset table is missing %s", name)
		}
	}
}

func TestCompareLayouts(t *testing.T) {
	tests := []struct {
		name   string
		sizes  []layout
		fields []offset
		want   []string
	}{
		{"agree", []layout{{"Extent2D", 8, 8}}, []offset{{"Extent2D.height", 4, 4}}, nil},
		{"size", []layout{{"Extent2D", 12, 8}}, nil, []string{"sizeof Extent2D is 12, C has 8"}},
		{
			"swapped fields",
			[]layout{{"MemoryBarrier", 24, 24}},
			[]offset{{"MemoryBarrier.srcAccessMask", 20, 16}, {"MemoryBarrier.dstAccessMask", 16, 20}},
			[]string{"offsetof MemoryBarrier.srcAccessMask is 20, C has 16", "offsetof MemoryBarrier.dstAccessMask is 16, C has 20"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := compareLayouts(tt.sizes, tt.fields)
			if len(errs) != len(tt.want) {
				t.Fatalf("got %d errors %v, want %d", len(errs), errs, len(tt.want))
			}
			for i, err := range errs {
				if !errors.Is(err, ErrLayoutMismatch) {
					t.Errorf("error %v does not wrap ErrLayoutMismatch", err)
				}
				if !strings.HasSuffix(err.Error(), tt.want[i]) {
					t.Errorf("error = %q, want suffix %q", err, tt.want[i])
				}
			}
		})
	}
}

func TestLoadLogs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	cmds, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cmds.CreateInstance == nil || cmds.QueuePresentKHR == nil {
		t.Error("core entry points were not bound")
	}
	if logs.FilterMessage("vulkan commands loaded").Len() != 1 {
		t.Errorf("expected one load event, got %v", logs.All())
	}
}

func TestEnumerateInstanceVersion(t *testing.T) {
	d := vk.NewDispatch(MustLoad())
	var v uint32
	r := d.EnumerateInstanceVersion(&v)
	if errors.Is(r, vk.INITIALIZATION_FAILED) {
		t.Skip("no Vulkan ICD available")
	}
	if r != vk.SUCCESS {
		t.Fatalf("EnumerateInstanceVersion = %v", r)
	}
	if vk.APIVersionMajor(v) != 1 {
		t.Errorf("version %#x has major %d", v, vk.APIVersionMajor(v))
	}
}

func TestCStringArray(t *testing.T) {
	names := []string{"VK_KHR_surface", "VK_EXT_debug_utils"}
	arr := CStringArray(names)
	defer FreeArray(arr, len(names))

	got := unsafe.Slice(arr, len(names))
	for i, p := range got {
		if s := vk.GoString(p); s != names[i] {
			t.Errorf("[%d] = %q, want %q", i, s, names[i])
		}
	}
	if CStringArray(nil) != nil {
		t.Error("empty list should yield nil")
	}
	FreeArray(nil, 0)
	Free(nil)
}
