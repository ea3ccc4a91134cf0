package swapchain

import (
	"errors"
	"testing"
	"unsafe"

	vk "github.com/NOT-REAL-GAMES/vk"
	"github.com/NOT-REAL-GAMES/vk/native"
)

// fakeSurface serves surface queries and swapchain creation from fixed data.
type fakeSurface struct {
	caps    native.SurfaceCapabilitiesKHR
	formats []native.SurfaceFormatKHR
	modes   []int32
	images  int

	created   *native.SwapchainCreateInfoKHR
	views     int
	destroyed []string
	failViews bool

	// listResult, when set, is what the surface list queries return on the
	// call that fills data.
	listResult native.Result
}

func fill[T any](count *uint32, out *T, src []T) native.Result {
	if out == nil {
		*count = uint32(len(src))
		return native.Result(vk.SUCCESS)
	}
	*count = uint32(copy(unsafe.Slice(out, *count), src))
	return native.Result(vk.SUCCESS)
}

func (f *fakeSurface) enhanced() vk.Enhanced {
	cmds := &native.Commands{
		GetPhysicalDeviceSurfaceCapabilitiesKHR: func(_ native.PhysicalDevice, _ native.SurfaceKHR, caps *native.SurfaceCapabilitiesKHR) native.Result {
			*caps = f.caps
			return native.Result(vk.SUCCESS)
		},
		GetPhysicalDeviceSurfaceFormatsKHR: func(_ native.PhysicalDevice, _ native.SurfaceKHR, n *uint32, p *native.SurfaceFormatKHR) native.Result {
			return f.list(fill(n, p, f.formats), p != nil)
		},
		GetPhysicalDeviceSurfacePresentModesKHR: func(_ native.PhysicalDevice, _ native.SurfaceKHR, n *uint32, p *int32) native.Result {
			return f.list(fill(n, p, f.modes), p != nil)
		},
		CreateSwapchainKHR: func(_ native.Device, info *native.SwapchainCreateInfoKHR, _ *native.AllocationCallbacks, sc *native.SwapchainKHR) native.Result {
			c := *info
			f.created = &c
			*sc = 77
			return native.Result(vk.SUCCESS)
		},
		GetSwapchainImagesKHR: func(_ native.Device, _ native.SwapchainKHR, n *uint32, p *native.Image) native.Result {
			imgs := make([]native.Image, f.images)
			for i := range imgs {
				imgs[i] = native.Image(10 + i)
			}
			return fill(n, p, imgs)
		},
		CreateImageView: func(_ native.Device, info *native.ImageViewCreateInfo, _ *native.AllocationCallbacks, v *native.ImageView) native.Result {
			if f.failViews && f.views == 1 {
				return native.Result(vk.OUT_OF_DEVICE_MEMORY)
			}
			f.views++
			*v = native.ImageView(100 + f.views)
			return native.Result(vk.SUCCESS)
		},
		DestroyImageView: func(native.Device, native.ImageView, *native.AllocationCallbacks) {
			f.destroyed = append(f.destroyed, "view")
		},
		DestroySwapchainKHR: func(native.Device, native.SwapchainKHR, *native.AllocationCallbacks) {
			f.destroyed = append(f.destroyed, "swapchain")
		},
	}
	return vk.NewEnhanced(vk.NewDispatch(cmds))
}

func (f *fakeSurface) list(r native.Result, filled bool) native.Result {
	if filled && f.listResult != 0 {
		return f.listResult
	}
	return r
}

func newFake() *fakeSurface {
	return &fakeSurface{
		caps: native.SurfaceCapabilitiesKHR{
			MinImageCount:    2,
			MaxImageCount:    3,
			CurrentExtent:    native.Extent2D{Width: 0xFFFFFFFF, Height: 0xFFFFFFFF},
			MinImageExtent:   native.Extent2D{Width: 64, Height: 64},
			MaxImageExtent:   native.Extent2D{Width: 1920, Height: 1080},
			CurrentTransform: native.Flags(vk.SURFACE_TRANSFORM_IDENTITY_BIT_KHR),
		},
		formats: []native.SurfaceFormatKHR{
			{Format: int32(vk.FORMAT_R8G8B8A8_UNORM), ColorSpace: int32(vk.COLOR_SPACE_SRGB_NONLINEAR_KHR)},
			{Format: int32(vk.FORMAT_B8G8R8A8_SRGB), ColorSpace: int32(vk.COLOR_SPACE_SRGB_NONLINEAR_KHR)},
		},
		modes:  []int32{int32(vk.PRESENT_MODE_FIFO_KHR), int32(vk.PRESENT_MODE_MAILBOX_KHR)},
		images: 3,
	}
}

func TestQuerySupport(t *testing.T) {
	f := newFake()
	s, err := QuerySupport(f.enhanced(), 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Formats) != 2 || len(s.PresentModes) != 2 {
		t.Fatalf("support = %d formats, %d modes", len(s.Formats), len(s.PresentModes))
	}
	if s.Capabilities.MinImageCount() != 2 {
		t.Errorf("caps = %+v", s.Capabilities.Native())
	}
}

func TestQuerySupportListResults(t *testing.T) {
	tests := []struct {
		name    string
		result  vk.Result
		wantErr bool
	}{
		{"success", vk.SUCCESS, false},
		{"incomplete keeps the prefix", vk.INCOMPLETE, false},
		{"surface lost", vk.SURFACE_LOST, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFake()
			f.listResult = native.Result(tt.result)
			s, err := QuerySupport(f.enhanced(), 1, 2)
			if tt.wantErr {
				if !errors.Is(err, tt.result) {
					t.Fatalf("err = %v, want %v", err, tt.result)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(s.Formats) != 2 || len(s.PresentModes) != 2 {
				t.Errorf("support = %d formats, %d modes", len(s.Formats), len(s.PresentModes))
			}
		})
	}
}

func TestChoosers(t *testing.T) {
	f := newFake()
	s, err := QuerySupport(f.enhanced(), 1, 2)
	if err != nil {
		t.Fatal(err)
	}

	if got := ChooseSurfaceFormat(s.Formats); got.Format() != vk.FORMAT_B8G8R8A8_SRGB {
		t.Errorf("format = %v", got.Format())
	}
	if got := ChooseSurfaceFormat(s.Formats[:1]); got.Format() != vk.FORMAT_R8G8B8A8_UNORM {
		t.Errorf("fallback format = %v", got.Format())
	}
	if got := ChoosePresentMode(s.PresentModes); got != vk.PRESENT_MODE_MAILBOX_KHR {
		t.Errorf("present mode = %v", got)
	}
	if got := ChoosePresentMode([]vk.PresentModeKHR{vk.PRESENT_MODE_IMMEDIATE_KHR}); got != vk.PRESENT_MODE_FIFO_KHR {
		t.Errorf("fallback present mode = %v", got)
	}
	if got := ChooseImageCount(s.Capabilities); got != 3 {
		t.Errorf("image count = %d", got)
	}
}

func TestChooseExtent(t *testing.T) {
	tests := []struct {
		name          string
		current       native.Extent2D
		width, height uint32
		want          vk.Extent2D
	}{
		{"fixed by surface", native.Extent2D{Width: 800, Height: 600}, 1, 1, vk.MakeExtent2D(800, 600)},
		{"window size", native.Extent2D{Width: 0xFFFFFFFF, Height: 0xFFFFFFFF}, 640, 480, vk.MakeExtent2D(640, 480)},
		{"clamped low", native.Extent2D{Width: 0xFFFFFFFF, Height: 0xFFFFFFFF}, 1, 1, vk.MakeExtent2D(64, 64)},
		{"clamped high", native.Extent2D{Width: 0xFFFFFFFF, Height: 0xFFFFFFFF}, 4000, 4000, vk.MakeExtent2D(1920, 1080)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFake()
			f.caps.CurrentExtent = tt.current
			s, err := QuerySupport(f.enhanced(), 1, 2)
			if err != nil {
				t.Fatal(err)
			}
			if got := ChooseExtent(s.Capabilities, tt.width, tt.height); got != tt.want {
				t.Errorf("extent = %dx%d", got.Width(), got.Height())
			}
		})
	}
}

func TestCreate(t *testing.T) {
	f := newFake()
	e := f.enhanced()
	s, err := QuerySupport(e, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	sc, err := Create(e, 3, 2, s, 640, 480, vk.FlagsOf(vk.IMAGE_USAGE_TRANSFER_DST_BIT))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Handle != 77 || len(sc.Images) != 3 || len(sc.Views) != 3 {
		t.Fatalf("swapchain = %+v", sc)
	}
	info := f.created
	if info.SType != native.StructureType(vk.SWAPCHAIN_CREATE_INFO_KHR) || info.PNext != nil {
		t.Error("create info header not set")
	}
	if info.MinImageCount != 3 || info.PresentMode != int32(vk.PRESENT_MODE_MAILBOX_KHR) {
		t.Errorf("create info = %+v", *info)
	}
	wantUsage := vk.FlagsOf(vk.IMAGE_USAGE_TRANSFER_DST_BIT, vk.IMAGE_USAGE_COLOR_ATTACHMENT_BIT)
	if info.ImageUsage != wantUsage.Mask() {
		t.Errorf("usage = %#x, want %#x", info.ImageUsage, wantUsage.Mask())
	}
	if info.Clipped != 1 {
		t.Error("clipped should be VK_TRUE")
	}

	sc.Destroy(e, 3)
	if len(f.destroyed) != 4 || f.destroyed[3] != "swapchain" {
		t.Errorf("destroyed = %v", f.destroyed)
	}
}

func TestCreateCleansUpOnViewFailure(t *testing.T) {
	f := newFake()
	f.failViews = true
	e := f.enhanced()
	s, _ := QuerySupport(e, 1, 2)
	_, err := Create(e, 3, 2, s, 640, 480, 0)
	if !errors.Is(err, vk.OUT_OF_DEVICE_MEMORY) {
		t.Fatalf("err = %v", err)
	}
	if len(f.destroyed) != 2 || f.destroyed[0] != "view" || f.destroyed[1] != "swapchain" {
		t.Errorf("destroyed = %v", f.destroyed)
	}
}

func TestCreateRejectsEmptySupport(t *testing.T) {
	if _, err := Create(vk.Enhanced{}, 0, 0, Support{}, 1, 1, 0); !errors.Is(err, ErrNoFormats) {
		t.Errorf("err = %v", err)
	}
}
