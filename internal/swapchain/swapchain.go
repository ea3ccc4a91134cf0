// Package swapchain picks swapchain parameters for a surface and builds the
// swapchain with its image views.
package swapchain

import (
	"errors"
	"fmt"

	vk "github.com/NOT-REAL-GAMES/vk"
)

var (
	ErrNoFormats      = errors.New("surface reports no formats")
	ErrNoPresentModes = errors.New("surface reports no present modes")
)

type Support struct {
	Capabilities vk.SurfaceCapabilitiesKHR
	Formats      []vk.SurfaceFormatKHR
	PresentModes []vk.PresentModeKHR
}

// QuerySupport reads the surface capabilities, formats and present modes of
// physicalDevice.
func QuerySupport(e vk.Enhanced, physicalDevice vk.PhysicalDevice, surface vk.SurfaceKHR) (Support, error) {
	var s Support
	var r vk.Result

	if s.Capabilities, r = e.GetPhysicalDeviceSurfaceCapabilitiesKHR(physicalDevice, surface); r != vk.SUCCESS {
		return s, fmt.Errorf("surface capabilities: %w", r)
	}
	if s.Formats, r = e.GetPhysicalDeviceSurfaceFormatsKHR(physicalDevice, surface); !listed(r) {
		return s, fmt.Errorf("surface formats: %w", r)
	}
	if s.PresentModes, r = e.GetPhysicalDeviceSurfacePresentModesKHR(physicalDevice, surface); !listed(r) {
		return s, fmt.Errorf("present modes: %w", r)
	}
	return s, nil
}

// listed accepts SUCCESS and INCOMPLETE from an enumeration. INCOMPLETE only
// means the list grew between the two calls; the prefix returned is valid.
func listed(r vk.Result) bool {
	return r == vk.SUCCESS || r == vk.INCOMPLETE
}

// ChooseSurfaceFormat prefers B8G8R8A8_SRGB with the sRGB nonlinear color
// space and otherwise takes the first format. formats must not be empty.
func ChooseSurfaceFormat(formats []vk.SurfaceFormatKHR) vk.SurfaceFormatKHR {
	for _, f := range formats {
		if f.Format() == vk.FORMAT_B8G8R8A8_SRGB && f.ColorSpace() == vk.COLOR_SPACE_SRGB_NONLINEAR_KHR {
			return f
		}
	}
	return formats[0]
}

// ChoosePresentMode prefers mailbox and falls back to FIFO, which every
// implementation supports.
func ChoosePresentMode(modes []vk.PresentModeKHR) vk.PresentModeKHR {
	for _, m := range modes {
		if m == vk.PRESENT_MODE_MAILBOX_KHR {
			return m
		}
	}
	return vk.PRESENT_MODE_FIFO_KHR
}

// ChooseExtent returns the surface's current extent, or the window size
// clamped to the allowed range when the surface leaves it to the swapchain
// (current width 0xFFFFFFFF).
func ChooseExtent(caps vk.SurfaceCapabilitiesKHR, width, height uint32) vk.Extent2D {
	if caps.CurrentExtent().Width() != 0xFFFFFFFF {
		return caps.CurrentExtent()
	}
	lo, hi := caps.MinImageExtent(), caps.MaxImageExtent()
	return vk.MakeExtent2D(
		clamp(width, lo.Width(), hi.Width()),
		clamp(height, lo.Height(), hi.Height()),
	)
}

// ChooseImageCount asks for one image more than the minimum, capped by the
// maximum (0 means unbounded).
func ChooseImageCount(caps vk.SurfaceCapabilitiesKHR) uint32 {
	n := caps.MinImageCount() + 1
	if caps.MaxImageCount() > 0 && n > caps.MaxImageCount() {
		n = caps.MaxImageCount()
	}
	return n
}

func clamp(v, lo, hi uint32) uint32 {
	return max(lo, min(v, hi))
}

// Swapchain owns a swapchain and one color view per image.
type Swapchain struct {
	Handle vk.SwapchainKHR
	Format vk.SurfaceFormatKHR
	Extent vk.Extent2D
	Images []vk.Image
	Views  []vk.ImageView
}

// Create builds a swapchain for surface. usage is added to color attachment
// usage; vkclear adds TRANSFER_DST so it can clear the images directly.
func Create(e vk.Enhanced, device vk.Device, surface vk.SurfaceKHR, support Support, width, height uint32, usage vk.ImageUsageFlags) (*Swapchain, error) {
	if len(support.Formats) == 0 {
		return nil, ErrNoFormats
	}
	if len(support.PresentModes) == 0 {
		return nil, ErrNoPresentModes
	}

	format := ChooseSurfaceFormat(support.Formats)
	sc := &Swapchain{
		Format: format,
		Extent: ChooseExtent(support.Capabilities, width, height),
	}

	info := vk.MakeSwapchainCreateInfoKHR(
		0,
		surface,
		ChooseImageCount(support.Capabilities),
		format.Format(),
		format.ColorSpace(),
		sc.Extent,
		1,
		usage.OrBit(vk.IMAGE_USAGE_COLOR_ATTACHMENT_BIT),
		vk.SHARING_MODE_EXCLUSIVE,
		0,
		nil,
		support.Capabilities.CurrentTransform(),
		vk.COMPOSITE_ALPHA_OPAQUE_BIT_KHR,
		ChoosePresentMode(support.PresentModes),
		true,
		vk.NULL_HANDLE,
	)

	var r vk.Result
	if sc.Handle, r = e.CreateSwapchainKHR(device, &info, nil); r != vk.SUCCESS {
		return nil, fmt.Errorf("create swapchain: %w", r)
	}
	if sc.Images, r = e.GetSwapchainImagesKHR(device, sc.Handle); r != vk.SUCCESS {
		sc.Destroy(e, device)
		return nil, fmt.Errorf("swapchain images: %w", r)
	}

	identity := vk.MakeComponentMapping(
		vk.COMPONENT_SWIZZLE_IDENTITY,
		vk.COMPONENT_SWIZZLE_IDENTITY,
		vk.COMPONENT_SWIZZLE_IDENTITY,
		vk.COMPONENT_SWIZZLE_IDENTITY,
	)
	for _, img := range sc.Images {
		viewInfo := vk.MakeImageViewCreateInfo(0, img, vk.IMAGE_VIEW_TYPE_2D, format.Format(), identity, ColorRange())
		view, r := e.CreateImageView(device, &viewInfo, nil)
		if r != vk.SUCCESS {
			sc.Destroy(e, device)
			return nil, fmt.Errorf("swapchain image view: %w", r)
		}
		sc.Views = append(sc.Views, view)
	}
	return sc, nil
}

// Destroy releases the views and the swapchain. The images belong to the
// swapchain and are not destroyed individually.
func (sc *Swapchain) Destroy(e vk.Enhanced, device vk.Device) {
	for _, v := range sc.Views {
		e.DestroyImageView(device, v, nil)
	}
	sc.Views = nil
	if sc.Handle != vk.NULL_HANDLE {
		e.DestroySwapchainKHR(device, sc.Handle, nil)
		sc.Handle = vk.NULL_HANDLE
	}
}

// ColorRange covers the single mip level and array layer of a swapchain
// image.
func ColorRange() vk.ImageSubresourceRange {
	return vk.MakeImageSubresourceRange(vk.FlagsOf(vk.IMAGE_ASPECT_COLOR_BIT), 0, 1, 0, 1)
}
