// surface.go
package vk

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// SurfaceCapabilitiesKHR wraps VkSurfaceCapabilitiesKHR.
type SurfaceCapabilitiesKHR struct {
	raw native.SurfaceCapabilitiesKHR
}

func (s SurfaceCapabilitiesKHR) MinImageCount() uint32 {
	return s.raw.MinImageCount
}

func (s SurfaceCapabilitiesKHR) MaxImageCount() uint32 {
	return s.raw.MaxImageCount
}

func (s SurfaceCapabilitiesKHR) CurrentExtent() Extent2D {
	return Extent2D{raw: s.raw.CurrentExtent}
}

func (s SurfaceCapabilitiesKHR) MinImageExtent() Extent2D {
	return Extent2D{raw: s.raw.MinImageExtent}
}

func (s SurfaceCapabilitiesKHR) MaxImageExtent() Extent2D {
	return Extent2D{raw: s.raw.MaxImageExtent}
}

func (s SurfaceCapabilitiesKHR) MaxImageArrayLayers() uint32 {
	return s.raw.MaxImageArrayLayers
}

func (s SurfaceCapabilitiesKHR) SupportedTransforms() SurfaceTransformFlagsKHR {
	return SurfaceTransformFlagsKHR(s.raw.SupportedTransforms)
}

func (s SurfaceCapabilitiesKHR) CurrentTransform() SurfaceTransformFlagBitsKHR {
	return SurfaceTransformFlagBitsKHR(s.raw.CurrentTransform)
}

func (s SurfaceCapabilitiesKHR) SupportedCompositeAlpha() CompositeAlphaFlagsKHR {
	return CompositeAlphaFlagsKHR(s.raw.SupportedCompositeAlpha)
}

func (s SurfaceCapabilitiesKHR) SupportedUsageFlags() ImageUsageFlags {
	return ImageUsageFlags(s.raw.SupportedUsageFlags)
}

func (s SurfaceCapabilitiesKHR) Native() native.SurfaceCapabilitiesKHR {
	return s.raw
}

// SurfaceFormatKHR wraps VkSurfaceFormatKHR.
type SurfaceFormatKHR struct {
	raw native.SurfaceFormatKHR
}

func (s SurfaceFormatKHR) Format() Format {
	return Format(s.raw.Format)
}

func (s SurfaceFormatKHR) ColorSpace() ColorSpaceKHR {
	return ColorSpaceKHR(s.raw.ColorSpace)
}

func (s SurfaceFormatKHR) Native() native.SurfaceFormatKHR {
	return s.raw
}

func (d *Dispatch) DestroySurfaceKHR(instance Instance, surface SurfaceKHR, allocator *AllocationCallbacks) {
	d.cmds.DestroySurfaceKHR(
		native.Instance(instance),
		native.SurfaceKHR(surface),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}

func (d *Dispatch) GetPhysicalDeviceSurfaceSupportKHR(
	physicalDevice PhysicalDevice,
	queueFamilyIndex uint32,
	surface SurfaceKHR,
	supported *Bool32,
) Result {
	return Result(d.cmds.GetPhysicalDeviceSurfaceSupportKHR(
		native.PhysicalDevice(physicalDevice),
		queueFamilyIndex,
		native.SurfaceKHR(surface),
		supported,
	))
}

func (d *Dispatch) GetPhysicalDeviceSurfaceCapabilitiesKHR(
	physicalDevice PhysicalDevice,
	surface SurfaceKHR,
	surfaceCapabilities *SurfaceCapabilitiesKHR,
) Result {
	return Result(d.cmds.GetPhysicalDeviceSurfaceCapabilitiesKHR(
		native.PhysicalDevice(physicalDevice),
		native.SurfaceKHR(surface),
		(*native.SurfaceCapabilitiesKHR)(unsafe.Pointer(surfaceCapabilities)),
	))
}

func (d *Dispatch) GetPhysicalDeviceSurfaceFormatsKHR(
	physicalDevice PhysicalDevice,
	surface SurfaceKHR,
	surfaceFormatCount *uint32,
	surfaceFormats *SurfaceFormatKHR,
) Result {
	return Result(d.cmds.GetPhysicalDeviceSurfaceFormatsKHR(
		native.PhysicalDevice(physicalDevice),
		native.SurfaceKHR(surface),
		surfaceFormatCount,
		(*native.SurfaceFormatKHR)(unsafe.Pointer(surfaceFormats)),
	))
}

func (d *Dispatch) GetPhysicalDeviceSurfacePresentModesKHR(
	physicalDevice PhysicalDevice,
	surface SurfaceKHR,
	presentModeCount *uint32,
	presentModes *PresentModeKHR,
) Result {
	return Result(d.cmds.GetPhysicalDeviceSurfacePresentModesKHR(
		native.PhysicalDevice(physicalDevice),
		native.SurfaceKHR(surface),
		presentModeCount,
		(*int32)(unsafe.Pointer(presentModes)),
	))
}
