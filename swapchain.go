// swapchain.go
package vk

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// SwapchainCreateInfoKHR wraps VkSwapchainCreateInfoKHR.
type SwapchainCreateInfoKHR struct {
	raw native.SwapchainCreateInfoKHR
}

func MakeSwapchainCreateInfoKHR(
	flags SwapchainCreateFlagsKHR,
	surface SurfaceKHR,
	minImageCount uint32,
	imageFormat Format,
	imageColorSpace ColorSpaceKHR,
	imageExtent Extent2D,
	imageArrayLayers uint32,
	imageUsage ImageUsageFlags,
	imageSharingMode SharingMode,
	queueFamilyIndexCount uint32,
	queueFamilyIndices *uint32,
	preTransform SurfaceTransformFlagBitsKHR,
	compositeAlpha CompositeAlphaFlagBitsKHR,
	presentMode PresentModeKHR,
	clipped bool,
	oldSwapchain SwapchainKHR,
) SwapchainCreateInfoKHR {
	return SwapchainCreateInfoKHR{raw: native.SwapchainCreateInfoKHR{
		SType:                 native.StructureType(SWAPCHAIN_CREATE_INFO_KHR),
		Flags:                 native.Flags(flags),
		Surface:               native.SurfaceKHR(surface),
		MinImageCount:         minImageCount,
		ImageFormat:           int32(imageFormat),
		ImageColorSpace:       int32(imageColorSpace),
		ImageExtent:           imageExtent.raw,
		ImageArrayLayers:      imageArrayLayers,
		ImageUsage:            native.Flags(imageUsage),
		ImageSharingMode:      int32(imageSharingMode),
		QueueFamilyIndexCount: queueFamilyIndexCount,
		PQueueFamilyIndices:   queueFamilyIndices,
		PreTransform:          native.Flags(preTransform),
		CompositeAlpha:        native.Flags(compositeAlpha),
		PresentMode:           int32(presentMode),
		Clipped:               bool32(clipped),
		OldSwapchain:          native.SwapchainKHR(oldSwapchain),
	}}
}

func NewSwapchainCreateInfoKHR() *SwapchainCreateInfoKHR {
	return &SwapchainCreateInfoKHR{raw: native.SwapchainCreateInfoKHR{SType: native.StructureType(SWAPCHAIN_CREATE_INFO_KHR)}}
}

func (s SwapchainCreateInfoKHR) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *SwapchainCreateInfoKHR) SetSType(sType StructureType) *SwapchainCreateInfoKHR {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s SwapchainCreateInfoKHR) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *SwapchainCreateInfoKHR) SetNext(next unsafe.Pointer) *SwapchainCreateInfoKHR {
	s.raw.PNext = next
	return s
}

func (s SwapchainCreateInfoKHR) Flags() SwapchainCreateFlagsKHR {
	return SwapchainCreateFlagsKHR(s.raw.Flags)
}

func (s *SwapchainCreateInfoKHR) SetFlags(flags SwapchainCreateFlagsKHR) *SwapchainCreateInfoKHR {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s SwapchainCreateInfoKHR) Surface() SurfaceKHR {
	return SurfaceKHR(s.raw.Surface)
}

func (s *SwapchainCreateInfoKHR) SetSurface(surface SurfaceKHR) *SwapchainCreateInfoKHR {
	s.raw.Surface = native.SurfaceKHR(surface)
	return s
}

func (s SwapchainCreateInfoKHR) MinImageCount() uint32 {
	return s.raw.MinImageCount
}

func (s *SwapchainCreateInfoKHR) SetMinImageCount(minImageCount uint32) *SwapchainCreateInfoKHR {
	s.raw.MinImageCount = minImageCount
	return s
}

func (s SwapchainCreateInfoKHR) ImageFormat() Format {
	return Format(s.raw.ImageFormat)
}

func (s *SwapchainCreateInfoKHR) SetImageFormat(imageFormat Format) *SwapchainCreateInfoKHR {
	s.raw.ImageFormat = int32(imageFormat)
	return s
}

func (s SwapchainCreateInfoKHR) ImageColorSpace() ColorSpaceKHR {
	return ColorSpaceKHR(s.raw.ImageColorSpace)
}

func (s *SwapchainCreateInfoKHR) SetImageColorSpace(imageColorSpace ColorSpaceKHR) *SwapchainCreateInfoKHR {
	s.raw.ImageColorSpace = int32(imageColorSpace)
	return s
}

func (s SwapchainCreateInfoKHR) ImageExtent() Extent2D {
	return Extent2D{raw: s.raw.ImageExtent}
}

func (s *SwapchainCreateInfoKHR) SetImageExtent(imageExtent Extent2D) *SwapchainCreateInfoKHR {
	s.raw.ImageExtent = imageExtent.raw
	return s
}

func (s SwapchainCreateInfoKHR) ImageArrayLayers() uint32 {
	return s.raw.ImageArrayLayers
}

func (s *SwapchainCreateInfoKHR) SetImageArrayLayers(imageArrayLayers uint32) *SwapchainCreateInfoKHR {
	s.raw.ImageArrayLayers = imageArrayLayers
	return s
}

func (s SwapchainCreateInfoKHR) ImageUsage() ImageUsageFlags {
	return ImageUsageFlags(s.raw.ImageUsage)
}

func (s *SwapchainCreateInfoKHR) SetImageUsage(imageUsage ImageUsageFlags) *SwapchainCreateInfoKHR {
	s.raw.ImageUsage = native.Flags(imageUsage)
	return s
}

func (s SwapchainCreateInfoKHR) ImageSharingMode() SharingMode {
	return SharingMode(s.raw.ImageSharingMode)
}

func (s *SwapchainCreateInfoKHR) SetImageSharingMode(imageSharingMode SharingMode) *SwapchainCreateInfoKHR {
	s.raw.ImageSharingMode = int32(imageSharingMode)
	return s
}

func (s SwapchainCreateInfoKHR) QueueFamilyIndexCount() uint32 {
	return s.raw.QueueFamilyIndexCount
}

func (s *SwapchainCreateInfoKHR) SetQueueFamilyIndexCount(queueFamilyIndexCount uint32) *SwapchainCreateInfoKHR {
	s.raw.QueueFamilyIndexCount = queueFamilyIndexCount
	return s
}

func (s SwapchainCreateInfoKHR) QueueFamilyIndices() *uint32 {
	return s.raw.PQueueFamilyIndices
}

func (s *SwapchainCreateInfoKHR) SetQueueFamilyIndices(queueFamilyIndices *uint32) *SwapchainCreateInfoKHR {
	s.raw.PQueueFamilyIndices = queueFamilyIndices
	return s
}

func (s SwapchainCreateInfoKHR) PreTransform() SurfaceTransformFlagBitsKHR {
	return SurfaceTransformFlagBitsKHR(s.raw.PreTransform)
}

func (s *SwapchainCreateInfoKHR) SetPreTransform(preTransform SurfaceTransformFlagBitsKHR) *SwapchainCreateInfoKHR {
	s.raw.PreTransform = native.Flags(preTransform)
	return s
}

func (s SwapchainCreateInfoKHR) CompositeAlpha() CompositeAlphaFlagBitsKHR {
	return CompositeAlphaFlagBitsKHR(s.raw.CompositeAlpha)
}

func (s *SwapchainCreateInfoKHR) SetCompositeAlpha(compositeAlpha CompositeAlphaFlagBitsKHR) *SwapchainCreateInfoKHR {
	s.raw.CompositeAlpha = native.Flags(compositeAlpha)
	return s
}

func (s SwapchainCreateInfoKHR) PresentMode() PresentModeKHR {
	return PresentModeKHR(s.raw.PresentMode)
}

func (s *SwapchainCreateInfoKHR) SetPresentMode(presentMode PresentModeKHR) *SwapchainCreateInfoKHR {
	s.raw.PresentMode = int32(presentMode)
	return s
}

func (s SwapchainCreateInfoKHR) Clipped() bool {
	return s.raw.Clipped != 0
}

func (s *SwapchainCreateInfoKHR) SetClipped(clipped bool) *SwapchainCreateInfoKHR {
	s.raw.Clipped = bool32(clipped)
	return s
}

func (s SwapchainCreateInfoKHR) OldSwapchain() SwapchainKHR {
	return SwapchainKHR(s.raw.OldSwapchain)
}

func (s *SwapchainCreateInfoKHR) SetOldSwapchain(oldSwapchain SwapchainKHR) *SwapchainCreateInfoKHR {
	s.raw.OldSwapchain = native.SwapchainKHR(oldSwapchain)
	return s
}

func (s SwapchainCreateInfoKHR) Native() native.SwapchainCreateInfoKHR {
	return s.raw
}

// PresentInfoKHR wraps VkPresentInfoKHR.
type PresentInfoKHR struct {
	raw native.PresentInfoKHR
}

func MakePresentInfoKHR(
	waitSemaphoreCount uint32,
	waitSemaphores *Semaphore,
	swapchainCount uint32,
	swapchains *SwapchainKHR,
	imageIndices *uint32,
	results *Result,
) PresentInfoKHR {
	return PresentInfoKHR{raw: native.PresentInfoKHR{
		SType:              native.StructureType(PRESENT_INFO_KHR),
		WaitSemaphoreCount: waitSemaphoreCount,
		PWaitSemaphores:    (*native.Semaphore)(unsafe.Pointer(waitSemaphores)),
		SwapchainCount:     swapchainCount,
		PSwapchains:        (*native.SwapchainKHR)(unsafe.Pointer(swapchains)),
		PImageIndices:      imageIndices,
		PResults:           (*native.Result)(unsafe.Pointer(results)),
	}}
}

func NewPresentInfoKHR() *PresentInfoKHR {
	return &PresentInfoKHR{raw: native.PresentInfoKHR{SType: native.StructureType(PRESENT_INFO_KHR)}}
}

func (s PresentInfoKHR) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *PresentInfoKHR) SetSType(sType StructureType) *PresentInfoKHR {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s PresentInfoKHR) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *PresentInfoKHR) SetNext(next unsafe.Pointer) *PresentInfoKHR {
	s.raw.PNext = next
	return s
}

func (s PresentInfoKHR) WaitSemaphoreCount() uint32 {
	return s.raw.WaitSemaphoreCount
}

func (s *PresentInfoKHR) SetWaitSemaphoreCount(waitSemaphoreCount uint32) *PresentInfoKHR {
	s.raw.WaitSemaphoreCount = waitSemaphoreCount
	return s
}

func (s PresentInfoKHR) WaitSemaphores() *Semaphore {
	return (*Semaphore)(unsafe.Pointer(s.raw.PWaitSemaphores))
}

func (s *PresentInfoKHR) SetWaitSemaphores(waitSemaphores *Semaphore) *PresentInfoKHR {
	s.raw.PWaitSemaphores = (*native.Semaphore)(unsafe.Pointer(waitSemaphores))
	return s
}

func (s PresentInfoKHR) SwapchainCount() uint32 {
	return s.raw.SwapchainCount
}

func (s *PresentInfoKHR) SetSwapchainCount(swapchainCount uint32) *PresentInfoKHR {
	s.raw.SwapchainCount = swapchainCount
	return s
}

func (s PresentInfoKHR) Swapchains() *SwapchainKHR {
	return (*SwapchainKHR)(unsafe.Pointer(s.raw.PSwapchains))
}

func (s *PresentInfoKHR) SetSwapchains(swapchains *SwapchainKHR) *PresentInfoKHR {
	s.raw.PSwapchains = (*native.SwapchainKHR)(unsafe.Pointer(swapchains))
	return s
}

func (s PresentInfoKHR) ImageIndices() *uint32 {
	return s.raw.PImageIndices
}

func (s *PresentInfoKHR) SetImageIndices(imageIndices *uint32) *PresentInfoKHR {
	s.raw.PImageIndices = imageIndices
	return s
}

func (s PresentInfoKHR) Results() *Result {
	return (*Result)(unsafe.Pointer(s.raw.PResults))
}

func (s *PresentInfoKHR) SetResults(results *Result) *PresentInfoKHR {
	s.raw.PResults = (*native.Result)(unsafe.Pointer(results))
	return s
}

func (s PresentInfoKHR) Native() native.PresentInfoKHR {
	return s.raw
}

func (d *Dispatch) CreateSwapchainKHR(
	device Device,
	createInfo *SwapchainCreateInfoKHR,
	allocator *AllocationCallbacks,
	swapchain *SwapchainKHR,
) Result {
	return Result(d.cmds.CreateSwapchainKHR(
		native.Device(device),
		(*native.SwapchainCreateInfoKHR)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.SwapchainKHR)(unsafe.Pointer(swapchain)),
	))
}

func (d *Dispatch) DestroySwapchainKHR(
	device Device,
	swapchain SwapchainKHR,
	allocator *AllocationCallbacks,
) {
	d.cmds.DestroySwapchainKHR(
		native.Device(device),
		native.SwapchainKHR(swapchain),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}

func (d *Dispatch) GetSwapchainImagesKHR(
	device Device,
	swapchain SwapchainKHR,
	swapchainImageCount *uint32,
	swapchainImages *Image,
) Result {
	return Result(d.cmds.GetSwapchainImagesKHR(
		native.Device(device),
		native.SwapchainKHR(swapchain),
		swapchainImageCount,
		(*native.Image)(unsafe.Pointer(swapchainImages)),
	))
}

func (d *Dispatch) AcquireNextImageKHR(
	device Device,
	swapchain SwapchainKHR,
	timeout uint64,
	semaphore Semaphore,
	fence Fence,
	imageIndex *uint32,
) Result {
	return Result(d.cmds.AcquireNextImageKHR(
		native.Device(device),
		native.SwapchainKHR(swapchain),
		timeout,
		native.Semaphore(semaphore),
		native.Fence(fence),
		imageIndex,
	))
}

func (d *Dispatch) QueuePresentKHR(queue Queue, presentInfo *PresentInfoKHR) Result {
	return Result(d.cmds.QueuePresentKHR(native.Queue(queue), (*native.PresentInfoKHR)(unsafe.Pointer(presentInfo))))
}
