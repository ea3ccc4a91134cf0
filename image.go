// image.go
package vk

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// ImageCreateInfo wraps VkImageCreateInfo.
type ImageCreateInfo struct {
	raw native.ImageCreateInfo
}

func MakeImageCreateInfo(
	flags ImageCreateFlags,
	imageType ImageType,
	format Format,
	extent Extent3D,
	mipLevels uint32,
	arrayLayers uint32,
	samples SampleCountFlagBits,
	tiling ImageTiling,
	usage ImageUsageFlags,
	sharingMode SharingMode,
	queueFamilyIndexCount uint32,
	queueFamilyIndices *uint32,
	initialLayout ImageLayout,
) ImageCreateInfo {
	return ImageCreateInfo{raw: native.ImageCreateInfo{
		SType:                 native.StructureType(IMAGE_CREATE_INFO),
		Flags:                 native.Flags(flags),
		ImageType:             int32(imageType),
		Format:                int32(format),
		Extent:                extent.raw,
		MipLevels:             mipLevels,
		ArrayLayers:           arrayLayers,
		Samples:               native.Flags(samples),
		Tiling:                int32(tiling),
		Usage:                 native.Flags(usage),
		SharingMode:           int32(sharingMode),
		QueueFamilyIndexCount: queueFamilyIndexCount,
		PQueueFamilyIndices:   queueFamilyIndices,
		InitialLayout:         int32(initialLayout),
	}}
}

func NewImageCreateInfo() *ImageCreateInfo {
	return &ImageCreateInfo{raw: native.ImageCreateInfo{SType: native.StructureType(IMAGE_CREATE_INFO)}}
}

func (s ImageCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *ImageCreateInfo) SetSType(sType StructureType) *ImageCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s ImageCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *ImageCreateInfo) SetNext(next unsafe.Pointer) *ImageCreateInfo {
	s.raw.PNext = next
	return s
}

func (s ImageCreateInfo) Flags() ImageCreateFlags {
	return ImageCreateFlags(s.raw.Flags)
}

func (s *ImageCreateInfo) SetFlags(flags ImageCreateFlags) *ImageCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s ImageCreateInfo) ImageType() ImageType {
	return ImageType(s.raw.ImageType)
}

func (s *ImageCreateInfo) SetImageType(imageType ImageType) *ImageCreateInfo {
	s.raw.ImageType = int32(imageType)
	return s
}

func (s ImageCreateInfo) Format() Format {
	return Format(s.raw.Format)
}

func (s *ImageCreateInfo) SetFormat(format Format) *ImageCreateInfo {
	s.raw.Format = int32(format)
	return s
}

func (s ImageCreateInfo) Extent() Extent3D {
	return Extent3D{raw: s.raw.Extent}
}

func (s *ImageCreateInfo) SetExtent(extent Extent3D) *ImageCreateInfo {
	s.raw.Extent = extent.raw
	return s
}

func (s ImageCreateInfo) MipLevels() uint32 {
	return s.raw.MipLevels
}

func (s *ImageCreateInfo) SetMipLevels(mipLevels uint32) *ImageCreateInfo {
	s.raw.MipLevels = mipLevels
	return s
}

func (s ImageCreateInfo) ArrayLayers() uint32 {
	return s.raw.ArrayLayers
}

func (s *ImageCreateInfo) SetArrayLayers(arrayLayers uint32) *ImageCreateInfo {
	s.raw.ArrayLayers = arrayLayers
	return s
}

func (s ImageCreateInfo) Samples() SampleCountFlagBits {
	return SampleCountFlagBits(s.raw.Samples)
}

func (s *ImageCreateInfo) SetSamples(samples SampleCountFlagBits) *ImageCreateInfo {
	s.raw.Samples = native.Flags(samples)
	return s
}

func (s ImageCreateInfo) Tiling() ImageTiling {
	return ImageTiling(s.raw.Tiling)
}

func (s *ImageCreateInfo) SetTiling(tiling ImageTiling) *ImageCreateInfo {
	s.raw.Tiling = int32(tiling)
	return s
}

func (s ImageCreateInfo) Usage() ImageUsageFlags {
	return ImageUsageFlags(s.raw.Usage)
}

func (s *ImageCreateInfo) SetUsage(usage ImageUsageFlags) *ImageCreateInfo {
	s.raw.Usage = native.Flags(usage)
	return s
}

func (s ImageCreateInfo) SharingMode() SharingMode {
	return SharingMode(s.raw.SharingMode)
}

func (s *ImageCreateInfo) SetSharingMode(sharingMode SharingMode) *ImageCreateInfo {
	s.raw.SharingMode = int32(sharingMode)
	return s
}

func (s ImageCreateInfo) QueueFamilyIndexCount() uint32 {
	return s.raw.QueueFamilyIndexCount
}

func (s *ImageCreateInfo) SetQueueFamilyIndexCount(queueFamilyIndexCount uint32) *ImageCreateInfo {
	s.raw.QueueFamilyIndexCount = queueFamilyIndexCount
	return s
}

func (s ImageCreateInfo) QueueFamilyIndices() *uint32 {
	return s.raw.PQueueFamilyIndices
}

func (s *ImageCreateInfo) SetQueueFamilyIndices(queueFamilyIndices *uint32) *ImageCreateInfo {
	s.raw.PQueueFamilyIndices = queueFamilyIndices
	return s
}

func (s ImageCreateInfo) InitialLayout() ImageLayout {
	return ImageLayout(s.raw.InitialLayout)
}

func (s *ImageCreateInfo) SetInitialLayout(initialLayout ImageLayout) *ImageCreateInfo {
	s.raw.InitialLayout = int32(initialLayout)
	return s
}

func (s ImageCreateInfo) Native() native.ImageCreateInfo {
	return s.raw
}

func (d *Dispatch) CreateImage(
	device Device,
	createInfo *ImageCreateInfo,
	allocator *AllocationCallbacks,
	image *Image,
) Result {
	return Result(d.cmds.CreateImage(
		native.Device(device),
		(*native.ImageCreateInfo)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.Image)(unsafe.Pointer(image)),
	))
}

func (d *Dispatch) DestroyImage(device Device, image Image, allocator *AllocationCallbacks) {
	d.cmds.DestroyImage(
		native.Device(device),
		native.Image(image),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}

func (d *Dispatch) BindImageMemory(
	device Device,
	image Image,
	memory DeviceMemory,
	memoryOffset DeviceSize,
) Result {
	return Result(d.cmds.BindImageMemory(
		native.Device(device),
		native.Image(image),
		native.DeviceMemory(memory),
		memoryOffset,
	))
}

func (d *Dispatch) GetImageMemoryRequirements(
	device Device,
	image Image,
	memoryRequirements *MemoryRequirements,
) {
	d.cmds.GetImageMemoryRequirements(
		native.Device(device),
		native.Image(image),
		(*native.MemoryRequirements)(unsafe.Pointer(memoryRequirements)),
	)
}
