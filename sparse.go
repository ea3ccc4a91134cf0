// sparse.go
package vk

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// SparseMemoryBind wraps VkSparseMemoryBind.
type SparseMemoryBind struct {
	raw native.SparseMemoryBind
}

func MakeSparseMemoryBind(
	resourceOffset DeviceSize,
	size DeviceSize,
	memory DeviceMemory,
	memoryOffset DeviceSize,
	flags SparseMemoryBindFlags,
) SparseMemoryBind {
	return SparseMemoryBind{raw: native.SparseMemoryBind{
		ResourceOffset: resourceOffset,
		Size:           size,
		Memory:         native.DeviceMemory(memory),
		MemoryOffset:   memoryOffset,
		Flags:          native.Flags(flags),
	}}
}

func NewSparseMemoryBind() *SparseMemoryBind {
	return &SparseMemoryBind{}
}

func (s SparseMemoryBind) ResourceOffset() DeviceSize {
	return s.raw.ResourceOffset
}

func (s *SparseMemoryBind) SetResourceOffset(resourceOffset DeviceSize) *SparseMemoryBind {
	s.raw.ResourceOffset = resourceOffset
	return s
}

func (s SparseMemoryBind) Size() DeviceSize {
	return s.raw.Size
}

func (s *SparseMemoryBind) SetSize(size DeviceSize) *SparseMemoryBind {
	s.raw.Size = size
	return s
}

func (s SparseMemoryBind) Memory() DeviceMemory {
	return DeviceMemory(s.raw.Memory)
}

func (s *SparseMemoryBind) SetMemory(memory DeviceMemory) *SparseMemoryBind {
	s.raw.Memory = native.DeviceMemory(memory)
	return s
}

func (s SparseMemoryBind) MemoryOffset() DeviceSize {
	return s.raw.MemoryOffset
}

func (s *SparseMemoryBind) SetMemoryOffset(memoryOffset DeviceSize) *SparseMemoryBind {
	s.raw.MemoryOffset = memoryOffset
	return s
}

func (s SparseMemoryBind) Flags() SparseMemoryBindFlags {
	return SparseMemoryBindFlags(s.raw.Flags)
}

func (s *SparseMemoryBind) SetFlags(flags SparseMemoryBindFlags) *SparseMemoryBind {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s SparseMemoryBind) Native() native.SparseMemoryBind {
	return s.raw
}

// SparseBufferMemoryBindInfo wraps VkSparseBufferMemoryBindInfo.
type SparseBufferMemoryBindInfo struct {
	raw native.SparseBufferMemoryBindInfo
}

func MakeSparseBufferMemoryBindInfo(buffer Buffer, bindCount uint32, binds *SparseMemoryBind) SparseBufferMemoryBindInfo {
	return SparseBufferMemoryBindInfo{raw: native.SparseBufferMemoryBindInfo{
		Buffer:    native.Buffer(buffer),
		BindCount: bindCount,
		PBinds:    (*native.SparseMemoryBind)(unsafe.Pointer(binds)),
	}}
}

func NewSparseBufferMemoryBindInfo() *SparseBufferMemoryBindInfo {
	return &SparseBufferMemoryBindInfo{}
}

func (s SparseBufferMemoryBindInfo) Buffer() Buffer {
	return Buffer(s.raw.Buffer)
}

func (s *SparseBufferMemoryBindInfo) SetBuffer(buffer Buffer) *SparseBufferMemoryBindInfo {
	s.raw.Buffer = native.Buffer(buffer)
	return s
}

func (s SparseBufferMemoryBindInfo) BindCount() uint32 {
	return s.raw.BindCount
}

func (s *SparseBufferMemoryBindInfo) SetBindCount(bindCount uint32) *SparseBufferMemoryBindInfo {
	s.raw.BindCount = bindCount
	return s
}

func (s SparseBufferMemoryBindInfo) Binds() *SparseMemoryBind {
	return (*SparseMemoryBind)(unsafe.Pointer(s.raw.PBinds))
}

func (s *SparseBufferMemoryBindInfo) SetBinds(binds *SparseMemoryBind) *SparseBufferMemoryBindInfo {
	s.raw.PBinds = (*native.SparseMemoryBind)(unsafe.Pointer(binds))
	return s
}

func (s SparseBufferMemoryBindInfo) Native() native.SparseBufferMemoryBindInfo {
	return s.raw
}

// SparseImageOpaqueMemoryBindInfo wraps VkSparseImageOpaqueMemoryBindInfo.
type SparseImageOpaqueMemoryBindInfo struct {
	raw native.SparseImageOpaqueMemoryBindInfo
}

func MakeSparseImageOpaqueMemoryBindInfo(image Image, bindCount uint32, binds *SparseMemoryBind) SparseImageOpaqueMemoryBindInfo {
	return SparseImageOpaqueMemoryBindInfo{raw: native.SparseImageOpaqueMemoryBindInfo{
		Image:     native.Image(image),
		BindCount: bindCount,
		PBinds:    (*native.SparseMemoryBind)(unsafe.Pointer(binds)),
	}}
}

func NewSparseImageOpaqueMemoryBindInfo() *SparseImageOpaqueMemoryBindInfo {
	return &SparseImageOpaqueMemoryBindInfo{}
}

func (s SparseImageOpaqueMemoryBindInfo) Image() Image {
	return Image(s.raw.Image)
}

func (s *SparseImageOpaqueMemoryBindInfo) SetImage(image Image) *SparseImageOpaqueMemoryBindInfo {
	s.raw.Image = native.Image(image)
	return s
}

func (s SparseImageOpaqueMemoryBindInfo) BindCount() uint32 {
	return s.raw.BindCount
}

func (s *SparseImageOpaqueMemoryBindInfo) SetBindCount(bindCount uint32) *SparseImageOpaqueMemoryBindInfo {
	s.raw.BindCount = bindCount
	return s
}

func (s SparseImageOpaqueMemoryBindInfo) Binds() *SparseMemoryBind {
	return (*SparseMemoryBind)(unsafe.Pointer(s.raw.PBinds))
}

func (s *SparseImageOpaqueMemoryBindInfo) SetBinds(binds *SparseMemoryBind) *SparseImageOpaqueMemoryBindInfo {
	s.raw.PBinds = (*native.SparseMemoryBind)(unsafe.Pointer(binds))
	return s
}

func (s SparseImageOpaqueMemoryBindInfo) Native() native.SparseImageOpaqueMemoryBindInfo {
	return s.raw
}

// ImageSubresource wraps VkImageSubresource.
type ImageSubresource struct {
	raw native.ImageSubresource
}

func MakeImageSubresource(aspectMask ImageAspectFlags, mipLevel uint32, arrayLayer uint32) ImageSubresource {
	return ImageSubresource{raw: native.ImageSubresource{
		AspectMask: native.Flags(aspectMask),
		MipLevel:   mipLevel,
		ArrayLayer: arrayLayer,
	}}
}

func NewImageSubresource() *ImageSubresource {
	return &ImageSubresource{}
}

func (s ImageSubresource) AspectMask() ImageAspectFlags {
	return ImageAspectFlags(s.raw.AspectMask)
}

func (s *ImageSubresource) SetAspectMask(aspectMask ImageAspectFlags) *ImageSubresource {
	s.raw.AspectMask = native.Flags(aspectMask)
	return s
}

func (s ImageSubresource) MipLevel() uint32 {
	return s.raw.MipLevel
}

func (s *ImageSubresource) SetMipLevel(mipLevel uint32) *ImageSubresource {
	s.raw.MipLevel = mipLevel
	return s
}

func (s ImageSubresource) ArrayLayer() uint32 {
	return s.raw.ArrayLayer
}

func (s *ImageSubresource) SetArrayLayer(arrayLayer uint32) *ImageSubresource {
	s.raw.ArrayLayer = arrayLayer
	return s
}

func (s ImageSubresource) Native() native.ImageSubresource {
	return s.raw
}

// SparseImageMemoryBind wraps VkSparseImageMemoryBind.
type SparseImageMemoryBind struct {
	raw native.SparseImageMemoryBind
}

func MakeSparseImageMemoryBind(
	subresource ImageSubresource,
	offset Offset3D,
	extent Extent3D,
	memory DeviceMemory,
	memoryOffset DeviceSize,
	flags SparseMemoryBindFlags,
) SparseImageMemoryBind {
	return SparseImageMemoryBind{raw: native.SparseImageMemoryBind{
		Subresource:  subresource.raw,
		Offset:       offset.raw,
		Extent:       extent.raw,
		Memory:       native.DeviceMemory(memory),
		MemoryOffset: memoryOffset,
		Flags:        native.Flags(flags),
	}}
}

func NewSparseImageMemoryBind() *SparseImageMemoryBind {
	return &SparseImageMemoryBind{}
}

func (s SparseImageMemoryBind) Subresource() ImageSubresource {
	return ImageSubresource{raw: s.raw.Subresource}
}

func (s *SparseImageMemoryBind) SetSubresource(subresource ImageSubresource) *SparseImageMemoryBind {
	s.raw.Subresource = subresource.raw
	return s
}

func (s SparseImageMemoryBind) Offset() Offset3D {
	return Offset3D{raw: s.raw.Offset}
}

func (s *SparseImageMemoryBind) SetOffset(offset Offset3D) *SparseImageMemoryBind {
	s.raw.Offset = offset.raw
	return s
}

func (s SparseImageMemoryBind) Extent() Extent3D {
	return Extent3D{raw: s.raw.Extent}
}

func (s *SparseImageMemoryBind) SetExtent(extent Extent3D) *SparseImageMemoryBind {
	s.raw.Extent = extent.raw
	return s
}

func (s SparseImageMemoryBind) Memory() DeviceMemory {
	return DeviceMemory(s.raw.Memory)
}

func (s *SparseImageMemoryBind) SetMemory(memory DeviceMemory) *SparseImageMemoryBind {
	s.raw.Memory = native.DeviceMemory(memory)
	return s
}

func (s SparseImageMemoryBind) MemoryOffset() DeviceSize {
	return s.raw.MemoryOffset
}

func (s *SparseImageMemoryBind) SetMemoryOffset(memoryOffset DeviceSize) *SparseImageMemoryBind {
	s.raw.MemoryOffset = memoryOffset
	return s
}

func (s SparseImageMemoryBind) Flags() SparseMemoryBindFlags {
	return SparseMemoryBindFlags(s.raw.Flags)
}

func (s *SparseImageMemoryBind) SetFlags(flags SparseMemoryBindFlags) *SparseImageMemoryBind {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s SparseImageMemoryBind) Native() native.SparseImageMemoryBind {
	return s.raw
}

// SparseImageMemoryBindInfo wraps VkSparseImageMemoryBindInfo.
type SparseImageMemoryBindInfo struct {
	raw native.SparseImageMemoryBindInfo
}

func MakeSparseImageMemoryBindInfo(image Image, bindCount uint32, binds *SparseImageMemoryBind) SparseImageMemoryBindInfo {
	return SparseImageMemoryBindInfo{raw: native.SparseImageMemoryBindInfo{
		Image:     native.Image(image),
		BindCount: bindCount,
		PBinds:    (*native.SparseImageMemoryBind)(unsafe.Pointer(binds)),
	}}
}

func NewSparseImageMemoryBindInfo() *SparseImageMemoryBindInfo {
	return &SparseImageMemoryBindInfo{}
}

func (s SparseImageMemoryBindInfo) Image() Image {
	return Image(s.raw.Image)
}

func (s *SparseImageMemoryBindInfo) SetImage(image Image) *SparseImageMemoryBindInfo {
	s.raw.Image = native.Image(image)
	return s
}

func (s SparseImageMemoryBindInfo) BindCount() uint32 {
	return s.raw.BindCount
}

func (s *SparseImageMemoryBindInfo) SetBindCount(bindCount uint32) *SparseImageMemoryBindInfo {
	s.raw.BindCount = bindCount
	return s
}

func (s SparseImageMemoryBindInfo) Binds() *SparseImageMemoryBind {
	return (*SparseImageMemoryBind)(unsafe.Pointer(s.raw.PBinds))
}

func (s *SparseImageMemoryBindInfo) SetBinds(binds *SparseImageMemoryBind) *SparseImageMemoryBindInfo {
	s.raw.PBinds = (*native.SparseImageMemoryBind)(unsafe.Pointer(binds))
	return s
}

func (s SparseImageMemoryBindInfo) Native() native.SparseImageMemoryBindInfo {
	return s.raw
}

// BindSparseInfo wraps VkBindSparseInfo.
type BindSparseInfo struct {
	raw native.BindSparseInfo
}

func MakeBindSparseInfo(
	waitSemaphoreCount uint32,
	waitSemaphores *Semaphore,
	bufferBindCount uint32,
	bufferBinds *SparseBufferMemoryBindInfo,
	imageOpaqueBindCount uint32,
	imageOpaqueBinds *SparseImageOpaqueMemoryBindInfo,
	imageBindCount uint32,
	imageBinds *SparseImageMemoryBindInfo,
	signalSemaphoreCount uint32,
	signalSemaphores *Semaphore,
) BindSparseInfo {
	return BindSparseInfo{raw: native.BindSparseInfo{
		SType:                native.StructureType(BIND_SPARSE_INFO),
		WaitSemaphoreCount:   waitSemaphoreCount,
		PWaitSemaphores:      (*native.Semaphore)(unsafe.Pointer(waitSemaphores)),
		BufferBindCount:      bufferBindCount,
		PBufferBinds:         (*native.SparseBufferMemoryBindInfo)(unsafe.Pointer(bufferBinds)),
		ImageOpaqueBindCount: imageOpaqueBindCount,
		PImageOpaqueBinds:    (*native.SparseImageOpaqueMemoryBindInfo)(unsafe.Pointer(imageOpaqueBinds)),
		ImageBindCount:       imageBindCount,
		PImageBinds:          (*native.SparseImageMemoryBindInfo)(unsafe.Pointer(imageBinds)),
		SignalSemaphoreCount: signalSemaphoreCount,
		PSignalSemaphores:    (*native.Semaphore)(unsafe.Pointer(signalSemaphores)),
	}}
}

func NewBindSparseInfo() *BindSparseInfo {
	return &BindSparseInfo{raw: native.BindSparseInfo{SType: native.StructureType(BIND_SPARSE_INFO)}}
}

func (s BindSparseInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *BindSparseInfo) SetSType(sType StructureType) *BindSparseInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s BindSparseInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *BindSparseInfo) SetNext(next unsafe.Pointer) *BindSparseInfo {
	s.raw.PNext = next
	return s
}

func (s BindSparseInfo) WaitSemaphoreCount() uint32 {
	return s.raw.WaitSemaphoreCount
}

func (s *BindSparseInfo) SetWaitSemaphoreCount(waitSemaphoreCount uint32) *BindSparseInfo {
	s.raw.WaitSemaphoreCount = waitSemaphoreCount
	return s
}

func (s BindSparseInfo) WaitSemaphores() *Semaphore {
	return (*Semaphore)(unsafe.Pointer(s.raw.PWaitSemaphores))
}

func (s *BindSparseInfo) SetWaitSemaphores(waitSemaphores *Semaphore) *BindSparseInfo {
	s.raw.PWaitSemaphores = (*native.Semaphore)(unsafe.Pointer(waitSemaphores))
	return s
}

func (s BindSparseInfo) BufferBindCount() uint32 {
	return s.raw.BufferBindCount
}

func (s *BindSparseInfo) SetBufferBindCount(bufferBindCount uint32) *BindSparseInfo {
	s.raw.BufferBindCount = bufferBindCount
	return s
}

func (s BindSparseInfo) BufferBinds() *SparseBufferMemoryBindInfo {
	return (*SparseBufferMemoryBindInfo)(unsafe.Pointer(s.raw.PBufferBinds))
}

func (s *BindSparseInfo) SetBufferBinds(bufferBinds *SparseBufferMemoryBindInfo) *BindSparseInfo {
	s.raw.PBufferBinds = (*native.SparseBufferMemoryBindInfo)(unsafe.Pointer(bufferBinds))
	return s
}

func (s BindSparseInfo) ImageOpaqueBindCount() uint32 {
	return s.raw.ImageOpaqueBindCount
}

func (s *BindSparseInfo) SetImageOpaqueBindCount(imageOpaqueBindCount uint32) *BindSparseInfo {
	s.raw.ImageOpaqueBindCount = imageOpaqueBindCount
	return s
}

func (s BindSparseInfo) ImageOpaqueBinds() *SparseImageOpaqueMemoryBindInfo {
	return (*SparseImageOpaqueMemoryBindInfo)(unsafe.Pointer(s.raw.PImageOpaqueBinds))
}

func (s *BindSparseInfo) SetImageOpaqueBinds(imageOpaqueBinds *SparseImageOpaqueMemoryBindInfo) *BindSparseInfo {
	s.raw.PImageOpaqueBinds = (*native.SparseImageOpaqueMemoryBindInfo)(unsafe.Pointer(imageOpaqueBinds))
	return s
}

func (s BindSparseInfo) ImageBindCount() uint32 {
	return s.raw.ImageBindCount
}

func (s *BindSparseInfo) SetImageBindCount(imageBindCount uint32) *BindSparseInfo {
	s.raw.ImageBindCount = imageBindCount
	return s
}

func (s BindSparseInfo) ImageBinds() *SparseImageMemoryBindInfo {
	return (*SparseImageMemoryBindInfo)(unsafe.Pointer(s.raw.PImageBinds))
}

func (s *BindSparseInfo) SetImageBinds(imageBinds *SparseImageMemoryBindInfo) *BindSparseInfo {
	s.raw.PImageBinds = (*native.SparseImageMemoryBindInfo)(unsafe.Pointer(imageBinds))
	return s
}

func (s BindSparseInfo) SignalSemaphoreCount() uint32 {
	return s.raw.SignalSemaphoreCount
}

func (s *BindSparseInfo) SetSignalSemaphoreCount(signalSemaphoreCount uint32) *BindSparseInfo {
	s.raw.SignalSemaphoreCount = signalSemaphoreCount
	return s
}

func (s BindSparseInfo) SignalSemaphores() *Semaphore {
	return (*Semaphore)(unsafe.Pointer(s.raw.PSignalSemaphores))
}

func (s *BindSparseInfo) SetSignalSemaphores(signalSemaphores *Semaphore) *BindSparseInfo {
	s.raw.PSignalSemaphores = (*native.Semaphore)(unsafe.Pointer(signalSemaphores))
	return s
}

func (s BindSparseInfo) Native() native.BindSparseInfo {
	return s.raw
}

// SparseImageFormatProperties wraps VkSparseImageFormatProperties.
type SparseImageFormatProperties struct {
	raw native.SparseImageFormatProperties
}

func (s SparseImageFormatProperties) AspectMask() ImageAspectFlags {
	return ImageAspectFlags(s.raw.AspectMask)
}

func (s SparseImageFormatProperties) ImageGranularity() Extent3D {
	return Extent3D{raw: s.raw.ImageGranularity}
}

func (s SparseImageFormatProperties) Flags() SparseImageFormatFlags {
	return SparseImageFormatFlags(s.raw.Flags)
}

func (s SparseImageFormatProperties) Native() native.SparseImageFormatProperties {
	return s.raw
}

// SparseImageMemoryRequirements wraps VkSparseImageMemoryRequirements. The mip
// tail fields are byte offsets into the opaque binding range.
type SparseImageMemoryRequirements struct {
	raw native.SparseImageMemoryRequirements
}

func (s SparseImageMemoryRequirements) FormatProperties() SparseImageFormatProperties {
	return SparseImageFormatProperties{raw: s.raw.FormatProperties}
}

func (s SparseImageMemoryRequirements) ImageMipTailFirstLod() uint32 {
	return s.raw.ImageMipTailFirstLod
}

func (s SparseImageMemoryRequirements) ImageMipTailSize() DeviceSize {
	return s.raw.ImageMipTailSize
}

func (s SparseImageMemoryRequirements) ImageMipTailOffset() DeviceSize {
	return s.raw.ImageMipTailOffset
}

func (s SparseImageMemoryRequirements) ImageMipTailStride() DeviceSize {
	return s.raw.ImageMipTailStride
}

func (s SparseImageMemoryRequirements) Native() native.SparseImageMemoryRequirements {
	return s.raw
}

func (d *Dispatch) GetImageSparseMemoryRequirements(
	device Device,
	image Image,
	sparseMemoryRequirementCount *uint32,
	sparseMemoryRequirements *SparseImageMemoryRequirements,
) {
	d.cmds.GetImageSparseMemoryRequirements(
		native.Device(device),
		native.Image(image),
		sparseMemoryRequirementCount,
		(*native.SparseImageMemoryRequirements)(unsafe.Pointer(sparseMemoryRequirements)),
	)
}

func (d *Dispatch) QueueBindSparse(
	queue Queue,
	bindInfoCount uint32,
	bindInfo *BindSparseInfo,
	fence Fence,
) Result {
	return Result(d.cmds.QueueBindSparse(
		native.Queue(queue),
		bindInfoCount,
		(*native.BindSparseInfo)(unsafe.Pointer(bindInfo)),
		native.Fence(fence),
	))
}
