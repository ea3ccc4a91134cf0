// command.go
package vk

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// CommandPoolCreateInfo wraps VkCommandPoolCreateInfo.
type CommandPoolCreateInfo struct {
	raw native.CommandPoolCreateInfo
}

func MakeCommandPoolCreateInfo(flags CommandPoolCreateFlags, queueFamilyIndex uint32) CommandPoolCreateInfo {
	return CommandPoolCreateInfo{raw: native.CommandPoolCreateInfo{
		SType:            native.StructureType(COMMAND_POOL_CREATE_INFO),
		Flags:            native.Flags(flags),
		QueueFamilyIndex: queueFamilyIndex,
	}}
}

func NewCommandPoolCreateInfo() *CommandPoolCreateInfo {
	return &CommandPoolCreateInfo{raw: native.CommandPoolCreateInfo{SType: native.StructureType(COMMAND_POOL_CREATE_INFO)}}
}

func (s CommandPoolCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *CommandPoolCreateInfo) SetSType(sType StructureType) *CommandPoolCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s CommandPoolCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *CommandPoolCreateInfo) SetNext(next unsafe.Pointer) *CommandPoolCreateInfo {
	s.raw.PNext = next
	return s
}

func (s CommandPoolCreateInfo) Flags() CommandPoolCreateFlags {
	return CommandPoolCreateFlags(s.raw.Flags)
}

func (s *CommandPoolCreateInfo) SetFlags(flags CommandPoolCreateFlags) *CommandPoolCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s CommandPoolCreateInfo) QueueFamilyIndex() uint32 {
	return s.raw.QueueFamilyIndex
}

func (s *CommandPoolCreateInfo) SetQueueFamilyIndex(queueFamilyIndex uint32) *CommandPoolCreateInfo {
	s.raw.QueueFamilyIndex = queueFamilyIndex
	return s
}

func (s CommandPoolCreateInfo) Native() native.CommandPoolCreateInfo {
	return s.raw
}

// CommandBufferAllocateInfo wraps VkCommandBufferAllocateInfo.
type CommandBufferAllocateInfo struct {
	raw native.CommandBufferAllocateInfo
}

func MakeCommandBufferAllocateInfo(commandPool CommandPool, level CommandBufferLevel, commandBufferCount uint32) CommandBufferAllocateInfo {
	return CommandBufferAllocateInfo{raw: native.CommandBufferAllocateInfo{
		SType:              native.StructureType(COMMAND_BUFFER_ALLOCATE_INFO),
		CommandPool:        native.CommandPool(commandPool),
		Level:              int32(level),
		CommandBufferCount: commandBufferCount,
	}}
}

func NewCommandBufferAllocateInfo() *CommandBufferAllocateInfo {
	return &CommandBufferAllocateInfo{raw: native.CommandBufferAllocateInfo{SType: native.StructureType(COMMAND_BUFFER_ALLOCATE_INFO)}}
}

func (s CommandBufferAllocateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *CommandBufferAllocateInfo) SetSType(sType StructureType) *CommandBufferAllocateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s CommandBufferAllocateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *CommandBufferAllocateInfo) SetNext(next unsafe.Pointer) *CommandBufferAllocateInfo {
	s.raw.PNext = next
	return s
}

func (s CommandBufferAllocateInfo) CommandPool() CommandPool {
	return CommandPool(s.raw.CommandPool)
}

func (s *CommandBufferAllocateInfo) SetCommandPool(commandPool CommandPool) *CommandBufferAllocateInfo {
	s.raw.CommandPool = native.CommandPool(commandPool)
	return s
}

func (s CommandBufferAllocateInfo) Level() CommandBufferLevel {
	return CommandBufferLevel(s.raw.Level)
}

func (s *CommandBufferAllocateInfo) SetLevel(level CommandBufferLevel) *CommandBufferAllocateInfo {
	s.raw.Level = int32(level)
	return s
}

func (s CommandBufferAllocateInfo) CommandBufferCount() uint32 {
	return s.raw.CommandBufferCount
}

func (s *CommandBufferAllocateInfo) SetCommandBufferCount(commandBufferCount uint32) *CommandBufferAllocateInfo {
	s.raw.CommandBufferCount = commandBufferCount
	return s
}

func (s CommandBufferAllocateInfo) Native() native.CommandBufferAllocateInfo {
	return s.raw
}

// CommandBufferInheritanceInfo wraps VkCommandBufferInheritanceInfo.
type CommandBufferInheritanceInfo struct {
	raw native.CommandBufferInheritanceInfo
}

func MakeCommandBufferInheritanceInfo(
	renderPass RenderPass,
	subpass uint32,
	framebuffer Framebuffer,
	occlusionQueryEnable bool,
	queryFlags QueryControlFlags,
	pipelineStatistics QueryPipelineStatisticFlags,
) CommandBufferInheritanceInfo {
	return CommandBufferInheritanceInfo{raw: native.CommandBufferInheritanceInfo{
		SType:                native.StructureType(COMMAND_BUFFER_INHERITANCE_INFO),
		RenderPass:           native.RenderPass(renderPass),
		Subpass:              subpass,
		Framebuffer:          native.Framebuffer(framebuffer),
		OcclusionQueryEnable: bool32(occlusionQueryEnable),
		QueryFlags:           native.Flags(queryFlags),
		PipelineStatistics:   native.Flags(pipelineStatistics),
	}}
}

func NewCommandBufferInheritanceInfo() *CommandBufferInheritanceInfo {
	return &CommandBufferInheritanceInfo{raw: native.CommandBufferInheritanceInfo{SType: native.StructureType(COMMAND_BUFFER_INHERITANCE_INFO)}}
}

func (s CommandBufferInheritanceInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *CommandBufferInheritanceInfo) SetSType(sType StructureType) *CommandBufferInheritanceInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s CommandBufferInheritanceInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *CommandBufferInheritanceInfo) SetNext(next unsafe.Pointer) *CommandBufferInheritanceInfo {
	s.raw.PNext = next
	return s
}

func (s CommandBufferInheritanceInfo) RenderPass() RenderPass {
	return RenderPass(s.raw.RenderPass)
}

func (s *CommandBufferInheritanceInfo) SetRenderPass(renderPass RenderPass) *CommandBufferInheritanceInfo {
	s.raw.RenderPass = native.RenderPass(renderPass)
	return s
}

func (s CommandBufferInheritanceInfo) Subpass() uint32 {
	return s.raw.Subpass
}

func (s *CommandBufferInheritanceInfo) SetSubpass(subpass uint32) *CommandBufferInheritanceInfo {
	s.raw.Subpass = subpass
	return s
}

func (s CommandBufferInheritanceInfo) Framebuffer() Framebuffer {
	return Framebuffer(s.raw.Framebuffer)
}

func (s *CommandBufferInheritanceInfo) SetFramebuffer(framebuffer Framebuffer) *CommandBufferInheritanceInfo {
	s.raw.Framebuffer = native.Framebuffer(framebuffer)
	return s
}

func (s CommandBufferInheritanceInfo) OcclusionQueryEnable() bool {
	return s.raw.OcclusionQueryEnable != 0
}

func (s *CommandBufferInheritanceInfo) SetOcclusionQueryEnable(occlusionQueryEnable bool) *CommandBufferInheritanceInfo {
	s.raw.OcclusionQueryEnable = bool32(occlusionQueryEnable)
	return s
}

func (s CommandBufferInheritanceInfo) QueryFlags() QueryControlFlags {
	return QueryControlFlags(s.raw.QueryFlags)
}

func (s *CommandBufferInheritanceInfo) SetQueryFlags(queryFlags QueryControlFlags) *CommandBufferInheritanceInfo {
	s.raw.QueryFlags = native.Flags(queryFlags)
	return s
}

func (s CommandBufferInheritanceInfo) PipelineStatistics() QueryPipelineStatisticFlags {
	return QueryPipelineStatisticFlags(s.raw.PipelineStatistics)
}

func (s *CommandBufferInheritanceInfo) SetPipelineStatistics(pipelineStatistics QueryPipelineStatisticFlags) *CommandBufferInheritanceInfo {
	s.raw.PipelineStatistics = native.Flags(pipelineStatistics)
	return s
}

func (s CommandBufferInheritanceInfo) Native() native.CommandBufferInheritanceInfo {
	return s.raw
}

// CommandBufferBeginInfo wraps VkCommandBufferBeginInfo.
type CommandBufferBeginInfo struct {
	raw native.CommandBufferBeginInfo
}

func MakeCommandBufferBeginInfo(flags CommandBufferUsageFlags, inheritanceInfo *CommandBufferInheritanceInfo) CommandBufferBeginInfo {
	return CommandBufferBeginInfo{raw: native.CommandBufferBeginInfo{
		SType:            native.StructureType(COMMAND_BUFFER_BEGIN_INFO),
		Flags:            native.Flags(flags),
		PInheritanceInfo: (*native.CommandBufferInheritanceInfo)(unsafe.Pointer(inheritanceInfo)),
	}}
}

func NewCommandBufferBeginInfo() *CommandBufferBeginInfo {
	return &CommandBufferBeginInfo{raw: native.CommandBufferBeginInfo{SType: native.StructureType(COMMAND_BUFFER_BEGIN_INFO)}}
}

func (s CommandBufferBeginInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *CommandBufferBeginInfo) SetSType(sType StructureType) *CommandBufferBeginInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s CommandBufferBeginInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *CommandBufferBeginInfo) SetNext(next unsafe.Pointer) *CommandBufferBeginInfo {
	s.raw.PNext = next
	return s
}

func (s CommandBufferBeginInfo) Flags() CommandBufferUsageFlags {
	return CommandBufferUsageFlags(s.raw.Flags)
}

func (s *CommandBufferBeginInfo) SetFlags(flags CommandBufferUsageFlags) *CommandBufferBeginInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s CommandBufferBeginInfo) InheritanceInfo() *CommandBufferInheritanceInfo {
	return (*CommandBufferInheritanceInfo)(unsafe.Pointer(s.raw.PInheritanceInfo))
}

func (s *CommandBufferBeginInfo) SetInheritanceInfo(inheritanceInfo *CommandBufferInheritanceInfo) *CommandBufferBeginInfo {
	s.raw.PInheritanceInfo = (*native.CommandBufferInheritanceInfo)(unsafe.Pointer(inheritanceInfo))
	return s
}

func (s CommandBufferBeginInfo) Native() native.CommandBufferBeginInfo {
	return s.raw
}

// BufferCopy wraps VkBufferCopy.
type BufferCopy struct {
	raw native.BufferCopy
}

func MakeBufferCopy(srcOffset DeviceSize, dstOffset DeviceSize, size DeviceSize) BufferCopy {
	return BufferCopy{raw: native.BufferCopy{
		SrcOffset: srcOffset,
		DstOffset: dstOffset,
		Size:      size,
	}}
}

func NewBufferCopy() *BufferCopy {
	return &BufferCopy{}
}

func (s BufferCopy) SrcOffset() DeviceSize {
	return s.raw.SrcOffset
}

func (s *BufferCopy) SetSrcOffset(srcOffset DeviceSize) *BufferCopy {
	s.raw.SrcOffset = srcOffset
	return s
}

func (s BufferCopy) DstOffset() DeviceSize {
	return s.raw.DstOffset
}

func (s *BufferCopy) SetDstOffset(dstOffset DeviceSize) *BufferCopy {
	s.raw.DstOffset = dstOffset
	return s
}

func (s BufferCopy) Size() DeviceSize {
	return s.raw.Size
}

func (s *BufferCopy) SetSize(size DeviceSize) *BufferCopy {
	s.raw.Size = size
	return s
}

func (s BufferCopy) Native() native.BufferCopy {
	return s.raw
}

// BufferImageCopy wraps VkBufferImageCopy.
type BufferImageCopy struct {
	raw native.BufferImageCopy
}

func MakeBufferImageCopy(
	bufferOffset DeviceSize,
	bufferRowLength uint32,
	bufferImageHeight uint32,
	imageSubresource ImageSubresourceLayers,
	imageOffset Offset3D,
	imageExtent Extent3D,
) BufferImageCopy {
	return BufferImageCopy{raw: native.BufferImageCopy{
		BufferOffset:      bufferOffset,
		BufferRowLength:   bufferRowLength,
		BufferImageHeight: bufferImageHeight,
		ImageSubresource:  imageSubresource.raw,
		ImageOffset:       imageOffset.raw,
		ImageExtent:       imageExtent.raw,
	}}
}

func NewBufferImageCopy() *BufferImageCopy {
	return &BufferImageCopy{}
}

func (s BufferImageCopy) BufferOffset() DeviceSize {
	return s.raw.BufferOffset
}

func (s *BufferImageCopy) SetBufferOffset(bufferOffset DeviceSize) *BufferImageCopy {
	s.raw.BufferOffset = bufferOffset
	return s
}

func (s BufferImageCopy) BufferRowLength() uint32 {
	return s.raw.BufferRowLength
}

func (s *BufferImageCopy) SetBufferRowLength(bufferRowLength uint32) *BufferImageCopy {
	s.raw.BufferRowLength = bufferRowLength
	return s
}

func (s BufferImageCopy) BufferImageHeight() uint32 {
	return s.raw.BufferImageHeight
}

func (s *BufferImageCopy) SetBufferImageHeight(bufferImageHeight uint32) *BufferImageCopy {
	s.raw.BufferImageHeight = bufferImageHeight
	return s
}

func (s BufferImageCopy) ImageSubresource() ImageSubresourceLayers {
	return ImageSubresourceLayers{raw: s.raw.ImageSubresource}
}

func (s *BufferImageCopy) SetImageSubresource(imageSubresource ImageSubresourceLayers) *BufferImageCopy {
	s.raw.ImageSubresource = imageSubresource.raw
	return s
}

func (s BufferImageCopy) ImageOffset() Offset3D {
	return Offset3D{raw: s.raw.ImageOffset}
}

func (s *BufferImageCopy) SetImageOffset(imageOffset Offset3D) *BufferImageCopy {
	s.raw.ImageOffset = imageOffset.raw
	return s
}

func (s BufferImageCopy) ImageExtent() Extent3D {
	return Extent3D{raw: s.raw.ImageExtent}
}

func (s *BufferImageCopy) SetImageExtent(imageExtent Extent3D) *BufferImageCopy {
	s.raw.ImageExtent = imageExtent.raw
	return s
}

func (s BufferImageCopy) Native() native.BufferImageCopy {
	return s.raw
}

// MemoryBarrier wraps VkMemoryBarrier.
type MemoryBarrier struct {
	raw native.MemoryBarrier
}

func MakeMemoryBarrier(srcAccessMask AccessFlags, dstAccessMask AccessFlags) MemoryBarrier {
	return MemoryBarrier{raw: native.MemoryBarrier{
		SType:         native.StructureType(MEMORY_BARRIER),
		SrcAccessMask: native.Flags(srcAccessMask),
		DstAccessMask: native.Flags(dstAccessMask),
	}}
}

func NewMemoryBarrier() *MemoryBarrier {
	return &MemoryBarrier{raw: native.MemoryBarrier{SType: native.StructureType(MEMORY_BARRIER)}}
}

func (s MemoryBarrier) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *MemoryBarrier) SetSType(sType StructureType) *MemoryBarrier {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s MemoryBarrier) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *MemoryBarrier) SetNext(next unsafe.Pointer) *MemoryBarrier {
	s.raw.PNext = next
	return s
}

func (s MemoryBarrier) SrcAccessMask() AccessFlags {
	return AccessFlags(s.raw.SrcAccessMask)
}

func (s *MemoryBarrier) SetSrcAccessMask(srcAccessMask AccessFlags) *MemoryBarrier {
	s.raw.SrcAccessMask = native.Flags(srcAccessMask)
	return s
}

func (s MemoryBarrier) DstAccessMask() AccessFlags {
	return AccessFlags(s.raw.DstAccessMask)
}

func (s *MemoryBarrier) SetDstAccessMask(dstAccessMask AccessFlags) *MemoryBarrier {
	s.raw.DstAccessMask = native.Flags(dstAccessMask)
	return s
}

func (s MemoryBarrier) Native() native.MemoryBarrier {
	return s.raw
}

// BufferMemoryBarrier wraps VkBufferMemoryBarrier.
type BufferMemoryBarrier struct {
	raw native.BufferMemoryBarrier
}

func MakeBufferMemoryBarrier(
	srcAccessMask AccessFlags,
	dstAccessMask AccessFlags,
	srcQueueFamilyIndex uint32,
	dstQueueFamilyIndex uint32,
	buffer Buffer,
	offset DeviceSize,
	size DeviceSize,
) BufferMemoryBarrier {
	return BufferMemoryBarrier{raw: native.BufferMemoryBarrier{
		SType:               native.StructureType(BUFFER_MEMORY_BARRIER),
		SrcAccessMask:       native.Flags(srcAccessMask),
		DstAccessMask:       native.Flags(dstAccessMask),
		SrcQueueFamilyIndex: srcQueueFamilyIndex,
		DstQueueFamilyIndex: dstQueueFamilyIndex,
		Buffer:              native.Buffer(buffer),
		Offset:              offset,
		Size:                size,
	}}
}

func NewBufferMemoryBarrier() *BufferMemoryBarrier {
	return &BufferMemoryBarrier{raw: native.BufferMemoryBarrier{SType: native.StructureType(BUFFER_MEMORY_BARRIER)}}
}

func (s BufferMemoryBarrier) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *BufferMemoryBarrier) SetSType(sType StructureType) *BufferMemoryBarrier {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s BufferMemoryBarrier) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *BufferMemoryBarrier) SetNext(next unsafe.Pointer) *BufferMemoryBarrier {
	s.raw.PNext = next
	return s
}

func (s BufferMemoryBarrier) SrcAccessMask() AccessFlags {
	return AccessFlags(s.raw.SrcAccessMask)
}

func (s *BufferMemoryBarrier) SetSrcAccessMask(srcAccessMask AccessFlags) *BufferMemoryBarrier {
	s.raw.SrcAccessMask = native.Flags(srcAccessMask)
	return s
}

func (s BufferMemoryBarrier) DstAccessMask() AccessFlags {
	return AccessFlags(s.raw.DstAccessMask)
}

func (s *BufferMemoryBarrier) SetDstAccessMask(dstAccessMask AccessFlags) *BufferMemoryBarrier {
	s.raw.DstAccessMask = native.Flags(dstAccessMask)
	return s
}

func (s BufferMemoryBarrier) SrcQueueFamilyIndex() uint32 {
	return s.raw.SrcQueueFamilyIndex
}

func (s *BufferMemoryBarrier) SetSrcQueueFamilyIndex(srcQueueFamilyIndex uint32) *BufferMemoryBarrier {
	s.raw.SrcQueueFamilyIndex = srcQueueFamilyIndex
	return s
}

func (s BufferMemoryBarrier) DstQueueFamilyIndex() uint32 {
	return s.raw.DstQueueFamilyIndex
}

func (s *BufferMemoryBarrier) SetDstQueueFamilyIndex(dstQueueFamilyIndex uint32) *BufferMemoryBarrier {
	s.raw.DstQueueFamilyIndex = dstQueueFamilyIndex
	return s
}

func (s BufferMemoryBarrier) Buffer() Buffer {
	return Buffer(s.raw.Buffer)
}

func (s *BufferMemoryBarrier) SetBuffer(buffer Buffer) *BufferMemoryBarrier {
	s.raw.Buffer = native.Buffer(buffer)
	return s
}

func (s BufferMemoryBarrier) Offset() DeviceSize {
	return s.raw.Offset
}

func (s *BufferMemoryBarrier) SetOffset(offset DeviceSize) *BufferMemoryBarrier {
	s.raw.Offset = offset
	return s
}

func (s BufferMemoryBarrier) Size() DeviceSize {
	return s.raw.Size
}

func (s *BufferMemoryBarrier) SetSize(size DeviceSize) *BufferMemoryBarrier {
	s.raw.Size = size
	return s
}

func (s BufferMemoryBarrier) Native() native.BufferMemoryBarrier {
	return s.raw
}

// ImageMemoryBarrier wraps VkImageMemoryBarrier.
type ImageMemoryBarrier struct {
	raw native.ImageMemoryBarrier
}

func MakeImageMemoryBarrier(
	srcAccessMask AccessFlags,
	dstAccessMask AccessFlags,
	oldLayout ImageLayout,
	newLayout ImageLayout,
	srcQueueFamilyIndex uint32,
	dstQueueFamilyIndex uint32,
	image Image,
	subresourceRange ImageSubresourceRange,
) ImageMemoryBarrier {
	return ImageMemoryBarrier{raw: native.ImageMemoryBarrier{
		SType:               native.StructureType(IMAGE_MEMORY_BARRIER),
		SrcAccessMask:       native.Flags(srcAccessMask),
		DstAccessMask:       native.Flags(dstAccessMask),
		OldLayout:           int32(oldLayout),
		NewLayout:           int32(newLayout),
		SrcQueueFamilyIndex: srcQueueFamilyIndex,
		DstQueueFamilyIndex: dstQueueFamilyIndex,
		Image:               native.Image(image),
		SubresourceRange:    subresourceRange.raw,
	}}
}

func NewImageMemoryBarrier() *ImageMemoryBarrier {
	return &ImageMemoryBarrier{raw: native.ImageMemoryBarrier{SType: native.StructureType(IMAGE_MEMORY_BARRIER)}}
}

func (s ImageMemoryBarrier) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *ImageMemoryBarrier) SetSType(sType StructureType) *ImageMemoryBarrier {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s ImageMemoryBarrier) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *ImageMemoryBarrier) SetNext(next unsafe.Pointer) *ImageMemoryBarrier {
	s.raw.PNext = next
	return s
}

func (s ImageMemoryBarrier) SrcAccessMask() AccessFlags {
	return AccessFlags(s.raw.SrcAccessMask)
}

func (s *ImageMemoryBarrier) SetSrcAccessMask(srcAccessMask AccessFlags) *ImageMemoryBarrier {
	s.raw.SrcAccessMask = native.Flags(srcAccessMask)
	return s
}

func (s ImageMemoryBarrier) DstAccessMask() AccessFlags {
	return AccessFlags(s.raw.DstAccessMask)
}

func (s *ImageMemoryBarrier) SetDstAccessMask(dstAccessMask AccessFlags) *ImageMemoryBarrier {
	s.raw.DstAccessMask = native.Flags(dstAccessMask)
	return s
}

func (s ImageMemoryBarrier) OldLayout() ImageLayout {
	return ImageLayout(s.raw.OldLayout)
}

func (s *ImageMemoryBarrier) SetOldLayout(oldLayout ImageLayout) *ImageMemoryBarrier {
	s.raw.OldLayout = int32(oldLayout)
	return s
}

func (s ImageMemoryBarrier) NewLayout() ImageLayout {
	return ImageLayout(s.raw.NewLayout)
}

func (s *ImageMemoryBarrier) SetNewLayout(newLayout ImageLayout) *ImageMemoryBarrier {
	s.raw.NewLayout = int32(newLayout)
	return s
}

func (s ImageMemoryBarrier) SrcQueueFamilyIndex() uint32 {
	return s.raw.SrcQueueFamilyIndex
}

func (s *ImageMemoryBarrier) SetSrcQueueFamilyIndex(srcQueueFamilyIndex uint32) *ImageMemoryBarrier {
	s.raw.SrcQueueFamilyIndex = srcQueueFamilyIndex
	return s
}

func (s ImageMemoryBarrier) DstQueueFamilyIndex() uint32 {
	return s.raw.DstQueueFamilyIndex
}

func (s *ImageMemoryBarrier) SetDstQueueFamilyIndex(dstQueueFamilyIndex uint32) *ImageMemoryBarrier {
	s.raw.DstQueueFamilyIndex = dstQueueFamilyIndex
	return s
}

func (s ImageMemoryBarrier) Image() Image {
	return Image(s.raw.Image)
}

func (s *ImageMemoryBarrier) SetImage(image Image) *ImageMemoryBarrier {
	s.raw.Image = native.Image(image)
	return s
}

func (s ImageMemoryBarrier) SubresourceRange() ImageSubresourceRange {
	return ImageSubresourceRange{raw: s.raw.SubresourceRange}
}

func (s *ImageMemoryBarrier) SetSubresourceRange(subresourceRange ImageSubresourceRange) *ImageMemoryBarrier {
	s.raw.SubresourceRange = subresourceRange.raw
	return s
}

func (s ImageMemoryBarrier) Native() native.ImageMemoryBarrier {
	return s.raw
}

// RenderingAttachmentInfo wraps VkRenderingAttachmentInfo.
type RenderingAttachmentInfo struct {
	raw native.RenderingAttachmentInfo
}

func MakeRenderingAttachmentInfo(
	imageView ImageView,
	imageLayout ImageLayout,
	resolveMode ResolveModeFlagBits,
	resolveImageView ImageView,
	resolveImageLayout ImageLayout,
	loadOp AttachmentLoadOp,
	storeOp AttachmentStoreOp,
	clearValue ClearValue,
) RenderingAttachmentInfo {
	return RenderingAttachmentInfo{raw: native.RenderingAttachmentInfo{
		SType:              native.StructureType(RENDERING_ATTACHMENT_INFO),
		ImageView:          native.ImageView(imageView),
		ImageLayout:        int32(imageLayout),
		ResolveMode:        native.Flags(resolveMode),
		ResolveImageView:   native.ImageView(resolveImageView),
		ResolveImageLayout: int32(resolveImageLayout),
		LoadOp:             int32(loadOp),
		StoreOp:            int32(storeOp),
		ClearValue:         clearValue.raw,
	}}
}

func NewRenderingAttachmentInfo() *RenderingAttachmentInfo {
	return &RenderingAttachmentInfo{raw: native.RenderingAttachmentInfo{SType: native.StructureType(RENDERING_ATTACHMENT_INFO)}}
}

func (s RenderingAttachmentInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *RenderingAttachmentInfo) SetSType(sType StructureType) *RenderingAttachmentInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s RenderingAttachmentInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *RenderingAttachmentInfo) SetNext(next unsafe.Pointer) *RenderingAttachmentInfo {
	s.raw.PNext = next
	return s
}

func (s RenderingAttachmentInfo) ImageView() ImageView {
	return ImageView(s.raw.ImageView)
}

func (s *RenderingAttachmentInfo) SetImageView(imageView ImageView) *RenderingAttachmentInfo {
	s.raw.ImageView = native.ImageView(imageView)
	return s
}

func (s RenderingAttachmentInfo) ImageLayout() ImageLayout {
	return ImageLayout(s.raw.ImageLayout)
}

func (s *RenderingAttachmentInfo) SetImageLayout(imageLayout ImageLayout) *RenderingAttachmentInfo {
	s.raw.ImageLayout = int32(imageLayout)
	return s
}

func (s RenderingAttachmentInfo) ResolveMode() ResolveModeFlagBits {
	return ResolveModeFlagBits(s.raw.ResolveMode)
}

func (s *RenderingAttachmentInfo) SetResolveMode(resolveMode ResolveModeFlagBits) *RenderingAttachmentInfo {
	s.raw.ResolveMode = native.Flags(resolveMode)
	return s
}

func (s RenderingAttachmentInfo) ResolveImageView() ImageView {
	return ImageView(s.raw.ResolveImageView)
}

func (s *RenderingAttachmentInfo) SetResolveImageView(resolveImageView ImageView) *RenderingAttachmentInfo {
	s.raw.ResolveImageView = native.ImageView(resolveImageView)
	return s
}

func (s RenderingAttachmentInfo) ResolveImageLayout() ImageLayout {
	return ImageLayout(s.raw.ResolveImageLayout)
}

func (s *RenderingAttachmentInfo) SetResolveImageLayout(resolveImageLayout ImageLayout) *RenderingAttachmentInfo {
	s.raw.ResolveImageLayout = int32(resolveImageLayout)
	return s
}

func (s RenderingAttachmentInfo) LoadOp() AttachmentLoadOp {
	return AttachmentLoadOp(s.raw.LoadOp)
}

func (s *RenderingAttachmentInfo) SetLoadOp(loadOp AttachmentLoadOp) *RenderingAttachmentInfo {
	s.raw.LoadOp = int32(loadOp)
	return s
}

func (s RenderingAttachmentInfo) StoreOp() AttachmentStoreOp {
	return AttachmentStoreOp(s.raw.StoreOp)
}

func (s *RenderingAttachmentInfo) SetStoreOp(storeOp AttachmentStoreOp) *RenderingAttachmentInfo {
	s.raw.StoreOp = int32(storeOp)
	return s
}

func (s RenderingAttachmentInfo) ClearValue() ClearValue {
	return ClearValue{raw: s.raw.ClearValue}
}

func (s *RenderingAttachmentInfo) SetClearValue(clearValue ClearValue) *RenderingAttachmentInfo {
	s.raw.ClearValue = clearValue.raw
	return s
}

func (s RenderingAttachmentInfo) Native() native.RenderingAttachmentInfo {
	return s.raw
}

// RenderingInfo wraps VkRenderingInfo for CmdBeginRendering (Vulkan 1.3 dynamic
// rendering).
type RenderingInfo struct {
	raw native.RenderingInfo
}

func MakeRenderingInfo(
	flags RenderingFlags,
	renderArea Rect2D,
	layerCount uint32,
	viewMask uint32,
	colorAttachmentCount uint32,
	colorAttachments *RenderingAttachmentInfo,
	depthAttachment *RenderingAttachmentInfo,
	stencilAttachment *RenderingAttachmentInfo,
) RenderingInfo {
	return RenderingInfo{raw: native.RenderingInfo{
		SType:                native.StructureType(RENDERING_INFO),
		Flags:                native.Flags(flags),
		RenderArea:           renderArea.raw,
		LayerCount:           layerCount,
		ViewMask:             viewMask,
		ColorAttachmentCount: colorAttachmentCount,
		PColorAttachments:    (*native.RenderingAttachmentInfo)(unsafe.Pointer(colorAttachments)),
		PDepthAttachment:     (*native.RenderingAttachmentInfo)(unsafe.Pointer(depthAttachment)),
		PStencilAttachment:   (*native.RenderingAttachmentInfo)(unsafe.Pointer(stencilAttachment)),
	}}
}

func NewRenderingInfo() *RenderingInfo {
	return &RenderingInfo{raw: native.RenderingInfo{SType: native.StructureType(RENDERING_INFO)}}
}

func (s RenderingInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *RenderingInfo) SetSType(sType StructureType) *RenderingInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s RenderingInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *RenderingInfo) SetNext(next unsafe.Pointer) *RenderingInfo {
	s.raw.PNext = next
	return s
}

func (s RenderingInfo) Flags() RenderingFlags {
	return RenderingFlags(s.raw.Flags)
}

func (s *RenderingInfo) SetFlags(flags RenderingFlags) *RenderingInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s RenderingInfo) RenderArea() Rect2D {
	return Rect2D{raw: s.raw.RenderArea}
}

func (s *RenderingInfo) SetRenderArea(renderArea Rect2D) *RenderingInfo {
	s.raw.RenderArea = renderArea.raw
	return s
}

func (s RenderingInfo) LayerCount() uint32 {
	return s.raw.LayerCount
}

func (s *RenderingInfo) SetLayerCount(layerCount uint32) *RenderingInfo {
	s.raw.LayerCount = layerCount
	return s
}

func (s RenderingInfo) ViewMask() uint32 {
	return s.raw.ViewMask
}

func (s *RenderingInfo) SetViewMask(viewMask uint32) *RenderingInfo {
	s.raw.ViewMask = viewMask
	return s
}

func (s RenderingInfo) ColorAttachmentCount() uint32 {
	return s.raw.ColorAttachmentCount
}

func (s *RenderingInfo) SetColorAttachmentCount(colorAttachmentCount uint32) *RenderingInfo {
	s.raw.ColorAttachmentCount = colorAttachmentCount
	return s
}

func (s RenderingInfo) ColorAttachments() *RenderingAttachmentInfo {
	return (*RenderingAttachmentInfo)(unsafe.Pointer(s.raw.PColorAttachments))
}

func (s *RenderingInfo) SetColorAttachments(colorAttachments *RenderingAttachmentInfo) *RenderingInfo {
	s.raw.PColorAttachments = (*native.RenderingAttachmentInfo)(unsafe.Pointer(colorAttachments))
	return s
}

func (s RenderingInfo) DepthAttachment() *RenderingAttachmentInfo {
	return (*RenderingAttachmentInfo)(unsafe.Pointer(s.raw.PDepthAttachment))
}

func (s *RenderingInfo) SetDepthAttachment(depthAttachment *RenderingAttachmentInfo) *RenderingInfo {
	s.raw.PDepthAttachment = (*native.RenderingAttachmentInfo)(unsafe.Pointer(depthAttachment))
	return s
}

func (s RenderingInfo) StencilAttachment() *RenderingAttachmentInfo {
	return (*RenderingAttachmentInfo)(unsafe.Pointer(s.raw.PStencilAttachment))
}

func (s *RenderingInfo) SetStencilAttachment(stencilAttachment *RenderingAttachmentInfo) *RenderingInfo {
	s.raw.PStencilAttachment = (*native.RenderingAttachmentInfo)(unsafe.Pointer(stencilAttachment))
	return s
}

func (s RenderingInfo) Native() native.RenderingInfo {
	return s.raw
}

func (d *Dispatch) CreateCommandPool(
	device Device,
	createInfo *CommandPoolCreateInfo,
	allocator *AllocationCallbacks,
	commandPool *CommandPool,
) Result {
	return Result(d.cmds.CreateCommandPool(
		native.Device(device),
		(*native.CommandPoolCreateInfo)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.CommandPool)(unsafe.Pointer(commandPool)),
	))
}

func (d *Dispatch) DestroyCommandPool(
	device Device,
	commandPool CommandPool,
	allocator *AllocationCallbacks,
) {
	d.cmds.DestroyCommandPool(
		native.Device(device),
		native.CommandPool(commandPool),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}

func (d *Dispatch) ResetCommandPool(
	device Device,
	commandPool CommandPool,
	flags CommandPoolResetFlags,
) Result {
	return Result(d.cmds.ResetCommandPool(native.Device(device), native.CommandPool(commandPool), native.Flags(flags)))
}

func (d *Dispatch) AllocateCommandBuffers(
	device Device,
	allocateInfo *CommandBufferAllocateInfo,
	commandBuffers *CommandBuffer,
) Result {
	return Result(d.cmds.AllocateCommandBuffers(
		native.Device(device),
		(*native.CommandBufferAllocateInfo)(unsafe.Pointer(allocateInfo)),
		(*native.CommandBuffer)(unsafe.Pointer(commandBuffers)),
	))
}

func (d *Dispatch) FreeCommandBuffers(
	device Device,
	commandPool CommandPool,
	commandBufferCount uint32,
	commandBuffers *CommandBuffer,
) {
	d.cmds.FreeCommandBuffers(
		native.Device(device),
		native.CommandPool(commandPool),
		commandBufferCount,
		(*native.CommandBuffer)(unsafe.Pointer(commandBuffers)),
	)
}

func (d *Dispatch) BeginCommandBuffer(commandBuffer CommandBuffer, beginInfo *CommandBufferBeginInfo) Result {
	return Result(d.cmds.BeginCommandBuffer(
		native.CommandBuffer(commandBuffer),
		(*native.CommandBufferBeginInfo)(unsafe.Pointer(beginInfo)),
	))
}

func (d *Dispatch) EndCommandBuffer(commandBuffer CommandBuffer) Result {
	return Result(d.cmds.EndCommandBuffer(native.CommandBuffer(commandBuffer)))
}

func (d *Dispatch) ResetCommandBuffer(commandBuffer CommandBuffer, flags CommandBufferResetFlags) Result {
	return Result(d.cmds.ResetCommandBuffer(native.CommandBuffer(commandBuffer), native.Flags(flags)))
}

func (d *Dispatch) CmdBindPipeline(
	commandBuffer CommandBuffer,
	pipelineBindPoint PipelineBindPoint,
	pipeline Pipeline,
) {
	d.cmds.CmdBindPipeline(
		native.CommandBuffer(commandBuffer),
		int32(pipelineBindPoint),
		native.Pipeline(pipeline),
	)
}

func (d *Dispatch) CmdBindDescriptorSets(
	commandBuffer CommandBuffer,
	pipelineBindPoint PipelineBindPoint,
	layout PipelineLayout,
	firstSet uint32,
	descriptorSetCount uint32,
	descriptorSets *DescriptorSet,
	dynamicOffsetCount uint32,
	dynamicOffsets *uint32,
) {
	d.cmds.CmdBindDescriptorSets(
		native.CommandBuffer(commandBuffer),
		int32(pipelineBindPoint),
		native.PipelineLayout(layout),
		firstSet,
		descriptorSetCount,
		(*native.DescriptorSet)(unsafe.Pointer(descriptorSets)),
		dynamicOffsetCount,
		dynamicOffsets,
	)
}

func (d *Dispatch) CmdBindVertexBuffers(
	commandBuffer CommandBuffer,
	firstBinding uint32,
	bindingCount uint32,
	buffers *Buffer,
	offsets *DeviceSize,
) {
	d.cmds.CmdBindVertexBuffers(
		native.CommandBuffer(commandBuffer),
		firstBinding,
		bindingCount,
		(*native.Buffer)(unsafe.Pointer(buffers)),
		offsets,
	)
}

func (d *Dispatch) CmdBindIndexBuffer(
	commandBuffer CommandBuffer,
	buffer Buffer,
	offset DeviceSize,
	indexType IndexType,
) {
	d.cmds.CmdBindIndexBuffer(
		native.CommandBuffer(commandBuffer),
		native.Buffer(buffer),
		offset,
		int32(indexType),
	)
}

func (d *Dispatch) CmdDispatch(
	commandBuffer CommandBuffer,
	groupCountX uint32,
	groupCountY uint32,
	groupCountZ uint32,
) {
	d.cmds.CmdDispatch(native.CommandBuffer(commandBuffer), groupCountX, groupCountY, groupCountZ)
}

func (d *Dispatch) CmdDraw(
	commandBuffer CommandBuffer,
	vertexCount uint32,
	instanceCount uint32,
	firstVertex uint32,
	firstInstance uint32,
) {
	d.cmds.CmdDraw(
		native.CommandBuffer(commandBuffer),
		vertexCount,
		instanceCount,
		firstVertex,
		firstInstance,
	)
}

func (d *Dispatch) CmdDrawIndexed(
	commandBuffer CommandBuffer,
	indexCount uint32,
	instanceCount uint32,
	firstIndex uint32,
	vertexOffset int32,
	firstInstance uint32,
) {
	d.cmds.CmdDrawIndexed(
		native.CommandBuffer(commandBuffer),
		indexCount,
		instanceCount,
		firstIndex,
		vertexOffset,
		firstInstance,
	)
}

func (d *Dispatch) CmdSetViewport(
	commandBuffer CommandBuffer,
	firstViewport uint32,
	viewportCount uint32,
	viewports *Viewport,
) {
	d.cmds.CmdSetViewport(
		native.CommandBuffer(commandBuffer),
		firstViewport,
		viewportCount,
		(*native.Viewport)(unsafe.Pointer(viewports)),
	)
}

func (d *Dispatch) CmdSetScissor(
	commandBuffer CommandBuffer,
	firstScissor uint32,
	scissorCount uint32,
	scissors *Rect2D,
) {
	d.cmds.CmdSetScissor(
		native.CommandBuffer(commandBuffer),
		firstScissor,
		scissorCount,
		(*native.Rect2D)(unsafe.Pointer(scissors)),
	)
}

func (d *Dispatch) CmdCopyBuffer(
	commandBuffer CommandBuffer,
	srcBuffer Buffer,
	dstBuffer Buffer,
	regionCount uint32,
	regions *BufferCopy,
) {
	d.cmds.CmdCopyBuffer(
		native.CommandBuffer(commandBuffer),
		native.Buffer(srcBuffer),
		native.Buffer(dstBuffer),
		regionCount,
		(*native.BufferCopy)(unsafe.Pointer(regions)),
	)
}

func (d *Dispatch) CmdCopyBufferToImage(
	commandBuffer CommandBuffer,
	srcBuffer Buffer,
	dstImage Image,
	dstImageLayout ImageLayout,
	regionCount uint32,
	regions *BufferImageCopy,
) {
	d.cmds.CmdCopyBufferToImage(
		native.CommandBuffer(commandBuffer),
		native.Buffer(srcBuffer),
		native.Image(dstImage),
		int32(dstImageLayout),
		regionCount,
		(*native.BufferImageCopy)(unsafe.Pointer(regions)),
	)
}

func (d *Dispatch) CmdFillBuffer(
	commandBuffer CommandBuffer,
	dstBuffer Buffer,
	dstOffset DeviceSize,
	size DeviceSize,
	data uint32,
) {
	d.cmds.CmdFillBuffer(
		native.CommandBuffer(commandBuffer),
		native.Buffer(dstBuffer),
		dstOffset,
		size,
		data,
	)
}

func (d *Dispatch) CmdUpdateBuffer(
	commandBuffer CommandBuffer,
	dstBuffer Buffer,
	dstOffset DeviceSize,
	dataSize DeviceSize,
	data unsafe.Pointer,
) {
	d.cmds.CmdUpdateBuffer(
		native.CommandBuffer(commandBuffer),
		native.Buffer(dstBuffer),
		dstOffset,
		dataSize,
		data,
	)
}

func (d *Dispatch) CmdClearColorImage(
	commandBuffer CommandBuffer,
	image Image,
	imageLayout ImageLayout,
	color *ClearColorValue,
	rangeCount uint32,
	ranges *ImageSubresourceRange,
) {
	d.cmds.CmdClearColorImage(
		native.CommandBuffer(commandBuffer),
		native.Image(image),
		int32(imageLayout),
		(*native.ClearColorValue)(unsafe.Pointer(color)),
		rangeCount,
		(*native.ImageSubresourceRange)(unsafe.Pointer(ranges)),
	)
}

func (d *Dispatch) CmdPipelineBarrier(
	commandBuffer CommandBuffer,
	srcStageMask PipelineStageFlags,
	dstStageMask PipelineStageFlags,
	dependencyFlags DependencyFlags,
	memoryBarrierCount uint32,
	memoryBarriers *MemoryBarrier,
	bufferMemoryBarrierCount uint32,
	bufferMemoryBarriers *BufferMemoryBarrier,
	imageMemoryBarrierCount uint32,
	imageMemoryBarriers *ImageMemoryBarrier,
) {
	d.cmds.CmdPipelineBarrier(
		native.CommandBuffer(commandBuffer),
		native.Flags(srcStageMask),
		native.Flags(dstStageMask),
		native.Flags(dependencyFlags),
		memoryBarrierCount,
		(*native.MemoryBarrier)(unsafe.Pointer(memoryBarriers)),
		bufferMemoryBarrierCount,
		(*native.BufferMemoryBarrier)(unsafe.Pointer(bufferMemoryBarriers)),
		imageMemoryBarrierCount,
		(*native.ImageMemoryBarrier)(unsafe.Pointer(imageMemoryBarriers)),
	)
}

func (d *Dispatch) CmdPushConstants(
	commandBuffer CommandBuffer,
	layout PipelineLayout,
	stageFlags ShaderStageFlags,
	offset uint32,
	size uint32,
	values unsafe.Pointer,
) {
	d.cmds.CmdPushConstants(
		native.CommandBuffer(commandBuffer),
		native.PipelineLayout(layout),
		native.Flags(stageFlags),
		offset,
		size,
		values,
	)
}

func (d *Dispatch) CmdBeginRenderPass(
	commandBuffer CommandBuffer,
	renderPassBegin *RenderPassBeginInfo,
	contents SubpassContents,
) {
	d.cmds.CmdBeginRenderPass(
		native.CommandBuffer(commandBuffer),
		(*native.RenderPassBeginInfo)(unsafe.Pointer(renderPassBegin)),
		int32(contents),
	)
}

func (d *Dispatch) CmdEndRenderPass(commandBuffer CommandBuffer) {
	d.cmds.CmdEndRenderPass(native.CommandBuffer(commandBuffer))
}

func (d *Dispatch) CmdBeginRendering(commandBuffer CommandBuffer, renderingInfo *RenderingInfo) {
	d.cmds.CmdBeginRendering(
		native.CommandBuffer(commandBuffer),
		(*native.RenderingInfo)(unsafe.Pointer(renderingInfo)),
	)
}

func (d *Dispatch) CmdEndRendering(commandBuffer CommandBuffer) {
	d.cmds.CmdEndRendering(native.CommandBuffer(commandBuffer))
}
