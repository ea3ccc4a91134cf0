// imageview.go
package vk

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// ComponentMapping wraps VkComponentMapping.
type ComponentMapping struct {
	raw native.ComponentMapping
}

func MakeComponentMapping(r ComponentSwizzle, g ComponentSwizzle, b ComponentSwizzle, a ComponentSwizzle) ComponentMapping {
	return ComponentMapping{raw: native.ComponentMapping{
		R: int32(r),
		G: int32(g),
		B: int32(b),
		A: int32(a),
	}}
}

func NewComponentMapping() *ComponentMapping {
	return &ComponentMapping{}
}

func (s ComponentMapping) R() ComponentSwizzle {
	return ComponentSwizzle(s.raw.R)
}

func (s *ComponentMapping) SetR(r ComponentSwizzle) *ComponentMapping {
	s.raw.R = int32(r)
	return s
}

func (s ComponentMapping) G() ComponentSwizzle {
	return ComponentSwizzle(s.raw.G)
}

func (s *ComponentMapping) SetG(g ComponentSwizzle) *ComponentMapping {
	s.raw.G = int32(g)
	return s
}

func (s ComponentMapping) B() ComponentSwizzle {
	return ComponentSwizzle(s.raw.B)
}

func (s *ComponentMapping) SetB(b ComponentSwizzle) *ComponentMapping {
	s.raw.B = int32(b)
	return s
}

func (s ComponentMapping) A() ComponentSwizzle {
	return ComponentSwizzle(s.raw.A)
}

func (s *ComponentMapping) SetA(a ComponentSwizzle) *ComponentMapping {
	s.raw.A = int32(a)
	return s
}

func (s ComponentMapping) Native() native.ComponentMapping {
	return s.raw
}

// ImageSubresourceRange wraps VkImageSubresourceRange.
type ImageSubresourceRange struct {
	raw native.ImageSubresourceRange
}

func MakeImageSubresourceRange(
	aspectMask ImageAspectFlags,
	baseMipLevel uint32,
	levelCount uint32,
	baseArrayLayer uint32,
	layerCount uint32,
) ImageSubresourceRange {
	return ImageSubresourceRange{raw: native.ImageSubresourceRange{
		AspectMask:     native.Flags(aspectMask),
		BaseMipLevel:   baseMipLevel,
		LevelCount:     levelCount,
		BaseArrayLayer: baseArrayLayer,
		LayerCount:     layerCount,
	}}
}

func NewImageSubresourceRange() *ImageSubresourceRange {
	return &ImageSubresourceRange{}
}

func (s ImageSubresourceRange) AspectMask() ImageAspectFlags {
	return ImageAspectFlags(s.raw.AspectMask)
}

func (s *ImageSubresourceRange) SetAspectMask(aspectMask ImageAspectFlags) *ImageSubresourceRange {
	s.raw.AspectMask = native.Flags(aspectMask)
	return s
}

func (s ImageSubresourceRange) BaseMipLevel() uint32 {
	return s.raw.BaseMipLevel
}

func (s *ImageSubresourceRange) SetBaseMipLevel(baseMipLevel uint32) *ImageSubresourceRange {
	s.raw.BaseMipLevel = baseMipLevel
	return s
}

func (s ImageSubresourceRange) LevelCount() uint32 {
	return s.raw.LevelCount
}

func (s *ImageSubresourceRange) SetLevelCount(levelCount uint32) *ImageSubresourceRange {
	s.raw.LevelCount = levelCount
	return s
}

func (s ImageSubresourceRange) BaseArrayLayer() uint32 {
	return s.raw.BaseArrayLayer
}

func (s *ImageSubresourceRange) SetBaseArrayLayer(baseArrayLayer uint32) *ImageSubresourceRange {
	s.raw.BaseArrayLayer = baseArrayLayer
	return s
}

func (s ImageSubresourceRange) LayerCount() uint32 {
	return s.raw.LayerCount
}

func (s *ImageSubresourceRange) SetLayerCount(layerCount uint32) *ImageSubresourceRange {
	s.raw.LayerCount = layerCount
	return s
}

func (s ImageSubresourceRange) Native() native.ImageSubresourceRange {
	return s.raw
}

// ImageSubresourceLayers wraps VkImageSubresourceLayers.
type ImageSubresourceLayers struct {
	raw native.ImageSubresourceLayers
}

func MakeImageSubresourceLayers(aspectMask ImageAspectFlags, mipLevel uint32, baseArrayLayer uint32, layerCount uint32) ImageSubresourceLayers {
	return ImageSubresourceLayers{raw: native.ImageSubresourceLayers{
		AspectMask:     native.Flags(aspectMask),
		MipLevel:       mipLevel,
		BaseArrayLayer: baseArrayLayer,
		LayerCount:     layerCount,
	}}
}

func NewImageSubresourceLayers() *ImageSubresourceLayers {
	return &ImageSubresourceLayers{}
}

func (s ImageSubresourceLayers) AspectMask() ImageAspectFlags {
	return ImageAspectFlags(s.raw.AspectMask)
}

func (s *ImageSubresourceLayers) SetAspectMask(aspectMask ImageAspectFlags) *ImageSubresourceLayers {
	s.raw.AspectMask = native.Flags(aspectMask)
	return s
}

func (s ImageSubresourceLayers) MipLevel() uint32 {
	return s.raw.MipLevel
}

func (s *ImageSubresourceLayers) SetMipLevel(mipLevel uint32) *ImageSubresourceLayers {
	s.raw.MipLevel = mipLevel
	return s
}

func (s ImageSubresourceLayers) BaseArrayLayer() uint32 {
	return s.raw.BaseArrayLayer
}

func (s *ImageSubresourceLayers) SetBaseArrayLayer(baseArrayLayer uint32) *ImageSubresourceLayers {
	s.raw.BaseArrayLayer = baseArrayLayer
	return s
}

func (s ImageSubresourceLayers) LayerCount() uint32 {
	return s.raw.LayerCount
}

func (s *ImageSubresourceLayers) SetLayerCount(layerCount uint32) *ImageSubresourceLayers {
	s.raw.LayerCount = layerCount
	return s
}

func (s ImageSubresourceLayers) Native() native.ImageSubresourceLayers {
	return s.raw
}

// ImageViewCreateInfo wraps VkImageViewCreateInfo.
type ImageViewCreateInfo struct {
	raw native.ImageViewCreateInfo
}

func MakeImageViewCreateInfo(
	flags ImageViewCreateFlags,
	image Image,
	viewType ImageViewType,
	format Format,
	components ComponentMapping,
	subresourceRange ImageSubresourceRange,
) ImageViewCreateInfo {
	return ImageViewCreateInfo{raw: native.ImageViewCreateInfo{
		SType:            native.StructureType(IMAGE_VIEW_CREATE_INFO),
		Flags:            native.Flags(flags),
		Image:            native.Image(image),
		ViewType:         int32(viewType),
		Format:           int32(format),
		Components:       components.raw,
		SubresourceRange: subresourceRange.raw,
	}}
}

func NewImageViewCreateInfo() *ImageViewCreateInfo {
	return &ImageViewCreateInfo{raw: native.ImageViewCreateInfo{SType: native.StructureType(IMAGE_VIEW_CREATE_INFO)}}
}

func (s ImageViewCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *ImageViewCreateInfo) SetSType(sType StructureType) *ImageViewCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s ImageViewCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *ImageViewCreateInfo) SetNext(next unsafe.Pointer) *ImageViewCreateInfo {
	s.raw.PNext = next
	return s
}

func (s ImageViewCreateInfo) Flags() ImageViewCreateFlags {
	return ImageViewCreateFlags(s.raw.Flags)
}

func (s *ImageViewCreateInfo) SetFlags(flags ImageViewCreateFlags) *ImageViewCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s ImageViewCreateInfo) Image() Image {
	return Image(s.raw.Image)
}

func (s *ImageViewCreateInfo) SetImage(image Image) *ImageViewCreateInfo {
	s.raw.Image = native.Image(image)
	return s
}

func (s ImageViewCreateInfo) ViewType() ImageViewType {
	return ImageViewType(s.raw.ViewType)
}

func (s *ImageViewCreateInfo) SetViewType(viewType ImageViewType) *ImageViewCreateInfo {
	s.raw.ViewType = int32(viewType)
	return s
}

func (s ImageViewCreateInfo) Format() Format {
	return Format(s.raw.Format)
}

func (s *ImageViewCreateInfo) SetFormat(format Format) *ImageViewCreateInfo {
	s.raw.Format = int32(format)
	return s
}

func (s ImageViewCreateInfo) Components() ComponentMapping {
	return ComponentMapping{raw: s.raw.Components}
}

func (s *ImageViewCreateInfo) SetComponents(components ComponentMapping) *ImageViewCreateInfo {
	s.raw.Components = components.raw
	return s
}

func (s ImageViewCreateInfo) SubresourceRange() ImageSubresourceRange {
	return ImageSubresourceRange{raw: s.raw.SubresourceRange}
}

func (s *ImageViewCreateInfo) SetSubresourceRange(subresourceRange ImageSubresourceRange) *ImageViewCreateInfo {
	s.raw.SubresourceRange = subresourceRange.raw
	return s
}

func (s ImageViewCreateInfo) Native() native.ImageViewCreateInfo {
	return s.raw
}

func (d *Dispatch) CreateImageView(
	device Device,
	createInfo *ImageViewCreateInfo,
	allocator *AllocationCallbacks,
	view *ImageView,
) Result {
	return Result(d.cmds.CreateImageView(
		native.Device(device),
		(*native.ImageViewCreateInfo)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.ImageView)(unsafe.Pointer(view)),
	))
}

func (d *Dispatch) DestroyImageView(device Device, imageView ImageView, allocator *AllocationCallbacks) {
	d.cmds.DestroyImageView(
		native.Device(device),
		native.ImageView(imageView),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}
