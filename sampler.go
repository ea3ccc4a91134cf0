// sampler.go
package vk

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// SamplerCreateInfo wraps VkSamplerCreateInfo.
type SamplerCreateInfo struct {
	raw native.SamplerCreateInfo
}

func MakeSamplerCreateInfo(
	flags SamplerCreateFlags,
	magFilter Filter,
	minFilter Filter,
	mipmapMode SamplerMipmapMode,
	addressModeU SamplerAddressMode,
	addressModeV SamplerAddressMode,
	addressModeW SamplerAddressMode,
	mipLodBias float32,
	anisotropyEnable bool,
	maxAnisotropy float32,
	compareEnable bool,
	compareOp CompareOp,
	minLod float32,
	maxLod float32,
	borderColor BorderColor,
	unnormalizedCoordinates bool,
) SamplerCreateInfo {
	return SamplerCreateInfo{raw: native.SamplerCreateInfo{
		SType:                   native.StructureType(SAMPLER_CREATE_INFO),
		Flags:                   native.Flags(flags),
		MagFilter:               int32(magFilter),
		MinFilter:               int32(minFilter),
		MipmapMode:              int32(mipmapMode),
		AddressModeU:            int32(addressModeU),
		AddressModeV:            int32(addressModeV),
		AddressModeW:            int32(addressModeW),
		MipLodBias:              mipLodBias,
		AnisotropyEnable:        bool32(anisotropyEnable),
		MaxAnisotropy:           maxAnisotropy,
		CompareEnable:           bool32(compareEnable),
		CompareOp:               int32(compareOp),
		MinLod:                  minLod,
		MaxLod:                  maxLod,
		BorderColor:             int32(borderColor),
		UnnormalizedCoordinates: bool32(unnormalizedCoordinates),
	}}
}

func NewSamplerCreateInfo() *SamplerCreateInfo {
	return &SamplerCreateInfo{raw: native.SamplerCreateInfo{SType: native.StructureType(SAMPLER_CREATE_INFO)}}
}

func (s SamplerCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *SamplerCreateInfo) SetSType(sType StructureType) *SamplerCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s SamplerCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *SamplerCreateInfo) SetNext(next unsafe.Pointer) *SamplerCreateInfo {
	s.raw.PNext = next
	return s
}

func (s SamplerCreateInfo) Flags() SamplerCreateFlags {
	return SamplerCreateFlags(s.raw.Flags)
}

func (s *SamplerCreateInfo) SetFlags(flags SamplerCreateFlags) *SamplerCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s SamplerCreateInfo) MagFilter() Filter {
	return Filter(s.raw.MagFilter)
}

func (s *SamplerCreateInfo) SetMagFilter(magFilter Filter) *SamplerCreateInfo {
	s.raw.MagFilter = int32(magFilter)
	return s
}

func (s SamplerCreateInfo) MinFilter() Filter {
	return Filter(s.raw.MinFilter)
}

func (s *SamplerCreateInfo) SetMinFilter(minFilter Filter) *SamplerCreateInfo {
	s.raw.MinFilter = int32(minFilter)
	return s
}

func (s SamplerCreateInfo) MipmapMode() SamplerMipmapMode {
	return SamplerMipmapMode(s.raw.MipmapMode)
}

func (s *SamplerCreateInfo) SetMipmapMode(mipmapMode SamplerMipmapMode) *SamplerCreateInfo {
	s.raw.MipmapMode = int32(mipmapMode)
	return s
}

func (s SamplerCreateInfo) AddressModeU() SamplerAddressMode {
	return SamplerAddressMode(s.raw.AddressModeU)
}

func (s *SamplerCreateInfo) SetAddressModeU(addressModeU SamplerAddressMode) *SamplerCreateInfo {
	s.raw.AddressModeU = int32(addressModeU)
	return s
}

func (s SamplerCreateInfo) AddressModeV() SamplerAddressMode {
	return SamplerAddressMode(s.raw.AddressModeV)
}

func (s *SamplerCreateInfo) SetAddressModeV(addressModeV SamplerAddressMode) *SamplerCreateInfo {
	s.raw.AddressModeV = int32(addressModeV)
	return s
}

func (s SamplerCreateInfo) AddressModeW() SamplerAddressMode {
	return SamplerAddressMode(s.raw.AddressModeW)
}

func (s *SamplerCreateInfo) SetAddressModeW(addressModeW SamplerAddressMode) *SamplerCreateInfo {
	s.raw.AddressModeW = int32(addressModeW)
	return s
}

func (s SamplerCreateInfo) MipLodBias() float32 {
	return s.raw.MipLodBias
}

func (s *SamplerCreateInfo) SetMipLodBias(mipLodBias float32) *SamplerCreateInfo {
	s.raw.MipLodBias = mipLodBias
	return s
}

func (s SamplerCreateInfo) AnisotropyEnable() bool {
	return s.raw.AnisotropyEnable != 0
}

func (s *SamplerCreateInfo) SetAnisotropyEnable(anisotropyEnable bool) *SamplerCreateInfo {
	s.raw.AnisotropyEnable = bool32(anisotropyEnable)
	return s
}

func (s SamplerCreateInfo) MaxAnisotropy() float32 {
	return s.raw.MaxAnisotropy
}

func (s *SamplerCreateInfo) SetMaxAnisotropy(maxAnisotropy float32) *SamplerCreateInfo {
	s.raw.MaxAnisotropy = maxAnisotropy
	return s
}

func (s SamplerCreateInfo) CompareEnable() bool {
	return s.raw.CompareEnable != 0
}

func (s *SamplerCreateInfo) SetCompareEnable(compareEnable bool) *SamplerCreateInfo {
	s.raw.CompareEnable = bool32(compareEnable)
	return s
}

func (s SamplerCreateInfo) CompareOp() CompareOp {
	return CompareOp(s.raw.CompareOp)
}

func (s *SamplerCreateInfo) SetCompareOp(compareOp CompareOp) *SamplerCreateInfo {
	s.raw.CompareOp = int32(compareOp)
	return s
}

func (s SamplerCreateInfo) MinLod() float32 {
	return s.raw.MinLod
}

func (s *SamplerCreateInfo) SetMinLod(minLod float32) *SamplerCreateInfo {
	s.raw.MinLod = minLod
	return s
}

func (s SamplerCreateInfo) MaxLod() float32 {
	return s.raw.MaxLod
}

func (s *SamplerCreateInfo) SetMaxLod(maxLod float32) *SamplerCreateInfo {
	s.raw.MaxLod = maxLod
	return s
}

func (s SamplerCreateInfo) BorderColor() BorderColor {
	return BorderColor(s.raw.BorderColor)
}

func (s *SamplerCreateInfo) SetBorderColor(borderColor BorderColor) *SamplerCreateInfo {
	s.raw.BorderColor = int32(borderColor)
	return s
}

func (s SamplerCreateInfo) UnnormalizedCoordinates() bool {
	return s.raw.UnnormalizedCoordinates != 0
}

func (s *SamplerCreateInfo) SetUnnormalizedCoordinates(unnormalizedCoordinates bool) *SamplerCreateInfo {
	s.raw.UnnormalizedCoordinates = bool32(unnormalizedCoordinates)
	return s
}

func (s SamplerCreateInfo) Native() native.SamplerCreateInfo {
	return s.raw
}

func (d *Dispatch) CreateSampler(
	device Device,
	createInfo *SamplerCreateInfo,
	allocator *AllocationCallbacks,
	sampler *Sampler,
) Result {
	return Result(d.cmds.CreateSampler(
		native.Device(device),
		(*native.SamplerCreateInfo)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.Sampler)(unsafe.Pointer(sampler)),
	))
}

func (d *Dispatch) DestroySampler(device Device, sampler Sampler, allocator *AllocationCallbacks) {
	d.cmds.DestroySampler(
		native.Device(device),
		native.Sampler(sampler),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}
