// shader.go
package vk

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// ShaderModuleCreateInfo wraps VkShaderModuleCreateInfo. CodeSize is in bytes and
// must be a multiple of four.
type ShaderModuleCreateInfo struct {
	raw native.ShaderModuleCreateInfo
}

func MakeShaderModuleCreateInfo(flags ShaderModuleCreateFlags, codeSize uint, code *uint32) ShaderModuleCreateInfo {
	return ShaderModuleCreateInfo{raw: native.ShaderModuleCreateInfo{
		SType:    native.StructureType(SHADER_MODULE_CREATE_INFO),
		Flags:    native.Flags(flags),
		CodeSize: codeSize,
		PCode:    code,
	}}
}

func NewShaderModuleCreateInfo() *ShaderModuleCreateInfo {
	return &ShaderModuleCreateInfo{raw: native.ShaderModuleCreateInfo{SType: native.StructureType(SHADER_MODULE_CREATE_INFO)}}
}

func (s ShaderModuleCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *ShaderModuleCreateInfo) SetSType(sType StructureType) *ShaderModuleCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s ShaderModuleCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *ShaderModuleCreateInfo) SetNext(next unsafe.Pointer) *ShaderModuleCreateInfo {
	s.raw.PNext = next
	return s
}

func (s ShaderModuleCreateInfo) Flags() ShaderModuleCreateFlags {
	return ShaderModuleCreateFlags(s.raw.Flags)
}

func (s *ShaderModuleCreateInfo) SetFlags(flags ShaderModuleCreateFlags) *ShaderModuleCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s ShaderModuleCreateInfo) CodeSize() uint {
	return s.raw.CodeSize
}

func (s *ShaderModuleCreateInfo) SetCodeSize(codeSize uint) *ShaderModuleCreateInfo {
	s.raw.CodeSize = codeSize
	return s
}

func (s ShaderModuleCreateInfo) Code() *uint32 {
	return s.raw.PCode
}

func (s *ShaderModuleCreateInfo) SetCode(code *uint32) *ShaderModuleCreateInfo {
	s.raw.PCode = code
	return s
}

func (s ShaderModuleCreateInfo) Native() native.ShaderModuleCreateInfo {
	return s.raw
}

func (d *Dispatch) CreateShaderModule(
	device Device,
	createInfo *ShaderModuleCreateInfo,
	allocator *AllocationCallbacks,
	shaderModule *ShaderModule,
) Result {
	return Result(d.cmds.CreateShaderModule(
		native.Device(device),
		(*native.ShaderModuleCreateInfo)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.ShaderModule)(unsafe.Pointer(shaderModule)),
	))
}

func (d *Dispatch) DestroyShaderModule(
	device Device,
	shaderModule ShaderModule,
	allocator *AllocationCallbacks,
) {
	d.cmds.DestroyShaderModule(
		native.Device(device),
		native.ShaderModule(shaderModule),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}
