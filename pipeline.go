// pipeline.go
package vk

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// PushConstantRange wraps VkPushConstantRange.
type PushConstantRange struct {
	raw native.PushConstantRange
}

func MakePushConstantRange(stageFlags ShaderStageFlags, offset uint32, size uint32) PushConstantRange {
	return PushConstantRange{raw: native.PushConstantRange{
		StageFlags: native.Flags(stageFlags),
		Offset:     offset,
		Size:       size,
	}}
}

func NewPushConstantRange() *PushConstantRange {
	return &PushConstantRange{}
}

func (s PushConstantRange) StageFlags() ShaderStageFlags {
	return ShaderStageFlags(s.raw.StageFlags)
}

func (s *PushConstantRange) SetStageFlags(stageFlags ShaderStageFlags) *PushConstantRange {
	s.raw.StageFlags = native.Flags(stageFlags)
	return s
}

func (s PushConstantRange) Offset() uint32 {
	return s.raw.Offset
}

func (s *PushConstantRange) SetOffset(offset uint32) *PushConstantRange {
	s.raw.Offset = offset
	return s
}

func (s PushConstantRange) Size() uint32 {
	return s.raw.Size
}

func (s *PushConstantRange) SetSize(size uint32) *PushConstantRange {
	s.raw.Size = size
	return s
}

func (s PushConstantRange) Native() native.PushConstantRange {
	return s.raw
}

// PipelineLayoutCreateInfo wraps VkPipelineLayoutCreateInfo.
type PipelineLayoutCreateInfo struct {
	raw native.PipelineLayoutCreateInfo
}

func MakePipelineLayoutCreateInfo(
	flags PipelineLayoutCreateFlags,
	setLayoutCount uint32,
	setLayouts *DescriptorSetLayout,
	pushConstantRangeCount uint32,
	pushConstantRanges *PushConstantRange,
) PipelineLayoutCreateInfo {
	return PipelineLayoutCreateInfo{raw: native.PipelineLayoutCreateInfo{
		SType:                  native.StructureType(PIPELINE_LAYOUT_CREATE_INFO),
		Flags:                  native.Flags(flags),
		SetLayoutCount:         setLayoutCount,
		PSetLayouts:            (*native.DescriptorSetLayout)(unsafe.Pointer(setLayouts)),
		PushConstantRangeCount: pushConstantRangeCount,
		PPushConstantRanges:    (*native.PushConstantRange)(unsafe.Pointer(pushConstantRanges)),
	}}
}

func NewPipelineLayoutCreateInfo() *PipelineLayoutCreateInfo {
	return &PipelineLayoutCreateInfo{raw: native.PipelineLayoutCreateInfo{SType: native.StructureType(PIPELINE_LAYOUT_CREATE_INFO)}}
}

func (s PipelineLayoutCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *PipelineLayoutCreateInfo) SetSType(sType StructureType) *PipelineLayoutCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s PipelineLayoutCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *PipelineLayoutCreateInfo) SetNext(next unsafe.Pointer) *PipelineLayoutCreateInfo {
	s.raw.PNext = next
	return s
}

func (s PipelineLayoutCreateInfo) Flags() PipelineLayoutCreateFlags {
	return PipelineLayoutCreateFlags(s.raw.Flags)
}

func (s *PipelineLayoutCreateInfo) SetFlags(flags PipelineLayoutCreateFlags) *PipelineLayoutCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s PipelineLayoutCreateInfo) SetLayoutCount() uint32 {
	return s.raw.SetLayoutCount
}

func (s *PipelineLayoutCreateInfo) SetSetLayoutCount(setLayoutCount uint32) *PipelineLayoutCreateInfo {
	s.raw.SetLayoutCount = setLayoutCount
	return s
}

func (s PipelineLayoutCreateInfo) SetLayouts() *DescriptorSetLayout {
	return (*DescriptorSetLayout)(unsafe.Pointer(s.raw.PSetLayouts))
}

func (s *PipelineLayoutCreateInfo) SetSetLayouts(setLayouts *DescriptorSetLayout) *PipelineLayoutCreateInfo {
	s.raw.PSetLayouts = (*native.DescriptorSetLayout)(unsafe.Pointer(setLayouts))
	return s
}

func (s PipelineLayoutCreateInfo) PushConstantRangeCount() uint32 {
	return s.raw.PushConstantRangeCount
}

func (s *PipelineLayoutCreateInfo) SetPushConstantRangeCount(pushConstantRangeCount uint32) *PipelineLayoutCreateInfo {
	s.raw.PushConstantRangeCount = pushConstantRangeCount
	return s
}

func (s PipelineLayoutCreateInfo) PushConstantRanges() *PushConstantRange {
	return (*PushConstantRange)(unsafe.Pointer(s.raw.PPushConstantRanges))
}

func (s *PipelineLayoutCreateInfo) SetPushConstantRanges(pushConstantRanges *PushConstantRange) *PipelineLayoutCreateInfo {
	s.raw.PPushConstantRanges = (*native.PushConstantRange)(unsafe.Pointer(pushConstantRanges))
	return s
}

func (s PipelineLayoutCreateInfo) Native() native.PipelineLayoutCreateInfo {
	return s.raw
}

// SpecializationMapEntry wraps VkSpecializationMapEntry.
type SpecializationMapEntry struct {
	raw native.SpecializationMapEntry
}

func MakeSpecializationMapEntry(constantID uint32, offset uint32, size uint) SpecializationMapEntry {
	return SpecializationMapEntry{raw: native.SpecializationMapEntry{
		ConstantID: constantID,
		Offset:     offset,
		Size:       size,
	}}
}

func NewSpecializationMapEntry() *SpecializationMapEntry {
	return &SpecializationMapEntry{}
}

func (s SpecializationMapEntry) ConstantID() uint32 {
	return s.raw.ConstantID
}

func (s *SpecializationMapEntry) SetConstantID(constantID uint32) *SpecializationMapEntry {
	s.raw.ConstantID = constantID
	return s
}

func (s SpecializationMapEntry) Offset() uint32 {
	return s.raw.Offset
}

func (s *SpecializationMapEntry) SetOffset(offset uint32) *SpecializationMapEntry {
	s.raw.Offset = offset
	return s
}

func (s SpecializationMapEntry) Size() uint {
	return s.raw.Size
}

func (s *SpecializationMapEntry) SetSize(size uint) *SpecializationMapEntry {
	s.raw.Size = size
	return s
}

func (s SpecializationMapEntry) Native() native.SpecializationMapEntry {
	return s.raw
}

// SpecializationInfo wraps VkSpecializationInfo.
type SpecializationInfo struct {
	raw native.SpecializationInfo
}

func MakeSpecializationInfo(
	mapEntryCount uint32,
	mapEntries *SpecializationMapEntry,
	dataSize uint,
	data unsafe.Pointer,
) SpecializationInfo {
	return SpecializationInfo{raw: native.SpecializationInfo{
		MapEntryCount: mapEntryCount,
		PMapEntries:   (*native.SpecializationMapEntry)(unsafe.Pointer(mapEntries)),
		DataSize:      dataSize,
		PData:         data,
	}}
}

func NewSpecializationInfo() *SpecializationInfo {
	return &SpecializationInfo{}
}

func (s SpecializationInfo) MapEntryCount() uint32 {
	return s.raw.MapEntryCount
}

func (s *SpecializationInfo) SetMapEntryCount(mapEntryCount uint32) *SpecializationInfo {
	s.raw.MapEntryCount = mapEntryCount
	return s
}

func (s SpecializationInfo) MapEntries() *SpecializationMapEntry {
	return (*SpecializationMapEntry)(unsafe.Pointer(s.raw.PMapEntries))
}

func (s *SpecializationInfo) SetMapEntries(mapEntries *SpecializationMapEntry) *SpecializationInfo {
	s.raw.PMapEntries = (*native.SpecializationMapEntry)(unsafe.Pointer(mapEntries))
	return s
}

func (s SpecializationInfo) DataSize() uint {
	return s.raw.DataSize
}

func (s *SpecializationInfo) SetDataSize(dataSize uint) *SpecializationInfo {
	s.raw.DataSize = dataSize
	return s
}

func (s SpecializationInfo) Data() unsafe.Pointer {
	return s.raw.PData
}

func (s *SpecializationInfo) SetData(data unsafe.Pointer) *SpecializationInfo {
	s.raw.PData = data
	return s
}

func (s SpecializationInfo) Native() native.SpecializationInfo {
	return s.raw
}

// PipelineShaderStageCreateInfo wraps VkPipelineShaderStageCreateInfo.
type PipelineShaderStageCreateInfo struct {
	raw native.PipelineShaderStageCreateInfo
}

func MakePipelineShaderStageCreateInfo(
	flags PipelineShaderStageCreateFlags,
	stage ShaderStageFlagBits,
	module ShaderModule,
	name *byte,
	specializationInfo *SpecializationInfo,
) PipelineShaderStageCreateInfo {
	return PipelineShaderStageCreateInfo{raw: native.PipelineShaderStageCreateInfo{
		SType:               native.StructureType(PIPELINE_SHADER_STAGE_CREATE_INFO),
		Flags:               native.Flags(flags),
		Stage:               native.Flags(stage),
		Module:              native.ShaderModule(module),
		PName:               name,
		PSpecializationInfo: (*native.SpecializationInfo)(unsafe.Pointer(specializationInfo)),
	}}
}

func NewPipelineShaderStageCreateInfo() *PipelineShaderStageCreateInfo {
	return &PipelineShaderStageCreateInfo{raw: native.PipelineShaderStageCreateInfo{SType: native.StructureType(PIPELINE_SHADER_STAGE_CREATE_INFO)}}
}

func (s PipelineShaderStageCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *PipelineShaderStageCreateInfo) SetSType(sType StructureType) *PipelineShaderStageCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s PipelineShaderStageCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *PipelineShaderStageCreateInfo) SetNext(next unsafe.Pointer) *PipelineShaderStageCreateInfo {
	s.raw.PNext = next
	return s
}

func (s PipelineShaderStageCreateInfo) Flags() PipelineShaderStageCreateFlags {
	return PipelineShaderStageCreateFlags(s.raw.Flags)
}

func (s *PipelineShaderStageCreateInfo) SetFlags(flags PipelineShaderStageCreateFlags) *PipelineShaderStageCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s PipelineShaderStageCreateInfo) Stage() ShaderStageFlagBits {
	return ShaderStageFlagBits(s.raw.Stage)
}

func (s *PipelineShaderStageCreateInfo) SetStage(stage ShaderStageFlagBits) *PipelineShaderStageCreateInfo {
	s.raw.Stage = native.Flags(stage)
	return s
}

func (s PipelineShaderStageCreateInfo) Module() ShaderModule {
	return ShaderModule(s.raw.Module)
}

func (s *PipelineShaderStageCreateInfo) SetModule(module ShaderModule) *PipelineShaderStageCreateInfo {
	s.raw.Module = native.ShaderModule(module)
	return s
}

func (s PipelineShaderStageCreateInfo) Name() *byte {
	return s.raw.PName
}

func (s *PipelineShaderStageCreateInfo) SetName(name *byte) *PipelineShaderStageCreateInfo {
	s.raw.PName = name
	return s
}

func (s PipelineShaderStageCreateInfo) SpecializationInfo() *SpecializationInfo {
	return (*SpecializationInfo)(unsafe.Pointer(s.raw.PSpecializationInfo))
}

func (s *PipelineShaderStageCreateInfo) SetSpecializationInfo(specializationInfo *SpecializationInfo) *PipelineShaderStageCreateInfo {
	s.raw.PSpecializationInfo = (*native.SpecializationInfo)(unsafe.Pointer(specializationInfo))
	return s
}

func (s PipelineShaderStageCreateInfo) Native() native.PipelineShaderStageCreateInfo {
	return s.raw
}

// ComputePipelineCreateInfo wraps VkComputePipelineCreateInfo.
type ComputePipelineCreateInfo struct {
	raw native.ComputePipelineCreateInfo
}

func MakeComputePipelineCreateInfo(
	flags PipelineCreateFlags,
	stage PipelineShaderStageCreateInfo,
	layout PipelineLayout,
	basePipelineHandle Pipeline,
	basePipelineIndex int32,
) ComputePipelineCreateInfo {
	return ComputePipelineCreateInfo{raw: native.ComputePipelineCreateInfo{
		SType:              native.StructureType(COMPUTE_PIPELINE_CREATE_INFO),
		Flags:              native.Flags(flags),
		Stage:              stage.raw,
		Layout:             native.PipelineLayout(layout),
		BasePipelineHandle: native.Pipeline(basePipelineHandle),
		BasePipelineIndex:  basePipelineIndex,
	}}
}

func NewComputePipelineCreateInfo() *ComputePipelineCreateInfo {
	return &ComputePipelineCreateInfo{raw: native.ComputePipelineCreateInfo{SType: native.StructureType(COMPUTE_PIPELINE_CREATE_INFO)}}
}

func (s ComputePipelineCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *ComputePipelineCreateInfo) SetSType(sType StructureType) *ComputePipelineCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s ComputePipelineCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *ComputePipelineCreateInfo) SetNext(next unsafe.Pointer) *ComputePipelineCreateInfo {
	s.raw.PNext = next
	return s
}

func (s ComputePipelineCreateInfo) Flags() PipelineCreateFlags {
	return PipelineCreateFlags(s.raw.Flags)
}

func (s *ComputePipelineCreateInfo) SetFlags(flags PipelineCreateFlags) *ComputePipelineCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s ComputePipelineCreateInfo) Stage() PipelineShaderStageCreateInfo {
	return PipelineShaderStageCreateInfo{raw: s.raw.Stage}
}

func (s *ComputePipelineCreateInfo) SetStage(stage PipelineShaderStageCreateInfo) *ComputePipelineCreateInfo {
	s.raw.Stage = stage.raw
	return s
}

func (s ComputePipelineCreateInfo) Layout() PipelineLayout {
	return PipelineLayout(s.raw.Layout)
}

func (s *ComputePipelineCreateInfo) SetLayout(layout PipelineLayout) *ComputePipelineCreateInfo {
	s.raw.Layout = native.PipelineLayout(layout)
	return s
}

func (s ComputePipelineCreateInfo) BasePipelineHandle() Pipeline {
	return Pipeline(s.raw.BasePipelineHandle)
}

func (s *ComputePipelineCreateInfo) SetBasePipelineHandle(basePipelineHandle Pipeline) *ComputePipelineCreateInfo {
	s.raw.BasePipelineHandle = native.Pipeline(basePipelineHandle)
	return s
}

func (s ComputePipelineCreateInfo) BasePipelineIndex() int32 {
	return s.raw.BasePipelineIndex
}

func (s *ComputePipelineCreateInfo) SetBasePipelineIndex(basePipelineIndex int32) *ComputePipelineCreateInfo {
	s.raw.BasePipelineIndex = basePipelineIndex
	return s
}

func (s ComputePipelineCreateInfo) Native() native.ComputePipelineCreateInfo {
	return s.raw
}

// VertexInputBindingDescription wraps VkVertexInputBindingDescription.
type VertexInputBindingDescription struct {
	raw native.VertexInputBindingDescription
}

func MakeVertexInputBindingDescription(binding uint32, stride uint32, inputRate VertexInputRate) VertexInputBindingDescription {
	return VertexInputBindingDescription{raw: native.VertexInputBindingDescription{
		Binding:   binding,
		Stride:    stride,
		InputRate: int32(inputRate),
	}}
}

func NewVertexInputBindingDescription() *VertexInputBindingDescription {
	return &VertexInputBindingDescription{}
}

func (s VertexInputBindingDescription) Binding() uint32 {
	return s.raw.Binding
}

func (s *VertexInputBindingDescription) SetBinding(binding uint32) *VertexInputBindingDescription {
	s.raw.Binding = binding
	return s
}

func (s VertexInputBindingDescription) Stride() uint32 {
	return s.raw.Stride
}

func (s *VertexInputBindingDescription) SetStride(stride uint32) *VertexInputBindingDescription {
	s.raw.Stride = stride
	return s
}

func (s VertexInputBindingDescription) InputRate() VertexInputRate {
	return VertexInputRate(s.raw.InputRate)
}

func (s *VertexInputBindingDescription) SetInputRate(inputRate VertexInputRate) *VertexInputBindingDescription {
	s.raw.InputRate = int32(inputRate)
	return s
}

func (s VertexInputBindingDescription) Native() native.VertexInputBindingDescription {
	return s.raw
}

// VertexInputAttributeDescription wraps VkVertexInputAttributeDescription.
type VertexInputAttributeDescription struct {
	raw native.VertexInputAttributeDescription
}

func MakeVertexInputAttributeDescription(location uint32, binding uint32, format Format, offset uint32) VertexInputAttributeDescription {
	return VertexInputAttributeDescription{raw: native.VertexInputAttributeDescription{
		Location: location,
		Binding:  binding,
		Format:   int32(format),
		Offset:   offset,
	}}
}

func NewVertexInputAttributeDescription() *VertexInputAttributeDescription {
	return &VertexInputAttributeDescription{}
}

func (s VertexInputAttributeDescription) Location() uint32 {
	return s.raw.Location
}

func (s *VertexInputAttributeDescription) SetLocation(location uint32) *VertexInputAttributeDescription {
	s.raw.Location = location
	return s
}

func (s VertexInputAttributeDescription) Binding() uint32 {
	return s.raw.Binding
}

func (s *VertexInputAttributeDescription) SetBinding(binding uint32) *VertexInputAttributeDescription {
	s.raw.Binding = binding
	return s
}

func (s VertexInputAttributeDescription) Format() Format {
	return Format(s.raw.Format)
}

func (s *VertexInputAttributeDescription) SetFormat(format Format) *VertexInputAttributeDescription {
	s.raw.Format = int32(format)
	return s
}

func (s VertexInputAttributeDescription) Offset() uint32 {
	return s.raw.Offset
}

func (s *VertexInputAttributeDescription) SetOffset(offset uint32) *VertexInputAttributeDescription {
	s.raw.Offset = offset
	return s
}

func (s VertexInputAttributeDescription) Native() native.VertexInputAttributeDescription {
	return s.raw
}

// PipelineVertexInputStateCreateInfo wraps VkPipelineVertexInputStateCreateInfo.
type PipelineVertexInputStateCreateInfo struct {
	raw native.PipelineVertexInputStateCreateInfo
}

func MakePipelineVertexInputStateCreateInfo(
	flags PipelineVertexInputStateCreateFlags,
	vertexBindingDescriptionCount uint32,
	vertexBindingDescriptions *VertexInputBindingDescription,
	vertexAttributeDescriptionCount uint32,
	vertexAttributeDescriptions *VertexInputAttributeDescription,
) PipelineVertexInputStateCreateInfo {
	return PipelineVertexInputStateCreateInfo{raw: native.PipelineVertexInputStateCreateInfo{
		SType:                           native.StructureType(PIPELINE_VERTEX_INPUT_STATE_CREATE_INFO),
		Flags:                           native.Flags(flags),
		VertexBindingDescriptionCount:   vertexBindingDescriptionCount,
		PVertexBindingDescriptions:      (*native.VertexInputBindingDescription)(unsafe.Pointer(vertexBindingDescriptions)),
		VertexAttributeDescriptionCount: vertexAttributeDescriptionCount,
		PVertexAttributeDescriptions:    (*native.VertexInputAttributeDescription)(unsafe.Pointer(vertexAttributeDescriptions)),
	}}
}

func NewPipelineVertexInputStateCreateInfo() *PipelineVertexInputStateCreateInfo {
	return &PipelineVertexInputStateCreateInfo{raw: native.PipelineVertexInputStateCreateInfo{SType: native.StructureType(PIPELINE_VERTEX_INPUT_STATE_CREATE_INFO)}}
}

func (s PipelineVertexInputStateCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *PipelineVertexInputStateCreateInfo) SetSType(sType StructureType) *PipelineVertexInputStateCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s PipelineVertexInputStateCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *PipelineVertexInputStateCreateInfo) SetNext(next unsafe.Pointer) *PipelineVertexInputStateCreateInfo {
	s.raw.PNext = next
	return s
}

func (s PipelineVertexInputStateCreateInfo) Flags() PipelineVertexInputStateCreateFlags {
	return PipelineVertexInputStateCreateFlags(s.raw.Flags)
}

func (s *PipelineVertexInputStateCreateInfo) SetFlags(flags PipelineVertexInputStateCreateFlags) *PipelineVertexInputStateCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s PipelineVertexInputStateCreateInfo) VertexBindingDescriptionCount() uint32 {
	return s.raw.VertexBindingDescriptionCount
}

func (s *PipelineVertexInputStateCreateInfo) SetVertexBindingDescriptionCount(vertexBindingDescriptionCount uint32) *PipelineVertexInputStateCreateInfo {
	s.raw.VertexBindingDescriptionCount = vertexBindingDescriptionCount
	return s
}

func (s PipelineVertexInputStateCreateInfo) VertexBindingDescriptions() *VertexInputBindingDescription {
	return (*VertexInputBindingDescription)(unsafe.Pointer(s.raw.PVertexBindingDescriptions))
}

func (s *PipelineVertexInputStateCreateInfo) SetVertexBindingDescriptions(vertexBindingDescriptions *VertexInputBindingDescription) *PipelineVertexInputStateCreateInfo {
	s.raw.PVertexBindingDescriptions = (*native.VertexInputBindingDescription)(unsafe.Pointer(vertexBindingDescriptions))
	return s
}

func (s PipelineVertexInputStateCreateInfo) VertexAttributeDescriptionCount() uint32 {
	return s.raw.VertexAttributeDescriptionCount
}

func (s *PipelineVertexInputStateCreateInfo) SetVertexAttributeDescriptionCount(vertexAttributeDescriptionCount uint32) *PipelineVertexInputStateCreateInfo {
	s.raw.VertexAttributeDescriptionCount = vertexAttributeDescriptionCount
	return s
}

func (s PipelineVertexInputStateCreateInfo) VertexAttributeDescriptions() *VertexInputAttributeDescription {
	return (*VertexInputAttributeDescription)(unsafe.Pointer(s.raw.PVertexAttributeDescriptions))
}

func (s *PipelineVertexInputStateCreateInfo) SetVertexAttributeDescriptions(vertexAttributeDescriptions *VertexInputAttributeDescription) *PipelineVertexInputStateCreateInfo {
	s.raw.PVertexAttributeDescriptions = (*native.VertexInputAttributeDescription)(unsafe.Pointer(vertexAttributeDescriptions))
	return s
}

func (s PipelineVertexInputStateCreateInfo) Native() native.PipelineVertexInputStateCreateInfo {
	return s.raw
}

// PipelineInputAssemblyStateCreateInfo wraps VkPipelineInputAssemblyStateCreateInfo.
type PipelineInputAssemblyStateCreateInfo struct {
	raw native.PipelineInputAssemblyStateCreateInfo
}

func MakePipelineInputAssemblyStateCreateInfo(
	flags PipelineInputAssemblyStateCreateFlags,
	topology PrimitiveTopology,
	primitiveRestartEnable bool,
) PipelineInputAssemblyStateCreateInfo {
	return PipelineInputAssemblyStateCreateInfo{raw: native.PipelineInputAssemblyStateCreateInfo{
		SType:                  native.StructureType(PIPELINE_INPUT_ASSEMBLY_STATE_CREATE_INFO),
		Flags:                  native.Flags(flags),
		Topology:               int32(topology),
		PrimitiveRestartEnable: bool32(primitiveRestartEnable),
	}}
}

func NewPipelineInputAssemblyStateCreateInfo() *PipelineInputAssemblyStateCreateInfo {
	return &PipelineInputAssemblyStateCreateInfo{raw: native.PipelineInputAssemblyStateCreateInfo{SType: native.StructureType(PIPELINE_INPUT_ASSEMBLY_STATE_CREATE_INFO)}}
}

func (s PipelineInputAssemblyStateCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *PipelineInputAssemblyStateCreateInfo) SetSType(sType StructureType) *PipelineInputAssemblyStateCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s PipelineInputAssemblyStateCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *PipelineInputAssemblyStateCreateInfo) SetNext(next unsafe.Pointer) *PipelineInputAssemblyStateCreateInfo {
	s.raw.PNext = next
	return s
}

func (s PipelineInputAssemblyStateCreateInfo) Flags() PipelineInputAssemblyStateCreateFlags {
	return PipelineInputAssemblyStateCreateFlags(s.raw.Flags)
}

func (s *PipelineInputAssemblyStateCreateInfo) SetFlags(flags PipelineInputAssemblyStateCreateFlags) *PipelineInputAssemblyStateCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s PipelineInputAssemblyStateCreateInfo) Topology() PrimitiveTopology {
	return PrimitiveTopology(s.raw.Topology)
}

func (s *PipelineInputAssemblyStateCreateInfo) SetTopology(topology PrimitiveTopology) *PipelineInputAssemblyStateCreateInfo {
	s.raw.Topology = int32(topology)
	return s
}

func (s PipelineInputAssemblyStateCreateInfo) PrimitiveRestartEnable() bool {
	return s.raw.PrimitiveRestartEnable != 0
}

func (s *PipelineInputAssemblyStateCreateInfo) SetPrimitiveRestartEnable(primitiveRestartEnable bool) *PipelineInputAssemblyStateCreateInfo {
	s.raw.PrimitiveRestartEnable = bool32(primitiveRestartEnable)
	return s
}

func (s PipelineInputAssemblyStateCreateInfo) Native() native.PipelineInputAssemblyStateCreateInfo {
	return s.raw
}

// PipelineTessellationStateCreateInfo wraps VkPipelineTessellationStateCreateInfo.
type PipelineTessellationStateCreateInfo struct {
	raw native.PipelineTessellationStateCreateInfo
}

func MakePipelineTessellationStateCreateInfo(flags PipelineTessellationStateCreateFlags, patchControlPoints uint32) PipelineTessellationStateCreateInfo {
	return PipelineTessellationStateCreateInfo{raw: native.PipelineTessellationStateCreateInfo{
		SType:              native.StructureType(PIPELINE_TESSELLATION_STATE_CREATE_INFO),
		Flags:              native.Flags(flags),
		PatchControlPoints: patchControlPoints,
	}}
}

func NewPipelineTessellationStateCreateInfo() *PipelineTessellationStateCreateInfo {
	return &PipelineTessellationStateCreateInfo{raw: native.PipelineTessellationStateCreateInfo{SType: native.StructureType(PIPELINE_TESSELLATION_STATE_CREATE_INFO)}}
}

func (s PipelineTessellationStateCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *PipelineTessellationStateCreateInfo) SetSType(sType StructureType) *PipelineTessellationStateCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s PipelineTessellationStateCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *PipelineTessellationStateCreateInfo) SetNext(next unsafe.Pointer) *PipelineTessellationStateCreateInfo {
	s.raw.PNext = next
	return s
}

func (s PipelineTessellationStateCreateInfo) Flags() PipelineTessellationStateCreateFlags {
	return PipelineTessellationStateCreateFlags(s.raw.Flags)
}

func (s *PipelineTessellationStateCreateInfo) SetFlags(flags PipelineTessellationStateCreateFlags) *PipelineTessellationStateCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s PipelineTessellationStateCreateInfo) PatchControlPoints() uint32 {
	return s.raw.PatchControlPoints
}

func (s *PipelineTessellationStateCreateInfo) SetPatchControlPoints(patchControlPoints uint32) *PipelineTessellationStateCreateInfo {
	s.raw.PatchControlPoints = patchControlPoints
	return s
}

func (s PipelineTessellationStateCreateInfo) Native() native.PipelineTessellationStateCreateInfo {
	return s.raw
}

// PipelineViewportStateCreateInfo wraps VkPipelineViewportStateCreateInfo. With
// DYNAMIC_STATE_VIEWPORT and DYNAMIC_STATE_SCISSOR only the counts are read.
type PipelineViewportStateCreateInfo struct {
	raw native.PipelineViewportStateCreateInfo
}

func MakePipelineViewportStateCreateInfo(
	flags PipelineViewportStateCreateFlags,
	viewportCount uint32,
	viewports *Viewport,
	scissorCount uint32,
	scissors *Rect2D,
) PipelineViewportStateCreateInfo {
	return PipelineViewportStateCreateInfo{raw: native.PipelineViewportStateCreateInfo{
		SType:         native.StructureType(PIPELINE_VIEWPORT_STATE_CREATE_INFO),
		Flags:         native.Flags(flags),
		ViewportCount: viewportCount,
		PViewports:    (*native.Viewport)(unsafe.Pointer(viewports)),
		ScissorCount:  scissorCount,
		PScissors:     (*native.Rect2D)(unsafe.Pointer(scissors)),
	}}
}

func NewPipelineViewportStateCreateInfo() *PipelineViewportStateCreateInfo {
	return &PipelineViewportStateCreateInfo{raw: native.PipelineViewportStateCreateInfo{SType: native.StructureType(PIPELINE_VIEWPORT_STATE_CREATE_INFO)}}
}

func (s PipelineViewportStateCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *PipelineViewportStateCreateInfo) SetSType(sType StructureType) *PipelineViewportStateCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s PipelineViewportStateCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *PipelineViewportStateCreateInfo) SetNext(next unsafe.Pointer) *PipelineViewportStateCreateInfo {
	s.raw.PNext = next
	return s
}

func (s PipelineViewportStateCreateInfo) Flags() PipelineViewportStateCreateFlags {
	return PipelineViewportStateCreateFlags(s.raw.Flags)
}

func (s *PipelineViewportStateCreateInfo) SetFlags(flags PipelineViewportStateCreateFlags) *PipelineViewportStateCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s PipelineViewportStateCreateInfo) ViewportCount() uint32 {
	return s.raw.ViewportCount
}

func (s *PipelineViewportStateCreateInfo) SetViewportCount(viewportCount uint32) *PipelineViewportStateCreateInfo {
	s.raw.ViewportCount = viewportCount
	return s
}

func (s PipelineViewportStateCreateInfo) Viewports() *Viewport {
	return (*Viewport)(unsafe.Pointer(s.raw.PViewports))
}

func (s *PipelineViewportStateCreateInfo) SetViewports(viewports *Viewport) *PipelineViewportStateCreateInfo {
	s.raw.PViewports = (*native.Viewport)(unsafe.Pointer(viewports))
	return s
}

func (s PipelineViewportStateCreateInfo) ScissorCount() uint32 {
	return s.raw.ScissorCount
}

func (s *PipelineViewportStateCreateInfo) SetScissorCount(scissorCount uint32) *PipelineViewportStateCreateInfo {
	s.raw.ScissorCount = scissorCount
	return s
}

func (s PipelineViewportStateCreateInfo) Scissors() *Rect2D {
	return (*Rect2D)(unsafe.Pointer(s.raw.PScissors))
}

func (s *PipelineViewportStateCreateInfo) SetScissors(scissors *Rect2D) *PipelineViewportStateCreateInfo {
	s.raw.PScissors = (*native.Rect2D)(unsafe.Pointer(scissors))
	return s
}

func (s PipelineViewportStateCreateInfo) Native() native.PipelineViewportStateCreateInfo {
	return s.raw
}

// PipelineRasterizationStateCreateInfo wraps VkPipelineRasterizationStateCreateInfo.
type PipelineRasterizationStateCreateInfo struct {
	raw native.PipelineRasterizationStateCreateInfo
}

func MakePipelineRasterizationStateCreateInfo(
	flags PipelineRasterizationStateCreateFlags,
	depthClampEnable bool,
	rasterizerDiscardEnable bool,
	polygonMode PolygonMode,
	cullMode CullModeFlags,
	frontFace FrontFace,
	depthBiasEnable bool,
	depthBiasConstantFactor float32,
	depthBiasClamp float32,
	depthBiasSlopeFactor float32,
	lineWidth float32,
) PipelineRasterizationStateCreateInfo {
	return PipelineRasterizationStateCreateInfo{raw: native.PipelineRasterizationStateCreateInfo{
		SType:                   native.StructureType(PIPELINE_RASTERIZATION_STATE_CREATE_INFO),
		Flags:                   native.Flags(flags),
		DepthClampEnable:        bool32(depthClampEnable),
		RasterizerDiscardEnable: bool32(rasterizerDiscardEnable),
		PolygonMode:             int32(polygonMode),
		CullMode:                native.Flags(cullMode),
		FrontFace:               int32(frontFace),
		DepthBiasEnable:         bool32(depthBiasEnable),
		DepthBiasConstantFactor: depthBiasConstantFactor,
		DepthBiasClamp:          depthBiasClamp,
		DepthBiasSlopeFactor:    depthBiasSlopeFactor,
		LineWidth:               lineWidth,
	}}
}

func NewPipelineRasterizationStateCreateInfo() *PipelineRasterizationStateCreateInfo {
	return &PipelineRasterizationStateCreateInfo{raw: native.PipelineRasterizationStateCreateInfo{SType: native.StructureType(PIPELINE_RASTERIZATION_STATE_CREATE_INFO)}}
}

func (s PipelineRasterizationStateCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *PipelineRasterizationStateCreateInfo) SetSType(sType StructureType) *PipelineRasterizationStateCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s PipelineRasterizationStateCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *PipelineRasterizationStateCreateInfo) SetNext(next unsafe.Pointer) *PipelineRasterizationStateCreateInfo {
	s.raw.PNext = next
	return s
}

func (s PipelineRasterizationStateCreateInfo) Flags() PipelineRasterizationStateCreateFlags {
	return PipelineRasterizationStateCreateFlags(s.raw.Flags)
}

func (s *PipelineRasterizationStateCreateInfo) SetFlags(flags PipelineRasterizationStateCreateFlags) *PipelineRasterizationStateCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s PipelineRasterizationStateCreateInfo) DepthClampEnable() bool {
	return s.raw.DepthClampEnable != 0
}

func (s *PipelineRasterizationStateCreateInfo) SetDepthClampEnable(depthClampEnable bool) *PipelineRasterizationStateCreateInfo {
	s.raw.DepthClampEnable = bool32(depthClampEnable)
	return s
}

func (s PipelineRasterizationStateCreateInfo) RasterizerDiscardEnable() bool {
	return s.raw.RasterizerDiscardEnable != 0
}

func (s *PipelineRasterizationStateCreateInfo) SetRasterizerDiscardEnable(rasterizerDiscardEnable bool) *PipelineRasterizationStateCreateInfo {
	s.raw.RasterizerDiscardEnable = bool32(rasterizerDiscardEnable)
	return s
}

func (s PipelineRasterizationStateCreateInfo) PolygonMode() PolygonMode {
	return PolygonMode(s.raw.PolygonMode)
}

func (s *PipelineRasterizationStateCreateInfo) SetPolygonMode(polygonMode PolygonMode) *PipelineRasterizationStateCreateInfo {
	s.raw.PolygonMode = int32(polygonMode)
	return s
}

func (s PipelineRasterizationStateCreateInfo) CullMode() CullModeFlags {
	return CullModeFlags(s.raw.CullMode)
}

func (s *PipelineRasterizationStateCreateInfo) SetCullMode(cullMode CullModeFlags) *PipelineRasterizationStateCreateInfo {
	s.raw.CullMode = native.Flags(cullMode)
	return s
}

func (s PipelineRasterizationStateCreateInfo) FrontFace() FrontFace {
	return FrontFace(s.raw.FrontFace)
}

func (s *PipelineRasterizationStateCreateInfo) SetFrontFace(frontFace FrontFace) *PipelineRasterizationStateCreateInfo {
	s.raw.FrontFace = int32(frontFace)
	return s
}

func (s PipelineRasterizationStateCreateInfo) DepthBiasEnable() bool {
	return s.raw.DepthBiasEnable != 0
}

func (s *PipelineRasterizationStateCreateInfo) SetDepthBiasEnable(depthBiasEnable bool) *PipelineRasterizationStateCreateInfo {
	s.raw.DepthBiasEnable = bool32(depthBiasEnable)
	return s
}

func (s PipelineRasterizationStateCreateInfo) DepthBiasConstantFactor() float32 {
	return s.raw.DepthBiasConstantFactor
}

func (s *PipelineRasterizationStateCreateInfo) SetDepthBiasConstantFactor(depthBiasConstantFactor float32) *PipelineRasterizationStateCreateInfo {
	s.raw.DepthBiasConstantFactor = depthBiasConstantFactor
	return s
}

func (s PipelineRasterizationStateCreateInfo) DepthBiasClamp() float32 {
	return s.raw.DepthBiasClamp
}

func (s *PipelineRasterizationStateCreateInfo) SetDepthBiasClamp(depthBiasClamp float32) *PipelineRasterizationStateCreateInfo {
	s.raw.DepthBiasClamp = depthBiasClamp
	return s
}

func (s PipelineRasterizationStateCreateInfo) DepthBiasSlopeFactor() float32 {
	return s.raw.DepthBiasSlopeFactor
}

func (s *PipelineRasterizationStateCreateInfo) SetDepthBiasSlopeFactor(depthBiasSlopeFactor float32) *PipelineRasterizationStateCreateInfo {
	s.raw.DepthBiasSlopeFactor = depthBiasSlopeFactor
	return s
}

func (s PipelineRasterizationStateCreateInfo) LineWidth() float32 {
	return s.raw.LineWidth
}

func (s *PipelineRasterizationStateCreateInfo) SetLineWidth(lineWidth float32) *PipelineRasterizationStateCreateInfo {
	s.raw.LineWidth = lineWidth
	return s
}

func (s PipelineRasterizationStateCreateInfo) Native() native.PipelineRasterizationStateCreateInfo {
	return s.raw
}

// PipelineMultisampleStateCreateInfo wraps VkPipelineMultisampleStateCreateInfo.
type PipelineMultisampleStateCreateInfo struct {
	raw native.PipelineMultisampleStateCreateInfo
}

func MakePipelineMultisampleStateCreateInfo(
	flags PipelineMultisampleStateCreateFlags,
	rasterizationSamples SampleCountFlagBits,
	sampleShadingEnable bool,
	minSampleShading float32,
	sampleMask *uint32,
	alphaToCoverageEnable bool,
	alphaToOneEnable bool,
) PipelineMultisampleStateCreateInfo {
	return PipelineMultisampleStateCreateInfo{raw: native.PipelineMultisampleStateCreateInfo{
		SType:                 native.StructureType(PIPELINE_MULTISAMPLE_STATE_CREATE_INFO),
		Flags:                 native.Flags(flags),
		RasterizationSamples:  native.Flags(rasterizationSamples),
		SampleShadingEnable:   bool32(sampleShadingEnable),
		MinSampleShading:      minSampleShading,
		PSampleMask:           sampleMask,
		AlphaToCoverageEnable: bool32(alphaToCoverageEnable),
		AlphaToOneEnable:      bool32(alphaToOneEnable),
	}}
}

func NewPipelineMultisampleStateCreateInfo() *PipelineMultisampleStateCreateInfo {
	return &PipelineMultisampleStateCreateInfo{raw: native.PipelineMultisampleStateCreateInfo{SType: native.StructureType(PIPELINE_MULTISAMPLE_STATE_CREATE_INFO)}}
}

func (s PipelineMultisampleStateCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *PipelineMultisampleStateCreateInfo) SetSType(sType StructureType) *PipelineMultisampleStateCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s PipelineMultisampleStateCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *PipelineMultisampleStateCreateInfo) SetNext(next unsafe.Pointer) *PipelineMultisampleStateCreateInfo {
	s.raw.PNext = next
	return s
}

func (s PipelineMultisampleStateCreateInfo) Flags() PipelineMultisampleStateCreateFlags {
	return PipelineMultisampleStateCreateFlags(s.raw.Flags)
}

func (s *PipelineMultisampleStateCreateInfo) SetFlags(flags PipelineMultisampleStateCreateFlags) *PipelineMultisampleStateCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s PipelineMultisampleStateCreateInfo) RasterizationSamples() SampleCountFlagBits {
	return SampleCountFlagBits(s.raw.RasterizationSamples)
}

func (s *PipelineMultisampleStateCreateInfo) SetRasterizationSamples(rasterizationSamples SampleCountFlagBits) *PipelineMultisampleStateCreateInfo {
	s.raw.RasterizationSamples = native.Flags(rasterizationSamples)
	return s
}

func (s PipelineMultisampleStateCreateInfo) SampleShadingEnable() bool {
	return s.raw.SampleShadingEnable != 0
}

func (s *PipelineMultisampleStateCreateInfo) SetSampleShadingEnable(sampleShadingEnable bool) *PipelineMultisampleStateCreateInfo {
	s.raw.SampleShadingEnable = bool32(sampleShadingEnable)
	return s
}

func (s PipelineMultisampleStateCreateInfo) MinSampleShading() float32 {
	return s.raw.MinSampleShading
}

func (s *PipelineMultisampleStateCreateInfo) SetMinSampleShading(minSampleShading float32) *PipelineMultisampleStateCreateInfo {
	s.raw.MinSampleShading = minSampleShading
	return s
}

func (s PipelineMultisampleStateCreateInfo) SampleMask() *uint32 {
	return s.raw.PSampleMask
}

func (s *PipelineMultisampleStateCreateInfo) SetSampleMask(sampleMask *uint32) *PipelineMultisampleStateCreateInfo {
	s.raw.PSampleMask = sampleMask
	return s
}

func (s PipelineMultisampleStateCreateInfo) AlphaToCoverageEnable() bool {
	return s.raw.AlphaToCoverageEnable != 0
}

func (s *PipelineMultisampleStateCreateInfo) SetAlphaToCoverageEnable(alphaToCoverageEnable bool) *PipelineMultisampleStateCreateInfo {
	s.raw.AlphaToCoverageEnable = bool32(alphaToCoverageEnable)
	return s
}

func (s PipelineMultisampleStateCreateInfo) AlphaToOneEnable() bool {
	return s.raw.AlphaToOneEnable != 0
}

func (s *PipelineMultisampleStateCreateInfo) SetAlphaToOneEnable(alphaToOneEnable bool) *PipelineMultisampleStateCreateInfo {
	s.raw.AlphaToOneEnable = bool32(alphaToOneEnable)
	return s
}

func (s PipelineMultisampleStateCreateInfo) Native() native.PipelineMultisampleStateCreateInfo {
	return s.raw
}

// StencilOpState wraps VkStencilOpState.
type StencilOpState struct {
	raw native.StencilOpState
}

func MakeStencilOpState(
	failOp StencilOp,
	passOp StencilOp,
	depthFailOp StencilOp,
	compareOp CompareOp,
	compareMask uint32,
	writeMask uint32,
	reference uint32,
) StencilOpState {
	return StencilOpState{raw: native.StencilOpState{
		FailOp:      int32(failOp),
		PassOp:      int32(passOp),
		DepthFailOp: int32(depthFailOp),
		CompareOp:   int32(compareOp),
		CompareMask: compareMask,
		WriteMask:   writeMask,
		Reference:   reference,
	}}
}

func NewStencilOpState() *StencilOpState {
	return &StencilOpState{}
}

func (s StencilOpState) FailOp() StencilOp {
	return StencilOp(s.raw.FailOp)
}

func (s *StencilOpState) SetFailOp(failOp StencilOp) *StencilOpState {
	s.raw.FailOp = int32(failOp)
	return s
}

func (s StencilOpState) PassOp() StencilOp {
	return StencilOp(s.raw.PassOp)
}

func (s *StencilOpState) SetPassOp(passOp StencilOp) *StencilOpState {
	s.raw.PassOp = int32(passOp)
	return s
}

func (s StencilOpState) DepthFailOp() StencilOp {
	return StencilOp(s.raw.DepthFailOp)
}

func (s *StencilOpState) SetDepthFailOp(depthFailOp StencilOp) *StencilOpState {
	s.raw.DepthFailOp = int32(depthFailOp)
	return s
}

func (s StencilOpState) CompareOp() CompareOp {
	return CompareOp(s.raw.CompareOp)
}

func (s *StencilOpState) SetCompareOp(compareOp CompareOp) *StencilOpState {
	s.raw.CompareOp = int32(compareOp)
	return s
}

func (s StencilOpState) CompareMask() uint32 {
	return s.raw.CompareMask
}

func (s *StencilOpState) SetCompareMask(compareMask uint32) *StencilOpState {
	s.raw.CompareMask = compareMask
	return s
}

func (s StencilOpState) WriteMask() uint32 {
	return s.raw.WriteMask
}

func (s *StencilOpState) SetWriteMask(writeMask uint32) *StencilOpState {
	s.raw.WriteMask = writeMask
	return s
}

func (s StencilOpState) Reference() uint32 {
	return s.raw.Reference
}

func (s *StencilOpState) SetReference(reference uint32) *StencilOpState {
	s.raw.Reference = reference
	return s
}

func (s StencilOpState) Native() native.StencilOpState {
	return s.raw
}

// PipelineDepthStencilStateCreateInfo wraps VkPipelineDepthStencilStateCreateInfo.
type PipelineDepthStencilStateCreateInfo struct {
	raw native.PipelineDepthStencilStateCreateInfo
}

func MakePipelineDepthStencilStateCreateInfo(
	flags PipelineDepthStencilStateCreateFlags,
	depthTestEnable bool,
	depthWriteEnable bool,
	depthCompareOp CompareOp,
	depthBoundsTestEnable bool,
	stencilTestEnable bool,
	front StencilOpState,
	back StencilOpState,
	minDepthBounds float32,
	maxDepthBounds float32,
) PipelineDepthStencilStateCreateInfo {
	return PipelineDepthStencilStateCreateInfo{raw: native.PipelineDepthStencilStateCreateInfo{
		SType:                 native.StructureType(PIPELINE_DEPTH_STENCIL_STATE_CREATE_INFO),
		Flags:                 native.Flags(flags),
		DepthTestEnable:       bool32(depthTestEnable),
		DepthWriteEnable:      bool32(depthWriteEnable),
		DepthCompareOp:        int32(depthCompareOp),
		DepthBoundsTestEnable: bool32(depthBoundsTestEnable),
		StencilTestEnable:     bool32(stencilTestEnable),
		Front:                 front.raw,
		Back:                  back.raw,
		MinDepthBounds:        minDepthBounds,
		MaxDepthBounds:        maxDepthBounds,
	}}
}

func NewPipelineDepthStencilStateCreateInfo() *PipelineDepthStencilStateCreateInfo {
	return &PipelineDepthStencilStateCreateInfo{raw: native.PipelineDepthStencilStateCreateInfo{SType: native.StructureType(PIPELINE_DEPTH_STENCIL_STATE_CREATE_INFO)}}
}

func (s PipelineDepthStencilStateCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *PipelineDepthStencilStateCreateInfo) SetSType(sType StructureType) *PipelineDepthStencilStateCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s PipelineDepthStencilStateCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *PipelineDepthStencilStateCreateInfo) SetNext(next unsafe.Pointer) *PipelineDepthStencilStateCreateInfo {
	s.raw.PNext = next
	return s
}

func (s PipelineDepthStencilStateCreateInfo) Flags() PipelineDepthStencilStateCreateFlags {
	return PipelineDepthStencilStateCreateFlags(s.raw.Flags)
}

func (s *PipelineDepthStencilStateCreateInfo) SetFlags(flags PipelineDepthStencilStateCreateFlags) *PipelineDepthStencilStateCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s PipelineDepthStencilStateCreateInfo) DepthTestEnable() bool {
	return s.raw.DepthTestEnable != 0
}

func (s *PipelineDepthStencilStateCreateInfo) SetDepthTestEnable(depthTestEnable bool) *PipelineDepthStencilStateCreateInfo {
	s.raw.DepthTestEnable = bool32(depthTestEnable)
	return s
}

func (s PipelineDepthStencilStateCreateInfo) DepthWriteEnable() bool {
	return s.raw.DepthWriteEnable != 0
}

func (s *PipelineDepthStencilStateCreateInfo) SetDepthWriteEnable(depthWriteEnable bool) *PipelineDepthStencilStateCreateInfo {
	s.raw.DepthWriteEnable = bool32(depthWriteEnable)
	return s
}

func (s PipelineDepthStencilStateCreateInfo) DepthCompareOp() CompareOp {
	return CompareOp(s.raw.DepthCompareOp)
}

func (s *PipelineDepthStencilStateCreateInfo) SetDepthCompareOp(depthCompareOp CompareOp) *PipelineDepthStencilStateCreateInfo {
	s.raw.DepthCompareOp = int32(depthCompareOp)
	return s
}

func (s PipelineDepthStencilStateCreateInfo) DepthBoundsTestEnable() bool {
	return s.raw.DepthBoundsTestEnable != 0
}

func (s *PipelineDepthStencilStateCreateInfo) SetDepthBoundsTestEnable(depthBoundsTestEnable bool) *PipelineDepthStencilStateCreateInfo {
	s.raw.DepthBoundsTestEnable = bool32(depthBoundsTestEnable)
	return s
}

func (s PipelineDepthStencilStateCreateInfo) StencilTestEnable() bool {
	return s.raw.StencilTestEnable != 0
}

func (s *PipelineDepthStencilStateCreateInfo) SetStencilTestEnable(stencilTestEnable bool) *PipelineDepthStencilStateCreateInfo {
	s.raw.StencilTestEnable = bool32(stencilTestEnable)
	return s
}

func (s PipelineDepthStencilStateCreateInfo) Front() StencilOpState {
	return StencilOpState{raw: s.raw.Front}
}

func (s *PipelineDepthStencilStateCreateInfo) SetFront(front StencilOpState) *PipelineDepthStencilStateCreateInfo {
	s.raw.Front = front.raw
	return s
}

func (s PipelineDepthStencilStateCreateInfo) Back() StencilOpState {
	return StencilOpState{raw: s.raw.Back}
}

func (s *PipelineDepthStencilStateCreateInfo) SetBack(back StencilOpState) *PipelineDepthStencilStateCreateInfo {
	s.raw.Back = back.raw
	return s
}

func (s PipelineDepthStencilStateCreateInfo) MinDepthBounds() float32 {
	return s.raw.MinDepthBounds
}

func (s *PipelineDepthStencilStateCreateInfo) SetMinDepthBounds(minDepthBounds float32) *PipelineDepthStencilStateCreateInfo {
	s.raw.MinDepthBounds = minDepthBounds
	return s
}

func (s PipelineDepthStencilStateCreateInfo) MaxDepthBounds() float32 {
	return s.raw.MaxDepthBounds
}

func (s *PipelineDepthStencilStateCreateInfo) SetMaxDepthBounds(maxDepthBounds float32) *PipelineDepthStencilStateCreateInfo {
	s.raw.MaxDepthBounds = maxDepthBounds
	return s
}

func (s PipelineDepthStencilStateCreateInfo) Native() native.PipelineDepthStencilStateCreateInfo {
	return s.raw
}

// PipelineColorBlendAttachmentState wraps VkPipelineColorBlendAttachmentState.
type PipelineColorBlendAttachmentState struct {
	raw native.PipelineColorBlendAttachmentState
}

func MakePipelineColorBlendAttachmentState(
	blendEnable bool,
	srcColorBlendFactor BlendFactor,
	dstColorBlendFactor BlendFactor,
	colorBlendOp BlendOp,
	srcAlphaBlendFactor BlendFactor,
	dstAlphaBlendFactor BlendFactor,
	alphaBlendOp BlendOp,
	colorWriteMask ColorComponentFlags,
) PipelineColorBlendAttachmentState {
	return PipelineColorBlendAttachmentState{raw: native.PipelineColorBlendAttachmentState{
		BlendEnable:         bool32(blendEnable),
		SrcColorBlendFactor: int32(srcColorBlendFactor),
		DstColorBlendFactor: int32(dstColorBlendFactor),
		ColorBlendOp:        int32(colorBlendOp),
		SrcAlphaBlendFactor: int32(srcAlphaBlendFactor),
		DstAlphaBlendFactor: int32(dstAlphaBlendFactor),
		AlphaBlendOp:        int32(alphaBlendOp),
		ColorWriteMask:      native.Flags(colorWriteMask),
	}}
}

func NewPipelineColorBlendAttachmentState() *PipelineColorBlendAttachmentState {
	return &PipelineColorBlendAttachmentState{}
}

func (s PipelineColorBlendAttachmentState) BlendEnable() bool {
	return s.raw.BlendEnable != 0
}

func (s *PipelineColorBlendAttachmentState) SetBlendEnable(blendEnable bool) *PipelineColorBlendAttachmentState {
	s.raw.BlendEnable = bool32(blendEnable)
	return s
}

func (s PipelineColorBlendAttachmentState) SrcColorBlendFactor() BlendFactor {
	return BlendFactor(s.raw.SrcColorBlendFactor)
}

func (s *PipelineColorBlendAttachmentState) SetSrcColorBlendFactor(srcColorBlendFactor BlendFactor) *PipelineColorBlendAttachmentState {
	s.raw.SrcColorBlendFactor = int32(srcColorBlendFactor)
	return s
}

func (s PipelineColorBlendAttachmentState) DstColorBlendFactor() BlendFactor {
	return BlendFactor(s.raw.DstColorBlendFactor)
}

func (s *PipelineColorBlendAttachmentState) SetDstColorBlendFactor(dstColorBlendFactor BlendFactor) *PipelineColorBlendAttachmentState {
	s.raw.DstColorBlendFactor = int32(dstColorBlendFactor)
	return s
}

func (s PipelineColorBlendAttachmentState) ColorBlendOp() BlendOp {
	return BlendOp(s.raw.ColorBlendOp)
}

func (s *PipelineColorBlendAttachmentState) SetColorBlendOp(colorBlendOp BlendOp) *PipelineColorBlendAttachmentState {
	s.raw.ColorBlendOp = int32(colorBlendOp)
	return s
}

func (s PipelineColorBlendAttachmentState) SrcAlphaBlendFactor() BlendFactor {
	return BlendFactor(s.raw.SrcAlphaBlendFactor)
}

func (s *PipelineColorBlendAttachmentState) SetSrcAlphaBlendFactor(srcAlphaBlendFactor BlendFactor) *PipelineColorBlendAttachmentState {
	s.raw.SrcAlphaBlendFactor = int32(srcAlphaBlendFactor)
	return s
}

func (s PipelineColorBlendAttachmentState) DstAlphaBlendFactor() BlendFactor {
	return BlendFactor(s.raw.DstAlphaBlendFactor)
}

func (s *PipelineColorBlendAttachmentState) SetDstAlphaBlendFactor(dstAlphaBlendFactor BlendFactor) *PipelineColorBlendAttachmentState {
	s.raw.DstAlphaBlendFactor = int32(dstAlphaBlendFactor)
	return s
}

func (s PipelineColorBlendAttachmentState) AlphaBlendOp() BlendOp {
	return BlendOp(s.raw.AlphaBlendOp)
}

func (s *PipelineColorBlendAttachmentState) SetAlphaBlendOp(alphaBlendOp BlendOp) *PipelineColorBlendAttachmentState {
	s.raw.AlphaBlendOp = int32(alphaBlendOp)
	return s
}

func (s PipelineColorBlendAttachmentState) ColorWriteMask() ColorComponentFlags {
	return ColorComponentFlags(s.raw.ColorWriteMask)
}

func (s *PipelineColorBlendAttachmentState) SetColorWriteMask(colorWriteMask ColorComponentFlags) *PipelineColorBlendAttachmentState {
	s.raw.ColorWriteMask = native.Flags(colorWriteMask)
	return s
}

func (s PipelineColorBlendAttachmentState) Native() native.PipelineColorBlendAttachmentState {
	return s.raw
}

// PipelineColorBlendStateCreateInfo wraps VkPipelineColorBlendStateCreateInfo.
type PipelineColorBlendStateCreateInfo struct {
	raw native.PipelineColorBlendStateCreateInfo
}

func MakePipelineColorBlendStateCreateInfo(
	flags PipelineColorBlendStateCreateFlags,
	logicOpEnable bool,
	logicOp LogicOp,
	attachmentCount uint32,
	attachments *PipelineColorBlendAttachmentState,
	blendConstants [4]float32,
) PipelineColorBlendStateCreateInfo {
	return PipelineColorBlendStateCreateInfo{raw: native.PipelineColorBlendStateCreateInfo{
		SType:           native.StructureType(PIPELINE_COLOR_BLEND_STATE_CREATE_INFO),
		Flags:           native.Flags(flags),
		LogicOpEnable:   bool32(logicOpEnable),
		LogicOp:         int32(logicOp),
		AttachmentCount: attachmentCount,
		PAttachments:    (*native.PipelineColorBlendAttachmentState)(unsafe.Pointer(attachments)),
		BlendConstants:  blendConstants,
	}}
}

func NewPipelineColorBlendStateCreateInfo() *PipelineColorBlendStateCreateInfo {
	return &PipelineColorBlendStateCreateInfo{raw: native.PipelineColorBlendStateCreateInfo{SType: native.StructureType(PIPELINE_COLOR_BLEND_STATE_CREATE_INFO)}}
}

func (s PipelineColorBlendStateCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *PipelineColorBlendStateCreateInfo) SetSType(sType StructureType) *PipelineColorBlendStateCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s PipelineColorBlendStateCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *PipelineColorBlendStateCreateInfo) SetNext(next unsafe.Pointer) *PipelineColorBlendStateCreateInfo {
	s.raw.PNext = next
	return s
}

func (s PipelineColorBlendStateCreateInfo) Flags() PipelineColorBlendStateCreateFlags {
	return PipelineColorBlendStateCreateFlags(s.raw.Flags)
}

func (s *PipelineColorBlendStateCreateInfo) SetFlags(flags PipelineColorBlendStateCreateFlags) *PipelineColorBlendStateCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s PipelineColorBlendStateCreateInfo) LogicOpEnable() bool {
	return s.raw.LogicOpEnable != 0
}

func (s *PipelineColorBlendStateCreateInfo) SetLogicOpEnable(logicOpEnable bool) *PipelineColorBlendStateCreateInfo {
	s.raw.LogicOpEnable = bool32(logicOpEnable)
	return s
}

func (s PipelineColorBlendStateCreateInfo) LogicOp() LogicOp {
	return LogicOp(s.raw.LogicOp)
}

func (s *PipelineColorBlendStateCreateInfo) SetLogicOp(logicOp LogicOp) *PipelineColorBlendStateCreateInfo {
	s.raw.LogicOp = int32(logicOp)
	return s
}

func (s PipelineColorBlendStateCreateInfo) AttachmentCount() uint32 {
	return s.raw.AttachmentCount
}

func (s *PipelineColorBlendStateCreateInfo) SetAttachmentCount(attachmentCount uint32) *PipelineColorBlendStateCreateInfo {
	s.raw.AttachmentCount = attachmentCount
	return s
}

func (s PipelineColorBlendStateCreateInfo) Attachments() *PipelineColorBlendAttachmentState {
	return (*PipelineColorBlendAttachmentState)(unsafe.Pointer(s.raw.PAttachments))
}

func (s *PipelineColorBlendStateCreateInfo) SetAttachments(attachments *PipelineColorBlendAttachmentState) *PipelineColorBlendStateCreateInfo {
	s.raw.PAttachments = (*native.PipelineColorBlendAttachmentState)(unsafe.Pointer(attachments))
	return s
}

func (s PipelineColorBlendStateCreateInfo) BlendConstants() [4]float32 {
	return s.raw.BlendConstants
}

func (s *PipelineColorBlendStateCreateInfo) SetBlendConstants(blendConstants [4]float32) *PipelineColorBlendStateCreateInfo {
	s.raw.BlendConstants = blendConstants
	return s
}

func (s PipelineColorBlendStateCreateInfo) Native() native.PipelineColorBlendStateCreateInfo {
	return s.raw
}

// PipelineDynamicStateCreateInfo wraps VkPipelineDynamicStateCreateInfo.
type PipelineDynamicStateCreateInfo struct {
	raw native.PipelineDynamicStateCreateInfo
}

func MakePipelineDynamicStateCreateInfo(
	flags PipelineDynamicStateCreateFlags,
	dynamicStateCount uint32,
	dynamicStates *DynamicState,
) PipelineDynamicStateCreateInfo {
	return PipelineDynamicStateCreateInfo{raw: native.PipelineDynamicStateCreateInfo{
		SType:             native.StructureType(PIPELINE_DYNAMIC_STATE_CREATE_INFO),
		Flags:             native.Flags(flags),
		DynamicStateCount: dynamicStateCount,
		PDynamicStates:    (*int32)(unsafe.Pointer(dynamicStates)),
	}}
}

func NewPipelineDynamicStateCreateInfo() *PipelineDynamicStateCreateInfo {
	return &PipelineDynamicStateCreateInfo{raw: native.PipelineDynamicStateCreateInfo{SType: native.StructureType(PIPELINE_DYNAMIC_STATE_CREATE_INFO)}}
}

func (s PipelineDynamicStateCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *PipelineDynamicStateCreateInfo) SetSType(sType StructureType) *PipelineDynamicStateCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s PipelineDynamicStateCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *PipelineDynamicStateCreateInfo) SetNext(next unsafe.Pointer) *PipelineDynamicStateCreateInfo {
	s.raw.PNext = next
	return s
}

func (s PipelineDynamicStateCreateInfo) Flags() PipelineDynamicStateCreateFlags {
	return PipelineDynamicStateCreateFlags(s.raw.Flags)
}

func (s *PipelineDynamicStateCreateInfo) SetFlags(flags PipelineDynamicStateCreateFlags) *PipelineDynamicStateCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s PipelineDynamicStateCreateInfo) DynamicStateCount() uint32 {
	return s.raw.DynamicStateCount
}

func (s *PipelineDynamicStateCreateInfo) SetDynamicStateCount(dynamicStateCount uint32) *PipelineDynamicStateCreateInfo {
	s.raw.DynamicStateCount = dynamicStateCount
	return s
}

func (s PipelineDynamicStateCreateInfo) DynamicStates() *DynamicState {
	return (*DynamicState)(unsafe.Pointer(s.raw.PDynamicStates))
}

func (s *PipelineDynamicStateCreateInfo) SetDynamicStates(dynamicStates *DynamicState) *PipelineDynamicStateCreateInfo {
	s.raw.PDynamicStates = (*int32)(unsafe.Pointer(dynamicStates))
	return s
}

func (s PipelineDynamicStateCreateInfo) Native() native.PipelineDynamicStateCreateInfo {
	return s.raw
}

// GraphicsPipelineCreateInfo wraps VkGraphicsPipelineCreateInfo. For dynamic
// rendering RenderPass stays NULL_HANDLE and a PipelineRenderingCreateInfo goes
// in the PNext chain.
type GraphicsPipelineCreateInfo struct {
	raw native.GraphicsPipelineCreateInfo
}

func MakeGraphicsPipelineCreateInfo(
	flags PipelineCreateFlags,
	stageCount uint32,
	stages *PipelineShaderStageCreateInfo,
	vertexInputState *PipelineVertexInputStateCreateInfo,
	inputAssemblyState *PipelineInputAssemblyStateCreateInfo,
	tessellationState *PipelineTessellationStateCreateInfo,
	viewportState *PipelineViewportStateCreateInfo,
	rasterizationState *PipelineRasterizationStateCreateInfo,
	multisampleState *PipelineMultisampleStateCreateInfo,
	depthStencilState *PipelineDepthStencilStateCreateInfo,
	colorBlendState *PipelineColorBlendStateCreateInfo,
	dynamicState *PipelineDynamicStateCreateInfo,
	layout PipelineLayout,
	renderPass RenderPass,
	subpass uint32,
	basePipelineHandle Pipeline,
	basePipelineIndex int32,
) GraphicsPipelineCreateInfo {
	return GraphicsPipelineCreateInfo{raw: native.GraphicsPipelineCreateInfo{
		SType:               native.StructureType(GRAPHICS_PIPELINE_CREATE_INFO),
		Flags:               native.Flags(flags),
		StageCount:          stageCount,
		PStages:             (*native.PipelineShaderStageCreateInfo)(unsafe.Pointer(stages)),
		PVertexInputState:   (*native.PipelineVertexInputStateCreateInfo)(unsafe.Pointer(vertexInputState)),
		PInputAssemblyState: (*native.PipelineInputAssemblyStateCreateInfo)(unsafe.Pointer(inputAssemblyState)),
		PTessellationState:  (*native.PipelineTessellationStateCreateInfo)(unsafe.Pointer(tessellationState)),
		PViewportState:      (*native.PipelineViewportStateCreateInfo)(unsafe.Pointer(viewportState)),
		PRasterizationState: (*native.PipelineRasterizationStateCreateInfo)(unsafe.Pointer(rasterizationState)),
		PMultisampleState:   (*native.PipelineMultisampleStateCreateInfo)(unsafe.Pointer(multisampleState)),
		PDepthStencilState:  (*native.PipelineDepthStencilStateCreateInfo)(unsafe.Pointer(depthStencilState)),
		PColorBlendState:    (*native.PipelineColorBlendStateCreateInfo)(unsafe.Pointer(colorBlendState)),
		PDynamicState:       (*native.PipelineDynamicStateCreateInfo)(unsafe.Pointer(dynamicState)),
		Layout:              native.PipelineLayout(layout),
		RenderPass:          native.RenderPass(renderPass),
		Subpass:             subpass,
		BasePipelineHandle:  native.Pipeline(basePipelineHandle),
		BasePipelineIndex:   basePipelineIndex,
	}}
}

func NewGraphicsPipelineCreateInfo() *GraphicsPipelineCreateInfo {
	return &GraphicsPipelineCreateInfo{raw: native.GraphicsPipelineCreateInfo{SType: native.StructureType(GRAPHICS_PIPELINE_CREATE_INFO)}}
}

func (s GraphicsPipelineCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *GraphicsPipelineCreateInfo) SetSType(sType StructureType) *GraphicsPipelineCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s GraphicsPipelineCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *GraphicsPipelineCreateInfo) SetNext(next unsafe.Pointer) *GraphicsPipelineCreateInfo {
	s.raw.PNext = next
	return s
}

func (s GraphicsPipelineCreateInfo) Flags() PipelineCreateFlags {
	return PipelineCreateFlags(s.raw.Flags)
}

func (s *GraphicsPipelineCreateInfo) SetFlags(flags PipelineCreateFlags) *GraphicsPipelineCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s GraphicsPipelineCreateInfo) StageCount() uint32 {
	return s.raw.StageCount
}

func (s *GraphicsPipelineCreateInfo) SetStageCount(stageCount uint32) *GraphicsPipelineCreateInfo {
	s.raw.StageCount = stageCount
	return s
}

func (s GraphicsPipelineCreateInfo) Stages() *PipelineShaderStageCreateInfo {
	return (*PipelineShaderStageCreateInfo)(unsafe.Pointer(s.raw.PStages))
}

func (s *GraphicsPipelineCreateInfo) SetStages(stages *PipelineShaderStageCreateInfo) *GraphicsPipelineCreateInfo {
	s.raw.PStages = (*native.PipelineShaderStageCreateInfo)(unsafe.Pointer(stages))
	return s
}

func (s GraphicsPipelineCreateInfo) VertexInputState() *PipelineVertexInputStateCreateInfo {
	return (*PipelineVertexInputStateCreateInfo)(unsafe.Pointer(s.raw.PVertexInputState))
}

func (s *GraphicsPipelineCreateInfo) SetVertexInputState(vertexInputState *PipelineVertexInputStateCreateInfo) *GraphicsPipelineCreateInfo {
	s.raw.PVertexInputState = (*native.PipelineVertexInputStateCreateInfo)(unsafe.Pointer(vertexInputState))
	return s
}

func (s GraphicsPipelineCreateInfo) InputAssemblyState() *PipelineInputAssemblyStateCreateInfo {
	return (*PipelineInputAssemblyStateCreateInfo)(unsafe.Pointer(s.raw.PInputAssemblyState))
}

func (s *GraphicsPipelineCreateInfo) SetInputAssemblyState(inputAssemblyState *PipelineInputAssemblyStateCreateInfo) *GraphicsPipelineCreateInfo {
	s.raw.PInputAssemblyState = (*native.PipelineInputAssemblyStateCreateInfo)(unsafe.Pointer(inputAssemblyState))
	return s
}

func (s GraphicsPipelineCreateInfo) TessellationState() *PipelineTessellationStateCreateInfo {
	return (*PipelineTessellationStateCreateInfo)(unsafe.Pointer(s.raw.PTessellationState))
}

func (s *GraphicsPipelineCreateInfo) SetTessellationState(tessellationState *PipelineTessellationStateCreateInfo) *GraphicsPipelineCreateInfo {
	s.raw.PTessellationState = (*native.PipelineTessellationStateCreateInfo)(unsafe.Pointer(tessellationState))
	return s
}

func (s GraphicsPipelineCreateInfo) ViewportState() *PipelineViewportStateCreateInfo {
	return (*PipelineViewportStateCreateInfo)(unsafe.Pointer(s.raw.PViewportState))
}

func (s *GraphicsPipelineCreateInfo) SetViewportState(viewportState *PipelineViewportStateCreateInfo) *GraphicsPipelineCreateInfo {
	s.raw.PViewportState = (*native.PipelineViewportStateCreateInfo)(unsafe.Pointer(viewportState))
	return s
}

func (s GraphicsPipelineCreateInfo) RasterizationState() *PipelineRasterizationStateCreateInfo {
	return (*PipelineRasterizationStateCreateInfo)(unsafe.Pointer(s.raw.PRasterizationState))
}

func (s *GraphicsPipelineCreateInfo) SetRasterizationState(rasterizationState *PipelineRasterizationStateCreateInfo) *GraphicsPipelineCreateInfo {
	s.raw.PRasterizationState = (*native.PipelineRasterizationStateCreateInfo)(unsafe.Pointer(rasterizationState))
	return s
}

func (s GraphicsPipelineCreateInfo) MultisampleState() *PipelineMultisampleStateCreateInfo {
	return (*PipelineMultisampleStateCreateInfo)(unsafe.Pointer(s.raw.PMultisampleState))
}

func (s *GraphicsPipelineCreateInfo) SetMultisampleState(multisampleState *PipelineMultisampleStateCreateInfo) *GraphicsPipelineCreateInfo {
	s.raw.PMultisampleState = (*native.PipelineMultisampleStateCreateInfo)(unsafe.Pointer(multisampleState))
	return s
}

func (s GraphicsPipelineCreateInfo) DepthStencilState() *PipelineDepthStencilStateCreateInfo {
	return (*PipelineDepthStencilStateCreateInfo)(unsafe.Pointer(s.raw.PDepthStencilState))
}

func (s *GraphicsPipelineCreateInfo) SetDepthStencilState(depthStencilState *PipelineDepthStencilStateCreateInfo) *GraphicsPipelineCreateInfo {
	s.raw.PDepthStencilState = (*native.PipelineDepthStencilStateCreateInfo)(unsafe.Pointer(depthStencilState))
	return s
}

func (s GraphicsPipelineCreateInfo) ColorBlendState() *PipelineColorBlendStateCreateInfo {
	return (*PipelineColorBlendStateCreateInfo)(unsafe.Pointer(s.raw.PColorBlendState))
}

func (s *GraphicsPipelineCreateInfo) SetColorBlendState(colorBlendState *PipelineColorBlendStateCreateInfo) *GraphicsPipelineCreateInfo {
	s.raw.PColorBlendState = (*native.PipelineColorBlendStateCreateInfo)(unsafe.Pointer(colorBlendState))
	return s
}

func (s GraphicsPipelineCreateInfo) DynamicState() *PipelineDynamicStateCreateInfo {
	return (*PipelineDynamicStateCreateInfo)(unsafe.Pointer(s.raw.PDynamicState))
}

func (s *GraphicsPipelineCreateInfo) SetDynamicState(dynamicState *PipelineDynamicStateCreateInfo) *GraphicsPipelineCreateInfo {
	s.raw.PDynamicState = (*native.PipelineDynamicStateCreateInfo)(unsafe.Pointer(dynamicState))
	return s
}

func (s GraphicsPipelineCreateInfo) Layout() PipelineLayout {
	return PipelineLayout(s.raw.Layout)
}

func (s *GraphicsPipelineCreateInfo) SetLayout(layout PipelineLayout) *GraphicsPipelineCreateInfo {
	s.raw.Layout = native.PipelineLayout(layout)
	return s
}

func (s GraphicsPipelineCreateInfo) RenderPass() RenderPass {
	return RenderPass(s.raw.RenderPass)
}

func (s *GraphicsPipelineCreateInfo) SetRenderPass(renderPass RenderPass) *GraphicsPipelineCreateInfo {
	s.raw.RenderPass = native.RenderPass(renderPass)
	return s
}

func (s GraphicsPipelineCreateInfo) Subpass() uint32 {
	return s.raw.Subpass
}

func (s *GraphicsPipelineCreateInfo) SetSubpass(subpass uint32) *GraphicsPipelineCreateInfo {
	s.raw.Subpass = subpass
	return s
}

func (s GraphicsPipelineCreateInfo) BasePipelineHandle() Pipeline {
	return Pipeline(s.raw.BasePipelineHandle)
}

func (s *GraphicsPipelineCreateInfo) SetBasePipelineHandle(basePipelineHandle Pipeline) *GraphicsPipelineCreateInfo {
	s.raw.BasePipelineHandle = native.Pipeline(basePipelineHandle)
	return s
}

func (s GraphicsPipelineCreateInfo) BasePipelineIndex() int32 {
	return s.raw.BasePipelineIndex
}

func (s *GraphicsPipelineCreateInfo) SetBasePipelineIndex(basePipelineIndex int32) *GraphicsPipelineCreateInfo {
	s.raw.BasePipelineIndex = basePipelineIndex
	return s
}

func (s GraphicsPipelineCreateInfo) Native() native.GraphicsPipelineCreateInfo {
	return s.raw
}

// PipelineRenderingCreateInfo wraps VkPipelineRenderingCreateInfo.
type PipelineRenderingCreateInfo struct {
	raw native.PipelineRenderingCreateInfo
}

func MakePipelineRenderingCreateInfo(
	viewMask uint32,
	colorAttachmentCount uint32,
	colorAttachmentFormats *Format,
	depthAttachmentFormat Format,
	stencilAttachmentFormat Format,
) PipelineRenderingCreateInfo {
	return PipelineRenderingCreateInfo{raw: native.PipelineRenderingCreateInfo{
		SType:                   native.StructureType(PIPELINE_RENDERING_CREATE_INFO),
		ViewMask:                viewMask,
		ColorAttachmentCount:    colorAttachmentCount,
		PColorAttachmentFormats: (*int32)(unsafe.Pointer(colorAttachmentFormats)),
		DepthAttachmentFormat:   int32(depthAttachmentFormat),
		StencilAttachmentFormat: int32(stencilAttachmentFormat),
	}}
}

func NewPipelineRenderingCreateInfo() *PipelineRenderingCreateInfo {
	return &PipelineRenderingCreateInfo{raw: native.PipelineRenderingCreateInfo{SType: native.StructureType(PIPELINE_RENDERING_CREATE_INFO)}}
}

func (s PipelineRenderingCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *PipelineRenderingCreateInfo) SetSType(sType StructureType) *PipelineRenderingCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s PipelineRenderingCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *PipelineRenderingCreateInfo) SetNext(next unsafe.Pointer) *PipelineRenderingCreateInfo {
	s.raw.PNext = next
	return s
}

func (s PipelineRenderingCreateInfo) ViewMask() uint32 {
	return s.raw.ViewMask
}

func (s *PipelineRenderingCreateInfo) SetViewMask(viewMask uint32) *PipelineRenderingCreateInfo {
	s.raw.ViewMask = viewMask
	return s
}

func (s PipelineRenderingCreateInfo) ColorAttachmentCount() uint32 {
	return s.raw.ColorAttachmentCount
}

func (s *PipelineRenderingCreateInfo) SetColorAttachmentCount(colorAttachmentCount uint32) *PipelineRenderingCreateInfo {
	s.raw.ColorAttachmentCount = colorAttachmentCount
	return s
}

func (s PipelineRenderingCreateInfo) ColorAttachmentFormats() *Format {
	return (*Format)(unsafe.Pointer(s.raw.PColorAttachmentFormats))
}

func (s *PipelineRenderingCreateInfo) SetColorAttachmentFormats(colorAttachmentFormats *Format) *PipelineRenderingCreateInfo {
	s.raw.PColorAttachmentFormats = (*int32)(unsafe.Pointer(colorAttachmentFormats))
	return s
}

func (s PipelineRenderingCreateInfo) DepthAttachmentFormat() Format {
	return Format(s.raw.DepthAttachmentFormat)
}

func (s *PipelineRenderingCreateInfo) SetDepthAttachmentFormat(depthAttachmentFormat Format) *PipelineRenderingCreateInfo {
	s.raw.DepthAttachmentFormat = int32(depthAttachmentFormat)
	return s
}

func (s PipelineRenderingCreateInfo) StencilAttachmentFormat() Format {
	return Format(s.raw.StencilAttachmentFormat)
}

func (s *PipelineRenderingCreateInfo) SetStencilAttachmentFormat(stencilAttachmentFormat Format) *PipelineRenderingCreateInfo {
	s.raw.StencilAttachmentFormat = int32(stencilAttachmentFormat)
	return s
}

func (s PipelineRenderingCreateInfo) Native() native.PipelineRenderingCreateInfo {
	return s.raw
}

func (d *Dispatch) CreatePipelineLayout(
	device Device,
	createInfo *PipelineLayoutCreateInfo,
	allocator *AllocationCallbacks,
	pipelineLayout *PipelineLayout,
) Result {
	return Result(d.cmds.CreatePipelineLayout(
		native.Device(device),
		(*native.PipelineLayoutCreateInfo)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.PipelineLayout)(unsafe.Pointer(pipelineLayout)),
	))
}

func (d *Dispatch) DestroyPipelineLayout(
	device Device,
	pipelineLayout PipelineLayout,
	allocator *AllocationCallbacks,
) {
	d.cmds.DestroyPipelineLayout(
		native.Device(device),
		native.PipelineLayout(pipelineLayout),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}

func (d *Dispatch) CreateComputePipelines(
	device Device,
	pipelineCache PipelineCache,
	createInfoCount uint32,
	createInfos *ComputePipelineCreateInfo,
	allocator *AllocationCallbacks,
	pipelines *Pipeline,
) Result {
	return Result(d.cmds.CreateComputePipelines(
		native.Device(device),
		native.PipelineCache(pipelineCache),
		createInfoCount,
		(*native.ComputePipelineCreateInfo)(unsafe.Pointer(createInfos)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.Pipeline)(unsafe.Pointer(pipelines)),
	))
}

func (d *Dispatch) CreateGraphicsPipelines(
	device Device,
	pipelineCache PipelineCache,
	createInfoCount uint32,
	createInfos *GraphicsPipelineCreateInfo,
	allocator *AllocationCallbacks,
	pipelines *Pipeline,
) Result {
	return Result(d.cmds.CreateGraphicsPipelines(
		native.Device(device),
		native.PipelineCache(pipelineCache),
		createInfoCount,
		(*native.GraphicsPipelineCreateInfo)(unsafe.Pointer(createInfos)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.Pipeline)(unsafe.Pointer(pipelines)),
	))
}

func (d *Dispatch) DestroyPipeline(device Device, pipeline Pipeline, allocator *AllocationCallbacks) {
	d.cmds.DestroyPipeline(
		native.Device(device),
		native.Pipeline(pipeline),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}
