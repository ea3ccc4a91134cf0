// descriptor.go
package vk

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// DescriptorSetLayoutBinding wraps VkDescriptorSetLayoutBinding.
type DescriptorSetLayoutBinding struct {
	raw native.DescriptorSetLayoutBinding
}

func MakeDescriptorSetLayoutBinding(
	binding uint32,
	descriptorType DescriptorType,
	descriptorCount uint32,
	stageFlags ShaderStageFlags,
	immutableSamplers *Sampler,
) DescriptorSetLayoutBinding {
	return DescriptorSetLayoutBinding{raw: native.DescriptorSetLayoutBinding{
		Binding:            binding,
		DescriptorType:     int32(descriptorType),
		DescriptorCount:    descriptorCount,
		StageFlags:         native.Flags(stageFlags),
		PImmutableSamplers: (*native.Sampler)(unsafe.Pointer(immutableSamplers)),
	}}
}

func NewDescriptorSetLayoutBinding() *DescriptorSetLayoutBinding {
	return &DescriptorSetLayoutBinding{}
}

func (s DescriptorSetLayoutBinding) Binding() uint32 {
	return s.raw.Binding
}

func (s *DescriptorSetLayoutBinding) SetBinding(binding uint32) *DescriptorSetLayoutBinding {
	s.raw.Binding = binding
	return s
}

func (s DescriptorSetLayoutBinding) DescriptorType() DescriptorType {
	return DescriptorType(s.raw.DescriptorType)
}

func (s *DescriptorSetLayoutBinding) SetDescriptorType(descriptorType DescriptorType) *DescriptorSetLayoutBinding {
	s.raw.DescriptorType = int32(descriptorType)
	return s
}

func (s DescriptorSetLayoutBinding) DescriptorCount() uint32 {
	return s.raw.DescriptorCount
}

func (s *DescriptorSetLayoutBinding) SetDescriptorCount(descriptorCount uint32) *DescriptorSetLayoutBinding {
	s.raw.DescriptorCount = descriptorCount
	return s
}

func (s DescriptorSetLayoutBinding) StageFlags() ShaderStageFlags {
	return ShaderStageFlags(s.raw.StageFlags)
}

func (s *DescriptorSetLayoutBinding) SetStageFlags(stageFlags ShaderStageFlags) *DescriptorSetLayoutBinding {
	s.raw.StageFlags = native.Flags(stageFlags)
	return s
}

func (s DescriptorSetLayoutBinding) ImmutableSamplers() *Sampler {
	return (*Sampler)(unsafe.Pointer(s.raw.PImmutableSamplers))
}

func (s *DescriptorSetLayoutBinding) SetImmutableSamplers(immutableSamplers *Sampler) *DescriptorSetLayoutBinding {
	s.raw.PImmutableSamplers = (*native.Sampler)(unsafe.Pointer(immutableSamplers))
	return s
}

func (s DescriptorSetLayoutBinding) Native() native.DescriptorSetLayoutBinding {
	return s.raw
}

// DescriptorSetLayoutCreateInfo wraps VkDescriptorSetLayoutCreateInfo.
type DescriptorSetLayoutCreateInfo struct {
	raw native.DescriptorSetLayoutCreateInfo
}

func MakeDescriptorSetLayoutCreateInfo(
	flags DescriptorSetLayoutCreateFlags,
	bindingCount uint32,
	bindings *DescriptorSetLayoutBinding,
) DescriptorSetLayoutCreateInfo {
	return DescriptorSetLayoutCreateInfo{raw: native.DescriptorSetLayoutCreateInfo{
		SType:        native.StructureType(DESCRIPTOR_SET_LAYOUT_CREATE_INFO),
		Flags:        native.Flags(flags),
		BindingCount: bindingCount,
		PBindings:    (*native.DescriptorSetLayoutBinding)(unsafe.Pointer(bindings)),
	}}
}

func NewDescriptorSetLayoutCreateInfo() *DescriptorSetLayoutCreateInfo {
	return &DescriptorSetLayoutCreateInfo{raw: native.DescriptorSetLayoutCreateInfo{SType: native.StructureType(DESCRIPTOR_SET_LAYOUT_CREATE_INFO)}}
}

func (s DescriptorSetLayoutCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *DescriptorSetLayoutCreateInfo) SetSType(sType StructureType) *DescriptorSetLayoutCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s DescriptorSetLayoutCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *DescriptorSetLayoutCreateInfo) SetNext(next unsafe.Pointer) *DescriptorSetLayoutCreateInfo {
	s.raw.PNext = next
	return s
}

func (s DescriptorSetLayoutCreateInfo) Flags() DescriptorSetLayoutCreateFlags {
	return DescriptorSetLayoutCreateFlags(s.raw.Flags)
}

func (s *DescriptorSetLayoutCreateInfo) SetFlags(flags DescriptorSetLayoutCreateFlags) *DescriptorSetLayoutCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s DescriptorSetLayoutCreateInfo) BindingCount() uint32 {
	return s.raw.BindingCount
}

func (s *DescriptorSetLayoutCreateInfo) SetBindingCount(bindingCount uint32) *DescriptorSetLayoutCreateInfo {
	s.raw.BindingCount = bindingCount
	return s
}

func (s DescriptorSetLayoutCreateInfo) Bindings() *DescriptorSetLayoutBinding {
	return (*DescriptorSetLayoutBinding)(unsafe.Pointer(s.raw.PBindings))
}

func (s *DescriptorSetLayoutCreateInfo) SetBindings(bindings *DescriptorSetLayoutBinding) *DescriptorSetLayoutCreateInfo {
	s.raw.PBindings = (*native.DescriptorSetLayoutBinding)(unsafe.Pointer(bindings))
	return s
}

func (s DescriptorSetLayoutCreateInfo) Native() native.DescriptorSetLayoutCreateInfo {
	return s.raw
}

// DescriptorPoolSize wraps VkDescriptorPoolSize.
type DescriptorPoolSize struct {
	raw native.DescriptorPoolSize
}

func MakeDescriptorPoolSize(typ DescriptorType, descriptorCount uint32) DescriptorPoolSize {
	return DescriptorPoolSize{raw: native.DescriptorPoolSize{
		Type:            int32(typ),
		DescriptorCount: descriptorCount,
	}}
}

func NewDescriptorPoolSize() *DescriptorPoolSize {
	return &DescriptorPoolSize{}
}

func (s DescriptorPoolSize) Type() DescriptorType {
	return DescriptorType(s.raw.Type)
}

func (s *DescriptorPoolSize) SetType(typ DescriptorType) *DescriptorPoolSize {
	s.raw.Type = int32(typ)
	return s
}

func (s DescriptorPoolSize) DescriptorCount() uint32 {
	return s.raw.DescriptorCount
}

func (s *DescriptorPoolSize) SetDescriptorCount(descriptorCount uint32) *DescriptorPoolSize {
	s.raw.DescriptorCount = descriptorCount
	return s
}

func (s DescriptorPoolSize) Native() native.DescriptorPoolSize {
	return s.raw
}

// DescriptorPoolCreateInfo wraps VkDescriptorPoolCreateInfo.
type DescriptorPoolCreateInfo struct {
	raw native.DescriptorPoolCreateInfo
}

func MakeDescriptorPoolCreateInfo(
	flags DescriptorPoolCreateFlags,
	maxSets uint32,
	poolSizeCount uint32,
	poolSizes *DescriptorPoolSize,
) DescriptorPoolCreateInfo {
	return DescriptorPoolCreateInfo{raw: native.DescriptorPoolCreateInfo{
		SType:         native.StructureType(DESCRIPTOR_POOL_CREATE_INFO),
		Flags:         native.Flags(flags),
		MaxSets:       maxSets,
		PoolSizeCount: poolSizeCount,
		PPoolSizes:    (*native.DescriptorPoolSize)(unsafe.Pointer(poolSizes)),
	}}
}

func NewDescriptorPoolCreateInfo() *DescriptorPoolCreateInfo {
	return &DescriptorPoolCreateInfo{raw: native.DescriptorPoolCreateInfo{SType: native.StructureType(DESCRIPTOR_POOL_CREATE_INFO)}}
}

func (s DescriptorPoolCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *DescriptorPoolCreateInfo) SetSType(sType StructureType) *DescriptorPoolCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s DescriptorPoolCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *DescriptorPoolCreateInfo) SetNext(next unsafe.Pointer) *DescriptorPoolCreateInfo {
	s.raw.PNext = next
	return s
}

func (s DescriptorPoolCreateInfo) Flags() DescriptorPoolCreateFlags {
	return DescriptorPoolCreateFlags(s.raw.Flags)
}

func (s *DescriptorPoolCreateInfo) SetFlags(flags DescriptorPoolCreateFlags) *DescriptorPoolCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s DescriptorPoolCreateInfo) MaxSets() uint32 {
	return s.raw.MaxSets
}

func (s *DescriptorPoolCreateInfo) SetMaxSets(maxSets uint32) *DescriptorPoolCreateInfo {
	s.raw.MaxSets = maxSets
	return s
}

func (s DescriptorPoolCreateInfo) PoolSizeCount() uint32 {
	return s.raw.PoolSizeCount
}

func (s *DescriptorPoolCreateInfo) SetPoolSizeCount(poolSizeCount uint32) *DescriptorPoolCreateInfo {
	s.raw.PoolSizeCount = poolSizeCount
	return s
}

func (s DescriptorPoolCreateInfo) PoolSizes() *DescriptorPoolSize {
	return (*DescriptorPoolSize)(unsafe.Pointer(s.raw.PPoolSizes))
}

func (s *DescriptorPoolCreateInfo) SetPoolSizes(poolSizes *DescriptorPoolSize) *DescriptorPoolCreateInfo {
	s.raw.PPoolSizes = (*native.DescriptorPoolSize)(unsafe.Pointer(poolSizes))
	return s
}

func (s DescriptorPoolCreateInfo) Native() native.DescriptorPoolCreateInfo {
	return s.raw
}

// DescriptorSetAllocateInfo wraps VkDescriptorSetAllocateInfo.
type DescriptorSetAllocateInfo struct {
	raw native.DescriptorSetAllocateInfo
}

func MakeDescriptorSetAllocateInfo(descriptorPool DescriptorPool, descriptorSetCount uint32, setLayouts *DescriptorSetLayout) DescriptorSetAllocateInfo {
	return DescriptorSetAllocateInfo{raw: native.DescriptorSetAllocateInfo{
		SType:              native.StructureType(DESCRIPTOR_SET_ALLOCATE_INFO),
		DescriptorPool:     native.DescriptorPool(descriptorPool),
		DescriptorSetCount: descriptorSetCount,
		PSetLayouts:        (*native.DescriptorSetLayout)(unsafe.Pointer(setLayouts)),
	}}
}

func NewDescriptorSetAllocateInfo() *DescriptorSetAllocateInfo {
	return &DescriptorSetAllocateInfo{raw: native.DescriptorSetAllocateInfo{SType: native.StructureType(DESCRIPTOR_SET_ALLOCATE_INFO)}}
}

func (s DescriptorSetAllocateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *DescriptorSetAllocateInfo) SetSType(sType StructureType) *DescriptorSetAllocateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s DescriptorSetAllocateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *DescriptorSetAllocateInfo) SetNext(next unsafe.Pointer) *DescriptorSetAllocateInfo {
	s.raw.PNext = next
	return s
}

func (s DescriptorSetAllocateInfo) DescriptorPool() DescriptorPool {
	return DescriptorPool(s.raw.DescriptorPool)
}

func (s *DescriptorSetAllocateInfo) SetDescriptorPool(descriptorPool DescriptorPool) *DescriptorSetAllocateInfo {
	s.raw.DescriptorPool = native.DescriptorPool(descriptorPool)
	return s
}

func (s DescriptorSetAllocateInfo) DescriptorSetCount() uint32 {
	return s.raw.DescriptorSetCount
}

func (s *DescriptorSetAllocateInfo) SetDescriptorSetCount(descriptorSetCount uint32) *DescriptorSetAllocateInfo {
	s.raw.DescriptorSetCount = descriptorSetCount
	return s
}

func (s DescriptorSetAllocateInfo) SetLayouts() *DescriptorSetLayout {
	return (*DescriptorSetLayout)(unsafe.Pointer(s.raw.PSetLayouts))
}

func (s *DescriptorSetAllocateInfo) SetSetLayouts(setLayouts *DescriptorSetLayout) *DescriptorSetAllocateInfo {
	s.raw.PSetLayouts = (*native.DescriptorSetLayout)(unsafe.Pointer(setLayouts))
	return s
}

func (s DescriptorSetAllocateInfo) Native() native.DescriptorSetAllocateInfo {
	return s.raw
}

// DescriptorBufferInfo wraps VkDescriptorBufferInfo.
type DescriptorBufferInfo struct {
	raw native.DescriptorBufferInfo
}

func MakeDescriptorBufferInfo(buffer Buffer, offset DeviceSize, rng DeviceSize) DescriptorBufferInfo {
	return DescriptorBufferInfo{raw: native.DescriptorBufferInfo{
		Buffer: native.Buffer(buffer),
		Offset: offset,
		Range:  rng,
	}}
}

func NewDescriptorBufferInfo() *DescriptorBufferInfo {
	return &DescriptorBufferInfo{}
}

func (s DescriptorBufferInfo) Buffer() Buffer {
	return Buffer(s.raw.Buffer)
}

func (s *DescriptorBufferInfo) SetBuffer(buffer Buffer) *DescriptorBufferInfo {
	s.raw.Buffer = native.Buffer(buffer)
	return s
}

func (s DescriptorBufferInfo) Offset() DeviceSize {
	return s.raw.Offset
}

func (s *DescriptorBufferInfo) SetOffset(offset DeviceSize) *DescriptorBufferInfo {
	s.raw.Offset = offset
	return s
}

func (s DescriptorBufferInfo) Range() DeviceSize {
	return s.raw.Range
}

func (s *DescriptorBufferInfo) SetRange(rng DeviceSize) *DescriptorBufferInfo {
	s.raw.Range = rng
	return s
}

func (s DescriptorBufferInfo) Native() native.DescriptorBufferInfo {
	return s.raw
}

// DescriptorImageInfo wraps VkDescriptorImageInfo.
type DescriptorImageInfo struct {
	raw native.DescriptorImageInfo
}

func MakeDescriptorImageInfo(sampler Sampler, imageView ImageView, imageLayout ImageLayout) DescriptorImageInfo {
	return DescriptorImageInfo{raw: native.DescriptorImageInfo{
		Sampler:     native.Sampler(sampler),
		ImageView:   native.ImageView(imageView),
		ImageLayout: int32(imageLayout),
	}}
}

func NewDescriptorImageInfo() *DescriptorImageInfo {
	return &DescriptorImageInfo{}
}

func (s DescriptorImageInfo) Sampler() Sampler {
	return Sampler(s.raw.Sampler)
}

func (s *DescriptorImageInfo) SetSampler(sampler Sampler) *DescriptorImageInfo {
	s.raw.Sampler = native.Sampler(sampler)
	return s
}

func (s DescriptorImageInfo) ImageView() ImageView {
	return ImageView(s.raw.ImageView)
}

func (s *DescriptorImageInfo) SetImageView(imageView ImageView) *DescriptorImageInfo {
	s.raw.ImageView = native.ImageView(imageView)
	return s
}

func (s DescriptorImageInfo) ImageLayout() ImageLayout {
	return ImageLayout(s.raw.ImageLayout)
}

func (s *DescriptorImageInfo) SetImageLayout(imageLayout ImageLayout) *DescriptorImageInfo {
	s.raw.ImageLayout = int32(imageLayout)
	return s
}

func (s DescriptorImageInfo) Native() native.DescriptorImageInfo {
	return s.raw
}

// WriteDescriptorSet wraps VkWriteDescriptorSet.
type WriteDescriptorSet struct {
	raw native.WriteDescriptorSet
}

func MakeWriteDescriptorSet(
	dstSet DescriptorSet,
	dstBinding uint32,
	dstArrayElement uint32,
	descriptorCount uint32,
	descriptorType DescriptorType,
	imageInfo *DescriptorImageInfo,
	bufferInfo *DescriptorBufferInfo,
	texelBufferView *BufferView,
) WriteDescriptorSet {
	return WriteDescriptorSet{raw: native.WriteDescriptorSet{
		SType:            native.StructureType(WRITE_DESCRIPTOR_SET),
		DstSet:           native.DescriptorSet(dstSet),
		DstBinding:       dstBinding,
		DstArrayElement:  dstArrayElement,
		DescriptorCount:  descriptorCount,
		DescriptorType:   int32(descriptorType),
		PImageInfo:       (*native.DescriptorImageInfo)(unsafe.Pointer(imageInfo)),
		PBufferInfo:      (*native.DescriptorBufferInfo)(unsafe.Pointer(bufferInfo)),
		PTexelBufferView: (*native.BufferView)(unsafe.Pointer(texelBufferView)),
	}}
}

func NewWriteDescriptorSet() *WriteDescriptorSet {
	return &WriteDescriptorSet{raw: native.WriteDescriptorSet{SType: native.StructureType(WRITE_DESCRIPTOR_SET)}}
}

func (s WriteDescriptorSet) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *WriteDescriptorSet) SetSType(sType StructureType) *WriteDescriptorSet {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s WriteDescriptorSet) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *WriteDescriptorSet) SetNext(next unsafe.Pointer) *WriteDescriptorSet {
	s.raw.PNext = next
	return s
}

func (s WriteDescriptorSet) DstSet() DescriptorSet {
	return DescriptorSet(s.raw.DstSet)
}

func (s *WriteDescriptorSet) SetDstSet(dstSet DescriptorSet) *WriteDescriptorSet {
	s.raw.DstSet = native.DescriptorSet(dstSet)
	return s
}

func (s WriteDescriptorSet) DstBinding() uint32 {
	return s.raw.DstBinding
}

func (s *WriteDescriptorSet) SetDstBinding(dstBinding uint32) *WriteDescriptorSet {
	s.raw.DstBinding = dstBinding
	return s
}

func (s WriteDescriptorSet) DstArrayElement() uint32 {
	return s.raw.DstArrayElement
}

func (s *WriteDescriptorSet) SetDstArrayElement(dstArrayElement uint32) *WriteDescriptorSet {
	s.raw.DstArrayElement = dstArrayElement
	return s
}

func (s WriteDescriptorSet) DescriptorCount() uint32 {
	return s.raw.DescriptorCount
}

func (s *WriteDescriptorSet) SetDescriptorCount(descriptorCount uint32) *WriteDescriptorSet {
	s.raw.DescriptorCount = descriptorCount
	return s
}

func (s WriteDescriptorSet) DescriptorType() DescriptorType {
	return DescriptorType(s.raw.DescriptorType)
}

func (s *WriteDescriptorSet) SetDescriptorType(descriptorType DescriptorType) *WriteDescriptorSet {
	s.raw.DescriptorType = int32(descriptorType)
	return s
}

func (s WriteDescriptorSet) ImageInfo() *DescriptorImageInfo {
	return (*DescriptorImageInfo)(unsafe.Pointer(s.raw.PImageInfo))
}

func (s *WriteDescriptorSet) SetImageInfo(imageInfo *DescriptorImageInfo) *WriteDescriptorSet {
	s.raw.PImageInfo = (*native.DescriptorImageInfo)(unsafe.Pointer(imageInfo))
	return s
}

func (s WriteDescriptorSet) BufferInfo() *DescriptorBufferInfo {
	return (*DescriptorBufferInfo)(unsafe.Pointer(s.raw.PBufferInfo))
}

func (s *WriteDescriptorSet) SetBufferInfo(bufferInfo *DescriptorBufferInfo) *WriteDescriptorSet {
	s.raw.PBufferInfo = (*native.DescriptorBufferInfo)(unsafe.Pointer(bufferInfo))
	return s
}

func (s WriteDescriptorSet) TexelBufferView() *BufferView {
	return (*BufferView)(unsafe.Pointer(s.raw.PTexelBufferView))
}

func (s *WriteDescriptorSet) SetTexelBufferView(texelBufferView *BufferView) *WriteDescriptorSet {
	s.raw.PTexelBufferView = (*native.BufferView)(unsafe.Pointer(texelBufferView))
	return s
}

func (s WriteDescriptorSet) Native() native.WriteDescriptorSet {
	return s.raw
}

func (d *Dispatch) CreateDescriptorSetLayout(
	device Device,
	createInfo *DescriptorSetLayoutCreateInfo,
	allocator *AllocationCallbacks,
	setLayout *DescriptorSetLayout,
) Result {
	return Result(d.cmds.CreateDescriptorSetLayout(
		native.Device(device),
		(*native.DescriptorSetLayoutCreateInfo)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.DescriptorSetLayout)(unsafe.Pointer(setLayout)),
	))
}

func (d *Dispatch) DestroyDescriptorSetLayout(
	device Device,
	descriptorSetLayout DescriptorSetLayout,
	allocator *AllocationCallbacks,
) {
	d.cmds.DestroyDescriptorSetLayout(
		native.Device(device),
		native.DescriptorSetLayout(descriptorSetLayout),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}

func (d *Dispatch) CreateDescriptorPool(
	device Device,
	createInfo *DescriptorPoolCreateInfo,
	allocator *AllocationCallbacks,
	descriptorPool *DescriptorPool,
) Result {
	return Result(d.cmds.CreateDescriptorPool(
		native.Device(device),
		(*native.DescriptorPoolCreateInfo)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.DescriptorPool)(unsafe.Pointer(descriptorPool)),
	))
}

func (d *Dispatch) DestroyDescriptorPool(
	device Device,
	descriptorPool DescriptorPool,
	allocator *AllocationCallbacks,
) {
	d.cmds.DestroyDescriptorPool(
		native.Device(device),
		native.DescriptorPool(descriptorPool),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}

func (d *Dispatch) ResetDescriptorPool(
	device Device,
	descriptorPool DescriptorPool,
	flags DescriptorPoolResetFlags,
) Result {
	return Result(d.cmds.ResetDescriptorPool(
		native.Device(device),
		native.DescriptorPool(descriptorPool),
		native.Flags(flags),
	))
}

func (d *Dispatch) AllocateDescriptorSets(
	device Device,
	allocateInfo *DescriptorSetAllocateInfo,
	descriptorSets *DescriptorSet,
) Result {
	return Result(d.cmds.AllocateDescriptorSets(
		native.Device(device),
		(*native.DescriptorSetAllocateInfo)(unsafe.Pointer(allocateInfo)),
		(*native.DescriptorSet)(unsafe.Pointer(descriptorSets)),
	))
}

func (d *Dispatch) FreeDescriptorSets(
	device Device,
	descriptorPool DescriptorPool,
	descriptorSetCount uint32,
	descriptorSets *DescriptorSet,
) Result {
	return Result(d.cmds.FreeDescriptorSets(
		native.Device(device),
		native.DescriptorPool(descriptorPool),
		descriptorSetCount,
		(*native.DescriptorSet)(unsafe.Pointer(descriptorSets)),
	))
}

func (d *Dispatch) UpdateDescriptorSets(
	device Device,
	descriptorWriteCount uint32,
	descriptorWrites *WriteDescriptorSet,
	descriptorCopyCount uint32,
	descriptorCopies unsafe.Pointer,
) {
	d.cmds.UpdateDescriptorSets(
		native.Device(device),
		descriptorWriteCount,
		(*native.WriteDescriptorSet)(unsafe.Pointer(descriptorWrites)),
		descriptorCopyCount,
		descriptorCopies,
	)
}
