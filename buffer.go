// buffer.go
package vk

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// MemoryAllocateInfo wraps VkMemoryAllocateInfo.
type MemoryAllocateInfo struct {
	raw native.MemoryAllocateInfo
}

func MakeMemoryAllocateInfo(allocationSize DeviceSize, memoryTypeIndex uint32) MemoryAllocateInfo {
	return MemoryAllocateInfo{raw: native.MemoryAllocateInfo{
		SType:           native.StructureType(MEMORY_ALLOCATE_INFO),
		AllocationSize:  allocationSize,
		MemoryTypeIndex: memoryTypeIndex,
	}}
}

func NewMemoryAllocateInfo() *MemoryAllocateInfo {
	return &MemoryAllocateInfo{raw: native.MemoryAllocateInfo{SType: native.StructureType(MEMORY_ALLOCATE_INFO)}}
}

func (s MemoryAllocateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *MemoryAllocateInfo) SetSType(sType StructureType) *MemoryAllocateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s MemoryAllocateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *MemoryAllocateInfo) SetNext(next unsafe.Pointer) *MemoryAllocateInfo {
	s.raw.PNext = next
	return s
}

func (s MemoryAllocateInfo) AllocationSize() DeviceSize {
	return s.raw.AllocationSize
}

func (s *MemoryAllocateInfo) SetAllocationSize(allocationSize DeviceSize) *MemoryAllocateInfo {
	s.raw.AllocationSize = allocationSize
	return s
}

func (s MemoryAllocateInfo) MemoryTypeIndex() uint32 {
	return s.raw.MemoryTypeIndex
}

func (s *MemoryAllocateInfo) SetMemoryTypeIndex(memoryTypeIndex uint32) *MemoryAllocateInfo {
	s.raw.MemoryTypeIndex = memoryTypeIndex
	return s
}

func (s MemoryAllocateInfo) Native() native.MemoryAllocateInfo {
	return s.raw
}

// MappedMemoryRange wraps VkMappedMemoryRange.
type MappedMemoryRange struct {
	raw native.MappedMemoryRange
}

func MakeMappedMemoryRange(memory DeviceMemory, offset DeviceSize, size DeviceSize) MappedMemoryRange {
	return MappedMemoryRange{raw: native.MappedMemoryRange{
		SType:  native.StructureType(MAPPED_MEMORY_RANGE),
		Memory: native.DeviceMemory(memory),
		Offset: offset,
		Size:   size,
	}}
}

func NewMappedMemoryRange() *MappedMemoryRange {
	return &MappedMemoryRange{raw: native.MappedMemoryRange{SType: native.StructureType(MAPPED_MEMORY_RANGE)}}
}

func (s MappedMemoryRange) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *MappedMemoryRange) SetSType(sType StructureType) *MappedMemoryRange {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s MappedMemoryRange) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *MappedMemoryRange) SetNext(next unsafe.Pointer) *MappedMemoryRange {
	s.raw.PNext = next
	return s
}

func (s MappedMemoryRange) Memory() DeviceMemory {
	return DeviceMemory(s.raw.Memory)
}

func (s *MappedMemoryRange) SetMemory(memory DeviceMemory) *MappedMemoryRange {
	s.raw.Memory = native.DeviceMemory(memory)
	return s
}

func (s MappedMemoryRange) Offset() DeviceSize {
	return s.raw.Offset
}

func (s *MappedMemoryRange) SetOffset(offset DeviceSize) *MappedMemoryRange {
	s.raw.Offset = offset
	return s
}

func (s MappedMemoryRange) Size() DeviceSize {
	return s.raw.Size
}

func (s *MappedMemoryRange) SetSize(size DeviceSize) *MappedMemoryRange {
	s.raw.Size = size
	return s
}

func (s MappedMemoryRange) Native() native.MappedMemoryRange {
	return s.raw
}

// MemoryRequirements wraps VkMemoryRequirements.
type MemoryRequirements struct {
	raw native.MemoryRequirements
}

func (s MemoryRequirements) Size() DeviceSize {
	return s.raw.Size
}

func (s MemoryRequirements) Alignment() DeviceSize {
	return s.raw.Alignment
}

func (s MemoryRequirements) MemoryTypeBits() uint32 {
	return s.raw.MemoryTypeBits
}

func (s MemoryRequirements) Native() native.MemoryRequirements {
	return s.raw
}

// BufferCreateInfo wraps VkBufferCreateInfo.
type BufferCreateInfo struct {
	raw native.BufferCreateInfo
}

func MakeBufferCreateInfo(
	flags BufferCreateFlags,
	size DeviceSize,
	usage BufferUsageFlags,
	sharingMode SharingMode,
	queueFamilyIndexCount uint32,
	queueFamilyIndices *uint32,
) BufferCreateInfo {
	return BufferCreateInfo{raw: native.BufferCreateInfo{
		SType:                 native.StructureType(BUFFER_CREATE_INFO),
		Flags:                 native.Flags(flags),
		Size:                  size,
		Usage:                 native.Flags(usage),
		SharingMode:           int32(sharingMode),
		QueueFamilyIndexCount: queueFamilyIndexCount,
		PQueueFamilyIndices:   queueFamilyIndices,
	}}
}

func NewBufferCreateInfo() *BufferCreateInfo {
	return &BufferCreateInfo{raw: native.BufferCreateInfo{SType: native.StructureType(BUFFER_CREATE_INFO)}}
}

func (s BufferCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *BufferCreateInfo) SetSType(sType StructureType) *BufferCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s BufferCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *BufferCreateInfo) SetNext(next unsafe.Pointer) *BufferCreateInfo {
	s.raw.PNext = next
	return s
}

func (s BufferCreateInfo) Flags() BufferCreateFlags {
	return BufferCreateFlags(s.raw.Flags)
}

func (s *BufferCreateInfo) SetFlags(flags BufferCreateFlags) *BufferCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s BufferCreateInfo) Size() DeviceSize {
	return s.raw.Size
}

func (s *BufferCreateInfo) SetSize(size DeviceSize) *BufferCreateInfo {
	s.raw.Size = size
	return s
}

func (s BufferCreateInfo) Usage() BufferUsageFlags {
	return BufferUsageFlags(s.raw.Usage)
}

func (s *BufferCreateInfo) SetUsage(usage BufferUsageFlags) *BufferCreateInfo {
	s.raw.Usage = native.Flags(usage)
	return s
}

func (s BufferCreateInfo) SharingMode() SharingMode {
	return SharingMode(s.raw.SharingMode)
}

func (s *BufferCreateInfo) SetSharingMode(sharingMode SharingMode) *BufferCreateInfo {
	s.raw.SharingMode = int32(sharingMode)
	return s
}

func (s BufferCreateInfo) QueueFamilyIndexCount() uint32 {
	return s.raw.QueueFamilyIndexCount
}

func (s *BufferCreateInfo) SetQueueFamilyIndexCount(queueFamilyIndexCount uint32) *BufferCreateInfo {
	s.raw.QueueFamilyIndexCount = queueFamilyIndexCount
	return s
}

func (s BufferCreateInfo) QueueFamilyIndices() *uint32 {
	return s.raw.PQueueFamilyIndices
}

func (s *BufferCreateInfo) SetQueueFamilyIndices(queueFamilyIndices *uint32) *BufferCreateInfo {
	s.raw.PQueueFamilyIndices = queueFamilyIndices
	return s
}

func (s BufferCreateInfo) Native() native.BufferCreateInfo {
	return s.raw
}

func (d *Dispatch) AllocateMemory(
	device Device,
	allocateInfo *MemoryAllocateInfo,
	allocator *AllocationCallbacks,
	memory *DeviceMemory,
) Result {
	return Result(d.cmds.AllocateMemory(
		native.Device(device),
		(*native.MemoryAllocateInfo)(unsafe.Pointer(allocateInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.DeviceMemory)(unsafe.Pointer(memory)),
	))
}

func (d *Dispatch) FreeMemory(device Device, memory DeviceMemory, allocator *AllocationCallbacks) {
	d.cmds.FreeMemory(
		native.Device(device),
		native.DeviceMemory(memory),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}

func (d *Dispatch) MapMemory(
	device Device,
	memory DeviceMemory,
	offset DeviceSize,
	size DeviceSize,
	flags MemoryMapFlags,
	data *unsafe.Pointer,
) Result {
	return Result(d.cmds.MapMemory(
		native.Device(device),
		native.DeviceMemory(memory),
		offset,
		size,
		native.Flags(flags),
		data,
	))
}

func (d *Dispatch) UnmapMemory(device Device, memory DeviceMemory) {
	d.cmds.UnmapMemory(native.Device(device), native.DeviceMemory(memory))
}

func (d *Dispatch) FlushMappedMemoryRanges(
	device Device,
	memoryRangeCount uint32,
	memoryRanges *MappedMemoryRange,
) Result {
	return Result(d.cmds.FlushMappedMemoryRanges(
		native.Device(device),
		memoryRangeCount,
		(*native.MappedMemoryRange)(unsafe.Pointer(memoryRanges)),
	))
}

func (d *Dispatch) InvalidateMappedMemoryRanges(
	device Device,
	memoryRangeCount uint32,
	memoryRanges *MappedMemoryRange,
) Result {
	return Result(d.cmds.InvalidateMappedMemoryRanges(
		native.Device(device),
		memoryRangeCount,
		(*native.MappedMemoryRange)(unsafe.Pointer(memoryRanges)),
	))
}

func (d *Dispatch) BindBufferMemory(
	device Device,
	buffer Buffer,
	memory DeviceMemory,
	memoryOffset DeviceSize,
) Result {
	return Result(d.cmds.BindBufferMemory(
		native.Device(device),
		native.Buffer(buffer),
		native.DeviceMemory(memory),
		memoryOffset,
	))
}

func (d *Dispatch) GetBufferMemoryRequirements(
	device Device,
	buffer Buffer,
	memoryRequirements *MemoryRequirements,
) {
	d.cmds.GetBufferMemoryRequirements(
		native.Device(device),
		native.Buffer(buffer),
		(*native.MemoryRequirements)(unsafe.Pointer(memoryRequirements)),
	)
}

func (d *Dispatch) CreateBuffer(
	device Device,
	createInfo *BufferCreateInfo,
	allocator *AllocationCallbacks,
	buffer *Buffer,
) Result {
	return Result(d.cmds.CreateBuffer(
		native.Device(device),
		(*native.BufferCreateInfo)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.Buffer)(unsafe.Pointer(buffer)),
	))
}

func (d *Dispatch) DestroyBuffer(device Device, buffer Buffer, allocator *AllocationCallbacks) {
	d.cmds.DestroyBuffer(
		native.Device(device),
		native.Buffer(buffer),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}
