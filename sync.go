// sync.go
package vk

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// SubmitInfo wraps VkSubmitInfo.
type SubmitInfo struct {
	raw native.SubmitInfo
}

func MakeSubmitInfo(
	waitSemaphoreCount uint32,
	waitSemaphores *Semaphore,
	waitDstStageMask *PipelineStageFlags,
	commandBufferCount uint32,
	commandBuffers *CommandBuffer,
	signalSemaphoreCount uint32,
	signalSemaphores *Semaphore,
) SubmitInfo {
	return SubmitInfo{raw: native.SubmitInfo{
		SType:                native.StructureType(SUBMIT_INFO),
		WaitSemaphoreCount:   waitSemaphoreCount,
		PWaitSemaphores:      (*native.Semaphore)(unsafe.Pointer(waitSemaphores)),
		PWaitDstStageMask:    (*native.Flags)(unsafe.Pointer(waitDstStageMask)),
		CommandBufferCount:   commandBufferCount,
		PCommandBuffers:      (*native.CommandBuffer)(unsafe.Pointer(commandBuffers)),
		SignalSemaphoreCount: signalSemaphoreCount,
		PSignalSemaphores:    (*native.Semaphore)(unsafe.Pointer(signalSemaphores)),
	}}
}

func NewSubmitInfo() *SubmitInfo {
	return &SubmitInfo{raw: native.SubmitInfo{SType: native.StructureType(SUBMIT_INFO)}}
}

func (s SubmitInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *SubmitInfo) SetSType(sType StructureType) *SubmitInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s SubmitInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *SubmitInfo) SetNext(next unsafe.Pointer) *SubmitInfo {
	s.raw.PNext = next
	return s
}

func (s SubmitInfo) WaitSemaphoreCount() uint32 {
	return s.raw.WaitSemaphoreCount
}

func (s *SubmitInfo) SetWaitSemaphoreCount(waitSemaphoreCount uint32) *SubmitInfo {
	s.raw.WaitSemaphoreCount = waitSemaphoreCount
	return s
}

func (s SubmitInfo) WaitSemaphores() *Semaphore {
	return (*Semaphore)(unsafe.Pointer(s.raw.PWaitSemaphores))
}

func (s *SubmitInfo) SetWaitSemaphores(waitSemaphores *Semaphore) *SubmitInfo {
	s.raw.PWaitSemaphores = (*native.Semaphore)(unsafe.Pointer(waitSemaphores))
	return s
}

func (s SubmitInfo) WaitDstStageMask() *PipelineStageFlags {
	return (*PipelineStageFlags)(unsafe.Pointer(s.raw.PWaitDstStageMask))
}

func (s *SubmitInfo) SetWaitDstStageMask(waitDstStageMask *PipelineStageFlags) *SubmitInfo {
	s.raw.PWaitDstStageMask = (*native.Flags)(unsafe.Pointer(waitDstStageMask))
	return s
}

func (s SubmitInfo) CommandBufferCount() uint32 {
	return s.raw.CommandBufferCount
}

func (s *SubmitInfo) SetCommandBufferCount(commandBufferCount uint32) *SubmitInfo {
	s.raw.CommandBufferCount = commandBufferCount
	return s
}

func (s SubmitInfo) CommandBuffers() *CommandBuffer {
	return (*CommandBuffer)(unsafe.Pointer(s.raw.PCommandBuffers))
}

func (s *SubmitInfo) SetCommandBuffers(commandBuffers *CommandBuffer) *SubmitInfo {
	s.raw.PCommandBuffers = (*native.CommandBuffer)(unsafe.Pointer(commandBuffers))
	return s
}

func (s SubmitInfo) SignalSemaphoreCount() uint32 {
	return s.raw.SignalSemaphoreCount
}

func (s *SubmitInfo) SetSignalSemaphoreCount(signalSemaphoreCount uint32) *SubmitInfo {
	s.raw.SignalSemaphoreCount = signalSemaphoreCount
	return s
}

func (s SubmitInfo) SignalSemaphores() *Semaphore {
	return (*Semaphore)(unsafe.Pointer(s.raw.PSignalSemaphores))
}

func (s *SubmitInfo) SetSignalSemaphores(signalSemaphores *Semaphore) *SubmitInfo {
	s.raw.PSignalSemaphores = (*native.Semaphore)(unsafe.Pointer(signalSemaphores))
	return s
}

func (s SubmitInfo) Native() native.SubmitInfo {
	return s.raw
}

// FenceCreateInfo wraps VkFenceCreateInfo.
type FenceCreateInfo struct {
	raw native.FenceCreateInfo
}

func MakeFenceCreateInfo(flags FenceCreateFlags) FenceCreateInfo {
	return FenceCreateInfo{raw: native.FenceCreateInfo{
		SType: native.StructureType(FENCE_CREATE_INFO),
		Flags: native.Flags(flags),
	}}
}

func NewFenceCreateInfo() *FenceCreateInfo {
	return &FenceCreateInfo{raw: native.FenceCreateInfo{SType: native.StructureType(FENCE_CREATE_INFO)}}
}

func (s FenceCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *FenceCreateInfo) SetSType(sType StructureType) *FenceCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s FenceCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *FenceCreateInfo) SetNext(next unsafe.Pointer) *FenceCreateInfo {
	s.raw.PNext = next
	return s
}

func (s FenceCreateInfo) Flags() FenceCreateFlags {
	return FenceCreateFlags(s.raw.Flags)
}

func (s *FenceCreateInfo) SetFlags(flags FenceCreateFlags) *FenceCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s FenceCreateInfo) Native() native.FenceCreateInfo {
	return s.raw
}

// SemaphoreCreateInfo wraps VkSemaphoreCreateInfo.
type SemaphoreCreateInfo struct {
	raw native.SemaphoreCreateInfo
}

func MakeSemaphoreCreateInfo(flags SemaphoreCreateFlags) SemaphoreCreateInfo {
	return SemaphoreCreateInfo{raw: native.SemaphoreCreateInfo{
		SType: native.StructureType(SEMAPHORE_CREATE_INFO),
		Flags: native.Flags(flags),
	}}
}

func NewSemaphoreCreateInfo() *SemaphoreCreateInfo {
	return &SemaphoreCreateInfo{raw: native.SemaphoreCreateInfo{SType: native.StructureType(SEMAPHORE_CREATE_INFO)}}
}

func (s SemaphoreCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *SemaphoreCreateInfo) SetSType(sType StructureType) *SemaphoreCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s SemaphoreCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *SemaphoreCreateInfo) SetNext(next unsafe.Pointer) *SemaphoreCreateInfo {
	s.raw.PNext = next
	return s
}

func (s SemaphoreCreateInfo) Flags() SemaphoreCreateFlags {
	return SemaphoreCreateFlags(s.raw.Flags)
}

func (s *SemaphoreCreateInfo) SetFlags(flags SemaphoreCreateFlags) *SemaphoreCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s SemaphoreCreateInfo) Native() native.SemaphoreCreateInfo {
	return s.raw
}

// EventCreateInfo wraps VkEventCreateInfo.
type EventCreateInfo struct {
	raw native.EventCreateInfo
}

func MakeEventCreateInfo(flags EventCreateFlags) EventCreateInfo {
	return EventCreateInfo{raw: native.EventCreateInfo{
		SType: native.StructureType(EVENT_CREATE_INFO),
		Flags: native.Flags(flags),
	}}
}

func NewEventCreateInfo() *EventCreateInfo {
	return &EventCreateInfo{raw: native.EventCreateInfo{SType: native.StructureType(EVENT_CREATE_INFO)}}
}

func (s EventCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *EventCreateInfo) SetSType(sType StructureType) *EventCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s EventCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *EventCreateInfo) SetNext(next unsafe.Pointer) *EventCreateInfo {
	s.raw.PNext = next
	return s
}

func (s EventCreateInfo) Flags() EventCreateFlags {
	return EventCreateFlags(s.raw.Flags)
}

func (s *EventCreateInfo) SetFlags(flags EventCreateFlags) *EventCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s EventCreateInfo) Native() native.EventCreateInfo {
	return s.raw
}

func (d *Dispatch) QueueSubmit(queue Queue, submitCount uint32, submits *SubmitInfo, fence Fence) Result {
	return Result(d.cmds.QueueSubmit(
		native.Queue(queue),
		submitCount,
		(*native.SubmitInfo)(unsafe.Pointer(submits)),
		native.Fence(fence),
	))
}

func (d *Dispatch) QueueWaitIdle(queue Queue) Result {
	return Result(d.cmds.QueueWaitIdle(native.Queue(queue)))
}

func (d *Dispatch) CreateFence(
	device Device,
	createInfo *FenceCreateInfo,
	allocator *AllocationCallbacks,
	fence *Fence,
) Result {
	return Result(d.cmds.CreateFence(
		native.Device(device),
		(*native.FenceCreateInfo)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.Fence)(unsafe.Pointer(fence)),
	))
}

func (d *Dispatch) DestroyFence(device Device, fence Fence, allocator *AllocationCallbacks) {
	d.cmds.DestroyFence(
		native.Device(device),
		native.Fence(fence),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}

func (d *Dispatch) ResetFences(device Device, fenceCount uint32, fences *Fence) Result {
	return Result(d.cmds.ResetFences(native.Device(device), fenceCount, (*native.Fence)(unsafe.Pointer(fences))))
}

func (d *Dispatch) GetFenceStatus(device Device, fence Fence) Result {
	return Result(d.cmds.GetFenceStatus(native.Device(device), native.Fence(fence)))
}

func (d *Dispatch) WaitForFences(
	device Device,
	fenceCount uint32,
	fences *Fence,
	waitAll bool,
	timeout uint64,
) Result {
	return Result(d.cmds.WaitForFences(
		native.Device(device),
		fenceCount,
		(*native.Fence)(unsafe.Pointer(fences)),
		bool32(waitAll),
		timeout,
	))
}

func (d *Dispatch) CreateSemaphore(
	device Device,
	createInfo *SemaphoreCreateInfo,
	allocator *AllocationCallbacks,
	semaphore *Semaphore,
) Result {
	return Result(d.cmds.CreateSemaphore(
		native.Device(device),
		(*native.SemaphoreCreateInfo)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.Semaphore)(unsafe.Pointer(semaphore)),
	))
}

func (d *Dispatch) DestroySemaphore(device Device, semaphore Semaphore, allocator *AllocationCallbacks) {
	d.cmds.DestroySemaphore(
		native.Device(device),
		native.Semaphore(semaphore),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}

func (d *Dispatch) CreateEvent(
	device Device,
	createInfo *EventCreateInfo,
	allocator *AllocationCallbacks,
	event *Event,
) Result {
	return Result(d.cmds.CreateEvent(
		native.Device(device),
		(*native.EventCreateInfo)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.Event)(unsafe.Pointer(event)),
	))
}

func (d *Dispatch) DestroyEvent(device Device, event Event, allocator *AllocationCallbacks) {
	d.cmds.DestroyEvent(
		native.Device(device),
		native.Event(event),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}

func (d *Dispatch) GetEventStatus(device Device, event Event) Result {
	return Result(d.cmds.GetEventStatus(native.Device(device), native.Event(event)))
}

func (d *Dispatch) SetEvent(device Device, event Event) Result {
	return Result(d.cmds.SetEvent(native.Device(device), native.Event(event)))
}

func (d *Dispatch) ResetEvent(device Device, event Event) Result {
	return Result(d.cmds.ResetEvent(native.Device(device), native.Event(event)))
}
