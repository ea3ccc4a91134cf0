// device.go
package vk

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// DeviceQueueCreateInfo wraps VkDeviceQueueCreateInfo.
type DeviceQueueCreateInfo struct {
	raw native.DeviceQueueCreateInfo
}

func MakeDeviceQueueCreateInfo(
	flags DeviceQueueCreateFlags,
	queueFamilyIndex uint32,
	queueCount uint32,
	queuePriorities *float32,
) DeviceQueueCreateInfo {
	return DeviceQueueCreateInfo{raw: native.DeviceQueueCreateInfo{
		SType:            native.StructureType(DEVICE_QUEUE_CREATE_INFO),
		Flags:            native.Flags(flags),
		QueueFamilyIndex: queueFamilyIndex,
		QueueCount:       queueCount,
		PQueuePriorities: queuePriorities,
	}}
}

func NewDeviceQueueCreateInfo() *DeviceQueueCreateInfo {
	return &DeviceQueueCreateInfo{raw: native.DeviceQueueCreateInfo{SType: native.StructureType(DEVICE_QUEUE_CREATE_INFO)}}
}

func (s DeviceQueueCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *DeviceQueueCreateInfo) SetSType(sType StructureType) *DeviceQueueCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s DeviceQueueCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *DeviceQueueCreateInfo) SetNext(next unsafe.Pointer) *DeviceQueueCreateInfo {
	s.raw.PNext = next
	return s
}

func (s DeviceQueueCreateInfo) Flags() DeviceQueueCreateFlags {
	return DeviceQueueCreateFlags(s.raw.Flags)
}

func (s *DeviceQueueCreateInfo) SetFlags(flags DeviceQueueCreateFlags) *DeviceQueueCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s DeviceQueueCreateInfo) QueueFamilyIndex() uint32 {
	return s.raw.QueueFamilyIndex
}

func (s *DeviceQueueCreateInfo) SetQueueFamilyIndex(queueFamilyIndex uint32) *DeviceQueueCreateInfo {
	s.raw.QueueFamilyIndex = queueFamilyIndex
	return s
}

func (s DeviceQueueCreateInfo) QueueCount() uint32 {
	return s.raw.QueueCount
}

func (s *DeviceQueueCreateInfo) SetQueueCount(queueCount uint32) *DeviceQueueCreateInfo {
	s.raw.QueueCount = queueCount
	return s
}

func (s DeviceQueueCreateInfo) QueuePriorities() *float32 {
	return s.raw.PQueuePriorities
}

func (s *DeviceQueueCreateInfo) SetQueuePriorities(queuePriorities *float32) *DeviceQueueCreateInfo {
	s.raw.PQueuePriorities = queuePriorities
	return s
}

func (s DeviceQueueCreateInfo) Native() native.DeviceQueueCreateInfo {
	return s.raw
}

// DeviceCreateInfo wraps VkDeviceCreateInfo.
type DeviceCreateInfo struct {
	raw native.DeviceCreateInfo
}

func MakeDeviceCreateInfo(
	flags DeviceCreateFlags,
	queueCreateInfoCount uint32,
	queueCreateInfos *DeviceQueueCreateInfo,
	enabledLayerCount uint32,
	enabledLayerNames **byte,
	enabledExtensionCount uint32,
	enabledExtensionNames **byte,
	enabledFeatures *PhysicalDeviceFeatures,
) DeviceCreateInfo {
	return DeviceCreateInfo{raw: native.DeviceCreateInfo{
		SType:                   native.StructureType(DEVICE_CREATE_INFO),
		Flags:                   native.Flags(flags),
		QueueCreateInfoCount:    queueCreateInfoCount,
		PQueueCreateInfos:       (*native.DeviceQueueCreateInfo)(unsafe.Pointer(queueCreateInfos)),
		EnabledLayerCount:       enabledLayerCount,
		PpEnabledLayerNames:     enabledLayerNames,
		EnabledExtensionCount:   enabledExtensionCount,
		PpEnabledExtensionNames: enabledExtensionNames,
		PEnabledFeatures:        (*native.PhysicalDeviceFeatures)(unsafe.Pointer(enabledFeatures)),
	}}
}

func NewDeviceCreateInfo() *DeviceCreateInfo {
	return &DeviceCreateInfo{raw: native.DeviceCreateInfo{SType: native.StructureType(DEVICE_CREATE_INFO)}}
}

func (s DeviceCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *DeviceCreateInfo) SetSType(sType StructureType) *DeviceCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s DeviceCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *DeviceCreateInfo) SetNext(next unsafe.Pointer) *DeviceCreateInfo {
	s.raw.PNext = next
	return s
}

func (s DeviceCreateInfo) Flags() DeviceCreateFlags {
	return DeviceCreateFlags(s.raw.Flags)
}

func (s *DeviceCreateInfo) SetFlags(flags DeviceCreateFlags) *DeviceCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s DeviceCreateInfo) QueueCreateInfoCount() uint32 {
	return s.raw.QueueCreateInfoCount
}

func (s *DeviceCreateInfo) SetQueueCreateInfoCount(queueCreateInfoCount uint32) *DeviceCreateInfo {
	s.raw.QueueCreateInfoCount = queueCreateInfoCount
	return s
}

func (s DeviceCreateInfo) QueueCreateInfos() *DeviceQueueCreateInfo {
	return (*DeviceQueueCreateInfo)(unsafe.Pointer(s.raw.PQueueCreateInfos))
}

func (s *DeviceCreateInfo) SetQueueCreateInfos(queueCreateInfos *DeviceQueueCreateInfo) *DeviceCreateInfo {
	s.raw.PQueueCreateInfos = (*native.DeviceQueueCreateInfo)(unsafe.Pointer(queueCreateInfos))
	return s
}

func (s DeviceCreateInfo) EnabledLayerCount() uint32 {
	return s.raw.EnabledLayerCount
}

func (s *DeviceCreateInfo) SetEnabledLayerCount(enabledLayerCount uint32) *DeviceCreateInfo {
	s.raw.EnabledLayerCount = enabledLayerCount
	return s
}

func (s DeviceCreateInfo) EnabledLayerNames() **byte {
	return s.raw.PpEnabledLayerNames
}

func (s *DeviceCreateInfo) SetEnabledLayerNames(enabledLayerNames **byte) *DeviceCreateInfo {
	s.raw.PpEnabledLayerNames = enabledLayerNames
	return s
}

func (s DeviceCreateInfo) EnabledExtensionCount() uint32 {
	return s.raw.EnabledExtensionCount
}

func (s *DeviceCreateInfo) SetEnabledExtensionCount(enabledExtensionCount uint32) *DeviceCreateInfo {
	s.raw.EnabledExtensionCount = enabledExtensionCount
	return s
}

func (s DeviceCreateInfo) EnabledExtensionNames() **byte {
	return s.raw.PpEnabledExtensionNames
}

func (s *DeviceCreateInfo) SetEnabledExtensionNames(enabledExtensionNames **byte) *DeviceCreateInfo {
	s.raw.PpEnabledExtensionNames = enabledExtensionNames
	return s
}

func (s DeviceCreateInfo) EnabledFeatures() *PhysicalDeviceFeatures {
	return (*PhysicalDeviceFeatures)(unsafe.Pointer(s.raw.PEnabledFeatures))
}

func (s *DeviceCreateInfo) SetEnabledFeatures(enabledFeatures *PhysicalDeviceFeatures) *DeviceCreateInfo {
	s.raw.PEnabledFeatures = (*native.PhysicalDeviceFeatures)(unsafe.Pointer(enabledFeatures))
	return s
}

func (s DeviceCreateInfo) Native() native.DeviceCreateInfo {
	return s.raw
}

func (d *Dispatch) CreateDevice(
	physicalDevice PhysicalDevice,
	createInfo *DeviceCreateInfo,
	allocator *AllocationCallbacks,
	device *Device,
) Result {
	return Result(d.cmds.CreateDevice(
		native.PhysicalDevice(physicalDevice),
		(*native.DeviceCreateInfo)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.Device)(unsafe.Pointer(device)),
	))
}

func (d *Dispatch) DestroyDevice(device Device, allocator *AllocationCallbacks) {
	d.cmds.DestroyDevice(
		native.Device(device),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}

func (d *Dispatch) GetDeviceQueue(device Device, queueFamilyIndex uint32, queueIndex uint32, queue *Queue) {
	d.cmds.GetDeviceQueue(
		native.Device(device),
		queueFamilyIndex,
		queueIndex,
		(*native.Queue)(unsafe.Pointer(queue)),
	)
}

func (d *Dispatch) DeviceWaitIdle(device Device) Result {
	return Result(d.cmds.DeviceWaitIdle(native.Device(device)))
}
