// instance.go
package vk

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// ApplicationInfo wraps VkApplicationInfo.
type ApplicationInfo struct {
	raw native.ApplicationInfo
}

func MakeApplicationInfo(
	applicationName *byte,
	applicationVersion uint32,
	engineName *byte,
	engineVersion uint32,
	apiVersion uint32,
) ApplicationInfo {
	return ApplicationInfo{raw: native.ApplicationInfo{
		SType:              native.StructureType(APPLICATION_INFO),
		PApplicationName:   applicationName,
		ApplicationVersion: applicationVersion,
		PEngineName:        engineName,
		EngineVersion:      engineVersion,
		ApiVersion:         apiVersion,
	}}
}

func NewApplicationInfo() *ApplicationInfo {
	return &ApplicationInfo{raw: native.ApplicationInfo{SType: native.StructureType(APPLICATION_INFO)}}
}

func (s ApplicationInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *ApplicationInfo) SetSType(sType StructureType) *ApplicationInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s ApplicationInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *ApplicationInfo) SetNext(next unsafe.Pointer) *ApplicationInfo {
	s.raw.PNext = next
	return s
}

func (s ApplicationInfo) ApplicationName() *byte {
	return s.raw.PApplicationName
}

func (s *ApplicationInfo) SetApplicationName(applicationName *byte) *ApplicationInfo {
	s.raw.PApplicationName = applicationName
	return s
}

func (s ApplicationInfo) ApplicationVersion() uint32 {
	return s.raw.ApplicationVersion
}

func (s *ApplicationInfo) SetApplicationVersion(applicationVersion uint32) *ApplicationInfo {
	s.raw.ApplicationVersion = applicationVersion
	return s
}

func (s ApplicationInfo) EngineName() *byte {
	return s.raw.PEngineName
}

func (s *ApplicationInfo) SetEngineName(engineName *byte) *ApplicationInfo {
	s.raw.PEngineName = engineName
	return s
}

func (s ApplicationInfo) EngineVersion() uint32 {
	return s.raw.EngineVersion
}

func (s *ApplicationInfo) SetEngineVersion(engineVersion uint32) *ApplicationInfo {
	s.raw.EngineVersion = engineVersion
	return s
}

func (s ApplicationInfo) ApiVersion() uint32 {
	return s.raw.ApiVersion
}

func (s *ApplicationInfo) SetApiVersion(apiVersion uint32) *ApplicationInfo {
	s.raw.ApiVersion = apiVersion
	return s
}

func (s ApplicationInfo) Native() native.ApplicationInfo {
	return s.raw
}

// InstanceCreateInfo wraps VkInstanceCreateInfo. Layer and extension names are
// NUL-terminated strings that must stay valid and reachable from C for the
// duration of CreateInstance.
type InstanceCreateInfo struct {
	raw native.InstanceCreateInfo
}

func MakeInstanceCreateInfo(
	flags InstanceCreateFlags,
	applicationInfo *ApplicationInfo,
	enabledLayerCount uint32,
	enabledLayerNames **byte,
	enabledExtensionCount uint32,
	enabledExtensionNames **byte,
) InstanceCreateInfo {
	return InstanceCreateInfo{raw: native.InstanceCreateInfo{
		SType:                   native.StructureType(INSTANCE_CREATE_INFO),
		Flags:                   native.Flags(flags),
		PApplicationInfo:        (*native.ApplicationInfo)(unsafe.Pointer(applicationInfo)),
		EnabledLayerCount:       enabledLayerCount,
		PpEnabledLayerNames:     enabledLayerNames,
		EnabledExtensionCount:   enabledExtensionCount,
		PpEnabledExtensionNames: enabledExtensionNames,
	}}
}

func NewInstanceCreateInfo() *InstanceCreateInfo {
	return &InstanceCreateInfo{raw: native.InstanceCreateInfo{SType: native.StructureType(INSTANCE_CREATE_INFO)}}
}

func (s InstanceCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *InstanceCreateInfo) SetSType(sType StructureType) *InstanceCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s InstanceCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *InstanceCreateInfo) SetNext(next unsafe.Pointer) *InstanceCreateInfo {
	s.raw.PNext = next
	return s
}

func (s InstanceCreateInfo) Flags() InstanceCreateFlags {
	return InstanceCreateFlags(s.raw.Flags)
}

func (s *InstanceCreateInfo) SetFlags(flags InstanceCreateFlags) *InstanceCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s InstanceCreateInfo) ApplicationInfo() *ApplicationInfo {
	return (*ApplicationInfo)(unsafe.Pointer(s.raw.PApplicationInfo))
}

func (s *InstanceCreateInfo) SetApplicationInfo(applicationInfo *ApplicationInfo) *InstanceCreateInfo {
	s.raw.PApplicationInfo = (*native.ApplicationInfo)(unsafe.Pointer(applicationInfo))
	return s
}

func (s InstanceCreateInfo) EnabledLayerCount() uint32 {
	return s.raw.EnabledLayerCount
}

func (s *InstanceCreateInfo) SetEnabledLayerCount(enabledLayerCount uint32) *InstanceCreateInfo {
	s.raw.EnabledLayerCount = enabledLayerCount
	return s
}

func (s InstanceCreateInfo) EnabledLayerNames() **byte {
	return s.raw.PpEnabledLayerNames
}

func (s *InstanceCreateInfo) SetEnabledLayerNames(enabledLayerNames **byte) *InstanceCreateInfo {
	s.raw.PpEnabledLayerNames = enabledLayerNames
	return s
}

func (s InstanceCreateInfo) EnabledExtensionCount() uint32 {
	return s.raw.EnabledExtensionCount
}

func (s *InstanceCreateInfo) SetEnabledExtensionCount(enabledExtensionCount uint32) *InstanceCreateInfo {
	s.raw.EnabledExtensionCount = enabledExtensionCount
	return s
}

func (s InstanceCreateInfo) EnabledExtensionNames() **byte {
	return s.raw.PpEnabledExtensionNames
}

func (s *InstanceCreateInfo) SetEnabledExtensionNames(enabledExtensionNames **byte) *InstanceCreateInfo {
	s.raw.PpEnabledExtensionNames = enabledExtensionNames
	return s
}

func (s InstanceCreateInfo) Native() native.InstanceCreateInfo {
	return s.raw
}

// AllocationCallbacks wraps VkAllocationCallbacks. The function pointers must be C
// functions; Go funcs cannot be stored here.
type AllocationCallbacks struct {
	raw native.AllocationCallbacks
}

func MakeAllocationCallbacks(
	userData unsafe.Pointer,
	pfnAllocation unsafe.Pointer,
	pfnReallocation unsafe.Pointer,
	pfnFree unsafe.Pointer,
	pfnInternalAllocation unsafe.Pointer,
	pfnInternalFree unsafe.Pointer,
) AllocationCallbacks {
	return AllocationCallbacks{raw: native.AllocationCallbacks{
		PUserData:             userData,
		PfnAllocation:         pfnAllocation,
		PfnReallocation:       pfnReallocation,
		PfnFree:               pfnFree,
		PfnInternalAllocation: pfnInternalAllocation,
		PfnInternalFree:       pfnInternalFree,
	}}
}

func NewAllocationCallbacks() *AllocationCallbacks {
	return &AllocationCallbacks{}
}

func (s AllocationCallbacks) UserData() unsafe.Pointer {
	return s.raw.PUserData
}

func (s *AllocationCallbacks) SetUserData(userData unsafe.Pointer) *AllocationCallbacks {
	s.raw.PUserData = userData
	return s
}

func (s AllocationCallbacks) PfnAllocation() unsafe.Pointer {
	return s.raw.PfnAllocation
}

func (s *AllocationCallbacks) SetPfnAllocation(pfnAllocation unsafe.Pointer) *AllocationCallbacks {
	s.raw.PfnAllocation = pfnAllocation
	return s
}

func (s AllocationCallbacks) PfnReallocation() unsafe.Pointer {
	return s.raw.PfnReallocation
}

func (s *AllocationCallbacks) SetPfnReallocation(pfnReallocation unsafe.Pointer) *AllocationCallbacks {
	s.raw.PfnReallocation = pfnReallocation
	return s
}

func (s AllocationCallbacks) PfnFree() unsafe.Pointer {
	return s.raw.PfnFree
}

func (s *AllocationCallbacks) SetPfnFree(pfnFree unsafe.Pointer) *AllocationCallbacks {
	s.raw.PfnFree = pfnFree
	return s
}

func (s AllocationCallbacks) PfnInternalAllocation() unsafe.Pointer {
	return s.raw.PfnInternalAllocation
}

func (s *AllocationCallbacks) SetPfnInternalAllocation(pfnInternalAllocation unsafe.Pointer) *AllocationCallbacks {
	s.raw.PfnInternalAllocation = pfnInternalAllocation
	return s
}

func (s AllocationCallbacks) PfnInternalFree() unsafe.Pointer {
	return s.raw.PfnInternalFree
}

func (s *AllocationCallbacks) SetPfnInternalFree(pfnInternalFree unsafe.Pointer) *AllocationCallbacks {
	s.raw.PfnInternalFree = pfnInternalFree
	return s
}

func (s AllocationCallbacks) Native() native.AllocationCallbacks {
	return s.raw
}

// LayerProperties wraps VkLayerProperties.
type LayerProperties struct {
	raw native.LayerProperties
}

func (s LayerProperties) LayerName() string {
	return cstring(s.raw.LayerName[:])
}

func (s LayerProperties) SpecVersion() uint32 {
	return s.raw.SpecVersion
}

func (s LayerProperties) ImplementationVersion() uint32 {
	return s.raw.ImplementationVersion
}

func (s LayerProperties) Description() string {
	return cstring(s.raw.Description[:])
}

func (s LayerProperties) Native() native.LayerProperties {
	return s.raw
}

// ExtensionProperties wraps VkExtensionProperties.
type ExtensionProperties struct {
	raw native.ExtensionProperties
}

func (s ExtensionProperties) ExtensionName() string {
	return cstring(s.raw.ExtensionName[:])
}

func (s ExtensionProperties) SpecVersion() uint32 {
	return s.raw.SpecVersion
}

func (s ExtensionProperties) Native() native.ExtensionProperties {
	return s.raw
}

func (d *Dispatch) CreateInstance(
	createInfo *InstanceCreateInfo,
	allocator *AllocationCallbacks,
	instance *Instance,
) Result {
	return Result(d.cmds.CreateInstance(
		(*native.InstanceCreateInfo)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.Instance)(unsafe.Pointer(instance)),
	))
}

func (d *Dispatch) DestroyInstance(instance Instance, allocator *AllocationCallbacks) {
	d.cmds.DestroyInstance(
		native.Instance(instance),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}

func (d *Dispatch) EnumerateInstanceVersion(apiVersion *uint32) Result {
	return Result(d.cmds.EnumerateInstanceVersion(apiVersion))
}

func (d *Dispatch) EnumerateInstanceLayerProperties(
	propertyCount *uint32,
	properties *LayerProperties,
) Result {
	return Result(d.cmds.EnumerateInstanceLayerProperties(
		propertyCount,
		(*native.LayerProperties)(unsafe.Pointer(properties)),
	))
}

func (d *Dispatch) EnumerateInstanceExtensionProperties(
	layerName *byte,
	propertyCount *uint32,
	properties *ExtensionProperties,
) Result {
	return Result(d.cmds.EnumerateInstanceExtensionProperties(
		layerName,
		propertyCount,
		(*native.ExtensionProperties)(unsafe.Pointer(properties)),
	))
}

func (d *Dispatch) EnumeratePhysicalDevices(
	instance Instance,
	physicalDeviceCount *uint32,
	physicalDevices *PhysicalDevice,
) Result {
	return Result(d.cmds.EnumeratePhysicalDevices(
		native.Instance(instance),
		physicalDeviceCount,
		(*native.PhysicalDevice)(unsafe.Pointer(physicalDevices)),
	))
}
