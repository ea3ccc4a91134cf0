// platform.go
package vk

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// Platform surface structs are plain data and always available. The matching
// entry points are only filled in when cvk is built with the platform's tag.

// XlibSurfaceCreateInfoKHR wraps VkXlibSurfaceCreateInfoKHR. Dpy is a Display*;
// Window is the X11 window id.
type XlibSurfaceCreateInfoKHR struct {
	raw native.XlibSurfaceCreateInfoKHR
}

func MakeXlibSurfaceCreateInfoKHR(flags XlibSurfaceCreateFlagsKHR, dpy unsafe.Pointer, window uint) XlibSurfaceCreateInfoKHR {
	return XlibSurfaceCreateInfoKHR{raw: native.XlibSurfaceCreateInfoKHR{
		SType:  native.StructureType(XLIB_SURFACE_CREATE_INFO_KHR),
		Flags:  native.Flags(flags),
		Dpy:    dpy,
		Window: window,
	}}
}

func NewXlibSurfaceCreateInfoKHR() *XlibSurfaceCreateInfoKHR {
	return &XlibSurfaceCreateInfoKHR{raw: native.XlibSurfaceCreateInfoKHR{SType: native.StructureType(XLIB_SURFACE_CREATE_INFO_KHR)}}
}

func (s XlibSurfaceCreateInfoKHR) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *XlibSurfaceCreateInfoKHR) SetSType(sType StructureType) *XlibSurfaceCreateInfoKHR {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s XlibSurfaceCreateInfoKHR) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *XlibSurfaceCreateInfoKHR) SetNext(next unsafe.Pointer) *XlibSurfaceCreateInfoKHR {
	s.raw.PNext = next
	return s
}

func (s XlibSurfaceCreateInfoKHR) Flags() XlibSurfaceCreateFlagsKHR {
	return XlibSurfaceCreateFlagsKHR(s.raw.Flags)
}

func (s *XlibSurfaceCreateInfoKHR) SetFlags(flags XlibSurfaceCreateFlagsKHR) *XlibSurfaceCreateInfoKHR {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s XlibSurfaceCreateInfoKHR) Dpy() unsafe.Pointer {
	return s.raw.Dpy
}

func (s *XlibSurfaceCreateInfoKHR) SetDpy(dpy unsafe.Pointer) *XlibSurfaceCreateInfoKHR {
	s.raw.Dpy = dpy
	return s
}

func (s XlibSurfaceCreateInfoKHR) Window() uint {
	return s.raw.Window
}

func (s *XlibSurfaceCreateInfoKHR) SetWindow(window uint) *XlibSurfaceCreateInfoKHR {
	s.raw.Window = window
	return s
}

func (s XlibSurfaceCreateInfoKHR) Native() native.XlibSurfaceCreateInfoKHR {
	return s.raw
}

// XcbSurfaceCreateInfoKHR wraps VkXcbSurfaceCreateInfoKHR.
type XcbSurfaceCreateInfoKHR struct {
	raw native.XcbSurfaceCreateInfoKHR
}

func MakeXcbSurfaceCreateInfoKHR(flags XcbSurfaceCreateFlagsKHR, connection unsafe.Pointer, window uint32) XcbSurfaceCreateInfoKHR {
	return XcbSurfaceCreateInfoKHR{raw: native.XcbSurfaceCreateInfoKHR{
		SType:      native.StructureType(XCB_SURFACE_CREATE_INFO_KHR),
		Flags:      native.Flags(flags),
		Connection: connection,
		Window:     window,
	}}
}

func NewXcbSurfaceCreateInfoKHR() *XcbSurfaceCreateInfoKHR {
	return &XcbSurfaceCreateInfoKHR{raw: native.XcbSurfaceCreateInfoKHR{SType: native.StructureType(XCB_SURFACE_CREATE_INFO_KHR)}}
}

func (s XcbSurfaceCreateInfoKHR) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *XcbSurfaceCreateInfoKHR) SetSType(sType StructureType) *XcbSurfaceCreateInfoKHR {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s XcbSurfaceCreateInfoKHR) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *XcbSurfaceCreateInfoKHR) SetNext(next unsafe.Pointer) *XcbSurfaceCreateInfoKHR {
	s.raw.PNext = next
	return s
}

func (s XcbSurfaceCreateInfoKHR) Flags() XcbSurfaceCreateFlagsKHR {
	return XcbSurfaceCreateFlagsKHR(s.raw.Flags)
}

func (s *XcbSurfaceCreateInfoKHR) SetFlags(flags XcbSurfaceCreateFlagsKHR) *XcbSurfaceCreateInfoKHR {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s XcbSurfaceCreateInfoKHR) Connection() unsafe.Pointer {
	return s.raw.Connection
}

func (s *XcbSurfaceCreateInfoKHR) SetConnection(connection unsafe.Pointer) *XcbSurfaceCreateInfoKHR {
	s.raw.Connection = connection
	return s
}

func (s XcbSurfaceCreateInfoKHR) Window() uint32 {
	return s.raw.Window
}

func (s *XcbSurfaceCreateInfoKHR) SetWindow(window uint32) *XcbSurfaceCreateInfoKHR {
	s.raw.Window = window
	return s
}

func (s XcbSurfaceCreateInfoKHR) Native() native.XcbSurfaceCreateInfoKHR {
	return s.raw
}

// WaylandSurfaceCreateInfoKHR wraps VkWaylandSurfaceCreateInfoKHR.
type WaylandSurfaceCreateInfoKHR struct {
	raw native.WaylandSurfaceCreateInfoKHR
}

func MakeWaylandSurfaceCreateInfoKHR(flags WaylandSurfaceCreateFlagsKHR, display unsafe.Pointer, surface unsafe.Pointer) WaylandSurfaceCreateInfoKHR {
	return WaylandSurfaceCreateInfoKHR{raw: native.WaylandSurfaceCreateInfoKHR{
		SType:   native.StructureType(WAYLAND_SURFACE_CREATE_INFO_KHR),
		Flags:   native.Flags(flags),
		Display: display,
		Surface: surface,
	}}
}

func NewWaylandSurfaceCreateInfoKHR() *WaylandSurfaceCreateInfoKHR {
	return &WaylandSurfaceCreateInfoKHR{raw: native.WaylandSurfaceCreateInfoKHR{SType: native.StructureType(WAYLAND_SURFACE_CREATE_INFO_KHR)}}
}

func (s WaylandSurfaceCreateInfoKHR) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *WaylandSurfaceCreateInfoKHR) SetSType(sType StructureType) *WaylandSurfaceCreateInfoKHR {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s WaylandSurfaceCreateInfoKHR) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *WaylandSurfaceCreateInfoKHR) SetNext(next unsafe.Pointer) *WaylandSurfaceCreateInfoKHR {
	s.raw.PNext = next
	return s
}

func (s WaylandSurfaceCreateInfoKHR) Flags() WaylandSurfaceCreateFlagsKHR {
	return WaylandSurfaceCreateFlagsKHR(s.raw.Flags)
}

func (s *WaylandSurfaceCreateInfoKHR) SetFlags(flags WaylandSurfaceCreateFlagsKHR) *WaylandSurfaceCreateInfoKHR {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s WaylandSurfaceCreateInfoKHR) Display() unsafe.Pointer {
	return s.raw.Display
}

func (s *WaylandSurfaceCreateInfoKHR) SetDisplay(display unsafe.Pointer) *WaylandSurfaceCreateInfoKHR {
	s.raw.Display = display
	return s
}

func (s WaylandSurfaceCreateInfoKHR) Surface() unsafe.Pointer {
	return s.raw.Surface
}

func (s *WaylandSurfaceCreateInfoKHR) SetSurface(surface unsafe.Pointer) *WaylandSurfaceCreateInfoKHR {
	s.raw.Surface = surface
	return s
}

func (s WaylandSurfaceCreateInfoKHR) Native() native.WaylandSurfaceCreateInfoKHR {
	return s.raw
}

// MirSurfaceCreateInfoKHR wraps VkMirSurfaceCreateInfoKHR for the Mir display server.
type MirSurfaceCreateInfoKHR struct {
	raw native.MirSurfaceCreateInfoKHR
}

func MakeMirSurfaceCreateInfoKHR(flags MirSurfaceCreateFlagsKHR, connection unsafe.Pointer, mirSurface unsafe.Pointer) MirSurfaceCreateInfoKHR {
	return MirSurfaceCreateInfoKHR{raw: native.MirSurfaceCreateInfoKHR{
		SType:      native.StructureType(MIR_SURFACE_CREATE_INFO_KHR),
		Flags:      native.Flags(flags),
		Connection: connection,
		MirSurface: mirSurface,
	}}
}

func NewMirSurfaceCreateInfoKHR() *MirSurfaceCreateInfoKHR {
	return &MirSurfaceCreateInfoKHR{raw: native.MirSurfaceCreateInfoKHR{SType: native.StructureType(MIR_SURFACE_CREATE_INFO_KHR)}}
}

func (s MirSurfaceCreateInfoKHR) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *MirSurfaceCreateInfoKHR) SetSType(sType StructureType) *MirSurfaceCreateInfoKHR {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s MirSurfaceCreateInfoKHR) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *MirSurfaceCreateInfoKHR) SetNext(next unsafe.Pointer) *MirSurfaceCreateInfoKHR {
	s.raw.PNext = next
	return s
}

func (s MirSurfaceCreateInfoKHR) Flags() MirSurfaceCreateFlagsKHR {
	return MirSurfaceCreateFlagsKHR(s.raw.Flags)
}

func (s *MirSurfaceCreateInfoKHR) SetFlags(flags MirSurfaceCreateFlagsKHR) *MirSurfaceCreateInfoKHR {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s MirSurfaceCreateInfoKHR) Connection() unsafe.Pointer {
	return s.raw.Connection
}

func (s *MirSurfaceCreateInfoKHR) SetConnection(connection unsafe.Pointer) *MirSurfaceCreateInfoKHR {
	s.raw.Connection = connection
	return s
}

func (s MirSurfaceCreateInfoKHR) MirSurface() unsafe.Pointer {
	return s.raw.MirSurface
}

func (s *MirSurfaceCreateInfoKHR) SetMirSurface(mirSurface unsafe.Pointer) *MirSurfaceCreateInfoKHR {
	s.raw.MirSurface = mirSurface
	return s
}

func (s MirSurfaceCreateInfoKHR) Native() native.MirSurfaceCreateInfoKHR {
	return s.raw
}

// AndroidSurfaceCreateInfoKHR wraps VkAndroidSurfaceCreateInfoKHR.
type AndroidSurfaceCreateInfoKHR struct {
	raw native.AndroidSurfaceCreateInfoKHR
}

func MakeAndroidSurfaceCreateInfoKHR(flags AndroidSurfaceCreateFlagsKHR, window unsafe.Pointer) AndroidSurfaceCreateInfoKHR {
	return AndroidSurfaceCreateInfoKHR{raw: native.AndroidSurfaceCreateInfoKHR{
		SType:  native.StructureType(ANDROID_SURFACE_CREATE_INFO_KHR),
		Flags:  native.Flags(flags),
		Window: window,
	}}
}

func NewAndroidSurfaceCreateInfoKHR() *AndroidSurfaceCreateInfoKHR {
	return &AndroidSurfaceCreateInfoKHR{raw: native.AndroidSurfaceCreateInfoKHR{SType: native.StructureType(ANDROID_SURFACE_CREATE_INFO_KHR)}}
}

func (s AndroidSurfaceCreateInfoKHR) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *AndroidSurfaceCreateInfoKHR) SetSType(sType StructureType) *AndroidSurfaceCreateInfoKHR {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s AndroidSurfaceCreateInfoKHR) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *AndroidSurfaceCreateInfoKHR) SetNext(next unsafe.Pointer) *AndroidSurfaceCreateInfoKHR {
	s.raw.PNext = next
	return s
}

func (s AndroidSurfaceCreateInfoKHR) Flags() AndroidSurfaceCreateFlagsKHR {
	return AndroidSurfaceCreateFlagsKHR(s.raw.Flags)
}

func (s *AndroidSurfaceCreateInfoKHR) SetFlags(flags AndroidSurfaceCreateFlagsKHR) *AndroidSurfaceCreateInfoKHR {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s AndroidSurfaceCreateInfoKHR) Window() unsafe.Pointer {
	return s.raw.Window
}

func (s *AndroidSurfaceCreateInfoKHR) SetWindow(window unsafe.Pointer) *AndroidSurfaceCreateInfoKHR {
	s.raw.Window = window
	return s
}

func (s AndroidSurfaceCreateInfoKHR) Native() native.AndroidSurfaceCreateInfoKHR {
	return s.raw
}

// Win32SurfaceCreateInfoKHR wraps VkWin32SurfaceCreateInfoKHR.
type Win32SurfaceCreateInfoKHR struct {
	raw native.Win32SurfaceCreateInfoKHR
}

func MakeWin32SurfaceCreateInfoKHR(flags Win32SurfaceCreateFlagsKHR, hinstance unsafe.Pointer, hwnd unsafe.Pointer) Win32SurfaceCreateInfoKHR {
	return Win32SurfaceCreateInfoKHR{raw: native.Win32SurfaceCreateInfoKHR{
		SType:     native.StructureType(WIN32_SURFACE_CREATE_INFO_KHR),
		Flags:     native.Flags(flags),
		Hinstance: hinstance,
		Hwnd:      hwnd,
	}}
}

func NewWin32SurfaceCreateInfoKHR() *Win32SurfaceCreateInfoKHR {
	return &Win32SurfaceCreateInfoKHR{raw: native.Win32SurfaceCreateInfoKHR{SType: native.StructureType(WIN32_SURFACE_CREATE_INFO_KHR)}}
}

func (s Win32SurfaceCreateInfoKHR) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *Win32SurfaceCreateInfoKHR) SetSType(sType StructureType) *Win32SurfaceCreateInfoKHR {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s Win32SurfaceCreateInfoKHR) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *Win32SurfaceCreateInfoKHR) SetNext(next unsafe.Pointer) *Win32SurfaceCreateInfoKHR {
	s.raw.PNext = next
	return s
}

func (s Win32SurfaceCreateInfoKHR) Flags() Win32SurfaceCreateFlagsKHR {
	return Win32SurfaceCreateFlagsKHR(s.raw.Flags)
}

func (s *Win32SurfaceCreateInfoKHR) SetFlags(flags Win32SurfaceCreateFlagsKHR) *Win32SurfaceCreateInfoKHR {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s Win32SurfaceCreateInfoKHR) Hinstance() unsafe.Pointer {
	return s.raw.Hinstance
}

func (s *Win32SurfaceCreateInfoKHR) SetHinstance(hinstance unsafe.Pointer) *Win32SurfaceCreateInfoKHR {
	s.raw.Hinstance = hinstance
	return s
}

func (s Win32SurfaceCreateInfoKHR) Hwnd() unsafe.Pointer {
	return s.raw.Hwnd
}

func (s *Win32SurfaceCreateInfoKHR) SetHwnd(hwnd unsafe.Pointer) *Win32SurfaceCreateInfoKHR {
	s.raw.Hwnd = hwnd
	return s
}

func (s Win32SurfaceCreateInfoKHR) Native() native.Win32SurfaceCreateInfoKHR {
	return s.raw
}

func (d *Dispatch) CreateXlibSurfaceKHR(
	instance Instance,
	createInfo *XlibSurfaceCreateInfoKHR,
	allocator *AllocationCallbacks,
	surface *SurfaceKHR,
) Result {
	return Result(d.cmds.CreateXlibSurfaceKHR(
		native.Instance(instance),
		(*native.XlibSurfaceCreateInfoKHR)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.SurfaceKHR)(unsafe.Pointer(surface)),
	))
}

func (d *Dispatch) GetPhysicalDeviceXlibPresentationSupportKHR(
	physicalDevice PhysicalDevice,
	queueFamilyIndex uint32,
	dpy unsafe.Pointer,
	visualID uint,
) bool {
	return d.cmds.GetPhysicalDeviceXlibPresentationSupportKHR(
		native.PhysicalDevice(physicalDevice),
		queueFamilyIndex,
		dpy,
		visualID,
	) != 0
}

func (d *Dispatch) CreateXcbSurfaceKHR(
	instance Instance,
	createInfo *XcbSurfaceCreateInfoKHR,
	allocator *AllocationCallbacks,
	surface *SurfaceKHR,
) Result {
	return Result(d.cmds.CreateXcbSurfaceKHR(
		native.Instance(instance),
		(*native.XcbSurfaceCreateInfoKHR)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.SurfaceKHR)(unsafe.Pointer(surface)),
	))
}

func (d *Dispatch) GetPhysicalDeviceXcbPresentationSupportKHR(
	physicalDevice PhysicalDevice,
	queueFamilyIndex uint32,
	connection unsafe.Pointer,
	visualID uint32,
) bool {
	return d.cmds.GetPhysicalDeviceXcbPresentationSupportKHR(
		native.PhysicalDevice(physicalDevice),
		queueFamilyIndex,
		connection,
		visualID,
	) != 0
}

func (d *Dispatch) CreateWaylandSurfaceKHR(
	instance Instance,
	createInfo *WaylandSurfaceCreateInfoKHR,
	allocator *AllocationCallbacks,
	surface *SurfaceKHR,
) Result {
	return Result(d.cmds.CreateWaylandSurfaceKHR(
		native.Instance(instance),
		(*native.WaylandSurfaceCreateInfoKHR)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.SurfaceKHR)(unsafe.Pointer(surface)),
	))
}

func (d *Dispatch) GetPhysicalDeviceWaylandPresentationSupportKHR(
	physicalDevice PhysicalDevice,
	queueFamilyIndex uint32,
	display unsafe.Pointer,
) bool {
	return d.cmds.GetPhysicalDeviceWaylandPresentationSupportKHR(
		native.PhysicalDevice(physicalDevice),
		queueFamilyIndex,
		display,
	) != 0
}

// CreateMirSurfaceKHR returns ERROR_EXTENSION_NOT_PRESENT unless cvk.LoadMir has
// resolved the Mir entry points for instance first.
func (d *Dispatch) CreateMirSurfaceKHR(
	instance Instance,
	createInfo *MirSurfaceCreateInfoKHR,
	allocator *AllocationCallbacks,
	surface *SurfaceKHR,
) Result {
	return Result(d.cmds.CreateMirSurfaceKHR(
		native.Instance(instance),
		(*native.MirSurfaceCreateInfoKHR)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.SurfaceKHR)(unsafe.Pointer(surface)),
	))
}

// GetPhysicalDeviceMirPresentationSupportKHR reports false until cvk.LoadMir has
// been called for the instance that owns physicalDevice.
func (d *Dispatch) GetPhysicalDeviceMirPresentationSupportKHR(
	physicalDevice PhysicalDevice,
	queueFamilyIndex uint32,
	connection unsafe.Pointer,
) bool {
	return d.cmds.GetPhysicalDeviceMirPresentationSupportKHR(
		native.PhysicalDevice(physicalDevice),
		queueFamilyIndex,
		connection,
	) != 0
}

func (d *Dispatch) CreateAndroidSurfaceKHR(
	instance Instance,
	createInfo *AndroidSurfaceCreateInfoKHR,
	allocator *AllocationCallbacks,
	surface *SurfaceKHR,
) Result {
	return Result(d.cmds.CreateAndroidSurfaceKHR(
		native.Instance(instance),
		(*native.AndroidSurfaceCreateInfoKHR)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.SurfaceKHR)(unsafe.Pointer(surface)),
	))
}

func (d *Dispatch) CreateWin32SurfaceKHR(
	instance Instance,
	createInfo *Win32SurfaceCreateInfoKHR,
	allocator *AllocationCallbacks,
	surface *SurfaceKHR,
) Result {
	return Result(d.cmds.CreateWin32SurfaceKHR(
		native.Instance(instance),
		(*native.Win32SurfaceCreateInfoKHR)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.SurfaceKHR)(unsafe.Pointer(surface)),
	))
}

func (d *Dispatch) GetPhysicalDeviceWin32PresentationSupportKHR(
	physicalDevice PhysicalDevice,
	queueFamilyIndex uint32,
) bool {
	return d.cmds.GetPhysicalDeviceWin32PresentationSupportKHR(
		native.PhysicalDevice(physicalDevice),
		queueFamilyIndex,
	) != 0
}
