// platform_xlib.go

//go:build linux && vk_xlib

package cvk

/*
#define VK_USE_PLATFORM_XLIB_KHR
#include <stddef.h>
#include "vkw.h"

static inline VkResult vkw_CreateXlibSurfaceKHR(uintptr_t instance, void* pCreateInfo, void* pAllocator, void* pSurface) {
	return vkCreateXlibSurfaceKHR((VkInstance)instance, (VkXlibSurfaceCreateInfoKHR*)pCreateInfo, (VkAllocationCallbacks*)pAllocator, (VkSurfaceKHR*)pSurface);
}

static inline VkBool32 vkw_GetPhysicalDeviceXlibPresentationSupportKHR(uintptr_t physicalDevice, uint32_t queueFamilyIndex, void* dpy, unsigned long visualID) {
	return vkGetPhysicalDeviceXlibPresentationSupportKHR((VkPhysicalDevice)physicalDevice, queueFamilyIndex, (Display*)dpy, (VisualID)visualID);
}

static const size_t vkw_xlib_offsets[] = {
	offsetof(VkXlibSurfaceCreateInfoKHR, sType),
	offsetof(VkXlibSurfaceCreateInfoKHR, pNext),
	offsetof(VkXlibSurfaceCreateInfoKHR, flags),
	offsetof(VkXlibSurfaceCreateInfoKHR, dpy),
	offsetof(VkXlibSurfaceCreateInfoKHR, window),
};

static size_t vkw_xlib_offset(int i) {
	return vkw_xlib_offsets[i];
}
*/
import "C"

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

func init() {
	registerPlatform("xlib", func(c *native.Commands) {
		c.CreateXlibSurfaceKHR = func(instance native.Instance, pCreateInfo *native.XlibSurfaceCreateInfoKHR, pAllocator *native.AllocationCallbacks, pSurface *native.SurfaceKHR) native.Result {
			return native.Result(C.vkw_CreateXlibSurfaceKHR(C.uintptr_t(instance), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pSurface)))
		}
		c.GetPhysicalDeviceXlibPresentationSupportKHR = func(physicalDevice native.PhysicalDevice, queueFamilyIndex uint32, dpy unsafe.Pointer, visualID uint) native.Bool32 {
			return native.Bool32(C.vkw_GetPhysicalDeviceXlibPresentationSupportKHR(C.uintptr_t(physicalDevice), C.uint32_t(queueFamilyIndex), dpy, C.ulong(visualID)))
		}
	}, layout{"XlibSurfaceCreateInfoKHR", unsafe.Sizeof(native.XlibSurfaceCreateInfoKHR{}), C.sizeof_VkXlibSurfaceCreateInfoKHR}, []offset{
		{"XlibSurfaceCreateInfoKHR.sType", unsafe.Offsetof(native.XlibSurfaceCreateInfoKHR{}.SType), uintptr(C.vkw_xlib_offset(0))},
		{"XlibSurfaceCreateInfoKHR.pNext", unsafe.Offsetof(native.XlibSurfaceCreateInfoKHR{}.PNext), uintptr(C.vkw_xlib_offset(1))},
		{"XlibSurfaceCreateInfoKHR.flags", unsafe.Offsetof(native.XlibSurfaceCreateInfoKHR{}.Flags), uintptr(C.vkw_xlib_offset(2))},
		{"XlibSurfaceCreateInfoKHR.dpy", unsafe.Offsetof(native.XlibSurfaceCreateInfoKHR{}.Dpy), uintptr(C.vkw_xlib_offset(3))},
		{"XlibSurfaceCreateInfoKHR.window", unsafe.Offsetof(native.XlibSurfaceCreateInfoKHR{}.Window), uintptr(C.vkw_xlib_offset(4))},
	})
}
