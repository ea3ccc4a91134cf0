// platform_xcb.go

//go:build linux && vk_xcb

package cvk

/*
#define VK_USE_PLATFORM_XCB_KHR
#include <stddef.h>
#include "vkw.h"

static inline VkResult vkw_CreateXcbSurfaceKHR(uintptr_t instance, void* pCreateInfo, void* pAllocator, void* pSurface) {
	return vkCreateXcbSurfaceKHR((VkInstance)instance, (VkXcbSurfaceCreateInfoKHR*)pCreateInfo, (VkAllocationCallbacks*)pAllocator, (VkSurfaceKHR*)pSurface);
}

static inline VkBool32 vkw_GetPhysicalDeviceXcbPresentationSupportKHR(uintptr_t physicalDevice, uint32_t queueFamilyIndex, void* connection, uint32_t visualID) {
	return vkGetPhysicalDeviceXcbPresentationSupportKHR((VkPhysicalDevice)physicalDevice, queueFamilyIndex, (xcb_connection_t*)connection, (xcb_visualid_t)visualID);
}

static const size_t vkw_xcb_offsets[] = {
	offsetof(VkXcbSurfaceCreateInfoKHR, sType),
	offsetof(VkXcbSurfaceCreateInfoKHR, pNext),
	offsetof(VkXcbSurfaceCreateInfoKHR, flags),
	offsetof(VkXcbSurfaceCreateInfoKHR, connection),
	offsetof(VkXcbSurfaceCreateInfoKHR, window),
};

static size_t vkw_xcb_offset(int i) {
	return vkw_xcb_offsets[i];
}
*/
import "C"

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

func init() {
	registerPlatform("xcb", func(c *native.Commands) {
		c.CreateXcbSurfaceKHR = func(instance native.Instance, pCreateInfo *native.XcbSurfaceCreateInfoKHR, pAllocator *native.AllocationCallbacks, pSurface *native.SurfaceKHR) native.Result {
			return native.Result(C.vkw_CreateXcbSurfaceKHR(C.uintptr_t(instance), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pSurface)))
		}
		c.GetPhysicalDeviceXcbPresentationSupportKHR = func(physicalDevice native.PhysicalDevice, queueFamilyIndex uint32, connection unsafe.Pointer, visualID uint32) native.Bool32 {
			return native.Bool32(C.vkw_GetPhysicalDeviceXcbPresentationSupportKHR(C.uintptr_t(physicalDevice), C.uint32_t(queueFamilyIndex), connection, C.uint32_t(visualID)))
		}
	}, layout{"XcbSurfaceCreateInfoKHR", unsafe.Sizeof(native.XcbSurfaceCreateInfoKHR{}), C.sizeof_VkXcbSurfaceCreateInfoKHR}, []offset{
		{"XcbSurfaceCreateInfoKHR.sType", unsafe.Offsetof(native.XcbSurfaceCreateInfoKHR{}.SType), uintptr(C.vkw_xcb_offset(0))},
		{"XcbSurfaceCreateInfoKHR.pNext", unsafe.Offsetof(native.XcbSurfaceCreateInfoKHR{}.PNext), uintptr(C.vkw_xcb_offset(1))},
		{"XcbSurfaceCreateInfoKHR.flags", unsafe.Offsetof(native.XcbSurfaceCreateInfoKHR{}.Flags), uintptr(C.vkw_xcb_offset(2))},
		{"XcbSurfaceCreateInfoKHR.connection", unsafe.Offsetof(native.XcbSurfaceCreateInfoKHR{}.Connection), uintptr(C.vkw_xcb_offset(3))},
		{"XcbSurfaceCreateInfoKHR.window", unsafe.Offsetof(native.XcbSurfaceCreateInfoKHR{}.Window), uintptr(C.vkw_xcb_offset(4))},
	})
}
