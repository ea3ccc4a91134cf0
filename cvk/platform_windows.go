// platform_windows.go

//go:build windows

package cvk

/*
#define VK_USE_PLATFORM_WIN32_KHR
#include <stddef.h>
#include "vkw.h"

static inline VkResult vkw_CreateWin32SurfaceKHR(uintptr_t instance, void* pCreateInfo, void* pAllocator, void* pSurface) {
	return vkCreateWin32SurfaceKHR((VkInstance)instance, (VkWin32SurfaceCreateInfoKHR*)pCreateInfo, (VkAllocationCallbacks*)pAllocator, (VkSurfaceKHR*)pSurface);
}

static inline VkBool32 vkw_GetPhysicalDeviceWin32PresentationSupportKHR(uintptr_t physicalDevice, uint32_t queueFamilyIndex) {
	return vkGetPhysicalDeviceWin32PresentationSupportKHR((VkPhysicalDevice)physicalDevice, queueFamilyIndex);
}

static const size_t vkw_win32_offsets[] = {
	offsetof(VkWin32SurfaceCreateInfoKHR, sType),
	offsetof(VkWin32SurfaceCreateInfoKHR, pNext),
	offsetof(VkWin32SurfaceCreateInfoKHR, flags),
	offsetof(VkWin32SurfaceCreateInfoKHR, hinstance),
	offsetof(VkWin32SurfaceCreateInfoKHR, hwnd),
};

static size_t vkw_win32_offset(int i) {
	return vkw_win32_offsets[i];
}
*/
import "C"

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

func init() {
	registerPlatform("win32", func(c *native.Commands) {
		c.CreateWin32SurfaceKHR = func(instance native.Instance, pCreateInfo *native.Win32SurfaceCreateInfoKHR, pAllocator *native.AllocationCallbacks, pSurface *native.SurfaceKHR) native.Result {
			return native.Result(C.vkw_CreateWin32SurfaceKHR(C.uintptr_t(instance), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pSurface)))
		}
		c.GetPhysicalDeviceWin32PresentationSupportKHR = func(physicalDevice native.PhysicalDevice, queueFamilyIndex uint32) native.Bool32 {
			return native.Bool32(C.vkw_GetPhysicalDeviceWin32PresentationSupportKHR(C.uintptr_t(physicalDevice), C.uint32_t(queueFamilyIndex)))
		}
	}, layout{"Win32SurfaceCreateInfoKHR", unsafe.Sizeof(native.Win32SurfaceCreateInfoKHR{}), C.sizeof_VkWin32SurfaceCreateInfoKHR}, []offset{
		{"Win32SurfaceCreateInfoKHR.sType", unsafe.Offsetof(native.Win32SurfaceCreateInfoKHR{}.SType), uintptr(C.vkw_win32_offset(0))},
		{"Win32SurfaceCreateInfoKHR.pNext", unsafe.Offsetof(native.Win32SurfaceCreateInfoKHR{}.PNext), uintptr(C.vkw_win32_offset(1))},
		{"Win32SurfaceCreateInfoKHR.flags", unsafe.Offsetof(native.Win32SurfaceCreateInfoKHR{}.Flags), uintptr(C.vkw_win32_offset(2))},
		{"Win32SurfaceCreateInfoKHR.hinstance", unsafe.Offsetof(native.Win32SurfaceCreateInfoKHR{}.Hinstance), uintptr(C.vkw_win32_offset(3))},
		{"Win32SurfaceCreateInfoKHR.hwnd", unsafe.Offsetof(native.Win32SurfaceCreateInfoKHR{}.Hwnd), uintptr(C.vkw_win32_offset(4))},
	})
}
