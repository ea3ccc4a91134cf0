// platform_wayland.go

//go:build linux && vk_wayland

package cvk

/*
#define VK_USE_PLATFORM_WAYLAND_KHR
#include <stddef.h>
#include "vkw.h"

static inline VkResult vkw_CreateWaylandSurfaceKHR(uintptr_t instance, void* pCreateInfo, void* pAllocator, void* pSurface) {
	return vkCreateWaylandSurfaceKHR((VkInstance)instance, (VkWaylandSurfaceCreateInfoKHR*)pCreateInfo, (VkAllocationCallbacks*)pAllocator, (VkSurfaceKHR*)pSurface);
}

static inline VkBool32 vkw_GetPhysicalDeviceWaylandPresentationSupportKHR(uintptr_t physicalDevice, uint32_t queueFamilyIndex, void* display) {
	return vkGetPhysicalDeviceWaylandPresentationSupportKHR((VkPhysicalDevice)physicalDevice, queueFamilyIndex, (struct wl_display*)display);
}

static const size_t vkw_wayland_offsets[] = {
	offsetof(VkWaylandSurfaceCreateInfoKHR, sType),
	offsetof(VkWaylandSurfaceCreateInfoKHR, pNext),
	offsetof(VkWaylandSurfaceCreateInfoKHR, flags),
	offsetof(VkWaylandSurfaceCreateInfoKHR, display),
	offsetof(VkWaylandSurfaceCreateInfoKHR, surface),
};

static size_t vkw_wayland_offset(int i) {
	return vkw_wayland_offsets[i];
}
*/
import "C"

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

func init() {
	registerPlatform("wayland", func(c *native.Commands) {
		c.CreateWaylandSurfaceKHR = func(instance native.Instance, pCreateInfo *native.WaylandSurfaceCreateInfoKHR, pAllocator *native.AllocationCallbacks, pSurface *native.SurfaceKHR) native.Result {
			return native.Result(C.vkw_CreateWaylandSurfaceKHR(C.uintptr_t(instance), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pSurface)))
		}
		c.GetPhysicalDeviceWaylandPresentationSupportKHR = func(physicalDevice native.PhysicalDevice, queueFamilyIndex uint32, display unsafe.Pointer) native.Bool32 {
			return native.Bool32(C.vkw_GetPhysicalDeviceWaylandPresentationSupportKHR(C.uintptr_t(physicalDevice), C.uint32_t(queueFamilyIndex), display))
		}
	}, layout{"WaylandSurfaceCreateInfoKHR", unsafe.Sizeof(native.WaylandSurfaceCreateInfoKHR{}), C.sizeof_VkWaylandSurfaceCreateInfoKHR}, []offset{
		{"WaylandSurfaceCreateInfoKHR.sType", unsafe.Offsetof(native.WaylandSurfaceCreateInfoKHR{}.SType), uintptr(C.vkw_wayland_offset(0))},
		{"WaylandSurfaceCreateInfoKHR.pNext", unsafe.Offsetof(native.WaylandSurfaceCreateInfoKHR{}.PNext), uintptr(C.vkw_wayland_offset(1))},
		{"WaylandSurfaceCreateInfoKHR.flags", unsafe.Offsetof(native.WaylandSurfaceCreateInfoKHR{}.Flags), uintptr(C.vkw_wayland_offset(2))},
		{"WaylandSurfaceCreateInfoKHR.display", unsafe.Offsetof(native.WaylandSurfaceCreateInfoKHR{}.Display), uintptr(C.vkw_wayland_offset(3))},
		{"WaylandSurfaceCreateInfoKHR.surface", unsafe.Offsetof(native.WaylandSurfaceCreateInfoKHR{}.Surface), uintptr(C.vkw_wayland_offset(4))},
	})
}
