// platform_android.go

//go:build android

package cvk

/*
#define VK_USE_PLATFORM_ANDROID_KHR
#include <stddef.h>
#include "vkw.h"

static inline VkResult vkw_CreateAndroidSurfaceKHR(uintptr_t instance, void* pCreateInfo, void* pAllocator, void* pSurface) {
	return vkCreateAndroidSurfaceKHR((VkInstance)instance, (VkAndroidSurfaceCreateInfoKHR*)pCreateInfo, (VkAllocationCallbacks*)pAllocator, (VkSurfaceKHR*)pSurface);
}

static const size_t vkw_android_offsets[] = {
	offsetof(VkAndroidSurfaceCreateInfoKHR, sType),
	offsetof(VkAndroidSurfaceCreateInfoKHR, pNext),
	offsetof(VkAndroidSurfaceCreateInfoKHR, flags),
	offsetof(VkAndroidSurfaceCreateInfoKHR, window),
};

static size_t vkw_android_offset(int i) {
	return vkw_android_offsets[i];
}
*/
import "C"

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

func init() {
	registerPlatform("android", func(c *native.Commands) {
		c.CreateAndroidSurfaceKHR = func(instance native.Instance, pCreateInfo *native.AndroidSurfaceCreateInfoKHR, pAllocator *native.AllocationCallbacks, pSurface *native.SurfaceKHR) native.Result {
			return native.Result(C.vkw_CreateAndroidSurfaceKHR(C.uintptr_t(instance), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pSurface)))
		}
	}, layout{"AndroidSurfaceCreateInfoKHR", unsafe.Sizeof(native.AndroidSurfaceCreateInfoKHR{}), C.sizeof_VkAndroidSurfaceCreateInfoKHR}, []offset{
		{"AndroidSurfaceCreateInfoKHR.sType", unsafe.Offsetof(native.AndroidSurfaceCreateInfoKHR{}.SType), uintptr(C.vkw_android_offset(0))},
		{"AndroidSurfaceCreateInfoKHR.pNext", unsafe.Offsetof(native.AndroidSurfaceCreateInfoKHR{}.PNext), uintptr(C.vkw_android_offset(1))},
		{"AndroidSurfaceCreateInfoKHR.flags", unsafe.Offsetof(native.AndroidSurfaceCreateInfoKHR{}.Flags), uintptr(C.vkw_android_offset(2))},
		{"AndroidSurfaceCreateInfoKHR.window", unsafe.Offsetof(native.AndroidSurfaceCreateInfoKHR{}.Window), uintptr(C.vkw_android_offset(3))},
	})
}
