// platform_mir.go

//go:build linux && vk_mir

package cvk

/*
#include <stddef.h>
#include "vkw.h"

// Current headers no longer declare VK_KHR_mir_surface; the declarations
// below follow the last registry revision that shipped it.
#ifndef VK_KHR_mir_surface
#define VK_KHR_mir_surface 1
typedef struct MirConnection MirConnection;
typedef struct MirSurface MirSurface;
typedef VkFlags VkMirSurfaceCreateFlagsKHR;
typedef struct VkMirSurfaceCreateInfoKHR {
	VkStructureType            sType;
	const void*                pNext;
	VkMirSurfaceCreateFlagsKHR flags;
	MirConnection*             connection;
	MirSurface*                mirSurface;
} VkMirSurfaceCreateInfoKHR;
typedef VkResult (VKAPI_PTR *PFN_vkCreateMirSurfaceKHR)(VkInstance, const VkMirSurfaceCreateInfoKHR*, const VkAllocationCallbacks*, VkSurfaceKHR*);
typedef VkBool32 (VKAPI_PTR *PFN_vkGetPhysicalDeviceMirPresentationSupportKHR)(VkPhysicalDevice, uint32_t, MirConnection*);
#endif

static void* vkw_MirProc(uintptr_t instance, int which) {
	const char* name = which == 0 ? "vkCreateMirSurfaceKHR" : "vkGetPhysicalDeviceMirPresentationSupportKHR";
	return (void*)vkGetInstanceProcAddr((VkInstance)instance, name);
}

static VkResult vkw_CreateMirSurfaceKHR(void* pfn, uintptr_t instance, void* pCreateInfo, void* pAllocator, void* pSurface) {
	return ((PFN_vkCreateMirSurfaceKHR)pfn)((VkInstance)instance, (VkMirSurfaceCreateInfoKHR*)pCreateInfo, (VkAllocationCallbacks*)pAllocator, (VkSurfaceKHR*)pSurface);
}

static VkBool32 vkw_GetPhysicalDeviceMirPresentationSupportKHR(void* pfn, uintptr_t physicalDevice, uint32_t queueFamilyIndex, void* connection) {
	return ((PFN_vkGetPhysicalDeviceMirPresentationSupportKHR)pfn)((VkPhysicalDevice)physicalDevice, queueFamilyIndex, (MirConnection*)connection);
}

static const size_t vkw_mir_offsets[] = {
	offsetof(VkMirSurfaceCreateInfoKHR, sType),
	offsetof(VkMirSurfaceCreateInfoKHR, pNext),
	offsetof(VkMirSurfaceCreateInfoKHR, flags),
	offsetof(VkMirSurfaceCreateInfoKHR, connection),
	offsetof(VkMirSurfaceCreateInfoKHR, mirSurface),
};

static size_t vkw_mir_offset(int i) {
	return vkw_mir_offsets[i];
}
*/
import "C"

import (
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// mirProcs holds the Mir entry points resolved for one instance. The loader
// does not export them, so they come from vkGetInstanceProcAddr.
type mirProcs struct {
	mu       sync.RWMutex
	instance native.Instance
	create   unsafe.Pointer
	support  unsafe.Pointer
}

var mir mirProcs

// LoadMir resolves the Mir entry points for instance and reports whether the
// driver provides them. Call it after CreateInstance and before
// CreateMirSurfaceKHR or GetPhysicalDeviceMirPresentationSupportKHR; until then
// the first returns ERROR_EXTENSION_NOT_PRESENT and the second VK_FALSE.
// Loading again for an instance that already resolved them is a no-op, and
// loading for another instance replaces the previous one.
func LoadMir(instance native.Instance) bool {
	mir.mu.Lock()
	defer mir.mu.Unlock()
	if mir.create != nil && mir.instance == instance {
		return true
	}
	mir.instance = instance
	mir.create = C.vkw_MirProc(C.uintptr_t(instance), 0)
	mir.support = C.vkw_MirProc(C.uintptr_t(instance), 1)
	ok := mir.create != nil
	log().Debug("mir surface entry points", zap.Bool("present", ok))
	return ok
}

func createMirSurface(instance native.Instance, pCreateInfo *native.MirSurfaceCreateInfoKHR, pAllocator *native.AllocationCallbacks, pSurface *native.SurfaceKHR) native.Result {
	mir.mu.RLock()
	defer mir.mu.RUnlock()
	if mir.create == nil || mir.instance != instance {
		return native.Result(C.VK_ERROR_EXTENSION_NOT_PRESENT)
	}
	return native.Result(C.vkw_CreateMirSurfaceKHR(mir.create, C.uintptr_t(instance), unsafe.Pointer(pCreateInfo), unsafe.Pointer(pAllocator), unsafe.Pointer(pSurface)))
}

func mirPresentationSupport(physicalDevice native.PhysicalDevice, queueFamilyIndex uint32, connection unsafe.Pointer) native.Bool32 {
	mir.mu.RLock()
	defer mir.mu.RUnlock()
	if mir.support == nil {
		return native.Bool32(C.VK_FALSE)
	}
	return native.Bool32(C.vkw_GetPhysicalDeviceMirPresentationSupportKHR(mir.support, C.uintptr_t(physicalDevice), C.uint32_t(queueFamilyIndex), connection))
}

func init() {
	registerPlatform("mir", func(c *native.Commands) {
		c.CreateMirSurfaceKHR = createMirSurface
		c.GetPhysicalDeviceMirPresentationSupportKHR = mirPresentationSupport
	}, layout{"MirSurfaceCreateInfoKHR", unsafe.Sizeof(native.MirSurfaceCreateInfoKHR{}), C.sizeof_VkMirSurfaceCreateInfoKHR}, []offset{
		{"MirSurfaceCreateInfoKHR.sType", unsafe.Offsetof(native.MirSurfaceCreateInfoKHR{}.SType), uintptr(C.vkw_mir_offset(0))},
		{"MirSurfaceCreateInfoKHR.pNext", unsafe.Offsetof(native.MirSurfaceCreateInfoKHR{}.PNext), uintptr(C.vkw_mir_offset(1))},
		{"MirSurfaceCreateInfoKHR.flags", unsafe.Offsetof(native.MirSurfaceCreateInfoKHR{}.Flags), uintptr(C.vkw_mir_offset(2))},
		{"MirSurfaceCreateInfoKHR.connection", unsafe.Offsetof(native.MirSurfaceCreateInfoKHR{}.Connection), uintptr(C.vkw_mir_offset(3))},
		{"MirSurfaceCreateInfoKHR.mirSurface", unsafe.Offsetof(native.MirSurfaceCreateInfoKHR{}.MirSurface), uintptr(C.vkw_mir_offset(4))},
	})
}
