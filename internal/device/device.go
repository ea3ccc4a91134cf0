// Package device picks a physical device that can present to a surface and
// creates a logical device with one graphics queue on it.
package device

import (
	"errors"
	"fmt"
	"runtime"
	"slices"

	"go.uber.org/zap"

	vk "github.com/NOT-REAL-GAMES/vk"
	"github.com/NOT-REAL-GAMES/vk/cvk"
)

// SwapchainExtension is always enabled on the created device.
const SwapchainExtension = "VK_KHR_swapchain"

var ErrNoSuitableDevice = errors.New("no device can present to the surface")

type Selection struct {
	Physical vk.PhysicalDevice
	Family   uint32
	Name     string
	Type     vk.PhysicalDeviceType
}

// Pick returns the best physical device with a queue family that supports
// both graphics and presentation to surface. Discrete GPUs win over the rest;
// among equals the first enumerated device is kept.
func Pick(e vk.Enhanced, instance vk.Instance, surface vk.SurfaceKHR) (Selection, error) {
	devices, r := e.EnumeratePhysicalDevices(instance)
	if r.IsError() {
		return Selection{}, fmt.Errorf("enumerate physical devices: %w", r)
	}

	best, bestScore := Selection{}, -1
	for _, pd := range devices {
		family, ok, err := presentFamily(e, pd, surface)
		if err != nil {
			return Selection{}, err
		}
		if !ok || !hasExtension(e, pd, SwapchainExtension) {
			continue
		}
		props := e.GetPhysicalDeviceProperties(pd)
		if s := score(props.DeviceType()); s > bestScore {
			best = Selection{Physical: pd, Family: family, Name: props.DeviceName(), Type: props.DeviceType()}
			bestScore = s
		}
	}
	if bestScore < 0 {
		return Selection{}, ErrNoSuitableDevice
	}
	return best, nil
}

func score(t vk.PhysicalDeviceType) int {
	switch t {
	case vk.PHYSICAL_DEVICE_TYPE_DISCRETE_GPU:
		return 3
	case vk.PHYSICAL_DEVICE_TYPE_INTEGRATED_GPU:
		return 2
	case vk.PHYSICAL_DEVICE_TYPE_VIRTUAL_GPU:
		return 1
	default:
		return 0
	}
}

func presentFamily(e vk.Enhanced, pd vk.PhysicalDevice, surface vk.SurfaceKHR) (uint32, bool, error) {
	for i, f := range e.GetPhysicalDeviceQueueFamilyProperties(pd) {
		if f.QueueCount() == 0 || !f.QueueFlags().Has(vk.QUEUE_GRAPHICS_BIT) {
			continue
		}
		supported, r := e.GetPhysicalDeviceSurfaceSupportKHR(pd, uint32(i), surface)
		if r != vk.SUCCESS {
			return 0, false, fmt.Errorf("surface support: %w", r)
		}
		if supported {
			return uint32(i), true, nil
		}
	}
	return 0, false, nil
}

func hasExtension(e vk.Enhanced, pd vk.PhysicalDevice, name string) bool {
	exts, r := e.EnumerateDeviceExtensionProperties(pd, "")
	if r.IsError() {
		return false
	}
	return slices.ContainsFunc(exts, func(p vk.ExtensionProperties) bool { return p.ExtensionName() == name })
}

// Create makes a logical device with a single queue from sel.Family and the
// swapchain extension enabled.
func Create(e vk.Enhanced, sel Selection, log *zap.Logger) (vk.Device, vk.Queue, error) {
	if log == nil {
		log = zap.NewNop()
	}

	priority := new(float32)
	*priority = 1
	queueInfo := vk.MakeDeviceQueueCreateInfo(0, sel.Family, 1, priority)

	exts := cvk.CStringArray([]string{SwapchainExtension})
	defer cvk.FreeArray(exts, 1)

	var pinner runtime.Pinner
	defer pinner.Unpin()
	pinner.Pin(priority)
	pinner.Pin(&queueInfo)

	info := vk.MakeDeviceCreateInfo(0, 1, &queueInfo, 0, nil, 1, exts, nil)
	dev, r := e.CreateDevice(sel.Physical, &info, nil)
	if r != vk.SUCCESS {
		return vk.NULL_HANDLE, vk.NULL_HANDLE, fmt.Errorf("create device: %w", r)
	}
	log.Info("device created",
		zap.String("name", sel.Name),
		zap.Stringer("type", sel.Type),
		zap.Uint32("queue_family", sel.Family),
	)
	return dev, e.GetDeviceQueue(dev, sel.Family, 0), nil
}
