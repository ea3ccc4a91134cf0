// Package glfwsurface opens a GLFW window without a client API and creates a
// Vulkan surface for it.
package glfwsurface

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	vk "github.com/NOT-REAL-GAMES/vk"
)

func init() {
	// GLFW must be driven from the main thread.
	runtime.LockOSThread()
}

// ErrVulkanUnsupported is returned when the GLFW build or the loader it found
// cannot create Vulkan surfaces.
var ErrVulkanUnsupported = errors.New("glfw: vulkan not supported")

type Config struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
}

type Window struct {
	Handle *glfw.Window
}

// Open initializes GLFW and creates the window. Close undoes both.
func Open(cfg Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}
	if !glfw.VulkanSupported() {
		glfw.Terminate()
		return nil, ErrVulkanUnsupported
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	resizable := glfw.False
	if cfg.Resizable {
		resizable = glfw.True
	}
	glfw.WindowHint(glfw.Resizable, resizable)

	handle, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	return &Window{Handle: handle}, nil
}

// RequiredExtensions returns the instance extensions GLFW needs for surface
// creation followed by any extras not already present.
func (w *Window) RequiredExtensions(extra ...string) []string {
	return MergeExtensions(w.Handle.GetRequiredInstanceExtensions(), extra)
}

// CreateSurface creates a VkSurfaceKHR for the window. The caller destroys it
// with DestroySurfaceKHR before destroying the instance.
func (w *Window) CreateSurface(instance vk.Instance) (vk.SurfaceKHR, error) {
	p, err := w.Handle.CreateWindowSurface(instanceArg(instance), nil)
	if err != nil {
		return vk.NULL_HANDLE, fmt.Errorf("create window surface: %w", err)
	}
	return surfaceFromResult(p), nil
}

// instanceArg converts a dispatchable handle to the pointer kind
// glfw.CreateWindowSurface insists on. A VkInstance is an opaque pointer, so
// the handle value is the pointer value.
func instanceArg(instance vk.Instance) any {
	return (*byte)(unsafe.Pointer(uintptr(instance)))
}

// surfaceFromResult reads the handle out of glfw's result, which is the
// address of the VkSurfaceKHR it wrote rather than the handle itself.
func surfaceFromResult(p uintptr) vk.SurfaceKHR {
	if p == 0 {
		return vk.NULL_HANDLE
	}
	return vk.SurfaceKHR(*(*uint64)(unsafe.Pointer(p)))
}

// FramebufferSize reports the drawable size in pixels, which is what the
// swapchain extent has to match.
func (w *Window) FramebufferSize() (width, height uint32) {
	fw, fh := w.Handle.GetFramebufferSize()
	return uint32(max(fw, 0)), uint32(max(fh, 0))
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) Close() {
	w.Handle.Destroy()
	glfw.Terminate()
}

// MergeExtensions appends the names in extra that are not in base. Order is
// preserved and duplicates within extra are dropped.
func MergeExtensions(base, extra []string) []string {
	seen := make(map[string]bool, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, name := range list {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
