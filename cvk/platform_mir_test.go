//go:build linux && vk_mir

package cvk

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

func resetMir(t *testing.T) {
	t.Helper()
	mir.mu.Lock()
	mir.instance, mir.create, mir.support = 0, nil, nil
	mir.mu.Unlock()
	t.Cleanup(func() {
		mir.mu.Lock()
		mir.instance, mir.create, mir.support = 0, nil, nil
		mir.mu.Unlock()
	})
}

func TestMirUnloaded(t *testing.T) {
	resetMir(t)

	var surface native.SurfaceKHR
	if r := createMirSurface(1, &native.MirSurfaceCreateInfoKHR{}, nil, &surface); r != native.Result(-7) {
		t.Errorf("CreateMirSurfaceKHR before LoadMir = %d, want ERROR_EXTENSION_NOT_PRESENT", r)
	}
	if b := mirPresentationSupport(1, 0, nil); b != 0 {
		t.Errorf("presentation support before LoadMir = %d, want VK_FALSE", b)
	}
}

func TestMirOtherInstance(t *testing.T) {
	resetMir(t)

	// A non-nil entry point resolved for instance 1 must never be called for
	// instance 2.
	var sentinel byte
	mir.mu.Lock()
	mir.instance, mir.create = 1, unsafe.Pointer(&sentinel)
	mir.mu.Unlock()

	var surface native.SurfaceKHR
	if r := createMirSurface(2, &native.MirSurfaceCreateInfoKHR{}, nil, &surface); r != native.Result(-7) {
		t.Errorf("CreateMirSurfaceKHR for another instance = %d, want ERROR_EXTENSION_NOT_PRESENT", r)
	}
	if !LoadMir(1) {
		t.Error("LoadMir for the resolved instance should be a no-op reporting true")
	}
}

func TestLoadMirConcurrent(t *testing.T) {
	resetMir(t)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			// vkGetInstanceProcAddr returns NULL for instance-level commands
			// without an instance.
			if LoadMir(0) {
				t.Error("LoadMir(NULL) resolved Mir entry points")
			}
		}()
		go func() {
			defer wg.Done()
			var surface native.SurfaceKHR
			if r := createMirSurface(0, &native.MirSurfaceCreateInfoKHR{}, nil, &surface); r != native.Result(-7) {
				t.Errorf("[%d] CreateMirSurfaceKHR = %d, want ERROR_EXTENSION_NOT_PRESENT", i, r)
			}
			mirPresentationSupport(0, 0, nil)
		}()
	}
	wg.Wait()
}
