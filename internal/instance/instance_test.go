package instance

import (
	"errors"
	"slices"
	"testing"
	"unsafe"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	vk "github.com/NOT-REAL-GAMES/vk"
	"github.com/NOT-REAL-GAMES/vk/native"
)

func fill[T any](count *uint32, out *T, src []T) native.Result {
	if out == nil {
		*count = uint32(len(src))
		return native.Result(vk.SUCCESS)
	}
	*count = uint32(copy(unsafe.Slice(out, *count), src))
	return native.Result(vk.SUCCESS)
}

func name256(s string) (b [256]byte) {
	copy(b[:], s)
	return b
}

func names(arr **byte, n uint32) []string {
	var out []string
	for _, p := range unsafe.Slice(arr, n) {
		out = append(out, vk.GoString(p))
	}
	return out
}

type captured struct {
	appName    string
	engineName string
	apiVersion uint32
	layers     []string
	extensions []string
}

// fakeLoader offers one validation layer that brings VK_EXT_debug_utils, and
// VK_KHR_surface from the loader itself.
func fakeLoader(got *captured) *native.Commands {
	return &native.Commands{
		EnumerateInstanceLayerProperties: func(n *uint32, p *native.LayerProperties) native.Result {
			return fill(n, p, []native.LayerProperties{{LayerName: name256("VK_LAYER_KHRONOS_validation")}})
		},
		EnumerateInstanceExtensionProperties: func(layer *byte, n *uint32, p *native.ExtensionProperties) native.Result {
			switch vk.GoString(layer) {
			case "":
				return fill(n, p, []native.ExtensionProperties{{ExtensionName: name256("VK_KHR_surface")}})
			case "VK_LAYER_KHRONOS_validation":
				return fill(n, p, []native.ExtensionProperties{{ExtensionName: name256("VK_EXT_debug_utils")}})
			}
			return native.Result(vk.LAYER_NOT_PRESENT)
		},
		CreateInstance: func(info *native.InstanceCreateInfo, _ *native.AllocationCallbacks, inst *native.Instance) native.Result {
			got.appName = vk.GoString(info.PApplicationInfo.PApplicationName)
			got.engineName = vk.GoString(info.PApplicationInfo.PEngineName)
			got.apiVersion = info.PApplicationInfo.ApiVersion
			got.layers = names(info.PpEnabledLayerNames, info.EnabledLayerCount)
			got.extensions = names(info.PpEnabledExtensionNames, info.EnabledExtensionCount)
			*inst = 0xABC
			return native.Result(vk.SUCCESS)
		},
	}
}

func TestCheck(t *testing.T) {
	e := vk.NewEnhanced(vk.NewDispatch(fakeLoader(new(captured))))
	tests := []struct {
		name    string
		opts    Options
		wantErr []error
	}{
		{"nothing requested", Options{}, nil},
		{"loader extension", Options{Extensions: []string{"VK_KHR_surface"}}, nil},
		{"layer extension", Options{
			Layers:     []string{"VK_LAYER_KHRONOS_validation"},
			Extensions: []string{"VK_KHR_surface", "VK_EXT_debug_utils"},
		}, nil},
		{"layer extension without layer", Options{Extensions: []string{"VK_EXT_debug_utils"}}, []error{ErrMissingExtension}},
		{"missing layer", Options{Layers: []string{"VK_LAYER_nope"}}, []error{ErrMissingLayer}},
		{"both missing", Options{
			Layers:     []string{"VK_LAYER_nope"},
			Extensions: []string{"VK_KHR_nope"},
		}, []error{ErrMissingLayer, ErrMissingExtension}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(e, tt.opts)
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Fatalf("Check() = %v, want nil", err)
				}
				return
			}
			for _, want := range tt.wantErr {
				if !errors.Is(err, want) {
					t.Errorf("Check() = %v, want %v in chain", err, want)
				}
			}
		})
	}
}

func TestCreate(t *testing.T) {
	var got captured
	e := vk.NewEnhanced(vk.NewDispatch(fakeLoader(&got)))
	core, logs := observer.New(zap.InfoLevel)

	opts := Options{
		AppName:    "vkinfo",
		APIVersion: vk.API_VERSION_1_3,
		Layers:     []string{"VK_LAYER_KHRONOS_validation"},
		Extensions: []string{"VK_KHR_surface", "VK_EXT_debug_utils"},
	}
	inst, err := Create(e, opts, zap.New(core))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if inst != 0xABC {
		t.Errorf("instance = %#x, want 0xabc", inst)
	}
	if got.appName != "vkinfo" || got.engineName != engineName {
		t.Errorf("names = %q/%q, want vkinfo/%s", got.appName, got.engineName, engineName)
	}
	if got.apiVersion != vk.API_VERSION_1_3 {
		t.Errorf("api version = %d, want %d", got.apiVersion, vk.API_VERSION_1_3)
	}
	if !slices.Equal(got.layers, opts.Layers) {
		t.Errorf("layers = %v, want %v", got.layers, opts.Layers)
	}
	if !slices.Equal(got.extensions, opts.Extensions) {
		t.Errorf("extensions = %v, want %v", got.extensions, opts.Extensions)
	}

	entries := logs.FilterMessage("instance created").All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	if v := entries[0].ContextMap()["api_version"]; v != "1.3" {
		t.Errorf("logged api_version = %v, want 1.3", v)
	}
}

func TestCreateFailure(t *testing.T) {
	cmds := fakeLoader(new(captured))
	cmds.CreateInstance = func(*native.InstanceCreateInfo, *native.AllocationCallbacks, *native.Instance) native.Result {
		return native.Result(vk.INCOMPATIBLE_DRIVER)
	}
	e := vk.NewEnhanced(vk.NewDispatch(cmds))

	inst, err := Create(e, Options{AppName: "x", APIVersion: vk.API_VERSION_1_0}, nil)
	if !errors.Is(err, vk.INCOMPATIBLE_DRIVER) {
		t.Errorf("Create() error = %v, want INCOMPATIBLE_DRIVER", err)
	}
	if inst != vk.NULL_HANDLE {
		t.Errorf("instance = %#x, want NULL_HANDLE", inst)
	}
}

func TestCreateChecksFirst(t *testing.T) {
	called := false
	cmds := fakeLoader(new(captured))
	cmds.CreateInstance = func(*native.InstanceCreateInfo, *native.AllocationCallbacks, *native.Instance) native.Result {
		called = true
		return native.Result(vk.SUCCESS)
	}
	e := vk.NewEnhanced(vk.NewDispatch(cmds))

	if _, err := Create(e, Options{Layers: []string{"VK_LAYER_nope"}}, nil); !errors.Is(err, ErrMissingLayer) {
		t.Errorf("Create() error = %v, want ErrMissingLayer", err)
	}
	if called {
		t.Error("CreateInstance called despite missing layer")
	}
}
