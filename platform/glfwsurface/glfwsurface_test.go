package glfwsurface

import (
	"reflect"
	"slices"
	"testing"
	"unsafe"

	vk "github.com/NOT-REAL-GAMES/vk"
)

func TestMergeExtensions(t *testing.T) {
	tests := []struct {
		name  string
		base  []string
		extra []string
		want  []string
	}{
		{"empty", nil, nil, []string{}},
		{"base only", []string{"VK_KHR_surface", "VK_KHR_xcb_surface"}, nil, []string{"VK_KHR_surface", "VK_KHR_xcb_surface"}},
		{"extra appended", []string{"VK_KHR_surface"}, []string{"VK_EXT_debug_utils"}, []string{"VK_KHR_surface", "VK_EXT_debug_utils"}},
		{"duplicate dropped", []string{"VK_KHR_surface"}, []string{"VK_KHR_surface", "VK_EXT_debug_utils", "VK_EXT_debug_utils"}, []string{"VK_KHR_surface", "VK_EXT_debug_utils"}},
		{"blank skipped", []string{"", "VK_KHR_surface"}, []string{""}, []string{"VK_KHR_surface"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeExtensions(tt.base, tt.extra)
			if !slices.Equal(got, tt.want) {
				t.Errorf("MergeExtensions(%v, %v) = %v, want %v", tt.base, tt.extra, got, tt.want)
			}
		})
	}
}

func TestMergeExtensionsDoesNotAlias(t *testing.T) {
	base := make([]string, 1, 4)
	base[0] = "VK_KHR_surface"
	got := MergeExtensions(base, []string{"VK_KHR_wayland_surface"})
	got[0] = "changed"
	if base[0] != "VK_KHR_surface" {
		t.Errorf("base modified through result: %v", base)
	}
}

func TestInstanceArg(t *testing.T) {
	tests := []struct {
		name     string
		instance vk.Instance
	}{
		{"null", vk.NULL_HANDLE},
		{"handle", vk.Instance(0x1234)},
		{"high bits", vk.Instance(^uintptr(0) &^ 0xF)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := reflect.ValueOf(instanceArg(tt.instance))
			if v.Kind() != reflect.Ptr {
				t.Fatalf("kind = %s, want %s", v.Kind(), reflect.Ptr)
			}
			if got := v.Pointer(); got != uintptr(tt.instance) {
				t.Errorf("pointer = %#x, want %#x", got, uintptr(tt.instance))
			}
		})
	}
}

func TestSurfaceFromResult(t *testing.T) {
	tests := []struct {
		name   string
		handle uint64
	}{
		{"small", 0x1},
		{"typical", 0xdead0000beef},
		{"all bits", ^uint64(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			written := tt.handle
			got := surfaceFromResult(uintptr(unsafe.Pointer(&written)))
			if got != vk.SurfaceKHR(tt.handle) {
				t.Errorf("surfaceFromResult = %#x, want %#x", uint64(got), tt.handle)
			}
		})
	}
	if got := surfaceFromResult(0); got != vk.NULL_HANDLE {
		t.Errorf("surfaceFromResult(0) = %#x, want NULL_HANDLE", uint64(got))
	}
}
