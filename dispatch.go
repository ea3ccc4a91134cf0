// dispatch.go

// Package vk is a typed layer over the Vulkan C API. Structs share the memory
// layout of their C counterparts and add getters and chainable setters; flag
// masks are typed per bit group; every entry point is a method on Dispatch
// that converts its arguments and forwards them unchanged.
package vk

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// Dispatch forwards calls to a native command table. It adds no validation,
// logging or retries: each method converts the typed arguments to their
// native form, calls the entry point once and returns its result.
type Dispatch struct {
	cmds *native.Commands
}

// NewDispatch wraps cmds. Calling an entry point whose field is nil panics,
// the same way calling a NULL function pointer would crash.
func NewDispatch(cmds *native.Commands) *Dispatch {
	return &Dispatch{cmds: cmds}
}

// Commands returns the underlying table.
func (d *Dispatch) Commands() *native.Commands {
	return d.cmds
}

func bool32(b bool) native.Bool32 {
	if b {
		return native.Bool32(TRUE)
	}
	return native.Bool32(FALSE)
}

// cstring reads a NUL-terminated fixed-size char array.
func cstring(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// GoString copies a NUL-terminated C string. A nil pointer yields "".
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
