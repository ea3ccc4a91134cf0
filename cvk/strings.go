// strings.go
package cvk

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// CString copies s into C memory. The result may be stored in any struct
// field handed to the driver without pinning. Release it with Free.
func CString(s string) *byte {
	return (*byte)(unsafe.Pointer(C.CString(s)))
}

// Free releases a string from CString. Free(nil) is a no-op.
func Free(p *byte) {
	if p != nil {
		C.free(unsafe.Pointer(p))
	}
}

// CStringArray copies names into a C array of C strings, suitable for
// ppEnabledLayerNames and ppEnabledExtensionNames. An empty list yields nil.
// Release it with FreeArray and the same length.
func CStringArray(names []string) **byte {
	if len(names) == 0 {
		return nil
	}
	ptrSize := unsafe.Sizeof(uintptr(0))
	arr := (**byte)(C.malloc(C.size_t(uintptr(len(names)) * ptrSize)))
	elems := unsafe.Slice(arr, len(names))
	for i, name := range names {
		elems[i] = CString(name)
	}
	return arr
}

// FreeArray releases an array from CStringArray along with its strings.
func FreeArray(arr **byte, n int) {
	if arr == nil {
		return
	}
	for _, p := range unsafe.Slice(arr, n) {
		Free(p)
	}
	C.free(unsafe.Pointer(arr))
}
