// cvk.go

// Package cvk binds native.Commands to the system Vulkan loader through cgo.
// Every entry point is a static C trampoline that receives handles as integers
// and structs as void*, so the Go side never names a C type.
package cvk

/*
#include "vkw.h"
*/
import "C"

import (
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/NOT-REAL-GAMES/vk/native"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger routes load and verification events to l. A nil l silences them.
// The forwarding path never logs.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

func log() *zap.Logger {
	return logger.Load()
}

// platformCommands holds the loaders contributed by build-tagged platform
// files. Without a tag the matching Commands fields stay nil.
var platformCommands []func(c *native.Commands)

// Platforms returns the names of the window-system bindings compiled in.
func Platforms() []string {
	return append([]string(nil), platformNames...)
}

var (
	platformNames   []string
	platformLayouts []layout
	platformOffsets []offset
)

func registerPlatform(name string, load func(c *native.Commands), size layout, fields []offset) {
	platformNames = append(platformNames, name)
	platformCommands = append(platformCommands, load)
	platformLayouts = append(platformLayouts, size)
	platformOffsets = append(platformOffsets, fields...)
}

// ErrLayoutMismatch is wrapped by every error Verify reports.
var ErrLayoutMismatch = errors.New("cvk: native declarations do not match the C header")

// Verify compares the size and field offsets of every native struct and the
// value of every mirrored enumerant with the C header this package was
// compiled against. It returns nil when they all agree, otherwise one joined
// error per mismatch.
func Verify() error {
	var errs []error
	if got, want := native.HeaderVersion, int(C.VK_HEADER_VERSION); got != want {
		errs = append(errs, fmt.Errorf("%w: header version %d, C has %d", ErrLayoutMismatch, got, want))
	}
	errs = append(errs, compareLayouts(
		append(layouts(), platformLayouts...),
		append(offsets(), platformOffsets...),
	)...)
	for _, k := range constants() {
		if k.got != k.want {
			errs = append(errs, fmt.Errorf("%w: %s is %d, C has %d", ErrLayoutMismatch, k.name, k.got, k.want))
		}
	}
	return errors.Join(errs...)
}

func compareLayouts(sizes []layout, fields []offset) []error {
	var errs []error
	for _, l := range sizes {
		if l.go_ != l.c {
			errs = append(errs, fmt.Errorf("%w: sizeof %s is %d, C has %d", ErrLayoutMismatch, l.name, l.go_, l.c))
		}
	}
	for _, o := range fields {
		if o.go_ != o.c {
			errs = append(errs, fmt.Errorf("%w: offsetof %s is %d, C has %d", ErrLayoutMismatch, o.name, o.go_, o.c))
		}
	}
	return errs
}

// Load verifies the native declarations and returns a command table bound to
// the loader. Platform entry points are filled for the platforms selected by
// build tags.
func Load() (*native.Commands, error) {
	if err := Verify(); err != nil {
		log().Error("native layout verification failed", zap.Error(err))
		return nil, err
	}
	c := new(native.Commands)
	coreCommands(c)
	for _, load := range platformCommands {
		load(c)
	}
	log().Info("vulkan commands loaded",
		zap.Int("header_version", native.HeaderVersion),
		zap.Strings("platforms", platformNames),
	)
	return c, nil
}

// MustLoad is like Load but panics on error.
func MustLoad() *native.Commands {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}
