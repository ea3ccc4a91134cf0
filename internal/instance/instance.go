// Package instance creates the VkInstance used by the command-line tools.
package instance

import (
	"errors"
	"fmt"
	"runtime"
	"slices"

	"go.uber.org/zap"

	vk "github.com/NOT-REAL-GAMES/vk"
	"github.com/NOT-REAL-GAMES/vk/cvk"
)

const engineName = "vk"

var (
	ErrMissingLayer     = errors.New("instance layer not available")
	ErrMissingExtension = errors.New("instance extension not available")
)

type Options struct {
	AppName    string
	APIVersion uint32
	Layers     []string
	Extensions []string
}

// Check reports every requested layer and extension the loader does not
// offer. Extensions provided by a requested layer count as available.
func Check(e vk.Enhanced, opts Options) error {
	layers, r := e.EnumerateInstanceLayerProperties()
	if r.IsError() {
		return fmt.Errorf("enumerate layers: %w", r)
	}
	var errs []error
	for _, name := range opts.Layers {
		if !slices.ContainsFunc(layers, func(p vk.LayerProperties) bool { return p.LayerName() == name }) {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingLayer, name))
		}
	}

	available := map[string]bool{}
	for _, layer := range append([]string{""}, opts.Layers...) {
		exts, r := e.EnumerateInstanceExtensionProperties(layer)
		if r.IsError() {
			// A missing layer was already reported above.
			continue
		}
		for _, ext := range exts {
			available[ext.ExtensionName()] = true
		}
	}
	for _, name := range opts.Extensions {
		if !available[name] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingExtension, name))
		}
	}
	return errors.Join(errs...)
}

// Create checks availability and creates the instance. The caller destroys it
// with DestroyInstance.
func Create(e vk.Enhanced, opts Options, log *zap.Logger) (vk.Instance, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := Check(e, opts); err != nil {
		return vk.NULL_HANDLE, err
	}

	appName := cvk.CString(opts.AppName)
	defer cvk.Free(appName)
	engine := cvk.CString(engineName)
	defer cvk.Free(engine)
	layers := cvk.CStringArray(opts.Layers)
	defer cvk.FreeArray(layers, len(opts.Layers))
	exts := cvk.CStringArray(opts.Extensions)
	defer cvk.FreeArray(exts, len(opts.Extensions))

	app := vk.MakeApplicationInfo(appName, vk.MakeAPIVersion(0, 1, 0, 0), engine, vk.MakeAPIVersion(0, 1, 0, 0), opts.APIVersion)

	// The create info reaches the driver with a pointer to app in it.
	var pinner runtime.Pinner
	defer pinner.Unpin()
	pinner.Pin(&app)

	info := vk.MakeInstanceCreateInfo(0, &app,
		uint32(len(opts.Layers)), layers,
		uint32(len(opts.Extensions)), exts,
	)
	inst, r := e.CreateInstance(&info, nil)
	if r != vk.SUCCESS {
		return vk.NULL_HANDLE, fmt.Errorf("create instance: %w", r)
	}

	log.Info("instance created",
		zap.String("app", opts.AppName),
		zap.String("api_version", fmt.Sprintf("%d.%d", vk.APIVersionMajor(opts.APIVersion), vk.APIVersionMinor(opts.APIVersion))),
		zap.Strings("layers", opts.Layers),
		zap.Strings("extensions", opts.Extensions),
	)
	return inst, nil
}
