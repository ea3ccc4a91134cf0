// Command vkclear opens a window and clears its swapchain images to a slowly
// changing color for a fixed number of frames.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	vk "github.com/NOT-REAL-GAMES/vk"
	"github.com/NOT-REAL-GAMES/vk/cvk"
	"github.com/NOT-REAL-GAMES/vk/internal/config"
	"github.com/NOT-REAL-GAMES/vk/internal/device"
	"github.com/NOT-REAL-GAMES/vk/internal/instance"
	"github.com/NOT-REAL-GAMES/vk/internal/logging"
	"github.com/NOT-REAL-GAMES/vk/internal/swapchain"
	"github.com/NOT-REAL-GAMES/vk/platform/glfwsurface"
)

const colorPeriod = 240

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vkclear:", err)
		os.Exit(1)
	}
}

func run() error {
	envFile := flag.String("env", ".env", "optional .env file")
	frames := flag.Int("frames", 0, "frames to present, 0 keeps VKCLEAR_FRAMES")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	if *frames > 0 {
		cfg.Frames = *frames
	}

	log := logging.New(logging.Options{
		Level:       cfg.LogLevel,
		Development: cfg.DevMode,
		File:        cfg.LogFile,
	})
	defer log.Sync()
	cvk.SetLogger(log.Named("cvk"))

	cmds, err := cvk.Load()
	if err != nil {
		return err
	}
	e := vk.NewEnhanced(vk.NewDispatch(cmds))

	win, err := glfwsurface.Open(glfwsurface.Config{Width: cfg.Width, Height: cfg.Height, Title: "vkclear"})
	if err != nil {
		return err
	}
	defer win.Close()

	inst, err := instance.Create(e, instance.Options{
		AppName:    "vkclear",
		APIVersion: vk.MakeAPIVersion(0, cfg.APIMajor, cfg.APIMinor, 0),
		Layers:     cfg.Layers,
		Extensions: win.RequiredExtensions(cfg.Extensions...),
	}, log)
	if err != nil {
		return err
	}
	defer e.DestroyInstance(inst, nil)

	surface, err := win.CreateSurface(inst)
	if err != nil {
		return err
	}
	defer e.DestroySurfaceKHR(inst, surface, nil)

	sel, err := device.Pick(e, inst, surface)
	if err != nil {
		return err
	}
	dev, queue, err := device.Create(e, sel, log)
	if err != nil {
		return err
	}
	defer e.DestroyDevice(dev, nil)

	support, err := swapchain.QuerySupport(e, sel.Physical, surface)
	if err != nil {
		return err
	}
	width, height := win.FramebufferSize()
	sc, err := swapchain.Create(e, dev, surface, support, width, height, vk.FlagsOf(vk.IMAGE_USAGE_TRANSFER_DST_BIT))
	if err != nil {
		return err
	}
	defer sc.Destroy(e, dev)
	log.Info("swapchain created",
		zap.Stringer("format", sc.Format.Format()),
		zap.Uint32("width", sc.Extent.Width()),
		zap.Uint32("height", sc.Extent.Height()),
		zap.Int("images", len(sc.Images)),
	)

	r, err := newRenderer(e, dev, queue, sel.Family, sc, log)
	if err != nil {
		return err
	}
	defer r.destroy()
	// Deferred calls run in reverse, so this waits before anything is freed.
	defer e.DeviceWaitIdle(dev)

	return loop(win, r, cfg.Frames, log)
}

func loop(win *glfwsurface.Window, r *renderer, frames int, log *zap.Logger) error {
	for frame := 0; frame < frames && !win.ShouldClose(); frame++ {
		win.PollEvents()
		res, err := r.draw(frameColor(frame, colorPeriod))
		if err != nil {
			return err
		}
		if res == vk.SUBOPTIMAL || res == vk.OUT_OF_DATE {
			log.Info("swapchain no longer matches the surface", zap.Stringer("result", res), zap.Int("frame", frame))
			return nil
		}
	}
	log.Info("done", zap.Int("frames", frames))
	return nil
}
