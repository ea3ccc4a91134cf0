// Command vkinfo prints the Vulkan layers, extensions and physical devices
// visible to the loader.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	vk "github.com/NOT-REAL-GAMES/vk"
	"github.com/NOT-REAL-GAMES/vk/cvk"
	"github.com/NOT-REAL-GAMES/vk/internal/config"
	"github.com/NOT-REAL-GAMES/vk/internal/instance"
	"github.com/NOT-REAL-GAMES/vk/internal/logging"
	"github.com/NOT-REAL-GAMES/vk/internal/report"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vkinfo:", err)
		os.Exit(1)
	}
}

func run() error {
	envFile := flag.String("env", ".env", "optional .env file")
	format := flag.String("format", "", "output format: text or yaml (overrides VKINFO_FORMAT)")
	layers := flag.String("layers", "", "comma-separated instance layers to enable")
	exts := flag.String("ext", "", "comma-separated instance extensions to enable")
	noColor := flag.Bool("no-color", false, "disable colored text output")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	if *format != "" {
		if cfg.Format, err = config.ParseFormat(*format); err != nil {
			return err
		}
	}
	if *layers != "" {
		cfg.Layers = splitList(*layers)
	}
	if *exts != "" {
		cfg.Extensions = splitList(*exts)
	}
	if *noColor {
		cfg.NoColor = true
	}
	if *verbose {
		cfg.LogLevel = "debug"
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

	inst, err := instance.Create(e, instance.Options{
		AppName:    cfg.AppName,
		APIVersion: vk.MakeAPIVersion(0, cfg.APIMajor, cfg.APIMinor, 0),
		Layers:     cfg.Layers,
		Extensions: cfg.Extensions,
	}, log)
	if err != nil {
		return err
	}
	defer e.DestroyInstance(inst, nil)

	rep, err := report.Collect(e, inst)
	if err != nil {
		return err
	}
	log.Debug("report collected", zap.Int("devices", len(rep.Devices)))

	switch cfg.Format {
	case config.FormatYAML:
		return report.YAML(os.Stdout, rep)
	default:
		return report.Text(os.Stdout, rep, !cfg.NoColor)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
