package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// YAML writes r as a YAML document.
func YAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

type palette struct {
	header, key, dim, good *color.Color
}

func newPalette(colored bool) palette {
	p := palette{
		header: color.New(color.FgCyan, color.Bold),
		key:    color.New(color.FgYellow),
		dim:    color.New(color.FgHiBlack),
		good:   color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.header, p.key, p.dim, p.good} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Text writes a human-readable summary. colored forces ANSI colors on or off
// regardless of whether w is a terminal.
func Text(w io.Writer, r *Report, colored bool) error {
	p := newPalette(colored)
	tw := &errWriter{w: w}

	p.header.Fprintf(tw, "━━━ Vulkan instance %s ━━━\n", r.APIVersion)
	section(tw, p, "Layers", len(r.Layers))
	for _, l := range r.Layers {
		fmt.Fprintf(tw, "  %s ", l.Name)
		p.dim.Fprintf(tw, "(%s) %s\n", l.SpecVersion, l.Description)
	}
	section(tw, p, "Extensions", len(r.Extensions))
	for _, e := range r.Extensions {
		fmt.Fprintf(tw, "  %s ", e.Name)
		p.dim.Fprintf(tw, "v%d\n", e.SpecVersion)
	}

	for i, d := range r.Devices {
		fmt.Fprintln(tw)
		p.header.Fprintf(tw, "━━━ GPU %d: %s ━━━\n", i, d.Name)
		field(tw, p, "type", d.Type)
		field(tw, p, "api", d.APIVersion)
		field(tw, p, "vendor/device", d.VendorID+"/"+d.DeviceID)
		field(tw, p, "pipeline cache", d.PipelineCacheUUID)
		field(tw, p, "max image 2D", fmt.Sprint(d.Limits.MaxImageDimension2D))
		field(tw, p, "max push constants", fmt.Sprint(d.Limits.MaxPushConstantsSize))
		field(tw, p, "max workgroup", fmt.Sprint(d.Limits.MaxComputeWorkGroupSize))

		section(tw, p, "Queue families", len(d.QueueFamilies))
		for _, q := range d.QueueFamilies {
			fmt.Fprintf(tw, "  [%d] x%d %s\n", q.Index, q.Count, q.Flags)
		}
		section(tw, p, "Memory heaps", len(d.MemoryHeaps))
		for _, h := range d.MemoryHeaps {
			fmt.Fprintf(tw, "  [%d] %s %s\n", h.Index, formatBytes(h.Size), h.Flags)
		}
		section(tw, p, "Memory types", len(d.MemoryTypes))
		for _, t := range d.MemoryTypes {
			fmt.Fprintf(tw, "  [%d] heap %d %s\n", t.Index, t.HeapIndex, t.Flags)
		}
		if len(d.Features) > 0 {
			p.key.Fprint(tw, "  features: ")
			p.good.Fprintln(tw, strings.Join(d.Features, ", "))
		}
		section(tw, p, "Device extensions", len(d.Extensions))
		for _, e := range d.Extensions {
			fmt.Fprintf(tw, "  %s\n", e.Name)
		}
	}
	return tw.err
}

func section(w io.Writer, p palette, name string, n int) {
	p.key.Fprintf(w, "%s ", name)
	p.dim.Fprintf(w, "(%d)\n", n)
}

func field(w io.Writer, p palette, name, value string) {
	p.key.Fprintf(w, "  %-20s", name+":")
	fmt.Fprintln(w, value)
}

func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// errWriter keeps the first write error so rendering code can ignore it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
