// Package report gathers what the loader and each physical device expose and
// renders it as colored text or YAML.
package report

import (
	"fmt"

	"github.com/google/uuid"

	vk "github.com/NOT-REAL-GAMES/vk"
)

type Report struct {
	APIVersion string      `yaml:"api_version"`
	Layers     []Layer     `yaml:"layers,omitempty"`
	Extensions []Extension `yaml:"extensions,omitempty"`
	Devices    []Device    `yaml:"devices"`
}

type Layer struct {
	Name                  string `yaml:"name"`
	Description           string `yaml:"description"`
	SpecVersion           string `yaml:"spec_version"`
	ImplementationVersion uint32 `yaml:"implementation_version"`
}

type Extension struct {
	Name        string `yaml:"name"`
	SpecVersion uint32 `yaml:"spec_version"`
}

type Device struct {
	Name              string        `yaml:"name"`
	Type              string        `yaml:"type"`
	APIVersion        string        `yaml:"api_version"`
	DriverVersion     uint32        `yaml:"driver_version"`
	VendorID          string        `yaml:"vendor_id"`
	DeviceID          string        `yaml:"device_id"`
	PipelineCacheUUID string        `yaml:"pipeline_cache_uuid"`
	Limits            Limits        `yaml:"limits"`
	QueueFamilies     []QueueFamily `yaml:"queue_families"`
	MemoryHeaps       []MemoryHeap  `yaml:"memory_heaps"`
	MemoryTypes       []MemoryType  `yaml:"memory_types"`
	Features          []string      `yaml:"features,omitempty"`
	Extensions        []Extension   `yaml:"extensions,omitempty"`
}

type Limits struct {
	MaxImageDimension2D            uint32    `yaml:"max_image_dimension_2d"`
	MaxUniformBufferRange          uint32    `yaml:"max_uniform_buffer_range"`
	MaxStorageBufferRange          uint32    `yaml:"max_storage_buffer_range"`
	MaxPushConstantsSize           uint32    `yaml:"max_push_constants_size"`
	MaxMemoryAllocationCount       uint32    `yaml:"max_memory_allocation_count"`
	MaxBoundDescriptorSets         uint32    `yaml:"max_bound_descriptor_sets"`
	MaxComputeWorkGroupCount       [3]uint32 `yaml:"max_compute_work_group_count,flow"`
	MaxComputeWorkGroupSize        [3]uint32 `yaml:"max_compute_work_group_size,flow"`
	MaxComputeWorkGroupInvocations uint32    `yaml:"max_compute_work_group_invocations"`
	MaxSamplerAnisotropy           float32   `yaml:"max_sampler_anisotropy"`
	MaxViewports                   uint32    `yaml:"max_viewports"`
	TimestampPeriod                float32   `yaml:"timestamp_period"`
	NonCoherentAtomSize            uint64    `yaml:"non_coherent_atom_size"`
}

type QueueFamily struct {
	Index              int    `yaml:"index"`
	Flags              string `yaml:"flags"`
	Count              uint32 `yaml:"count"`
	TimestampValidBits uint32 `yaml:"timestamp_valid_bits"`
}

type MemoryHeap struct {
	Index int    `yaml:"index"`
	Size  uint64 `yaml:"size"`
	Flags string `yaml:"flags,omitempty"`
}

type MemoryType struct {
	Index     int    `yaml:"index"`
	HeapIndex uint32 `yaml:"heap_index"`
	Flags     string `yaml:"flags,omitempty"`
}

// Version renders a packed API version as "major.minor.patch".
func Version(v uint32) string {
	return fmt.Sprintf("%d.%d.%d", vk.APIVersionMajor(v), vk.APIVersionMinor(v), vk.APIVersionPatch(v))
}

// ok accepts SUCCESS and INCOMPLETE. INCOMPLETE only means the list grew
// between the two enumeration calls; what was returned is still valid.
func ok(r vk.Result) bool {
	return r == vk.SUCCESS || r == vk.INCOMPLETE
}

// Collect queries the loader and every physical device of inst.
func Collect(e vk.Enhanced, inst vk.Instance) (*Report, error) {
	rep := &Report{}

	version, r := e.EnumerateInstanceVersion()
	if r != vk.SUCCESS {
		return nil, fmt.Errorf("instance version: %w", r)
	}
	rep.APIVersion = Version(version)

	layers, r := e.EnumerateInstanceLayerProperties()
	if !ok(r) {
		return nil, fmt.Errorf("instance layers: %w", r)
	}
	for _, l := range layers {
		rep.Layers = append(rep.Layers, Layer{
			Name:                  l.LayerName(),
			Description:           l.Description(),
			SpecVersion:           Version(l.SpecVersion()),
			ImplementationVersion: l.ImplementationVersion(),
		})
	}

	exts, r := e.EnumerateInstanceExtensionProperties("")
	if !ok(r) {
		return nil, fmt.Errorf("instance extensions: %w", r)
	}
	rep.Extensions = extensions(exts)

	devices, r := e.EnumeratePhysicalDevices(inst)
	if !ok(r) {
		return nil, fmt.Errorf("physical devices: %w", r)
	}
	for _, pd := range devices {
		dev, err := collectDevice(e, pd)
		if err != nil {
			return nil, err
		}
		rep.Devices = append(rep.Devices, dev)
	}
	return rep, nil
}

func collectDevice(e vk.Enhanced, pd vk.PhysicalDevice) (Device, error) {
	props := e.GetPhysicalDeviceProperties(pd)
	limits := props.Limits()

	dev := Device{
		Name:              props.DeviceName(),
		Type:              props.DeviceType().String(),
		APIVersion:        Version(props.ApiVersion()),
		DriverVersion:     props.DriverVersion(),
		VendorID:          fmt.Sprintf("0x%04X", props.VendorID()),
		DeviceID:          fmt.Sprintf("0x%04X", props.DeviceID()),
		PipelineCacheUUID: uuid.UUID(props.PipelineCacheUUID()).String(),
		Limits: Limits{
			MaxImageDimension2D:            limits.MaxImageDimension2D(),
			MaxUniformBufferRange:          limits.MaxUniformBufferRange(),
			MaxStorageBufferRange:          limits.MaxStorageBufferRange(),
			MaxPushConstantsSize:           limits.MaxPushConstantsSize(),
			MaxMemoryAllocationCount:       limits.MaxMemoryAllocationCount(),
			MaxBoundDescriptorSets:         limits.MaxBoundDescriptorSets(),
			MaxComputeWorkGroupCount:       limits.MaxComputeWorkGroupCount(),
			MaxComputeWorkGroupSize:        limits.MaxComputeWorkGroupSize(),
			MaxComputeWorkGroupInvocations: limits.MaxComputeWorkGroupInvocations(),
			MaxSamplerAnisotropy:           limits.MaxSamplerAnisotropy(),
			MaxViewports:                   limits.MaxViewports(),
			TimestampPeriod:                limits.TimestampPeriod(),
			NonCoherentAtomSize:            limits.NonCoherentAtomSize(),
		},
	}

	for i, qf := range e.GetPhysicalDeviceQueueFamilyProperties(pd) {
		dev.QueueFamilies = append(dev.QueueFamilies, QueueFamily{
			Index:              i,
			Flags:              qf.QueueFlags().String(),
			Count:              qf.QueueCount(),
			TimestampValidBits: qf.TimestampValidBits(),
		})
	}

	mem := e.GetPhysicalDeviceMemoryProperties(pd)
	heaps := mem.MemoryHeaps()
	for i, n := 0, min(int(mem.MemoryHeapCount()), len(heaps)); i < n; i++ {
		dev.MemoryHeaps = append(dev.MemoryHeaps, MemoryHeap{
			Index: i,
			Size:  heaps[i].Size(),
			Flags: heaps[i].Flags().String(),
		})
	}
	types := mem.MemoryTypes()
	for i, n := 0, min(int(mem.MemoryTypeCount()), len(types)); i < n; i++ {
		dev.MemoryTypes = append(dev.MemoryTypes, MemoryType{
			Index:     i,
			HeapIndex: types[i].HeapIndex(),
			Flags:     types[i].PropertyFlags().String(),
		})
	}

	dev.Features = features(e.GetPhysicalDeviceFeatures(pd))

	exts, r := e.EnumerateDeviceExtensionProperties(pd, "")
	if !ok(r) {
		return dev, fmt.Errorf("extensions of %s: %w", dev.Name, r)
	}
	dev.Extensions = extensions(exts)
	return dev, nil
}

func extensions(props []vk.ExtensionProperties) []Extension {
	var out []Extension
	for _, p := range props {
		out = append(out, Extension{Name: p.ExtensionName(), SpecVersion: p.SpecVersion()})
	}
	return out
}

// features lists the enabled members of a commonly checked subset.
func features(f vk.PhysicalDeviceFeatures) []string {
	subset := []struct {
		name string
		on   bool
	}{
		{"geometryShader", f.GeometryShader()},
		{"tessellationShader", f.TessellationShader()},
		{"multiDrawIndirect", f.MultiDrawIndirect()},
		{"fillModeNonSolid", f.FillModeNonSolid()},
		{"wideLines", f.WideLines()},
		{"samplerAnisotropy", f.SamplerAnisotropy()},
		{"textureCompressionBC", f.TextureCompressionBC()},
		{"shaderFloat64", f.ShaderFloat64()},
		{"shaderInt64", f.ShaderInt64()},
	}
	var out []string
	for _, s := range subset {
		if s.on {
			out = append(out, s.name)
		}
	}
	return out
}
