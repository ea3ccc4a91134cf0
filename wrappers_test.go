package vk

import (
	"testing"
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

func TestWrapperLayoutIdentity(t *testing.T) {
	tests := []struct {
		name    string
		wrapper uintptr
		native  uintptr
	}{
		{"Offset2D", unsafe.Sizeof(Offset2D{}), unsafe.Sizeof(native.Offset2D{})},
		{"Offset3D", unsafe.Sizeof(Offset3D{}), unsafe.Sizeof(native.Offset3D{})},
		{"Extent2D", unsafe.Sizeof(Extent2D{}), unsafe.Sizeof(native.Extent2D{})},
		{"Extent3D", unsafe.Sizeof(Extent3D{}), unsafe.Sizeof(native.Extent3D{})},
		{"Rect2D", unsafe.Sizeof(Rect2D{}), unsafe.Sizeof(native.Rect2D{})},
		{"Viewport", unsafe.Sizeof(Viewport{}), unsafe.Sizeof(native.Viewport{})},
		{"ApplicationInfo", unsafe.Sizeof(ApplicationInfo{}), unsafe.Sizeof(native.ApplicationInfo{})},
		{"InstanceCreateInfo", unsafe.Sizeof(InstanceCreateInfo{}), unsafe.Sizeof(native.InstanceCreateInfo{})},
		{"AllocationCallbacks", unsafe.Sizeof(AllocationCallbacks{}), unsafe.Sizeof(native.AllocationCallbacks{})},
		{"LayerProperties", unsafe.Sizeof(LayerProperties{}), unsafe.Sizeof(native.LayerProperties{})},
		{"ExtensionProperties", unsafe.Sizeof(ExtensionProperties{}), unsafe.Sizeof(native.ExtensionProperties{})},
		{"PhysicalDeviceLimits", unsafe.Sizeof(PhysicalDeviceLimits{}), unsafe.Sizeof(native.PhysicalDeviceLimits{})},
		{"PhysicalDeviceSparseProperties", unsafe.Sizeof(PhysicalDeviceSparseProperties{}), unsafe.Sizeof(native.PhysicalDeviceSparseProperties{})},
		{"PhysicalDeviceProperties", unsafe.Sizeof(PhysicalDeviceProperties{}), unsafe.Sizeof(native.PhysicalDeviceProperties{})},
		{"PhysicalDeviceFeatures", unsafe.Sizeof(PhysicalDeviceFeatures{}), unsafe.Sizeof(native.PhysicalDeviceFeatures{})},
		{"QueueFamilyProperties", unsafe.Sizeof(QueueFamilyProperties{}), unsafe.Sizeof(native.QueueFamilyProperties{})},
		{"MemoryType", unsafe.Sizeof(MemoryType{}), unsafe.Sizeof(native.MemoryType{})},
		{"MemoryHeap", unsafe.Sizeof(MemoryHeap{}), unsafe.Sizeof(native.MemoryHeap{})},
		{"PhysicalDeviceMemoryProperties", unsafe.Sizeof(PhysicalDeviceMemoryProperties{}), unsafe.Sizeof(native.PhysicalDeviceMemoryProperties{})},
		{"FormatProperties", unsafe.Sizeof(FormatProperties{}), unsafe.Sizeof(native.FormatProperties{})},
		{"DeviceQueueCreateInfo", unsafe.Sizeof(DeviceQueueCreateInfo{}), unsafe.Sizeof(native.DeviceQueueCreateInfo{})},
		{"DeviceCreateInfo", unsafe.Sizeof(DeviceCreateInfo{}), unsafe.Sizeof(native.DeviceCreateInfo{})},
		{"SubmitInfo", unsafe.Sizeof(SubmitInfo{}), unsafe.Sizeof(native.SubmitInfo{})},
		{"FenceCreateInfo", unsafe.Sizeof(FenceCreateInfo{}), unsafe.Sizeof(native.FenceCreateInfo{})},
		{"SemaphoreCreateInfo", unsafe.Sizeof(SemaphoreCreateInfo{}), unsafe.Sizeof(native.SemaphoreCreateInfo{})},
		{"EventCreateInfo", unsafe.Sizeof(EventCreateInfo{}), unsafe.Sizeof(native.EventCreateInfo{})},
		{"MemoryAllocateInfo", unsafe.Sizeof(MemoryAllocateInfo{}), unsafe.Sizeof(native.MemoryAllocateInfo{})},
		{"MappedMemoryRange", unsafe.Sizeof(MappedMemoryRange{}), unsafe.Sizeof(native.MappedMemoryRange{})},
		{"MemoryRequirements", unsafe.Sizeof(MemoryRequirements{}), unsafe.Sizeof(native.MemoryRequirements{})},
		{"BufferCreateInfo", unsafe.Sizeof(BufferCreateInfo{}), unsafe.Sizeof(native.BufferCreateInfo{})},
		{"ImageCreateInfo", unsafe.Sizeof(ImageCreateInfo{}), unsafe.Sizeof(native.ImageCreateInfo{})},
		{"ComponentMapping", unsafe.Sizeof(ComponentMapping{}), unsafe.Sizeof(native.ComponentMapping{})},
		{"ImageSubresourceRange", unsafe.Sizeof(ImageSubresourceRange{}), unsafe.Sizeof(native.ImageSubresourceRange{})},
		{"ImageSubresourceLayers", unsafe.Sizeof(ImageSubresourceLayers{}), unsafe.Sizeof(native.ImageSubresourceLayers{})},
		{"ImageViewCreateInfo", unsafe.Sizeof(ImageViewCreateInfo{}), unsafe.Sizeof(native.ImageViewCreateInfo{})},
		{"ShaderModuleCreateInfo", unsafe.Sizeof(ShaderModuleCreateInfo{}), unsafe.Sizeof(native.ShaderModuleCreateInfo{})},
		{"CommandPoolCreateInfo", unsafe.Sizeof(CommandPoolCreateInfo{}), unsafe.Sizeof(native.CommandPoolCreateInfo{})},
		{"CommandBufferAllocateInfo", unsafe.Sizeof(CommandBufferAllocateInfo{}), unsafe.Sizeof(native.CommandBufferAllocateInfo{})},
		{"CommandBufferInheritanceInfo", unsafe.Sizeof(CommandBufferInheritanceInfo{}), unsafe.Sizeof(native.CommandBufferInheritanceInfo{})},
		{"CommandBufferBeginInfo", unsafe.Sizeof(CommandBufferBeginInfo{}), unsafe.Sizeof(native.CommandBufferBeginInfo{})},
		{"BufferCopy", unsafe.Sizeof(BufferCopy{}), unsafe.Sizeof(native.BufferCopy{})},
		{"BufferImageCopy", unsafe.Sizeof(BufferImageCopy{}), unsafe.Sizeof(native.BufferImageCopy{})},
		{"MemoryBarrier", unsafe.Sizeof(MemoryBarrier{}), unsafe.Sizeof(native.MemoryBarrier{})},
		{"BufferMemoryBarrier", unsafe.Sizeof(BufferMemoryBarrier{}), unsafe.Sizeof(native.BufferMemoryBarrier{})},
		{"ImageMemoryBarrier", unsafe.Sizeof(ImageMemoryBarrier{}), unsafe.Sizeof(native.ImageMemoryBarrier{})},
		{"AttachmentDescription", unsafe.Sizeof(AttachmentDescription{}), unsafe.Sizeof(native.AttachmentDescription{})},
		{"AttachmentReference", unsafe.Sizeof(AttachmentReference{}), unsafe.Sizeof(native.AttachmentReference{})},
		{"SubpassDescription", unsafe.Sizeof(SubpassDescription{}), unsafe.Sizeof(native.SubpassDescription{})},
		{"SubpassDependency", unsafe.Sizeof(SubpassDependency{}), unsafe.Sizeof(native.SubpassDependency{})},
		{"RenderPassCreateInfo", unsafe.Sizeof(RenderPassCreateInfo{}), unsafe.Sizeof(native.RenderPassCreateInfo{})},
		{"FramebufferCreateInfo", unsafe.Sizeof(FramebufferCreateInfo{}), unsafe.Sizeof(native.FramebufferCreateInfo{})},
		{"RenderPassBeginInfo", unsafe.Sizeof(RenderPassBeginInfo{}), unsafe.Sizeof(native.RenderPassBeginInfo{})},
		{"DescriptorSetLayoutBinding", unsafe.Sizeof(DescriptorSetLayoutBinding{}), unsafe.Sizeof(native.DescriptorSetLayoutBinding{})},
		{"DescriptorSetLayoutCreateInfo", unsafe.Sizeof(DescriptorSetLayoutCreateInfo{}), unsafe.Sizeof(native.DescriptorSetLayoutCreateInfo{})},
		{"DescriptorPoolSize", unsafe.Sizeof(DescriptorPoolSize{}), unsafe.Sizeof(native.DescriptorPoolSize{})},
		{"DescriptorPoolCreateInfo", unsafe.Sizeof(DescriptorPoolCreateInfo{}), unsafe.Sizeof(native.DescriptorPoolCreateInfo{})},
		{"DescriptorSetAllocateInfo", unsafe.Sizeof(DescriptorSetAllocateInfo{}), unsafe.Sizeof(native.DescriptorSetAllocateInfo{})},
		{"DescriptorBufferInfo", unsafe.Sizeof(DescriptorBufferInfo{}), unsafe.Sizeof(native.DescriptorBufferInfo{})},
		{"DescriptorImageInfo", unsafe.Sizeof(DescriptorImageInfo{}), unsafe.Sizeof(native.DescriptorImageInfo{})},
		{"WriteDescriptorSet", unsafe.Sizeof(WriteDescriptorSet{}), unsafe.Sizeof(native.WriteDescriptorSet{})},
		{"PushConstantRange", unsafe.Sizeof(PushConstantRange{}), unsafe.Sizeof(native.PushConstantRange{})},
		{"PipelineLayoutCreateInfo", unsafe.Sizeof(PipelineLayoutCreateInfo{}), unsafe.Sizeof(native.PipelineLayoutCreateInfo{})},
		{"SpecializationMapEntry", unsafe.Sizeof(SpecializationMapEntry{}), unsafe.Sizeof(native.SpecializationMapEntry{})},
		{"SpecializationInfo", unsafe.Sizeof(SpecializationInfo{}), unsafe.Sizeof(native.SpecializationInfo{})},
		{"PipelineShaderStageCreateInfo", unsafe.Sizeof(PipelineShaderStageCreateInfo{}), unsafe.Sizeof(native.PipelineShaderStageCreateInfo{})},
		{"ComputePipelineCreateInfo", unsafe.Sizeof(ComputePipelineCreateInfo{}), unsafe.Sizeof(native.ComputePipelineCreateInfo{})},
		{"VertexInputBindingDescription", unsafe.Sizeof(VertexInputBindingDescription{}), unsafe.Sizeof(native.VertexInputBindingDescription{})},
		{"VertexInputAttributeDescription", unsafe.Sizeof(VertexInputAttributeDescription{}), unsafe.Sizeof(native.VertexInputAttributeDescription{})},
		{"PipelineVertexInputStateCreateInfo", unsafe.Sizeof(PipelineVertexInputStateCreateInfo{}), unsafe.Sizeof(native.PipelineVertexInputStateCreateInfo{})},
		{"PipelineInputAssemblyStateCreateInfo", unsafe.Sizeof(PipelineInputAssemblyStateCreateInfo{}), unsafe.Sizeof(native.PipelineInputAssemblyStateCreateInfo{})},
		{"PipelineTessellationStateCreateInfo", unsafe.Sizeof(PipelineTessellationStateCreateInfo{}), unsafe.Sizeof(native.PipelineTessellationStateCreateInfo{})},
		{"PipelineViewportStateCreateInfo", unsafe.Sizeof(PipelineViewportStateCreateInfo{}), unsafe.Sizeof(native.PipelineViewportStateCreateInfo{})},
		{"PipelineRasterizationStateCreateInfo", unsafe.Sizeof(PipelineRasterizationStateCreateInfo{}), unsafe.Sizeof(native.PipelineRasterizationStateCreateInfo{})},
		{"PipelineMultisampleStateCreateInfo", unsafe.Sizeof(PipelineMultisampleStateCreateInfo{}), unsafe.Sizeof(native.PipelineMultisampleStateCreateInfo{})},
		{"StencilOpState", unsafe.Sizeof(StencilOpState{}), unsafe.Sizeof(native.StencilOpState{})},
		{"PipelineDepthStencilStateCreateInfo", unsafe.Sizeof(PipelineDepthStencilStateCreateInfo{}), unsafe.Sizeof(native.PipelineDepthStencilStateCreateInfo{})},
		{"PipelineColorBlendAttachmentState", unsafe.Sizeof(PipelineColorBlendAttachmentState{}), unsafe.Sizeof(native.PipelineColorBlendAttachmentState{})},
		{"PipelineColorBlendStateCreateInfo", unsafe.Sizeof(PipelineColorBlendStateCreateInfo{}), unsafe.Sizeof(native.PipelineColorBlendStateCreateInfo{})},
		{"PipelineDynamicStateCreateInfo", unsafe.Sizeof(PipelineDynamicStateCreateInfo{}), unsafe.Sizeof(native.PipelineDynamicStateCreateInfo{})},
		{"GraphicsPipelineCreateInfo", unsafe.Sizeof(GraphicsPipelineCreateInfo{}), unsafe.Sizeof(native.GraphicsPipelineCreateInfo{})},
		{"PipelineRenderingCreateInfo", unsafe.Sizeof(PipelineRenderingCreateInfo{}), unsafe.Sizeof(native.PipelineRenderingCreateInfo{})},
		{"SamplerCreateInfo", unsafe.Sizeof(SamplerCreateInfo{}), unsafe.Sizeof(native.SamplerCreateInfo{})},
		{"SparseMemoryBind", unsafe.Sizeof(SparseMemoryBind{}), unsafe.Sizeof(native.SparseMemoryBind{})},
		{"SparseBufferMemoryBindInfo", unsafe.Sizeof(SparseBufferMemoryBindInfo{}), unsafe.Sizeof(native.SparseBufferMemoryBindInfo{})},
		{"SparseImageOpaqueMemoryBindInfo", unsafe.Sizeof(SparseImageOpaqueMemoryBindInfo{}), unsafe.Sizeof(native.SparseImageOpaqueMemoryBindInfo{})},
		{"ImageSubresource", unsafe.Sizeof(ImageSubresource{}), unsafe.Sizeof(native.ImageSubresource{})},
		{"SparseImageMemoryBind", unsafe.Sizeof(SparseImageMemoryBind{}), unsafe.Sizeof(native.SparseImageMemoryBind{})},
		{"SparseImageMemoryBindInfo", unsafe.Sizeof(SparseImageMemoryBindInfo{}), unsafe.Sizeof(native.SparseImageMemoryBindInfo{})},
		{"BindSparseInfo", unsafe.Sizeof(BindSparseInfo{}), unsafe.Sizeof(native.BindSparseInfo{})},
		{"SparseImageFormatProperties", unsafe.Sizeof(SparseImageFormatProperties{}), unsafe.Sizeof(native.SparseImageFormatProperties{})},
		{"SparseImageMemoryRequirements", unsafe.Sizeof(SparseImageMemoryRequirements{}), unsafe.Sizeof(native.SparseImageMemoryRequirements{})},
		{"RenderingAttachmentInfo", unsafe.Sizeof(RenderingAttachmentInfo{}), unsafe.Sizeof(native.RenderingAttachmentInfo{})},
		{"RenderingInfo", unsafe.Sizeof(RenderingInfo{}), unsafe.Sizeof(native.RenderingInfo{})},
		{"SurfaceCapabilitiesKHR", unsafe.Sizeof(SurfaceCapabilitiesKHR{}), unsafe.Sizeof(native.SurfaceCapabilitiesKHR{})},
		{"SurfaceFormatKHR", unsafe.Sizeof(SurfaceFormatKHR{}), unsafe.Sizeof(native.SurfaceFormatKHR{})},
		{"SwapchainCreateInfoKHR", unsafe.Sizeof(SwapchainCreateInfoKHR{}), unsafe.Sizeof(native.SwapchainCreateInfoKHR{})},
		{"PresentInfoKHR", unsafe.Sizeof(PresentInfoKHR{}), unsafe.Sizeof(native.PresentInfoKHR{})},
		{"XlibSurfaceCreateInfoKHR", unsafe.Sizeof(XlibSurfaceCreateInfoKHR{}), unsafe.Sizeof(native.XlibSurfaceCreateInfoKHR{})},
		{"XcbSurfaceCreateInfoKHR", unsafe.Sizeof(XcbSurfaceCreateInfoKHR{}), unsafe.Sizeof(native.XcbSurfaceCreateInfoKHR{})},
		{"WaylandSurfaceCreateInfoKHR", unsafe.Sizeof(WaylandSurfaceCreateInfoKHR{}), unsafe.Sizeof(native.WaylandSurfaceCreateInfoKHR{})},
		{"MirSurfaceCreateInfoKHR", unsafe.Sizeof(MirSurfaceCreateInfoKHR{}), unsafe.Sizeof(native.MirSurfaceCreateInfoKHR{})},
		{"AndroidSurfaceCreateInfoKHR", unsafe.Sizeof(AndroidSurfaceCreateInfoKHR{}), unsafe.Sizeof(native.AndroidSurfaceCreateInfoKHR{})},
		{"Win32SurfaceCreateInfoKHR", unsafe.Sizeof(Win32SurfaceCreateInfoKHR{}), unsafe.Sizeof(native.Win32SurfaceCreateInfoKHR{})},
		{"ClearColorValue", unsafe.Sizeof(ClearColorValue{}), unsafe.Sizeof(native.ClearColorValue{})},
		{"ClearDepthStencilValue", unsafe.Sizeof(ClearDepthStencilValue{}), unsafe.Sizeof(native.ClearDepthStencilValue{})},
		{"ClearValue", unsafe.Sizeof(ClearValue{}), unsafe.Sizeof(native.ClearValue{})},
	}
	for _, tt := range tests {
		if tt.wrapper != tt.native {
			t.Errorf("sizeof %s: wrapper %d, native %d", tt.name, tt.wrapper, tt.native)
		}
	}
}

func TestRect2DComposition(t *testing.T) {
	r := MakeRect2D(MakeOffset2D(3, 4), MakeExtent2D(100, 200))
	if unsafe.Sizeof(r) != 16 {
		t.Fatalf("sizeof Rect2D = %d, want 16", unsafe.Sizeof(r))
	}
	n := (*native.Rect2D)(unsafe.Pointer(&r))
	if n.Offset.X != 3 || n.Offset.Y != 4 || n.Extent.Width != 100 || n.Extent.Height != 200 {
		t.Errorf("native view = %+v", *n)
	}
	if unsafe.Offsetof(n.Extent) != 8 {
		t.Errorf("extent offset = %d, want 8", unsafe.Offsetof(n.Extent))
	}
}

func TestGetterReturnsCopy(t *testing.T) {
	r := MakeRect2D(MakeOffset2D(1, 2), MakeExtent2D(3, 4))
	off := r.Offset()
	off.SetX(99)
	if r.Offset().X() != 1 {
		t.Errorf("mutating a getter result changed the struct: %d", r.Offset().X())
	}
	n := r.Native()
	n.Extent.Width = 42
	if r.Extent().Width() != 3 {
		t.Error("Native() aliases the wrapper")
	}
}

func TestSetterChaining(t *testing.T) {
	info := NewBufferCreateInfo()
	got := info.
		SetSize(4096).
		SetUsage(FlagsOf(BUFFER_USAGE_TRANSFER_DST_BIT, BUFFER_USAGE_VERTEX_BUFFER_BIT)).
		SetSharingMode(SHARING_MODE_EXCLUSIVE)
	if got != info {
		t.Fatal("setters must return the receiver")
	}
	want := MakeBufferCreateInfo(0, 4096, FlagsOf(BUFFER_USAGE_TRANSFER_DST_BIT, BUFFER_USAGE_VERTEX_BUFFER_BIT), SHARING_MODE_EXCLUSIVE, 0, nil)
	if *info != want {
		t.Errorf("chained = %+v, constructed = %+v", info.Native(), want.Native())
	}
}

func TestConstructorsSetStructureType(t *testing.T) {
	tests := []struct {
		name  string
		sType StructureType
		next  unsafe.Pointer
		want  StructureType
	}{
		{"ApplicationInfo", NewApplicationInfo().SType(), NewApplicationInfo().Next(), APPLICATION_INFO},
		{"InstanceCreateInfo", NewInstanceCreateInfo().SType(), NewInstanceCreateInfo().Next(), INSTANCE_CREATE_INFO},
		{"BufferCreateInfo", MakeBufferCreateInfo(0, 1, 0, SHARING_MODE_EXCLUSIVE, 0, nil).SType(), nil, BUFFER_CREATE_INFO},
		{"CommandBufferBeginInfo", MakeCommandBufferBeginInfo(0, nil).SType(), nil, COMMAND_BUFFER_BEGIN_INFO},
		{"ImageMemoryBarrier", NewImageMemoryBarrier().SType(), NewImageMemoryBarrier().Next(), IMAGE_MEMORY_BARRIER},
		{"SwapchainCreateInfoKHR", NewSwapchainCreateInfoKHR().SType(), NewSwapchainCreateInfoKHR().Next(), SWAPCHAIN_CREATE_INFO_KHR},
		{"GraphicsPipelineCreateInfo", NewGraphicsPipelineCreateInfo().SType(), NewGraphicsPipelineCreateInfo().Next(), GRAPHICS_PIPELINE_CREATE_INFO},
		{"PipelineRasterizationStateCreateInfo", NewPipelineRasterizationStateCreateInfo().SType(), NewPipelineRasterizationStateCreateInfo().Next(), PIPELINE_RASTERIZATION_STATE_CREATE_INFO},
		{"PipelineRenderingCreateInfo", NewPipelineRenderingCreateInfo().SType(), NewPipelineRenderingCreateInfo().Next(), PIPELINE_RENDERING_CREATE_INFO},
		{"SamplerCreateInfo", NewSamplerCreateInfo().SType(), NewSamplerCreateInfo().Next(), SAMPLER_CREATE_INFO},
		{"BindSparseInfo", NewBindSparseInfo().SType(), NewBindSparseInfo().Next(), BIND_SPARSE_INFO},
		{"RenderingAttachmentInfo", NewRenderingAttachmentInfo().SType(), NewRenderingAttachmentInfo().Next(), RENDERING_ATTACHMENT_INFO},
		{"RenderingInfo", NewRenderingInfo().SType(), NewRenderingInfo().Next(), RENDERING_INFO},
		{"MirSurfaceCreateInfoKHR", NewMirSurfaceCreateInfoKHR().SType(), NewMirSurfaceCreateInfoKHR().Next(), MIR_SURFACE_CREATE_INFO_KHR},
		{"Win32SurfaceCreateInfoKHR", NewWin32SurfaceCreateInfoKHR().SType(), NewWin32SurfaceCreateInfoKHR().Next(), WIN32_SURFACE_CREATE_INFO_KHR},
	}
	for _, tt := range tests {
		if tt.sType != tt.want {
			t.Errorf("%s: sType = %v, want %v", tt.name, tt.sType, tt.want)
		}
		if tt.next != nil {
			t.Errorf("%s: pNext = %p, want nil", tt.name, tt.next)
		}
	}
}

func TestBoolFields(t *testing.T) {
	var f PhysicalDeviceFeatures
	f.SetGeometryShader(true).SetRobustBufferAccess(false)
	n := f.Native()
	if n.GeometryShader != 1 || n.RobustBufferAccess != 0 {
		t.Errorf("native = %d/%d, want 1/0", n.GeometryShader, n.RobustBufferAccess)
	}
	if !f.GeometryShader() || f.RobustBufferAccess() {
		t.Error("getters disagree with setters")
	}
}

func TestReturnedOnlyStrings(t *testing.T) {
	var props PhysicalDeviceProperties
	n := (*native.PhysicalDeviceProperties)(unsafe.Pointer(&props))
	copy(n.DeviceName[:], "Test GPU\x00garbage")
	n.DeviceType = int32(PHYSICAL_DEVICE_TYPE_DISCRETE_GPU)
	n.PipelineCacheUUID[0] = 0xAB
	if got := props.DeviceName(); got != "Test GPU" {
		t.Errorf("DeviceName() = %q", got)
	}
	if props.DeviceType() != PHYSICAL_DEVICE_TYPE_DISCRETE_GPU {
		t.Errorf("DeviceType() = %v", props.DeviceType())
	}
	if props.PipelineCacheUUID()[0] != 0xAB {
		t.Error("PipelineCacheUUID lost its first byte")
	}
}

func TestClearValueViews(t *testing.T) {
	c := ClearColorFloat32(0.25, 0.5, 0.75, 1)
	if got := c.Float32(); got != [4]float32{0.25, 0.5, 0.75, 1} {
		t.Errorf("Float32() = %v", got)
	}
	if got := ClearColorInt32(-1, 2, -3, 4).Int32(); got != [4]int32{-1, 2, -3, 4} {
		t.Errorf("Int32() = %v", got)
	}
	if got := ClearColorInt32(-1, 0, 0, 0).Uint32()[0]; got != 0xFFFFFFFF {
		t.Errorf("Uint32 view of -1 = %#x", got)
	}

	v := ClearValueColor(c)
	if v.Color() != c {
		t.Error("color round trip through ClearValue failed")
	}
	v.SetDepthStencil(MakeClearDepthStencilValue(1, 7))
	ds := v.DepthStencil()
	if ds.Depth() != 1 || ds.Stencil() != 7 {
		t.Errorf("DepthStencil() = %v/%d", ds.Depth(), ds.Stencil())
	}
	if n := v.Native(); n[2] != 0 || n[3] != 0 {
		t.Error("depth/stencil left color bytes behind")
	}
}

func TestGoString(t *testing.T) {
	b := []byte("layer\x00")
	if got := GoString(&b[0]); got != "layer" {
		t.Errorf("GoString = %q", got)
	}
	if GoString(nil) != "" {
		t.Error("GoString(nil) should be empty")
	}
}
