package vk

import (
	"testing"
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

func TestForwardingCreateBuffer(t *testing.T) {
	info := MakeBufferCreateInfo(0, 256, FlagsOf(BUFFER_USAGE_TRANSFER_SRC_BIT), SHARING_MODE_EXCLUSIVE, 0, nil)
	var calls int
	cmds := &native.Commands{
		CreateBuffer: func(device native.Device, pCreateInfo *native.BufferCreateInfo, pAllocator *native.AllocationCallbacks, pBuffer *native.Buffer) native.Result {
			calls++
			if device != 0x1234 {
				t.Errorf("device = %#x", device)
			}
			if unsafe.Pointer(pCreateInfo) != unsafe.Pointer(&info) {
				t.Error("create info was copied instead of forwarded")
			}
			if pCreateInfo.Size != 256 || pCreateInfo.SType != native.StructureType(BUFFER_CREATE_INFO) {
				t.Errorf("native create info = %+v", *pCreateInfo)
			}
			if pAllocator != nil {
				t.Error("allocator should be nil")
			}
			*pBuffer = 0xBEEF
			return native.Result(OUT_OF_DEVICE_MEMORY)
		},
	}
	d := NewDispatch(cmds)

	var buf Buffer
	r := d.CreateBuffer(Device(0x1234), &info, nil, &buf)
	if calls != 1 {
		t.Fatalf("native calls = %d, want 1", calls)
	}
	if r != OUT_OF_DEVICE_MEMORY {
		t.Errorf("result = %v, want the native code unchanged", r)
	}
	if buf != 0xBEEF {
		t.Errorf("buffer = %#x", buf)
	}
	if d.Commands() != cmds {
		t.Error("Commands() should return the wrapped table")
	}
}

func TestForwardingScalars(t *testing.T) {
	var got struct {
		waitAll native.Bool32
		timeout uint64
		count   uint32
		fences  *native.Fence
		draw    [4]uint32
	}
	cmds := &native.Commands{
		WaitForFences: func(device native.Device, fenceCount uint32, pFences *native.Fence, waitAll native.Bool32, timeout uint64) native.Result {
			got.count, got.fences, got.waitAll, got.timeout = fenceCount, pFences, waitAll, timeout
			return native.Result(TIMEOUT)
		},
		CmdDraw: func(_ native.CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
			got.draw = [4]uint32{vertexCount, instanceCount, firstVertex, firstInstance}
		},
		GetPhysicalDeviceWin32PresentationSupportKHR: func(native.PhysicalDevice, uint32) native.Bool32 {
			return 1
		},
	}
	d := NewDispatch(cmds)

	fences := []Fence{1, 2, 3}
	if r := d.WaitForFences(0, uint32(len(fences)), &fences[0], true, 1_000_000); r != TIMEOUT {
		t.Errorf("WaitForFences = %v", r)
	}
	if got.count != 3 || got.waitAll != 1 || got.timeout != 1_000_000 {
		t.Errorf("forwarded %+v", got)
	}
	if unsafe.Pointer(got.fences) != unsafe.Pointer(&fences[0]) {
		t.Error("fence array was not forwarded in place")
	}

	d.CmdDraw(0, 3, 1, 0, 0)
	if got.draw != [4]uint32{3, 1, 0, 0} {
		t.Errorf("CmdDraw forwarded %v", got.draw)
	}

	if !d.GetPhysicalDeviceWin32PresentationSupportKHR(0, 0) {
		t.Error("VK_TRUE should map to true")
	}
}

func TestForwardingClearColorRanges(t *testing.T) {
	var gotCount uint32
	var gotColor native.ClearColorValue
	cmds := &native.Commands{
		CmdClearColorImage: func(_ native.CommandBuffer, image native.Image, layout int32, pColor *native.ClearColorValue, rangeCount uint32, pRanges *native.ImageSubresourceRange) {
			gotCount = rangeCount
			gotColor = *pColor
			if rangeCount > 0 && pRanges.LevelCount != 1 {
				t.Errorf("range = %+v", *pRanges)
			}
		},
	}
	d := NewDispatch(cmds)
	ranges := []ImageSubresourceRange{MakeImageSubresourceRange(FlagsOf(IMAGE_ASPECT_COLOR_BIT), 0, 1, 0, 1)}
	d.CmdClearColorImageRanges(0, 7, IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL, ClearColorUint32(1, 2, 3, 4), ranges)
	if gotCount != 1 || gotColor != (native.ClearColorValue{1, 2, 3, 4}) {
		t.Errorf("forwarded count %d color %v", gotCount, gotColor)
	}

	d.CmdClearColorImageRanges(0, 7, IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL, ClearColorUint32(0, 0, 0, 0), nil)
	if gotCount != 0 {
		t.Errorf("empty ranges forwarded count %d", gotCount)
	}
}

func TestForwardingMissingEntryPointPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("calling an unloaded entry point should panic")
		}
	}()
	NewDispatch(&native.Commands{}).DeviceWaitIdle(0)
}

func TestForwardingGraphicsPipelines(t *testing.T) {
	stages := []PipelineShaderStageCreateInfo{*NewPipelineShaderStageCreateInfo(), *NewPipelineShaderStageCreateInfo()}
	infos := []GraphicsPipelineCreateInfo{
		*NewGraphicsPipelineCreateInfo().SetStageCount(2).SetStages(&stages[0]).SetLayout(9),
	}
	cmds := &native.Commands{
		CreateGraphicsPipelines: func(_ native.Device, cache native.PipelineCache, count uint32, pInfos *native.GraphicsPipelineCreateInfo, _ *native.AllocationCallbacks, pPipelines *native.Pipeline) native.Result {
			if cache != 3 || count != 1 {
				t.Errorf("cache %d count %d", cache, count)
			}
			if unsafe.Pointer(pInfos) != unsafe.Pointer(&infos[0]) {
				t.Error("create infos were copied instead of forwarded")
			}
			if pInfos.StageCount != 2 || pInfos.Layout != 9 || unsafe.Pointer(pInfos.PStages) != unsafe.Pointer(&stages[0]) {
				t.Errorf("native create info = %+v", *pInfos)
			}
			*pPipelines = 0x77
			return native.Result(PIPELINE_COMPILE_REQUIRED)
		},
	}
	d := NewDispatch(cmds)

	var p Pipeline
	if r := d.CreateGraphicsPipelines(0, 3, 1, &infos[0], nil, &p); r != PIPELINE_COMPILE_REQUIRED {
		t.Errorf("result = %v", r)
	}
	if p != 0x77 {
		t.Errorf("pipeline = %#x", p)
	}
}

func TestForwardingSampler(t *testing.T) {
	info := NewSamplerCreateInfo().
		SetMagFilter(FILTER_LINEAR).
		SetAddressModeU(SAMPLER_ADDRESS_MODE_CLAMP_TO_EDGE).
		SetAnisotropyEnable(true).
		SetMaxAnisotropy(16).
		SetBorderColor(BORDER_COLOR_INT_OPAQUE_WHITE)
	var destroyed native.Sampler
	cmds := &native.Commands{
		CreateSampler: func(_ native.Device, p *native.SamplerCreateInfo, _ *native.AllocationCallbacks, pSampler *native.Sampler) native.Result {
			if p.MagFilter != int32(FILTER_LINEAR) || p.AddressModeU != int32(SAMPLER_ADDRESS_MODE_CLAMP_TO_EDGE) {
				t.Errorf("filters = %+v", *p)
			}
			if p.AnisotropyEnable != 1 || p.MaxAnisotropy != 16 || p.BorderColor != int32(BORDER_COLOR_INT_OPAQUE_WHITE) {
				t.Errorf("anisotropy = %+v", *p)
			}
			*pSampler = 5
			return native.Result(SUCCESS)
		},
		DestroySampler: func(_ native.Device, s native.Sampler, _ *native.AllocationCallbacks) {
			destroyed = s
		},
	}
	d := NewDispatch(cmds)

	var s Sampler
	if r := d.CreateSampler(0, info, nil, &s); r != SUCCESS || s != 5 {
		t.Fatalf("CreateSampler = %v, %d", r, s)
	}
	d.DestroySampler(0, s, nil)
	if destroyed != 5 {
		t.Errorf("destroyed %d", destroyed)
	}
}

func TestForwardingDrawCommands(t *testing.T) {
	var got struct {
		first, count uint32
		buffers      *native.Buffer
		offsets      *native.DeviceSize
		index        [3]uint64
		indexed      [5]int64
		update       [3]uint64
		data         unsafe.Pointer
	}
	cmds := &native.Commands{
		CmdBindVertexBuffers: func(_ native.CommandBuffer, firstBinding, bindingCount uint32, pBuffers *native.Buffer, pOffsets *native.DeviceSize) {
			got.first, got.count, got.buffers, got.offsets = firstBinding, bindingCount, pBuffers, pOffsets
		},
		CmdBindIndexBuffer: func(_ native.CommandBuffer, buffer native.Buffer, offset native.DeviceSize, indexType int32) {
			got.index = [3]uint64{uint64(buffer), offset, uint64(indexType)}
		},
		CmdDrawIndexed: func(_ native.CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
			got.indexed = [5]int64{int64(indexCount), int64(instanceCount), int64(firstIndex), int64(vertexOffset), int64(firstInstance)}
		},
		CmdUpdateBuffer: func(_ native.CommandBuffer, dst native.Buffer, dstOffset, dataSize native.DeviceSize, pData unsafe.Pointer) {
			got.update = [3]uint64{uint64(dst), dstOffset, dataSize}
			got.data = pData
		},
	}
	d := NewDispatch(cmds)

	buffers := []Buffer{10, 11}
	offsets := []DeviceSize{0, 256}
	d.CmdBindVertexBuffers(0, 1, 2, &buffers[0], &offsets[0])
	if got.first != 1 || got.count != 2 {
		t.Errorf("bindings %d+%d", got.first, got.count)
	}
	if unsafe.Pointer(got.buffers) != unsafe.Pointer(&buffers[0]) || got.offsets != &offsets[0] {
		t.Error("vertex buffer arrays were not forwarded in place")
	}

	d.CmdBindIndexBuffer(0, 12, 64, INDEX_TYPE_UINT32)
	if got.index != [3]uint64{12, 64, uint64(INDEX_TYPE_UINT32)} {
		t.Errorf("CmdBindIndexBuffer forwarded %v", got.index)
	}

	d.CmdDrawIndexed(0, 36, 2, 6, -4, 1)
	if got.indexed != [5]int64{36, 2, 6, -4, 1} {
		t.Errorf("CmdDrawIndexed forwarded %v", got.indexed)
	}

	words := [4]uint32{1, 2, 3, 4}
	d.CmdUpdateBuffer(0, 13, 16, DeviceSize(unsafe.Sizeof(words)), unsafe.Pointer(&words))
	if got.update != [3]uint64{13, 16, 16} || got.data != unsafe.Pointer(&words) {
		t.Errorf("CmdUpdateBuffer forwarded %v", got.update)
	}
}

func TestForwardingDynamicRendering(t *testing.T) {
	color := []RenderingAttachmentInfo{*NewRenderingAttachmentInfo()}
	info := MakeRenderingInfo(0, MakeRect2D(MakeOffset2D(0, 0), MakeExtent2D(640, 480)), 1, 0, 1, &color[0], nil, nil)
	var began, ended int
	cmds := &native.Commands{
		CmdBeginRendering: func(_ native.CommandBuffer, p *native.RenderingInfo) {
			began++
			if p.RenderArea.Extent.Width != 640 || p.ColorAttachmentCount != 1 || p.PDepthAttachment != nil {
				t.Errorf("rendering info = %+v", *p)
			}
			if unsafe.Pointer(p.PColorAttachments) != unsafe.Pointer(&color[0]) {
				t.Error("color attachments were copied")
			}
		},
		CmdEndRendering: func(native.CommandBuffer) { ended++ },
	}
	d := NewDispatch(cmds)
	d.CmdBeginRendering(0, &info)
	d.CmdEndRendering(0)
	if began != 1 || ended != 1 {
		t.Errorf("begin %d end %d", began, ended)
	}
}

func TestForwardingSparse(t *testing.T) {
	binds := []SparseMemoryBind{MakeSparseMemoryBind(0, 65536, 4, 0, 0)}
	buffers := []SparseBufferMemoryBindInfo{MakeSparseBufferMemoryBindInfo(8, 1, &binds[0])}
	info := NewBindSparseInfo().SetBufferBindCount(1).SetBufferBinds(&buffers[0])
	cmds := &native.Commands{
		QueueBindSparse: func(_ native.Queue, count uint32, p *native.BindSparseInfo, fence native.Fence) native.Result {
			if count != 1 || fence != 2 {
				t.Errorf("count %d fence %d", count, fence)
			}
			if p.SType != native.StructureType(BIND_SPARSE_INFO) || p.BufferBindCount != 1 {
				t.Errorf("bind info = %+v", *p)
			}
			if p.PBufferBinds.Buffer != 8 || p.PBufferBinds.PBinds.Size != 65536 {
				t.Errorf("buffer bind = %+v", *p.PBufferBinds)
			}
			return native.Result(DEVICE_LOST)
		},
		GetImageSparseMemoryRequirements: func(_ native.Device, image native.Image, count *uint32, p *native.SparseImageMemoryRequirements) {
			if image != 4 {
				t.Errorf("image %d", image)
			}
			*count = 1
			if p != nil {
				p.ImageMipTailFirstLod = 3
			}
		},
	}
	d := NewDispatch(cmds)

	if r := d.QueueBindSparse(0, 1, info, 2); r != DEVICE_LOST {
		t.Errorf("QueueBindSparse = %v", r)
	}

	var n uint32
	d.GetImageSparseMemoryRequirements(0, 4, &n, nil)
	reqs := make([]SparseImageMemoryRequirements, n)
	d.GetImageSparseMemoryRequirements(0, 4, &n, &reqs[0])
	if n != 1 || reqs[0].ImageMipTailFirstLod() != 3 {
		t.Errorf("requirements = %d %+v", n, reqs)
	}
}
