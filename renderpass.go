// renderpass.go
package vk

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// AttachmentDescription wraps VkAttachmentDescription.
type AttachmentDescription struct {
	raw native.AttachmentDescription
}

func MakeAttachmentDescription(
	flags AttachmentDescriptionFlags,
	format Format,
	samples SampleCountFlagBits,
	loadOp AttachmentLoadOp,
	storeOp AttachmentStoreOp,
	stencilLoadOp AttachmentLoadOp,
	stencilStoreOp AttachmentStoreOp,
	initialLayout ImageLayout,
	finalLayout ImageLayout,
) AttachmentDescription {
	return AttachmentDescription{raw: native.AttachmentDescription{
		Flags:          native.Flags(flags),
		Format:         int32(format),
		Samples:        native.Flags(samples),
		LoadOp:         int32(loadOp),
		StoreOp:        int32(storeOp),
		StencilLoadOp:  int32(stencilLoadOp),
		StencilStoreOp: int32(stencilStoreOp),
		InitialLayout:  int32(initialLayout),
		FinalLayout:    int32(finalLayout),
	}}
}

func NewAttachmentDescription() *AttachmentDescription {
	return &AttachmentDescription{}
}

func (s AttachmentDescription) Flags() AttachmentDescriptionFlags {
	return AttachmentDescriptionFlags(s.raw.Flags)
}

func (s *AttachmentDescription) SetFlags(flags AttachmentDescriptionFlags) *AttachmentDescription {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s AttachmentDescription) Format() Format {
	return Format(s.raw.Format)
}

func (s *AttachmentDescription) SetFormat(format Format) *AttachmentDescription {
	s.raw.Format = int32(format)
	return s
}

func (s AttachmentDescription) Samples() SampleCountFlagBits {
	return SampleCountFlagBits(s.raw.Samples)
}

func (s *AttachmentDescription) SetSamples(samples SampleCountFlagBits) *AttachmentDescription {
	s.raw.Samples = native.Flags(samples)
	return s
}

func (s AttachmentDescription) LoadOp() AttachmentLoadOp {
	return AttachmentLoadOp(s.raw.LoadOp)
}

func (s *AttachmentDescription) SetLoadOp(loadOp AttachmentLoadOp) *AttachmentDescription {
	s.raw.LoadOp = int32(loadOp)
	return s
}

func (s AttachmentDescription) StoreOp() AttachmentStoreOp {
	return AttachmentStoreOp(s.raw.StoreOp)
}

func (s *AttachmentDescription) SetStoreOp(storeOp AttachmentStoreOp) *AttachmentDescription {
	s.raw.StoreOp = int32(storeOp)
	return s
}

func (s AttachmentDescription) StencilLoadOp() AttachmentLoadOp {
	return AttachmentLoadOp(s.raw.StencilLoadOp)
}

func (s *AttachmentDescription) SetStencilLoadOp(stencilLoadOp AttachmentLoadOp) *AttachmentDescription {
	s.raw.StencilLoadOp = int32(stencilLoadOp)
	return s
}

func (s AttachmentDescription) StencilStoreOp() AttachmentStoreOp {
	return AttachmentStoreOp(s.raw.StencilStoreOp)
}

func (s *AttachmentDescription) SetStencilStoreOp(stencilStoreOp AttachmentStoreOp) *AttachmentDescription {
	s.raw.StencilStoreOp = int32(stencilStoreOp)
	return s
}

func (s AttachmentDescription) InitialLayout() ImageLayout {
	return ImageLayout(s.raw.InitialLayout)
}

func (s *AttachmentDescription) SetInitialLayout(initialLayout ImageLayout) *AttachmentDescription {
	s.raw.InitialLayout = int32(initialLayout)
	return s
}

func (s AttachmentDescription) FinalLayout() ImageLayout {
	return ImageLayout(s.raw.FinalLayout)
}

func (s *AttachmentDescription) SetFinalLayout(finalLayout ImageLayout) *AttachmentDescription {
	s.raw.FinalLayout = int32(finalLayout)
	return s
}

func (s AttachmentDescription) Native() native.AttachmentDescription {
	return s.raw
}

// AttachmentReference wraps VkAttachmentReference.
type AttachmentReference struct {
	raw native.AttachmentReference
}

func MakeAttachmentReference(attachment uint32, layout ImageLayout) AttachmentReference {
	return AttachmentReference{raw: native.AttachmentReference{
		Attachment: attachment,
		Layout:     int32(layout),
	}}
}

func NewAttachmentReference() *AttachmentReference {
	return &AttachmentReference{}
}

func (s AttachmentReference) Attachment() uint32 {
	return s.raw.Attachment
}

func (s *AttachmentReference) SetAttachment(attachment uint32) *AttachmentReference {
	s.raw.Attachment = attachment
	return s
}

func (s AttachmentReference) Layout() ImageLayout {
	return ImageLayout(s.raw.Layout)
}

func (s *AttachmentReference) SetLayout(layout ImageLayout) *AttachmentReference {
	s.raw.Layout = int32(layout)
	return s
}

func (s AttachmentReference) Native() native.AttachmentReference {
	return s.raw
}

// SubpassDescription wraps VkSubpassDescription.
type SubpassDescription struct {
	raw native.SubpassDescription
}

func MakeSubpassDescription(
	flags SubpassDescriptionFlags,
	pipelineBindPoint PipelineBindPoint,
	inputAttachmentCount uint32,
	inputAttachments *AttachmentReference,
	colorAttachmentCount uint32,
	colorAttachments *AttachmentReference,
	resolveAttachments *AttachmentReference,
	depthStencilAttachment *AttachmentReference,
	preserveAttachmentCount uint32,
	preserveAttachments *uint32,
) SubpassDescription {
	return SubpassDescription{raw: native.SubpassDescription{
		Flags:                   native.Flags(flags),
		PipelineBindPoint:       int32(pipelineBindPoint),
		InputAttachmentCount:    inputAttachmentCount,
		PInputAttachments:       (*native.AttachmentReference)(unsafe.Pointer(inputAttachments)),
		ColorAttachmentCount:    colorAttachmentCount,
		PColorAttachments:       (*native.AttachmentReference)(unsafe.Pointer(colorAttachments)),
		PResolveAttachments:     (*native.AttachmentReference)(unsafe.Pointer(resolveAttachments)),
		PDepthStencilAttachment: (*native.AttachmentReference)(unsafe.Pointer(depthStencilAttachment)),
		PreserveAttachmentCount: preserveAttachmentCount,
		PPreserveAttachments:    preserveAttachments,
	}}
}

func NewSubpassDescription() *SubpassDescription {
	return &SubpassDescription{}
}

func (s SubpassDescription) Flags() SubpassDescriptionFlags {
	return SubpassDescriptionFlags(s.raw.Flags)
}

func (s *SubpassDescription) SetFlags(flags SubpassDescriptionFlags) *SubpassDescription {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s SubpassDescription) PipelineBindPoint() PipelineBindPoint {
	return PipelineBindPoint(s.raw.PipelineBindPoint)
}

func (s *SubpassDescription) SetPipelineBindPoint(pipelineBindPoint PipelineBindPoint) *SubpassDescription {
	s.raw.PipelineBindPoint = int32(pipelineBindPoint)
	return s
}

func (s SubpassDescription) InputAttachmentCount() uint32 {
	return s.raw.InputAttachmentCount
}

func (s *SubpassDescription) SetInputAttachmentCount(inputAttachmentCount uint32) *SubpassDescription {
	s.raw.InputAttachmentCount = inputAttachmentCount
	return s
}

func (s SubpassDescription) InputAttachments() *AttachmentReference {
	return (*AttachmentReference)(unsafe.Pointer(s.raw.PInputAttachments))
}

func (s *SubpassDescription) SetInputAttachments(inputAttachments *AttachmentReference) *SubpassDescription {
	s.raw.PInputAttachments = (*native.AttachmentReference)(unsafe.Pointer(inputAttachments))
	return s
}

func (s SubpassDescription) ColorAttachmentCount() uint32 {
	return s.raw.ColorAttachmentCount
}

func (s *SubpassDescription) SetColorAttachmentCount(colorAttachmentCount uint32) *SubpassDescription {
	s.raw.ColorAttachmentCount = colorAttachmentCount
	return s
}

func (s SubpassDescription) ColorAttachments() *AttachmentReference {
	return (*AttachmentReference)(unsafe.Pointer(s.raw.PColorAttachments))
}

func (s *SubpassDescription) SetColorAttachments(colorAttachments *AttachmentReference) *SubpassDescription {
	s.raw.PColorAttachments = (*native.AttachmentReference)(unsafe.Pointer(colorAttachments))
	return s
}

func (s SubpassDescription) ResolveAttachments() *AttachmentReference {
	return (*AttachmentReference)(unsafe.Pointer(s.raw.PResolveAttachments))
}

func (s *SubpassDescription) SetResolveAttachments(resolveAttachments *AttachmentReference) *SubpassDescription {
	s.raw.PResolveAttachments = (*native.AttachmentReference)(unsafe.Pointer(resolveAttachments))
	return s
}

func (s SubpassDescription) DepthStencilAttachment() *AttachmentReference {
	return (*AttachmentReference)(unsafe.Pointer(s.raw.PDepthStencilAttachment))
}

func (s *SubpassDescription) SetDepthStencilAttachment(depthStencilAttachment *AttachmentReference) *SubpassDescription {
	s.raw.PDepthStencilAttachment = (*native.AttachmentReference)(unsafe.Pointer(depthStencilAttachment))
	return s
}

func (s SubpassDescription) PreserveAttachmentCount() uint32 {
	return s.raw.PreserveAttachmentCount
}

func (s *SubpassDescription) SetPreserveAttachmentCount(preserveAttachmentCount uint32) *SubpassDescription {
	s.raw.PreserveAttachmentCount = preserveAttachmentCount
	return s
}

func (s SubpassDescription) PreserveAttachments() *uint32 {
	return s.raw.PPreserveAttachments
}

func (s *SubpassDescription) SetPreserveAttachments(preserveAttachments *uint32) *SubpassDescription {
	s.raw.PPreserveAttachments = preserveAttachments
	return s
}

func (s SubpassDescription) Native() native.SubpassDescription {
	return s.raw
}

// SubpassDependency wraps VkSubpassDependency.
type SubpassDependency struct {
	raw native.SubpassDependency
}

func MakeSubpassDependency(
	srcSubpass uint32,
	dstSubpass uint32,
	srcStageMask PipelineStageFlags,
	dstStageMask PipelineStageFlags,
	srcAccessMask AccessFlags,
	dstAccessMask AccessFlags,
	dependencyFlags DependencyFlags,
) SubpassDependency {
	return SubpassDependency{raw: native.SubpassDependency{
		SrcSubpass:      srcSubpass,
		DstSubpass:      dstSubpass,
		SrcStageMask:    native.Flags(srcStageMask),
		DstStageMask:    native.Flags(dstStageMask),
		SrcAccessMask:   native.Flags(srcAccessMask),
		DstAccessMask:   native.Flags(dstAccessMask),
		DependencyFlags: native.Flags(dependencyFlags),
	}}
}

func NewSubpassDependency() *SubpassDependency {
	return &SubpassDependency{}
}

func (s SubpassDependency) SrcSubpass() uint32 {
	return s.raw.SrcSubpass
}

func (s *SubpassDependency) SetSrcSubpass(srcSubpass uint32) *SubpassDependency {
	s.raw.SrcSubpass = srcSubpass
	return s
}

func (s SubpassDependency) DstSubpass() uint32 {
	return s.raw.DstSubpass
}

func (s *SubpassDependency) SetDstSubpass(dstSubpass uint32) *SubpassDependency {
	s.raw.DstSubpass = dstSubpass
	return s
}

func (s SubpassDependency) SrcStageMask() PipelineStageFlags {
	return PipelineStageFlags(s.raw.SrcStageMask)
}

func (s *SubpassDependency) SetSrcStageMask(srcStageMask PipelineStageFlags) *SubpassDependency {
	s.raw.SrcStageMask = native.Flags(srcStageMask)
	return s
}

func (s SubpassDependency) DstStageMask() PipelineStageFlags {
	return PipelineStageFlags(s.raw.DstStageMask)
}

func (s *SubpassDependency) SetDstStageMask(dstStageMask PipelineStageFlags) *SubpassDependency {
	s.raw.DstStageMask = native.Flags(dstStageMask)
	return s
}

func (s SubpassDependency) SrcAccessMask() AccessFlags {
	return AccessFlags(s.raw.SrcAccessMask)
}

func (s *SubpassDependency) SetSrcAccessMask(srcAccessMask AccessFlags) *SubpassDependency {
	s.raw.SrcAccessMask = native.Flags(srcAccessMask)
	return s
}

func (s SubpassDependency) DstAccessMask() AccessFlags {
	return AccessFlags(s.raw.DstAccessMask)
}

func (s *SubpassDependency) SetDstAccessMask(dstAccessMask AccessFlags) *SubpassDependency {
	s.raw.DstAccessMask = native.Flags(dstAccessMask)
	return s
}

func (s SubpassDependency) DependencyFlags() DependencyFlags {
	return DependencyFlags(s.raw.DependencyFlags)
}

func (s *SubpassDependency) SetDependencyFlags(dependencyFlags DependencyFlags) *SubpassDependency {
	s.raw.DependencyFlags = native.Flags(dependencyFlags)
	return s
}

func (s SubpassDependency) Native() native.SubpassDependency {
	return s.raw
}

// RenderPassCreateInfo wraps VkRenderPassCreateInfo.
type RenderPassCreateInfo struct {
	raw native.RenderPassCreateInfo
}

func MakeRenderPassCreateInfo(
	flags RenderPassCreateFlags,
	attachmentCount uint32,
	attachments *AttachmentDescription,
	subpassCount uint32,
	subpasses *SubpassDescription,
	dependencyCount uint32,
	dependencies *SubpassDependency,
) RenderPassCreateInfo {
	return RenderPassCreateInfo{raw: native.RenderPassCreateInfo{
		SType:           native.StructureType(RENDER_PASS_CREATE_INFO),
		Flags:           native.Flags(flags),
		AttachmentCount: attachmentCount,
		PAttachments:    (*native.AttachmentDescription)(unsafe.Pointer(attachments)),
		SubpassCount:    subpassCount,
		PSubpasses:      (*native.SubpassDescription)(unsafe.Pointer(subpasses)),
		DependencyCount: dependencyCount,
		PDependencies:   (*native.SubpassDependency)(unsafe.Pointer(dependencies)),
	}}
}

func NewRenderPassCreateInfo() *RenderPassCreateInfo {
	return &RenderPassCreateInfo{raw: native.RenderPassCreateInfo{SType: native.StructureType(RENDER_PASS_CREATE_INFO)}}
}

func (s RenderPassCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *RenderPassCreateInfo) SetSType(sType StructureType) *RenderPassCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s RenderPassCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *RenderPassCreateInfo) SetNext(next unsafe.Pointer) *RenderPassCreateInfo {
	s.raw.PNext = next
	return s
}

func (s RenderPassCreateInfo) Flags() RenderPassCreateFlags {
	return RenderPassCreateFlags(s.raw.Flags)
}

func (s *RenderPassCreateInfo) SetFlags(flags RenderPassCreateFlags) *RenderPassCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s RenderPassCreateInfo) AttachmentCount() uint32 {
	return s.raw.AttachmentCount
}

func (s *RenderPassCreateInfo) SetAttachmentCount(attachmentCount uint32) *RenderPassCreateInfo {
	s.raw.AttachmentCount = attachmentCount
	return s
}

func (s RenderPassCreateInfo) Attachments() *AttachmentDescription {
	return (*AttachmentDescription)(unsafe.Pointer(s.raw.PAttachments))
}

func (s *RenderPassCreateInfo) SetAttachments(attachments *AttachmentDescription) *RenderPassCreateInfo {
	s.raw.PAttachments = (*native.AttachmentDescription)(unsafe.Pointer(attachments))
	return s
}

func (s RenderPassCreateInfo) SubpassCount() uint32 {
	return s.raw.SubpassCount
}

func (s *RenderPassCreateInfo) SetSubpassCount(subpassCount uint32) *RenderPassCreateInfo {
	s.raw.SubpassCount = subpassCount
	return s
}

func (s RenderPassCreateInfo) Subpasses() *SubpassDescription {
	return (*SubpassDescription)(unsafe.Pointer(s.raw.PSubpasses))
}

func (s *RenderPassCreateInfo) SetSubpasses(subpasses *SubpassDescription) *RenderPassCreateInfo {
	s.raw.PSubpasses = (*native.SubpassDescription)(unsafe.Pointer(subpasses))
	return s
}

func (s RenderPassCreateInfo) DependencyCount() uint32 {
	return s.raw.DependencyCount
}

func (s *RenderPassCreateInfo) SetDependencyCount(dependencyCount uint32) *RenderPassCreateInfo {
	s.raw.DependencyCount = dependencyCount
	return s
}

func (s RenderPassCreateInfo) Dependencies() *SubpassDependency {
	return (*SubpassDependency)(unsafe.Pointer(s.raw.PDependencies))
}

func (s *RenderPassCreateInfo) SetDependencies(dependencies *SubpassDependency) *RenderPassCreateInfo {
	s.raw.PDependencies = (*native.SubpassDependency)(unsafe.Pointer(dependencies))
	return s
}

func (s RenderPassCreateInfo) Native() native.RenderPassCreateInfo {
	return s.raw
}

// FramebufferCreateInfo wraps VkFramebufferCreateInfo.
type FramebufferCreateInfo struct {
	raw native.FramebufferCreateInfo
}

func MakeFramebufferCreateInfo(
	flags FramebufferCreateFlags,
	renderPass RenderPass,
	attachmentCount uint32,
	attachments *ImageView,
	width uint32,
	height uint32,
	layers uint32,
) FramebufferCreateInfo {
	return FramebufferCreateInfo{raw: native.FramebufferCreateInfo{
		SType:           native.StructureType(FRAMEBUFFER_CREATE_INFO),
		Flags:           native.Flags(flags),
		RenderPass:      native.RenderPass(renderPass),
		AttachmentCount: attachmentCount,
		PAttachments:    (*native.ImageView)(unsafe.Pointer(attachments)),
		Width:           width,
		Height:          height,
		Layers:          layers,
	}}
}

func NewFramebufferCreateInfo() *FramebufferCreateInfo {
	return &FramebufferCreateInfo{raw: native.FramebufferCreateInfo{SType: native.StructureType(FRAMEBUFFER_CREATE_INFO)}}
}

func (s FramebufferCreateInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *FramebufferCreateInfo) SetSType(sType StructureType) *FramebufferCreateInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s FramebufferCreateInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *FramebufferCreateInfo) SetNext(next unsafe.Pointer) *FramebufferCreateInfo {
	s.raw.PNext = next
	return s
}

func (s FramebufferCreateInfo) Flags() FramebufferCreateFlags {
	return FramebufferCreateFlags(s.raw.Flags)
}

func (s *FramebufferCreateInfo) SetFlags(flags FramebufferCreateFlags) *FramebufferCreateInfo {
	s.raw.Flags = native.Flags(flags)
	return s
}

func (s FramebufferCreateInfo) RenderPass() RenderPass {
	return RenderPass(s.raw.RenderPass)
}

func (s *FramebufferCreateInfo) SetRenderPass(renderPass RenderPass) *FramebufferCreateInfo {
	s.raw.RenderPass = native.RenderPass(renderPass)
	return s
}

func (s FramebufferCreateInfo) AttachmentCount() uint32 {
	return s.raw.AttachmentCount
}

func (s *FramebufferCreateInfo) SetAttachmentCount(attachmentCount uint32) *FramebufferCreateInfo {
	s.raw.AttachmentCount = attachmentCount
	return s
}

func (s FramebufferCreateInfo) Attachments() *ImageView {
	return (*ImageView)(unsafe.Pointer(s.raw.PAttachments))
}

func (s *FramebufferCreateInfo) SetAttachments(attachments *ImageView) *FramebufferCreateInfo {
	s.raw.PAttachments = (*native.ImageView)(unsafe.Pointer(attachments))
	return s
}

func (s FramebufferCreateInfo) Width() uint32 {
	return s.raw.Width
}

func (s *FramebufferCreateInfo) SetWidth(width uint32) *FramebufferCreateInfo {
	s.raw.Width = width
	return s
}

func (s FramebufferCreateInfo) Height() uint32 {
	return s.raw.Height
}

func (s *FramebufferCreateInfo) SetHeight(height uint32) *FramebufferCreateInfo {
	s.raw.Height = height
	return s
}

func (s FramebufferCreateInfo) Layers() uint32 {
	return s.raw.Layers
}

func (s *FramebufferCreateInfo) SetLayers(layers uint32) *FramebufferCreateInfo {
	s.raw.Layers = layers
	return s
}

func (s FramebufferCreateInfo) Native() native.FramebufferCreateInfo {
	return s.raw
}

// RenderPassBeginInfo wraps VkRenderPassBeginInfo.
type RenderPassBeginInfo struct {
	raw native.RenderPassBeginInfo
}

func MakeRenderPassBeginInfo(
	renderPass RenderPass,
	framebuffer Framebuffer,
	renderArea Rect2D,
	clearValueCount uint32,
	clearValues *ClearValue,
) RenderPassBeginInfo {
	return RenderPassBeginInfo{raw: native.RenderPassBeginInfo{
		SType:           native.StructureType(RENDER_PASS_BEGIN_INFO),
		RenderPass:      native.RenderPass(renderPass),
		Framebuffer:     native.Framebuffer(framebuffer),
		RenderArea:      renderArea.raw,
		ClearValueCount: clearValueCount,
		PClearValues:    (*native.ClearValue)(unsafe.Pointer(clearValues)),
	}}
}

func NewRenderPassBeginInfo() *RenderPassBeginInfo {
	return &RenderPassBeginInfo{raw: native.RenderPassBeginInfo{SType: native.StructureType(RENDER_PASS_BEGIN_INFO)}}
}

func (s RenderPassBeginInfo) SType() StructureType {
	return StructureType(s.raw.SType)
}

func (s *RenderPassBeginInfo) SetSType(sType StructureType) *RenderPassBeginInfo {
	s.raw.SType = native.StructureType(sType)
	return s
}

func (s RenderPassBeginInfo) Next() unsafe.Pointer {
	return s.raw.PNext
}

func (s *RenderPassBeginInfo) SetNext(next unsafe.Pointer) *RenderPassBeginInfo {
	s.raw.PNext = next
	return s
}

func (s RenderPassBeginInfo) RenderPass() RenderPass {
	return RenderPass(s.raw.RenderPass)
}

func (s *RenderPassBeginInfo) SetRenderPass(renderPass RenderPass) *RenderPassBeginInfo {
	s.raw.RenderPass = native.RenderPass(renderPass)
	return s
}

func (s RenderPassBeginInfo) Framebuffer() Framebuffer {
	return Framebuffer(s.raw.Framebuffer)
}

func (s *RenderPassBeginInfo) SetFramebuffer(framebuffer Framebuffer) *RenderPassBeginInfo {
	s.raw.Framebuffer = native.Framebuffer(framebuffer)
	return s
}

func (s RenderPassBeginInfo) RenderArea() Rect2D {
	return Rect2D{raw: s.raw.RenderArea}
}

func (s *RenderPassBeginInfo) SetRenderArea(renderArea Rect2D) *RenderPassBeginInfo {
	s.raw.RenderArea = renderArea.raw
	return s
}

func (s RenderPassBeginInfo) ClearValueCount() uint32 {
	return s.raw.ClearValueCount
}

func (s *RenderPassBeginInfo) SetClearValueCount(clearValueCount uint32) *RenderPassBeginInfo {
	s.raw.ClearValueCount = clearValueCount
	return s
}

func (s RenderPassBeginInfo) ClearValues() *ClearValue {
	return (*ClearValue)(unsafe.Pointer(s.raw.PClearValues))
}

func (s *RenderPassBeginInfo) SetClearValues(clearValues *ClearValue) *RenderPassBeginInfo {
	s.raw.PClearValues = (*native.ClearValue)(unsafe.Pointer(clearValues))
	return s
}

func (s RenderPassBeginInfo) Native() native.RenderPassBeginInfo {
	return s.raw
}

func (d *Dispatch) CreateRenderPass(
	device Device,
	createInfo *RenderPassCreateInfo,
	allocator *AllocationCallbacks,
	renderPass *RenderPass,
) Result {
	return Result(d.cmds.CreateRenderPass(
		native.Device(device),
		(*native.RenderPassCreateInfo)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.RenderPass)(unsafe.Pointer(renderPass)),
	))
}

func (d *Dispatch) DestroyRenderPass(device Device, renderPass RenderPass, allocator *AllocationCallbacks) {
	d.cmds.DestroyRenderPass(
		native.Device(device),
		native.RenderPass(renderPass),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}

func (d *Dispatch) CreateFramebuffer(
	device Device,
	createInfo *FramebufferCreateInfo,
	allocator *AllocationCallbacks,
	framebuffer *Framebuffer,
) Result {
	return Result(d.cmds.CreateFramebuffer(
		native.Device(device),
		(*native.FramebufferCreateInfo)(unsafe.Pointer(createInfo)),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
		(*native.Framebuffer)(unsafe.Pointer(framebuffer)),
	))
}

func (d *Dispatch) DestroyFramebuffer(
	device Device,
	framebuffer Framebuffer,
	allocator *AllocationCallbacks,
) {
	d.cmds.DestroyFramebuffer(
		native.Device(device),
		native.Framebuffer(framebuffer),
		(*native.AllocationCallbacks)(unsafe.Pointer(allocator)),
	)
}
