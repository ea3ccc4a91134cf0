// command_clear.go
package vk

import (
	"math"

	"github.com/NOT-REAL-GAMES/vk/native"
)

// ClearColorValue wraps the VkClearColorValue union. The float, signed and
// unsigned views alias the same 16 bytes; which one the driver reads depends
// on the format of the image being cleared.
type ClearColorValue struct {
	raw native.ClearColorValue
}

// ClearColorFloat32 builds a clear color for normalized and float formats.
func ClearColorFloat32(r, g, b, a float32) ClearColorValue {
	return ClearColorValue{raw: native.ClearColorValue{
		math.Float32bits(r),
		math.Float32bits(g),
		math.Float32bits(b),
		math.Float32bits(a),
	}}
}

// ClearColorInt32 builds a clear color for signed integer formats.
func ClearColorInt32(r, g, b, a int32) ClearColorValue {
	return ClearColorValue{raw: native.ClearColorValue{uint32(r), uint32(g), uint32(b), uint32(a)}}
}

// ClearColorUint32 builds a clear color for unsigned integer formats.
func ClearColorUint32(r, g, b, a uint32) ClearColorValue {
	return ClearColorValue{raw: native.ClearColorValue{r, g, b, a}}
}

func (c ClearColorValue) Float32() [4]float32 {
	var out [4]float32
	for i, v := range c.raw {
		out[i] = math.Float32frombits(v)
	}
	return out
}

func (c ClearColorValue) Int32() [4]int32 {
	var out [4]int32
	for i, v := range c.raw {
		out[i] = int32(v)
	}
	return out
}

func (c ClearColorValue) Uint32() [4]uint32 {
	return c.raw
}

func (c *ClearColorValue) SetFloat32(v [4]float32) *ClearColorValue {
	*c = ClearColorFloat32(v[0], v[1], v[2], v[3])
	return c
}

func (c *ClearColorValue) SetInt32(v [4]int32) *ClearColorValue {
	*c = ClearColorInt32(v[0], v[1], v[2], v[3])
	return c
}

func (c *ClearColorValue) SetUint32(v [4]uint32) *ClearColorValue {
	c.raw = v
	return c
}

func (c ClearColorValue) Native() native.ClearColorValue {
	return c.raw
}

// ClearDepthStencilValue wraps VkClearDepthStencilValue.
type ClearDepthStencilValue struct {
	raw native.ClearDepthStencilValue
}

func MakeClearDepthStencilValue(depth float32, stencil uint32) ClearDepthStencilValue {
	return ClearDepthStencilValue{raw: native.ClearDepthStencilValue{Depth: depth, Stencil: stencil}}
}

func (s ClearDepthStencilValue) Depth() float32 {
	return s.raw.Depth
}

func (s *ClearDepthStencilValue) SetDepth(depth float32) *ClearDepthStencilValue {
	s.raw.Depth = depth
	return s
}

func (s ClearDepthStencilValue) Stencil() uint32 {
	return s.raw.Stencil
}

func (s *ClearDepthStencilValue) SetStencil(stencil uint32) *ClearDepthStencilValue {
	s.raw.Stencil = stencil
	return s
}

func (s ClearDepthStencilValue) Native() native.ClearDepthStencilValue {
	return s.raw
}

// ClearValue wraps the VkClearValue union. A render pass reads the color view
// for color attachments and the depth/stencil view for depth attachments.
type ClearValue struct {
	raw native.ClearValue
}

func ClearValueColor(color ClearColorValue) ClearValue {
	return ClearValue{raw: native.ClearValue(color.raw)}
}

func ClearValueDepthStencil(ds ClearDepthStencilValue) ClearValue {
	var v ClearValue
	v.SetDepthStencil(ds)
	return v
}

func (v ClearValue) Color() ClearColorValue {
	return ClearColorValue{raw: native.ClearColorValue(v.raw)}
}

func (v *ClearValue) SetColor(color ClearColorValue) *ClearValue {
	v.raw = native.ClearValue(color.raw)
	return v
}

func (v ClearValue) DepthStencil() ClearDepthStencilValue {
	return MakeClearDepthStencilValue(math.Float32frombits(v.raw[0]), v.raw[1])
}

func (v *ClearValue) SetDepthStencil(ds ClearDepthStencilValue) *ClearValue {
	v.raw = native.ClearValue{math.Float32bits(ds.raw.Depth), ds.raw.Stencil}
	return v
}

func (v ClearValue) Native() native.ClearValue {
	return v.raw
}

// CmdClearColorImageRanges records vkCmdClearColorImage over a slice of
// subresource ranges.
func (d *Dispatch) CmdClearColorImageRanges(
	commandBuffer CommandBuffer,
	image Image,
	imageLayout ImageLayout,
	color ClearColorValue,
	ranges []ImageSubresourceRange,
) {
	var rangesPtr *ImageSubresourceRange
	if len(ranges) > 0 {
		rangesPtr = &ranges[0]
	}
	d.CmdClearColorImage(commandBuffer, image, imageLayout, &color, uint32(len(ranges)), rangesPtr)
}
