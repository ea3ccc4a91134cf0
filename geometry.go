// geometry.go
package vk

import "github.com/NOT-REAL-GAMES/vk/native"

// Offset2D is a signed two-dimensional offset (VkOffset2D).
type Offset2D struct {
	raw native.Offset2D
}

func MakeOffset2D(x int32, y int32) Offset2D {
	return Offset2D{raw: native.Offset2D{
		X: x,
		Y: y,
	}}
}

func NewOffset2D() *Offset2D {
	return &Offset2D{}
}

func (s Offset2D) X() int32 {
	return s.raw.X
}

func (s *Offset2D) SetX(x int32) *Offset2D {
	s.raw.X = x
	return s
}

func (s Offset2D) Y() int32 {
	return s.raw.Y
}

func (s *Offset2D) SetY(y int32) *Offset2D {
	s.raw.Y = y
	return s
}

func (s Offset2D) Native() native.Offset2D {
	return s.raw
}

// Offset3D wraps VkOffset3D.
type Offset3D struct {
	raw native.Offset3D
}

func MakeOffset3D(x int32, y int32, z int32) Offset3D {
	return Offset3D{raw: native.Offset3D{
		X: x,
		Y: y,
		Z: z,
	}}
}

func NewOffset3D() *Offset3D {
	return &Offset3D{}
}

func (s Offset3D) X() int32 {
	return s.raw.X
}

func (s *Offset3D) SetX(x int32) *Offset3D {
	s.raw.X = x
	return s
}

func (s Offset3D) Y() int32 {
	return s.raw.Y
}

func (s *Offset3D) SetY(y int32) *Offset3D {
	s.raw.Y = y
	return s
}

func (s Offset3D) Z() int32 {
	return s.raw.Z
}

func (s *Offset3D) SetZ(z int32) *Offset3D {
	s.raw.Z = z
	return s
}

func (s Offset3D) Native() native.Offset3D {
	return s.raw
}

// Extent2D is an unsigned two-dimensional size (VkExtent2D).
type Extent2D struct {
	raw native.Extent2D
}

func MakeExtent2D(width uint32, height uint32) Extent2D {
	return Extent2D{raw: native.Extent2D{
		Width:  width,
		Height: height,
	}}
}

func NewExtent2D() *Extent2D {
	return &Extent2D{}
}

func (s Extent2D) Width() uint32 {
	return s.raw.Width
}

func (s *Extent2D) SetWidth(width uint32) *Extent2D {
	s.raw.Width = width
	return s
}

func (s Extent2D) Height() uint32 {
	return s.raw.Height
}

func (s *Extent2D) SetHeight(height uint32) *Extent2D {
	s.raw.Height = height
	return s
}

func (s Extent2D) Native() native.Extent2D {
	return s.raw
}

// Extent3D wraps VkExtent3D.
type Extent3D struct {
	raw native.Extent3D
}

func MakeExtent3D(width uint32, height uint32, depth uint32) Extent3D {
	return Extent3D{raw: native.Extent3D{
		Width:  width,
		Height: height,
		Depth:  depth,
	}}
}

func NewExtent3D() *Extent3D {
	return &Extent3D{}
}

func (s Extent3D) Width() uint32 {
	return s.raw.Width
}

func (s *Extent3D) SetWidth(width uint32) *Extent3D {
	s.raw.Width = width
	return s
}

func (s Extent3D) Height() uint32 {
	return s.raw.Height
}

func (s *Extent3D) SetHeight(height uint32) *Extent3D {
	s.raw.Height = height
	return s
}

func (s Extent3D) Depth() uint32 {
	return s.raw.Depth
}

func (s *Extent3D) SetDepth(depth uint32) *Extent3D {
	s.raw.Depth = depth
	return s
}

func (s Extent3D) Native() native.Extent3D {
	return s.raw
}

// Rect2D is a rectangle given by its offset and extent (VkRect2D).
type Rect2D struct {
	raw native.Rect2D
}

func MakeRect2D(offset Offset2D, extent Extent2D) Rect2D {
	return Rect2D{raw: native.Rect2D{
		Offset: offset.raw,
		Extent: extent.raw,
	}}
}

func NewRect2D() *Rect2D {
	return &Rect2D{}
}

func (s Rect2D) Offset() Offset2D {
	return Offset2D{raw: s.raw.Offset}
}

func (s *Rect2D) SetOffset(offset Offset2D) *Rect2D {
	s.raw.Offset = offset.raw
	return s
}

func (s Rect2D) Extent() Extent2D {
	return Extent2D{raw: s.raw.Extent}
}

func (s *Rect2D) SetExtent(extent Extent2D) *Rect2D {
	s.raw.Extent = extent.raw
	return s
}

func (s Rect2D) Native() native.Rect2D {
	return s.raw
}

// Viewport wraps VkViewport.
type Viewport struct {
	raw native.Viewport
}

func MakeViewport(x float32, y float32, width float32, height float32, minDepth float32, maxDepth float32) Viewport {
	return Viewport{raw: native.Viewport{
		X:        x,
		Y:        y,
		Width:    width,
		Height:   height,
		MinDepth: minDepth,
		MaxDepth: maxDepth,
	}}
}

func NewViewport() *Viewport {
	return &Viewport{}
}

func (s Viewport) X() float32 {
	return s.raw.X
}

func (s *Viewport) SetX(x float32) *Viewport {
	s.raw.X = x
	return s
}

func (s Viewport) Y() float32 {
	return s.raw.Y
}

func (s *Viewport) SetY(y float32) *Viewport {
	s.raw.Y = y
	return s
}

func (s Viewport) Width() float32 {
	return s.raw.Width
}

func (s *Viewport) SetWidth(width float32) *Viewport {
	s.raw.Width = width
	return s
}

func (s Viewport) Height() float32 {
	return s.raw.Height
}

func (s *Viewport) SetHeight(height float32) *Viewport {
	s.raw.Height = height
	return s
}

func (s Viewport) MinDepth() float32 {
	return s.raw.MinDepth
}

func (s *Viewport) SetMinDepth(minDepth float32) *Viewport {
	s.raw.MinDepth = minDepth
	return s
}

func (s Viewport) MaxDepth() float32 {
	return s.raw.MaxDepth
}

func (s *Viewport) SetMaxDepth(maxDepth float32) *Viewport {
	s.raw.MaxDepth = maxDepth
	return s
}

func (s Viewport) Native() native.Viewport {
	return s.raw
}
