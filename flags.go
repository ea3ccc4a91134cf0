// flags.go
package vk

import (
	"fmt"
	"strings"
)

// Bit is implemented by every *FlagBits enumeration.
type Bit interface {
	~uint32
	fmt.Stringer
}

// Flags is a bitmask of B values. The zero value is the empty mask. Masks of
// different bit types do not mix: Go's |, & and ^ only accept operands of the
// same Flags instantiation. Bits outside the defined set are kept and
// forwarded unchanged.
type Flags[B Bit] uint32

// FlagsOf returns the mask with exactly the given bits set.
func FlagsOf[B Bit](bits ...B) Flags[B] {
	var f Flags[B]
	for _, b := range bits {
		f |= Flags[B](b)
	}
	return f
}

func (f Flags[B]) Or(o Flags[B]) Flags[B]  { return f | o }
func (f Flags[B]) And(o Flags[B]) Flags[B] { return f & o }
func (f Flags[B]) Xor(o Flags[B]) Flags[B] { return f ^ o }

func (f Flags[B]) OrBit(b B) Flags[B]  { return f | Flags[B](b) }
func (f Flags[B]) AndBit(b B) Flags[B] { return f & Flags[B](b) }
func (f Flags[B]) XorBit(b B) Flags[B] { return f ^ Flags[B](b) }

// Set, Clear and Toggle modify the mask in place and return it for chaining.
func (f *Flags[B]) Set(b B) *Flags[B] {
	*f |= Flags[B](b)
	return f
}

func (f *Flags[B]) Clear(b B) *Flags[B] {
	*f &^= Flags[B](b)
	return f
}

func (f *Flags[B]) Toggle(b B) *Flags[B] {
	*f ^= Flags[B](b)
	return f
}

func (f Flags[B]) IsEmpty() bool { return f == 0 }

func (f Flags[B]) Any() bool { return f != 0 }

// Has reports whether every bit of b is set. A zero b is always contained.
func (f Flags[B]) Has(b B) bool { return f&Flags[B](b) == Flags[B](b) }

// Mask returns the raw integer.
func (f Flags[B]) Mask() uint32 { return uint32(f) }

// String lists the set bits in ascending order, separated by " | ". Bits
// without a name are left out, so an empty or fully unknown mask yields "".
func (f Flags[B]) String() string {
	if f == 0 {
		return ""
	}
	var names []string
	for i := 0; i < 32; i++ {
		bit := uint32(1) << i
		if uint32(f)&bit == 0 {
			continue
		}
		if name := B(bit).String(); name != "unknown" {
			names = append(names, name)
		}
	}
	return strings.Join(names, " | ")
}
