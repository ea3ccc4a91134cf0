package vk

import "testing"

func TestFlagsAlgebra(t *testing.T) {
	a := FlagsOf(BUFFER_USAGE_TRANSFER_SRC_BIT, BUFFER_USAGE_VERTEX_BUFFER_BIT)
	b := FlagsOf(BUFFER_USAGE_VERTEX_BUFFER_BIT, BUFFER_USAGE_INDEX_BUFFER_BIT)

	if got, want := a.Or(b).Mask(), uint32(0x01|0x80|0x40); got != want {
		t.Errorf("Or = %#x, want %#x", got, want)
	}
	if got, want := a.And(b).Mask(), uint32(0x80); got != want {
		t.Errorf("And = %#x, want %#x", got, want)
	}
	if got, want := a.Xor(b).Mask(), uint32(0x01|0x40); got != want {
		t.Errorf("Xor = %#x, want %#x", got, want)
	}
	if a|b != a.Or(b) || a&b != a.And(b) || a^b != a.Xor(b) {
		t.Error("operators and named methods disagree")
	}
	if a.OrBit(BUFFER_USAGE_INDEX_BUFFER_BIT) != a.Or(FlagsOf(BUFFER_USAGE_INDEX_BUFFER_BIT)) {
		t.Error("OrBit differs from Or with a single-bit mask")
	}
	if !a.AndBit(BUFFER_USAGE_INDEX_BUFFER_BIT).IsEmpty() {
		t.Error("AndBit with an unset bit should be empty")
	}
	if a.XorBit(BUFFER_USAGE_TRANSFER_SRC_BIT) != FlagsOf(BUFFER_USAGE_VERTEX_BUFFER_BIT) {
		t.Error("XorBit should clear a set bit")
	}
}

func TestFlagsIdentities(t *testing.T) {
	var zero BufferUsageFlags
	masks := []BufferUsageFlags{
		0,
		FlagsOf(BUFFER_USAGE_TRANSFER_DST_BIT),
		FlagsOf(BUFFER_USAGE_TRANSFER_SRC_BIT, BUFFER_USAGE_INDEX_BUFFER_BIT),
		BufferUsageFlags(0xFFFFFFFF),
	}
	for _, m := range masks {
		if m|zero != m {
			t.Errorf("%#x | 0 != itself", m.Mask())
		}
		if m&m != m {
			t.Errorf("%#x & itself != itself", m.Mask())
		}
		if m^m != zero {
			t.Errorf("%#x ^ itself != 0", m.Mask())
		}
		if m.IsEmpty() == m.Any() {
			t.Errorf("IsEmpty and Any agree for %#x", m.Mask())
		}
	}
}

func TestFlagsSetClearToggle(t *testing.T) {
	var f QueueFlags
	f.Set(QUEUE_GRAPHICS_BIT).Set(QUEUE_COMPUTE_BIT)
	if !f.Has(QUEUE_GRAPHICS_BIT) || !f.Has(QUEUE_COMPUTE_BIT) {
		t.Fatalf("Set: got %#x", f.Mask())
	}
	f.Clear(QUEUE_GRAPHICS_BIT)
	if f.Has(QUEUE_GRAPHICS_BIT) {
		t.Errorf("Clear left the bit set: %#x", f.Mask())
	}
	f.Toggle(QUEUE_TRANSFER_BIT).Toggle(QUEUE_COMPUTE_BIT)
	if f != FlagsOf(QUEUE_TRANSFER_BIT) {
		t.Errorf("Toggle: got %#x", f.Mask())
	}
}

func TestFlagsKeepUndefinedBits(t *testing.T) {
	f := QueueFlags(0x80000000).OrBit(QUEUE_GRAPHICS_BIT)
	if f.Mask() != 0x80000001 {
		t.Errorf("Mask = %#x, want 0x80000001", f.Mask())
	}
}

func TestFlagsString(t *testing.T) {
	tests := []struct {
		name string
		f    BufferUsageFlags
		want string
	}{
		{"empty", 0, ""},
		{"single", FlagsOf(BUFFER_USAGE_TRANSFER_SRC_BIT), "TransferSrc"},
		{"ascending", FlagsOf(BUFFER_USAGE_VERTEX_BUFFER_BIT, BUFFER_USAGE_TRANSFER_DST_BIT), "TransferDst | VertexBuffer"},
		{"unknown bits dropped", BufferUsageFlags(0x80000000).OrBit(BUFFER_USAGE_TRANSFER_SRC_BIT), "TransferSrc"},
		{"only unknown", BufferUsageFlags(0x80000000), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlaceholderFlags(t *testing.T) {
	var f InstanceCreateFlags
	if f.String() != "" {
		t.Errorf("empty placeholder mask = %q", f.String())
	}
	if got := InstanceCreateFlagBits(1).String(); got != "unknown" {
		t.Errorf("placeholder bit = %q, want unknown", got)
	}
	if got := InstanceCreateFlags(3).String(); got != "" {
		t.Errorf("placeholder mask with bits = %q, want empty", got)
	}
}
