package vk

import "testing"

func TestAPIVersion(t *testing.T) {
	v := MakeAPIVersion(0, 1, 3, 280)
	if APIVersionVariant(v) != 0 || APIVersionMajor(v) != 1 || APIVersionMinor(v) != 3 || APIVersionPatch(v) != 280 {
		t.Errorf("unpacked %d.%d.%d.%d", APIVersionVariant(v), APIVersionMajor(v), APIVersionMinor(v), APIVersionPatch(v))
	}
	if MakeAPIVersion(0, 1, 0, 0) != API_VERSION_1_0 || MakeAPIVersion(0, 1, 4, 0) != API_VERSION_1_4 {
		t.Error("API_VERSION constants do not match MakeAPIVersion")
	}
	if API_VERSION_1_2 != 4202496 {
		t.Errorf("API_VERSION_1_2 = %d, want 4202496", API_VERSION_1_2)
	}
	if HEADER_VERSION != 328 {
		t.Errorf("HEADER_VERSION = %d", HEADER_VERSION)
	}
}

func TestSpecialConstants(t *testing.T) {
	tests := []struct {
		name string
		got  uint64
		want uint64
	}{
		{"WHOLE_SIZE", uint64(WHOLE_SIZE), ^uint64(0)},
		{"QUEUE_FAMILY_IGNORED", uint64(QUEUE_FAMILY_IGNORED), 0xFFFFFFFF},
		{"REMAINING_MIP_LEVELS", uint64(REMAINING_MIP_LEVELS), 0xFFFFFFFF},
		{"REMAINING_ARRAY_LAYERS", uint64(REMAINING_ARRAY_LAYERS), 0xFFFFFFFF},
		{"ATTACHMENT_UNUSED", uint64(ATTACHMENT_UNUSED), 0xFFFFFFFF},
		{"SUBPASS_EXTERNAL", uint64(SUBPASS_EXTERNAL), 0xFFFFFFFF},
		{"MAX_EXTENSION_NAME_SIZE", MAX_EXTENSION_NAME_SIZE, 256},
		{"MAX_DESCRIPTION_SIZE", MAX_DESCRIPTION_SIZE, 256},
		{"MAX_PHYSICAL_DEVICE_NAME_SIZE", MAX_PHYSICAL_DEVICE_NAME_SIZE, 256},
		{"MAX_MEMORY_TYPES", MAX_MEMORY_TYPES, 32},
		{"MAX_MEMORY_HEAPS", MAX_MEMORY_HEAPS, 16},
		{"UUID_SIZE", UUID_SIZE, 16},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %#x, want %#x", tt.name, tt.got, tt.want)
		}
	}
}
