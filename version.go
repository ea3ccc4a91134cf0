// version.go
package vk

import "github.com/NOT-REAL-GAMES/vk/native"

// HEADER_VERSION is the Vulkan header revision the native layouts match.
const HEADER_VERSION = native.HeaderVersion

// MakeAPIVersion packs a version the way VK_MAKE_API_VERSION does: 3 bits of
// variant, 7 of major, 10 of minor and 12 of patch.
func MakeAPIVersion(variant, major, minor, patch uint32) uint32 {
	return variant<<29 | major<<22 | minor<<12 | patch
}

func APIVersionVariant(version uint32) uint32 { return version >> 29 }

func APIVersionMajor(version uint32) uint32 { return (version >> 22) & 0x7F }

func APIVersionMinor(version uint32) uint32 { return (version >> 12) & 0x3FF }

func APIVersionPatch(version uint32) uint32 { return version & 0xFFF }

const (
	API_VERSION_1_0 uint32 = 0<<29 | 1<<22 | 0<<12
	API_VERSION_1_1 uint32 = 0<<29 | 1<<22 | 1<<12
	API_VERSION_1_2 uint32 = 0<<29 | 1<<22 | 2<<12
	API_VERSION_1_3 uint32 = 0<<29 | 1<<22 | 3<<12
	API_VERSION_1_4 uint32 = 0<<29 | 1<<22 | 4<<12
)

type (
	DeviceSize = native.DeviceSize
	Bool32     = native.Bool32
)

const (
	TRUE  Bool32 = 1
	FALSE Bool32 = 0
)

const (
	WHOLE_SIZE                    DeviceSize = ^DeviceSize(0)
	QUEUE_FAMILY_IGNORED          uint32     = ^uint32(0)
	REMAINING_MIP_LEVELS          uint32     = ^uint32(0)
	REMAINING_ARRAY_LAYERS        uint32     = ^uint32(0)
	ATTACHMENT_UNUSED             uint32     = ^uint32(0)
	SUBPASS_EXTERNAL              uint32     = ^uint32(0)
	MAX_EXTENSION_NAME_SIZE                  = 256
	MAX_DESCRIPTION_SIZE                     = 256
	MAX_PHYSICAL_DEVICE_NAME_SIZE            = 256
	MAX_MEMORY_TYPES                         = 32
	MAX_MEMORY_HEAPS                         = 16
	UUID_SIZE                                = 16
)
