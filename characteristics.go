package peheader

import (
	"fmt"
	"strings"
)

// ImageFileCharacteristics is the Characteristics bitmask of
// IMAGE_FILE_HEADER. Flags are independent and freely combinable; every one
// of the 16 bits has a name, reserved bits included, so that decoding and
// re-encoding a mask is lossless.
type ImageFileCharacteristics uint16

const (
	IMAGE_FILE_RELOCS_STRIPPED         ImageFileCharacteristics = 0x0001
	IMAGE_FILE_EXECUTABLE_IMAGE        ImageFileCharacteristics = 0x0002
	IMAGE_FILE_LINE_NUMS_STRIPPED      ImageFileCharacteristics = 0x0004
	IMAGE_FILE_LOCAL_SYMS_STRIPPED     ImageFileCharacteristics = 0x0008
	IMAGE_FILE_AGGRESSIVE_WS_TRIM      ImageFileCharacteristics = 0x0010
	IMAGE_FILE_LARGE_ADDRESS_AWARE     ImageFileCharacteristics = 0x0020
	IMAGE_FILE_RESERVED_0040           ImageFileCharacteristics = 0x0040
	IMAGE_FILE_BYTES_REVERSED_LO       ImageFileCharacteristics = 0x0080
	IMAGE_FILE_32BIT_MACHINE           ImageFileCharacteristics = 0x0100
	IMAGE_FILE_DEBUG_STRIPPED          ImageFileCharacteristics = 0x0200
	IMAGE_FILE_REMOVABLE_RUN_FROM_SWAP ImageFileCharacteristics = 0x0400
	IMAGE_FILE_NET_RUN_FROM_SWAP       ImageFileCharacteristics = 0x0800
	IMAGE_FILE_SYSTEM                  ImageFileCharacteristics = 0x1000
	IMAGE_FILE_DLL                     ImageFileCharacteristics = 0x2000
	IMAGE_FILE_UP_SYSTEM_ONLY          ImageFileCharacteristics = 0x4000
	IMAGE_FILE_BYTES_REVERSED_HI       ImageFileCharacteristics = 0x8000
)

var characteristicNames = map[ImageFileCharacteristics]string{
	IMAGE_FILE_RELOCS_STRIPPED:         "RELOCS_STRIPPED",
	IMAGE_FILE_EXECUTABLE_IMAGE:        "EXECUTABLE_IMAGE",
	IMAGE_FILE_LINE_NUMS_STRIPPED:      "LINE_NUMS_STRIPPED",
	IMAGE_FILE_LOCAL_SYMS_STRIPPED:     "LOCAL_SYMS_STRIPPED",
	IMAGE_FILE_AGGRESSIVE_WS_TRIM:      "AGGRESSIVE_WS_TRIM",
	IMAGE_FILE_LARGE_ADDRESS_AWARE:     "LARGE_ADDRESS_AWARE",
	IMAGE_FILE_RESERVED_0040:           "RESERVED_0040",
	IMAGE_FILE_BYTES_REVERSED_LO:       "BYTES_REVERSED_LO",
	IMAGE_FILE_32BIT_MACHINE:           "32BIT_MACHINE",
	IMAGE_FILE_DEBUG_STRIPPED:          "DEBUG_STRIPPED",
	IMAGE_FILE_REMOVABLE_RUN_FROM_SWAP: "REMOVABLE_RUN_FROM_SWAP",
	IMAGE_FILE_NET_RUN_FROM_SWAP:       "NET_RUN_FROM_SWAP",
	IMAGE_FILE_SYSTEM:                  "SYSTEM",
	IMAGE_FILE_DLL:                     "DLL",
	IMAGE_FILE_UP_SYSTEM_ONLY:          "UP_SYSTEM_ONLY",
	IMAGE_FILE_BYTES_REVERSED_HI:       "BYTES_REVERSED_HI",
}

func (c ImageFileCharacteristics) Has(flag ImageFileCharacteristics) bool {
	return c&flag != 0
}

// Flags returns every set bit as its own single-flag value, lowest bit
// first. Reserved bits are reported like any other flag; OR-ing the result
// back together reproduces the original mask exactly.
func (c ImageFileCharacteristics) Flags() []ImageFileCharacteristics {
	var flags []ImageFileCharacteristics
	for bit := ImageFileCharacteristics(0x0001); bit != 0; bit <<= 1 {
		if c.Has(bit) {
			flags = append(flags, bit)
		}
	}
	return flags
}

func (c ImageFileCharacteristics) IsExecutableImage() bool {
	return c.Has(IMAGE_FILE_EXECUTABLE_IMAGE)
}

func (c ImageFileCharacteristics) IsDLL() bool {
	return c.Has(IMAGE_FILE_DLL)
}

func (c ImageFileCharacteristics) IsLargeAddressAware() bool {
	return c.Has(IMAGE_FILE_LARGE_ADDRESS_AWARE)
}

func (c ImageFileCharacteristics) String() string {
	if c == 0 {
		return "(none)"
	}
	var names []string
	for _, flag := range c.Flags() {
		names = append(names, characteristicNames[flag])
	}
	return strings.Join(names, "|")
}

// Name returns the name of a single-flag value.
func (c ImageFileCharacteristics) Name() string {
	if name, ok := characteristicNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ImageFileCharacteristics(0x%04x)", uint16(c))
}
