package peheader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Characteristics_EveryBitNamed(t *testing.T) {
	for bit := ImageFileCharacteristics(0x0001); bit != 0; bit <<= 1 {
		name, ok := characteristicNames[bit]
		require.True(t, ok, "bit 0x%04x has no name", uint16(bit))
		assert.NotEmpty(t, name)
		assert.Equal(t, name, bit.Name())
	}
	assert.Len(t, characteristicNames, 16)
}

func Test_Characteristics_FlagsRoundTrip(t *testing.T) {
	// Reserved bit 0x0040 included: decoding must not drop it.
	for _, mask := range []uint16{0x0000, 0x0102, 0x2022, 0x0040, 0x8181, 0xffff} {
		c := ImageFileCharacteristics(mask)
		var reencoded ImageFileCharacteristics
		for _, flag := range c.Flags() {
			reencoded |= flag
		}
		assert.Equal(t, mask, uint16(reencoded), "mask 0x%04x", mask)
	}
}

func Test_Characteristics_Predicates(t *testing.T) {
	c := IMAGE_FILE_EXECUTABLE_IMAGE | IMAGE_FILE_DLL | IMAGE_FILE_LARGE_ADDRESS_AWARE
	assert.True(t, c.IsExecutableImage())
	assert.True(t, c.IsDLL())
	assert.True(t, c.IsLargeAddressAware())
	assert.False(t, c.Has(IMAGE_FILE_RELOCS_STRIPPED))

	var none ImageFileCharacteristics
	assert.False(t, none.IsExecutableImage())
	assert.False(t, none.IsDLL())
}

func Test_Characteristics_String(t *testing.T) {
	c := IMAGE_FILE_EXECUTABLE_IMAGE | IMAGE_FILE_DLL
	assert.Equal(t, "EXECUTABLE_IMAGE|DLL", c.String())

	assert.Equal(t, "(none)", ImageFileCharacteristics(0).String())
	assert.Equal(t, "RESERVED_0040", IMAGE_FILE_RESERVED_0040.String())
}
