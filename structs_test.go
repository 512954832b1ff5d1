package peheader

import (
	"bytes"
	"testing"

	"github.com/lunixbochs/struc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_IMAGE_DOS_HEADER_Size(t *testing.T) {
	size, err := struc.Sizeof(&IMAGE_DOS_HEADER{})
	assert.NoError(t, err)
	assert.Equal(t, IMAGE_DOS_HEADER_SIZE, size)
}

func Test_IMAGE_FILE_HEADER_Size(t *testing.T) {
	size, err := struc.Sizeof(&IMAGE_FILE_HEADER{})
	assert.NoError(t, err)
	assert.Equal(t, IMAGE_FILE_HEADER_SIZE, size)
}

func Test_IMAGE_DOS_HEADER_ReadFrom(t *testing.T) {
	raw := makeDOSHeader(0x80)
	raw[2] = 0x90 // Cblp
	raw[4] = 0x03 // Cp

	var header IMAGE_DOS_HEADER
	cursor := NewCursor(bytes.NewReader(raw))
	require.NoError(t, header.ReadFrom(cursor))

	assert.Equal(t, uint16(IMAGE_DOS_SIGNATURE), header.Magic)
	assert.Equal(t, uint16(0x90), header.Cblp)
	assert.Equal(t, uint16(3), header.Cp)
	assert.Equal(t, int32(0x80), header.Lfanew)
	assert.Equal(t, int64(IMAGE_DOS_HEADER_SIZE), cursor.Offset())
}

func Test_IMAGE_DOS_HEADER_ReversedSignature(t *testing.T) {
	raw := makeDOSHeader(0x80)
	raw[0], raw[1] = 'Z', 'M'

	var header IMAGE_DOS_HEADER
	err := header.ReadFrom(NewCursor(bytes.NewReader(raw)))
	assert.NoError(t, err)
	assert.Equal(t, uint16(IMAGE_DOS_SIGNATURE_REVERSED), header.Magic)
}

func Test_IMAGE_DOS_HEADER_BadSignature(t *testing.T) {
	raw := makeDOSHeader(0x80)
	raw[0], raw[1] = 'X', 'X'

	var header IMAGE_DOS_HEADER
	cursor := NewCursor(bytes.NewReader(raw))
	err := header.ReadFrom(cursor)
	assert.ErrorIs(t, err, ErrInvalidSignature)
	// Nothing past the signature may have been consumed.
	assert.Equal(t, int64(2), cursor.Offset())
}

func Test_IMAGE_DOS_HEADER_Truncated(t *testing.T) {
	raw := makeDOSHeader(0x80)

	var header IMAGE_DOS_HEADER
	err := header.ReadFrom(NewCursor(bytes.NewReader(raw[:40])))
	assert.ErrorIs(t, err, ErrTruncated)
}

func Test_IMAGE_DOS_HEADER_LegacySize(t *testing.T) {
	header := IMAGE_DOS_HEADER{Cp: 3, Cblp: 0x90}
	assert.Equal(t, uint32(2*512+0x90), header.LegacySize())

	header = IMAGE_DOS_HEADER{Cp: 2, Cblp: 0}
	assert.Equal(t, uint32(1024), header.LegacySize())
}
