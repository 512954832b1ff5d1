package peheader

import (
	"bytes"
	"errors"

	"github.com/lunixbochs/struc"
)

const (
	IMAGE_DOS_SIGNATURE          = 0x5A4D // "MZ"
	IMAGE_DOS_SIGNATURE_REVERSED = 0x4D5A // "ZM", emitted by endian-naive legacy toolchains
	IMAGE_DOS_HEADER_SIZE        = 64
	IMAGE_FILE_HEADER_SIZE       = 20
)

var (
	IMAGE_NT_HEADER_SIGNATURE = []byte{'P', 'E', 0, 0}
)

var (
	ErrTruncated           = errors.New("truncated file")
	ErrSeekOutOfRange      = errors.New("seek before start of stream")
	ErrInvalidSignature    = errors.New("invalid DOS header signature")
	ErrInvalidHeaderOffset = errors.New("e_lfanew points inside the DOS header")
	ErrInvalidPESignature  = errors.New("PE signature not found at e_lfanew")
)

// IMAGE_DOS_HEADER is the 64-byte legacy MS-DOS stub header at the start of
// every PE file. Field layout follows winnt.h; all integers little-endian.
type IMAGE_DOS_HEADER struct {
	Magic    uint16     `struc:"uint16,little"` // Magic number ("MZ" or "ZM")
	Cblp     uint16     `struc:"uint16,little"` // Bytes on last page of file
	Cp       uint16     `struc:"uint16,little"` // Pages in file
	Crlc     uint16     `struc:"uint16,little"` // Relocations
	Cparhdr  uint16     `struc:"uint16,little"` // Size of header in paragraphs
	Minalloc uint16     `struc:"uint16,little"` // Minimum extra paragraphs needed
	Maxalloc uint16     `struc:"uint16,little"` // Maximum extra paragraphs needed
	Ss       uint16     `struc:"uint16,little"` // Initial (relative) SS value
	Sp       uint16     `struc:"uint16,little"` // Initial SP value
	Csum     uint16     `struc:"uint16,little"` // Checksum; 0 means unused
	Ip       uint16     `struc:"uint16,little"` // Initial IP value
	Cs       uint16     `struc:"uint16,little"` // Initial (relative) CS value
	Lfarlc   uint16     `struc:"uint16,little"` // File address of relocation table
	Ovno     uint16     `struc:"uint16,little"` // Overlay number
	Res      [4]uint16  `struc:"[4]uint16"`     // Reserved words
	Oemid    uint16     `struc:"uint16,little"` // OEM identifier (for e_oeminfo)
	Oeminfo  uint16     `struc:"uint16,little"` // OEM information; e_oemid specific
	Res2     [10]uint16 `struc:"[10]uint16"`    // Reserved words
	Lfanew   int32      `struc:"int32,little"`  // File address of new exe header
}

// ReadFrom decodes the DOS header from a cursor positioned at offset 0.
// The 2-byte signature is validated before any further field is read; the
// cursor is left exactly past the 64-byte header on success.
func (h *IMAGE_DOS_HEADER) ReadFrom(cursor *Cursor) error {
	magic, err := cursor.ReadUint16()
	if err != nil {
		return err
	}
	if magic != IMAGE_DOS_SIGNATURE && magic != IMAGE_DOS_SIGNATURE_REVERSED {
		return ErrInvalidSignature
	}
	if err = cursor.SeekRelative(-2); err != nil {
		return err
	}

	raw, err := cursor.ReadExact(IMAGE_DOS_HEADER_SIZE)
	if err != nil {
		return err
	}
	return struc.Unpack(bytes.NewReader(raw), h)
}

// LegacySize returns the DOS-era file size encoded by the Cp/Cblp pair.
// Zero Cblp means the last 512-byte page is full.
func (h *IMAGE_DOS_HEADER) LegacySize() uint32 {
	if h.Cp == 0 {
		return uint32(h.Cblp)
	}
	size := uint32(h.Cp) * 512
	if h.Cblp > 0 {
		size = size - 512 + uint32(h.Cblp)
	}
	return size
}

// IMAGE_FILE_HEADER is the 20-byte COFF file header immediately following
// the PE signature. It is decoded by the collaborator consuming the handoff
// cursor, not by the locator pipeline itself.
type IMAGE_FILE_HEADER struct {
	Machine              uint16 `struc:"uint16,little"`
	NumberOfSections     uint16 `struc:"uint16,little"`
	TimeDateStamp        uint32 `struc:"uint32,little"`
	PointerToSymbolTable uint32 `struc:"uint32,little"`
	NumberOfSymbols      uint32 `struc:"uint32,little"`
	SizeOfOptionalHeader uint16 `struc:"uint16,little"`
	Characteristics      uint16 `struc:"uint16,little"`
}

func (h *IMAGE_FILE_HEADER) ReadFrom(cursor *Cursor) error {
	raw, err := cursor.ReadExact(IMAGE_FILE_HEADER_SIZE)
	if err != nil {
		return err
	}
	return struc.Unpack(bytes.NewReader(raw), h)
}
