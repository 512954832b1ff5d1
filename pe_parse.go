package peheader

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// HeaderInfo is the result of the header location pipeline: the raw DOS
// header, the verified PE signature and its absolute offset, and the offset
// immediately after the signature where COFF decoding takes over. Values are
// immutable once returned.
type HeaderInfo struct {
	DOSHeader IMAGE_DOS_HEADER
	PEOffset  int64
	Signature [4]byte

	// NextOffset is PEOffset+4, the handoff point for the COFF file header.
	NextOffset int64
}

// ParseHeaders runs the DOS header decode and PE signature check over a byte
// source positioned at its start. On success the reader is left positioned
// immediately after the PE signature; on failure the first error encountered
// is returned and the reader position is unspecified.
func ParseHeaders(reader io.ReadSeeker) (*HeaderInfo, error) {
	cursor := NewCursor(reader)

	info := &HeaderInfo{}
	if err := info.DOSHeader.ReadFrom(cursor); err != nil {
		return nil, err
	}
	if err := locatePESignature(cursor, info); err != nil {
		return nil, err
	}
	return info, nil
}

// locatePESignature repositions the cursor from the end of the DOS header to
// Lfanew via a relative seek and verifies the 4-byte PE signature there.
// An Lfanew pointing into (or before) the DOS header is malformed input; a
// header cannot point into itself.
func locatePESignature(cursor *Cursor, info *HeaderInfo) error {
	lfanew := int64(info.DOSHeader.Lfanew)
	if lfanew < IMAGE_DOS_HEADER_SIZE {
		return errors.WithMessagef(ErrInvalidHeaderOffset, "e_lfanew=0x%x", lfanew)
	}
	if err := cursor.SeekRelative(lfanew - cursor.Offset()); err != nil {
		return err
	}

	signature, err := cursor.ReadExact(4)
	if err != nil {
		return err
	}
	if !bytes.Equal(signature, IMAGE_NT_HEADER_SIGNATURE) {
		return errors.WithMessagef(ErrInvalidPESignature, "at offset 0x%x", lfanew)
	}

	info.PEOffset = lfanew
	copy(info.Signature[:], signature)
	info.NextOffset = cursor.Offset()
	return nil
}
