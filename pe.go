package peheader

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// PEBinary holds the validated headers of a PE image: the locator pipeline's
// output plus the COFF file header that follows the signature, with the
// machine and characteristics fields decoded to their typed forms.
type PEBinary struct {
	Headers         *HeaderInfo
	FileHeader      IMAGE_FILE_HEADER
	Machine         ImageFileMachine
	Characteristics ImageFileCharacteristics
}

// NewPEBinary returns the decoded headers of the PE image read from reader.
// The reader must be positioned at the start of the image. Unknown machine
// codes are rejected; see MachineFromValue.
func NewPEBinary(reader io.ReadSeeker) (*PEBinary, error) {
	info, err := ParseHeaders(reader)
	if err != nil {
		return nil, err
	}

	bin := &PEBinary{Headers: info}

	// ParseHeaders leaves the reader at NextOffset; the COFF file header
	// starts right there.
	cursor := NewCursorAt(reader, info.NextOffset)
	if err = bin.FileHeader.ReadFrom(cursor); err != nil {
		return nil, err
	}

	if bin.Machine, err = MachineFromValue(bin.FileHeader.Machine); err != nil {
		return nil, err
	}
	bin.Characteristics = ImageFileCharacteristics(bin.FileHeader.Characteristics)

	return bin, nil
}

// ParseFile opens path read-only, decodes its headers and closes the file
// again on every path out.
func ParseFile(path string) (*PEBinary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input file")
	}
	defer file.Close()

	return NewPEBinary(file)
}
