package peheader

import (
	"github.com/kardianos/osext"
)

// ParseSelf decodes the headers of the currently running executable. On a
// non-PE host binary this fails with ErrInvalidSignature.
func ParseSelf() (*PEBinary, error) {
	exe, err := osext.Executable()
	if err != nil {
		return nil, err
	}
	return ParseFile(exe)
}
