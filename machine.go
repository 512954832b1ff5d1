package peheader

import (
	"fmt"
)

// ImageFileMachine identifies the target CPU architecture of an image, per
// the Machine field of IMAGE_FILE_HEADER. The set of valid codes is closed:
// conversion from a raw value rejects anything outside the published table.
type ImageFileMachine uint16

const (
	IMAGE_FILE_MACHINE_UNKNOWN   ImageFileMachine = 0x0000
	IMAGE_FILE_MACHINE_AM33      ImageFileMachine = 0x01d3
	IMAGE_FILE_MACHINE_AMD64     ImageFileMachine = 0x8664
	IMAGE_FILE_MACHINE_ARM       ImageFileMachine = 0x01c0
	IMAGE_FILE_MACHINE_ARM64     ImageFileMachine = 0xaa64
	IMAGE_FILE_MACHINE_ARMNT     ImageFileMachine = 0x01c4
	IMAGE_FILE_MACHINE_EBC       ImageFileMachine = 0x0ebc
	IMAGE_FILE_MACHINE_I386      ImageFileMachine = 0x014c
	IMAGE_FILE_MACHINE_IA64      ImageFileMachine = 0x0200
	IMAGE_FILE_MACHINE_M32R      ImageFileMachine = 0x9041
	IMAGE_FILE_MACHINE_MIPS16    ImageFileMachine = 0x0266
	IMAGE_FILE_MACHINE_MIPSFPU   ImageFileMachine = 0x0366
	IMAGE_FILE_MACHINE_MIPSFPU16 ImageFileMachine = 0x0466
	IMAGE_FILE_MACHINE_POWERPC   ImageFileMachine = 0x01f0
	IMAGE_FILE_MACHINE_POWERPCFP ImageFileMachine = 0x01f1
	IMAGE_FILE_MACHINE_R4000     ImageFileMachine = 0x0166
	IMAGE_FILE_MACHINE_RISCV32   ImageFileMachine = 0x5032
	IMAGE_FILE_MACHINE_RISCV64   ImageFileMachine = 0x5064
	IMAGE_FILE_MACHINE_RISCV128  ImageFileMachine = 0x5128
	IMAGE_FILE_MACHINE_SH3       ImageFileMachine = 0x01a2
	IMAGE_FILE_MACHINE_SH3DSP    ImageFileMachine = 0x01a3
	IMAGE_FILE_MACHINE_SH4       ImageFileMachine = 0x01a6
	IMAGE_FILE_MACHINE_SH5       ImageFileMachine = 0x01a8
	IMAGE_FILE_MACHINE_THUMB     ImageFileMachine = 0x01c2
	IMAGE_FILE_MACHINE_WCEMIPSV2 ImageFileMachine = 0x0169
)

var machineNames = map[ImageFileMachine]string{
	IMAGE_FILE_MACHINE_UNKNOWN:   "Unknown",
	IMAGE_FILE_MACHINE_AM33:      "Matsushita AM33",
	IMAGE_FILE_MACHINE_AMD64:     "x64",
	IMAGE_FILE_MACHINE_ARM:       "ARM little endian",
	IMAGE_FILE_MACHINE_ARM64:     "ARM64 little endian",
	IMAGE_FILE_MACHINE_ARMNT:     "ARM Thumb-2 little endian",
	IMAGE_FILE_MACHINE_EBC:       "EFI byte code",
	IMAGE_FILE_MACHINE_I386:      "Intel 386",
	IMAGE_FILE_MACHINE_IA64:      "Intel Itanium",
	IMAGE_FILE_MACHINE_M32R:      "Mitsubishi M32R little endian",
	IMAGE_FILE_MACHINE_MIPS16:    "MIPS16",
	IMAGE_FILE_MACHINE_MIPSFPU:   "MIPS with FPU",
	IMAGE_FILE_MACHINE_MIPSFPU16: "MIPS16 with FPU",
	IMAGE_FILE_MACHINE_POWERPC:   "Power PC little endian",
	IMAGE_FILE_MACHINE_POWERPCFP: "Power PC with floating point",
	IMAGE_FILE_MACHINE_R4000:     "MIPS little endian",
	IMAGE_FILE_MACHINE_RISCV32:   "RISC-V 32-bit",
	IMAGE_FILE_MACHINE_RISCV64:   "RISC-V 64-bit",
	IMAGE_FILE_MACHINE_RISCV128:  "RISC-V 128-bit",
	IMAGE_FILE_MACHINE_SH3:       "Hitachi SH3",
	IMAGE_FILE_MACHINE_SH3DSP:    "Hitachi SH3 DSP",
	IMAGE_FILE_MACHINE_SH4:       "Hitachi SH4",
	IMAGE_FILE_MACHINE_SH5:       "Hitachi SH5",
	IMAGE_FILE_MACHINE_THUMB:     "Thumb",
	IMAGE_FILE_MACHINE_WCEMIPSV2: "MIPS little-endian WCE v2",
}

// InvalidMachineTypeError reports a machine code outside the published
// table, carrying the offending code for diagnostics.
type InvalidMachineTypeError struct {
	Code uint16
}

func (e *InvalidMachineTypeError) Error() string {
	return fmt.Sprintf("invalid machine type: 0x%04x", e.Code)
}

// MachineFromValue converts a raw 16-bit machine code to its typed variant.
// This is a strict allow-list over the published table; an unrecognized code
// fails rather than being passed through, since downstream layout decisions
// depend on the architecture.
func MachineFromValue(value uint16) (ImageFileMachine, error) {
	machine := ImageFileMachine(value)
	if _, ok := machineNames[machine]; !ok {
		return IMAGE_FILE_MACHINE_UNKNOWN, &InvalidMachineTypeError{Code: value}
	}
	return machine, nil
}

func (m ImageFileMachine) String() string {
	if name, ok := machineNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ImageFileMachine(0x%04x)", uint16(m))
}
