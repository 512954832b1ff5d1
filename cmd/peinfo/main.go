// Program peinfo prints the validated DOS and COFF headers of a Windows
// PE binary: where the PE signature was found, the target machine and the
// image characteristic flags.
package main

import (
	"flag"
	"fmt"
	"os"

	peheader "github.com/peclave/go-peheader"
)

var (
	showDOS *bool = flag.Bool("dos", false, "Also print the raw DOS header fields")
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] binary.exe\n", os.Args[0])
		os.Exit(255)
	}

	bin, err := peheader.ParseFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", args[0], err)
		os.Exit(1)
	}

	fmt.Printf("PE signature at offset 0x%x\n", bin.Headers.PEOffset)
	fmt.Printf("Machine:         %s (0x%04x)\n", bin.Machine, uint16(bin.Machine))
	fmt.Printf("Characteristics: %s (0x%04x)\n", bin.Characteristics, uint16(bin.Characteristics))
	fmt.Printf("Sections:        %d\n", bin.FileHeader.NumberOfSections)

	if *showDOS {
		h := &bin.Headers.DOSHeader
		fmt.Printf("\nDOS header:\n")
		fmt.Printf("  magic:       0x%04x\n", h.Magic)
		fmt.Printf("  legacy size: %d bytes (%d pages, %d on last)\n", h.LegacySize(), h.Cp, h.Cblp)
		fmt.Printf("  checksum:    0x%04x\n", h.Csum)
		fmt.Printf("  relocs:      %d at 0x%04x\n", h.Crlc, h.Lfarlc)
		fmt.Printf("  e_lfanew:    0x%08x\n", h.Lfanew)
	}
}
