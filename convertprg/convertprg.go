// convertprg takes a C64 style PRG file and converts it into a 64k
// bin image for running as a test cart.
// This assumes execution will start at 0xD000 which will then JSR to
// the start PC given.
// BRK/IRQ/NMI vectors will all point at 0xC000 which simply infinite
// loops.
//
// Certain parts of RAM in zero page will be initialized with c64
// values (such as the vectors used for finding start of basic, etc),
// the same scaffold loader.InstallTestHarness lays down for the
// in-process conformance harness.
//
// The output file is named after the input with .bin appended onto
// the end.
package main

import (
	"flag"
	"io/ioutil"
	"log"
	"os"

	"github.com/sixfiveten/emu6510/loader"
	"github.com/sixfiveten/emu6510/memory"
)

var (
	startPC = flag.Int("start_pc", 0x0000, "PC value to start execution")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s --start_pc=XXXX <filename>", os.Args[0])
	}
	if *startPC < 0 || *startPC > 65535 {
		log.Fatal("--start_pc out of range. Must be between 0-65535")
	}
	fn := flag.Args()[0]
	b, err := ioutil.ReadFile(fn)
	if err != nil {
		log.Fatalf("Can't open %s - %v", fn, err)
	}

	bank, err := memory.NewRAM(1<<16, nil)
	if err != nil {
		log.Fatalf("Can't initialize RAM: %v", err)
	}

	addr, err := loader.LoadPRG(bank, b)
	if err != nil {
		log.Fatalf("Can't load %s: %v", fn, err)
	}
	log.Printf("Addr is 0x%.4X", addr)

	loader.InstallTestHarness(bank, uint16(*startPC))

	out := make([]byte, 1<<16)
	for i := range out {
		out[i] = bank.Read(uint16(i))
	}

	outfn := fn + ".bin"
	if err := ioutil.WriteFile(outfn, out, 0777); err != nil {
		log.Fatalf("Can't write %q: %v", outfn, err)
	}
}
