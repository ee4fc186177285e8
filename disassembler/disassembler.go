// disassembler takes a filename and loads it, then disassembles it to
// stdout starting at the first instruction.
// If the filename ends in .prg (case insensitive) it will assume this
// is a C64 program file and use the first 2 bytes as the load
// address. If the load address is 0x0801 it will then assume it's a
// BASIC program and start listing it until it ends. At that point
// it'll disassemble until the end of the loaded data.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/sixfiveten/emu6510/c64basic"
	"github.com/sixfiveten/emu6510/disassemble"
	"github.com/sixfiveten/emu6510/loader"
	"github.com/sixfiveten/emu6510/memory"
)

var (
	startPC = flag.Int("start_pc", 0x0000, "PC value to start disassembling")
	offset  = flag.Int("offset", 0x0000, "Offset into RAM to start loading data. All other RAM will be zero'd out. Ignored for PRG files.")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [-start_pc <PC> -offset <offset>] <filename>", os.Args[0])
	}
	fn := flag.Args()[0]

	c64 := false
	parts := strings.Split(fn, ".")
	suffix := strings.ToLower(parts[len(parts)-1])
	if suffix == "prg" {
		c64 = true
		fmt.Println("C64 program file")
	}

	f, err := memory.NewRAM(1<<16, nil)
	if err != nil {
		log.Fatalf("Can't initialize RAM: %v", err)
	}
	f.PowerOn()
	b, err := ioutil.ReadFile(fn)
	if err != nil {
		log.Fatalf("Can't open %s - %v", fn, err)
	}

	pc := uint16(*startPC)
	var dataLen int
	if c64 {
		addr, err := loader.LoadPRG(f, b)
		if err != nil {
			log.Fatalf("Can't load %s: %v", fn, err)
		}
		pc = addr
		*offset = int(addr)
		dataLen = len(b) - 2
	} else {
		max := 1<<16 - *offset
		if l := len(b); l > max {
			log.Printf("Length %d at offset %d too long, truncating to 64k", l, *offset)
			b = b[:max]
		}
		loader.LoadRaw(f, uint16(*offset), b)
		dataLen = len(b)
	}
	fmt.Printf("0x%.2X bytes at pc: %.4X\n", dataLen, pc)

	if c64 && *offset == int(c64basic.LoadAddr) {
		for {
			out, newPC, err := c64basic.List(pc, f)
			if newPC == 0x0000 {
				pc += 2
				dataLen -= int(pc - c64basic.LoadAddr)
				fmt.Printf("PC: %.4X\n", pc)
				break
			}
			fmt.Printf("%.4X %s\n", pc, out)
			if err != nil {
				fmt.Printf("%v", err)
				os.Exit(1)
			}
			pc = newPC
		}
	}

	cnt := 0
	for cnt < dataLen {
		dis, off := disassemble.Step(pc, f)
		pc += uint16(off)
		cnt += off
		fmt.Printf("%s\n", dis)
	}
}
