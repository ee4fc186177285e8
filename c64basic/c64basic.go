// Package c64basic lists tokenized Commodore 64 BASIC V2 programs
// resident in a memory.Bank at the standard $0801 load point. A stored
// program is a linked list of lines: a pointer to the next line, a
// line number, then keyword tokens and literal characters up to a NUL
// terminator. Listing walks that structure; it never executes
// anything.
package c64basic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sixfiveten/emu6510/memory"
)

// LoadAddr is where a BASIC program normally resides.
const LoadAddr = uint16(0x0801)

// tokenBase is the first byte value that encodes a keyword; everything
// below it is a literal character.
const tokenBase = 0x80

// tokens maps byte values $80-$CB to their keywords, laid out the same
// way disassemble lays out its opcode-name table: a fixed data table
// indexed by (token - tokenBase), no branch tree. $AB is the Shifted
// minus glyph, not ASCII '-'.
var tokens = [0x4C]string{
	"END", "FOR", "NEXT", "DATA", "INPUT#", "INPUT", "DIM", "READ",
	"LET", "GOTO", "RUN", "IF", "RESTORE", "GOSUB", "RETURN", "REM",
	"STOP", "ON", "WAIT", "LOAD", "SAVE", "VERIFY", "DEF", "POKE",
	"PRINT#", "PRINT", "CONT", "LIST", "CLR", "CMD", "SYS", "OPEN",
	"CLOSE", "GET", "NEW", "TAB(", "TO", "FN", "SPC(", "THEN",
	"NOT", "STEP", "+", "−", "*", "/", "^", "AND",
	"OR", ">", "=", "<", "SGN", "INT", "ABS", "USR",
	"FRE", "POS", "SQR", "RND", "LOG", "EXP", "COS", "SIN",
	"TAN", "ATN", "PEEK", "LEN", "STR$", "VAL", "ASC", "CHR$",
	"LEFT$", "RIGHT$", "MID$", "GO",
}

func readWord(r memory.Bank, addr uint16) uint16 {
	return uint16(r.Read(addr)) | uint16(r.Read(addr+1))<<8
}

// List renders the BASIC line starting at pc and returns its text plus
// the address of the next line. A next-line pointer of $0000 means end
// of program: List returns an empty string and a zero PC. A byte above
// the token range aborts the line with an error carrying as much text
// as did tokenize, the same way a real machine stops LISTing. No loop
// detection is done here; a program whose line links cycle will list
// forever unless the caller compares PCs.
//
// Tokens below tokenBase are emitted as their ASCII characters;
// rendering PETSCII is up to the caller.
func List(pc uint16, r memory.Bank) (string, uint16, error) {
	next := readWord(r, pc)
	if next == 0x0000 {
		return "", 0x0000, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d ", readWord(r, pc+2))

	for pc += 4; ; pc++ {
		tok := r.Read(pc)
		if tok == 0x00 {
			break
		}
		switch {
		case tok < tokenBase:
			b.WriteByte(tok)
		case int(tok-tokenBase) < len(tokens):
			b.WriteString(tokens[tok-tokenBase])
		default:
			return b.String(), 0, errors.New("?SYNTAX  ERROR")
		}
	}
	return b.String(), next, nil
}
