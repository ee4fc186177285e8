package cpu

// The 256-entry dispatch table. $CF decodes as DCP abs (3-byte
// absolute) and $FF as ISC abs,X (3-byte absolute,X); several
// published opcode maps mis-tag these two, so they're worth calling
// out. See DESIGN.md.
//
// pageCross marks entries where crossing a page boundary while
// computing the effective address costs an extra cycle. Instructions
// that write memory already charge the worst case unconditionally, so
// they leave it unset.

type opcodeEntry struct {
	exec      func(*Chip)
	mode      addrMode
	cycles    uint8
	pageCross uint8
}

var opcodes = [256]opcodeEntry{
	0x00: {(*Chip).iBRK, IMPLIED, 7, 0},
	0x01: {(*Chip).iORA, INDIRECT_X, 6, 0},
	0x02: {(*Chip).iJAM, IMPLIED, 2, 0},
	0x03: {(*Chip).iSLO, INDIRECT_X, 8, 0},
	0x04: {(*Chip).iNOP, ZEROPAGE, 3, 0},
	0x05: {(*Chip).iORA, ZEROPAGE, 3, 0},
	0x06: {(*Chip).iASL, ZEROPAGE, 5, 0},
	0x07: {(*Chip).iSLO, ZEROPAGE, 5, 0},
	0x08: {(*Chip).iPHP, IMPLIED, 3, 0},
	0x09: {(*Chip).iORA, IMMEDIATE, 2, 0},
	0x0A: {(*Chip).iASLAcc, ACCUMULATOR, 2, 0},
	0x0B: {(*Chip).iANC, IMMEDIATE, 2, 0},
	0x0C: {(*Chip).iNOP, ABSOLUTE, 4, 0},
	0x0D: {(*Chip).iORA, ABSOLUTE, 4, 0},
	0x0E: {(*Chip).iASL, ABSOLUTE, 6, 0},
	0x0F: {(*Chip).iSLO, ABSOLUTE, 6, 0},

	0x10: {(*Chip).iBPL, RELATIVE, 2, 0},
	0x11: {(*Chip).iORA, INDIRECT_Y, 5, 1},
	0x12: {(*Chip).iJAM, IMPLIED, 2, 0},
	0x13: {(*Chip).iSLO, INDIRECT_Y, 8, 0},
	0x14: {(*Chip).iNOP, ZEROPAGE_X, 4, 0},
	0x15: {(*Chip).iORA, ZEROPAGE_X, 4, 0},
	0x16: {(*Chip).iASL, ZEROPAGE_X, 6, 0},
	0x17: {(*Chip).iSLO, ZEROPAGE_X, 6, 0},
	0x18: {(*Chip).iCLC, IMPLIED, 2, 0},
	0x19: {(*Chip).iORA, ABSOLUTE_Y, 4, 1},
	0x1A: {(*Chip).iNOP, IMPLIED, 2, 0},
	0x1B: {(*Chip).iSLO, ABSOLUTE_Y, 7, 0},
	0x1C: {(*Chip).iNOP, ABSOLUTE_X, 4, 1},
	0x1D: {(*Chip).iORA, ABSOLUTE_X, 4, 1},
	0x1E: {(*Chip).iASL, ABSOLUTE_X, 7, 0},
	0x1F: {(*Chip).iSLO, ABSOLUTE_X, 7, 0},

	0x20: {(*Chip).iJSR, ABSOLUTE, 6, 0},
	0x21: {(*Chip).iAND, INDIRECT_X, 6, 0},
	0x22: {(*Chip).iJAM, IMPLIED, 2, 0},
	0x23: {(*Chip).iRLA, INDIRECT_X, 8, 0},
	0x24: {(*Chip).iBIT, ZEROPAGE, 3, 0},
	0x25: {(*Chip).iAND, ZEROPAGE, 3, 0},
	0x26: {(*Chip).iROL, ZEROPAGE, 5, 0},
	0x27: {(*Chip).iRLA, ZEROPAGE, 5, 0},
	0x28: {(*Chip).iPLP, IMPLIED, 4, 0},
	0x29: {(*Chip).iAND, IMMEDIATE, 2, 0},
	0x2A: {(*Chip).iROLAcc, ACCUMULATOR, 2, 0},
	0x2B: {(*Chip).iANC, IMMEDIATE, 2, 0},
	0x2C: {(*Chip).iBIT, ABSOLUTE, 4, 0},
	0x2D: {(*Chip).iAND, ABSOLUTE, 4, 0},
	0x2E: {(*Chip).iROL, ABSOLUTE, 6, 0},
	0x2F: {(*Chip).iRLA, ABSOLUTE, 6, 0},

	0x30: {(*Chip).iBMI, RELATIVE, 2, 0},
	0x31: {(*Chip).iAND, INDIRECT_Y, 5, 1},
	0x32: {(*Chip).iJAM, IMPLIED, 2, 0},
	0x33: {(*Chip).iRLA, INDIRECT_Y, 8, 0},
	0x34: {(*Chip).iNOP, ZEROPAGE_X, 4, 0},
	0x35: {(*Chip).iAND, ZEROPAGE_X, 4, 0},
	0x36: {(*Chip).iROL, ZEROPAGE_X, 6, 0},
	0x37: {(*Chip).iRLA, ZEROPAGE_X, 6, 0},
	0x38: {(*Chip).iSEC, IMPLIED, 2, 0},
	0x39: {(*Chip).iAND, ABSOLUTE_Y, 4, 1},
	0x3A: {(*Chip).iNOP, IMPLIED, 2, 0},
	0x3B: {(*Chip).iRLA, ABSOLUTE_Y, 7, 0},
	0x3C: {(*Chip).iNOP, ABSOLUTE_X, 4, 1},
	0x3D: {(*Chip).iAND, ABSOLUTE_X, 4, 1},
	0x3E: {(*Chip).iROL, ABSOLUTE_X, 7, 0},
	0x3F: {(*Chip).iRLA, ABSOLUTE_X, 7, 0},

	0x40: {(*Chip).iRTI, IMPLIED, 6, 0},
	0x41: {(*Chip).iEOR, INDIRECT_X, 6, 0},
	0x42: {(*Chip).iJAM, IMPLIED, 2, 0},
	0x43: {(*Chip).iSRE, INDIRECT_X, 8, 0},
	0x44: {(*Chip).iNOP, ZEROPAGE, 3, 0},
	0x45: {(*Chip).iEOR, ZEROPAGE, 3, 0},
	0x46: {(*Chip).iLSR, ZEROPAGE, 5, 0},
	0x47: {(*Chip).iSRE, ZEROPAGE, 5, 0},
	0x48: {(*Chip).iPHA, IMPLIED, 3, 0},
	0x49: {(*Chip).iEOR, IMMEDIATE, 2, 0},
	0x4A: {(*Chip).iLSRAcc, ACCUMULATOR, 2, 0},
	0x4B: {(*Chip).iALR, IMMEDIATE, 2, 0},
	0x4C: {(*Chip).iJMP, ABSOLUTE, 3, 0},
	0x4D: {(*Chip).iEOR, ABSOLUTE, 4, 0},
	0x4E: {(*Chip).iLSR, ABSOLUTE, 6, 0},
	0x4F: {(*Chip).iSRE, ABSOLUTE, 6, 0},

	0x50: {(*Chip).iBVC, RELATIVE, 2, 0},
	0x51: {(*Chip).iEOR, INDIRECT_Y, 5, 1},
	0x52: {(*Chip).iJAM, IMPLIED, 2, 0},
	0x53: {(*Chip).iSRE, INDIRECT_Y, 8, 0},
	0x54: {(*Chip).iNOP, ZEROPAGE_X, 4, 0},
	0x55: {(*Chip).iEOR, ZEROPAGE_X, 4, 0},
	0x56: {(*Chip).iLSR, ZEROPAGE_X, 6, 0},
	0x57: {(*Chip).iSRE, ZEROPAGE_X, 6, 0},
	0x58: {(*Chip).iCLI, IMPLIED, 2, 0},
	0x59: {(*Chip).iEOR, ABSOLUTE_Y, 4, 1},
	0x5A: {(*Chip).iNOP, IMPLIED, 2, 0},
	0x5B: {(*Chip).iSRE, ABSOLUTE_Y, 7, 0},
	0x5C: {(*Chip).iNOP, ABSOLUTE_X, 4, 1},
	0x5D: {(*Chip).iEOR, ABSOLUTE_X, 4, 1},
	0x5E: {(*Chip).iLSR, ABSOLUTE_X, 7, 0},
	0x5F: {(*Chip).iSRE, ABSOLUTE_X, 7, 0},

	0x60: {(*Chip).iRTS, IMPLIED, 6, 0},
	0x61: {(*Chip).iADC, INDIRECT_X, 6, 0},
	0x62: {(*Chip).iJAM, IMPLIED, 2, 0},
	0x63: {(*Chip).iRRA, INDIRECT_X, 8, 0},
	0x64: {(*Chip).iNOP, ZEROPAGE, 3, 0},
	0x65: {(*Chip).iADC, ZEROPAGE, 3, 0},
	0x66: {(*Chip).iROR, ZEROPAGE, 5, 0},
	0x67: {(*Chip).iRRA, ZEROPAGE, 5, 0},
	0x68: {(*Chip).iPLA, IMPLIED, 4, 0},
	0x69: {(*Chip).iADC, IMMEDIATE, 2, 0},
	0x6A: {(*Chip).iRORAcc, ACCUMULATOR, 2, 0},
	0x6B: {(*Chip).iARR, IMMEDIATE, 2, 0},
	0x6C: {(*Chip).iJMP, INDIRECT, 5, 0},
	0x6D: {(*Chip).iADC, ABSOLUTE, 4, 0},
	0x6E: {(*Chip).iROR, ABSOLUTE, 6, 0},
	0x6F: {(*Chip).iRRA, ABSOLUTE, 6, 0},

	0x70: {(*Chip).iBVS, RELATIVE, 2, 0},
	0x71: {(*Chip).iADC, INDIRECT_Y, 5, 1},
	0x72: {(*Chip).iJAM, IMPLIED, 2, 0},
	0x73: {(*Chip).iRRA, INDIRECT_Y, 8, 0},
	0x74: {(*Chip).iNOP, ZEROPAGE_X, 4, 0},
	0x75: {(*Chip).iADC, ZEROPAGE_X, 4, 0},
	0x76: {(*Chip).iROR, ZEROPAGE_X, 6, 0},
	0x77: {(*Chip).iRRA, ZEROPAGE_X, 6, 0},
	0x78: {(*Chip).iSEI, IMPLIED, 2, 0},
	0x79: {(*Chip).iADC, ABSOLUTE_Y, 4, 1},
	0x7A: {(*Chip).iNOP, IMPLIED, 2, 0},
	0x7B: {(*Chip).iRRA, ABSOLUTE_Y, 7, 0},
	0x7C: {(*Chip).iNOP, ABSOLUTE_X, 4, 1},
	0x7D: {(*Chip).iADC, ABSOLUTE_X, 4, 1},
	0x7E: {(*Chip).iROR, ABSOLUTE_X, 7, 0},
	0x7F: {(*Chip).iRRA, ABSOLUTE_X, 7, 0},

	0x80: {(*Chip).iNOP, IMMEDIATE, 2, 0},
	0x81: {(*Chip).iSTA, INDIRECT_X, 6, 0},
	0x82: {(*Chip).iNOP, IMMEDIATE, 2, 0},
	0x83: {(*Chip).iSAX, INDIRECT_X, 6, 0},
	0x84: {(*Chip).iSTY, ZEROPAGE, 3, 0},
	0x85: {(*Chip).iSTA, ZEROPAGE, 3, 0},
	0x86: {(*Chip).iSTX, ZEROPAGE, 3, 0},
	0x87: {(*Chip).iSAX, ZEROPAGE, 3, 0},
	0x88: {(*Chip).iDEY, IMPLIED, 2, 0},
	0x89: {(*Chip).iNOP, IMMEDIATE, 2, 0},
	0x8A: {(*Chip).iTXA, IMPLIED, 2, 0},
	0x8B: {(*Chip).iXAA, IMMEDIATE, 2, 0},
	0x8C: {(*Chip).iSTY, ABSOLUTE, 4, 0},
	0x8D: {(*Chip).iSTA, ABSOLUTE, 4, 0},
	0x8E: {(*Chip).iSTX, ABSOLUTE, 4, 0},
	0x8F: {(*Chip).iSAX, ABSOLUTE, 4, 0},

	0x90: {(*Chip).iBCC, RELATIVE, 2, 0},
	0x91: {(*Chip).iSTA, INDIRECT_Y, 6, 0},
	0x92: {(*Chip).iJAM, IMPLIED, 2, 0},
	0x93: {(*Chip).iAHX, INDIRECT_Y, 6, 0},
	0x94: {(*Chip).iSTY, ZEROPAGE_X, 4, 0},
	0x95: {(*Chip).iSTA, ZEROPAGE_X, 4, 0},
	0x96: {(*Chip).iSTX, ZEROPAGE_Y, 4, 0},
	0x97: {(*Chip).iSAX, ZEROPAGE_Y, 4, 0},
	0x98: {(*Chip).iTYA, IMPLIED, 2, 0},
	0x99: {(*Chip).iSTA, ABSOLUTE_Y, 5, 0},
	0x9A: {(*Chip).iTXS, IMPLIED, 2, 0},
	0x9B: {(*Chip).iTAS, ABSOLUTE_Y, 5, 0},
	0x9C: {(*Chip).iSHY, ABSOLUTE_X, 5, 0},
	0x9D: {(*Chip).iSTA, ABSOLUTE_X, 5, 0},
	0x9E: {(*Chip).iSHX, ABSOLUTE_Y, 5, 0},
	0x9F: {(*Chip).iAHX, ABSOLUTE_Y, 5, 0},

	0xA0: {(*Chip).iLDY, IMMEDIATE, 2, 0},
	0xA1: {(*Chip).iLDA, INDIRECT_X, 6, 0},
	0xA2: {(*Chip).iLDX, IMMEDIATE, 2, 0},
	0xA3: {(*Chip).iLAX, INDIRECT_X, 6, 0},
	0xA4: {(*Chip).iLDY, ZEROPAGE, 3, 0},
	0xA5: {(*Chip).iLDA, ZEROPAGE, 3, 0},
	0xA6: {(*Chip).iLDX, ZEROPAGE, 3, 0},
	0xA7: {(*Chip).iLAX, ZEROPAGE, 3, 0},
	0xA8: {(*Chip).iTAY, IMPLIED, 2, 0},
	0xA9: {(*Chip).iLDA, IMMEDIATE, 2, 0},
	0xAA: {(*Chip).iTAX, IMPLIED, 2, 0},
	0xAB: {(*Chip).iLAX, IMMEDIATE, 2, 0},
	0xAC: {(*Chip).iLDY, ABSOLUTE, 4, 0},
	0xAD: {(*Chip).iLDA, ABSOLUTE, 4, 0},
	0xAE: {(*Chip).iLDX, ABSOLUTE, 4, 0},
	0xAF: {(*Chip).iLAX, ABSOLUTE, 4, 0},

	0xB0: {(*Chip).iBCS, RELATIVE, 2, 0},
	0xB1: {(*Chip).iLDA, INDIRECT_Y, 5, 1},
	0xB2: {(*Chip).iJAM, IMPLIED, 2, 0},
	0xB3: {(*Chip).iLAX, INDIRECT_Y, 5, 1},
	0xB4: {(*Chip).iLDY, ZEROPAGE_X, 4, 0},
	0xB5: {(*Chip).iLDA, ZEROPAGE_X, 4, 0},
	0xB6: {(*Chip).iLDX, ZEROPAGE_Y, 4, 0},
	0xB7: {(*Chip).iLAX, ZEROPAGE_Y, 4, 0},
	0xB8: {(*Chip).iCLV, IMPLIED, 2, 0},
	0xB9: {(*Chip).iLDA, ABSOLUTE_Y, 4, 1},
	0xBA: {(*Chip).iTSX, IMPLIED, 2, 0},
	0xBB: {(*Chip).iLAS, ABSOLUTE_Y, 4, 1},
	0xBC: {(*Chip).iLDY, ABSOLUTE_X, 4, 1},
	0xBD: {(*Chip).iLDA, ABSOLUTE_X, 4, 1},
	0xBE: {(*Chip).iLDX, ABSOLUTE_Y, 4, 1},
	0xBF: {(*Chip).iLAX, ABSOLUTE_Y, 4, 1},

	0xC0: {(*Chip).iCPY, IMMEDIATE, 2, 0},
	0xC1: {(*Chip).iCMP, INDIRECT_X, 6, 0},
	0xC2: {(*Chip).iNOP, IMMEDIATE, 2, 0},
	0xC3: {(*Chip).iDCP, INDIRECT_X, 8, 0},
	0xC4: {(*Chip).iCPY, ZEROPAGE, 3, 0},
	0xC5: {(*Chip).iCMP, ZEROPAGE, 3, 0},
	0xC6: {(*Chip).iDEC, ZEROPAGE, 5, 0},
	0xC7: {(*Chip).iDCP, ZEROPAGE, 5, 0},
	0xC8: {(*Chip).iINY, IMPLIED, 2, 0},
	0xC9: {(*Chip).iCMP, IMMEDIATE, 2, 0},
	0xCA: {(*Chip).iDEX, IMPLIED, 2, 0},
	0xCB: {(*Chip).iAXS, IMMEDIATE, 2, 0},
	0xCC: {(*Chip).iCPY, ABSOLUTE, 4, 0},
	0xCD: {(*Chip).iCMP, ABSOLUTE, 4, 0},
	0xCE: {(*Chip).iDEC, ABSOLUTE, 6, 0},
	// $CF is tagged ABSOLUTE, not ABSOLUTE_X: see the comment at the top of this file.
	0xCF: {(*Chip).iDCP, ABSOLUTE, 6, 0},

	0xD0: {(*Chip).iBNE, RELATIVE, 2, 0},
	0xD1: {(*Chip).iCMP, INDIRECT_Y, 5, 1},
	0xD2: {(*Chip).iJAM, IMPLIED, 2, 0},
	0xD3: {(*Chip).iDCP, INDIRECT_Y, 8, 0},
	0xD4: {(*Chip).iNOP, ZEROPAGE_X, 4, 0},
	0xD5: {(*Chip).iCMP, ZEROPAGE_X, 4, 0},
	0xD6: {(*Chip).iDEC, ZEROPAGE_X, 6, 0},
	0xD7: {(*Chip).iDCP, ZEROPAGE_X, 6, 0},
	0xD8: {(*Chip).iCLD, IMPLIED, 2, 0},
	0xD9: {(*Chip).iCMP, ABSOLUTE_Y, 4, 1},
	0xDA: {(*Chip).iNOP, IMPLIED, 2, 0},
	0xDB: {(*Chip).iDCP, ABSOLUTE_Y, 7, 0},
	0xDC: {(*Chip).iNOP, ABSOLUTE_X, 4, 1},
	0xDD: {(*Chip).iCMP, ABSOLUTE_X, 4, 1},
	0xDE: {(*Chip).iDEC, ABSOLUTE_X, 7, 0},
	0xDF: {(*Chip).iDCP, ABSOLUTE_X, 7, 0},

	0xE0: {(*Chip).iCPX, IMMEDIATE, 2, 0},
	0xE1: {(*Chip).iSBC, INDIRECT_X, 6, 0},
	0xE2: {(*Chip).iNOP, IMMEDIATE, 2, 0},
	0xE3: {(*Chip).iISC, INDIRECT_X, 8, 0},
	0xE4: {(*Chip).iCPX, ZEROPAGE, 3, 0},
	0xE5: {(*Chip).iSBC, ZEROPAGE, 3, 0},
	0xE6: {(*Chip).iINC, ZEROPAGE, 5, 0},
	0xE7: {(*Chip).iISC, ZEROPAGE, 5, 0},
	0xE8: {(*Chip).iINX, IMPLIED, 2, 0},
	0xE9: {(*Chip).iSBC, IMMEDIATE, 2, 0},
	0xEA: {(*Chip).iNOP, IMPLIED, 2, 0},
	0xEB: {(*Chip).iUSBC, IMMEDIATE, 2, 0},
	0xEC: {(*Chip).iCPX, ABSOLUTE, 4, 0},
	0xED: {(*Chip).iSBC, ABSOLUTE, 4, 0},
	0xEE: {(*Chip).iINC, ABSOLUTE, 6, 0},
	0xEF: {(*Chip).iISC, ABSOLUTE, 6, 0},

	0xF0: {(*Chip).iBEQ, RELATIVE, 2, 0},
	0xF1: {(*Chip).iSBC, INDIRECT_Y, 5, 1},
	0xF2: {(*Chip).iJAM, IMPLIED, 2, 0},
	0xF3: {(*Chip).iISC, INDIRECT_Y, 8, 0},
	0xF4: {(*Chip).iNOP, ZEROPAGE_X, 4, 0},
	0xF5: {(*Chip).iSBC, ZEROPAGE_X, 4, 0},
	0xF6: {(*Chip).iINC, ZEROPAGE_X, 6, 0},
	0xF7: {(*Chip).iISC, ZEROPAGE_X, 6, 0},
	0xF8: {(*Chip).iSED, IMPLIED, 2, 0},
	0xF9: {(*Chip).iSBC, ABSOLUTE_Y, 4, 1},
	0xFA: {(*Chip).iNOP, IMPLIED, 2, 0},
	0xFB: {(*Chip).iISC, ABSOLUTE_Y, 7, 0},
	0xFC: {(*Chip).iNOP, ABSOLUTE_X, 4, 1},
	0xFD: {(*Chip).iSBC, ABSOLUTE_X, 4, 1},
	0xFE: {(*Chip).iINC, ABSOLUTE_X, 7, 0},
	// $FF is tagged ABSOLUTE_X, not IMPLIED: see the comment at the top of this file.
	0xFF: {(*Chip).iISC, ABSOLUTE_X, 7, 0},
}
