package disnes

// opcodeTable is the full 256-entry 6502 opcode matrix: one entry per byte
// value, covering the official instruction set plus the documented
// unofficial opcodes (ANC, SLO, RLA, SRE, RRA, SAX, LAX, DCP, ISC, ALR, ARR,
// XAA, AXS, AHX, SHY, SHX, TAS, LAS, the KIL/jam opcodes, and the duplicate
// NOP/SBC encodings). Indexed by raw opcode byte; see OpcodeByValue.

var opcodeTable = [256]Opcode{
	{Value: 0x00, Mnemonic: "BRK", Mode: Implied, Official: true},
	{Value: 0x01, Mnemonic: "ORA", Mode: IndirectX, Official: true},
	{Value: 0x02, Mnemonic: "KIL", Mode: Implied, Official: false},
	{Value: 0x03, Mnemonic: "SLO", Mode: IndirectX, Official: false},
	{Value: 0x04, Mnemonic: "NOP", Mode: ZeroPage, Official: false},
	{Value: 0x05, Mnemonic: "ORA", Mode: ZeroPage, Official: true},
	{Value: 0x06, Mnemonic: "ASL", Mode: ZeroPage, Official: true},
	{Value: 0x07, Mnemonic: "SLO", Mode: ZeroPage, Official: false},
	{Value: 0x08, Mnemonic: "PHP", Mode: Implied, Official: true},
	{Value: 0x09, Mnemonic: "ORA", Mode: Immediate, Official: true},
	{Value: 0x0A, Mnemonic: "ASL", Mode: Accumulator, Official: true},
	{Value: 0x0B, Mnemonic: "ANC", Mode: Immediate, Official: false},
	{Value: 0x0C, Mnemonic: "NOP", Mode: Absolute, Official: false},
	{Value: 0x0D, Mnemonic: "ORA", Mode: Absolute, Official: true},
	{Value: 0x0E, Mnemonic: "ASL", Mode: Absolute, Official: true},
	{Value: 0x0F, Mnemonic: "SLO", Mode: Absolute, Official: false},
	{Value: 0x10, Mnemonic: "BPL", Mode: Relative, Official: true},
	{Value: 0x11, Mnemonic: "ORA", Mode: IndirectY, Official: true},
	{Value: 0x12, Mnemonic: "KIL", Mode: Implied, Official: false},
	{Value: 0x13, Mnemonic: "SLO", Mode: IndirectY, Official: false},
	{Value: 0x14, Mnemonic: "NOP", Mode: ZeroPageX, Official: false},
	{Value: 0x15, Mnemonic: "ORA", Mode: ZeroPageX, Official: true},
	{Value: 0x16, Mnemonic: "ASL", Mode: ZeroPageX, Official: true},
	{Value: 0x17, Mnemonic: "SLO", Mode: ZeroPageX, Official: false},
	{Value: 0x18, Mnemonic: "CLC", Mode: Implied, Official: true},
	{Value: 0x19, Mnemonic: "ORA", Mode: AbsoluteY, Official: true},
	{Value: 0x1A, Mnemonic: "NOP", Mode: Implied, Official: false},
	{Value: 0x1B, Mnemonic: "SLO", Mode: AbsoluteY, Official: false},
	{Value: 0x1C, Mnemonic: "NOP", Mode: AbsoluteX, Official: false},
	{Value: 0x1D, Mnemonic: "ORA", Mode: AbsoluteX, Official: true},
	{Value: 0x1E, Mnemonic: "ASL", Mode: AbsoluteX, Official: true},
	{Value: 0x1F, Mnemonic: "SLO", Mode: AbsoluteX, Official: false},
	{Value: 0x20, Mnemonic: "JSR", Mode: Absolute, Official: true},
	{Value: 0x21, Mnemonic: "AND", Mode: IndirectX, Official: true},
	{Value: 0x22, Mnemonic: "KIL", Mode: Implied, Official: false},
	{Value: 0x23, Mnemonic: "RLA", Mode: IndirectX, Official: false},
	{Value: 0x24, Mnemonic: "BIT", Mode: ZeroPage, Official: true},
	{Value: 0x25, Mnemonic: "AND", Mode: ZeroPage, Official: true},
	{Value: 0x26, Mnemonic: "ROL", Mode: ZeroPage, Official: true},
	{Value: 0x27, Mnemonic: "RLA", Mode: ZeroPage, Official: false},
	{Value: 0x28, Mnemonic: "PLP", Mode: Implied, Official: true},
	{Value: 0x29, Mnemonic: "AND", Mode: Immediate, Official: true},
	{Value: 0x2A, Mnemonic: "ROL", Mode: Accumulator, Official: true},
	{Value: 0x2B, Mnemonic: "ANC", Mode: Immediate, Official: false},
	{Value: 0x2C, Mnemonic: "BIT", Mode: Absolute, Official: true},
	{Value: 0x2D, Mnemonic: "AND", Mode: Absolute, Official: true},
	{Value: 0x2E, Mnemonic: "ROL", Mode: Absolute, Official: true},
	{Value: 0x2F, Mnemonic: "RLA", Mode: Absolute, Official: false},
	{Value: 0x30, Mnemonic: "BMI", Mode: Relative, Official: true},
	{Value: 0x31, Mnemonic: "AND", Mode: IndirectY, Official: true},
	{Value: 0x32, Mnemonic: "KIL", Mode: Implied, Official: false},
	{Value: 0x33, Mnemonic: "RLA", Mode: IndirectY, Official: false},
	{Value: 0x34, Mnemonic: "NOP", Mode: ZeroPageX, Official: false},
	{Value: 0x35, Mnemonic: "AND", Mode: ZeroPageX, Official: true},
	{Value: 0x36, Mnemonic: "ROL", Mode: ZeroPageX, Official: true},
	{Value: 0x37, Mnemonic: "RLA", Mode: ZeroPageX, Official: false},
	{Value: 0x38, Mnemonic: "SEC", Mode: Implied, Official: true},
	{Value: 0x39, Mnemonic: "AND", Mode: AbsoluteY, Official: true},
	{Value: 0x3A, Mnemonic: "NOP", Mode: Implied, Official: false},
	{Value: 0x3B, Mnemonic: "RLA", Mode: AbsoluteY, Official: false},
	{Value: 0x3C, Mnemonic: "NOP", Mode: AbsoluteX, Official: false},
	{Value: 0x3D, Mnemonic: "AND", Mode: AbsoluteX, Official: true},
	{Value: 0x3E, Mnemonic: "ROL", Mode: AbsoluteX, Official: true},
	{Value: 0x3F, Mnemonic: "RLA", Mode: AbsoluteX, Official: false},
	{Value: 0x40, Mnemonic: "RTI", Mode: Implied, Official: true},
	{Value: 0x41, Mnemonic: "EOR", Mode: IndirectX, Official: true},
	{Value: 0x42, Mnemonic: "KIL", Mode: Implied, Official: false},
	{Value: 0x43, Mnemonic: "SRE", Mode: IndirectX, Official: false},
	{Value: 0x44, Mnemonic: "NOP", Mode: ZeroPage, Official: false},
	{Value: 0x45, Mnemonic: "EOR", Mode: ZeroPage, Official: true},
	{Value: 0x46, Mnemonic: "LSR", Mode: ZeroPage, Official: true},
	{Value: 0x47, Mnemonic: "SRE", Mode: ZeroPage, Official: false},
	{Value: 0x48, Mnemonic: "PHA", Mode: Implied, Official: true},
	{Value: 0x49, Mnemonic: "EOR", Mode: Immediate, Official: true},
	{Value: 0x4A, Mnemonic: "LSR", Mode: Accumulator, Official: true},
	{Value: 0x4B, Mnemonic: "ALR", Mode: Immediate, Official: false},
	{Value: 0x4C, Mnemonic: "JMP", Mode: Absolute, Official: true},
	{Value: 0x4D, Mnemonic: "EOR", Mode: Absolute, Official: true},
	{Value: 0x4E, Mnemonic: "LSR", Mode: Absolute, Official: true},
	{Value: 0x4F, Mnemonic: "SRE", Mode: Absolute, Official: false},
	{Value: 0x50, Mnemonic: "BVC", Mode: Relative, Official: true},
	{Value: 0x51, Mnemonic: "EOR", Mode: IndirectY, Official: true},
	{Value: 0x52, Mnemonic: "KIL", Mode: Implied, Official: false},
	{Value: 0x53, Mnemonic: "SRE", Mode: IndirectY, Official: false},
	{Value: 0x54, Mnemonic: "NOP", Mode: ZeroPageX, Official: false},
	{Value: 0x55, Mnemonic: "EOR", Mode: ZeroPageX, Official: true},
	{Value: 0x56, Mnemonic: "LSR", Mode: ZeroPageX, Official: true},
	{Value: 0x57, Mnemonic: "SRE", Mode: ZeroPageX, Official: false},
	{Value: 0x58, Mnemonic: "CLI", Mode: Implied, Official: true},
	{Value: 0x59, Mnemonic: "EOR", Mode: AbsoluteY, Official: true},
	{Value: 0x5A, Mnemonic: "NOP", Mode: Implied, Official: false},
	{Value: 0x5B, Mnemonic: "SRE", Mode: AbsoluteY, Official: false},
	{Value: 0x5C, Mnemonic: "NOP", Mode: AbsoluteX, Official: false},
	{Value: 0x5D, Mnemonic: "EOR", Mode: AbsoluteX, Official: true},
	{Value: 0x5E, Mnemonic: "LSR", Mode: AbsoluteX, Official: true},
	{Value: 0x5F, Mnemonic: "SRE", Mode: AbsoluteX, Official: false},
	{Value: 0x60, Mnemonic: "RTS", Mode: Implied, Official: true},
	{Value: 0x61, Mnemonic: "ADC", Mode: IndirectX, Official: true},
	{Value: 0x62, Mnemonic: "KIL", Mode: Implied, Official: false},
	{Value: 0x63, Mnemonic: "RRA", Mode: IndirectX, Official: false},
	{Value: 0x64, Mnemonic: "NOP", Mode: ZeroPage, Official: false},
	{Value: 0x65, Mnemonic: "ADC", Mode: ZeroPage, Official: true},
	{Value: 0x66, Mnemonic: "ROR", Mode: ZeroPage, Official: true},
	{Value: 0x67, Mnemonic: "RRA", Mode: ZeroPage, Official: false},
	{Value: 0x68, Mnemonic: "PLA", Mode: Implied, Official: true},
	{Value: 0x69, Mnemonic: "ADC", Mode: Immediate, Official: true},
	{Value: 0x6A, Mnemonic: "ROR", Mode: Accumulator, Official: true},
	{Value: 0x6B, Mnemonic: "ARR", Mode: Immediate, Official: false},
	{Value: 0x6C, Mnemonic: "JMP", Mode: Indirect, Official: true},
	{Value: 0x6D, Mnemonic: "ADC", Mode: Absolute, Official: true},
	{Value: 0x6E, Mnemonic: "ROR", Mode: Absolute, Official: true},
	{Value: 0x6F, Mnemonic: "RRA", Mode: Absolute, Official: false},
	{Value: 0x70, Mnemonic: "BVS", Mode: Relative, Official: true},
	{Value: 0x71, Mnemonic: "ADC", Mode: IndirectY, Official: true},
	{Value: 0x72, Mnemonic: "KIL", Mode: Implied, Official: false},
	{Value: 0x73, Mnemonic: "RRA", Mode: IndirectY, Official: false},
	{Value: 0x74, Mnemonic: "NOP", Mode: ZeroPageX, Official: false},
	{Value: 0x75, Mnemonic: "ADC", Mode: ZeroPageX, Official: true},
	{Value: 0x76, Mnemonic: "ROR", Mode: ZeroPageX, Official: true},
	{Value: 0x77, Mnemonic: "RRA", Mode: ZeroPageX, Official: false},
	{Value: 0x78, Mnemonic: "SEI", Mode: Implied, Official: true},
	{Value: 0x79, Mnemonic: "ADC", Mode: AbsoluteY, Official: true},
	{Value: 0x7A, Mnemonic: "NOP", Mode: Implied, Official: false},
	{Value: 0x7B, Mnemonic: "RRA", Mode: AbsoluteY, Official: false},
	{Value: 0x7C, Mnemonic: "NOP", Mode: AbsoluteX, Official: false},
	{Value: 0x7D, Mnemonic: "ADC", Mode: AbsoluteX, Official: true},
	{Value: 0x7E, Mnemonic: "ROR", Mode: AbsoluteX, Official: true},
	{Value: 0x7F, Mnemonic: "RRA", Mode: AbsoluteX, Official: false},
	{Value: 0x80, Mnemonic: "NOP", Mode: Immediate, Official: false},
	{Value: 0x81, Mnemonic: "STA", Mode: IndirectX, Official: true},
	{Value: 0x82, Mnemonic: "NOP", Mode: Immediate, Official: false},
	{Value: 0x83, Mnemonic: "SAX", Mode: IndirectX, Official: false},
	{Value: 0x84, Mnemonic: "STY", Mode: ZeroPage, Official: true},
	{Value: 0x85, Mnemonic: "STA", Mode: ZeroPage, Official: true},
	{Value: 0x86, Mnemonic: "STX", Mode: ZeroPage, Official: true},
	{Value: 0x87, Mnemonic: "SAX", Mode: ZeroPage, Official: false},
	{Value: 0x88, Mnemonic: "DEY", Mode: Implied, Official: true},
	{Value: 0x89, Mnemonic: "NOP", Mode: Immediate, Official: false},
	{Value: 0x8A, Mnemonic: "TXA", Mode: Implied, Official: true},
	{Value: 0x8B, Mnemonic: "XAA", Mode: Immediate, Official: false},
	{Value: 0x8C, Mnemonic: "STY", Mode: Absolute, Official: true},
	{Value: 0x8D, Mnemonic: "STA", Mode: Absolute, Official: true},
	{Value: 0x8E, Mnemonic: "STX", Mode: Absolute, Official: true},
	{Value: 0x8F, Mnemonic: "SAX", Mode: Absolute, Official: false},
	{Value: 0x90, Mnemonic: "BCC", Mode: Relative, Official: true},
	{Value: 0x91, Mnemonic: "STA", Mode: IndirectY, Official: true},
	{Value: 0x92, Mnemonic: "KIL", Mode: Implied, Official: false},
	{Value: 0x93, Mnemonic: "AHX", Mode: IndirectY, Official: false},
	{Value: 0x94, Mnemonic: "STY", Mode: ZeroPageX, Official: true},
	{Value: 0x95, Mnemonic: "STA", Mode: ZeroPageX, Official: true},
	{Value: 0x96, Mnemonic: "STX", Mode: ZeroPageY, Official: true},
	{Value: 0x97, Mnemonic: "SAX", Mode: ZeroPageY, Official: false},
	{Value: 0x98, Mnemonic: "TYA", Mode: Implied, Official: true},
	{Value: 0x99, Mnemonic: "STA", Mode: AbsoluteY, Official: true},
	{Value: 0x9A, Mnemonic: "TXS", Mode: Implied, Official: true},
	{Value: 0x9B, Mnemonic: "TAS", Mode: AbsoluteY, Official: false},
	{Value: 0x9C, Mnemonic: "SHY", Mode: AbsoluteX, Official: false},
	{Value: 0x9D, Mnemonic: "STA", Mode: AbsoluteX, Official: true},
	{Value: 0x9E, Mnemonic: "SHX", Mode: AbsoluteY, Official: false},
	{Value: 0x9F, Mnemonic: "AHX", Mode: AbsoluteY, Official: false},
	{Value: 0xA0, Mnemonic: "LDY", Mode: Immediate, Official: true},
	{Value: 0xA1, Mnemonic: "LDA", Mode: IndirectX, Official: true},
	{Value: 0xA2, Mnemonic: "LDX", Mode: Immediate, Official: true},
	{Value: 0xA3, Mnemonic: "LAX", Mode: IndirectX, Official: false},
	{Value: 0xA4, Mnemonic: "LDY", Mode: ZeroPage, Official: true},
	{Value: 0xA5, Mnemonic: "LDA", Mode: ZeroPage, Official: true},
	{Value: 0xA6, Mnemonic: "LDX", Mode: ZeroPage, Official: true},
	{Value: 0xA7, Mnemonic: "LAX", Mode: ZeroPage, Official: false},
	{Value: 0xA8, Mnemonic: "TAY", Mode: Implied, Official: true},
	{Value: 0xA9, Mnemonic: "LDA", Mode: Immediate, Official: true},
	{Value: 0xAA, Mnemonic: "TAX", Mode: Implied, Official: true},
	{Value: 0xAB, Mnemonic: "LAX", Mode: Immediate, Official: false},
	{Value: 0xAC, Mnemonic: "LDY", Mode: Absolute, Official: true},
	{Value: 0xAD, Mnemonic: "LDA", Mode: Absolute, Official: true},
	{Value: 0xAE, Mnemonic: "LDX", Mode: Absolute, Official: true},
	{Value: 0xAF, Mnemonic: "LAX", Mode: Absolute, Official: false},
	{Value: 0xB0, Mnemonic: "BCS", Mode: Relative, Official: true},
	{Value: 0xB1, Mnemonic: "LDA", Mode: IndirectY, Official: true},
	{Value: 0xB2, Mnemonic: "KIL", Mode: Implied, Official: false},
	{Value: 0xB3, Mnemonic: "LAX", Mode: IndirectY, Official: false},
	{Value: 0xB4, Mnemonic: "LDY", Mode: ZeroPageX, Official: true},
	{Value: 0xB5, Mnemonic: "LDA", Mode: ZeroPageX, Official: true},
	{Value: 0xB6, Mnemonic: "LDX", Mode: ZeroPageY, Official: true},
	{Value: 0xB7, Mnemonic: "LAX", Mode: ZeroPageY, Official: false},
	{Value: 0xB8, Mnemonic: "CLV", Mode: Implied, Official: true},
	{Value: 0xB9, Mnemonic: "LDA", Mode: AbsoluteY, Official: true},
	{Value: 0xBA, Mnemonic: "TSX", Mode: Implied, Official: true},
	{Value: 0xBB, Mnemonic: "LAS", Mode: AbsoluteY, Official: false},
	{Value: 0xBC, Mnemonic: "LDY", Mode: AbsoluteX, Official: true},
	{Value: 0xBD, Mnemonic: "LDA", Mode: AbsoluteX, Official: true},
	{Value: 0xBE, Mnemonic: "LDX", Mode: AbsoluteY, Official: true},
	{Value: 0xBF, Mnemonic: "LAX", Mode: AbsoluteY, Official: false},
	{Value: 0xC0, Mnemonic: "CPY", Mode: Immediate, Official: true},
	{Value: 0xC1, Mnemonic: "CMP", Mode: IndirectX, Official: true},
	{Value: 0xC2, Mnemonic: "NOP", Mode: Immediate, Official: false},
	{Value: 0xC3, Mnemonic: "DCP", Mode: IndirectX, Official: false},
	{Value: 0xC4, Mnemonic: "CPY", Mode: ZeroPage, Official: true},
	{Value: 0xC5, Mnemonic: "CMP", Mode: ZeroPage, Official: true},
	{Value: 0xC6, Mnemonic: "DEC", Mode: ZeroPage, Official: true},
	{Value: 0xC7, Mnemonic: "DCP", Mode: ZeroPage, Official: false},
	{Value: 0xC8, Mnemonic: "INY", Mode: Implied, Official: true},
	{Value: 0xC9, Mnemonic: "CMP", Mode: Immediate, Official: true},
	{Value: 0xCA, Mnemonic: "DEX", Mode: Implied, Official: true},
	{Value: 0xCB, Mnemonic: "AXS", Mode: Immediate, Official: false},
	{Value: 0xCC, Mnemonic: "CPY", Mode: Absolute, Official: true},
	{Value: 0xCD, Mnemonic: "CMP", Mode: Absolute, Official: true},
	{Value: 0xCE, Mnemonic: "DEC", Mode: Absolute, Official: true},
	{Value: 0xCF, Mnemonic: "DCP", Mode: Absolute, Official: false},
	{Value: 0xD0, Mnemonic: "BNE", Mode: Relative, Official: true},
	{Value: 0xD1, Mnemonic: "CMP", Mode: IndirectY, Official: true},
	{Value: 0xD2, Mnemonic: "KIL", Mode: Implied, Official: false},
	{Value: 0xD3, Mnemonic: "DCP", Mode: IndirectY, Official: false},
	{Value: 0xD4, Mnemonic: "NOP", Mode: ZeroPageX, Official: false},
	{Value: 0xD5, Mnemonic: "CMP", Mode: ZeroPageX, Official: true},
	{Value: 0xD6, Mnemonic: "DEC", Mode: ZeroPageX, Official: true},
	{Value: 0xD7, Mnemonic: "DCP", Mode: ZeroPageX, Official: false},
	{Value: 0xD8, Mnemonic: "CLD", Mode: Implied, Official: true},
	{Value: 0xD9, Mnemonic: "CMP", Mode: AbsoluteY, Official: true},
	{Value: 0xDA, Mnemonic: "NOP", Mode: Implied, Official: false},
	{Value: 0xDB, Mnemonic: "DCP", Mode: AbsoluteY, Official: false},
	{Value: 0xDC, Mnemonic: "NOP", Mode: AbsoluteX, Official: false},
	{Value: 0xDD, Mnemonic: "CMP", Mode: AbsoluteX, Official: true},
	{Value: 0xDE, Mnemonic: "DEC", Mode: AbsoluteX, Official: true},
	{Value: 0xDF, Mnemonic: "DCP", Mode: AbsoluteX, Official: false},
	{Value: 0xE0, Mnemonic: "CPX", Mode: Immediate, Official: true},
	{Value: 0xE1, Mnemonic: "SBC", Mode: IndirectX, Official: true},
	{Value: 0xE2, Mnemonic: "NOP", Mode: Immediate, Official: false},
	{Value: 0xE3, Mnemonic: "ISC", Mode: IndirectX, Official: false},
	{Value: 0xE4, Mnemonic: "CPX", Mode: ZeroPage, Official: true},
	{Value: 0xE5, Mnemonic: "SBC", Mode: ZeroPage, Official: true},
	{Value: 0xE6, Mnemonic: "INC", Mode: ZeroPage, Official: true},
	{Value: 0xE7, Mnemonic: "ISC", Mode: ZeroPage, Official: false},
	{Value: 0xE8, Mnemonic: "INX", Mode: Implied, Official: true},
	{Value: 0xE9, Mnemonic: "SBC", Mode: Immediate, Official: true},
	{Value: 0xEA, Mnemonic: "NOP", Mode: Implied, Official: true},
	{Value: 0xEB, Mnemonic: "SBC", Mode: Immediate, Official: false},
	{Value: 0xEC, Mnemonic: "CPX", Mode: Absolute, Official: true},
	{Value: 0xED, Mnemonic: "SBC", Mode: Absolute, Official: true},
	{Value: 0xEE, Mnemonic: "INC", Mode: Absolute, Official: true},
	{Value: 0xEF, Mnemonic: "ISC", Mode: Absolute, Official: false},
	{Value: 0xF0, Mnemonic: "BEQ", Mode: Relative, Official: true},
	{Value: 0xF1, Mnemonic: "SBC", Mode: IndirectY, Official: true},
	{Value: 0xF2, Mnemonic: "KIL", Mode: Implied, Official: false},
	{Value: 0xF3, Mnemonic: "ISC", Mode: IndirectY, Official: false},
	{Value: 0xF4, Mnemonic: "NOP", Mode: ZeroPageX, Official: false},
	{Value: 0xF5, Mnemonic: "SBC", Mode: ZeroPageX, Official: true},
	{Value: 0xF6, Mnemonic: "INC", Mode: ZeroPageX, Official: true},
	{Value: 0xF7, Mnemonic: "ISC", Mode: ZeroPageX, Official: false},
	{Value: 0xF8, Mnemonic: "SED", Mode: Implied, Official: true},
	{Value: 0xF9, Mnemonic: "SBC", Mode: AbsoluteY, Official: true},
	{Value: 0xFA, Mnemonic: "NOP", Mode: Implied, Official: false},
	{Value: 0xFB, Mnemonic: "ISC", Mode: AbsoluteY, Official: false},
	{Value: 0xFC, Mnemonic: "NOP", Mode: AbsoluteX, Official: false},
	{Value: 0xFD, Mnemonic: "SBC", Mode: AbsoluteX, Official: true},
	{Value: 0xFE, Mnemonic: "INC", Mode: AbsoluteX, Official: true},
	{Value: 0xFF, Mnemonic: "ISC", Mode: AbsoluteX, Official: false},
}
