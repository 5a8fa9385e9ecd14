package disnes

import "testing"

func TestOpcodeTableCoversEveryByteValue(t *testing.T) {
	for v := 0; v < 256; v++ {
		oc := OpcodeByValue(byte(v))
		if oc.Value != byte(v) {
			t.Errorf("opcodeTable[%#02x].Value = %#02x, want %#02x", v, oc.Value, v)
		}
		if oc.Mnemonic == "" {
			t.Errorf("opcodeTable[%#02x] has no mnemonic", v)
		}
	}
}

func TestDecodeOpRoundTripsToBytes(t *testing.T) {
	cases := [][]byte{
		{0xEA},             // NOP, implied
		{0x0A},             // ASL A, accumulator
		{0xA9, 0x10},       // LDA #$10, immediate
		{0xB0, 0xFE},       // BCS, relative
		{0xA5, 0x80},       // LDA $80, zero page
		{0xB5, 0x80},       // LDA $80,X, zero page,X
		{0xAD, 0x34, 0x12}, // LDA $1234, absolute
		{0x6C, 0x34, 0x12}, // JMP ($1234), indirect
		{0xA1, 0x80},       // LDA ($80,X), indirect,X
		{0xB1, 0x80},       // LDA ($80),Y, indirect,Y
	}

	for _, buf := range cases {
		op := DecodeOp(buf)
		if op.Len() != len(buf) {
			t.Fatalf("DecodeOp(%#v).Len() = %d, want %d", buf, op.Len(), len(buf))
		}
		got := op.ToBytes()
		if len(got) != len(buf) {
			t.Fatalf("DecodeOp(%#v).ToBytes() = %#v, different length", buf, got)
		}
		for i := range buf {
			if got[i] != buf[i] {
				t.Errorf("DecodeOp(%#v).ToBytes() = %#v, want %#v", buf, got, buf)
			}
		}
	}
}

func TestDecodeOpPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on buffer/opcode length mismatch")
		}
	}()
	DecodeOp([]byte{0xAD, 0x34}) // LDA absolute needs 3 bytes
}

func TestOpSuccKinds(t *testing.T) {
	cases := []struct {
		name string
		buf  []byte
		kind OpSuccKind
	}{
		{"BRK", []byte{0x00}, SuccBrk},
		{"JSR", []byte{0x20, 0x00, 0x80}, SuccJsr},
		{"RTI", []byte{0x40}, SuccRti},
		{"RTS", []byte{0x60}, SuccRts},
		{"JMP abs", []byte{0x4C, 0x00, 0x80}, SuccJmpAbs},
		{"JMP ind", []byte{0x6C, 0x00, 0x80}, SuccJmpInd},
		{"BEQ", []byte{0xF0, 0x10}, SuccBranch},
		{"NOP", []byte{0xEA}, SuccNormal},
	}

	for _, tc := range cases {
		op := DecodeOp(tc.buf)
		if got := op.Succ().Kind; got != tc.kind {
			t.Errorf("%s: Succ().Kind = %v, want %v", tc.name, got, tc.kind)
		}
	}
}

func TestOpIsReadIsWrite(t *testing.T) {
	lda := DecodeOp([]byte{0xA9, 0x10}) // LDA #imm: neither reads nor writes memory
	if lda.IsRead() {
		t.Errorf("LDA #imm should not count as a memory read")
	}

	ldaAbs := DecodeOp([]byte{0xAD, 0x00, 0x80}) // LDA abs: reads
	if !ldaAbs.IsRead() {
		t.Errorf("LDA abs should read")
	}
	if ldaAbs.IsWrite() {
		t.Errorf("LDA should not write")
	}

	sta := DecodeOp([]byte{0x8D, 0x00, 0x80}) // STA abs: writes only
	if sta.IsRead() || !sta.IsWrite() {
		t.Errorf("STA abs should write, not read")
	}

	asl := DecodeOp([]byte{0x0E, 0x00, 0x80}) // ASL abs: read-modify-write
	if !asl.IsRead() || !asl.IsWrite() {
		t.Errorf("ASL abs should both read and write")
	}

	las := DecodeOp([]byte{0xBB, 0x00, 0x80}) // LAS absY: unofficial read
	if !las.IsRead() {
		t.Errorf("LAS absY should read")
	}
	if las.IsWrite() {
		t.Errorf("LAS should not write")
	}

	ahx := DecodeOp([]byte{0x9F, 0x00, 0x80}) // AHX absY: unofficial write
	if ahx.IsRead() || !ahx.IsWrite() {
		t.Errorf("AHX absY should write, not read")
	}

	tas := DecodeOp([]byte{0x9B, 0x00, 0x80}) // TAS absY: unofficial write
	if tas.IsRead() || !tas.IsWrite() {
		t.Errorf("TAS absY should write, not read")
	}

	shx := DecodeOp([]byte{0x9E, 0x00, 0x80}) // SHX absY: unofficial write
	if shx.IsRead() || !shx.IsWrite() {
		t.Errorf("SHX absY should write, not read")
	}

	shy := DecodeOp([]byte{0x9C, 0x00, 0x80}) // SHY absX: unofficial write
	if shy.IsRead() || !shy.IsWrite() {
		t.Errorf("SHY absX should write, not read")
	}
}

func TestOpIsKilAndIsFlow(t *testing.T) {
	kil := DecodeOp([]byte{0x02}) // one of the documented jam opcodes
	if !kil.IsKil() || !kil.IsFlow() {
		t.Errorf("opcode $02 should be KIL and a flow instruction")
	}

	nop := DecodeOp([]byte{0xEA})
	if nop.IsKil() || nop.IsFlow() {
		t.Errorf("NOP should be neither KIL nor a flow instruction")
	}
}

func TestIsBitopImm(t *testing.T) {
	and := DecodeOp([]byte{0x29, 0x0F}) // AND #$0F
	if !and.IsBitopImm() {
		t.Errorf("AND #imm should be a bitop immediate")
	}
	lda := DecodeOp([]byte{0xA9, 0x0F}) // LDA #$0F
	if lda.IsBitopImm() {
		t.Errorf("LDA #imm should not be a bitop immediate")
	}
}
