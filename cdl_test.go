package disnes

import "testing"

func TestCdlFlags(t *testing.T) {
	cdl := &Cdl{}
	cdl[0x8000] = cdlFlagOpcode | cdlFlagJumpTarget | cdlFlagEntrypoint
	cdl[0x8001] = cdlFlagData

	if !cdl.IsOpcode(0x8000) || !cdl.IsJumpTarget(0x8000) || !cdl.IsEntrypoint(0x8000) {
		t.Errorf("flags at 0x8000 not decoded correctly")
	}
	if cdl.IsData(0x8000) {
		t.Errorf("0x8000 should not be marked data")
	}
	if !cdl.IsData(0x8001) || cdl.IsOpcode(0x8001) {
		t.Errorf("flags at 0x8001 not decoded correctly")
	}
}

func TestCdlIndirectDataStart(t *testing.T) {
	cdl := &Cdl{}
	cdl[0x10] = cdlFlagIndirectData
	cdl[0x11] = cdlFlagIndirectData
	cdl[0x12] = cdlFlagIndirectData

	if !cdl.IsIndirectDataStart(0x10) {
		t.Errorf("0x10 should start the indirect-data run")
	}
	if cdl.IsIndirectDataStart(0x11) || cdl.IsIndirectDataStart(0x12) {
		t.Errorf("only the first byte of a run should report as its start")
	}
}

func TestCdlIndirectDataStartAtZero(t *testing.T) {
	cdl := &Cdl{}
	cdl[0] = cdlFlagIndirectData

	if !cdl.IsIndirectDataStart(0) {
		t.Errorf("address 0 should start its own indirect-data run")
	}
}

func TestCdlPCMDataStart(t *testing.T) {
	cdl := &Cdl{}
	cdl[0x20] = cdlFlagPCMData
	cdl[0x22] = cdlFlagPCMData // not contiguous with 0x20

	if !cdl.IsPCMDataStart(0x20) {
		t.Errorf("0x20 should start a PCM-data run")
	}
	if !cdl.IsPCMDataStart(0x22) {
		t.Errorf("0x22 should start its own PCM-data run, since 0x21 isn't marked")
	}
}
