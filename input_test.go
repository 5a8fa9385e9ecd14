package disnes

import "testing"

func buildTestInput(t *testing.T) Input {
	t.Helper()
	mem := NewMemory([]Bank{NewBank(0x8000, make([]byte, 0x100), true)})
	input, err := NewInputBuilder().
		Memory(mem).
		Permissions(&Permissions{}).
		Cdl(&Cdl{}).
		TargetBankAddr(0x8000).
		TargetBankName("PRG0").
		Build()
	if err != nil {
		t.Fatalf("InputBuilder.Build failed: %v", err)
	}
	return input
}

func TestInputBuilderResolvesTargetBank(t *testing.T) {
	input := buildTestInput(t)
	if input.TargetBankID() != 0 {
		t.Errorf("TargetBankID() = %d, want 0", input.TargetBankID())
	}
	if input.TargetBankName() != "PRG0" {
		t.Errorf("TargetBankName() = %q, want PRG0", input.TargetBankName())
	}
	if input.TargetBank().Addr() != 0x8000 {
		t.Errorf("TargetBank().Addr() = %s, want $8000", input.TargetBank().Addr())
	}
}

func TestInputBuilderRejectsUnresolvableTargetBank(t *testing.T) {
	mem := NewMemory([]Bank{NewBank(0x8000, make([]byte, 0x100), true)})
	_, err := NewInputBuilder().
		Memory(mem).
		Permissions(&Permissions{}).
		Cdl(&Cdl{}).
		TargetBankAddr(0x9000). // not mapped by any bank
		TargetBankName("PRG0").
		Build()
	if err == nil {
		t.Errorf("Build should fail when the target bank address isn't mapped")
	}
}

func TestInputBuilderRequiresAllFields(t *testing.T) {
	if _, err := NewInputBuilder().Build(); err == nil {
		t.Errorf("Build on an empty builder should fail")
	}
}
