package disnes

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeManifestFixture(t *testing.T, toml string, prgBody, cdlBody []byte) string {
	t.Helper()
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "prg0.bin"), prgBody, 0o644); err != nil {
		t.Fatalf("write prg0.bin: %v", err)
	}
	if cdlBody != nil {
		if err := os.WriteFile(filepath.Join(dir, "prg0.cdl"), cdlBody, 0o644); err != nil {
			t.Fatalf("write prg0.cdl: %v", err)
		}
	}

	manifestPath := filepath.Join(dir, "disnes.toml")
	if err := os.WriteFile(manifestPath, []byte(toml), 0o644); err != nil {
		t.Fatalf("write disnes.toml: %v", err)
	}
	return manifestPath
}

const testManifestTOML = `
[[memory]]
start = 32768
len = 256
readable = true
writable = false
executable = true

[[banks]]
name = "PRG0"
start = 32768
len = 256
file = "prg0.bin"
cdl = "prg0.cdl"
fixed = true

[config]
use_irq = false
`

func TestLoadManifestAndIntoInputConfig(t *testing.T) {
	prg := make([]byte, 256)
	prg[0] = 0xEA // NOP
	cdl := make([]byte, 256)
	cdl[0] = byte(cdlFlagOpcode)

	path := writeManifestFixture(t, testManifestTOML, prg, cdl)

	// The manifest's bank/CDL file paths are resolved against the working
	// directory, not the manifest's own location, so point the test there.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	defer os.Chdir(wd)
	if err := os.Chdir(filepath.Dir(path)); err != nil {
		t.Fatalf("Chdir: %v", err)
	}

	manifest, err := LoadManifest(context.Background(), filepath.Base(path))
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}

	input, config, err := manifest.IntoInputConfig(context.Background(), "PRG0")
	if err != nil {
		t.Fatalf("IntoInputConfig: %v", err)
	}

	if input.TargetBankName() != "PRG0" {
		t.Errorf("TargetBankName() = %q, want PRG0", input.TargetBankName())
	}
	if !input.Permissions().Get(0x8000).Readable {
		t.Errorf("permission region should mark $8000 readable")
	}
	if !input.Cdl().IsOpcode(0x8000) {
		t.Errorf("CDL should mark $8000 as an opcode byte")
	}
	if config.Analysis().UseIRQ {
		t.Errorf("use_irq should be false per the manifest override")
	}
	if !config.Analysis().UseNMI {
		t.Errorf("use_nmi should keep its default of true since the manifest didn't set it")
	}
}

func TestLoadManifestRejectsOverlappingMemoryRegions(t *testing.T) {
	const toml = `
[[memory]]
start = 32768
len = 256
readable = true

[[memory]]
start = 32800
len = 256
readable = true

[[banks]]
name = "PRG0"
start = 32768
len = 256
file = "prg0.bin"
fixed = true
`
	path := writeManifestFixture(t, toml, make([]byte, 256), nil)
	if _, err := LoadManifest(context.Background(), path); err == nil {
		t.Errorf("LoadManifest should reject overlapping memory regions")
	}
}

func TestLoadManifestRejectsDuplicateBankNames(t *testing.T) {
	const toml = `
[[memory]]
start = 32768
len = 256
readable = true

[[banks]]
name = "PRG0"
start = 32768
len = 128
file = "prg0.bin"
fixed = true

[[banks]]
name = "PRG0"
start = 32896
len = 128
file = "prg0.bin"
fixed = false
`
	path := writeManifestFixture(t, toml, make([]byte, 256), nil)
	if _, err := LoadManifest(context.Background(), path); err == nil {
		t.Errorf("LoadManifest should reject duplicate bank names")
	}
}

func TestLoadManifestRejectsUnknownKey(t *testing.T) {
	const toml = `
[[memory]]
start = 32768
len = 256
readable = true

[[banks]]
name = "PRG0"
start = 32768
len = 256
file = "prg0.bin"
fixed = true

[config]
use_irq = false
bogus_option = true
`
	path := writeManifestFixture(t, toml, make([]byte, 256), nil)
	if _, err := LoadManifest(context.Background(), path); err == nil {
		t.Errorf("LoadManifest should reject an unrecognized manifest key")
	}
}

func TestLoadManifestRejectsFixedBankOverlap(t *testing.T) {
	const toml = `
[[memory]]
start = 32768
len = 512
readable = true

[[banks]]
name = "PRG0"
start = 32768
len = 256
file = "prg0.bin"
fixed = true

[[banks]]
name = "PRG1"
start = 32896
len = 256
file = "prg0.bin"
fixed = true
`
	path := writeManifestFixture(t, toml, make([]byte, 512), nil)
	if _, err := LoadManifest(context.Background(), path); err == nil {
		t.Errorf("LoadManifest should reject overlapping fixed banks")
	}
}
