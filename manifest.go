package disnes

import (
	"context"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Manifest is a loaded and validated disnes.toml: the address space's
// memory regions, the set of loadable banks, and the analysis config to
// run against whichever bank is chosen as the disassembly target.
type Manifest struct {
	regions []memoryRegion
	banks   []bankDesc
	config  AnalysisConfig
}

type memoryRegion struct {
	Start      uint16 `toml:"start"`
	Len        int    `toml:"len"`
	Readable   bool   `toml:"readable"`
	Writable   bool   `toml:"writable"`
	Executable bool   `toml:"executable"`
}

func (mr memoryRegion) addrRange() AddressRange {
	return NewAddressRangeStartLen(Address(mr.Start), mr.Len)
}

type bankDesc struct {
	Name       string `toml:"name"`
	Start      uint16 `toml:"start"`
	Len        int    `toml:"len"`
	File       string `toml:"file"`
	FileOffset int    `toml:"file_offset"`
	Cdl        string `toml:"cdl"`
	CdlOffset  int    `toml:"cdl_offset"`
	Fixed      bool   `toml:"fixed"`
}

func (bd bankDesc) addrRange() AddressRange {
	return NewAddressRangeStartLen(Address(bd.Start), bd.Len)
}

// manifestFile is the raw shape decoded from TOML before validation.
type manifestFile struct {
	Memory []memoryRegion `toml:"memory"`
	Banks  []bankDesc     `toml:"banks"`
	Config AnalysisConfig `toml:"config"`
}

// LoadManifest parses and validates the manifest at path (spec §4.4 / C9).
// ctx bounds the decode: a canceled context is checked before the file is
// opened so the CLI can abort a load without reading it.
func LoadManifest(ctx context.Context, path string) (*Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := manifestFile{Config: DefaultAnalysisConfig()}
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, errors.Wrapf(err, "disnes: load manifest %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("disnes: manifest %s: unknown key '%s'", path, undecoded[0])
	}
	return validateManifest(raw)
}

func validateManifest(raw manifestFile) (*Manifest, error) {
	if len(raw.Memory) == 0 {
		return nil, errors.New("disnes: manifest: no memory regions declared")
	}
	if len(raw.Banks) == 0 {
		return nil, errors.New("disnes: manifest: no banks declared")
	}

	for i, mr := range raw.Memory {
		if mr.Len <= 0 {
			return nil, errors.Errorf("disnes: manifest: memory region %d has non-positive length", i)
		}
		if _, ok := Address(mr.Start).CheckedAddUnsigned(mr.Len - 1); !ok {
			return nil, errors.Errorf(
				"disnes: manifest: memory region %d (start=%#x, len=%#x) overflows 16 bits", i, mr.Start, mr.Len)
		}
	}
	for i := 0; i < len(raw.Memory); i++ {
		for j := i + 1; j < len(raw.Memory); j++ {
			if raw.Memory[i].addrRange().Intersects(raw.Memory[j].addrRange()) {
				return nil, errors.Errorf("disnes: manifest: memory region %d intersects memory region %d", i, j)
			}
		}
	}

	seenNames := make(map[string]bool, len(raw.Banks))
	for _, bd := range raw.Banks {
		if bd.Len <= 0 {
			return nil, errors.Errorf("disnes: manifest: bank '%s' has non-positive length", bd.Name)
		}
		if _, ok := Address(bd.Start).CheckedAddUnsigned(bd.Len - 1); !ok {
			return nil, errors.Errorf(
				"disnes: manifest: bank '%s' (start=%#x, len=%#x) overflows 16 bits", bd.Name, bd.Start, bd.Len)
		}
		if seenNames[bd.Name] {
			return nil, errors.Errorf("disnes: manifest: duplicated bank name '%s'", bd.Name)
		}
		seenNames[bd.Name] = true
	}
	for i := 0; i < len(raw.Banks); i++ {
		for j := i + 1; j < len(raw.Banks); j++ {
			lhs, rhs := raw.Banks[i], raw.Banks[j]
			if (lhs.Fixed || rhs.Fixed) && lhs.addrRange().Intersects(rhs.addrRange()) {
				return nil, errors.Errorf(
					"disnes: manifest: fixed bank must not intersect another bank: '%s' and '%s'", lhs.Name, rhs.Name)
			}
		}
	}

	return &Manifest{regions: raw.Memory, banks: raw.Banks, config: raw.Config}, nil
}

// IntoInputConfig builds the Input and Config needed to disassemble
// targetBankName: it loads the target bank and every fixed bank (skipping
// any other non-target bank entirely), fills the permission map from the
// memory regions, and loads each loaded bank's CDL file, if it has one. ctx
// bounds each bank/CDL file read.
func (m *Manifest) IntoInputConfig(ctx context.Context, targetBankName string) (Input, Config, error) {
	perms := &Permissions{}
	for _, mr := range m.regions {
		perms.Fill(mr.addrRange(), NewPermission(mr.Readable, mr.Writable, mr.Executable))
	}

	cdl := &Cdl{}
	banks := make([]Bank, 0, len(m.banks))
	var targetBankAddr *Address

	for _, bd := range m.banks {
		isTarget := bd.Name == targetBankName
		if isTarget {
			addr := Address(bd.Start)
			targetBankAddr = &addr
		}
		if !isTarget && !bd.Fixed {
			continue
		}

		body, err := fsReadRange(ctx, bd.File, bd.FileOffset, bd.Len)
		if err != nil {
			return Input{}, Config{}, errors.Wrapf(err, "disnes: can't read bank '%s'", bd.Name)
		}
		bank := NewBank(Address(bd.Start), body, bd.Fixed)
		banks = append(banks, bank)

		if bd.Cdl != "" {
			cdlBody, err := fsReadRange(ctx, bd.Cdl, bd.CdlOffset, bd.Len)
			if err != nil {
				return Input{}, Config{}, errors.Wrapf(err, "disnes: can't read CDL for bank '%s'", bd.Name)
			}
			for i, addr := range bd.addrRange().Addresses() {
				cdl[addr] = CdlElement(cdlBody[i])
			}
		}
	}

	if targetBankAddr == nil {
		return Input{}, Config{}, errors.Errorf("disnes: manifest: target bank '%s' not found", targetBankName)
	}

	memory := NewMemory(banks)
	input, err := NewInputBuilder().
		Memory(memory).
		Permissions(perms).
		Cdl(cdl).
		TargetBankAddr(*targetBankAddr).
		TargetBankName(targetBankName).
		Build()
	if err != nil {
		return Input{}, Config{}, err
	}

	return input, Config{analysis: m.config}, nil
}
