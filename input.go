package disnes

import "github.com/pkg/errors"

// Input is the read-only input to the analysis pipeline: the loaded
// memory, the permission map, the CDL annotations, and the designation of
// which loaded bank is to be disassembled.
type Input struct {
	memory         *Memory
	permissions    *Permissions
	cdl            *Cdl
	targetBankID   int
	targetBankName string
}

// Memory returns the loaded banks.
func (in Input) Memory() *Memory { return in.memory }

// Permissions returns the R/W/X map.
func (in Input) Permissions() *Permissions { return in.permissions }

// Cdl returns the CDL annotations.
func (in Input) Cdl() *Cdl { return in.cdl }

// TargetBankID returns the index into Memory().Banks() of the bank to
// disassemble.
func (in Input) TargetBankID() int { return in.targetBankID }

// TargetBankName returns the target bank's configured name.
func (in Input) TargetBankName() string { return in.targetBankName }

// TargetBank returns the bank to disassemble.
func (in Input) TargetBank() Bank {
	return in.memory.Banks()[in.targetBankID]
}

// InputBuilder builds an Input, resolving the target bank id from its
// address once every field is present.
type InputBuilder struct {
	memory         *Memory
	permissions    *Permissions
	cdl            *Cdl
	targetBankAddr *Address
	targetBankName *string
}

// NewInputBuilder returns an empty builder.
func NewInputBuilder() *InputBuilder {
	return &InputBuilder{}
}

// Memory sets the loaded banks.
func (b *InputBuilder) Memory(m *Memory) *InputBuilder {
	b.memory = m
	return b
}

// Permissions sets the R/W/X map.
func (b *InputBuilder) Permissions(p *Permissions) *InputBuilder {
	b.permissions = p
	return b
}

// Cdl sets the CDL annotations.
func (b *InputBuilder) Cdl(c *Cdl) *InputBuilder {
	b.cdl = c
	return b
}

// TargetBankAddr sets the target bank's start address.
func (b *InputBuilder) TargetBankAddr(addr Address) *InputBuilder {
	b.targetBankAddr = &addr
	return b
}

// TargetBankName sets the target bank's name.
func (b *InputBuilder) TargetBankName(name string) *InputBuilder {
	b.targetBankName = &name
	return b
}

// Build validates and constructs the Input.
func (b *InputBuilder) Build() (Input, error) {
	if b.memory == nil {
		return Input{}, errors.New("disnes: InputBuilder: memory is unset")
	}
	if b.permissions == nil {
		return Input{}, errors.New("disnes: InputBuilder: permissions is unset")
	}
	if b.cdl == nil {
		return Input{}, errors.New("disnes: InputBuilder: cdl is unset")
	}
	if b.targetBankAddr == nil {
		return Input{}, errors.New("disnes: InputBuilder: target bank address is unset")
	}
	if b.targetBankName == nil {
		return Input{}, errors.New("disnes: InputBuilder: target bank name is unset")
	}

	id, ok := b.memory.FindBankID(*b.targetBankAddr)
	if !ok {
		return Input{}, errors.New("disnes: InputBuilder: target bank not found")
	}

	return Input{
		memory:         b.memory,
		permissions:    b.permissions,
		cdl:            b.cdl,
		targetBankID:   id,
		targetBankName: *b.targetBankName,
	}, nil
}
