package disnes

import "github.com/pkg/errors"

// AnalysisKind is the per-address classification produced by the analysis
// pipeline (C6). Unknown is the default; Code and NotCode are terminal —
// once a pass sets either, no later pass may change it (spec §3).
type AnalysisKind int

const (
	Unknown AnalysisKind = iota
	Code
	NotCode
)

func (k AnalysisKind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case Code:
		return "Code"
	case NotCode:
		return "NotCode"
	default:
		return "invalid"
	}
}

// Analysis is the mutable per-address classification array owned
// exclusively by the pipeline driver while it runs.
type Analysis [0x10000]AnalysisKind

// SetCode sets addr to Code if it is still Unknown. It is a bug in a pass
// to call this on an address that is already NotCode; passes must check
// before calling when that's reachable (e.g. Pass 3's NotCode check on a
// vector target).
func (a *Analysis) SetCode(addr Address) {
	if a[addr] == Unknown {
		a[addr] = Code
	}
}

// SetNotCode sets addr to NotCode if it is still Unknown.
func (a *Analysis) SetNotCode(addr Address) {
	if a[addr] == Unknown {
		a[addr] = NotCode
	}
}

// Label marks an address as the start of a label. Entrypoint is sticky
// under merge: once true for an address, it stays true.
type Label struct {
	Entrypoint bool
}

// Labels is the 65536-slot optional label table built up across the
// analysis passes.
type Labels struct {
	slots [0x10000]*Label
}

// Get returns the label at addr, if one has been set.
func (l *Labels) Get(addr Address) (Label, bool) {
	s := l.slots[addr]
	if s == nil {
		return Label{}, false
	}
	return *s, true
}

// Set installs label at addr, merging with any existing label there by
// OR-ing the Entrypoint flag (spec §3: "entrypoint ← old.entrypoint ∨
// new.entrypoint").
func (l *Labels) Set(addr Address, label Label) {
	if existing := l.slots[addr]; existing != nil {
		existing.Entrypoint = existing.Entrypoint || label.Entrypoint
		return
	}
	cp := label
	l.slots[addr] = &cp
}

// StatementKind identifies which of Op/IncompleteOp/Byte a Statement holds.
type StatementKind int

const (
	StmtOp StatementKind = iota
	StmtIncompleteOp
	StmtByte
)

// Statement is one unit of the linear-sweep output: a decoded instruction,
// a truncated instruction prefix, or a single raw byte.
type Statement struct {
	Kind       StatementKind
	Op         Op     // valid when Kind == StmtOp
	Incomplete []byte // valid when Kind == StmtIncompleteOp
	Byte       byte   // valid when Kind == StmtByte
}

// Len returns the statement's length in bytes.
func (s Statement) Len() int {
	switch s.Kind {
	case StmtOp:
		return s.Op.Len()
	case StmtIncompleteOp:
		return len(s.Incomplete)
	case StmtByte:
		return 1
	default:
		panic("disnes: Statement.Len: unhandled kind")
	}
}

// IsCode reports whether the statement represents decoded (possibly
// truncated) instruction bytes, as opposed to a raw data byte.
func (s Statement) IsCode() bool {
	return s.Kind == StmtOp || s.Kind == StmtIncompleteOp
}

// IsTerminalFlow reports whether the statement is a terminal flow
// instruction (RTI, RTS, JMP-abs, JMP-ind) for the purposes of the linear
// sweep's and the formatter's blank-line/label heuristics. Branches and JSR
// are not terminal: execution may fall through.
func (s Statement) IsTerminalFlow() bool {
	if s.Kind != StmtOp {
		return false
	}
	switch s.Op.Succ().Kind {
	case SuccRti, SuccRts, SuccJmpAbs, SuccJmpInd:
		return true
	default:
		return false
	}
}

// Assembly is the immutable output of the analysis pipeline for one target
// bank: its address range, name, ordered statements, and label table.
type Assembly struct {
	bankAddrRange AddressRange
	bankName      string
	statements    []Statement
	labels        *Labels
}

// BankAddrRange returns the target bank's address range.
func (a Assembly) BankAddrRange() AddressRange { return a.bankAddrRange }

// BankAddr returns the target bank's start address.
func (a Assembly) BankAddr() Address { return a.bankAddrRange.Min() }

// BankName returns the target bank's name.
func (a Assembly) BankName() string { return a.bankName }

// Statements returns the ordered statement list.
func (a Assembly) Statements() []Statement { return a.statements }

// Labels returns the label table.
func (a Assembly) Labels() *Labels { return a.labels }

// AssemblyBuilder builds an Assembly, validating every field is present and
// that the statements' total length matches the bank's length.
type AssemblyBuilder struct {
	bankAddrRange *AddressRange
	bankName      *string
	statements    []Statement
	labels        *Labels
}

// NewAssemblyBuilder returns an empty builder.
func NewAssemblyBuilder() *AssemblyBuilder {
	return &AssemblyBuilder{}
}

// BankAddrRange sets the bank address range.
func (b *AssemblyBuilder) BankAddrRange(r AddressRange) *AssemblyBuilder {
	b.bankAddrRange = &r
	return b
}

// BankName sets the bank name.
func (b *AssemblyBuilder) BankName(name string) *AssemblyBuilder {
	b.bankName = &name
	return b
}

// Statements sets the statement list.
func (b *AssemblyBuilder) Statements(stmts []Statement) *AssemblyBuilder {
	b.statements = stmts
	return b
}

// Labels sets the label table.
func (b *AssemblyBuilder) Labels(labels *Labels) *AssemblyBuilder {
	b.labels = labels
	return b
}

// Build validates and constructs the Assembly.
func (b *AssemblyBuilder) Build() (Assembly, error) {
	if b.bankAddrRange == nil {
		return Assembly{}, errors.New("disnes: AssemblyBuilder: bank address range is unset")
	}
	if b.bankName == nil {
		return Assembly{}, errors.New("disnes: AssemblyBuilder: bank name is unset")
	}
	if b.labels == nil {
		return Assembly{}, errors.New("disnes: AssemblyBuilder: labels is unset")
	}
	if len(b.statements) == 0 {
		return Assembly{}, errors.New("disnes: AssemblyBuilder: statements is empty")
	}

	total := 0
	for _, s := range b.statements {
		total += s.Len()
	}
	if total != b.bankAddrRange.Len() {
		return Assembly{}, errors.Errorf(
			"disnes: AssemblyBuilder: statement length %d != bank length %d", total, b.bankAddrRange.Len())
	}

	return Assembly{
		bankAddrRange: *b.bankAddrRange,
		bankName:      *b.bankName,
		statements:    b.statements,
		labels:        b.labels,
	}, nil
}
