package disnes

import (
	"fmt"

	"github.com/pkg/errors"
)

// Bank is a contiguous byte image mapped into the 16-bit address space at a
// fixed start address. A fixed bank is visible regardless of which bank is
// currently being disassembled, modeling hardware banks that do not swap.
type Bank struct {
	addr  Address
	body  []byte
	fixed bool
}

// NewBank builds a Bank. Panics if body is empty or if addr+len(body)-1
// overflows the 16-bit address space: both are programming errors, not
// data errors (spec §3 Bank invariants).
func NewBank(addr Address, body []byte, fixed bool) Bank {
	if len(body) == 0 {
		panic("disnes: NewBank: body is empty")
	}
	if _, ok := addr.CheckedAddUnsigned(len(body) - 1); !ok {
		panic(fmt.Sprintf("disnes: NewBank: addr=%s len=%#x overflows 16 bits", addr, len(body)))
	}
	return Bank{addr: addr, body: body, fixed: fixed}
}

// Addr returns the bank's start address.
func (b Bank) Addr() Address { return b.addr }

// IsFixed reports whether the bank is visible regardless of bank-switch state.
func (b Bank) IsFixed() bool { return b.fixed }

// Len returns the bank's length in bytes.
func (b Bank) Len() int { return len(b.body) }

// AddrRange returns the bank's address range.
func (b Bank) AddrRange() AddressRange {
	return NewAddressRangeStartLen(b.addr, len(b.body))
}

// ContainsAddr reports whether addr falls within the bank.
func (b Bank) ContainsAddr(addr Address) bool {
	return b.AddrRange().ContainsAddr(addr)
}

// ContainsRange reports whether r falls entirely within the bank.
func (b Bank) ContainsRange(r AddressRange) bool {
	return b.AddrRange().ContainsRange(r)
}

// GetByte returns the byte at addr, if addr is within the bank.
func (b Bank) GetByte(addr Address) (byte, bool) {
	if !b.ContainsAddr(addr) {
		return 0, false
	}
	return b.body[int(addr)-int(b.addr)], true
}

// GetBytes returns the bytes spanning r, if r is entirely within the bank.
func (b Bank) GetBytes(r AddressRange) ([]byte, bool) {
	if !b.ContainsRange(r) {
		return nil, false
	}
	off := int(r.Min()) - int(b.addr)
	return b.body[off : off+r.Len()], true
}

// GetBytesFrom returns the bytes from addr to the end of the bank.
func (b Bank) GetBytesFrom(addr Address) ([]byte, bool) {
	if !b.ContainsAddr(addr) {
		return nil, false
	}
	off := int(addr) - int(b.addr)
	return b.body[off:], true
}

// ErrFetchNothing is returned by FetchOp when the address is not mapped by
// any loaded bank.
var ErrFetchNothing = errors.New("disnes: address is not mapped by any bank")

// IncompleteOpError is returned by FetchOp when addr is mapped but the
// instruction it decodes to runs past the end of its bank. Prefix holds the
// 1 or 2 bytes that were actually available.
type IncompleteOpError struct {
	Prefix []byte
}

func (e *IncompleteOpError) Error() string {
	return fmt.Sprintf("disnes: incomplete instruction, %d byte(s) available", len(e.Prefix))
}

// Memory is the set of loaded banks mapped into the 16-bit address space,
// plus a reverse index from address to originating bank id.
type Memory struct {
	banks   []Bank
	bankIDs [0x10000]int // -1 means unmapped
}

// NewMemory builds a Memory from banks. Panics if any two banks' address
// ranges overlap: bank placement is a caller contract, not recoverable
// input validation (spec §3 Memory invariants).
func NewMemory(banks []Bank) *Memory {
	m := &Memory{banks: banks}
	for i := range m.bankIDs {
		m.bankIDs[i] = -1
	}

	for i := 0; i < len(banks); i++ {
		for j := i + 1; j < len(banks); j++ {
			if banks[i].AddrRange().Intersects(banks[j].AddrRange()) {
				panic(fmt.Sprintf("disnes: NewMemory: bank %d %s overlaps bank %d %s",
					i, banks[i].AddrRange(), j, banks[j].AddrRange()))
			}
		}
	}

	for id, bank := range banks {
		for _, addr := range bank.AddrRange().Addresses() {
			m.bankIDs[addr] = id
		}
	}

	return m
}

// Banks returns the loaded banks, in the order they were given to NewMemory.
func (m *Memory) Banks() []Bank {
	return m.banks
}

// FindBankID returns the id of the bank containing addr, if any.
func (m *Memory) FindBankID(addr Address) (int, bool) {
	id := m.bankIDs[addr]
	if id < 0 {
		return 0, false
	}
	return id, true
}

// GetByte returns the byte at addr and its originating bank id.
func (m *Memory) GetByte(addr Address) (byte, int, bool) {
	id, ok := m.FindBankID(addr)
	if !ok {
		return 0, 0, false
	}
	b, _ := m.banks[id].GetByte(addr)
	return b, id, true
}

// GetBytesFrom returns the bytes from addr to the end of its bank, and the
// originating bank id.
func (m *Memory) GetBytesFrom(addr Address) ([]byte, int, bool) {
	id, ok := m.FindBankID(addr)
	if !ok {
		return nil, 0, false
	}
	buf, _ := m.banks[id].GetBytesFrom(addr)
	return buf, id, true
}

// FetchOp decodes the instruction starting at addr.
func (m *Memory) FetchOp(addr Address) (Op, int, error) {
	buf, bankID, ok := m.GetBytesFrom(addr)
	if !ok {
		return Op{}, 0, ErrFetchNothing
	}

	oc := OpcodeByValue(buf[0])
	need := oc.Len()
	if len(buf) < need {
		prefix := make([]byte, len(buf))
		copy(prefix, buf)
		return Op{}, 0, &IncompleteOpError{Prefix: prefix}
	}

	return DecodeOp(buf[:need]), bankID, nil
}

// FetchAddr reads a little-endian 16-bit address at addr, if both bytes lie
// within one bank.
func (m *Memory) FetchAddr(addr Address) (Address, int, bool) {
	buf, bankID, ok := m.GetBytesFrom(addr)
	if !ok || len(buf) < 2 {
		return 0, 0, false
	}
	return AddressFromLEBytes(buf[0], buf[1]), bankID, true
}

// OpSuccResolvedKind identifies the shape of a resolved successor.
type OpSuccResolvedKind int

const (
	ResolvedNormal OpSuccResolvedKind = iota
	ResolvedBrk
	ResolvedKil
	ResolvedBranch
	ResolvedJsr
	ResolvedRti
	ResolvedRts
	ResolvedJmpAbs
	ResolvedJmpInd
)

// OpSuccResolved is the concrete resolution of an Op's abstract successor
// (OpSucc) against a Memory: actual destination addresses, where knowable.
type OpSuccResolved struct {
	Kind     OpSuccResolvedKind
	Addr     Address // ResolvedNormal, ResolvedJsr, ResolvedJmpAbs
	Taken    Address // ResolvedBranch
	NotTaken Address // ResolvedBranch
	Dst      Address // ResolvedBrk, ResolvedJmpInd
	HasDst   bool    // whether Dst could be resolved
}

// ResolveOpSucc resolves succ, the abstract successor of the instruction at
// addr, against m.
func (m *Memory) ResolveOpSucc(addr Address, succ OpSucc) OpSuccResolved {
	switch succ.Kind {
	case SuccNormal:
		return OpSuccResolved{Kind: ResolvedNormal, Addr: addr.WrappingAddUnsigned(succ.Offset)}
	case SuccBrk:
		dst, _, ok := m.FetchAddr(Address(0xFFFE))
		return OpSuccResolved{Kind: ResolvedBrk, Dst: dst, HasDst: ok}
	case SuccKil:
		return OpSuccResolved{Kind: ResolvedKil}
	case SuccBranch:
		notTaken := addr.WrappingAddUnsigned(2)
		taken := notTaken.WrappingAddSigned(int(succ.Rel))
		return OpSuccResolved{Kind: ResolvedBranch, Taken: taken, NotTaken: notTaken}
	case SuccJsr:
		return OpSuccResolved{Kind: ResolvedJsr, Addr: succ.Dst}
	case SuccRti:
		return OpSuccResolved{Kind: ResolvedRti}
	case SuccRts:
		return OpSuccResolved{Kind: ResolvedRts}
	case SuccJmpAbs:
		return OpSuccResolved{Kind: ResolvedJmpAbs, Addr: succ.Dst}
	case SuccJmpInd:
		// Conservatively refuse to follow a pointer whose low byte is 0xFF:
		// real hardware wraps within the page instead of crossing it.
		if succ.Ptr&0xFF == 0xFF {
			return OpSuccResolved{Kind: ResolvedJmpInd}
		}
		dst, _, ok := m.FetchAddr(succ.Ptr)
		return OpSuccResolved{Kind: ResolvedJmpInd, Dst: dst, HasDst: ok}
	default:
		panic(fmt.Sprintf("disnes: ResolveOpSucc: unhandled kind %v", succ.Kind))
	}
}
