package disnes

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// OutputAssembly renders asm as ca65-flavored 6502 assembly (spec §4.5 /
// C8): a `.segment` preamble followed by one block of output per
// Statement, with labels, cross-bank address constants, and blank-line
// separators inserted where the analysis calls for them.
func OutputAssembly(w io.Writer, asm Assembly) error {
	if err := outPreamble(w, asm); err != nil {
		return err
	}
	return outStatements(w, asm)
}

func outPreamble(w io.Writer, asm Assembly) error {
	if _, err := fmt.Fprintln(w, ";---------------------------------------------------------------------"); err != nil {
		return errors.Wrap(err, "disnes: output preamble")
	}
	if _, err := fmt.Fprintf(w, ".segment %q\n", asm.BankName()); err != nil {
		return errors.Wrap(err, "disnes: output preamble")
	}
	if _, err := fmt.Fprintln(w, ";---------------------------------------------------------------------"); err != nil {
		return errors.Wrap(err, "disnes: output preamble")
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return errors.Wrap(err, "disnes: output preamble")
	}

	defined := false
	for _, addr := range NewAddressRangeMinMax(0, 0xFFFF).Addresses() {
		if _, ok := asm.Labels().Get(addr); !ok || asm.BankAddrRange().ContainsAddr(addr) {
			continue
		}
		defined = true
		if _, err := fmt.Fprintf(w, "%s := %s\n", labelAddr(addr), hexAddr(addr)); err != nil {
			return errors.Wrap(err, "disnes: output preamble")
		}
	}
	if defined {
		if _, err := fmt.Fprintln(w); err != nil {
			return errors.Wrap(err, "disnes: output preamble")
		}
	}

	return nil
}

func outStatements(w io.Writer, asm Assembly) error {
	addr := asm.BankAddr()
	var prev *Statement

	for _, stmt := range asm.Statements() {
		if prev != nil && needsBlankLine(asm.Labels(), addr, *prev, stmt) {
			if _, err := fmt.Fprintln(w); err != nil {
				return errors.Wrap(err, "disnes: output statements")
			}
		}

		if err := outStatement(w, asm, addr, stmt); err != nil {
			return err
		}

		next, ok := addr.CheckedAddUnsigned(stmt.Len())
		if !ok {
			break
		}
		addr = next
		s := stmt
		prev = &s
	}

	return nil
}

func outStatement(w io.Writer, asm Assembly, addr Address, stmt Statement) error {
	if label, ok := asm.Labels().Get(addr); ok && label.Entrypoint {
		if _, err := fmt.Fprintln(w, ";;; "); err != nil {
			return errors.Wrap(err, "disnes: output statement")
		}
	}

	needLabel := false
	for i := 0; i < stmt.Len(); i++ {
		if _, ok := asm.Labels().Get(addr.WrappingAddUnsigned(i)); ok {
			needLabel = true
			break
		}
	}
	if needLabel {
		if _, err := fmt.Fprintf(w, "%s:\n", labelAddr(addr)); err != nil {
			return errors.Wrap(err, "disnes: output statement")
		}
	}
	for i := 1; i < stmt.Len(); i++ {
		mid := addr.WrappingAddUnsigned(i)
		if _, ok := asm.Labels().Get(mid); ok {
			if _, err := fmt.Fprintf(w, "%s := %s + %d\n", labelAddr(mid), labelAddr(addr), i); err != nil {
				return errors.Wrap(err, "disnes: output statement")
			}
		}
	}

	switch stmt.Kind {
	case StmtOp:
		return outOp(w, asm, addr, stmt.Op)
	case StmtIncompleteOp:
		return outIncompleteOp(w, stmt.Incomplete)
	case StmtByte:
		return outByte(w, stmt.Byte)
	default:
		panic("disnes: outStatement: unhandled statement kind")
	}
}

func outOp(w io.Writer, asm Assembly, addr Address, op Op) error {
	if op.IsOfficial() {
		_, err := fmt.Fprintf(w, "        %s\n", formatOp(asm.Labels(), addr, op))
		return errors.Wrap(err, "disnes: output op")
	}

	// ca65 doesn't assemble every unofficial mnemonic, so these are emitted
	// as a comment describing the instruction followed by raw .byte lines.
	if _, err := fmt.Fprintf(w, "        ; %s\n", formatOp(asm.Labels(), addr, op)); err != nil {
		return errors.Wrap(err, "disnes: output op")
	}
	for _, b := range op.ToBytes() {
		if err := outByte(w, b); err != nil {
			return err
		}
	}
	return nil
}

func outIncompleteOp(w io.Writer, buf []byte) error {
	if _, err := fmt.Fprintln(w, "        ; INCOMPLETE OP"); err != nil {
		return errors.Wrap(err, "disnes: output incomplete op")
	}
	for _, b := range buf {
		if err := outByte(w, b); err != nil {
			return err
		}
	}
	return nil
}

func outByte(w io.Writer, b byte) error {
	_, err := fmt.Fprintf(w, "        .byte   %s\n", hexU8(b))
	return errors.Wrap(err, "disnes: output byte")
}

// needsBlankLine reports whether a blank line should separate prev (at
// addr's preceding statement) from the statement now being emitted at addr:
// across a code/data boundary, before an entrypoint, and after a terminal
// flow instruction (RTI, RTS, or either JMP form).
func needsBlankLine(labels *Labels, addr Address, prev, cur Statement) bool {
	if prev.IsCode() != cur.IsCode() {
		return true
	}
	if label, ok := labels.Get(addr); ok && label.Entrypoint {
		return true
	}
	return prev.IsTerminalFlow()
}

// formatOp renders op's mnemonic and operand in ca65 syntax.
func formatOp(labels *Labels, addr Address, op Op) string {
	mne := op.Opcode.Mnemonic

	switch op.Opcode.Mode {
	case Implied, Accumulator:
		return mne
	case Immediate:
		return fmt.Sprintf("%s     #%s", mne, resolveImm(op, op.Operand.Immediate()))
	case ZeroPage:
		return fmt.Sprintf("%s     %s", mne, resolveZpAddr(labels, op.Operand.ZeroPage()))
	case ZeroPageX:
		return fmt.Sprintf("%s     %s,x", mne, resolveZpAddr(labels, op.Operand.ZeroPage()))
	case ZeroPageY:
		return fmt.Sprintf("%s     %s,y", mne, resolveZpAddr(labels, op.Operand.ZeroPage()))
	case Absolute:
		return fmt.Sprintf("%s     %s", mne, resolveAbsAddr(labels, op.Operand.Absolute()))
	case AbsoluteX:
		return fmt.Sprintf("%s     %s,x", mne, resolveAbsAddr(labels, op.Operand.Absolute()))
	case AbsoluteY:
		return fmt.Sprintf("%s     %s,y", mne, resolveAbsAddr(labels, op.Operand.Absolute()))
	case Indirect:
		return fmt.Sprintf("%s     (%s)", mne, resolveAddr(labels, op.Operand.Absolute()))
	case IndirectX:
		return fmt.Sprintf("%s     (%s,x)", mne, resolveZpAddr(labels, op.Operand.ZeroPage()))
	case IndirectY:
		return fmt.Sprintf("%s     (%s),y", mne, resolveZpAddr(labels, op.Operand.ZeroPage()))
	case Relative:
		dst := addr.WrappingAddUnsigned(2).WrappingAddSigned(int(op.Operand.Relative()))
		return fmt.Sprintf("%s     %s", mne, resolveAddr(labels, dst))
	default:
		panic(fmt.Sprintf("disnes: formatOp: unhandled addressing mode %v", op.Opcode.Mode))
	}
}

// resolveAddr renders addr as its label, if one exists, or as a plain hex
// literal otherwise.
func resolveAddr(labels *Labels, addr Address) string {
	if _, ok := labels.Get(addr); ok {
		return labelAddr(addr)
	}
	return hexAddr(addr)
}

// resolveAbsAddr is like resolveAddr, but prefixes a zero-page-valued
// address with "a:" to force ca65 to assemble it with absolute addressing
// rather than the shorter zero-page form.
func resolveAbsAddr(labels *Labels, addr Address) string {
	if addr.IsZeroPage() {
		return "a:" + resolveAddr(labels, addr)
	}
	return resolveAddr(labels, addr)
}

func resolveZpAddr(labels *Labels, zp ZpAddress) string {
	addr := zp.Address()
	if _, ok := labels.Get(addr); ok {
		return labelAddr(addr)
	}
	return hexZpAddr(zp)
}

// resolveImm renders an immediate operand: in decimal if it's small enough
// to read comfortably (a wider threshold for non-bitwise instructions,
// since e.g. LDA #16 is more readable than LDA #$10 but AND #$0F reads
// better as a mask than AND #15), otherwise in hex.
func resolveImm(op Op, imm byte) string {
	var decimal bool
	if op.IsBitopImm() {
		decimal = imm <= 9
	} else {
		decimal = imm <= 16
	}
	if decimal {
		return fmt.Sprintf("%d", imm)
	}
	return hexU8(imm)
}

func labelAddr(addr Address) string {
	return fmt.Sprintf("L_%04X", uint16(addr))
}

func hexAddr(addr Address) string {
	if addr.IsZeroPage() {
		return fmt.Sprintf("$%02X", uint16(addr))
	}
	return fmt.Sprintf("$%04X", uint16(addr))
}

func hexZpAddr(zp ZpAddress) string {
	return fmt.Sprintf("$%02X", uint8(zp))
}

func hexU8(b byte) string {
	return fmt.Sprintf("$%02X", b)
}
