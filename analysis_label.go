package disnes

// analyzeLabel is Pass 7: it walks every Code instruction that still
// decodes (within the target bank, and, if the bank is fixed and so
// visible from anywhere, across the whole address space) and labels
// whatever address it references, so the formatter has a symbol to print
// instead of a bare hex literal (spec §4.3 Pass 7).
//
// An instruction fetched from the target bank may label any address its
// operand resolves to; one fetched from elsewhere may only label an
// address that resolves back into the target bank, since that's the only
// bank this pass is building labels for.
func analyzeLabel(analysis *Analysis, labels *Labels, input Input) {
	memory := input.Memory()
	targetBank := input.TargetBank()
	targetBankID := input.TargetBankID()

	window := targetBank.AddrRange()
	if targetBank.IsFixed() {
		window = NewAddressRangeMinMax(0, 0xFFFF)
	}

	for _, addr := range window.Addresses() {
		if analysis[addr] != Code {
			continue
		}
		op, bankID, err := memory.FetchOp(addr)
		if err != nil {
			continue
		}
		labelOperandTargets(labels, input, bankID == targetBankID, addr, op)
	}
}

func labelOperandTargets(labels *Labels, input Input, fromTarget bool, addr Address, op Op) {
	memory := input.Memory()

	switch op.Succ().Kind {
	case SuccJsr:
		setCrossRefLabel(labels, input, fromTarget, op.Operand.Absolute(), true)
		return
	case SuccJmpInd:
		if dst, _, ok := memory.FetchAddr(op.Operand.Absolute()); ok {
			setCrossRefLabel(labels, input, fromTarget, dst, true)
		}
		return
	}

	switch op.Opcode.Mode {
	case ZeroPage, ZeroPageX, ZeroPageY, IndirectX:
		setCrossRefLabel(labels, input, fromTarget, op.Operand.ZeroPage().Address(), false)
	case Absolute, AbsoluteX, AbsoluteY:
		setCrossRefLabel(labels, input, fromTarget, op.Operand.Absolute(), false)
	case IndirectY:
		ptr := op.Operand.ZeroPage().Address()
		setCrossRefLabel(labels, input, fromTarget, ptr, false)
		if dst, _, ok := memory.FetchAddr(ptr); ok {
			setCrossRefLabel(labels, input, fromTarget, dst, false)
		}
	case Relative:
		dst := addr.WrappingAddUnsigned(2).WrappingAddSigned(int(op.Operand.Relative()))
		setCrossRefLabel(labels, input, fromTarget, dst, false)
	}
}

// setCrossRefLabel installs a label at dst if it's allowed to: an
// instruction in the target bank may label any mapped address; one outside
// it may only label an address that resolves back into the target bank.
func setCrossRefLabel(labels *Labels, input Input, fromTarget bool, dst Address, entrypoint bool) {
	dstBankID, ok := input.Memory().FindBankID(dst)
	if !ok {
		return
	}
	if !fromTarget && dstBankID != input.TargetBankID() {
		return
	}
	labels.Set(dst, Label{Entrypoint: entrypoint})
}
